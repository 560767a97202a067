package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsStreamed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hive_events_streamed_total",
		Help: "Events delivered to streaming clients, by transport.",
	}, []string{"transport"})

	streamSubscribers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hive_stream_subscribers",
		Help: "Currently attached streaming clients, by transport.",
	}, []string{"transport"})
)
