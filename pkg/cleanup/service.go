// Package cleanup enforces retention in the background:
//   - reclaims expired reservations so crashed agents do not hold paths
//   - purges settled deferreds past their retention window
//
// All operations are idempotent and safe to run from multiple pods.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/deferred"
	"github.com/opencoord/hive/ent/reservation"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// Defaults applied when the config leaves the knobs unset.
const (
	DefaultInterval          = 5 * time.Minute
	DefaultDeferredRetention = 24 * time.Hour
)

// Service is the background retention loop.
type Service struct {
	client            *ent.Client
	store             *logstore.Store
	interval          time.Duration
	deferredRetention time.Duration
	logger            *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service. Zero durations fall back to the
// package defaults.
func NewService(client *ent.Client, store *logstore.Store, interval, deferredRetention time.Duration, logger *slog.Logger) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if deferredRetention <= 0 {
		deferredRetention = DefaultDeferredRetention
	}
	return &Service{
		client:            client,
		store:             store,
		interval:          interval,
		deferredRetention: deferredRetention,
		logger:            logger.With("component", "cleanup"),
	}
}

// Start launches the background loop. The first sweep runs immediately.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"interval", s.interval,
		"deferred_retention", s.deferredRetention)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one retention pass. Exposed for tests and for one-shot
// invocation from the CLI.
func (s *Service) Sweep(ctx context.Context) {
	if n, err := s.ReclaimExpiredReservations(ctx); err != nil {
		s.logger.Error("reservation reclaim failed", "error", err)
	} else if n > 0 {
		s.logger.Info("reclaimed expired reservations", "count", n)
	}

	if n, err := s.PurgeSettledDeferreds(ctx); err != nil {
		s.logger.Error("deferred purge failed", "error", err)
	} else if n > 0 {
		s.logger.Info("purged settled deferreds", "count", n)
	}
}

// ReclaimExpiredReservations appends a reservation_released event with
// reason "expired" for every active reservation past its expiry, grouped by
// project. The rows stay; the release marker is the durable record.
func (s *Service) ReclaimExpiredReservations(ctx context.Context) (int, error) {
	rows, err := s.client.Reservation.Query().
		Where(
			reservation.ReleasedAtIsNil(),
			reservation.ExpiresAtNotNil(),
			reservation.ExpiresAtLTE(time.Now()),
		).
		Order(ent.Asc(reservation.FieldID)).
		All(ctx)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	byProject := make(map[string][]int)
	for _, r := range rows {
		byProject[r.ProjectKey] = append(byProject[r.ProjectKey], r.ID)
	}
	total := 0
	for project, ids := range byProject {
		if _, err := s.store.Append(ctx, project, models.EventReservationReleased, map[string]interface{}{
			"reservation_ids": ids,
			"reason":          "expired",
		}); err != nil {
			return total, err
		}
		total += len(ids)
	}
	return total, nil
}

// PurgeSettledDeferreds deletes deferred rows that have been resolved, or
// expired unresolved, for longer than the retention window. The url of a
// purged deferred behaves like an unknown url afterwards.
func (s *Service) PurgeSettledDeferreds(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.deferredRetention)
	return s.client.Deferred.Delete().
		Where(
			deferred.Or(
				deferred.And(deferred.ResolvedEQ(true), deferred.ResolvedAtLTE(cutoff)),
				deferred.And(deferred.ResolvedEQ(false), deferred.ExpiresAtLTE(cutoff)),
			),
		).
		Exec(ctx)
}
