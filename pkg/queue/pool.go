package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// promoteInterval is how often the pool scans the delayed set for due jobs.
const promoteInterval = time.Second

// WorkerPool manages a set of queue workers plus the delayed-job promoter.
type WorkerPool struct {
	podID    string
	client   *Client
	executor Executor
	count    int

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewWorkerPool creates a pool of count workers.
func NewWorkerPool(podID string, client *Client, executor Executor, count int) *WorkerPool {
	if count < 1 {
		count = 1
	}
	return &WorkerPool{
		podID:    podID,
		client:   client,
		executor: executor,
		count:    count,
		workers:  make([]*Worker, 0, count),
		stopCh:   make(chan struct{}),
	}
}

// Start spawns the workers and the promoter. Safe to call once; subsequent
// calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("worker pool already started", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("starting worker pool", "pod_id", p.podID, "worker_count", p.count)
	for i := 0; i < p.count; i++ {
		w := NewWorker(fmt.Sprintf("%s-worker-%d", p.podID, i), p.client, p.executor)
		p.workers = append(p.workers, w)
		w.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runPromoter(ctx)
	}()
	return nil
}

// Stop signals all workers to stop and waits; in-flight jobs finish first.
func (p *WorkerPool) Stop() {
	slog.Info("stopping worker pool", "pod_id", p.podID)
	for _, w := range p.workers {
		w.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("worker pool stopped", "pod_id", p.podID)
}

// runPromoter moves due delayed jobs onto the ready lists.
func (p *WorkerPool) runPromoter(ctx context.Context) {
	ticker := time.NewTicker(promoteInterval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.client.PromoteDelayed(ctx)
			if err != nil {
				slog.Error("delayed promotion failed", "pod_id", p.podID, "error", err)
				continue
			}
			if n > 0 {
				slog.Debug("promoted delayed jobs", "pod_id", p.podID, "count", n)
			}
		}
	}
}

// Health reports queue depth and per-worker state.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()
	health := &PoolHealth{
		IsHealthy:    true,
		TotalWorkers: len(p.workers),
	}

	depth, err := p.client.Depth(ctx)
	if err != nil {
		health.IsHealthy = false
		health.RedisError = err.Error()
	}
	health.QueueDepth = depth

	delayed, err := p.client.DelayedCount(ctx)
	if err != nil {
		health.IsHealthy = false
		health.RedisError = err.Error()
	}
	health.DelayedJobs = delayed

	for _, w := range p.workers {
		wh := w.Health()
		if wh.Status == "working" {
			health.ActiveWorkers++
		}
		health.WorkerStats = append(health.WorkerStats, wh)
	}
	return health
}
