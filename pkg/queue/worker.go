package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

// Polling cadence. Jitter desynchronizes workers so they do not hammer
// Redis in lockstep.
const (
	pollInterval = time.Second
	pollJitter   = 250 * time.Millisecond
)

// Worker claims and executes jobs until stopped.
type Worker struct {
	id       string
	client   *Client
	executor Executor

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.RWMutex
	status        string
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a worker over the queue client.
func NewWorker(id string, client *Client, executor Executor) *Worker {
	return &Worker{
		id:       id,
		client:   client,
		executor: executor,
		stopCh:   make(chan struct{}),
		status:   "idle",
	}
}

// Start launches the worker loop.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Stop signals the loop to exit and waits for the current job to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns a snapshot of the worker's state.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	slog.Info("queue worker started", "worker_id", w.id)
	for {
		select {
		case <-w.stopCh:
			slog.Info("queue worker stopped", "worker_id", w.id)
			return
		case <-ctx.Done():
			return
		case <-time.After(pollInterval + time.Duration(rand.Int63n(int64(pollJitter)))):
		}

		job, err := w.client.Claim(ctx, w.id)
		if err != nil {
			if !errors.Is(err, ErrNoJobsAvailable) {
				slog.Error("claim failed", "worker_id", w.id, "error", err)
			}
			continue
		}
		w.process(ctx, job)
	}
}

func (w *Worker) process(ctx context.Context, job *Job) {
	w.mu.Lock()
	w.status = "working"
	w.currentJobID = job.ID
	w.lastActivity = time.Now()
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.status = "idle"
		w.currentJobID = ""
		w.jobsProcessed++
		w.lastActivity = time.Now()
		w.mu.Unlock()
	}()

	slog.Info("job started", "worker_id", w.id, "job_id", job.ID, "job_type", job.Type)
	result, execErr := w.executor.Execute(ctx, job)
	if err := w.client.Finish(ctx, job, result, execErr); err != nil {
		slog.Error("failed to record job result", "worker_id", w.id, "job_id", job.ID, "error", err)
		return
	}
	if execErr != nil {
		slog.Warn("job failed", "worker_id", w.id, "job_id", job.ID, "error", execErr)
	} else {
		slog.Info("job done", "worker_id", w.id, "job_id", job.ID)
	}
}
