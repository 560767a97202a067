// Package queue provides the Redis-backed job queue and its worker pool.
// Jobs carry a type tag and an opaque JSON payload; priorities run 0–4 with
// 0 highest, and delayed jobs are promoted by the pool when due.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no ready jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrJobNotFound indicates an unknown job id.
	ErrJobNotFound = errors.New("job not found")
)

// Job states.
const (
	StateQueued  = "queued"
	StateDelayed = "delayed"
	StateRunning = "running"
	StateDone    = "done"
	StateFailed  = "failed"
)

// Priority bounds. 0 is the highest priority.
const (
	MinPriority = 0
	MaxPriority = 4
)

// Job is one unit of queued work.
type Job struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Priority   int             `json:"priority"`
	State      string          `json:"state"`
	Result     json.RawMessage `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
	Attempts   int             `json:"attempts"`
	CreatedAt  time.Time       `json:"created_at"`
	ReadyAt    time.Time       `json:"ready_at,omitempty"`
	StartedAt  *time.Time      `json:"started_at,omitempty"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}

// Executor processes claimed jobs. The worker handles claiming, state
// transitions, and terminal updates; the executor owns only the work
// itself.
type Executor interface {
	Execute(ctx context.Context, job *Job) (result json.RawMessage, err error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, job *Job) (json.RawMessage, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, job *Job) (json.RawMessage, error) {
	return f(ctx, job)
}

// Registry routes jobs to handlers by type.
type Registry struct {
	handlers map[string]ExecutorFunc
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]ExecutorFunc)}
}

// Register installs a handler for a job type, replacing any existing one.
func (r *Registry) Register(jobType string, fn ExecutorFunc) {
	r.handlers[jobType] = fn
}

// Execute implements Executor by dispatching on the job type.
func (r *Registry) Execute(ctx context.Context, job *Job) (json.RawMessage, error) {
	fn, ok := r.handlers[job.Type]
	if !ok {
		return nil, errors.New("no handler for job type " + job.Type)
	}
	return fn(ctx, job)
}

// PoolHealth reports the pool's view of the queue.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	RedisError    string         `json:"redis_error,omitempty"`
	QueueDepth    int64          `json:"queue_depth"`
	DelayedJobs   int64          `json:"delayed_jobs"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth reports one worker's state.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
