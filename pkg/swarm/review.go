// Package swarm drives the per-subtask worker lifecycle: spawning workers
// with generated prompts, verifying their output, tracking the bounded
// review-retry loop, and gating completion on approval.
package swarm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// MaxAttempts bounds the review-retry loop per task.
const MaxAttempts = 3

// Review statuses accepted by SubmitReview.
const (
	ReviewApproved     = "approved"
	ReviewNeedsChanges = "needs_changes"
)

// ReviewStatus is the tracked state of one task's review loop.
type ReviewStatus struct {
	Reviewed          bool `json:"reviewed"`
	Approved          bool `json:"approved"`
	AttemptCount      int  `json:"attempt_count"`
	RemainingAttempts int  `json:"remaining_attempts"`
}

// RetryContext is handed to the coordinator so it can spawn a fresh worker
// with the replayed prompt. Workers are one-shot; feedback never goes to
// the worker that produced the output.
type RetryContext struct {
	TaskID      string   `json:"task_id"`
	Attempt     int      `json:"attempt"`
	Issues      []string `json:"issues"`
	MaxAttempts int      `json:"max_attempts"`
	NextAction  string   `json:"next_action"`
}

// ReviewOutcome is the result of one SubmitReview call.
type ReviewOutcome struct {
	Approved          bool          `json:"approved"`
	Attempt           int           `json:"attempt"`
	RemainingAttempts int           `json:"remaining_attempts"`
	TaskFailed        bool          `json:"task_failed,omitempty"`
	RetryContext      *RetryContext `json:"retry_context,omitempty"`
}

// ReviewTracker keeps the per-task review state. The review_feedback events
// it appends are the durable record; a tracker created with a state
// directory additionally snapshots its attempt counts there so they survive
// process restarts.
type ReviewTracker struct {
	store     *logstore.Store
	logger    *slog.Logger
	statePath string

	mu    sync.Mutex
	tasks map[string]*ReviewStatus
}

// NewReviewTracker creates an in-memory tracker.
func NewReviewTracker(store *logstore.Store, logger *slog.Logger) *ReviewTracker {
	return &ReviewTracker{
		store:  store,
		logger: logger.With("component", "review"),
		tasks:  make(map[string]*ReviewStatus),
	}
}

// NewPersistentReviewTracker restores tracked state from dir and snapshots
// it after every change. A worker restart cannot reset a task's attempt
// budget.
func NewPersistentReviewTracker(store *logstore.Store, dir string, logger *slog.Logger) *ReviewTracker {
	t := NewReviewTracker(store, logger)
	if dir == "" {
		return t
	}
	t.statePath = filepath.Join(dir, "reviews.json")
	buf, err := os.ReadFile(t.statePath)
	if err != nil {
		return t
	}
	var tasks map[string]*ReviewStatus
	if err := json.Unmarshal(buf, &tasks); err != nil {
		t.logger.Warn("discarding unreadable review state", "path", t.statePath, "error", err)
		return t
	}
	if tasks != nil {
		t.tasks = tasks
	}
	return t
}

// snapshot persists the tracked state. Best-effort: the events remain the
// durable record. Caller holds t.mu.
func (t *ReviewTracker) snapshot() {
	if t.statePath == "" {
		return
	}
	buf, err := json.Marshal(t.tasks)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(t.statePath), 0o755); err != nil {
		t.logger.Warn("failed to create review state dir", "error", err)
		return
	}
	if err := os.WriteFile(t.statePath, buf, 0o644); err != nil {
		t.logger.Warn("failed to snapshot review state", "path", t.statePath, "error", err)
	}
}

// Status returns the tracked state for a task, zero-valued if never
// reviewed.
func (t *ReviewTracker) Status(taskID string) ReviewStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.tasks[taskID]; ok {
		return *st
	}
	return ReviewStatus{RemainingAttempts: MaxAttempts}
}

// IsApproved reports whether the task passed review. Completion is gated
// on this.
func (t *ReviewTracker) IsApproved(taskID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.tasks[taskID]
	return ok && st.Approved
}

// SubmitReview records coordinator feedback for a task. needs_changes
// increments the attempt counter and returns a retry context while
// attempts remain; the attempt that exhausts the budget fails the task.
// approved resets the counter and unlocks completion.
func (t *ReviewTracker) SubmitReview(ctx context.Context, projectKey, taskID, status string, issues []string) (*ReviewOutcome, error) {
	if taskID == "" {
		return nil, fmt.Errorf("task id is required")
	}

	t.mu.Lock()
	st, ok := t.tasks[taskID]
	if !ok {
		st = &ReviewStatus{RemainingAttempts: MaxAttempts}
		t.tasks[taskID] = st
	}

	var outcome *ReviewOutcome
	switch status {
	case ReviewApproved:
		st.Reviewed = true
		st.Approved = true
		st.AttemptCount = 0
		st.RemainingAttempts = MaxAttempts
		outcome = &ReviewOutcome{Approved: true, RemainingAttempts: MaxAttempts}
	case ReviewNeedsChanges:
		if st.AttemptCount >= MaxAttempts {
			t.mu.Unlock()
			return nil, fmt.Errorf("task %s exceeds maximum of %d review attempts", taskID, MaxAttempts)
		}
		st.Reviewed = true
		st.Approved = false
		st.AttemptCount++
		st.RemainingAttempts = MaxAttempts - st.AttemptCount
		outcome = &ReviewOutcome{
			Attempt:           st.AttemptCount,
			RemainingAttempts: st.RemainingAttempts,
		}
		if st.RemainingAttempts == 0 {
			outcome.TaskFailed = true
		} else {
			outcome.RetryContext = &RetryContext{
				TaskID:      taskID,
				Attempt:     st.AttemptCount,
				Issues:      issues,
				MaxAttempts: MaxAttempts,
				NextAction:  "spawn_retry",
			}
		}
	default:
		t.mu.Unlock()
		return nil, fmt.Errorf("unknown review status %q", status)
	}
	t.snapshot()
	t.mu.Unlock()

	data := map[string]interface{}{
		"task_id":            taskID,
		"status":             status,
		"attempt":            outcome.Attempt,
		"remaining_attempts": outcome.RemainingAttempts,
	}
	if len(issues) > 0 {
		data["issues"] = issues
	}
	if outcome.TaskFailed {
		data["task_failed"] = true
	}
	if _, err := t.store.Append(ctx, projectKey, models.EventReviewFeedback, data); err != nil {
		return nil, fmt.Errorf("failed to record review feedback: %w", err)
	}

	t.logger.Info("review submitted",
		"project", projectKey, "task", taskID, "status", status,
		"attempt", outcome.Attempt, "task_failed", outcome.TaskFailed)
	return outcome, nil
}

// Forget drops the tracked state for a task once it reaches a terminal
// state.
func (t *ReviewTracker) Forget(taskID string) {
	t.mu.Lock()
	delete(t.tasks, taskID)
	t.snapshot()
	t.mu.Unlock()
}
