package swarm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
)

// subtaskDeferredTTL bounds how long a coordinator waits on a subtask.
const subtaskDeferredTTL = 2 * time.Hour

// coordinatorAgent is the conventional recipient of worker notifications.
const coordinatorAgent = "coordinator"

// Runner orchestrates the subtask lifecycle end to end: spawn, reserve,
// verify, review, complete. One Runner serves the whole process.
type Runner struct {
	beads        *services.BeadService
	reservations *services.ReservationService
	deferreds    *services.DeferredService
	messages     *services.MessageService
	store        *logstore.Store
	tracker      *ReviewTracker
	verifier     Verifier
	logger       *slog.Logger
}

// NewRunner wires the lifecycle runner over the services.
func NewRunner(
	beads *services.BeadService,
	reservations *services.ReservationService,
	deferreds *services.DeferredService,
	messages *services.MessageService,
	store *logstore.Store,
	tracker *ReviewTracker,
	verifier Verifier,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		beads:        beads,
		reservations: reservations,
		deferreds:    deferreds,
		messages:     messages,
		store:        store,
		tracker:      tracker,
		verifier:     verifier,
		logger:       logger.With("component", "runner"),
	}
}

// SpawnRequest describes one subtask to hand to a fresh worker.
type SpawnRequest struct {
	ProjectKey  string   `json:"project_key"`
	ParentID    string   `json:"parent_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority"`
	Agent       string   `json:"agent"`
	Files       []string `json:"files,omitempty"`

	// Retry replays an earlier spawn with review issues appended. The
	// bead already exists; no new cell is created.
	Retry *RetryContext `json:"retry,omitempty"`
}

// SpawnResult is what the coordinator hands to the worker process.
type SpawnResult struct {
	BeadID      string `json:"bead_id"`
	Prompt      string `json:"prompt"`
	DeferredURL string `json:"deferred_url"`
	Attempt     int    `json:"attempt"`
}

// Spawn creates the subtask cell (unless retrying), a deferred for its
// outcome, and the worker prompt.
func (r *Runner) Spawn(ctx context.Context, req SpawnRequest) (*SpawnResult, error) {
	var (
		beadID  string
		attempt int
	)
	if req.Retry != nil {
		if req.Retry.Attempt > MaxAttempts {
			return nil, fmt.Errorf("retry attempt %d exceeds maximum of %d", req.Retry.Attempt, MaxAttempts)
		}
		beadID = req.Retry.TaskID
		attempt = req.Retry.Attempt
		if _, err := r.beads.Get(ctx, req.ProjectKey, beadID); err != nil {
			return nil, err
		}
	} else {
		b, err := r.beads.Create(ctx, models.CreateBeadRequest{
			ProjectKey:  req.ProjectKey,
			Type:        "task",
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			ParentID:    req.ParentID,
			Assignee:    req.Agent,
		})
		if err != nil {
			return nil, err
		}
		beadID = b.ID
	}

	url, err := r.deferreds.Create(ctx, subtaskDeferredTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create subtask deferred: %w", err)
	}

	result := &SpawnResult{
		BeadID:      beadID,
		Prompt:      r.buildPrompt(req, beadID),
		DeferredURL: url,
		Attempt:     attempt,
	}
	r.logger.Info("subtask spawned",
		"project", req.ProjectKey, "bead", beadID, "agent", req.Agent, "attempt", attempt)
	return result, nil
}

// buildPrompt assembles the worker prompt; retries replay the original
// task with the review issues appended.
func (r *Runner) buildPrompt(req SpawnRequest, beadID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task %s: %s\n", beadID, req.Title)
	if req.Description != "" {
		b.WriteString("\n")
		b.WriteString(req.Description)
		b.WriteString("\n")
	}
	if len(req.Files) > 0 {
		b.WriteString("\nFiles in scope:\n")
		for _, f := range req.Files {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}
	if req.Retry != nil && len(req.Retry.Issues) > 0 {
		fmt.Fprintf(&b, "\nReview feedback from attempt %d (address every item):\n", req.Retry.Attempt)
		for _, issue := range req.Retry.Issues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
	}
	b.WriteString("\nReserve your files before editing and release them when done.\n")
	b.WriteString("If blocked, notify the coordinator instead of retrying privileged operations.\n")
	return b.String()
}

// Begin moves a spawned subtask into work: reserve the files, then mark the
// cell in progress. All-conflict grants leave the task blocked.
func (r *Runner) Begin(ctx context.Context, projectKey, agent, beadID string, files []string) (*models.ReserveResult, error) {
	res, err := r.reservations.Reserve(ctx, models.ReserveRequest{
		ProjectKey: projectKey,
		Agent:      agent,
		Paths:      files,
		Exclusive:  true,
		Reason:     "subtask " + beadID,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Granted) == 0 && len(res.Conflicts) > 0 {
		if err := r.ReportBlocked(ctx, projectKey, agent, beadID,
			fmt.Sprintf("all %d requested paths held by other agents", len(res.Conflicts))); err != nil {
			return res, err
		}
		return res, nil
	}
	if err := r.beads.StartWork(ctx, projectKey, beadID, agent); err != nil {
		return res, err
	}
	return res, nil
}

// SubmitReview records coordinator feedback. Approvals are additionally
// sent as a message for the audit trail; needs_changes produces only a
// retry context since the reviewed worker is already gone.
func (r *Runner) SubmitReview(ctx context.Context, projectKey, taskID, status string, issues []string) (*ReviewOutcome, error) {
	outcome, err := r.tracker.SubmitReview(ctx, projectKey, taskID, status, issues)
	if err != nil {
		return nil, err
	}

	if outcome.Approved {
		b, err := r.beads.Get(ctx, projectKey, taskID)
		if err != nil {
			return nil, err
		}
		recipient := b.Assignee
		if recipient == "" {
			recipient = coordinatorAgent
		}
		if _, err := r.messages.Send(ctx, models.SendMessageRequest{
			ProjectKey: projectKey,
			FromAgent:  coordinatorAgent,
			To:         []string{recipient},
			Subject:    fmt.Sprintf("Review approved: %s", taskID),
			Body:       fmt.Sprintf("Task %s passed review. Proceed to complete.", taskID),
		}); err != nil {
			return nil, fmt.Errorf("failed to send approval message: %w", err)
		}
	}
	if outcome.TaskFailed {
		if err := r.failTask(ctx, projectKey, taskID, issues); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}

// failTask records the terminal failure of a subtask whose review attempts
// are exhausted.
func (r *Runner) failTask(ctx context.Context, projectKey, taskID string, issues []string) error {
	if _, err := r.reservations.Release(ctx, models.ReleaseRequest{
		ProjectKey: projectKey,
		Agent:      r.assigneeOf(ctx, projectKey, taskID),
	}); err != nil {
		return err
	}
	if _, err := r.store.Append(ctx, projectKey, models.EventSubtaskOutcome, map[string]interface{}{
		"bead_id": taskID,
		"success": false,
		"issues":  issues,
	}); err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	r.tracker.Forget(taskID)
	return nil
}

func (r *Runner) assigneeOf(ctx context.Context, projectKey, taskID string) string {
	b, err := r.beads.Get(ctx, projectKey, taskID)
	if err != nil || b.Assignee == "" {
		return coordinatorAgent
	}
	return b.Assignee
}

// CompleteRequest finishes an approved subtask.
type CompleteRequest struct {
	ProjectKey  string   `json:"project_key"`
	Agent       string   `json:"agent"`
	BeadID      string   `json:"bead_id"`
	DeferredURL string   `json:"deferred_url,omitempty"`
	Files       []string `json:"files,omitempty"`
	StartedAtMs int64    `json:"started_at_ms"`
}

// Complete runs the final gate: verification must pass and the review must
// be approved. On success it releases the worker's reservations, closes the
// cell, resolves the subtask deferred, and records the outcome.
func (r *Runner) Complete(ctx context.Context, req CompleteRequest) error {
	verdict, err := r.verifier.Verify(ctx, req.Files)
	if err != nil {
		return fmt.Errorf("verification failed to run: %w", err)
	}
	if !verdict.Passed {
		return fmt.Errorf("verification failed: %s", strings.Join(verdict.Blockers, "; "))
	}
	if !r.tracker.IsApproved(req.BeadID) {
		return services.NewGuardError("review_gate",
			fmt.Sprintf("task %s is not approved; completion requires review approval", req.BeadID))
	}

	if _, err := r.reservations.Release(ctx, models.ReleaseRequest{
		ProjectKey: req.ProjectKey,
		Agent:      req.Agent,
	}); err != nil {
		return err
	}
	if err := r.beads.Close(ctx, req.ProjectKey, req.BeadID, "completed"); err != nil {
		return err
	}

	duration := int64(0)
	if req.StartedAtMs > 0 {
		duration = time.Now().UnixMilli() - req.StartedAtMs
		if duration < 0 {
			duration = 0
		}
	}
	if req.DeferredURL != "" {
		if err := r.deferreds.Resolve(ctx, req.DeferredURL, map[string]interface{}{
			"bead_id":     req.BeadID,
			"success":     true,
			"duration_ms": duration,
		}, ""); err != nil {
			return err
		}
	}
	if _, err := r.store.Append(ctx, req.ProjectKey, models.EventSubtaskOutcome, map[string]interface{}{
		"bead_id":       req.BeadID,
		"success":       true,
		"duration_ms":   duration,
		"files_touched": req.Files,
	}); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	r.tracker.Forget(req.BeadID)
	r.logger.Info("subtask completed",
		"project", req.ProjectKey, "bead", req.BeadID, "agent", req.Agent, "duration_ms", duration)
	return nil
}

// ReportBlocked marks the cell blocked and notifies the coordinator.
func (r *Runner) ReportBlocked(ctx context.Context, projectKey, agent, beadID, reason string) error {
	if err := r.beads.SetStatus(ctx, projectKey, beadID, "blocked"); err != nil {
		return err
	}
	_, err := r.messages.Send(ctx, models.SendMessageRequest{
		ProjectKey: projectKey,
		FromAgent:  agent,
		To:         []string{coordinatorAgent},
		Subject:    fmt.Sprintf("Blocked on %s", beadID),
		Body:       reason,
		Importance: models.ImportanceHigh,
	})
	if err != nil {
		return fmt.Errorf("failed to notify coordinator: %w", err)
	}
	return nil
}
