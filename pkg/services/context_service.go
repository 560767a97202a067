package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/swarmcontext"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// ContextService owns per-session coordination state and the coordinator
// guardrail. The coordinator flag is set exactly once per session through
// setup; it is never reachable from worker-callable operations.
type ContextService struct {
	client *ent.Client
	store  *logstore.Store
	logger *slog.Logger
}

// NewContextService creates a new context service.
func NewContextService(client *ent.Client, store *logstore.Store, logger *slog.Logger) *ContextService {
	return &ContextService{
		client: client,
		store:  store,
		logger: logger.With("service", "context"),
	}
}

// RegisterSession records a session and its role. Re-registering an
// existing session is a no-op: the coordinator flag is write-once.
func (s *ContextService) RegisterSession(ctx context.Context, projectKey, sessionID string, isCoordinator bool) error {
	if sessionID == "" {
		return NewValidationError("session_id", "session_id is required")
	}
	if projectKey == "" {
		return NewValidationError("project_key", "project_key is required")
	}

	exists, err := s.client.SwarmContext.Query().
		Where(swarmcontext.SessionIDEQ(sessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if exists {
		return nil
	}

	err = s.client.SwarmContext.Create().
		SetSessionID(sessionID).
		SetProjectKey(projectKey).
		SetIsCoordinator(isCoordinator).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to register session: %w", err)
	}
	s.logger.Info("session registered",
		"project", projectKey, "session", sessionID, "coordinator", isCoordinator)
	return nil
}

// IsCoordinator reports whether a session holds the coordinator flag for a
// project.
func (s *ContextService) IsCoordinator(ctx context.Context, projectKey, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	return s.client.SwarmContext.Query().
		Where(
			swarmcontext.SessionIDEQ(sessionID),
			swarmcontext.ProjectKeyEQ(projectKey),
			swarmcontext.IsCoordinatorEQ(true),
		).
		Exist(ctx)
}

// RecordDecision logs a coordinator decision for the audit trail.
func (s *ContextService) RecordDecision(ctx context.Context, projectKey, sessionID, decision string, detail map[string]interface{}) error {
	return s.recordCoordinatorEvent(ctx, projectKey, sessionID, models.EventCoordinatorDecision, decision, detail)
}

// RecordOutcome logs the final outcome of a coordinated task.
func (s *ContextService) RecordOutcome(ctx context.Context, projectKey, sessionID, outcome string, detail map[string]interface{}) error {
	return s.recordCoordinatorEvent(ctx, projectKey, sessionID, models.EventCoordinatorOutcome, outcome, detail)
}

// RecordCompaction logs a context-compaction checkpoint.
func (s *ContextService) RecordCompaction(ctx context.Context, projectKey, sessionID, summary string, detail map[string]interface{}) error {
	return s.recordCoordinatorEvent(ctx, projectKey, sessionID, models.EventCoordinatorCompaction, summary, detail)
}

// RecordViolation logs a guardrail rejection. Not coordinator-gated: the
// violation is recorded about the offending session, by the guard itself.
func (s *ContextService) RecordViolation(ctx context.Context, projectKey, sessionID, operation string) error {
	_, err := s.store.Append(ctx, projectKey, models.EventCoordinatorViolation, map[string]interface{}{
		"session_id": sessionID,
		"operation":  operation,
	})
	if err != nil {
		return fmt.Errorf("failed to record violation: %w", err)
	}
	return nil
}

func (s *ContextService) recordCoordinatorEvent(ctx context.Context, projectKey, sessionID, eventType, summary string, detail map[string]interface{}) error {
	ok, err := s.IsCoordinator(ctx, projectKey, sessionID)
	if err != nil {
		return fmt.Errorf("failed to check coordinator: %w", err)
	}
	if !ok {
		if vErr := s.RecordViolation(ctx, projectKey, sessionID, eventType); vErr != nil {
			s.logger.Warn("failed to record violation", "error", vErr)
		}
		return NewGuardError("coordinator_only", "coordinator-only")
	}

	data := map[string]interface{}{
		"session_id": sessionID,
		"summary":    summary,
	}
	for k, v := range detail {
		data[k] = v
	}
	if _, err := s.store.Append(ctx, projectKey, eventType, data); err != nil {
		return fmt.Errorf("failed to record %s: %w", eventType, err)
	}
	return nil
}
