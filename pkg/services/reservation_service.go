package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/reservation"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// defaultReservationTTL bounds how long an unreleased reservation stays
// active. Agents that crash without releasing lose their holds after this.
const defaultReservationTTL = 60 * time.Minute

// CoordinatorChecker reports whether a session is the coordinator for a
// project. Implemented by ContextService.
type CoordinatorChecker interface {
	IsCoordinator(ctx context.Context, projectKey, sessionID string) (bool, error)
}

// ReservationService implements advisory file-path locking with glob
// overlap detection.
type ReservationService struct {
	client  *ent.Client
	store   *logstore.Store
	coord   CoordinatorChecker
	logger  *slog.Logger
	nowFunc func() time.Time

	// grantHook runs between the conflict scan and the grant batch. Test
	// seam for exercising the concurrent re-check.
	grantHook func()
}

// NewReservationService creates a new reservation service.
func NewReservationService(client *ent.Client, store *logstore.Store, coord CoordinatorChecker, logger *slog.Logger) *ReservationService {
	return &ReservationService{
		client:  client,
		store:   store,
		coord:   coord,
		logger:  logger.With("service", "reservation"),
		nowFunc: time.Now,
	}
}

// Reserve requests ownership of a set of paths. Conflicts are collected for
// every requested path rather than aborting on the first; the
// non-conflicting subset is granted in one transaction. A pre-commit
// re-check detects reservations that raced in concurrently and rolls the
// entire grant batch back to conflicts.
func (s *ReservationService) Reserve(ctx context.Context, req models.ReserveRequest) (*models.ReserveResult, error) {
	if req.ProjectKey == "" {
		return nil, NewValidationError("project_key", "project_key is required")
	}
	if req.Agent == "" {
		return nil, NewValidationError("agent", "agent is required")
	}
	if len(req.Paths) == 0 {
		return nil, NewValidationError("paths", "at least one path is required")
	}
	for _, p := range req.Paths {
		if p == "" {
			return nil, NewValidationError("paths", "paths must be non-empty")
		}
	}
	ttl := req.TTL
	if ttl <= 0 {
		ttl = defaultReservationTTL
	}

	active, err := s.activeReservations(ctx, req.ProjectKey)
	if err != nil {
		return nil, err
	}

	result := &models.ReserveResult{
		Granted:   []models.ReservationGrant{},
		Conflicts: []models.ReservationConflict{},
	}

	var grantPaths []string
	for _, path := range req.Paths {
		conflicted := false
		for _, r := range active {
			if r.AgentName == req.Agent {
				continue
			}
			if !r.Exclusive && !req.Exclusive {
				continue
			}
			if PathsOverlap(path, r.PathPattern) {
				result.Conflicts = append(result.Conflicts, models.ReservationConflict{
					Path:        path,
					HolderAgent: r.AgentName,
					HolderID:    r.ID,
				})
				conflicted = true
			}
		}
		if !conflicted {
			grantPaths = append(grantPaths, path)
		}
	}

	lockHolderID := uuid.New().String()
	inputs := make([]logstore.BatchInput, 0, len(grantPaths))
	for _, path := range grantPaths {
		inputs = append(inputs, logstore.BatchInput{
			Type: models.EventReservationCreated,
			Data: map[string]interface{}{
				"agent":          req.Agent,
				"path":           path,
				"exclusive":      req.Exclusive,
				"reason":         req.Reason,
				"lock_holder_id": lockHolderID,
				"ttl_ms":         ttl.Milliseconds(),
			},
		})
	}

	if s.grantHook != nil {
		s.grantHook()
	}

	// Optimistic re-check inside the grant transaction: a concurrent Reserve
	// may have committed an overlapping row between our read and our writes.
	// The older row wins; losing any path rolls the entire batch back.
	evts, err := s.store.AppendBatch(ctx, req.ProjectKey, inputs, func(ctx context.Context, evts []models.Event) error {
		committed, err := s.queryActive(ctx, req.ProjectKey)
		if err != nil {
			return err
		}
		var contested []models.ReservationConflict
		for i, evt := range evts {
			path := grantPaths[i]
			id, _ := evt.Data["reservation_id"].(int)
			for _, r := range committed {
				if r.AgentName == req.Agent || r.ID >= id {
					continue
				}
				if !r.Exclusive && !req.Exclusive {
					continue
				}
				if PathsOverlap(path, r.PathPattern) {
					contested = append(contested, models.ReservationConflict{
						Path:        path,
						HolderAgent: r.AgentName,
						HolderID:    r.ID,
					})
					break
				}
			}
		}
		if len(contested) > 0 {
			return &raceLossError{contested: contested}
		}
		return nil
	})
	var loss *raceLossError
	switch {
	case err == nil:
		for i, evt := range evts {
			id, _ := evt.Data["reservation_id"].(int)
			result.Granted = append(result.Granted, models.ReservationGrant{ID: id, Path: grantPaths[i]})
		}
	case errors.As(err, &loss):
		// The whole batch loses together: contested paths report their
		// holders, the rest the reservation that won the race.
		byPath := make(map[string]models.ReservationConflict, len(loss.contested))
		for _, c := range loss.contested {
			byPath[c.Path] = c
		}
		for _, path := range grantPaths {
			if c, ok := byPath[path]; ok {
				result.Conflicts = append(result.Conflicts, c)
				continue
			}
			result.Conflicts = append(result.Conflicts, models.ReservationConflict{
				Path:        path,
				HolderAgent: loss.contested[0].HolderAgent,
				HolderID:    loss.contested[0].HolderID,
			})
		}
	default:
		return nil, fmt.Errorf("failed to create reservations: %w", err)
	}

	s.logger.Info("reserve",
		"project", req.ProjectKey,
		"agent", req.Agent,
		"granted", len(result.Granted),
		"conflicts", len(result.Conflicts))
	return result, nil
}

// Release releases reservations held by the calling agent. With neither
// Paths nor IDs set, everything the agent holds is released. Releasing an
// already-released or unknown reservation is a no-op.
func (s *ReservationService) Release(ctx context.Context, req models.ReleaseRequest) (int, error) {
	if req.ProjectKey == "" {
		return 0, NewValidationError("project_key", "project_key is required")
	}
	if req.Agent == "" {
		return 0, NewValidationError("agent", "agent is required")
	}

	active, err := s.activeReservations(ctx, req.ProjectKey)
	if err != nil {
		return 0, err
	}

	var ids []int
	for _, r := range active {
		if r.AgentName != req.Agent {
			continue
		}
		switch {
		case len(req.IDs) > 0:
			for _, id := range req.IDs {
				if r.ID == id {
					ids = append(ids, r.ID)
				}
			}
		case len(req.Paths) > 0:
			for _, p := range req.Paths {
				if r.PathPattern == p {
					ids = append(ids, r.ID)
				}
			}
		default:
			ids = append(ids, r.ID)
		}
	}

	if len(ids) == 0 {
		return 0, nil
	}
	if _, err := s.store.Append(ctx, req.ProjectKey, models.EventReservationReleased, map[string]interface{}{
		"reservation_ids": ids,
		"reason":          "released",
	}); err != nil {
		return 0, fmt.Errorf("failed to release reservations: %w", err)
	}
	return len(ids), nil
}

// ReleaseAllForProject releases every active reservation in the project.
// Coordinator-only.
func (s *ReservationService) ReleaseAllForProject(ctx context.Context, projectKey, actorSession string) error {
	if err := s.requireCoordinator(ctx, projectKey, actorSession); err != nil {
		return err
	}
	active, err := s.activeReservations(ctx, projectKey)
	if err != nil {
		return err
	}
	if ids := reservationIDs(active); len(ids) > 0 {
		if _, err := s.store.Append(ctx, projectKey, models.EventReservationReleased, map[string]interface{}{
			"reservation_ids": ids,
			"reason":          "released_all",
		}); err != nil {
			return fmt.Errorf("failed to release all reservations: %w", err)
		}
	}
	_, err = s.store.Append(ctx, projectKey, models.EventReservationReleasedAll, map[string]interface{}{
		"actor":  actorSession,
		"reason": "released_all",
	})
	if err != nil {
		return fmt.Errorf("failed to release all reservations: %w", err)
	}
	return nil
}

// ReleaseAllForAgent releases every active reservation held by the target
// agent. Coordinator-only.
func (s *ReservationService) ReleaseAllForAgent(ctx context.Context, projectKey, actorSession, targetAgent string) error {
	if targetAgent == "" {
		return NewValidationError("agent", "target agent is required")
	}
	if err := s.requireCoordinator(ctx, projectKey, actorSession); err != nil {
		return err
	}
	active, err := s.activeReservations(ctx, projectKey)
	if err != nil {
		return err
	}
	var ids []int
	for _, r := range active {
		if r.AgentName == targetAgent {
			ids = append(ids, r.ID)
		}
	}
	if len(ids) > 0 {
		if _, err := s.store.Append(ctx, projectKey, models.EventReservationReleased, map[string]interface{}{
			"reservation_ids": ids,
			"reason":          "released_by_coordinator",
		}); err != nil {
			return fmt.Errorf("failed to release agent reservations: %w", err)
		}
	}
	_, err = s.store.Append(ctx, projectKey, models.EventReservationReleasedForAgent, map[string]interface{}{
		"actor":  actorSession,
		"agent":  targetAgent,
		"reason": "released_by_coordinator",
	})
	if err != nil {
		return fmt.Errorf("failed to release agent reservations: %w", err)
	}
	return nil
}

// ReportConflict records an advisory file_conflict event. The holder keeps
// its reservation; the event only informs the coordinator.
func (s *ReservationService) ReportConflict(ctx context.Context, projectKey, agent, path, holder, resolution string) error {
	switch resolution {
	case models.ConflictResolutionWait, models.ConflictResolutionForce, models.ConflictResolutionAbort:
	default:
		return NewValidationError("resolution", fmt.Sprintf("unknown resolution %q", resolution))
	}
	_, err := s.store.Append(ctx, projectKey, models.EventFileConflict, map[string]interface{}{
		"agent":      agent,
		"path":       path,
		"holder":     holder,
		"resolution": resolution,
	})
	if err != nil {
		return fmt.Errorf("failed to report conflict: %w", err)
	}
	return nil
}

// List returns the active reservations for a project, expired rows
// excluded.
func (s *ReservationService) List(ctx context.Context, projectKey string) ([]*ent.Reservation, error) {
	return s.activeReservations(ctx, projectKey)
}

func reservationIDs(rows []*ent.Reservation) []int {
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func (s *ReservationService) requireCoordinator(ctx context.Context, projectKey, actorSession string) error {
	ok, err := s.coord.IsCoordinator(ctx, projectKey, actorSession)
	if err != nil {
		return fmt.Errorf("failed to check coordinator: %w", err)
	}
	if !ok {
		return NewGuardError("coordinator_only", "coordinator-only")
	}
	return nil
}

// raceLossError aborts the grant transaction when the re-check finds an
// older committed overlap.
type raceLossError struct {
	contested []models.ReservationConflict
}

func (e *raceLossError) Error() string {
	return fmt.Sprintf("lost reservation race on %d path(s)", len(e.contested))
}

// queryActive returns unreleased, unexpired reservations without reclaiming
// expired rows. Used inside the grant transaction, where appending a
// release event would self-deadlock on the project's sequence row.
func (s *ReservationService) queryActive(ctx context.Context, projectKey string) ([]*ent.Reservation, error) {
	now := s.nowFunc()
	rows, err := s.client.Reservation.Query().
		Where(reservation.ProjectKeyEQ(projectKey), reservation.ReleasedAtIsNil()).
		Order(ent.Asc(reservation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	active := make([]*ent.Reservation, 0, len(rows))
	for _, r := range rows {
		if r.ExpiresAt != nil && !r.ExpiresAt.After(now) {
			continue
		}
		active = append(active, r)
	}
	return active, nil
}

// activeReservations returns unreleased, unexpired reservations. Expired
// rows found along the way are reclaimed lazily by appending a
// reservation_released event with reason "expired".
func (s *ReservationService) activeReservations(ctx context.Context, projectKey string) ([]*ent.Reservation, error) {
	now := s.nowFunc()
	rows, err := s.client.Reservation.Query().
		Where(reservation.ProjectKeyEQ(projectKey), reservation.ReleasedAtIsNil()).
		Order(ent.Asc(reservation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}

	var active []*ent.Reservation
	var expired []int
	for _, r := range rows {
		if r.ExpiresAt != nil && !r.ExpiresAt.After(now) {
			expired = append(expired, r.ID)
			continue
		}
		active = append(active, r)
	}
	if len(expired) > 0 {
		if _, err := s.store.Append(ctx, projectKey, models.EventReservationReleased, map[string]interface{}{
			"reservation_ids": expired,
			"reason":          "expired",
		}); err != nil {
			return nil, fmt.Errorf("failed to reclaim expired reservations: %w", err)
		}
		s.logger.Info("reclaimed expired reservations", "project", projectKey, "count", len(expired))
	}
	return active, nil
}

// PathsOverlap reports whether two path patterns can refer to the same
// file. Either side may be a literal path or a doublestar glob; a directory
// prefix relationship also counts as overlap.
func PathsOverlap(a, b string) bool {
	a = strings.TrimPrefix(a, "./")
	b = strings.TrimPrefix(b, "./")
	if a == b {
		return true
	}

	aGlob := isGlob(a)
	bGlob := isGlob(b)
	switch {
	case aGlob && !bGlob:
		return globMatches(a, b)
	case !aGlob && bGlob:
		return globMatches(b, a)
	case aGlob && bGlob:
		// Two globs overlap when either pattern accepts the other's literal
		// prefix subtree. Conservative: compare the static prefixes.
		return prefixOverlap(staticPrefix(a), staticPrefix(b))
	default:
		return prefixOverlap(a, b)
	}
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// globMatches matches a literal path against a glob, treating a directory
// pattern like "src/**" as covering the directory itself.
func globMatches(pattern, path string) bool {
	if ok, err := doublestar.Match(pattern, path); err == nil && ok {
		return true
	}
	// "src/**" covers "src" and everything under it.
	if base, found := strings.CutSuffix(pattern, "/**"); found {
		if path == base || strings.HasPrefix(path, base+"/") {
			return true
		}
	}
	return false
}

// staticPrefix returns the longest literal directory prefix of a glob.
func staticPrefix(pattern string) string {
	parts := strings.Split(pattern, "/")
	var out []string
	for _, part := range parts {
		if isGlob(part) {
			break
		}
		out = append(out, part)
	}
	return strings.Join(out, "/")
}

// prefixOverlap reports whether one literal path contains the other.
func prefixOverlap(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	return a == b || strings.HasPrefix(a, b+"/") || strings.HasPrefix(b, a+"/")
}
