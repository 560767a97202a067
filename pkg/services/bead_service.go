package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/bead"
	"github.com/opencoord/hive/ent/predicate"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// maxTitleLen caps cell titles at the projection column width.
const maxTitleLen = 500

// BeadService manages the work-unit hierarchy: roots, subtasks, epics,
// dependencies, labels, and comments. All writes go through the log store;
// reads come from the beads projection with tombstones excluded by default.
type BeadService struct {
	client *ent.Client
	store  *logstore.Store
	logger *slog.Logger
}

// NewBeadService creates a new bead service.
func NewBeadService(client *ent.Client, store *logstore.Store, logger *slog.Logger) *BeadService {
	return &BeadService{
		client: client,
		store:  store,
		logger: logger.With("service", "bead"),
	}
}

// Create records a new cell. Root ids are "{project}-{hash}"; subtask ids
// are "{parent}.{index}" with index assigned from the parent's child count.
// Creating under an epic also records cell_epic_child_added.
func (s *BeadService) Create(ctx context.Context, req models.CreateBeadRequest) (*ent.Bead, error) {
	if req.ProjectKey == "" {
		return nil, NewValidationError("project_key", "project_key is required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if len(req.Title) > maxTitleLen {
		return nil, NewValidationError("title", fmt.Sprintf("title exceeds %d characters", maxTitleLen))
	}
	if req.Priority < 0 || req.Priority > 4 {
		return nil, NewValidationError("priority", "priority must be between 0 and 4")
	}
	beadType := req.Type
	if beadType == "" {
		beadType = "task"
	}
	switch beadType {
	case "bug", "feature", "task", "epic", "chore":
	default:
		return nil, NewValidationError("type", fmt.Sprintf("unknown type %q", beadType))
	}

	var (
		beadID     string
		parentType string
	)
	if req.ParentID != "" {
		parent, err := s.Get(ctx, req.ProjectKey, req.ParentID)
		if err != nil {
			return nil, err
		}
		parentType = string(parent.BeadType)
		n, err := s.client.Bead.Query().
			Where(bead.ProjectKeyEQ(req.ProjectKey), bead.ParentIDEQ(req.ParentID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count children: %w", err)
		}
		beadID = fmt.Sprintf("%s.%d", req.ParentID, n+1)
	} else {
		beadID = fmt.Sprintf("%s-%s", req.ProjectKey, uuid.New().String()[:8])
	}

	_, err := s.store.Append(ctx, req.ProjectKey, models.EventCellCreated, map[string]interface{}{
		"bead_id":     beadID,
		"type":        beadType,
		"title":       req.Title,
		"description": req.Description,
		"priority":    req.Priority,
		"parent_id":   req.ParentID,
		"assignee":    req.Assignee,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cell: %w", err)
	}

	if parentType == "epic" {
		if _, err := s.store.Append(ctx, req.ProjectKey, models.EventCellEpicChildAdded, map[string]interface{}{
			"epic_id":  req.ParentID,
			"child_id": beadID,
		}); err != nil {
			return nil, fmt.Errorf("failed to record epic child: %w", err)
		}
	}

	s.logger.Info("cell created", "project", req.ProjectKey, "bead", beadID, "type", beadType)
	return s.Get(ctx, req.ProjectKey, beadID)
}

// Get returns one cell. Tombstoned cells are not found.
func (s *BeadService) Get(ctx context.Context, projectKey, beadID string) (*ent.Bead, error) {
	b, err := s.client.Bead.Query().
		Where(bead.IDEQ(beadID), bead.ProjectKeyEQ(projectKey), bead.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("cell %s: %w", beadID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cell: %w", err)
	}
	return b, nil
}

// List returns a project's cells, tombstones excluded, by priority then age.
func (s *BeadService) List(ctx context.Context, projectKey string, status string) ([]*ent.Bead, error) {
	preds := []predicate.Bead{
		bead.ProjectKeyEQ(projectKey),
		bead.DeletedAtIsNil(),
	}
	if status != "" {
		preds = append(preds, bead.StatusEQ(bead.Status(status)))
	}
	beads, err := s.client.Bead.Query().
		Where(preds...).
		Order(ent.Asc(bead.FieldPriority), ent.Asc(bead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cells: %w", err)
	}
	return beads, nil
}

// Tree returns the cell hierarchy as a forest of root nodes.
func (s *BeadService) Tree(ctx context.Context, projectKey string) ([]*models.CellNode, error) {
	beads, err := s.List(ctx, projectKey, "")
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*models.CellNode, len(beads))
	for _, b := range beads {
		nodes[b.ID] = &models.CellNode{
			ID:       b.ID,
			Type:     string(b.BeadType),
			Status:   string(b.Status),
			Title:    b.Title,
			Priority: b.Priority,
			Assignee: b.Assignee,
		}
	}

	var roots []*models.CellNode
	for _, b := range beads {
		node := nodes[b.ID]
		if b.ParentID != "" {
			if parent, ok := nodes[b.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	for _, n := range nodes {
		sortChildren(n)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].ID < roots[j].ID })
	return roots, nil
}

func sortChildren(n *models.CellNode) {
	sort.Slice(n.Children, func(i, j int) bool { return n.Children[i].ID < n.Children[j].ID })
}

// Update changes title, description, priority, or assignee.
func (s *BeadService) Update(ctx context.Context, projectKey, beadID string, changes map[string]interface{}) (*ent.Bead, error) {
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return nil, err
	}
	data := map[string]interface{}{"bead_id": beadID}
	for key, v := range changes {
		switch key {
		case "title":
			t, _ := v.(string)
			if t == "" {
				return nil, NewValidationError("title", "title is required")
			}
			if len(t) > maxTitleLen {
				return nil, NewValidationError("title", fmt.Sprintf("title exceeds %d characters", maxTitleLen))
			}
			data["title"] = t
		case "description", "assignee":
			data[key] = v
		case "priority":
			p, ok := toInt(v)
			if !ok || p < 0 || p > 4 {
				return nil, NewValidationError("priority", "priority must be between 0 and 4")
			}
			data["priority"] = p
		default:
			return nil, NewValidationError(key, "unknown field")
		}
	}
	if len(data) == 1 {
		return nil, NewValidationError("changes", "no changes given")
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellUpdated, data); err != nil {
		return nil, fmt.Errorf("failed to update cell: %w", err)
	}
	return s.Get(ctx, projectKey, beadID)
}

// SetStatus moves a cell between open, in_progress, and blocked. Closing
// goes through Close, which enforces the children invariant.
func (s *BeadService) SetStatus(ctx context.Context, projectKey, beadID, status string) error {
	switch status {
	case "open", "in_progress", "blocked":
	case "closed":
		return NewValidationError("status", "use close to close a cell")
	default:
		return NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return err
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellStatusChanged, map[string]interface{}{
		"bead_id": beadID,
		"status":  status,
	}); err != nil {
		return fmt.Errorf("failed to change status: %w", err)
	}
	return nil
}

// Assign sets the assignee.
func (s *BeadService) Assign(ctx context.Context, projectKey, beadID, assignee string) error {
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return err
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellAssigned, map[string]interface{}{
		"bead_id":  beadID,
		"assignee": assignee,
	}); err != nil {
		return fmt.Errorf("failed to assign cell: %w", err)
	}
	return nil
}

// StartWork marks a cell in progress under the given agent.
func (s *BeadService) StartWork(ctx context.Context, projectKey, beadID, agentName string) error {
	if agentName == "" {
		return NewValidationError("agent", "agent is required")
	}
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return err
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellWorkStarted, map[string]interface{}{
		"bead_id": beadID,
		"agent":   agentName,
	}); err != nil {
		return fmt.Errorf("failed to start work: %w", err)
	}
	return nil
}

// Close closes a cell. A cell with open non-tombstoned children cannot
// close. When closing the last child of an epic, the epic's closure
// eligibility is evaluated and recorded once.
func (s *BeadService) Close(ctx context.Context, projectKey, beadID, reason string) error {
	b, err := s.Get(ctx, projectKey, beadID)
	if err != nil {
		return err
	}
	if b.Status == bead.StatusClosed {
		return nil
	}

	openChildren, err := s.client.Bead.Query().
		Where(
			bead.ProjectKeyEQ(projectKey),
			bead.ParentIDEQ(beadID),
			bead.DeletedAtIsNil(),
			bead.StatusNEQ(bead.StatusClosed),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check children: %w", err)
	}
	if openChildren > 0 {
		return NewValidationError("bead_id",
			fmt.Sprintf("cannot close: %d children still open", openChildren))
	}

	if _, err := s.store.Append(ctx, projectKey, models.EventCellClosed, map[string]interface{}{
		"bead_id": beadID,
		"reason":  reason,
	}); err != nil {
		return fmt.Errorf("failed to close cell: %w", err)
	}

	if b.ParentID != "" {
		if err := s.checkEpicClosure(ctx, projectKey, b.ParentID); err != nil {
			return err
		}
	}
	s.logger.Info("cell closed", "project", projectKey, "bead", beadID)
	return nil
}

// Reopen reverses a close. Epic eligibility may be re-emitted after a later
// re-close.
func (s *BeadService) Reopen(ctx context.Context, projectKey, beadID string) error {
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return err
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellReopened, map[string]interface{}{
		"bead_id": beadID,
	}); err != nil {
		return fmt.Errorf("failed to reopen cell: %w", err)
	}
	return nil
}

// Delete tombstones a cell. The row and its history remain; default
// queries exclude it.
func (s *BeadService) Delete(ctx context.Context, projectKey, beadID, reason string) error {
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return err
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellDeleted, map[string]interface{}{
		"bead_id": beadID,
		"reason":  reason,
	}); err != nil {
		return fmt.Errorf("failed to delete cell: %w", err)
	}
	return nil
}

// AddDependency records that one cell blocks on another.
func (s *BeadService) AddDependency(ctx context.Context, projectKey, beadID, dependsOnID, relationship string) error {
	if beadID == dependsOnID {
		return NewValidationError("depends_on_id", "a cell cannot depend on itself")
	}
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return err
	}
	if _, err := s.Get(ctx, projectKey, dependsOnID); err != nil {
		return err
	}
	if relationship == "" {
		relationship = "blocks"
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellDependencyAdded, map[string]interface{}{
		"bead_id":       beadID,
		"depends_on_id": dependsOnID,
		"relationship":  relationship,
	}); err != nil {
		return fmt.Errorf("failed to add dependency: %w", err)
	}
	return nil
}

// RemoveDependency removes a dependency edge. Unknown edges are a no-op.
func (s *BeadService) RemoveDependency(ctx context.Context, projectKey, beadID, dependsOnID, relationship string) error {
	if relationship == "" {
		relationship = "blocks"
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellDependencyRemoved, map[string]interface{}{
		"bead_id":       beadID,
		"depends_on_id": dependsOnID,
		"relationship":  relationship,
	}); err != nil {
		return fmt.Errorf("failed to remove dependency: %w", err)
	}
	return nil
}

// AddLabel attaches a label; duplicates are a no-op.
func (s *BeadService) AddLabel(ctx context.Context, projectKey, beadID, label string) error {
	if label == "" {
		return NewValidationError("label", "label is required")
	}
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return err
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellLabelAdded, map[string]interface{}{
		"bead_id": beadID,
		"label":   label,
	}); err != nil {
		return fmt.Errorf("failed to add label: %w", err)
	}
	return nil
}

// RemoveLabel detaches a label; unknown labels are a no-op.
func (s *BeadService) RemoveLabel(ctx context.Context, projectKey, beadID, label string) error {
	if _, err := s.store.Append(ctx, projectKey, models.EventCellLabelRemoved, map[string]interface{}{
		"bead_id": beadID,
		"label":   label,
	}); err != nil {
		return fmt.Errorf("failed to remove label: %w", err)
	}
	return nil
}

// AddComment appends a comment to a cell.
func (s *BeadService) AddComment(ctx context.Context, projectKey, beadID, author, body string) error {
	if author == "" {
		return NewValidationError("author", "author is required")
	}
	if body == "" {
		return NewValidationError("body", "body is required")
	}
	if _, err := s.Get(ctx, projectKey, beadID); err != nil {
		return err
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellCommentAdded, map[string]interface{}{
		"bead_id": beadID,
		"author":  author,
		"body":    body,
	}); err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

// checkEpicClosure records cell_epic_closure_eligible the first time every
// non-tombstoned child of an epic is closed. Eligibility is advisory:
// closing the epic remains an explicit action.
func (s *BeadService) checkEpicClosure(ctx context.Context, projectKey, epicID string) error {
	epic, err := s.client.Bead.Query().
		Where(bead.IDEQ(epicID), bead.ProjectKeyEQ(projectKey), bead.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to get epic: %w", err)
	}
	if epic.BeadType != bead.BeadTypeEpic || epic.Status == bead.StatusClosed {
		return nil
	}

	children, err := s.client.Bead.Query().
		Where(bead.ProjectKeyEQ(projectKey), bead.ParentIDEQ(epicID), bead.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list children: %w", err)
	}
	if len(children) == 0 {
		return nil
	}
	childIDs := make([]string, 0, len(children))
	var firstStart, lastClose int64
	for _, c := range children {
		if c.Status != bead.StatusClosed {
			return nil
		}
		childIDs = append(childIDs, c.ID)
		start := c.CreatedAt.UnixMilli()
		if firstStart == 0 || start < firstStart {
			firstStart = start
		}
		if c.ClosedAt != nil {
			if end := c.ClosedAt.UnixMilli(); end > lastClose {
				lastClose = end
			}
		}
	}

	// Emit once per eligibility episode: a reopen in between resets it.
	already, err := s.epicEligibilityRecorded(ctx, projectKey, epicID)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	files, err := s.filesTouchedByChildren(ctx, projectKey, childIDs)
	if err != nil {
		return err
	}

	duration := lastClose - firstStart
	if duration < 0 {
		duration = 0
	}
	if _, err := s.store.Append(ctx, projectKey, models.EventCellEpicClosureEligible, map[string]interface{}{
		"epic_id":       epicID,
		"children":      childIDs,
		"duration_ms":   duration,
		"files_touched": files,
	}); err != nil {
		return fmt.Errorf("failed to record epic eligibility: %w", err)
	}
	return nil
}

// epicEligibilityRecorded reports whether an eligibility event exists for
// the epic with no later cell_reopened of one of its children.
func (s *BeadService) epicEligibilityRecorded(ctx context.Context, projectKey, epicID string) (bool, error) {
	events, err := s.store.ReadByType(ctx, projectKey, 0, []string{
		models.EventCellEpicClosureEligible,
		models.EventCellReopened,
	})
	if err != nil {
		return false, fmt.Errorf("failed to read epic history: %w", err)
	}
	recorded := false
	for _, e := range events {
		switch e.Type {
		case models.EventCellEpicClosureEligible:
			if id, _ := e.Data["epic_id"].(string); id == epicID {
				recorded = true
			}
		case models.EventCellReopened:
			if id, _ := e.Data["bead_id"].(string); strings.HasPrefix(id, epicID+".") {
				recorded = false
			}
		}
	}
	return recorded, nil
}

// filesTouchedByChildren unions the files_touched payloads of the
// children's subtask_outcome events.
func (s *BeadService) filesTouchedByChildren(ctx context.Context, projectKey string, childIDs []string) ([]string, error) {
	events, err := s.store.ReadByType(ctx, projectKey, 0, []string{models.EventSubtaskOutcome})
	if err != nil {
		return nil, fmt.Errorf("failed to read outcomes: %w", err)
	}
	members := make(map[string]struct{}, len(childIDs))
	for _, id := range childIDs {
		members[id] = struct{}{}
	}
	set := make(map[string]struct{})
	for _, e := range events {
		id, _ := e.Data["bead_id"].(string)
		if _, ok := members[id]; !ok {
			continue
		}
		if raw, ok := e.Data["files_touched"].([]interface{}); ok {
			for _, f := range raw {
				if p, ok := f.(string); ok {
					set[p] = struct{}{}
				}
			}
		}
	}
	files := make([]string, 0, len(set))
	for f := range set {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
