package logstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/opencoord/hive/pkg/models"
)

// followUp is a synthetic event appended within the same transaction as the
// event whose projection produced it.
type followUp struct {
	eventType string
	data      map[string]interface{}
}

// applyProjection is the single exhaustive match site over event variants.
// Each case updates the derived tables for its variant. Projection writes
// use the event's own timestamp rather than now() so that replaying the log
// into empty tables reproduces the same rows.
//
// Returns whether the event's data was enriched with assigned row ids, plus
// any synthetic follow-up events to append.
func (s *Store) applyProjection(ctx context.Context, tx *sql.Tx, evt *models.Event) (bool, []followUp, error) {
	d := evt.Data
	ts := evt.TsMs

	switch evt.Type {
	case models.EventAgentRegistered:
		// First writer wins on identity fields; later registrations only
		// bump activity.
		_, err := tx.ExecContext(ctx,
			`INSERT INTO agents (project_key, name, program, model, task_description, registered_at, last_active_at)
			 VALUES ($1, $2, $3, $4, $5, to_timestamp($6 / 1000.0), to_timestamp($6 / 1000.0))
			 ON CONFLICT (project_key, name) DO UPDATE SET last_active_at = to_timestamp($6 / 1000.0)`,
			evt.ProjectKey, str(d, "name"), str(d, "program"), str(d, "model"), str(d, "task_description"), ts)
		return false, nil, projErr(evt.Type, err)

	case models.EventMessageSent:
		threadID := str(d, "thread_id")
		var newThread bool
		if threadID != "" {
			var n int
			if err := tx.QueryRowContext(ctx,
				`SELECT count(*) FROM messages WHERE project_key = $1 AND thread_id = $2`,
				evt.ProjectKey, threadID).Scan(&n); err != nil {
				return false, nil, projErr(evt.Type, err)
			}
			newThread = n == 0
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO messages (message_id, project_key, from_agent, subject, body, thread_id, importance, ack_required, created_at)
			 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, to_timestamp($9 / 1000.0))`,
			str(d, "message_id"), evt.ProjectKey, str(d, "from"), str(d, "subject"), str(d, "body"),
			threadID, importanceOrNormal(str(d, "importance")), boolean(d, "ack_required"), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		for _, rcpt := range strSlice(d, "to") {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO message_recipients (message_id, agent_name) VALUES ($1, $2)
				 ON CONFLICT (message_id, agent_name) DO NOTHING`,
				str(d, "message_id"), rcpt); err != nil {
				return false, nil, projErr(evt.Type, err)
			}
		}
		if newThread {
			return false, []followUp{{
				eventType: models.EventThreadCreated,
				data: map[string]interface{}{
					"thread_id":  threadID,
					"message_id": str(d, "message_id"),
					"from":       str(d, "from"),
					"subject":    str(d, "subject"),
				},
			}}, nil
		}
		return false, nil, nil

	case models.EventMessageRead:
		// read_at is write-once.
		_, err := tx.ExecContext(ctx,
			`UPDATE message_recipients
			 SET read_at = COALESCE(read_at, to_timestamp($3 / 1000.0))
			 WHERE message_id = $1 AND agent_name = $2`,
			str(d, "message_id"), str(d, "agent"), ts)
		return false, nil, projErr(evt.Type, err)

	case models.EventMessageAcked:
		_, err := tx.ExecContext(ctx,
			`UPDATE message_recipients
			 SET acked_at = COALESCE(acked_at, to_timestamp($3 / 1000.0)),
			     read_at = COALESCE(read_at, to_timestamp($3 / 1000.0))
			 WHERE message_id = $1 AND agent_name = $2`,
			str(d, "message_id"), str(d, "agent"), ts)
		return false, nil, projErr(evt.Type, err)

	case models.EventThreadCreated, models.EventThreadActivity:
		// Log-only. Thread state is derived from messages.
		return false, nil, nil

	case models.EventReservationCreated:
		// On first application the row id is assigned here and written back
		// into the event so replay inserts the identical row.
		if id, ok := intVal(d, "reservation_id"); ok {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO reservations (id, project_key, agent_name, path_pattern, exclusive, reason, lock_holder_id, created_at, expires_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, to_timestamp($8 / 1000.0), to_timestamp(($8 + $9) / 1000.0))
				 ON CONFLICT (id) DO NOTHING`,
				id, evt.ProjectKey, str(d, "agent"), str(d, "path"), boolean(d, "exclusive"),
				str(d, "reason"), str(d, "lock_holder_id"), ts, int64Val(d, "ttl_ms"))
			return false, nil, projErr(evt.Type, err)
		}
		var id int
		err := tx.QueryRowContext(ctx,
			`INSERT INTO reservations (project_key, agent_name, path_pattern, exclusive, reason, lock_holder_id, created_at, expires_at)
			 VALUES ($1, $2, $3, $4, $5, $6, to_timestamp($7 / 1000.0), to_timestamp(($7 + $8) / 1000.0))
			 RETURNING id`,
			evt.ProjectKey, str(d, "agent"), str(d, "path"), boolean(d, "exclusive"),
			str(d, "reason"), str(d, "lock_holder_id"), ts, int64Val(d, "ttl_ms")).Scan(&id)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		d["reservation_id"] = id
		return true, nil, nil

	case models.EventReservationReleased:
		// released_at is write-once; releasing twice is a no-op.
		ids := intSlice(d, "reservation_ids")
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx,
				`UPDATE reservations
				 SET released_at = to_timestamp($2 / 1000.0), release_reason = $3
				 WHERE id = $1 AND released_at IS NULL`,
				id, ts, str(d, "reason")); err != nil {
				return false, nil, projErr(evt.Type, err)
			}
		}
		return false, nil, nil

	case models.EventReservationReleasedAll:
		_, err := tx.ExecContext(ctx,
			`UPDATE reservations
			 SET released_at = to_timestamp($2 / 1000.0), release_reason = $3
			 WHERE project_key = $1 AND released_at IS NULL`,
			evt.ProjectKey, ts, str(d, "reason"))
		return false, nil, projErr(evt.Type, err)

	case models.EventReservationReleasedForAgent:
		_, err := tx.ExecContext(ctx,
			`UPDATE reservations
			 SET released_at = to_timestamp($3 / 1000.0), release_reason = $4
			 WHERE project_key = $1 AND agent_name = $2 AND released_at IS NULL`,
			evt.ProjectKey, str(d, "agent"), ts, str(d, "reason"))
		return false, nil, projErr(evt.Type, err)

	case models.EventFileConflict:
		// Advisory only. The holder keeps its reservation.
		return false, nil, nil

	case models.EventCellCreated:
		_, err := tx.ExecContext(ctx,
			`INSERT INTO beads (bead_id, project_key, bead_type, status, title, description, priority, parent_id, assignee, created_at, updated_at)
			 VALUES ($1, $2, $3, 'open', $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), to_timestamp($9 / 1000.0), to_timestamp($9 / 1000.0))
			 ON CONFLICT (bead_id) DO NOTHING`,
			str(d, "bead_id"), evt.ProjectKey, typeOrTask(str(d, "type")), str(d, "title"), str(d, "description"),
			intOrDefault(d, "priority", 2), str(d, "parent_id"), str(d, "assignee"), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellUpdated:
		for _, f := range []struct{ key, col string }{
			{"title", "title"}, {"description", "description"}, {"assignee", "assignee"},
		} {
			if v, ok := d[f.key].(string); ok {
				if _, err := tx.ExecContext(ctx,
					fmt.Sprintf(`UPDATE beads SET %s = $2, updated_at = to_timestamp($3 / 1000.0) WHERE bead_id = $1`, f.col),
					str(d, "bead_id"), v, ts); err != nil {
					return false, nil, projErr(evt.Type, err)
				}
			}
		}
		if p, ok := intVal(d, "priority"); ok {
			if _, err := tx.ExecContext(ctx,
				`UPDATE beads SET priority = $2, updated_at = to_timestamp($3 / 1000.0) WHERE bead_id = $1`,
				str(d, "bead_id"), p, ts); err != nil {
				return false, nil, projErr(evt.Type, err)
			}
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellStatusChanged:
		_, err := tx.ExecContext(ctx,
			`UPDATE beads SET status = $2, updated_at = to_timestamp($3 / 1000.0) WHERE bead_id = $1`,
			str(d, "bead_id"), str(d, "status"), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellClosed:
		_, err := tx.ExecContext(ctx,
			`UPDATE beads
			 SET status = 'closed', closed_at = to_timestamp($3 / 1000.0), closed_reason = $2,
			     updated_at = to_timestamp($3 / 1000.0)
			 WHERE bead_id = $1`,
			str(d, "bead_id"), str(d, "reason"), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		if err := s.recomputeBlockedDependents(ctx, tx, str(d, "bead_id"), ts); err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellReopened:
		_, err := tx.ExecContext(ctx,
			`UPDATE beads
			 SET status = 'open', closed_at = NULL, closed_reason = NULL,
			     updated_at = to_timestamp($2 / 1000.0)
			 WHERE bead_id = $1`,
			str(d, "bead_id"), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		if err := s.recomputeBlockedDependents(ctx, tx, str(d, "bead_id"), ts); err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellDeleted:
		// Tombstone, never a hard delete.
		_, err := tx.ExecContext(ctx,
			`UPDATE beads
			 SET deleted_at = to_timestamp($3 / 1000.0), delete_reason = $2,
			     updated_at = to_timestamp($3 / 1000.0)
			 WHERE bead_id = $1`,
			str(d, "bead_id"), str(d, "reason"), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellDependencyAdded:
		_, err := tx.ExecContext(ctx,
			`INSERT INTO bead_dependencies (bead_id, depends_on_id, relationship, created_at)
			 VALUES ($1, $2, $3, to_timestamp($4 / 1000.0))
			 ON CONFLICT (bead_id, depends_on_id, relationship) DO NOTHING`,
			str(d, "bead_id"), str(d, "depends_on_id"), relationshipOrBlocks(str(d, "relationship")), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		if err := s.recomputeBlocked(ctx, tx, str(d, "bead_id"), ts); err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellDependencyRemoved:
		_, err := tx.ExecContext(ctx,
			`DELETE FROM bead_dependencies
			 WHERE bead_id = $1 AND depends_on_id = $2 AND relationship = $3`,
			str(d, "bead_id"), str(d, "depends_on_id"), relationshipOrBlocks(str(d, "relationship")))
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		if err := s.recomputeBlocked(ctx, tx, str(d, "bead_id"), ts); err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellLabelAdded:
		_, err := tx.ExecContext(ctx,
			`INSERT INTO bead_labels (bead_id, label) VALUES ($1, $2)
			 ON CONFLICT (bead_id, label) DO NOTHING`,
			str(d, "bead_id"), str(d, "label"))
		return false, nil, projErr(evt.Type, err)

	case models.EventCellLabelRemoved:
		_, err := tx.ExecContext(ctx,
			`DELETE FROM bead_labels WHERE bead_id = $1 AND label = $2`,
			str(d, "bead_id"), str(d, "label"))
		return false, nil, projErr(evt.Type, err)

	case models.EventCellCommentAdded:
		_, err := tx.ExecContext(ctx,
			`INSERT INTO bead_comments (bead_id, author, body, created_at)
			 VALUES ($1, $2, $3, to_timestamp($4 / 1000.0))`,
			str(d, "bead_id"), str(d, "author"), str(d, "body"), ts)
		return false, nil, projErr(evt.Type, err)

	case models.EventCellAssigned:
		_, err := tx.ExecContext(ctx,
			`UPDATE beads SET assignee = NULLIF($2, ''), updated_at = to_timestamp($3 / 1000.0) WHERE bead_id = $1`,
			str(d, "bead_id"), str(d, "assignee"), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellWorkStarted:
		_, err := tx.ExecContext(ctx,
			`UPDATE beads
			 SET status = 'in_progress', assignee = NULLIF($2, ''), updated_at = to_timestamp($3 / 1000.0)
			 WHERE bead_id = $1`,
			str(d, "bead_id"), str(d, "agent"), ts)
		if err != nil {
			return false, nil, projErr(evt.Type, err)
		}
		return false, nil, s.markDirty(ctx, tx, str(d, "bead_id"), ts)

	case models.EventCellEpicChildAdded, models.EventCellEpicClosureEligible:
		// Log-only. Epic structure lives on beads.parent_id.
		return false, nil, nil

	case models.EventSubtaskOutcome, models.EventReviewFeedback,
		models.EventCoordinatorDecision, models.EventCoordinatorViolation,
		models.EventCoordinatorOutcome, models.EventCoordinatorCompaction:
		// Log-only. Consumed by analytics and the lifecycle tracker via reads.
		return false, nil, nil

	default:
		return false, nil, fmt.Errorf("%w: unknown event_type %q", ErrInvalidEvent, evt.Type)
	}
}

// markDirty flags a bead for downstream cache refresh.
func (s *Store) markDirty(ctx context.Context, tx *sql.Tx, beadID string, ts int64) error {
	if beadID == "" {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO dirty_beads (bead_id, marked_at) VALUES ($1, to_timestamp($2 / 1000.0))
		 ON CONFLICT (bead_id) DO UPDATE SET marked_at = to_timestamp($2 / 1000.0)`,
		beadID, ts)
	if err != nil {
		return fmt.Errorf("%w: mark dirty: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// recomputeBlocked refreshes the blocked cache entry for one bead from its
// open dependencies.
func (s *Store) recomputeBlocked(ctx context.Context, tx *sql.Tx, beadID string, ts int64) error {
	if beadID == "" {
		return nil
	}
	rows, err := tx.QueryContext(ctx,
		`SELECT d.depends_on_id
		 FROM bead_dependencies d
		 JOIN beads b ON b.bead_id = d.depends_on_id
		 WHERE d.bead_id = $1 AND d.relationship = 'blocks'
		   AND b.status != 'closed' AND b.deleted_at IS NULL
		 ORDER BY d.depends_on_id`,
		beadID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var blockedBy []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		blockedBy = append(blockedBy, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(blockedBy) == 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM blocked_beads_cache WHERE bead_id = $1`, beadID)
		return err
	}
	buf, err := json.Marshal(blockedBy)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO blocked_beads_cache (bead_id, blocked_by, computed_at)
		 VALUES ($1, $2, to_timestamp($3 / 1000.0))
		 ON CONFLICT (bead_id) DO UPDATE SET blocked_by = $2, computed_at = to_timestamp($3 / 1000.0)`,
		beadID, buf, ts)
	return err
}

// recomputeBlockedDependents refreshes the blocked cache for every bead that
// depends on the given one. Called when a bead closes or reopens.
func (s *Store) recomputeBlockedDependents(ctx context.Context, tx *sql.Tx, beadID string, ts int64) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT DISTINCT bead_id FROM bead_dependencies WHERE depends_on_id = $1`, beadID)
	if err != nil {
		return err
	}
	var dependents []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		dependents = append(dependents, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	for _, dep := range dependents {
		if err := s.recomputeBlocked(ctx, tx, dep, ts); err != nil {
			return err
		}
	}
	return nil
}

func projErr(eventType string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: project %s: %v", ErrStorageUnavailable, eventType, err)
}
