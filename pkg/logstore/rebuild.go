package logstore

import (
	"context"
	"fmt"
)

// projectionTables lists every table derived from the log, in an order safe
// for deletion under foreign keys.
var projectionTables = []string{
	"message_recipients",
	"messages",
	"agents",
	"reservations",
	"bead_comments",
	"bead_labels",
	"bead_dependencies",
	"blocked_beads_cache",
	"dirty_beads",
	"beads",
}

// serialFixups realigns id sequences after replay inserted rows with
// explicit ids.
var serialFixups = []string{
	`SELECT setval('reservations_id_seq', COALESCE((SELECT MAX(id) FROM reservations), 1))`,
	`SELECT setval('message_recipients_id_seq', COALESCE((SELECT MAX(id) FROM message_recipients), 1))`,
	`SELECT setval('agents_id_seq', COALESCE((SELECT MAX(id) FROM agents), 1))`,
}

// Rebuild drops a project's projection rows and replays its event log to
// reconstruct them. Because every projection write derives entirely from
// event payloads and timestamps, the rebuilt state matches the original.
func (s *Store) Rebuild(ctx context.Context, project string) error {
	events, err := s.Read(ctx, project, 0, 0)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin rebuild: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range projectionTables {
		var query string
		switch table {
		case "message_recipients":
			query = `DELETE FROM message_recipients
			         WHERE message_id IN (SELECT message_id FROM messages WHERE project_key = $1)`
		case "bead_comments", "bead_labels", "bead_dependencies", "blocked_beads_cache", "dirty_beads":
			query = fmt.Sprintf(
				`DELETE FROM %s WHERE bead_id IN (SELECT bead_id FROM beads WHERE project_key = $1)`, table)
		default:
			query = fmt.Sprintf(`DELETE FROM %s WHERE project_key = $1`, table)
		}
		if _, err := tx.ExecContext(ctx, query, project); err != nil {
			return fmt.Errorf("%w: clear %s: %v", ErrStorageUnavailable, table, err)
		}
	}

	for i := range events {
		evt := events[i]
		// Follow-up events (e.g. thread_created) already exist in the log,
		// so the ones applyProjection re-derives here are discarded. The
		// enrichment flag is always false on replay: reservation events
		// already carry their assigned row id.
		if _, _, err := s.applyProjection(ctx, tx, &evt); err != nil {
			return fmt.Errorf("replay sequence %d: %w", evt.Sequence, err)
		}
	}

	for _, fixup := range serialFixups {
		if _, err := tx.ExecContext(ctx, fixup); err != nil {
			return fmt.Errorf("%w: realign sequences: %v", ErrStorageUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit rebuild: %v", ErrStorageUnavailable, err)
	}
	return nil
}
