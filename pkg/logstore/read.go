package logstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/opencoord/hive/pkg/models"
)

// Read returns events with sequence > fromSeq in ascending sequence order.
// A limit of 0 means no limit.
func (s *Store) Read(ctx context.Context, project string, fromSeq int64, limit int) ([]models.Event, error) {
	query := `SELECT id, project_key, sequence, event_type, ts_ms, data
	          FROM events
	          WHERE project_key = $1 AND sequence > $2
	          ORDER BY sequence ASC`
	args := []interface{}{project, fromSeq}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: read events: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ReadByType returns events of the given types with sequence > fromSeq, in
// ascending sequence order. An empty type list reads all events.
func (s *Store) ReadByType(ctx context.Context, project string, fromSeq int64, types []string) ([]models.Event, error) {
	if len(types) == 0 {
		return s.Read(ctx, project, fromSeq, 0)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_key, sequence, event_type, ts_ms, data
		 FROM events
		 WHERE project_key = $1 AND sequence > $2 AND event_type = ANY($3)
		 ORDER BY sequence ASC`,
		project, fromSeq, types)
	if err != nil {
		return nil, fmt.Errorf("%w: read events: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Tail returns the highest sequence recorded for a project, 0 if none.
func (s *Store) Tail(ctx context.Context, project string) (int64, error) {
	var tail sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(sequence) FROM events WHERE project_key = $1`, project).Scan(&tail)
	if err != nil {
		return 0, fmt.Errorf("%w: read tail: %v", ErrStorageUnavailable, err)
	}
	return tail.Int64, nil
}

// Projects lists every project key present in the log.
func (s *Store) Projects(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT project_key FROM log_heads ORDER BY project_key`)
	if err != nil {
		return nil, fmt.Errorf("%w: list projects: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("%w: list projects: %v", ErrStorageUnavailable, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list projects: %v", ErrStorageUnavailable, err)
	}
	return out, nil
}

func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	var out []models.Event
	for rows.Next() {
		var (
			evt models.Event
			raw []byte
		)
		if err := rows.Scan(&evt.ID, &evt.ProjectKey, &evt.Sequence, &evt.Type, &evt.TsMs, &raw); err != nil {
			return nil, fmt.Errorf("%w: scan event: %v", ErrStorageUnavailable, err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &evt.Data); err != nil {
				return nil, fmt.Errorf("%w: decode event data: %v", ErrInvalidEvent, err)
			}
		}
		out = append(out, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read events: %v", ErrStorageUnavailable, err)
	}
	return out, nil
}
