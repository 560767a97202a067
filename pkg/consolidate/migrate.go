package consolidate

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// legacyTypeMap translates bead_events rows to their current variants.
var legacyTypeMap = map[string]string{
	"created":        models.EventCellCreated,
	"updated":        models.EventCellUpdated,
	"status_changed": models.EventCellStatusChanged,
	"closed":         models.EventCellClosed,
	"reopened":       models.EventCellReopened,
	"deleted":        models.EventCellDeleted,
	"comment_added":  models.EventCellCommentAdded,
}

// datetime layouts seen in stray logs written before timestamps were
// normalized to integer milliseconds.
var legacyTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	time.RFC3339,
	time.RFC3339Nano,
}

// TableReport counts one table's migration outcome.
type TableReport struct {
	Migrated int `json:"migrated"`
	Skipped  int `json:"skipped"`
}

// Report summarizes one stray's migration.
type Report struct {
	Path      string                  `json:"path"`
	Tables    map[string]*TableReport `json:"tables"`
	RowErrors []string                `json:"row_errors,omitempty"`
	RenamedTo string                  `json:"renamed_to,omitempty"`
}

// Consolidator folds stray logs into the global store.
type Consolidator struct {
	store          *logstore.Store
	db             *sql.DB
	defaultProject string
	logger         *slog.Logger
}

// New creates a consolidator over the global store. db is the global store's
// handle, used for duplicate detection. defaultProject receives rows whose
// source carries no project key.
func New(store *logstore.Store, db *sql.DB, defaultProject string, logger *slog.Logger) *Consolidator {
	return &Consolidator{
		store:          store,
		db:             db,
		defaultProject: defaultProject,
		logger:         logger.With("component", "consolidate"),
	}
}

// Run scans root and migrates every planned stray. Safe to re-run: migrated
// sources are renamed out of the scan patterns, and duplicate rows are
// skipped, not re-inserted.
func (c *Consolidator) Run(ctx context.Context, root string) ([]Plan, []*Report, error) {
	strays, err := Scan(ctx, root)
	if err != nil {
		return nil, nil, err
	}
	plans := BuildPlans(strays)

	var reports []*Report
	for _, p := range plans {
		if p.Action != ActionMigrate {
			continue
		}
		report, err := c.Migrate(ctx, p)
		if err != nil {
			return plans, reports, err
		}
		reports = append(reports, report)
	}
	return plans, reports, nil
}

// Migrate copies one stray's rows into the global store. Rows already
// present globally are skipped; per-row failures are recorded and do not
// abort the run. The source file is renamed with a ".migrated" suffix on
// success and its schema is never dropped.
func (c *Consolidator) Migrate(ctx context.Context, plan Plan) (*Report, error) {
	report := &Report{
		Path:   plan.Stray.Path,
		Tables: make(map[string]*TableReport),
	}

	src, err := sql.Open("sqlite", "file:"+plan.Stray.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", plan.Stray.Path, err)
	}
	defer src.Close()

	switch plan.Stray.Schema {
	case SchemaModern:
		err = c.migrateModern(ctx, src, report)
	case SchemaLegacy:
		err = c.migrateLegacy(ctx, src, report)
	default:
		return nil, fmt.Errorf("cannot migrate schema %q", plan.Stray.Schema)
	}
	if err != nil {
		return report, err
	}

	renamed := plan.Stray.Path + ".migrated"
	if err := os.Rename(plan.Stray.Path, renamed); err != nil {
		return report, fmt.Errorf("migrated but failed to rename source: %w", err)
	}
	report.RenamedTo = renamed

	c.logger.Info("stray log consolidated",
		"path", plan.Stray.Path, "row_errors", len(report.RowErrors))
	return report, nil
}

func (c *Consolidator) migrateModern(ctx context.Context, src *sql.DB, report *Report) error {
	counts := &TableReport{}
	report.Tables["events"] = counts

	rows, err := src.QueryContext(ctx,
		`SELECT id, project_key, event_type, ts_ms, data FROM events ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to read stray events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         int64
			projectKey sql.NullString
			eventType  string
			rawTs      interface{}
			rawData    sql.NullString
		)
		if err := rows.Scan(&id, &projectKey, &eventType, &rawTs, &rawData); err != nil {
			return fmt.Errorf("failed to scan stray event: %w", err)
		}

		project := projectKey.String
		if project == "" {
			project = c.defaultProject
		}
		data, err := decodeData(rawData)
		if err != nil {
			counts.Skipped++
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("events row %d: %v", id, err))
			continue
		}
		tsMs, err := normalizeTimestamp(rawTs)
		if err != nil {
			counts.Skipped++
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("events row %d: %v", id, err))
			continue
		}

		if err := c.importEvent(ctx, project, eventType, tsMs, data, counts); err != nil {
			counts.Skipped++
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("events row %d: %v", id, err))
		}
	}
	return rows.Err()
}

func (c *Consolidator) migrateLegacy(ctx context.Context, src *sql.DB, report *Report) error {
	counts := &TableReport{}
	report.Tables["bead_events"] = counts

	rows, err := src.QueryContext(ctx,
		`SELECT id, bead_id, event_type, ts_ms, data FROM bead_events ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to read bead_events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        int64
			beadID    string
			eventType string
			rawTs     interface{}
			rawData   sql.NullString
		)
		if err := rows.Scan(&id, &beadID, &eventType, &rawTs, &rawData); err != nil {
			return fmt.Errorf("failed to scan bead_events row: %w", err)
		}

		mapped, ok := legacyTypeMap[eventType]
		if !ok {
			counts.Skipped++
			report.RowErrors = append(report.RowErrors,
				fmt.Sprintf("bead_events row %d: no mapping for type %q", id, eventType))
			continue
		}
		data, err := decodeData(rawData)
		if err != nil {
			counts.Skipped++
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("bead_events row %d: %v", id, err))
			continue
		}
		data["bead_id"] = beadID
		tsMs, err := normalizeTimestamp(rawTs)
		if err != nil {
			counts.Skipped++
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("bead_events row %d: %v", id, err))
			continue
		}

		if err := c.importEvent(ctx, c.defaultProject, mapped, tsMs, data, counts); err != nil {
			counts.Skipped++
			report.RowErrors = append(report.RowErrors, fmt.Sprintf("bead_events row %d: %v", id, err))
		}
	}
	return rows.Err()
}

// importEvent appends one row unless an identical event already exists
// globally. The global copy wins; sequences and ids are assigned fresh.
func (c *Consolidator) importEvent(ctx context.Context, project, eventType string, tsMs int64, data map[string]interface{}, counts *TableReport) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	var exists bool
	err = c.db.QueryRowContext(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM events
		   WHERE project_key = $1 AND event_type = $2 AND ts_ms = $3 AND data = $4::jsonb
		 )`,
		project, eventType, tsMs, payload,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate: %w", err)
	}
	if exists {
		counts.Skipped++
		return nil
	}

	if _, err := c.store.AppendAt(ctx, project, eventType, tsMs, data); err != nil {
		return err
	}
	counts.Migrated++
	return nil
}

func decodeData(raw sql.NullString) (map[string]interface{}, error) {
	if !raw.Valid || raw.String == "" {
		return map[string]interface{}{}, nil
	}
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw.String), &data); err != nil {
		return nil, fmt.Errorf("malformed data payload: %w", err)
	}
	return data, nil
}

// normalizeTimestamp accepts integer milliseconds and rewrites the legacy
// datetime strings some stray logs carry. Unparseable values fail the row.
func normalizeTimestamp(raw interface{}) (int64, error) {
	tsMs, err := logstore.ValidateTimestamp(raw)
	if err == nil {
		return tsMs, nil
	}
	s, ok := raw.(string)
	if !ok {
		return 0, err
	}
	// Some stray writers stored the SQL expression itself instead of its
	// result. The original time is unrecoverable; migration time stands in.
	if s == "datetime('now')" {
		return time.Now().UnixMilli(), nil
	}
	for _, layout := range legacyTimeLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, err
}
