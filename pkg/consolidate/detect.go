// Package consolidate finds stray per-directory SQLite coordination logs
// and folds their rows into the global log store. Strays appear when a
// worker runs in a subdirectory without HIVE_PROJECT pointing at the
// global store; their history must not be lost.
package consolidate

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Schema classifications for a stray database.
const (
	SchemaModern  = "modern"
	SchemaLegacy  = "legacy"
	SchemaUnknown = "unknown"
)

// Plan actions.
const (
	ActionMigrate = "migrate"
	ActionSkip    = "skip"
)

// strayPatterns are the conventional locations of per-directory logs,
// relative to the scan root.
var strayPatterns = []string{
	".opencode/*.db",
	".hive/*.db",
	"packages/*/.opencode/*.db",
}

// Stray is one detected per-directory log database.
type Stray struct {
	Path          string `json:"path"`
	Schema        string `json:"schema"`
	EstimatedRows int    `json:"estimated_rows"`
}

// Plan is the proposed handling of one stray.
type Plan struct {
	Stray  Stray  `json:"stray"`
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// Scan locates stray databases under root, excluding already-migrated and
// backup files, and classifies each by schema.
func Scan(ctx context.Context, root string) ([]Stray, error) {
	var strays []Stray
	for _, pattern := range strayPatterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad stray pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			base := filepath.Base(path)
			if strings.HasSuffix(base, ".migrated") || strings.HasPrefix(base, ".backup-") || strings.Contains(base, ".backup-") {
				continue
			}
			stray, err := classify(ctx, path)
			if err != nil {
				return nil, err
			}
			strays = append(strays, stray)
		}
	}
	return strays, nil
}

// BuildPlans maps strays to actions: known schemas migrate, unknown ones
// are left untouched.
func BuildPlans(strays []Stray) []Plan {
	plans := make([]Plan, 0, len(strays))
	for _, s := range strays {
		p := Plan{Stray: s, Action: ActionMigrate}
		switch {
		case s.Schema == SchemaUnknown:
			p.Action = ActionSkip
			p.Reason = "unrecognized schema"
		case s.EstimatedRows == 0:
			p.Action = ActionSkip
			p.Reason = "no rows to migrate"
		}
		plans = append(plans, p)
	}
	return plans
}

// classify opens the stray read-only and inspects sqlite_master.
func classify(ctx context.Context, path string) (Stray, error) {
	stray := Stray{Path: path, Schema: SchemaUnknown}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return stray, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer db.Close()

	tables, err := tableNames(ctx, db)
	if err != nil {
		return stray, fmt.Errorf("failed to inspect %s: %w", path, err)
	}

	switch {
	case tables["events"] && tables["agents"] && tables["messages"]:
		stray.Schema = SchemaModern
		stray.EstimatedRows, err = countRows(ctx, db, "events")
	case tables["bead_events"]:
		stray.Schema = SchemaLegacy
		stray.EstimatedRows, err = countRows(ctx, db, "bead_events")
	}
	if err != nil {
		return stray, fmt.Errorf("failed to count rows in %s: %w", path, err)
	}
	return stray, nil
}

func tableNames(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables[name] = true
	}
	return tables, rows.Err()
}

func countRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "`+table+`"`).Scan(&n)
	return n, err
}
