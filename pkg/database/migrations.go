package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that the schema
// tooling cannot express.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Reservation overlap checks only ever scan non-released rows.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS reservations_active_idx
		ON reservations (project_key, path_pattern)
		WHERE released_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create active reservations index: %w", err)
	}

	// Deferred expiry sweeps scan unresolved rows only.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS deferred_pending_idx
		ON deferred (expires_at)
		WHERE NOT resolved`)
	if err != nil {
		return fmt.Errorf("failed to create pending deferred index: %w", err)
	}

	return nil
}
