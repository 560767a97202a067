// Package database provides test database clients over the shared
// PostgreSQL testcontainer.
package database

import (
	"testing"

	"github.com/opencoord/hive/pkg/database"
	"github.com/opencoord/hive/test/util"
)

// NewTestClient creates a test database client with the embedded migrations
// applied. In CI (CI_DATABASE_URL set) it connects to the external
// PostgreSQL service container; locally it spins up a testcontainer. The
// schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
