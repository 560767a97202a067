package consolidate_test

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/opencoord/hive/pkg/consolidate"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	testdb "github.com/opencoord/hive/test/database"
)

type strayRow struct {
	projectKey string
	eventType  string
	ts         interface{}
	data       string
}

func writeModernStray(t *testing.T, path string, rows []strayRow) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE events (id INTEGER PRIMARY KEY, project_key TEXT, event_type TEXT NOT NULL, ts_ms, data TEXT)`,
		`CREATE TABLE agents (id INTEGER PRIMARY KEY, name TEXT)`,
		`CREATE TABLE messages (id INTEGER PRIMARY KEY, subject TEXT)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO events (project_key, event_type, ts_ms, data) VALUES (?, ?, ?, ?)`,
			r.projectKey, r.eventType, r.ts, r.data)
		require.NoError(t, err)
	}
}

func writeLegacyStray(t *testing.T, path string, rows [][4]interface{}) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE bead_events (id INTEGER PRIMARY KEY, bead_id TEXT, event_type TEXT, ts_ms, data TEXT)`)
	require.NoError(t, err)
	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO bead_events (bead_id, event_type, ts_ms, data) VALUES (?, ?, ?, ?)`,
			r[0], r[1], r[2], r[3])
		require.NoError(t, err)
	}
}

func newConsolidator(t *testing.T) (*consolidate.Consolidator, *logstore.Store, context.Context) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	c := consolidate.New(store, client.DB(), "fallback", slog.Default())
	return c, store, context.Background()
}

func TestScanClassifiesStrays(t *testing.T) {
	root := t.TempDir()
	writeModernStray(t, filepath.Join(root, ".opencode", "log.db"), []strayRow{
		{"proj", models.EventCellCreated, int64(1700000000000), `{"bead_id":"proj-aaaa1111","title":"one","type":"task","priority":2}`},
	})
	writeLegacyStray(t, filepath.Join(root, ".hive", "old.db"), [][4]interface{}{
		{"proj-bbbb2222", "created", int64(1700000001000), `{"title":"legacy","type":"task","priority":2}`},
	})
	// Already consolidated; must not be rescanned.
	writeModernStray(t, filepath.Join(root, ".opencode", "done.db.migrated"), nil)

	strays, err := consolidate.Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, strays, 2)

	bySchema := map[string]consolidate.Stray{}
	for _, s := range strays {
		bySchema[s.Schema] = s
	}
	assert.Equal(t, 1, bySchema[consolidate.SchemaModern].EstimatedRows)
	assert.Equal(t, 1, bySchema[consolidate.SchemaLegacy].EstimatedRows)
}

func TestBuildPlansSkipsUnknownAndEmpty(t *testing.T) {
	plans := consolidate.BuildPlans([]consolidate.Stray{
		{Path: "a.db", Schema: consolidate.SchemaModern, EstimatedRows: 3},
		{Path: "b.db", Schema: consolidate.SchemaUnknown},
		{Path: "c.db", Schema: consolidate.SchemaLegacy, EstimatedRows: 0},
	})
	require.Len(t, plans, 3)
	assert.Equal(t, consolidate.ActionMigrate, plans[0].Action)
	assert.Equal(t, consolidate.ActionSkip, plans[1].Action)
	assert.Equal(t, consolidate.ActionSkip, plans[2].Action)
}

func TestMigratePreservesTimestampsAndRenamesSource(t *testing.T) {
	c, store, ctx := newConsolidator(t)
	root := t.TempDir()
	strayPath := filepath.Join(root, ".opencode", "log.db")
	writeModernStray(t, strayPath, []strayRow{
		{"proj", models.EventCellCreated, int64(1700000000000), `{"bead_id":"proj-aaaa1111","title":"one","type":"task","priority":2}`},
		{"proj", models.EventCellClosed, "2024-01-02 10:00:00", `{"bead_id":"proj-aaaa1111","reason":"done"}`},
		{"", models.EventCoordinatorDecision, int64(1700000002000), `{"decision":"orphan row"}`},
	})

	plans, reports, err := c.Run(ctx, root)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Len(t, reports, 1)
	assert.Equal(t, 3, reports[0].Tables["events"].Migrated)
	assert.Empty(t, reports[0].RowErrors)
	assert.Equal(t, strayPath+".migrated", reports[0].RenamedTo)

	_, err = os.Stat(strayPath)
	assert.True(t, os.IsNotExist(err))

	events, err := store.Read(ctx, "proj", 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1700000000000), events[0].TsMs)
	// The legacy datetime string is rewritten to epoch milliseconds.
	expected, _ := timeParseMs("2024-01-02 10:00:00")
	assert.Equal(t, expected, events[1].TsMs)

	// Rows without a project key land in the fallback project.
	orphans, err := store.Read(ctx, "fallback", 0, 0)
	require.NoError(t, err)
	assert.Len(t, orphans, 1)

	// A second run finds nothing: the source was renamed out of the scan.
	plans, reports, err = c.Run(ctx, root)
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.Empty(t, reports)
}

func TestMigrateSkipsDuplicates(t *testing.T) {
	c, store, ctx := newConsolidator(t)
	root := t.TempDir()
	row := strayRow{"proj", models.EventCoordinatorDecision, int64(1700000000000), `{"decision":"same"}`}

	writeModernStray(t, filepath.Join(root, ".opencode", "one.db"), []strayRow{row})
	writeModernStray(t, filepath.Join(root, ".hive", "copy.db"), []strayRow{row})

	_, reports, err := c.Run(ctx, root)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	var migrated, skipped int
	for _, r := range reports {
		migrated += r.Tables["events"].Migrated
		skipped += r.Tables["events"].Skipped
	}
	assert.Equal(t, 1, migrated)
	assert.Equal(t, 1, skipped)

	events, err := store.Read(ctx, "proj", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestMigrateLegacyMapsEventTypes(t *testing.T) {
	c, store, ctx := newConsolidator(t)
	root := t.TempDir()
	writeLegacyStray(t, filepath.Join(root, ".hive", "old.db"), [][4]interface{}{
		{"proj-cccc3333", "created", int64(1700000000000), `{"title":"legacy cell","type":"task","priority":2}`},
		{"proj-cccc3333", "closed", int64(1700000001000), `{"reason":"done"}`},
		{"proj-cccc3333", "vacuumed", int64(1700000002000), `{}`},
	})

	_, reports, err := c.Run(ctx, root)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	counts := reports[0].Tables["bead_events"]
	assert.Equal(t, 2, counts.Migrated)
	assert.Equal(t, 1, counts.Skipped)
	require.Len(t, reports[0].RowErrors, 1)
	assert.Contains(t, reports[0].RowErrors[0], "no mapping")

	events, err := store.Read(ctx, "fallback", 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.EventCellCreated, events[0].Type)
	assert.Equal(t, "proj-cccc3333", events[0].Data["bead_id"])
	assert.Equal(t, models.EventCellClosed, events[1].Type)
}

func TestMigrateRewritesDatetimeNowExpression(t *testing.T) {
	c, store, ctx := newConsolidator(t)
	root := t.TempDir()
	writeModernStray(t, filepath.Join(root, ".opencode", "log.db"), []strayRow{
		{"proj", models.EventCoordinatorDecision, "datetime('now')", `{"decision":"broken writer"}`},
	})

	before := time.Now().UnixMilli()
	_, reports, err := c.Run(ctx, root)
	after := time.Now().UnixMilli()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Tables["events"].Migrated)
	assert.Empty(t, reports[0].RowErrors)

	events, err := store.Read(ctx, "proj", 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.GreaterOrEqual(t, events[0].TsMs, before)
	assert.LessOrEqual(t, events[0].TsMs, after)
}

func timeParseMs(s string) (int64, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}
