package cleanup_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/cleanup"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
	testdb "github.com/opencoord/hive/test/database"
)

func TestReclaimExpiredReservations(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	ctx := context.Background()

	// One reservation that expires immediately, one that stays fresh.
	for _, r := range []struct {
		agent string
		path  string
		ttl   int64
	}{
		{"stale", "old/**", 1},
		{"fresh", "new/**", time.Hour.Milliseconds()},
	} {
		_, err := store.Append(ctx, "proj", models.EventReservationCreated, map[string]interface{}{
			"agent": r.agent, "path": r.path, "exclusive": true,
			"lock_holder_id": r.agent, "ttl_ms": r.ttl,
		})
		require.NoError(t, err)
	}
	time.Sleep(20 * time.Millisecond)

	svc := cleanup.NewService(client.Client, store, 0, 0, slog.Default())
	n, err := svc.ReclaimExpiredReservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Idempotent: the released row is not reclaimed again.
	n, err = svc.ReclaimExpiredReservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPurgeSettledDeferreds(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	ctx := context.Background()

	deferreds := services.NewDeferredService(client.Client, slog.Default())

	settled, err := deferreds.Create(ctx, time.Minute)
	require.NoError(t, err)
	require.NoError(t, deferreds.Resolve(ctx, settled, map[string]interface{}{"ok": true}, ""))

	pending, err := deferreds.Create(ctx, time.Hour)
	require.NoError(t, err)

	// Retention of one nanosecond makes the resolved row immediately stale.
	svc := cleanup.NewService(client.Client, store, 0, time.Nanosecond, slog.Default())
	time.Sleep(5 * time.Millisecond)
	n, err := svc.PurgeSettledDeferreds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	gone, err := deferreds.Get(ctx, settled)
	require.NoError(t, err)
	assert.False(t, gone.Found)

	kept, err := deferreds.Get(ctx, pending)
	require.NoError(t, err)
	assert.True(t, kept.Found)
}

func TestStartStopLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())

	svc := cleanup.NewService(client.Client, store, 50*time.Millisecond, time.Hour, slog.Default())
	svc.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	svc.Stop()
}
