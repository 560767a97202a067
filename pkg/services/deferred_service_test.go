package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/services"
	testdb "github.com/opencoord/hive/test/database"
)

func newDeferredFixture(t *testing.T) (*services.DeferredService, context.Context) {
	client := testdb.NewTestClient(t)
	return services.NewDeferredService(client.Client, slog.Default()), context.Background()
}

func TestDeferredResolveRoundtrip(t *testing.T) {
	svc, ctx := newDeferredFixture(t)

	url, err := svc.Create(ctx, time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "deferred:")

	pending, err := svc.Get(ctx, url)
	require.NoError(t, err)
	assert.True(t, pending.Found)
	assert.False(t, pending.Resolved)

	require.NoError(t, svc.Resolve(ctx, url, map[string]interface{}{"bead_id": "proj-1"}, ""))

	done, err := svc.Get(ctx, url)
	require.NoError(t, err)
	assert.True(t, done.Resolved)
	assert.Equal(t, "proj-1", done.Value["bead_id"])
}

func TestDeferredResolveIsWriteOnce(t *testing.T) {
	svc, ctx := newDeferredFixture(t)

	url, err := svc.Create(ctx, time.Minute)
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(ctx, url, map[string]interface{}{"winner": "first"}, ""))
	// The second resolution is silently ignored.
	require.NoError(t, svc.Resolve(ctx, url, map[string]interface{}{"winner": "second"}, ""))

	res, err := svc.Get(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "first", res.Value["winner"])
}

func TestDeferredResolveWithError(t *testing.T) {
	svc, ctx := newDeferredFixture(t)

	url, err := svc.Create(ctx, time.Minute)
	require.NoError(t, err)
	require.NoError(t, svc.Resolve(ctx, url, nil, "worker crashed"))

	res, err := svc.Get(ctx, url)
	require.NoError(t, err)
	assert.True(t, res.Resolved)
	assert.Equal(t, "worker crashed", res.Error)
}

func TestDeferredAwaitReturnsResolution(t *testing.T) {
	svc, ctx := newDeferredFixture(t)

	url, err := svc.Create(ctx, time.Minute)
	require.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = svc.Resolve(context.Background(), url, map[string]interface{}{"ok": true}, "")
	}()

	res, err := svc.Await(ctx, url, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, true, res.Value["ok"])
}

func TestDeferredAwaitTimesOutAtExpiry(t *testing.T) {
	svc, ctx := newDeferredFixture(t)

	url, err := svc.Create(ctx, 150*time.Millisecond)
	require.NoError(t, err)

	_, err = svc.Await(ctx, url, time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrDeferredTimeout)
}

func TestDeferredAwaitUnknownURL(t *testing.T) {
	svc, ctx := newDeferredFixture(t)

	_, err := svc.Await(ctx, "deferred:missing", time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeferredResolveAfterExpiry(t *testing.T) {
	svc, ctx := newDeferredFixture(t)

	url, err := svc.Create(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)

	err = svc.Resolve(ctx, url, map[string]interface{}{"late": true}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrDeferredExpired)
}

func TestDeferredGetUnknownURLIsNotAnError(t *testing.T) {
	svc, ctx := newDeferredFixture(t)

	res, err := svc.Get(ctx, "deferred:missing")
	require.NoError(t, err)
	assert.False(t, res.Found)
}
