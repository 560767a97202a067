package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
	testdb "github.com/opencoord/hive/test/database"
)

// staticCoord answers every coordinator check with a fixed verdict.
type staticCoord bool

func (c staticCoord) IsCoordinator(ctx context.Context, projectKey, sessionID string) (bool, error) {
	return bool(c), nil
}

func newReservationFixture(t *testing.T, coord services.CoordinatorChecker) (*services.ReservationService, context.Context) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	svc := services.NewReservationService(client.Client, store, coord, slog.Default())
	return svc, context.Background()
}

func TestPathsOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"src/main.go", "src/main.go", true},
		{"src/main.go", "src/other.go", false},
		{"src", "src/main.go", true},
		{"src/main.go", "src", true},
		{"./src/main.go", "src/main.go", true},
		{"src/**", "src/util/io.go", true},
		{"src/util/io.go", "src/**", true},
		{"src/**", "src", true},
		{"src/**", "docs/readme.md", false},
		{"src/*.go", "src/main.go", true},
		{"src/*.go", "src/util/io.go", false},
		{"src/**", "src/**/*.go", true},
		{"src/**", "docs/**", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.PathsOverlap(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestReserveCollectsAllConflicts(t *testing.T) {
	svc, ctx := newReservationFixture(t, staticCoord(false))

	first, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "alice",
		Paths: []string{"src/parser/**", "docs/spec.md"}, Exclusive: true,
	})
	require.NoError(t, err)
	require.Len(t, first.Granted, 2)
	assert.Empty(t, first.Conflicts)

	// One overlapping path, one free path. The free one is still granted.
	second, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "bob",
		Paths: []string{"src/parser/lexer.go", "cmd/run.go"}, Exclusive: true,
	})
	require.NoError(t, err)
	require.Len(t, second.Granted, 1)
	assert.Equal(t, "cmd/run.go", second.Granted[0].Path)
	require.Len(t, second.Conflicts, 1)
	assert.Equal(t, "src/parser/lexer.go", second.Conflicts[0].Path)
	assert.Equal(t, "alice", second.Conflicts[0].HolderAgent)
}

func TestReserveSharedHoldsDoNotConflict(t *testing.T) {
	svc, ctx := newReservationFixture(t, staticCoord(false))

	_, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "alice", Paths: []string{"go.mod"},
	})
	require.NoError(t, err)

	res, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "bob", Paths: []string{"go.mod"},
	})
	require.NoError(t, err)
	assert.Len(t, res.Granted, 1)
	assert.Empty(t, res.Conflicts)
}

func TestReleaseAllOwnIsIdempotent(t *testing.T) {
	svc, ctx := newReservationFixture(t, staticCoord(false))

	_, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "alice",
		Paths: []string{"a.go", "b.go"}, Exclusive: true,
	})
	require.NoError(t, err)

	n, err := svc.Release(ctx, models.ReleaseRequest{ProjectKey: "proj", Agent: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.Release(ctx, models.ReleaseRequest{ProjectKey: "proj", Agent: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Released paths are immediately reservable by others.
	res, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "bob", Paths: []string{"a.go"}, Exclusive: true,
	})
	require.NoError(t, err)
	assert.Len(t, res.Granted, 1)
}

func TestExpiredReservationsAreReclaimed(t *testing.T) {
	svc, ctx := newReservationFixture(t, staticCoord(false))

	_, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "alice",
		Paths: []string{"src/**"}, Exclusive: true,
		TTL: time.Millisecond,
	})
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	res, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "bob",
		Paths: []string{"src/main.go"}, Exclusive: true,
	})
	require.NoError(t, err)
	assert.Len(t, res.Granted, 1)
	assert.Empty(t, res.Conflicts)
}

func TestReleaseAllForProjectIsCoordinatorOnly(t *testing.T) {
	svc, ctx := newReservationFixture(t, staticCoord(false))

	err := svc.ReleaseAllForProject(ctx, "proj", "session-1")
	require.Error(t, err)
	assert.Equal(t, "coordinator_only", services.GuardTag(err))
}

func TestReleaseAllForProjectClearsEverything(t *testing.T) {
	svc, ctx := newReservationFixture(t, staticCoord(true))

	_, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "alice", Paths: []string{"a.go"}, Exclusive: true,
	})
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "bob", Paths: []string{"b.go"}, Exclusive: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ReleaseAllForProject(ctx, "proj", "coord-session"))

	active, err := svc.List(ctx, "proj")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestReleaseAllForAgentTargetsOneAgent(t *testing.T) {
	svc, ctx := newReservationFixture(t, staticCoord(true))

	_, err := svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "alice", Paths: []string{"a.go"}, Exclusive: true,
	})
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj", Agent: "bob", Paths: []string{"b.go"}, Exclusive: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ReleaseAllForAgent(ctx, "proj", "coord-session", "alice"))

	active, err := svc.List(ctx, "proj")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "bob", active[0].AgentName)
}
