package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	testdb "github.com/opencoord/hive/test/database"
)

type grantAllCoord struct{}

func (grantAllCoord) IsCoordinator(ctx context.Context, projectKey, sessionID string) (bool, error) {
	return true, nil
}

// A reservation committed between the conflict scan and the grant must roll
// the whole batch back, including paths the winner does not overlap.
func TestReserveRaceRollsBackEntireBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	alice := NewReservationService(client.Client, store, grantAllCoord{}, slog.Default())
	bob := NewReservationService(client.Client, store, grantAllCoord{}, slog.Default())
	ctx := context.Background()

	bob.grantHook = func() {
		res, err := alice.Reserve(ctx, models.ReserveRequest{
			ProjectKey: "proj",
			Agent:      "alice",
			Paths:      []string{"src/**"},
			Exclusive:  true,
		})
		require.NoError(t, err)
		require.Len(t, res.Granted, 1)
	}

	res, err := bob.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj",
		Agent:      "bob",
		Paths:      []string{"src/parser/lexer.go", "docs/spec.md"},
		Exclusive:  true,
	})
	require.NoError(t, err)

	assert.Empty(t, res.Granted)
	require.Len(t, res.Conflicts, 2)
	for _, c := range res.Conflicts {
		assert.Equal(t, "alice", c.HolderAgent)
	}

	// Nothing of bob's batch survived the rollback.
	active, err := bob.List(ctx, "proj")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "alice", active[0].AgentName)

	// docs/spec.md is free again once the losing batch is gone.
	bob.grantHook = nil
	retry, err := bob.Reserve(ctx, models.ReserveRequest{
		ProjectKey: "proj",
		Agent:      "bob",
		Paths:      []string{"docs/spec.md"},
		Exclusive:  true,
	})
	require.NoError(t, err)
	require.Len(t, retry.Granted, 1)
}
