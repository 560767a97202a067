package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
	testdb "github.com/opencoord/hive/test/database"
)

func newContextFixture(t *testing.T) (*services.ContextService, *logstore.Store, context.Context) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	svc := services.NewContextService(client.Client, store, slog.Default())
	return svc, store, context.Background()
}

func TestCoordinatorFlagIsWriteOnce(t *testing.T) {
	svc, _, ctx := newContextFixture(t)

	require.NoError(t, svc.RegisterSession(ctx, "proj", "sess-1", false))

	// A worker session cannot promote itself by re-registering.
	require.NoError(t, svc.RegisterSession(ctx, "proj", "sess-1", true))
	ok, err := svc.IsCoordinator(ctx, "proj", "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.RegisterSession(ctx, "proj", "coord-1", true))
	ok, err = svc.IsCoordinator(ctx, "proj", "coord-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// The flag is scoped to the project it was registered under.
	ok, err = svc.IsCoordinator(ctx, "other", "coord-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordDecisionIsCoordinatorGated(t *testing.T) {
	svc, store, ctx := newContextFixture(t)

	require.NoError(t, svc.RegisterSession(ctx, "proj", "worker-1", false))
	err := svc.RecordDecision(ctx, "proj", "worker-1", "split into subtasks", nil)
	require.Error(t, err)
	assert.Equal(t, "coordinator_only", services.GuardTag(err))

	// The rejected attempt leaves an audit trail.
	violations, err := store.ReadByType(ctx, "proj", 0, []string{models.EventCoordinatorViolation})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "worker-1", violations[0].Data["session_id"])

	require.NoError(t, svc.RegisterSession(ctx, "proj", "coord-1", true))
	require.NoError(t, svc.RecordDecision(ctx, "proj", "coord-1", "split into subtasks", map[string]interface{}{
		"subtasks": 3,
	}))

	decisions, err := store.ReadByType(ctx, "proj", 0, []string{models.EventCoordinatorDecision})
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, "split into subtasks", decisions[0].Data["summary"])
	assert.EqualValues(t, 3, decisions[0].Data["subtasks"])
}

func TestAgentRegistrationFirstWriterWins(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	svc := services.NewAgentService(client.Client, store, slog.Default())
	ctx := context.Background()

	first, err := svc.Register(ctx, models.RegisterAgentRequest{
		ProjectKey: "proj", Name: "worker-1", Program: "hive", Model: "large",
	})
	require.NoError(t, err)
	assert.Equal(t, "large", first.Model)

	// Re-registration bumps activity but keeps the original identity.
	again, err := svc.Register(ctx, models.RegisterAgentRequest{
		ProjectKey: "proj", Name: "worker-1", Program: "other", Model: "small",
	})
	require.NoError(t, err)
	assert.Equal(t, "hive", again.Program)
	assert.Equal(t, "large", again.Model)
	assert.False(t, again.LastActiveAt.Before(first.LastActiveAt))

	agents, err := svc.List(ctx, "proj")
	require.NoError(t, err)
	assert.Len(t, agents, 1)
}
