package logstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/ent/agent"
	"github.com/opencoord/hive/ent/reservation"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	testdb "github.com/opencoord/hive/test/database"
)

func TestAppendAssignsStrictlyIncreasingSequences(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		evt, err := store.Append(ctx, "proj-a", models.EventCoordinatorDecision, map[string]interface{}{
			"decision": "split work",
		})
		require.NoError(t, err)
		seqs = append(seqs, evt.Sequence)
	}
	for i, s := range seqs {
		assert.Equal(t, int64(i+1), s)
	}

	// Sequences are scoped per project.
	evt, err := store.Append(ctx, "proj-b", models.EventCoordinatorDecision, map[string]interface{}{
		"decision": "independent",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), evt.Sequence)

	tail, err := store.Tail(ctx, "proj-a")
	require.NoError(t, err)
	assert.Equal(t, int64(5), tail)
}

func TestAppendRejectsUnknownEventType(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())

	_, err := store.Append(context.Background(), "proj", "no_such_event", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, logstore.ErrInvalidEvent)

	// The failed append must not consume a sequence the reader can observe.
	tail, err := store.Tail(context.Background(), "proj")
	require.NoError(t, err)
	assert.Equal(t, int64(0), tail)
}

func TestReadReturnsEventsAfterOffset(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := store.Append(ctx, "proj", models.EventCoordinatorOutcome, map[string]interface{}{
			"outcome": "ok",
		})
		require.NoError(t, err)
	}

	events, err := store.Read(ctx, "proj", 2, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(3), events[0].Sequence)
	assert.Equal(t, int64(4), events[1].Sequence)

	limited, err := store.Read(ctx, "proj", 0, 3)
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

func TestSubscribeDrainsBacklogThenStreamsLive(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Append(ctx, "proj", models.EventCoordinatorDecision, map[string]interface{}{
			"decision": "pre",
		})
		require.NoError(t, err)
	}

	var got []int64
	unsub, err := store.Subscribe(ctx, "proj", 1, func(e models.Event) {
		got = append(got, e.Sequence)
	})
	require.NoError(t, err)
	defer unsub()

	for i := 0; i < 2; i++ {
		_, err := store.Append(ctx, "proj", models.EventCoordinatorDecision, map[string]interface{}{
			"decision": "live",
		})
		require.NoError(t, err)
	}

	// Backlog (1, 3] then live 4, 5: in order, no duplicates, nothing below 2.
	assert.Equal(t, []int64{2, 3, 4, 5}, got)
}

func TestSubscribeIgnoresOtherProjects(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	ctx := context.Background()

	var got []int64
	unsub, err := store.Subscribe(ctx, "mine", 0, func(e models.Event) {
		got = append(got, e.Sequence)
	})
	require.NoError(t, err)
	defer unsub()

	_, err = store.Append(ctx, "theirs", models.EventCoordinatorDecision, map[string]interface{}{"decision": "x"})
	require.NoError(t, err)
	_, err = store.Append(ctx, "mine", models.EventCoordinatorDecision, map[string]interface{}{"decision": "y"})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, got)
}

func TestRebuildReproducesProjections(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	ctx := context.Background()
	project := "proj"

	_, err := store.Append(ctx, project, models.EventAgentRegistered, map[string]interface{}{
		"name": "worker-1", "program": "hive", "model": "large",
	})
	require.NoError(t, err)

	created, err := store.Append(ctx, project, models.EventReservationCreated, map[string]interface{}{
		"agent": "worker-1", "path": "src/**", "exclusive": true,
		"lock_holder_id": "holder-1", "ttl_ms": int64(3600000),
	})
	require.NoError(t, err)
	resID, ok := created.Data["reservation_id"].(int)
	require.True(t, ok, "reservation_created must be enriched with its row id")

	_, err = store.Append(ctx, project, models.EventMessageSent, map[string]interface{}{
		"message_id": "m-1", "from": "worker-1", "to": []string{"coordinator"},
		"subject": "progress update", "body": "done with phase 1", "thread_id": "t-1",
	})
	require.NoError(t, err)

	before, err := client.Reservation.Query().Where(reservation.ProjectKeyEQ(project)).All(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, store.Rebuild(ctx, project))

	// Same rows, same ids, derived purely from the log.
	after, err := client.Reservation.Query().Where(reservation.ProjectKeyEQ(project)).All(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, resID, after[0].ID)
	assert.Equal(t, before[0].PathPattern, after[0].PathPattern)
	assert.Equal(t, before[0].CreatedAt.UnixMilli(), after[0].CreatedAt.UnixMilli())

	agents, err := client.Agent.Query().Where(agent.ProjectKeyEQ(project)).All(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "worker-1", agents[0].Name)

	// The synthetic thread_created follow-up is in the log exactly once,
	// not duplicated by replay.
	threadEvents, err := store.ReadByType(ctx, project, 0, []string{models.EventThreadCreated})
	require.NoError(t, err)
	assert.Len(t, threadEvents, 1)
}
