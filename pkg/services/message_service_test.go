package services_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
	testdb "github.com/opencoord/hive/test/database"
)

func newMessageFixture(t *testing.T) (*services.MessageService, *logstore.Store, context.Context) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	svc := services.NewMessageService(client.Client, store, slog.Default())
	return svc, store, context.Background()
}

func TestSendCreatesThreadOnce(t *testing.T) {
	svc, store, ctx := newMessageFixture(t)

	first, err := svc.Send(ctx, models.SendMessageRequest{
		ProjectKey: "proj", FromAgent: "a", To: []string{"b"},
		Subject: "kickoff", Body: "starting", ThreadID: "t-1",
	})
	require.NoError(t, err)
	assert.True(t, first.NewThread)

	second, err := svc.Send(ctx, models.SendMessageRequest{
		ProjectKey: "proj", FromAgent: "b", To: []string{"a"},
		Subject: "re: kickoff", Body: "ack", ThreadID: "t-1",
	})
	require.NoError(t, err)
	assert.False(t, second.NewThread)

	events, err := store.ReadByType(ctx, "proj", 0, []string{models.EventThreadCreated})
	require.NoError(t, err)
	assert.Len(t, events, 1, "one thread_created per thread id")
}

func TestInboxClampsToFiveUnread(t *testing.T) {
	svc, _, ctx := newMessageFixture(t)

	for i := 0; i < 8; i++ {
		_, err := svc.Send(ctx, models.SendMessageRequest{
			ProjectKey: "proj", FromAgent: "sender", To: []string{"reader"},
			Subject: fmt.Sprintf("note %d", i), Body: "body",
		})
		require.NoError(t, err)
	}

	items, err := svc.Inbox(ctx, models.InboxRequest{ProjectKey: "proj", Agent: "reader", Limit: 50})
	require.NoError(t, err)
	assert.Len(t, items, 5, "inbox is hard-capped at 5")
	for _, item := range items {
		assert.False(t, item.Read)
	}
}

func TestInboxExcludesReadMessages(t *testing.T) {
	svc, _, ctx := newMessageFixture(t)

	sent, err := svc.Send(ctx, models.SendMessageRequest{
		ProjectKey: "proj", FromAgent: "sender", To: []string{"reader"},
		Subject: "one", Body: "body",
	})
	require.NoError(t, err)

	_, err = svc.ReadMessage(ctx, "proj", "reader", sent.MessageID)
	require.NoError(t, err)

	items, err := svc.Inbox(ctx, models.InboxRequest{ProjectKey: "proj", Agent: "reader"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReadMessageIsWriteOnce(t *testing.T) {
	svc, store, ctx := newMessageFixture(t)

	sent, err := svc.Send(ctx, models.SendMessageRequest{
		ProjectKey: "proj", FromAgent: "sender", To: []string{"reader"},
		Subject: "progress on parser", Body: "halfway",
	})
	require.NoError(t, err)

	view, err := svc.ReadMessage(ctx, "proj", "reader", sent.MessageID)
	require.NoError(t, err)
	assert.Equal(t, models.ClassProgress, view.Classification)
	assert.Equal(t, "halfway", view.Body)
	assert.False(t, view.IsBroadcast)

	_, err = svc.ReadMessage(ctx, "proj", "reader", sent.MessageID)
	require.NoError(t, err)

	reads, err := store.ReadByType(ctx, "proj", 0, []string{models.EventMessageRead})
	require.NoError(t, err)
	assert.Len(t, reads, 1, "second read must not emit another message_read")
}

func TestReadMessageBroadcastFlag(t *testing.T) {
	svc, _, ctx := newMessageFixture(t)

	sent, err := svc.Send(ctx, models.SendMessageRequest{
		ProjectKey: "proj", FromAgent: "coordinator", To: []string{"w1", "w2", "w3"},
		Subject: "announcement", Body: "new plan",
	})
	require.NoError(t, err)

	view, err := svc.ReadMessage(ctx, "proj", "w1", sent.MessageID)
	require.NoError(t, err)
	assert.True(t, view.IsBroadcast, "3 or more recipients is a broadcast")
}

func TestAckRequiresAckRequired(t *testing.T) {
	svc, _, ctx := newMessageFixture(t)

	plain, err := svc.Send(ctx, models.SendMessageRequest{
		ProjectKey: "proj", FromAgent: "a", To: []string{"b"},
		Subject: "fyi", Body: "info",
	})
	require.NoError(t, err)
	err = svc.Ack(ctx, "proj", "b", plain.MessageID)
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	urgent, err := svc.Send(ctx, models.SendMessageRequest{
		ProjectKey: "proj", FromAgent: "a", To: []string{"b"},
		Subject: "confirm receipt", Body: "please ack", AckRequired: true,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Ack(ctx, "proj", "b", urgent.MessageID))

	// Acking also marks read.
	items, err := svc.Inbox(ctx, models.InboxRequest{ProjectKey: "proj", Agent: "b"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEmitThreadActivityAggregates(t *testing.T) {
	svc, store, ctx := newMessageFixture(t)

	for _, from := range []string{"a", "b", "a"} {
		_, err := svc.Send(ctx, models.SendMessageRequest{
			ProjectKey: "proj", FromAgent: from, To: []string{"c"},
			Subject: "thread msg", Body: "x", ThreadID: "t-9",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.EmitThreadActivity(ctx, "proj", "t-9"))

	events, err := store.ReadByType(ctx, "proj", 0, []string{models.EventThreadActivity})
	require.NoError(t, err)
	require.Len(t, events, 1)
	d := events[0].Data
	assert.EqualValues(t, 3, d["message_count"])
	assert.EqualValues(t, 2, d["participant_count"])
	assert.Equal(t, "a", d["last_message_agent"])
}

func TestSendScrubsCredentialsFromBody(t *testing.T) {
	svc, _, ctx := newMessageFixture(t)

	sent, err := svc.Send(ctx, models.SendMessageRequest{
		ProjectKey: "proj", FromAgent: "a", To: []string{"b"},
		Subject: "deploy output", Body: "run failed: API_KEY=sk-live-abc123 rejected",
	})
	require.NoError(t, err)

	view, err := svc.ReadMessage(ctx, "proj", "b", sent.MessageID)
	require.NoError(t, err)
	assert.NotContains(t, view.Body, "sk-live-abc123")
	assert.Contains(t, view.Body, "***MASKED***")
}

func TestClassifySubject(t *testing.T) {
	tests := []struct {
		subject string
		want    string
	}{
		{"Progress on auth module", models.ClassProgress},
		{"BLOCKED on schema migration", models.ClassBlocked},
		{"Which branch should I use?", models.ClassQuestion},
		{"Status report for Monday", models.ClassStatus},
		{"blocked progress", models.ClassProgress},
		{"misc note", models.ClassGeneral},
		{"  trailing question ?", models.ClassQuestion},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.ClassifySubject(tt.subject), tt.subject)
	}
}
