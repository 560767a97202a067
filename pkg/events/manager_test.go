package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/models"
)

// gatedBacklog blocks Read until released, letting tests interleave live
// dispatch with an in-flight backlog replay.
type gatedBacklog struct {
	release chan struct{}
	events  []models.Event
}

func (b *gatedBacklog) Read(ctx context.Context, project string, fromSeq int64, limit int) ([]models.Event, error) {
	<-b.release
	var out []models.Event
	for _, e := range b.events {
		if e.ProjectKey == project && e.Sequence > fromSeq {
			out = append(out, e)
		}
	}
	return out, nil
}

func backlogEvent(seq int64) models.Event {
	return models.Event{
		ProjectKey: "proj",
		Sequence:   seq,
		Type:       models.EventCoordinatorDecision,
		TsMs:       1700000000000 + seq,
		Data:       map[string]interface{}{"decision": "d"},
	}
}

func livePayload(t *testing.T, seq int64) []byte {
	t.Helper()
	buf, err := json.Marshal(eventFrame(backlogEvent(seq)))
	require.NoError(t, err)
	return buf
}

func frameSequence(t *testing.T, payload []byte) int64 {
	t.Helper()
	var frame struct {
		Sequence int64 `json:"sequence"`
	}
	require.NoError(t, json.Unmarshal(payload, &frame))
	return frame.Sequence
}

// A live frame arriving while the backlog read is still in flight must not
// overtake unread backlog sequences.
func TestSubscribeLocalDeliversBacklogBeforeLive(t *testing.T) {
	backlog := &gatedBacklog{
		release: make(chan struct{}),
		events:  []models.Event{backlogEvent(1), backlogEvent(2), backlogEvent(3)},
	}
	m := NewConnectionManager(backlog, time.Second)

	type attach struct {
		ch     <-chan []byte
		cancel func()
		err    error
	}
	done := make(chan attach, 1)
	go func() {
		ch, cancel, err := m.SubscribeLocal(context.Background(), "proj", 0)
		done <- attach{ch, cancel, err}
	}()

	require.Eventually(t, func() bool {
		m.localsMu.Lock()
		defer m.localsMu.Unlock()
		return len(m.locals) == 1
	}, time.Second, 5*time.Millisecond)

	// Sequence 4 commits while the replay is blocked; Dispatch must wait for
	// the backlog rather than advancing the high-water mark past it.
	dispatched := make(chan struct{})
	go func() {
		m.Dispatch("project:proj", livePayload(t, 4))
		close(dispatched)
	}()

	close(backlog.release)
	sub := <-done
	require.NoError(t, sub.err)
	defer sub.cancel()

	select {
	case <-dispatched:
	case <-time.After(time.Second):
		t.Fatal("dispatch did not complete")
	}

	var got []int64
	for len(got) < 4 {
		select {
		case payload := <-sub.ch:
			got = append(got, frameSequence(t, payload))
		case <-time.After(time.Second):
			t.Fatalf("timed out after %v", got)
		}
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, got)
}

// A live frame at or below the last replayed sequence is a duplicate of the
// backlog and must be dropped.
func TestSubscribeLocalDropsDuplicateLiveFrames(t *testing.T) {
	backlog := &gatedBacklog{
		release: make(chan struct{}),
		events:  []models.Event{backlogEvent(1), backlogEvent(2)},
	}
	close(backlog.release)
	m := NewConnectionManager(backlog, time.Second)

	ch, cancel, err := m.SubscribeLocal(context.Background(), "proj", 0)
	require.NoError(t, err)
	defer cancel()

	m.Dispatch("project:proj", livePayload(t, 2))
	m.Dispatch("project:proj", livePayload(t, 3))

	var got []int64
	for len(got) < 3 {
		select {
		case payload := <-ch:
			got = append(got, frameSequence(t, payload))
		case <-time.After(time.Second):
			t.Fatalf("timed out after %v", got)
		}
	}
	assert.Equal(t, []int64{1, 2, 3}, got)
}

// A subscriber that cannot drain its queue is closed, not silently lagged.
func TestSubscribeLocalClosesOnBackpressure(t *testing.T) {
	backlog := &gatedBacklog{release: make(chan struct{})}
	close(backlog.release)
	m := NewConnectionManager(backlog, time.Second)

	ch, cancel, err := m.SubscribeLocal(context.Background(), "proj", 0)
	require.NoError(t, err)
	defer cancel()

	for seq := int64(1); seq <= localSubBuffer+1; seq++ {
		m.Dispatch("project:proj", livePayload(t, seq))
	}

	drained := 0
	closed := false
	for !closed {
		select {
		case _, ok := <-ch:
			if !ok {
				closed = true
				break
			}
			drained++
		case <-time.After(time.Second):
			t.Fatalf("channel never closed after %d frames", drained)
		}
	}
	assert.Equal(t, localSubBuffer, drained)

	m.localsMu.Lock()
	defer m.localsMu.Unlock()
	assert.Empty(t, m.locals)
}
