// Package logstore implements the append-only coordination log and the
// projections derived from it. Every mutation in the system goes through
// Append: the event row, all projection updates, and the NOTIFY broadcast
// commit in a single transaction or not at all.
package logstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/opencoord/hive/pkg/models"
)

// Sentinel errors for log store operations.
var (
	// ErrStorageUnavailable indicates the backing store failed; the append
	// was rolled back atomically and the caller may retry.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidEvent indicates a malformed event (unknown type, bad payload).
	ErrInvalidEvent = errors.New("invalid event")
)

// notifyLimit is PostgreSQL's NOTIFY payload budget. Payloads above it are
// replaced with a minimal envelope carrying only routing fields; clients
// fetch the full event through the streams endpoint.
const notifyLimit = 7900

// ProjectChannel returns the NOTIFY channel name for a project's events.
// Format: "project:{key}"
func ProjectChannel(project string) string {
	return "project:" + project
}

// Store is the single-writer boundary over the event log.
type Store struct {
	db *sql.DB

	// Local (in-process) subscribers, keyed by a monotonically increasing
	// subscription id. Cross-process delivery goes through LISTEN/NOTIFY.
	mu        sync.Mutex
	subs      map[int64]*subscription
	nextSubID int64
}

type subscription struct {
	project string
	fn      func(models.Event)
}

// New creates a Store over the shared database handle.
func New(db *sql.DB) *Store {
	return &Store{
		db:   db,
		subs: make(map[int64]*subscription),
	}
}

// Append records one event and applies its projection updates atomically.
// The returned event carries the assigned sequence and any enrichment the
// projection added (e.g. the reservation row id).
func (s *Store) Append(ctx context.Context, project, eventType string, data map[string]interface{}) (models.Event, error) {
	return s.AppendAt(ctx, project, eventType, time.Now().UnixMilli(), data)
}

// AppendAt is Append with an explicit timestamp. Used when importing
// events that carry their own recorded time.
func (s *Store) AppendAt(ctx context.Context, project, eventType string, tsMs int64, data map[string]interface{}) (models.Event, error) {
	if project == "" {
		return models.Event{}, fmt.Errorf("%w: project_key is required", ErrInvalidEvent)
	}
	if eventType == "" {
		return models.Event{}, fmt.Errorf("%w: event_type is required", ErrInvalidEvent)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: begin: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	evt, extra, err := s.appendInTx(ctx, tx, project, eventType, tsMs, data)
	if err != nil {
		return models.Event{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Event{}, fmt.Errorf("%w: commit: %v", ErrStorageUnavailable, err)
	}

	s.dispatchLocal(evt)
	for _, e := range extra {
		s.dispatchLocal(e)
	}
	return evt, nil
}

// BatchInput is one event of an atomic batch append.
type BatchInput struct {
	Type string
	Data map[string]interface{}
}

// AppendBatch records several events in a single transaction. check, when
// non-nil, runs after the projection writes and before commit; an error
// from it rolls the entire batch back and is returned unchanged. Used by
// the reservation engine to grant a path set all-or-nothing.
func (s *Store) AppendBatch(ctx context.Context, project string, inputs []BatchInput, check func(ctx context.Context, evts []models.Event) error) ([]models.Event, error) {
	if project == "" {
		return nil, fmt.Errorf("%w: project_key is required", ErrInvalidEvent)
	}
	if len(inputs) == 0 {
		return nil, nil
	}
	for _, in := range inputs {
		if in.Type == "" {
			return nil, fmt.Errorf("%w: event_type is required", ErrInvalidEvent)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	tsMs := time.Now().UnixMilli()
	evts := make([]models.Event, 0, len(inputs))
	var extras []models.Event
	for _, in := range inputs {
		evt, nested, err := s.appendInTx(ctx, tx, project, in.Type, tsMs, in.Data)
		if err != nil {
			return nil, err
		}
		evts = append(evts, evt)
		extras = append(extras, nested...)
	}

	if check != nil {
		if err := check(ctx, evts); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrStorageUnavailable, err)
	}

	for _, e := range evts {
		s.dispatchLocal(e)
	}
	for _, e := range extras {
		s.dispatchLocal(e)
	}
	return evts, nil
}

// appendInTx assigns the sequence, inserts the event, fans it out to the
// projections, and queues the NOTIFY. Synthetic follow-up events (e.g.
// thread_created) are appended recursively within the same transaction and
// returned so local subscribers see them too.
func (s *Store) appendInTx(ctx context.Context, tx *sql.Tx, project, eventType string, tsMs int64, data map[string]interface{}) (models.Event, []models.Event, error) {
	var seq int64
	err := tx.QueryRowContext(ctx,
		`INSERT INTO log_heads (project_key, seq) VALUES ($1, 1)
		 ON CONFLICT (project_key) DO UPDATE SET seq = log_heads.seq + 1
		 RETURNING seq`,
		project,
	).Scan(&seq)
	if err != nil {
		return models.Event{}, nil, fmt.Errorf("%w: allocate sequence: %v", ErrStorageUnavailable, err)
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return models.Event{}, nil, fmt.Errorf("%w: marshal data: %v", ErrInvalidEvent, err)
	}

	var id int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (project_key, sequence, event_type, ts_ms, data)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		project, seq, eventType, tsMs, payload,
	).Scan(&id)
	if err != nil {
		return models.Event{}, nil, fmt.Errorf("%w: insert event: %v", ErrStorageUnavailable, err)
	}

	evt := models.Event{
		ID:         id,
		ProjectKey: project,
		Sequence:   seq,
		Type:       eventType,
		TsMs:       tsMs,
		Data:       data,
	}

	enriched, followUps, err := s.applyProjection(ctx, tx, &evt)
	if err != nil {
		return models.Event{}, nil, err
	}

	// Projection enrichment (assigned row ids) is written back to the event
	// row before commit so that replay reproduces identical projection rows.
	if enriched {
		payload, err = json.Marshal(evt.Data)
		if err != nil {
			return models.Event{}, nil, fmt.Errorf("%w: marshal enriched data: %v", ErrInvalidEvent, err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE events SET data = $1 WHERE id = $2`, payload, id); err != nil {
			return models.Event{}, nil, fmt.Errorf("%w: enrich event: %v", ErrStorageUnavailable, err)
		}
	}

	if err := s.notifyInTx(ctx, tx, evt); err != nil {
		return models.Event{}, nil, err
	}

	var extras []models.Event
	for _, f := range followUps {
		fe, nested, err := s.appendInTx(ctx, tx, project, f.eventType, tsMs, f.data)
		if err != nil {
			return models.Event{}, nil, err
		}
		extras = append(extras, fe)
		extras = append(extras, nested...)
	}

	return evt, extras, nil
}

// notifyInTx queues a pg_notify for the event. pg_notify is transactional:
// the notification is held until COMMIT, so listeners never observe an
// event that is not yet in the log.
func (s *Store) notifyInTx(ctx context.Context, tx *sql.Tx, evt models.Event) error {
	wire := map[string]interface{}{
		"type":        "event",
		"id":          evt.ID,
		"project_key": evt.ProjectKey,
		"sequence":    evt.Sequence,
		"event_type":  evt.Type,
		"ts_ms":       evt.TsMs,
		"data":        evt.Data,
	}
	buf, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("%w: marshal notify payload: %v", ErrInvalidEvent, err)
	}
	if len(buf) > notifyLimit {
		truncated := map[string]interface{}{
			"type":        "event",
			"id":          evt.ID,
			"project_key": evt.ProjectKey,
			"sequence":    evt.Sequence,
			"event_type":  evt.Type,
			"ts_ms":       evt.TsMs,
			"truncated":   true,
		}
		if buf, err = json.Marshal(truncated); err != nil {
			return fmt.Errorf("%w: marshal truncated payload: %v", ErrInvalidEvent, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_notify($1, $2)`, ProjectChannel(evt.ProjectKey), string(buf)); err != nil {
		return fmt.Errorf("%w: pg_notify: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Subscribe registers an in-process callback for committed events of a
// project, starting after fromSeq. The backlog (fromSeq, tail] is replayed
// synchronously before live delivery attaches, mirroring the catchup
// contract of the fan-out server. Returns an unsubscribe function.
func (s *Store) Subscribe(ctx context.Context, project string, fromSeq int64, fn func(models.Event)) (func(), error) {
	// The gate is held from registration until the backlog is fully
	// delivered. Live dispatch blocks on it, so a concurrent append cannot
	// advance the high-water mark past unread backlog sequences.
	last := fromSeq
	var gate sync.Mutex
	gate.Lock()

	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = &subscription{
		project: project,
		fn: func(e models.Event) {
			gate.Lock()
			defer gate.Unlock()
			if e.Sequence <= last {
				return
			}
			last = e.Sequence
			fn(e)
		},
	}
	s.mu.Unlock()

	unsub := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}

	backlog, err := s.Read(ctx, project, fromSeq, 0)
	if err != nil {
		gate.Unlock()
		unsub()
		return nil, err
	}
	for _, e := range backlog {
		if e.Sequence <= last {
			continue
		}
		last = e.Sequence
		fn(e)
	}
	gate.Unlock()

	return unsub, nil
}

// dispatchLocal delivers a committed event to in-process subscribers.
func (s *Store) dispatchLocal(evt models.Event) {
	s.mu.Lock()
	fns := make([]func(models.Event), 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.project == evt.ProjectKey {
			fns = append(fns, sub.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(evt)
	}
}
