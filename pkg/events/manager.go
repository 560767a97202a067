package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
)

// heartbeatInterval is the cadence of server heartbeat frames.
const heartbeatInterval = 30 * time.Second

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber of a project attaches. Without it a stalled connection would
// block the client's read loop indefinitely.
const listenTimeout = 10 * time.Second

// localSubBuffer is the outbound queue size for in-process (SSE)
// subscribers. A subscriber that cannot drain it is closed with an error;
// nothing is dropped silently.
const localSubBuffer = 256

// BacklogReader replays committed events after an offset. Implemented by
// the log store.
type BacklogReader interface {
	Read(ctx context.Context, project string, fromSeq int64, limit int) ([]models.Event, error)
}

// ConnectionManager routes event frames to WebSocket clients and in-process
// subscribers. Each server process has one instance.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// Project subscriptions: project → set of connection ids.
	projects  map[string]map[string]bool
	projectMu sync.RWMutex

	// In-process subscribers (the SSE handlers), keyed by subscriber id.
	locals   map[int64]*localSub
	nextSub  int64
	localsMu sync.Mutex

	backlog BacklogReader

	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection is one WebSocket client. Exactly one project subscription is
// active at a time; re-subscribing switches projects.
type Connection struct {
	ID   string
	Conn *websocket.Conn
	ctx  context.Context

	// Guards project and lastSeq. Written by the read loop (subscribe) and
	// read by Dispatch.
	mu      sync.Mutex
	project string
	lastSeq int64
}

type localSub struct {
	project string
	ch      chan []byte

	// Guards lastSeq and closed; held across the backlog replay so live
	// dispatch cannot overtake it.
	mu      sync.Mutex
	lastSeq int64
	closed  bool
}

// NewConnectionManager creates a manager over a backlog reader.
func NewConnectionManager(backlog BacklogReader, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		projects:     make(map[string]map[string]bool),
		locals:       make(map[int64]*localSub),
		backlog:      backlog,
		writeTimeout: writeTimeout,
	}
}

// SetListener attaches the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs one WebSocket client: sends the connected frame,
// starts the heartbeat, and processes subscribe/ping frames until the
// connection closes. Blocks until then.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:   uuid.New().String(),
		Conn: conn,
		ctx:  ctx,
	}

	m.mu.Lock()
	m.connections[c.ID] = c
	m.mu.Unlock()

	defer func() {
		m.detach(c)
		m.mu.Lock()
		delete(m.connections, c.ID)
		m.mu.Unlock()
		cancel()
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	m.sendJSON(c, map[string]interface{}{"type": ServerConnected})

	go m.heartbeatLoop(c)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid websocket frame", "connection_id", c.ID, "error", err)
			continue
		}

		switch msg.Type {
		case ClientSubscribe:
			if err := m.subscribe(ctx, c, msg.Project, msg.Offset); err != nil {
				m.sendJSON(c, map[string]interface{}{
					"type":    ServerError,
					"message": err.Error(),
				})
			}
		case ClientPing:
			m.sendJSON(c, map[string]interface{}{"type": ServerPong})
		}
	}
}

// heartbeatLoop emits a heartbeat frame every heartbeatInterval until the
// connection context ends.
func (m *ConnectionManager) heartbeatLoop(c *Connection) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			m.sendJSON(c, map[string]interface{}{
				"type":      ServerHeartbeat,
				"timestamp": time.Now().UnixMilli(),
			})
		}
	}
}

// subscribe attaches the connection to a project and replays the backlog
// with sequence > offset before live delivery. LISTEN is established
// synchronously first so no event can fall between backlog and live.
func (m *ConnectionManager) subscribe(ctx context.Context, c *Connection, project string, offset int64) error {
	if project == "" {
		return fmt.Errorf("project is required for subscribe")
	}

	m.detach(c)

	if err := m.ensureListen(project); err != nil {
		return err
	}

	// The connection mutex is held from registration through backlog
	// replay. Dispatch blocks on it, so a live frame arriving mid-replay
	// cannot advance lastSeq past unread backlog sequences.
	c.mu.Lock()
	c.project = project
	c.lastSeq = offset

	m.projectMu.Lock()
	if _, ok := m.projects[project]; !ok {
		m.projects[project] = make(map[string]bool)
	}
	m.projects[project][c.ID] = true
	m.projectMu.Unlock()

	backlog, err := m.backlog.Read(ctx, project, offset, 0)
	if err != nil {
		c.mu.Unlock()
		m.detach(c)
		return fmt.Errorf("backlog read failed: %w", err)
	}
	for _, evt := range backlog {
		if evt.Sequence <= c.lastSeq {
			continue
		}
		frame, err := json.Marshal(eventFrame(evt))
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, frame); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("backlog send failed: %w", err)
		}
		c.lastSeq = evt.Sequence
	}
	c.mu.Unlock()
	return nil
}

// detach removes the connection from its current project, if any.
func (m *ConnectionManager) detach(c *Connection) {
	c.mu.Lock()
	project := c.project
	c.project = ""
	c.mu.Unlock()
	if project == "" {
		return
	}

	m.projectMu.Lock()
	if subs, ok := m.projects[project]; ok {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.projects, project)
			m.maybeUnlisten(project)
		}
	}
	m.projectMu.Unlock()
}

// Dispatch routes a raw NOTIFY payload to every subscriber of its project.
// Frames already carry the event envelope; per-subscriber sequence tracking
// drops anything at or below the last delivered sequence, which makes the
// backlog/live handoff exactly-once.
func (m *ConnectionManager) Dispatch(channel string, payload []byte) {
	project := strings.TrimPrefix(channel, "project:")

	var envelope struct {
		Sequence int64 `json:"sequence"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		slog.Warn("undecodable notify payload", "channel", channel, "error", err)
		return
	}

	m.projectMu.RLock()
	ids := make([]string, 0, len(m.projects[project]))
	for id := range m.projects[project] {
		ids = append(ids, id)
	}
	m.projectMu.RUnlock()

	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range conns {
		c.mu.Lock()
		if c.project != project || envelope.Sequence <= c.lastSeq {
			c.mu.Unlock()
			continue
		}
		c.lastSeq = envelope.Sequence
		c.mu.Unlock()
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("websocket send failed, closing subscriber",
				"connection_id", c.ID, "error", err)
			_ = c.Conn.Close(websocket.StatusAbnormalClosure, "send failed")
		}
	}

	m.localsMu.Lock()
	subs := make([]*localSub, 0, len(m.locals))
	for _, sub := range m.locals {
		if sub.project == project {
			subs = append(subs, sub)
		}
	}
	m.localsMu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		if sub.closed || envelope.Sequence <= sub.lastSeq {
			sub.mu.Unlock()
			continue
		}
		sub.lastSeq = envelope.Sequence
		select {
		case sub.ch <- payload:
			sub.mu.Unlock()
		default:
			// Queue full: the subscriber is closed rather than silently
			// losing events; the client reconnects with its last offset.
			sub.closed = true
			close(sub.ch)
			sub.mu.Unlock()
			m.removeLocal(sub)
		}
	}
}

// SubscribeLocal attaches an in-process subscriber (the SSE handler) to a
// project. The backlog after offset is queued first, then live frames.
// The returned cancel detaches the subscriber; the channel closes when the
// subscriber is dropped for backpressure.
func (m *ConnectionManager) SubscribeLocal(ctx context.Context, project string, offset int64) (<-chan []byte, func(), error) {
	if err := m.ensureListen(project); err != nil {
		return nil, nil, err
	}

	sub := &localSub{
		project: project,
		ch:      make(chan []byte, localSubBuffer),
		lastSeq: offset,
	}

	// Held until the backlog is fully queued so Dispatch cannot interleave
	// live frames ahead of unread backlog sequences.
	sub.mu.Lock()

	m.localsMu.Lock()
	m.nextSub++
	id := m.nextSub
	m.locals[id] = sub
	m.localsMu.Unlock()

	cancel := func() {
		m.localsMu.Lock()
		delete(m.locals, id)
		m.localsMu.Unlock()
		sub.mu.Lock()
		if !sub.closed {
			sub.closed = true
			close(sub.ch)
		}
		sub.mu.Unlock()
	}

	backlog, err := m.backlog.Read(ctx, project, offset, 0)
	if err != nil {
		sub.mu.Unlock()
		cancel()
		return nil, nil, fmt.Errorf("backlog read failed: %w", err)
	}
	for _, evt := range backlog {
		if evt.Sequence <= sub.lastSeq {
			continue
		}
		frame, err := json.Marshal(eventFrame(evt))
		if err != nil {
			continue
		}
		select {
		case sub.ch <- frame:
			sub.lastSeq = evt.Sequence
		default:
			sub.mu.Unlock()
			cancel()
			return nil, nil, fmt.Errorf("backlog exceeds subscriber buffer; fetch a snapshot first")
		}
	}
	sub.mu.Unlock()
	return sub.ch, cancel, nil
}

// removeLocal drops a subscriber from the registry after Dispatch closed it
// for backpressure.
func (m *ConnectionManager) removeLocal(sub *localSub) {
	m.localsMu.Lock()
	defer m.localsMu.Unlock()
	for id, s := range m.locals {
		if s == sub {
			delete(m.locals, id)
			return
		}
	}
}

// ensureListen establishes the PG LISTEN for a project's channel.
func (m *ConnectionManager) ensureListen(project string) error {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return nil
	}
	listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()
	if err := l.ListenProject(listenCtx, project); err != nil {
		return fmt.Errorf("listen on %s: %w", logstore.ProjectChannel(project), err)
	}
	return nil
}

// maybeUnlisten drops the PG LISTEN once a project has no subscribers.
// Re-checks under a fresh lock to survive a rapid unsubscribe/resubscribe
// cycle. Local (SSE) subscribers hold the LISTEN too.
func (m *ConnectionManager) maybeUnlisten(project string) {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		m.projectMu.RLock()
		_, resubscribed := m.projects[project]
		m.projectMu.RUnlock()
		if resubscribed {
			return
		}
		m.localsMu.Lock()
		for _, sub := range m.locals {
			if sub.project == project {
				m.localsMu.Unlock()
				return
			}
		}
		m.localsMu.Unlock()
		if err := l.UnlistenProject(context.Background(), project); err != nil {
			slog.Error("UNLISTEN failed", "project", project, "error", err)
		}
	}()
}

// ActiveConnections returns the count of live WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// eventFrame shapes a stored event into the wire envelope used for both
// NOTIFY payloads and backlog frames.
func eventFrame(evt models.Event) map[string]interface{} {
	return map[string]interface{}{
		"type":        ServerEvent,
		"id":          evt.ID,
		"project_key": evt.ProjectKey,
		"sequence":    evt.Sequence,
		"event_type":  evt.Type,
		"ts_ms":       evt.TsMs,
		"data":        evt.Data,
	}
}

// sendJSON marshals and sends one frame.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to marshal websocket frame", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("failed to send websocket frame", "connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes with the write timeout applied.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
