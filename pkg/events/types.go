// Package events fans the committed event log out to live subscribers.
// Cross-process delivery rides PostgreSQL LISTEN/NOTIFY: the log store
// queues a pg_notify in the append transaction, the NotifyListener holds
// one dedicated connection, and the ConnectionManager routes payloads to
// WebSocket clients and in-process (SSE) subscribers.
package events

// ClientMessage is a frame sent by a WebSocket client.
type ClientMessage struct {
	Type    string `json:"type"`
	Project string `json:"project,omitempty"`
	Offset  int64  `json:"offset,omitempty"`
}

// Client frame types.
const (
	ClientSubscribe = "subscribe"
	ClientPing      = "ping"
)

// Server frame types. Every server frame is one JSON object with a type tag.
const (
	ServerConnected = "connected"
	ServerEvent     = "event"
	ServerHeartbeat = "heartbeat"
	ServerPong      = "pong"
	ServerError     = "error"
)
