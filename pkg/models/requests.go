package models

import "time"

// RegisterAgentRequest registers or touches an agent.
type RegisterAgentRequest struct {
	ProjectKey      string `json:"project_key"`
	Name            string `json:"name"`
	Program         string `json:"program,omitempty"`
	Model           string `json:"model,omitempty"`
	TaskDescription string `json:"task_description,omitempty"`
}

// SendMessageRequest sends a durable message to one or more agents.
type SendMessageRequest struct {
	ProjectKey  string   `json:"project_key"`
	FromAgent   string   `json:"from_agent"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	ThreadID    string   `json:"thread_id,omitempty"`
	Importance  string   `json:"importance,omitempty"`
	AckRequired bool     `json:"ack_required,omitempty"`
}

// InboxRequest fetches message headers for an agent.
// Limit is hard-capped at 5 regardless of the requested value.
type InboxRequest struct {
	ProjectKey string `json:"project_key"`
	Agent      string `json:"agent"`
	Limit      int    `json:"limit,omitempty"`
	UrgentOnly bool   `json:"urgent_only,omitempty"`
}

// InboxItem is a headers-only inbox row. It never carries the body.
type InboxItem struct {
	MessageID   string    `json:"message_id"`
	FromAgent   string    `json:"from_agent"`
	Subject     string    `json:"subject"`
	ThreadID    string    `json:"thread_id,omitempty"`
	Importance  string    `json:"importance"`
	AckRequired bool      `json:"ack_required"`
	CreatedAt   time.Time `json:"created_at"`
	Read        bool      `json:"read"`
}

// ReserveRequest asks for exclusive ownership of a set of paths.
type ReserveRequest struct {
	ProjectKey string        `json:"project_key"`
	Agent      string        `json:"agent"`
	Paths      []string      `json:"paths"`
	Exclusive  bool          `json:"exclusive"`
	Reason     string        `json:"reason,omitempty"`
	TTL        time.Duration `json:"-"`
}

// ReservationGrant is one granted path from a reserve call.
type ReservationGrant struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// ReservationConflict reports a path held by another agent.
type ReservationConflict struct {
	Path        string `json:"path"`
	HolderAgent string `json:"holder"`
	HolderID    int    `json:"holder_id"`
}

// ReserveResult carries the granted and conflicting subsets of a request.
// A request never aborts on first conflict; conflicts are collected for
// every path so the caller can decide how to proceed.
type ReserveResult struct {
	Granted   []ReservationGrant    `json:"granted"`
	Conflicts []ReservationConflict `json:"conflicts"`
}

// ReleaseRequest releases the caller's reservations. With neither Paths
// nor IDs set it releases everything the caller holds.
type ReleaseRequest struct {
	ProjectKey string   `json:"project_key"`
	Agent      string   `json:"agent"`
	Paths      []string `json:"paths,omitempty"`
	IDs        []int    `json:"ids,omitempty"`
}

// CreateBeadRequest creates a work unit.
type CreateBeadRequest struct {
	ProjectKey  string `json:"project_key"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority"`
	ParentID    string `json:"parent_id,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// CellNode is one node of the cells projection in tree form.
type CellNode struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Status   string      `json:"status"`
	Title    string      `json:"title"`
	Priority int         `json:"priority"`
	Assignee string      `json:"assignee,omitempty"`
	Children []*CellNode `json:"children,omitempty"`
}

// CellsResponse is the wire shape of GET /cells, shared with the CLI.
type CellsResponse struct {
	ProjectKey string      `json:"project_key"`
	Cells      []*CellNode `json:"cells"`
}

// ToolEnvelope is the uniform JSON envelope returned by tool-facing
// operations: {success, data? | error, guard?}.
type ToolEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Guard   string      `json:"guard,omitempty"`
}
