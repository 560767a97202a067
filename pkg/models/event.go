// Package models defines the request/response structs and event variant
// payloads shared by the log store, services, and API layers.
package models

// Event variant discriminators. The data payload of each variant is an
// opaque JSON object; pkg/logstore holds the single exhaustive match site
// that fans variants out into projections.
const (
	EventAgentRegistered = "agent_registered"

	EventMessageSent    = "message_sent"
	EventMessageRead    = "message_read"
	EventMessageAcked   = "message_acked"
	EventThreadCreated  = "thread_created"
	EventThreadActivity = "thread_activity"

	EventReservationCreated          = "reservation_created"
	EventReservationReleased         = "reservation_released"
	EventReservationReleasedAll      = "reservation_released_all"
	EventReservationReleasedForAgent = "reservation_released_for_agent"
	EventFileConflict                = "file_conflict"

	EventCellCreated             = "cell_created"
	EventCellUpdated             = "cell_updated"
	EventCellStatusChanged       = "cell_status_changed"
	EventCellClosed              = "cell_closed"
	EventCellReopened            = "cell_reopened"
	EventCellDeleted             = "cell_deleted"
	EventCellDependencyAdded     = "cell_dependency_added"
	EventCellDependencyRemoved   = "cell_dependency_removed"
	EventCellLabelAdded          = "cell_label_added"
	EventCellLabelRemoved        = "cell_label_removed"
	EventCellCommentAdded        = "cell_comment_added"
	EventCellEpicChildAdded      = "cell_epic_child_added"
	EventCellEpicClosureEligible = "cell_epic_closure_eligible"
	EventCellAssigned            = "cell_assigned"
	EventCellWorkStarted         = "cell_work_started"

	EventSubtaskOutcome        = "subtask_outcome"
	EventReviewFeedback        = "review_feedback"
	EventCoordinatorDecision   = "coordinator_decision"
	EventCoordinatorViolation  = "coordinator_violation"
	EventCoordinatorOutcome    = "coordinator_outcome"
	EventCoordinatorCompaction = "coordinator_compaction"
)

// Event is the wire form of one log row.
type Event struct {
	ID         int                    `json:"id"`
	ProjectKey string                 `json:"project_key"`
	Sequence   int64                  `json:"sequence"`
	Type       string                 `json:"event_type"`
	TsMs       int64                  `json:"ts_ms"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// Message importance levels.
const (
	ImportanceLow    = "low"
	ImportanceNormal = "normal"
	ImportanceHigh   = "high"
	ImportanceUrgent = "urgent"
)

// Subject classifications attached to message_read events.
const (
	ClassProgress = "progress"
	ClassBlocked  = "blocked"
	ClassQuestion = "question"
	ClassStatus   = "status"
	ClassGeneral  = "general"
)

// File conflict resolutions (advisory; the holder keeps its reservation).
const (
	ConflictResolutionWait  = "wait"
	ConflictResolutionForce = "force"
	ConflictResolutionAbort = "abort"
)
