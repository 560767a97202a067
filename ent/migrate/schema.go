// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_key", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "program", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "task_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "registered_at", Type: field.TypeTime},
		{Name: "last_active_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_project_key_name",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[2]},
			},
		},
	}
	// BeadsColumns holds the columns for the "beads" table.
	BeadsColumns = []*schema.Column{
		{Name: "bead_id", Type: field.TypeString, Unique: true},
		{Name: "project_key", Type: field.TypeString},
		{Name: "bead_type", Type: field.TypeEnum, Enums: []string{"bug", "feature", "task", "epic", "chore"}, Default: "task"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "in_progress", "blocked", "closed"}, Default: "open"},
		{Name: "title", Type: field.TypeString, Size: 500},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt, Default: 2},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "assignee", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "closed_reason", Type: field.TypeString, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "delete_reason", Type: field.TypeString, Nullable: true},
	}
	// BeadsTable holds the schema information for the "beads" table.
	BeadsTable = &schema.Table{
		Name:       "beads",
		Columns:    BeadsColumns,
		PrimaryKey: []*schema.Column{BeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bead_project_key_status",
				Unique:  false,
				Columns: []*schema.Column{BeadsColumns[1], BeadsColumns[3]},
			},
			{
				Name:    "bead_parent_id",
				Unique:  false,
				Columns: []*schema.Column{BeadsColumns[7]},
			},
			{
				Name:    "bead_project_key_assignee",
				Unique:  false,
				Columns: []*schema.Column{BeadsColumns[1], BeadsColumns[8]},
			},
		},
	}
	// BeadCommentsColumns holds the columns for the "bead_comments" table.
	BeadCommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "bead_id", Type: field.TypeString},
		{Name: "author", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BeadCommentsTable holds the schema information for the "bead_comments" table.
	BeadCommentsTable = &schema.Table{
		Name:       "bead_comments",
		Columns:    BeadCommentsColumns,
		PrimaryKey: []*schema.Column{BeadCommentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "beadcomment_bead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BeadCommentsColumns[1], BeadCommentsColumns[4]},
			},
		},
	}
	// BeadDependenciesColumns holds the columns for the "bead_dependencies" table.
	BeadDependenciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "bead_id", Type: field.TypeString},
		{Name: "depends_on_id", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeString, Default: "blocks"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BeadDependenciesTable holds the schema information for the "bead_dependencies" table.
	BeadDependenciesTable = &schema.Table{
		Name:       "bead_dependencies",
		Columns:    BeadDependenciesColumns,
		PrimaryKey: []*schema.Column{BeadDependenciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "beaddependency_bead_id_depends_on_id_relationship",
				Unique:  true,
				Columns: []*schema.Column{BeadDependenciesColumns[1], BeadDependenciesColumns[2], BeadDependenciesColumns[3]},
			},
			{
				Name:    "beaddependency_depends_on_id",
				Unique:  false,
				Columns: []*schema.Column{BeadDependenciesColumns[2]},
			},
		},
	}
	// BeadLabelsColumns holds the columns for the "bead_labels" table.
	BeadLabelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "bead_id", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
	}
	// BeadLabelsTable holds the schema information for the "bead_labels" table.
	BeadLabelsTable = &schema.Table{
		Name:       "bead_labels",
		Columns:    BeadLabelsColumns,
		PrimaryKey: []*schema.Column{BeadLabelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "beadlabel_bead_id_label",
				Unique:  true,
				Columns: []*schema.Column{BeadLabelsColumns[1], BeadLabelsColumns[2]},
			},
		},
	}
	// CursorsColumns holds the columns for the "cursors" table.
	CursorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stream_name", Type: field.TypeString},
		{Name: "checkpoint", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CursorsTable holds the schema information for the "cursors" table.
	CursorsTable = &schema.Table{
		Name:       "cursors",
		Columns:    CursorsColumns,
		PrimaryKey: []*schema.Column{CursorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cursor_stream_name",
				Unique:  true,
				Columns: []*schema.Column{CursorsColumns[1]},
			},
		},
	}
	// DeferredColumns holds the columns for the "deferred" table.
	DeferredColumns = []*schema.Column{
		{Name: "url", Type: field.TypeString, Unique: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "value", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// DeferredTable holds the schema information for the "deferred" table.
	DeferredTable = &schema.Table{
		Name:       "deferred",
		Columns:    DeferredColumns,
		PrimaryKey: []*schema.Column{DeferredColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deferred_resolved_expires_at",
				Unique:  false,
				Columns: []*schema.Column{DeferredColumns[1], DeferredColumns[4]},
			},
		},
	}
	// EvalRunsColumns holds the columns for the "eval_runs" table.
	EvalRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "eval_name", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "run_at", Type: field.TypeTime},
	}
	// EvalRunsTable holds the schema information for the "eval_runs" table.
	EvalRunsTable = &schema.Table{
		Name:       "eval_runs",
		Columns:    EvalRunsColumns,
		PrimaryKey: []*schema.Column{EvalRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evalrun_eval_name_run_at",
				Unique:  false,
				Columns: []*schema.Column{EvalRunsColumns[1], EvalRunsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_key", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "event_type", Type: field.TypeString},
		{Name: "ts_ms", Type: field.TypeInt64},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_project_key_sequence",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[2]},
			},
			{
				Name:    "event_project_key_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "project_key", Type: field.TypeString},
		{Name: "from_agent", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "importance", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "urgent"}, Default: "normal"},
		{Name: "ack_required", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_project_key_thread_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[5]},
			},
			{
				Name:    "message_project_key_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[8]},
			},
		},
	}
	// MessageRecipientsColumns holds the columns for the "message_recipients" table.
	MessageRecipientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "acked_at", Type: field.TypeTime, Nullable: true},
		{Name: "message_id", Type: field.TypeString},
	}
	// MessageRecipientsTable holds the schema information for the "message_recipients" table.
	MessageRecipientsTable = &schema.Table{
		Name:       "message_recipients",
		Columns:    MessageRecipientsColumns,
		PrimaryKey: []*schema.Column{MessageRecipientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_recipients_messages_recipients",
				Columns:    []*schema.Column{MessageRecipientsColumns[4]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "messagerecipient_message_id_agent_name",
				Unique:  true,
				Columns: []*schema.Column{MessageRecipientsColumns[4], MessageRecipientsColumns[1]},
			},
			{
				Name:    "messagerecipient_agent_name_read_at",
				Unique:  false,
				Columns: []*schema.Column{MessageRecipientsColumns[1], MessageRecipientsColumns[2]},
			},
		},
	}
	// ReservationsColumns holds the columns for the "reservations" table.
	ReservationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_key", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "path_pattern", Type: field.TypeString},
		{Name: "exclusive", Type: field.TypeBool, Default: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "lock_holder_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "release_reason", Type: field.TypeString, Nullable: true},
	}
	// ReservationsTable holds the schema information for the "reservations" table.
	ReservationsTable = &schema.Table{
		Name:       "reservations",
		Columns:    ReservationsColumns,
		PrimaryKey: []*schema.Column{ReservationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reservation_project_key_released_at",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[1], ReservationsColumns[9]},
			},
			{
				Name:    "reservation_project_key_agent_name",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[1], ReservationsColumns[2]},
			},
		},
	}
	// SwarmContextsColumns holds the columns for the "swarm_contexts" table.
	SwarmContextsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "project_key", Type: field.TypeString},
		{Name: "is_coordinator", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SwarmContextsTable holds the schema information for the "swarm_contexts" table.
	SwarmContextsTable = &schema.Table{
		Name:       "swarm_contexts",
		Columns:    SwarmContextsColumns,
		PrimaryKey: []*schema.Column{SwarmContextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "swarmcontext_session_id",
				Unique:  true,
				Columns: []*schema.Column{SwarmContextsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		BeadsTable,
		BeadCommentsTable,
		BeadDependenciesTable,
		BeadLabelsTable,
		CursorsTable,
		DeferredTable,
		EvalRunsTable,
		EventsTable,
		MessagesTable,
		MessageRecipientsTable,
		ReservationsTable,
		SwarmContextsTable,
	}
)

func init() {
	DeferredTable.Annotation = &entsql.Annotation{
		Table: "deferred",
	}
	MessageRecipientsTable.ForeignKeys[0].RefTable = MessagesTable
}
