package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Bead holds the schema definition for work units (cells).
// Root ids are {project}-{hash}; subtask ids are {parent}.{index}.
// Tombstoned rows (deleted_at set) are excluded from default queries.
type Bead struct {
	ent.Schema
}

// Fields of the Bead.
func (Bead) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bead_id").
			Unique().
			Immutable(),
		field.String("project_key").
			Immutable(),
		field.Enum("bead_type").
			Values("bug", "feature", "task", "epic", "chore").
			Default("task"),
		field.Enum("status").
			Values("open", "in_progress", "blocked", "closed").
			Default("open"),
		field.String("title").
			MaxLen(500),
		field.Text("description").
			Optional(),
		field.Int("priority").
			Default(2).
			Min(0).
			Max(4).
			Comment("0 is highest"),
		field.String("parent_id").
			Optional(),
		field.String("assignee").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("closed_at").
			Optional().
			Nillable(),
		field.String("closed_reason").
			Optional(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Tombstone marker"),
		field.String("delete_reason").
			Optional(),
	}
}

// Indexes of the Bead.
func (Bead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_key", "status"),
		index.Fields("parent_id"),
		index.Fields("project_key", "assignee"),
	}
}
