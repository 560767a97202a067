package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reservation holds the schema definition for file-path locks.
// A reservation is active iff released_at IS NULL AND
// (expires_at IS NULL OR expires_at > now). released_at is monotonic:
// release updates the row, it never creates a new one.
type Reservation struct {
	ent.Schema
}

// Fields of the Reservation.
func (Reservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_key").
			Immutable(),
		field.String("agent_name").
			Immutable(),
		field.String("path_pattern").
			Immutable().
			Comment("Literal path or doublestar glob"),
		field.Bool("exclusive").
			Default(true).
			Immutable(),
		field.String("reason").
			Optional().
			Immutable(),
		field.String("lock_holder_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("released_at").
			Optional().
			Nillable(),
		field.String("release_reason").
			Optional(),
	}
}

// Indexes of the Reservation.
func (Reservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_key", "released_at"),
		index.Fields("project_key", "agent_name"),
	}
}
