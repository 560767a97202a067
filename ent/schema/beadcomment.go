package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BeadComment stores discussion comments on beads.
type BeadComment struct {
	ent.Schema
}

// Fields of the BeadComment.
func (BeadComment) Fields() []ent.Field {
	return []ent.Field{
		field.String("bead_id").
			Immutable(),
		field.String("author").
			Immutable(),
		field.Text("body").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BeadComment.
func (BeadComment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bead_id", "created_at"),
	}
}
