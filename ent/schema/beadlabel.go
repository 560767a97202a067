package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BeadLabel stores free-form labels attached to beads.
type BeadLabel struct {
	ent.Schema
}

// Fields of the BeadLabel.
func (BeadLabel) Fields() []ent.Field {
	return []ent.Field{
		field.String("bead_id").
			Immutable(),
		field.String("label").
			Immutable(),
	}
}

// Indexes of the BeadLabel.
func (BeadLabel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bead_id", "label").
			Unique(),
	}
}
