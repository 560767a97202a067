package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BeadDependency stores dependency edges between beads.
// Edges live in their own table; traversal is a bounded BFS in
// application code, never nested objects in the schema.
type BeadDependency struct {
	ent.Schema
}

// Fields of the BeadDependency.
func (BeadDependency) Fields() []ent.Field {
	return []ent.Field{
		field.String("bead_id").
			Immutable(),
		field.String("depends_on_id").
			Immutable(),
		field.String("relationship").
			Default("blocks").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BeadDependency.
func (BeadDependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bead_id", "depends_on_id", "relationship").
			Unique(),
		index.Fields("depends_on_id"),
	}
}
