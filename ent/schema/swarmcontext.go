package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SwarmContext records per-session coordination state.
// The coordinator flag is set exactly once per session by out-of-band
// setup; it is never exposed as a worker-callable operation.
type SwarmContext struct {
	ent.Schema
}

// Fields of the SwarmContext.
func (SwarmContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.String("project_key").
			Immutable(),
		field.Bool("is_coordinator").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SwarmContext.
func (SwarmContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").
			Unique(),
	}
}
