package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the append-only coordination log.
// Rows are never updated or deleted; every projection is rebuildable from
// this table alone.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_key").
			Immutable(),
		field.Int64("sequence").
			Immutable().
			Comment("Strictly increasing per project_key; canonical total order"),
		field.String("event_type").
			Immutable().
			Comment("Tagged variant discriminator, see pkg/models/event.go"),
		field.Int64("ts_ms").
			Immutable().
			Comment("Integer milliseconds since epoch; never a string expression"),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Variant payload"),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_key", "sequence").
			Unique(),
		index.Fields("project_key", "event_type"),
	}
}
