package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Cursor lets external readers resume a stream from a known offset.
type Cursor struct {
	ent.Schema
}

// Fields of the Cursor.
func (Cursor) Fields() []ent.Field {
	return []ent.Field{
		field.String("stream_name").
			Immutable(),
		field.String("checkpoint").
			Optional(),
		field.Int64("position").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Cursor.
func (Cursor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_name").
			Unique(),
	}
}
