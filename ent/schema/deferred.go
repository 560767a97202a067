package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deferred holds the schema definition for durable cross-process promises.
// One side resolves, the other awaits; the url is the only shared state.
// Exactly one transition from created to resolved; later resolves are
// ignored idempotently.
type Deferred struct {
	ent.Schema
}

// Annotations of the Deferred.
func (Deferred) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "deferred"},
	}
}

// Fields of the Deferred.
func (Deferred) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("url").
			Unique().
			Immutable().
			Comment("Caller-opaque url of the shape deferred:<uuid>"),
		field.Bool("resolved").
			Default(false),
		field.JSON("value", map[string]interface{}{}).
			Optional(),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Deferred.
func (Deferred) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resolved", "expires_at"),
	}
}
