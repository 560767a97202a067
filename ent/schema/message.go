package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for durable inter-agent messages.
// Projection of message_sent events. The inbox query never returns body;
// bodies are fetched one at a time through read_message.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("project_key").
			Immutable(),
		field.String("from_agent").
			Immutable(),
		field.String("subject").
			Immutable(),
		field.Text("body").
			Immutable(),
		field.String("thread_id").
			Optional().
			Immutable(),
		field.Enum("importance").
			Values("low", "normal", "high", "urgent").
			Default("normal").
			Immutable(),
		field.Bool("ack_required").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("recipients", MessageRecipient.Type),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_key", "thread_id"),
		index.Fields("project_key", "created_at"),
	}
}
