package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageRecipient tracks per-recipient delivery state.
// read_at is set on first read_message; acked_at only when the message
// was sent with ack_required.
type MessageRecipient struct {
	ent.Schema
}

// Fields of the MessageRecipient.
func (MessageRecipient) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id").
			Immutable(),
		field.String("agent_name").
			Immutable(),
		field.Time("read_at").
			Optional().
			Nillable(),
		field.Time("acked_at").
			Optional().
			Nillable(),
	}
}

// Edges of the MessageRecipient.
func (MessageRecipient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", Message.Type).
			Ref("recipients").
			Field("message_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MessageRecipient.
func (MessageRecipient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "agent_name").
			Unique(),
		index.Fields("agent_name", "read_at"),
	}
}
