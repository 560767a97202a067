package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for registered agents.
// Projection of agent_registered events; identity is (project_key, name)
// with first-writer-wins semantics.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_key").
			Immutable(),
		field.String("name").
			Immutable(),
		field.String("program").
			Optional(),
		field.String("model").
			Optional(),
		field.Text("task_description").
			Optional(),
		field.Time("registered_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_active_at").
			Default(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_key", "name").
			Unique(),
	}
}
