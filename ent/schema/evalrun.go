package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvalRun records one scored evaluation run for regression detection.
type EvalRun struct {
	ent.Schema
}

// Fields of the EvalRun.
func (EvalRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("eval_name").
			Immutable(),
		field.Float("score").
			Immutable(),
		field.Time("run_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EvalRun.
func (EvalRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("eval_name", "run_at"),
	}
}
