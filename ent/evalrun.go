// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/evalrun"
)

// EvalRun is the model entity for the EvalRun schema.
type EvalRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EvalName holds the value of the "eval_name" field.
	EvalName string `json:"eval_name,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// RunAt holds the value of the "run_at" field.
	RunAt        time.Time `json:"run_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvalRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evalrun.FieldScore:
			values[i] = new(sql.NullFloat64)
		case evalrun.FieldID:
			values[i] = new(sql.NullInt64)
		case evalrun.FieldEvalName:
			values[i] = new(sql.NullString)
		case evalrun.FieldRunAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvalRun fields.
func (_m *EvalRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evalrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evalrun.FieldEvalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field eval_name", values[i])
			} else if value.Valid {
				_m.EvalName = value.String
			}
		case evalrun.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case evalrun.FieldRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field run_at", values[i])
			} else if value.Valid {
				_m.RunAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvalRun.
// This includes values selected through modifiers, order, etc.
func (_m *EvalRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvalRun.
// Note that you need to call EvalRun.Unwrap() before calling this method if this EvalRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvalRun) Update() *EvalRunUpdateOne {
	return NewEvalRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvalRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvalRun) Unwrap() *EvalRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvalRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvalRun) String() string {
	var builder strings.Builder
	builder.WriteString("EvalRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("eval_name=")
	builder.WriteString(_m.EvalName)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("run_at=")
	builder.WriteString(_m.RunAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvalRuns is a parsable slice of EvalRun.
type EvalRuns []*EvalRun
