// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/swarmcontext"
)

// SwarmContext is the model entity for the SwarmContext schema.
type SwarmContext struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ProjectKey holds the value of the "project_key" field.
	ProjectKey string `json:"project_key,omitempty"`
	// IsCoordinator holds the value of the "is_coordinator" field.
	IsCoordinator bool `json:"is_coordinator,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SwarmContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case swarmcontext.FieldIsCoordinator:
			values[i] = new(sql.NullBool)
		case swarmcontext.FieldID:
			values[i] = new(sql.NullInt64)
		case swarmcontext.FieldSessionID, swarmcontext.FieldProjectKey:
			values[i] = new(sql.NullString)
		case swarmcontext.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SwarmContext fields.
func (_m *SwarmContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case swarmcontext.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case swarmcontext.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case swarmcontext.FieldProjectKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_key", values[i])
			} else if value.Valid {
				_m.ProjectKey = value.String
			}
		case swarmcontext.FieldIsCoordinator:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_coordinator", values[i])
			} else if value.Valid {
				_m.IsCoordinator = value.Bool
			}
		case swarmcontext.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SwarmContext.
// This includes values selected through modifiers, order, etc.
func (_m *SwarmContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SwarmContext.
// Note that you need to call SwarmContext.Unwrap() before calling this method if this SwarmContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SwarmContext) Update() *SwarmContextUpdateOne {
	return NewSwarmContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SwarmContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SwarmContext) Unwrap() *SwarmContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SwarmContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SwarmContext) String() string {
	var builder strings.Builder
	builder.WriteString("SwarmContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("project_key=")
	builder.WriteString(_m.ProjectKey)
	builder.WriteString(", ")
	builder.WriteString("is_coordinator=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCoordinator))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SwarmContexts is a parsable slice of SwarmContext.
type SwarmContexts []*SwarmContext
