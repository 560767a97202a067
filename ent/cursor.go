// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/cursor"
)

// Cursor is the model entity for the Cursor schema.
type Cursor struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StreamName holds the value of the "stream_name" field.
	StreamName string `json:"stream_name,omitempty"`
	// Checkpoint holds the value of the "checkpoint" field.
	Checkpoint string `json:"checkpoint,omitempty"`
	// Position holds the value of the "position" field.
	Position int64 `json:"position,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Cursor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cursor.FieldID, cursor.FieldPosition:
			values[i] = new(sql.NullInt64)
		case cursor.FieldStreamName, cursor.FieldCheckpoint:
			values[i] = new(sql.NullString)
		case cursor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Cursor fields.
func (_m *Cursor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cursor.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cursor.FieldStreamName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_name", values[i])
			} else if value.Valid {
				_m.StreamName = value.String
			}
		case cursor.FieldCheckpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint", values[i])
			} else if value.Valid {
				_m.Checkpoint = value.String
			}
		case cursor.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = value.Int64
			}
		case cursor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Cursor.
// This includes values selected through modifiers, order, etc.
func (_m *Cursor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Cursor.
// Note that you need to call Cursor.Unwrap() before calling this method if this Cursor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Cursor) Update() *CursorUpdateOne {
	return NewCursorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Cursor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Cursor) Unwrap() *Cursor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Cursor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Cursor) String() string {
	var builder strings.Builder
	builder.WriteString("Cursor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stream_name=")
	builder.WriteString(_m.StreamName)
	builder.WriteString(", ")
	builder.WriteString("checkpoint=")
	builder.WriteString(_m.Checkpoint)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cursors is a parsable slice of Cursor.
type Cursors []*Cursor
