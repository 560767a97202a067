// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/beadcomment"
)

// BeadComment is the model entity for the BeadComment schema.
type BeadComment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BeadID holds the value of the "bead_id" field.
	BeadID string `json:"bead_id,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BeadComment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case beadcomment.FieldID:
			values[i] = new(sql.NullInt64)
		case beadcomment.FieldBeadID, beadcomment.FieldAuthor, beadcomment.FieldBody:
			values[i] = new(sql.NullString)
		case beadcomment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BeadComment fields.
func (_m *BeadComment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case beadcomment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case beadcomment.FieldBeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bead_id", values[i])
			} else if value.Valid {
				_m.BeadID = value.String
			}
		case beadcomment.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case beadcomment.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case beadcomment.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BeadComment.
// This includes values selected through modifiers, order, etc.
func (_m *BeadComment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BeadComment.
// Note that you need to call BeadComment.Unwrap() before calling this method if this BeadComment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BeadComment) Update() *BeadCommentUpdateOne {
	return NewBeadCommentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BeadComment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BeadComment) Unwrap() *BeadComment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BeadComment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BeadComment) String() string {
	var builder strings.Builder
	builder.WriteString("BeadComment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bead_id=")
	builder.WriteString(_m.BeadID)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BeadComments is a parsable slice of BeadComment.
type BeadComments []*BeadComment
