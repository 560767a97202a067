// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/beadlabel"
)

// BeadLabel is the model entity for the BeadLabel schema.
type BeadLabel struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BeadID holds the value of the "bead_id" field.
	BeadID string `json:"bead_id,omitempty"`
	// Label holds the value of the "label" field.
	Label        string `json:"label,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BeadLabel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case beadlabel.FieldID:
			values[i] = new(sql.NullInt64)
		case beadlabel.FieldBeadID, beadlabel.FieldLabel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BeadLabel fields.
func (_m *BeadLabel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case beadlabel.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case beadlabel.FieldBeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bead_id", values[i])
			} else if value.Valid {
				_m.BeadID = value.String
			}
		case beadlabel.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BeadLabel.
// This includes values selected through modifiers, order, etc.
func (_m *BeadLabel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BeadLabel.
// Note that you need to call BeadLabel.Unwrap() before calling this method if this BeadLabel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BeadLabel) Update() *BeadLabelUpdateOne {
	return NewBeadLabelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BeadLabel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BeadLabel) Unwrap() *BeadLabel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BeadLabel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BeadLabel) String() string {
	var builder strings.Builder
	builder.WriteString("BeadLabel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bead_id=")
	builder.WriteString(_m.BeadID)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteByte(')')
	return builder.String()
}

// BeadLabels is a parsable slice of BeadLabel.
type BeadLabels []*BeadLabel
