// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/beaddependency"
)

// BeadDependency is the model entity for the BeadDependency schema.
type BeadDependency struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BeadID holds the value of the "bead_id" field.
	BeadID string `json:"bead_id,omitempty"`
	// DependsOnID holds the value of the "depends_on_id" field.
	DependsOnID string `json:"depends_on_id,omitempty"`
	// Relationship holds the value of the "relationship" field.
	Relationship string `json:"relationship,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BeadDependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case beaddependency.FieldID:
			values[i] = new(sql.NullInt64)
		case beaddependency.FieldBeadID, beaddependency.FieldDependsOnID, beaddependency.FieldRelationship:
			values[i] = new(sql.NullString)
		case beaddependency.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BeadDependency fields.
func (_m *BeadDependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case beaddependency.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case beaddependency.FieldBeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bead_id", values[i])
			} else if value.Valid {
				_m.BeadID = value.String
			}
		case beaddependency.FieldDependsOnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on_id", values[i])
			} else if value.Valid {
				_m.DependsOnID = value.String
			}
		case beaddependency.FieldRelationship:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship", values[i])
			} else if value.Valid {
				_m.Relationship = value.String
			}
		case beaddependency.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BeadDependency.
// This includes values selected through modifiers, order, etc.
func (_m *BeadDependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BeadDependency.
// Note that you need to call BeadDependency.Unwrap() before calling this method if this BeadDependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BeadDependency) Update() *BeadDependencyUpdateOne {
	return NewBeadDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BeadDependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BeadDependency) Unwrap() *BeadDependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BeadDependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BeadDependency) String() string {
	var builder strings.Builder
	builder.WriteString("BeadDependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bead_id=")
	builder.WriteString(_m.BeadID)
	builder.WriteString(", ")
	builder.WriteString("depends_on_id=")
	builder.WriteString(_m.DependsOnID)
	builder.WriteString(", ")
	builder.WriteString("relationship=")
	builder.WriteString(_m.Relationship)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BeadDependencies is a parsable slice of BeadDependency.
type BeadDependencies []*BeadDependency
