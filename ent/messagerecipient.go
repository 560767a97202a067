// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/message"
	"github.com/opencoord/hive/ent/messagerecipient"
)

// MessageRecipient is the model entity for the MessageRecipient schema.
type MessageRecipient struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID string `json:"message_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// ReadAt holds the value of the "read_at" field.
	ReadAt *time.Time `json:"read_at,omitempty"`
	// AckedAt holds the value of the "acked_at" field.
	AckedAt *time.Time `json:"acked_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageRecipientQuery when eager-loading is set.
	Edges        MessageRecipientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageRecipientEdges holds the relations/edges for other nodes in the graph.
type MessageRecipientEdges struct {
	// Message holds the value of the message edge.
	Message *Message `json:"message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessageOrErr returns the Message value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageRecipientEdges) MessageOrErr() (*Message, error) {
	if e.Message != nil {
		return e.Message, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: message.Label}
	}
	return nil, &NotLoadedError{edge: "message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageRecipient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagerecipient.FieldID:
			values[i] = new(sql.NullInt64)
		case messagerecipient.FieldMessageID, messagerecipient.FieldAgentName:
			values[i] = new(sql.NullString)
		case messagerecipient.FieldReadAt, messagerecipient.FieldAckedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageRecipient fields.
func (_m *MessageRecipient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagerecipient.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case messagerecipient.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case messagerecipient.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case messagerecipient.FieldReadAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field read_at", values[i])
			} else if value.Valid {
				_m.ReadAt = new(time.Time)
				*_m.ReadAt = value.Time
			}
		case messagerecipient.FieldAckedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acked_at", values[i])
			} else if value.Valid {
				_m.AckedAt = new(time.Time)
				*_m.AckedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageRecipient.
// This includes values selected through modifiers, order, etc.
func (_m *MessageRecipient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessage queries the "message" edge of the MessageRecipient entity.
func (_m *MessageRecipient) QueryMessage() *MessageQuery {
	return NewMessageRecipientClient(_m.config).QueryMessage(_m)
}

// Update returns a builder for updating this MessageRecipient.
// Note that you need to call MessageRecipient.Unwrap() before calling this method if this MessageRecipient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageRecipient) Update() *MessageRecipientUpdateOne {
	return NewMessageRecipientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageRecipient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageRecipient) Unwrap() *MessageRecipient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageRecipient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageRecipient) String() string {
	var builder strings.Builder
	builder.WriteString("MessageRecipient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	if v := _m.ReadAt; v != nil {
		builder.WriteString("read_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AckedAt; v != nil {
		builder.WriteString("acked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MessageRecipients is a parsable slice of MessageRecipient.
type MessageRecipients []*MessageRecipient
