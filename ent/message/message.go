// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldProjectKey holds the string denoting the project_key field in the database.
	FieldProjectKey = "project_key"
	// FieldFromAgent holds the string denoting the from_agent field in the database.
	FieldFromAgent = "from_agent"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldImportance holds the string denoting the importance field in the database.
	FieldImportance = "importance"
	// FieldAckRequired holds the string denoting the ack_required field in the database.
	FieldAckRequired = "ack_required"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRecipients holds the string denoting the recipients edge name in mutations.
	EdgeRecipients = "recipients"
	// MessageRecipientFieldID holds the string denoting the ID field of the MessageRecipient.
	MessageRecipientFieldID = "id"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// RecipientsTable is the table that holds the recipients relation/edge.
	RecipientsTable = "message_recipients"
	// RecipientsInverseTable is the table name for the MessageRecipient entity.
	// It exists in this package in order to avoid circular dependency with the "messagerecipient" package.
	RecipientsInverseTable = "message_recipients"
	// RecipientsColumn is the table column denoting the recipients relation/edge.
	RecipientsColumn = "message_id"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldProjectKey,
	FieldFromAgent,
	FieldSubject,
	FieldBody,
	FieldThreadID,
	FieldImportance,
	FieldAckRequired,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAckRequired holds the default value on creation for the "ack_required" field.
	DefaultAckRequired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Importance defines the type for the "importance" enum field.
type Importance string

// ImportanceNormal is the default value of the Importance enum.
const DefaultImportance = ImportanceNormal

// Importance values.
const (
	ImportanceLow    Importance = "low"
	ImportanceNormal Importance = "normal"
	ImportanceHigh   Importance = "high"
	ImportanceUrgent Importance = "urgent"
)

func (i Importance) String() string {
	return string(i)
}

// ImportanceValidator is a validator for the "importance" field enum values. It is called by the builders before save.
func ImportanceValidator(i Importance) error {
	switch i {
	case ImportanceLow, ImportanceNormal, ImportanceHigh, ImportanceUrgent:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for importance field: %q", i)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectKey orders the results by the project_key field.
func ByProjectKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectKey, opts...).ToFunc()
}

// ByFromAgent orders the results by the from_agent field.
func ByFromAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromAgent, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByImportance orders the results by the importance field.
func ByImportance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportance, opts...).ToFunc()
}

// ByAckRequired orders the results by the ack_required field.
func ByAckRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAckRequired, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRecipientsCount orders the results by recipients count.
func ByRecipientsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecipientsStep(), opts...)
	}
}

// ByRecipients orders the results by recipients terms.
func ByRecipients(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecipientsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRecipientsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecipientsInverseTable, MessageRecipientFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecipientsTable, RecipientsColumn),
	)
}
