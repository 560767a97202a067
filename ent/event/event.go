// Code generated by ent, DO NOT EDIT.

package event

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectKey holds the string denoting the project_key field in the database.
	FieldProjectKey = "project_key"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldTsMs holds the string denoting the ts_ms field in the database.
	FieldTsMs = "ts_ms"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the event in the database.
	Table = "events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldProjectKey,
	FieldSequence,
	FieldEventType,
	FieldTsMs,
	FieldData,
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

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectKey orders the results by the project_key field.
func ByProjectKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectKey, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByTsMs orders the results by the ts_ms field.
func ByTsMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTsMs, opts...).ToFunc()
}
