// Code generated by ent, DO NOT EDIT.

package cursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cursor type in the database.
	Label = "cursor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStreamName holds the string denoting the stream_name field in the database.
	FieldStreamName = "stream_name"
	// FieldCheckpoint holds the string denoting the checkpoint field in the database.
	FieldCheckpoint = "checkpoint"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the cursor in the database.
	Table = "cursors"
)

// Columns holds all SQL columns for cursor fields.
var Columns = []string{
	FieldID,
	FieldStreamName,
	FieldCheckpoint,
	FieldPosition,
	FieldUpdatedAt,
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
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Cursor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStreamName orders the results by the stream_name field.
func ByStreamName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamName, opts...).ToFunc()
}

// ByCheckpoint orders the results by the checkpoint field.
func ByCheckpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpoint, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
