// Code generated by ent, DO NOT EDIT.

package deferred

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deferred type in the database.
	Label = "deferred"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "url"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the deferred in the database.
	Table = "deferred"
)

// Columns holds all SQL columns for deferred fields.
var Columns = []string{
	FieldID,
	FieldResolved,
	FieldValue,
	FieldError,
	FieldExpiresAt,
	FieldCreatedAt,
	FieldResolvedAt,
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
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Deferred queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
