// Code generated by ent, DO NOT EDIT.

package reservation

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reservation type in the database.
	Label = "reservation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectKey holds the string denoting the project_key field in the database.
	FieldProjectKey = "project_key"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldPathPattern holds the string denoting the path_pattern field in the database.
	FieldPathPattern = "path_pattern"
	// FieldExclusive holds the string denoting the exclusive field in the database.
	FieldExclusive = "exclusive"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldLockHolderID holds the string denoting the lock_holder_id field in the database.
	FieldLockHolderID = "lock_holder_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// FieldReleaseReason holds the string denoting the release_reason field in the database.
	FieldReleaseReason = "release_reason"
	// Table holds the table name of the reservation in the database.
	Table = "reservations"
)

// Columns holds all SQL columns for reservation fields.
var Columns = []string{
	FieldID,
	FieldProjectKey,
	FieldAgentName,
	FieldPathPattern,
	FieldExclusive,
	FieldReason,
	FieldLockHolderID,
	FieldCreatedAt,
	FieldExpiresAt,
	FieldReleasedAt,
	FieldReleaseReason,
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
	// DefaultExclusive holds the default value on creation for the "exclusive" field.
	DefaultExclusive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Reservation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectKey orders the results by the project_key field.
func ByProjectKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectKey, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByPathPattern orders the results by the path_pattern field.
func ByPathPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathPattern, opts...).ToFunc()
}

// ByExclusive orders the results by the exclusive field.
func ByExclusive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExclusive, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByLockHolderID orders the results by the lock_holder_id field.
func ByLockHolderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockHolderID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}

// ByReleaseReason orders the results by the release_reason field.
func ByReleaseReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleaseReason, opts...).ToFunc()
}
