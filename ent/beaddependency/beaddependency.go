// Code generated by ent, DO NOT EDIT.

package beaddependency

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the beaddependency type in the database.
	Label = "bead_dependency"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBeadID holds the string denoting the bead_id field in the database.
	FieldBeadID = "bead_id"
	// FieldDependsOnID holds the string denoting the depends_on_id field in the database.
	FieldDependsOnID = "depends_on_id"
	// FieldRelationship holds the string denoting the relationship field in the database.
	FieldRelationship = "relationship"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the beaddependency in the database.
	Table = "bead_dependencies"
)

// Columns holds all SQL columns for beaddependency fields.
var Columns = []string{
	FieldID,
	FieldBeadID,
	FieldDependsOnID,
	FieldRelationship,
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
	// DefaultRelationship holds the default value on creation for the "relationship" field.
	DefaultRelationship string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the BeadDependency queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBeadID orders the results by the bead_id field.
func ByBeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeadID, opts...).ToFunc()
}

// ByDependsOnID orders the results by the depends_on_id field.
func ByDependsOnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDependsOnID, opts...).ToFunc()
}

// ByRelationship orders the results by the relationship field.
func ByRelationship(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationship, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
