// Code generated by ent, DO NOT EDIT.

package beadlabel

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the beadlabel type in the database.
	Label = "bead_label"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBeadID holds the string denoting the bead_id field in the database.
	FieldBeadID = "bead_id"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// Table holds the table name of the beadlabel in the database.
	Table = "bead_labels"
)

// Columns holds all SQL columns for beadlabel fields.
var Columns = []string{
	FieldID,
	FieldBeadID,
	FieldLabel,
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

// OrderOption defines the ordering options for the BeadLabel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBeadID orders the results by the bead_id field.
func ByBeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeadID, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}
