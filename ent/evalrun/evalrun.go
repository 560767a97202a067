// Code generated by ent, DO NOT EDIT.

package evalrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evalrun type in the database.
	Label = "eval_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEvalName holds the string denoting the eval_name field in the database.
	FieldEvalName = "eval_name"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldRunAt holds the string denoting the run_at field in the database.
	FieldRunAt = "run_at"
	// Table holds the table name of the evalrun in the database.
	Table = "eval_runs"
)

// Columns holds all SQL columns for evalrun fields.
var Columns = []string{
	FieldID,
	FieldEvalName,
	FieldScore,
	FieldRunAt,
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
	// DefaultRunAt holds the default value on creation for the "run_at" field.
	DefaultRunAt func() time.Time
)

// OrderOption defines the ordering options for the EvalRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEvalName orders the results by the eval_name field.
func ByEvalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvalName, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByRunAt orders the results by the run_at field.
func ByRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunAt, opts...).ToFunc()
}
