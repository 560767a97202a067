// Code generated by ent, DO NOT EDIT.

package bead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bead type in the database.
	Label = "bead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "bead_id"
	// FieldProjectKey holds the string denoting the project_key field in the database.
	FieldProjectKey = "project_key"
	// FieldBeadType holds the string denoting the bead_type field in the database.
	FieldBeadType = "bead_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldAssignee holds the string denoting the assignee field in the database.
	FieldAssignee = "assignee"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClosedAt holds the string denoting the closed_at field in the database.
	FieldClosedAt = "closed_at"
	// FieldClosedReason holds the string denoting the closed_reason field in the database.
	FieldClosedReason = "closed_reason"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldDeleteReason holds the string denoting the delete_reason field in the database.
	FieldDeleteReason = "delete_reason"
	// Table holds the table name of the bead in the database.
	Table = "beads"
)

// Columns holds all SQL columns for bead fields.
var Columns = []string{
	FieldID,
	FieldProjectKey,
	FieldBeadType,
	FieldStatus,
	FieldTitle,
	FieldDescription,
	FieldPriority,
	FieldParentID,
	FieldAssignee,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClosedAt,
	FieldClosedReason,
	FieldDeletedAt,
	FieldDeleteReason,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// BeadType defines the type for the "bead_type" enum field.
type BeadType string

// BeadTypeTask is the default value of the BeadType enum.
const DefaultBeadType = BeadTypeTask

// BeadType values.
const (
	BeadTypeBug     BeadType = "bug"
	BeadTypeFeature BeadType = "feature"
	BeadTypeTask    BeadType = "task"
	BeadTypeEpic    BeadType = "epic"
	BeadTypeChore   BeadType = "chore"
)

func (bt BeadType) String() string {
	return string(bt)
}

// BeadTypeValidator is a validator for the "bead_type" field enum values. It is called by the builders before save.
func BeadTypeValidator(bt BeadType) error {
	switch bt {
	case BeadTypeBug, BeadTypeFeature, BeadTypeTask, BeadTypeEpic, BeadTypeChore:
		return nil
	default:
		return fmt.Errorf("bead: invalid enum value for bead_type field: %q", bt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusClosed     Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusInProgress, StatusBlocked, StatusClosed:
		return nil
	default:
		return fmt.Errorf("bead: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Bead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectKey orders the results by the project_key field.
func ByProjectKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectKey, opts...).ToFunc()
}

// ByBeadType orders the results by the bead_type field.
func ByBeadType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeadType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByAssignee orders the results by the assignee field.
func ByAssignee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignee, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClosedAt orders the results by the closed_at field.
func ByClosedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedAt, opts...).ToFunc()
}

// ByClosedReason orders the results by the closed_reason field.
func ByClosedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedReason, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByDeleteReason orders the results by the delete_reason field.
func ByDeleteReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleteReason, opts...).ToFunc()
}
