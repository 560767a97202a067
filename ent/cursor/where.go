// Code generated by ent, DO NOT EDIT.

package cursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldID, id))
}

// StreamName applies equality check predicate on the "stream_name" field. It's identical to StreamNameEQ.
func StreamName(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldStreamName, v))
}

// Checkpoint applies equality check predicate on the "checkpoint" field. It's identical to CheckpointEQ.
func Checkpoint(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldCheckpoint, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldPosition, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// StreamNameEQ applies the EQ predicate on the "stream_name" field.
func StreamNameEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldStreamName, v))
}

// StreamNameNEQ applies the NEQ predicate on the "stream_name" field.
func StreamNameNEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldStreamName, v))
}

// StreamNameIn applies the In predicate on the "stream_name" field.
func StreamNameIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldStreamName, vs...))
}

// StreamNameNotIn applies the NotIn predicate on the "stream_name" field.
func StreamNameNotIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldStreamName, vs...))
}

// StreamNameGT applies the GT predicate on the "stream_name" field.
func StreamNameGT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldStreamName, v))
}

// StreamNameGTE applies the GTE predicate on the "stream_name" field.
func StreamNameGTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldStreamName, v))
}

// StreamNameLT applies the LT predicate on the "stream_name" field.
func StreamNameLT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldStreamName, v))
}

// StreamNameLTE applies the LTE predicate on the "stream_name" field.
func StreamNameLTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldStreamName, v))
}

// StreamNameContains applies the Contains predicate on the "stream_name" field.
func StreamNameContains(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContains(FieldStreamName, v))
}

// StreamNameHasPrefix applies the HasPrefix predicate on the "stream_name" field.
func StreamNameHasPrefix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasPrefix(FieldStreamName, v))
}

// StreamNameHasSuffix applies the HasSuffix predicate on the "stream_name" field.
func StreamNameHasSuffix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasSuffix(FieldStreamName, v))
}

// StreamNameEqualFold applies the EqualFold predicate on the "stream_name" field.
func StreamNameEqualFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEqualFold(FieldStreamName, v))
}

// StreamNameContainsFold applies the ContainsFold predicate on the "stream_name" field.
func StreamNameContainsFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContainsFold(FieldStreamName, v))
}

// CheckpointEQ applies the EQ predicate on the "checkpoint" field.
func CheckpointEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldCheckpoint, v))
}

// CheckpointNEQ applies the NEQ predicate on the "checkpoint" field.
func CheckpointNEQ(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldCheckpoint, v))
}

// CheckpointIn applies the In predicate on the "checkpoint" field.
func CheckpointIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldCheckpoint, vs...))
}

// CheckpointNotIn applies the NotIn predicate on the "checkpoint" field.
func CheckpointNotIn(vs ...string) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldCheckpoint, vs...))
}

// CheckpointGT applies the GT predicate on the "checkpoint" field.
func CheckpointGT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldCheckpoint, v))
}

// CheckpointGTE applies the GTE predicate on the "checkpoint" field.
func CheckpointGTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldCheckpoint, v))
}

// CheckpointLT applies the LT predicate on the "checkpoint" field.
func CheckpointLT(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldCheckpoint, v))
}

// CheckpointLTE applies the LTE predicate on the "checkpoint" field.
func CheckpointLTE(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldCheckpoint, v))
}

// CheckpointContains applies the Contains predicate on the "checkpoint" field.
func CheckpointContains(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContains(FieldCheckpoint, v))
}

// CheckpointHasPrefix applies the HasPrefix predicate on the "checkpoint" field.
func CheckpointHasPrefix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasPrefix(FieldCheckpoint, v))
}

// CheckpointHasSuffix applies the HasSuffix predicate on the "checkpoint" field.
func CheckpointHasSuffix(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldHasSuffix(FieldCheckpoint, v))
}

// CheckpointIsNil applies the IsNil predicate on the "checkpoint" field.
func CheckpointIsNil() predicate.Cursor {
	return predicate.Cursor(sql.FieldIsNull(FieldCheckpoint))
}

// CheckpointNotNil applies the NotNil predicate on the "checkpoint" field.
func CheckpointNotNil() predicate.Cursor {
	return predicate.Cursor(sql.FieldNotNull(FieldCheckpoint))
}

// CheckpointEqualFold applies the EqualFold predicate on the "checkpoint" field.
func CheckpointEqualFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldEqualFold(FieldCheckpoint, v))
}

// CheckpointContainsFold applies the ContainsFold predicate on the "checkpoint" field.
func CheckpointContainsFold(v string) predicate.Cursor {
	return predicate.Cursor(sql.FieldContainsFold(FieldCheckpoint, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int64) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldPosition, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Cursor {
	return predicate.Cursor(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Cursor) predicate.Cursor {
	return predicate.Cursor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Cursor) predicate.Cursor {
	return predicate.Cursor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Cursor) predicate.Cursor {
	return predicate.Cursor(sql.NotPredicates(p))
}
