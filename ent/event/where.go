// Code generated by ent, DO NOT EDIT.

package event

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// ProjectKey applies equality check predicate on the "project_key" field. It's identical to ProjectKeyEQ.
func ProjectKey(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProjectKey, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSequence, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// TsMs applies equality check predicate on the "ts_ms" field. It's identical to TsMsEQ.
func TsMs(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTsMs, v))
}

// ProjectKeyEQ applies the EQ predicate on the "project_key" field.
func ProjectKeyEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProjectKey, v))
}

// ProjectKeyNEQ applies the NEQ predicate on the "project_key" field.
func ProjectKeyNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldProjectKey, v))
}

// ProjectKeyIn applies the In predicate on the "project_key" field.
func ProjectKeyIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldProjectKey, vs...))
}

// ProjectKeyNotIn applies the NotIn predicate on the "project_key" field.
func ProjectKeyNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldProjectKey, vs...))
}

// ProjectKeyGT applies the GT predicate on the "project_key" field.
func ProjectKeyGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldProjectKey, v))
}

// ProjectKeyGTE applies the GTE predicate on the "project_key" field.
func ProjectKeyGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldProjectKey, v))
}

// ProjectKeyLT applies the LT predicate on the "project_key" field.
func ProjectKeyLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldProjectKey, v))
}

// ProjectKeyLTE applies the LTE predicate on the "project_key" field.
func ProjectKeyLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldProjectKey, v))
}

// ProjectKeyContains applies the Contains predicate on the "project_key" field.
func ProjectKeyContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldProjectKey, v))
}

// ProjectKeyHasPrefix applies the HasPrefix predicate on the "project_key" field.
func ProjectKeyHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldProjectKey, v))
}

// ProjectKeyHasSuffix applies the HasSuffix predicate on the "project_key" field.
func ProjectKeyHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldProjectKey, v))
}

// ProjectKeyEqualFold applies the EqualFold predicate on the "project_key" field.
func ProjectKeyEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldProjectKey, v))
}

// ProjectKeyContainsFold applies the ContainsFold predicate on the "project_key" field.
func ProjectKeyContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldProjectKey, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSequence, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventType, v))
}

// TsMsEQ applies the EQ predicate on the "ts_ms" field.
func TsMsEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTsMs, v))
}

// TsMsNEQ applies the NEQ predicate on the "ts_ms" field.
func TsMsNEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTsMs, v))
}

// TsMsIn applies the In predicate on the "ts_ms" field.
func TsMsIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTsMs, vs...))
}

// TsMsNotIn applies the NotIn predicate on the "ts_ms" field.
func TsMsNotIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTsMs, vs...))
}

// TsMsGT applies the GT predicate on the "ts_ms" field.
func TsMsGT(v int64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTsMs, v))
}

// TsMsGTE applies the GTE predicate on the "ts_ms" field.
func TsMsGTE(v int64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTsMs, v))
}

// TsMsLT applies the LT predicate on the "ts_ms" field.
func TsMsLT(v int64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTsMs, v))
}

// TsMsLTE applies the LTE predicate on the "ts_ms" field.
func TsMsLTE(v int64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTsMs, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldData))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
