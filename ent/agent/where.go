// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// ProjectKey applies equality check predicate on the "project_key" field. It's identical to ProjectKeyEQ.
func ProjectKey(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProjectKey, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// Program applies equality check predicate on the "program" field. It's identical to ProgramEQ.
func Program(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProgram, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModel, v))
}

// TaskDescription applies equality check predicate on the "task_description" field. It's identical to TaskDescriptionEQ.
func TaskDescription(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTaskDescription, v))
}

// RegisteredAt applies equality check predicate on the "registered_at" field. It's identical to RegisteredAtEQ.
func RegisteredAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegisteredAt, v))
}

// LastActiveAt applies equality check predicate on the "last_active_at" field. It's identical to LastActiveAtEQ.
func LastActiveAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastActiveAt, v))
}

// ProjectKeyEQ applies the EQ predicate on the "project_key" field.
func ProjectKeyEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProjectKey, v))
}

// ProjectKeyNEQ applies the NEQ predicate on the "project_key" field.
func ProjectKeyNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldProjectKey, v))
}

// ProjectKeyIn applies the In predicate on the "project_key" field.
func ProjectKeyIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldProjectKey, vs...))
}

// ProjectKeyNotIn applies the NotIn predicate on the "project_key" field.
func ProjectKeyNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldProjectKey, vs...))
}

// ProjectKeyGT applies the GT predicate on the "project_key" field.
func ProjectKeyGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldProjectKey, v))
}

// ProjectKeyGTE applies the GTE predicate on the "project_key" field.
func ProjectKeyGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldProjectKey, v))
}

// ProjectKeyLT applies the LT predicate on the "project_key" field.
func ProjectKeyLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldProjectKey, v))
}

// ProjectKeyLTE applies the LTE predicate on the "project_key" field.
func ProjectKeyLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldProjectKey, v))
}

// ProjectKeyContains applies the Contains predicate on the "project_key" field.
func ProjectKeyContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldProjectKey, v))
}

// ProjectKeyHasPrefix applies the HasPrefix predicate on the "project_key" field.
func ProjectKeyHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldProjectKey, v))
}

// ProjectKeyHasSuffix applies the HasSuffix predicate on the "project_key" field.
func ProjectKeyHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldProjectKey, v))
}

// ProjectKeyEqualFold applies the EqualFold predicate on the "project_key" field.
func ProjectKeyEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldProjectKey, v))
}

// ProjectKeyContainsFold applies the ContainsFold predicate on the "project_key" field.
func ProjectKeyContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldProjectKey, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// ProgramEQ applies the EQ predicate on the "program" field.
func ProgramEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProgram, v))
}

// ProgramNEQ applies the NEQ predicate on the "program" field.
func ProgramNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldProgram, v))
}

// ProgramIn applies the In predicate on the "program" field.
func ProgramIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldProgram, vs...))
}

// ProgramNotIn applies the NotIn predicate on the "program" field.
func ProgramNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldProgram, vs...))
}

// ProgramGT applies the GT predicate on the "program" field.
func ProgramGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldProgram, v))
}

// ProgramGTE applies the GTE predicate on the "program" field.
func ProgramGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldProgram, v))
}

// ProgramLT applies the LT predicate on the "program" field.
func ProgramLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldProgram, v))
}

// ProgramLTE applies the LTE predicate on the "program" field.
func ProgramLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldProgram, v))
}

// ProgramContains applies the Contains predicate on the "program" field.
func ProgramContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldProgram, v))
}

// ProgramHasPrefix applies the HasPrefix predicate on the "program" field.
func ProgramHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldProgram, v))
}

// ProgramHasSuffix applies the HasSuffix predicate on the "program" field.
func ProgramHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldProgram, v))
}

// ProgramIsNil applies the IsNil predicate on the "program" field.
func ProgramIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldProgram))
}

// ProgramNotNil applies the NotNil predicate on the "program" field.
func ProgramNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldProgram))
}

// ProgramEqualFold applies the EqualFold predicate on the "program" field.
func ProgramEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldProgram, v))
}

// ProgramContainsFold applies the ContainsFold predicate on the "program" field.
func ProgramContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldProgram, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldModel, v))
}

// TaskDescriptionEQ applies the EQ predicate on the "task_description" field.
func TaskDescriptionEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskDescriptionNEQ applies the NEQ predicate on the "task_description" field.
func TaskDescriptionNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTaskDescription, v))
}

// TaskDescriptionIn applies the In predicate on the "task_description" field.
func TaskDescriptionIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTaskDescription, vs...))
}

// TaskDescriptionNotIn applies the NotIn predicate on the "task_description" field.
func TaskDescriptionNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTaskDescription, vs...))
}

// TaskDescriptionGT applies the GT predicate on the "task_description" field.
func TaskDescriptionGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTaskDescription, v))
}

// TaskDescriptionGTE applies the GTE predicate on the "task_description" field.
func TaskDescriptionGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTaskDescription, v))
}

// TaskDescriptionLT applies the LT predicate on the "task_description" field.
func TaskDescriptionLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTaskDescription, v))
}

// TaskDescriptionLTE applies the LTE predicate on the "task_description" field.
func TaskDescriptionLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTaskDescription, v))
}

// TaskDescriptionContains applies the Contains predicate on the "task_description" field.
func TaskDescriptionContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTaskDescription, v))
}

// TaskDescriptionHasPrefix applies the HasPrefix predicate on the "task_description" field.
func TaskDescriptionHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTaskDescription, v))
}

// TaskDescriptionHasSuffix applies the HasSuffix predicate on the "task_description" field.
func TaskDescriptionHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTaskDescription, v))
}

// TaskDescriptionIsNil applies the IsNil predicate on the "task_description" field.
func TaskDescriptionIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTaskDescription))
}

// TaskDescriptionNotNil applies the NotNil predicate on the "task_description" field.
func TaskDescriptionNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTaskDescription))
}

// TaskDescriptionEqualFold applies the EqualFold predicate on the "task_description" field.
func TaskDescriptionEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTaskDescription, v))
}

// TaskDescriptionContainsFold applies the ContainsFold predicate on the "task_description" field.
func TaskDescriptionContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTaskDescription, v))
}

// RegisteredAtEQ applies the EQ predicate on the "registered_at" field.
func RegisteredAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegisteredAt, v))
}

// RegisteredAtNEQ applies the NEQ predicate on the "registered_at" field.
func RegisteredAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRegisteredAt, v))
}

// RegisteredAtIn applies the In predicate on the "registered_at" field.
func RegisteredAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRegisteredAt, vs...))
}

// RegisteredAtNotIn applies the NotIn predicate on the "registered_at" field.
func RegisteredAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRegisteredAt, vs...))
}

// RegisteredAtGT applies the GT predicate on the "registered_at" field.
func RegisteredAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRegisteredAt, v))
}

// RegisteredAtGTE applies the GTE predicate on the "registered_at" field.
func RegisteredAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRegisteredAt, v))
}

// RegisteredAtLT applies the LT predicate on the "registered_at" field.
func RegisteredAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRegisteredAt, v))
}

// RegisteredAtLTE applies the LTE predicate on the "registered_at" field.
func RegisteredAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRegisteredAt, v))
}

// LastActiveAtEQ applies the EQ predicate on the "last_active_at" field.
func LastActiveAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastActiveAt, v))
}

// LastActiveAtNEQ applies the NEQ predicate on the "last_active_at" field.
func LastActiveAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastActiveAt, v))
}

// LastActiveAtIn applies the In predicate on the "last_active_at" field.
func LastActiveAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastActiveAt, vs...))
}

// LastActiveAtNotIn applies the NotIn predicate on the "last_active_at" field.
func LastActiveAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastActiveAt, vs...))
}

// LastActiveAtGT applies the GT predicate on the "last_active_at" field.
func LastActiveAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastActiveAt, v))
}

// LastActiveAtGTE applies the GTE predicate on the "last_active_at" field.
func LastActiveAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastActiveAt, v))
}

// LastActiveAtLT applies the LT predicate on the "last_active_at" field.
func LastActiveAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastActiveAt, v))
}

// LastActiveAtLTE applies the LTE predicate on the "last_active_at" field.
func LastActiveAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastActiveAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
