// Code generated by ent, DO NOT EDIT.

package beaddependency

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLTE(FieldID, id))
}

// BeadID applies equality check predicate on the "bead_id" field. It's identical to BeadIDEQ.
func BeadID(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldBeadID, v))
}

// DependsOnID applies equality check predicate on the "depends_on_id" field. It's identical to DependsOnIDEQ.
func DependsOnID(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldDependsOnID, v))
}

// Relationship applies equality check predicate on the "relationship" field. It's identical to RelationshipEQ.
func Relationship(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldRelationship, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// BeadIDEQ applies the EQ predicate on the "bead_id" field.
func BeadIDEQ(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldBeadID, v))
}

// BeadIDNEQ applies the NEQ predicate on the "bead_id" field.
func BeadIDNEQ(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNEQ(FieldBeadID, v))
}

// BeadIDIn applies the In predicate on the "bead_id" field.
func BeadIDIn(vs ...string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldIn(FieldBeadID, vs...))
}

// BeadIDNotIn applies the NotIn predicate on the "bead_id" field.
func BeadIDNotIn(vs ...string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNotIn(FieldBeadID, vs...))
}

// BeadIDGT applies the GT predicate on the "bead_id" field.
func BeadIDGT(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGT(FieldBeadID, v))
}

// BeadIDGTE applies the GTE predicate on the "bead_id" field.
func BeadIDGTE(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGTE(FieldBeadID, v))
}

// BeadIDLT applies the LT predicate on the "bead_id" field.
func BeadIDLT(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLT(FieldBeadID, v))
}

// BeadIDLTE applies the LTE predicate on the "bead_id" field.
func BeadIDLTE(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLTE(FieldBeadID, v))
}

// BeadIDContains applies the Contains predicate on the "bead_id" field.
func BeadIDContains(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldContains(FieldBeadID, v))
}

// BeadIDHasPrefix applies the HasPrefix predicate on the "bead_id" field.
func BeadIDHasPrefix(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldHasPrefix(FieldBeadID, v))
}

// BeadIDHasSuffix applies the HasSuffix predicate on the "bead_id" field.
func BeadIDHasSuffix(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldHasSuffix(FieldBeadID, v))
}

// BeadIDEqualFold applies the EqualFold predicate on the "bead_id" field.
func BeadIDEqualFold(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEqualFold(FieldBeadID, v))
}

// BeadIDContainsFold applies the ContainsFold predicate on the "bead_id" field.
func BeadIDContainsFold(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldContainsFold(FieldBeadID, v))
}

// DependsOnIDEQ applies the EQ predicate on the "depends_on_id" field.
func DependsOnIDEQ(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldDependsOnID, v))
}

// DependsOnIDNEQ applies the NEQ predicate on the "depends_on_id" field.
func DependsOnIDNEQ(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNEQ(FieldDependsOnID, v))
}

// DependsOnIDIn applies the In predicate on the "depends_on_id" field.
func DependsOnIDIn(vs ...string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldIn(FieldDependsOnID, vs...))
}

// DependsOnIDNotIn applies the NotIn predicate on the "depends_on_id" field.
func DependsOnIDNotIn(vs ...string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNotIn(FieldDependsOnID, vs...))
}

// DependsOnIDGT applies the GT predicate on the "depends_on_id" field.
func DependsOnIDGT(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGT(FieldDependsOnID, v))
}

// DependsOnIDGTE applies the GTE predicate on the "depends_on_id" field.
func DependsOnIDGTE(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGTE(FieldDependsOnID, v))
}

// DependsOnIDLT applies the LT predicate on the "depends_on_id" field.
func DependsOnIDLT(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLT(FieldDependsOnID, v))
}

// DependsOnIDLTE applies the LTE predicate on the "depends_on_id" field.
func DependsOnIDLTE(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLTE(FieldDependsOnID, v))
}

// DependsOnIDContains applies the Contains predicate on the "depends_on_id" field.
func DependsOnIDContains(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldContains(FieldDependsOnID, v))
}

// DependsOnIDHasPrefix applies the HasPrefix predicate on the "depends_on_id" field.
func DependsOnIDHasPrefix(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldHasPrefix(FieldDependsOnID, v))
}

// DependsOnIDHasSuffix applies the HasSuffix predicate on the "depends_on_id" field.
func DependsOnIDHasSuffix(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldHasSuffix(FieldDependsOnID, v))
}

// DependsOnIDEqualFold applies the EqualFold predicate on the "depends_on_id" field.
func DependsOnIDEqualFold(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEqualFold(FieldDependsOnID, v))
}

// DependsOnIDContainsFold applies the ContainsFold predicate on the "depends_on_id" field.
func DependsOnIDContainsFold(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldContainsFold(FieldDependsOnID, v))
}

// RelationshipEQ applies the EQ predicate on the "relationship" field.
func RelationshipEQ(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldRelationship, v))
}

// RelationshipNEQ applies the NEQ predicate on the "relationship" field.
func RelationshipNEQ(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNEQ(FieldRelationship, v))
}

// RelationshipIn applies the In predicate on the "relationship" field.
func RelationshipIn(vs ...string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldIn(FieldRelationship, vs...))
}

// RelationshipNotIn applies the NotIn predicate on the "relationship" field.
func RelationshipNotIn(vs ...string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNotIn(FieldRelationship, vs...))
}

// RelationshipGT applies the GT predicate on the "relationship" field.
func RelationshipGT(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGT(FieldRelationship, v))
}

// RelationshipGTE applies the GTE predicate on the "relationship" field.
func RelationshipGTE(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGTE(FieldRelationship, v))
}

// RelationshipLT applies the LT predicate on the "relationship" field.
func RelationshipLT(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLT(FieldRelationship, v))
}

// RelationshipLTE applies the LTE predicate on the "relationship" field.
func RelationshipLTE(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLTE(FieldRelationship, v))
}

// RelationshipContains applies the Contains predicate on the "relationship" field.
func RelationshipContains(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldContains(FieldRelationship, v))
}

// RelationshipHasPrefix applies the HasPrefix predicate on the "relationship" field.
func RelationshipHasPrefix(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldHasPrefix(FieldRelationship, v))
}

// RelationshipHasSuffix applies the HasSuffix predicate on the "relationship" field.
func RelationshipHasSuffix(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldHasSuffix(FieldRelationship, v))
}

// RelationshipEqualFold applies the EqualFold predicate on the "relationship" field.
func RelationshipEqualFold(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEqualFold(FieldRelationship, v))
}

// RelationshipContainsFold applies the ContainsFold predicate on the "relationship" field.
func RelationshipContainsFold(v string) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldContainsFold(FieldRelationship, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BeadDependency {
	return predicate.BeadDependency(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BeadDependency) predicate.BeadDependency {
	return predicate.BeadDependency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BeadDependency) predicate.BeadDependency {
	return predicate.BeadDependency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BeadDependency) predicate.BeadDependency {
	return predicate.BeadDependency(sql.NotPredicates(p))
}
