// Code generated by ent, DO NOT EDIT.

package beadlabel

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldLTE(FieldID, id))
}

// BeadID applies equality check predicate on the "bead_id" field. It's identical to BeadIDEQ.
func BeadID(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldEQ(FieldBeadID, v))
}

// BeadIDEQ applies the EQ predicate on the "bead_id" field.
func BeadIDEQ(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldEQ(FieldBeadID, v))
}

// BeadIDNEQ applies the NEQ predicate on the "bead_id" field.
func BeadIDNEQ(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldNEQ(FieldBeadID, v))
}

// BeadIDIn applies the In predicate on the "bead_id" field.
func BeadIDIn(vs ...string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldIn(FieldBeadID, vs...))
}

// BeadIDNotIn applies the NotIn predicate on the "bead_id" field.
func BeadIDNotIn(vs ...string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldNotIn(FieldBeadID, vs...))
}

// BeadIDGT applies the GT predicate on the "bead_id" field.
func BeadIDGT(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldGT(FieldBeadID, v))
}

// BeadIDGTE applies the GTE predicate on the "bead_id" field.
func BeadIDGTE(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldGTE(FieldBeadID, v))
}

// BeadIDLT applies the LT predicate on the "bead_id" field.
func BeadIDLT(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldLT(FieldBeadID, v))
}

// BeadIDLTE applies the LTE predicate on the "bead_id" field.
func BeadIDLTE(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldLTE(FieldBeadID, v))
}

// BeadIDContains applies the Contains predicate on the "bead_id" field.
func BeadIDContains(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldContains(FieldBeadID, v))
}

// BeadIDHasPrefix applies the HasPrefix predicate on the "bead_id" field.
func BeadIDHasPrefix(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldHasPrefix(FieldBeadID, v))
}

// BeadIDHasSuffix applies the HasSuffix predicate on the "bead_id" field.
func BeadIDHasSuffix(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldHasSuffix(FieldBeadID, v))
}

// BeadIDEqualFold applies the EqualFold predicate on the "bead_id" field.
func BeadIDEqualFold(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldEqualFold(FieldBeadID, v))
}

// BeadIDContainsFold applies the ContainsFold predicate on the "bead_id" field.
func BeadIDContainsFold(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldContainsFold(FieldBeadID, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.BeadLabel {
	return predicate.BeadLabel(sql.FieldContainsFold(FieldLabel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BeadLabel) predicate.BeadLabel {
	return predicate.BeadLabel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BeadLabel) predicate.BeadLabel {
	return predicate.BeadLabel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BeadLabel) predicate.BeadLabel {
	return predicate.BeadLabel(sql.NotPredicates(p))
}
