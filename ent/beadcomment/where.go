// Code generated by ent, DO NOT EDIT.

package beadcomment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLTE(FieldID, id))
}

// BeadID applies equality check predicate on the "bead_id" field. It's identical to BeadIDEQ.
func BeadID(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldBeadID, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldAuthor, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldBody, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldCreatedAt, v))
}

// BeadIDEQ applies the EQ predicate on the "bead_id" field.
func BeadIDEQ(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldBeadID, v))
}

// BeadIDNEQ applies the NEQ predicate on the "bead_id" field.
func BeadIDNEQ(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNEQ(FieldBeadID, v))
}

// BeadIDIn applies the In predicate on the "bead_id" field.
func BeadIDIn(vs ...string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldIn(FieldBeadID, vs...))
}

// BeadIDNotIn applies the NotIn predicate on the "bead_id" field.
func BeadIDNotIn(vs ...string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNotIn(FieldBeadID, vs...))
}

// BeadIDGT applies the GT predicate on the "bead_id" field.
func BeadIDGT(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGT(FieldBeadID, v))
}

// BeadIDGTE applies the GTE predicate on the "bead_id" field.
func BeadIDGTE(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGTE(FieldBeadID, v))
}

// BeadIDLT applies the LT predicate on the "bead_id" field.
func BeadIDLT(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLT(FieldBeadID, v))
}

// BeadIDLTE applies the LTE predicate on the "bead_id" field.
func BeadIDLTE(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLTE(FieldBeadID, v))
}

// BeadIDContains applies the Contains predicate on the "bead_id" field.
func BeadIDContains(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldContains(FieldBeadID, v))
}

// BeadIDHasPrefix applies the HasPrefix predicate on the "bead_id" field.
func BeadIDHasPrefix(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldHasPrefix(FieldBeadID, v))
}

// BeadIDHasSuffix applies the HasSuffix predicate on the "bead_id" field.
func BeadIDHasSuffix(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldHasSuffix(FieldBeadID, v))
}

// BeadIDEqualFold applies the EqualFold predicate on the "bead_id" field.
func BeadIDEqualFold(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEqualFold(FieldBeadID, v))
}

// BeadIDContainsFold applies the ContainsFold predicate on the "bead_id" field.
func BeadIDContainsFold(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldContainsFold(FieldBeadID, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldContainsFold(FieldAuthor, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldContainsFold(FieldBody, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BeadComment {
	return predicate.BeadComment(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BeadComment) predicate.BeadComment {
	return predicate.BeadComment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BeadComment) predicate.BeadComment {
	return predicate.BeadComment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BeadComment) predicate.BeadComment {
	return predicate.BeadComment(sql.NotPredicates(p))
}
