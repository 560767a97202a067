// Code generated by ent, DO NOT EDIT.

package evalrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldID, id))
}

// EvalName applies equality check predicate on the "eval_name" field. It's identical to EvalNameEQ.
func EvalName(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldEvalName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldScore, v))
}

// RunAt applies equality check predicate on the "run_at" field. It's identical to RunAtEQ.
func RunAt(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldRunAt, v))
}

// EvalNameEQ applies the EQ predicate on the "eval_name" field.
func EvalNameEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldEvalName, v))
}

// EvalNameNEQ applies the NEQ predicate on the "eval_name" field.
func EvalNameNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldEvalName, v))
}

// EvalNameIn applies the In predicate on the "eval_name" field.
func EvalNameIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldEvalName, vs...))
}

// EvalNameNotIn applies the NotIn predicate on the "eval_name" field.
func EvalNameNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldEvalName, vs...))
}

// EvalNameGT applies the GT predicate on the "eval_name" field.
func EvalNameGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldEvalName, v))
}

// EvalNameGTE applies the GTE predicate on the "eval_name" field.
func EvalNameGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldEvalName, v))
}

// EvalNameLT applies the LT predicate on the "eval_name" field.
func EvalNameLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldEvalName, v))
}

// EvalNameLTE applies the LTE predicate on the "eval_name" field.
func EvalNameLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldEvalName, v))
}

// EvalNameContains applies the Contains predicate on the "eval_name" field.
func EvalNameContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldEvalName, v))
}

// EvalNameHasPrefix applies the HasPrefix predicate on the "eval_name" field.
func EvalNameHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldEvalName, v))
}

// EvalNameHasSuffix applies the HasSuffix predicate on the "eval_name" field.
func EvalNameHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldEvalName, v))
}

// EvalNameEqualFold applies the EqualFold predicate on the "eval_name" field.
func EvalNameEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldEvalName, v))
}

// EvalNameContainsFold applies the ContainsFold predicate on the "eval_name" field.
func EvalNameContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldEvalName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldScore, v))
}

// RunAtEQ applies the EQ predicate on the "run_at" field.
func RunAtEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldRunAt, v))
}

// RunAtNEQ applies the NEQ predicate on the "run_at" field.
func RunAtNEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldRunAt, v))
}

// RunAtIn applies the In predicate on the "run_at" field.
func RunAtIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldRunAt, vs...))
}

// RunAtNotIn applies the NotIn predicate on the "run_at" field.
func RunAtNotIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldRunAt, vs...))
}

// RunAtGT applies the GT predicate on the "run_at" field.
func RunAtGT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldRunAt, v))
}

// RunAtGTE applies the GTE predicate on the "run_at" field.
func RunAtGTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldRunAt, v))
}

// RunAtLT applies the LT predicate on the "run_at" field.
func RunAtLT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldRunAt, v))
}

// RunAtLTE applies the LTE predicate on the "run_at" field.
func RunAtLTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldRunAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.NotPredicates(p))
}
