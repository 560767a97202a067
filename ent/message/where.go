// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// ProjectKey applies equality check predicate on the "project_key" field. It's identical to ProjectKeyEQ.
func ProjectKey(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldProjectKey, v))
}

// FromAgent applies equality check predicate on the "from_agent" field. It's identical to FromAgentEQ.
func FromAgent(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFromAgent, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSubject, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBody, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldThreadID, v))
}

// AckRequired applies equality check predicate on the "ack_required" field. It's identical to AckRequiredEQ.
func AckRequired(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldAckRequired, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectKeyEQ applies the EQ predicate on the "project_key" field.
func ProjectKeyEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldProjectKey, v))
}

// ProjectKeyNEQ applies the NEQ predicate on the "project_key" field.
func ProjectKeyNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldProjectKey, v))
}

// ProjectKeyIn applies the In predicate on the "project_key" field.
func ProjectKeyIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldProjectKey, vs...))
}

// ProjectKeyNotIn applies the NotIn predicate on the "project_key" field.
func ProjectKeyNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldProjectKey, vs...))
}

// ProjectKeyGT applies the GT predicate on the "project_key" field.
func ProjectKeyGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldProjectKey, v))
}

// ProjectKeyGTE applies the GTE predicate on the "project_key" field.
func ProjectKeyGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldProjectKey, v))
}

// ProjectKeyLT applies the LT predicate on the "project_key" field.
func ProjectKeyLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldProjectKey, v))
}

// ProjectKeyLTE applies the LTE predicate on the "project_key" field.
func ProjectKeyLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldProjectKey, v))
}

// ProjectKeyContains applies the Contains predicate on the "project_key" field.
func ProjectKeyContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldProjectKey, v))
}

// ProjectKeyHasPrefix applies the HasPrefix predicate on the "project_key" field.
func ProjectKeyHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldProjectKey, v))
}

// ProjectKeyHasSuffix applies the HasSuffix predicate on the "project_key" field.
func ProjectKeyHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldProjectKey, v))
}

// ProjectKeyEqualFold applies the EqualFold predicate on the "project_key" field.
func ProjectKeyEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldProjectKey, v))
}

// ProjectKeyContainsFold applies the ContainsFold predicate on the "project_key" field.
func ProjectKeyContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldProjectKey, v))
}

// FromAgentEQ applies the EQ predicate on the "from_agent" field.
func FromAgentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFromAgent, v))
}

// FromAgentNEQ applies the NEQ predicate on the "from_agent" field.
func FromAgentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldFromAgent, v))
}

// FromAgentIn applies the In predicate on the "from_agent" field.
func FromAgentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldFromAgent, vs...))
}

// FromAgentNotIn applies the NotIn predicate on the "from_agent" field.
func FromAgentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldFromAgent, vs...))
}

// FromAgentGT applies the GT predicate on the "from_agent" field.
func FromAgentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldFromAgent, v))
}

// FromAgentGTE applies the GTE predicate on the "from_agent" field.
func FromAgentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldFromAgent, v))
}

// FromAgentLT applies the LT predicate on the "from_agent" field.
func FromAgentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldFromAgent, v))
}

// FromAgentLTE applies the LTE predicate on the "from_agent" field.
func FromAgentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldFromAgent, v))
}

// FromAgentContains applies the Contains predicate on the "from_agent" field.
func FromAgentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldFromAgent, v))
}

// FromAgentHasPrefix applies the HasPrefix predicate on the "from_agent" field.
func FromAgentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldFromAgent, v))
}

// FromAgentHasSuffix applies the HasSuffix predicate on the "from_agent" field.
func FromAgentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldFromAgent, v))
}

// FromAgentEqualFold applies the EqualFold predicate on the "from_agent" field.
func FromAgentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldFromAgent, v))
}

// FromAgentContainsFold applies the ContainsFold predicate on the "from_agent" field.
func FromAgentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldFromAgent, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSubject, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldBody, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDIsNil applies the IsNil predicate on the "thread_id" field.
func ThreadIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldThreadID))
}

// ThreadIDNotNil applies the NotNil predicate on the "thread_id" field.
func ThreadIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldThreadID))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldThreadID, v))
}

// ImportanceEQ applies the EQ predicate on the "importance" field.
func ImportanceEQ(v Importance) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldImportance, v))
}

// ImportanceNEQ applies the NEQ predicate on the "importance" field.
func ImportanceNEQ(v Importance) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldImportance, v))
}

// ImportanceIn applies the In predicate on the "importance" field.
func ImportanceIn(vs ...Importance) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldImportance, vs...))
}

// ImportanceNotIn applies the NotIn predicate on the "importance" field.
func ImportanceNotIn(vs ...Importance) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldImportance, vs...))
}

// AckRequiredEQ applies the EQ predicate on the "ack_required" field.
func AckRequiredEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldAckRequired, v))
}

// AckRequiredNEQ applies the NEQ predicate on the "ack_required" field.
func AckRequiredNEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldAckRequired, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRecipients applies the HasEdge predicate on the "recipients" edge.
func HasRecipients() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecipientsTable, RecipientsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecipientsWith applies the HasEdge predicate on the "recipients" edge with a given conditions (other predicates).
func HasRecipientsWith(preds ...predicate.MessageRecipient) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newRecipientsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
