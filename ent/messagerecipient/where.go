// Code generated by ent, DO NOT EDIT.

package messagerecipient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLTE(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldMessageID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldAgentName, v))
}

// ReadAt applies equality check predicate on the "read_at" field. It's identical to ReadAtEQ.
func ReadAt(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldReadAt, v))
}

// AckedAt applies equality check predicate on the "acked_at" field. It's identical to AckedAtEQ.
func AckedAt(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldAckedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldContainsFold(FieldMessageID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldContainsFold(FieldAgentName, v))
}

// ReadAtEQ applies the EQ predicate on the "read_at" field.
func ReadAtEQ(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldReadAt, v))
}

// ReadAtNEQ applies the NEQ predicate on the "read_at" field.
func ReadAtNEQ(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNEQ(FieldReadAt, v))
}

// ReadAtIn applies the In predicate on the "read_at" field.
func ReadAtIn(vs ...time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldIn(FieldReadAt, vs...))
}

// ReadAtNotIn applies the NotIn predicate on the "read_at" field.
func ReadAtNotIn(vs ...time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNotIn(FieldReadAt, vs...))
}

// ReadAtGT applies the GT predicate on the "read_at" field.
func ReadAtGT(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGT(FieldReadAt, v))
}

// ReadAtGTE applies the GTE predicate on the "read_at" field.
func ReadAtGTE(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGTE(FieldReadAt, v))
}

// ReadAtLT applies the LT predicate on the "read_at" field.
func ReadAtLT(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLT(FieldReadAt, v))
}

// ReadAtLTE applies the LTE predicate on the "read_at" field.
func ReadAtLTE(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLTE(FieldReadAt, v))
}

// ReadAtIsNil applies the IsNil predicate on the "read_at" field.
func ReadAtIsNil() predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldIsNull(FieldReadAt))
}

// ReadAtNotNil applies the NotNil predicate on the "read_at" field.
func ReadAtNotNil() predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNotNull(FieldReadAt))
}

// AckedAtEQ applies the EQ predicate on the "acked_at" field.
func AckedAtEQ(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldEQ(FieldAckedAt, v))
}

// AckedAtNEQ applies the NEQ predicate on the "acked_at" field.
func AckedAtNEQ(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNEQ(FieldAckedAt, v))
}

// AckedAtIn applies the In predicate on the "acked_at" field.
func AckedAtIn(vs ...time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldIn(FieldAckedAt, vs...))
}

// AckedAtNotIn applies the NotIn predicate on the "acked_at" field.
func AckedAtNotIn(vs ...time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNotIn(FieldAckedAt, vs...))
}

// AckedAtGT applies the GT predicate on the "acked_at" field.
func AckedAtGT(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGT(FieldAckedAt, v))
}

// AckedAtGTE applies the GTE predicate on the "acked_at" field.
func AckedAtGTE(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldGTE(FieldAckedAt, v))
}

// AckedAtLT applies the LT predicate on the "acked_at" field.
func AckedAtLT(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLT(FieldAckedAt, v))
}

// AckedAtLTE applies the LTE predicate on the "acked_at" field.
func AckedAtLTE(v time.Time) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldLTE(FieldAckedAt, v))
}

// AckedAtIsNil applies the IsNil predicate on the "acked_at" field.
func AckedAtIsNil() predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldIsNull(FieldAckedAt))
}

// AckedAtNotNil applies the NotNil predicate on the "acked_at" field.
func AckedAtNotNil() predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.FieldNotNull(FieldAckedAt))
}

// HasMessage applies the HasEdge predicate on the "message" edge.
func HasMessage() predicate.MessageRecipient {
	return predicate.MessageRecipient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MessageTable, MessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessageWith applies the HasEdge predicate on the "message" edge with a given conditions (other predicates).
func HasMessageWith(preds ...predicate.Message) predicate.MessageRecipient {
	return predicate.MessageRecipient(func(s *sql.Selector) {
		step := newMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageRecipient) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageRecipient) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageRecipient) predicate.MessageRecipient {
	return predicate.MessageRecipient(sql.NotPredicates(p))
}
