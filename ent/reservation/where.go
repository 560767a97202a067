// Code generated by ent, DO NOT EDIT.

package reservation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldID, id))
}

// ProjectKey applies equality check predicate on the "project_key" field. It's identical to ProjectKeyEQ.
func ProjectKey(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldProjectKey, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldAgentName, v))
}

// PathPattern applies equality check predicate on the "path_pattern" field. It's identical to PathPatternEQ.
func PathPattern(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldPathPattern, v))
}

// Exclusive applies equality check predicate on the "exclusive" field. It's identical to ExclusiveEQ.
func Exclusive(v bool) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldExclusive, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReason, v))
}

// LockHolderID applies equality check predicate on the "lock_holder_id" field. It's identical to LockHolderIDEQ.
func LockHolderID(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldLockHolderID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldExpiresAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleaseReason applies equality check predicate on the "release_reason" field. It's identical to ReleaseReasonEQ.
func ReleaseReason(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReleaseReason, v))
}

// ProjectKeyEQ applies the EQ predicate on the "project_key" field.
func ProjectKeyEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldProjectKey, v))
}

// ProjectKeyNEQ applies the NEQ predicate on the "project_key" field.
func ProjectKeyNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldProjectKey, v))
}

// ProjectKeyIn applies the In predicate on the "project_key" field.
func ProjectKeyIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldProjectKey, vs...))
}

// ProjectKeyNotIn applies the NotIn predicate on the "project_key" field.
func ProjectKeyNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldProjectKey, vs...))
}

// ProjectKeyGT applies the GT predicate on the "project_key" field.
func ProjectKeyGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldProjectKey, v))
}

// ProjectKeyGTE applies the GTE predicate on the "project_key" field.
func ProjectKeyGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldProjectKey, v))
}

// ProjectKeyLT applies the LT predicate on the "project_key" field.
func ProjectKeyLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldProjectKey, v))
}

// ProjectKeyLTE applies the LTE predicate on the "project_key" field.
func ProjectKeyLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldProjectKey, v))
}

// ProjectKeyContains applies the Contains predicate on the "project_key" field.
func ProjectKeyContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldProjectKey, v))
}

// ProjectKeyHasPrefix applies the HasPrefix predicate on the "project_key" field.
func ProjectKeyHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldProjectKey, v))
}

// ProjectKeyHasSuffix applies the HasSuffix predicate on the "project_key" field.
func ProjectKeyHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldProjectKey, v))
}

// ProjectKeyEqualFold applies the EqualFold predicate on the "project_key" field.
func ProjectKeyEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldProjectKey, v))
}

// ProjectKeyContainsFold applies the ContainsFold predicate on the "project_key" field.
func ProjectKeyContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldProjectKey, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldAgentName, v))
}

// PathPatternEQ applies the EQ predicate on the "path_pattern" field.
func PathPatternEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldPathPattern, v))
}

// PathPatternNEQ applies the NEQ predicate on the "path_pattern" field.
func PathPatternNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldPathPattern, v))
}

// PathPatternIn applies the In predicate on the "path_pattern" field.
func PathPatternIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldPathPattern, vs...))
}

// PathPatternNotIn applies the NotIn predicate on the "path_pattern" field.
func PathPatternNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldPathPattern, vs...))
}

// PathPatternGT applies the GT predicate on the "path_pattern" field.
func PathPatternGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldPathPattern, v))
}

// PathPatternGTE applies the GTE predicate on the "path_pattern" field.
func PathPatternGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldPathPattern, v))
}

// PathPatternLT applies the LT predicate on the "path_pattern" field.
func PathPatternLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldPathPattern, v))
}

// PathPatternLTE applies the LTE predicate on the "path_pattern" field.
func PathPatternLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldPathPattern, v))
}

// PathPatternContains applies the Contains predicate on the "path_pattern" field.
func PathPatternContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldPathPattern, v))
}

// PathPatternHasPrefix applies the HasPrefix predicate on the "path_pattern" field.
func PathPatternHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldPathPattern, v))
}

// PathPatternHasSuffix applies the HasSuffix predicate on the "path_pattern" field.
func PathPatternHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldPathPattern, v))
}

// PathPatternEqualFold applies the EqualFold predicate on the "path_pattern" field.
func PathPatternEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldPathPattern, v))
}

// PathPatternContainsFold applies the ContainsFold predicate on the "path_pattern" field.
func PathPatternContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldPathPattern, v))
}

// ExclusiveEQ applies the EQ predicate on the "exclusive" field.
func ExclusiveEQ(v bool) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldExclusive, v))
}

// ExclusiveNEQ applies the NEQ predicate on the "exclusive" field.
func ExclusiveNEQ(v bool) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldExclusive, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldReason, v))
}

// LockHolderIDEQ applies the EQ predicate on the "lock_holder_id" field.
func LockHolderIDEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldLockHolderID, v))
}

// LockHolderIDNEQ applies the NEQ predicate on the "lock_holder_id" field.
func LockHolderIDNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldLockHolderID, v))
}

// LockHolderIDIn applies the In predicate on the "lock_holder_id" field.
func LockHolderIDIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldLockHolderID, vs...))
}

// LockHolderIDNotIn applies the NotIn predicate on the "lock_holder_id" field.
func LockHolderIDNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldLockHolderID, vs...))
}

// LockHolderIDGT applies the GT predicate on the "lock_holder_id" field.
func LockHolderIDGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldLockHolderID, v))
}

// LockHolderIDGTE applies the GTE predicate on the "lock_holder_id" field.
func LockHolderIDGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldLockHolderID, v))
}

// LockHolderIDLT applies the LT predicate on the "lock_holder_id" field.
func LockHolderIDLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldLockHolderID, v))
}

// LockHolderIDLTE applies the LTE predicate on the "lock_holder_id" field.
func LockHolderIDLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldLockHolderID, v))
}

// LockHolderIDContains applies the Contains predicate on the "lock_holder_id" field.
func LockHolderIDContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldLockHolderID, v))
}

// LockHolderIDHasPrefix applies the HasPrefix predicate on the "lock_holder_id" field.
func LockHolderIDHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldLockHolderID, v))
}

// LockHolderIDHasSuffix applies the HasSuffix predicate on the "lock_holder_id" field.
func LockHolderIDHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldLockHolderID, v))
}

// LockHolderIDIsNil applies the IsNil predicate on the "lock_holder_id" field.
func LockHolderIDIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldLockHolderID))
}

// LockHolderIDNotNil applies the NotNil predicate on the "lock_holder_id" field.
func LockHolderIDNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldLockHolderID))
}

// LockHolderIDEqualFold applies the EqualFold predicate on the "lock_holder_id" field.
func LockHolderIDEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldLockHolderID, v))
}

// LockHolderIDContainsFold applies the ContainsFold predicate on the "lock_holder_id" field.
func LockHolderIDContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldLockHolderID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldExpiresAt))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldReleasedAt))
}

// ReleaseReasonEQ applies the EQ predicate on the "release_reason" field.
func ReleaseReasonEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReleaseReason, v))
}

// ReleaseReasonNEQ applies the NEQ predicate on the "release_reason" field.
func ReleaseReasonNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldReleaseReason, v))
}

// ReleaseReasonIn applies the In predicate on the "release_reason" field.
func ReleaseReasonIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldReleaseReason, vs...))
}

// ReleaseReasonNotIn applies the NotIn predicate on the "release_reason" field.
func ReleaseReasonNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldReleaseReason, vs...))
}

// ReleaseReasonGT applies the GT predicate on the "release_reason" field.
func ReleaseReasonGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldReleaseReason, v))
}

// ReleaseReasonGTE applies the GTE predicate on the "release_reason" field.
func ReleaseReasonGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldReleaseReason, v))
}

// ReleaseReasonLT applies the LT predicate on the "release_reason" field.
func ReleaseReasonLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldReleaseReason, v))
}

// ReleaseReasonLTE applies the LTE predicate on the "release_reason" field.
func ReleaseReasonLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldReleaseReason, v))
}

// ReleaseReasonContains applies the Contains predicate on the "release_reason" field.
func ReleaseReasonContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldReleaseReason, v))
}

// ReleaseReasonHasPrefix applies the HasPrefix predicate on the "release_reason" field.
func ReleaseReasonHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldReleaseReason, v))
}

// ReleaseReasonHasSuffix applies the HasSuffix predicate on the "release_reason" field.
func ReleaseReasonHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldReleaseReason, v))
}

// ReleaseReasonIsNil applies the IsNil predicate on the "release_reason" field.
func ReleaseReasonIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldReleaseReason))
}

// ReleaseReasonNotNil applies the NotNil predicate on the "release_reason" field.
func ReleaseReasonNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldReleaseReason))
}

// ReleaseReasonEqualFold applies the EqualFold predicate on the "release_reason" field.
func ReleaseReasonEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldReleaseReason, v))
}

// ReleaseReasonContainsFold applies the ContainsFold predicate on the "release_reason" field.
func ReleaseReasonContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldReleaseReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.NotPredicates(p))
}
