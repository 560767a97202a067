// Code generated by ent, DO NOT EDIT.

package bead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opencoord/hive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Bead {
	return predicate.Bead(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Bead {
	return predicate.Bead(sql.FieldContainsFold(FieldID, id))
}

// ProjectKey applies equality check predicate on the "project_key" field. It's identical to ProjectKeyEQ.
func ProjectKey(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldProjectKey, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldDescription, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldPriority, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldParentID, v))
}

// Assignee applies equality check predicate on the "assignee" field. It's identical to AssigneeEQ.
func Assignee(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldAssignee, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClosedAt applies equality check predicate on the "closed_at" field. It's identical to ClosedAtEQ.
func ClosedAt(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedReason applies equality check predicate on the "closed_reason" field. It's identical to ClosedReasonEQ.
func ClosedReason(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldClosedReason, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldDeletedAt, v))
}

// DeleteReason applies equality check predicate on the "delete_reason" field. It's identical to DeleteReasonEQ.
func DeleteReason(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldDeleteReason, v))
}

// ProjectKeyEQ applies the EQ predicate on the "project_key" field.
func ProjectKeyEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldProjectKey, v))
}

// ProjectKeyNEQ applies the NEQ predicate on the "project_key" field.
func ProjectKeyNEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldProjectKey, v))
}

// ProjectKeyIn applies the In predicate on the "project_key" field.
func ProjectKeyIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldProjectKey, vs...))
}

// ProjectKeyNotIn applies the NotIn predicate on the "project_key" field.
func ProjectKeyNotIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldProjectKey, vs...))
}

// ProjectKeyGT applies the GT predicate on the "project_key" field.
func ProjectKeyGT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldProjectKey, v))
}

// ProjectKeyGTE applies the GTE predicate on the "project_key" field.
func ProjectKeyGTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldProjectKey, v))
}

// ProjectKeyLT applies the LT predicate on the "project_key" field.
func ProjectKeyLT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldProjectKey, v))
}

// ProjectKeyLTE applies the LTE predicate on the "project_key" field.
func ProjectKeyLTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldProjectKey, v))
}

// ProjectKeyContains applies the Contains predicate on the "project_key" field.
func ProjectKeyContains(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContains(FieldProjectKey, v))
}

// ProjectKeyHasPrefix applies the HasPrefix predicate on the "project_key" field.
func ProjectKeyHasPrefix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasPrefix(FieldProjectKey, v))
}

// ProjectKeyHasSuffix applies the HasSuffix predicate on the "project_key" field.
func ProjectKeyHasSuffix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasSuffix(FieldProjectKey, v))
}

// ProjectKeyEqualFold applies the EqualFold predicate on the "project_key" field.
func ProjectKeyEqualFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEqualFold(FieldProjectKey, v))
}

// ProjectKeyContainsFold applies the ContainsFold predicate on the "project_key" field.
func ProjectKeyContainsFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContainsFold(FieldProjectKey, v))
}

// BeadTypeEQ applies the EQ predicate on the "bead_type" field.
func BeadTypeEQ(v BeadType) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldBeadType, v))
}

// BeadTypeNEQ applies the NEQ predicate on the "bead_type" field.
func BeadTypeNEQ(v BeadType) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldBeadType, v))
}

// BeadTypeIn applies the In predicate on the "bead_type" field.
func BeadTypeIn(vs ...BeadType) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldBeadType, vs...))
}

// BeadTypeNotIn applies the NotIn predicate on the "bead_type" field.
func BeadTypeNotIn(vs ...BeadType) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldBeadType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldStatus, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Bead {
	return predicate.Bead(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Bead {
	return predicate.Bead(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContainsFold(FieldDescription, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldPriority, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Bead {
	return predicate.Bead(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Bead {
	return predicate.Bead(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContainsFold(FieldParentID, v))
}

// AssigneeEQ applies the EQ predicate on the "assignee" field.
func AssigneeEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldAssignee, v))
}

// AssigneeNEQ applies the NEQ predicate on the "assignee" field.
func AssigneeNEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldAssignee, v))
}

// AssigneeIn applies the In predicate on the "assignee" field.
func AssigneeIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldAssignee, vs...))
}

// AssigneeNotIn applies the NotIn predicate on the "assignee" field.
func AssigneeNotIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldAssignee, vs...))
}

// AssigneeGT applies the GT predicate on the "assignee" field.
func AssigneeGT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldAssignee, v))
}

// AssigneeGTE applies the GTE predicate on the "assignee" field.
func AssigneeGTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldAssignee, v))
}

// AssigneeLT applies the LT predicate on the "assignee" field.
func AssigneeLT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldAssignee, v))
}

// AssigneeLTE applies the LTE predicate on the "assignee" field.
func AssigneeLTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldAssignee, v))
}

// AssigneeContains applies the Contains predicate on the "assignee" field.
func AssigneeContains(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContains(FieldAssignee, v))
}

// AssigneeHasPrefix applies the HasPrefix predicate on the "assignee" field.
func AssigneeHasPrefix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasPrefix(FieldAssignee, v))
}

// AssigneeHasSuffix applies the HasSuffix predicate on the "assignee" field.
func AssigneeHasSuffix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasSuffix(FieldAssignee, v))
}

// AssigneeIsNil applies the IsNil predicate on the "assignee" field.
func AssigneeIsNil() predicate.Bead {
	return predicate.Bead(sql.FieldIsNull(FieldAssignee))
}

// AssigneeNotNil applies the NotNil predicate on the "assignee" field.
func AssigneeNotNil() predicate.Bead {
	return predicate.Bead(sql.FieldNotNull(FieldAssignee))
}

// AssigneeEqualFold applies the EqualFold predicate on the "assignee" field.
func AssigneeEqualFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEqualFold(FieldAssignee, v))
}

// AssigneeContainsFold applies the ContainsFold predicate on the "assignee" field.
func AssigneeContainsFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContainsFold(FieldAssignee, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClosedAtEQ applies the EQ predicate on the "closed_at" field.
func ClosedAtEQ(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedAtNEQ applies the NEQ predicate on the "closed_at" field.
func ClosedAtNEQ(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldClosedAt, v))
}

// ClosedAtIn applies the In predicate on the "closed_at" field.
func ClosedAtIn(vs ...time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldClosedAt, vs...))
}

// ClosedAtNotIn applies the NotIn predicate on the "closed_at" field.
func ClosedAtNotIn(vs ...time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldClosedAt, vs...))
}

// ClosedAtGT applies the GT predicate on the "closed_at" field.
func ClosedAtGT(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldClosedAt, v))
}

// ClosedAtGTE applies the GTE predicate on the "closed_at" field.
func ClosedAtGTE(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldClosedAt, v))
}

// ClosedAtLT applies the LT predicate on the "closed_at" field.
func ClosedAtLT(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldClosedAt, v))
}

// ClosedAtLTE applies the LTE predicate on the "closed_at" field.
func ClosedAtLTE(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldClosedAt, v))
}

// ClosedAtIsNil applies the IsNil predicate on the "closed_at" field.
func ClosedAtIsNil() predicate.Bead {
	return predicate.Bead(sql.FieldIsNull(FieldClosedAt))
}

// ClosedAtNotNil applies the NotNil predicate on the "closed_at" field.
func ClosedAtNotNil() predicate.Bead {
	return predicate.Bead(sql.FieldNotNull(FieldClosedAt))
}

// ClosedReasonEQ applies the EQ predicate on the "closed_reason" field.
func ClosedReasonEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldClosedReason, v))
}

// ClosedReasonNEQ applies the NEQ predicate on the "closed_reason" field.
func ClosedReasonNEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldClosedReason, v))
}

// ClosedReasonIn applies the In predicate on the "closed_reason" field.
func ClosedReasonIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldClosedReason, vs...))
}

// ClosedReasonNotIn applies the NotIn predicate on the "closed_reason" field.
func ClosedReasonNotIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldClosedReason, vs...))
}

// ClosedReasonGT applies the GT predicate on the "closed_reason" field.
func ClosedReasonGT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldClosedReason, v))
}

// ClosedReasonGTE applies the GTE predicate on the "closed_reason" field.
func ClosedReasonGTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldClosedReason, v))
}

// ClosedReasonLT applies the LT predicate on the "closed_reason" field.
func ClosedReasonLT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldClosedReason, v))
}

// ClosedReasonLTE applies the LTE predicate on the "closed_reason" field.
func ClosedReasonLTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldClosedReason, v))
}

// ClosedReasonContains applies the Contains predicate on the "closed_reason" field.
func ClosedReasonContains(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContains(FieldClosedReason, v))
}

// ClosedReasonHasPrefix applies the HasPrefix predicate on the "closed_reason" field.
func ClosedReasonHasPrefix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasPrefix(FieldClosedReason, v))
}

// ClosedReasonHasSuffix applies the HasSuffix predicate on the "closed_reason" field.
func ClosedReasonHasSuffix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasSuffix(FieldClosedReason, v))
}

// ClosedReasonIsNil applies the IsNil predicate on the "closed_reason" field.
func ClosedReasonIsNil() predicate.Bead {
	return predicate.Bead(sql.FieldIsNull(FieldClosedReason))
}

// ClosedReasonNotNil applies the NotNil predicate on the "closed_reason" field.
func ClosedReasonNotNil() predicate.Bead {
	return predicate.Bead(sql.FieldNotNull(FieldClosedReason))
}

// ClosedReasonEqualFold applies the EqualFold predicate on the "closed_reason" field.
func ClosedReasonEqualFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEqualFold(FieldClosedReason, v))
}

// ClosedReasonContainsFold applies the ContainsFold predicate on the "closed_reason" field.
func ClosedReasonContainsFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContainsFold(FieldClosedReason, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Bead {
	return predicate.Bead(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Bead {
	return predicate.Bead(sql.FieldNotNull(FieldDeletedAt))
}

// DeleteReasonEQ applies the EQ predicate on the "delete_reason" field.
func DeleteReasonEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEQ(FieldDeleteReason, v))
}

// DeleteReasonNEQ applies the NEQ predicate on the "delete_reason" field.
func DeleteReasonNEQ(v string) predicate.Bead {
	return predicate.Bead(sql.FieldNEQ(FieldDeleteReason, v))
}

// DeleteReasonIn applies the In predicate on the "delete_reason" field.
func DeleteReasonIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldIn(FieldDeleteReason, vs...))
}

// DeleteReasonNotIn applies the NotIn predicate on the "delete_reason" field.
func DeleteReasonNotIn(vs ...string) predicate.Bead {
	return predicate.Bead(sql.FieldNotIn(FieldDeleteReason, vs...))
}

// DeleteReasonGT applies the GT predicate on the "delete_reason" field.
func DeleteReasonGT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGT(FieldDeleteReason, v))
}

// DeleteReasonGTE applies the GTE predicate on the "delete_reason" field.
func DeleteReasonGTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldGTE(FieldDeleteReason, v))
}

// DeleteReasonLT applies the LT predicate on the "delete_reason" field.
func DeleteReasonLT(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLT(FieldDeleteReason, v))
}

// DeleteReasonLTE applies the LTE predicate on the "delete_reason" field.
func DeleteReasonLTE(v string) predicate.Bead {
	return predicate.Bead(sql.FieldLTE(FieldDeleteReason, v))
}

// DeleteReasonContains applies the Contains predicate on the "delete_reason" field.
func DeleteReasonContains(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContains(FieldDeleteReason, v))
}

// DeleteReasonHasPrefix applies the HasPrefix predicate on the "delete_reason" field.
func DeleteReasonHasPrefix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasPrefix(FieldDeleteReason, v))
}

// DeleteReasonHasSuffix applies the HasSuffix predicate on the "delete_reason" field.
func DeleteReasonHasSuffix(v string) predicate.Bead {
	return predicate.Bead(sql.FieldHasSuffix(FieldDeleteReason, v))
}

// DeleteReasonIsNil applies the IsNil predicate on the "delete_reason" field.
func DeleteReasonIsNil() predicate.Bead {
	return predicate.Bead(sql.FieldIsNull(FieldDeleteReason))
}

// DeleteReasonNotNil applies the NotNil predicate on the "delete_reason" field.
func DeleteReasonNotNil() predicate.Bead {
	return predicate.Bead(sql.FieldNotNull(FieldDeleteReason))
}

// DeleteReasonEqualFold applies the EqualFold predicate on the "delete_reason" field.
func DeleteReasonEqualFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldEqualFold(FieldDeleteReason, v))
}

// DeleteReasonContainsFold applies the ContainsFold predicate on the "delete_reason" field.
func DeleteReasonContainsFold(v string) predicate.Bead {
	return predicate.Bead(sql.FieldContainsFold(FieldDeleteReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bead) predicate.Bead {
	return predicate.Bead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bead) predicate.Bead {
	return predicate.Bead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bead) predicate.Bead {
	return predicate.Bead(sql.NotPredicates(p))
}
