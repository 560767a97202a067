// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/bead"
	"github.com/opencoord/hive/ent/predicate"
)

// BeadUpdate is the builder for updating Bead entities.
type BeadUpdate struct {
	config
	hooks    []Hook
	mutation *BeadMutation
}

// Where appends a list predicates to the BeadUpdate builder.
func (_u *BeadUpdate) Where(ps ...predicate.Bead) *BeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBeadType sets the "bead_type" field.
func (_u *BeadUpdate) SetBeadType(v bead.BeadType) *BeadUpdate {
	_u.mutation.SetBeadType(v)
	return _u
}

// SetNillableBeadType sets the "bead_type" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableBeadType(v *bead.BeadType) *BeadUpdate {
	if v != nil {
		_u.SetBeadType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BeadUpdate) SetStatus(v bead.Status) *BeadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableStatus(v *bead.Status) *BeadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BeadUpdate) SetTitle(v string) *BeadUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableTitle(v *string) *BeadUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BeadUpdate) SetDescription(v string) *BeadUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableDescription(v *string) *BeadUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BeadUpdate) ClearDescription() *BeadUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *BeadUpdate) SetPriority(v int) *BeadUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *BeadUpdate) SetNillablePriority(v *int) *BeadUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *BeadUpdate) AddPriority(v int) *BeadUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *BeadUpdate) SetParentID(v string) *BeadUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableParentID(v *string) *BeadUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *BeadUpdate) ClearParentID() *BeadUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *BeadUpdate) SetAssignee(v string) *BeadUpdate {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableAssignee(v *string) *BeadUpdate {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// ClearAssignee clears the value of the "assignee" field.
func (_u *BeadUpdate) ClearAssignee() *BeadUpdate {
	_u.mutation.ClearAssignee()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BeadUpdate) SetUpdatedAt(v time.Time) *BeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *BeadUpdate) SetClosedAt(v time.Time) *BeadUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableClosedAt(v *time.Time) *BeadUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *BeadUpdate) ClearClosedAt() *BeadUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetClosedReason sets the "closed_reason" field.
func (_u *BeadUpdate) SetClosedReason(v string) *BeadUpdate {
	_u.mutation.SetClosedReason(v)
	return _u
}

// SetNillableClosedReason sets the "closed_reason" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableClosedReason(v *string) *BeadUpdate {
	if v != nil {
		_u.SetClosedReason(*v)
	}
	return _u
}

// ClearClosedReason clears the value of the "closed_reason" field.
func (_u *BeadUpdate) ClearClosedReason() *BeadUpdate {
	_u.mutation.ClearClosedReason()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *BeadUpdate) SetDeletedAt(v time.Time) *BeadUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableDeletedAt(v *time.Time) *BeadUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *BeadUpdate) ClearDeletedAt() *BeadUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDeleteReason sets the "delete_reason" field.
func (_u *BeadUpdate) SetDeleteReason(v string) *BeadUpdate {
	_u.mutation.SetDeleteReason(v)
	return _u
}

// SetNillableDeleteReason sets the "delete_reason" field if the given value is not nil.
func (_u *BeadUpdate) SetNillableDeleteReason(v *string) *BeadUpdate {
	if v != nil {
		_u.SetDeleteReason(*v)
	}
	return _u
}

// ClearDeleteReason clears the value of the "delete_reason" field.
func (_u *BeadUpdate) ClearDeleteReason() *BeadUpdate {
	_u.mutation.ClearDeleteReason()
	return _u
}

// Mutation returns the BeadMutation object of the builder.
func (_u *BeadUpdate) Mutation() *BeadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BeadUpdate) check() error {
	if v, ok := _u.mutation.BeadType(); ok {
		if err := bead.BeadTypeValidator(v); err != nil {
			return &ValidationError{Name: "bead_type", err: fmt.Errorf(`ent: validator failed for field "Bead.bead_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bead.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := bead.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Bead.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := bead.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Bead.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *BeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bead.Table, bead.Columns, sqlgraph.NewFieldSpec(bead.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BeadType(); ok {
		_spec.SetField(bead.FieldBeadType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(bead.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bead.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bead.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(bead.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(bead.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(bead.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(bead.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(bead.FieldAssignee, field.TypeString, value)
	}
	if _u.mutation.AssigneeCleared() {
		_spec.ClearField(bead.FieldAssignee, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bead.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(bead.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(bead.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClosedReason(); ok {
		_spec.SetField(bead.FieldClosedReason, field.TypeString, value)
	}
	if _u.mutation.ClosedReasonCleared() {
		_spec.ClearField(bead.FieldClosedReason, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(bead.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(bead.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeleteReason(); ok {
		_spec.SetField(bead.FieldDeleteReason, field.TypeString, value)
	}
	if _u.mutation.DeleteReasonCleared() {
		_spec.ClearField(bead.FieldDeleteReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BeadUpdateOne is the builder for updating a single Bead entity.
type BeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BeadMutation
}

// SetBeadType sets the "bead_type" field.
func (_u *BeadUpdateOne) SetBeadType(v bead.BeadType) *BeadUpdateOne {
	_u.mutation.SetBeadType(v)
	return _u
}

// SetNillableBeadType sets the "bead_type" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableBeadType(v *bead.BeadType) *BeadUpdateOne {
	if v != nil {
		_u.SetBeadType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BeadUpdateOne) SetStatus(v bead.Status) *BeadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableStatus(v *bead.Status) *BeadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BeadUpdateOne) SetTitle(v string) *BeadUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableTitle(v *string) *BeadUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BeadUpdateOne) SetDescription(v string) *BeadUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableDescription(v *string) *BeadUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BeadUpdateOne) ClearDescription() *BeadUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *BeadUpdateOne) SetPriority(v int) *BeadUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillablePriority(v *int) *BeadUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *BeadUpdateOne) AddPriority(v int) *BeadUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *BeadUpdateOne) SetParentID(v string) *BeadUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableParentID(v *string) *BeadUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *BeadUpdateOne) ClearParentID() *BeadUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *BeadUpdateOne) SetAssignee(v string) *BeadUpdateOne {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableAssignee(v *string) *BeadUpdateOne {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// ClearAssignee clears the value of the "assignee" field.
func (_u *BeadUpdateOne) ClearAssignee() *BeadUpdateOne {
	_u.mutation.ClearAssignee()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BeadUpdateOne) SetUpdatedAt(v time.Time) *BeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *BeadUpdateOne) SetClosedAt(v time.Time) *BeadUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableClosedAt(v *time.Time) *BeadUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *BeadUpdateOne) ClearClosedAt() *BeadUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetClosedReason sets the "closed_reason" field.
func (_u *BeadUpdateOne) SetClosedReason(v string) *BeadUpdateOne {
	_u.mutation.SetClosedReason(v)
	return _u
}

// SetNillableClosedReason sets the "closed_reason" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableClosedReason(v *string) *BeadUpdateOne {
	if v != nil {
		_u.SetClosedReason(*v)
	}
	return _u
}

// ClearClosedReason clears the value of the "closed_reason" field.
func (_u *BeadUpdateOne) ClearClosedReason() *BeadUpdateOne {
	_u.mutation.ClearClosedReason()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *BeadUpdateOne) SetDeletedAt(v time.Time) *BeadUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableDeletedAt(v *time.Time) *BeadUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *BeadUpdateOne) ClearDeletedAt() *BeadUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDeleteReason sets the "delete_reason" field.
func (_u *BeadUpdateOne) SetDeleteReason(v string) *BeadUpdateOne {
	_u.mutation.SetDeleteReason(v)
	return _u
}

// SetNillableDeleteReason sets the "delete_reason" field if the given value is not nil.
func (_u *BeadUpdateOne) SetNillableDeleteReason(v *string) *BeadUpdateOne {
	if v != nil {
		_u.SetDeleteReason(*v)
	}
	return _u
}

// ClearDeleteReason clears the value of the "delete_reason" field.
func (_u *BeadUpdateOne) ClearDeleteReason() *BeadUpdateOne {
	_u.mutation.ClearDeleteReason()
	return _u
}

// Mutation returns the BeadMutation object of the builder.
func (_u *BeadUpdateOne) Mutation() *BeadMutation {
	return _u.mutation
}

// Where appends a list predicates to the BeadUpdate builder.
func (_u *BeadUpdateOne) Where(ps ...predicate.Bead) *BeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BeadUpdateOne) Select(field string, fields ...string) *BeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bead entity.
func (_u *BeadUpdateOne) Save(ctx context.Context) (*Bead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BeadUpdateOne) SaveX(ctx context.Context) *Bead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BeadUpdateOne) check() error {
	if v, ok := _u.mutation.BeadType(); ok {
		if err := bead.BeadTypeValidator(v); err != nil {
			return &ValidationError{Name: "bead_type", err: fmt.Errorf(`ent: validator failed for field "Bead.bead_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bead.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := bead.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Bead.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := bead.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Bead.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *BeadUpdateOne) sqlSave(ctx context.Context) (_node *Bead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bead.Table, bead.Columns, sqlgraph.NewFieldSpec(bead.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bead.FieldID)
		for _, f := range fields {
			if !bead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bead.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BeadType(); ok {
		_spec.SetField(bead.FieldBeadType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(bead.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bead.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bead.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(bead.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(bead.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(bead.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(bead.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(bead.FieldAssignee, field.TypeString, value)
	}
	if _u.mutation.AssigneeCleared() {
		_spec.ClearField(bead.FieldAssignee, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bead.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(bead.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(bead.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClosedReason(); ok {
		_spec.SetField(bead.FieldClosedReason, field.TypeString, value)
	}
	if _u.mutation.ClosedReasonCleared() {
		_spec.ClearField(bead.FieldClosedReason, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(bead.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(bead.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeleteReason(); ok {
		_spec.SetField(bead.FieldDeleteReason, field.TypeString, value)
	}
	if _u.mutation.DeleteReasonCleared() {
		_spec.ClearField(bead.FieldDeleteReason, field.TypeString)
	}
	_node = &Bead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
