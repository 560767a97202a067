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
	"github.com/opencoord/hive/ent/deferred"
	"github.com/opencoord/hive/ent/predicate"
)

// DeferredUpdate is the builder for updating Deferred entities.
type DeferredUpdate struct {
	config
	hooks    []Hook
	mutation *DeferredMutation
}

// Where appends a list predicates to the DeferredUpdate builder.
func (_u *DeferredUpdate) Where(ps ...predicate.Deferred) *DeferredUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *DeferredUpdate) SetResolved(v bool) *DeferredUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *DeferredUpdate) SetNillableResolved(v *bool) *DeferredUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *DeferredUpdate) SetValue(v map[string]interface{}) *DeferredUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *DeferredUpdate) ClearValue() *DeferredUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetError sets the "error" field.
func (_u *DeferredUpdate) SetError(v string) *DeferredUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *DeferredUpdate) SetNillableError(v *string) *DeferredUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *DeferredUpdate) ClearError() *DeferredUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DeferredUpdate) SetResolvedAt(v time.Time) *DeferredUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DeferredUpdate) SetNillableResolvedAt(v *time.Time) *DeferredUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DeferredUpdate) ClearResolvedAt() *DeferredUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the DeferredMutation object of the builder.
func (_u *DeferredUpdate) Mutation() *DeferredMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeferredUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeferredUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeferredUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeferredUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeferredUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(deferred.Table, deferred.Columns, sqlgraph.NewFieldSpec(deferred.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(deferred.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(deferred.FieldValue, field.TypeJSON, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(deferred.FieldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(deferred.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(deferred.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(deferred.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(deferred.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deferred.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeferredUpdateOne is the builder for updating a single Deferred entity.
type DeferredUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeferredMutation
}

// SetResolved sets the "resolved" field.
func (_u *DeferredUpdateOne) SetResolved(v bool) *DeferredUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *DeferredUpdateOne) SetNillableResolved(v *bool) *DeferredUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *DeferredUpdateOne) SetValue(v map[string]interface{}) *DeferredUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *DeferredUpdateOne) ClearValue() *DeferredUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetError sets the "error" field.
func (_u *DeferredUpdateOne) SetError(v string) *DeferredUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *DeferredUpdateOne) SetNillableError(v *string) *DeferredUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *DeferredUpdateOne) ClearError() *DeferredUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DeferredUpdateOne) SetResolvedAt(v time.Time) *DeferredUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DeferredUpdateOne) SetNillableResolvedAt(v *time.Time) *DeferredUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DeferredUpdateOne) ClearResolvedAt() *DeferredUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the DeferredMutation object of the builder.
func (_u *DeferredUpdateOne) Mutation() *DeferredMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeferredUpdate builder.
func (_u *DeferredUpdateOne) Where(ps ...predicate.Deferred) *DeferredUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeferredUpdateOne) Select(field string, fields ...string) *DeferredUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deferred entity.
func (_u *DeferredUpdateOne) Save(ctx context.Context) (*Deferred, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeferredUpdateOne) SaveX(ctx context.Context) *Deferred {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeferredUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeferredUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeferredUpdateOne) sqlSave(ctx context.Context) (_node *Deferred, err error) {
	_spec := sqlgraph.NewUpdateSpec(deferred.Table, deferred.Columns, sqlgraph.NewFieldSpec(deferred.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deferred.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deferred.FieldID)
		for _, f := range fields {
			if !deferred.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deferred.FieldID {
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
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(deferred.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(deferred.FieldValue, field.TypeJSON, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(deferred.FieldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(deferred.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(deferred.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(deferred.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(deferred.FieldResolvedAt, field.TypeTime)
	}
	_node = &Deferred{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deferred.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
