// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/predicate"
	"github.com/opencoord/hive/ent/swarmcontext"
)

// SwarmContextUpdate is the builder for updating SwarmContext entities.
type SwarmContextUpdate struct {
	config
	hooks    []Hook
	mutation *SwarmContextMutation
}

// Where appends a list predicates to the SwarmContextUpdate builder.
func (_u *SwarmContextUpdate) Where(ps ...predicate.SwarmContext) *SwarmContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsCoordinator sets the "is_coordinator" field.
func (_u *SwarmContextUpdate) SetIsCoordinator(v bool) *SwarmContextUpdate {
	_u.mutation.SetIsCoordinator(v)
	return _u
}

// SetNillableIsCoordinator sets the "is_coordinator" field if the given value is not nil.
func (_u *SwarmContextUpdate) SetNillableIsCoordinator(v *bool) *SwarmContextUpdate {
	if v != nil {
		_u.SetIsCoordinator(*v)
	}
	return _u
}

// Mutation returns the SwarmContextMutation object of the builder.
func (_u *SwarmContextUpdate) Mutation() *SwarmContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SwarmContextUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SwarmContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SwarmContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SwarmContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SwarmContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(swarmcontext.Table, swarmcontext.Columns, sqlgraph.NewFieldSpec(swarmcontext.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsCoordinator(); ok {
		_spec.SetField(swarmcontext.FieldIsCoordinator, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{swarmcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SwarmContextUpdateOne is the builder for updating a single SwarmContext entity.
type SwarmContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SwarmContextMutation
}

// SetIsCoordinator sets the "is_coordinator" field.
func (_u *SwarmContextUpdateOne) SetIsCoordinator(v bool) *SwarmContextUpdateOne {
	_u.mutation.SetIsCoordinator(v)
	return _u
}

// SetNillableIsCoordinator sets the "is_coordinator" field if the given value is not nil.
func (_u *SwarmContextUpdateOne) SetNillableIsCoordinator(v *bool) *SwarmContextUpdateOne {
	if v != nil {
		_u.SetIsCoordinator(*v)
	}
	return _u
}

// Mutation returns the SwarmContextMutation object of the builder.
func (_u *SwarmContextUpdateOne) Mutation() *SwarmContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the SwarmContextUpdate builder.
func (_u *SwarmContextUpdateOne) Where(ps ...predicate.SwarmContext) *SwarmContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SwarmContextUpdateOne) Select(field string, fields ...string) *SwarmContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SwarmContext entity.
func (_u *SwarmContextUpdateOne) Save(ctx context.Context) (*SwarmContext, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SwarmContextUpdateOne) SaveX(ctx context.Context) *SwarmContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SwarmContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SwarmContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SwarmContextUpdateOne) sqlSave(ctx context.Context) (_node *SwarmContext, err error) {
	_spec := sqlgraph.NewUpdateSpec(swarmcontext.Table, swarmcontext.Columns, sqlgraph.NewFieldSpec(swarmcontext.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SwarmContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, swarmcontext.FieldID)
		for _, f := range fields {
			if !swarmcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != swarmcontext.FieldID {
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
	if value, ok := _u.mutation.IsCoordinator(); ok {
		_spec.SetField(swarmcontext.FieldIsCoordinator, field.TypeBool, value)
	}
	_node = &SwarmContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{swarmcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
