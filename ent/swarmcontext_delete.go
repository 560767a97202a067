// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/predicate"
	"github.com/opencoord/hive/ent/swarmcontext"
)

// SwarmContextDelete is the builder for deleting a SwarmContext entity.
type SwarmContextDelete struct {
	config
	hooks    []Hook
	mutation *SwarmContextMutation
}

// Where appends a list predicates to the SwarmContextDelete builder.
func (_d *SwarmContextDelete) Where(ps ...predicate.SwarmContext) *SwarmContextDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SwarmContextDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SwarmContextDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SwarmContextDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(swarmcontext.Table, sqlgraph.NewFieldSpec(swarmcontext.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SwarmContextDeleteOne is the builder for deleting a single SwarmContext entity.
type SwarmContextDeleteOne struct {
	_d *SwarmContextDelete
}

// Where appends a list predicates to the SwarmContextDelete builder.
func (_d *SwarmContextDeleteOne) Where(ps ...predicate.SwarmContext) *SwarmContextDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SwarmContextDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{swarmcontext.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SwarmContextDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
