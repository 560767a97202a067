// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/beaddependency"
	"github.com/opencoord/hive/ent/predicate"
)

// BeadDependencyDelete is the builder for deleting a BeadDependency entity.
type BeadDependencyDelete struct {
	config
	hooks    []Hook
	mutation *BeadDependencyMutation
}

// Where appends a list predicates to the BeadDependencyDelete builder.
func (_d *BeadDependencyDelete) Where(ps ...predicate.BeadDependency) *BeadDependencyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BeadDependencyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BeadDependencyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BeadDependencyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(beaddependency.Table, sqlgraph.NewFieldSpec(beaddependency.FieldID, field.TypeInt))
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

// BeadDependencyDeleteOne is the builder for deleting a single BeadDependency entity.
type BeadDependencyDeleteOne struct {
	_d *BeadDependencyDelete
}

// Where appends a list predicates to the BeadDependencyDelete builder.
func (_d *BeadDependencyDeleteOne) Where(ps ...predicate.BeadDependency) *BeadDependencyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BeadDependencyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{beaddependency.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BeadDependencyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
