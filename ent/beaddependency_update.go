// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/beaddependency"
	"github.com/opencoord/hive/ent/predicate"
)

// BeadDependencyUpdate is the builder for updating BeadDependency entities.
type BeadDependencyUpdate struct {
	config
	hooks    []Hook
	mutation *BeadDependencyMutation
}

// Where appends a list predicates to the BeadDependencyUpdate builder.
func (_u *BeadDependencyUpdate) Where(ps ...predicate.BeadDependency) *BeadDependencyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the BeadDependencyMutation object of the builder.
func (_u *BeadDependencyUpdate) Mutation() *BeadDependencyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BeadDependencyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BeadDependencyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BeadDependencyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BeadDependencyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BeadDependencyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(beaddependency.Table, beaddependency.Columns, sqlgraph.NewFieldSpec(beaddependency.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{beaddependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BeadDependencyUpdateOne is the builder for updating a single BeadDependency entity.
type BeadDependencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BeadDependencyMutation
}

// Mutation returns the BeadDependencyMutation object of the builder.
func (_u *BeadDependencyUpdateOne) Mutation() *BeadDependencyMutation {
	return _u.mutation
}

// Where appends a list predicates to the BeadDependencyUpdate builder.
func (_u *BeadDependencyUpdateOne) Where(ps ...predicate.BeadDependency) *BeadDependencyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BeadDependencyUpdateOne) Select(field string, fields ...string) *BeadDependencyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BeadDependency entity.
func (_u *BeadDependencyUpdateOne) Save(ctx context.Context) (*BeadDependency, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BeadDependencyUpdateOne) SaveX(ctx context.Context) *BeadDependency {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BeadDependencyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BeadDependencyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BeadDependencyUpdateOne) sqlSave(ctx context.Context) (_node *BeadDependency, err error) {
	_spec := sqlgraph.NewUpdateSpec(beaddependency.Table, beaddependency.Columns, sqlgraph.NewFieldSpec(beaddependency.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BeadDependency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, beaddependency.FieldID)
		for _, f := range fields {
			if !beaddependency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != beaddependency.FieldID {
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
	_node = &BeadDependency{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{beaddependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
