// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/beadlabel"
	"github.com/opencoord/hive/ent/predicate"
)

// BeadLabelUpdate is the builder for updating BeadLabel entities.
type BeadLabelUpdate struct {
	config
	hooks    []Hook
	mutation *BeadLabelMutation
}

// Where appends a list predicates to the BeadLabelUpdate builder.
func (_u *BeadLabelUpdate) Where(ps ...predicate.BeadLabel) *BeadLabelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the BeadLabelMutation object of the builder.
func (_u *BeadLabelUpdate) Mutation() *BeadLabelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BeadLabelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BeadLabelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BeadLabelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BeadLabelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BeadLabelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(beadlabel.Table, beadlabel.Columns, sqlgraph.NewFieldSpec(beadlabel.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{beadlabel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BeadLabelUpdateOne is the builder for updating a single BeadLabel entity.
type BeadLabelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BeadLabelMutation
}

// Mutation returns the BeadLabelMutation object of the builder.
func (_u *BeadLabelUpdateOne) Mutation() *BeadLabelMutation {
	return _u.mutation
}

// Where appends a list predicates to the BeadLabelUpdate builder.
func (_u *BeadLabelUpdateOne) Where(ps ...predicate.BeadLabel) *BeadLabelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BeadLabelUpdateOne) Select(field string, fields ...string) *BeadLabelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BeadLabel entity.
func (_u *BeadLabelUpdateOne) Save(ctx context.Context) (*BeadLabel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BeadLabelUpdateOne) SaveX(ctx context.Context) *BeadLabel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BeadLabelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BeadLabelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BeadLabelUpdateOne) sqlSave(ctx context.Context) (_node *BeadLabel, err error) {
	_spec := sqlgraph.NewUpdateSpec(beadlabel.Table, beadlabel.Columns, sqlgraph.NewFieldSpec(beadlabel.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BeadLabel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, beadlabel.FieldID)
		for _, f := range fields {
			if !beadlabel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != beadlabel.FieldID {
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
	_node = &BeadLabel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{beadlabel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
