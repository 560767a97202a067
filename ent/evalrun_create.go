// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/evalrun"
)

// EvalRunCreate is the builder for creating a EvalRun entity.
type EvalRunCreate struct {
	config
	mutation *EvalRunMutation
	hooks    []Hook
}

// SetEvalName sets the "eval_name" field.
func (_c *EvalRunCreate) SetEvalName(v string) *EvalRunCreate {
	_c.mutation.SetEvalName(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *EvalRunCreate) SetScore(v float64) *EvalRunCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRunAt sets the "run_at" field.
func (_c *EvalRunCreate) SetRunAt(v time.Time) *EvalRunCreate {
	_c.mutation.SetRunAt(v)
	return _c
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableRunAt(v *time.Time) *EvalRunCreate {
	if v != nil {
		_c.SetRunAt(*v)
	}
	return _c
}

// Mutation returns the EvalRunMutation object of the builder.
func (_c *EvalRunCreate) Mutation() *EvalRunMutation {
	return _c.mutation
}

// Save creates the EvalRun in the database.
func (_c *EvalRunCreate) Save(ctx context.Context) (*EvalRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvalRunCreate) SaveX(ctx context.Context) *EvalRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvalRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvalRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvalRunCreate) defaults() {
	if _, ok := _c.mutation.RunAt(); !ok {
		v := evalrun.DefaultRunAt()
		_c.mutation.SetRunAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvalRunCreate) check() error {
	if _, ok := _c.mutation.EvalName(); !ok {
		return &ValidationError{Name: "eval_name", err: errors.New(`ent: missing required field "EvalRun.eval_name"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "EvalRun.score"`)}
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		return &ValidationError{Name: "run_at", err: errors.New(`ent: missing required field "EvalRun.run_at"`)}
	}
	return nil
}

func (_c *EvalRunCreate) sqlSave(ctx context.Context) (*EvalRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvalRunCreate) createSpec() (*EvalRun, *sqlgraph.CreateSpec) {
	var (
		_node = &EvalRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evalrun.Table, sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EvalName(); ok {
		_spec.SetField(evalrun.FieldEvalName, field.TypeString, value)
		_node.EvalName = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(evalrun.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.RunAt(); ok {
		_spec.SetField(evalrun.FieldRunAt, field.TypeTime, value)
		_node.RunAt = value
	}
	return _node, _spec
}

// EvalRunCreateBulk is the builder for creating many EvalRun entities in bulk.
type EvalRunCreateBulk struct {
	config
	err      error
	builders []*EvalRunCreate
}

// Save creates the EvalRun entities in the database.
func (_c *EvalRunCreateBulk) Save(ctx context.Context) ([]*EvalRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvalRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvalRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvalRunCreateBulk) SaveX(ctx context.Context) []*EvalRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvalRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvalRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
