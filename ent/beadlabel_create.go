// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/beadlabel"
)

// BeadLabelCreate is the builder for creating a BeadLabel entity.
type BeadLabelCreate struct {
	config
	mutation *BeadLabelMutation
	hooks    []Hook
}

// SetBeadID sets the "bead_id" field.
func (_c *BeadLabelCreate) SetBeadID(v string) *BeadLabelCreate {
	_c.mutation.SetBeadID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *BeadLabelCreate) SetLabel(v string) *BeadLabelCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// Mutation returns the BeadLabelMutation object of the builder.
func (_c *BeadLabelCreate) Mutation() *BeadLabelMutation {
	return _c.mutation
}

// Save creates the BeadLabel in the database.
func (_c *BeadLabelCreate) Save(ctx context.Context) (*BeadLabel, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BeadLabelCreate) SaveX(ctx context.Context) *BeadLabel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeadLabelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeadLabelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BeadLabelCreate) check() error {
	if _, ok := _c.mutation.BeadID(); !ok {
		return &ValidationError{Name: "bead_id", err: errors.New(`ent: missing required field "BeadLabel.bead_id"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "BeadLabel.label"`)}
	}
	return nil
}

func (_c *BeadLabelCreate) sqlSave(ctx context.Context) (*BeadLabel, error) {
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

func (_c *BeadLabelCreate) createSpec() (*BeadLabel, *sqlgraph.CreateSpec) {
	var (
		_node = &BeadLabel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(beadlabel.Table, sqlgraph.NewFieldSpec(beadlabel.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BeadID(); ok {
		_spec.SetField(beadlabel.FieldBeadID, field.TypeString, value)
		_node.BeadID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(beadlabel.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	return _node, _spec
}

// BeadLabelCreateBulk is the builder for creating many BeadLabel entities in bulk.
type BeadLabelCreateBulk struct {
	config
	err      error
	builders []*BeadLabelCreate
}

// Save creates the BeadLabel entities in the database.
func (_c *BeadLabelCreateBulk) Save(ctx context.Context) ([]*BeadLabel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BeadLabel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BeadLabelMutation)
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
func (_c *BeadLabelCreateBulk) SaveX(ctx context.Context) []*BeadLabel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeadLabelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeadLabelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
