// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/beaddependency"
)

// BeadDependencyCreate is the builder for creating a BeadDependency entity.
type BeadDependencyCreate struct {
	config
	mutation *BeadDependencyMutation
	hooks    []Hook
}

// SetBeadID sets the "bead_id" field.
func (_c *BeadDependencyCreate) SetBeadID(v string) *BeadDependencyCreate {
	_c.mutation.SetBeadID(v)
	return _c
}

// SetDependsOnID sets the "depends_on_id" field.
func (_c *BeadDependencyCreate) SetDependsOnID(v string) *BeadDependencyCreate {
	_c.mutation.SetDependsOnID(v)
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *BeadDependencyCreate) SetRelationship(v string) *BeadDependencyCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *BeadDependencyCreate) SetNillableRelationship(v *string) *BeadDependencyCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BeadDependencyCreate) SetCreatedAt(v time.Time) *BeadDependencyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BeadDependencyCreate) SetNillableCreatedAt(v *time.Time) *BeadDependencyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BeadDependencyMutation object of the builder.
func (_c *BeadDependencyCreate) Mutation() *BeadDependencyMutation {
	return _c.mutation
}

// Save creates the BeadDependency in the database.
func (_c *BeadDependencyCreate) Save(ctx context.Context) (*BeadDependency, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BeadDependencyCreate) SaveX(ctx context.Context) *BeadDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeadDependencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeadDependencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BeadDependencyCreate) defaults() {
	if _, ok := _c.mutation.Relationship(); !ok {
		v := beaddependency.DefaultRelationship
		_c.mutation.SetRelationship(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := beaddependency.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BeadDependencyCreate) check() error {
	if _, ok := _c.mutation.BeadID(); !ok {
		return &ValidationError{Name: "bead_id", err: errors.New(`ent: missing required field "BeadDependency.bead_id"`)}
	}
	if _, ok := _c.mutation.DependsOnID(); !ok {
		return &ValidationError{Name: "depends_on_id", err: errors.New(`ent: missing required field "BeadDependency.depends_on_id"`)}
	}
	if _, ok := _c.mutation.Relationship(); !ok {
		return &ValidationError{Name: "relationship", err: errors.New(`ent: missing required field "BeadDependency.relationship"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BeadDependency.created_at"`)}
	}
	return nil
}

func (_c *BeadDependencyCreate) sqlSave(ctx context.Context) (*BeadDependency, error) {
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

func (_c *BeadDependencyCreate) createSpec() (*BeadDependency, *sqlgraph.CreateSpec) {
	var (
		_node = &BeadDependency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(beaddependency.Table, sqlgraph.NewFieldSpec(beaddependency.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BeadID(); ok {
		_spec.SetField(beaddependency.FieldBeadID, field.TypeString, value)
		_node.BeadID = value
	}
	if value, ok := _c.mutation.DependsOnID(); ok {
		_spec.SetField(beaddependency.FieldDependsOnID, field.TypeString, value)
		_node.DependsOnID = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(beaddependency.FieldRelationship, field.TypeString, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(beaddependency.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BeadDependencyCreateBulk is the builder for creating many BeadDependency entities in bulk.
type BeadDependencyCreateBulk struct {
	config
	err      error
	builders []*BeadDependencyCreate
}

// Save creates the BeadDependency entities in the database.
func (_c *BeadDependencyCreateBulk) Save(ctx context.Context) ([]*BeadDependency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BeadDependency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BeadDependencyMutation)
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
func (_c *BeadDependencyCreateBulk) SaveX(ctx context.Context) []*BeadDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeadDependencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeadDependencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
