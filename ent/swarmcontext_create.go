// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/swarmcontext"
)

// SwarmContextCreate is the builder for creating a SwarmContext entity.
type SwarmContextCreate struct {
	config
	mutation *SwarmContextMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SwarmContextCreate) SetSessionID(v string) *SwarmContextCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetProjectKey sets the "project_key" field.
func (_c *SwarmContextCreate) SetProjectKey(v string) *SwarmContextCreate {
	_c.mutation.SetProjectKey(v)
	return _c
}

// SetIsCoordinator sets the "is_coordinator" field.
func (_c *SwarmContextCreate) SetIsCoordinator(v bool) *SwarmContextCreate {
	_c.mutation.SetIsCoordinator(v)
	return _c
}

// SetNillableIsCoordinator sets the "is_coordinator" field if the given value is not nil.
func (_c *SwarmContextCreate) SetNillableIsCoordinator(v *bool) *SwarmContextCreate {
	if v != nil {
		_c.SetIsCoordinator(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SwarmContextCreate) SetCreatedAt(v time.Time) *SwarmContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SwarmContextCreate) SetNillableCreatedAt(v *time.Time) *SwarmContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SwarmContextMutation object of the builder.
func (_c *SwarmContextCreate) Mutation() *SwarmContextMutation {
	return _c.mutation
}

// Save creates the SwarmContext in the database.
func (_c *SwarmContextCreate) Save(ctx context.Context) (*SwarmContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SwarmContextCreate) SaveX(ctx context.Context) *SwarmContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SwarmContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SwarmContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SwarmContextCreate) defaults() {
	if _, ok := _c.mutation.IsCoordinator(); !ok {
		v := swarmcontext.DefaultIsCoordinator
		_c.mutation.SetIsCoordinator(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := swarmcontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SwarmContextCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SwarmContext.session_id"`)}
	}
	if _, ok := _c.mutation.ProjectKey(); !ok {
		return &ValidationError{Name: "project_key", err: errors.New(`ent: missing required field "SwarmContext.project_key"`)}
	}
	if _, ok := _c.mutation.IsCoordinator(); !ok {
		return &ValidationError{Name: "is_coordinator", err: errors.New(`ent: missing required field "SwarmContext.is_coordinator"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SwarmContext.created_at"`)}
	}
	return nil
}

func (_c *SwarmContextCreate) sqlSave(ctx context.Context) (*SwarmContext, error) {
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

func (_c *SwarmContextCreate) createSpec() (*SwarmContext, *sqlgraph.CreateSpec) {
	var (
		_node = &SwarmContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(swarmcontext.Table, sqlgraph.NewFieldSpec(swarmcontext.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(swarmcontext.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ProjectKey(); ok {
		_spec.SetField(swarmcontext.FieldProjectKey, field.TypeString, value)
		_node.ProjectKey = value
	}
	if value, ok := _c.mutation.IsCoordinator(); ok {
		_spec.SetField(swarmcontext.FieldIsCoordinator, field.TypeBool, value)
		_node.IsCoordinator = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(swarmcontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SwarmContextCreateBulk is the builder for creating many SwarmContext entities in bulk.
type SwarmContextCreateBulk struct {
	config
	err      error
	builders []*SwarmContextCreate
}

// Save creates the SwarmContext entities in the database.
func (_c *SwarmContextCreateBulk) Save(ctx context.Context) ([]*SwarmContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SwarmContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SwarmContextMutation)
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
func (_c *SwarmContextCreateBulk) SaveX(ctx context.Context) []*SwarmContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SwarmContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SwarmContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
