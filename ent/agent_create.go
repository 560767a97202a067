// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetProjectKey sets the "project_key" field.
func (_c *AgentCreate) SetProjectKey(v string) *AgentCreate {
	_c.mutation.SetProjectKey(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProgram sets the "program" field.
func (_c *AgentCreate) SetProgram(v string) *AgentCreate {
	_c.mutation.SetProgram(v)
	return _c
}

// SetNillableProgram sets the "program" field if the given value is not nil.
func (_c *AgentCreate) SetNillableProgram(v *string) *AgentCreate {
	if v != nil {
		_c.SetProgram(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentCreate) SetModel(v string) *AgentCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AgentCreate) SetNillableModel(v *string) *AgentCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *AgentCreate) SetTaskDescription(v string) *AgentCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTaskDescription(v *string) *AgentCreate {
	if v != nil {
		_c.SetTaskDescription(*v)
	}
	return _c
}

// SetRegisteredAt sets the "registered_at" field.
func (_c *AgentCreate) SetRegisteredAt(v time.Time) *AgentCreate {
	_c.mutation.SetRegisteredAt(v)
	return _c
}

// SetNillableRegisteredAt sets the "registered_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableRegisteredAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetRegisteredAt(*v)
	}
	return _c
}

// SetLastActiveAt sets the "last_active_at" field.
func (_c *AgentCreate) SetLastActiveAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastActiveAt(v)
	return _c
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastActiveAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastActiveAt(*v)
	}
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		v := agent.DefaultRegisteredAt()
		_c.mutation.SetRegisteredAt(v)
	}
	if _, ok := _c.mutation.LastActiveAt(); !ok {
		v := agent.DefaultLastActiveAt()
		_c.mutation.SetLastActiveAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.ProjectKey(); !ok {
		return &ValidationError{Name: "project_key", err: errors.New(`ent: missing required field "Agent.project_key"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		return &ValidationError{Name: "registered_at", err: errors.New(`ent: missing required field "Agent.registered_at"`)}
	}
	if _, ok := _c.mutation.LastActiveAt(); !ok {
		return &ValidationError{Name: "last_active_at", err: errors.New(`ent: missing required field "Agent.last_active_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProjectKey(); ok {
		_spec.SetField(agent.FieldProjectKey, field.TypeString, value)
		_node.ProjectKey = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Program(); ok {
		_spec.SetField(agent.FieldProgram, field.TypeString, value)
		_node.Program = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(agent.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = value
	}
	if value, ok := _c.mutation.RegisteredAt(); ok {
		_spec.SetField(agent.FieldRegisteredAt, field.TypeTime, value)
		_node.RegisteredAt = value
	}
	if value, ok := _c.mutation.LastActiveAt(); ok {
		_spec.SetField(agent.FieldLastActiveAt, field.TypeTime, value)
		_node.LastActiveAt = value
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
