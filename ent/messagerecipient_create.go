// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/message"
	"github.com/opencoord/hive/ent/messagerecipient"
)

// MessageRecipientCreate is the builder for creating a MessageRecipient entity.
type MessageRecipientCreate struct {
	config
	mutation *MessageRecipientMutation
	hooks    []Hook
}

// SetMessageID sets the "message_id" field.
func (_c *MessageRecipientCreate) SetMessageID(v string) *MessageRecipientCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *MessageRecipientCreate) SetAgentName(v string) *MessageRecipientCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *MessageRecipientCreate) SetReadAt(v time.Time) *MessageRecipientCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *MessageRecipientCreate) SetNillableReadAt(v *time.Time) *MessageRecipientCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetAckedAt sets the "acked_at" field.
func (_c *MessageRecipientCreate) SetAckedAt(v time.Time) *MessageRecipientCreate {
	_c.mutation.SetAckedAt(v)
	return _c
}

// SetNillableAckedAt sets the "acked_at" field if the given value is not nil.
func (_c *MessageRecipientCreate) SetNillableAckedAt(v *time.Time) *MessageRecipientCreate {
	if v != nil {
		_c.SetAckedAt(*v)
	}
	return _c
}

// SetMessage sets the "message" edge to the Message entity.
func (_c *MessageRecipientCreate) SetMessage(v *Message) *MessageRecipientCreate {
	return _c.SetMessageID(v.ID)
}

// Mutation returns the MessageRecipientMutation object of the builder.
func (_c *MessageRecipientCreate) Mutation() *MessageRecipientMutation {
	return _c.mutation
}

// Save creates the MessageRecipient in the database.
func (_c *MessageRecipientCreate) Save(ctx context.Context) (*MessageRecipient, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageRecipientCreate) SaveX(ctx context.Context) *MessageRecipient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageRecipientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageRecipientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageRecipientCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageRecipient.message_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "MessageRecipient.agent_name"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "MessageRecipient.message"`)}
	}
	return nil
}

func (_c *MessageRecipientCreate) sqlSave(ctx context.Context) (*MessageRecipient, error) {
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

func (_c *MessageRecipientCreate) createSpec() (*MessageRecipient, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageRecipient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagerecipient.Table, sqlgraph.NewFieldSpec(messagerecipient.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(messagerecipient.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(messagerecipient.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	if value, ok := _c.mutation.AckedAt(); ok {
		_spec.SetField(messagerecipient.FieldAckedAt, field.TypeTime, value)
		_node.AckedAt = &value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messagerecipient.MessageTable,
			Columns: []string{messagerecipient.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MessageRecipientCreateBulk is the builder for creating many MessageRecipient entities in bulk.
type MessageRecipientCreateBulk struct {
	config
	err      error
	builders []*MessageRecipientCreate
}

// Save creates the MessageRecipient entities in the database.
func (_c *MessageRecipientCreateBulk) Save(ctx context.Context) ([]*MessageRecipient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageRecipient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageRecipientMutation)
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
func (_c *MessageRecipientCreateBulk) SaveX(ctx context.Context) []*MessageRecipient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageRecipientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageRecipientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
