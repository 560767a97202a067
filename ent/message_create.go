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

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
}

// SetProjectKey sets the "project_key" field.
func (_c *MessageCreate) SetProjectKey(v string) *MessageCreate {
	_c.mutation.SetProjectKey(v)
	return _c
}

// SetFromAgent sets the "from_agent" field.
func (_c *MessageCreate) SetFromAgent(v string) *MessageCreate {
	_c.mutation.SetFromAgent(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *MessageCreate) SetSubject(v string) *MessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *MessageCreate) SetBody(v string) *MessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *MessageCreate) SetThreadID(v string) *MessageCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableThreadID(v *string) *MessageCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetImportance sets the "importance" field.
func (_c *MessageCreate) SetImportance(v message.Importance) *MessageCreate {
	_c.mutation.SetImportance(v)
	return _c
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_c *MessageCreate) SetNillableImportance(v *message.Importance) *MessageCreate {
	if v != nil {
		_c.SetImportance(*v)
	}
	return _c
}

// SetAckRequired sets the "ack_required" field.
func (_c *MessageCreate) SetAckRequired(v bool) *MessageCreate {
	_c.mutation.SetAckRequired(v)
	return _c
}

// SetNillableAckRequired sets the "ack_required" field if the given value is not nil.
func (_c *MessageCreate) SetNillableAckRequired(v *bool) *MessageCreate {
	if v != nil {
		_c.SetAckRequired(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRecipientIDs adds the "recipients" edge to the MessageRecipient entity by IDs.
func (_c *MessageCreate) AddRecipientIDs(ids ...int) *MessageCreate {
	_c.mutation.AddRecipientIDs(ids...)
	return _c
}

// AddRecipients adds the "recipients" edges to the MessageRecipient entity.
func (_c *MessageCreate) AddRecipients(v ...*MessageRecipient) *MessageCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecipientIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.Importance(); !ok {
		v := message.DefaultImportance
		_c.mutation.SetImportance(v)
	}
	if _, ok := _c.mutation.AckRequired(); !ok {
		v := message.DefaultAckRequired
		_c.mutation.SetAckRequired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.ProjectKey(); !ok {
		return &ValidationError{Name: "project_key", err: errors.New(`ent: missing required field "Message.project_key"`)}
	}
	if _, ok := _c.mutation.FromAgent(); !ok {
		return &ValidationError{Name: "from_agent", err: errors.New(`ent: missing required field "Message.from_agent"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Message.subject"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Message.body"`)}
	}
	if _, ok := _c.mutation.Importance(); !ok {
		return &ValidationError{Name: "importance", err: errors.New(`ent: missing required field "Message.importance"`)}
	}
	if v, ok := _c.mutation.Importance(); ok {
		if err := message.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "Message.importance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AckRequired(); !ok {
		return &ValidationError{Name: "ack_required", err: errors.New(`ent: missing required field "Message.ack_required"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectKey(); ok {
		_spec.SetField(message.FieldProjectKey, field.TypeString, value)
		_node.ProjectKey = value
	}
	if value, ok := _c.mutation.FromAgent(); ok {
		_spec.SetField(message.FieldFromAgent, field.TypeString, value)
		_node.FromAgent = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(message.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(message.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.Importance(); ok {
		_spec.SetField(message.FieldImportance, field.TypeEnum, value)
		_node.Importance = value
	}
	if value, ok := _c.mutation.AckRequired(); ok {
		_spec.SetField(message.FieldAckRequired, field.TypeBool, value)
		_node.AckRequired = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RecipientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RecipientsTable,
			Columns: []string{message.RecipientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagerecipient.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
