// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/cursor"
)

// CursorCreate is the builder for creating a Cursor entity.
type CursorCreate struct {
	config
	mutation *CursorMutation
	hooks    []Hook
}

// SetStreamName sets the "stream_name" field.
func (_c *CursorCreate) SetStreamName(v string) *CursorCreate {
	_c.mutation.SetStreamName(v)
	return _c
}

// SetCheckpoint sets the "checkpoint" field.
func (_c *CursorCreate) SetCheckpoint(v string) *CursorCreate {
	_c.mutation.SetCheckpoint(v)
	return _c
}

// SetNillableCheckpoint sets the "checkpoint" field if the given value is not nil.
func (_c *CursorCreate) SetNillableCheckpoint(v *string) *CursorCreate {
	if v != nil {
		_c.SetCheckpoint(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *CursorCreate) SetPosition(v int64) *CursorCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *CursorCreate) SetNillablePosition(v *int64) *CursorCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CursorCreate) SetUpdatedAt(v time.Time) *CursorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CursorCreate) SetNillableUpdatedAt(v *time.Time) *CursorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CursorMutation object of the builder.
func (_c *CursorCreate) Mutation() *CursorMutation {
	return _c.mutation
}

// Save creates the Cursor in the database.
func (_c *CursorCreate) Save(ctx context.Context) (*Cursor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CursorCreate) SaveX(ctx context.Context) *Cursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CursorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CursorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CursorCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := cursor.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cursor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CursorCreate) check() error {
	if _, ok := _c.mutation.StreamName(); !ok {
		return &ValidationError{Name: "stream_name", err: errors.New(`ent: missing required field "Cursor.stream_name"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Cursor.position"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Cursor.updated_at"`)}
	}
	return nil
}

func (_c *CursorCreate) sqlSave(ctx context.Context) (*Cursor, error) {
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

func (_c *CursorCreate) createSpec() (*Cursor, *sqlgraph.CreateSpec) {
	var (
		_node = &Cursor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cursor.Table, sqlgraph.NewFieldSpec(cursor.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StreamName(); ok {
		_spec.SetField(cursor.FieldStreamName, field.TypeString, value)
		_node.StreamName = value
	}
	if value, ok := _c.mutation.Checkpoint(); ok {
		_spec.SetField(cursor.FieldCheckpoint, field.TypeString, value)
		_node.Checkpoint = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(cursor.FieldPosition, field.TypeInt64, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cursor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CursorCreateBulk is the builder for creating many Cursor entities in bulk.
type CursorCreateBulk struct {
	config
	err      error
	builders []*CursorCreate
}

// Save creates the Cursor entities in the database.
func (_c *CursorCreateBulk) Save(ctx context.Context) ([]*Cursor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Cursor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CursorMutation)
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
func (_c *CursorCreateBulk) SaveX(ctx context.Context) []*Cursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CursorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CursorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
