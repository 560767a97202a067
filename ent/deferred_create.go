// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/deferred"
)

// DeferredCreate is the builder for creating a Deferred entity.
type DeferredCreate struct {
	config
	mutation *DeferredMutation
	hooks    []Hook
}

// SetResolved sets the "resolved" field.
func (_c *DeferredCreate) SetResolved(v bool) *DeferredCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *DeferredCreate) SetNillableResolved(v *bool) *DeferredCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *DeferredCreate) SetValue(v map[string]interface{}) *DeferredCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetError sets the "error" field.
func (_c *DeferredCreate) SetError(v string) *DeferredCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *DeferredCreate) SetNillableError(v *string) *DeferredCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *DeferredCreate) SetExpiresAt(v time.Time) *DeferredCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeferredCreate) SetCreatedAt(v time.Time) *DeferredCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeferredCreate) SetNillableCreatedAt(v *time.Time) *DeferredCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *DeferredCreate) SetResolvedAt(v time.Time) *DeferredCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *DeferredCreate) SetNillableResolvedAt(v *time.Time) *DeferredCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeferredCreate) SetID(v string) *DeferredCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeferredMutation object of the builder.
func (_c *DeferredCreate) Mutation() *DeferredMutation {
	return _c.mutation
}

// Save creates the Deferred in the database.
func (_c *DeferredCreate) Save(ctx context.Context) (*Deferred, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeferredCreate) SaveX(ctx context.Context) *Deferred {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeferredCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeferredCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeferredCreate) defaults() {
	if _, ok := _c.mutation.Resolved(); !ok {
		v := deferred.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deferred.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeferredCreate) check() error {
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "Deferred.resolved"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Deferred.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Deferred.created_at"`)}
	}
	return nil
}

func (_c *DeferredCreate) sqlSave(ctx context.Context) (*Deferred, error) {
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
			return nil, fmt.Errorf("unexpected Deferred.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeferredCreate) createSpec() (*Deferred, *sqlgraph.CreateSpec) {
	var (
		_node = &Deferred{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deferred.Table, sqlgraph.NewFieldSpec(deferred.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(deferred.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(deferred.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(deferred.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(deferred.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deferred.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(deferred.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// DeferredCreateBulk is the builder for creating many Deferred entities in bulk.
type DeferredCreateBulk struct {
	config
	err      error
	builders []*DeferredCreate
}

// Save creates the Deferred entities in the database.
func (_c *DeferredCreateBulk) Save(ctx context.Context) ([]*Deferred, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Deferred, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeferredMutation)
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
func (_c *DeferredCreateBulk) SaveX(ctx context.Context) []*Deferred {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeferredCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeferredCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
