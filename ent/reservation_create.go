// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/reservation"
)

// ReservationCreate is the builder for creating a Reservation entity.
type ReservationCreate struct {
	config
	mutation *ReservationMutation
	hooks    []Hook
}

// SetProjectKey sets the "project_key" field.
func (_c *ReservationCreate) SetProjectKey(v string) *ReservationCreate {
	_c.mutation.SetProjectKey(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *ReservationCreate) SetAgentName(v string) *ReservationCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetPathPattern sets the "path_pattern" field.
func (_c *ReservationCreate) SetPathPattern(v string) *ReservationCreate {
	_c.mutation.SetPathPattern(v)
	return _c
}

// SetExclusive sets the "exclusive" field.
func (_c *ReservationCreate) SetExclusive(v bool) *ReservationCreate {
	_c.mutation.SetExclusive(v)
	return _c
}

// SetNillableExclusive sets the "exclusive" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableExclusive(v *bool) *ReservationCreate {
	if v != nil {
		_c.SetExclusive(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *ReservationCreate) SetReason(v string) *ReservationCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableReason(v *string) *ReservationCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetLockHolderID sets the "lock_holder_id" field.
func (_c *ReservationCreate) SetLockHolderID(v string) *ReservationCreate {
	_c.mutation.SetLockHolderID(v)
	return _c
}

// SetNillableLockHolderID sets the "lock_holder_id" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableLockHolderID(v *string) *ReservationCreate {
	if v != nil {
		_c.SetLockHolderID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReservationCreate) SetCreatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableCreatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ReservationCreate) SetExpiresAt(v time.Time) *ReservationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableExpiresAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *ReservationCreate) SetReleasedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableReleasedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetReleaseReason sets the "release_reason" field.
func (_c *ReservationCreate) SetReleaseReason(v string) *ReservationCreate {
	_c.mutation.SetReleaseReason(v)
	return _c
}

// SetNillableReleaseReason sets the "release_reason" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableReleaseReason(v *string) *ReservationCreate {
	if v != nil {
		_c.SetReleaseReason(*v)
	}
	return _c
}

// Mutation returns the ReservationMutation object of the builder.
func (_c *ReservationCreate) Mutation() *ReservationMutation {
	return _c.mutation
}

// Save creates the Reservation in the database.
func (_c *ReservationCreate) Save(ctx context.Context) (*Reservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReservationCreate) SaveX(ctx context.Context) *Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReservationCreate) defaults() {
	if _, ok := _c.mutation.Exclusive(); !ok {
		v := reservation.DefaultExclusive
		_c.mutation.SetExclusive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reservation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReservationCreate) check() error {
	if _, ok := _c.mutation.ProjectKey(); !ok {
		return &ValidationError{Name: "project_key", err: errors.New(`ent: missing required field "Reservation.project_key"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Reservation.agent_name"`)}
	}
	if _, ok := _c.mutation.PathPattern(); !ok {
		return &ValidationError{Name: "path_pattern", err: errors.New(`ent: missing required field "Reservation.path_pattern"`)}
	}
	if _, ok := _c.mutation.Exclusive(); !ok {
		return &ValidationError{Name: "exclusive", err: errors.New(`ent: missing required field "Reservation.exclusive"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reservation.created_at"`)}
	}
	return nil
}

func (_c *ReservationCreate) sqlSave(ctx context.Context) (*Reservation, error) {
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

func (_c *ReservationCreate) createSpec() (*Reservation, *sqlgraph.CreateSpec) {
	var (
		_node = &Reservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reservation.Table, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProjectKey(); ok {
		_spec.SetField(reservation.FieldProjectKey, field.TypeString, value)
		_node.ProjectKey = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(reservation.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.PathPattern(); ok {
		_spec.SetField(reservation.FieldPathPattern, field.TypeString, value)
		_node.PathPattern = value
	}
	if value, ok := _c.mutation.Exclusive(); ok {
		_spec.SetField(reservation.FieldExclusive, field.TypeBool, value)
		_node.Exclusive = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(reservation.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.LockHolderID(); ok {
		_spec.SetField(reservation.FieldLockHolderID, field.TypeString, value)
		_node.LockHolderID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reservation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(reservation.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.ReleaseReason(); ok {
		_spec.SetField(reservation.FieldReleaseReason, field.TypeString, value)
		_node.ReleaseReason = value
	}
	return _node, _spec
}

// ReservationCreateBulk is the builder for creating many Reservation entities in bulk.
type ReservationCreateBulk struct {
	config
	err      error
	builders []*ReservationCreate
}

// Save creates the Reservation entities in the database.
func (_c *ReservationCreateBulk) Save(ctx context.Context) ([]*Reservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReservationMutation)
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
func (_c *ReservationCreateBulk) SaveX(ctx context.Context) []*Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
