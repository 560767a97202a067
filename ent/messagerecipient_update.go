// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/messagerecipient"
	"github.com/opencoord/hive/ent/predicate"
)

// MessageRecipientUpdate is the builder for updating MessageRecipient entities.
type MessageRecipientUpdate struct {
	config
	hooks    []Hook
	mutation *MessageRecipientMutation
}

// Where appends a list predicates to the MessageRecipientUpdate builder.
func (_u *MessageRecipientUpdate) Where(ps ...predicate.MessageRecipient) *MessageRecipientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *MessageRecipientUpdate) SetReadAt(v time.Time) *MessageRecipientUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *MessageRecipientUpdate) SetNillableReadAt(v *time.Time) *MessageRecipientUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *MessageRecipientUpdate) ClearReadAt() *MessageRecipientUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// SetAckedAt sets the "acked_at" field.
func (_u *MessageRecipientUpdate) SetAckedAt(v time.Time) *MessageRecipientUpdate {
	_u.mutation.SetAckedAt(v)
	return _u
}

// SetNillableAckedAt sets the "acked_at" field if the given value is not nil.
func (_u *MessageRecipientUpdate) SetNillableAckedAt(v *time.Time) *MessageRecipientUpdate {
	if v != nil {
		_u.SetAckedAt(*v)
	}
	return _u
}

// ClearAckedAt clears the value of the "acked_at" field.
func (_u *MessageRecipientUpdate) ClearAckedAt() *MessageRecipientUpdate {
	_u.mutation.ClearAckedAt()
	return _u
}

// Mutation returns the MessageRecipientMutation object of the builder.
func (_u *MessageRecipientUpdate) Mutation() *MessageRecipientMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageRecipientUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageRecipientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageRecipientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageRecipientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageRecipientUpdate) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageRecipient.message"`)
	}
	return nil
}

func (_u *MessageRecipientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagerecipient.Table, messagerecipient.Columns, sqlgraph.NewFieldSpec(messagerecipient.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(messagerecipient.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(messagerecipient.FieldReadAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AckedAt(); ok {
		_spec.SetField(messagerecipient.FieldAckedAt, field.TypeTime, value)
	}
	if _u.mutation.AckedAtCleared() {
		_spec.ClearField(messagerecipient.FieldAckedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagerecipient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageRecipientUpdateOne is the builder for updating a single MessageRecipient entity.
type MessageRecipientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageRecipientMutation
}

// SetReadAt sets the "read_at" field.
func (_u *MessageRecipientUpdateOne) SetReadAt(v time.Time) *MessageRecipientUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *MessageRecipientUpdateOne) SetNillableReadAt(v *time.Time) *MessageRecipientUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *MessageRecipientUpdateOne) ClearReadAt() *MessageRecipientUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// SetAckedAt sets the "acked_at" field.
func (_u *MessageRecipientUpdateOne) SetAckedAt(v time.Time) *MessageRecipientUpdateOne {
	_u.mutation.SetAckedAt(v)
	return _u
}

// SetNillableAckedAt sets the "acked_at" field if the given value is not nil.
func (_u *MessageRecipientUpdateOne) SetNillableAckedAt(v *time.Time) *MessageRecipientUpdateOne {
	if v != nil {
		_u.SetAckedAt(*v)
	}
	return _u
}

// ClearAckedAt clears the value of the "acked_at" field.
func (_u *MessageRecipientUpdateOne) ClearAckedAt() *MessageRecipientUpdateOne {
	_u.mutation.ClearAckedAt()
	return _u
}

// Mutation returns the MessageRecipientMutation object of the builder.
func (_u *MessageRecipientUpdateOne) Mutation() *MessageRecipientMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageRecipientUpdate builder.
func (_u *MessageRecipientUpdateOne) Where(ps ...predicate.MessageRecipient) *MessageRecipientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageRecipientUpdateOne) Select(field string, fields ...string) *MessageRecipientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageRecipient entity.
func (_u *MessageRecipientUpdateOne) Save(ctx context.Context) (*MessageRecipient, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageRecipientUpdateOne) SaveX(ctx context.Context) *MessageRecipient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageRecipientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageRecipientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageRecipientUpdateOne) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageRecipient.message"`)
	}
	return nil
}

func (_u *MessageRecipientUpdateOne) sqlSave(ctx context.Context) (_node *MessageRecipient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagerecipient.Table, messagerecipient.Columns, sqlgraph.NewFieldSpec(messagerecipient.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageRecipient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagerecipient.FieldID)
		for _, f := range fields {
			if !messagerecipient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagerecipient.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(messagerecipient.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(messagerecipient.FieldReadAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AckedAt(); ok {
		_spec.SetField(messagerecipient.FieldAckedAt, field.TypeTime, value)
	}
	if _u.mutation.AckedAtCleared() {
		_spec.ClearField(messagerecipient.FieldAckedAt, field.TypeTime)
	}
	_node = &MessageRecipient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagerecipient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
