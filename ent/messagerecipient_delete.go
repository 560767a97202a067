// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/messagerecipient"
	"github.com/opencoord/hive/ent/predicate"
)

// MessageRecipientDelete is the builder for deleting a MessageRecipient entity.
type MessageRecipientDelete struct {
	config
	hooks    []Hook
	mutation *MessageRecipientMutation
}

// Where appends a list predicates to the MessageRecipientDelete builder.
func (_d *MessageRecipientDelete) Where(ps ...predicate.MessageRecipient) *MessageRecipientDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MessageRecipientDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MessageRecipientDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MessageRecipientDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(messagerecipient.Table, sqlgraph.NewFieldSpec(messagerecipient.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MessageRecipientDeleteOne is the builder for deleting a single MessageRecipient entity.
type MessageRecipientDeleteOne struct {
	_d *MessageRecipientDelete
}

// Where appends a list predicates to the MessageRecipientDelete builder.
func (_d *MessageRecipientDeleteOne) Where(ps ...predicate.MessageRecipient) *MessageRecipientDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MessageRecipientDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{messagerecipient.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MessageRecipientDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
