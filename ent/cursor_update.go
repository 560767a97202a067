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
	"github.com/opencoord/hive/ent/cursor"
	"github.com/opencoord/hive/ent/predicate"
)

// CursorUpdate is the builder for updating Cursor entities.
type CursorUpdate struct {
	config
	hooks    []Hook
	mutation *CursorMutation
}

// Where appends a list predicates to the CursorUpdate builder.
func (_u *CursorUpdate) Where(ps ...predicate.Cursor) *CursorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCheckpoint sets the "checkpoint" field.
func (_u *CursorUpdate) SetCheckpoint(v string) *CursorUpdate {
	_u.mutation.SetCheckpoint(v)
	return _u
}

// SetNillableCheckpoint sets the "checkpoint" field if the given value is not nil.
func (_u *CursorUpdate) SetNillableCheckpoint(v *string) *CursorUpdate {
	if v != nil {
		_u.SetCheckpoint(*v)
	}
	return _u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (_u *CursorUpdate) ClearCheckpoint() *CursorUpdate {
	_u.mutation.ClearCheckpoint()
	return _u
}

// SetPosition sets the "position" field.
func (_u *CursorUpdate) SetPosition(v int64) *CursorUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CursorUpdate) SetNillablePosition(v *int64) *CursorUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CursorUpdate) AddPosition(v int64) *CursorUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CursorUpdate) SetUpdatedAt(v time.Time) *CursorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CursorMutation object of the builder.
func (_u *CursorUpdate) Mutation() *CursorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CursorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CursorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CursorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CursorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CursorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CursorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cursor.Table, cursor.Columns, sqlgraph.NewFieldSpec(cursor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Checkpoint(); ok {
		_spec.SetField(cursor.FieldCheckpoint, field.TypeString, value)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(cursor.FieldCheckpoint, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(cursor.FieldPosition, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(cursor.FieldPosition, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cursor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CursorUpdateOne is the builder for updating a single Cursor entity.
type CursorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CursorMutation
}

// SetCheckpoint sets the "checkpoint" field.
func (_u *CursorUpdateOne) SetCheckpoint(v string) *CursorUpdateOne {
	_u.mutation.SetCheckpoint(v)
	return _u
}

// SetNillableCheckpoint sets the "checkpoint" field if the given value is not nil.
func (_u *CursorUpdateOne) SetNillableCheckpoint(v *string) *CursorUpdateOne {
	if v != nil {
		_u.SetCheckpoint(*v)
	}
	return _u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (_u *CursorUpdateOne) ClearCheckpoint() *CursorUpdateOne {
	_u.mutation.ClearCheckpoint()
	return _u
}

// SetPosition sets the "position" field.
func (_u *CursorUpdateOne) SetPosition(v int64) *CursorUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CursorUpdateOne) SetNillablePosition(v *int64) *CursorUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CursorUpdateOne) AddPosition(v int64) *CursorUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CursorUpdateOne) SetUpdatedAt(v time.Time) *CursorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CursorMutation object of the builder.
func (_u *CursorUpdateOne) Mutation() *CursorMutation {
	return _u.mutation
}

// Where appends a list predicates to the CursorUpdate builder.
func (_u *CursorUpdateOne) Where(ps ...predicate.Cursor) *CursorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CursorUpdateOne) Select(field string, fields ...string) *CursorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Cursor entity.
func (_u *CursorUpdateOne) Save(ctx context.Context) (*Cursor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CursorUpdateOne) SaveX(ctx context.Context) *Cursor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CursorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CursorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CursorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CursorUpdateOne) sqlSave(ctx context.Context) (_node *Cursor, err error) {
	_spec := sqlgraph.NewUpdateSpec(cursor.Table, cursor.Columns, sqlgraph.NewFieldSpec(cursor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Cursor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cursor.FieldID)
		for _, f := range fields {
			if !cursor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cursor.FieldID {
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
	if value, ok := _u.mutation.Checkpoint(); ok {
		_spec.SetField(cursor.FieldCheckpoint, field.TypeString, value)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(cursor.FieldCheckpoint, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(cursor.FieldPosition, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(cursor.FieldPosition, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cursor.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Cursor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
