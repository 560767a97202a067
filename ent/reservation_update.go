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
	"github.com/opencoord/hive/ent/predicate"
	"github.com/opencoord/hive/ent/reservation"
)

// ReservationUpdate is the builder for updating Reservation entities.
type ReservationUpdate struct {
	config
	hooks    []Hook
	mutation *ReservationMutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdate) Where(ps ...predicate.Reservation) *ReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReservationUpdate) SetExpiresAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableExpiresAt(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ReservationUpdate) ClearExpiresAt() *ReservationUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ReservationUpdate) SetReleasedAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableReleasedAt(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ReservationUpdate) ClearReleasedAt() *ReservationUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetReleaseReason sets the "release_reason" field.
func (_u *ReservationUpdate) SetReleaseReason(v string) *ReservationUpdate {
	_u.mutation.SetReleaseReason(v)
	return _u
}

// SetNillableReleaseReason sets the "release_reason" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableReleaseReason(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetReleaseReason(*v)
	}
	return _u
}

// ClearReleaseReason clears the value of the "release_reason" field.
func (_u *ReservationUpdate) ClearReleaseReason() *ReservationUpdate {
	_u.mutation.ClearReleaseReason()
	return _u
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdate) Mutation() *ReservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReservationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(reservation.FieldReason, field.TypeString)
	}
	if _u.mutation.LockHolderIDCleared() {
		_spec.ClearField(reservation.FieldLockHolderID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(reservation.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(reservation.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(reservation.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleaseReason(); ok {
		_spec.SetField(reservation.FieldReleaseReason, field.TypeString, value)
	}
	if _u.mutation.ReleaseReasonCleared() {
		_spec.ClearField(reservation.FieldReleaseReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReservationUpdateOne is the builder for updating a single Reservation entity.
type ReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReservationMutation
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReservationUpdateOne) SetExpiresAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableExpiresAt(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ReservationUpdateOne) ClearExpiresAt() *ReservationUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ReservationUpdateOne) SetReleasedAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableReleasedAt(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ReservationUpdateOne) ClearReleasedAt() *ReservationUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetReleaseReason sets the "release_reason" field.
func (_u *ReservationUpdateOne) SetReleaseReason(v string) *ReservationUpdateOne {
	_u.mutation.SetReleaseReason(v)
	return _u
}

// SetNillableReleaseReason sets the "release_reason" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableReleaseReason(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetReleaseReason(*v)
	}
	return _u
}

// ClearReleaseReason clears the value of the "release_reason" field.
func (_u *ReservationUpdateOne) ClearReleaseReason() *ReservationUpdateOne {
	_u.mutation.ClearReleaseReason()
	return _u
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdateOne) Mutation() *ReservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdateOne) Where(ps ...predicate.Reservation) *ReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReservationUpdateOne) Select(field string, fields ...string) *ReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reservation entity.
func (_u *ReservationUpdateOne) Save(ctx context.Context) (*Reservation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdateOne) SaveX(ctx context.Context) *Reservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReservationUpdateOne) sqlSave(ctx context.Context) (_node *Reservation, err error) {
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reservation.FieldID)
		for _, f := range fields {
			if !reservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reservation.FieldID {
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
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(reservation.FieldReason, field.TypeString)
	}
	if _u.mutation.LockHolderIDCleared() {
		_spec.ClearField(reservation.FieldLockHolderID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(reservation.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(reservation.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(reservation.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleaseReason(); ok {
		_spec.SetField(reservation.FieldReleaseReason, field.TypeString, value)
	}
	if _u.mutation.ReleaseReasonCleared() {
		_spec.ClearField(reservation.FieldReleaseReason, field.TypeString)
	}
	_node = &Reservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
