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
	"github.com/opencoord/hive/ent/agent"
	"github.com/opencoord/hive/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProgram sets the "program" field.
func (_u *AgentUpdate) SetProgram(v string) *AgentUpdate {
	_u.mutation.SetProgram(v)
	return _u
}

// SetNillableProgram sets the "program" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableProgram(v *string) *AgentUpdate {
	if v != nil {
		_u.SetProgram(*v)
	}
	return _u
}

// ClearProgram clears the value of the "program" field.
func (_u *AgentUpdate) ClearProgram() *AgentUpdate {
	_u.mutation.ClearProgram()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentUpdate) SetModel(v string) *AgentUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableModel(v *string) *AgentUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentUpdate) ClearModel() *AgentUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *AgentUpdate) SetTaskDescription(v string) *AgentUpdate {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTaskDescription(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// ClearTaskDescription clears the value of the "task_description" field.
func (_u *AgentUpdate) ClearTaskDescription() *AgentUpdate {
	_u.mutation.ClearTaskDescription()
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *AgentUpdate) SetLastActiveAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastActiveAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Program(); ok {
		_spec.SetField(agent.FieldProgram, field.TypeString, value)
	}
	if _u.mutation.ProgramCleared() {
		_spec.ClearField(agent.FieldProgram, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agent.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(agent.FieldTaskDescription, field.TypeString, value)
	}
	if _u.mutation.TaskDescriptionCleared() {
		_spec.ClearField(agent.FieldTaskDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(agent.FieldLastActiveAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetProgram sets the "program" field.
func (_u *AgentUpdateOne) SetProgram(v string) *AgentUpdateOne {
	_u.mutation.SetProgram(v)
	return _u
}

// SetNillableProgram sets the "program" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableProgram(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetProgram(*v)
	}
	return _u
}

// ClearProgram clears the value of the "program" field.
func (_u *AgentUpdateOne) ClearProgram() *AgentUpdateOne {
	_u.mutation.ClearProgram()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentUpdateOne) SetModel(v string) *AgentUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableModel(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentUpdateOne) ClearModel() *AgentUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *AgentUpdateOne) SetTaskDescription(v string) *AgentUpdateOne {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTaskDescription(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// ClearTaskDescription clears the value of the "task_description" field.
func (_u *AgentUpdateOne) ClearTaskDescription() *AgentUpdateOne {
	_u.mutation.ClearTaskDescription()
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *AgentUpdateOne) SetLastActiveAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastActiveAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.Program(); ok {
		_spec.SetField(agent.FieldProgram, field.TypeString, value)
	}
	if _u.mutation.ProgramCleared() {
		_spec.ClearField(agent.FieldProgram, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agent.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(agent.FieldTaskDescription, field.TypeString, value)
	}
	if _u.mutation.TaskDescriptionCleared() {
		_spec.ClearField(agent.FieldTaskDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(agent.FieldLastActiveAt, field.TypeTime, value)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
