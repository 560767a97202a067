// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/bead"
)

// BeadCreate is the builder for creating a Bead entity.
type BeadCreate struct {
	config
	mutation *BeadMutation
	hooks    []Hook
}

// SetProjectKey sets the "project_key" field.
func (_c *BeadCreate) SetProjectKey(v string) *BeadCreate {
	_c.mutation.SetProjectKey(v)
	return _c
}

// SetBeadType sets the "bead_type" field.
func (_c *BeadCreate) SetBeadType(v bead.BeadType) *BeadCreate {
	_c.mutation.SetBeadType(v)
	return _c
}

// SetNillableBeadType sets the "bead_type" field if the given value is not nil.
func (_c *BeadCreate) SetNillableBeadType(v *bead.BeadType) *BeadCreate {
	if v != nil {
		_c.SetBeadType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BeadCreate) SetStatus(v bead.Status) *BeadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BeadCreate) SetNillableStatus(v *bead.Status) *BeadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *BeadCreate) SetTitle(v string) *BeadCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BeadCreate) SetDescription(v string) *BeadCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BeadCreate) SetNillableDescription(v *string) *BeadCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *BeadCreate) SetPriority(v int) *BeadCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *BeadCreate) SetNillablePriority(v *int) *BeadCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *BeadCreate) SetParentID(v string) *BeadCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *BeadCreate) SetNillableParentID(v *string) *BeadCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetAssignee sets the "assignee" field.
func (_c *BeadCreate) SetAssignee(v string) *BeadCreate {
	_c.mutation.SetAssignee(v)
	return _c
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_c *BeadCreate) SetNillableAssignee(v *string) *BeadCreate {
	if v != nil {
		_c.SetAssignee(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BeadCreate) SetCreatedAt(v time.Time) *BeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BeadCreate) SetNillableCreatedAt(v *time.Time) *BeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BeadCreate) SetUpdatedAt(v time.Time) *BeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BeadCreate) SetNillableUpdatedAt(v *time.Time) *BeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *BeadCreate) SetClosedAt(v time.Time) *BeadCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *BeadCreate) SetNillableClosedAt(v *time.Time) *BeadCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetClosedReason sets the "closed_reason" field.
func (_c *BeadCreate) SetClosedReason(v string) *BeadCreate {
	_c.mutation.SetClosedReason(v)
	return _c
}

// SetNillableClosedReason sets the "closed_reason" field if the given value is not nil.
func (_c *BeadCreate) SetNillableClosedReason(v *string) *BeadCreate {
	if v != nil {
		_c.SetClosedReason(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *BeadCreate) SetDeletedAt(v time.Time) *BeadCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *BeadCreate) SetNillableDeletedAt(v *time.Time) *BeadCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetDeleteReason sets the "delete_reason" field.
func (_c *BeadCreate) SetDeleteReason(v string) *BeadCreate {
	_c.mutation.SetDeleteReason(v)
	return _c
}

// SetNillableDeleteReason sets the "delete_reason" field if the given value is not nil.
func (_c *BeadCreate) SetNillableDeleteReason(v *string) *BeadCreate {
	if v != nil {
		_c.SetDeleteReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BeadCreate) SetID(v string) *BeadCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BeadMutation object of the builder.
func (_c *BeadCreate) Mutation() *BeadMutation {
	return _c.mutation
}

// Save creates the Bead in the database.
func (_c *BeadCreate) Save(ctx context.Context) (*Bead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BeadCreate) SaveX(ctx context.Context) *Bead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BeadCreate) defaults() {
	if _, ok := _c.mutation.BeadType(); !ok {
		v := bead.DefaultBeadType
		_c.mutation.SetBeadType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := bead.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := bead.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BeadCreate) check() error {
	if _, ok := _c.mutation.ProjectKey(); !ok {
		return &ValidationError{Name: "project_key", err: errors.New(`ent: missing required field "Bead.project_key"`)}
	}
	if _, ok := _c.mutation.BeadType(); !ok {
		return &ValidationError{Name: "bead_type", err: errors.New(`ent: missing required field "Bead.bead_type"`)}
	}
	if v, ok := _c.mutation.BeadType(); ok {
		if err := bead.BeadTypeValidator(v); err != nil {
			return &ValidationError{Name: "bead_type", err: fmt.Errorf(`ent: validator failed for field "Bead.bead_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Bead.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bead.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Bead.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := bead.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Bead.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Bead.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := bead.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Bead.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bead.updated_at"`)}
	}
	return nil
}

func (_c *BeadCreate) sqlSave(ctx context.Context) (*Bead, error) {
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
			return nil, fmt.Errorf("unexpected Bead.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BeadCreate) createSpec() (*Bead, *sqlgraph.CreateSpec) {
	var (
		_node = &Bead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bead.Table, sqlgraph.NewFieldSpec(bead.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectKey(); ok {
		_spec.SetField(bead.FieldProjectKey, field.TypeString, value)
		_node.ProjectKey = value
	}
	if value, ok := _c.mutation.BeadType(); ok {
		_spec.SetField(bead.FieldBeadType, field.TypeEnum, value)
		_node.BeadType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bead.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(bead.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(bead.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(bead.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(bead.FieldParentID, field.TypeString, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.Assignee(); ok {
		_spec.SetField(bead.FieldAssignee, field.TypeString, value)
		_node.Assignee = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(bead.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if value, ok := _c.mutation.ClosedReason(); ok {
		_spec.SetField(bead.FieldClosedReason, field.TypeString, value)
		_node.ClosedReason = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(bead.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.DeleteReason(); ok {
		_spec.SetField(bead.FieldDeleteReason, field.TypeString, value)
		_node.DeleteReason = value
	}
	return _node, _spec
}

// BeadCreateBulk is the builder for creating many Bead entities in bulk.
type BeadCreateBulk struct {
	config
	err      error
	builders []*BeadCreate
}

// Save creates the Bead entities in the database.
func (_c *BeadCreateBulk) Save(ctx context.Context) ([]*Bead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BeadMutation)
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
func (_c *BeadCreateBulk) SaveX(ctx context.Context) []*Bead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
