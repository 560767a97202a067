// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencoord/hive/ent/beadcomment"
)

// BeadCommentCreate is the builder for creating a BeadComment entity.
type BeadCommentCreate struct {
	config
	mutation *BeadCommentMutation
	hooks    []Hook
}

// SetBeadID sets the "bead_id" field.
func (_c *BeadCommentCreate) SetBeadID(v string) *BeadCommentCreate {
	_c.mutation.SetBeadID(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *BeadCommentCreate) SetAuthor(v string) *BeadCommentCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *BeadCommentCreate) SetBody(v string) *BeadCommentCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BeadCommentCreate) SetCreatedAt(v time.Time) *BeadCommentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BeadCommentCreate) SetNillableCreatedAt(v *time.Time) *BeadCommentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BeadCommentMutation object of the builder.
func (_c *BeadCommentCreate) Mutation() *BeadCommentMutation {
	return _c.mutation
}

// Save creates the BeadComment in the database.
func (_c *BeadCommentCreate) Save(ctx context.Context) (*BeadComment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BeadCommentCreate) SaveX(ctx context.Context) *BeadComment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeadCommentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeadCommentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BeadCommentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := beadcomment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BeadCommentCreate) check() error {
	if _, ok := _c.mutation.BeadID(); !ok {
		return &ValidationError{Name: "bead_id", err: errors.New(`ent: missing required field "BeadComment.bead_id"`)}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "BeadComment.author"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "BeadComment.body"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BeadComment.created_at"`)}
	}
	return nil
}

func (_c *BeadCommentCreate) sqlSave(ctx context.Context) (*BeadComment, error) {
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

func (_c *BeadCommentCreate) createSpec() (*BeadComment, *sqlgraph.CreateSpec) {
	var (
		_node = &BeadComment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(beadcomment.Table, sqlgraph.NewFieldSpec(beadcomment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BeadID(); ok {
		_spec.SetField(beadcomment.FieldBeadID, field.TypeString, value)
		_node.BeadID = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(beadcomment.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(beadcomment.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(beadcomment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BeadCommentCreateBulk is the builder for creating many BeadComment entities in bulk.
type BeadCommentCreateBulk struct {
	config
	err      error
	builders []*BeadCommentCreate
}

// Save creates the BeadComment entities in the database.
func (_c *BeadCommentCreateBulk) Save(ctx context.Context) ([]*BeadComment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BeadComment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BeadCommentMutation)
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
func (_c *BeadCommentCreateBulk) SaveX(ctx context.Context) []*BeadComment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeadCommentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeadCommentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
