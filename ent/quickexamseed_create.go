// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roadprep/roadprep/ent/quickexamseed"
)

// QuickExamSeedCreate is the builder for creating a QuickExamSeed entity.
type QuickExamSeedCreate struct {
	config
	mutation *QuickExamSeedMutation
	hooks    []Hook
}

// SetPayload sets the "payload" field.
func (_c *QuickExamSeedCreate) SetPayload(v []byte) *QuickExamSeedCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSeededAt sets the "seeded_at" field.
func (_c *QuickExamSeedCreate) SetSeededAt(v time.Time) *QuickExamSeedCreate {
	_c.mutation.SetSeededAt(v)
	return _c
}

// SetNillableSeededAt sets the "seeded_at" field if the given value is not nil.
func (_c *QuickExamSeedCreate) SetNillableSeededAt(v *time.Time) *QuickExamSeedCreate {
	if v != nil {
		_c.SetSeededAt(*v)
	}
	return _c
}

// Mutation returns the QuickExamSeedMutation object of the builder.
func (_c *QuickExamSeedCreate) Mutation() *QuickExamSeedMutation {
	return _c.mutation
}

// Save creates the QuickExamSeed in the database.
func (_c *QuickExamSeedCreate) Save(ctx context.Context) (*QuickExamSeed, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuickExamSeedCreate) SaveX(ctx context.Context) *QuickExamSeed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuickExamSeedCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuickExamSeedCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuickExamSeedCreate) defaults() {
	if _, ok := _c.mutation.SeededAt(); !ok {
		v := quickexamseed.DefaultSeededAt()
		_c.mutation.SetSeededAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuickExamSeedCreate) check() error {
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "QuickExamSeed.payload"`)}
	}
	if v, ok := _c.mutation.Payload(); ok {
		if err := quickexamseed.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "QuickExamSeed.payload": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeededAt(); !ok {
		return &ValidationError{Name: "seeded_at", err: errors.New(`ent: missing required field "QuickExamSeed.seeded_at"`)}
	}
	return nil
}

func (_c *QuickExamSeedCreate) sqlSave(ctx context.Context) (*QuickExamSeed, error) {
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

func (_c *QuickExamSeedCreate) createSpec() (*QuickExamSeed, *sqlgraph.CreateSpec) {
	var (
		_node = &QuickExamSeed{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quickexamseed.Table, sqlgraph.NewFieldSpec(quickexamseed.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(quickexamseed.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.SeededAt(); ok {
		_spec.SetField(quickexamseed.FieldSeededAt, field.TypeTime, value)
		_node.SeededAt = value
	}
	return _node, _spec
}

// QuickExamSeedCreateBulk is the builder for creating many QuickExamSeed entities in bulk.
type QuickExamSeedCreateBulk struct {
	config
	err      error
	builders []*QuickExamSeedCreate
}

// Save creates the QuickExamSeed entities in the database.
func (_c *QuickExamSeedCreateBulk) Save(ctx context.Context) ([]*QuickExamSeed, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuickExamSeed, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuickExamSeedMutation)
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
func (_c *QuickExamSeedCreateBulk) SaveX(ctx context.Context) []*QuickExamSeed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuickExamSeedCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuickExamSeedCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
