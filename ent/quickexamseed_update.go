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
	"github.com/roadprep/roadprep/ent/predicate"
	"github.com/roadprep/roadprep/ent/quickexamseed"
)

// QuickExamSeedUpdate is the builder for updating QuickExamSeed entities.
type QuickExamSeedUpdate struct {
	config
	hooks    []Hook
	mutation *QuickExamSeedMutation
}

// Where appends a list predicates to the QuickExamSeedUpdate builder.
func (_u *QuickExamSeedUpdate) Where(ps ...predicate.QuickExamSeed) *QuickExamSeedUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuickExamSeedUpdate) SetPayload(v []byte) *QuickExamSeedUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetSeededAt sets the "seeded_at" field.
func (_u *QuickExamSeedUpdate) SetSeededAt(v time.Time) *QuickExamSeedUpdate {
	_u.mutation.SetSeededAt(v)
	return _u
}

// SetNillableSeededAt sets the "seeded_at" field if the given value is not nil.
func (_u *QuickExamSeedUpdate) SetNillableSeededAt(v *time.Time) *QuickExamSeedUpdate {
	if v != nil {
		_u.SetSeededAt(*v)
	}
	return _u
}

// Mutation returns the QuickExamSeedMutation object of the builder.
func (_u *QuickExamSeedUpdate) Mutation() *QuickExamSeedMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuickExamSeedUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuickExamSeedUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuickExamSeedUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuickExamSeedUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuickExamSeedUpdate) check() error {
	if v, ok := _u.mutation.Payload(); ok {
		if err := quickexamseed.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "QuickExamSeed.payload": %w`, err)}
		}
	}
	return nil
}

func (_u *QuickExamSeedUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quickexamseed.Table, quickexamseed.Columns, sqlgraph.NewFieldSpec(quickexamseed.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(quickexamseed.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.SeededAt(); ok {
		_spec.SetField(quickexamseed.FieldSeededAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quickexamseed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuickExamSeedUpdateOne is the builder for updating a single QuickExamSeed entity.
type QuickExamSeedUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuickExamSeedMutation
}

// SetPayload sets the "payload" field.
func (_u *QuickExamSeedUpdateOne) SetPayload(v []byte) *QuickExamSeedUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetSeededAt sets the "seeded_at" field.
func (_u *QuickExamSeedUpdateOne) SetSeededAt(v time.Time) *QuickExamSeedUpdateOne {
	_u.mutation.SetSeededAt(v)
	return _u
}

// SetNillableSeededAt sets the "seeded_at" field if the given value is not nil.
func (_u *QuickExamSeedUpdateOne) SetNillableSeededAt(v *time.Time) *QuickExamSeedUpdateOne {
	if v != nil {
		_u.SetSeededAt(*v)
	}
	return _u
}

// Mutation returns the QuickExamSeedMutation object of the builder.
func (_u *QuickExamSeedUpdateOne) Mutation() *QuickExamSeedMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuickExamSeedUpdate builder.
func (_u *QuickExamSeedUpdateOne) Where(ps ...predicate.QuickExamSeed) *QuickExamSeedUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuickExamSeedUpdateOne) Select(field string, fields ...string) *QuickExamSeedUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuickExamSeed entity.
func (_u *QuickExamSeedUpdateOne) Save(ctx context.Context) (*QuickExamSeed, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuickExamSeedUpdateOne) SaveX(ctx context.Context) *QuickExamSeed {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuickExamSeedUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuickExamSeedUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuickExamSeedUpdateOne) check() error {
	if v, ok := _u.mutation.Payload(); ok {
		if err := quickexamseed.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "QuickExamSeed.payload": %w`, err)}
		}
	}
	return nil
}

func (_u *QuickExamSeedUpdateOne) sqlSave(ctx context.Context) (_node *QuickExamSeed, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quickexamseed.Table, quickexamseed.Columns, sqlgraph.NewFieldSpec(quickexamseed.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuickExamSeed.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quickexamseed.FieldID)
		for _, f := range fields {
			if !quickexamseed.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quickexamseed.FieldID {
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
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(quickexamseed.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.SeededAt(); ok {
		_spec.SetField(quickexamseed.FieldSeededAt, field.TypeTime, value)
	}
	_node = &QuickExamSeed{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quickexamseed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
