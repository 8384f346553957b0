// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roadprep/roadprep/ent/predicate"
	"github.com/roadprep/roadprep/ent/quickexamseed"
)

// QuickExamSeedDelete is the builder for deleting a QuickExamSeed entity.
type QuickExamSeedDelete struct {
	config
	hooks    []Hook
	mutation *QuickExamSeedMutation
}

// Where appends a list predicates to the QuickExamSeedDelete builder.
func (_d *QuickExamSeedDelete) Where(ps ...predicate.QuickExamSeed) *QuickExamSeedDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuickExamSeedDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuickExamSeedDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuickExamSeedDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quickexamseed.Table, sqlgraph.NewFieldSpec(quickexamseed.FieldID, field.TypeInt))
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

// QuickExamSeedDeleteOne is the builder for deleting a single QuickExamSeed entity.
type QuickExamSeedDeleteOne struct {
	_d *QuickExamSeedDelete
}

// Where appends a list predicates to the QuickExamSeedDelete builder.
func (_d *QuickExamSeedDeleteOne) Where(ps ...predicate.QuickExamSeed) *QuickExamSeedDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuickExamSeedDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quickexamseed.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuickExamSeedDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
