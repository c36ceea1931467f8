// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/changelogentry"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ChangeLogEntryDelete is the builder for deleting a ChangeLogEntry entity.
type ChangeLogEntryDelete struct {
	config
	hooks    []Hook
	mutation *ChangeLogEntryMutation
}

// Where appends a list predicates to the ChangeLogEntryDelete builder.
func (_d *ChangeLogEntryDelete) Where(ps ...predicate.ChangeLogEntry) *ChangeLogEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChangeLogEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChangeLogEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChangeLogEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(changelogentry.Table, sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeInt))
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

// ChangeLogEntryDeleteOne is the builder for deleting a single ChangeLogEntry entity.
type ChangeLogEntryDeleteOne struct {
	_d *ChangeLogEntryDelete
}

// Where appends a list predicates to the ChangeLogEntryDelete builder.
func (_d *ChangeLogEntryDeleteOne) Where(ps ...predicate.ChangeLogEntry) *ChangeLogEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChangeLogEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{changelogentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChangeLogEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
