// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/changelogentry"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ChangeLogEntryUpdate is the builder for updating ChangeLogEntry entities.
type ChangeLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ChangeLogEntryMutation
}

// Where appends a list predicates to the ChangeLogEntryUpdate builder.
func (_u *ChangeLogEntryUpdate) Where(ps ...predicate.ChangeLogEntry) *ChangeLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ChangeLogEntryMutation object of the builder.
func (_u *ChangeLogEntryUpdate) Mutation() *ChangeLogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChangeLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChangeLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChangeLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(changelogentry.Table, changelogentry.Columns, sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changelogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChangeLogEntryUpdateOne is the builder for updating a single ChangeLogEntry entity.
type ChangeLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChangeLogEntryMutation
}

// Mutation returns the ChangeLogEntryMutation object of the builder.
func (_u *ChangeLogEntryUpdateOne) Mutation() *ChangeLogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChangeLogEntryUpdate builder.
func (_u *ChangeLogEntryUpdateOne) Where(ps ...predicate.ChangeLogEntry) *ChangeLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChangeLogEntryUpdateOne) Select(field string, fields ...string) *ChangeLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChangeLogEntry entity.
func (_u *ChangeLogEntryUpdateOne) Save(ctx context.Context) (*ChangeLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeLogEntryUpdateOne) SaveX(ctx context.Context) *ChangeLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChangeLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChangeLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *ChangeLogEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(changelogentry.Table, changelogentry.Columns, sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChangeLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, changelogentry.FieldID)
		for _, f := range fields {
			if !changelogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != changelogentry.FieldID {
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
	_node = &ChangeLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changelogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
