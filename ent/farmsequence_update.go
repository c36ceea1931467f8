// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/farmsequence"
	"farmdeck.io/farmdeck/ent/predicate"
)

// FarmSequenceUpdate is the builder for updating FarmSequence entities.
type FarmSequenceUpdate struct {
	config
	hooks    []Hook
	mutation *FarmSequenceMutation
}

// Where appends a list predicates to the FarmSequenceUpdate builder.
func (_u *FarmSequenceUpdate) Where(ps ...predicate.FarmSequence) *FarmSequenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetValue sets the "value" field.
func (_u *FarmSequenceUpdate) SetValue(v int64) *FarmSequenceUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FarmSequenceUpdate) SetNillableValue(v *int64) *FarmSequenceUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *FarmSequenceUpdate) AddValue(v int64) *FarmSequenceUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// Mutation returns the FarmSequenceMutation object of the builder.
func (_u *FarmSequenceUpdate) Mutation() *FarmSequenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FarmSequenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmSequenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FarmSequenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmSequenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmSequenceUpdate) check() error {
	if v, ok := _u.mutation.Value(); ok {
		if err := farmsequence.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "FarmSequence.value": %w`, err)}
		}
	}
	return nil
}

func (_u *FarmSequenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farmsequence.Table, farmsequence.Columns, sqlgraph.NewFieldSpec(farmsequence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(farmsequence.FieldValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(farmsequence.FieldValue, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farmsequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FarmSequenceUpdateOne is the builder for updating a single FarmSequence entity.
type FarmSequenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FarmSequenceMutation
}

// SetValue sets the "value" field.
func (_u *FarmSequenceUpdateOne) SetValue(v int64) *FarmSequenceUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FarmSequenceUpdateOne) SetNillableValue(v *int64) *FarmSequenceUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *FarmSequenceUpdateOne) AddValue(v int64) *FarmSequenceUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// Mutation returns the FarmSequenceMutation object of the builder.
func (_u *FarmSequenceUpdateOne) Mutation() *FarmSequenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the FarmSequenceUpdate builder.
func (_u *FarmSequenceUpdateOne) Where(ps ...predicate.FarmSequence) *FarmSequenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FarmSequenceUpdateOne) Select(field string, fields ...string) *FarmSequenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FarmSequence entity.
func (_u *FarmSequenceUpdateOne) Save(ctx context.Context) (*FarmSequence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmSequenceUpdateOne) SaveX(ctx context.Context) *FarmSequence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FarmSequenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmSequenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmSequenceUpdateOne) check() error {
	if v, ok := _u.mutation.Value(); ok {
		if err := farmsequence.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "FarmSequence.value": %w`, err)}
		}
	}
	return nil
}

func (_u *FarmSequenceUpdateOne) sqlSave(ctx context.Context) (_node *FarmSequence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farmsequence.Table, farmsequence.Columns, sqlgraph.NewFieldSpec(farmsequence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FarmSequence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, farmsequence.FieldID)
		for _, f := range fields {
			if !farmsequence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != farmsequence.FieldID {
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
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(farmsequence.FieldValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(farmsequence.FieldValue, field.TypeInt64, value)
	}
	_node = &FarmSequence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farmsequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
