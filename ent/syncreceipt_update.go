// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/predicate"
	"farmdeck.io/farmdeck/ent/syncreceipt"
)

// SyncReceiptUpdate is the builder for updating SyncReceipt entities.
type SyncReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *SyncReceiptMutation
}

// Where appends a list predicates to the SyncReceiptUpdate builder.
func (_u *SyncReceiptUpdate) Where(ps ...predicate.SyncReceipt) *SyncReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the SyncReceiptMutation object of the builder.
func (_u *SyncReceiptUpdate) Mutation() *SyncReceiptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncReceiptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SyncReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(syncreceipt.Table, syncreceipt.Columns, sqlgraph.NewFieldSpec(syncreceipt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SeqCleared() {
		_spec.ClearField(syncreceipt.FieldSeq, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncreceipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncReceiptUpdateOne is the builder for updating a single SyncReceipt entity.
type SyncReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncReceiptMutation
}

// Mutation returns the SyncReceiptMutation object of the builder.
func (_u *SyncReceiptUpdateOne) Mutation() *SyncReceiptMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncReceiptUpdate builder.
func (_u *SyncReceiptUpdateOne) Where(ps ...predicate.SyncReceipt) *SyncReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncReceiptUpdateOne) Select(field string, fields ...string) *SyncReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncReceipt entity.
func (_u *SyncReceiptUpdateOne) Save(ctx context.Context) (*SyncReceipt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncReceiptUpdateOne) SaveX(ctx context.Context) *SyncReceipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SyncReceiptUpdateOne) sqlSave(ctx context.Context) (_node *SyncReceipt, err error) {
	_spec := sqlgraph.NewUpdateSpec(syncreceipt.Table, syncreceipt.Columns, sqlgraph.NewFieldSpec(syncreceipt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncReceipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncreceipt.FieldID)
		for _, f := range fields {
			if !syncreceipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncreceipt.FieldID {
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
	if _u.mutation.SeqCleared() {
		_spec.ClearField(syncreceipt.FieldSeq, field.TypeInt64)
	}
	_node = &SyncReceipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncreceipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
