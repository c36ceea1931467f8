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
	"farmdeck.io/farmdeck/ent/mob"
	"farmdeck.io/farmdeck/ent/predicate"
)

// MobUpdate is the builder for updating Mob entities.
type MobUpdate struct {
	config
	hooks    []Hook
	mutation *MobMutation
}

// Where appends a list predicates to the MobUpdate builder.
func (_u *MobUpdate) Where(ps ...predicate.Mob) *MobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MobUpdate) SetUpdatedAt(v time.Time) *MobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MobUpdate) SetDeletedAt(v time.Time) *MobUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MobUpdate) SetNillableDeletedAt(v *time.Time) *MobUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MobUpdate) ClearDeletedAt() *MobUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *MobUpdate) SetName(v string) *MobUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MobUpdate) SetNillableName(v *string) *MobUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *MobUpdate) SetCount(v int) *MobUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *MobUpdate) SetNillableCount(v *int) *MobUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *MobUpdate) AddCount(v int) *MobUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetAvgWeight sets the "avg_weight" field.
func (_u *MobUpdate) SetAvgWeight(v float64) *MobUpdate {
	_u.mutation.ResetAvgWeight()
	_u.mutation.SetAvgWeight(v)
	return _u
}

// SetNillableAvgWeight sets the "avg_weight" field if the given value is not nil.
func (_u *MobUpdate) SetNillableAvgWeight(v *float64) *MobUpdate {
	if v != nil {
		_u.SetAvgWeight(*v)
	}
	return _u
}

// AddAvgWeight adds value to the "avg_weight" field.
func (_u *MobUpdate) AddAvgWeight(v float64) *MobUpdate {
	_u.mutation.AddAvgWeight(v)
	return _u
}

// SetPaddockID sets the "paddock_id" field.
func (_u *MobUpdate) SetPaddockID(v string) *MobUpdate {
	_u.mutation.SetPaddockID(v)
	return _u
}

// SetNillablePaddockID sets the "paddock_id" field if the given value is not nil.
func (_u *MobUpdate) SetNillablePaddockID(v *string) *MobUpdate {
	if v != nil {
		_u.SetPaddockID(*v)
	}
	return _u
}

// ClearPaddockID clears the value of the "paddock_id" field.
func (_u *MobUpdate) ClearPaddockID() *MobUpdate {
	_u.mutation.ClearPaddockID()
	return _u
}

// Mutation returns the MobMutation object of the builder.
func (_u *MobUpdate) Mutation() *MobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MobUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Mob.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := mob.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "Mob.count": %w`, err)}
		}
	}
	return nil
}

func (_u *MobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mob.Table, mob.Columns, sqlgraph.NewFieldSpec(mob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(mob.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(mob.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mob.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(mob.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(mob.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgWeight(); ok {
		_spec.SetField(mob.FieldAvgWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgWeight(); ok {
		_spec.AddField(mob.FieldAvgWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaddockID(); ok {
		_spec.SetField(mob.FieldPaddockID, field.TypeString, value)
	}
	if _u.mutation.PaddockIDCleared() {
		_spec.ClearField(mob.FieldPaddockID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MobUpdateOne is the builder for updating a single Mob entity.
type MobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MobMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MobUpdateOne) SetUpdatedAt(v time.Time) *MobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MobUpdateOne) SetDeletedAt(v time.Time) *MobUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MobUpdateOne) SetNillableDeletedAt(v *time.Time) *MobUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MobUpdateOne) ClearDeletedAt() *MobUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *MobUpdateOne) SetName(v string) *MobUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MobUpdateOne) SetNillableName(v *string) *MobUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *MobUpdateOne) SetCount(v int) *MobUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *MobUpdateOne) SetNillableCount(v *int) *MobUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *MobUpdateOne) AddCount(v int) *MobUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetAvgWeight sets the "avg_weight" field.
func (_u *MobUpdateOne) SetAvgWeight(v float64) *MobUpdateOne {
	_u.mutation.ResetAvgWeight()
	_u.mutation.SetAvgWeight(v)
	return _u
}

// SetNillableAvgWeight sets the "avg_weight" field if the given value is not nil.
func (_u *MobUpdateOne) SetNillableAvgWeight(v *float64) *MobUpdateOne {
	if v != nil {
		_u.SetAvgWeight(*v)
	}
	return _u
}

// AddAvgWeight adds value to the "avg_weight" field.
func (_u *MobUpdateOne) AddAvgWeight(v float64) *MobUpdateOne {
	_u.mutation.AddAvgWeight(v)
	return _u
}

// SetPaddockID sets the "paddock_id" field.
func (_u *MobUpdateOne) SetPaddockID(v string) *MobUpdateOne {
	_u.mutation.SetPaddockID(v)
	return _u
}

// SetNillablePaddockID sets the "paddock_id" field if the given value is not nil.
func (_u *MobUpdateOne) SetNillablePaddockID(v *string) *MobUpdateOne {
	if v != nil {
		_u.SetPaddockID(*v)
	}
	return _u
}

// ClearPaddockID clears the value of the "paddock_id" field.
func (_u *MobUpdateOne) ClearPaddockID() *MobUpdateOne {
	_u.mutation.ClearPaddockID()
	return _u
}

// Mutation returns the MobMutation object of the builder.
func (_u *MobUpdateOne) Mutation() *MobMutation {
	return _u.mutation
}

// Where appends a list predicates to the MobUpdate builder.
func (_u *MobUpdateOne) Where(ps ...predicate.Mob) *MobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MobUpdateOne) Select(field string, fields ...string) *MobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mob entity.
func (_u *MobUpdateOne) Save(ctx context.Context) (*Mob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MobUpdateOne) SaveX(ctx context.Context) *Mob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MobUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Mob.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := mob.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "Mob.count": %w`, err)}
		}
	}
	return nil
}

func (_u *MobUpdateOne) sqlSave(ctx context.Context) (_node *Mob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mob.Table, mob.Columns, sqlgraph.NewFieldSpec(mob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mob.FieldID)
		for _, f := range fields {
			if !mob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mob.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(mob.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(mob.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mob.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(mob.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(mob.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgWeight(); ok {
		_spec.SetField(mob.FieldAvgWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgWeight(); ok {
		_spec.AddField(mob.FieldAvgWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaddockID(); ok {
		_spec.SetField(mob.FieldPaddockID, field.TypeString, value)
	}
	if _u.mutation.PaddockIDCleared() {
		_spec.ClearField(mob.FieldPaddockID, field.TypeString)
	}
	_node = &Mob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
