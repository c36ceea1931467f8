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
	"farmdeck.io/farmdeck/ent/movement"
	"farmdeck.io/farmdeck/ent/predicate"
)

// MovementUpdate is the builder for updating Movement entities.
type MovementUpdate struct {
	config
	hooks    []Hook
	mutation *MovementMutation
}

// Where appends a list predicates to the MovementUpdate builder.
func (_u *MovementUpdate) Where(ps ...predicate.Movement) *MovementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MovementUpdate) SetUpdatedAt(v time.Time) *MovementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MovementUpdate) SetDeletedAt(v time.Time) *MovementUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MovementUpdate) SetNillableDeletedAt(v *time.Time) *MovementUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MovementUpdate) ClearDeletedAt() *MovementUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMobID sets the "mob_id" field.
func (_u *MovementUpdate) SetMobID(v string) *MovementUpdate {
	_u.mutation.SetMobID(v)
	return _u
}

// SetNillableMobID sets the "mob_id" field if the given value is not nil.
func (_u *MovementUpdate) SetNillableMobID(v *string) *MovementUpdate {
	if v != nil {
		_u.SetMobID(*v)
	}
	return _u
}

// SetFromPaddockID sets the "from_paddock_id" field.
func (_u *MovementUpdate) SetFromPaddockID(v string) *MovementUpdate {
	_u.mutation.SetFromPaddockID(v)
	return _u
}

// SetNillableFromPaddockID sets the "from_paddock_id" field if the given value is not nil.
func (_u *MovementUpdate) SetNillableFromPaddockID(v *string) *MovementUpdate {
	if v != nil {
		_u.SetFromPaddockID(*v)
	}
	return _u
}

// ClearFromPaddockID clears the value of the "from_paddock_id" field.
func (_u *MovementUpdate) ClearFromPaddockID() *MovementUpdate {
	_u.mutation.ClearFromPaddockID()
	return _u
}

// SetToPaddockID sets the "to_paddock_id" field.
func (_u *MovementUpdate) SetToPaddockID(v string) *MovementUpdate {
	_u.mutation.SetToPaddockID(v)
	return _u
}

// SetNillableToPaddockID sets the "to_paddock_id" field if the given value is not nil.
func (_u *MovementUpdate) SetNillableToPaddockID(v *string) *MovementUpdate {
	if v != nil {
		_u.SetToPaddockID(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *MovementUpdate) SetOccurredAt(v time.Time) *MovementUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *MovementUpdate) SetNillableOccurredAt(v *time.Time) *MovementUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the MovementMutation object of the builder.
func (_u *MovementUpdate) Mutation() *MovementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MovementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MovementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MovementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MovementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MovementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := movement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MovementUpdate) check() error {
	if v, ok := _u.mutation.MobID(); ok {
		if err := movement.MobIDValidator(v); err != nil {
			return &ValidationError{Name: "mob_id", err: fmt.Errorf(`ent: validator failed for field "Movement.mob_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToPaddockID(); ok {
		if err := movement.ToPaddockIDValidator(v); err != nil {
			return &ValidationError{Name: "to_paddock_id", err: fmt.Errorf(`ent: validator failed for field "Movement.to_paddock_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MovementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(movement.Table, movement.Columns, sqlgraph.NewFieldSpec(movement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(movement.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(movement.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(movement.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MobID(); ok {
		_spec.SetField(movement.FieldMobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromPaddockID(); ok {
		_spec.SetField(movement.FieldFromPaddockID, field.TypeString, value)
	}
	if _u.mutation.FromPaddockIDCleared() {
		_spec.ClearField(movement.FieldFromPaddockID, field.TypeString)
	}
	if value, ok := _u.mutation.ToPaddockID(); ok {
		_spec.SetField(movement.FieldToPaddockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(movement.FieldOccurredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{movement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MovementUpdateOne is the builder for updating a single Movement entity.
type MovementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MovementMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MovementUpdateOne) SetUpdatedAt(v time.Time) *MovementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MovementUpdateOne) SetDeletedAt(v time.Time) *MovementUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MovementUpdateOne) SetNillableDeletedAt(v *time.Time) *MovementUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MovementUpdateOne) ClearDeletedAt() *MovementUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMobID sets the "mob_id" field.
func (_u *MovementUpdateOne) SetMobID(v string) *MovementUpdateOne {
	_u.mutation.SetMobID(v)
	return _u
}

// SetNillableMobID sets the "mob_id" field if the given value is not nil.
func (_u *MovementUpdateOne) SetNillableMobID(v *string) *MovementUpdateOne {
	if v != nil {
		_u.SetMobID(*v)
	}
	return _u
}

// SetFromPaddockID sets the "from_paddock_id" field.
func (_u *MovementUpdateOne) SetFromPaddockID(v string) *MovementUpdateOne {
	_u.mutation.SetFromPaddockID(v)
	return _u
}

// SetNillableFromPaddockID sets the "from_paddock_id" field if the given value is not nil.
func (_u *MovementUpdateOne) SetNillableFromPaddockID(v *string) *MovementUpdateOne {
	if v != nil {
		_u.SetFromPaddockID(*v)
	}
	return _u
}

// ClearFromPaddockID clears the value of the "from_paddock_id" field.
func (_u *MovementUpdateOne) ClearFromPaddockID() *MovementUpdateOne {
	_u.mutation.ClearFromPaddockID()
	return _u
}

// SetToPaddockID sets the "to_paddock_id" field.
func (_u *MovementUpdateOne) SetToPaddockID(v string) *MovementUpdateOne {
	_u.mutation.SetToPaddockID(v)
	return _u
}

// SetNillableToPaddockID sets the "to_paddock_id" field if the given value is not nil.
func (_u *MovementUpdateOne) SetNillableToPaddockID(v *string) *MovementUpdateOne {
	if v != nil {
		_u.SetToPaddockID(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *MovementUpdateOne) SetOccurredAt(v time.Time) *MovementUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *MovementUpdateOne) SetNillableOccurredAt(v *time.Time) *MovementUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the MovementMutation object of the builder.
func (_u *MovementUpdateOne) Mutation() *MovementMutation {
	return _u.mutation
}

// Where appends a list predicates to the MovementUpdate builder.
func (_u *MovementUpdateOne) Where(ps ...predicate.Movement) *MovementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MovementUpdateOne) Select(field string, fields ...string) *MovementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Movement entity.
func (_u *MovementUpdateOne) Save(ctx context.Context) (*Movement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MovementUpdateOne) SaveX(ctx context.Context) *Movement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MovementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MovementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MovementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := movement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MovementUpdateOne) check() error {
	if v, ok := _u.mutation.MobID(); ok {
		if err := movement.MobIDValidator(v); err != nil {
			return &ValidationError{Name: "mob_id", err: fmt.Errorf(`ent: validator failed for field "Movement.mob_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToPaddockID(); ok {
		if err := movement.ToPaddockIDValidator(v); err != nil {
			return &ValidationError{Name: "to_paddock_id", err: fmt.Errorf(`ent: validator failed for field "Movement.to_paddock_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MovementUpdateOne) sqlSave(ctx context.Context) (_node *Movement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(movement.Table, movement.Columns, sqlgraph.NewFieldSpec(movement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Movement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, movement.FieldID)
		for _, f := range fields {
			if !movement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != movement.FieldID {
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
		_spec.SetField(movement.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(movement.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(movement.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MobID(); ok {
		_spec.SetField(movement.FieldMobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromPaddockID(); ok {
		_spec.SetField(movement.FieldFromPaddockID, field.TypeString, value)
	}
	if _u.mutation.FromPaddockIDCleared() {
		_spec.ClearField(movement.FieldFromPaddockID, field.TypeString)
	}
	if value, ok := _u.mutation.ToPaddockID(); ok {
		_spec.SetField(movement.FieldToPaddockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(movement.FieldOccurredAt, field.TypeTime, value)
	}
	_node = &Movement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{movement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
