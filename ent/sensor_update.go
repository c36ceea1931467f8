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
	"farmdeck.io/farmdeck/ent/predicate"
	"farmdeck.io/farmdeck/ent/sensor"
)

// SensorUpdate is the builder for updating Sensor entities.
type SensorUpdate struct {
	config
	hooks    []Hook
	mutation *SensorMutation
}

// Where appends a list predicates to the SensorUpdate builder.
func (_u *SensorUpdate) Where(ps ...predicate.Sensor) *SensorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SensorUpdate) SetUpdatedAt(v time.Time) *SensorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SensorUpdate) SetDeletedAt(v time.Time) *SensorUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableDeletedAt(v *time.Time) *SensorUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SensorUpdate) ClearDeletedAt() *SensorUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *SensorUpdate) SetName(v string) *SensorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableName(v *string) *SensorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *SensorUpdate) SetType(v string) *SensorUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableType(v *string) *SensorUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPaddockID sets the "paddock_id" field.
func (_u *SensorUpdate) SetPaddockID(v string) *SensorUpdate {
	_u.mutation.SetPaddockID(v)
	return _u
}

// SetNillablePaddockID sets the "paddock_id" field if the given value is not nil.
func (_u *SensorUpdate) SetNillablePaddockID(v *string) *SensorUpdate {
	if v != nil {
		_u.SetPaddockID(*v)
	}
	return _u
}

// ClearPaddockID clears the value of the "paddock_id" field.
func (_u *SensorUpdate) ClearPaddockID() *SensorUpdate {
	_u.mutation.ClearPaddockID()
	return _u
}

// SetLastValue sets the "last_value" field.
func (_u *SensorUpdate) SetLastValue(v map[string]interface{}) *SensorUpdate {
	_u.mutation.SetLastValue(v)
	return _u
}

// ClearLastValue clears the value of the "last_value" field.
func (_u *SensorUpdate) ClearLastValue() *SensorUpdate {
	_u.mutation.ClearLastValue()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *SensorUpdate) SetLastSeen(v time.Time) *SensorUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableLastSeen(v *time.Time) *SensorUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *SensorUpdate) ClearLastSeen() *SensorUpdate {
	_u.mutation.ClearLastSeen()
	return _u
}

// Mutation returns the SensorMutation object of the builder.
func (_u *SensorUpdate) Mutation() *SensorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SensorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SensorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SensorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SensorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SensorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sensor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SensorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sensor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Sensor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := sensor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Sensor.type": %w`, err)}
		}
	}
	return nil
}

func (_u *SensorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sensor.Table, sensor.Columns, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sensor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(sensor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(sensor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sensor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(sensor.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaddockID(); ok {
		_spec.SetField(sensor.FieldPaddockID, field.TypeString, value)
	}
	if _u.mutation.PaddockIDCleared() {
		_spec.ClearField(sensor.FieldPaddockID, field.TypeString)
	}
	if value, ok := _u.mutation.LastValue(); ok {
		_spec.SetField(sensor.FieldLastValue, field.TypeJSON, value)
	}
	if _u.mutation.LastValueCleared() {
		_spec.ClearField(sensor.FieldLastValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(sensor.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(sensor.FieldLastSeen, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SensorUpdateOne is the builder for updating a single Sensor entity.
type SensorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SensorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SensorUpdateOne) SetUpdatedAt(v time.Time) *SensorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SensorUpdateOne) SetDeletedAt(v time.Time) *SensorUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableDeletedAt(v *time.Time) *SensorUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SensorUpdateOne) ClearDeletedAt() *SensorUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *SensorUpdateOne) SetName(v string) *SensorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableName(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *SensorUpdateOne) SetType(v string) *SensorUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableType(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPaddockID sets the "paddock_id" field.
func (_u *SensorUpdateOne) SetPaddockID(v string) *SensorUpdateOne {
	_u.mutation.SetPaddockID(v)
	return _u
}

// SetNillablePaddockID sets the "paddock_id" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillablePaddockID(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetPaddockID(*v)
	}
	return _u
}

// ClearPaddockID clears the value of the "paddock_id" field.
func (_u *SensorUpdateOne) ClearPaddockID() *SensorUpdateOne {
	_u.mutation.ClearPaddockID()
	return _u
}

// SetLastValue sets the "last_value" field.
func (_u *SensorUpdateOne) SetLastValue(v map[string]interface{}) *SensorUpdateOne {
	_u.mutation.SetLastValue(v)
	return _u
}

// ClearLastValue clears the value of the "last_value" field.
func (_u *SensorUpdateOne) ClearLastValue() *SensorUpdateOne {
	_u.mutation.ClearLastValue()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *SensorUpdateOne) SetLastSeen(v time.Time) *SensorUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableLastSeen(v *time.Time) *SensorUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *SensorUpdateOne) ClearLastSeen() *SensorUpdateOne {
	_u.mutation.ClearLastSeen()
	return _u
}

// Mutation returns the SensorMutation object of the builder.
func (_u *SensorUpdateOne) Mutation() *SensorMutation {
	return _u.mutation
}

// Where appends a list predicates to the SensorUpdate builder.
func (_u *SensorUpdateOne) Where(ps ...predicate.Sensor) *SensorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SensorUpdateOne) Select(field string, fields ...string) *SensorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sensor entity.
func (_u *SensorUpdateOne) Save(ctx context.Context) (*Sensor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SensorUpdateOne) SaveX(ctx context.Context) *Sensor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SensorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SensorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SensorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sensor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SensorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sensor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Sensor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := sensor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Sensor.type": %w`, err)}
		}
	}
	return nil
}

func (_u *SensorUpdateOne) sqlSave(ctx context.Context) (_node *Sensor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sensor.Table, sensor.Columns, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sensor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sensor.FieldID)
		for _, f := range fields {
			if !sensor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sensor.FieldID {
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
		_spec.SetField(sensor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(sensor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(sensor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sensor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(sensor.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaddockID(); ok {
		_spec.SetField(sensor.FieldPaddockID, field.TypeString, value)
	}
	if _u.mutation.PaddockIDCleared() {
		_spec.ClearField(sensor.FieldPaddockID, field.TypeString)
	}
	if value, ok := _u.mutation.LastValue(); ok {
		_spec.SetField(sensor.FieldLastValue, field.TypeJSON, value)
	}
	if _u.mutation.LastValueCleared() {
		_spec.ClearField(sensor.FieldLastValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(sensor.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(sensor.FieldLastSeen, field.TypeTime)
	}
	_node = &Sensor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
