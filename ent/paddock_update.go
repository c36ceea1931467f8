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
	"farmdeck.io/farmdeck/ent/paddock"
	"farmdeck.io/farmdeck/ent/predicate"
)

// PaddockUpdate is the builder for updating Paddock entities.
type PaddockUpdate struct {
	config
	hooks    []Hook
	mutation *PaddockMutation
}

// Where appends a list predicates to the PaddockUpdate builder.
func (_u *PaddockUpdate) Where(ps ...predicate.Paddock) *PaddockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaddockUpdate) SetUpdatedAt(v time.Time) *PaddockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PaddockUpdate) SetDeletedAt(v time.Time) *PaddockUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PaddockUpdate) SetNillableDeletedAt(v *time.Time) *PaddockUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PaddockUpdate) ClearDeletedAt() *PaddockUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *PaddockUpdate) SetName(v string) *PaddockUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PaddockUpdate) SetNillableName(v *string) *PaddockUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAreaHa sets the "area_ha" field.
func (_u *PaddockUpdate) SetAreaHa(v float64) *PaddockUpdate {
	_u.mutation.ResetAreaHa()
	_u.mutation.SetAreaHa(v)
	return _u
}

// SetNillableAreaHa sets the "area_ha" field if the given value is not nil.
func (_u *PaddockUpdate) SetNillableAreaHa(v *float64) *PaddockUpdate {
	if v != nil {
		_u.SetAreaHa(*v)
	}
	return _u
}

// AddAreaHa adds value to the "area_ha" field.
func (_u *PaddockUpdate) AddAreaHa(v float64) *PaddockUpdate {
	_u.mutation.AddAreaHa(v)
	return _u
}

// SetPolygonGeojson sets the "polygon_geojson" field.
func (_u *PaddockUpdate) SetPolygonGeojson(v string) *PaddockUpdate {
	_u.mutation.SetPolygonGeojson(v)
	return _u
}

// SetNillablePolygonGeojson sets the "polygon_geojson" field if the given value is not nil.
func (_u *PaddockUpdate) SetNillablePolygonGeojson(v *string) *PaddockUpdate {
	if v != nil {
		_u.SetPolygonGeojson(*v)
	}
	return _u
}

// SetCropType sets the "crop_type" field.
func (_u *PaddockUpdate) SetCropType(v string) *PaddockUpdate {
	_u.mutation.SetCropType(v)
	return _u
}

// SetNillableCropType sets the "crop_type" field if the given value is not nil.
func (_u *PaddockUpdate) SetNillableCropType(v *string) *PaddockUpdate {
	if v != nil {
		_u.SetCropType(*v)
	}
	return _u
}

// ClearCropType clears the value of the "crop_type" field.
func (_u *PaddockUpdate) ClearCropType() *PaddockUpdate {
	_u.mutation.ClearCropType()
	return _u
}

// SetCropColor sets the "crop_color" field.
func (_u *PaddockUpdate) SetCropColor(v string) *PaddockUpdate {
	_u.mutation.SetCropColor(v)
	return _u
}

// SetNillableCropColor sets the "crop_color" field if the given value is not nil.
func (_u *PaddockUpdate) SetNillableCropColor(v *string) *PaddockUpdate {
	if v != nil {
		_u.SetCropColor(*v)
	}
	return _u
}

// ClearCropColor clears the value of the "crop_color" field.
func (_u *PaddockUpdate) ClearCropColor() *PaddockUpdate {
	_u.mutation.ClearCropColor()
	return _u
}

// Mutation returns the PaddockMutation object of the builder.
func (_u *PaddockUpdate) Mutation() *PaddockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaddockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaddockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaddockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaddockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaddockUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paddock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaddockUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := paddock.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Paddock.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CropColor(); ok {
		if err := paddock.CropColorValidator(v); err != nil {
			return &ValidationError{Name: "crop_color", err: fmt.Errorf(`ent: validator failed for field "Paddock.crop_color": %w`, err)}
		}
	}
	return nil
}

func (_u *PaddockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paddock.Table, paddock.Columns, sqlgraph.NewFieldSpec(paddock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paddock.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(paddock.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(paddock.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(paddock.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaHa(); ok {
		_spec.SetField(paddock.FieldAreaHa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaHa(); ok {
		_spec.AddField(paddock.FieldAreaHa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PolygonGeojson(); ok {
		_spec.SetField(paddock.FieldPolygonGeojson, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropType(); ok {
		_spec.SetField(paddock.FieldCropType, field.TypeString, value)
	}
	if _u.mutation.CropTypeCleared() {
		_spec.ClearField(paddock.FieldCropType, field.TypeString)
	}
	if value, ok := _u.mutation.CropColor(); ok {
		_spec.SetField(paddock.FieldCropColor, field.TypeString, value)
	}
	if _u.mutation.CropColorCleared() {
		_spec.ClearField(paddock.FieldCropColor, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paddock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaddockUpdateOne is the builder for updating a single Paddock entity.
type PaddockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaddockMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaddockUpdateOne) SetUpdatedAt(v time.Time) *PaddockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PaddockUpdateOne) SetDeletedAt(v time.Time) *PaddockUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PaddockUpdateOne) SetNillableDeletedAt(v *time.Time) *PaddockUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PaddockUpdateOne) ClearDeletedAt() *PaddockUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *PaddockUpdateOne) SetName(v string) *PaddockUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PaddockUpdateOne) SetNillableName(v *string) *PaddockUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAreaHa sets the "area_ha" field.
func (_u *PaddockUpdateOne) SetAreaHa(v float64) *PaddockUpdateOne {
	_u.mutation.ResetAreaHa()
	_u.mutation.SetAreaHa(v)
	return _u
}

// SetNillableAreaHa sets the "area_ha" field if the given value is not nil.
func (_u *PaddockUpdateOne) SetNillableAreaHa(v *float64) *PaddockUpdateOne {
	if v != nil {
		_u.SetAreaHa(*v)
	}
	return _u
}

// AddAreaHa adds value to the "area_ha" field.
func (_u *PaddockUpdateOne) AddAreaHa(v float64) *PaddockUpdateOne {
	_u.mutation.AddAreaHa(v)
	return _u
}

// SetPolygonGeojson sets the "polygon_geojson" field.
func (_u *PaddockUpdateOne) SetPolygonGeojson(v string) *PaddockUpdateOne {
	_u.mutation.SetPolygonGeojson(v)
	return _u
}

// SetNillablePolygonGeojson sets the "polygon_geojson" field if the given value is not nil.
func (_u *PaddockUpdateOne) SetNillablePolygonGeojson(v *string) *PaddockUpdateOne {
	if v != nil {
		_u.SetPolygonGeojson(*v)
	}
	return _u
}

// SetCropType sets the "crop_type" field.
func (_u *PaddockUpdateOne) SetCropType(v string) *PaddockUpdateOne {
	_u.mutation.SetCropType(v)
	return _u
}

// SetNillableCropType sets the "crop_type" field if the given value is not nil.
func (_u *PaddockUpdateOne) SetNillableCropType(v *string) *PaddockUpdateOne {
	if v != nil {
		_u.SetCropType(*v)
	}
	return _u
}

// ClearCropType clears the value of the "crop_type" field.
func (_u *PaddockUpdateOne) ClearCropType() *PaddockUpdateOne {
	_u.mutation.ClearCropType()
	return _u
}

// SetCropColor sets the "crop_color" field.
func (_u *PaddockUpdateOne) SetCropColor(v string) *PaddockUpdateOne {
	_u.mutation.SetCropColor(v)
	return _u
}

// SetNillableCropColor sets the "crop_color" field if the given value is not nil.
func (_u *PaddockUpdateOne) SetNillableCropColor(v *string) *PaddockUpdateOne {
	if v != nil {
		_u.SetCropColor(*v)
	}
	return _u
}

// ClearCropColor clears the value of the "crop_color" field.
func (_u *PaddockUpdateOne) ClearCropColor() *PaddockUpdateOne {
	_u.mutation.ClearCropColor()
	return _u
}

// Mutation returns the PaddockMutation object of the builder.
func (_u *PaddockUpdateOne) Mutation() *PaddockMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaddockUpdate builder.
func (_u *PaddockUpdateOne) Where(ps ...predicate.Paddock) *PaddockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaddockUpdateOne) Select(field string, fields ...string) *PaddockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Paddock entity.
func (_u *PaddockUpdateOne) Save(ctx context.Context) (*Paddock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaddockUpdateOne) SaveX(ctx context.Context) *Paddock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaddockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaddockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaddockUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paddock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaddockUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := paddock.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Paddock.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CropColor(); ok {
		if err := paddock.CropColorValidator(v); err != nil {
			return &ValidationError{Name: "crop_color", err: fmt.Errorf(`ent: validator failed for field "Paddock.crop_color": %w`, err)}
		}
	}
	return nil
}

func (_u *PaddockUpdateOne) sqlSave(ctx context.Context) (_node *Paddock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paddock.Table, paddock.Columns, sqlgraph.NewFieldSpec(paddock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Paddock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paddock.FieldID)
		for _, f := range fields {
			if !paddock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paddock.FieldID {
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
		_spec.SetField(paddock.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(paddock.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(paddock.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(paddock.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaHa(); ok {
		_spec.SetField(paddock.FieldAreaHa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaHa(); ok {
		_spec.AddField(paddock.FieldAreaHa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PolygonGeojson(); ok {
		_spec.SetField(paddock.FieldPolygonGeojson, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropType(); ok {
		_spec.SetField(paddock.FieldCropType, field.TypeString, value)
	}
	if _u.mutation.CropTypeCleared() {
		_spec.ClearField(paddock.FieldCropType, field.TypeString)
	}
	if value, ok := _u.mutation.CropColor(); ok {
		_spec.SetField(paddock.FieldCropColor, field.TypeString, value)
	}
	if _u.mutation.CropColorCleared() {
		_spec.ClearField(paddock.FieldCropColor, field.TypeString)
	}
	_node = &Paddock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paddock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
