// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/paddock"
)

// PaddockCreate is the builder for creating a Paddock entity.
type PaddockCreate struct {
	config
	mutation *PaddockMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaddockCreate) SetCreatedAt(v time.Time) *PaddockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaddockCreate) SetNillableCreatedAt(v *time.Time) *PaddockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaddockCreate) SetUpdatedAt(v time.Time) *PaddockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaddockCreate) SetNillableUpdatedAt(v *time.Time) *PaddockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *PaddockCreate) SetFarmID(v string) *PaddockCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PaddockCreate) SetDeletedAt(v time.Time) *PaddockCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PaddockCreate) SetNillableDeletedAt(v *time.Time) *PaddockCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PaddockCreate) SetName(v string) *PaddockCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAreaHa sets the "area_ha" field.
func (_c *PaddockCreate) SetAreaHa(v float64) *PaddockCreate {
	_c.mutation.SetAreaHa(v)
	return _c
}

// SetNillableAreaHa sets the "area_ha" field if the given value is not nil.
func (_c *PaddockCreate) SetNillableAreaHa(v *float64) *PaddockCreate {
	if v != nil {
		_c.SetAreaHa(*v)
	}
	return _c
}

// SetPolygonGeojson sets the "polygon_geojson" field.
func (_c *PaddockCreate) SetPolygonGeojson(v string) *PaddockCreate {
	_c.mutation.SetPolygonGeojson(v)
	return _c
}

// SetNillablePolygonGeojson sets the "polygon_geojson" field if the given value is not nil.
func (_c *PaddockCreate) SetNillablePolygonGeojson(v *string) *PaddockCreate {
	if v != nil {
		_c.SetPolygonGeojson(*v)
	}
	return _c
}

// SetCropType sets the "crop_type" field.
func (_c *PaddockCreate) SetCropType(v string) *PaddockCreate {
	_c.mutation.SetCropType(v)
	return _c
}

// SetNillableCropType sets the "crop_type" field if the given value is not nil.
func (_c *PaddockCreate) SetNillableCropType(v *string) *PaddockCreate {
	if v != nil {
		_c.SetCropType(*v)
	}
	return _c
}

// SetCropColor sets the "crop_color" field.
func (_c *PaddockCreate) SetCropColor(v string) *PaddockCreate {
	_c.mutation.SetCropColor(v)
	return _c
}

// SetNillableCropColor sets the "crop_color" field if the given value is not nil.
func (_c *PaddockCreate) SetNillableCropColor(v *string) *PaddockCreate {
	if v != nil {
		_c.SetCropColor(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaddockCreate) SetID(v string) *PaddockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PaddockMutation object of the builder.
func (_c *PaddockCreate) Mutation() *PaddockMutation {
	return _c.mutation
}

// Save creates the Paddock in the database.
func (_c *PaddockCreate) Save(ctx context.Context) (*Paddock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaddockCreate) SaveX(ctx context.Context) *Paddock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaddockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaddockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaddockCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paddock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paddock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AreaHa(); !ok {
		v := paddock.DefaultAreaHa
		_c.mutation.SetAreaHa(v)
	}
	if _, ok := _c.mutation.PolygonGeojson(); !ok {
		v := paddock.DefaultPolygonGeojson
		_c.mutation.SetPolygonGeojson(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaddockCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Paddock.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Paddock.updated_at"`)}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "Paddock.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := paddock.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "Paddock.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Paddock.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := paddock.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Paddock.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AreaHa(); !ok {
		return &ValidationError{Name: "area_ha", err: errors.New(`ent: missing required field "Paddock.area_ha"`)}
	}
	if _, ok := _c.mutation.PolygonGeojson(); !ok {
		return &ValidationError{Name: "polygon_geojson", err: errors.New(`ent: missing required field "Paddock.polygon_geojson"`)}
	}
	if v, ok := _c.mutation.CropColor(); ok {
		if err := paddock.CropColorValidator(v); err != nil {
			return &ValidationError{Name: "crop_color", err: fmt.Errorf(`ent: validator failed for field "Paddock.crop_color": %w`, err)}
		}
	}
	return nil
}

func (_c *PaddockCreate) sqlSave(ctx context.Context) (*Paddock, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Paddock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaddockCreate) createSpec() (*Paddock, *sqlgraph.CreateSpec) {
	var (
		_node = &Paddock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paddock.Table, sqlgraph.NewFieldSpec(paddock.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paddock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paddock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(paddock.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(paddock.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(paddock.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AreaHa(); ok {
		_spec.SetField(paddock.FieldAreaHa, field.TypeFloat64, value)
		_node.AreaHa = value
	}
	if value, ok := _c.mutation.PolygonGeojson(); ok {
		_spec.SetField(paddock.FieldPolygonGeojson, field.TypeString, value)
		_node.PolygonGeojson = value
	}
	if value, ok := _c.mutation.CropType(); ok {
		_spec.SetField(paddock.FieldCropType, field.TypeString, value)
		_node.CropType = value
	}
	if value, ok := _c.mutation.CropColor(); ok {
		_spec.SetField(paddock.FieldCropColor, field.TypeString, value)
		_node.CropColor = value
	}
	return _node, _spec
}

// PaddockCreateBulk is the builder for creating many Paddock entities in bulk.
type PaddockCreateBulk struct {
	config
	err      error
	builders []*PaddockCreate
}

// Save creates the Paddock entities in the database.
func (_c *PaddockCreateBulk) Save(ctx context.Context) ([]*Paddock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paddock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaddockMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PaddockCreateBulk) SaveX(ctx context.Context) []*Paddock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaddockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaddockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
