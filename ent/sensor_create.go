// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/sensor"
)

// SensorCreate is the builder for creating a Sensor entity.
type SensorCreate struct {
	config
	mutation *SensorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SensorCreate) SetCreatedAt(v time.Time) *SensorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SensorCreate) SetNillableCreatedAt(v *time.Time) *SensorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SensorCreate) SetUpdatedAt(v time.Time) *SensorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SensorCreate) SetNillableUpdatedAt(v *time.Time) *SensorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *SensorCreate) SetFarmID(v string) *SensorCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SensorCreate) SetDeletedAt(v time.Time) *SensorCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SensorCreate) SetNillableDeletedAt(v *time.Time) *SensorCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SensorCreate) SetName(v string) *SensorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *SensorCreate) SetType(v string) *SensorCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPaddockID sets the "paddock_id" field.
func (_c *SensorCreate) SetPaddockID(v string) *SensorCreate {
	_c.mutation.SetPaddockID(v)
	return _c
}

// SetNillablePaddockID sets the "paddock_id" field if the given value is not nil.
func (_c *SensorCreate) SetNillablePaddockID(v *string) *SensorCreate {
	if v != nil {
		_c.SetPaddockID(*v)
	}
	return _c
}

// SetLastValue sets the "last_value" field.
func (_c *SensorCreate) SetLastValue(v map[string]interface{}) *SensorCreate {
	_c.mutation.SetLastValue(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *SensorCreate) SetLastSeen(v time.Time) *SensorCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *SensorCreate) SetNillableLastSeen(v *time.Time) *SensorCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SensorCreate) SetID(v string) *SensorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SensorMutation object of the builder.
func (_c *SensorCreate) Mutation() *SensorMutation {
	return _c.mutation
}

// Save creates the Sensor in the database.
func (_c *SensorCreate) Save(ctx context.Context) (*Sensor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SensorCreate) SaveX(ctx context.Context) *Sensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SensorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SensorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SensorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sensor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sensor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SensorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sensor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Sensor.updated_at"`)}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "Sensor.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := sensor.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "Sensor.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Sensor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := sensor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Sensor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Sensor.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := sensor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Sensor.type": %w`, err)}
		}
	}
	return nil
}

func (_c *SensorCreate) sqlSave(ctx context.Context) (*Sensor, error) {
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
			return nil, fmt.Errorf("unexpected Sensor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SensorCreate) createSpec() (*Sensor, *sqlgraph.CreateSpec) {
	var (
		_node = &Sensor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sensor.Table, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sensor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sensor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(sensor.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(sensor.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sensor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(sensor.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.PaddockID(); ok {
		_spec.SetField(sensor.FieldPaddockID, field.TypeString, value)
		_node.PaddockID = value
	}
	if value, ok := _c.mutation.LastValue(); ok {
		_spec.SetField(sensor.FieldLastValue, field.TypeJSON, value)
		_node.LastValue = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(sensor.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = &value
	}
	return _node, _spec
}

// SensorCreateBulk is the builder for creating many Sensor entities in bulk.
type SensorCreateBulk struct {
	config
	err      error
	builders []*SensorCreate
}

// Save creates the Sensor entities in the database.
func (_c *SensorCreateBulk) Save(ctx context.Context) ([]*Sensor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sensor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SensorMutation)
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
func (_c *SensorCreateBulk) SaveX(ctx context.Context) []*Sensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SensorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SensorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
