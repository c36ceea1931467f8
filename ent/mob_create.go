// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/mob"
)

// MobCreate is the builder for creating a Mob entity.
type MobCreate struct {
	config
	mutation *MobMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MobCreate) SetCreatedAt(v time.Time) *MobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MobCreate) SetNillableCreatedAt(v *time.Time) *MobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MobCreate) SetUpdatedAt(v time.Time) *MobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MobCreate) SetNillableUpdatedAt(v *time.Time) *MobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *MobCreate) SetFarmID(v string) *MobCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MobCreate) SetDeletedAt(v time.Time) *MobCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MobCreate) SetNillableDeletedAt(v *time.Time) *MobCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *MobCreate) SetName(v string) *MobCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *MobCreate) SetCount(v int) *MobCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *MobCreate) SetNillableCount(v *int) *MobCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetAvgWeight sets the "avg_weight" field.
func (_c *MobCreate) SetAvgWeight(v float64) *MobCreate {
	_c.mutation.SetAvgWeight(v)
	return _c
}

// SetNillableAvgWeight sets the "avg_weight" field if the given value is not nil.
func (_c *MobCreate) SetNillableAvgWeight(v *float64) *MobCreate {
	if v != nil {
		_c.SetAvgWeight(*v)
	}
	return _c
}

// SetPaddockID sets the "paddock_id" field.
func (_c *MobCreate) SetPaddockID(v string) *MobCreate {
	_c.mutation.SetPaddockID(v)
	return _c
}

// SetNillablePaddockID sets the "paddock_id" field if the given value is not nil.
func (_c *MobCreate) SetNillablePaddockID(v *string) *MobCreate {
	if v != nil {
		_c.SetPaddockID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MobCreate) SetID(v string) *MobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MobMutation object of the builder.
func (_c *MobCreate) Mutation() *MobMutation {
	return _c.mutation
}

// Save creates the Mob in the database.
func (_c *MobCreate) Save(ctx context.Context) (*Mob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MobCreate) SaveX(ctx context.Context) *Mob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MobCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Count(); !ok {
		v := mob.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.AvgWeight(); !ok {
		v := mob.DefaultAvgWeight
		_c.mutation.SetAvgWeight(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MobCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Mob.updated_at"`)}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "Mob.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := mob.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "Mob.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Mob.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := mob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Mob.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "Mob.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := mob.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "Mob.count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvgWeight(); !ok {
		return &ValidationError{Name: "avg_weight", err: errors.New(`ent: missing required field "Mob.avg_weight"`)}
	}
	return nil
}

func (_c *MobCreate) sqlSave(ctx context.Context) (*Mob, error) {
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
			return nil, fmt.Errorf("unexpected Mob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MobCreate) createSpec() (*Mob, *sqlgraph.CreateSpec) {
	var (
		_node = &Mob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mob.Table, sqlgraph.NewFieldSpec(mob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(mob.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(mob.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(mob.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(mob.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.AvgWeight(); ok {
		_spec.SetField(mob.FieldAvgWeight, field.TypeFloat64, value)
		_node.AvgWeight = value
	}
	if value, ok := _c.mutation.PaddockID(); ok {
		_spec.SetField(mob.FieldPaddockID, field.TypeString, value)
		_node.PaddockID = value
	}
	return _node, _spec
}

// MobCreateBulk is the builder for creating many Mob entities in bulk.
type MobCreateBulk struct {
	config
	err      error
	builders []*MobCreate
}

// Save creates the Mob entities in the database.
func (_c *MobCreateBulk) Save(ctx context.Context) ([]*Mob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MobMutation)
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
func (_c *MobCreateBulk) SaveX(ctx context.Context) []*Mob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
