// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/movement"
)

// MovementCreate is the builder for creating a Movement entity.
type MovementCreate struct {
	config
	mutation *MovementMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MovementCreate) SetCreatedAt(v time.Time) *MovementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MovementCreate) SetNillableCreatedAt(v *time.Time) *MovementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MovementCreate) SetUpdatedAt(v time.Time) *MovementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MovementCreate) SetNillableUpdatedAt(v *time.Time) *MovementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *MovementCreate) SetFarmID(v string) *MovementCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MovementCreate) SetDeletedAt(v time.Time) *MovementCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MovementCreate) SetNillableDeletedAt(v *time.Time) *MovementCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetMobID sets the "mob_id" field.
func (_c *MovementCreate) SetMobID(v string) *MovementCreate {
	_c.mutation.SetMobID(v)
	return _c
}

// SetFromPaddockID sets the "from_paddock_id" field.
func (_c *MovementCreate) SetFromPaddockID(v string) *MovementCreate {
	_c.mutation.SetFromPaddockID(v)
	return _c
}

// SetNillableFromPaddockID sets the "from_paddock_id" field if the given value is not nil.
func (_c *MovementCreate) SetNillableFromPaddockID(v *string) *MovementCreate {
	if v != nil {
		_c.SetFromPaddockID(*v)
	}
	return _c
}

// SetToPaddockID sets the "to_paddock_id" field.
func (_c *MovementCreate) SetToPaddockID(v string) *MovementCreate {
	_c.mutation.SetToPaddockID(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *MovementCreate) SetOccurredAt(v time.Time) *MovementCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *MovementCreate) SetNillableOccurredAt(v *time.Time) *MovementCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MovementCreate) SetID(v string) *MovementCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MovementMutation object of the builder.
func (_c *MovementCreate) Mutation() *MovementMutation {
	return _c.mutation
}

// Save creates the Movement in the database.
func (_c *MovementCreate) Save(ctx context.Context) (*Movement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MovementCreate) SaveX(ctx context.Context) *Movement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MovementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MovementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MovementCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := movement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := movement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := movement.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MovementCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Movement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Movement.updated_at"`)}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "Movement.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := movement.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "Movement.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MobID(); !ok {
		return &ValidationError{Name: "mob_id", err: errors.New(`ent: missing required field "Movement.mob_id"`)}
	}
	if v, ok := _c.mutation.MobID(); ok {
		if err := movement.MobIDValidator(v); err != nil {
			return &ValidationError{Name: "mob_id", err: fmt.Errorf(`ent: validator failed for field "Movement.mob_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToPaddockID(); !ok {
		return &ValidationError{Name: "to_paddock_id", err: errors.New(`ent: missing required field "Movement.to_paddock_id"`)}
	}
	if v, ok := _c.mutation.ToPaddockID(); ok {
		if err := movement.ToPaddockIDValidator(v); err != nil {
			return &ValidationError{Name: "to_paddock_id", err: fmt.Errorf(`ent: validator failed for field "Movement.to_paddock_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "Movement.occurred_at"`)}
	}
	return nil
}

func (_c *MovementCreate) sqlSave(ctx context.Context) (*Movement, error) {
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
			return nil, fmt.Errorf("unexpected Movement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MovementCreate) createSpec() (*Movement, *sqlgraph.CreateSpec) {
	var (
		_node = &Movement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(movement.Table, sqlgraph.NewFieldSpec(movement.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(movement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(movement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(movement.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(movement.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.MobID(); ok {
		_spec.SetField(movement.FieldMobID, field.TypeString, value)
		_node.MobID = value
	}
	if value, ok := _c.mutation.FromPaddockID(); ok {
		_spec.SetField(movement.FieldFromPaddockID, field.TypeString, value)
		_node.FromPaddockID = value
	}
	if value, ok := _c.mutation.ToPaddockID(); ok {
		_spec.SetField(movement.FieldToPaddockID, field.TypeString, value)
		_node.ToPaddockID = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(movement.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// MovementCreateBulk is the builder for creating many Movement entities in bulk.
type MovementCreateBulk struct {
	config
	err      error
	builders []*MovementCreate
}

// Save creates the Movement entities in the database.
func (_c *MovementCreateBulk) Save(ctx context.Context) ([]*Movement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Movement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MovementMutation)
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
func (_c *MovementCreateBulk) SaveX(ctx context.Context) []*Movement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MovementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MovementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
