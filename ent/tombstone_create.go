// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/tombstone"
)

// TombstoneCreate is the builder for creating a Tombstone entity.
type TombstoneCreate struct {
	config
	mutation *TombstoneMutation
	hooks    []Hook
}

// SetFarmID sets the "farm_id" field.
func (_c *TombstoneCreate) SetFarmID(v string) *TombstoneCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *TombstoneCreate) SetEntityType(v string) *TombstoneCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *TombstoneCreate) SetEntityID(v string) *TombstoneCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *TombstoneCreate) SetSeq(v int64) *TombstoneCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *TombstoneCreate) SetRecordedAt(v time.Time) *TombstoneCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *TombstoneCreate) SetNillableRecordedAt(v *time.Time) *TombstoneCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// Mutation returns the TombstoneMutation object of the builder.
func (_c *TombstoneCreate) Mutation() *TombstoneMutation {
	return _c.mutation
}

// Save creates the Tombstone in the database.
func (_c *TombstoneCreate) Save(ctx context.Context) (*Tombstone, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TombstoneCreate) SaveX(ctx context.Context) *Tombstone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TombstoneCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TombstoneCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TombstoneCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := tombstone.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TombstoneCreate) check() error {
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "Tombstone.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := tombstone.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "Tombstone.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "Tombstone.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := tombstone.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Tombstone.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "Tombstone.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := tombstone.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "Tombstone.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Tombstone.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := tombstone.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "Tombstone.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "Tombstone.recorded_at"`)}
	}
	return nil
}

func (_c *TombstoneCreate) sqlSave(ctx context.Context) (*Tombstone, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TombstoneCreate) createSpec() (*Tombstone, *sqlgraph.CreateSpec) {
	var (
		_node = &Tombstone{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tombstone.Table, sqlgraph.NewFieldSpec(tombstone.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(tombstone.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(tombstone.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(tombstone.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(tombstone.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(tombstone.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// TombstoneCreateBulk is the builder for creating many Tombstone entities in bulk.
type TombstoneCreateBulk struct {
	config
	err      error
	builders []*TombstoneCreate
}

// Save creates the Tombstone entities in the database.
func (_c *TombstoneCreateBulk) Save(ctx context.Context) ([]*Tombstone, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Tombstone, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TombstoneMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TombstoneCreateBulk) SaveX(ctx context.Context) []*Tombstone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TombstoneCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TombstoneCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
