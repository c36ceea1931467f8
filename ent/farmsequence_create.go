// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/farmsequence"
)

// FarmSequenceCreate is the builder for creating a FarmSequence entity.
type FarmSequenceCreate struct {
	config
	mutation *FarmSequenceMutation
	hooks    []Hook
}

// SetFarmID sets the "farm_id" field.
func (_c *FarmSequenceCreate) SetFarmID(v string) *FarmSequenceCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *FarmSequenceCreate) SetValue(v int64) *FarmSequenceCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *FarmSequenceCreate) SetNillableValue(v *int64) *FarmSequenceCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// Mutation returns the FarmSequenceMutation object of the builder.
func (_c *FarmSequenceCreate) Mutation() *FarmSequenceMutation {
	return _c.mutation
}

// Save creates the FarmSequence in the database.
func (_c *FarmSequenceCreate) Save(ctx context.Context) (*FarmSequence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FarmSequenceCreate) SaveX(ctx context.Context) *FarmSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmSequenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmSequenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FarmSequenceCreate) defaults() {
	if _, ok := _c.mutation.Value(); !ok {
		v := farmsequence.DefaultValue
		_c.mutation.SetValue(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FarmSequenceCreate) check() error {
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "FarmSequence.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := farmsequence.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "FarmSequence.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "FarmSequence.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := farmsequence.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "FarmSequence.value": %w`, err)}
		}
	}
	return nil
}

func (_c *FarmSequenceCreate) sqlSave(ctx context.Context) (*FarmSequence, error) {
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

func (_c *FarmSequenceCreate) createSpec() (*FarmSequence, *sqlgraph.CreateSpec) {
	var (
		_node = &FarmSequence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(farmsequence.Table, sqlgraph.NewFieldSpec(farmsequence.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(farmsequence.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(farmsequence.FieldValue, field.TypeInt64, value)
		_node.Value = value
	}
	return _node, _spec
}

// FarmSequenceCreateBulk is the builder for creating many FarmSequence entities in bulk.
type FarmSequenceCreateBulk struct {
	config
	err      error
	builders []*FarmSequenceCreate
}

// Save creates the FarmSequence entities in the database.
func (_c *FarmSequenceCreateBulk) Save(ctx context.Context) ([]*FarmSequence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FarmSequence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FarmSequenceMutation)
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
func (_c *FarmSequenceCreateBulk) SaveX(ctx context.Context) []*FarmSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmSequenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmSequenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
