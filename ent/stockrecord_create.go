// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/stockrecord"
)

// StockRecordCreate is the builder for creating a StockRecord entity.
type StockRecordCreate struct {
	config
	mutation *StockRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *StockRecordCreate) SetCreatedAt(v time.Time) *StockRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StockRecordCreate) SetNillableCreatedAt(v *time.Time) *StockRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StockRecordCreate) SetUpdatedAt(v time.Time) *StockRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StockRecordCreate) SetNillableUpdatedAt(v *time.Time) *StockRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *StockRecordCreate) SetFarmID(v string) *StockRecordCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *StockRecordCreate) SetDeletedAt(v time.Time) *StockRecordCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *StockRecordCreate) SetNillableDeletedAt(v *time.Time) *StockRecordCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetMobID sets the "mob_id" field.
func (_c *StockRecordCreate) SetMobID(v string) *StockRecordCreate {
	_c.mutation.SetMobID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *StockRecordCreate) SetKind(v stockrecord.Kind) *StockRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *StockRecordCreate) SetDate(v time.Time) *StockRecordCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *StockRecordCreate) SetNillableDate(v *time.Time) *StockRecordCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetProduct sets the "product" field.
func (_c *StockRecordCreate) SetProduct(v string) *StockRecordCreate {
	_c.mutation.SetProduct(v)
	return _c
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_c *StockRecordCreate) SetNillableProduct(v *string) *StockRecordCreate {
	if v != nil {
		_c.SetProduct(*v)
	}
	return _c
}

// SetRate sets the "rate" field.
func (_c *StockRecordCreate) SetRate(v string) *StockRecordCreate {
	_c.mutation.SetRate(v)
	return _c
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_c *StockRecordCreate) SetNillableRate(v *string) *StockRecordCreate {
	if v != nil {
		_c.SetRate(*v)
	}
	return _c
}

// SetCount sets the "count" field.
func (_c *StockRecordCreate) SetCount(v int) *StockRecordCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *StockRecordCreate) SetNillableCount(v *int) *StockRecordCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *StockRecordCreate) SetNotes(v string) *StockRecordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *StockRecordCreate) SetNillableNotes(v *string) *StockRecordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StockRecordCreate) SetID(v string) *StockRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StockRecordMutation object of the builder.
func (_c *StockRecordCreate) Mutation() *StockRecordMutation {
	return _c.mutation
}

// Save creates the StockRecord in the database.
func (_c *StockRecordCreate) Save(ctx context.Context) (*StockRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StockRecordCreate) SaveX(ctx context.Context) *StockRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StockRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stockrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stockrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Date(); !ok {
		v := stockrecord.DefaultDate()
		_c.mutation.SetDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StockRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StockRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StockRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "StockRecord.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := stockrecord.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "StockRecord.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MobID(); !ok {
		return &ValidationError{Name: "mob_id", err: errors.New(`ent: missing required field "StockRecord.mob_id"`)}
	}
	if v, ok := _c.mutation.MobID(); ok {
		if err := stockrecord.MobIDValidator(v); err != nil {
			return &ValidationError{Name: "mob_id", err: fmt.Errorf(`ent: validator failed for field "StockRecord.mob_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "StockRecord.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := stockrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StockRecord.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "StockRecord.date"`)}
	}
	return nil
}

func (_c *StockRecordCreate) sqlSave(ctx context.Context) (*StockRecord, error) {
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
			return nil, fmt.Errorf("unexpected StockRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StockRecordCreate) createSpec() (*StockRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StockRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stockrecord.Table, sqlgraph.NewFieldSpec(stockrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stockrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stockrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(stockrecord.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(stockrecord.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.MobID(); ok {
		_spec.SetField(stockrecord.FieldMobID, field.TypeString, value)
		_node.MobID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(stockrecord.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(stockrecord.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Product(); ok {
		_spec.SetField(stockrecord.FieldProduct, field.TypeString, value)
		_node.Product = value
	}
	if value, ok := _c.mutation.Rate(); ok {
		_spec.SetField(stockrecord.FieldRate, field.TypeString, value)
		_node.Rate = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(stockrecord.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(stockrecord.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// StockRecordCreateBulk is the builder for creating many StockRecord entities in bulk.
type StockRecordCreateBulk struct {
	config
	err      error
	builders []*StockRecordCreate
}

// Save creates the StockRecord entities in the database.
func (_c *StockRecordCreateBulk) Save(ctx context.Context) ([]*StockRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StockRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StockRecordMutation)
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
func (_c *StockRecordCreateBulk) SaveX(ctx context.Context) []*StockRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
