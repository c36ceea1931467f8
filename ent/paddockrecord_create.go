// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/paddockrecord"
)

// PaddockRecordCreate is the builder for creating a PaddockRecord entity.
type PaddockRecordCreate struct {
	config
	mutation *PaddockRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaddockRecordCreate) SetCreatedAt(v time.Time) *PaddockRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaddockRecordCreate) SetNillableCreatedAt(v *time.Time) *PaddockRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaddockRecordCreate) SetUpdatedAt(v time.Time) *PaddockRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaddockRecordCreate) SetNillableUpdatedAt(v *time.Time) *PaddockRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *PaddockRecordCreate) SetFarmID(v string) *PaddockRecordCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PaddockRecordCreate) SetDeletedAt(v time.Time) *PaddockRecordCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PaddockRecordCreate) SetNillableDeletedAt(v *time.Time) *PaddockRecordCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPaddockID sets the "paddock_id" field.
func (_c *PaddockRecordCreate) SetPaddockID(v string) *PaddockRecordCreate {
	_c.mutation.SetPaddockID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PaddockRecordCreate) SetKind(v paddockrecord.Kind) *PaddockRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *PaddockRecordCreate) SetDate(v time.Time) *PaddockRecordCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *PaddockRecordCreate) SetNillableDate(v *time.Time) *PaddockRecordCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetProduct sets the "product" field.
func (_c *PaddockRecordCreate) SetProduct(v string) *PaddockRecordCreate {
	_c.mutation.SetProduct(v)
	return _c
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_c *PaddockRecordCreate) SetNillableProduct(v *string) *PaddockRecordCreate {
	if v != nil {
		_c.SetProduct(*v)
	}
	return _c
}

// SetRate sets the "rate" field.
func (_c *PaddockRecordCreate) SetRate(v string) *PaddockRecordCreate {
	_c.mutation.SetRate(v)
	return _c
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_c *PaddockRecordCreate) SetNillableRate(v *string) *PaddockRecordCreate {
	if v != nil {
		_c.SetRate(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PaddockRecordCreate) SetAmount(v string) *PaddockRecordCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *PaddockRecordCreate) SetNillableAmount(v *string) *PaddockRecordCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PaddockRecordCreate) SetNotes(v string) *PaddockRecordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PaddockRecordCreate) SetNillableNotes(v *string) *PaddockRecordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaddockRecordCreate) SetID(v string) *PaddockRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PaddockRecordMutation object of the builder.
func (_c *PaddockRecordCreate) Mutation() *PaddockRecordMutation {
	return _c.mutation
}

// Save creates the PaddockRecord in the database.
func (_c *PaddockRecordCreate) Save(ctx context.Context) (*PaddockRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaddockRecordCreate) SaveX(ctx context.Context) *PaddockRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaddockRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaddockRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaddockRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paddockrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paddockrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Date(); !ok {
		v := paddockrecord.DefaultDate()
		_c.mutation.SetDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaddockRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaddockRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaddockRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "PaddockRecord.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := paddockrecord.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "PaddockRecord.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaddockID(); !ok {
		return &ValidationError{Name: "paddock_id", err: errors.New(`ent: missing required field "PaddockRecord.paddock_id"`)}
	}
	if v, ok := _c.mutation.PaddockID(); ok {
		if err := paddockrecord.PaddockIDValidator(v); err != nil {
			return &ValidationError{Name: "paddock_id", err: fmt.Errorf(`ent: validator failed for field "PaddockRecord.paddock_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PaddockRecord.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := paddockrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PaddockRecord.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "PaddockRecord.date"`)}
	}
	return nil
}

func (_c *PaddockRecordCreate) sqlSave(ctx context.Context) (*PaddockRecord, error) {
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
			return nil, fmt.Errorf("unexpected PaddockRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaddockRecordCreate) createSpec() (*PaddockRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PaddockRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paddockrecord.Table, sqlgraph.NewFieldSpec(paddockrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paddockrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paddockrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(paddockrecord.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(paddockrecord.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.PaddockID(); ok {
		_spec.SetField(paddockrecord.FieldPaddockID, field.TypeString, value)
		_node.PaddockID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(paddockrecord.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(paddockrecord.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Product(); ok {
		_spec.SetField(paddockrecord.FieldProduct, field.TypeString, value)
		_node.Product = value
	}
	if value, ok := _c.mutation.Rate(); ok {
		_spec.SetField(paddockrecord.FieldRate, field.TypeString, value)
		_node.Rate = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(paddockrecord.FieldAmount, field.TypeString, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(paddockrecord.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// PaddockRecordCreateBulk is the builder for creating many PaddockRecord entities in bulk.
type PaddockRecordCreateBulk struct {
	config
	err      error
	builders []*PaddockRecordCreate
}

// Save creates the PaddockRecord entities in the database.
func (_c *PaddockRecordCreateBulk) Save(ctx context.Context) ([]*PaddockRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaddockRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaddockRecordMutation)
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
func (_c *PaddockRecordCreateBulk) SaveX(ctx context.Context) []*PaddockRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaddockRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaddockRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
