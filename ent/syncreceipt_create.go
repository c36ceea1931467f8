// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/syncreceipt"
)

// SyncReceiptCreate is the builder for creating a SyncReceipt entity.
type SyncReceiptCreate struct {
	config
	mutation *SyncReceiptMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (_c *SyncReceiptCreate) SetClientID(v string) *SyncReceiptCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *SyncReceiptCreate) SetFarmID(v string) *SyncReceiptCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SyncReceiptCreate) SetStatus(v syncreceipt.Status) *SyncReceiptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *SyncReceiptCreate) SetSeq(v int64) *SyncReceiptCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_c *SyncReceiptCreate) SetNillableSeq(v *int64) *SyncReceiptCreate {
	if v != nil {
		_c.SetSeq(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *SyncReceiptCreate) SetEntityType(v string) *SyncReceiptCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *SyncReceiptCreate) SetEntityID(v string) *SyncReceiptCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SyncReceiptCreate) SetCreatedAt(v time.Time) *SyncReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SyncReceiptCreate) SetNillableCreatedAt(v *time.Time) *SyncReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SyncReceiptMutation object of the builder.
func (_c *SyncReceiptCreate) Mutation() *SyncReceiptMutation {
	return _c.mutation
}

// Save creates the SyncReceipt in the database.
func (_c *SyncReceiptCreate) Save(ctx context.Context) (*SyncReceipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncReceiptCreate) SaveX(ctx context.Context) *SyncReceipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncReceiptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := syncreceipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncReceiptCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "SyncReceipt.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := syncreceipt.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "SyncReceipt.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "SyncReceipt.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := syncreceipt.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "SyncReceipt.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SyncReceipt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := syncreceipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncReceipt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "SyncReceipt.entity_type"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "SyncReceipt.entity_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SyncReceipt.created_at"`)}
	}
	return nil
}

func (_c *SyncReceiptCreate) sqlSave(ctx context.Context) (*SyncReceipt, error) {
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

func (_c *SyncReceiptCreate) createSpec() (*SyncReceipt, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncReceipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncreceipt.Table, sqlgraph.NewFieldSpec(syncreceipt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(syncreceipt.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(syncreceipt.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(syncreceipt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(syncreceipt.FieldSeq, field.TypeInt64, value)
		_node.Seq = &value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(syncreceipt.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(syncreceipt.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(syncreceipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SyncReceiptCreateBulk is the builder for creating many SyncReceipt entities in bulk.
type SyncReceiptCreateBulk struct {
	config
	err      error
	builders []*SyncReceiptCreate
}

// Save creates the SyncReceipt entities in the database.
func (_c *SyncReceiptCreateBulk) Save(ctx context.Context) ([]*SyncReceipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncReceipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncReceiptMutation)
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
func (_c *SyncReceiptCreateBulk) SaveX(ctx context.Context) []*SyncReceipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
