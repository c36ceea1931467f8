// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/changelogentry"
)

// ChangeLogEntryCreate is the builder for creating a ChangeLogEntry entity.
type ChangeLogEntryCreate struct {
	config
	mutation *ChangeLogEntryMutation
	hooks    []Hook
}

// SetFarmID sets the "farm_id" field.
func (_c *ChangeLogEntryCreate) SetFarmID(v string) *ChangeLogEntryCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *ChangeLogEntryCreate) SetEntityType(v string) *ChangeLogEntryCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *ChangeLogEntryCreate) SetEntityID(v string) *ChangeLogEntryCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetOp sets the "op" field.
func (_c *ChangeLogEntryCreate) SetOp(v changelogentry.Op) *ChangeLogEntryCreate {
	_c.mutation.SetOpField(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ChangeLogEntryCreate) SetPayload(v []byte) *ChangeLogEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *ChangeLogEntryCreate) SetSeq(v int64) *ChangeLogEntryCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *ChangeLogEntryCreate) SetRecordedAt(v time.Time) *ChangeLogEntryCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *ChangeLogEntryCreate) SetNillableRecordedAt(v *time.Time) *ChangeLogEntryCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// Mutation returns the ChangeLogEntryMutation object of the builder.
func (_c *ChangeLogEntryCreate) Mutation() *ChangeLogEntryMutation {
	return _c.mutation
}

// Save creates the ChangeLogEntry in the database.
func (_c *ChangeLogEntryCreate) Save(ctx context.Context) (*ChangeLogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChangeLogEntryCreate) SaveX(ctx context.Context) *ChangeLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChangeLogEntryCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := changelogentry.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChangeLogEntryCreate) check() error {
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "ChangeLogEntry.farm_id"`)}
	}
	if v, ok := _c.mutation.FarmID(); ok {
		if err := changelogentry.FarmIDValidator(v); err != nil {
			return &ValidationError{Name: "farm_id", err: fmt.Errorf(`ent: validator failed for field "ChangeLogEntry.farm_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "ChangeLogEntry.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := changelogentry.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "ChangeLogEntry.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "ChangeLogEntry.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := changelogentry.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "ChangeLogEntry.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetOp(); !ok {
		return &ValidationError{Name: "op", err: errors.New(`ent: missing required field "ChangeLogEntry.op"`)}
	}
	if v, ok := _c.mutation.GetOp(); ok {
		if err := changelogentry.OpValidator(v); err != nil {
			return &ValidationError{Name: "op", err: fmt.Errorf(`ent: validator failed for field "ChangeLogEntry.op": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ChangeLogEntry.payload"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "ChangeLogEntry.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := changelogentry.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "ChangeLogEntry.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "ChangeLogEntry.recorded_at"`)}
	}
	return nil
}

func (_c *ChangeLogEntryCreate) sqlSave(ctx context.Context) (*ChangeLogEntry, error) {
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

func (_c *ChangeLogEntryCreate) createSpec() (*ChangeLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ChangeLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(changelogentry.Table, sqlgraph.NewFieldSpec(changelogentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(changelogentry.FieldFarmID, field.TypeString, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(changelogentry.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(changelogentry.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.GetOp(); ok {
		_spec.SetField(changelogentry.FieldOp, field.TypeEnum, value)
		_node.Op = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(changelogentry.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(changelogentry.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(changelogentry.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// ChangeLogEntryCreateBulk is the builder for creating many ChangeLogEntry entities in bulk.
type ChangeLogEntryCreateBulk struct {
	config
	err      error
	builders []*ChangeLogEntryCreate
}

// Save creates the ChangeLogEntry entities in the database.
func (_c *ChangeLogEntryCreateBulk) Save(ctx context.Context) ([]*ChangeLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChangeLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChangeLogEntryMutation)
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
func (_c *ChangeLogEntryCreateBulk) SaveX(ctx context.Context) []*ChangeLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
