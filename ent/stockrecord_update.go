// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"farmdeck.io/farmdeck/ent/predicate"
	"farmdeck.io/farmdeck/ent/stockrecord"
)

// StockRecordUpdate is the builder for updating StockRecord entities.
type StockRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StockRecordMutation
}

// Where appends a list predicates to the StockRecordUpdate builder.
func (_u *StockRecordUpdate) Where(ps ...predicate.StockRecord) *StockRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StockRecordUpdate) SetUpdatedAt(v time.Time) *StockRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *StockRecordUpdate) SetDeletedAt(v time.Time) *StockRecordUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *StockRecordUpdate) SetNillableDeletedAt(v *time.Time) *StockRecordUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *StockRecordUpdate) ClearDeletedAt() *StockRecordUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMobID sets the "mob_id" field.
func (_u *StockRecordUpdate) SetMobID(v string) *StockRecordUpdate {
	_u.mutation.SetMobID(v)
	return _u
}

// SetNillableMobID sets the "mob_id" field if the given value is not nil.
func (_u *StockRecordUpdate) SetNillableMobID(v *string) *StockRecordUpdate {
	if v != nil {
		_u.SetMobID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *StockRecordUpdate) SetKind(v stockrecord.Kind) *StockRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *StockRecordUpdate) SetNillableKind(v *stockrecord.Kind) *StockRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StockRecordUpdate) SetDate(v time.Time) *StockRecordUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StockRecordUpdate) SetNillableDate(v *time.Time) *StockRecordUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *StockRecordUpdate) SetProduct(v string) *StockRecordUpdate {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *StockRecordUpdate) SetNillableProduct(v *string) *StockRecordUpdate {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// ClearProduct clears the value of the "product" field.
func (_u *StockRecordUpdate) ClearProduct() *StockRecordUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// SetRate sets the "rate" field.
func (_u *StockRecordUpdate) SetRate(v string) *StockRecordUpdate {
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *StockRecordUpdate) SetNillableRate(v *string) *StockRecordUpdate {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// ClearRate clears the value of the "rate" field.
func (_u *StockRecordUpdate) ClearRate() *StockRecordUpdate {
	_u.mutation.ClearRate()
	return _u
}

// SetCount sets the "count" field.
func (_u *StockRecordUpdate) SetCount(v int) *StockRecordUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *StockRecordUpdate) SetNillableCount(v *int) *StockRecordUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *StockRecordUpdate) AddCount(v int) *StockRecordUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// ClearCount clears the value of the "count" field.
func (_u *StockRecordUpdate) ClearCount() *StockRecordUpdate {
	_u.mutation.ClearCount()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *StockRecordUpdate) SetNotes(v string) *StockRecordUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *StockRecordUpdate) SetNillableNotes(v *string) *StockRecordUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *StockRecordUpdate) ClearNotes() *StockRecordUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the StockRecordMutation object of the builder.
func (_u *StockRecordUpdate) Mutation() *StockRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StockRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StockRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StockRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StockRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StockRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stockrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StockRecordUpdate) check() error {
	if v, ok := _u.mutation.MobID(); ok {
		if err := stockrecord.MobIDValidator(v); err != nil {
			return &ValidationError{Name: "mob_id", err: fmt.Errorf(`ent: validator failed for field "StockRecord.mob_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := stockrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StockRecord.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *StockRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stockrecord.Table, stockrecord.Columns, sqlgraph.NewFieldSpec(stockrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stockrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(stockrecord.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(stockrecord.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MobID(); ok {
		_spec.SetField(stockrecord.FieldMobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(stockrecord.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(stockrecord.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(stockrecord.FieldProduct, field.TypeString, value)
	}
	if _u.mutation.ProductCleared() {
		_spec.ClearField(stockrecord.FieldProduct, field.TypeString)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(stockrecord.FieldRate, field.TypeString, value)
	}
	if _u.mutation.RateCleared() {
		_spec.ClearField(stockrecord.FieldRate, field.TypeString)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(stockrecord.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(stockrecord.FieldCount, field.TypeInt, value)
	}
	if _u.mutation.CountCleared() {
		_spec.ClearField(stockrecord.FieldCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(stockrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(stockrecord.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stockrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StockRecordUpdateOne is the builder for updating a single StockRecord entity.
type StockRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StockRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StockRecordUpdateOne) SetUpdatedAt(v time.Time) *StockRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *StockRecordUpdateOne) SetDeletedAt(v time.Time) *StockRecordUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *StockRecordUpdateOne) SetNillableDeletedAt(v *time.Time) *StockRecordUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *StockRecordUpdateOne) ClearDeletedAt() *StockRecordUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMobID sets the "mob_id" field.
func (_u *StockRecordUpdateOne) SetMobID(v string) *StockRecordUpdateOne {
	_u.mutation.SetMobID(v)
	return _u
}

// SetNillableMobID sets the "mob_id" field if the given value is not nil.
func (_u *StockRecordUpdateOne) SetNillableMobID(v *string) *StockRecordUpdateOne {
	if v != nil {
		_u.SetMobID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *StockRecordUpdateOne) SetKind(v stockrecord.Kind) *StockRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *StockRecordUpdateOne) SetNillableKind(v *stockrecord.Kind) *StockRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StockRecordUpdateOne) SetDate(v time.Time) *StockRecordUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StockRecordUpdateOne) SetNillableDate(v *time.Time) *StockRecordUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *StockRecordUpdateOne) SetProduct(v string) *StockRecordUpdateOne {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *StockRecordUpdateOne) SetNillableProduct(v *string) *StockRecordUpdateOne {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// ClearProduct clears the value of the "product" field.
func (_u *StockRecordUpdateOne) ClearProduct() *StockRecordUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// SetRate sets the "rate" field.
func (_u *StockRecordUpdateOne) SetRate(v string) *StockRecordUpdateOne {
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *StockRecordUpdateOne) SetNillableRate(v *string) *StockRecordUpdateOne {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// ClearRate clears the value of the "rate" field.
func (_u *StockRecordUpdateOne) ClearRate() *StockRecordUpdateOne {
	_u.mutation.ClearRate()
	return _u
}

// SetCount sets the "count" field.
func (_u *StockRecordUpdateOne) SetCount(v int) *StockRecordUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *StockRecordUpdateOne) SetNillableCount(v *int) *StockRecordUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *StockRecordUpdateOne) AddCount(v int) *StockRecordUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// ClearCount clears the value of the "count" field.
func (_u *StockRecordUpdateOne) ClearCount() *StockRecordUpdateOne {
	_u.mutation.ClearCount()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *StockRecordUpdateOne) SetNotes(v string) *StockRecordUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *StockRecordUpdateOne) SetNillableNotes(v *string) *StockRecordUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *StockRecordUpdateOne) ClearNotes() *StockRecordUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the StockRecordMutation object of the builder.
func (_u *StockRecordUpdateOne) Mutation() *StockRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StockRecordUpdate builder.
func (_u *StockRecordUpdateOne) Where(ps ...predicate.StockRecord) *StockRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StockRecordUpdateOne) Select(field string, fields ...string) *StockRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StockRecord entity.
func (_u *StockRecordUpdateOne) Save(ctx context.Context) (*StockRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StockRecordUpdateOne) SaveX(ctx context.Context) *StockRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StockRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StockRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StockRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stockrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StockRecordUpdateOne) check() error {
	if v, ok := _u.mutation.MobID(); ok {
		if err := stockrecord.MobIDValidator(v); err != nil {
			return &ValidationError{Name: "mob_id", err: fmt.Errorf(`ent: validator failed for field "StockRecord.mob_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := stockrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StockRecord.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *StockRecordUpdateOne) sqlSave(ctx context.Context) (_node *StockRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stockrecord.Table, stockrecord.Columns, sqlgraph.NewFieldSpec(stockrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StockRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stockrecord.FieldID)
		for _, f := range fields {
			if !stockrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stockrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stockrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(stockrecord.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(stockrecord.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MobID(); ok {
		_spec.SetField(stockrecord.FieldMobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(stockrecord.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(stockrecord.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(stockrecord.FieldProduct, field.TypeString, value)
	}
	if _u.mutation.ProductCleared() {
		_spec.ClearField(stockrecord.FieldProduct, field.TypeString)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(stockrecord.FieldRate, field.TypeString, value)
	}
	if _u.mutation.RateCleared() {
		_spec.ClearField(stockrecord.FieldRate, field.TypeString)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(stockrecord.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(stockrecord.FieldCount, field.TypeInt, value)
	}
	if _u.mutation.CountCleared() {
		_spec.ClearField(stockrecord.FieldCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(stockrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(stockrecord.FieldNotes, field.TypeString)
	}
	_node = &StockRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stockrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
