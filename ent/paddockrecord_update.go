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
	"farmdeck.io/farmdeck/ent/paddockrecord"
	"farmdeck.io/farmdeck/ent/predicate"
)

// PaddockRecordUpdate is the builder for updating PaddockRecord entities.
type PaddockRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PaddockRecordMutation
}

// Where appends a list predicates to the PaddockRecordUpdate builder.
func (_u *PaddockRecordUpdate) Where(ps ...predicate.PaddockRecord) *PaddockRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaddockRecordUpdate) SetUpdatedAt(v time.Time) *PaddockRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PaddockRecordUpdate) SetDeletedAt(v time.Time) *PaddockRecordUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PaddockRecordUpdate) SetNillableDeletedAt(v *time.Time) *PaddockRecordUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PaddockRecordUpdate) ClearDeletedAt() *PaddockRecordUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPaddockID sets the "paddock_id" field.
func (_u *PaddockRecordUpdate) SetPaddockID(v string) *PaddockRecordUpdate {
	_u.mutation.SetPaddockID(v)
	return _u
}

// SetNillablePaddockID sets the "paddock_id" field if the given value is not nil.
func (_u *PaddockRecordUpdate) SetNillablePaddockID(v *string) *PaddockRecordUpdate {
	if v != nil {
		_u.SetPaddockID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PaddockRecordUpdate) SetKind(v paddockrecord.Kind) *PaddockRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PaddockRecordUpdate) SetNillableKind(v *paddockrecord.Kind) *PaddockRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *PaddockRecordUpdate) SetDate(v time.Time) *PaddockRecordUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PaddockRecordUpdate) SetNillableDate(v *time.Time) *PaddockRecordUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *PaddockRecordUpdate) SetProduct(v string) *PaddockRecordUpdate {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *PaddockRecordUpdate) SetNillableProduct(v *string) *PaddockRecordUpdate {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// ClearProduct clears the value of the "product" field.
func (_u *PaddockRecordUpdate) ClearProduct() *PaddockRecordUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// SetRate sets the "rate" field.
func (_u *PaddockRecordUpdate) SetRate(v string) *PaddockRecordUpdate {
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *PaddockRecordUpdate) SetNillableRate(v *string) *PaddockRecordUpdate {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// ClearRate clears the value of the "rate" field.
func (_u *PaddockRecordUpdate) ClearRate() *PaddockRecordUpdate {
	_u.mutation.ClearRate()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PaddockRecordUpdate) SetAmount(v string) *PaddockRecordUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PaddockRecordUpdate) SetNillableAmount(v *string) *PaddockRecordUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *PaddockRecordUpdate) ClearAmount() *PaddockRecordUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PaddockRecordUpdate) SetNotes(v string) *PaddockRecordUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PaddockRecordUpdate) SetNillableNotes(v *string) *PaddockRecordUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PaddockRecordUpdate) ClearNotes() *PaddockRecordUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the PaddockRecordMutation object of the builder.
func (_u *PaddockRecordUpdate) Mutation() *PaddockRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaddockRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaddockRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaddockRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaddockRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaddockRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paddockrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaddockRecordUpdate) check() error {
	if v, ok := _u.mutation.PaddockID(); ok {
		if err := paddockrecord.PaddockIDValidator(v); err != nil {
			return &ValidationError{Name: "paddock_id", err: fmt.Errorf(`ent: validator failed for field "PaddockRecord.paddock_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := paddockrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PaddockRecord.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PaddockRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paddockrecord.Table, paddockrecord.Columns, sqlgraph.NewFieldSpec(paddockrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paddockrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(paddockrecord.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(paddockrecord.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PaddockID(); ok {
		_spec.SetField(paddockrecord.FieldPaddockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(paddockrecord.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(paddockrecord.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(paddockrecord.FieldProduct, field.TypeString, value)
	}
	if _u.mutation.ProductCleared() {
		_spec.ClearField(paddockrecord.FieldProduct, field.TypeString)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(paddockrecord.FieldRate, field.TypeString, value)
	}
	if _u.mutation.RateCleared() {
		_spec.ClearField(paddockrecord.FieldRate, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(paddockrecord.FieldAmount, field.TypeString, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(paddockrecord.FieldAmount, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(paddockrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(paddockrecord.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paddockrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaddockRecordUpdateOne is the builder for updating a single PaddockRecord entity.
type PaddockRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaddockRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaddockRecordUpdateOne) SetUpdatedAt(v time.Time) *PaddockRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PaddockRecordUpdateOne) SetDeletedAt(v time.Time) *PaddockRecordUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PaddockRecordUpdateOne) SetNillableDeletedAt(v *time.Time) *PaddockRecordUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PaddockRecordUpdateOne) ClearDeletedAt() *PaddockRecordUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPaddockID sets the "paddock_id" field.
func (_u *PaddockRecordUpdateOne) SetPaddockID(v string) *PaddockRecordUpdateOne {
	_u.mutation.SetPaddockID(v)
	return _u
}

// SetNillablePaddockID sets the "paddock_id" field if the given value is not nil.
func (_u *PaddockRecordUpdateOne) SetNillablePaddockID(v *string) *PaddockRecordUpdateOne {
	if v != nil {
		_u.SetPaddockID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PaddockRecordUpdateOne) SetKind(v paddockrecord.Kind) *PaddockRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PaddockRecordUpdateOne) SetNillableKind(v *paddockrecord.Kind) *PaddockRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *PaddockRecordUpdateOne) SetDate(v time.Time) *PaddockRecordUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PaddockRecordUpdateOne) SetNillableDate(v *time.Time) *PaddockRecordUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *PaddockRecordUpdateOne) SetProduct(v string) *PaddockRecordUpdateOne {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *PaddockRecordUpdateOne) SetNillableProduct(v *string) *PaddockRecordUpdateOne {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// ClearProduct clears the value of the "product" field.
func (_u *PaddockRecordUpdateOne) ClearProduct() *PaddockRecordUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// SetRate sets the "rate" field.
func (_u *PaddockRecordUpdateOne) SetRate(v string) *PaddockRecordUpdateOne {
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *PaddockRecordUpdateOne) SetNillableRate(v *string) *PaddockRecordUpdateOne {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// ClearRate clears the value of the "rate" field.
func (_u *PaddockRecordUpdateOne) ClearRate() *PaddockRecordUpdateOne {
	_u.mutation.ClearRate()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PaddockRecordUpdateOne) SetAmount(v string) *PaddockRecordUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PaddockRecordUpdateOne) SetNillableAmount(v *string) *PaddockRecordUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *PaddockRecordUpdateOne) ClearAmount() *PaddockRecordUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PaddockRecordUpdateOne) SetNotes(v string) *PaddockRecordUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PaddockRecordUpdateOne) SetNillableNotes(v *string) *PaddockRecordUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PaddockRecordUpdateOne) ClearNotes() *PaddockRecordUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the PaddockRecordMutation object of the builder.
func (_u *PaddockRecordUpdateOne) Mutation() *PaddockRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaddockRecordUpdate builder.
func (_u *PaddockRecordUpdateOne) Where(ps ...predicate.PaddockRecord) *PaddockRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaddockRecordUpdateOne) Select(field string, fields ...string) *PaddockRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaddockRecord entity.
func (_u *PaddockRecordUpdateOne) Save(ctx context.Context) (*PaddockRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaddockRecordUpdateOne) SaveX(ctx context.Context) *PaddockRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaddockRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaddockRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaddockRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paddockrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaddockRecordUpdateOne) check() error {
	if v, ok := _u.mutation.PaddockID(); ok {
		if err := paddockrecord.PaddockIDValidator(v); err != nil {
			return &ValidationError{Name: "paddock_id", err: fmt.Errorf(`ent: validator failed for field "PaddockRecord.paddock_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := paddockrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PaddockRecord.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PaddockRecordUpdateOne) sqlSave(ctx context.Context) (_node *PaddockRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paddockrecord.Table, paddockrecord.Columns, sqlgraph.NewFieldSpec(paddockrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaddockRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paddockrecord.FieldID)
		for _, f := range fields {
			if !paddockrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paddockrecord.FieldID {
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
		_spec.SetField(paddockrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(paddockrecord.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(paddockrecord.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PaddockID(); ok {
		_spec.SetField(paddockrecord.FieldPaddockID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(paddockrecord.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(paddockrecord.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(paddockrecord.FieldProduct, field.TypeString, value)
	}
	if _u.mutation.ProductCleared() {
		_spec.ClearField(paddockrecord.FieldProduct, field.TypeString)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(paddockrecord.FieldRate, field.TypeString, value)
	}
	if _u.mutation.RateCleared() {
		_spec.ClearField(paddockrecord.FieldRate, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(paddockrecord.FieldAmount, field.TypeString, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(paddockrecord.FieldAmount, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(paddockrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(paddockrecord.FieldNotes, field.TypeString)
	}
	_node = &PaddockRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paddockrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
