// Code generated by ent, DO NOT EDIT.

package paddockrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldFarmID, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldDeletedAt, v))
}

// PaddockID applies equality check predicate on the "paddock_id" field. It's identical to PaddockIDEQ.
func PaddockID(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldPaddockID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldDate, v))
}

// Product applies equality check predicate on the "product" field. It's identical to ProductEQ.
func Product(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldProduct, v))
}

// Rate applies equality check predicate on the "rate" field. It's identical to RateEQ.
func Rate(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldRate, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldAmount, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldFarmID, v))
}

// FarmIDContains applies the Contains predicate on the "farm_id" field.
func FarmIDContains(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContains(FieldFarmID, v))
}

// FarmIDHasPrefix applies the HasPrefix predicate on the "farm_id" field.
func FarmIDHasPrefix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasPrefix(FieldFarmID, v))
}

// FarmIDHasSuffix applies the HasSuffix predicate on the "farm_id" field.
func FarmIDHasSuffix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasSuffix(FieldFarmID, v))
}

// FarmIDEqualFold applies the EqualFold predicate on the "farm_id" field.
func FarmIDEqualFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEqualFold(FieldFarmID, v))
}

// FarmIDContainsFold applies the ContainsFold predicate on the "farm_id" field.
func FarmIDContainsFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContainsFold(FieldFarmID, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotNull(FieldDeletedAt))
}

// PaddockIDEQ applies the EQ predicate on the "paddock_id" field.
func PaddockIDEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldPaddockID, v))
}

// PaddockIDNEQ applies the NEQ predicate on the "paddock_id" field.
func PaddockIDNEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldPaddockID, v))
}

// PaddockIDIn applies the In predicate on the "paddock_id" field.
func PaddockIDIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldPaddockID, vs...))
}

// PaddockIDNotIn applies the NotIn predicate on the "paddock_id" field.
func PaddockIDNotIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldPaddockID, vs...))
}

// PaddockIDGT applies the GT predicate on the "paddock_id" field.
func PaddockIDGT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldPaddockID, v))
}

// PaddockIDGTE applies the GTE predicate on the "paddock_id" field.
func PaddockIDGTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldPaddockID, v))
}

// PaddockIDLT applies the LT predicate on the "paddock_id" field.
func PaddockIDLT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldPaddockID, v))
}

// PaddockIDLTE applies the LTE predicate on the "paddock_id" field.
func PaddockIDLTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldPaddockID, v))
}

// PaddockIDContains applies the Contains predicate on the "paddock_id" field.
func PaddockIDContains(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContains(FieldPaddockID, v))
}

// PaddockIDHasPrefix applies the HasPrefix predicate on the "paddock_id" field.
func PaddockIDHasPrefix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasPrefix(FieldPaddockID, v))
}

// PaddockIDHasSuffix applies the HasSuffix predicate on the "paddock_id" field.
func PaddockIDHasSuffix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasSuffix(FieldPaddockID, v))
}

// PaddockIDEqualFold applies the EqualFold predicate on the "paddock_id" field.
func PaddockIDEqualFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEqualFold(FieldPaddockID, v))
}

// PaddockIDContainsFold applies the ContainsFold predicate on the "paddock_id" field.
func PaddockIDContainsFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContainsFold(FieldPaddockID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldKind, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldDate, v))
}

// ProductEQ applies the EQ predicate on the "product" field.
func ProductEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldProduct, v))
}

// ProductNEQ applies the NEQ predicate on the "product" field.
func ProductNEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldProduct, v))
}

// ProductIn applies the In predicate on the "product" field.
func ProductIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldProduct, vs...))
}

// ProductNotIn applies the NotIn predicate on the "product" field.
func ProductNotIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldProduct, vs...))
}

// ProductGT applies the GT predicate on the "product" field.
func ProductGT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldProduct, v))
}

// ProductGTE applies the GTE predicate on the "product" field.
func ProductGTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldProduct, v))
}

// ProductLT applies the LT predicate on the "product" field.
func ProductLT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldProduct, v))
}

// ProductLTE applies the LTE predicate on the "product" field.
func ProductLTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldProduct, v))
}

// ProductContains applies the Contains predicate on the "product" field.
func ProductContains(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContains(FieldProduct, v))
}

// ProductHasPrefix applies the HasPrefix predicate on the "product" field.
func ProductHasPrefix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasPrefix(FieldProduct, v))
}

// ProductHasSuffix applies the HasSuffix predicate on the "product" field.
func ProductHasSuffix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasSuffix(FieldProduct, v))
}

// ProductIsNil applies the IsNil predicate on the "product" field.
func ProductIsNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIsNull(FieldProduct))
}

// ProductNotNil applies the NotNil predicate on the "product" field.
func ProductNotNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotNull(FieldProduct))
}

// ProductEqualFold applies the EqualFold predicate on the "product" field.
func ProductEqualFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEqualFold(FieldProduct, v))
}

// ProductContainsFold applies the ContainsFold predicate on the "product" field.
func ProductContainsFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContainsFold(FieldProduct, v))
}

// RateEQ applies the EQ predicate on the "rate" field.
func RateEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldRate, v))
}

// RateNEQ applies the NEQ predicate on the "rate" field.
func RateNEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldRate, v))
}

// RateIn applies the In predicate on the "rate" field.
func RateIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldRate, vs...))
}

// RateNotIn applies the NotIn predicate on the "rate" field.
func RateNotIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldRate, vs...))
}

// RateGT applies the GT predicate on the "rate" field.
func RateGT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldRate, v))
}

// RateGTE applies the GTE predicate on the "rate" field.
func RateGTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldRate, v))
}

// RateLT applies the LT predicate on the "rate" field.
func RateLT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldRate, v))
}

// RateLTE applies the LTE predicate on the "rate" field.
func RateLTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldRate, v))
}

// RateContains applies the Contains predicate on the "rate" field.
func RateContains(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContains(FieldRate, v))
}

// RateHasPrefix applies the HasPrefix predicate on the "rate" field.
func RateHasPrefix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasPrefix(FieldRate, v))
}

// RateHasSuffix applies the HasSuffix predicate on the "rate" field.
func RateHasSuffix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasSuffix(FieldRate, v))
}

// RateIsNil applies the IsNil predicate on the "rate" field.
func RateIsNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIsNull(FieldRate))
}

// RateNotNil applies the NotNil predicate on the "rate" field.
func RateNotNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotNull(FieldRate))
}

// RateEqualFold applies the EqualFold predicate on the "rate" field.
func RateEqualFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEqualFold(FieldRate, v))
}

// RateContainsFold applies the ContainsFold predicate on the "rate" field.
func RateContainsFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContainsFold(FieldRate, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldAmount, v))
}

// AmountContains applies the Contains predicate on the "amount" field.
func AmountContains(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContains(FieldAmount, v))
}

// AmountHasPrefix applies the HasPrefix predicate on the "amount" field.
func AmountHasPrefix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasPrefix(FieldAmount, v))
}

// AmountHasSuffix applies the HasSuffix predicate on the "amount" field.
func AmountHasSuffix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasSuffix(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotNull(FieldAmount))
}

// AmountEqualFold applies the EqualFold predicate on the "amount" field.
func AmountEqualFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEqualFold(FieldAmount, v))
}

// AmountContainsFold applies the ContainsFold predicate on the "amount" field.
func AmountContainsFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContainsFold(FieldAmount, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaddockRecord) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaddockRecord) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaddockRecord) predicate.PaddockRecord {
	return predicate.PaddockRecord(sql.NotPredicates(p))
}
