// Code generated by ent, DO NOT EDIT.

package stockrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldFarmID, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldDeletedAt, v))
}

// MobID applies equality check predicate on the "mob_id" field. It's identical to MobIDEQ.
func MobID(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldMobID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldDate, v))
}

// Product applies equality check predicate on the "product" field. It's identical to ProductEQ.
func Product(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldProduct, v))
}

// Rate applies equality check predicate on the "rate" field. It's identical to RateEQ.
func Rate(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldRate, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldCount, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldFarmID, v))
}

// FarmIDContains applies the Contains predicate on the "farm_id" field.
func FarmIDContains(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContains(FieldFarmID, v))
}

// FarmIDHasPrefix applies the HasPrefix predicate on the "farm_id" field.
func FarmIDHasPrefix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasPrefix(FieldFarmID, v))
}

// FarmIDHasSuffix applies the HasSuffix predicate on the "farm_id" field.
func FarmIDHasSuffix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasSuffix(FieldFarmID, v))
}

// FarmIDEqualFold applies the EqualFold predicate on the "farm_id" field.
func FarmIDEqualFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEqualFold(FieldFarmID, v))
}

// FarmIDContainsFold applies the ContainsFold predicate on the "farm_id" field.
func FarmIDContainsFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContainsFold(FieldFarmID, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotNull(FieldDeletedAt))
}

// MobIDEQ applies the EQ predicate on the "mob_id" field.
func MobIDEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldMobID, v))
}

// MobIDNEQ applies the NEQ predicate on the "mob_id" field.
func MobIDNEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldMobID, v))
}

// MobIDIn applies the In predicate on the "mob_id" field.
func MobIDIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldMobID, vs...))
}

// MobIDNotIn applies the NotIn predicate on the "mob_id" field.
func MobIDNotIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldMobID, vs...))
}

// MobIDGT applies the GT predicate on the "mob_id" field.
func MobIDGT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldMobID, v))
}

// MobIDGTE applies the GTE predicate on the "mob_id" field.
func MobIDGTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldMobID, v))
}

// MobIDLT applies the LT predicate on the "mob_id" field.
func MobIDLT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldMobID, v))
}

// MobIDLTE applies the LTE predicate on the "mob_id" field.
func MobIDLTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldMobID, v))
}

// MobIDContains applies the Contains predicate on the "mob_id" field.
func MobIDContains(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContains(FieldMobID, v))
}

// MobIDHasPrefix applies the HasPrefix predicate on the "mob_id" field.
func MobIDHasPrefix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasPrefix(FieldMobID, v))
}

// MobIDHasSuffix applies the HasSuffix predicate on the "mob_id" field.
func MobIDHasSuffix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasSuffix(FieldMobID, v))
}

// MobIDEqualFold applies the EqualFold predicate on the "mob_id" field.
func MobIDEqualFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEqualFold(FieldMobID, v))
}

// MobIDContainsFold applies the ContainsFold predicate on the "mob_id" field.
func MobIDContainsFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContainsFold(FieldMobID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldKind, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldDate, v))
}

// ProductEQ applies the EQ predicate on the "product" field.
func ProductEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldProduct, v))
}

// ProductNEQ applies the NEQ predicate on the "product" field.
func ProductNEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldProduct, v))
}

// ProductIn applies the In predicate on the "product" field.
func ProductIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldProduct, vs...))
}

// ProductNotIn applies the NotIn predicate on the "product" field.
func ProductNotIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldProduct, vs...))
}

// ProductGT applies the GT predicate on the "product" field.
func ProductGT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldProduct, v))
}

// ProductGTE applies the GTE predicate on the "product" field.
func ProductGTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldProduct, v))
}

// ProductLT applies the LT predicate on the "product" field.
func ProductLT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldProduct, v))
}

// ProductLTE applies the LTE predicate on the "product" field.
func ProductLTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldProduct, v))
}

// ProductContains applies the Contains predicate on the "product" field.
func ProductContains(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContains(FieldProduct, v))
}

// ProductHasPrefix applies the HasPrefix predicate on the "product" field.
func ProductHasPrefix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasPrefix(FieldProduct, v))
}

// ProductHasSuffix applies the HasSuffix predicate on the "product" field.
func ProductHasSuffix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasSuffix(FieldProduct, v))
}

// ProductIsNil applies the IsNil predicate on the "product" field.
func ProductIsNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIsNull(FieldProduct))
}

// ProductNotNil applies the NotNil predicate on the "product" field.
func ProductNotNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotNull(FieldProduct))
}

// ProductEqualFold applies the EqualFold predicate on the "product" field.
func ProductEqualFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEqualFold(FieldProduct, v))
}

// ProductContainsFold applies the ContainsFold predicate on the "product" field.
func ProductContainsFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContainsFold(FieldProduct, v))
}

// RateEQ applies the EQ predicate on the "rate" field.
func RateEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldRate, v))
}

// RateNEQ applies the NEQ predicate on the "rate" field.
func RateNEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldRate, v))
}

// RateIn applies the In predicate on the "rate" field.
func RateIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldRate, vs...))
}

// RateNotIn applies the NotIn predicate on the "rate" field.
func RateNotIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldRate, vs...))
}

// RateGT applies the GT predicate on the "rate" field.
func RateGT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldRate, v))
}

// RateGTE applies the GTE predicate on the "rate" field.
func RateGTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldRate, v))
}

// RateLT applies the LT predicate on the "rate" field.
func RateLT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldRate, v))
}

// RateLTE applies the LTE predicate on the "rate" field.
func RateLTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldRate, v))
}

// RateContains applies the Contains predicate on the "rate" field.
func RateContains(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContains(FieldRate, v))
}

// RateHasPrefix applies the HasPrefix predicate on the "rate" field.
func RateHasPrefix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasPrefix(FieldRate, v))
}

// RateHasSuffix applies the HasSuffix predicate on the "rate" field.
func RateHasSuffix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasSuffix(FieldRate, v))
}

// RateIsNil applies the IsNil predicate on the "rate" field.
func RateIsNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIsNull(FieldRate))
}

// RateNotNil applies the NotNil predicate on the "rate" field.
func RateNotNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotNull(FieldRate))
}

// RateEqualFold applies the EqualFold predicate on the "rate" field.
func RateEqualFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEqualFold(FieldRate, v))
}

// RateContainsFold applies the ContainsFold predicate on the "rate" field.
func RateContainsFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContainsFold(FieldRate, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldCount, v))
}

// CountIsNil applies the IsNil predicate on the "count" field.
func CountIsNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIsNull(FieldCount))
}

// CountNotNil applies the NotNil predicate on the "count" field.
func CountNotNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotNull(FieldCount))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.StockRecord {
	return predicate.StockRecord(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.StockRecord {
	return predicate.StockRecord(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StockRecord) predicate.StockRecord {
	return predicate.StockRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StockRecord) predicate.StockRecord {
	return predicate.StockRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StockRecord) predicate.StockRecord {
	return predicate.StockRecord(sql.NotPredicates(p))
}
