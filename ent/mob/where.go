// Code generated by ent, DO NOT EDIT.

package mob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Mob {
	return predicate.Mob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Mob {
	return predicate.Mob(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldFarmID, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldDeletedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldName, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldCount, v))
}

// AvgWeight applies equality check predicate on the "avg_weight" field. It's identical to AvgWeightEQ.
func AvgWeight(v float64) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldAvgWeight, v))
}

// PaddockID applies equality check predicate on the "paddock_id" field. It's identical to PaddockIDEQ.
func PaddockID(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldPaddockID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldUpdatedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v string) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...string) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...string) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v string) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v string) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v string) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v string) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldFarmID, v))
}

// FarmIDContains applies the Contains predicate on the "farm_id" field.
func FarmIDContains(v string) predicate.Mob {
	return predicate.Mob(sql.FieldContains(FieldFarmID, v))
}

// FarmIDHasPrefix applies the HasPrefix predicate on the "farm_id" field.
func FarmIDHasPrefix(v string) predicate.Mob {
	return predicate.Mob(sql.FieldHasPrefix(FieldFarmID, v))
}

// FarmIDHasSuffix applies the HasSuffix predicate on the "farm_id" field.
func FarmIDHasSuffix(v string) predicate.Mob {
	return predicate.Mob(sql.FieldHasSuffix(FieldFarmID, v))
}

// FarmIDEqualFold applies the EqualFold predicate on the "farm_id" field.
func FarmIDEqualFold(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEqualFold(FieldFarmID, v))
}

// FarmIDContainsFold applies the ContainsFold predicate on the "farm_id" field.
func FarmIDContainsFold(v string) predicate.Mob {
	return predicate.Mob(sql.FieldContainsFold(FieldFarmID, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Mob {
	return predicate.Mob(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Mob {
	return predicate.Mob(sql.FieldNotNull(FieldDeletedAt))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Mob {
	return predicate.Mob(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Mob {
	return predicate.Mob(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Mob {
	return predicate.Mob(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Mob {
	return predicate.Mob(sql.FieldContainsFold(FieldName, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldCount, v))
}

// AvgWeightEQ applies the EQ predicate on the "avg_weight" field.
func AvgWeightEQ(v float64) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldAvgWeight, v))
}

// AvgWeightNEQ applies the NEQ predicate on the "avg_weight" field.
func AvgWeightNEQ(v float64) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldAvgWeight, v))
}

// AvgWeightIn applies the In predicate on the "avg_weight" field.
func AvgWeightIn(vs ...float64) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldAvgWeight, vs...))
}

// AvgWeightNotIn applies the NotIn predicate on the "avg_weight" field.
func AvgWeightNotIn(vs ...float64) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldAvgWeight, vs...))
}

// AvgWeightGT applies the GT predicate on the "avg_weight" field.
func AvgWeightGT(v float64) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldAvgWeight, v))
}

// AvgWeightGTE applies the GTE predicate on the "avg_weight" field.
func AvgWeightGTE(v float64) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldAvgWeight, v))
}

// AvgWeightLT applies the LT predicate on the "avg_weight" field.
func AvgWeightLT(v float64) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldAvgWeight, v))
}

// AvgWeightLTE applies the LTE predicate on the "avg_weight" field.
func AvgWeightLTE(v float64) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldAvgWeight, v))
}

// PaddockIDEQ applies the EQ predicate on the "paddock_id" field.
func PaddockIDEQ(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEQ(FieldPaddockID, v))
}

// PaddockIDNEQ applies the NEQ predicate on the "paddock_id" field.
func PaddockIDNEQ(v string) predicate.Mob {
	return predicate.Mob(sql.FieldNEQ(FieldPaddockID, v))
}

// PaddockIDIn applies the In predicate on the "paddock_id" field.
func PaddockIDIn(vs ...string) predicate.Mob {
	return predicate.Mob(sql.FieldIn(FieldPaddockID, vs...))
}

// PaddockIDNotIn applies the NotIn predicate on the "paddock_id" field.
func PaddockIDNotIn(vs ...string) predicate.Mob {
	return predicate.Mob(sql.FieldNotIn(FieldPaddockID, vs...))
}

// PaddockIDGT applies the GT predicate on the "paddock_id" field.
func PaddockIDGT(v string) predicate.Mob {
	return predicate.Mob(sql.FieldGT(FieldPaddockID, v))
}

// PaddockIDGTE applies the GTE predicate on the "paddock_id" field.
func PaddockIDGTE(v string) predicate.Mob {
	return predicate.Mob(sql.FieldGTE(FieldPaddockID, v))
}

// PaddockIDLT applies the LT predicate on the "paddock_id" field.
func PaddockIDLT(v string) predicate.Mob {
	return predicate.Mob(sql.FieldLT(FieldPaddockID, v))
}

// PaddockIDLTE applies the LTE predicate on the "paddock_id" field.
func PaddockIDLTE(v string) predicate.Mob {
	return predicate.Mob(sql.FieldLTE(FieldPaddockID, v))
}

// PaddockIDContains applies the Contains predicate on the "paddock_id" field.
func PaddockIDContains(v string) predicate.Mob {
	return predicate.Mob(sql.FieldContains(FieldPaddockID, v))
}

// PaddockIDHasPrefix applies the HasPrefix predicate on the "paddock_id" field.
func PaddockIDHasPrefix(v string) predicate.Mob {
	return predicate.Mob(sql.FieldHasPrefix(FieldPaddockID, v))
}

// PaddockIDHasSuffix applies the HasSuffix predicate on the "paddock_id" field.
func PaddockIDHasSuffix(v string) predicate.Mob {
	return predicate.Mob(sql.FieldHasSuffix(FieldPaddockID, v))
}

// PaddockIDIsNil applies the IsNil predicate on the "paddock_id" field.
func PaddockIDIsNil() predicate.Mob {
	return predicate.Mob(sql.FieldIsNull(FieldPaddockID))
}

// PaddockIDNotNil applies the NotNil predicate on the "paddock_id" field.
func PaddockIDNotNil() predicate.Mob {
	return predicate.Mob(sql.FieldNotNull(FieldPaddockID))
}

// PaddockIDEqualFold applies the EqualFold predicate on the "paddock_id" field.
func PaddockIDEqualFold(v string) predicate.Mob {
	return predicate.Mob(sql.FieldEqualFold(FieldPaddockID, v))
}

// PaddockIDContainsFold applies the ContainsFold predicate on the "paddock_id" field.
func PaddockIDContainsFold(v string) predicate.Mob {
	return predicate.Mob(sql.FieldContainsFold(FieldPaddockID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mob) predicate.Mob {
	return predicate.Mob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mob) predicate.Mob {
	return predicate.Mob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mob) predicate.Mob {
	return predicate.Mob(sql.NotPredicates(p))
}
