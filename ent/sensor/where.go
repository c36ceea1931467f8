// Code generated by ent, DO NOT EDIT.

package sensor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldFarmID, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldDeletedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldName, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldType, v))
}

// PaddockID applies equality check predicate on the "paddock_id" field. It's identical to PaddockIDEQ.
func PaddockID(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldPaddockID, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldLastSeen, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldUpdatedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldFarmID, v))
}

// FarmIDContains applies the Contains predicate on the "farm_id" field.
func FarmIDContains(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContains(FieldFarmID, v))
}

// FarmIDHasPrefix applies the HasPrefix predicate on the "farm_id" field.
func FarmIDHasPrefix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasPrefix(FieldFarmID, v))
}

// FarmIDHasSuffix applies the HasSuffix predicate on the "farm_id" field.
func FarmIDHasSuffix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasSuffix(FieldFarmID, v))
}

// FarmIDEqualFold applies the EqualFold predicate on the "farm_id" field.
func FarmIDEqualFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldFarmID, v))
}

// FarmIDContainsFold applies the ContainsFold predicate on the "farm_id" field.
func FarmIDContainsFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldFarmID, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldNotNull(FieldDeletedAt))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldName, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldType, v))
}

// PaddockIDEQ applies the EQ predicate on the "paddock_id" field.
func PaddockIDEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldPaddockID, v))
}

// PaddockIDNEQ applies the NEQ predicate on the "paddock_id" field.
func PaddockIDNEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldPaddockID, v))
}

// PaddockIDIn applies the In predicate on the "paddock_id" field.
func PaddockIDIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldPaddockID, vs...))
}

// PaddockIDNotIn applies the NotIn predicate on the "paddock_id" field.
func PaddockIDNotIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldPaddockID, vs...))
}

// PaddockIDGT applies the GT predicate on the "paddock_id" field.
func PaddockIDGT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldPaddockID, v))
}

// PaddockIDGTE applies the GTE predicate on the "paddock_id" field.
func PaddockIDGTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldPaddockID, v))
}

// PaddockIDLT applies the LT predicate on the "paddock_id" field.
func PaddockIDLT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldPaddockID, v))
}

// PaddockIDLTE applies the LTE predicate on the "paddock_id" field.
func PaddockIDLTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldPaddockID, v))
}

// PaddockIDContains applies the Contains predicate on the "paddock_id" field.
func PaddockIDContains(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContains(FieldPaddockID, v))
}

// PaddockIDHasPrefix applies the HasPrefix predicate on the "paddock_id" field.
func PaddockIDHasPrefix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasPrefix(FieldPaddockID, v))
}

// PaddockIDHasSuffix applies the HasSuffix predicate on the "paddock_id" field.
func PaddockIDHasSuffix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasSuffix(FieldPaddockID, v))
}

// PaddockIDIsNil applies the IsNil predicate on the "paddock_id" field.
func PaddockIDIsNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldIsNull(FieldPaddockID))
}

// PaddockIDNotNil applies the NotNil predicate on the "paddock_id" field.
func PaddockIDNotNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldNotNull(FieldPaddockID))
}

// PaddockIDEqualFold applies the EqualFold predicate on the "paddock_id" field.
func PaddockIDEqualFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldPaddockID, v))
}

// PaddockIDContainsFold applies the ContainsFold predicate on the "paddock_id" field.
func PaddockIDContainsFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldPaddockID, v))
}

// LastValueIsNil applies the IsNil predicate on the "last_value" field.
func LastValueIsNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldIsNull(FieldLastValue))
}

// LastValueNotNil applies the NotNil predicate on the "last_value" field.
func LastValueNotNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldNotNull(FieldLastValue))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldLastSeen, v))
}

// LastSeenIsNil applies the IsNil predicate on the "last_seen" field.
func LastSeenIsNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldIsNull(FieldLastSeen))
}

// LastSeenNotNil applies the NotNil predicate on the "last_seen" field.
func LastSeenNotNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldNotNull(FieldLastSeen))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sensor) predicate.Sensor {
	return predicate.Sensor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sensor) predicate.Sensor {
	return predicate.Sensor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sensor) predicate.Sensor {
	return predicate.Sensor(sql.NotPredicates(p))
}
