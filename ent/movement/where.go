// Code generated by ent, DO NOT EDIT.

package movement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Movement {
	return predicate.Movement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Movement {
	return predicate.Movement(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldFarmID, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldDeletedAt, v))
}

// MobID applies equality check predicate on the "mob_id" field. It's identical to MobIDEQ.
func MobID(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldMobID, v))
}

// FromPaddockID applies equality check predicate on the "from_paddock_id" field. It's identical to FromPaddockIDEQ.
func FromPaddockID(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldFromPaddockID, v))
}

// ToPaddockID applies equality check predicate on the "to_paddock_id" field. It's identical to ToPaddockIDEQ.
func ToPaddockID(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldToPaddockID, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldOccurredAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldUpdatedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v string) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...string) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...string) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v string) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v string) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v string) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v string) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldFarmID, v))
}

// FarmIDContains applies the Contains predicate on the "farm_id" field.
func FarmIDContains(v string) predicate.Movement {
	return predicate.Movement(sql.FieldContains(FieldFarmID, v))
}

// FarmIDHasPrefix applies the HasPrefix predicate on the "farm_id" field.
func FarmIDHasPrefix(v string) predicate.Movement {
	return predicate.Movement(sql.FieldHasPrefix(FieldFarmID, v))
}

// FarmIDHasSuffix applies the HasSuffix predicate on the "farm_id" field.
func FarmIDHasSuffix(v string) predicate.Movement {
	return predicate.Movement(sql.FieldHasSuffix(FieldFarmID, v))
}

// FarmIDEqualFold applies the EqualFold predicate on the "farm_id" field.
func FarmIDEqualFold(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEqualFold(FieldFarmID, v))
}

// FarmIDContainsFold applies the ContainsFold predicate on the "farm_id" field.
func FarmIDContainsFold(v string) predicate.Movement {
	return predicate.Movement(sql.FieldContainsFold(FieldFarmID, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Movement {
	return predicate.Movement(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Movement {
	return predicate.Movement(sql.FieldNotNull(FieldDeletedAt))
}

// MobIDEQ applies the EQ predicate on the "mob_id" field.
func MobIDEQ(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldMobID, v))
}

// MobIDNEQ applies the NEQ predicate on the "mob_id" field.
func MobIDNEQ(v string) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldMobID, v))
}

// MobIDIn applies the In predicate on the "mob_id" field.
func MobIDIn(vs ...string) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldMobID, vs...))
}

// MobIDNotIn applies the NotIn predicate on the "mob_id" field.
func MobIDNotIn(vs ...string) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldMobID, vs...))
}

// MobIDGT applies the GT predicate on the "mob_id" field.
func MobIDGT(v string) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldMobID, v))
}

// MobIDGTE applies the GTE predicate on the "mob_id" field.
func MobIDGTE(v string) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldMobID, v))
}

// MobIDLT applies the LT predicate on the "mob_id" field.
func MobIDLT(v string) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldMobID, v))
}

// MobIDLTE applies the LTE predicate on the "mob_id" field.
func MobIDLTE(v string) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldMobID, v))
}

// MobIDContains applies the Contains predicate on the "mob_id" field.
func MobIDContains(v string) predicate.Movement {
	return predicate.Movement(sql.FieldContains(FieldMobID, v))
}

// MobIDHasPrefix applies the HasPrefix predicate on the "mob_id" field.
func MobIDHasPrefix(v string) predicate.Movement {
	return predicate.Movement(sql.FieldHasPrefix(FieldMobID, v))
}

// MobIDHasSuffix applies the HasSuffix predicate on the "mob_id" field.
func MobIDHasSuffix(v string) predicate.Movement {
	return predicate.Movement(sql.FieldHasSuffix(FieldMobID, v))
}

// MobIDEqualFold applies the EqualFold predicate on the "mob_id" field.
func MobIDEqualFold(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEqualFold(FieldMobID, v))
}

// MobIDContainsFold applies the ContainsFold predicate on the "mob_id" field.
func MobIDContainsFold(v string) predicate.Movement {
	return predicate.Movement(sql.FieldContainsFold(FieldMobID, v))
}

// FromPaddockIDEQ applies the EQ predicate on the "from_paddock_id" field.
func FromPaddockIDEQ(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldFromPaddockID, v))
}

// FromPaddockIDNEQ applies the NEQ predicate on the "from_paddock_id" field.
func FromPaddockIDNEQ(v string) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldFromPaddockID, v))
}

// FromPaddockIDIn applies the In predicate on the "from_paddock_id" field.
func FromPaddockIDIn(vs ...string) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldFromPaddockID, vs...))
}

// FromPaddockIDNotIn applies the NotIn predicate on the "from_paddock_id" field.
func FromPaddockIDNotIn(vs ...string) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldFromPaddockID, vs...))
}

// FromPaddockIDGT applies the GT predicate on the "from_paddock_id" field.
func FromPaddockIDGT(v string) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldFromPaddockID, v))
}

// FromPaddockIDGTE applies the GTE predicate on the "from_paddock_id" field.
func FromPaddockIDGTE(v string) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldFromPaddockID, v))
}

// FromPaddockIDLT applies the LT predicate on the "from_paddock_id" field.
func FromPaddockIDLT(v string) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldFromPaddockID, v))
}

// FromPaddockIDLTE applies the LTE predicate on the "from_paddock_id" field.
func FromPaddockIDLTE(v string) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldFromPaddockID, v))
}

// FromPaddockIDContains applies the Contains predicate on the "from_paddock_id" field.
func FromPaddockIDContains(v string) predicate.Movement {
	return predicate.Movement(sql.FieldContains(FieldFromPaddockID, v))
}

// FromPaddockIDHasPrefix applies the HasPrefix predicate on the "from_paddock_id" field.
func FromPaddockIDHasPrefix(v string) predicate.Movement {
	return predicate.Movement(sql.FieldHasPrefix(FieldFromPaddockID, v))
}

// FromPaddockIDHasSuffix applies the HasSuffix predicate on the "from_paddock_id" field.
func FromPaddockIDHasSuffix(v string) predicate.Movement {
	return predicate.Movement(sql.FieldHasSuffix(FieldFromPaddockID, v))
}

// FromPaddockIDIsNil applies the IsNil predicate on the "from_paddock_id" field.
func FromPaddockIDIsNil() predicate.Movement {
	return predicate.Movement(sql.FieldIsNull(FieldFromPaddockID))
}

// FromPaddockIDNotNil applies the NotNil predicate on the "from_paddock_id" field.
func FromPaddockIDNotNil() predicate.Movement {
	return predicate.Movement(sql.FieldNotNull(FieldFromPaddockID))
}

// FromPaddockIDEqualFold applies the EqualFold predicate on the "from_paddock_id" field.
func FromPaddockIDEqualFold(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEqualFold(FieldFromPaddockID, v))
}

// FromPaddockIDContainsFold applies the ContainsFold predicate on the "from_paddock_id" field.
func FromPaddockIDContainsFold(v string) predicate.Movement {
	return predicate.Movement(sql.FieldContainsFold(FieldFromPaddockID, v))
}

// ToPaddockIDEQ applies the EQ predicate on the "to_paddock_id" field.
func ToPaddockIDEQ(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldToPaddockID, v))
}

// ToPaddockIDNEQ applies the NEQ predicate on the "to_paddock_id" field.
func ToPaddockIDNEQ(v string) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldToPaddockID, v))
}

// ToPaddockIDIn applies the In predicate on the "to_paddock_id" field.
func ToPaddockIDIn(vs ...string) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldToPaddockID, vs...))
}

// ToPaddockIDNotIn applies the NotIn predicate on the "to_paddock_id" field.
func ToPaddockIDNotIn(vs ...string) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldToPaddockID, vs...))
}

// ToPaddockIDGT applies the GT predicate on the "to_paddock_id" field.
func ToPaddockIDGT(v string) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldToPaddockID, v))
}

// ToPaddockIDGTE applies the GTE predicate on the "to_paddock_id" field.
func ToPaddockIDGTE(v string) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldToPaddockID, v))
}

// ToPaddockIDLT applies the LT predicate on the "to_paddock_id" field.
func ToPaddockIDLT(v string) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldToPaddockID, v))
}

// ToPaddockIDLTE applies the LTE predicate on the "to_paddock_id" field.
func ToPaddockIDLTE(v string) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldToPaddockID, v))
}

// ToPaddockIDContains applies the Contains predicate on the "to_paddock_id" field.
func ToPaddockIDContains(v string) predicate.Movement {
	return predicate.Movement(sql.FieldContains(FieldToPaddockID, v))
}

// ToPaddockIDHasPrefix applies the HasPrefix predicate on the "to_paddock_id" field.
func ToPaddockIDHasPrefix(v string) predicate.Movement {
	return predicate.Movement(sql.FieldHasPrefix(FieldToPaddockID, v))
}

// ToPaddockIDHasSuffix applies the HasSuffix predicate on the "to_paddock_id" field.
func ToPaddockIDHasSuffix(v string) predicate.Movement {
	return predicate.Movement(sql.FieldHasSuffix(FieldToPaddockID, v))
}

// ToPaddockIDEqualFold applies the EqualFold predicate on the "to_paddock_id" field.
func ToPaddockIDEqualFold(v string) predicate.Movement {
	return predicate.Movement(sql.FieldEqualFold(FieldToPaddockID, v))
}

// ToPaddockIDContainsFold applies the ContainsFold predicate on the "to_paddock_id" field.
func ToPaddockIDContainsFold(v string) predicate.Movement {
	return predicate.Movement(sql.FieldContainsFold(FieldToPaddockID, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.Movement {
	return predicate.Movement(sql.FieldLTE(FieldOccurredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Movement) predicate.Movement {
	return predicate.Movement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Movement) predicate.Movement {
	return predicate.Movement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Movement) predicate.Movement {
	return predicate.Movement(sql.NotPredicates(p))
}
