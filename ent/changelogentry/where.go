// Code generated by ent, DO NOT EDIT.

package changelogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLTE(FieldID, id))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldFarmID, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldEntityType, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldEntityID, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldPayload, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldSeq, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldRecordedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLTE(FieldFarmID, v))
}

// FarmIDContains applies the Contains predicate on the "farm_id" field.
func FarmIDContains(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldContains(FieldFarmID, v))
}

// FarmIDHasPrefix applies the HasPrefix predicate on the "farm_id" field.
func FarmIDHasPrefix(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldHasPrefix(FieldFarmID, v))
}

// FarmIDHasSuffix applies the HasSuffix predicate on the "farm_id" field.
func FarmIDHasSuffix(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldHasSuffix(FieldFarmID, v))
}

// FarmIDEqualFold applies the EqualFold predicate on the "farm_id" field.
func FarmIDEqualFold(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEqualFold(FieldFarmID, v))
}

// FarmIDContainsFold applies the ContainsFold predicate on the "farm_id" field.
func FarmIDContainsFold(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldContainsFold(FieldFarmID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldContainsFold(FieldEntityType, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldContainsFold(FieldEntityID, v))
}

// OpEQ applies the EQ predicate on the "op" field.
func OpEQ(v Op) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldOp, v))
}

// OpNEQ applies the NEQ predicate on the "op" field.
func OpNEQ(v Op) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNEQ(FieldOp, v))
}

// OpIn applies the In predicate on the "op" field.
func OpIn(vs ...Op) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldIn(FieldOp, vs...))
}

// OpNotIn applies the NotIn predicate on the "op" field.
func OpNotIn(vs ...Op) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNotIn(FieldOp, vs...))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLTE(FieldPayload, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLTE(FieldSeq, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.FieldLTE(FieldRecordedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChangeLogEntry) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChangeLogEntry) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChangeLogEntry) predicate.ChangeLogEntry {
	return predicate.ChangeLogEntry(sql.NotPredicates(p))
}
