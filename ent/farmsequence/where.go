// Code generated by ent, DO NOT EDIT.

package farmsequence

import (
	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldLTE(FieldID, id))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldEQ(FieldFarmID, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldEQ(FieldValue, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldLTE(FieldFarmID, v))
}

// FarmIDContains applies the Contains predicate on the "farm_id" field.
func FarmIDContains(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldContains(FieldFarmID, v))
}

// FarmIDHasPrefix applies the HasPrefix predicate on the "farm_id" field.
func FarmIDHasPrefix(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldHasPrefix(FieldFarmID, v))
}

// FarmIDHasSuffix applies the HasSuffix predicate on the "farm_id" field.
func FarmIDHasSuffix(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldHasSuffix(FieldFarmID, v))
}

// FarmIDEqualFold applies the EqualFold predicate on the "farm_id" field.
func FarmIDEqualFold(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldEqualFold(FieldFarmID, v))
}

// FarmIDContainsFold applies the ContainsFold predicate on the "farm_id" field.
func FarmIDContainsFold(v string) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldContainsFold(FieldFarmID, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v int64) predicate.FarmSequence {
	return predicate.FarmSequence(sql.FieldLTE(FieldValue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FarmSequence) predicate.FarmSequence {
	return predicate.FarmSequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FarmSequence) predicate.FarmSequence {
	return predicate.FarmSequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FarmSequence) predicate.FarmSequence {
	return predicate.FarmSequence(sql.NotPredicates(p))
}
