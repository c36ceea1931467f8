// Code generated by ent, DO NOT EDIT.

package farmsequence

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the farmsequence type in the database.
	Label = "farm_sequence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFarmID holds the string denoting the farm_id field in the database.
	FieldFarmID = "farm_id"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// Table holds the table name of the farmsequence in the database.
	Table = "farm_sequences"
)

// Columns holds all SQL columns for farmsequence fields.
var Columns = []string{
	FieldID,
	FieldFarmID,
	FieldValue,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	FarmIDValidator func(string) error
	// DefaultValue holds the default value on creation for the "value" field.
	DefaultValue int64
	// ValueValidator is a validator for the "value" field. It is called by the builders before save.
	ValueValidator func(int64) error
)

// OrderOption defines the ordering options for the FarmSequence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFarmID orders the results by the farm_id field.
func ByFarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmID, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}
