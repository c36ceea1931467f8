// Code generated by ent, DO NOT EDIT.

package movement

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the movement type in the database.
	Label = "movement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFarmID holds the string denoting the farm_id field in the database.
	FieldFarmID = "farm_id"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldMobID holds the string denoting the mob_id field in the database.
	FieldMobID = "mob_id"
	// FieldFromPaddockID holds the string denoting the from_paddock_id field in the database.
	FieldFromPaddockID = "from_paddock_id"
	// FieldToPaddockID holds the string denoting the to_paddock_id field in the database.
	FieldToPaddockID = "to_paddock_id"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// Table holds the table name of the movement in the database.
	Table = "movements"
)

// Columns holds all SQL columns for movement fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFarmID,
	FieldDeletedAt,
	FieldMobID,
	FieldFromPaddockID,
	FieldToPaddockID,
	FieldOccurredAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// FarmIDValidator is a validator for the "farm_id" field. It is called by the builders before save.
	FarmIDValidator func(string) error
	// MobIDValidator is a validator for the "mob_id" field. It is called by the builders before save.
	MobIDValidator func(string) error
	// ToPaddockIDValidator is a validator for the "to_paddock_id" field. It is called by the builders before save.
	ToPaddockIDValidator func(string) error
	// DefaultOccurredAt holds the default value on creation for the "occurred_at" field.
	DefaultOccurredAt func() time.Time
)

// OrderOption defines the ordering options for the Movement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFarmID orders the results by the farm_id field.
func ByFarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmID, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByMobID orders the results by the mob_id field.
func ByMobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMobID, opts...).ToFunc()
}

// ByFromPaddockID orders the results by the from_paddock_id field.
func ByFromPaddockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromPaddockID, opts...).ToFunc()
}

// ByToPaddockID orders the results by the to_paddock_id field.
func ByToPaddockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToPaddockID, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}
