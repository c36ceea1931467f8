// Code generated by ent, DO NOT EDIT.

package changelogentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the changelogentry type in the database.
	Label = "change_log_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFarmID holds the string denoting the farm_id field in the database.
	FieldFarmID = "farm_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldOp holds the string denoting the op field in the database.
	FieldOp = "op"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// Table holds the table name of the changelogentry in the database.
	Table = "change_log_entries"
)

// Columns holds all SQL columns for changelogentry fields.
var Columns = []string{
	FieldID,
	FieldFarmID,
	FieldEntityType,
	FieldEntityID,
	FieldOp,
	FieldPayload,
	FieldSeq,
	FieldRecordedAt,
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
	// EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	EntityTypeValidator func(string) error
	// EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	EntityIDValidator func(string) error
	// SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	SeqValidator func(int64) error
	// DefaultRecordedAt holds the default value on creation for the "recorded_at" field.
	DefaultRecordedAt func() time.Time
)

// Op defines the type for the "op" enum field.
type Op string

// Op values.
const (
	OpCREATE Op = "CREATE"
	OpUPDATE Op = "UPDATE"
)

func (_op Op) String() string {
	return string(_op)
}

// OpValidator is a validator for the "op" field enum values. It is called by the builders before save.
func OpValidator(_op Op) error {
	switch _op {
	case OpCREATE, OpUPDATE:
		return nil
	default:
		return fmt.Errorf("changelogentry: invalid enum value for op field: %q", _op)
	}
}

// OrderOption defines the ordering options for the ChangeLogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFarmID orders the results by the farm_id field.
func ByFarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByOp orders the results by the op field.
func ByOp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOp, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}
