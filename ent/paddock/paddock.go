// Code generated by ent, DO NOT EDIT.

package paddock

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the paddock type in the database.
	Label = "paddock"
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
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAreaHa holds the string denoting the area_ha field in the database.
	FieldAreaHa = "area_ha"
	// FieldPolygonGeojson holds the string denoting the polygon_geojson field in the database.
	FieldPolygonGeojson = "polygon_geojson"
	// FieldCropType holds the string denoting the crop_type field in the database.
	FieldCropType = "crop_type"
	// FieldCropColor holds the string denoting the crop_color field in the database.
	FieldCropColor = "crop_color"
	// Table holds the table name of the paddock in the database.
	Table = "paddocks"
)

// Columns holds all SQL columns for paddock fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFarmID,
	FieldDeletedAt,
	FieldName,
	FieldAreaHa,
	FieldPolygonGeojson,
	FieldCropType,
	FieldCropColor,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultAreaHa holds the default value on creation for the "area_ha" field.
	DefaultAreaHa float64
	// DefaultPolygonGeojson holds the default value on creation for the "polygon_geojson" field.
	DefaultPolygonGeojson string
	// CropColorValidator is a validator for the "crop_color" field. It is called by the builders before save.
	CropColorValidator func(string) error
)

// OrderOption defines the ordering options for the Paddock queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAreaHa orders the results by the area_ha field.
func ByAreaHa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAreaHa, opts...).ToFunc()
}

// ByPolygonGeojson orders the results by the polygon_geojson field.
func ByPolygonGeojson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolygonGeojson, opts...).ToFunc()
}

// ByCropType orders the results by the crop_type field.
func ByCropType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCropType, opts...).ToFunc()
}

// ByCropColor orders the results by the crop_color field.
func ByCropColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCropColor, opts...).ToFunc()
}
