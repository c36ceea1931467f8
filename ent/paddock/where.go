// Code generated by ent, DO NOT EDIT.

package paddock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldFarmID, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldDeletedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldName, v))
}

// AreaHa applies equality check predicate on the "area_ha" field. It's identical to AreaHaEQ.
func AreaHa(v float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldAreaHa, v))
}

// PolygonGeojson applies equality check predicate on the "polygon_geojson" field. It's identical to PolygonGeojsonEQ.
func PolygonGeojson(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldPolygonGeojson, v))
}

// CropType applies equality check predicate on the "crop_type" field. It's identical to CropTypeEQ.
func CropType(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldCropType, v))
}

// CropColor applies equality check predicate on the "crop_color" field. It's identical to CropColorEQ.
func CropColor(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldCropColor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldUpdatedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldFarmID, v))
}

// FarmIDContains applies the Contains predicate on the "farm_id" field.
func FarmIDContains(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContains(FieldFarmID, v))
}

// FarmIDHasPrefix applies the HasPrefix predicate on the "farm_id" field.
func FarmIDHasPrefix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasPrefix(FieldFarmID, v))
}

// FarmIDHasSuffix applies the HasSuffix predicate on the "farm_id" field.
func FarmIDHasSuffix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasSuffix(FieldFarmID, v))
}

// FarmIDEqualFold applies the EqualFold predicate on the "farm_id" field.
func FarmIDEqualFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEqualFold(FieldFarmID, v))
}

// FarmIDContainsFold applies the ContainsFold predicate on the "farm_id" field.
func FarmIDContainsFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContainsFold(FieldFarmID, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Paddock {
	return predicate.Paddock(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Paddock {
	return predicate.Paddock(sql.FieldNotNull(FieldDeletedAt))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContainsFold(FieldName, v))
}

// AreaHaEQ applies the EQ predicate on the "area_ha" field.
func AreaHaEQ(v float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldAreaHa, v))
}

// AreaHaNEQ applies the NEQ predicate on the "area_ha" field.
func AreaHaNEQ(v float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldAreaHa, v))
}

// AreaHaIn applies the In predicate on the "area_ha" field.
func AreaHaIn(vs ...float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldAreaHa, vs...))
}

// AreaHaNotIn applies the NotIn predicate on the "area_ha" field.
func AreaHaNotIn(vs ...float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldAreaHa, vs...))
}

// AreaHaGT applies the GT predicate on the "area_ha" field.
func AreaHaGT(v float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldAreaHa, v))
}

// AreaHaGTE applies the GTE predicate on the "area_ha" field.
func AreaHaGTE(v float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldAreaHa, v))
}

// AreaHaLT applies the LT predicate on the "area_ha" field.
func AreaHaLT(v float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldAreaHa, v))
}

// AreaHaLTE applies the LTE predicate on the "area_ha" field.
func AreaHaLTE(v float64) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldAreaHa, v))
}

// PolygonGeojsonEQ applies the EQ predicate on the "polygon_geojson" field.
func PolygonGeojsonEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldPolygonGeojson, v))
}

// PolygonGeojsonNEQ applies the NEQ predicate on the "polygon_geojson" field.
func PolygonGeojsonNEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldPolygonGeojson, v))
}

// PolygonGeojsonIn applies the In predicate on the "polygon_geojson" field.
func PolygonGeojsonIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldPolygonGeojson, vs...))
}

// PolygonGeojsonNotIn applies the NotIn predicate on the "polygon_geojson" field.
func PolygonGeojsonNotIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldPolygonGeojson, vs...))
}

// PolygonGeojsonGT applies the GT predicate on the "polygon_geojson" field.
func PolygonGeojsonGT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldPolygonGeojson, v))
}

// PolygonGeojsonGTE applies the GTE predicate on the "polygon_geojson" field.
func PolygonGeojsonGTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldPolygonGeojson, v))
}

// PolygonGeojsonLT applies the LT predicate on the "polygon_geojson" field.
func PolygonGeojsonLT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldPolygonGeojson, v))
}

// PolygonGeojsonLTE applies the LTE predicate on the "polygon_geojson" field.
func PolygonGeojsonLTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldPolygonGeojson, v))
}

// PolygonGeojsonContains applies the Contains predicate on the "polygon_geojson" field.
func PolygonGeojsonContains(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContains(FieldPolygonGeojson, v))
}

// PolygonGeojsonHasPrefix applies the HasPrefix predicate on the "polygon_geojson" field.
func PolygonGeojsonHasPrefix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasPrefix(FieldPolygonGeojson, v))
}

// PolygonGeojsonHasSuffix applies the HasSuffix predicate on the "polygon_geojson" field.
func PolygonGeojsonHasSuffix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasSuffix(FieldPolygonGeojson, v))
}

// PolygonGeojsonEqualFold applies the EqualFold predicate on the "polygon_geojson" field.
func PolygonGeojsonEqualFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEqualFold(FieldPolygonGeojson, v))
}

// PolygonGeojsonContainsFold applies the ContainsFold predicate on the "polygon_geojson" field.
func PolygonGeojsonContainsFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContainsFold(FieldPolygonGeojson, v))
}

// CropTypeEQ applies the EQ predicate on the "crop_type" field.
func CropTypeEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldCropType, v))
}

// CropTypeNEQ applies the NEQ predicate on the "crop_type" field.
func CropTypeNEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldCropType, v))
}

// CropTypeIn applies the In predicate on the "crop_type" field.
func CropTypeIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldCropType, vs...))
}

// CropTypeNotIn applies the NotIn predicate on the "crop_type" field.
func CropTypeNotIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldCropType, vs...))
}

// CropTypeGT applies the GT predicate on the "crop_type" field.
func CropTypeGT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldCropType, v))
}

// CropTypeGTE applies the GTE predicate on the "crop_type" field.
func CropTypeGTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldCropType, v))
}

// CropTypeLT applies the LT predicate on the "crop_type" field.
func CropTypeLT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldCropType, v))
}

// CropTypeLTE applies the LTE predicate on the "crop_type" field.
func CropTypeLTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldCropType, v))
}

// CropTypeContains applies the Contains predicate on the "crop_type" field.
func CropTypeContains(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContains(FieldCropType, v))
}

// CropTypeHasPrefix applies the HasPrefix predicate on the "crop_type" field.
func CropTypeHasPrefix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasPrefix(FieldCropType, v))
}

// CropTypeHasSuffix applies the HasSuffix predicate on the "crop_type" field.
func CropTypeHasSuffix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasSuffix(FieldCropType, v))
}

// CropTypeIsNil applies the IsNil predicate on the "crop_type" field.
func CropTypeIsNil() predicate.Paddock {
	return predicate.Paddock(sql.FieldIsNull(FieldCropType))
}

// CropTypeNotNil applies the NotNil predicate on the "crop_type" field.
func CropTypeNotNil() predicate.Paddock {
	return predicate.Paddock(sql.FieldNotNull(FieldCropType))
}

// CropTypeEqualFold applies the EqualFold predicate on the "crop_type" field.
func CropTypeEqualFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEqualFold(FieldCropType, v))
}

// CropTypeContainsFold applies the ContainsFold predicate on the "crop_type" field.
func CropTypeContainsFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContainsFold(FieldCropType, v))
}

// CropColorEQ applies the EQ predicate on the "crop_color" field.
func CropColorEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEQ(FieldCropColor, v))
}

// CropColorNEQ applies the NEQ predicate on the "crop_color" field.
func CropColorNEQ(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNEQ(FieldCropColor, v))
}

// CropColorIn applies the In predicate on the "crop_color" field.
func CropColorIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldIn(FieldCropColor, vs...))
}

// CropColorNotIn applies the NotIn predicate on the "crop_color" field.
func CropColorNotIn(vs ...string) predicate.Paddock {
	return predicate.Paddock(sql.FieldNotIn(FieldCropColor, vs...))
}

// CropColorGT applies the GT predicate on the "crop_color" field.
func CropColorGT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGT(FieldCropColor, v))
}

// CropColorGTE applies the GTE predicate on the "crop_color" field.
func CropColorGTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldGTE(FieldCropColor, v))
}

// CropColorLT applies the LT predicate on the "crop_color" field.
func CropColorLT(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLT(FieldCropColor, v))
}

// CropColorLTE applies the LTE predicate on the "crop_color" field.
func CropColorLTE(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldLTE(FieldCropColor, v))
}

// CropColorContains applies the Contains predicate on the "crop_color" field.
func CropColorContains(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContains(FieldCropColor, v))
}

// CropColorHasPrefix applies the HasPrefix predicate on the "crop_color" field.
func CropColorHasPrefix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasPrefix(FieldCropColor, v))
}

// CropColorHasSuffix applies the HasSuffix predicate on the "crop_color" field.
func CropColorHasSuffix(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldHasSuffix(FieldCropColor, v))
}

// CropColorIsNil applies the IsNil predicate on the "crop_color" field.
func CropColorIsNil() predicate.Paddock {
	return predicate.Paddock(sql.FieldIsNull(FieldCropColor))
}

// CropColorNotNil applies the NotNil predicate on the "crop_color" field.
func CropColorNotNil() predicate.Paddock {
	return predicate.Paddock(sql.FieldNotNull(FieldCropColor))
}

// CropColorEqualFold applies the EqualFold predicate on the "crop_color" field.
func CropColorEqualFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldEqualFold(FieldCropColor, v))
}

// CropColorContainsFold applies the ContainsFold predicate on the "crop_color" field.
func CropColorContainsFold(v string) predicate.Paddock {
	return predicate.Paddock(sql.FieldContainsFold(FieldCropColor, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Paddock) predicate.Paddock {
	return predicate.Paddock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Paddock) predicate.Paddock {
	return predicate.Paddock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Paddock) predicate.Paddock {
	return predicate.Paddock(sql.NotPredicates(p))
}
