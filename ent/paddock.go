// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/paddock"
)

// Paddock is the model entity for the Paddock schema.
type Paddock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FarmID holds the value of the "farm_id" field.
	FarmID string `json:"farm_id,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// AreaHa holds the value of the "area_ha" field.
	AreaHa float64 `json:"area_ha,omitempty"`
	// PolygonGeojson holds the value of the "polygon_geojson" field.
	PolygonGeojson string `json:"polygon_geojson,omitempty"`
	// CropType holds the value of the "crop_type" field.
	CropType string `json:"crop_type,omitempty"`
	// CropColor holds the value of the "crop_color" field.
	CropColor    string `json:"crop_color,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Paddock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paddock.FieldAreaHa:
			values[i] = new(sql.NullFloat64)
		case paddock.FieldID, paddock.FieldFarmID, paddock.FieldName, paddock.FieldPolygonGeojson, paddock.FieldCropType, paddock.FieldCropColor:
			values[i] = new(sql.NullString)
		case paddock.FieldCreatedAt, paddock.FieldUpdatedAt, paddock.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Paddock fields.
func (_m *Paddock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paddock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case paddock.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case paddock.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case paddock.FieldFarmID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field farm_id", values[i])
			} else if value.Valid {
				_m.FarmID = value.String
			}
		case paddock.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case paddock.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case paddock.FieldAreaHa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area_ha", values[i])
			} else if value.Valid {
				_m.AreaHa = value.Float64
			}
		case paddock.FieldPolygonGeojson:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field polygon_geojson", values[i])
			} else if value.Valid {
				_m.PolygonGeojson = value.String
			}
		case paddock.FieldCropType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crop_type", values[i])
			} else if value.Valid {
				_m.CropType = value.String
			}
		case paddock.FieldCropColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crop_color", values[i])
			} else if value.Valid {
				_m.CropColor = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Paddock.
// This includes values selected through modifiers, order, etc.
func (_m *Paddock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Paddock.
// Note that you need to call Paddock.Unwrap() before calling this method if this Paddock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Paddock) Update() *PaddockUpdateOne {
	return NewPaddockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Paddock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Paddock) Unwrap() *Paddock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Paddock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Paddock) String() string {
	var builder strings.Builder
	builder.WriteString("Paddock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("farm_id=")
	builder.WriteString(_m.FarmID)
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("area_ha=")
	builder.WriteString(fmt.Sprintf("%v", _m.AreaHa))
	builder.WriteString(", ")
	builder.WriteString("polygon_geojson=")
	builder.WriteString(_m.PolygonGeojson)
	builder.WriteString(", ")
	builder.WriteString("crop_type=")
	builder.WriteString(_m.CropType)
	builder.WriteString(", ")
	builder.WriteString("crop_color=")
	builder.WriteString(_m.CropColor)
	builder.WriteByte(')')
	return builder.String()
}

// Paddocks is a parsable slice of Paddock.
type Paddocks []*Paddock
