// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/mob"
)

// Mob is the model entity for the Mob schema.
type Mob struct {
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
	// Count holds the value of the "count" field.
	Count int `json:"count,omitempty"`
	// AvgWeight holds the value of the "avg_weight" field.
	AvgWeight float64 `json:"avg_weight,omitempty"`
	// PaddockID holds the value of the "paddock_id" field.
	PaddockID    string `json:"paddock_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mob.FieldAvgWeight:
			values[i] = new(sql.NullFloat64)
		case mob.FieldCount:
			values[i] = new(sql.NullInt64)
		case mob.FieldID, mob.FieldFarmID, mob.FieldName, mob.FieldPaddockID:
			values[i] = new(sql.NullString)
		case mob.FieldCreatedAt, mob.FieldUpdatedAt, mob.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mob fields.
func (_m *Mob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case mob.FieldFarmID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field farm_id", values[i])
			} else if value.Valid {
				_m.FarmID = value.String
			}
		case mob.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case mob.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case mob.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		case mob.FieldAvgWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_weight", values[i])
			} else if value.Valid {
				_m.AvgWeight = value.Float64
			}
		case mob.FieldPaddockID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paddock_id", values[i])
			} else if value.Valid {
				_m.PaddockID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mob.
// This includes values selected through modifiers, order, etc.
func (_m *Mob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Mob.
// Note that you need to call Mob.Unwrap() before calling this method if this Mob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mob) Update() *MobUpdateOne {
	return NewMobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mob) Unwrap() *Mob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mob) String() string {
	var builder strings.Builder
	builder.WriteString("Mob(")
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
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	builder.WriteString("avg_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgWeight))
	builder.WriteString(", ")
	builder.WriteString("paddock_id=")
	builder.WriteString(_m.PaddockID)
	builder.WriteByte(')')
	return builder.String()
}

// Mobs is a parsable slice of Mob.
type Mobs []*Mob
