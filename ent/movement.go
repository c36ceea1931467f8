// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/movement"
)

// Movement is the model entity for the Movement schema.
type Movement struct {
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
	// MobID holds the value of the "mob_id" field.
	MobID string `json:"mob_id,omitempty"`
	// FromPaddockID holds the value of the "from_paddock_id" field.
	FromPaddockID string `json:"from_paddock_id,omitempty"`
	// ToPaddockID holds the value of the "to_paddock_id" field.
	ToPaddockID string `json:"to_paddock_id,omitempty"`
	// OccurredAt holds the value of the "occurred_at" field.
	OccurredAt   time.Time `json:"occurred_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Movement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case movement.FieldID, movement.FieldFarmID, movement.FieldMobID, movement.FieldFromPaddockID, movement.FieldToPaddockID:
			values[i] = new(sql.NullString)
		case movement.FieldCreatedAt, movement.FieldUpdatedAt, movement.FieldDeletedAt, movement.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Movement fields.
func (_m *Movement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case movement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case movement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case movement.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case movement.FieldFarmID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field farm_id", values[i])
			} else if value.Valid {
				_m.FarmID = value.String
			}
		case movement.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case movement.FieldMobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mob_id", values[i])
			} else if value.Valid {
				_m.MobID = value.String
			}
		case movement.FieldFromPaddockID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_paddock_id", values[i])
			} else if value.Valid {
				_m.FromPaddockID = value.String
			}
		case movement.FieldToPaddockID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_paddock_id", values[i])
			} else if value.Valid {
				_m.ToPaddockID = value.String
			}
		case movement.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Movement.
// This includes values selected through modifiers, order, etc.
func (_m *Movement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Movement.
// Note that you need to call Movement.Unwrap() before calling this method if this Movement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Movement) Update() *MovementUpdateOne {
	return NewMovementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Movement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Movement) Unwrap() *Movement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Movement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Movement) String() string {
	var builder strings.Builder
	builder.WriteString("Movement(")
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
	builder.WriteString("mob_id=")
	builder.WriteString(_m.MobID)
	builder.WriteString(", ")
	builder.WriteString("from_paddock_id=")
	builder.WriteString(_m.FromPaddockID)
	builder.WriteString(", ")
	builder.WriteString("to_paddock_id=")
	builder.WriteString(_m.ToPaddockID)
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Movements is a parsable slice of Movement.
type Movements []*Movement
