// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/farmsequence"
)

// FarmSequence is the model entity for the FarmSequence schema.
type FarmSequence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FarmID holds the value of the "farm_id" field.
	FarmID string `json:"farm_id,omitempty"`
	// Value holds the value of the "value" field.
	Value        int64 `json:"value,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FarmSequence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case farmsequence.FieldID, farmsequence.FieldValue:
			values[i] = new(sql.NullInt64)
		case farmsequence.FieldFarmID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FarmSequence fields.
func (_m *FarmSequence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case farmsequence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case farmsequence.FieldFarmID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field farm_id", values[i])
			} else if value.Valid {
				_m.FarmID = value.String
			}
		case farmsequence.FieldValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the FarmSequence.
// This includes values selected through modifiers, order, etc.
func (_m *FarmSequence) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FarmSequence.
// Note that you need to call FarmSequence.Unwrap() before calling this method if this FarmSequence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FarmSequence) Update() *FarmSequenceUpdateOne {
	return NewFarmSequenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FarmSequence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FarmSequence) Unwrap() *FarmSequence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FarmSequence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FarmSequence) String() string {
	var builder strings.Builder
	builder.WriteString("FarmSequence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("farm_id=")
	builder.WriteString(_m.FarmID)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteByte(')')
	return builder.String()
}

// FarmSequences is a parsable slice of FarmSequence.
type FarmSequences []*FarmSequence
