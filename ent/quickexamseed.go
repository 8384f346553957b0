// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roadprep/roadprep/ent/quickexamseed"
)

// QuickExamSeed is the model entity for the QuickExamSeed schema.
type QuickExamSeed struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JSON array of raw questions
	Payload []byte `json:"payload,omitempty"`
	// When the seed was written
	SeededAt     time.Time `json:"seeded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuickExamSeed) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quickexamseed.FieldPayload:
			values[i] = new([]byte)
		case quickexamseed.FieldID:
			values[i] = new(sql.NullInt64)
		case quickexamseed.FieldSeededAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuickExamSeed fields.
func (_m *QuickExamSeed) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quickexamseed.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quickexamseed.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case quickexamseed.FieldSeededAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field seeded_at", values[i])
			} else if value.Valid {
				_m.SeededAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuickExamSeed.
// This includes values selected through modifiers, order, etc.
func (_m *QuickExamSeed) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuickExamSeed.
// Note that you need to call QuickExamSeed.Unwrap() before calling this method if this QuickExamSeed
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuickExamSeed) Update() *QuickExamSeedUpdateOne {
	return NewQuickExamSeedClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuickExamSeed entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuickExamSeed) Unwrap() *QuickExamSeed {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuickExamSeed is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuickExamSeed) String() string {
	var builder strings.Builder
	builder.WriteString("QuickExamSeed(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("seeded_at=")
	builder.WriteString(_m.SeededAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuickExamSeeds is a parsable slice of QuickExamSeed.
type QuickExamSeeds []*QuickExamSeed
