// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/conjugo/ent/levelevent"
)

// LevelEvent is the model entity for the LevelEvent schema.
type LevelEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learner this event belongs to
	UserID string `json:"user_id,omitempty"`
	// Level before the transition
	FromLevel string `json:"from_level,omitempty"`
	// Level after the transition
	ToLevel string `json:"to_level,omitempty"`
	// manual, automatic_promotion, sync, or reset
	Reason       string `json:"reason,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LevelEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case levelevent.FieldID, levelevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case levelevent.FieldUserID, levelevent.FieldFromLevel, levelevent.FieldToLevel, levelevent.FieldReason:
			values[i] = new(sql.NullString)
		case levelevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LevelEvent fields.
func (_m *LevelEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case levelevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case levelevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case levelevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case levelevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case levelevent.FieldFromLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_level", values[i])
			} else if value.Valid {
				_m.FromLevel = value.String
			}
		case levelevent.FieldToLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_level", values[i])
			} else if value.Valid {
				_m.ToLevel = value.String
			}
		case levelevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LevelEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LevelEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LevelEvent.
// Note that you need to call LevelEvent.Unwrap() before calling this method if this LevelEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LevelEvent) Update() *LevelEventUpdateOne {
	return NewLevelEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LevelEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LevelEvent) Unwrap() *LevelEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LevelEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LevelEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LevelEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("from_level=")
	builder.WriteString(_m.FromLevel)
	builder.WriteString(", ")
	builder.WriteString("to_level=")
	builder.WriteString(_m.ToLevel)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteByte(')')
	return builder.String()
}

// LevelEvents is a parsable slice of LevelEvent.
type LevelEvents []*LevelEvent
