// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/ent/mastery"
)

// Mastery is the model entity for the Mastery schema.
type Mastery struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// Empty string marks the subcategory-level row
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// AccEasy holds the value of the "acc_easy" field.
	AccEasy float64 `json:"acc_easy,omitempty"`
	// AccMedium holds the value of the "acc_medium" field.
	AccMedium float64 `json:"acc_medium,omitempty"`
	// AccHard holds the value of the "acc_hard" field.
	AccHard float64 `json:"acc_hard,omitempty"`
	// EfficiencyScore holds the value of the "efficiency_score" field.
	EfficiencyScore float64 `json:"efficiency_score,omitempty"`
	// ExposureCount holds the value of the "exposure_count" field.
	ExposureCount int `json:"exposure_count,omitempty"`
	// Overall mastery in [0,1], exposure-scaled
	MasteryPct float64 `json:"mastery_pct,omitempty"`
	// LastActivityAt holds the value of the "last_activity_at" field.
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mastery.FieldAccEasy, mastery.FieldAccMedium, mastery.FieldAccHard, mastery.FieldEfficiencyScore, mastery.FieldMasteryPct:
			values[i] = new(sql.NullFloat64)
		case mastery.FieldExposureCount:
			values[i] = new(sql.NullInt64)
		case mastery.FieldID, mastery.FieldStudentID, mastery.FieldSubcategory, mastery.FieldTypeOfQuestion:
			values[i] = new(sql.NullString)
		case mastery.FieldLastActivityAt, mastery.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mastery fields.
func (_m *Mastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mastery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mastery.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case mastery.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case mastery.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case mastery.FieldAccEasy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field acc_easy", values[i])
			} else if value.Valid {
				_m.AccEasy = value.Float64
			}
		case mastery.FieldAccMedium:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field acc_medium", values[i])
			} else if value.Valid {
				_m.AccMedium = value.Float64
			}
		case mastery.FieldAccHard:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field acc_hard", values[i])
			} else if value.Valid {
				_m.AccHard = value.Float64
			}
		case mastery.FieldEfficiencyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field efficiency_score", values[i])
			} else if value.Valid {
				_m.EfficiencyScore = value.Float64
			}
		case mastery.FieldExposureCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exposure_count", values[i])
			} else if value.Valid {
				_m.ExposureCount = int(value.Int64)
			}
		case mastery.FieldMasteryPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_pct", values[i])
			} else if value.Valid {
				_m.MasteryPct = value.Float64
			}
		case mastery.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = new(time.Time)
				*_m.LastActivityAt = value.Time
			}
		case mastery.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mastery.
// This includes values selected through modifiers, order, etc.
func (_m *Mastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Mastery.
// Note that you need to call Mastery.Unwrap() before calling this method if this Mastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mastery) Update() *MasteryUpdateOne {
	return NewMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mastery) Unwrap() *Mastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mastery) String() string {
	var builder strings.Builder
	builder.WriteString("Mastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("type_of_question=")
	builder.WriteString(_m.TypeOfQuestion)
	builder.WriteString(", ")
	builder.WriteString("acc_easy=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccEasy))
	builder.WriteString(", ")
	builder.WriteString("acc_medium=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccMedium))
	builder.WriteString(", ")
	builder.WriteString("acc_hard=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccHard))
	builder.WriteString(", ")
	builder.WriteString("efficiency_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EfficiencyScore))
	builder.WriteString(", ")
	builder.WriteString("exposure_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExposureCount))
	builder.WriteString(", ")
	builder.WriteString("mastery_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryPct))
	builder.WriteString(", ")
	if v := _m.LastActivityAt; v != nil {
		builder.WriteString("last_activity_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Masteries is a parsable slice of Mastery.
type Masteries []*Mastery
