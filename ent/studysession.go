// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/ent/studysession"
	"github.com/prepforge/quanta/pkg/models"
)

// StudySession is the model entity for the StudySession schema.
type StudySession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Dense per-student sequence assigned at planning time
	SessSeq int `json:"sess_seq,omitempty"`
	// Status holds the value of the "status" field.
	Status studysession.Status `json:"status,omitempty"`
	// Learning phase the plan was computed under
	Phase studysession.Phase `json:"phase,omitempty"`
	// simple_random marks fallback packs
	SessionType studysession.SessionType `json:"session_type,omitempty"`
	// Idempotency key: student:last_session:next_session
	PlanKey string `json:"plan_key,omitempty"`
	// Planner telemetry for this pack
	ConstraintReport *models.ConstraintReport `json:"constraint_report,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ServedAt holds the value of the "served_at" field.
	ServedAt *time.Time `json:"served_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudySessionQuery when eager-loading is set.
	Edges        StudySessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudySessionEdges holds the relations/edges for other nodes in the graph.
type StudySessionEdges struct {
	// PackEntries holds the value of the pack_entries edge.
	PackEntries []*SessionQuestion `json:"pack_entries,omitempty"`
	// Attempts holds the value of the attempts edge.
	Attempts []*Attempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PackEntriesOrErr returns the PackEntries value or an error if the edge
// was not loaded in eager-loading.
func (e StudySessionEdges) PackEntriesOrErr() ([]*SessionQuestion, error) {
	if e.loadedTypes[0] {
		return e.PackEntries, nil
	}
	return nil, &NotLoadedError{edge: "pack_entries"}
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e StudySessionEdges) AttemptsOrErr() ([]*Attempt, error) {
	if e.loadedTypes[1] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studysession.FieldConstraintReport:
			values[i] = new([]byte)
		case studysession.FieldSessSeq:
			values[i] = new(sql.NullInt64)
		case studysession.FieldID, studysession.FieldStudentID, studysession.FieldStatus, studysession.FieldPhase, studysession.FieldSessionType, studysession.FieldPlanKey:
			values[i] = new(sql.NullString)
		case studysession.FieldCreatedAt, studysession.FieldServedAt, studysession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySession fields.
func (_m *StudySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case studysession.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case studysession.FieldSessSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sess_seq", values[i])
			} else if value.Valid {
				_m.SessSeq = int(value.Int64)
			}
		case studysession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = studysession.Status(value.String)
			}
		case studysession.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = studysession.Phase(value.String)
			}
		case studysession.FieldSessionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_type", values[i])
			} else if value.Valid {
				_m.SessionType = studysession.SessionType(value.String)
			}
		case studysession.FieldPlanKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_key", values[i])
			} else if value.Valid {
				_m.PlanKey = value.String
			}
		case studysession.FieldConstraintReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field constraint_report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConstraintReport); err != nil {
					return fmt.Errorf("unmarshal field constraint_report: %w", err)
				}
			}
		case studysession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case studysession.FieldServedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field served_at", values[i])
			} else if value.Valid {
				_m.ServedAt = new(time.Time)
				*_m.ServedAt = value.Time
			}
		case studysession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySession.
// This includes values selected through modifiers, order, etc.
func (_m *StudySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPackEntries queries the "pack_entries" edge of the StudySession entity.
func (_m *StudySession) QueryPackEntries() *SessionQuestionQuery {
	return NewStudySessionClient(_m.config).QueryPackEntries(_m)
}

// QueryAttempts queries the "attempts" edge of the StudySession entity.
func (_m *StudySession) QueryAttempts() *AttemptQuery {
	return NewStudySessionClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this StudySession.
// Note that you need to call StudySession.Unwrap() before calling this method if this StudySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySession) Update() *StudySessionUpdateOne {
	return NewStudySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySession) Unwrap() *StudySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySession) String() string {
	var builder strings.Builder
	builder.WriteString("StudySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("sess_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessSeq))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("session_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionType))
	builder.WriteString(", ")
	builder.WriteString("plan_key=")
	builder.WriteString(_m.PlanKey)
	builder.WriteString(", ")
	builder.WriteString("constraint_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConstraintReport))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ServedAt; v != nil {
		builder.WriteString("served_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StudySessions is a parsable slice of StudySession.
type StudySessions []*StudySession
