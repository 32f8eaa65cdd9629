// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/ent/sessionquestion"
	"github.com/prepforge/quanta/ent/studysession"
)

// SessionQuestion is the model entity for the SessionQuestion schema.
type SessionQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// 1-based presentation order within the pack
	Position int `json:"position,omitempty"`
	// PlannedBand holds the value of the "planned_band" field.
	PlannedBand sessionquestion.PlannedBand `json:"planned_band,omitempty"`
	// Snapshot at planning time, used for coverage upserts
	Subcategory string `json:"subcategory,omitempty"`
	// TypeOfQuestion holds the value of the "type_of_question" field.
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// True if the (subcategory, type) pair was unseen when planned
	CoverageNew bool `json:"coverage_new,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuestionQuery when eager-loading is set.
	Edges        SessionQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionQuestionEdges holds the relations/edges for other nodes in the graph.
type SessionQuestionEdges struct {
	// Session holds the value of the session edge.
	Session *StudySession `json:"session,omitempty"`
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionQuestionEdges) SessionOrErr() (*StudySession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studysession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionQuestionEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionquestion.FieldCoverageNew:
			values[i] = new(sql.NullBool)
		case sessionquestion.FieldPosition:
			values[i] = new(sql.NullInt64)
		case sessionquestion.FieldID, sessionquestion.FieldSessionID, sessionquestion.FieldQuestionID, sessionquestion.FieldPlannedBand, sessionquestion.FieldSubcategory, sessionquestion.FieldTypeOfQuestion:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionQuestion fields.
func (_m *SessionQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionquestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionquestion.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionquestion.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case sessionquestion.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case sessionquestion.FieldPlannedBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field planned_band", values[i])
			} else if value.Valid {
				_m.PlannedBand = sessionquestion.PlannedBand(value.String)
			}
		case sessionquestion.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case sessionquestion.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case sessionquestion.FieldCoverageNew:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field coverage_new", values[i])
			} else if value.Valid {
				_m.CoverageNew = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *SessionQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionQuestion entity.
func (_m *SessionQuestion) QuerySession() *StudySessionQuery {
	return NewSessionQuestionClient(_m.config).QuerySession(_m)
}

// QueryQuestion queries the "question" edge of the SessionQuestion entity.
func (_m *SessionQuestion) QueryQuestion() *QuestionQuery {
	return NewSessionQuestionClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this SessionQuestion.
// Note that you need to call SessionQuestion.Unwrap() before calling this method if this SessionQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionQuestion) Update() *SessionQuestionUpdateOne {
	return NewSessionQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionQuestion) Unwrap() *SessionQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("SessionQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("planned_band=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlannedBand))
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("type_of_question=")
	builder.WriteString(_m.TypeOfQuestion)
	builder.WriteString(", ")
	builder.WriteString("coverage_new=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoverageNew))
	builder.WriteByte(')')
	return builder.String()
}

// SessionQuestions is a parsable slice of SessionQuestion.
type SessionQuestions []*SessionQuestion
