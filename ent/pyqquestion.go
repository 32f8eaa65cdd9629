// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/ent/pyqquestion"
)

// PYQQuestion is the model entity for the PYQQuestion schema.
type PYQQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// TypeOfQuestion holds the value of the "type_of_question" field.
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// DifficultyBand holds the value of the "difficulty_band" field.
	DifficultyBand pyqquestion.DifficultyBand `json:"difficulty_band,omitempty"`
	// ProblemStructure holds the value of the "problem_structure" field.
	ProblemStructure string `json:"problem_structure,omitempty"`
	// ConceptKeywords holds the value of the "concept_keywords" field.
	ConceptKeywords []string `json:"concept_keywords,omitempty"`
	// Exam year the question appeared in
	Year int `json:"year,omitempty"`
	// Paper slot within the year, when known
	Slot *string `json:"slot,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// QualityVerified holds the value of the "quality_verified" field.
	QualityVerified bool `json:"quality_verified,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PYQQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pyqquestion.FieldConceptKeywords:
			values[i] = new([]byte)
		case pyqquestion.FieldIsActive, pyqquestion.FieldQualityVerified:
			values[i] = new(sql.NullBool)
		case pyqquestion.FieldYear:
			values[i] = new(sql.NullInt64)
		case pyqquestion.FieldID, pyqquestion.FieldStem, pyqquestion.FieldCategory, pyqquestion.FieldSubcategory, pyqquestion.FieldTypeOfQuestion, pyqquestion.FieldDifficultyBand, pyqquestion.FieldProblemStructure, pyqquestion.FieldSlot:
			values[i] = new(sql.NullString)
		case pyqquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PYQQuestion fields.
func (_m *PYQQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pyqquestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pyqquestion.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case pyqquestion.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case pyqquestion.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case pyqquestion.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case pyqquestion.FieldDifficultyBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_band", values[i])
			} else if value.Valid {
				_m.DifficultyBand = pyqquestion.DifficultyBand(value.String)
			}
		case pyqquestion.FieldProblemStructure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_structure", values[i])
			} else if value.Valid {
				_m.ProblemStructure = value.String
			}
		case pyqquestion.FieldConceptKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concept_keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptKeywords); err != nil {
					return fmt.Errorf("unmarshal field concept_keywords: %w", err)
				}
			}
		case pyqquestion.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case pyqquestion.FieldSlot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slot", values[i])
			} else if value.Valid {
				_m.Slot = new(string)
				*_m.Slot = value.String
			}
		case pyqquestion.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case pyqquestion.FieldQualityVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quality_verified", values[i])
			} else if value.Valid {
				_m.QualityVerified = value.Bool
			}
		case pyqquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PYQQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *PYQQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PYQQuestion.
// Note that you need to call PYQQuestion.Unwrap() before calling this method if this PYQQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PYQQuestion) Update() *PYQQuestionUpdateOne {
	return NewPYQQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PYQQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PYQQuestion) Unwrap() *PYQQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PYQQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PYQQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("PYQQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("type_of_question=")
	builder.WriteString(_m.TypeOfQuestion)
	builder.WriteString(", ")
	builder.WriteString("difficulty_band=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyBand))
	builder.WriteString(", ")
	builder.WriteString("problem_structure=")
	builder.WriteString(_m.ProblemStructure)
	builder.WriteString(", ")
	builder.WriteString("concept_keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptKeywords))
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	if v := _m.Slot; v != nil {
		builder.WriteString("slot=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("quality_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityVerified))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PYQQuestions is a parsable slice of PYQQuestion.
type PYQQuestions []*PYQQuestion
