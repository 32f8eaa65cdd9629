// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Question text as uploaded
	Stem string `json:"stem,omitempty"`
	// Authoritative answer provided at upload
	AdminAnswer string `json:"admin_answer,omitempty"`
	// Worked solution provided at upload
	AdminSolution string `json:"admin_solution,omitempty"`
	// PrincipleToRemember holds the value of the "principle_to_remember" field.
	PrincipleToRemember *string `json:"principle_to_remember,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL *string `json:"image_url,omitempty"`
	// Answer as restated by the pipeline, checked against admin_answer
	RightAnswer string `json:"right_answer,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// TypeOfQuestion holds the value of the "type_of_question" field.
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// DifficultyBand holds the value of the "difficulty_band" field.
	DifficultyBand question.DifficultyBand `json:"difficulty_band,omitempty"`
	// 1.0-5.0, kept consistent with difficulty_band
	DifficultyScore float64 `json:"difficulty_score,omitempty"`
	// Null until frequency scoring has run
	PyqFrequencyScore *float64 `json:"pyq_frequency_score,omitempty"`
	// CoreConcepts holds the value of the "core_concepts" field.
	CoreConcepts []string `json:"core_concepts,omitempty"`
	// SolutionMethod holds the value of the "solution_method" field.
	SolutionMethod string `json:"solution_method,omitempty"`
	// Keys: prerequisites, cognitive_barriers, mastery_indicators
	ConceptDifficulty map[string][]string `json:"concept_difficulty,omitempty"`
	// OperationsRequired holds the value of the "operations_required" field.
	OperationsRequired []string `json:"operations_required,omitempty"`
	// ProblemStructure holds the value of the "problem_structure" field.
	ProblemStructure string `json:"problem_structure,omitempty"`
	// ConceptKeywords holds the value of the "concept_keywords" field.
	ConceptKeywords []string `json:"concept_keywords,omitempty"`
	// Only active questions are eligible for planning
	IsActive bool `json:"is_active,omitempty"`
	// QualityVerified holds the value of the "quality_verified" field.
	QualityVerified bool `json:"quality_verified,omitempty"`
	// ConceptExtractionStatus holds the value of the "concept_extraction_status" field.
	ConceptExtractionStatus question.ConceptExtractionStatus `json:"concept_extraction_status,omitempty"`
	// Criteria that failed the quality gate, for reprocessing
	FailedChecks []string `json:"failed_checks,omitempty"`
	// EnrichmentStatus holds the value of the "enrichment_status" field.
	EnrichmentStatus question.EnrichmentStatus `json:"enrichment_status,omitempty"`
	// EnrichmentError holds the value of the "enrichment_error" field.
	EnrichmentError *string `json:"enrichment_error,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Worker heartbeat, used for orphan detection
	LastEnrichmentAt *time.Time `json:"last_enrichment_at,omitempty"`
	// EnrichedAt holds the value of the "enriched_at" field.
	EnrichedAt *time.Time `json:"enriched_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges        QuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Attempts holds the value of the attempts edge.
	Attempts []*Attempt `json:"attempts,omitempty"`
	// PackEntries holds the value of the pack_entries edge.
	PackEntries []*SessionQuestion `json:"pack_entries,omitempty"`
	// Audits holds the value of the audits edge.
	Audits []*EnrichmentAudit `json:"audits,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) AttemptsOrErr() ([]*Attempt, error) {
	if e.loadedTypes[0] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// PackEntriesOrErr returns the PackEntries value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) PackEntriesOrErr() ([]*SessionQuestion, error) {
	if e.loadedTypes[1] {
		return e.PackEntries, nil
	}
	return nil, &NotLoadedError{edge: "pack_entries"}
}

// AuditsOrErr returns the Audits value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) AuditsOrErr() ([]*EnrichmentAudit, error) {
	if e.loadedTypes[2] {
		return e.Audits, nil
	}
	return nil, &NotLoadedError{edge: "audits"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldCoreConcepts, question.FieldConceptDifficulty, question.FieldOperationsRequired, question.FieldConceptKeywords, question.FieldFailedChecks:
			values[i] = new([]byte)
		case question.FieldIsActive, question.FieldQualityVerified:
			values[i] = new(sql.NullBool)
		case question.FieldDifficultyScore, question.FieldPyqFrequencyScore:
			values[i] = new(sql.NullFloat64)
		case question.FieldID, question.FieldStem, question.FieldAdminAnswer, question.FieldAdminSolution, question.FieldPrincipleToRemember, question.FieldImageURL, question.FieldRightAnswer, question.FieldCategory, question.FieldSubcategory, question.FieldTypeOfQuestion, question.FieldDifficultyBand, question.FieldSolutionMethod, question.FieldProblemStructure, question.FieldConceptExtractionStatus, question.FieldEnrichmentStatus, question.FieldEnrichmentError, question.FieldPodID:
			values[i] = new(sql.NullString)
		case question.FieldLastEnrichmentAt, question.FieldEnrichedAt, question.FieldCreatedAt, question.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case question.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case question.FieldAdminAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_answer", values[i])
			} else if value.Valid {
				_m.AdminAnswer = value.String
			}
		case question.FieldAdminSolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_solution", values[i])
			} else if value.Valid {
				_m.AdminSolution = value.String
			}
		case question.FieldPrincipleToRemember:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principle_to_remember", values[i])
			} else if value.Valid {
				_m.PrincipleToRemember = new(string)
				*_m.PrincipleToRemember = value.String
			}
		case question.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = new(string)
				*_m.ImageURL = value.String
			}
		case question.FieldRightAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field right_answer", values[i])
			} else if value.Valid {
				_m.RightAnswer = value.String
			}
		case question.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case question.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case question.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case question.FieldDifficultyBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_band", values[i])
			} else if value.Valid {
				_m.DifficultyBand = question.DifficultyBand(value.String)
			}
		case question.FieldDifficultyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_score", values[i])
			} else if value.Valid {
				_m.DifficultyScore = value.Float64
			}
		case question.FieldPyqFrequencyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pyq_frequency_score", values[i])
			} else if value.Valid {
				_m.PyqFrequencyScore = new(float64)
				*_m.PyqFrequencyScore = value.Float64
			}
		case question.FieldCoreConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field core_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CoreConcepts); err != nil {
					return fmt.Errorf("unmarshal field core_concepts: %w", err)
				}
			}
		case question.FieldSolutionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_method", values[i])
			} else if value.Valid {
				_m.SolutionMethod = value.String
			}
		case question.FieldConceptDifficulty:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concept_difficulty", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptDifficulty); err != nil {
					return fmt.Errorf("unmarshal field concept_difficulty: %w", err)
				}
			}
		case question.FieldOperationsRequired:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field operations_required", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OperationsRequired); err != nil {
					return fmt.Errorf("unmarshal field operations_required: %w", err)
				}
			}
		case question.FieldProblemStructure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_structure", values[i])
			} else if value.Valid {
				_m.ProblemStructure = value.String
			}
		case question.FieldConceptKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concept_keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptKeywords); err != nil {
					return fmt.Errorf("unmarshal field concept_keywords: %w", err)
				}
			}
		case question.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case question.FieldQualityVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quality_verified", values[i])
			} else if value.Valid {
				_m.QualityVerified = value.Bool
			}
		case question.FieldConceptExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_extraction_status", values[i])
			} else if value.Valid {
				_m.ConceptExtractionStatus = question.ConceptExtractionStatus(value.String)
			}
		case question.FieldFailedChecks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failed_checks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailedChecks); err != nil {
					return fmt.Errorf("unmarshal field failed_checks: %w", err)
				}
			}
		case question.FieldEnrichmentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment_status", values[i])
			} else if value.Valid {
				_m.EnrichmentStatus = question.EnrichmentStatus(value.String)
			}
		case question.FieldEnrichmentError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment_error", values[i])
			} else if value.Valid {
				_m.EnrichmentError = new(string)
				*_m.EnrichmentError = value.String
			}
		case question.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case question.FieldLastEnrichmentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_enrichment_at", values[i])
			} else if value.Valid {
				_m.LastEnrichmentAt = new(time.Time)
				*_m.LastEnrichmentAt = value.Time
			}
		case question.FieldEnrichedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_at", values[i])
			} else if value.Valid {
				_m.EnrichedAt = new(time.Time)
				*_m.EnrichedAt = value.Time
			}
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case question.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempts queries the "attempts" edge of the Question entity.
func (_m *Question) QueryAttempts() *AttemptQuery {
	return NewQuestionClient(_m.config).QueryAttempts(_m)
}

// QueryPackEntries queries the "pack_entries" edge of the Question entity.
func (_m *Question) QueryPackEntries() *SessionQuestionQuery {
	return NewQuestionClient(_m.config).QueryPackEntries(_m)
}

// QueryAudits queries the "audits" edge of the Question entity.
func (_m *Question) QueryAudits() *EnrichmentAuditQuery {
	return NewQuestionClient(_m.config).QueryAudits(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("admin_answer=")
	builder.WriteString(_m.AdminAnswer)
	builder.WriteString(", ")
	builder.WriteString("admin_solution=")
	builder.WriteString(_m.AdminSolution)
	builder.WriteString(", ")
	if v := _m.PrincipleToRemember; v != nil {
		builder.WriteString("principle_to_remember=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImageURL; v != nil {
		builder.WriteString("image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("right_answer=")
	builder.WriteString(_m.RightAnswer)
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
	builder.WriteString("difficulty_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyScore))
	builder.WriteString(", ")
	if v := _m.PyqFrequencyScore; v != nil {
		builder.WriteString("pyq_frequency_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("core_concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoreConcepts))
	builder.WriteString(", ")
	builder.WriteString("solution_method=")
	builder.WriteString(_m.SolutionMethod)
	builder.WriteString(", ")
	builder.WriteString("concept_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptDifficulty))
	builder.WriteString(", ")
	builder.WriteString("operations_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperationsRequired))
	builder.WriteString(", ")
	builder.WriteString("problem_structure=")
	builder.WriteString(_m.ProblemStructure)
	builder.WriteString(", ")
	builder.WriteString("concept_keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptKeywords))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("quality_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityVerified))
	builder.WriteString(", ")
	builder.WriteString("concept_extraction_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptExtractionStatus))
	builder.WriteString(", ")
	builder.WriteString("failed_checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedChecks))
	builder.WriteString(", ")
	builder.WriteString("enrichment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrichmentStatus))
	builder.WriteString(", ")
	if v := _m.EnrichmentError; v != nil {
		builder.WriteString("enrichment_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastEnrichmentAt; v != nil {
		builder.WriteString("last_enrichment_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EnrichedAt; v != nil {
		builder.WriteString("enriched_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
