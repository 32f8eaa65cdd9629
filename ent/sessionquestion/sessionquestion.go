// Code generated by ent, DO NOT EDIT.

package sessionquestion

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sessionquestion type in the database.
	Label = "session_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entry_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldPlannedBand holds the string denoting the planned_band field in the database.
	FieldPlannedBand = "planned_band"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldTypeOfQuestion holds the string denoting the type_of_question field in the database.
	FieldTypeOfQuestion = "type_of_question"
	// FieldCoverageNew holds the string denoting the coverage_new field in the database.
	FieldCoverageNew = "coverage_new"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// StudySessionFieldID holds the string denoting the ID field of the StudySession.
	StudySessionFieldID = "session_id"
	// QuestionFieldID holds the string denoting the ID field of the Question.
	QuestionFieldID = "question_id"
	// Table holds the table name of the sessionquestion in the database.
	Table = "session_questions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "session_questions"
	// SessionInverseTable is the table name for the StudySession entity.
	// It exists in this package in order to avoid circular dependency with the "studysession" package.
	SessionInverseTable = "study_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "session_questions"
	// QuestionInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionInverseTable = "questions"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "question_id"
)

// Columns holds all SQL columns for sessionquestion fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldQuestionID,
	FieldPosition,
	FieldPlannedBand,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldCoverageNew,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCoverageNew holds the default value on creation for the "coverage_new" field.
	DefaultCoverageNew bool
)

// PlannedBand defines the type for the "planned_band" enum field.
type PlannedBand string

// PlannedBand values.
const (
	PlannedBandEasy   PlannedBand = "Easy"
	PlannedBandMedium PlannedBand = "Medium"
	PlannedBandHard   PlannedBand = "Hard"
)

func (pb PlannedBand) String() string {
	return string(pb)
}

// PlannedBandValidator is a validator for the "planned_band" field enum values. It is called by the builders before save.
func PlannedBandValidator(pb PlannedBand) error {
	switch pb {
	case PlannedBandEasy, PlannedBandMedium, PlannedBandHard:
		return nil
	default:
		return fmt.Errorf("sessionquestion: invalid enum value for planned_band field: %q", pb)
	}
}

// OrderOption defines the ordering options for the SessionQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByPlannedBand orders the results by the planned_band field.
func ByPlannedBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannedBand, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByTypeOfQuestion orders the results by the type_of_question field.
func ByTypeOfQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfQuestion, opts...).ToFunc()
}

// ByCoverageNew orders the results by the coverage_new field.
func ByCoverageNew(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverageNew, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, StudySessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, QuestionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
	)
}
