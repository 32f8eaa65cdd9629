// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the studysession type in the database.
	Label = "study_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSessSeq holds the string denoting the sess_seq field in the database.
	FieldSessSeq = "sess_seq"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldSessionType holds the string denoting the session_type field in the database.
	FieldSessionType = "session_type"
	// FieldPlanKey holds the string denoting the plan_key field in the database.
	FieldPlanKey = "plan_key"
	// FieldConstraintReport holds the string denoting the constraint_report field in the database.
	FieldConstraintReport = "constraint_report"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldServedAt holds the string denoting the served_at field in the database.
	FieldServedAt = "served_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgePackEntries holds the string denoting the pack_entries edge name in mutations.
	EdgePackEntries = "pack_entries"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// SessionQuestionFieldID holds the string denoting the ID field of the SessionQuestion.
	SessionQuestionFieldID = "entry_id"
	// AttemptFieldID holds the string denoting the ID field of the Attempt.
	AttemptFieldID = "attempt_id"
	// Table holds the table name of the studysession in the database.
	Table = "study_sessions"
	// PackEntriesTable is the table that holds the pack_entries relation/edge.
	PackEntriesTable = "session_questions"
	// PackEntriesInverseTable is the table name for the SessionQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "sessionquestion" package.
	PackEntriesInverseTable = "session_questions"
	// PackEntriesColumn is the table column denoting the pack_entries relation/edge.
	PackEntriesColumn = "session_id"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "attempts"
	// AttemptsInverseTable is the table name for the Attempt entity.
	// It exists in this package in order to avoid circular dependency with the "attempt" package.
	AttemptsInverseTable = "attempts"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "session_id"
)

// Columns holds all SQL columns for studysession fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSessSeq,
	FieldStatus,
	FieldPhase,
	FieldSessionType,
	FieldPlanKey,
	FieldConstraintReport,
	FieldCreatedAt,
	FieldServedAt,
	FieldCompletedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPlanned is the default value of the Status enum.
const DefaultStatus = StatusPlanned

// Status values.
const (
	StatusPlanned   Status = "planned"
	StatusServed    Status = "served"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPlanned, StatusServed, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("studysession: invalid enum value for status field: %q", s)
	}
}

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhaseA Phase = "A"
	PhaseB Phase = "B"
	PhaseC Phase = "C"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseA, PhaseB, PhaseC:
		return nil
	default:
		return fmt.Errorf("studysession: invalid enum value for phase field: %q", ph)
	}
}

// SessionType defines the type for the "session_type" enum field.
type SessionType string

// SessionTypeAdaptive is the default value of the SessionType enum.
const DefaultSessionType = SessionTypeAdaptive

// SessionType values.
const (
	SessionTypeAdaptive     SessionType = "adaptive"
	SessionTypeColdStart    SessionType = "cold_start"
	SessionTypeSimpleRandom SessionType = "simple_random"
)

func (st SessionType) String() string {
	return string(st)
}

// SessionTypeValidator is a validator for the "session_type" field enum values. It is called by the builders before save.
func SessionTypeValidator(st SessionType) error {
	switch st {
	case SessionTypeAdaptive, SessionTypeColdStart, SessionTypeSimpleRandom:
		return nil
	default:
		return fmt.Errorf("studysession: invalid enum value for session_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the StudySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySessSeq orders the results by the sess_seq field.
func BySessSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessSeq, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// BySessionType orders the results by the session_type field.
func BySessionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionType, opts...).ToFunc()
}

// ByPlanKey orders the results by the plan_key field.
func ByPlanKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByServedAt orders the results by the served_at field.
func ByServedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPackEntriesCount orders the results by pack_entries count.
func ByPackEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPackEntriesStep(), opts...)
	}
}

// ByPackEntries orders the results by pack_entries terms.
func ByPackEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPackEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPackEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PackEntriesInverseTable, SessionQuestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PackEntriesTable, PackEntriesColumn),
	)
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, AttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
