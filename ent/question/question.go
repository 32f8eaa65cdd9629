// Code generated by ent, DO NOT EDIT.

package question

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "question_id"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldAdminAnswer holds the string denoting the admin_answer field in the database.
	FieldAdminAnswer = "admin_answer"
	// FieldAdminSolution holds the string denoting the admin_solution field in the database.
	FieldAdminSolution = "admin_solution"
	// FieldPrincipleToRemember holds the string denoting the principle_to_remember field in the database.
	FieldPrincipleToRemember = "principle_to_remember"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldRightAnswer holds the string denoting the right_answer field in the database.
	FieldRightAnswer = "right_answer"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldTypeOfQuestion holds the string denoting the type_of_question field in the database.
	FieldTypeOfQuestion = "type_of_question"
	// FieldDifficultyBand holds the string denoting the difficulty_band field in the database.
	FieldDifficultyBand = "difficulty_band"
	// FieldDifficultyScore holds the string denoting the difficulty_score field in the database.
	FieldDifficultyScore = "difficulty_score"
	// FieldPyqFrequencyScore holds the string denoting the pyq_frequency_score field in the database.
	FieldPyqFrequencyScore = "pyq_frequency_score"
	// FieldCoreConcepts holds the string denoting the core_concepts field in the database.
	FieldCoreConcepts = "core_concepts"
	// FieldSolutionMethod holds the string denoting the solution_method field in the database.
	FieldSolutionMethod = "solution_method"
	// FieldConceptDifficulty holds the string denoting the concept_difficulty field in the database.
	FieldConceptDifficulty = "concept_difficulty"
	// FieldOperationsRequired holds the string denoting the operations_required field in the database.
	FieldOperationsRequired = "operations_required"
	// FieldProblemStructure holds the string denoting the problem_structure field in the database.
	FieldProblemStructure = "problem_structure"
	// FieldConceptKeywords holds the string denoting the concept_keywords field in the database.
	FieldConceptKeywords = "concept_keywords"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldQualityVerified holds the string denoting the quality_verified field in the database.
	FieldQualityVerified = "quality_verified"
	// FieldConceptExtractionStatus holds the string denoting the concept_extraction_status field in the database.
	FieldConceptExtractionStatus = "concept_extraction_status"
	// FieldFailedChecks holds the string denoting the failed_checks field in the database.
	FieldFailedChecks = "failed_checks"
	// FieldEnrichmentStatus holds the string denoting the enrichment_status field in the database.
	FieldEnrichmentStatus = "enrichment_status"
	// FieldEnrichmentError holds the string denoting the enrichment_error field in the database.
	FieldEnrichmentError = "enrichment_error"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastEnrichmentAt holds the string denoting the last_enrichment_at field in the database.
	FieldLastEnrichmentAt = "last_enrichment_at"
	// FieldEnrichedAt holds the string denoting the enriched_at field in the database.
	FieldEnrichedAt = "enriched_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// EdgePackEntries holds the string denoting the pack_entries edge name in mutations.
	EdgePackEntries = "pack_entries"
	// EdgeAudits holds the string denoting the audits edge name in mutations.
	EdgeAudits = "audits"
	// AttemptFieldID holds the string denoting the ID field of the Attempt.
	AttemptFieldID = "attempt_id"
	// SessionQuestionFieldID holds the string denoting the ID field of the SessionQuestion.
	SessionQuestionFieldID = "entry_id"
	// EnrichmentAuditFieldID holds the string denoting the ID field of the EnrichmentAudit.
	EnrichmentAuditFieldID = "audit_id"
	// Table holds the table name of the question in the database.
	Table = "questions"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "attempts"
	// AttemptsInverseTable is the table name for the Attempt entity.
	// It exists in this package in order to avoid circular dependency with the "attempt" package.
	AttemptsInverseTable = "attempts"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "question_id"
	// PackEntriesTable is the table that holds the pack_entries relation/edge.
	PackEntriesTable = "session_questions"
	// PackEntriesInverseTable is the table name for the SessionQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "sessionquestion" package.
	PackEntriesInverseTable = "session_questions"
	// PackEntriesColumn is the table column denoting the pack_entries relation/edge.
	PackEntriesColumn = "question_id"
	// AuditsTable is the table that holds the audits relation/edge.
	AuditsTable = "enrichment_audits"
	// AuditsInverseTable is the table name for the EnrichmentAudit entity.
	// It exists in this package in order to avoid circular dependency with the "enrichmentaudit" package.
	AuditsInverseTable = "enrichment_audits"
	// AuditsColumn is the table column denoting the audits relation/edge.
	AuditsColumn = "question_id"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldStem,
	FieldAdminAnswer,
	FieldAdminSolution,
	FieldPrincipleToRemember,
	FieldImageURL,
	FieldRightAnswer,
	FieldCategory,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldDifficultyBand,
	FieldDifficultyScore,
	FieldPyqFrequencyScore,
	FieldCoreConcepts,
	FieldSolutionMethod,
	FieldConceptDifficulty,
	FieldOperationsRequired,
	FieldProblemStructure,
	FieldConceptKeywords,
	FieldIsActive,
	FieldQualityVerified,
	FieldConceptExtractionStatus,
	FieldFailedChecks,
	FieldEnrichmentStatus,
	FieldEnrichmentError,
	FieldPodID,
	FieldLastEnrichmentAt,
	FieldEnrichedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultQualityVerified holds the default value on creation for the "quality_verified" field.
	DefaultQualityVerified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DifficultyBand defines the type for the "difficulty_band" enum field.
type DifficultyBand string

// DifficultyBand values.
const (
	DifficultyBandEasy   DifficultyBand = "Easy"
	DifficultyBandMedium DifficultyBand = "Medium"
	DifficultyBandHard   DifficultyBand = "Hard"
)

func (db DifficultyBand) String() string {
	return string(db)
}

// DifficultyBandValidator is a validator for the "difficulty_band" field enum values. It is called by the builders before save.
func DifficultyBandValidator(db DifficultyBand) error {
	switch db {
	case DifficultyBandEasy, DifficultyBandMedium, DifficultyBandHard:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for difficulty_band field: %q", db)
	}
}

// ConceptExtractionStatus defines the type for the "concept_extraction_status" enum field.
type ConceptExtractionStatus string

// ConceptExtractionStatusPending is the default value of the ConceptExtractionStatus enum.
const DefaultConceptExtractionStatus = ConceptExtractionStatusPending

// ConceptExtractionStatus values.
const (
	ConceptExtractionStatusPending   ConceptExtractionStatus = "pending"
	ConceptExtractionStatusCompleted ConceptExtractionStatus = "completed"
)

func (ces ConceptExtractionStatus) String() string {
	return string(ces)
}

// ConceptExtractionStatusValidator is a validator for the "concept_extraction_status" field enum values. It is called by the builders before save.
func ConceptExtractionStatusValidator(ces ConceptExtractionStatus) error {
	switch ces {
	case ConceptExtractionStatusPending, ConceptExtractionStatusCompleted:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for concept_extraction_status field: %q", ces)
	}
}

// EnrichmentStatus defines the type for the "enrichment_status" enum field.
type EnrichmentStatus string

// EnrichmentStatusPending is the default value of the EnrichmentStatus enum.
const DefaultEnrichmentStatus = EnrichmentStatusPending

// EnrichmentStatus values.
const (
	EnrichmentStatusPending   EnrichmentStatus = "pending"
	EnrichmentStatusEnriching EnrichmentStatus = "enriching"
	EnrichmentStatusCompleted EnrichmentStatus = "completed"
	EnrichmentStatusFailed    EnrichmentStatus = "failed"
)

func (es EnrichmentStatus) String() string {
	return string(es)
}

// EnrichmentStatusValidator is a validator for the "enrichment_status" field enum values. It is called by the builders before save.
func EnrichmentStatusValidator(es EnrichmentStatus) error {
	switch es {
	case EnrichmentStatusPending, EnrichmentStatusEnriching, EnrichmentStatusCompleted, EnrichmentStatusFailed:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for enrichment_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
}

// ByAdminAnswer orders the results by the admin_answer field.
func ByAdminAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminAnswer, opts...).ToFunc()
}

// ByAdminSolution orders the results by the admin_solution field.
func ByAdminSolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminSolution, opts...).ToFunc()
}

// ByPrincipleToRemember orders the results by the principle_to_remember field.
func ByPrincipleToRemember(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrincipleToRemember, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByRightAnswer orders the results by the right_answer field.
func ByRightAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRightAnswer, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByTypeOfQuestion orders the results by the type_of_question field.
func ByTypeOfQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfQuestion, opts...).ToFunc()
}

// ByDifficultyBand orders the results by the difficulty_band field.
func ByDifficultyBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyBand, opts...).ToFunc()
}

// ByDifficultyScore orders the results by the difficulty_score field.
func ByDifficultyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyScore, opts...).ToFunc()
}

// ByPyqFrequencyScore orders the results by the pyq_frequency_score field.
func ByPyqFrequencyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPyqFrequencyScore, opts...).ToFunc()
}

// BySolutionMethod orders the results by the solution_method field.
func BySolutionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionMethod, opts...).ToFunc()
}

// ByProblemStructure orders the results by the problem_structure field.
func ByProblemStructure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemStructure, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByQualityVerified orders the results by the quality_verified field.
func ByQualityVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityVerified, opts...).ToFunc()
}

// ByConceptExtractionStatus orders the results by the concept_extraction_status field.
func ByConceptExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptExtractionStatus, opts...).ToFunc()
}

// ByEnrichmentStatus orders the results by the enrichment_status field.
func ByEnrichmentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichmentStatus, opts...).ToFunc()
}

// ByEnrichmentError orders the results by the enrichment_error field.
func ByEnrichmentError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichmentError, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastEnrichmentAt orders the results by the last_enrichment_at field.
func ByLastEnrichmentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEnrichmentAt, opts...).ToFunc()
}

// ByEnrichedAt orders the results by the enriched_at field.
func ByEnrichedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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

// ByAuditsCount orders the results by audits count.
func ByAuditsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditsStep(), opts...)
	}
}

// ByAudits orders the results by audits terms.
func ByAudits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, AttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
func newPackEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PackEntriesInverseTable, SessionQuestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PackEntriesTable, PackEntriesColumn),
	)
}
func newAuditsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditsInverseTable, EnrichmentAuditFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditsTable, AuditsColumn),
	)
}
