// Code generated by ent, DO NOT EDIT.

package pyqquestion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pyqquestion type in the database.
	Label = "pyq_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pyq_id"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldTypeOfQuestion holds the string denoting the type_of_question field in the database.
	FieldTypeOfQuestion = "type_of_question"
	// FieldDifficultyBand holds the string denoting the difficulty_band field in the database.
	FieldDifficultyBand = "difficulty_band"
	// FieldProblemStructure holds the string denoting the problem_structure field in the database.
	FieldProblemStructure = "problem_structure"
	// FieldConceptKeywords holds the string denoting the concept_keywords field in the database.
	FieldConceptKeywords = "concept_keywords"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldSlot holds the string denoting the slot field in the database.
	FieldSlot = "slot"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldQualityVerified holds the string denoting the quality_verified field in the database.
	FieldQualityVerified = "quality_verified"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the pyqquestion in the database.
	Table = "pyq_questions"
)

// Columns holds all SQL columns for pyqquestion fields.
var Columns = []string{
	FieldID,
	FieldStem,
	FieldCategory,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldDifficultyBand,
	FieldProblemStructure,
	FieldConceptKeywords,
	FieldYear,
	FieldSlot,
	FieldIsActive,
	FieldQualityVerified,
	FieldCreatedAt,
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
		return fmt.Errorf("pyqquestion: invalid enum value for difficulty_band field: %q", db)
	}
}

// OrderOption defines the ordering options for the PYQQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
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

// ByProblemStructure orders the results by the problem_structure field.
func ByProblemStructure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemStructure, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// BySlot orders the results by the slot field.
func BySlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlot, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByQualityVerified orders the results by the quality_verified field.
func ByQualityVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityVerified, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
