// Code generated by ent, DO NOT EDIT.

package mastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mastery type in the database.
	Label = "mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "mastery_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldTypeOfQuestion holds the string denoting the type_of_question field in the database.
	FieldTypeOfQuestion = "type_of_question"
	// FieldAccEasy holds the string denoting the acc_easy field in the database.
	FieldAccEasy = "acc_easy"
	// FieldAccMedium holds the string denoting the acc_medium field in the database.
	FieldAccMedium = "acc_medium"
	// FieldAccHard holds the string denoting the acc_hard field in the database.
	FieldAccHard = "acc_hard"
	// FieldEfficiencyScore holds the string denoting the efficiency_score field in the database.
	FieldEfficiencyScore = "efficiency_score"
	// FieldExposureCount holds the string denoting the exposure_count field in the database.
	FieldExposureCount = "exposure_count"
	// FieldMasteryPct holds the string denoting the mastery_pct field in the database.
	FieldMasteryPct = "mastery_pct"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the mastery in the database.
	Table = "masteries"
)

// Columns holds all SQL columns for mastery fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldAccEasy,
	FieldAccMedium,
	FieldAccHard,
	FieldEfficiencyScore,
	FieldExposureCount,
	FieldMasteryPct,
	FieldLastActivityAt,
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
	// DefaultTypeOfQuestion holds the default value on creation for the "type_of_question" field.
	DefaultTypeOfQuestion string
	// DefaultAccEasy holds the default value on creation for the "acc_easy" field.
	DefaultAccEasy float64
	// DefaultAccMedium holds the default value on creation for the "acc_medium" field.
	DefaultAccMedium float64
	// DefaultAccHard holds the default value on creation for the "acc_hard" field.
	DefaultAccHard float64
	// DefaultEfficiencyScore holds the default value on creation for the "efficiency_score" field.
	DefaultEfficiencyScore float64
	// DefaultExposureCount holds the default value on creation for the "exposure_count" field.
	DefaultExposureCount int
	// DefaultMasteryPct holds the default value on creation for the "mastery_pct" field.
	DefaultMasteryPct float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Mastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByTypeOfQuestion orders the results by the type_of_question field.
func ByTypeOfQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfQuestion, opts...).ToFunc()
}

// ByAccEasy orders the results by the acc_easy field.
func ByAccEasy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccEasy, opts...).ToFunc()
}

// ByAccMedium orders the results by the acc_medium field.
func ByAccMedium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccMedium, opts...).ToFunc()
}

// ByAccHard orders the results by the acc_hard field.
func ByAccHard(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccHard, opts...).ToFunc()
}

// ByEfficiencyScore orders the results by the efficiency_score field.
func ByEfficiencyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEfficiencyScore, opts...).ToFunc()
}

// ByExposureCount orders the results by the exposure_count field.
func ByExposureCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExposureCount, opts...).ToFunc()
}

// ByMasteryPct orders the results by the mastery_pct field.
func ByMasteryPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryPct, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
