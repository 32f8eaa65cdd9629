// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/prepforge/quanta/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldID, id))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// AdminAnswer applies equality check predicate on the "admin_answer" field. It's identical to AdminAnswerEQ.
func AdminAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAdminAnswer, v))
}

// AdminSolution applies equality check predicate on the "admin_solution" field. It's identical to AdminSolutionEQ.
func AdminSolution(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAdminSolution, v))
}

// PrincipleToRemember applies equality check predicate on the "principle_to_remember" field. It's identical to PrincipleToRememberEQ.
func PrincipleToRemember(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrincipleToRemember, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldImageURL, v))
}

// RightAnswer applies equality check predicate on the "right_answer" field. It's identical to RightAnswerEQ.
func RightAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRightAnswer, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategory, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubcategory, v))
}

// TypeOfQuestion applies equality check predicate on the "type_of_question" field. It's identical to TypeOfQuestionEQ.
func TypeOfQuestion(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// DifficultyScore applies equality check predicate on the "difficulty_score" field. It's identical to DifficultyScoreEQ.
func DifficultyScore(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficultyScore, v))
}

// PyqFrequencyScore applies equality check predicate on the "pyq_frequency_score" field. It's identical to PyqFrequencyScoreEQ.
func PyqFrequencyScore(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// SolutionMethod applies equality check predicate on the "solution_method" field. It's identical to SolutionMethodEQ.
func SolutionMethod(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSolutionMethod, v))
}

// ProblemStructure applies equality check predicate on the "problem_structure" field. It's identical to ProblemStructureEQ.
func ProblemStructure(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldProblemStructure, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsActive, v))
}

// QualityVerified applies equality check predicate on the "quality_verified" field. It's identical to QualityVerifiedEQ.
func QualityVerified(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQualityVerified, v))
}

// EnrichmentError applies equality check predicate on the "enrichment_error" field. It's identical to EnrichmentErrorEQ.
func EnrichmentError(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldEnrichmentError, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPodID, v))
}

// LastEnrichmentAt applies equality check predicate on the "last_enrichment_at" field. It's identical to LastEnrichmentAtEQ.
func LastEnrichmentAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLastEnrichmentAt, v))
}

// EnrichedAt applies equality check predicate on the "enriched_at" field. It's identical to EnrichedAtEQ.
func EnrichedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldEnrichedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStem, v))
}

// AdminAnswerEQ applies the EQ predicate on the "admin_answer" field.
func AdminAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAdminAnswer, v))
}

// AdminAnswerNEQ applies the NEQ predicate on the "admin_answer" field.
func AdminAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAdminAnswer, v))
}

// AdminAnswerIn applies the In predicate on the "admin_answer" field.
func AdminAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAdminAnswer, vs...))
}

// AdminAnswerNotIn applies the NotIn predicate on the "admin_answer" field.
func AdminAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAdminAnswer, vs...))
}

// AdminAnswerGT applies the GT predicate on the "admin_answer" field.
func AdminAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAdminAnswer, v))
}

// AdminAnswerGTE applies the GTE predicate on the "admin_answer" field.
func AdminAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAdminAnswer, v))
}

// AdminAnswerLT applies the LT predicate on the "admin_answer" field.
func AdminAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAdminAnswer, v))
}

// AdminAnswerLTE applies the LTE predicate on the "admin_answer" field.
func AdminAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAdminAnswer, v))
}

// AdminAnswerContains applies the Contains predicate on the "admin_answer" field.
func AdminAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAdminAnswer, v))
}

// AdminAnswerHasPrefix applies the HasPrefix predicate on the "admin_answer" field.
func AdminAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAdminAnswer, v))
}

// AdminAnswerHasSuffix applies the HasSuffix predicate on the "admin_answer" field.
func AdminAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAdminAnswer, v))
}

// AdminAnswerEqualFold applies the EqualFold predicate on the "admin_answer" field.
func AdminAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAdminAnswer, v))
}

// AdminAnswerContainsFold applies the ContainsFold predicate on the "admin_answer" field.
func AdminAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAdminAnswer, v))
}

// AdminSolutionEQ applies the EQ predicate on the "admin_solution" field.
func AdminSolutionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAdminSolution, v))
}

// AdminSolutionNEQ applies the NEQ predicate on the "admin_solution" field.
func AdminSolutionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAdminSolution, v))
}

// AdminSolutionIn applies the In predicate on the "admin_solution" field.
func AdminSolutionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAdminSolution, vs...))
}

// AdminSolutionNotIn applies the NotIn predicate on the "admin_solution" field.
func AdminSolutionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAdminSolution, vs...))
}

// AdminSolutionGT applies the GT predicate on the "admin_solution" field.
func AdminSolutionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAdminSolution, v))
}

// AdminSolutionGTE applies the GTE predicate on the "admin_solution" field.
func AdminSolutionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAdminSolution, v))
}

// AdminSolutionLT applies the LT predicate on the "admin_solution" field.
func AdminSolutionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAdminSolution, v))
}

// AdminSolutionLTE applies the LTE predicate on the "admin_solution" field.
func AdminSolutionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAdminSolution, v))
}

// AdminSolutionContains applies the Contains predicate on the "admin_solution" field.
func AdminSolutionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAdminSolution, v))
}

// AdminSolutionHasPrefix applies the HasPrefix predicate on the "admin_solution" field.
func AdminSolutionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAdminSolution, v))
}

// AdminSolutionHasSuffix applies the HasSuffix predicate on the "admin_solution" field.
func AdminSolutionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAdminSolution, v))
}

// AdminSolutionIsNil applies the IsNil predicate on the "admin_solution" field.
func AdminSolutionIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldAdminSolution))
}

// AdminSolutionNotNil applies the NotNil predicate on the "admin_solution" field.
func AdminSolutionNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldAdminSolution))
}

// AdminSolutionEqualFold applies the EqualFold predicate on the "admin_solution" field.
func AdminSolutionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAdminSolution, v))
}

// AdminSolutionContainsFold applies the ContainsFold predicate on the "admin_solution" field.
func AdminSolutionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAdminSolution, v))
}

// PrincipleToRememberEQ applies the EQ predicate on the "principle_to_remember" field.
func PrincipleToRememberEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrincipleToRemember, v))
}

// PrincipleToRememberNEQ applies the NEQ predicate on the "principle_to_remember" field.
func PrincipleToRememberNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrincipleToRemember, v))
}

// PrincipleToRememberIn applies the In predicate on the "principle_to_remember" field.
func PrincipleToRememberIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrincipleToRemember, vs...))
}

// PrincipleToRememberNotIn applies the NotIn predicate on the "principle_to_remember" field.
func PrincipleToRememberNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrincipleToRemember, vs...))
}

// PrincipleToRememberGT applies the GT predicate on the "principle_to_remember" field.
func PrincipleToRememberGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrincipleToRemember, v))
}

// PrincipleToRememberGTE applies the GTE predicate on the "principle_to_remember" field.
func PrincipleToRememberGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrincipleToRemember, v))
}

// PrincipleToRememberLT applies the LT predicate on the "principle_to_remember" field.
func PrincipleToRememberLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrincipleToRemember, v))
}

// PrincipleToRememberLTE applies the LTE predicate on the "principle_to_remember" field.
func PrincipleToRememberLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrincipleToRemember, v))
}

// PrincipleToRememberContains applies the Contains predicate on the "principle_to_remember" field.
func PrincipleToRememberContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrincipleToRemember, v))
}

// PrincipleToRememberHasPrefix applies the HasPrefix predicate on the "principle_to_remember" field.
func PrincipleToRememberHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrincipleToRemember, v))
}

// PrincipleToRememberHasSuffix applies the HasSuffix predicate on the "principle_to_remember" field.
func PrincipleToRememberHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrincipleToRemember, v))
}

// PrincipleToRememberIsNil applies the IsNil predicate on the "principle_to_remember" field.
func PrincipleToRememberIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldPrincipleToRemember))
}

// PrincipleToRememberNotNil applies the NotNil predicate on the "principle_to_remember" field.
func PrincipleToRememberNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldPrincipleToRemember))
}

// PrincipleToRememberEqualFold applies the EqualFold predicate on the "principle_to_remember" field.
func PrincipleToRememberEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrincipleToRemember, v))
}

// PrincipleToRememberContainsFold applies the ContainsFold predicate on the "principle_to_remember" field.
func PrincipleToRememberContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrincipleToRemember, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldImageURL, v))
}

// RightAnswerEQ applies the EQ predicate on the "right_answer" field.
func RightAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRightAnswer, v))
}

// RightAnswerNEQ applies the NEQ predicate on the "right_answer" field.
func RightAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldRightAnswer, v))
}

// RightAnswerIn applies the In predicate on the "right_answer" field.
func RightAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldRightAnswer, vs...))
}

// RightAnswerNotIn applies the NotIn predicate on the "right_answer" field.
func RightAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldRightAnswer, vs...))
}

// RightAnswerGT applies the GT predicate on the "right_answer" field.
func RightAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldRightAnswer, v))
}

// RightAnswerGTE applies the GTE predicate on the "right_answer" field.
func RightAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldRightAnswer, v))
}

// RightAnswerLT applies the LT predicate on the "right_answer" field.
func RightAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldRightAnswer, v))
}

// RightAnswerLTE applies the LTE predicate on the "right_answer" field.
func RightAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldRightAnswer, v))
}

// RightAnswerContains applies the Contains predicate on the "right_answer" field.
func RightAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldRightAnswer, v))
}

// RightAnswerHasPrefix applies the HasPrefix predicate on the "right_answer" field.
func RightAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldRightAnswer, v))
}

// RightAnswerHasSuffix applies the HasSuffix predicate on the "right_answer" field.
func RightAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldRightAnswer, v))
}

// RightAnswerIsNil applies the IsNil predicate on the "right_answer" field.
func RightAnswerIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldRightAnswer))
}

// RightAnswerNotNil applies the NotNil predicate on the "right_answer" field.
func RightAnswerNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldRightAnswer))
}

// RightAnswerEqualFold applies the EqualFold predicate on the "right_answer" field.
func RightAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldRightAnswer, v))
}

// RightAnswerContainsFold applies the ContainsFold predicate on the "right_answer" field.
func RightAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldRightAnswer, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCategory, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryIsNil applies the IsNil predicate on the "subcategory" field.
func SubcategoryIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSubcategory))
}

// SubcategoryNotNil applies the NotNil predicate on the "subcategory" field.
func SubcategoryNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSubcategory))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubcategory, v))
}

// TypeOfQuestionEQ applies the EQ predicate on the "type_of_question" field.
func TypeOfQuestionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionNEQ applies the NEQ predicate on the "type_of_question" field.
func TypeOfQuestionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIn applies the In predicate on the "type_of_question" field.
func TypeOfQuestionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionNotIn applies the NotIn predicate on the "type_of_question" field.
func TypeOfQuestionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionGT applies the GT predicate on the "type_of_question" field.
func TypeOfQuestionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionGTE applies the GTE predicate on the "type_of_question" field.
func TypeOfQuestionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLT applies the LT predicate on the "type_of_question" field.
func TypeOfQuestionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLTE applies the LTE predicate on the "type_of_question" field.
func TypeOfQuestionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContains applies the Contains predicate on the "type_of_question" field.
func TypeOfQuestionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasPrefix applies the HasPrefix predicate on the "type_of_question" field.
func TypeOfQuestionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasSuffix applies the HasSuffix predicate on the "type_of_question" field.
func TypeOfQuestionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIsNil applies the IsNil predicate on the "type_of_question" field.
func TypeOfQuestionIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldTypeOfQuestion))
}

// TypeOfQuestionNotNil applies the NotNil predicate on the "type_of_question" field.
func TypeOfQuestionNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldTypeOfQuestion))
}

// TypeOfQuestionEqualFold applies the EqualFold predicate on the "type_of_question" field.
func TypeOfQuestionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContainsFold applies the ContainsFold predicate on the "type_of_question" field.
func TypeOfQuestionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTypeOfQuestion, v))
}

// DifficultyBandEQ applies the EQ predicate on the "difficulty_band" field.
func DifficultyBandEQ(v DifficultyBand) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficultyBand, v))
}

// DifficultyBandNEQ applies the NEQ predicate on the "difficulty_band" field.
func DifficultyBandNEQ(v DifficultyBand) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficultyBand, v))
}

// DifficultyBandIn applies the In predicate on the "difficulty_band" field.
func DifficultyBandIn(vs ...DifficultyBand) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficultyBand, vs...))
}

// DifficultyBandNotIn applies the NotIn predicate on the "difficulty_band" field.
func DifficultyBandNotIn(vs ...DifficultyBand) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficultyBand, vs...))
}

// DifficultyBandIsNil applies the IsNil predicate on the "difficulty_band" field.
func DifficultyBandIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldDifficultyBand))
}

// DifficultyBandNotNil applies the NotNil predicate on the "difficulty_band" field.
func DifficultyBandNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldDifficultyBand))
}

// DifficultyScoreEQ applies the EQ predicate on the "difficulty_score" field.
func DifficultyScoreEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficultyScore, v))
}

// DifficultyScoreNEQ applies the NEQ predicate on the "difficulty_score" field.
func DifficultyScoreNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficultyScore, v))
}

// DifficultyScoreIn applies the In predicate on the "difficulty_score" field.
func DifficultyScoreIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficultyScore, vs...))
}

// DifficultyScoreNotIn applies the NotIn predicate on the "difficulty_score" field.
func DifficultyScoreNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficultyScore, vs...))
}

// DifficultyScoreGT applies the GT predicate on the "difficulty_score" field.
func DifficultyScoreGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficultyScore, v))
}

// DifficultyScoreGTE applies the GTE predicate on the "difficulty_score" field.
func DifficultyScoreGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficultyScore, v))
}

// DifficultyScoreLT applies the LT predicate on the "difficulty_score" field.
func DifficultyScoreLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficultyScore, v))
}

// DifficultyScoreLTE applies the LTE predicate on the "difficulty_score" field.
func DifficultyScoreLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficultyScore, v))
}

// DifficultyScoreIsNil applies the IsNil predicate on the "difficulty_score" field.
func DifficultyScoreIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldDifficultyScore))
}

// DifficultyScoreNotNil applies the NotNil predicate on the "difficulty_score" field.
func DifficultyScoreNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldDifficultyScore))
}

// PyqFrequencyScoreEQ applies the EQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreNEQ applies the NEQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreIn applies the In predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreNotIn applies the NotIn predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreGT applies the GT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreGTE applies the GTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLT applies the LT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLTE applies the LTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreIsNil applies the IsNil predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldPyqFrequencyScore))
}

// PyqFrequencyScoreNotNil applies the NotNil predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldPyqFrequencyScore))
}

// CoreConceptsIsNil applies the IsNil predicate on the "core_concepts" field.
func CoreConceptsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldCoreConcepts))
}

// CoreConceptsNotNil applies the NotNil predicate on the "core_concepts" field.
func CoreConceptsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldCoreConcepts))
}

// SolutionMethodEQ applies the EQ predicate on the "solution_method" field.
func SolutionMethodEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSolutionMethod, v))
}

// SolutionMethodNEQ applies the NEQ predicate on the "solution_method" field.
func SolutionMethodNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSolutionMethod, v))
}

// SolutionMethodIn applies the In predicate on the "solution_method" field.
func SolutionMethodIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSolutionMethod, vs...))
}

// SolutionMethodNotIn applies the NotIn predicate on the "solution_method" field.
func SolutionMethodNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSolutionMethod, vs...))
}

// SolutionMethodGT applies the GT predicate on the "solution_method" field.
func SolutionMethodGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSolutionMethod, v))
}

// SolutionMethodGTE applies the GTE predicate on the "solution_method" field.
func SolutionMethodGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSolutionMethod, v))
}

// SolutionMethodLT applies the LT predicate on the "solution_method" field.
func SolutionMethodLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSolutionMethod, v))
}

// SolutionMethodLTE applies the LTE predicate on the "solution_method" field.
func SolutionMethodLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSolutionMethod, v))
}

// SolutionMethodContains applies the Contains predicate on the "solution_method" field.
func SolutionMethodContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSolutionMethod, v))
}

// SolutionMethodHasPrefix applies the HasPrefix predicate on the "solution_method" field.
func SolutionMethodHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSolutionMethod, v))
}

// SolutionMethodHasSuffix applies the HasSuffix predicate on the "solution_method" field.
func SolutionMethodHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSolutionMethod, v))
}

// SolutionMethodIsNil applies the IsNil predicate on the "solution_method" field.
func SolutionMethodIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSolutionMethod))
}

// SolutionMethodNotNil applies the NotNil predicate on the "solution_method" field.
func SolutionMethodNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSolutionMethod))
}

// SolutionMethodEqualFold applies the EqualFold predicate on the "solution_method" field.
func SolutionMethodEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSolutionMethod, v))
}

// SolutionMethodContainsFold applies the ContainsFold predicate on the "solution_method" field.
func SolutionMethodContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSolutionMethod, v))
}

// ConceptDifficultyIsNil applies the IsNil predicate on the "concept_difficulty" field.
func ConceptDifficultyIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldConceptDifficulty))
}

// ConceptDifficultyNotNil applies the NotNil predicate on the "concept_difficulty" field.
func ConceptDifficultyNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldConceptDifficulty))
}

// OperationsRequiredIsNil applies the IsNil predicate on the "operations_required" field.
func OperationsRequiredIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOperationsRequired))
}

// OperationsRequiredNotNil applies the NotNil predicate on the "operations_required" field.
func OperationsRequiredNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOperationsRequired))
}

// ProblemStructureEQ applies the EQ predicate on the "problem_structure" field.
func ProblemStructureEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldProblemStructure, v))
}

// ProblemStructureNEQ applies the NEQ predicate on the "problem_structure" field.
func ProblemStructureNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldProblemStructure, v))
}

// ProblemStructureIn applies the In predicate on the "problem_structure" field.
func ProblemStructureIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldProblemStructure, vs...))
}

// ProblemStructureNotIn applies the NotIn predicate on the "problem_structure" field.
func ProblemStructureNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldProblemStructure, vs...))
}

// ProblemStructureGT applies the GT predicate on the "problem_structure" field.
func ProblemStructureGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldProblemStructure, v))
}

// ProblemStructureGTE applies the GTE predicate on the "problem_structure" field.
func ProblemStructureGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldProblemStructure, v))
}

// ProblemStructureLT applies the LT predicate on the "problem_structure" field.
func ProblemStructureLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldProblemStructure, v))
}

// ProblemStructureLTE applies the LTE predicate on the "problem_structure" field.
func ProblemStructureLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldProblemStructure, v))
}

// ProblemStructureContains applies the Contains predicate on the "problem_structure" field.
func ProblemStructureContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldProblemStructure, v))
}

// ProblemStructureHasPrefix applies the HasPrefix predicate on the "problem_structure" field.
func ProblemStructureHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldProblemStructure, v))
}

// ProblemStructureHasSuffix applies the HasSuffix predicate on the "problem_structure" field.
func ProblemStructureHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldProblemStructure, v))
}

// ProblemStructureIsNil applies the IsNil predicate on the "problem_structure" field.
func ProblemStructureIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldProblemStructure))
}

// ProblemStructureNotNil applies the NotNil predicate on the "problem_structure" field.
func ProblemStructureNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldProblemStructure))
}

// ProblemStructureEqualFold applies the EqualFold predicate on the "problem_structure" field.
func ProblemStructureEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldProblemStructure, v))
}

// ProblemStructureContainsFold applies the ContainsFold predicate on the "problem_structure" field.
func ProblemStructureContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldProblemStructure, v))
}

// ConceptKeywordsIsNil applies the IsNil predicate on the "concept_keywords" field.
func ConceptKeywordsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldConceptKeywords))
}

// ConceptKeywordsNotNil applies the NotNil predicate on the "concept_keywords" field.
func ConceptKeywordsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldConceptKeywords))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIsActive, v))
}

// QualityVerifiedEQ applies the EQ predicate on the "quality_verified" field.
func QualityVerifiedEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQualityVerified, v))
}

// QualityVerifiedNEQ applies the NEQ predicate on the "quality_verified" field.
func QualityVerifiedNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQualityVerified, v))
}

// ConceptExtractionStatusEQ applies the EQ predicate on the "concept_extraction_status" field.
func ConceptExtractionStatusEQ(v ConceptExtractionStatus) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldConceptExtractionStatus, v))
}

// ConceptExtractionStatusNEQ applies the NEQ predicate on the "concept_extraction_status" field.
func ConceptExtractionStatusNEQ(v ConceptExtractionStatus) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldConceptExtractionStatus, v))
}

// ConceptExtractionStatusIn applies the In predicate on the "concept_extraction_status" field.
func ConceptExtractionStatusIn(vs ...ConceptExtractionStatus) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldConceptExtractionStatus, vs...))
}

// ConceptExtractionStatusNotIn applies the NotIn predicate on the "concept_extraction_status" field.
func ConceptExtractionStatusNotIn(vs ...ConceptExtractionStatus) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldConceptExtractionStatus, vs...))
}

// FailedChecksIsNil applies the IsNil predicate on the "failed_checks" field.
func FailedChecksIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldFailedChecks))
}

// FailedChecksNotNil applies the NotNil predicate on the "failed_checks" field.
func FailedChecksNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldFailedChecks))
}

// EnrichmentStatusEQ applies the EQ predicate on the "enrichment_status" field.
func EnrichmentStatusEQ(v EnrichmentStatus) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldEnrichmentStatus, v))
}

// EnrichmentStatusNEQ applies the NEQ predicate on the "enrichment_status" field.
func EnrichmentStatusNEQ(v EnrichmentStatus) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldEnrichmentStatus, v))
}

// EnrichmentStatusIn applies the In predicate on the "enrichment_status" field.
func EnrichmentStatusIn(vs ...EnrichmentStatus) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldEnrichmentStatus, vs...))
}

// EnrichmentStatusNotIn applies the NotIn predicate on the "enrichment_status" field.
func EnrichmentStatusNotIn(vs ...EnrichmentStatus) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldEnrichmentStatus, vs...))
}

// EnrichmentErrorEQ applies the EQ predicate on the "enrichment_error" field.
func EnrichmentErrorEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldEnrichmentError, v))
}

// EnrichmentErrorNEQ applies the NEQ predicate on the "enrichment_error" field.
func EnrichmentErrorNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldEnrichmentError, v))
}

// EnrichmentErrorIn applies the In predicate on the "enrichment_error" field.
func EnrichmentErrorIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldEnrichmentError, vs...))
}

// EnrichmentErrorNotIn applies the NotIn predicate on the "enrichment_error" field.
func EnrichmentErrorNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldEnrichmentError, vs...))
}

// EnrichmentErrorGT applies the GT predicate on the "enrichment_error" field.
func EnrichmentErrorGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldEnrichmentError, v))
}

// EnrichmentErrorGTE applies the GTE predicate on the "enrichment_error" field.
func EnrichmentErrorGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldEnrichmentError, v))
}

// EnrichmentErrorLT applies the LT predicate on the "enrichment_error" field.
func EnrichmentErrorLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldEnrichmentError, v))
}

// EnrichmentErrorLTE applies the LTE predicate on the "enrichment_error" field.
func EnrichmentErrorLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldEnrichmentError, v))
}

// EnrichmentErrorContains applies the Contains predicate on the "enrichment_error" field.
func EnrichmentErrorContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldEnrichmentError, v))
}

// EnrichmentErrorHasPrefix applies the HasPrefix predicate on the "enrichment_error" field.
func EnrichmentErrorHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldEnrichmentError, v))
}

// EnrichmentErrorHasSuffix applies the HasSuffix predicate on the "enrichment_error" field.
func EnrichmentErrorHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldEnrichmentError, v))
}

// EnrichmentErrorIsNil applies the IsNil predicate on the "enrichment_error" field.
func EnrichmentErrorIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldEnrichmentError))
}

// EnrichmentErrorNotNil applies the NotNil predicate on the "enrichment_error" field.
func EnrichmentErrorNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldEnrichmentError))
}

// EnrichmentErrorEqualFold applies the EqualFold predicate on the "enrichment_error" field.
func EnrichmentErrorEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldEnrichmentError, v))
}

// EnrichmentErrorContainsFold applies the ContainsFold predicate on the "enrichment_error" field.
func EnrichmentErrorContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldEnrichmentError, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPodID, v))
}

// LastEnrichmentAtEQ applies the EQ predicate on the "last_enrichment_at" field.
func LastEnrichmentAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLastEnrichmentAt, v))
}

// LastEnrichmentAtNEQ applies the NEQ predicate on the "last_enrichment_at" field.
func LastEnrichmentAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldLastEnrichmentAt, v))
}

// LastEnrichmentAtIn applies the In predicate on the "last_enrichment_at" field.
func LastEnrichmentAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldLastEnrichmentAt, vs...))
}

// LastEnrichmentAtNotIn applies the NotIn predicate on the "last_enrichment_at" field.
func LastEnrichmentAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldLastEnrichmentAt, vs...))
}

// LastEnrichmentAtGT applies the GT predicate on the "last_enrichment_at" field.
func LastEnrichmentAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldLastEnrichmentAt, v))
}

// LastEnrichmentAtGTE applies the GTE predicate on the "last_enrichment_at" field.
func LastEnrichmentAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldLastEnrichmentAt, v))
}

// LastEnrichmentAtLT applies the LT predicate on the "last_enrichment_at" field.
func LastEnrichmentAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldLastEnrichmentAt, v))
}

// LastEnrichmentAtLTE applies the LTE predicate on the "last_enrichment_at" field.
func LastEnrichmentAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldLastEnrichmentAt, v))
}

// LastEnrichmentAtIsNil applies the IsNil predicate on the "last_enrichment_at" field.
func LastEnrichmentAtIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldLastEnrichmentAt))
}

// LastEnrichmentAtNotNil applies the NotNil predicate on the "last_enrichment_at" field.
func LastEnrichmentAtNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldLastEnrichmentAt))
}

// EnrichedAtEQ applies the EQ predicate on the "enriched_at" field.
func EnrichedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldEnrichedAt, v))
}

// EnrichedAtNEQ applies the NEQ predicate on the "enriched_at" field.
func EnrichedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldEnrichedAt, v))
}

// EnrichedAtIn applies the In predicate on the "enriched_at" field.
func EnrichedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldEnrichedAt, vs...))
}

// EnrichedAtNotIn applies the NotIn predicate on the "enriched_at" field.
func EnrichedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldEnrichedAt, vs...))
}

// EnrichedAtGT applies the GT predicate on the "enriched_at" field.
func EnrichedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldEnrichedAt, v))
}

// EnrichedAtGTE applies the GTE predicate on the "enriched_at" field.
func EnrichedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldEnrichedAt, v))
}

// EnrichedAtLT applies the LT predicate on the "enriched_at" field.
func EnrichedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldEnrichedAt, v))
}

// EnrichedAtLTE applies the LTE predicate on the "enriched_at" field.
func EnrichedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldEnrichedAt, v))
}

// EnrichedAtIsNil applies the IsNil predicate on the "enriched_at" field.
func EnrichedAtIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldEnrichedAt))
}

// EnrichedAtNotNil applies the NotNil predicate on the "enriched_at" field.
func EnrichedAtNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldEnrichedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.Attempt) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPackEntries applies the HasEdge predicate on the "pack_entries" edge.
func HasPackEntries() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PackEntriesTable, PackEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackEntriesWith applies the HasEdge predicate on the "pack_entries" edge with a given conditions (other predicates).
func HasPackEntriesWith(preds ...predicate.SessionQuestion) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newPackEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAudits applies the HasEdge predicate on the "audits" edge.
func HasAudits() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditsTable, AuditsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditsWith applies the HasEdge predicate on the "audits" edge with a given conditions (other predicates).
func HasAuditsWith(preds ...predicate.EnrichmentAudit) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newAuditsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
