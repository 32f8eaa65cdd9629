// Code generated by ent, DO NOT EDIT.

package pyqquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldID, id))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldStem, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCategory, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldSubcategory, v))
}

// TypeOfQuestion applies equality check predicate on the "type_of_question" field. It's identical to TypeOfQuestionEQ.
func TypeOfQuestion(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// ProblemStructure applies equality check predicate on the "problem_structure" field. It's identical to ProblemStructureEQ.
func ProblemStructure(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldProblemStructure, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldYear, v))
}

// Slot applies equality check predicate on the "slot" field. It's identical to SlotEQ.
func Slot(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldSlot, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldIsActive, v))
}

// QualityVerified applies equality check predicate on the "quality_verified" field. It's identical to QualityVerifiedEQ.
func QualityVerified(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldQualityVerified, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldStem, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldCategory, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldSubcategory, v))
}

// TypeOfQuestionEQ applies the EQ predicate on the "type_of_question" field.
func TypeOfQuestionEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionNEQ applies the NEQ predicate on the "type_of_question" field.
func TypeOfQuestionNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIn applies the In predicate on the "type_of_question" field.
func TypeOfQuestionIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionNotIn applies the NotIn predicate on the "type_of_question" field.
func TypeOfQuestionNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionGT applies the GT predicate on the "type_of_question" field.
func TypeOfQuestionGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionGTE applies the GTE predicate on the "type_of_question" field.
func TypeOfQuestionGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLT applies the LT predicate on the "type_of_question" field.
func TypeOfQuestionLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLTE applies the LTE predicate on the "type_of_question" field.
func TypeOfQuestionLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContains applies the Contains predicate on the "type_of_question" field.
func TypeOfQuestionContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasPrefix applies the HasPrefix predicate on the "type_of_question" field.
func TypeOfQuestionHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasSuffix applies the HasSuffix predicate on the "type_of_question" field.
func TypeOfQuestionHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionEqualFold applies the EqualFold predicate on the "type_of_question" field.
func TypeOfQuestionEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContainsFold applies the ContainsFold predicate on the "type_of_question" field.
func TypeOfQuestionContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldTypeOfQuestion, v))
}

// DifficultyBandEQ applies the EQ predicate on the "difficulty_band" field.
func DifficultyBandEQ(v DifficultyBand) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldDifficultyBand, v))
}

// DifficultyBandNEQ applies the NEQ predicate on the "difficulty_band" field.
func DifficultyBandNEQ(v DifficultyBand) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldDifficultyBand, v))
}

// DifficultyBandIn applies the In predicate on the "difficulty_band" field.
func DifficultyBandIn(vs ...DifficultyBand) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldDifficultyBand, vs...))
}

// DifficultyBandNotIn applies the NotIn predicate on the "difficulty_band" field.
func DifficultyBandNotIn(vs ...DifficultyBand) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldDifficultyBand, vs...))
}

// DifficultyBandIsNil applies the IsNil predicate on the "difficulty_band" field.
func DifficultyBandIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldDifficultyBand))
}

// DifficultyBandNotNil applies the NotNil predicate on the "difficulty_band" field.
func DifficultyBandNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldDifficultyBand))
}

// ProblemStructureEQ applies the EQ predicate on the "problem_structure" field.
func ProblemStructureEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldProblemStructure, v))
}

// ProblemStructureNEQ applies the NEQ predicate on the "problem_structure" field.
func ProblemStructureNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldProblemStructure, v))
}

// ProblemStructureIn applies the In predicate on the "problem_structure" field.
func ProblemStructureIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldProblemStructure, vs...))
}

// ProblemStructureNotIn applies the NotIn predicate on the "problem_structure" field.
func ProblemStructureNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldProblemStructure, vs...))
}

// ProblemStructureGT applies the GT predicate on the "problem_structure" field.
func ProblemStructureGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldProblemStructure, v))
}

// ProblemStructureGTE applies the GTE predicate on the "problem_structure" field.
func ProblemStructureGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldProblemStructure, v))
}

// ProblemStructureLT applies the LT predicate on the "problem_structure" field.
func ProblemStructureLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldProblemStructure, v))
}

// ProblemStructureLTE applies the LTE predicate on the "problem_structure" field.
func ProblemStructureLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldProblemStructure, v))
}

// ProblemStructureContains applies the Contains predicate on the "problem_structure" field.
func ProblemStructureContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldProblemStructure, v))
}

// ProblemStructureHasPrefix applies the HasPrefix predicate on the "problem_structure" field.
func ProblemStructureHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldProblemStructure, v))
}

// ProblemStructureHasSuffix applies the HasSuffix predicate on the "problem_structure" field.
func ProblemStructureHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldProblemStructure, v))
}

// ProblemStructureIsNil applies the IsNil predicate on the "problem_structure" field.
func ProblemStructureIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldProblemStructure))
}

// ProblemStructureNotNil applies the NotNil predicate on the "problem_structure" field.
func ProblemStructureNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldProblemStructure))
}

// ProblemStructureEqualFold applies the EqualFold predicate on the "problem_structure" field.
func ProblemStructureEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldProblemStructure, v))
}

// ProblemStructureContainsFold applies the ContainsFold predicate on the "problem_structure" field.
func ProblemStructureContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldProblemStructure, v))
}

// ConceptKeywordsIsNil applies the IsNil predicate on the "concept_keywords" field.
func ConceptKeywordsIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldConceptKeywords))
}

// ConceptKeywordsNotNil applies the NotNil predicate on the "concept_keywords" field.
func ConceptKeywordsNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldConceptKeywords))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldYear, v))
}

// YearIsNil applies the IsNil predicate on the "year" field.
func YearIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldYear))
}

// YearNotNil applies the NotNil predicate on the "year" field.
func YearNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldYear))
}

// SlotEQ applies the EQ predicate on the "slot" field.
func SlotEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldSlot, v))
}

// SlotNEQ applies the NEQ predicate on the "slot" field.
func SlotNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldSlot, v))
}

// SlotIn applies the In predicate on the "slot" field.
func SlotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldSlot, vs...))
}

// SlotNotIn applies the NotIn predicate on the "slot" field.
func SlotNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldSlot, vs...))
}

// SlotGT applies the GT predicate on the "slot" field.
func SlotGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldSlot, v))
}

// SlotGTE applies the GTE predicate on the "slot" field.
func SlotGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldSlot, v))
}

// SlotLT applies the LT predicate on the "slot" field.
func SlotLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldSlot, v))
}

// SlotLTE applies the LTE predicate on the "slot" field.
func SlotLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldSlot, v))
}

// SlotContains applies the Contains predicate on the "slot" field.
func SlotContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldSlot, v))
}

// SlotHasPrefix applies the HasPrefix predicate on the "slot" field.
func SlotHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldSlot, v))
}

// SlotHasSuffix applies the HasSuffix predicate on the "slot" field.
func SlotHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldSlot, v))
}

// SlotIsNil applies the IsNil predicate on the "slot" field.
func SlotIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldSlot))
}

// SlotNotNil applies the NotNil predicate on the "slot" field.
func SlotNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldSlot))
}

// SlotEqualFold applies the EqualFold predicate on the "slot" field.
func SlotEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldSlot, v))
}

// SlotContainsFold applies the ContainsFold predicate on the "slot" field.
func SlotContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldSlot, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldIsActive, v))
}

// QualityVerifiedEQ applies the EQ predicate on the "quality_verified" field.
func QualityVerifiedEQ(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldQualityVerified, v))
}

// QualityVerifiedNEQ applies the NEQ predicate on the "quality_verified" field.
func QualityVerifiedNEQ(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldQualityVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PYQQuestion) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PYQQuestion) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PYQQuestion) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.NotPredicates(p))
}
