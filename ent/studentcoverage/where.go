// Code generated by ent, DO NOT EDIT.

package studentcoverage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldContainsFold(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldStudentID, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldSubcategory, v))
}

// TypeOfQuestion applies equality check predicate on the "type_of_question" field. It's identical to TypeOfQuestionEQ.
func TypeOfQuestion(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// SessionsSeen applies equality check predicate on the "sessions_seen" field. It's identical to SessionsSeenEQ.
func SessionsSeen(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldSessionsSeen, v))
}

// FirstSeenSession applies equality check predicate on the "first_seen_session" field. It's identical to FirstSeenSessionEQ.
func FirstSeenSession(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldFirstSeenSession, v))
}

// LastSeenSession applies equality check predicate on the "last_seen_session" field. It's identical to LastSeenSessionEQ.
func LastSeenSession(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldLastSeenSession, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldContainsFold(FieldStudentID, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldContainsFold(FieldSubcategory, v))
}

// TypeOfQuestionEQ applies the EQ predicate on the "type_of_question" field.
func TypeOfQuestionEQ(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionNEQ applies the NEQ predicate on the "type_of_question" field.
func TypeOfQuestionNEQ(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIn applies the In predicate on the "type_of_question" field.
func TypeOfQuestionIn(vs ...string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionNotIn applies the NotIn predicate on the "type_of_question" field.
func TypeOfQuestionNotIn(vs ...string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNotIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionGT applies the GT predicate on the "type_of_question" field.
func TypeOfQuestionGT(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionGTE applies the GTE predicate on the "type_of_question" field.
func TypeOfQuestionGTE(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLT applies the LT predicate on the "type_of_question" field.
func TypeOfQuestionLT(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLTE applies the LTE predicate on the "type_of_question" field.
func TypeOfQuestionLTE(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContains applies the Contains predicate on the "type_of_question" field.
func TypeOfQuestionContains(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldContains(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasPrefix applies the HasPrefix predicate on the "type_of_question" field.
func TypeOfQuestionHasPrefix(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldHasPrefix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasSuffix applies the HasSuffix predicate on the "type_of_question" field.
func TypeOfQuestionHasSuffix(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldHasSuffix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionEqualFold applies the EqualFold predicate on the "type_of_question" field.
func TypeOfQuestionEqualFold(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEqualFold(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContainsFold applies the ContainsFold predicate on the "type_of_question" field.
func TypeOfQuestionContainsFold(v string) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldContainsFold(FieldTypeOfQuestion, v))
}

// SessionsSeenEQ applies the EQ predicate on the "sessions_seen" field.
func SessionsSeenEQ(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldSessionsSeen, v))
}

// SessionsSeenNEQ applies the NEQ predicate on the "sessions_seen" field.
func SessionsSeenNEQ(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNEQ(FieldSessionsSeen, v))
}

// SessionsSeenIn applies the In predicate on the "sessions_seen" field.
func SessionsSeenIn(vs ...int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldIn(FieldSessionsSeen, vs...))
}

// SessionsSeenNotIn applies the NotIn predicate on the "sessions_seen" field.
func SessionsSeenNotIn(vs ...int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNotIn(FieldSessionsSeen, vs...))
}

// SessionsSeenGT applies the GT predicate on the "sessions_seen" field.
func SessionsSeenGT(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGT(FieldSessionsSeen, v))
}

// SessionsSeenGTE applies the GTE predicate on the "sessions_seen" field.
func SessionsSeenGTE(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGTE(FieldSessionsSeen, v))
}

// SessionsSeenLT applies the LT predicate on the "sessions_seen" field.
func SessionsSeenLT(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLT(FieldSessionsSeen, v))
}

// SessionsSeenLTE applies the LTE predicate on the "sessions_seen" field.
func SessionsSeenLTE(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLTE(FieldSessionsSeen, v))
}

// FirstSeenSessionEQ applies the EQ predicate on the "first_seen_session" field.
func FirstSeenSessionEQ(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldFirstSeenSession, v))
}

// FirstSeenSessionNEQ applies the NEQ predicate on the "first_seen_session" field.
func FirstSeenSessionNEQ(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNEQ(FieldFirstSeenSession, v))
}

// FirstSeenSessionIn applies the In predicate on the "first_seen_session" field.
func FirstSeenSessionIn(vs ...int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldIn(FieldFirstSeenSession, vs...))
}

// FirstSeenSessionNotIn applies the NotIn predicate on the "first_seen_session" field.
func FirstSeenSessionNotIn(vs ...int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNotIn(FieldFirstSeenSession, vs...))
}

// FirstSeenSessionGT applies the GT predicate on the "first_seen_session" field.
func FirstSeenSessionGT(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGT(FieldFirstSeenSession, v))
}

// FirstSeenSessionGTE applies the GTE predicate on the "first_seen_session" field.
func FirstSeenSessionGTE(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGTE(FieldFirstSeenSession, v))
}

// FirstSeenSessionLT applies the LT predicate on the "first_seen_session" field.
func FirstSeenSessionLT(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLT(FieldFirstSeenSession, v))
}

// FirstSeenSessionLTE applies the LTE predicate on the "first_seen_session" field.
func FirstSeenSessionLTE(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLTE(FieldFirstSeenSession, v))
}

// LastSeenSessionEQ applies the EQ predicate on the "last_seen_session" field.
func LastSeenSessionEQ(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldLastSeenSession, v))
}

// LastSeenSessionNEQ applies the NEQ predicate on the "last_seen_session" field.
func LastSeenSessionNEQ(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNEQ(FieldLastSeenSession, v))
}

// LastSeenSessionIn applies the In predicate on the "last_seen_session" field.
func LastSeenSessionIn(vs ...int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldIn(FieldLastSeenSession, vs...))
}

// LastSeenSessionNotIn applies the NotIn predicate on the "last_seen_session" field.
func LastSeenSessionNotIn(vs ...int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNotIn(FieldLastSeenSession, vs...))
}

// LastSeenSessionGT applies the GT predicate on the "last_seen_session" field.
func LastSeenSessionGT(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGT(FieldLastSeenSession, v))
}

// LastSeenSessionGTE applies the GTE predicate on the "last_seen_session" field.
func LastSeenSessionGTE(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGTE(FieldLastSeenSession, v))
}

// LastSeenSessionLT applies the LT predicate on the "last_seen_session" field.
func LastSeenSessionLT(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLT(FieldLastSeenSession, v))
}

// LastSeenSessionLTE applies the LTE predicate on the "last_seen_session" field.
func LastSeenSessionLTE(v int) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLTE(FieldLastSeenSession, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudentCoverage) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudentCoverage) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudentCoverage) predicate.StudentCoverage {
	return predicate.StudentCoverage(sql.NotPredicates(p))
}
