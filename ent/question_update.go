// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/prepforge/quanta/ent/attempt"
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/ent/predicate"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/ent/sessionquestion"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStem sets the "stem" field.
func (_u *QuestionUpdate) SetStem(v string) *QuestionUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableStem(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetAdminAnswer sets the "admin_answer" field.
func (_u *QuestionUpdate) SetAdminAnswer(v string) *QuestionUpdate {
	_u.mutation.SetAdminAnswer(v)
	return _u
}

// SetNillableAdminAnswer sets the "admin_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAdminAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAdminAnswer(*v)
	}
	return _u
}

// SetAdminSolution sets the "admin_solution" field.
func (_u *QuestionUpdate) SetAdminSolution(v string) *QuestionUpdate {
	_u.mutation.SetAdminSolution(v)
	return _u
}

// SetNillableAdminSolution sets the "admin_solution" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAdminSolution(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAdminSolution(*v)
	}
	return _u
}

// ClearAdminSolution clears the value of the "admin_solution" field.
func (_u *QuestionUpdate) ClearAdminSolution() *QuestionUpdate {
	_u.mutation.ClearAdminSolution()
	return _u
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (_u *QuestionUpdate) SetPrincipleToRemember(v string) *QuestionUpdate {
	_u.mutation.SetPrincipleToRemember(v)
	return _u
}

// SetNillablePrincipleToRemember sets the "principle_to_remember" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePrincipleToRemember(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPrincipleToRemember(*v)
	}
	return _u
}

// ClearPrincipleToRemember clears the value of the "principle_to_remember" field.
func (_u *QuestionUpdate) ClearPrincipleToRemember() *QuestionUpdate {
	_u.mutation.ClearPrincipleToRemember()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *QuestionUpdate) SetImageURL(v string) *QuestionUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableImageURL(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *QuestionUpdate) ClearImageURL() *QuestionUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetRightAnswer sets the "right_answer" field.
func (_u *QuestionUpdate) SetRightAnswer(v string) *QuestionUpdate {
	_u.mutation.SetRightAnswer(v)
	return _u
}

// SetNillableRightAnswer sets the "right_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableRightAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetRightAnswer(*v)
	}
	return _u
}

// ClearRightAnswer clears the value of the "right_answer" field.
func (_u *QuestionUpdate) ClearRightAnswer() *QuestionUpdate {
	_u.mutation.ClearRightAnswer()
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestionUpdate) SetCategory(v string) *QuestionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCategory(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *QuestionUpdate) ClearCategory() *QuestionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *QuestionUpdate) SetSubcategory(v string) *QuestionUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubcategory(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *QuestionUpdate) ClearSubcategory() *QuestionUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_u *QuestionUpdate) SetTypeOfQuestion(v string) *QuestionUpdate {
	_u.mutation.SetTypeOfQuestion(v)
	return _u
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTypeOfQuestion(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTypeOfQuestion(*v)
	}
	return _u
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (_u *QuestionUpdate) ClearTypeOfQuestion() *QuestionUpdate {
	_u.mutation.ClearTypeOfQuestion()
	return _u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_u *QuestionUpdate) SetDifficultyBand(v question.DifficultyBand) *QuestionUpdate {
	_u.mutation.SetDifficultyBand(v)
	return _u
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficultyBand(v *question.DifficultyBand) *QuestionUpdate {
	if v != nil {
		_u.SetDifficultyBand(*v)
	}
	return _u
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (_u *QuestionUpdate) ClearDifficultyBand() *QuestionUpdate {
	_u.mutation.ClearDifficultyBand()
	return _u
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_u *QuestionUpdate) SetDifficultyScore(v float64) *QuestionUpdate {
	_u.mutation.ResetDifficultyScore()
	_u.mutation.SetDifficultyScore(v)
	return _u
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficultyScore(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetDifficultyScore(*v)
	}
	return _u
}

// AddDifficultyScore adds value to the "difficulty_score" field.
func (_u *QuestionUpdate) AddDifficultyScore(v float64) *QuestionUpdate {
	_u.mutation.AddDifficultyScore(v)
	return _u
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (_u *QuestionUpdate) ClearDifficultyScore() *QuestionUpdate {
	_u.mutation.ClearDifficultyScore()
	return _u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_u *QuestionUpdate) SetPyqFrequencyScore(v float64) *QuestionUpdate {
	_u.mutation.ResetPyqFrequencyScore()
	_u.mutation.SetPyqFrequencyScore(v)
	return _u
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePyqFrequencyScore(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetPyqFrequencyScore(*v)
	}
	return _u
}

// AddPyqFrequencyScore adds value to the "pyq_frequency_score" field.
func (_u *QuestionUpdate) AddPyqFrequencyScore(v float64) *QuestionUpdate {
	_u.mutation.AddPyqFrequencyScore(v)
	return _u
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (_u *QuestionUpdate) ClearPyqFrequencyScore() *QuestionUpdate {
	_u.mutation.ClearPyqFrequencyScore()
	return _u
}

// SetCoreConcepts sets the "core_concepts" field.
func (_u *QuestionUpdate) SetCoreConcepts(v []string) *QuestionUpdate {
	_u.mutation.SetCoreConcepts(v)
	return _u
}

// AppendCoreConcepts appends value to the "core_concepts" field.
func (_u *QuestionUpdate) AppendCoreConcepts(v []string) *QuestionUpdate {
	_u.mutation.AppendCoreConcepts(v)
	return _u
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (_u *QuestionUpdate) ClearCoreConcepts() *QuestionUpdate {
	_u.mutation.ClearCoreConcepts()
	return _u
}

// SetSolutionMethod sets the "solution_method" field.
func (_u *QuestionUpdate) SetSolutionMethod(v string) *QuestionUpdate {
	_u.mutation.SetSolutionMethod(v)
	return _u
}

// SetNillableSolutionMethod sets the "solution_method" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSolutionMethod(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSolutionMethod(*v)
	}
	return _u
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (_u *QuestionUpdate) ClearSolutionMethod() *QuestionUpdate {
	_u.mutation.ClearSolutionMethod()
	return _u
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (_u *QuestionUpdate) SetConceptDifficulty(v map[string][]string) *QuestionUpdate {
	_u.mutation.SetConceptDifficulty(v)
	return _u
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (_u *QuestionUpdate) ClearConceptDifficulty() *QuestionUpdate {
	_u.mutation.ClearConceptDifficulty()
	return _u
}

// SetOperationsRequired sets the "operations_required" field.
func (_u *QuestionUpdate) SetOperationsRequired(v []string) *QuestionUpdate {
	_u.mutation.SetOperationsRequired(v)
	return _u
}

// AppendOperationsRequired appends value to the "operations_required" field.
func (_u *QuestionUpdate) AppendOperationsRequired(v []string) *QuestionUpdate {
	_u.mutation.AppendOperationsRequired(v)
	return _u
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (_u *QuestionUpdate) ClearOperationsRequired() *QuestionUpdate {
	_u.mutation.ClearOperationsRequired()
	return _u
}

// SetProblemStructure sets the "problem_structure" field.
func (_u *QuestionUpdate) SetProblemStructure(v string) *QuestionUpdate {
	_u.mutation.SetProblemStructure(v)
	return _u
}

// SetNillableProblemStructure sets the "problem_structure" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableProblemStructure(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetProblemStructure(*v)
	}
	return _u
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (_u *QuestionUpdate) ClearProblemStructure() *QuestionUpdate {
	_u.mutation.ClearProblemStructure()
	return _u
}

// SetConceptKeywords sets the "concept_keywords" field.
func (_u *QuestionUpdate) SetConceptKeywords(v []string) *QuestionUpdate {
	_u.mutation.SetConceptKeywords(v)
	return _u
}

// AppendConceptKeywords appends value to the "concept_keywords" field.
func (_u *QuestionUpdate) AppendConceptKeywords(v []string) *QuestionUpdate {
	_u.mutation.AppendConceptKeywords(v)
	return _u
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (_u *QuestionUpdate) ClearConceptKeywords() *QuestionUpdate {
	_u.mutation.ClearConceptKeywords()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *QuestionUpdate) SetIsActive(v bool) *QuestionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIsActive(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetQualityVerified sets the "quality_verified" field.
func (_u *QuestionUpdate) SetQualityVerified(v bool) *QuestionUpdate {
	_u.mutation.SetQualityVerified(v)
	return _u
}

// SetNillableQualityVerified sets the "quality_verified" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQualityVerified(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetQualityVerified(*v)
	}
	return _u
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (_u *QuestionUpdate) SetConceptExtractionStatus(v question.ConceptExtractionStatus) *QuestionUpdate {
	_u.mutation.SetConceptExtractionStatus(v)
	return _u
}

// SetNillableConceptExtractionStatus sets the "concept_extraction_status" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableConceptExtractionStatus(v *question.ConceptExtractionStatus) *QuestionUpdate {
	if v != nil {
		_u.SetConceptExtractionStatus(*v)
	}
	return _u
}

// SetFailedChecks sets the "failed_checks" field.
func (_u *QuestionUpdate) SetFailedChecks(v []string) *QuestionUpdate {
	_u.mutation.SetFailedChecks(v)
	return _u
}

// AppendFailedChecks appends value to the "failed_checks" field.
func (_u *QuestionUpdate) AppendFailedChecks(v []string) *QuestionUpdate {
	_u.mutation.AppendFailedChecks(v)
	return _u
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (_u *QuestionUpdate) ClearFailedChecks() *QuestionUpdate {
	_u.mutation.ClearFailedChecks()
	return _u
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_u *QuestionUpdate) SetEnrichmentStatus(v question.EnrichmentStatus) *QuestionUpdate {
	_u.mutation.SetEnrichmentStatus(v)
	return _u
}

// SetNillableEnrichmentStatus sets the "enrichment_status" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableEnrichmentStatus(v *question.EnrichmentStatus) *QuestionUpdate {
	if v != nil {
		_u.SetEnrichmentStatus(*v)
	}
	return _u
}

// SetEnrichmentError sets the "enrichment_error" field.
func (_u *QuestionUpdate) SetEnrichmentError(v string) *QuestionUpdate {
	_u.mutation.SetEnrichmentError(v)
	return _u
}

// SetNillableEnrichmentError sets the "enrichment_error" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableEnrichmentError(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetEnrichmentError(*v)
	}
	return _u
}

// ClearEnrichmentError clears the value of the "enrichment_error" field.
func (_u *QuestionUpdate) ClearEnrichmentError() *QuestionUpdate {
	_u.mutation.ClearEnrichmentError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *QuestionUpdate) SetPodID(v string) *QuestionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePodID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *QuestionUpdate) ClearPodID() *QuestionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastEnrichmentAt sets the "last_enrichment_at" field.
func (_u *QuestionUpdate) SetLastEnrichmentAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetLastEnrichmentAt(v)
	return _u
}

// SetNillableLastEnrichmentAt sets the "last_enrichment_at" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableLastEnrichmentAt(v *time.Time) *QuestionUpdate {
	if v != nil {
		_u.SetLastEnrichmentAt(*v)
	}
	return _u
}

// ClearLastEnrichmentAt clears the value of the "last_enrichment_at" field.
func (_u *QuestionUpdate) ClearLastEnrichmentAt() *QuestionUpdate {
	_u.mutation.ClearLastEnrichmentAt()
	return _u
}

// SetEnrichedAt sets the "enriched_at" field.
func (_u *QuestionUpdate) SetEnrichedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetEnrichedAt(v)
	return _u
}

// SetNillableEnrichedAt sets the "enriched_at" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableEnrichedAt(v *time.Time) *QuestionUpdate {
	if v != nil {
		_u.SetEnrichedAt(*v)
	}
	return _u
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (_u *QuestionUpdate) ClearEnrichedAt() *QuestionUpdate {
	_u.mutation.ClearEnrichedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdate) SetUpdatedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *QuestionUpdate) AddAttemptIDs(ids ...string) *QuestionUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *QuestionUpdate) AddAttempts(v ...*Attempt) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// AddPackEntryIDs adds the "pack_entries" edge to the SessionQuestion entity by IDs.
func (_u *QuestionUpdate) AddPackEntryIDs(ids ...string) *QuestionUpdate {
	_u.mutation.AddPackEntryIDs(ids...)
	return _u
}

// AddPackEntries adds the "pack_entries" edges to the SessionQuestion entity.
func (_u *QuestionUpdate) AddPackEntries(v ...*SessionQuestion) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackEntryIDs(ids...)
}

// AddAuditIDs adds the "audits" edge to the EnrichmentAudit entity by IDs.
func (_u *QuestionUpdate) AddAuditIDs(ids ...string) *QuestionUpdate {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the EnrichmentAudit entity.
func (_u *QuestionUpdate) AddAudits(v ...*EnrichmentAudit) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *QuestionUpdate) ClearAttempts() *QuestionUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *QuestionUpdate) RemoveAttemptIDs(ids ...string) *QuestionUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *QuestionUpdate) RemoveAttempts(v ...*Attempt) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// ClearPackEntries clears all "pack_entries" edges to the SessionQuestion entity.
func (_u *QuestionUpdate) ClearPackEntries() *QuestionUpdate {
	_u.mutation.ClearPackEntries()
	return _u
}

// RemovePackEntryIDs removes the "pack_entries" edge to SessionQuestion entities by IDs.
func (_u *QuestionUpdate) RemovePackEntryIDs(ids ...string) *QuestionUpdate {
	_u.mutation.RemovePackEntryIDs(ids...)
	return _u
}

// RemovePackEntries removes "pack_entries" edges to SessionQuestion entities.
func (_u *QuestionUpdate) RemovePackEntries(v ...*SessionQuestion) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackEntryIDs(ids...)
}

// ClearAudits clears all "audits" edges to the EnrichmentAudit entity.
func (_u *QuestionUpdate) ClearAudits() *QuestionUpdate {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to EnrichmentAudit entities by IDs.
func (_u *QuestionUpdate) RemoveAuditIDs(ids ...string) *QuestionUpdate {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to EnrichmentAudit entities.
func (_u *QuestionUpdate) RemoveAudits(v ...*EnrichmentAudit) *QuestionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.DifficultyBand(); ok {
		if err := question.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptExtractionStatus(); ok {
		if err := question.ConceptExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "concept_extraction_status", err: fmt.Errorf(`ent: validator failed for field "Question.concept_extraction_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnrichmentStatus(); ok {
		if err := question.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "Question.enrichment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdminAnswer(); ok {
		_spec.SetField(question.FieldAdminAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdminSolution(); ok {
		_spec.SetField(question.FieldAdminSolution, field.TypeString, value)
	}
	if _u.mutation.AdminSolutionCleared() {
		_spec.ClearField(question.FieldAdminSolution, field.TypeString)
	}
	if value, ok := _u.mutation.PrincipleToRemember(); ok {
		_spec.SetField(question.FieldPrincipleToRemember, field.TypeString, value)
	}
	if _u.mutation.PrincipleToRememberCleared() {
		_spec.ClearField(question.FieldPrincipleToRemember, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(question.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(question.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.RightAnswer(); ok {
		_spec.SetField(question.FieldRightAnswer, field.TypeString, value)
	}
	if _u.mutation.RightAnswerCleared() {
		_spec.ClearField(question.FieldRightAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(question.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(question.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(question.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.TypeOfQuestion(); ok {
		_spec.SetField(question.FieldTypeOfQuestion, field.TypeString, value)
	}
	if _u.mutation.TypeOfQuestionCleared() {
		_spec.ClearField(question.FieldTypeOfQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyBand(); ok {
		_spec.SetField(question.FieldDifficultyBand, field.TypeEnum, value)
	}
	if _u.mutation.DifficultyBandCleared() {
		_spec.ClearField(question.FieldDifficultyBand, field.TypeEnum)
	}
	if value, ok := _u.mutation.DifficultyScore(); ok {
		_spec.SetField(question.FieldDifficultyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyScore(); ok {
		_spec.AddField(question.FieldDifficultyScore, field.TypeFloat64, value)
	}
	if _u.mutation.DifficultyScoreCleared() {
		_spec.ClearField(question.FieldDifficultyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPyqFrequencyScore(); ok {
		_spec.AddField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if _u.mutation.PyqFrequencyScoreCleared() {
		_spec.ClearField(question.FieldPyqFrequencyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CoreConcepts(); ok {
		_spec.SetField(question.FieldCoreConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoreConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldCoreConcepts, value)
		})
	}
	if _u.mutation.CoreConceptsCleared() {
		_spec.ClearField(question.FieldCoreConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.SolutionMethod(); ok {
		_spec.SetField(question.FieldSolutionMethod, field.TypeString, value)
	}
	if _u.mutation.SolutionMethodCleared() {
		_spec.ClearField(question.FieldSolutionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptDifficulty(); ok {
		_spec.SetField(question.FieldConceptDifficulty, field.TypeJSON, value)
	}
	if _u.mutation.ConceptDifficultyCleared() {
		_spec.ClearField(question.FieldConceptDifficulty, field.TypeJSON)
	}
	if value, ok := _u.mutation.OperationsRequired(); ok {
		_spec.SetField(question.FieldOperationsRequired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOperationsRequired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOperationsRequired, value)
		})
	}
	if _u.mutation.OperationsRequiredCleared() {
		_spec.ClearField(question.FieldOperationsRequired, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProblemStructure(); ok {
		_spec.SetField(question.FieldProblemStructure, field.TypeString, value)
	}
	if _u.mutation.ProblemStructureCleared() {
		_spec.ClearField(question.FieldProblemStructure, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptKeywords(); ok {
		_spec.SetField(question.FieldConceptKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldConceptKeywords, value)
		})
	}
	if _u.mutation.ConceptKeywordsCleared() {
		_spec.ClearField(question.FieldConceptKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(question.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QualityVerified(); ok {
		_spec.SetField(question.FieldQualityVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConceptExtractionStatus(); ok {
		_spec.SetField(question.FieldConceptExtractionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailedChecks(); ok {
		_spec.SetField(question.FieldFailedChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldFailedChecks, value)
		})
	}
	if _u.mutation.FailedChecksCleared() {
		_spec.ClearField(question.FieldFailedChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.EnrichmentStatus(); ok {
		_spec.SetField(question.FieldEnrichmentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EnrichmentError(); ok {
		_spec.SetField(question.FieldEnrichmentError, field.TypeString, value)
	}
	if _u.mutation.EnrichmentErrorCleared() {
		_spec.ClearField(question.FieldEnrichmentError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(question.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(question.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastEnrichmentAt(); ok {
		_spec.SetField(question.FieldLastEnrichmentAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnrichmentAtCleared() {
		_spec.ClearField(question.FieldLastEnrichmentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EnrichedAt(); ok {
		_spec.SetField(question.FieldEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrichedAtCleared() {
		_spec.ClearField(question.FieldEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AttemptsTable,
			Columns: []string{question.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AttemptsTable,
			Columns: []string{question.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AttemptsTable,
			Columns: []string{question.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.PackEntriesTable,
			Columns: []string{question.PackEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackEntriesIDs(); len(nodes) > 0 && !_u.mutation.PackEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.PackEntriesTable,
			Columns: []string{question.PackEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.PackEntriesTable,
			Columns: []string{question.PackEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AuditsTable,
			Columns: []string{question.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AuditsTable,
			Columns: []string{question.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AuditsTable,
			Columns: []string{question.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetStem sets the "stem" field.
func (_u *QuestionUpdateOne) SetStem(v string) *QuestionUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableStem(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetAdminAnswer sets the "admin_answer" field.
func (_u *QuestionUpdateOne) SetAdminAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetAdminAnswer(v)
	return _u
}

// SetNillableAdminAnswer sets the "admin_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAdminAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAdminAnswer(*v)
	}
	return _u
}

// SetAdminSolution sets the "admin_solution" field.
func (_u *QuestionUpdateOne) SetAdminSolution(v string) *QuestionUpdateOne {
	_u.mutation.SetAdminSolution(v)
	return _u
}

// SetNillableAdminSolution sets the "admin_solution" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAdminSolution(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAdminSolution(*v)
	}
	return _u
}

// ClearAdminSolution clears the value of the "admin_solution" field.
func (_u *QuestionUpdateOne) ClearAdminSolution() *QuestionUpdateOne {
	_u.mutation.ClearAdminSolution()
	return _u
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (_u *QuestionUpdateOne) SetPrincipleToRemember(v string) *QuestionUpdateOne {
	_u.mutation.SetPrincipleToRemember(v)
	return _u
}

// SetNillablePrincipleToRemember sets the "principle_to_remember" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePrincipleToRemember(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPrincipleToRemember(*v)
	}
	return _u
}

// ClearPrincipleToRemember clears the value of the "principle_to_remember" field.
func (_u *QuestionUpdateOne) ClearPrincipleToRemember() *QuestionUpdateOne {
	_u.mutation.ClearPrincipleToRemember()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *QuestionUpdateOne) SetImageURL(v string) *QuestionUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableImageURL(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *QuestionUpdateOne) ClearImageURL() *QuestionUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetRightAnswer sets the "right_answer" field.
func (_u *QuestionUpdateOne) SetRightAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetRightAnswer(v)
	return _u
}

// SetNillableRightAnswer sets the "right_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableRightAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetRightAnswer(*v)
	}
	return _u
}

// ClearRightAnswer clears the value of the "right_answer" field.
func (_u *QuestionUpdateOne) ClearRightAnswer() *QuestionUpdateOne {
	_u.mutation.ClearRightAnswer()
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestionUpdateOne) SetCategory(v string) *QuestionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCategory(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *QuestionUpdateOne) ClearCategory() *QuestionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *QuestionUpdateOne) SetSubcategory(v string) *QuestionUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubcategory(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *QuestionUpdateOne) ClearSubcategory() *QuestionUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_u *QuestionUpdateOne) SetTypeOfQuestion(v string) *QuestionUpdateOne {
	_u.mutation.SetTypeOfQuestion(v)
	return _u
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTypeOfQuestion(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTypeOfQuestion(*v)
	}
	return _u
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (_u *QuestionUpdateOne) ClearTypeOfQuestion() *QuestionUpdateOne {
	_u.mutation.ClearTypeOfQuestion()
	return _u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_u *QuestionUpdateOne) SetDifficultyBand(v question.DifficultyBand) *QuestionUpdateOne {
	_u.mutation.SetDifficultyBand(v)
	return _u
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficultyBand(v *question.DifficultyBand) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficultyBand(*v)
	}
	return _u
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (_u *QuestionUpdateOne) ClearDifficultyBand() *QuestionUpdateOne {
	_u.mutation.ClearDifficultyBand()
	return _u
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_u *QuestionUpdateOne) SetDifficultyScore(v float64) *QuestionUpdateOne {
	_u.mutation.ResetDifficultyScore()
	_u.mutation.SetDifficultyScore(v)
	return _u
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficultyScore(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficultyScore(*v)
	}
	return _u
}

// AddDifficultyScore adds value to the "difficulty_score" field.
func (_u *QuestionUpdateOne) AddDifficultyScore(v float64) *QuestionUpdateOne {
	_u.mutation.AddDifficultyScore(v)
	return _u
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (_u *QuestionUpdateOne) ClearDifficultyScore() *QuestionUpdateOne {
	_u.mutation.ClearDifficultyScore()
	return _u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_u *QuestionUpdateOne) SetPyqFrequencyScore(v float64) *QuestionUpdateOne {
	_u.mutation.ResetPyqFrequencyScore()
	_u.mutation.SetPyqFrequencyScore(v)
	return _u
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePyqFrequencyScore(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetPyqFrequencyScore(*v)
	}
	return _u
}

// AddPyqFrequencyScore adds value to the "pyq_frequency_score" field.
func (_u *QuestionUpdateOne) AddPyqFrequencyScore(v float64) *QuestionUpdateOne {
	_u.mutation.AddPyqFrequencyScore(v)
	return _u
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (_u *QuestionUpdateOne) ClearPyqFrequencyScore() *QuestionUpdateOne {
	_u.mutation.ClearPyqFrequencyScore()
	return _u
}

// SetCoreConcepts sets the "core_concepts" field.
func (_u *QuestionUpdateOne) SetCoreConcepts(v []string) *QuestionUpdateOne {
	_u.mutation.SetCoreConcepts(v)
	return _u
}

// AppendCoreConcepts appends value to the "core_concepts" field.
func (_u *QuestionUpdateOne) AppendCoreConcepts(v []string) *QuestionUpdateOne {
	_u.mutation.AppendCoreConcepts(v)
	return _u
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (_u *QuestionUpdateOne) ClearCoreConcepts() *QuestionUpdateOne {
	_u.mutation.ClearCoreConcepts()
	return _u
}

// SetSolutionMethod sets the "solution_method" field.
func (_u *QuestionUpdateOne) SetSolutionMethod(v string) *QuestionUpdateOne {
	_u.mutation.SetSolutionMethod(v)
	return _u
}

// SetNillableSolutionMethod sets the "solution_method" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSolutionMethod(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSolutionMethod(*v)
	}
	return _u
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (_u *QuestionUpdateOne) ClearSolutionMethod() *QuestionUpdateOne {
	_u.mutation.ClearSolutionMethod()
	return _u
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (_u *QuestionUpdateOne) SetConceptDifficulty(v map[string][]string) *QuestionUpdateOne {
	_u.mutation.SetConceptDifficulty(v)
	return _u
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (_u *QuestionUpdateOne) ClearConceptDifficulty() *QuestionUpdateOne {
	_u.mutation.ClearConceptDifficulty()
	return _u
}

// SetOperationsRequired sets the "operations_required" field.
func (_u *QuestionUpdateOne) SetOperationsRequired(v []string) *QuestionUpdateOne {
	_u.mutation.SetOperationsRequired(v)
	return _u
}

// AppendOperationsRequired appends value to the "operations_required" field.
func (_u *QuestionUpdateOne) AppendOperationsRequired(v []string) *QuestionUpdateOne {
	_u.mutation.AppendOperationsRequired(v)
	return _u
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (_u *QuestionUpdateOne) ClearOperationsRequired() *QuestionUpdateOne {
	_u.mutation.ClearOperationsRequired()
	return _u
}

// SetProblemStructure sets the "problem_structure" field.
func (_u *QuestionUpdateOne) SetProblemStructure(v string) *QuestionUpdateOne {
	_u.mutation.SetProblemStructure(v)
	return _u
}

// SetNillableProblemStructure sets the "problem_structure" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableProblemStructure(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetProblemStructure(*v)
	}
	return _u
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (_u *QuestionUpdateOne) ClearProblemStructure() *QuestionUpdateOne {
	_u.mutation.ClearProblemStructure()
	return _u
}

// SetConceptKeywords sets the "concept_keywords" field.
func (_u *QuestionUpdateOne) SetConceptKeywords(v []string) *QuestionUpdateOne {
	_u.mutation.SetConceptKeywords(v)
	return _u
}

// AppendConceptKeywords appends value to the "concept_keywords" field.
func (_u *QuestionUpdateOne) AppendConceptKeywords(v []string) *QuestionUpdateOne {
	_u.mutation.AppendConceptKeywords(v)
	return _u
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (_u *QuestionUpdateOne) ClearConceptKeywords() *QuestionUpdateOne {
	_u.mutation.ClearConceptKeywords()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *QuestionUpdateOne) SetIsActive(v bool) *QuestionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIsActive(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetQualityVerified sets the "quality_verified" field.
func (_u *QuestionUpdateOne) SetQualityVerified(v bool) *QuestionUpdateOne {
	_u.mutation.SetQualityVerified(v)
	return _u
}

// SetNillableQualityVerified sets the "quality_verified" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQualityVerified(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetQualityVerified(*v)
	}
	return _u
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (_u *QuestionUpdateOne) SetConceptExtractionStatus(v question.ConceptExtractionStatus) *QuestionUpdateOne {
	_u.mutation.SetConceptExtractionStatus(v)
	return _u
}

// SetNillableConceptExtractionStatus sets the "concept_extraction_status" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableConceptExtractionStatus(v *question.ConceptExtractionStatus) *QuestionUpdateOne {
	if v != nil {
		_u.SetConceptExtractionStatus(*v)
	}
	return _u
}

// SetFailedChecks sets the "failed_checks" field.
func (_u *QuestionUpdateOne) SetFailedChecks(v []string) *QuestionUpdateOne {
	_u.mutation.SetFailedChecks(v)
	return _u
}

// AppendFailedChecks appends value to the "failed_checks" field.
func (_u *QuestionUpdateOne) AppendFailedChecks(v []string) *QuestionUpdateOne {
	_u.mutation.AppendFailedChecks(v)
	return _u
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (_u *QuestionUpdateOne) ClearFailedChecks() *QuestionUpdateOne {
	_u.mutation.ClearFailedChecks()
	return _u
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_u *QuestionUpdateOne) SetEnrichmentStatus(v question.EnrichmentStatus) *QuestionUpdateOne {
	_u.mutation.SetEnrichmentStatus(v)
	return _u
}

// SetNillableEnrichmentStatus sets the "enrichment_status" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableEnrichmentStatus(v *question.EnrichmentStatus) *QuestionUpdateOne {
	if v != nil {
		_u.SetEnrichmentStatus(*v)
	}
	return _u
}

// SetEnrichmentError sets the "enrichment_error" field.
func (_u *QuestionUpdateOne) SetEnrichmentError(v string) *QuestionUpdateOne {
	_u.mutation.SetEnrichmentError(v)
	return _u
}

// SetNillableEnrichmentError sets the "enrichment_error" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableEnrichmentError(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetEnrichmentError(*v)
	}
	return _u
}

// ClearEnrichmentError clears the value of the "enrichment_error" field.
func (_u *QuestionUpdateOne) ClearEnrichmentError() *QuestionUpdateOne {
	_u.mutation.ClearEnrichmentError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *QuestionUpdateOne) SetPodID(v string) *QuestionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePodID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *QuestionUpdateOne) ClearPodID() *QuestionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastEnrichmentAt sets the "last_enrichment_at" field.
func (_u *QuestionUpdateOne) SetLastEnrichmentAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetLastEnrichmentAt(v)
	return _u
}

// SetNillableLastEnrichmentAt sets the "last_enrichment_at" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableLastEnrichmentAt(v *time.Time) *QuestionUpdateOne {
	if v != nil {
		_u.SetLastEnrichmentAt(*v)
	}
	return _u
}

// ClearLastEnrichmentAt clears the value of the "last_enrichment_at" field.
func (_u *QuestionUpdateOne) ClearLastEnrichmentAt() *QuestionUpdateOne {
	_u.mutation.ClearLastEnrichmentAt()
	return _u
}

// SetEnrichedAt sets the "enriched_at" field.
func (_u *QuestionUpdateOne) SetEnrichedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetEnrichedAt(v)
	return _u
}

// SetNillableEnrichedAt sets the "enriched_at" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableEnrichedAt(v *time.Time) *QuestionUpdateOne {
	if v != nil {
		_u.SetEnrichedAt(*v)
	}
	return _u
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (_u *QuestionUpdateOne) ClearEnrichedAt() *QuestionUpdateOne {
	_u.mutation.ClearEnrichedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdateOne) SetUpdatedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *QuestionUpdateOne) AddAttemptIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *QuestionUpdateOne) AddAttempts(v ...*Attempt) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// AddPackEntryIDs adds the "pack_entries" edge to the SessionQuestion entity by IDs.
func (_u *QuestionUpdateOne) AddPackEntryIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.AddPackEntryIDs(ids...)
	return _u
}

// AddPackEntries adds the "pack_entries" edges to the SessionQuestion entity.
func (_u *QuestionUpdateOne) AddPackEntries(v ...*SessionQuestion) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackEntryIDs(ids...)
}

// AddAuditIDs adds the "audits" edge to the EnrichmentAudit entity by IDs.
func (_u *QuestionUpdateOne) AddAuditIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.AddAuditIDs(ids...)
	return _u
}

// AddAudits adds the "audits" edges to the EnrichmentAudit entity.
func (_u *QuestionUpdateOne) AddAudits(v ...*EnrichmentAudit) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *QuestionUpdateOne) ClearAttempts() *QuestionUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *QuestionUpdateOne) RemoveAttemptIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *QuestionUpdateOne) RemoveAttempts(v ...*Attempt) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// ClearPackEntries clears all "pack_entries" edges to the SessionQuestion entity.
func (_u *QuestionUpdateOne) ClearPackEntries() *QuestionUpdateOne {
	_u.mutation.ClearPackEntries()
	return _u
}

// RemovePackEntryIDs removes the "pack_entries" edge to SessionQuestion entities by IDs.
func (_u *QuestionUpdateOne) RemovePackEntryIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.RemovePackEntryIDs(ids...)
	return _u
}

// RemovePackEntries removes "pack_entries" edges to SessionQuestion entities.
func (_u *QuestionUpdateOne) RemovePackEntries(v ...*SessionQuestion) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackEntryIDs(ids...)
}

// ClearAudits clears all "audits" edges to the EnrichmentAudit entity.
func (_u *QuestionUpdateOne) ClearAudits() *QuestionUpdateOne {
	_u.mutation.ClearAudits()
	return _u
}

// RemoveAuditIDs removes the "audits" edge to EnrichmentAudit entities by IDs.
func (_u *QuestionUpdateOne) RemoveAuditIDs(ids ...string) *QuestionUpdateOne {
	_u.mutation.RemoveAuditIDs(ids...)
	return _u
}

// RemoveAudits removes "audits" edges to EnrichmentAudit entities.
func (_u *QuestionUpdateOne) RemoveAudits(v ...*EnrichmentAudit) *QuestionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditIDs(ids...)
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.DifficultyBand(); ok {
		if err := question.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptExtractionStatus(); ok {
		if err := question.ConceptExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "concept_extraction_status", err: fmt.Errorf(`ent: validator failed for field "Question.concept_extraction_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnrichmentStatus(); ok {
		if err := question.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "Question.enrichment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdminAnswer(); ok {
		_spec.SetField(question.FieldAdminAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdminSolution(); ok {
		_spec.SetField(question.FieldAdminSolution, field.TypeString, value)
	}
	if _u.mutation.AdminSolutionCleared() {
		_spec.ClearField(question.FieldAdminSolution, field.TypeString)
	}
	if value, ok := _u.mutation.PrincipleToRemember(); ok {
		_spec.SetField(question.FieldPrincipleToRemember, field.TypeString, value)
	}
	if _u.mutation.PrincipleToRememberCleared() {
		_spec.ClearField(question.FieldPrincipleToRemember, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(question.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(question.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.RightAnswer(); ok {
		_spec.SetField(question.FieldRightAnswer, field.TypeString, value)
	}
	if _u.mutation.RightAnswerCleared() {
		_spec.ClearField(question.FieldRightAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(question.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(question.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(question.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.TypeOfQuestion(); ok {
		_spec.SetField(question.FieldTypeOfQuestion, field.TypeString, value)
	}
	if _u.mutation.TypeOfQuestionCleared() {
		_spec.ClearField(question.FieldTypeOfQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyBand(); ok {
		_spec.SetField(question.FieldDifficultyBand, field.TypeEnum, value)
	}
	if _u.mutation.DifficultyBandCleared() {
		_spec.ClearField(question.FieldDifficultyBand, field.TypeEnum)
	}
	if value, ok := _u.mutation.DifficultyScore(); ok {
		_spec.SetField(question.FieldDifficultyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyScore(); ok {
		_spec.AddField(question.FieldDifficultyScore, field.TypeFloat64, value)
	}
	if _u.mutation.DifficultyScoreCleared() {
		_spec.ClearField(question.FieldDifficultyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPyqFrequencyScore(); ok {
		_spec.AddField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if _u.mutation.PyqFrequencyScoreCleared() {
		_spec.ClearField(question.FieldPyqFrequencyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CoreConcepts(); ok {
		_spec.SetField(question.FieldCoreConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoreConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldCoreConcepts, value)
		})
	}
	if _u.mutation.CoreConceptsCleared() {
		_spec.ClearField(question.FieldCoreConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.SolutionMethod(); ok {
		_spec.SetField(question.FieldSolutionMethod, field.TypeString, value)
	}
	if _u.mutation.SolutionMethodCleared() {
		_spec.ClearField(question.FieldSolutionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptDifficulty(); ok {
		_spec.SetField(question.FieldConceptDifficulty, field.TypeJSON, value)
	}
	if _u.mutation.ConceptDifficultyCleared() {
		_spec.ClearField(question.FieldConceptDifficulty, field.TypeJSON)
	}
	if value, ok := _u.mutation.OperationsRequired(); ok {
		_spec.SetField(question.FieldOperationsRequired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOperationsRequired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOperationsRequired, value)
		})
	}
	if _u.mutation.OperationsRequiredCleared() {
		_spec.ClearField(question.FieldOperationsRequired, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProblemStructure(); ok {
		_spec.SetField(question.FieldProblemStructure, field.TypeString, value)
	}
	if _u.mutation.ProblemStructureCleared() {
		_spec.ClearField(question.FieldProblemStructure, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptKeywords(); ok {
		_spec.SetField(question.FieldConceptKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldConceptKeywords, value)
		})
	}
	if _u.mutation.ConceptKeywordsCleared() {
		_spec.ClearField(question.FieldConceptKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(question.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QualityVerified(); ok {
		_spec.SetField(question.FieldQualityVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConceptExtractionStatus(); ok {
		_spec.SetField(question.FieldConceptExtractionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailedChecks(); ok {
		_spec.SetField(question.FieldFailedChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldFailedChecks, value)
		})
	}
	if _u.mutation.FailedChecksCleared() {
		_spec.ClearField(question.FieldFailedChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.EnrichmentStatus(); ok {
		_spec.SetField(question.FieldEnrichmentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EnrichmentError(); ok {
		_spec.SetField(question.FieldEnrichmentError, field.TypeString, value)
	}
	if _u.mutation.EnrichmentErrorCleared() {
		_spec.ClearField(question.FieldEnrichmentError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(question.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(question.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastEnrichmentAt(); ok {
		_spec.SetField(question.FieldLastEnrichmentAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnrichmentAtCleared() {
		_spec.ClearField(question.FieldLastEnrichmentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EnrichedAt(); ok {
		_spec.SetField(question.FieldEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrichedAtCleared() {
		_spec.ClearField(question.FieldEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AttemptsTable,
			Columns: []string{question.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AttemptsTable,
			Columns: []string{question.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AttemptsTable,
			Columns: []string{question.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.PackEntriesTable,
			Columns: []string{question.PackEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackEntriesIDs(); len(nodes) > 0 && !_u.mutation.PackEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.PackEntriesTable,
			Columns: []string{question.PackEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.PackEntriesTable,
			Columns: []string{question.PackEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AuditsTable,
			Columns: []string{question.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !_u.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AuditsTable,
			Columns: []string{question.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AuditsTable,
			Columns: []string{question.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
