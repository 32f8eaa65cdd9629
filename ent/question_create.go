// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepforge/quanta/ent/attempt"
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/ent/sessionquestion"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStem sets the "stem" field.
func (_c *QuestionCreate) SetStem(v string) *QuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetAdminAnswer sets the "admin_answer" field.
func (_c *QuestionCreate) SetAdminAnswer(v string) *QuestionCreate {
	_c.mutation.SetAdminAnswer(v)
	return _c
}

// SetAdminSolution sets the "admin_solution" field.
func (_c *QuestionCreate) SetAdminSolution(v string) *QuestionCreate {
	_c.mutation.SetAdminSolution(v)
	return _c
}

// SetNillableAdminSolution sets the "admin_solution" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAdminSolution(v *string) *QuestionCreate {
	if v != nil {
		_c.SetAdminSolution(*v)
	}
	return _c
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (_c *QuestionCreate) SetPrincipleToRemember(v string) *QuestionCreate {
	_c.mutation.SetPrincipleToRemember(v)
	return _c
}

// SetNillablePrincipleToRemember sets the "principle_to_remember" field if the given value is not nil.
func (_c *QuestionCreate) SetNillablePrincipleToRemember(v *string) *QuestionCreate {
	if v != nil {
		_c.SetPrincipleToRemember(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *QuestionCreate) SetImageURL(v string) *QuestionCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableImageURL(v *string) *QuestionCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetRightAnswer sets the "right_answer" field.
func (_c *QuestionCreate) SetRightAnswer(v string) *QuestionCreate {
	_c.mutation.SetRightAnswer(v)
	return _c
}

// SetNillableRightAnswer sets the "right_answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableRightAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetRightAnswer(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *QuestionCreate) SetCategory(v string) *QuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCategory(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *QuestionCreate) SetSubcategory(v string) *QuestionCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSubcategory(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSubcategory(*v)
	}
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *QuestionCreate) SetTypeOfQuestion(v string) *QuestionCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTypeOfQuestion(v *string) *QuestionCreate {
	if v != nil {
		_c.SetTypeOfQuestion(*v)
	}
	return _c
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_c *QuestionCreate) SetDifficultyBand(v question.DifficultyBand) *QuestionCreate {
	_c.mutation.SetDifficultyBand(v)
	return _c
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficultyBand(v *question.DifficultyBand) *QuestionCreate {
	if v != nil {
		_c.SetDifficultyBand(*v)
	}
	return _c
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_c *QuestionCreate) SetDifficultyScore(v float64) *QuestionCreate {
	_c.mutation.SetDifficultyScore(v)
	return _c
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficultyScore(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetDifficultyScore(*v)
	}
	return _c
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_c *QuestionCreate) SetPyqFrequencyScore(v float64) *QuestionCreate {
	_c.mutation.SetPyqFrequencyScore(v)
	return _c
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_c *QuestionCreate) SetNillablePyqFrequencyScore(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetPyqFrequencyScore(*v)
	}
	return _c
}

// SetCoreConcepts sets the "core_concepts" field.
func (_c *QuestionCreate) SetCoreConcepts(v []string) *QuestionCreate {
	_c.mutation.SetCoreConcepts(v)
	return _c
}

// SetSolutionMethod sets the "solution_method" field.
func (_c *QuestionCreate) SetSolutionMethod(v string) *QuestionCreate {
	_c.mutation.SetSolutionMethod(v)
	return _c
}

// SetNillableSolutionMethod sets the "solution_method" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSolutionMethod(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSolutionMethod(*v)
	}
	return _c
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (_c *QuestionCreate) SetConceptDifficulty(v map[string][]string) *QuestionCreate {
	_c.mutation.SetConceptDifficulty(v)
	return _c
}

// SetOperationsRequired sets the "operations_required" field.
func (_c *QuestionCreate) SetOperationsRequired(v []string) *QuestionCreate {
	_c.mutation.SetOperationsRequired(v)
	return _c
}

// SetProblemStructure sets the "problem_structure" field.
func (_c *QuestionCreate) SetProblemStructure(v string) *QuestionCreate {
	_c.mutation.SetProblemStructure(v)
	return _c
}

// SetNillableProblemStructure sets the "problem_structure" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableProblemStructure(v *string) *QuestionCreate {
	if v != nil {
		_c.SetProblemStructure(*v)
	}
	return _c
}

// SetConceptKeywords sets the "concept_keywords" field.
func (_c *QuestionCreate) SetConceptKeywords(v []string) *QuestionCreate {
	_c.mutation.SetConceptKeywords(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *QuestionCreate) SetIsActive(v bool) *QuestionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableIsActive(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetQualityVerified sets the "quality_verified" field.
func (_c *QuestionCreate) SetQualityVerified(v bool) *QuestionCreate {
	_c.mutation.SetQualityVerified(v)
	return _c
}

// SetNillableQualityVerified sets the "quality_verified" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableQualityVerified(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetQualityVerified(*v)
	}
	return _c
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (_c *QuestionCreate) SetConceptExtractionStatus(v question.ConceptExtractionStatus) *QuestionCreate {
	_c.mutation.SetConceptExtractionStatus(v)
	return _c
}

// SetNillableConceptExtractionStatus sets the "concept_extraction_status" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableConceptExtractionStatus(v *question.ConceptExtractionStatus) *QuestionCreate {
	if v != nil {
		_c.SetConceptExtractionStatus(*v)
	}
	return _c
}

// SetFailedChecks sets the "failed_checks" field.
func (_c *QuestionCreate) SetFailedChecks(v []string) *QuestionCreate {
	_c.mutation.SetFailedChecks(v)
	return _c
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_c *QuestionCreate) SetEnrichmentStatus(v question.EnrichmentStatus) *QuestionCreate {
	_c.mutation.SetEnrichmentStatus(v)
	return _c
}

// SetNillableEnrichmentStatus sets the "enrichment_status" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableEnrichmentStatus(v *question.EnrichmentStatus) *QuestionCreate {
	if v != nil {
		_c.SetEnrichmentStatus(*v)
	}
	return _c
}

// SetEnrichmentError sets the "enrichment_error" field.
func (_c *QuestionCreate) SetEnrichmentError(v string) *QuestionCreate {
	_c.mutation.SetEnrichmentError(v)
	return _c
}

// SetNillableEnrichmentError sets the "enrichment_error" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableEnrichmentError(v *string) *QuestionCreate {
	if v != nil {
		_c.SetEnrichmentError(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *QuestionCreate) SetPodID(v string) *QuestionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillablePodID(v *string) *QuestionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastEnrichmentAt sets the "last_enrichment_at" field.
func (_c *QuestionCreate) SetLastEnrichmentAt(v time.Time) *QuestionCreate {
	_c.mutation.SetLastEnrichmentAt(v)
	return _c
}

// SetNillableLastEnrichmentAt sets the "last_enrichment_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableLastEnrichmentAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetLastEnrichmentAt(*v)
	}
	return _c
}

// SetEnrichedAt sets the "enriched_at" field.
func (_c *QuestionCreate) SetEnrichedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetEnrichedAt(v)
	return _c
}

// SetNillableEnrichedAt sets the "enriched_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableEnrichedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetEnrichedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionCreate) SetUpdatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableUpdatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_c *QuestionCreate) AddAttemptIDs(ids ...string) *QuestionCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_c *QuestionCreate) AddAttempts(v ...*Attempt) *QuestionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// AddPackEntryIDs adds the "pack_entries" edge to the SessionQuestion entity by IDs.
func (_c *QuestionCreate) AddPackEntryIDs(ids ...string) *QuestionCreate {
	_c.mutation.AddPackEntryIDs(ids...)
	return _c
}

// AddPackEntries adds the "pack_entries" edges to the SessionQuestion entity.
func (_c *QuestionCreate) AddPackEntries(v ...*SessionQuestion) *QuestionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPackEntryIDs(ids...)
}

// AddAuditIDs adds the "audits" edge to the EnrichmentAudit entity by IDs.
func (_c *QuestionCreate) AddAuditIDs(ids ...string) *QuestionCreate {
	_c.mutation.AddAuditIDs(ids...)
	return _c
}

// AddAudits adds the "audits" edges to the EnrichmentAudit entity.
func (_c *QuestionCreate) AddAudits(v ...*EnrichmentAudit) *QuestionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := question.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.QualityVerified(); !ok {
		v := question.DefaultQualityVerified
		_c.mutation.SetQualityVerified(v)
	}
	if _, ok := _c.mutation.ConceptExtractionStatus(); !ok {
		v := question.DefaultConceptExtractionStatus
		_c.mutation.SetConceptExtractionStatus(v)
	}
	if _, ok := _c.mutation.EnrichmentStatus(); !ok {
		v := question.DefaultEnrichmentStatus
		_c.mutation.SetEnrichmentStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := question.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "Question.stem"`)}
	}
	if _, ok := _c.mutation.AdminAnswer(); !ok {
		return &ValidationError{Name: "admin_answer", err: errors.New(`ent: missing required field "Question.admin_answer"`)}
	}
	if v, ok := _c.mutation.DifficultyBand(); ok {
		if err := question.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Question.is_active"`)}
	}
	if _, ok := _c.mutation.QualityVerified(); !ok {
		return &ValidationError{Name: "quality_verified", err: errors.New(`ent: missing required field "Question.quality_verified"`)}
	}
	if _, ok := _c.mutation.ConceptExtractionStatus(); !ok {
		return &ValidationError{Name: "concept_extraction_status", err: errors.New(`ent: missing required field "Question.concept_extraction_status"`)}
	}
	if v, ok := _c.mutation.ConceptExtractionStatus(); ok {
		if err := question.ConceptExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "concept_extraction_status", err: fmt.Errorf(`ent: validator failed for field "Question.concept_extraction_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrichmentStatus(); !ok {
		return &ValidationError{Name: "enrichment_status", err: errors.New(`ent: missing required field "Question.enrichment_status"`)}
	}
	if v, ok := _c.mutation.EnrichmentStatus(); ok {
		if err := question.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "Question.enrichment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Question.updated_at"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.AdminAnswer(); ok {
		_spec.SetField(question.FieldAdminAnswer, field.TypeString, value)
		_node.AdminAnswer = value
	}
	if value, ok := _c.mutation.AdminSolution(); ok {
		_spec.SetField(question.FieldAdminSolution, field.TypeString, value)
		_node.AdminSolution = value
	}
	if value, ok := _c.mutation.PrincipleToRemember(); ok {
		_spec.SetField(question.FieldPrincipleToRemember, field.TypeString, value)
		_node.PrincipleToRemember = &value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(question.FieldImageURL, field.TypeString, value)
		_node.ImageURL = &value
	}
	if value, ok := _c.mutation.RightAnswer(); ok {
		_spec.SetField(question.FieldRightAnswer, field.TypeString, value)
		_node.RightAnswer = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(question.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(question.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.DifficultyBand(); ok {
		_spec.SetField(question.FieldDifficultyBand, field.TypeEnum, value)
		_node.DifficultyBand = value
	}
	if value, ok := _c.mutation.DifficultyScore(); ok {
		_spec.SetField(question.FieldDifficultyScore, field.TypeFloat64, value)
		_node.DifficultyScore = value
	}
	if value, ok := _c.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
		_node.PyqFrequencyScore = &value
	}
	if value, ok := _c.mutation.CoreConcepts(); ok {
		_spec.SetField(question.FieldCoreConcepts, field.TypeJSON, value)
		_node.CoreConcepts = value
	}
	if value, ok := _c.mutation.SolutionMethod(); ok {
		_spec.SetField(question.FieldSolutionMethod, field.TypeString, value)
		_node.SolutionMethod = value
	}
	if value, ok := _c.mutation.ConceptDifficulty(); ok {
		_spec.SetField(question.FieldConceptDifficulty, field.TypeJSON, value)
		_node.ConceptDifficulty = value
	}
	if value, ok := _c.mutation.OperationsRequired(); ok {
		_spec.SetField(question.FieldOperationsRequired, field.TypeJSON, value)
		_node.OperationsRequired = value
	}
	if value, ok := _c.mutation.ProblemStructure(); ok {
		_spec.SetField(question.FieldProblemStructure, field.TypeString, value)
		_node.ProblemStructure = value
	}
	if value, ok := _c.mutation.ConceptKeywords(); ok {
		_spec.SetField(question.FieldConceptKeywords, field.TypeJSON, value)
		_node.ConceptKeywords = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(question.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.QualityVerified(); ok {
		_spec.SetField(question.FieldQualityVerified, field.TypeBool, value)
		_node.QualityVerified = value
	}
	if value, ok := _c.mutation.ConceptExtractionStatus(); ok {
		_spec.SetField(question.FieldConceptExtractionStatus, field.TypeEnum, value)
		_node.ConceptExtractionStatus = value
	}
	if value, ok := _c.mutation.FailedChecks(); ok {
		_spec.SetField(question.FieldFailedChecks, field.TypeJSON, value)
		_node.FailedChecks = value
	}
	if value, ok := _c.mutation.EnrichmentStatus(); ok {
		_spec.SetField(question.FieldEnrichmentStatus, field.TypeEnum, value)
		_node.EnrichmentStatus = value
	}
	if value, ok := _c.mutation.EnrichmentError(); ok {
		_spec.SetField(question.FieldEnrichmentError, field.TypeString, value)
		_node.EnrichmentError = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(question.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastEnrichmentAt(); ok {
		_spec.SetField(question.FieldLastEnrichmentAt, field.TypeTime, value)
		_node.LastEnrichmentAt = &value
	}
	if value, ok := _c.mutation.EnrichedAt(); ok {
		_spec.SetField(question.FieldEnrichedAt, field.TypeTime, value)
		_node.EnrichedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PackEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetStem(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetStem(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStem sets the "stem" field.
func (u *QuestionUpsert) SetStem(v string) *QuestionUpsert {
	u.Set(question.FieldStem, v)
	return u
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateStem() *QuestionUpsert {
	u.SetExcluded(question.FieldStem)
	return u
}

// SetAdminAnswer sets the "admin_answer" field.
func (u *QuestionUpsert) SetAdminAnswer(v string) *QuestionUpsert {
	u.Set(question.FieldAdminAnswer, v)
	return u
}

// UpdateAdminAnswer sets the "admin_answer" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateAdminAnswer() *QuestionUpsert {
	u.SetExcluded(question.FieldAdminAnswer)
	return u
}

// SetAdminSolution sets the "admin_solution" field.
func (u *QuestionUpsert) SetAdminSolution(v string) *QuestionUpsert {
	u.Set(question.FieldAdminSolution, v)
	return u
}

// UpdateAdminSolution sets the "admin_solution" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateAdminSolution() *QuestionUpsert {
	u.SetExcluded(question.FieldAdminSolution)
	return u
}

// ClearAdminSolution clears the value of the "admin_solution" field.
func (u *QuestionUpsert) ClearAdminSolution() *QuestionUpsert {
	u.SetNull(question.FieldAdminSolution)
	return u
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (u *QuestionUpsert) SetPrincipleToRemember(v string) *QuestionUpsert {
	u.Set(question.FieldPrincipleToRemember, v)
	return u
}

// UpdatePrincipleToRemember sets the "principle_to_remember" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePrincipleToRemember() *QuestionUpsert {
	u.SetExcluded(question.FieldPrincipleToRemember)
	return u
}

// ClearPrincipleToRemember clears the value of the "principle_to_remember" field.
func (u *QuestionUpsert) ClearPrincipleToRemember() *QuestionUpsert {
	u.SetNull(question.FieldPrincipleToRemember)
	return u
}

// SetImageURL sets the "image_url" field.
func (u *QuestionUpsert) SetImageURL(v string) *QuestionUpsert {
	u.Set(question.FieldImageURL, v)
	return u
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateImageURL() *QuestionUpsert {
	u.SetExcluded(question.FieldImageURL)
	return u
}

// ClearImageURL clears the value of the "image_url" field.
func (u *QuestionUpsert) ClearImageURL() *QuestionUpsert {
	u.SetNull(question.FieldImageURL)
	return u
}

// SetRightAnswer sets the "right_answer" field.
func (u *QuestionUpsert) SetRightAnswer(v string) *QuestionUpsert {
	u.Set(question.FieldRightAnswer, v)
	return u
}

// UpdateRightAnswer sets the "right_answer" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateRightAnswer() *QuestionUpsert {
	u.SetExcluded(question.FieldRightAnswer)
	return u
}

// ClearRightAnswer clears the value of the "right_answer" field.
func (u *QuestionUpsert) ClearRightAnswer() *QuestionUpsert {
	u.SetNull(question.FieldRightAnswer)
	return u
}

// SetCategory sets the "category" field.
func (u *QuestionUpsert) SetCategory(v string) *QuestionUpsert {
	u.Set(question.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateCategory() *QuestionUpsert {
	u.SetExcluded(question.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *QuestionUpsert) ClearCategory() *QuestionUpsert {
	u.SetNull(question.FieldCategory)
	return u
}

// SetSubcategory sets the "subcategory" field.
func (u *QuestionUpsert) SetSubcategory(v string) *QuestionUpsert {
	u.Set(question.FieldSubcategory, v)
	return u
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateSubcategory() *QuestionUpsert {
	u.SetExcluded(question.FieldSubcategory)
	return u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *QuestionUpsert) ClearSubcategory() *QuestionUpsert {
	u.SetNull(question.FieldSubcategory)
	return u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *QuestionUpsert) SetTypeOfQuestion(v string) *QuestionUpsert {
	u.Set(question.FieldTypeOfQuestion, v)
	return u
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTypeOfQuestion() *QuestionUpsert {
	u.SetExcluded(question.FieldTypeOfQuestion)
	return u
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (u *QuestionUpsert) ClearTypeOfQuestion() *QuestionUpsert {
	u.SetNull(question.FieldTypeOfQuestion)
	return u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *QuestionUpsert) SetDifficultyBand(v question.DifficultyBand) *QuestionUpsert {
	u.Set(question.FieldDifficultyBand, v)
	return u
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDifficultyBand() *QuestionUpsert {
	u.SetExcluded(question.FieldDifficultyBand)
	return u
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (u *QuestionUpsert) ClearDifficultyBand() *QuestionUpsert {
	u.SetNull(question.FieldDifficultyBand)
	return u
}

// SetDifficultyScore sets the "difficulty_score" field.
func (u *QuestionUpsert) SetDifficultyScore(v float64) *QuestionUpsert {
	u.Set(question.FieldDifficultyScore, v)
	return u
}

// UpdateDifficultyScore sets the "difficulty_score" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDifficultyScore() *QuestionUpsert {
	u.SetExcluded(question.FieldDifficultyScore)
	return u
}

// AddDifficultyScore adds v to the "difficulty_score" field.
func (u *QuestionUpsert) AddDifficultyScore(v float64) *QuestionUpsert {
	u.Add(question.FieldDifficultyScore, v)
	return u
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (u *QuestionUpsert) ClearDifficultyScore() *QuestionUpsert {
	u.SetNull(question.FieldDifficultyScore)
	return u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *QuestionUpsert) SetPyqFrequencyScore(v float64) *QuestionUpsert {
	u.Set(question.FieldPyqFrequencyScore, v)
	return u
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePyqFrequencyScore() *QuestionUpsert {
	u.SetExcluded(question.FieldPyqFrequencyScore)
	return u
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *QuestionUpsert) AddPyqFrequencyScore(v float64) *QuestionUpsert {
	u.Add(question.FieldPyqFrequencyScore, v)
	return u
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (u *QuestionUpsert) ClearPyqFrequencyScore() *QuestionUpsert {
	u.SetNull(question.FieldPyqFrequencyScore)
	return u
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *QuestionUpsert) SetCoreConcepts(v []string) *QuestionUpsert {
	u.Set(question.FieldCoreConcepts, v)
	return u
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateCoreConcepts() *QuestionUpsert {
	u.SetExcluded(question.FieldCoreConcepts)
	return u
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (u *QuestionUpsert) ClearCoreConcepts() *QuestionUpsert {
	u.SetNull(question.FieldCoreConcepts)
	return u
}

// SetSolutionMethod sets the "solution_method" field.
func (u *QuestionUpsert) SetSolutionMethod(v string) *QuestionUpsert {
	u.Set(question.FieldSolutionMethod, v)
	return u
}

// UpdateSolutionMethod sets the "solution_method" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateSolutionMethod() *QuestionUpsert {
	u.SetExcluded(question.FieldSolutionMethod)
	return u
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (u *QuestionUpsert) ClearSolutionMethod() *QuestionUpsert {
	u.SetNull(question.FieldSolutionMethod)
	return u
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (u *QuestionUpsert) SetConceptDifficulty(v map[string][]string) *QuestionUpsert {
	u.Set(question.FieldConceptDifficulty, v)
	return u
}

// UpdateConceptDifficulty sets the "concept_difficulty" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateConceptDifficulty() *QuestionUpsert {
	u.SetExcluded(question.FieldConceptDifficulty)
	return u
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (u *QuestionUpsert) ClearConceptDifficulty() *QuestionUpsert {
	u.SetNull(question.FieldConceptDifficulty)
	return u
}

// SetOperationsRequired sets the "operations_required" field.
func (u *QuestionUpsert) SetOperationsRequired(v []string) *QuestionUpsert {
	u.Set(question.FieldOperationsRequired, v)
	return u
}

// UpdateOperationsRequired sets the "operations_required" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateOperationsRequired() *QuestionUpsert {
	u.SetExcluded(question.FieldOperationsRequired)
	return u
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (u *QuestionUpsert) ClearOperationsRequired() *QuestionUpsert {
	u.SetNull(question.FieldOperationsRequired)
	return u
}

// SetProblemStructure sets the "problem_structure" field.
func (u *QuestionUpsert) SetProblemStructure(v string) *QuestionUpsert {
	u.Set(question.FieldProblemStructure, v)
	return u
}

// UpdateProblemStructure sets the "problem_structure" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateProblemStructure() *QuestionUpsert {
	u.SetExcluded(question.FieldProblemStructure)
	return u
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (u *QuestionUpsert) ClearProblemStructure() *QuestionUpsert {
	u.SetNull(question.FieldProblemStructure)
	return u
}

// SetConceptKeywords sets the "concept_keywords" field.
func (u *QuestionUpsert) SetConceptKeywords(v []string) *QuestionUpsert {
	u.Set(question.FieldConceptKeywords, v)
	return u
}

// UpdateConceptKeywords sets the "concept_keywords" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateConceptKeywords() *QuestionUpsert {
	u.SetExcluded(question.FieldConceptKeywords)
	return u
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (u *QuestionUpsert) ClearConceptKeywords() *QuestionUpsert {
	u.SetNull(question.FieldConceptKeywords)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *QuestionUpsert) SetIsActive(v bool) *QuestionUpsert {
	u.Set(question.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateIsActive() *QuestionUpsert {
	u.SetExcluded(question.FieldIsActive)
	return u
}

// SetQualityVerified sets the "quality_verified" field.
func (u *QuestionUpsert) SetQualityVerified(v bool) *QuestionUpsert {
	u.Set(question.FieldQualityVerified, v)
	return u
}

// UpdateQualityVerified sets the "quality_verified" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateQualityVerified() *QuestionUpsert {
	u.SetExcluded(question.FieldQualityVerified)
	return u
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (u *QuestionUpsert) SetConceptExtractionStatus(v question.ConceptExtractionStatus) *QuestionUpsert {
	u.Set(question.FieldConceptExtractionStatus, v)
	return u
}

// UpdateConceptExtractionStatus sets the "concept_extraction_status" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateConceptExtractionStatus() *QuestionUpsert {
	u.SetExcluded(question.FieldConceptExtractionStatus)
	return u
}

// SetFailedChecks sets the "failed_checks" field.
func (u *QuestionUpsert) SetFailedChecks(v []string) *QuestionUpsert {
	u.Set(question.FieldFailedChecks, v)
	return u
}

// UpdateFailedChecks sets the "failed_checks" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateFailedChecks() *QuestionUpsert {
	u.SetExcluded(question.FieldFailedChecks)
	return u
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (u *QuestionUpsert) ClearFailedChecks() *QuestionUpsert {
	u.SetNull(question.FieldFailedChecks)
	return u
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (u *QuestionUpsert) SetEnrichmentStatus(v question.EnrichmentStatus) *QuestionUpsert {
	u.Set(question.FieldEnrichmentStatus, v)
	return u
}

// UpdateEnrichmentStatus sets the "enrichment_status" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateEnrichmentStatus() *QuestionUpsert {
	u.SetExcluded(question.FieldEnrichmentStatus)
	return u
}

// SetEnrichmentError sets the "enrichment_error" field.
func (u *QuestionUpsert) SetEnrichmentError(v string) *QuestionUpsert {
	u.Set(question.FieldEnrichmentError, v)
	return u
}

// UpdateEnrichmentError sets the "enrichment_error" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateEnrichmentError() *QuestionUpsert {
	u.SetExcluded(question.FieldEnrichmentError)
	return u
}

// ClearEnrichmentError clears the value of the "enrichment_error" field.
func (u *QuestionUpsert) ClearEnrichmentError() *QuestionUpsert {
	u.SetNull(question.FieldEnrichmentError)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *QuestionUpsert) SetPodID(v string) *QuestionUpsert {
	u.Set(question.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePodID() *QuestionUpsert {
	u.SetExcluded(question.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *QuestionUpsert) ClearPodID() *QuestionUpsert {
	u.SetNull(question.FieldPodID)
	return u
}

// SetLastEnrichmentAt sets the "last_enrichment_at" field.
func (u *QuestionUpsert) SetLastEnrichmentAt(v time.Time) *QuestionUpsert {
	u.Set(question.FieldLastEnrichmentAt, v)
	return u
}

// UpdateLastEnrichmentAt sets the "last_enrichment_at" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateLastEnrichmentAt() *QuestionUpsert {
	u.SetExcluded(question.FieldLastEnrichmentAt)
	return u
}

// ClearLastEnrichmentAt clears the value of the "last_enrichment_at" field.
func (u *QuestionUpsert) ClearLastEnrichmentAt() *QuestionUpsert {
	u.SetNull(question.FieldLastEnrichmentAt)
	return u
}

// SetEnrichedAt sets the "enriched_at" field.
func (u *QuestionUpsert) SetEnrichedAt(v time.Time) *QuestionUpsert {
	u.Set(question.FieldEnrichedAt, v)
	return u
}

// UpdateEnrichedAt sets the "enriched_at" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateEnrichedAt() *QuestionUpsert {
	u.SetExcluded(question.FieldEnrichedAt)
	return u
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (u *QuestionUpsert) ClearEnrichedAt() *QuestionUpsert {
	u.SetNull(question.FieldEnrichedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionUpsert) SetUpdatedAt(v time.Time) *QuestionUpsert {
	u.Set(question.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateUpdatedAt() *QuestionUpsert {
	u.SetExcluded(question.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(question.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(question.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStem sets the "stem" field.
func (u *QuestionUpsertOne) SetStem(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetStem(v)
	})
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateStem() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateStem()
	})
}

// SetAdminAnswer sets the "admin_answer" field.
func (u *QuestionUpsertOne) SetAdminAnswer(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAdminAnswer(v)
	})
}

// UpdateAdminAnswer sets the "admin_answer" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateAdminAnswer() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAdminAnswer()
	})
}

// SetAdminSolution sets the "admin_solution" field.
func (u *QuestionUpsertOne) SetAdminSolution(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAdminSolution(v)
	})
}

// UpdateAdminSolution sets the "admin_solution" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateAdminSolution() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAdminSolution()
	})
}

// ClearAdminSolution clears the value of the "admin_solution" field.
func (u *QuestionUpsertOne) ClearAdminSolution() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearAdminSolution()
	})
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (u *QuestionUpsertOne) SetPrincipleToRemember(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPrincipleToRemember(v)
	})
}

// UpdatePrincipleToRemember sets the "principle_to_remember" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePrincipleToRemember() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePrincipleToRemember()
	})
}

// ClearPrincipleToRemember clears the value of the "principle_to_remember" field.
func (u *QuestionUpsertOne) ClearPrincipleToRemember() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearPrincipleToRemember()
	})
}

// SetImageURL sets the "image_url" field.
func (u *QuestionUpsertOne) SetImageURL(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateImageURL() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateImageURL()
	})
}

// ClearImageURL clears the value of the "image_url" field.
func (u *QuestionUpsertOne) ClearImageURL() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearImageURL()
	})
}

// SetRightAnswer sets the "right_answer" field.
func (u *QuestionUpsertOne) SetRightAnswer(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetRightAnswer(v)
	})
}

// UpdateRightAnswer sets the "right_answer" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateRightAnswer() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateRightAnswer()
	})
}

// ClearRightAnswer clears the value of the "right_answer" field.
func (u *QuestionUpsertOne) ClearRightAnswer() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearRightAnswer()
	})
}

// SetCategory sets the "category" field.
func (u *QuestionUpsertOne) SetCategory(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateCategory() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *QuestionUpsertOne) ClearCategory() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *QuestionUpsertOne) SetSubcategory(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateSubcategory() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *QuestionUpsertOne) ClearSubcategory() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearSubcategory()
	})
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *QuestionUpsertOne) SetTypeOfQuestion(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTypeOfQuestion(v)
	})
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTypeOfQuestion() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTypeOfQuestion()
	})
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (u *QuestionUpsertOne) ClearTypeOfQuestion() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearTypeOfQuestion()
	})
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *QuestionUpsertOne) SetDifficultyBand(v question.DifficultyBand) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficultyBand(v)
	})
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDifficultyBand() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficultyBand()
	})
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (u *QuestionUpsertOne) ClearDifficultyBand() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearDifficultyBand()
	})
}

// SetDifficultyScore sets the "difficulty_score" field.
func (u *QuestionUpsertOne) SetDifficultyScore(v float64) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficultyScore(v)
	})
}

// AddDifficultyScore adds v to the "difficulty_score" field.
func (u *QuestionUpsertOne) AddDifficultyScore(v float64) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddDifficultyScore(v)
	})
}

// UpdateDifficultyScore sets the "difficulty_score" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDifficultyScore() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficultyScore()
	})
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (u *QuestionUpsertOne) ClearDifficultyScore() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearDifficultyScore()
	})
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *QuestionUpsertOne) SetPyqFrequencyScore(v float64) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPyqFrequencyScore(v)
	})
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *QuestionUpsertOne) AddPyqFrequencyScore(v float64) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddPyqFrequencyScore(v)
	})
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePyqFrequencyScore() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePyqFrequencyScore()
	})
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (u *QuestionUpsertOne) ClearPyqFrequencyScore() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearPyqFrequencyScore()
	})
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *QuestionUpsertOne) SetCoreConcepts(v []string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCoreConcepts(v)
	})
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateCoreConcepts() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCoreConcepts()
	})
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (u *QuestionUpsertOne) ClearCoreConcepts() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearCoreConcepts()
	})
}

// SetSolutionMethod sets the "solution_method" field.
func (u *QuestionUpsertOne) SetSolutionMethod(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSolutionMethod(v)
	})
}

// UpdateSolutionMethod sets the "solution_method" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateSolutionMethod() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSolutionMethod()
	})
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (u *QuestionUpsertOne) ClearSolutionMethod() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearSolutionMethod()
	})
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (u *QuestionUpsertOne) SetConceptDifficulty(v map[string][]string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetConceptDifficulty(v)
	})
}

// UpdateConceptDifficulty sets the "concept_difficulty" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateConceptDifficulty() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateConceptDifficulty()
	})
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (u *QuestionUpsertOne) ClearConceptDifficulty() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearConceptDifficulty()
	})
}

// SetOperationsRequired sets the "operations_required" field.
func (u *QuestionUpsertOne) SetOperationsRequired(v []string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOperationsRequired(v)
	})
}

// UpdateOperationsRequired sets the "operations_required" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateOperationsRequired() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOperationsRequired()
	})
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (u *QuestionUpsertOne) ClearOperationsRequired() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearOperationsRequired()
	})
}

// SetProblemStructure sets the "problem_structure" field.
func (u *QuestionUpsertOne) SetProblemStructure(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetProblemStructure(v)
	})
}

// UpdateProblemStructure sets the "problem_structure" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateProblemStructure() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateProblemStructure()
	})
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (u *QuestionUpsertOne) ClearProblemStructure() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearProblemStructure()
	})
}

// SetConceptKeywords sets the "concept_keywords" field.
func (u *QuestionUpsertOne) SetConceptKeywords(v []string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetConceptKeywords(v)
	})
}

// UpdateConceptKeywords sets the "concept_keywords" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateConceptKeywords() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateConceptKeywords()
	})
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (u *QuestionUpsertOne) ClearConceptKeywords() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearConceptKeywords()
	})
}

// SetIsActive sets the "is_active" field.
func (u *QuestionUpsertOne) SetIsActive(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateIsActive() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateIsActive()
	})
}

// SetQualityVerified sets the "quality_verified" field.
func (u *QuestionUpsertOne) SetQualityVerified(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQualityVerified(v)
	})
}

// UpdateQualityVerified sets the "quality_verified" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateQualityVerified() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQualityVerified()
	})
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (u *QuestionUpsertOne) SetConceptExtractionStatus(v question.ConceptExtractionStatus) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetConceptExtractionStatus(v)
	})
}

// UpdateConceptExtractionStatus sets the "concept_extraction_status" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateConceptExtractionStatus() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateConceptExtractionStatus()
	})
}

// SetFailedChecks sets the "failed_checks" field.
func (u *QuestionUpsertOne) SetFailedChecks(v []string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetFailedChecks(v)
	})
}

// UpdateFailedChecks sets the "failed_checks" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateFailedChecks() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateFailedChecks()
	})
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (u *QuestionUpsertOne) ClearFailedChecks() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearFailedChecks()
	})
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (u *QuestionUpsertOne) SetEnrichmentStatus(v question.EnrichmentStatus) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetEnrichmentStatus(v)
	})
}

// UpdateEnrichmentStatus sets the "enrichment_status" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateEnrichmentStatus() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateEnrichmentStatus()
	})
}

// SetEnrichmentError sets the "enrichment_error" field.
func (u *QuestionUpsertOne) SetEnrichmentError(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetEnrichmentError(v)
	})
}

// UpdateEnrichmentError sets the "enrichment_error" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateEnrichmentError() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateEnrichmentError()
	})
}

// ClearEnrichmentError clears the value of the "enrichment_error" field.
func (u *QuestionUpsertOne) ClearEnrichmentError() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearEnrichmentError()
	})
}

// SetPodID sets the "pod_id" field.
func (u *QuestionUpsertOne) SetPodID(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePodID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *QuestionUpsertOne) ClearPodID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearPodID()
	})
}

// SetLastEnrichmentAt sets the "last_enrichment_at" field.
func (u *QuestionUpsertOne) SetLastEnrichmentAt(v time.Time) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetLastEnrichmentAt(v)
	})
}

// UpdateLastEnrichmentAt sets the "last_enrichment_at" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateLastEnrichmentAt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateLastEnrichmentAt()
	})
}

// ClearLastEnrichmentAt clears the value of the "last_enrichment_at" field.
func (u *QuestionUpsertOne) ClearLastEnrichmentAt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearLastEnrichmentAt()
	})
}

// SetEnrichedAt sets the "enriched_at" field.
func (u *QuestionUpsertOne) SetEnrichedAt(v time.Time) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetEnrichedAt(v)
	})
}

// UpdateEnrichedAt sets the "enriched_at" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateEnrichedAt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateEnrichedAt()
	})
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (u *QuestionUpsertOne) ClearEnrichedAt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearEnrichedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionUpsertOne) SetUpdatedAt(v time.Time) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateUpdatedAt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuestionUpsertOne.ID is not supported by MySQL driver. Use QuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetStem(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(question.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(question.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStem sets the "stem" field.
func (u *QuestionUpsertBulk) SetStem(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetStem(v)
	})
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateStem() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateStem()
	})
}

// SetAdminAnswer sets the "admin_answer" field.
func (u *QuestionUpsertBulk) SetAdminAnswer(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAdminAnswer(v)
	})
}

// UpdateAdminAnswer sets the "admin_answer" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateAdminAnswer() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAdminAnswer()
	})
}

// SetAdminSolution sets the "admin_solution" field.
func (u *QuestionUpsertBulk) SetAdminSolution(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetAdminSolution(v)
	})
}

// UpdateAdminSolution sets the "admin_solution" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateAdminSolution() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateAdminSolution()
	})
}

// ClearAdminSolution clears the value of the "admin_solution" field.
func (u *QuestionUpsertBulk) ClearAdminSolution() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearAdminSolution()
	})
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (u *QuestionUpsertBulk) SetPrincipleToRemember(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPrincipleToRemember(v)
	})
}

// UpdatePrincipleToRemember sets the "principle_to_remember" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePrincipleToRemember() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePrincipleToRemember()
	})
}

// ClearPrincipleToRemember clears the value of the "principle_to_remember" field.
func (u *QuestionUpsertBulk) ClearPrincipleToRemember() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearPrincipleToRemember()
	})
}

// SetImageURL sets the "image_url" field.
func (u *QuestionUpsertBulk) SetImageURL(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateImageURL() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateImageURL()
	})
}

// ClearImageURL clears the value of the "image_url" field.
func (u *QuestionUpsertBulk) ClearImageURL() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearImageURL()
	})
}

// SetRightAnswer sets the "right_answer" field.
func (u *QuestionUpsertBulk) SetRightAnswer(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetRightAnswer(v)
	})
}

// UpdateRightAnswer sets the "right_answer" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateRightAnswer() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateRightAnswer()
	})
}

// ClearRightAnswer clears the value of the "right_answer" field.
func (u *QuestionUpsertBulk) ClearRightAnswer() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearRightAnswer()
	})
}

// SetCategory sets the "category" field.
func (u *QuestionUpsertBulk) SetCategory(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateCategory() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *QuestionUpsertBulk) ClearCategory() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *QuestionUpsertBulk) SetSubcategory(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateSubcategory() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *QuestionUpsertBulk) ClearSubcategory() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearSubcategory()
	})
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *QuestionUpsertBulk) SetTypeOfQuestion(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTypeOfQuestion(v)
	})
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTypeOfQuestion() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTypeOfQuestion()
	})
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (u *QuestionUpsertBulk) ClearTypeOfQuestion() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearTypeOfQuestion()
	})
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *QuestionUpsertBulk) SetDifficultyBand(v question.DifficultyBand) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficultyBand(v)
	})
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDifficultyBand() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficultyBand()
	})
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (u *QuestionUpsertBulk) ClearDifficultyBand() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearDifficultyBand()
	})
}

// SetDifficultyScore sets the "difficulty_score" field.
func (u *QuestionUpsertBulk) SetDifficultyScore(v float64) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficultyScore(v)
	})
}

// AddDifficultyScore adds v to the "difficulty_score" field.
func (u *QuestionUpsertBulk) AddDifficultyScore(v float64) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddDifficultyScore(v)
	})
}

// UpdateDifficultyScore sets the "difficulty_score" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDifficultyScore() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficultyScore()
	})
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (u *QuestionUpsertBulk) ClearDifficultyScore() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearDifficultyScore()
	})
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *QuestionUpsertBulk) SetPyqFrequencyScore(v float64) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPyqFrequencyScore(v)
	})
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *QuestionUpsertBulk) AddPyqFrequencyScore(v float64) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddPyqFrequencyScore(v)
	})
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePyqFrequencyScore() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePyqFrequencyScore()
	})
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (u *QuestionUpsertBulk) ClearPyqFrequencyScore() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearPyqFrequencyScore()
	})
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *QuestionUpsertBulk) SetCoreConcepts(v []string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCoreConcepts(v)
	})
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateCoreConcepts() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCoreConcepts()
	})
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (u *QuestionUpsertBulk) ClearCoreConcepts() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearCoreConcepts()
	})
}

// SetSolutionMethod sets the "solution_method" field.
func (u *QuestionUpsertBulk) SetSolutionMethod(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSolutionMethod(v)
	})
}

// UpdateSolutionMethod sets the "solution_method" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateSolutionMethod() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSolutionMethod()
	})
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (u *QuestionUpsertBulk) ClearSolutionMethod() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearSolutionMethod()
	})
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (u *QuestionUpsertBulk) SetConceptDifficulty(v map[string][]string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetConceptDifficulty(v)
	})
}

// UpdateConceptDifficulty sets the "concept_difficulty" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateConceptDifficulty() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateConceptDifficulty()
	})
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (u *QuestionUpsertBulk) ClearConceptDifficulty() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearConceptDifficulty()
	})
}

// SetOperationsRequired sets the "operations_required" field.
func (u *QuestionUpsertBulk) SetOperationsRequired(v []string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetOperationsRequired(v)
	})
}

// UpdateOperationsRequired sets the "operations_required" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateOperationsRequired() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateOperationsRequired()
	})
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (u *QuestionUpsertBulk) ClearOperationsRequired() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearOperationsRequired()
	})
}

// SetProblemStructure sets the "problem_structure" field.
func (u *QuestionUpsertBulk) SetProblemStructure(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetProblemStructure(v)
	})
}

// UpdateProblemStructure sets the "problem_structure" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateProblemStructure() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateProblemStructure()
	})
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (u *QuestionUpsertBulk) ClearProblemStructure() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearProblemStructure()
	})
}

// SetConceptKeywords sets the "concept_keywords" field.
func (u *QuestionUpsertBulk) SetConceptKeywords(v []string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetConceptKeywords(v)
	})
}

// UpdateConceptKeywords sets the "concept_keywords" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateConceptKeywords() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateConceptKeywords()
	})
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (u *QuestionUpsertBulk) ClearConceptKeywords() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearConceptKeywords()
	})
}

// SetIsActive sets the "is_active" field.
func (u *QuestionUpsertBulk) SetIsActive(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateIsActive() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateIsActive()
	})
}

// SetQualityVerified sets the "quality_verified" field.
func (u *QuestionUpsertBulk) SetQualityVerified(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQualityVerified(v)
	})
}

// UpdateQualityVerified sets the "quality_verified" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateQualityVerified() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQualityVerified()
	})
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (u *QuestionUpsertBulk) SetConceptExtractionStatus(v question.ConceptExtractionStatus) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetConceptExtractionStatus(v)
	})
}

// UpdateConceptExtractionStatus sets the "concept_extraction_status" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateConceptExtractionStatus() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateConceptExtractionStatus()
	})
}

// SetFailedChecks sets the "failed_checks" field.
func (u *QuestionUpsertBulk) SetFailedChecks(v []string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetFailedChecks(v)
	})
}

// UpdateFailedChecks sets the "failed_checks" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateFailedChecks() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateFailedChecks()
	})
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (u *QuestionUpsertBulk) ClearFailedChecks() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearFailedChecks()
	})
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (u *QuestionUpsertBulk) SetEnrichmentStatus(v question.EnrichmentStatus) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetEnrichmentStatus(v)
	})
}

// UpdateEnrichmentStatus sets the "enrichment_status" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateEnrichmentStatus() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateEnrichmentStatus()
	})
}

// SetEnrichmentError sets the "enrichment_error" field.
func (u *QuestionUpsertBulk) SetEnrichmentError(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetEnrichmentError(v)
	})
}

// UpdateEnrichmentError sets the "enrichment_error" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateEnrichmentError() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateEnrichmentError()
	})
}

// ClearEnrichmentError clears the value of the "enrichment_error" field.
func (u *QuestionUpsertBulk) ClearEnrichmentError() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearEnrichmentError()
	})
}

// SetPodID sets the "pod_id" field.
func (u *QuestionUpsertBulk) SetPodID(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePodID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *QuestionUpsertBulk) ClearPodID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearPodID()
	})
}

// SetLastEnrichmentAt sets the "last_enrichment_at" field.
func (u *QuestionUpsertBulk) SetLastEnrichmentAt(v time.Time) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetLastEnrichmentAt(v)
	})
}

// UpdateLastEnrichmentAt sets the "last_enrichment_at" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateLastEnrichmentAt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateLastEnrichmentAt()
	})
}

// ClearLastEnrichmentAt clears the value of the "last_enrichment_at" field.
func (u *QuestionUpsertBulk) ClearLastEnrichmentAt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearLastEnrichmentAt()
	})
}

// SetEnrichedAt sets the "enriched_at" field.
func (u *QuestionUpsertBulk) SetEnrichedAt(v time.Time) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetEnrichedAt(v)
	})
}

// UpdateEnrichedAt sets the "enriched_at" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateEnrichedAt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateEnrichedAt()
	})
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (u *QuestionUpsertBulk) ClearEnrichedAt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearEnrichedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionUpsertBulk) SetUpdatedAt(v time.Time) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateUpdatedAt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
