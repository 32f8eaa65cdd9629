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
	"github.com/prepforge/quanta/ent/pyqquestion"
)

// PYQQuestionCreate is the builder for creating a PYQQuestion entity.
type PYQQuestionCreate struct {
	config
	mutation *PYQQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStem sets the "stem" field.
func (_c *PYQQuestionCreate) SetStem(v string) *PYQQuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *PYQQuestionCreate) SetCategory(v string) *PYQQuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *PYQQuestionCreate) SetSubcategory(v string) *PYQQuestionCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *PYQQuestionCreate) SetTypeOfQuestion(v string) *PYQQuestionCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_c *PYQQuestionCreate) SetDifficultyBand(v pyqquestion.DifficultyBand) *PYQQuestionCreate {
	_c.mutation.SetDifficultyBand(v)
	return _c
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableDifficultyBand(v *pyqquestion.DifficultyBand) *PYQQuestionCreate {
	if v != nil {
		_c.SetDifficultyBand(*v)
	}
	return _c
}

// SetProblemStructure sets the "problem_structure" field.
func (_c *PYQQuestionCreate) SetProblemStructure(v string) *PYQQuestionCreate {
	_c.mutation.SetProblemStructure(v)
	return _c
}

// SetNillableProblemStructure sets the "problem_structure" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableProblemStructure(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetProblemStructure(*v)
	}
	return _c
}

// SetConceptKeywords sets the "concept_keywords" field.
func (_c *PYQQuestionCreate) SetConceptKeywords(v []string) *PYQQuestionCreate {
	_c.mutation.SetConceptKeywords(v)
	return _c
}

// SetYear sets the "year" field.
func (_c *PYQQuestionCreate) SetYear(v int) *PYQQuestionCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableYear(v *int) *PYQQuestionCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetSlot sets the "slot" field.
func (_c *PYQQuestionCreate) SetSlot(v string) *PYQQuestionCreate {
	_c.mutation.SetSlot(v)
	return _c
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableSlot(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetSlot(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PYQQuestionCreate) SetIsActive(v bool) *PYQQuestionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableIsActive(v *bool) *PYQQuestionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetQualityVerified sets the "quality_verified" field.
func (_c *PYQQuestionCreate) SetQualityVerified(v bool) *PYQQuestionCreate {
	_c.mutation.SetQualityVerified(v)
	return _c
}

// SetNillableQualityVerified sets the "quality_verified" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableQualityVerified(v *bool) *PYQQuestionCreate {
	if v != nil {
		_c.SetQualityVerified(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PYQQuestionCreate) SetCreatedAt(v time.Time) *PYQQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableCreatedAt(v *time.Time) *PYQQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PYQQuestionCreate) SetID(v string) *PYQQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PYQQuestionMutation object of the builder.
func (_c *PYQQuestionCreate) Mutation() *PYQQuestionMutation {
	return _c.mutation
}

// Save creates the PYQQuestion in the database.
func (_c *PYQQuestionCreate) Save(ctx context.Context) (*PYQQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PYQQuestionCreate) SaveX(ctx context.Context) *PYQQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PYQQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PYQQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PYQQuestionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := pyqquestion.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.QualityVerified(); !ok {
		v := pyqquestion.DefaultQualityVerified
		_c.mutation.SetQualityVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pyqquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PYQQuestionCreate) check() error {
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "PYQQuestion.stem"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PYQQuestion.category"`)}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "PYQQuestion.subcategory"`)}
	}
	if _, ok := _c.mutation.TypeOfQuestion(); !ok {
		return &ValidationError{Name: "type_of_question", err: errors.New(`ent: missing required field "PYQQuestion.type_of_question"`)}
	}
	if v, ok := _c.mutation.DifficultyBand(); ok {
		if err := pyqquestion.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "PYQQuestion.difficulty_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PYQQuestion.is_active"`)}
	}
	if _, ok := _c.mutation.QualityVerified(); !ok {
		return &ValidationError{Name: "quality_verified", err: errors.New(`ent: missing required field "PYQQuestion.quality_verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PYQQuestion.created_at"`)}
	}
	return nil
}

func (_c *PYQQuestionCreate) sqlSave(ctx context.Context) (*PYQQuestion, error) {
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
			return nil, fmt.Errorf("unexpected PYQQuestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PYQQuestionCreate) createSpec() (*PYQQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &PYQQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pyqquestion.Table, sqlgraph.NewFieldSpec(pyqquestion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(pyqquestion.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(pyqquestion.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(pyqquestion.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(pyqquestion.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.DifficultyBand(); ok {
		_spec.SetField(pyqquestion.FieldDifficultyBand, field.TypeEnum, value)
		_node.DifficultyBand = value
	}
	if value, ok := _c.mutation.ProblemStructure(); ok {
		_spec.SetField(pyqquestion.FieldProblemStructure, field.TypeString, value)
		_node.ProblemStructure = value
	}
	if value, ok := _c.mutation.ConceptKeywords(); ok {
		_spec.SetField(pyqquestion.FieldConceptKeywords, field.TypeJSON, value)
		_node.ConceptKeywords = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(pyqquestion.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Slot(); ok {
		_spec.SetField(pyqquestion.FieldSlot, field.TypeString, value)
		_node.Slot = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(pyqquestion.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.QualityVerified(); ok {
		_spec.SetField(pyqquestion.FieldQualityVerified, field.TypeBool, value)
		_node.QualityVerified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pyqquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PYQQuestion.Create().
//		SetStem(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PYQQuestionUpsert) {
//			SetStem(v+v).
//		}).
//		Exec(ctx)
func (_c *PYQQuestionCreate) OnConflict(opts ...sql.ConflictOption) *PYQQuestionUpsertOne {
	_c.conflict = opts
	return &PYQQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PYQQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PYQQuestionCreate) OnConflictColumns(columns ...string) *PYQQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PYQQuestionUpsertOne{
		create: _c,
	}
}

type (
	// PYQQuestionUpsertOne is the builder for "upsert"-ing
	//  one PYQQuestion node.
	PYQQuestionUpsertOne struct {
		create *PYQQuestionCreate
	}

	// PYQQuestionUpsert is the "OnConflict" setter.
	PYQQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStem sets the "stem" field.
func (u *PYQQuestionUpsert) SetStem(v string) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldStem, v)
	return u
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateStem() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldStem)
	return u
}

// SetCategory sets the "category" field.
func (u *PYQQuestionUpsert) SetCategory(v string) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateCategory() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldCategory)
	return u
}

// SetSubcategory sets the "subcategory" field.
func (u *PYQQuestionUpsert) SetSubcategory(v string) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldSubcategory, v)
	return u
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateSubcategory() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldSubcategory)
	return u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *PYQQuestionUpsert) SetTypeOfQuestion(v string) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldTypeOfQuestion, v)
	return u
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateTypeOfQuestion() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldTypeOfQuestion)
	return u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *PYQQuestionUpsert) SetDifficultyBand(v pyqquestion.DifficultyBand) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldDifficultyBand, v)
	return u
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateDifficultyBand() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldDifficultyBand)
	return u
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (u *PYQQuestionUpsert) ClearDifficultyBand() *PYQQuestionUpsert {
	u.SetNull(pyqquestion.FieldDifficultyBand)
	return u
}

// SetProblemStructure sets the "problem_structure" field.
func (u *PYQQuestionUpsert) SetProblemStructure(v string) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldProblemStructure, v)
	return u
}

// UpdateProblemStructure sets the "problem_structure" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateProblemStructure() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldProblemStructure)
	return u
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (u *PYQQuestionUpsert) ClearProblemStructure() *PYQQuestionUpsert {
	u.SetNull(pyqquestion.FieldProblemStructure)
	return u
}

// SetConceptKeywords sets the "concept_keywords" field.
func (u *PYQQuestionUpsert) SetConceptKeywords(v []string) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldConceptKeywords, v)
	return u
}

// UpdateConceptKeywords sets the "concept_keywords" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateConceptKeywords() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldConceptKeywords)
	return u
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (u *PYQQuestionUpsert) ClearConceptKeywords() *PYQQuestionUpsert {
	u.SetNull(pyqquestion.FieldConceptKeywords)
	return u
}

// SetYear sets the "year" field.
func (u *PYQQuestionUpsert) SetYear(v int) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldYear, v)
	return u
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateYear() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldYear)
	return u
}

// AddYear adds v to the "year" field.
func (u *PYQQuestionUpsert) AddYear(v int) *PYQQuestionUpsert {
	u.Add(pyqquestion.FieldYear, v)
	return u
}

// ClearYear clears the value of the "year" field.
func (u *PYQQuestionUpsert) ClearYear() *PYQQuestionUpsert {
	u.SetNull(pyqquestion.FieldYear)
	return u
}

// SetSlot sets the "slot" field.
func (u *PYQQuestionUpsert) SetSlot(v string) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldSlot, v)
	return u
}

// UpdateSlot sets the "slot" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateSlot() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldSlot)
	return u
}

// ClearSlot clears the value of the "slot" field.
func (u *PYQQuestionUpsert) ClearSlot() *PYQQuestionUpsert {
	u.SetNull(pyqquestion.FieldSlot)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PYQQuestionUpsert) SetIsActive(v bool) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateIsActive() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldIsActive)
	return u
}

// SetQualityVerified sets the "quality_verified" field.
func (u *PYQQuestionUpsert) SetQualityVerified(v bool) *PYQQuestionUpsert {
	u.Set(pyqquestion.FieldQualityVerified, v)
	return u
}

// UpdateQualityVerified sets the "quality_verified" field to the value that was provided on create.
func (u *PYQQuestionUpsert) UpdateQualityVerified() *PYQQuestionUpsert {
	u.SetExcluded(pyqquestion.FieldQualityVerified)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PYQQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pyqquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PYQQuestionUpsertOne) UpdateNewValues() *PYQQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pyqquestion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pyqquestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PYQQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PYQQuestionUpsertOne) Ignore() *PYQQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PYQQuestionUpsertOne) DoNothing() *PYQQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PYQQuestionCreate.OnConflict
// documentation for more info.
func (u *PYQQuestionUpsertOne) Update(set func(*PYQQuestionUpsert)) *PYQQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PYQQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStem sets the "stem" field.
func (u *PYQQuestionUpsertOne) SetStem(v string) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetStem(v)
	})
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateStem() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateStem()
	})
}

// SetCategory sets the "category" field.
func (u *PYQQuestionUpsertOne) SetCategory(v string) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateCategory() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *PYQQuestionUpsertOne) SetSubcategory(v string) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateSubcategory() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateSubcategory()
	})
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *PYQQuestionUpsertOne) SetTypeOfQuestion(v string) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetTypeOfQuestion(v)
	})
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateTypeOfQuestion() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateTypeOfQuestion()
	})
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *PYQQuestionUpsertOne) SetDifficultyBand(v pyqquestion.DifficultyBand) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetDifficultyBand(v)
	})
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateDifficultyBand() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateDifficultyBand()
	})
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (u *PYQQuestionUpsertOne) ClearDifficultyBand() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearDifficultyBand()
	})
}

// SetProblemStructure sets the "problem_structure" field.
func (u *PYQQuestionUpsertOne) SetProblemStructure(v string) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetProblemStructure(v)
	})
}

// UpdateProblemStructure sets the "problem_structure" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateProblemStructure() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateProblemStructure()
	})
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (u *PYQQuestionUpsertOne) ClearProblemStructure() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearProblemStructure()
	})
}

// SetConceptKeywords sets the "concept_keywords" field.
func (u *PYQQuestionUpsertOne) SetConceptKeywords(v []string) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetConceptKeywords(v)
	})
}

// UpdateConceptKeywords sets the "concept_keywords" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateConceptKeywords() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateConceptKeywords()
	})
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (u *PYQQuestionUpsertOne) ClearConceptKeywords() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearConceptKeywords()
	})
}

// SetYear sets the "year" field.
func (u *PYQQuestionUpsertOne) SetYear(v int) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetYear(v)
	})
}

// AddYear adds v to the "year" field.
func (u *PYQQuestionUpsertOne) AddYear(v int) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.AddYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateYear() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateYear()
	})
}

// ClearYear clears the value of the "year" field.
func (u *PYQQuestionUpsertOne) ClearYear() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearYear()
	})
}

// SetSlot sets the "slot" field.
func (u *PYQQuestionUpsertOne) SetSlot(v string) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetSlot(v)
	})
}

// UpdateSlot sets the "slot" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateSlot() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateSlot()
	})
}

// ClearSlot clears the value of the "slot" field.
func (u *PYQQuestionUpsertOne) ClearSlot() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearSlot()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PYQQuestionUpsertOne) SetIsActive(v bool) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateIsActive() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateIsActive()
	})
}

// SetQualityVerified sets the "quality_verified" field.
func (u *PYQQuestionUpsertOne) SetQualityVerified(v bool) *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetQualityVerified(v)
	})
}

// UpdateQualityVerified sets the "quality_verified" field to the value that was provided on create.
func (u *PYQQuestionUpsertOne) UpdateQualityVerified() *PYQQuestionUpsertOne {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateQualityVerified()
	})
}

// Exec executes the query.
func (u *PYQQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PYQQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PYQQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PYQQuestionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PYQQuestionUpsertOne.ID is not supported by MySQL driver. Use PYQQuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PYQQuestionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PYQQuestionCreateBulk is the builder for creating many PYQQuestion entities in bulk.
type PYQQuestionCreateBulk struct {
	config
	err      error
	builders []*PYQQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the PYQQuestion entities in the database.
func (_c *PYQQuestionCreateBulk) Save(ctx context.Context) ([]*PYQQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PYQQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PYQQuestionMutation)
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
func (_c *PYQQuestionCreateBulk) SaveX(ctx context.Context) []*PYQQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PYQQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PYQQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PYQQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PYQQuestionUpsert) {
//			SetStem(v+v).
//		}).
//		Exec(ctx)
func (_c *PYQQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PYQQuestionUpsertBulk {
	_c.conflict = opts
	return &PYQQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PYQQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PYQQuestionCreateBulk) OnConflictColumns(columns ...string) *PYQQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PYQQuestionUpsertBulk{
		create: _c,
	}
}

// PYQQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of PYQQuestion nodes.
type PYQQuestionUpsertBulk struct {
	create *PYQQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PYQQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pyqquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PYQQuestionUpsertBulk) UpdateNewValues() *PYQQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pyqquestion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pyqquestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PYQQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PYQQuestionUpsertBulk) Ignore() *PYQQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PYQQuestionUpsertBulk) DoNothing() *PYQQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PYQQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *PYQQuestionUpsertBulk) Update(set func(*PYQQuestionUpsert)) *PYQQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PYQQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStem sets the "stem" field.
func (u *PYQQuestionUpsertBulk) SetStem(v string) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetStem(v)
	})
}

// UpdateStem sets the "stem" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateStem() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateStem()
	})
}

// SetCategory sets the "category" field.
func (u *PYQQuestionUpsertBulk) SetCategory(v string) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateCategory() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *PYQQuestionUpsertBulk) SetSubcategory(v string) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateSubcategory() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateSubcategory()
	})
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *PYQQuestionUpsertBulk) SetTypeOfQuestion(v string) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetTypeOfQuestion(v)
	})
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateTypeOfQuestion() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateTypeOfQuestion()
	})
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *PYQQuestionUpsertBulk) SetDifficultyBand(v pyqquestion.DifficultyBand) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetDifficultyBand(v)
	})
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateDifficultyBand() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateDifficultyBand()
	})
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (u *PYQQuestionUpsertBulk) ClearDifficultyBand() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearDifficultyBand()
	})
}

// SetProblemStructure sets the "problem_structure" field.
func (u *PYQQuestionUpsertBulk) SetProblemStructure(v string) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetProblemStructure(v)
	})
}

// UpdateProblemStructure sets the "problem_structure" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateProblemStructure() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateProblemStructure()
	})
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (u *PYQQuestionUpsertBulk) ClearProblemStructure() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearProblemStructure()
	})
}

// SetConceptKeywords sets the "concept_keywords" field.
func (u *PYQQuestionUpsertBulk) SetConceptKeywords(v []string) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetConceptKeywords(v)
	})
}

// UpdateConceptKeywords sets the "concept_keywords" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateConceptKeywords() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateConceptKeywords()
	})
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (u *PYQQuestionUpsertBulk) ClearConceptKeywords() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearConceptKeywords()
	})
}

// SetYear sets the "year" field.
func (u *PYQQuestionUpsertBulk) SetYear(v int) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetYear(v)
	})
}

// AddYear adds v to the "year" field.
func (u *PYQQuestionUpsertBulk) AddYear(v int) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.AddYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateYear() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateYear()
	})
}

// ClearYear clears the value of the "year" field.
func (u *PYQQuestionUpsertBulk) ClearYear() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearYear()
	})
}

// SetSlot sets the "slot" field.
func (u *PYQQuestionUpsertBulk) SetSlot(v string) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetSlot(v)
	})
}

// UpdateSlot sets the "slot" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateSlot() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateSlot()
	})
}

// ClearSlot clears the value of the "slot" field.
func (u *PYQQuestionUpsertBulk) ClearSlot() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.ClearSlot()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PYQQuestionUpsertBulk) SetIsActive(v bool) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateIsActive() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateIsActive()
	})
}

// SetQualityVerified sets the "quality_verified" field.
func (u *PYQQuestionUpsertBulk) SetQualityVerified(v bool) *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.SetQualityVerified(v)
	})
}

// UpdateQualityVerified sets the "quality_verified" field to the value that was provided on create.
func (u *PYQQuestionUpsertBulk) UpdateQualityVerified() *PYQQuestionUpsertBulk {
	return u.Update(func(s *PYQQuestionUpsert) {
		s.UpdateQualityVerified()
	})
}

// Exec executes the query.
func (u *PYQQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PYQQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PYQQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PYQQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
