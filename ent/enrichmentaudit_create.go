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
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/ent/question"
)

// EnrichmentAuditCreate is the builder for creating a EnrichmentAudit entity.
type EnrichmentAuditCreate struct {
	config
	mutation *EnrichmentAuditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionID sets the "question_id" field.
func (_c *EnrichmentAuditCreate) SetQuestionID(v string) *EnrichmentAuditCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *EnrichmentAuditCreate) SetStage(v string) *EnrichmentAuditCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *EnrichmentAuditCreate) SetProvider(v string) *EnrichmentAuditCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *EnrichmentAuditCreate) SetModelName(v string) *EnrichmentAuditCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *EnrichmentAuditCreate) SetAttempt(v int) *EnrichmentAuditCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *EnrichmentAuditCreate) SetNillableAttempt(v *int) *EnrichmentAuditCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetRateLimited sets the "rate_limited" field.
func (_c *EnrichmentAuditCreate) SetRateLimited(v bool) *EnrichmentAuditCreate {
	_c.mutation.SetRateLimited(v)
	return _c
}

// SetNillableRateLimited sets the "rate_limited" field if the given value is not nil.
func (_c *EnrichmentAuditCreate) SetNillableRateLimited(v *bool) *EnrichmentAuditCreate {
	if v != nil {
		_c.SetRateLimited(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *EnrichmentAuditCreate) SetInputTokens(v int) *EnrichmentAuditCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *EnrichmentAuditCreate) SetNillableInputTokens(v *int) *EnrichmentAuditCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *EnrichmentAuditCreate) SetOutputTokens(v int) *EnrichmentAuditCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *EnrichmentAuditCreate) SetNillableOutputTokens(v *int) *EnrichmentAuditCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *EnrichmentAuditCreate) SetDurationMs(v int) *EnrichmentAuditCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *EnrichmentAuditCreate) SetNillableDurationMs(v *int) *EnrichmentAuditCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EnrichmentAuditCreate) SetErrorMessage(v string) *EnrichmentAuditCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EnrichmentAuditCreate) SetNillableErrorMessage(v *string) *EnrichmentAuditCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnrichmentAuditCreate) SetCreatedAt(v time.Time) *EnrichmentAuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnrichmentAuditCreate) SetNillableCreatedAt(v *time.Time) *EnrichmentAuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EnrichmentAuditCreate) SetID(v string) *EnrichmentAuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *EnrichmentAuditCreate) SetQuestion(v *Question) *EnrichmentAuditCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the EnrichmentAuditMutation object of the builder.
func (_c *EnrichmentAuditCreate) Mutation() *EnrichmentAuditMutation {
	return _c.mutation
}

// Save creates the EnrichmentAudit in the database.
func (_c *EnrichmentAuditCreate) Save(ctx context.Context) (*EnrichmentAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrichmentAuditCreate) SaveX(ctx context.Context) *EnrichmentAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrichmentAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrichmentAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnrichmentAuditCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := enrichmentaudit.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.RateLimited(); !ok {
		v := enrichmentaudit.DefaultRateLimited
		_c.mutation.SetRateLimited(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := enrichmentaudit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrichmentAuditCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "EnrichmentAudit.question_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "EnrichmentAudit.stage"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "EnrichmentAudit.provider"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "EnrichmentAudit.model_name"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "EnrichmentAudit.attempt"`)}
	}
	if _, ok := _c.mutation.RateLimited(); !ok {
		return &ValidationError{Name: "rate_limited", err: errors.New(`ent: missing required field "EnrichmentAudit.rate_limited"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EnrichmentAudit.created_at"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "EnrichmentAudit.question"`)}
	}
	return nil
}

func (_c *EnrichmentAuditCreate) sqlSave(ctx context.Context) (*EnrichmentAudit, error) {
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
			return nil, fmt.Errorf("unexpected EnrichmentAudit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EnrichmentAuditCreate) createSpec() (*EnrichmentAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &EnrichmentAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrichmentaudit.Table, sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(enrichmentaudit.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(enrichmentaudit.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(enrichmentaudit.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(enrichmentaudit.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.RateLimited(); ok {
		_spec.SetField(enrichmentaudit.FieldRateLimited, field.TypeBool, value)
		_node.RateLimited = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(enrichmentaudit.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(enrichmentaudit.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(enrichmentaudit.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(enrichmentaudit.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(enrichmentaudit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrichmentaudit.QuestionTable,
			Columns: []string{enrichmentaudit.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EnrichmentAudit.Create().
//		SetQuestionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EnrichmentAuditUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *EnrichmentAuditCreate) OnConflict(opts ...sql.ConflictOption) *EnrichmentAuditUpsertOne {
	_c.conflict = opts
	return &EnrichmentAuditUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EnrichmentAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EnrichmentAuditCreate) OnConflictColumns(columns ...string) *EnrichmentAuditUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EnrichmentAuditUpsertOne{
		create: _c,
	}
}

type (
	// EnrichmentAuditUpsertOne is the builder for "upsert"-ing
	//  one EnrichmentAudit node.
	EnrichmentAuditUpsertOne struct {
		create *EnrichmentAuditCreate
	}

	// EnrichmentAuditUpsert is the "OnConflict" setter.
	EnrichmentAuditUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *EnrichmentAuditUpsert) SetProvider(v string) *EnrichmentAuditUpsert {
	u.Set(enrichmentaudit.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *EnrichmentAuditUpsert) UpdateProvider() *EnrichmentAuditUpsert {
	u.SetExcluded(enrichmentaudit.FieldProvider)
	return u
}

// SetModelName sets the "model_name" field.
func (u *EnrichmentAuditUpsert) SetModelName(v string) *EnrichmentAuditUpsert {
	u.Set(enrichmentaudit.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *EnrichmentAuditUpsert) UpdateModelName() *EnrichmentAuditUpsert {
	u.SetExcluded(enrichmentaudit.FieldModelName)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *EnrichmentAuditUpsert) SetAttempt(v int) *EnrichmentAuditUpsert {
	u.Set(enrichmentaudit.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *EnrichmentAuditUpsert) UpdateAttempt() *EnrichmentAuditUpsert {
	u.SetExcluded(enrichmentaudit.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *EnrichmentAuditUpsert) AddAttempt(v int) *EnrichmentAuditUpsert {
	u.Add(enrichmentaudit.FieldAttempt, v)
	return u
}

// SetRateLimited sets the "rate_limited" field.
func (u *EnrichmentAuditUpsert) SetRateLimited(v bool) *EnrichmentAuditUpsert {
	u.Set(enrichmentaudit.FieldRateLimited, v)
	return u
}

// UpdateRateLimited sets the "rate_limited" field to the value that was provided on create.
func (u *EnrichmentAuditUpsert) UpdateRateLimited() *EnrichmentAuditUpsert {
	u.SetExcluded(enrichmentaudit.FieldRateLimited)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *EnrichmentAuditUpsert) SetInputTokens(v int) *EnrichmentAuditUpsert {
	u.Set(enrichmentaudit.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *EnrichmentAuditUpsert) UpdateInputTokens() *EnrichmentAuditUpsert {
	u.SetExcluded(enrichmentaudit.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *EnrichmentAuditUpsert) AddInputTokens(v int) *EnrichmentAuditUpsert {
	u.Add(enrichmentaudit.FieldInputTokens, v)
	return u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *EnrichmentAuditUpsert) ClearInputTokens() *EnrichmentAuditUpsert {
	u.SetNull(enrichmentaudit.FieldInputTokens)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *EnrichmentAuditUpsert) SetOutputTokens(v int) *EnrichmentAuditUpsert {
	u.Set(enrichmentaudit.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *EnrichmentAuditUpsert) UpdateOutputTokens() *EnrichmentAuditUpsert {
	u.SetExcluded(enrichmentaudit.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *EnrichmentAuditUpsert) AddOutputTokens(v int) *EnrichmentAuditUpsert {
	u.Add(enrichmentaudit.FieldOutputTokens, v)
	return u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *EnrichmentAuditUpsert) ClearOutputTokens() *EnrichmentAuditUpsert {
	u.SetNull(enrichmentaudit.FieldOutputTokens)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *EnrichmentAuditUpsert) SetDurationMs(v int) *EnrichmentAuditUpsert {
	u.Set(enrichmentaudit.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *EnrichmentAuditUpsert) UpdateDurationMs() *EnrichmentAuditUpsert {
	u.SetExcluded(enrichmentaudit.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *EnrichmentAuditUpsert) AddDurationMs(v int) *EnrichmentAuditUpsert {
	u.Add(enrichmentaudit.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *EnrichmentAuditUpsert) ClearDurationMs() *EnrichmentAuditUpsert {
	u.SetNull(enrichmentaudit.FieldDurationMs)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *EnrichmentAuditUpsert) SetErrorMessage(v string) *EnrichmentAuditUpsert {
	u.Set(enrichmentaudit.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EnrichmentAuditUpsert) UpdateErrorMessage() *EnrichmentAuditUpsert {
	u.SetExcluded(enrichmentaudit.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EnrichmentAuditUpsert) ClearErrorMessage() *EnrichmentAuditUpsert {
	u.SetNull(enrichmentaudit.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EnrichmentAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(enrichmentaudit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EnrichmentAuditUpsertOne) UpdateNewValues() *EnrichmentAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(enrichmentaudit.FieldID)
		}
		if _, exists := u.create.mutation.QuestionID(); exists {
			s.SetIgnore(enrichmentaudit.FieldQuestionID)
		}
		if _, exists := u.create.mutation.Stage(); exists {
			s.SetIgnore(enrichmentaudit.FieldStage)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(enrichmentaudit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EnrichmentAudit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EnrichmentAuditUpsertOne) Ignore() *EnrichmentAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EnrichmentAuditUpsertOne) DoNothing() *EnrichmentAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EnrichmentAuditCreate.OnConflict
// documentation for more info.
func (u *EnrichmentAuditUpsertOne) Update(set func(*EnrichmentAuditUpsert)) *EnrichmentAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EnrichmentAuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *EnrichmentAuditUpsertOne) SetProvider(v string) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertOne) UpdateProvider() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateProvider()
	})
}

// SetModelName sets the "model_name" field.
func (u *EnrichmentAuditUpsertOne) SetModelName(v string) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertOne) UpdateModelName() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateModelName()
	})
}

// SetAttempt sets the "attempt" field.
func (u *EnrichmentAuditUpsertOne) SetAttempt(v int) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *EnrichmentAuditUpsertOne) AddAttempt(v int) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertOne) UpdateAttempt() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateAttempt()
	})
}

// SetRateLimited sets the "rate_limited" field.
func (u *EnrichmentAuditUpsertOne) SetRateLimited(v bool) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetRateLimited(v)
	})
}

// UpdateRateLimited sets the "rate_limited" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertOne) UpdateRateLimited() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateRateLimited()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *EnrichmentAuditUpsertOne) SetInputTokens(v int) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *EnrichmentAuditUpsertOne) AddInputTokens(v int) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertOne) UpdateInputTokens() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateInputTokens()
	})
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *EnrichmentAuditUpsertOne) ClearInputTokens() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.ClearInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *EnrichmentAuditUpsertOne) SetOutputTokens(v int) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *EnrichmentAuditUpsertOne) AddOutputTokens(v int) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertOne) UpdateOutputTokens() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateOutputTokens()
	})
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *EnrichmentAuditUpsertOne) ClearOutputTokens() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.ClearOutputTokens()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *EnrichmentAuditUpsertOne) SetDurationMs(v int) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *EnrichmentAuditUpsertOne) AddDurationMs(v int) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertOne) UpdateDurationMs() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *EnrichmentAuditUpsertOne) ClearDurationMs() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.ClearDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *EnrichmentAuditUpsertOne) SetErrorMessage(v string) *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertOne) UpdateErrorMessage() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EnrichmentAuditUpsertOne) ClearErrorMessage() *EnrichmentAuditUpsertOne {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *EnrichmentAuditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EnrichmentAuditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EnrichmentAuditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EnrichmentAuditUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EnrichmentAuditUpsertOne.ID is not supported by MySQL driver. Use EnrichmentAuditUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EnrichmentAuditUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EnrichmentAuditCreateBulk is the builder for creating many EnrichmentAudit entities in bulk.
type EnrichmentAuditCreateBulk struct {
	config
	err      error
	builders []*EnrichmentAuditCreate
	conflict []sql.ConflictOption
}

// Save creates the EnrichmentAudit entities in the database.
func (_c *EnrichmentAuditCreateBulk) Save(ctx context.Context) ([]*EnrichmentAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnrichmentAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrichmentAuditMutation)
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
func (_c *EnrichmentAuditCreateBulk) SaveX(ctx context.Context) []*EnrichmentAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrichmentAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrichmentAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EnrichmentAudit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EnrichmentAuditUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *EnrichmentAuditCreateBulk) OnConflict(opts ...sql.ConflictOption) *EnrichmentAuditUpsertBulk {
	_c.conflict = opts
	return &EnrichmentAuditUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EnrichmentAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EnrichmentAuditCreateBulk) OnConflictColumns(columns ...string) *EnrichmentAuditUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EnrichmentAuditUpsertBulk{
		create: _c,
	}
}

// EnrichmentAuditUpsertBulk is the builder for "upsert"-ing
// a bulk of EnrichmentAudit nodes.
type EnrichmentAuditUpsertBulk struct {
	create *EnrichmentAuditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EnrichmentAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(enrichmentaudit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EnrichmentAuditUpsertBulk) UpdateNewValues() *EnrichmentAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(enrichmentaudit.FieldID)
			}
			if _, exists := b.mutation.QuestionID(); exists {
				s.SetIgnore(enrichmentaudit.FieldQuestionID)
			}
			if _, exists := b.mutation.Stage(); exists {
				s.SetIgnore(enrichmentaudit.FieldStage)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(enrichmentaudit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EnrichmentAudit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EnrichmentAuditUpsertBulk) Ignore() *EnrichmentAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EnrichmentAuditUpsertBulk) DoNothing() *EnrichmentAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EnrichmentAuditCreateBulk.OnConflict
// documentation for more info.
func (u *EnrichmentAuditUpsertBulk) Update(set func(*EnrichmentAuditUpsert)) *EnrichmentAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EnrichmentAuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *EnrichmentAuditUpsertBulk) SetProvider(v string) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertBulk) UpdateProvider() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateProvider()
	})
}

// SetModelName sets the "model_name" field.
func (u *EnrichmentAuditUpsertBulk) SetModelName(v string) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertBulk) UpdateModelName() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateModelName()
	})
}

// SetAttempt sets the "attempt" field.
func (u *EnrichmentAuditUpsertBulk) SetAttempt(v int) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *EnrichmentAuditUpsertBulk) AddAttempt(v int) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertBulk) UpdateAttempt() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateAttempt()
	})
}

// SetRateLimited sets the "rate_limited" field.
func (u *EnrichmentAuditUpsertBulk) SetRateLimited(v bool) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetRateLimited(v)
	})
}

// UpdateRateLimited sets the "rate_limited" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertBulk) UpdateRateLimited() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateRateLimited()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *EnrichmentAuditUpsertBulk) SetInputTokens(v int) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *EnrichmentAuditUpsertBulk) AddInputTokens(v int) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertBulk) UpdateInputTokens() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateInputTokens()
	})
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *EnrichmentAuditUpsertBulk) ClearInputTokens() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.ClearInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *EnrichmentAuditUpsertBulk) SetOutputTokens(v int) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *EnrichmentAuditUpsertBulk) AddOutputTokens(v int) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertBulk) UpdateOutputTokens() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateOutputTokens()
	})
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *EnrichmentAuditUpsertBulk) ClearOutputTokens() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.ClearOutputTokens()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *EnrichmentAuditUpsertBulk) SetDurationMs(v int) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *EnrichmentAuditUpsertBulk) AddDurationMs(v int) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertBulk) UpdateDurationMs() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *EnrichmentAuditUpsertBulk) ClearDurationMs() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.ClearDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *EnrichmentAuditUpsertBulk) SetErrorMessage(v string) *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EnrichmentAuditUpsertBulk) UpdateErrorMessage() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EnrichmentAuditUpsertBulk) ClearErrorMessage() *EnrichmentAuditUpsertBulk {
	return u.Update(func(s *EnrichmentAuditUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *EnrichmentAuditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EnrichmentAuditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EnrichmentAuditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EnrichmentAuditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
