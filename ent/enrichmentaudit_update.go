// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/ent/predicate"
)

// EnrichmentAuditUpdate is the builder for updating EnrichmentAudit entities.
type EnrichmentAuditUpdate struct {
	config
	hooks    []Hook
	mutation *EnrichmentAuditMutation
}

// Where appends a list predicates to the EnrichmentAuditUpdate builder.
func (_u *EnrichmentAuditUpdate) Where(ps ...predicate.EnrichmentAudit) *EnrichmentAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EnrichmentAuditUpdate) SetProvider(v string) *EnrichmentAuditUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EnrichmentAuditUpdate) SetNillableProvider(v *string) *EnrichmentAuditUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *EnrichmentAuditUpdate) SetModelName(v string) *EnrichmentAuditUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *EnrichmentAuditUpdate) SetNillableModelName(v *string) *EnrichmentAuditUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *EnrichmentAuditUpdate) SetAttempt(v int) *EnrichmentAuditUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *EnrichmentAuditUpdate) SetNillableAttempt(v *int) *EnrichmentAuditUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *EnrichmentAuditUpdate) AddAttempt(v int) *EnrichmentAuditUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetRateLimited sets the "rate_limited" field.
func (_u *EnrichmentAuditUpdate) SetRateLimited(v bool) *EnrichmentAuditUpdate {
	_u.mutation.SetRateLimited(v)
	return _u
}

// SetNillableRateLimited sets the "rate_limited" field if the given value is not nil.
func (_u *EnrichmentAuditUpdate) SetNillableRateLimited(v *bool) *EnrichmentAuditUpdate {
	if v != nil {
		_u.SetRateLimited(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *EnrichmentAuditUpdate) SetInputTokens(v int) *EnrichmentAuditUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *EnrichmentAuditUpdate) SetNillableInputTokens(v *int) *EnrichmentAuditUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *EnrichmentAuditUpdate) AddInputTokens(v int) *EnrichmentAuditUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *EnrichmentAuditUpdate) ClearInputTokens() *EnrichmentAuditUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *EnrichmentAuditUpdate) SetOutputTokens(v int) *EnrichmentAuditUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *EnrichmentAuditUpdate) SetNillableOutputTokens(v *int) *EnrichmentAuditUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *EnrichmentAuditUpdate) AddOutputTokens(v int) *EnrichmentAuditUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *EnrichmentAuditUpdate) ClearOutputTokens() *EnrichmentAuditUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *EnrichmentAuditUpdate) SetDurationMs(v int) *EnrichmentAuditUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *EnrichmentAuditUpdate) SetNillableDurationMs(v *int) *EnrichmentAuditUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *EnrichmentAuditUpdate) AddDurationMs(v int) *EnrichmentAuditUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *EnrichmentAuditUpdate) ClearDurationMs() *EnrichmentAuditUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EnrichmentAuditUpdate) SetErrorMessage(v string) *EnrichmentAuditUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EnrichmentAuditUpdate) SetNillableErrorMessage(v *string) *EnrichmentAuditUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EnrichmentAuditUpdate) ClearErrorMessage() *EnrichmentAuditUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the EnrichmentAuditMutation object of the builder.
func (_u *EnrichmentAuditUpdate) Mutation() *EnrichmentAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrichmentAuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrichmentAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrichmentAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrichmentAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrichmentAuditUpdate) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EnrichmentAudit.question"`)
	}
	return nil
}

func (_u *EnrichmentAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrichmentaudit.Table, enrichmentaudit.Columns, sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(enrichmentaudit.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(enrichmentaudit.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(enrichmentaudit.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(enrichmentaudit.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RateLimited(); ok {
		_spec.SetField(enrichmentaudit.FieldRateLimited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(enrichmentaudit.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(enrichmentaudit.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(enrichmentaudit.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(enrichmentaudit.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(enrichmentaudit.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(enrichmentaudit.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(enrichmentaudit.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(enrichmentaudit.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(enrichmentaudit.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(enrichmentaudit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(enrichmentaudit.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrichmentaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrichmentAuditUpdateOne is the builder for updating a single EnrichmentAudit entity.
type EnrichmentAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrichmentAuditMutation
}

// SetProvider sets the "provider" field.
func (_u *EnrichmentAuditUpdateOne) SetProvider(v string) *EnrichmentAuditUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EnrichmentAuditUpdateOne) SetNillableProvider(v *string) *EnrichmentAuditUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *EnrichmentAuditUpdateOne) SetModelName(v string) *EnrichmentAuditUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *EnrichmentAuditUpdateOne) SetNillableModelName(v *string) *EnrichmentAuditUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *EnrichmentAuditUpdateOne) SetAttempt(v int) *EnrichmentAuditUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *EnrichmentAuditUpdateOne) SetNillableAttempt(v *int) *EnrichmentAuditUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *EnrichmentAuditUpdateOne) AddAttempt(v int) *EnrichmentAuditUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetRateLimited sets the "rate_limited" field.
func (_u *EnrichmentAuditUpdateOne) SetRateLimited(v bool) *EnrichmentAuditUpdateOne {
	_u.mutation.SetRateLimited(v)
	return _u
}

// SetNillableRateLimited sets the "rate_limited" field if the given value is not nil.
func (_u *EnrichmentAuditUpdateOne) SetNillableRateLimited(v *bool) *EnrichmentAuditUpdateOne {
	if v != nil {
		_u.SetRateLimited(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *EnrichmentAuditUpdateOne) SetInputTokens(v int) *EnrichmentAuditUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *EnrichmentAuditUpdateOne) SetNillableInputTokens(v *int) *EnrichmentAuditUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *EnrichmentAuditUpdateOne) AddInputTokens(v int) *EnrichmentAuditUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *EnrichmentAuditUpdateOne) ClearInputTokens() *EnrichmentAuditUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *EnrichmentAuditUpdateOne) SetOutputTokens(v int) *EnrichmentAuditUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *EnrichmentAuditUpdateOne) SetNillableOutputTokens(v *int) *EnrichmentAuditUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *EnrichmentAuditUpdateOne) AddOutputTokens(v int) *EnrichmentAuditUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *EnrichmentAuditUpdateOne) ClearOutputTokens() *EnrichmentAuditUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *EnrichmentAuditUpdateOne) SetDurationMs(v int) *EnrichmentAuditUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *EnrichmentAuditUpdateOne) SetNillableDurationMs(v *int) *EnrichmentAuditUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *EnrichmentAuditUpdateOne) AddDurationMs(v int) *EnrichmentAuditUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *EnrichmentAuditUpdateOne) ClearDurationMs() *EnrichmentAuditUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EnrichmentAuditUpdateOne) SetErrorMessage(v string) *EnrichmentAuditUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EnrichmentAuditUpdateOne) SetNillableErrorMessage(v *string) *EnrichmentAuditUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EnrichmentAuditUpdateOne) ClearErrorMessage() *EnrichmentAuditUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the EnrichmentAuditMutation object of the builder.
func (_u *EnrichmentAuditUpdateOne) Mutation() *EnrichmentAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnrichmentAuditUpdate builder.
func (_u *EnrichmentAuditUpdateOne) Where(ps ...predicate.EnrichmentAudit) *EnrichmentAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrichmentAuditUpdateOne) Select(field string, fields ...string) *EnrichmentAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnrichmentAudit entity.
func (_u *EnrichmentAuditUpdateOne) Save(ctx context.Context) (*EnrichmentAudit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrichmentAuditUpdateOne) SaveX(ctx context.Context) *EnrichmentAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrichmentAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrichmentAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrichmentAuditUpdateOne) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EnrichmentAudit.question"`)
	}
	return nil
}

func (_u *EnrichmentAuditUpdateOne) sqlSave(ctx context.Context) (_node *EnrichmentAudit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrichmentaudit.Table, enrichmentaudit.Columns, sqlgraph.NewFieldSpec(enrichmentaudit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnrichmentAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrichmentaudit.FieldID)
		for _, f := range fields {
			if !enrichmentaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrichmentaudit.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(enrichmentaudit.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(enrichmentaudit.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(enrichmentaudit.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(enrichmentaudit.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RateLimited(); ok {
		_spec.SetField(enrichmentaudit.FieldRateLimited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(enrichmentaudit.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(enrichmentaudit.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(enrichmentaudit.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(enrichmentaudit.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(enrichmentaudit.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(enrichmentaudit.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(enrichmentaudit.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(enrichmentaudit.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(enrichmentaudit.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(enrichmentaudit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(enrichmentaudit.FieldErrorMessage, field.TypeString)
	}
	_node = &EnrichmentAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrichmentaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
