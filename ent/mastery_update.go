// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepforge/quanta/ent/mastery"
	"github.com/prepforge/quanta/ent/predicate"
)

// MasteryUpdate is the builder for updating Mastery entities.
type MasteryUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryMutation
}

// Where appends a list predicates to the MasteryUpdate builder.
func (_u *MasteryUpdate) Where(ps ...predicate.Mastery) *MasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccEasy sets the "acc_easy" field.
func (_u *MasteryUpdate) SetAccEasy(v float64) *MasteryUpdate {
	_u.mutation.ResetAccEasy()
	_u.mutation.SetAccEasy(v)
	return _u
}

// SetNillableAccEasy sets the "acc_easy" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableAccEasy(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetAccEasy(*v)
	}
	return _u
}

// AddAccEasy adds value to the "acc_easy" field.
func (_u *MasteryUpdate) AddAccEasy(v float64) *MasteryUpdate {
	_u.mutation.AddAccEasy(v)
	return _u
}

// SetAccMedium sets the "acc_medium" field.
func (_u *MasteryUpdate) SetAccMedium(v float64) *MasteryUpdate {
	_u.mutation.ResetAccMedium()
	_u.mutation.SetAccMedium(v)
	return _u
}

// SetNillableAccMedium sets the "acc_medium" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableAccMedium(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetAccMedium(*v)
	}
	return _u
}

// AddAccMedium adds value to the "acc_medium" field.
func (_u *MasteryUpdate) AddAccMedium(v float64) *MasteryUpdate {
	_u.mutation.AddAccMedium(v)
	return _u
}

// SetAccHard sets the "acc_hard" field.
func (_u *MasteryUpdate) SetAccHard(v float64) *MasteryUpdate {
	_u.mutation.ResetAccHard()
	_u.mutation.SetAccHard(v)
	return _u
}

// SetNillableAccHard sets the "acc_hard" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableAccHard(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetAccHard(*v)
	}
	return _u
}

// AddAccHard adds value to the "acc_hard" field.
func (_u *MasteryUpdate) AddAccHard(v float64) *MasteryUpdate {
	_u.mutation.AddAccHard(v)
	return _u
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (_u *MasteryUpdate) SetEfficiencyScore(v float64) *MasteryUpdate {
	_u.mutation.ResetEfficiencyScore()
	_u.mutation.SetEfficiencyScore(v)
	return _u
}

// SetNillableEfficiencyScore sets the "efficiency_score" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableEfficiencyScore(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetEfficiencyScore(*v)
	}
	return _u
}

// AddEfficiencyScore adds value to the "efficiency_score" field.
func (_u *MasteryUpdate) AddEfficiencyScore(v float64) *MasteryUpdate {
	_u.mutation.AddEfficiencyScore(v)
	return _u
}

// SetExposureCount sets the "exposure_count" field.
func (_u *MasteryUpdate) SetExposureCount(v int) *MasteryUpdate {
	_u.mutation.ResetExposureCount()
	_u.mutation.SetExposureCount(v)
	return _u
}

// SetNillableExposureCount sets the "exposure_count" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableExposureCount(v *int) *MasteryUpdate {
	if v != nil {
		_u.SetExposureCount(*v)
	}
	return _u
}

// AddExposureCount adds value to the "exposure_count" field.
func (_u *MasteryUpdate) AddExposureCount(v int) *MasteryUpdate {
	_u.mutation.AddExposureCount(v)
	return _u
}

// SetMasteryPct sets the "mastery_pct" field.
func (_u *MasteryUpdate) SetMasteryPct(v float64) *MasteryUpdate {
	_u.mutation.ResetMasteryPct()
	_u.mutation.SetMasteryPct(v)
	return _u
}

// SetNillableMasteryPct sets the "mastery_pct" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableMasteryPct(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetMasteryPct(*v)
	}
	return _u
}

// AddMasteryPct adds value to the "mastery_pct" field.
func (_u *MasteryUpdate) AddMasteryPct(v float64) *MasteryUpdate {
	_u.mutation.AddMasteryPct(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *MasteryUpdate) SetLastActivityAt(v time.Time) *MasteryUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableLastActivityAt(v *time.Time) *MasteryUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *MasteryUpdate) ClearLastActivityAt() *MasteryUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryUpdate) SetUpdatedAt(v time.Time) *MasteryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryMutation object of the builder.
func (_u *MasteryUpdate) Mutation() *MasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mastery.Table, mastery.Columns, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccEasy(); ok {
		_spec.SetField(mastery.FieldAccEasy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccEasy(); ok {
		_spec.AddField(mastery.FieldAccEasy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccMedium(); ok {
		_spec.SetField(mastery.FieldAccMedium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccMedium(); ok {
		_spec.AddField(mastery.FieldAccMedium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccHard(); ok {
		_spec.SetField(mastery.FieldAccHard, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccHard(); ok {
		_spec.AddField(mastery.FieldAccHard, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EfficiencyScore(); ok {
		_spec.SetField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEfficiencyScore(); ok {
		_spec.AddField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExposureCount(); ok {
		_spec.SetField(mastery.FieldExposureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposureCount(); ok {
		_spec.AddField(mastery.FieldExposureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryPct(); ok {
		_spec.SetField(mastery.FieldMasteryPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPct(); ok {
		_spec.AddField(mastery.FieldMasteryPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(mastery.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(mastery.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mastery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryUpdateOne is the builder for updating a single Mastery entity.
type MasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryMutation
}

// SetAccEasy sets the "acc_easy" field.
func (_u *MasteryUpdateOne) SetAccEasy(v float64) *MasteryUpdateOne {
	_u.mutation.ResetAccEasy()
	_u.mutation.SetAccEasy(v)
	return _u
}

// SetNillableAccEasy sets the "acc_easy" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableAccEasy(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetAccEasy(*v)
	}
	return _u
}

// AddAccEasy adds value to the "acc_easy" field.
func (_u *MasteryUpdateOne) AddAccEasy(v float64) *MasteryUpdateOne {
	_u.mutation.AddAccEasy(v)
	return _u
}

// SetAccMedium sets the "acc_medium" field.
func (_u *MasteryUpdateOne) SetAccMedium(v float64) *MasteryUpdateOne {
	_u.mutation.ResetAccMedium()
	_u.mutation.SetAccMedium(v)
	return _u
}

// SetNillableAccMedium sets the "acc_medium" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableAccMedium(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetAccMedium(*v)
	}
	return _u
}

// AddAccMedium adds value to the "acc_medium" field.
func (_u *MasteryUpdateOne) AddAccMedium(v float64) *MasteryUpdateOne {
	_u.mutation.AddAccMedium(v)
	return _u
}

// SetAccHard sets the "acc_hard" field.
func (_u *MasteryUpdateOne) SetAccHard(v float64) *MasteryUpdateOne {
	_u.mutation.ResetAccHard()
	_u.mutation.SetAccHard(v)
	return _u
}

// SetNillableAccHard sets the "acc_hard" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableAccHard(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetAccHard(*v)
	}
	return _u
}

// AddAccHard adds value to the "acc_hard" field.
func (_u *MasteryUpdateOne) AddAccHard(v float64) *MasteryUpdateOne {
	_u.mutation.AddAccHard(v)
	return _u
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (_u *MasteryUpdateOne) SetEfficiencyScore(v float64) *MasteryUpdateOne {
	_u.mutation.ResetEfficiencyScore()
	_u.mutation.SetEfficiencyScore(v)
	return _u
}

// SetNillableEfficiencyScore sets the "efficiency_score" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableEfficiencyScore(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetEfficiencyScore(*v)
	}
	return _u
}

// AddEfficiencyScore adds value to the "efficiency_score" field.
func (_u *MasteryUpdateOne) AddEfficiencyScore(v float64) *MasteryUpdateOne {
	_u.mutation.AddEfficiencyScore(v)
	return _u
}

// SetExposureCount sets the "exposure_count" field.
func (_u *MasteryUpdateOne) SetExposureCount(v int) *MasteryUpdateOne {
	_u.mutation.ResetExposureCount()
	_u.mutation.SetExposureCount(v)
	return _u
}

// SetNillableExposureCount sets the "exposure_count" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableExposureCount(v *int) *MasteryUpdateOne {
	if v != nil {
		_u.SetExposureCount(*v)
	}
	return _u
}

// AddExposureCount adds value to the "exposure_count" field.
func (_u *MasteryUpdateOne) AddExposureCount(v int) *MasteryUpdateOne {
	_u.mutation.AddExposureCount(v)
	return _u
}

// SetMasteryPct sets the "mastery_pct" field.
func (_u *MasteryUpdateOne) SetMasteryPct(v float64) *MasteryUpdateOne {
	_u.mutation.ResetMasteryPct()
	_u.mutation.SetMasteryPct(v)
	return _u
}

// SetNillableMasteryPct sets the "mastery_pct" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableMasteryPct(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetMasteryPct(*v)
	}
	return _u
}

// AddMasteryPct adds value to the "mastery_pct" field.
func (_u *MasteryUpdateOne) AddMasteryPct(v float64) *MasteryUpdateOne {
	_u.mutation.AddMasteryPct(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *MasteryUpdateOne) SetLastActivityAt(v time.Time) *MasteryUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableLastActivityAt(v *time.Time) *MasteryUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *MasteryUpdateOne) ClearLastActivityAt() *MasteryUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryUpdateOne) SetUpdatedAt(v time.Time) *MasteryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryMutation object of the builder.
func (_u *MasteryUpdateOne) Mutation() *MasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryUpdate builder.
func (_u *MasteryUpdateOne) Where(ps ...predicate.Mastery) *MasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryUpdateOne) Select(field string, fields ...string) *MasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mastery entity.
func (_u *MasteryUpdateOne) Save(ctx context.Context) (*Mastery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryUpdateOne) SaveX(ctx context.Context) *Mastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MasteryUpdateOne) sqlSave(ctx context.Context) (_node *Mastery, err error) {
	_spec := sqlgraph.NewUpdateSpec(mastery.Table, mastery.Columns, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mastery.FieldID)
		for _, f := range fields {
			if !mastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mastery.FieldID {
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
	if value, ok := _u.mutation.AccEasy(); ok {
		_spec.SetField(mastery.FieldAccEasy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccEasy(); ok {
		_spec.AddField(mastery.FieldAccEasy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccMedium(); ok {
		_spec.SetField(mastery.FieldAccMedium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccMedium(); ok {
		_spec.AddField(mastery.FieldAccMedium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccHard(); ok {
		_spec.SetField(mastery.FieldAccHard, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccHard(); ok {
		_spec.AddField(mastery.FieldAccHard, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EfficiencyScore(); ok {
		_spec.SetField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEfficiencyScore(); ok {
		_spec.AddField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExposureCount(); ok {
		_spec.SetField(mastery.FieldExposureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposureCount(); ok {
		_spec.AddField(mastery.FieldExposureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryPct(); ok {
		_spec.SetField(mastery.FieldMasteryPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPct(); ok {
		_spec.AddField(mastery.FieldMasteryPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(mastery.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(mastery.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mastery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Mastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
