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
	"github.com/prepforge/quanta/ent/mastery"
)

// MasteryCreate is the builder for creating a Mastery entity.
type MasteryCreate struct {
	config
	mutation *MasteryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudentID sets the "student_id" field.
func (_c *MasteryCreate) SetStudentID(v string) *MasteryCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *MasteryCreate) SetSubcategory(v string) *MasteryCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *MasteryCreate) SetTypeOfQuestion(v string) *MasteryCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableTypeOfQuestion(v *string) *MasteryCreate {
	if v != nil {
		_c.SetTypeOfQuestion(*v)
	}
	return _c
}

// SetAccEasy sets the "acc_easy" field.
func (_c *MasteryCreate) SetAccEasy(v float64) *MasteryCreate {
	_c.mutation.SetAccEasy(v)
	return _c
}

// SetNillableAccEasy sets the "acc_easy" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableAccEasy(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetAccEasy(*v)
	}
	return _c
}

// SetAccMedium sets the "acc_medium" field.
func (_c *MasteryCreate) SetAccMedium(v float64) *MasteryCreate {
	_c.mutation.SetAccMedium(v)
	return _c
}

// SetNillableAccMedium sets the "acc_medium" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableAccMedium(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetAccMedium(*v)
	}
	return _c
}

// SetAccHard sets the "acc_hard" field.
func (_c *MasteryCreate) SetAccHard(v float64) *MasteryCreate {
	_c.mutation.SetAccHard(v)
	return _c
}

// SetNillableAccHard sets the "acc_hard" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableAccHard(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetAccHard(*v)
	}
	return _c
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (_c *MasteryCreate) SetEfficiencyScore(v float64) *MasteryCreate {
	_c.mutation.SetEfficiencyScore(v)
	return _c
}

// SetNillableEfficiencyScore sets the "efficiency_score" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableEfficiencyScore(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetEfficiencyScore(*v)
	}
	return _c
}

// SetExposureCount sets the "exposure_count" field.
func (_c *MasteryCreate) SetExposureCount(v int) *MasteryCreate {
	_c.mutation.SetExposureCount(v)
	return _c
}

// SetNillableExposureCount sets the "exposure_count" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableExposureCount(v *int) *MasteryCreate {
	if v != nil {
		_c.SetExposureCount(*v)
	}
	return _c
}

// SetMasteryPct sets the "mastery_pct" field.
func (_c *MasteryCreate) SetMasteryPct(v float64) *MasteryCreate {
	_c.mutation.SetMasteryPct(v)
	return _c
}

// SetNillableMasteryPct sets the "mastery_pct" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableMasteryPct(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetMasteryPct(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *MasteryCreate) SetLastActivityAt(v time.Time) *MasteryCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableLastActivityAt(v *time.Time) *MasteryCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryCreate) SetUpdatedAt(v time.Time) *MasteryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableUpdatedAt(v *time.Time) *MasteryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MasteryCreate) SetID(v string) *MasteryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MasteryMutation object of the builder.
func (_c *MasteryCreate) Mutation() *MasteryMutation {
	return _c.mutation
}

// Save creates the Mastery in the database.
func (_c *MasteryCreate) Save(ctx context.Context) (*Mastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryCreate) SaveX(ctx context.Context) *Mastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryCreate) defaults() {
	if _, ok := _c.mutation.TypeOfQuestion(); !ok {
		v := mastery.DefaultTypeOfQuestion
		_c.mutation.SetTypeOfQuestion(v)
	}
	if _, ok := _c.mutation.AccEasy(); !ok {
		v := mastery.DefaultAccEasy
		_c.mutation.SetAccEasy(v)
	}
	if _, ok := _c.mutation.AccMedium(); !ok {
		v := mastery.DefaultAccMedium
		_c.mutation.SetAccMedium(v)
	}
	if _, ok := _c.mutation.AccHard(); !ok {
		v := mastery.DefaultAccHard
		_c.mutation.SetAccHard(v)
	}
	if _, ok := _c.mutation.EfficiencyScore(); !ok {
		v := mastery.DefaultEfficiencyScore
		_c.mutation.SetEfficiencyScore(v)
	}
	if _, ok := _c.mutation.ExposureCount(); !ok {
		v := mastery.DefaultExposureCount
		_c.mutation.SetExposureCount(v)
	}
	if _, ok := _c.mutation.MasteryPct(); !ok {
		v := mastery.DefaultMasteryPct
		_c.mutation.SetMasteryPct(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mastery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Mastery.student_id"`)}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "Mastery.subcategory"`)}
	}
	if _, ok := _c.mutation.TypeOfQuestion(); !ok {
		return &ValidationError{Name: "type_of_question", err: errors.New(`ent: missing required field "Mastery.type_of_question"`)}
	}
	if _, ok := _c.mutation.AccEasy(); !ok {
		return &ValidationError{Name: "acc_easy", err: errors.New(`ent: missing required field "Mastery.acc_easy"`)}
	}
	if _, ok := _c.mutation.AccMedium(); !ok {
		return &ValidationError{Name: "acc_medium", err: errors.New(`ent: missing required field "Mastery.acc_medium"`)}
	}
	if _, ok := _c.mutation.AccHard(); !ok {
		return &ValidationError{Name: "acc_hard", err: errors.New(`ent: missing required field "Mastery.acc_hard"`)}
	}
	if _, ok := _c.mutation.EfficiencyScore(); !ok {
		return &ValidationError{Name: "efficiency_score", err: errors.New(`ent: missing required field "Mastery.efficiency_score"`)}
	}
	if _, ok := _c.mutation.ExposureCount(); !ok {
		return &ValidationError{Name: "exposure_count", err: errors.New(`ent: missing required field "Mastery.exposure_count"`)}
	}
	if _, ok := _c.mutation.MasteryPct(); !ok {
		return &ValidationError{Name: "mastery_pct", err: errors.New(`ent: missing required field "Mastery.mastery_pct"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Mastery.updated_at"`)}
	}
	return nil
}

func (_c *MasteryCreate) sqlSave(ctx context.Context) (*Mastery, error) {
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
			return nil, fmt.Errorf("unexpected Mastery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryCreate) createSpec() (*Mastery, *sqlgraph.CreateSpec) {
	var (
		_node = &Mastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mastery.Table, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(mastery.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(mastery.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(mastery.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.AccEasy(); ok {
		_spec.SetField(mastery.FieldAccEasy, field.TypeFloat64, value)
		_node.AccEasy = value
	}
	if value, ok := _c.mutation.AccMedium(); ok {
		_spec.SetField(mastery.FieldAccMedium, field.TypeFloat64, value)
		_node.AccMedium = value
	}
	if value, ok := _c.mutation.AccHard(); ok {
		_spec.SetField(mastery.FieldAccHard, field.TypeFloat64, value)
		_node.AccHard = value
	}
	if value, ok := _c.mutation.EfficiencyScore(); ok {
		_spec.SetField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
		_node.EfficiencyScore = value
	}
	if value, ok := _c.mutation.ExposureCount(); ok {
		_spec.SetField(mastery.FieldExposureCount, field.TypeInt, value)
		_node.ExposureCount = value
	}
	if value, ok := _c.mutation.MasteryPct(); ok {
		_spec.SetField(mastery.FieldMasteryPct, field.TypeFloat64, value)
		_node.MasteryPct = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(mastery.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mastery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mastery.Create().
//		SetStudentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryUpsert) {
//			SetStudentID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryCreate) OnConflict(opts ...sql.ConflictOption) *MasteryUpsertOne {
	_c.conflict = opts
	return &MasteryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mastery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryCreate) OnConflictColumns(columns ...string) *MasteryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryUpsertOne{
		create: _c,
	}
}

type (
	// MasteryUpsertOne is the builder for "upsert"-ing
	//  one Mastery node.
	MasteryUpsertOne struct {
		create *MasteryCreate
	}

	// MasteryUpsert is the "OnConflict" setter.
	MasteryUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccEasy sets the "acc_easy" field.
func (u *MasteryUpsert) SetAccEasy(v float64) *MasteryUpsert {
	u.Set(mastery.FieldAccEasy, v)
	return u
}

// UpdateAccEasy sets the "acc_easy" field to the value that was provided on create.
func (u *MasteryUpsert) UpdateAccEasy() *MasteryUpsert {
	u.SetExcluded(mastery.FieldAccEasy)
	return u
}

// AddAccEasy adds v to the "acc_easy" field.
func (u *MasteryUpsert) AddAccEasy(v float64) *MasteryUpsert {
	u.Add(mastery.FieldAccEasy, v)
	return u
}

// SetAccMedium sets the "acc_medium" field.
func (u *MasteryUpsert) SetAccMedium(v float64) *MasteryUpsert {
	u.Set(mastery.FieldAccMedium, v)
	return u
}

// UpdateAccMedium sets the "acc_medium" field to the value that was provided on create.
func (u *MasteryUpsert) UpdateAccMedium() *MasteryUpsert {
	u.SetExcluded(mastery.FieldAccMedium)
	return u
}

// AddAccMedium adds v to the "acc_medium" field.
func (u *MasteryUpsert) AddAccMedium(v float64) *MasteryUpsert {
	u.Add(mastery.FieldAccMedium, v)
	return u
}

// SetAccHard sets the "acc_hard" field.
func (u *MasteryUpsert) SetAccHard(v float64) *MasteryUpsert {
	u.Set(mastery.FieldAccHard, v)
	return u
}

// UpdateAccHard sets the "acc_hard" field to the value that was provided on create.
func (u *MasteryUpsert) UpdateAccHard() *MasteryUpsert {
	u.SetExcluded(mastery.FieldAccHard)
	return u
}

// AddAccHard adds v to the "acc_hard" field.
func (u *MasteryUpsert) AddAccHard(v float64) *MasteryUpsert {
	u.Add(mastery.FieldAccHard, v)
	return u
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (u *MasteryUpsert) SetEfficiencyScore(v float64) *MasteryUpsert {
	u.Set(mastery.FieldEfficiencyScore, v)
	return u
}

// UpdateEfficiencyScore sets the "efficiency_score" field to the value that was provided on create.
func (u *MasteryUpsert) UpdateEfficiencyScore() *MasteryUpsert {
	u.SetExcluded(mastery.FieldEfficiencyScore)
	return u
}

// AddEfficiencyScore adds v to the "efficiency_score" field.
func (u *MasteryUpsert) AddEfficiencyScore(v float64) *MasteryUpsert {
	u.Add(mastery.FieldEfficiencyScore, v)
	return u
}

// SetExposureCount sets the "exposure_count" field.
func (u *MasteryUpsert) SetExposureCount(v int) *MasteryUpsert {
	u.Set(mastery.FieldExposureCount, v)
	return u
}

// UpdateExposureCount sets the "exposure_count" field to the value that was provided on create.
func (u *MasteryUpsert) UpdateExposureCount() *MasteryUpsert {
	u.SetExcluded(mastery.FieldExposureCount)
	return u
}

// AddExposureCount adds v to the "exposure_count" field.
func (u *MasteryUpsert) AddExposureCount(v int) *MasteryUpsert {
	u.Add(mastery.FieldExposureCount, v)
	return u
}

// SetMasteryPct sets the "mastery_pct" field.
func (u *MasteryUpsert) SetMasteryPct(v float64) *MasteryUpsert {
	u.Set(mastery.FieldMasteryPct, v)
	return u
}

// UpdateMasteryPct sets the "mastery_pct" field to the value that was provided on create.
func (u *MasteryUpsert) UpdateMasteryPct() *MasteryUpsert {
	u.SetExcluded(mastery.FieldMasteryPct)
	return u
}

// AddMasteryPct adds v to the "mastery_pct" field.
func (u *MasteryUpsert) AddMasteryPct(v float64) *MasteryUpsert {
	u.Add(mastery.FieldMasteryPct, v)
	return u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *MasteryUpsert) SetLastActivityAt(v time.Time) *MasteryUpsert {
	u.Set(mastery.FieldLastActivityAt, v)
	return u
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *MasteryUpsert) UpdateLastActivityAt() *MasteryUpsert {
	u.SetExcluded(mastery.FieldLastActivityAt)
	return u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (u *MasteryUpsert) ClearLastActivityAt() *MasteryUpsert {
	u.SetNull(mastery.FieldLastActivityAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryUpsert) SetUpdatedAt(v time.Time) *MasteryUpsert {
	u.Set(mastery.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryUpsert) UpdateUpdatedAt() *MasteryUpsert {
	u.SetExcluded(mastery.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Mastery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mastery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MasteryUpsertOne) UpdateNewValues() *MasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mastery.FieldID)
		}
		if _, exists := u.create.mutation.StudentID(); exists {
			s.SetIgnore(mastery.FieldStudentID)
		}
		if _, exists := u.create.mutation.Subcategory(); exists {
			s.SetIgnore(mastery.FieldSubcategory)
		}
		if _, exists := u.create.mutation.TypeOfQuestion(); exists {
			s.SetIgnore(mastery.FieldTypeOfQuestion)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mastery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MasteryUpsertOne) Ignore() *MasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryUpsertOne) DoNothing() *MasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryCreate.OnConflict
// documentation for more info.
func (u *MasteryUpsertOne) Update(set func(*MasteryUpsert)) *MasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccEasy sets the "acc_easy" field.
func (u *MasteryUpsertOne) SetAccEasy(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.SetAccEasy(v)
	})
}

// AddAccEasy adds v to the "acc_easy" field.
func (u *MasteryUpsertOne) AddAccEasy(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.AddAccEasy(v)
	})
}

// UpdateAccEasy sets the "acc_easy" field to the value that was provided on create.
func (u *MasteryUpsertOne) UpdateAccEasy() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateAccEasy()
	})
}

// SetAccMedium sets the "acc_medium" field.
func (u *MasteryUpsertOne) SetAccMedium(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.SetAccMedium(v)
	})
}

// AddAccMedium adds v to the "acc_medium" field.
func (u *MasteryUpsertOne) AddAccMedium(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.AddAccMedium(v)
	})
}

// UpdateAccMedium sets the "acc_medium" field to the value that was provided on create.
func (u *MasteryUpsertOne) UpdateAccMedium() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateAccMedium()
	})
}

// SetAccHard sets the "acc_hard" field.
func (u *MasteryUpsertOne) SetAccHard(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.SetAccHard(v)
	})
}

// AddAccHard adds v to the "acc_hard" field.
func (u *MasteryUpsertOne) AddAccHard(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.AddAccHard(v)
	})
}

// UpdateAccHard sets the "acc_hard" field to the value that was provided on create.
func (u *MasteryUpsertOne) UpdateAccHard() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateAccHard()
	})
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (u *MasteryUpsertOne) SetEfficiencyScore(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.SetEfficiencyScore(v)
	})
}

// AddEfficiencyScore adds v to the "efficiency_score" field.
func (u *MasteryUpsertOne) AddEfficiencyScore(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.AddEfficiencyScore(v)
	})
}

// UpdateEfficiencyScore sets the "efficiency_score" field to the value that was provided on create.
func (u *MasteryUpsertOne) UpdateEfficiencyScore() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateEfficiencyScore()
	})
}

// SetExposureCount sets the "exposure_count" field.
func (u *MasteryUpsertOne) SetExposureCount(v int) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.SetExposureCount(v)
	})
}

// AddExposureCount adds v to the "exposure_count" field.
func (u *MasteryUpsertOne) AddExposureCount(v int) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.AddExposureCount(v)
	})
}

// UpdateExposureCount sets the "exposure_count" field to the value that was provided on create.
func (u *MasteryUpsertOne) UpdateExposureCount() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateExposureCount()
	})
}

// SetMasteryPct sets the "mastery_pct" field.
func (u *MasteryUpsertOne) SetMasteryPct(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.SetMasteryPct(v)
	})
}

// AddMasteryPct adds v to the "mastery_pct" field.
func (u *MasteryUpsertOne) AddMasteryPct(v float64) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.AddMasteryPct(v)
	})
}

// UpdateMasteryPct sets the "mastery_pct" field to the value that was provided on create.
func (u *MasteryUpsertOne) UpdateMasteryPct() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateMasteryPct()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *MasteryUpsertOne) SetLastActivityAt(v time.Time) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *MasteryUpsertOne) UpdateLastActivityAt() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateLastActivityAt()
	})
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (u *MasteryUpsertOne) ClearLastActivityAt() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.ClearLastActivityAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryUpsertOne) SetUpdatedAt(v time.Time) *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryUpsertOne) UpdateUpdatedAt() *MasteryUpsertOne {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MasteryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MasteryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MasteryUpsertOne.ID is not supported by MySQL driver. Use MasteryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MasteryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MasteryCreateBulk is the builder for creating many Mastery entities in bulk.
type MasteryCreateBulk struct {
	config
	err      error
	builders []*MasteryCreate
	conflict []sql.ConflictOption
}

// Save creates the Mastery entities in the database.
func (_c *MasteryCreateBulk) Save(ctx context.Context) ([]*Mastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryMutation)
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
func (_c *MasteryCreateBulk) SaveX(ctx context.Context) []*Mastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mastery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryUpsert) {
//			SetStudentID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryCreateBulk) OnConflict(opts ...sql.ConflictOption) *MasteryUpsertBulk {
	_c.conflict = opts
	return &MasteryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mastery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryCreateBulk) OnConflictColumns(columns ...string) *MasteryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryUpsertBulk{
		create: _c,
	}
}

// MasteryUpsertBulk is the builder for "upsert"-ing
// a bulk of Mastery nodes.
type MasteryUpsertBulk struct {
	create *MasteryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Mastery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mastery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MasteryUpsertBulk) UpdateNewValues() *MasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mastery.FieldID)
			}
			if _, exists := b.mutation.StudentID(); exists {
				s.SetIgnore(mastery.FieldStudentID)
			}
			if _, exists := b.mutation.Subcategory(); exists {
				s.SetIgnore(mastery.FieldSubcategory)
			}
			if _, exists := b.mutation.TypeOfQuestion(); exists {
				s.SetIgnore(mastery.FieldTypeOfQuestion)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mastery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MasteryUpsertBulk) Ignore() *MasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryUpsertBulk) DoNothing() *MasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryCreateBulk.OnConflict
// documentation for more info.
func (u *MasteryUpsertBulk) Update(set func(*MasteryUpsert)) *MasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccEasy sets the "acc_easy" field.
func (u *MasteryUpsertBulk) SetAccEasy(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.SetAccEasy(v)
	})
}

// AddAccEasy adds v to the "acc_easy" field.
func (u *MasteryUpsertBulk) AddAccEasy(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.AddAccEasy(v)
	})
}

// UpdateAccEasy sets the "acc_easy" field to the value that was provided on create.
func (u *MasteryUpsertBulk) UpdateAccEasy() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateAccEasy()
	})
}

// SetAccMedium sets the "acc_medium" field.
func (u *MasteryUpsertBulk) SetAccMedium(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.SetAccMedium(v)
	})
}

// AddAccMedium adds v to the "acc_medium" field.
func (u *MasteryUpsertBulk) AddAccMedium(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.AddAccMedium(v)
	})
}

// UpdateAccMedium sets the "acc_medium" field to the value that was provided on create.
func (u *MasteryUpsertBulk) UpdateAccMedium() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateAccMedium()
	})
}

// SetAccHard sets the "acc_hard" field.
func (u *MasteryUpsertBulk) SetAccHard(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.SetAccHard(v)
	})
}

// AddAccHard adds v to the "acc_hard" field.
func (u *MasteryUpsertBulk) AddAccHard(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.AddAccHard(v)
	})
}

// UpdateAccHard sets the "acc_hard" field to the value that was provided on create.
func (u *MasteryUpsertBulk) UpdateAccHard() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateAccHard()
	})
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (u *MasteryUpsertBulk) SetEfficiencyScore(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.SetEfficiencyScore(v)
	})
}

// AddEfficiencyScore adds v to the "efficiency_score" field.
func (u *MasteryUpsertBulk) AddEfficiencyScore(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.AddEfficiencyScore(v)
	})
}

// UpdateEfficiencyScore sets the "efficiency_score" field to the value that was provided on create.
func (u *MasteryUpsertBulk) UpdateEfficiencyScore() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateEfficiencyScore()
	})
}

// SetExposureCount sets the "exposure_count" field.
func (u *MasteryUpsertBulk) SetExposureCount(v int) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.SetExposureCount(v)
	})
}

// AddExposureCount adds v to the "exposure_count" field.
func (u *MasteryUpsertBulk) AddExposureCount(v int) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.AddExposureCount(v)
	})
}

// UpdateExposureCount sets the "exposure_count" field to the value that was provided on create.
func (u *MasteryUpsertBulk) UpdateExposureCount() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateExposureCount()
	})
}

// SetMasteryPct sets the "mastery_pct" field.
func (u *MasteryUpsertBulk) SetMasteryPct(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.SetMasteryPct(v)
	})
}

// AddMasteryPct adds v to the "mastery_pct" field.
func (u *MasteryUpsertBulk) AddMasteryPct(v float64) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.AddMasteryPct(v)
	})
}

// UpdateMasteryPct sets the "mastery_pct" field to the value that was provided on create.
func (u *MasteryUpsertBulk) UpdateMasteryPct() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateMasteryPct()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *MasteryUpsertBulk) SetLastActivityAt(v time.Time) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *MasteryUpsertBulk) UpdateLastActivityAt() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateLastActivityAt()
	})
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (u *MasteryUpsertBulk) ClearLastActivityAt() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.ClearLastActivityAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryUpsertBulk) SetUpdatedAt(v time.Time) *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryUpsertBulk) UpdateUpdatedAt() *MasteryUpsertBulk {
	return u.Update(func(s *MasteryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MasteryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MasteryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
