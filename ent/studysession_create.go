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
	"github.com/prepforge/quanta/ent/sessionquestion"
	"github.com/prepforge/quanta/ent/studysession"
	"github.com/prepforge/quanta/pkg/models"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudentID sets the "student_id" field.
func (_c *StudySessionCreate) SetStudentID(v string) *StudySessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSessSeq sets the "sess_seq" field.
func (_c *StudySessionCreate) SetSessSeq(v int) *StudySessionCreate {
	_c.mutation.SetSessSeq(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudySessionCreate) SetStatus(v studysession.Status) *StudySessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableStatus(v *studysession.Status) *StudySessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *StudySessionCreate) SetPhase(v studysession.Phase) *StudySessionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetSessionType sets the "session_type" field.
func (_c *StudySessionCreate) SetSessionType(v studysession.SessionType) *StudySessionCreate {
	_c.mutation.SetSessionType(v)
	return _c
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableSessionType(v *studysession.SessionType) *StudySessionCreate {
	if v != nil {
		_c.SetSessionType(*v)
	}
	return _c
}

// SetPlanKey sets the "plan_key" field.
func (_c *StudySessionCreate) SetPlanKey(v string) *StudySessionCreate {
	_c.mutation.SetPlanKey(v)
	return _c
}

// SetConstraintReport sets the "constraint_report" field.
func (_c *StudySessionCreate) SetConstraintReport(v *models.ConstraintReport) *StudySessionCreate {
	_c.mutation.SetConstraintReport(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudySessionCreate) SetCreatedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCreatedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetServedAt sets the "served_at" field.
func (_c *StudySessionCreate) SetServedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetServedAt(v)
	return _c
}

// SetNillableServedAt sets the "served_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableServedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetServedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StudySessionCreate) SetCompletedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCompletedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudySessionCreate) SetID(v string) *StudySessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddPackEntryIDs adds the "pack_entries" edge to the SessionQuestion entity by IDs.
func (_c *StudySessionCreate) AddPackEntryIDs(ids ...string) *StudySessionCreate {
	_c.mutation.AddPackEntryIDs(ids...)
	return _c
}

// AddPackEntries adds the "pack_entries" edges to the SessionQuestion entity.
func (_c *StudySessionCreate) AddPackEntries(v ...*SessionQuestion) *StudySessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPackEntryIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_c *StudySessionCreate) AddAttemptIDs(ids ...string) *StudySessionCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_c *StudySessionCreate) AddAttempts(v ...*Attempt) *StudySessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := studysession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SessionType(); !ok {
		v := studysession.DefaultSessionType
		_c.mutation.SetSessionType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studysession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "StudySession.student_id"`)}
	}
	if _, ok := _c.mutation.SessSeq(); !ok {
		return &ValidationError{Name: "sess_seq", err: errors.New(`ent: missing required field "StudySession.sess_seq"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StudySession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := studysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudySession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "StudySession.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := studysession.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "StudySession.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionType(); !ok {
		return &ValidationError{Name: "session_type", err: errors.New(`ent: missing required field "StudySession.session_type"`)}
	}
	if v, ok := _c.mutation.SessionType(); ok {
		if err := studysession.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanKey(); !ok {
		return &ValidationError{Name: "plan_key", err: errors.New(`ent: missing required field "StudySession.plan_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudySession.created_at"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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
			return nil, fmt.Errorf("unexpected StudySession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(studysession.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SessSeq(); ok {
		_spec.SetField(studysession.FieldSessSeq, field.TypeInt, value)
		_node.SessSeq = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(studysession.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.SessionType(); ok {
		_spec.SetField(studysession.FieldSessionType, field.TypeEnum, value)
		_node.SessionType = value
	}
	if value, ok := _c.mutation.PlanKey(); ok {
		_spec.SetField(studysession.FieldPlanKey, field.TypeString, value)
		_node.PlanKey = value
	}
	if value, ok := _c.mutation.ConstraintReport(); ok {
		_spec.SetField(studysession.FieldConstraintReport, field.TypeJSON, value)
		_node.ConstraintReport = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studysession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ServedAt(); ok {
		_spec.SetField(studysession.FieldServedAt, field.TypeTime, value)
		_node.ServedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PackEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.PackEntriesTable,
			Columns: []string{studysession.PackEntriesColumn},
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
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.AttemptsTable,
			Columns: []string{studysession.AttemptsColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudySession.Create().
//		SetStudentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudySessionUpsert) {
//			SetStudentID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudySessionCreate) OnConflict(opts ...sql.ConflictOption) *StudySessionUpsertOne {
	_c.conflict = opts
	return &StudySessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudySessionCreate) OnConflictColumns(columns ...string) *StudySessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudySessionUpsertOne{
		create: _c,
	}
}

type (
	// StudySessionUpsertOne is the builder for "upsert"-ing
	//  one StudySession node.
	StudySessionUpsertOne struct {
		create *StudySessionCreate
	}

	// StudySessionUpsert is the "OnConflict" setter.
	StudySessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *StudySessionUpsert) SetStatus(v studysession.Status) *StudySessionUpsert {
	u.Set(studysession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateStatus() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldStatus)
	return u
}

// SetPhase sets the "phase" field.
func (u *StudySessionUpsert) SetPhase(v studysession.Phase) *StudySessionUpsert {
	u.Set(studysession.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdatePhase() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldPhase)
	return u
}

// SetSessionType sets the "session_type" field.
func (u *StudySessionUpsert) SetSessionType(v studysession.SessionType) *StudySessionUpsert {
	u.Set(studysession.FieldSessionType, v)
	return u
}

// UpdateSessionType sets the "session_type" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateSessionType() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldSessionType)
	return u
}

// SetConstraintReport sets the "constraint_report" field.
func (u *StudySessionUpsert) SetConstraintReport(v *models.ConstraintReport) *StudySessionUpsert {
	u.Set(studysession.FieldConstraintReport, v)
	return u
}

// UpdateConstraintReport sets the "constraint_report" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateConstraintReport() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldConstraintReport)
	return u
}

// ClearConstraintReport clears the value of the "constraint_report" field.
func (u *StudySessionUpsert) ClearConstraintReport() *StudySessionUpsert {
	u.SetNull(studysession.FieldConstraintReport)
	return u
}

// SetServedAt sets the "served_at" field.
func (u *StudySessionUpsert) SetServedAt(v time.Time) *StudySessionUpsert {
	u.Set(studysession.FieldServedAt, v)
	return u
}

// UpdateServedAt sets the "served_at" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateServedAt() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldServedAt)
	return u
}

// ClearServedAt clears the value of the "served_at" field.
func (u *StudySessionUpsert) ClearServedAt() *StudySessionUpsert {
	u.SetNull(studysession.FieldServedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StudySessionUpsert) SetCompletedAt(v time.Time) *StudySessionUpsert {
	u.Set(studysession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateCompletedAt() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StudySessionUpsert) ClearCompletedAt() *StudySessionUpsert {
	u.SetNull(studysession.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studysession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudySessionUpsertOne) UpdateNewValues() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studysession.FieldID)
		}
		if _, exists := u.create.mutation.StudentID(); exists {
			s.SetIgnore(studysession.FieldStudentID)
		}
		if _, exists := u.create.mutation.SessSeq(); exists {
			s.SetIgnore(studysession.FieldSessSeq)
		}
		if _, exists := u.create.mutation.PlanKey(); exists {
			s.SetIgnore(studysession.FieldPlanKey)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(studysession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudySessionUpsertOne) Ignore() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudySessionUpsertOne) DoNothing() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudySessionCreate.OnConflict
// documentation for more info.
func (u *StudySessionUpsertOne) Update(set func(*StudySessionUpsert)) *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudySessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *StudySessionUpsertOne) SetStatus(v studysession.Status) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateStatus() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateStatus()
	})
}

// SetPhase sets the "phase" field.
func (u *StudySessionUpsertOne) SetPhase(v studysession.Phase) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdatePhase() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdatePhase()
	})
}

// SetSessionType sets the "session_type" field.
func (u *StudySessionUpsertOne) SetSessionType(v studysession.SessionType) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetSessionType(v)
	})
}

// UpdateSessionType sets the "session_type" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateSessionType() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateSessionType()
	})
}

// SetConstraintReport sets the "constraint_report" field.
func (u *StudySessionUpsertOne) SetConstraintReport(v *models.ConstraintReport) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetConstraintReport(v)
	})
}

// UpdateConstraintReport sets the "constraint_report" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateConstraintReport() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateConstraintReport()
	})
}

// ClearConstraintReport clears the value of the "constraint_report" field.
func (u *StudySessionUpsertOne) ClearConstraintReport() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.ClearConstraintReport()
	})
}

// SetServedAt sets the "served_at" field.
func (u *StudySessionUpsertOne) SetServedAt(v time.Time) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetServedAt(v)
	})
}

// UpdateServedAt sets the "served_at" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateServedAt() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateServedAt()
	})
}

// ClearServedAt clears the value of the "served_at" field.
func (u *StudySessionUpsertOne) ClearServedAt() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.ClearServedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StudySessionUpsertOne) SetCompletedAt(v time.Time) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateCompletedAt() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StudySessionUpsertOne) ClearCompletedAt() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StudySessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudySessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudySessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudySessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudySessionUpsertOne.ID is not supported by MySQL driver. Use StudySessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudySessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
	conflict []sql.ConflictOption
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudySession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudySessionUpsert) {
//			SetStudentID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudySessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudySessionUpsertBulk {
	_c.conflict = opts
	return &StudySessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudySessionCreateBulk) OnConflictColumns(columns ...string) *StudySessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudySessionUpsertBulk{
		create: _c,
	}
}

// StudySessionUpsertBulk is the builder for "upsert"-ing
// a bulk of StudySession nodes.
type StudySessionUpsertBulk struct {
	create *StudySessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studysession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudySessionUpsertBulk) UpdateNewValues() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studysession.FieldID)
			}
			if _, exists := b.mutation.StudentID(); exists {
				s.SetIgnore(studysession.FieldStudentID)
			}
			if _, exists := b.mutation.SessSeq(); exists {
				s.SetIgnore(studysession.FieldSessSeq)
			}
			if _, exists := b.mutation.PlanKey(); exists {
				s.SetIgnore(studysession.FieldPlanKey)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(studysession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudySessionUpsertBulk) Ignore() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudySessionUpsertBulk) DoNothing() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudySessionCreateBulk.OnConflict
// documentation for more info.
func (u *StudySessionUpsertBulk) Update(set func(*StudySessionUpsert)) *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudySessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *StudySessionUpsertBulk) SetStatus(v studysession.Status) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateStatus() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateStatus()
	})
}

// SetPhase sets the "phase" field.
func (u *StudySessionUpsertBulk) SetPhase(v studysession.Phase) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdatePhase() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdatePhase()
	})
}

// SetSessionType sets the "session_type" field.
func (u *StudySessionUpsertBulk) SetSessionType(v studysession.SessionType) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetSessionType(v)
	})
}

// UpdateSessionType sets the "session_type" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateSessionType() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateSessionType()
	})
}

// SetConstraintReport sets the "constraint_report" field.
func (u *StudySessionUpsertBulk) SetConstraintReport(v *models.ConstraintReport) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetConstraintReport(v)
	})
}

// UpdateConstraintReport sets the "constraint_report" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateConstraintReport() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateConstraintReport()
	})
}

// ClearConstraintReport clears the value of the "constraint_report" field.
func (u *StudySessionUpsertBulk) ClearConstraintReport() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.ClearConstraintReport()
	})
}

// SetServedAt sets the "served_at" field.
func (u *StudySessionUpsertBulk) SetServedAt(v time.Time) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetServedAt(v)
	})
}

// UpdateServedAt sets the "served_at" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateServedAt() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateServedAt()
	})
}

// ClearServedAt clears the value of the "served_at" field.
func (u *StudySessionUpsertBulk) ClearServedAt() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.ClearServedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StudySessionUpsertBulk) SetCompletedAt(v time.Time) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateCompletedAt() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StudySessionUpsertBulk) ClearCompletedAt() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StudySessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudySessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudySessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudySessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
