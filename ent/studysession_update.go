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
	"github.com/prepforge/quanta/ent/attempt"
	"github.com/prepforge/quanta/ent/predicate"
	"github.com/prepforge/quanta/ent/sessionquestion"
	"github.com/prepforge/quanta/ent/studysession"
	"github.com/prepforge/quanta/pkg/models"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudySessionUpdate) SetStatus(v studysession.Status) *StudySessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableStatus(v *studysession.Status) *StudySessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *StudySessionUpdate) SetPhase(v studysession.Phase) *StudySessionUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillablePhase(v *studysession.Phase) *StudySessionUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *StudySessionUpdate) SetSessionType(v studysession.SessionType) *StudySessionUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSessionType(v *studysession.SessionType) *StudySessionUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetConstraintReport sets the "constraint_report" field.
func (_u *StudySessionUpdate) SetConstraintReport(v *models.ConstraintReport) *StudySessionUpdate {
	_u.mutation.SetConstraintReport(v)
	return _u
}

// ClearConstraintReport clears the value of the "constraint_report" field.
func (_u *StudySessionUpdate) ClearConstraintReport() *StudySessionUpdate {
	_u.mutation.ClearConstraintReport()
	return _u
}

// SetServedAt sets the "served_at" field.
func (_u *StudySessionUpdate) SetServedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetServedAt(v)
	return _u
}

// SetNillableServedAt sets the "served_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableServedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetServedAt(*v)
	}
	return _u
}

// ClearServedAt clears the value of the "served_at" field.
func (_u *StudySessionUpdate) ClearServedAt() *StudySessionUpdate {
	_u.mutation.ClearServedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StudySessionUpdate) SetCompletedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCompletedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StudySessionUpdate) ClearCompletedAt() *StudySessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddPackEntryIDs adds the "pack_entries" edge to the SessionQuestion entity by IDs.
func (_u *StudySessionUpdate) AddPackEntryIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.AddPackEntryIDs(ids...)
	return _u
}

// AddPackEntries adds the "pack_entries" edges to the SessionQuestion entity.
func (_u *StudySessionUpdate) AddPackEntries(v ...*SessionQuestion) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackEntryIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *StudySessionUpdate) AddAttemptIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *StudySessionUpdate) AddAttempts(v ...*Attempt) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearPackEntries clears all "pack_entries" edges to the SessionQuestion entity.
func (_u *StudySessionUpdate) ClearPackEntries() *StudySessionUpdate {
	_u.mutation.ClearPackEntries()
	return _u
}

// RemovePackEntryIDs removes the "pack_entries" edge to SessionQuestion entities by IDs.
func (_u *StudySessionUpdate) RemovePackEntryIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.RemovePackEntryIDs(ids...)
	return _u
}

// RemovePackEntries removes "pack_entries" edges to SessionQuestion entities.
func (_u *StudySessionUpdate) RemovePackEntries(v ...*SessionQuestion) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackEntryIDs(ids...)
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *StudySessionUpdate) ClearAttempts() *StudySessionUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *StudySessionUpdate) RemoveAttemptIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *StudySessionUpdate) RemoveAttempts(v ...*Attempt) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := studysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudySession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := studysession.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "StudySession.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := studysession.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_type": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(studysession.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(studysession.FieldSessionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConstraintReport(); ok {
		_spec.SetField(studysession.FieldConstraintReport, field.TypeJSON, value)
	}
	if _u.mutation.ConstraintReportCleared() {
		_spec.ClearField(studysession.FieldConstraintReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.ServedAt(); ok {
		_spec.SetField(studysession.FieldServedAt, field.TypeTime, value)
	}
	if _u.mutation.ServedAtCleared() {
		_spec.ClearField(studysession.FieldServedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(studysession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PackEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackEntriesIDs(); len(nodes) > 0 && !_u.mutation.PackEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetStatus sets the "status" field.
func (_u *StudySessionUpdateOne) SetStatus(v studysession.Status) *StudySessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableStatus(v *studysession.Status) *StudySessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *StudySessionUpdateOne) SetPhase(v studysession.Phase) *StudySessionUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillablePhase(v *studysession.Phase) *StudySessionUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *StudySessionUpdateOne) SetSessionType(v studysession.SessionType) *StudySessionUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSessionType(v *studysession.SessionType) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetConstraintReport sets the "constraint_report" field.
func (_u *StudySessionUpdateOne) SetConstraintReport(v *models.ConstraintReport) *StudySessionUpdateOne {
	_u.mutation.SetConstraintReport(v)
	return _u
}

// ClearConstraintReport clears the value of the "constraint_report" field.
func (_u *StudySessionUpdateOne) ClearConstraintReport() *StudySessionUpdateOne {
	_u.mutation.ClearConstraintReport()
	return _u
}

// SetServedAt sets the "served_at" field.
func (_u *StudySessionUpdateOne) SetServedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetServedAt(v)
	return _u
}

// SetNillableServedAt sets the "served_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableServedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetServedAt(*v)
	}
	return _u
}

// ClearServedAt clears the value of the "served_at" field.
func (_u *StudySessionUpdateOne) ClearServedAt() *StudySessionUpdateOne {
	_u.mutation.ClearServedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StudySessionUpdateOne) SetCompletedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCompletedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StudySessionUpdateOne) ClearCompletedAt() *StudySessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddPackEntryIDs adds the "pack_entries" edge to the SessionQuestion entity by IDs.
func (_u *StudySessionUpdateOne) AddPackEntryIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.AddPackEntryIDs(ids...)
	return _u
}

// AddPackEntries adds the "pack_entries" edges to the SessionQuestion entity.
func (_u *StudySessionUpdateOne) AddPackEntries(v ...*SessionQuestion) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackEntryIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *StudySessionUpdateOne) AddAttemptIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *StudySessionUpdateOne) AddAttempts(v ...*Attempt) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearPackEntries clears all "pack_entries" edges to the SessionQuestion entity.
func (_u *StudySessionUpdateOne) ClearPackEntries() *StudySessionUpdateOne {
	_u.mutation.ClearPackEntries()
	return _u
}

// RemovePackEntryIDs removes the "pack_entries" edge to SessionQuestion entities by IDs.
func (_u *StudySessionUpdateOne) RemovePackEntryIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.RemovePackEntryIDs(ids...)
	return _u
}

// RemovePackEntries removes "pack_entries" edges to SessionQuestion entities.
func (_u *StudySessionUpdateOne) RemovePackEntries(v ...*SessionQuestion) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackEntryIDs(ids...)
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *StudySessionUpdateOne) ClearAttempts() *StudySessionUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *StudySessionUpdateOne) RemoveAttemptIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *StudySessionUpdateOne) RemoveAttempts(v ...*Attempt) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := studysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudySession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := studysession.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "StudySession.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := studysession.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_type": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(studysession.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(studysession.FieldSessionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConstraintReport(); ok {
		_spec.SetField(studysession.FieldConstraintReport, field.TypeJSON, value)
	}
	if _u.mutation.ConstraintReportCleared() {
		_spec.ClearField(studysession.FieldConstraintReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.ServedAt(); ok {
		_spec.SetField(studysession.FieldServedAt, field.TypeTime, value)
	}
	if _u.mutation.ServedAtCleared() {
		_spec.ClearField(studysession.FieldServedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(studysession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PackEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackEntriesIDs(); len(nodes) > 0 && !_u.mutation.PackEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
