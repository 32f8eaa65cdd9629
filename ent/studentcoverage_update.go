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
	"github.com/prepforge/quanta/ent/predicate"
	"github.com/prepforge/quanta/ent/studentcoverage"
)

// StudentCoverageUpdate is the builder for updating StudentCoverage entities.
type StudentCoverageUpdate struct {
	config
	hooks    []Hook
	mutation *StudentCoverageMutation
}

// Where appends a list predicates to the StudentCoverageUpdate builder.
func (_u *StudentCoverageUpdate) Where(ps ...predicate.StudentCoverage) *StudentCoverageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionsSeen sets the "sessions_seen" field.
func (_u *StudentCoverageUpdate) SetSessionsSeen(v int) *StudentCoverageUpdate {
	_u.mutation.ResetSessionsSeen()
	_u.mutation.SetSessionsSeen(v)
	return _u
}

// SetNillableSessionsSeen sets the "sessions_seen" field if the given value is not nil.
func (_u *StudentCoverageUpdate) SetNillableSessionsSeen(v *int) *StudentCoverageUpdate {
	if v != nil {
		_u.SetSessionsSeen(*v)
	}
	return _u
}

// AddSessionsSeen adds value to the "sessions_seen" field.
func (_u *StudentCoverageUpdate) AddSessionsSeen(v int) *StudentCoverageUpdate {
	_u.mutation.AddSessionsSeen(v)
	return _u
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (_u *StudentCoverageUpdate) SetFirstSeenSession(v int) *StudentCoverageUpdate {
	_u.mutation.ResetFirstSeenSession()
	_u.mutation.SetFirstSeenSession(v)
	return _u
}

// SetNillableFirstSeenSession sets the "first_seen_session" field if the given value is not nil.
func (_u *StudentCoverageUpdate) SetNillableFirstSeenSession(v *int) *StudentCoverageUpdate {
	if v != nil {
		_u.SetFirstSeenSession(*v)
	}
	return _u
}

// AddFirstSeenSession adds value to the "first_seen_session" field.
func (_u *StudentCoverageUpdate) AddFirstSeenSession(v int) *StudentCoverageUpdate {
	_u.mutation.AddFirstSeenSession(v)
	return _u
}

// SetLastSeenSession sets the "last_seen_session" field.
func (_u *StudentCoverageUpdate) SetLastSeenSession(v int) *StudentCoverageUpdate {
	_u.mutation.ResetLastSeenSession()
	_u.mutation.SetLastSeenSession(v)
	return _u
}

// SetNillableLastSeenSession sets the "last_seen_session" field if the given value is not nil.
func (_u *StudentCoverageUpdate) SetNillableLastSeenSession(v *int) *StudentCoverageUpdate {
	if v != nil {
		_u.SetLastSeenSession(*v)
	}
	return _u
}

// AddLastSeenSession adds value to the "last_seen_session" field.
func (_u *StudentCoverageUpdate) AddLastSeenSession(v int) *StudentCoverageUpdate {
	_u.mutation.AddLastSeenSession(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentCoverageUpdate) SetUpdatedAt(v time.Time) *StudentCoverageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentCoverageMutation object of the builder.
func (_u *StudentCoverageUpdate) Mutation() *StudentCoverageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentCoverageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentCoverageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentCoverageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentCoverageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentCoverageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentcoverage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentCoverageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studentcoverage.Table, studentcoverage.Columns, sqlgraph.NewFieldSpec(studentcoverage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionsSeen(); ok {
		_spec.SetField(studentcoverage.FieldSessionsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsSeen(); ok {
		_spec.AddField(studentcoverage.FieldSessionsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstSeenSession(); ok {
		_spec.SetField(studentcoverage.FieldFirstSeenSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstSeenSession(); ok {
		_spec.AddField(studentcoverage.FieldFirstSeenSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeenSession(); ok {
		_spec.SetField(studentcoverage.FieldLastSeenSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastSeenSession(); ok {
		_spec.AddField(studentcoverage.FieldLastSeenSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentcoverage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentcoverage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentCoverageUpdateOne is the builder for updating a single StudentCoverage entity.
type StudentCoverageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentCoverageMutation
}

// SetSessionsSeen sets the "sessions_seen" field.
func (_u *StudentCoverageUpdateOne) SetSessionsSeen(v int) *StudentCoverageUpdateOne {
	_u.mutation.ResetSessionsSeen()
	_u.mutation.SetSessionsSeen(v)
	return _u
}

// SetNillableSessionsSeen sets the "sessions_seen" field if the given value is not nil.
func (_u *StudentCoverageUpdateOne) SetNillableSessionsSeen(v *int) *StudentCoverageUpdateOne {
	if v != nil {
		_u.SetSessionsSeen(*v)
	}
	return _u
}

// AddSessionsSeen adds value to the "sessions_seen" field.
func (_u *StudentCoverageUpdateOne) AddSessionsSeen(v int) *StudentCoverageUpdateOne {
	_u.mutation.AddSessionsSeen(v)
	return _u
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (_u *StudentCoverageUpdateOne) SetFirstSeenSession(v int) *StudentCoverageUpdateOne {
	_u.mutation.ResetFirstSeenSession()
	_u.mutation.SetFirstSeenSession(v)
	return _u
}

// SetNillableFirstSeenSession sets the "first_seen_session" field if the given value is not nil.
func (_u *StudentCoverageUpdateOne) SetNillableFirstSeenSession(v *int) *StudentCoverageUpdateOne {
	if v != nil {
		_u.SetFirstSeenSession(*v)
	}
	return _u
}

// AddFirstSeenSession adds value to the "first_seen_session" field.
func (_u *StudentCoverageUpdateOne) AddFirstSeenSession(v int) *StudentCoverageUpdateOne {
	_u.mutation.AddFirstSeenSession(v)
	return _u
}

// SetLastSeenSession sets the "last_seen_session" field.
func (_u *StudentCoverageUpdateOne) SetLastSeenSession(v int) *StudentCoverageUpdateOne {
	_u.mutation.ResetLastSeenSession()
	_u.mutation.SetLastSeenSession(v)
	return _u
}

// SetNillableLastSeenSession sets the "last_seen_session" field if the given value is not nil.
func (_u *StudentCoverageUpdateOne) SetNillableLastSeenSession(v *int) *StudentCoverageUpdateOne {
	if v != nil {
		_u.SetLastSeenSession(*v)
	}
	return _u
}

// AddLastSeenSession adds value to the "last_seen_session" field.
func (_u *StudentCoverageUpdateOne) AddLastSeenSession(v int) *StudentCoverageUpdateOne {
	_u.mutation.AddLastSeenSession(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentCoverageUpdateOne) SetUpdatedAt(v time.Time) *StudentCoverageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentCoverageMutation object of the builder.
func (_u *StudentCoverageUpdateOne) Mutation() *StudentCoverageMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentCoverageUpdate builder.
func (_u *StudentCoverageUpdateOne) Where(ps ...predicate.StudentCoverage) *StudentCoverageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentCoverageUpdateOne) Select(field string, fields ...string) *StudentCoverageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentCoverage entity.
func (_u *StudentCoverageUpdateOne) Save(ctx context.Context) (*StudentCoverage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentCoverageUpdateOne) SaveX(ctx context.Context) *StudentCoverage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentCoverageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentCoverageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentCoverageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentcoverage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentCoverageUpdateOne) sqlSave(ctx context.Context) (_node *StudentCoverage, err error) {
	_spec := sqlgraph.NewUpdateSpec(studentcoverage.Table, studentcoverage.Columns, sqlgraph.NewFieldSpec(studentcoverage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentCoverage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentcoverage.FieldID)
		for _, f := range fields {
			if !studentcoverage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentcoverage.FieldID {
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
	if value, ok := _u.mutation.SessionsSeen(); ok {
		_spec.SetField(studentcoverage.FieldSessionsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsSeen(); ok {
		_spec.AddField(studentcoverage.FieldSessionsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstSeenSession(); ok {
		_spec.SetField(studentcoverage.FieldFirstSeenSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstSeenSession(); ok {
		_spec.AddField(studentcoverage.FieldFirstSeenSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeenSession(); ok {
		_spec.SetField(studentcoverage.FieldLastSeenSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastSeenSession(); ok {
		_spec.AddField(studentcoverage.FieldLastSeenSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentcoverage.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudentCoverage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentcoverage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
