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
	"github.com/prepforge/quanta/ent/studentcounter"
)

// StudentCounterUpdate is the builder for updating StudentCounter entities.
type StudentCounterUpdate struct {
	config
	hooks    []Hook
	mutation *StudentCounterMutation
}

// Where appends a list predicates to the StudentCounterUpdate builder.
func (_u *StudentCounterUpdate) Where(ps ...predicate.StudentCounter) *StudentCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNextSeq sets the "next_seq" field.
func (_u *StudentCounterUpdate) SetNextSeq(v int) *StudentCounterUpdate {
	_u.mutation.ResetNextSeq()
	_u.mutation.SetNextSeq(v)
	return _u
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_u *StudentCounterUpdate) SetNillableNextSeq(v *int) *StudentCounterUpdate {
	if v != nil {
		_u.SetNextSeq(*v)
	}
	return _u
}

// AddNextSeq adds value to the "next_seq" field.
func (_u *StudentCounterUpdate) AddNextSeq(v int) *StudentCounterUpdate {
	_u.mutation.AddNextSeq(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentCounterUpdate) SetUpdatedAt(v time.Time) *StudentCounterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentCounterMutation object of the builder.
func (_u *StudentCounterUpdate) Mutation() *StudentCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentCounterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentCounterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentcounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studentcounter.Table, studentcounter.Columns, sqlgraph.NewFieldSpec(studentcounter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextSeq(); ok {
		_spec.SetField(studentcounter.FieldNextSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextSeq(); ok {
		_spec.AddField(studentcounter.FieldNextSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentcounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentcounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentCounterUpdateOne is the builder for updating a single StudentCounter entity.
type StudentCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentCounterMutation
}

// SetNextSeq sets the "next_seq" field.
func (_u *StudentCounterUpdateOne) SetNextSeq(v int) *StudentCounterUpdateOne {
	_u.mutation.ResetNextSeq()
	_u.mutation.SetNextSeq(v)
	return _u
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_u *StudentCounterUpdateOne) SetNillableNextSeq(v *int) *StudentCounterUpdateOne {
	if v != nil {
		_u.SetNextSeq(*v)
	}
	return _u
}

// AddNextSeq adds value to the "next_seq" field.
func (_u *StudentCounterUpdateOne) AddNextSeq(v int) *StudentCounterUpdateOne {
	_u.mutation.AddNextSeq(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentCounterUpdateOne) SetUpdatedAt(v time.Time) *StudentCounterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentCounterMutation object of the builder.
func (_u *StudentCounterUpdateOne) Mutation() *StudentCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentCounterUpdate builder.
func (_u *StudentCounterUpdateOne) Where(ps ...predicate.StudentCounter) *StudentCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentCounterUpdateOne) Select(field string, fields ...string) *StudentCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentCounter entity.
func (_u *StudentCounterUpdateOne) Save(ctx context.Context) (*StudentCounter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentCounterUpdateOne) SaveX(ctx context.Context) *StudentCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentCounterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentcounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentCounterUpdateOne) sqlSave(ctx context.Context) (_node *StudentCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(studentcounter.Table, studentcounter.Columns, sqlgraph.NewFieldSpec(studentcounter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentcounter.FieldID)
		for _, f := range fields {
			if !studentcounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentcounter.FieldID {
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
	if value, ok := _u.mutation.NextSeq(); ok {
		_spec.SetField(studentcounter.FieldNextSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextSeq(); ok {
		_spec.AddField(studentcounter.FieldNextSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentcounter.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudentCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentcounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
