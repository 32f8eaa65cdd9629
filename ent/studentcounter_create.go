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
	"github.com/prepforge/quanta/ent/studentcounter"
)

// StudentCounterCreate is the builder for creating a StudentCounter entity.
type StudentCounterCreate struct {
	config
	mutation *StudentCounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetNextSeq sets the "next_seq" field.
func (_c *StudentCounterCreate) SetNextSeq(v int) *StudentCounterCreate {
	_c.mutation.SetNextSeq(v)
	return _c
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_c *StudentCounterCreate) SetNillableNextSeq(v *int) *StudentCounterCreate {
	if v != nil {
		_c.SetNextSeq(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentCounterCreate) SetUpdatedAt(v time.Time) *StudentCounterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentCounterCreate) SetNillableUpdatedAt(v *time.Time) *StudentCounterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudentCounterCreate) SetID(v string) *StudentCounterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StudentCounterMutation object of the builder.
func (_c *StudentCounterCreate) Mutation() *StudentCounterMutation {
	return _c.mutation
}

// Save creates the StudentCounter in the database.
func (_c *StudentCounterCreate) Save(ctx context.Context) (*StudentCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentCounterCreate) SaveX(ctx context.Context) *StudentCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentCounterCreate) defaults() {
	if _, ok := _c.mutation.NextSeq(); !ok {
		v := studentcounter.DefaultNextSeq
		_c.mutation.SetNextSeq(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentcounter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentCounterCreate) check() error {
	if _, ok := _c.mutation.NextSeq(); !ok {
		return &ValidationError{Name: "next_seq", err: errors.New(`ent: missing required field "StudentCounter.next_seq"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudentCounter.updated_at"`)}
	}
	return nil
}

func (_c *StudentCounterCreate) sqlSave(ctx context.Context) (*StudentCounter, error) {
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
			return nil, fmt.Errorf("unexpected StudentCounter.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentCounterCreate) createSpec() (*StudentCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentcounter.Table, sqlgraph.NewFieldSpec(studentcounter.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NextSeq(); ok {
		_spec.SetField(studentcounter.FieldNextSeq, field.TypeInt, value)
		_node.NextSeq = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentcounter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudentCounter.Create().
//		SetNextSeq(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentCounterUpsert) {
//			SetNextSeq(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentCounterCreate) OnConflict(opts ...sql.ConflictOption) *StudentCounterUpsertOne {
	_c.conflict = opts
	return &StudentCounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudentCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentCounterCreate) OnConflictColumns(columns ...string) *StudentCounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentCounterUpsertOne{
		create: _c,
	}
}

type (
	// StudentCounterUpsertOne is the builder for "upsert"-ing
	//  one StudentCounter node.
	StudentCounterUpsertOne struct {
		create *StudentCounterCreate
	}

	// StudentCounterUpsert is the "OnConflict" setter.
	StudentCounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetNextSeq sets the "next_seq" field.
func (u *StudentCounterUpsert) SetNextSeq(v int) *StudentCounterUpsert {
	u.Set(studentcounter.FieldNextSeq, v)
	return u
}

// UpdateNextSeq sets the "next_seq" field to the value that was provided on create.
func (u *StudentCounterUpsert) UpdateNextSeq() *StudentCounterUpsert {
	u.SetExcluded(studentcounter.FieldNextSeq)
	return u
}

// AddNextSeq adds v to the "next_seq" field.
func (u *StudentCounterUpsert) AddNextSeq(v int) *StudentCounterUpsert {
	u.Add(studentcounter.FieldNextSeq, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentCounterUpsert) SetUpdatedAt(v time.Time) *StudentCounterUpsert {
	u.Set(studentcounter.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentCounterUpsert) UpdateUpdatedAt() *StudentCounterUpsert {
	u.SetExcluded(studentcounter.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudentCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studentcounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudentCounterUpsertOne) UpdateNewValues() *StudentCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studentcounter.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudentCounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudentCounterUpsertOne) Ignore() *StudentCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentCounterUpsertOne) DoNothing() *StudentCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentCounterCreate.OnConflict
// documentation for more info.
func (u *StudentCounterUpsertOne) Update(set func(*StudentCounterUpsert)) *StudentCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetNextSeq sets the "next_seq" field.
func (u *StudentCounterUpsertOne) SetNextSeq(v int) *StudentCounterUpsertOne {
	return u.Update(func(s *StudentCounterUpsert) {
		s.SetNextSeq(v)
	})
}

// AddNextSeq adds v to the "next_seq" field.
func (u *StudentCounterUpsertOne) AddNextSeq(v int) *StudentCounterUpsertOne {
	return u.Update(func(s *StudentCounterUpsert) {
		s.AddNextSeq(v)
	})
}

// UpdateNextSeq sets the "next_seq" field to the value that was provided on create.
func (u *StudentCounterUpsertOne) UpdateNextSeq() *StudentCounterUpsertOne {
	return u.Update(func(s *StudentCounterUpsert) {
		s.UpdateNextSeq()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentCounterUpsertOne) SetUpdatedAt(v time.Time) *StudentCounterUpsertOne {
	return u.Update(func(s *StudentCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentCounterUpsertOne) UpdateUpdatedAt() *StudentCounterUpsertOne {
	return u.Update(func(s *StudentCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudentCounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudentCounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentCounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudentCounterUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudentCounterUpsertOne.ID is not supported by MySQL driver. Use StudentCounterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudentCounterUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudentCounterCreateBulk is the builder for creating many StudentCounter entities in bulk.
type StudentCounterCreateBulk struct {
	config
	err      error
	builders []*StudentCounterCreate
	conflict []sql.ConflictOption
}

// Save creates the StudentCounter entities in the database.
func (_c *StudentCounterCreateBulk) Save(ctx context.Context) ([]*StudentCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentCounterMutation)
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
func (_c *StudentCounterCreateBulk) SaveX(ctx context.Context) []*StudentCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudentCounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentCounterUpsert) {
//			SetNextSeq(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentCounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudentCounterUpsertBulk {
	_c.conflict = opts
	return &StudentCounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudentCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentCounterCreateBulk) OnConflictColumns(columns ...string) *StudentCounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentCounterUpsertBulk{
		create: _c,
	}
}

// StudentCounterUpsertBulk is the builder for "upsert"-ing
// a bulk of StudentCounter nodes.
type StudentCounterUpsertBulk struct {
	create *StudentCounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudentCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studentcounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudentCounterUpsertBulk) UpdateNewValues() *StudentCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studentcounter.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudentCounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudentCounterUpsertBulk) Ignore() *StudentCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentCounterUpsertBulk) DoNothing() *StudentCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentCounterCreateBulk.OnConflict
// documentation for more info.
func (u *StudentCounterUpsertBulk) Update(set func(*StudentCounterUpsert)) *StudentCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetNextSeq sets the "next_seq" field.
func (u *StudentCounterUpsertBulk) SetNextSeq(v int) *StudentCounterUpsertBulk {
	return u.Update(func(s *StudentCounterUpsert) {
		s.SetNextSeq(v)
	})
}

// AddNextSeq adds v to the "next_seq" field.
func (u *StudentCounterUpsertBulk) AddNextSeq(v int) *StudentCounterUpsertBulk {
	return u.Update(func(s *StudentCounterUpsert) {
		s.AddNextSeq(v)
	})
}

// UpdateNextSeq sets the "next_seq" field to the value that was provided on create.
func (u *StudentCounterUpsertBulk) UpdateNextSeq() *StudentCounterUpsertBulk {
	return u.Update(func(s *StudentCounterUpsert) {
		s.UpdateNextSeq()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentCounterUpsertBulk) SetUpdatedAt(v time.Time) *StudentCounterUpsertBulk {
	return u.Update(func(s *StudentCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentCounterUpsertBulk) UpdateUpdatedAt() *StudentCounterUpsertBulk {
	return u.Update(func(s *StudentCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudentCounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudentCounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudentCounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentCounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
