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
	"github.com/prepforge/quanta/ent/studentcoverage"
)

// StudentCoverageCreate is the builder for creating a StudentCoverage entity.
type StudentCoverageCreate struct {
	config
	mutation *StudentCoverageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudentID sets the "student_id" field.
func (_c *StudentCoverageCreate) SetStudentID(v string) *StudentCoverageCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *StudentCoverageCreate) SetSubcategory(v string) *StudentCoverageCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *StudentCoverageCreate) SetTypeOfQuestion(v string) *StudentCoverageCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetSessionsSeen sets the "sessions_seen" field.
func (_c *StudentCoverageCreate) SetSessionsSeen(v int) *StudentCoverageCreate {
	_c.mutation.SetSessionsSeen(v)
	return _c
}

// SetNillableSessionsSeen sets the "sessions_seen" field if the given value is not nil.
func (_c *StudentCoverageCreate) SetNillableSessionsSeen(v *int) *StudentCoverageCreate {
	if v != nil {
		_c.SetSessionsSeen(*v)
	}
	return _c
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (_c *StudentCoverageCreate) SetFirstSeenSession(v int) *StudentCoverageCreate {
	_c.mutation.SetFirstSeenSession(v)
	return _c
}

// SetLastSeenSession sets the "last_seen_session" field.
func (_c *StudentCoverageCreate) SetLastSeenSession(v int) *StudentCoverageCreate {
	_c.mutation.SetLastSeenSession(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentCoverageCreate) SetUpdatedAt(v time.Time) *StudentCoverageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentCoverageCreate) SetNillableUpdatedAt(v *time.Time) *StudentCoverageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudentCoverageCreate) SetID(v string) *StudentCoverageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StudentCoverageMutation object of the builder.
func (_c *StudentCoverageCreate) Mutation() *StudentCoverageMutation {
	return _c.mutation
}

// Save creates the StudentCoverage in the database.
func (_c *StudentCoverageCreate) Save(ctx context.Context) (*StudentCoverage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentCoverageCreate) SaveX(ctx context.Context) *StudentCoverage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCoverageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCoverageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentCoverageCreate) defaults() {
	if _, ok := _c.mutation.SessionsSeen(); !ok {
		v := studentcoverage.DefaultSessionsSeen
		_c.mutation.SetSessionsSeen(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentcoverage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentCoverageCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "StudentCoverage.student_id"`)}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "StudentCoverage.subcategory"`)}
	}
	if _, ok := _c.mutation.TypeOfQuestion(); !ok {
		return &ValidationError{Name: "type_of_question", err: errors.New(`ent: missing required field "StudentCoverage.type_of_question"`)}
	}
	if _, ok := _c.mutation.SessionsSeen(); !ok {
		return &ValidationError{Name: "sessions_seen", err: errors.New(`ent: missing required field "StudentCoverage.sessions_seen"`)}
	}
	if _, ok := _c.mutation.FirstSeenSession(); !ok {
		return &ValidationError{Name: "first_seen_session", err: errors.New(`ent: missing required field "StudentCoverage.first_seen_session"`)}
	}
	if _, ok := _c.mutation.LastSeenSession(); !ok {
		return &ValidationError{Name: "last_seen_session", err: errors.New(`ent: missing required field "StudentCoverage.last_seen_session"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudentCoverage.updated_at"`)}
	}
	return nil
}

func (_c *StudentCoverageCreate) sqlSave(ctx context.Context) (*StudentCoverage, error) {
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
			return nil, fmt.Errorf("unexpected StudentCoverage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentCoverageCreate) createSpec() (*StudentCoverage, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentCoverage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentcoverage.Table, sqlgraph.NewFieldSpec(studentcoverage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(studentcoverage.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(studentcoverage.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(studentcoverage.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.SessionsSeen(); ok {
		_spec.SetField(studentcoverage.FieldSessionsSeen, field.TypeInt, value)
		_node.SessionsSeen = value
	}
	if value, ok := _c.mutation.FirstSeenSession(); ok {
		_spec.SetField(studentcoverage.FieldFirstSeenSession, field.TypeInt, value)
		_node.FirstSeenSession = value
	}
	if value, ok := _c.mutation.LastSeenSession(); ok {
		_spec.SetField(studentcoverage.FieldLastSeenSession, field.TypeInt, value)
		_node.LastSeenSession = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentcoverage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudentCoverage.Create().
//		SetStudentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentCoverageUpsert) {
//			SetStudentID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentCoverageCreate) OnConflict(opts ...sql.ConflictOption) *StudentCoverageUpsertOne {
	_c.conflict = opts
	return &StudentCoverageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudentCoverage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentCoverageCreate) OnConflictColumns(columns ...string) *StudentCoverageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentCoverageUpsertOne{
		create: _c,
	}
}

type (
	// StudentCoverageUpsertOne is the builder for "upsert"-ing
	//  one StudentCoverage node.
	StudentCoverageUpsertOne struct {
		create *StudentCoverageCreate
	}

	// StudentCoverageUpsert is the "OnConflict" setter.
	StudentCoverageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionsSeen sets the "sessions_seen" field.
func (u *StudentCoverageUpsert) SetSessionsSeen(v int) *StudentCoverageUpsert {
	u.Set(studentcoverage.FieldSessionsSeen, v)
	return u
}

// UpdateSessionsSeen sets the "sessions_seen" field to the value that was provided on create.
func (u *StudentCoverageUpsert) UpdateSessionsSeen() *StudentCoverageUpsert {
	u.SetExcluded(studentcoverage.FieldSessionsSeen)
	return u
}

// AddSessionsSeen adds v to the "sessions_seen" field.
func (u *StudentCoverageUpsert) AddSessionsSeen(v int) *StudentCoverageUpsert {
	u.Add(studentcoverage.FieldSessionsSeen, v)
	return u
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (u *StudentCoverageUpsert) SetFirstSeenSession(v int) *StudentCoverageUpsert {
	u.Set(studentcoverage.FieldFirstSeenSession, v)
	return u
}

// UpdateFirstSeenSession sets the "first_seen_session" field to the value that was provided on create.
func (u *StudentCoverageUpsert) UpdateFirstSeenSession() *StudentCoverageUpsert {
	u.SetExcluded(studentcoverage.FieldFirstSeenSession)
	return u
}

// AddFirstSeenSession adds v to the "first_seen_session" field.
func (u *StudentCoverageUpsert) AddFirstSeenSession(v int) *StudentCoverageUpsert {
	u.Add(studentcoverage.FieldFirstSeenSession, v)
	return u
}

// SetLastSeenSession sets the "last_seen_session" field.
func (u *StudentCoverageUpsert) SetLastSeenSession(v int) *StudentCoverageUpsert {
	u.Set(studentcoverage.FieldLastSeenSession, v)
	return u
}

// UpdateLastSeenSession sets the "last_seen_session" field to the value that was provided on create.
func (u *StudentCoverageUpsert) UpdateLastSeenSession() *StudentCoverageUpsert {
	u.SetExcluded(studentcoverage.FieldLastSeenSession)
	return u
}

// AddLastSeenSession adds v to the "last_seen_session" field.
func (u *StudentCoverageUpsert) AddLastSeenSession(v int) *StudentCoverageUpsert {
	u.Add(studentcoverage.FieldLastSeenSession, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentCoverageUpsert) SetUpdatedAt(v time.Time) *StudentCoverageUpsert {
	u.Set(studentcoverage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentCoverageUpsert) UpdateUpdatedAt() *StudentCoverageUpsert {
	u.SetExcluded(studentcoverage.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudentCoverage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studentcoverage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudentCoverageUpsertOne) UpdateNewValues() *StudentCoverageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studentcoverage.FieldID)
		}
		if _, exists := u.create.mutation.StudentID(); exists {
			s.SetIgnore(studentcoverage.FieldStudentID)
		}
		if _, exists := u.create.mutation.Subcategory(); exists {
			s.SetIgnore(studentcoverage.FieldSubcategory)
		}
		if _, exists := u.create.mutation.TypeOfQuestion(); exists {
			s.SetIgnore(studentcoverage.FieldTypeOfQuestion)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudentCoverage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudentCoverageUpsertOne) Ignore() *StudentCoverageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentCoverageUpsertOne) DoNothing() *StudentCoverageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentCoverageCreate.OnConflict
// documentation for more info.
func (u *StudentCoverageUpsertOne) Update(set func(*StudentCoverageUpsert)) *StudentCoverageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentCoverageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionsSeen sets the "sessions_seen" field.
func (u *StudentCoverageUpsertOne) SetSessionsSeen(v int) *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.SetSessionsSeen(v)
	})
}

// AddSessionsSeen adds v to the "sessions_seen" field.
func (u *StudentCoverageUpsertOne) AddSessionsSeen(v int) *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.AddSessionsSeen(v)
	})
}

// UpdateSessionsSeen sets the "sessions_seen" field to the value that was provided on create.
func (u *StudentCoverageUpsertOne) UpdateSessionsSeen() *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.UpdateSessionsSeen()
	})
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (u *StudentCoverageUpsertOne) SetFirstSeenSession(v int) *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.SetFirstSeenSession(v)
	})
}

// AddFirstSeenSession adds v to the "first_seen_session" field.
func (u *StudentCoverageUpsertOne) AddFirstSeenSession(v int) *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.AddFirstSeenSession(v)
	})
}

// UpdateFirstSeenSession sets the "first_seen_session" field to the value that was provided on create.
func (u *StudentCoverageUpsertOne) UpdateFirstSeenSession() *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.UpdateFirstSeenSession()
	})
}

// SetLastSeenSession sets the "last_seen_session" field.
func (u *StudentCoverageUpsertOne) SetLastSeenSession(v int) *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.SetLastSeenSession(v)
	})
}

// AddLastSeenSession adds v to the "last_seen_session" field.
func (u *StudentCoverageUpsertOne) AddLastSeenSession(v int) *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.AddLastSeenSession(v)
	})
}

// UpdateLastSeenSession sets the "last_seen_session" field to the value that was provided on create.
func (u *StudentCoverageUpsertOne) UpdateLastSeenSession() *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.UpdateLastSeenSession()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentCoverageUpsertOne) SetUpdatedAt(v time.Time) *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentCoverageUpsertOne) UpdateUpdatedAt() *StudentCoverageUpsertOne {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudentCoverageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudentCoverageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentCoverageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudentCoverageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudentCoverageUpsertOne.ID is not supported by MySQL driver. Use StudentCoverageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudentCoverageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudentCoverageCreateBulk is the builder for creating many StudentCoverage entities in bulk.
type StudentCoverageCreateBulk struct {
	config
	err      error
	builders []*StudentCoverageCreate
	conflict []sql.ConflictOption
}

// Save creates the StudentCoverage entities in the database.
func (_c *StudentCoverageCreateBulk) Save(ctx context.Context) ([]*StudentCoverage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentCoverage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentCoverageMutation)
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
func (_c *StudentCoverageCreateBulk) SaveX(ctx context.Context) []*StudentCoverage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCoverageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCoverageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudentCoverage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentCoverageUpsert) {
//			SetStudentID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentCoverageCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudentCoverageUpsertBulk {
	_c.conflict = opts
	return &StudentCoverageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudentCoverage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentCoverageCreateBulk) OnConflictColumns(columns ...string) *StudentCoverageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentCoverageUpsertBulk{
		create: _c,
	}
}

// StudentCoverageUpsertBulk is the builder for "upsert"-ing
// a bulk of StudentCoverage nodes.
type StudentCoverageUpsertBulk struct {
	create *StudentCoverageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudentCoverage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studentcoverage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudentCoverageUpsertBulk) UpdateNewValues() *StudentCoverageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studentcoverage.FieldID)
			}
			if _, exists := b.mutation.StudentID(); exists {
				s.SetIgnore(studentcoverage.FieldStudentID)
			}
			if _, exists := b.mutation.Subcategory(); exists {
				s.SetIgnore(studentcoverage.FieldSubcategory)
			}
			if _, exists := b.mutation.TypeOfQuestion(); exists {
				s.SetIgnore(studentcoverage.FieldTypeOfQuestion)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudentCoverage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudentCoverageUpsertBulk) Ignore() *StudentCoverageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentCoverageUpsertBulk) DoNothing() *StudentCoverageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentCoverageCreateBulk.OnConflict
// documentation for more info.
func (u *StudentCoverageUpsertBulk) Update(set func(*StudentCoverageUpsert)) *StudentCoverageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentCoverageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionsSeen sets the "sessions_seen" field.
func (u *StudentCoverageUpsertBulk) SetSessionsSeen(v int) *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.SetSessionsSeen(v)
	})
}

// AddSessionsSeen adds v to the "sessions_seen" field.
func (u *StudentCoverageUpsertBulk) AddSessionsSeen(v int) *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.AddSessionsSeen(v)
	})
}

// UpdateSessionsSeen sets the "sessions_seen" field to the value that was provided on create.
func (u *StudentCoverageUpsertBulk) UpdateSessionsSeen() *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.UpdateSessionsSeen()
	})
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (u *StudentCoverageUpsertBulk) SetFirstSeenSession(v int) *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.SetFirstSeenSession(v)
	})
}

// AddFirstSeenSession adds v to the "first_seen_session" field.
func (u *StudentCoverageUpsertBulk) AddFirstSeenSession(v int) *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.AddFirstSeenSession(v)
	})
}

// UpdateFirstSeenSession sets the "first_seen_session" field to the value that was provided on create.
func (u *StudentCoverageUpsertBulk) UpdateFirstSeenSession() *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.UpdateFirstSeenSession()
	})
}

// SetLastSeenSession sets the "last_seen_session" field.
func (u *StudentCoverageUpsertBulk) SetLastSeenSession(v int) *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.SetLastSeenSession(v)
	})
}

// AddLastSeenSession adds v to the "last_seen_session" field.
func (u *StudentCoverageUpsertBulk) AddLastSeenSession(v int) *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.AddLastSeenSession(v)
	})
}

// UpdateLastSeenSession sets the "last_seen_session" field to the value that was provided on create.
func (u *StudentCoverageUpsertBulk) UpdateLastSeenSession() *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.UpdateLastSeenSession()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentCoverageUpsertBulk) SetUpdatedAt(v time.Time) *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentCoverageUpsertBulk) UpdateUpdatedAt() *StudentCoverageUpsertBulk {
	return u.Update(func(s *StudentCoverageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudentCoverageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudentCoverageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudentCoverageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentCoverageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
