// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/ent/sessionquestion"
	"github.com/prepforge/quanta/ent/studysession"
)

// SessionQuestionCreate is the builder for creating a SessionQuestion entity.
type SessionQuestionCreate struct {
	config
	mutation *SessionQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *SessionQuestionCreate) SetSessionID(v string) *SessionQuestionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SessionQuestionCreate) SetQuestionID(v string) *SessionQuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *SessionQuestionCreate) SetPosition(v int) *SessionQuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetPlannedBand sets the "planned_band" field.
func (_c *SessionQuestionCreate) SetPlannedBand(v sessionquestion.PlannedBand) *SessionQuestionCreate {
	_c.mutation.SetPlannedBand(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *SessionQuestionCreate) SetSubcategory(v string) *SessionQuestionCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *SessionQuestionCreate) SetTypeOfQuestion(v string) *SessionQuestionCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetCoverageNew sets the "coverage_new" field.
func (_c *SessionQuestionCreate) SetCoverageNew(v bool) *SessionQuestionCreate {
	_c.mutation.SetCoverageNew(v)
	return _c
}

// SetNillableCoverageNew sets the "coverage_new" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableCoverageNew(v *bool) *SessionQuestionCreate {
	if v != nil {
		_c.SetCoverageNew(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionQuestionCreate) SetID(v string) *SessionQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the StudySession entity.
func (_c *SessionQuestionCreate) SetSession(v *StudySession) *SessionQuestionCreate {
	return _c.SetSessionID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *SessionQuestionCreate) SetQuestion(v *Question) *SessionQuestionCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the SessionQuestionMutation object of the builder.
func (_c *SessionQuestionCreate) Mutation() *SessionQuestionMutation {
	return _c.mutation
}

// Save creates the SessionQuestion in the database.
func (_c *SessionQuestionCreate) Save(ctx context.Context) (*SessionQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionQuestionCreate) SaveX(ctx context.Context) *SessionQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionQuestionCreate) defaults() {
	if _, ok := _c.mutation.CoverageNew(); !ok {
		v := sessionquestion.DefaultCoverageNew
		_c.mutation.SetCoverageNew(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionQuestionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionQuestion.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "SessionQuestion.question_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "SessionQuestion.position"`)}
	}
	if _, ok := _c.mutation.PlannedBand(); !ok {
		return &ValidationError{Name: "planned_band", err: errors.New(`ent: missing required field "SessionQuestion.planned_band"`)}
	}
	if v, ok := _c.mutation.PlannedBand(); ok {
		if err := sessionquestion.PlannedBandValidator(v); err != nil {
			return &ValidationError{Name: "planned_band", err: fmt.Errorf(`ent: validator failed for field "SessionQuestion.planned_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "SessionQuestion.subcategory"`)}
	}
	if _, ok := _c.mutation.TypeOfQuestion(); !ok {
		return &ValidationError{Name: "type_of_question", err: errors.New(`ent: missing required field "SessionQuestion.type_of_question"`)}
	}
	if _, ok := _c.mutation.CoverageNew(); !ok {
		return &ValidationError{Name: "coverage_new", err: errors.New(`ent: missing required field "SessionQuestion.coverage_new"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionQuestion.session"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "SessionQuestion.question"`)}
	}
	return nil
}

func (_c *SessionQuestionCreate) sqlSave(ctx context.Context) (*SessionQuestion, error) {
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
			return nil, fmt.Errorf("unexpected SessionQuestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionQuestionCreate) createSpec() (*SessionQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionquestion.Table, sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(sessionquestion.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.PlannedBand(); ok {
		_spec.SetField(sessionquestion.FieldPlannedBand, field.TypeEnum, value)
		_node.PlannedBand = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(sessionquestion.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(sessionquestion.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.CoverageNew(); ok {
		_spec.SetField(sessionquestion.FieldCoverageNew, field.TypeBool, value)
		_node.CoverageNew = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionquestion.SessionTable,
			Columns: []string{sessionquestion.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionquestion.QuestionTable,
			Columns: []string{sessionquestion.QuestionColumn},
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
//	client.SessionQuestion.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionQuestionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionQuestionCreate) OnConflict(opts ...sql.ConflictOption) *SessionQuestionUpsertOne {
	_c.conflict = opts
	return &SessionQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionQuestionCreate) OnConflictColumns(columns ...string) *SessionQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionQuestionUpsertOne{
		create: _c,
	}
}

type (
	// SessionQuestionUpsertOne is the builder for "upsert"-ing
	//  one SessionQuestion node.
	SessionQuestionUpsertOne struct {
		create *SessionQuestionCreate
	}

	// SessionQuestionUpsert is the "OnConflict" setter.
	SessionQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionQuestionUpsertOne) UpdateNewValues() *SessionQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionquestion.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(sessionquestion.FieldSessionID)
		}
		if _, exists := u.create.mutation.QuestionID(); exists {
			s.SetIgnore(sessionquestion.FieldQuestionID)
		}
		if _, exists := u.create.mutation.Position(); exists {
			s.SetIgnore(sessionquestion.FieldPosition)
		}
		if _, exists := u.create.mutation.PlannedBand(); exists {
			s.SetIgnore(sessionquestion.FieldPlannedBand)
		}
		if _, exists := u.create.mutation.Subcategory(); exists {
			s.SetIgnore(sessionquestion.FieldSubcategory)
		}
		if _, exists := u.create.mutation.TypeOfQuestion(); exists {
			s.SetIgnore(sessionquestion.FieldTypeOfQuestion)
		}
		if _, exists := u.create.mutation.CoverageNew(); exists {
			s.SetIgnore(sessionquestion.FieldCoverageNew)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionQuestionUpsertOne) Ignore() *SessionQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionQuestionUpsertOne) DoNothing() *SessionQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionQuestionCreate.OnConflict
// documentation for more info.
func (u *SessionQuestionUpsertOne) Update(set func(*SessionQuestionUpsert)) *SessionQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *SessionQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionQuestionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionQuestionUpsertOne.ID is not supported by MySQL driver. Use SessionQuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionQuestionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionQuestionCreateBulk is the builder for creating many SessionQuestion entities in bulk.
type SessionQuestionCreateBulk struct {
	config
	err      error
	builders []*SessionQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionQuestion entities in the database.
func (_c *SessionQuestionCreateBulk) Save(ctx context.Context) ([]*SessionQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionQuestionMutation)
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
func (_c *SessionQuestionCreateBulk) SaveX(ctx context.Context) []*SessionQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionQuestionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionQuestionUpsertBulk {
	_c.conflict = opts
	return &SessionQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionQuestionCreateBulk) OnConflictColumns(columns ...string) *SessionQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionQuestionUpsertBulk{
		create: _c,
	}
}

// SessionQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionQuestion nodes.
type SessionQuestionUpsertBulk struct {
	create *SessionQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionQuestionUpsertBulk) UpdateNewValues() *SessionQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionquestion.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(sessionquestion.FieldSessionID)
			}
			if _, exists := b.mutation.QuestionID(); exists {
				s.SetIgnore(sessionquestion.FieldQuestionID)
			}
			if _, exists := b.mutation.Position(); exists {
				s.SetIgnore(sessionquestion.FieldPosition)
			}
			if _, exists := b.mutation.PlannedBand(); exists {
				s.SetIgnore(sessionquestion.FieldPlannedBand)
			}
			if _, exists := b.mutation.Subcategory(); exists {
				s.SetIgnore(sessionquestion.FieldSubcategory)
			}
			if _, exists := b.mutation.TypeOfQuestion(); exists {
				s.SetIgnore(sessionquestion.FieldTypeOfQuestion)
			}
			if _, exists := b.mutation.CoverageNew(); exists {
				s.SetIgnore(sessionquestion.FieldCoverageNew)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionQuestionUpsertBulk) Ignore() *SessionQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionQuestionUpsertBulk) DoNothing() *SessionQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionQuestionUpsertBulk) Update(set func(*SessionQuestionUpsert)) *SessionQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *SessionQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
