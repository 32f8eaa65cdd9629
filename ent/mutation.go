// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/ent/attempt"
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/ent/mastery"
	"github.com/prepforge/quanta/ent/predicate"
	"github.com/prepforge/quanta/ent/pyqquestion"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/ent/sessionquestion"
	"github.com/prepforge/quanta/ent/studentcounter"
	"github.com/prepforge/quanta/ent/studentcoverage"
	"github.com/prepforge/quanta/ent/studysession"
	"github.com/prepforge/quanta/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt         = "Attempt"
	TypeEnrichmentAudit = "EnrichmentAudit"
	TypeMastery         = "Mastery"
	TypePYQQuestion     = "PYQQuestion"
	TypeQuestion        = "Question"
	TypeSessionQuestion = "SessionQuestion"
	TypeStudentCounter  = "StudentCounter"
	TypeStudentCoverage = "StudentCoverage"
	TypeStudySession    = "StudySession"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	student_id            *string
	correct               *bool
	time_taken_seconds    *float64
	addtime_taken_seconds *float64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	question              *string
	clearedquestion       bool
	session               *string
	clearedsession        bool
	done                  bool
	oldValue              func(context.Context) (*Attempt, error)
	predicates            []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id string) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attempt entities.
func (m *AttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *AttemptMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AttemptMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AttemptMutation) ResetStudentID() {
	m.student_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptMutation) SetQuestionID(s string) {
	m.question = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptMutation) QuestionID() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptMutation) ResetQuestionID() {
	m.question = nil
}

// SetSessionID sets the "session_id" field.
func (m *AttemptMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *AttemptMutation) ClearSessionID() {
	m.session = nil
	m.clearedFields[attempt.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *AttemptMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[attempt.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptMutation) ResetSessionID() {
	m.session = nil
	delete(m.clearedFields, attempt.FieldSessionID)
}

// SetCorrect sets the "correct" field.
func (m *AttemptMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptMutation) ResetCorrect() {
	m.correct = nil
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (m *AttemptMutation) SetTimeTakenSeconds(f float64) {
	m.time_taken_seconds = &f
	m.addtime_taken_seconds = nil
}

// TimeTakenSeconds returns the value of the "time_taken_seconds" field in the mutation.
func (m *AttemptMutation) TimeTakenSeconds() (r float64, exists bool) {
	v := m.time_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTakenSeconds returns the old "time_taken_seconds" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTimeTakenSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTakenSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTakenSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTakenSeconds: %w", err)
	}
	return oldValue.TimeTakenSeconds, nil
}

// AddTimeTakenSeconds adds f to the "time_taken_seconds" field.
func (m *AttemptMutation) AddTimeTakenSeconds(f float64) {
	if m.addtime_taken_seconds != nil {
		*m.addtime_taken_seconds += f
	} else {
		m.addtime_taken_seconds = &f
	}
}

// AddedTimeTakenSeconds returns the value that was added to the "time_taken_seconds" field in this mutation.
func (m *AttemptMutation) AddedTimeTakenSeconds() (r float64, exists bool) {
	v := m.addtime_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeTakenSeconds resets all changes to the "time_taken_seconds" field.
func (m *AttemptMutation) ResetTimeTakenSeconds() {
	m.time_taken_seconds = nil
	m.addtime_taken_seconds = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *AttemptMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[attempt.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *AttemptMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *AttemptMutation) QuestionIDs() (ids []string) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *AttemptMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *AttemptMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[attempt.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *AttemptMutation) SessionCleared() bool {
	return m.SessionIDCleared() || m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AttemptMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AttemptMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.student_id != nil {
		fields = append(fields, attempt.FieldStudentID)
	}
	if m.question != nil {
		fields = append(fields, attempt.FieldQuestionID)
	}
	if m.session != nil {
		fields = append(fields, attempt.FieldSessionID)
	}
	if m.correct != nil {
		fields = append(fields, attempt.FieldCorrect)
	}
	if m.time_taken_seconds != nil {
		fields = append(fields, attempt.FieldTimeTakenSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, attempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldStudentID:
		return m.StudentID()
	case attempt.FieldQuestionID:
		return m.QuestionID()
	case attempt.FieldSessionID:
		return m.SessionID()
	case attempt.FieldCorrect:
		return m.Correct()
	case attempt.FieldTimeTakenSeconds:
		return m.TimeTakenSeconds()
	case attempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldStudentID:
		return m.OldStudentID(ctx)
	case attempt.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attempt.FieldSessionID:
		return m.OldSessionID(ctx)
	case attempt.FieldCorrect:
		return m.OldCorrect(ctx)
	case attempt.FieldTimeTakenSeconds:
		return m.OldTimeTakenSeconds(ctx)
	case attempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case attempt.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attempt.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attempt.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attempt.FieldTimeTakenSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTakenSeconds(v)
		return nil
	case attempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addtime_taken_seconds != nil {
		fields = append(fields, attempt.FieldTimeTakenSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldTimeTakenSeconds:
		return m.AddedTimeTakenSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldTimeTakenSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeTakenSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldSessionID) {
		fields = append(fields, attempt.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldStudentID:
		m.ResetStudentID()
		return nil
	case attempt.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attempt.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attempt.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attempt.FieldTimeTakenSeconds:
		m.ResetTimeTakenSeconds()
		return nil
	case attempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.question != nil {
		edges = append(edges, attempt.EdgeQuestion)
	}
	if m.session != nil {
		edges = append(edges, attempt.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attempt.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	case attempt.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedquestion {
		edges = append(edges, attempt.EdgeQuestion)
	}
	if m.clearedsession {
		edges = append(edges, attempt.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case attempt.EdgeQuestion:
		return m.clearedquestion
	case attempt.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	switch name {
	case attempt.EdgeQuestion:
		m.ClearQuestion()
		return nil
	case attempt.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	switch name {
	case attempt.EdgeQuestion:
		m.ResetQuestion()
		return nil
	case attempt.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// EnrichmentAuditMutation represents an operation that mutates the EnrichmentAudit nodes in the graph.
type EnrichmentAuditMutation struct {
	config
	op               Op
	typ              string
	id               *string
	stage            *string
	provider         *string
	model_name       *string
	attempt          *int
	addattempt       *int
	rate_limited     *bool
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	duration_ms      *int
	addduration_ms   *int
	error_message    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	question         *string
	clearedquestion  bool
	done             bool
	oldValue         func(context.Context) (*EnrichmentAudit, error)
	predicates       []predicate.EnrichmentAudit
}

var _ ent.Mutation = (*EnrichmentAuditMutation)(nil)

// enrichmentauditOption allows management of the mutation configuration using functional options.
type enrichmentauditOption func(*EnrichmentAuditMutation)

// newEnrichmentAuditMutation creates new mutation for the EnrichmentAudit entity.
func newEnrichmentAuditMutation(c config, op Op, opts ...enrichmentauditOption) *EnrichmentAuditMutation {
	m := &EnrichmentAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrichmentAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrichmentAuditID sets the ID field of the mutation.
func withEnrichmentAuditID(id string) enrichmentauditOption {
	return func(m *EnrichmentAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *EnrichmentAudit
		)
		m.oldValue = func(ctx context.Context) (*EnrichmentAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnrichmentAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrichmentAudit sets the old EnrichmentAudit of the mutation.
func withEnrichmentAudit(node *EnrichmentAudit) enrichmentauditOption {
	return func(m *EnrichmentAuditMutation) {
		m.oldValue = func(context.Context) (*EnrichmentAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrichmentAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrichmentAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EnrichmentAudit entities.
func (m *EnrichmentAuditMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrichmentAuditMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrichmentAuditMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnrichmentAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionID sets the "question_id" field.
func (m *EnrichmentAuditMutation) SetQuestionID(s string) {
	m.question = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *EnrichmentAuditMutation) QuestionID() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *EnrichmentAuditMutation) ResetQuestionID() {
	m.question = nil
}

// SetStage sets the "stage" field.
func (m *EnrichmentAuditMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *EnrichmentAuditMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *EnrichmentAuditMutation) ResetStage() {
	m.stage = nil
}

// SetProvider sets the "provider" field.
func (m *EnrichmentAuditMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *EnrichmentAuditMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *EnrichmentAuditMutation) ResetProvider() {
	m.provider = nil
}

// SetModelName sets the "model_name" field.
func (m *EnrichmentAuditMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *EnrichmentAuditMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *EnrichmentAuditMutation) ResetModelName() {
	m.model_name = nil
}

// SetAttempt sets the "attempt" field.
func (m *EnrichmentAuditMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *EnrichmentAuditMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *EnrichmentAuditMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *EnrichmentAuditMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *EnrichmentAuditMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetRateLimited sets the "rate_limited" field.
func (m *EnrichmentAuditMutation) SetRateLimited(b bool) {
	m.rate_limited = &b
}

// RateLimited returns the value of the "rate_limited" field in the mutation.
func (m *EnrichmentAuditMutation) RateLimited() (r bool, exists bool) {
	v := m.rate_limited
	if v == nil {
		return
	}
	return *v, true
}

// OldRateLimited returns the old "rate_limited" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldRateLimited(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateLimited is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateLimited requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateLimited: %w", err)
	}
	return oldValue.RateLimited, nil
}

// ResetRateLimited resets all changes to the "rate_limited" field.
func (m *EnrichmentAuditMutation) ResetRateLimited() {
	m.rate_limited = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *EnrichmentAuditMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *EnrichmentAuditMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *EnrichmentAuditMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *EnrichmentAuditMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *EnrichmentAuditMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[enrichmentaudit.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *EnrichmentAuditMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[enrichmentaudit.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *EnrichmentAuditMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, enrichmentaudit.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *EnrichmentAuditMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *EnrichmentAuditMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *EnrichmentAuditMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *EnrichmentAuditMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *EnrichmentAuditMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[enrichmentaudit.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *EnrichmentAuditMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[enrichmentaudit.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *EnrichmentAuditMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, enrichmentaudit.FieldOutputTokens)
}

// SetDurationMs sets the "duration_ms" field.
func (m *EnrichmentAuditMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *EnrichmentAuditMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *EnrichmentAuditMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *EnrichmentAuditMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *EnrichmentAuditMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[enrichmentaudit.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *EnrichmentAuditMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[enrichmentaudit.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *EnrichmentAuditMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, enrichmentaudit.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *EnrichmentAuditMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *EnrichmentAuditMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *EnrichmentAuditMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[enrichmentaudit.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *EnrichmentAuditMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[enrichmentaudit.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *EnrichmentAuditMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, enrichmentaudit.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *EnrichmentAuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnrichmentAuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EnrichmentAudit entity.
// If the EnrichmentAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichmentAuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnrichmentAuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *EnrichmentAuditMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[enrichmentaudit.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *EnrichmentAuditMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *EnrichmentAuditMutation) QuestionIDs() (ids []string) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *EnrichmentAuditMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the EnrichmentAuditMutation builder.
func (m *EnrichmentAuditMutation) Where(ps ...predicate.EnrichmentAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrichmentAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrichmentAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnrichmentAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrichmentAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrichmentAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnrichmentAudit).
func (m *EnrichmentAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrichmentAuditMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.question != nil {
		fields = append(fields, enrichmentaudit.FieldQuestionID)
	}
	if m.stage != nil {
		fields = append(fields, enrichmentaudit.FieldStage)
	}
	if m.provider != nil {
		fields = append(fields, enrichmentaudit.FieldProvider)
	}
	if m.model_name != nil {
		fields = append(fields, enrichmentaudit.FieldModelName)
	}
	if m.attempt != nil {
		fields = append(fields, enrichmentaudit.FieldAttempt)
	}
	if m.rate_limited != nil {
		fields = append(fields, enrichmentaudit.FieldRateLimited)
	}
	if m.input_tokens != nil {
		fields = append(fields, enrichmentaudit.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, enrichmentaudit.FieldOutputTokens)
	}
	if m.duration_ms != nil {
		fields = append(fields, enrichmentaudit.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, enrichmentaudit.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, enrichmentaudit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrichmentAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrichmentaudit.FieldQuestionID:
		return m.QuestionID()
	case enrichmentaudit.FieldStage:
		return m.Stage()
	case enrichmentaudit.FieldProvider:
		return m.Provider()
	case enrichmentaudit.FieldModelName:
		return m.ModelName()
	case enrichmentaudit.FieldAttempt:
		return m.Attempt()
	case enrichmentaudit.FieldRateLimited:
		return m.RateLimited()
	case enrichmentaudit.FieldInputTokens:
		return m.InputTokens()
	case enrichmentaudit.FieldOutputTokens:
		return m.OutputTokens()
	case enrichmentaudit.FieldDurationMs:
		return m.DurationMs()
	case enrichmentaudit.FieldErrorMessage:
		return m.ErrorMessage()
	case enrichmentaudit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrichmentAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrichmentaudit.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case enrichmentaudit.FieldStage:
		return m.OldStage(ctx)
	case enrichmentaudit.FieldProvider:
		return m.OldProvider(ctx)
	case enrichmentaudit.FieldModelName:
		return m.OldModelName(ctx)
	case enrichmentaudit.FieldAttempt:
		return m.OldAttempt(ctx)
	case enrichmentaudit.FieldRateLimited:
		return m.OldRateLimited(ctx)
	case enrichmentaudit.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case enrichmentaudit.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case enrichmentaudit.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case enrichmentaudit.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case enrichmentaudit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EnrichmentAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrichmentAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrichmentaudit.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case enrichmentaudit.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case enrichmentaudit.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case enrichmentaudit.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case enrichmentaudit.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case enrichmentaudit.FieldRateLimited:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateLimited(v)
		return nil
	case enrichmentaudit.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case enrichmentaudit.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case enrichmentaudit.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case enrichmentaudit.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case enrichmentaudit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EnrichmentAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrichmentAuditMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, enrichmentaudit.FieldAttempt)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, enrichmentaudit.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, enrichmentaudit.FieldOutputTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, enrichmentaudit.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrichmentAuditMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enrichmentaudit.FieldAttempt:
		return m.AddedAttempt()
	case enrichmentaudit.FieldInputTokens:
		return m.AddedInputTokens()
	case enrichmentaudit.FieldOutputTokens:
		return m.AddedOutputTokens()
	case enrichmentaudit.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrichmentAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enrichmentaudit.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case enrichmentaudit.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case enrichmentaudit.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case enrichmentaudit.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown EnrichmentAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrichmentAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(enrichmentaudit.FieldInputTokens) {
		fields = append(fields, enrichmentaudit.FieldInputTokens)
	}
	if m.FieldCleared(enrichmentaudit.FieldOutputTokens) {
		fields = append(fields, enrichmentaudit.FieldOutputTokens)
	}
	if m.FieldCleared(enrichmentaudit.FieldDurationMs) {
		fields = append(fields, enrichmentaudit.FieldDurationMs)
	}
	if m.FieldCleared(enrichmentaudit.FieldErrorMessage) {
		fields = append(fields, enrichmentaudit.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrichmentAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrichmentAuditMutation) ClearField(name string) error {
	switch name {
	case enrichmentaudit.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case enrichmentaudit.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case enrichmentaudit.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case enrichmentaudit.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown EnrichmentAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrichmentAuditMutation) ResetField(name string) error {
	switch name {
	case enrichmentaudit.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case enrichmentaudit.FieldStage:
		m.ResetStage()
		return nil
	case enrichmentaudit.FieldProvider:
		m.ResetProvider()
		return nil
	case enrichmentaudit.FieldModelName:
		m.ResetModelName()
		return nil
	case enrichmentaudit.FieldAttempt:
		m.ResetAttempt()
		return nil
	case enrichmentaudit.FieldRateLimited:
		m.ResetRateLimited()
		return nil
	case enrichmentaudit.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case enrichmentaudit.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case enrichmentaudit.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case enrichmentaudit.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case enrichmentaudit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EnrichmentAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrichmentAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.question != nil {
		edges = append(edges, enrichmentaudit.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrichmentAuditMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case enrichmentaudit.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrichmentAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrichmentAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrichmentAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestion {
		edges = append(edges, enrichmentaudit.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrichmentAuditMutation) EdgeCleared(name string) bool {
	switch name {
	case enrichmentaudit.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrichmentAuditMutation) ClearEdge(name string) error {
	switch name {
	case enrichmentaudit.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown EnrichmentAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrichmentAuditMutation) ResetEdge(name string) error {
	switch name {
	case enrichmentaudit.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown EnrichmentAudit edge %s", name)
}

// MasteryMutation represents an operation that mutates the Mastery nodes in the graph.
type MasteryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	student_id          *string
	subcategory         *string
	type_of_question    *string
	acc_easy            *float64
	addacc_easy         *float64
	acc_medium          *float64
	addacc_medium       *float64
	acc_hard            *float64
	addacc_hard         *float64
	efficiency_score    *float64
	addefficiency_score *float64
	exposure_count      *int
	addexposure_count   *int
	mastery_pct         *float64
	addmastery_pct      *float64
	last_activity_at    *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Mastery, error)
	predicates          []predicate.Mastery
}

var _ ent.Mutation = (*MasteryMutation)(nil)

// masteryOption allows management of the mutation configuration using functional options.
type masteryOption func(*MasteryMutation)

// newMasteryMutation creates new mutation for the Mastery entity.
func newMasteryMutation(c config, op Op, opts ...masteryOption) *MasteryMutation {
	m := &MasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryID sets the ID field of the mutation.
func withMasteryID(id string) masteryOption {
	return func(m *MasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *Mastery
		)
		m.oldValue = func(ctx context.Context) (*Mastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMastery sets the old Mastery of the mutation.
func withMastery(node *Mastery) masteryOption {
	return func(m *MasteryMutation) {
		m.oldValue = func(context.Context) (*Mastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mastery entities.
func (m *MasteryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *MasteryMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *MasteryMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *MasteryMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *MasteryMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *MasteryMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *MasteryMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *MasteryMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *MasteryMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *MasteryMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
}

// SetAccEasy sets the "acc_easy" field.
func (m *MasteryMutation) SetAccEasy(f float64) {
	m.acc_easy = &f
	m.addacc_easy = nil
}

// AccEasy returns the value of the "acc_easy" field in the mutation.
func (m *MasteryMutation) AccEasy() (r float64, exists bool) {
	v := m.acc_easy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccEasy returns the old "acc_easy" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldAccEasy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccEasy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccEasy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccEasy: %w", err)
	}
	return oldValue.AccEasy, nil
}

// AddAccEasy adds f to the "acc_easy" field.
func (m *MasteryMutation) AddAccEasy(f float64) {
	if m.addacc_easy != nil {
		*m.addacc_easy += f
	} else {
		m.addacc_easy = &f
	}
}

// AddedAccEasy returns the value that was added to the "acc_easy" field in this mutation.
func (m *MasteryMutation) AddedAccEasy() (r float64, exists bool) {
	v := m.addacc_easy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccEasy resets all changes to the "acc_easy" field.
func (m *MasteryMutation) ResetAccEasy() {
	m.acc_easy = nil
	m.addacc_easy = nil
}

// SetAccMedium sets the "acc_medium" field.
func (m *MasteryMutation) SetAccMedium(f float64) {
	m.acc_medium = &f
	m.addacc_medium = nil
}

// AccMedium returns the value of the "acc_medium" field in the mutation.
func (m *MasteryMutation) AccMedium() (r float64, exists bool) {
	v := m.acc_medium
	if v == nil {
		return
	}
	return *v, true
}

// OldAccMedium returns the old "acc_medium" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldAccMedium(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccMedium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccMedium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccMedium: %w", err)
	}
	return oldValue.AccMedium, nil
}

// AddAccMedium adds f to the "acc_medium" field.
func (m *MasteryMutation) AddAccMedium(f float64) {
	if m.addacc_medium != nil {
		*m.addacc_medium += f
	} else {
		m.addacc_medium = &f
	}
}

// AddedAccMedium returns the value that was added to the "acc_medium" field in this mutation.
func (m *MasteryMutation) AddedAccMedium() (r float64, exists bool) {
	v := m.addacc_medium
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccMedium resets all changes to the "acc_medium" field.
func (m *MasteryMutation) ResetAccMedium() {
	m.acc_medium = nil
	m.addacc_medium = nil
}

// SetAccHard sets the "acc_hard" field.
func (m *MasteryMutation) SetAccHard(f float64) {
	m.acc_hard = &f
	m.addacc_hard = nil
}

// AccHard returns the value of the "acc_hard" field in the mutation.
func (m *MasteryMutation) AccHard() (r float64, exists bool) {
	v := m.acc_hard
	if v == nil {
		return
	}
	return *v, true
}

// OldAccHard returns the old "acc_hard" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldAccHard(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccHard is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccHard requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccHard: %w", err)
	}
	return oldValue.AccHard, nil
}

// AddAccHard adds f to the "acc_hard" field.
func (m *MasteryMutation) AddAccHard(f float64) {
	if m.addacc_hard != nil {
		*m.addacc_hard += f
	} else {
		m.addacc_hard = &f
	}
}

// AddedAccHard returns the value that was added to the "acc_hard" field in this mutation.
func (m *MasteryMutation) AddedAccHard() (r float64, exists bool) {
	v := m.addacc_hard
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccHard resets all changes to the "acc_hard" field.
func (m *MasteryMutation) ResetAccHard() {
	m.acc_hard = nil
	m.addacc_hard = nil
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (m *MasteryMutation) SetEfficiencyScore(f float64) {
	m.efficiency_score = &f
	m.addefficiency_score = nil
}

// EfficiencyScore returns the value of the "efficiency_score" field in the mutation.
func (m *MasteryMutation) EfficiencyScore() (r float64, exists bool) {
	v := m.efficiency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEfficiencyScore returns the old "efficiency_score" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldEfficiencyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEfficiencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEfficiencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEfficiencyScore: %w", err)
	}
	return oldValue.EfficiencyScore, nil
}

// AddEfficiencyScore adds f to the "efficiency_score" field.
func (m *MasteryMutation) AddEfficiencyScore(f float64) {
	if m.addefficiency_score != nil {
		*m.addefficiency_score += f
	} else {
		m.addefficiency_score = &f
	}
}

// AddedEfficiencyScore returns the value that was added to the "efficiency_score" field in this mutation.
func (m *MasteryMutation) AddedEfficiencyScore() (r float64, exists bool) {
	v := m.addefficiency_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEfficiencyScore resets all changes to the "efficiency_score" field.
func (m *MasteryMutation) ResetEfficiencyScore() {
	m.efficiency_score = nil
	m.addefficiency_score = nil
}

// SetExposureCount sets the "exposure_count" field.
func (m *MasteryMutation) SetExposureCount(i int) {
	m.exposure_count = &i
	m.addexposure_count = nil
}

// ExposureCount returns the value of the "exposure_count" field in the mutation.
func (m *MasteryMutation) ExposureCount() (r int, exists bool) {
	v := m.exposure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExposureCount returns the old "exposure_count" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldExposureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExposureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExposureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExposureCount: %w", err)
	}
	return oldValue.ExposureCount, nil
}

// AddExposureCount adds i to the "exposure_count" field.
func (m *MasteryMutation) AddExposureCount(i int) {
	if m.addexposure_count != nil {
		*m.addexposure_count += i
	} else {
		m.addexposure_count = &i
	}
}

// AddedExposureCount returns the value that was added to the "exposure_count" field in this mutation.
func (m *MasteryMutation) AddedExposureCount() (r int, exists bool) {
	v := m.addexposure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExposureCount resets all changes to the "exposure_count" field.
func (m *MasteryMutation) ResetExposureCount() {
	m.exposure_count = nil
	m.addexposure_count = nil
}

// SetMasteryPct sets the "mastery_pct" field.
func (m *MasteryMutation) SetMasteryPct(f float64) {
	m.mastery_pct = &f
	m.addmastery_pct = nil
}

// MasteryPct returns the value of the "mastery_pct" field in the mutation.
func (m *MasteryMutation) MasteryPct() (r float64, exists bool) {
	v := m.mastery_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryPct returns the old "mastery_pct" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldMasteryPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryPct: %w", err)
	}
	return oldValue.MasteryPct, nil
}

// AddMasteryPct adds f to the "mastery_pct" field.
func (m *MasteryMutation) AddMasteryPct(f float64) {
	if m.addmastery_pct != nil {
		*m.addmastery_pct += f
	} else {
		m.addmastery_pct = &f
	}
}

// AddedMasteryPct returns the value that was added to the "mastery_pct" field in this mutation.
func (m *MasteryMutation) AddedMasteryPct() (r float64, exists bool) {
	v := m.addmastery_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryPct resets all changes to the "mastery_pct" field.
func (m *MasteryMutation) ResetMasteryPct() {
	m.mastery_pct = nil
	m.addmastery_pct = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *MasteryMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *MasteryMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *MasteryMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[mastery.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *MasteryMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[mastery.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *MasteryMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, mastery.FieldLastActivityAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MasteryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MasteryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Mastery entity.
// If the Mastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MasteryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MasteryMutation builder.
func (m *MasteryMutation) Where(ps ...predicate.Mastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mastery).
func (m *MasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.student_id != nil {
		fields = append(fields, mastery.FieldStudentID)
	}
	if m.subcategory != nil {
		fields = append(fields, mastery.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, mastery.FieldTypeOfQuestion)
	}
	if m.acc_easy != nil {
		fields = append(fields, mastery.FieldAccEasy)
	}
	if m.acc_medium != nil {
		fields = append(fields, mastery.FieldAccMedium)
	}
	if m.acc_hard != nil {
		fields = append(fields, mastery.FieldAccHard)
	}
	if m.efficiency_score != nil {
		fields = append(fields, mastery.FieldEfficiencyScore)
	}
	if m.exposure_count != nil {
		fields = append(fields, mastery.FieldExposureCount)
	}
	if m.mastery_pct != nil {
		fields = append(fields, mastery.FieldMasteryPct)
	}
	if m.last_activity_at != nil {
		fields = append(fields, mastery.FieldLastActivityAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mastery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mastery.FieldStudentID:
		return m.StudentID()
	case mastery.FieldSubcategory:
		return m.Subcategory()
	case mastery.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case mastery.FieldAccEasy:
		return m.AccEasy()
	case mastery.FieldAccMedium:
		return m.AccMedium()
	case mastery.FieldAccHard:
		return m.AccHard()
	case mastery.FieldEfficiencyScore:
		return m.EfficiencyScore()
	case mastery.FieldExposureCount:
		return m.ExposureCount()
	case mastery.FieldMasteryPct:
		return m.MasteryPct()
	case mastery.FieldLastActivityAt:
		return m.LastActivityAt()
	case mastery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mastery.FieldStudentID:
		return m.OldStudentID(ctx)
	case mastery.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case mastery.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case mastery.FieldAccEasy:
		return m.OldAccEasy(ctx)
	case mastery.FieldAccMedium:
		return m.OldAccMedium(ctx)
	case mastery.FieldAccHard:
		return m.OldAccHard(ctx)
	case mastery.FieldEfficiencyScore:
		return m.OldEfficiencyScore(ctx)
	case mastery.FieldExposureCount:
		return m.OldExposureCount(ctx)
	case mastery.FieldMasteryPct:
		return m.OldMasteryPct(ctx)
	case mastery.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case mastery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mastery.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case mastery.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case mastery.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case mastery.FieldAccEasy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccEasy(v)
		return nil
	case mastery.FieldAccMedium:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccMedium(v)
		return nil
	case mastery.FieldAccHard:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccHard(v)
		return nil
	case mastery.FieldEfficiencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEfficiencyScore(v)
		return nil
	case mastery.FieldExposureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExposureCount(v)
		return nil
	case mastery.FieldMasteryPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryPct(v)
		return nil
	case mastery.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case mastery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryMutation) AddedFields() []string {
	var fields []string
	if m.addacc_easy != nil {
		fields = append(fields, mastery.FieldAccEasy)
	}
	if m.addacc_medium != nil {
		fields = append(fields, mastery.FieldAccMedium)
	}
	if m.addacc_hard != nil {
		fields = append(fields, mastery.FieldAccHard)
	}
	if m.addefficiency_score != nil {
		fields = append(fields, mastery.FieldEfficiencyScore)
	}
	if m.addexposure_count != nil {
		fields = append(fields, mastery.FieldExposureCount)
	}
	if m.addmastery_pct != nil {
		fields = append(fields, mastery.FieldMasteryPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mastery.FieldAccEasy:
		return m.AddedAccEasy()
	case mastery.FieldAccMedium:
		return m.AddedAccMedium()
	case mastery.FieldAccHard:
		return m.AddedAccHard()
	case mastery.FieldEfficiencyScore:
		return m.AddedEfficiencyScore()
	case mastery.FieldExposureCount:
		return m.AddedExposureCount()
	case mastery.FieldMasteryPct:
		return m.AddedMasteryPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mastery.FieldAccEasy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccEasy(v)
		return nil
	case mastery.FieldAccMedium:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccMedium(v)
		return nil
	case mastery.FieldAccHard:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccHard(v)
		return nil
	case mastery.FieldEfficiencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEfficiencyScore(v)
		return nil
	case mastery.FieldExposureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExposureCount(v)
		return nil
	case mastery.FieldMasteryPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryPct(v)
		return nil
	}
	return fmt.Errorf("unknown Mastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mastery.FieldLastActivityAt) {
		fields = append(fields, mastery.FieldLastActivityAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryMutation) ClearField(name string) error {
	switch name {
	case mastery.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Mastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryMutation) ResetField(name string) error {
	switch name {
	case mastery.FieldStudentID:
		m.ResetStudentID()
		return nil
	case mastery.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case mastery.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case mastery.FieldAccEasy:
		m.ResetAccEasy()
		return nil
	case mastery.FieldAccMedium:
		m.ResetAccMedium()
		return nil
	case mastery.FieldAccHard:
		m.ResetAccHard()
		return nil
	case mastery.FieldEfficiencyScore:
		m.ResetEfficiencyScore()
		return nil
	case mastery.FieldExposureCount:
		m.ResetExposureCount()
		return nil
	case mastery.FieldMasteryPct:
		m.ResetMasteryPct()
		return nil
	case mastery.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case mastery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Mastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Mastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Mastery edge %s", name)
}

// PYQQuestionMutation represents an operation that mutates the PYQQuestion nodes in the graph.
type PYQQuestionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	stem                   *string
	category               *string
	subcategory            *string
	type_of_question       *string
	difficulty_band        *pyqquestion.DifficultyBand
	problem_structure      *string
	concept_keywords       *[]string
	appendconcept_keywords []string
	year                   *int
	addyear                *int
	slot                   *string
	is_active              *bool
	quality_verified       *bool
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PYQQuestion, error)
	predicates             []predicate.PYQQuestion
}

var _ ent.Mutation = (*PYQQuestionMutation)(nil)

// pyqquestionOption allows management of the mutation configuration using functional options.
type pyqquestionOption func(*PYQQuestionMutation)

// newPYQQuestionMutation creates new mutation for the PYQQuestion entity.
func newPYQQuestionMutation(c config, op Op, opts ...pyqquestionOption) *PYQQuestionMutation {
	m := &PYQQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypePYQQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPYQQuestionID sets the ID field of the mutation.
func withPYQQuestionID(id string) pyqquestionOption {
	return func(m *PYQQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *PYQQuestion
		)
		m.oldValue = func(ctx context.Context) (*PYQQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PYQQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPYQQuestion sets the old PYQQuestion of the mutation.
func withPYQQuestion(node *PYQQuestion) pyqquestionOption {
	return func(m *PYQQuestionMutation) {
		m.oldValue = func(context.Context) (*PYQQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PYQQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PYQQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PYQQuestion entities.
func (m *PYQQuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PYQQuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PYQQuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PYQQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStem sets the "stem" field.
func (m *PYQQuestionMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *PYQQuestionMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *PYQQuestionMutation) ResetStem() {
	m.stem = nil
}

// SetCategory sets the "category" field.
func (m *PYQQuestionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *PYQQuestionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *PYQQuestionMutation) ResetCategory() {
	m.category = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *PYQQuestionMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *PYQQuestionMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *PYQQuestionMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *PYQQuestionMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *PYQQuestionMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *PYQQuestionMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
}

// SetDifficultyBand sets the "difficulty_band" field.
func (m *PYQQuestionMutation) SetDifficultyBand(pb pyqquestion.DifficultyBand) {
	m.difficulty_band = &pb
}

// DifficultyBand returns the value of the "difficulty_band" field in the mutation.
func (m *PYQQuestionMutation) DifficultyBand() (r pyqquestion.DifficultyBand, exists bool) {
	v := m.difficulty_band
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyBand returns the old "difficulty_band" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldDifficultyBand(ctx context.Context) (v pyqquestion.DifficultyBand, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyBand: %w", err)
	}
	return oldValue.DifficultyBand, nil
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (m *PYQQuestionMutation) ClearDifficultyBand() {
	m.difficulty_band = nil
	m.clearedFields[pyqquestion.FieldDifficultyBand] = struct{}{}
}

// DifficultyBandCleared returns if the "difficulty_band" field was cleared in this mutation.
func (m *PYQQuestionMutation) DifficultyBandCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldDifficultyBand]
	return ok
}

// ResetDifficultyBand resets all changes to the "difficulty_band" field.
func (m *PYQQuestionMutation) ResetDifficultyBand() {
	m.difficulty_band = nil
	delete(m.clearedFields, pyqquestion.FieldDifficultyBand)
}

// SetProblemStructure sets the "problem_structure" field.
func (m *PYQQuestionMutation) SetProblemStructure(s string) {
	m.problem_structure = &s
}

// ProblemStructure returns the value of the "problem_structure" field in the mutation.
func (m *PYQQuestionMutation) ProblemStructure() (r string, exists bool) {
	v := m.problem_structure
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemStructure returns the old "problem_structure" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldProblemStructure(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemStructure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemStructure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemStructure: %w", err)
	}
	return oldValue.ProblemStructure, nil
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (m *PYQQuestionMutation) ClearProblemStructure() {
	m.problem_structure = nil
	m.clearedFields[pyqquestion.FieldProblemStructure] = struct{}{}
}

// ProblemStructureCleared returns if the "problem_structure" field was cleared in this mutation.
func (m *PYQQuestionMutation) ProblemStructureCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldProblemStructure]
	return ok
}

// ResetProblemStructure resets all changes to the "problem_structure" field.
func (m *PYQQuestionMutation) ResetProblemStructure() {
	m.problem_structure = nil
	delete(m.clearedFields, pyqquestion.FieldProblemStructure)
}

// SetConceptKeywords sets the "concept_keywords" field.
func (m *PYQQuestionMutation) SetConceptKeywords(s []string) {
	m.concept_keywords = &s
	m.appendconcept_keywords = nil
}

// ConceptKeywords returns the value of the "concept_keywords" field in the mutation.
func (m *PYQQuestionMutation) ConceptKeywords() (r []string, exists bool) {
	v := m.concept_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptKeywords returns the old "concept_keywords" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldConceptKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptKeywords: %w", err)
	}
	return oldValue.ConceptKeywords, nil
}

// AppendConceptKeywords adds s to the "concept_keywords" field.
func (m *PYQQuestionMutation) AppendConceptKeywords(s []string) {
	m.appendconcept_keywords = append(m.appendconcept_keywords, s...)
}

// AppendedConceptKeywords returns the list of values that were appended to the "concept_keywords" field in this mutation.
func (m *PYQQuestionMutation) AppendedConceptKeywords() ([]string, bool) {
	if len(m.appendconcept_keywords) == 0 {
		return nil, false
	}
	return m.appendconcept_keywords, true
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (m *PYQQuestionMutation) ClearConceptKeywords() {
	m.concept_keywords = nil
	m.appendconcept_keywords = nil
	m.clearedFields[pyqquestion.FieldConceptKeywords] = struct{}{}
}

// ConceptKeywordsCleared returns if the "concept_keywords" field was cleared in this mutation.
func (m *PYQQuestionMutation) ConceptKeywordsCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldConceptKeywords]
	return ok
}

// ResetConceptKeywords resets all changes to the "concept_keywords" field.
func (m *PYQQuestionMutation) ResetConceptKeywords() {
	m.concept_keywords = nil
	m.appendconcept_keywords = nil
	delete(m.clearedFields, pyqquestion.FieldConceptKeywords)
}

// SetYear sets the "year" field.
func (m *PYQQuestionMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *PYQQuestionMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *PYQQuestionMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *PYQQuestionMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ClearYear clears the value of the "year" field.
func (m *PYQQuestionMutation) ClearYear() {
	m.year = nil
	m.addyear = nil
	m.clearedFields[pyqquestion.FieldYear] = struct{}{}
}

// YearCleared returns if the "year" field was cleared in this mutation.
func (m *PYQQuestionMutation) YearCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldYear]
	return ok
}

// ResetYear resets all changes to the "year" field.
func (m *PYQQuestionMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
	delete(m.clearedFields, pyqquestion.FieldYear)
}

// SetSlot sets the "slot" field.
func (m *PYQQuestionMutation) SetSlot(s string) {
	m.slot = &s
}

// Slot returns the value of the "slot" field in the mutation.
func (m *PYQQuestionMutation) Slot() (r string, exists bool) {
	v := m.slot
	if v == nil {
		return
	}
	return *v, true
}

// OldSlot returns the old "slot" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldSlot(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlot: %w", err)
	}
	return oldValue.Slot, nil
}

// ClearSlot clears the value of the "slot" field.
func (m *PYQQuestionMutation) ClearSlot() {
	m.slot = nil
	m.clearedFields[pyqquestion.FieldSlot] = struct{}{}
}

// SlotCleared returns if the "slot" field was cleared in this mutation.
func (m *PYQQuestionMutation) SlotCleared() bool {
	_, ok := m.clearedFields[pyqquestion.FieldSlot]
	return ok
}

// ResetSlot resets all changes to the "slot" field.
func (m *PYQQuestionMutation) ResetSlot() {
	m.slot = nil
	delete(m.clearedFields, pyqquestion.FieldSlot)
}

// SetIsActive sets the "is_active" field.
func (m *PYQQuestionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PYQQuestionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PYQQuestionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetQualityVerified sets the "quality_verified" field.
func (m *PYQQuestionMutation) SetQualityVerified(b bool) {
	m.quality_verified = &b
}

// QualityVerified returns the value of the "quality_verified" field in the mutation.
func (m *PYQQuestionMutation) QualityVerified() (r bool, exists bool) {
	v := m.quality_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityVerified returns the old "quality_verified" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldQualityVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityVerified: %w", err)
	}
	return oldValue.QualityVerified, nil
}

// ResetQualityVerified resets all changes to the "quality_verified" field.
func (m *PYQQuestionMutation) ResetQualityVerified() {
	m.quality_verified = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PYQQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PYQQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PYQQuestion entity.
// If the PYQQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PYQQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PYQQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PYQQuestionMutation builder.
func (m *PYQQuestionMutation) Where(ps ...predicate.PYQQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PYQQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PYQQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PYQQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PYQQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PYQQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PYQQuestion).
func (m *PYQQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PYQQuestionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.stem != nil {
		fields = append(fields, pyqquestion.FieldStem)
	}
	if m.category != nil {
		fields = append(fields, pyqquestion.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, pyqquestion.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, pyqquestion.FieldTypeOfQuestion)
	}
	if m.difficulty_band != nil {
		fields = append(fields, pyqquestion.FieldDifficultyBand)
	}
	if m.problem_structure != nil {
		fields = append(fields, pyqquestion.FieldProblemStructure)
	}
	if m.concept_keywords != nil {
		fields = append(fields, pyqquestion.FieldConceptKeywords)
	}
	if m.year != nil {
		fields = append(fields, pyqquestion.FieldYear)
	}
	if m.slot != nil {
		fields = append(fields, pyqquestion.FieldSlot)
	}
	if m.is_active != nil {
		fields = append(fields, pyqquestion.FieldIsActive)
	}
	if m.quality_verified != nil {
		fields = append(fields, pyqquestion.FieldQualityVerified)
	}
	if m.created_at != nil {
		fields = append(fields, pyqquestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PYQQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pyqquestion.FieldStem:
		return m.Stem()
	case pyqquestion.FieldCategory:
		return m.Category()
	case pyqquestion.FieldSubcategory:
		return m.Subcategory()
	case pyqquestion.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case pyqquestion.FieldDifficultyBand:
		return m.DifficultyBand()
	case pyqquestion.FieldProblemStructure:
		return m.ProblemStructure()
	case pyqquestion.FieldConceptKeywords:
		return m.ConceptKeywords()
	case pyqquestion.FieldYear:
		return m.Year()
	case pyqquestion.FieldSlot:
		return m.Slot()
	case pyqquestion.FieldIsActive:
		return m.IsActive()
	case pyqquestion.FieldQualityVerified:
		return m.QualityVerified()
	case pyqquestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PYQQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pyqquestion.FieldStem:
		return m.OldStem(ctx)
	case pyqquestion.FieldCategory:
		return m.OldCategory(ctx)
	case pyqquestion.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case pyqquestion.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case pyqquestion.FieldDifficultyBand:
		return m.OldDifficultyBand(ctx)
	case pyqquestion.FieldProblemStructure:
		return m.OldProblemStructure(ctx)
	case pyqquestion.FieldConceptKeywords:
		return m.OldConceptKeywords(ctx)
	case pyqquestion.FieldYear:
		return m.OldYear(ctx)
	case pyqquestion.FieldSlot:
		return m.OldSlot(ctx)
	case pyqquestion.FieldIsActive:
		return m.OldIsActive(ctx)
	case pyqquestion.FieldQualityVerified:
		return m.OldQualityVerified(ctx)
	case pyqquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PYQQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PYQQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pyqquestion.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case pyqquestion.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case pyqquestion.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case pyqquestion.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case pyqquestion.FieldDifficultyBand:
		v, ok := value.(pyqquestion.DifficultyBand)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyBand(v)
		return nil
	case pyqquestion.FieldProblemStructure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemStructure(v)
		return nil
	case pyqquestion.FieldConceptKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptKeywords(v)
		return nil
	case pyqquestion.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case pyqquestion.FieldSlot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlot(v)
		return nil
	case pyqquestion.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case pyqquestion.FieldQualityVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityVerified(v)
		return nil
	case pyqquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PYQQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PYQQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, pyqquestion.FieldYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PYQQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pyqquestion.FieldYear:
		return m.AddedYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PYQQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pyqquestion.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	}
	return fmt.Errorf("unknown PYQQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PYQQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pyqquestion.FieldDifficultyBand) {
		fields = append(fields, pyqquestion.FieldDifficultyBand)
	}
	if m.FieldCleared(pyqquestion.FieldProblemStructure) {
		fields = append(fields, pyqquestion.FieldProblemStructure)
	}
	if m.FieldCleared(pyqquestion.FieldConceptKeywords) {
		fields = append(fields, pyqquestion.FieldConceptKeywords)
	}
	if m.FieldCleared(pyqquestion.FieldYear) {
		fields = append(fields, pyqquestion.FieldYear)
	}
	if m.FieldCleared(pyqquestion.FieldSlot) {
		fields = append(fields, pyqquestion.FieldSlot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PYQQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PYQQuestionMutation) ClearField(name string) error {
	switch name {
	case pyqquestion.FieldDifficultyBand:
		m.ClearDifficultyBand()
		return nil
	case pyqquestion.FieldProblemStructure:
		m.ClearProblemStructure()
		return nil
	case pyqquestion.FieldConceptKeywords:
		m.ClearConceptKeywords()
		return nil
	case pyqquestion.FieldYear:
		m.ClearYear()
		return nil
	case pyqquestion.FieldSlot:
		m.ClearSlot()
		return nil
	}
	return fmt.Errorf("unknown PYQQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PYQQuestionMutation) ResetField(name string) error {
	switch name {
	case pyqquestion.FieldStem:
		m.ResetStem()
		return nil
	case pyqquestion.FieldCategory:
		m.ResetCategory()
		return nil
	case pyqquestion.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case pyqquestion.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case pyqquestion.FieldDifficultyBand:
		m.ResetDifficultyBand()
		return nil
	case pyqquestion.FieldProblemStructure:
		m.ResetProblemStructure()
		return nil
	case pyqquestion.FieldConceptKeywords:
		m.ResetConceptKeywords()
		return nil
	case pyqquestion.FieldYear:
		m.ResetYear()
		return nil
	case pyqquestion.FieldSlot:
		m.ResetSlot()
		return nil
	case pyqquestion.FieldIsActive:
		m.ResetIsActive()
		return nil
	case pyqquestion.FieldQualityVerified:
		m.ResetQualityVerified()
		return nil
	case pyqquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PYQQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PYQQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PYQQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PYQQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PYQQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PYQQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PYQQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PYQQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PYQQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PYQQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PYQQuestion edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	stem                      *string
	admin_answer              *string
	admin_solution            *string
	principle_to_remember     *string
	image_url                 *string
	right_answer              *string
	category                  *string
	subcategory               *string
	type_of_question          *string
	difficulty_band           *question.DifficultyBand
	difficulty_score          *float64
	adddifficulty_score       *float64
	pyq_frequency_score       *float64
	addpyq_frequency_score    *float64
	core_concepts             *[]string
	appendcore_concepts       []string
	solution_method           *string
	concept_difficulty        *map[string][]string
	operations_required       *[]string
	appendoperations_required []string
	problem_structure         *string
	concept_keywords          *[]string
	appendconcept_keywords    []string
	is_active                 *bool
	quality_verified          *bool
	concept_extraction_status *question.ConceptExtractionStatus
	failed_checks             *[]string
	appendfailed_checks       []string
	enrichment_status         *question.EnrichmentStatus
	enrichment_error          *string
	pod_id                    *string
	last_enrichment_at        *time.Time
	enriched_at               *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	attempts                  map[string]struct{}
	removedattempts           map[string]struct{}
	clearedattempts           bool
	pack_entries              map[string]struct{}
	removedpack_entries       map[string]struct{}
	clearedpack_entries       bool
	audits                    map[string]struct{}
	removedaudits             map[string]struct{}
	clearedaudits             bool
	done                      bool
	oldValue                  func(context.Context) (*Question, error)
	predicates                []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStem sets the "stem" field.
func (m *QuestionMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *QuestionMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *QuestionMutation) ResetStem() {
	m.stem = nil
}

// SetAdminAnswer sets the "admin_answer" field.
func (m *QuestionMutation) SetAdminAnswer(s string) {
	m.admin_answer = &s
}

// AdminAnswer returns the value of the "admin_answer" field in the mutation.
func (m *QuestionMutation) AdminAnswer() (r string, exists bool) {
	v := m.admin_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminAnswer returns the old "admin_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAdminAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminAnswer: %w", err)
	}
	return oldValue.AdminAnswer, nil
}

// ResetAdminAnswer resets all changes to the "admin_answer" field.
func (m *QuestionMutation) ResetAdminAnswer() {
	m.admin_answer = nil
}

// SetAdminSolution sets the "admin_solution" field.
func (m *QuestionMutation) SetAdminSolution(s string) {
	m.admin_solution = &s
}

// AdminSolution returns the value of the "admin_solution" field in the mutation.
func (m *QuestionMutation) AdminSolution() (r string, exists bool) {
	v := m.admin_solution
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminSolution returns the old "admin_solution" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAdminSolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminSolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminSolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminSolution: %w", err)
	}
	return oldValue.AdminSolution, nil
}

// ClearAdminSolution clears the value of the "admin_solution" field.
func (m *QuestionMutation) ClearAdminSolution() {
	m.admin_solution = nil
	m.clearedFields[question.FieldAdminSolution] = struct{}{}
}

// AdminSolutionCleared returns if the "admin_solution" field was cleared in this mutation.
func (m *QuestionMutation) AdminSolutionCleared() bool {
	_, ok := m.clearedFields[question.FieldAdminSolution]
	return ok
}

// ResetAdminSolution resets all changes to the "admin_solution" field.
func (m *QuestionMutation) ResetAdminSolution() {
	m.admin_solution = nil
	delete(m.clearedFields, question.FieldAdminSolution)
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (m *QuestionMutation) SetPrincipleToRemember(s string) {
	m.principle_to_remember = &s
}

// PrincipleToRemember returns the value of the "principle_to_remember" field in the mutation.
func (m *QuestionMutation) PrincipleToRemember() (r string, exists bool) {
	v := m.principle_to_remember
	if v == nil {
		return
	}
	return *v, true
}

// OldPrincipleToRemember returns the old "principle_to_remember" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPrincipleToRemember(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrincipleToRemember is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrincipleToRemember requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrincipleToRemember: %w", err)
	}
	return oldValue.PrincipleToRemember, nil
}

// ClearPrincipleToRemember clears the value of the "principle_to_remember" field.
func (m *QuestionMutation) ClearPrincipleToRemember() {
	m.principle_to_remember = nil
	m.clearedFields[question.FieldPrincipleToRemember] = struct{}{}
}

// PrincipleToRememberCleared returns if the "principle_to_remember" field was cleared in this mutation.
func (m *QuestionMutation) PrincipleToRememberCleared() bool {
	_, ok := m.clearedFields[question.FieldPrincipleToRemember]
	return ok
}

// ResetPrincipleToRemember resets all changes to the "principle_to_remember" field.
func (m *QuestionMutation) ResetPrincipleToRemember() {
	m.principle_to_remember = nil
	delete(m.clearedFields, question.FieldPrincipleToRemember)
}

// SetImageURL sets the "image_url" field.
func (m *QuestionMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *QuestionMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *QuestionMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[question.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *QuestionMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[question.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *QuestionMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, question.FieldImageURL)
}

// SetRightAnswer sets the "right_answer" field.
func (m *QuestionMutation) SetRightAnswer(s string) {
	m.right_answer = &s
}

// RightAnswer returns the value of the "right_answer" field in the mutation.
func (m *QuestionMutation) RightAnswer() (r string, exists bool) {
	v := m.right_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldRightAnswer returns the old "right_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldRightAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRightAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRightAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRightAnswer: %w", err)
	}
	return oldValue.RightAnswer, nil
}

// ClearRightAnswer clears the value of the "right_answer" field.
func (m *QuestionMutation) ClearRightAnswer() {
	m.right_answer = nil
	m.clearedFields[question.FieldRightAnswer] = struct{}{}
}

// RightAnswerCleared returns if the "right_answer" field was cleared in this mutation.
func (m *QuestionMutation) RightAnswerCleared() bool {
	_, ok := m.clearedFields[question.FieldRightAnswer]
	return ok
}

// ResetRightAnswer resets all changes to the "right_answer" field.
func (m *QuestionMutation) ResetRightAnswer() {
	m.right_answer = nil
	delete(m.clearedFields, question.FieldRightAnswer)
}

// SetCategory sets the "category" field.
func (m *QuestionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *QuestionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *QuestionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[question.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *QuestionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[question.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *QuestionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, question.FieldCategory)
}

// SetSubcategory sets the "subcategory" field.
func (m *QuestionMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *QuestionMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ClearSubcategory clears the value of the "subcategory" field.
func (m *QuestionMutation) ClearSubcategory() {
	m.subcategory = nil
	m.clearedFields[question.FieldSubcategory] = struct{}{}
}

// SubcategoryCleared returns if the "subcategory" field was cleared in this mutation.
func (m *QuestionMutation) SubcategoryCleared() bool {
	_, ok := m.clearedFields[question.FieldSubcategory]
	return ok
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *QuestionMutation) ResetSubcategory() {
	m.subcategory = nil
	delete(m.clearedFields, question.FieldSubcategory)
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *QuestionMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *QuestionMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (m *QuestionMutation) ClearTypeOfQuestion() {
	m.type_of_question = nil
	m.clearedFields[question.FieldTypeOfQuestion] = struct{}{}
}

// TypeOfQuestionCleared returns if the "type_of_question" field was cleared in this mutation.
func (m *QuestionMutation) TypeOfQuestionCleared() bool {
	_, ok := m.clearedFields[question.FieldTypeOfQuestion]
	return ok
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *QuestionMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
	delete(m.clearedFields, question.FieldTypeOfQuestion)
}

// SetDifficultyBand sets the "difficulty_band" field.
func (m *QuestionMutation) SetDifficultyBand(qb question.DifficultyBand) {
	m.difficulty_band = &qb
}

// DifficultyBand returns the value of the "difficulty_band" field in the mutation.
func (m *QuestionMutation) DifficultyBand() (r question.DifficultyBand, exists bool) {
	v := m.difficulty_band
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyBand returns the old "difficulty_band" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficultyBand(ctx context.Context) (v question.DifficultyBand, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyBand: %w", err)
	}
	return oldValue.DifficultyBand, nil
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (m *QuestionMutation) ClearDifficultyBand() {
	m.difficulty_band = nil
	m.clearedFields[question.FieldDifficultyBand] = struct{}{}
}

// DifficultyBandCleared returns if the "difficulty_band" field was cleared in this mutation.
func (m *QuestionMutation) DifficultyBandCleared() bool {
	_, ok := m.clearedFields[question.FieldDifficultyBand]
	return ok
}

// ResetDifficultyBand resets all changes to the "difficulty_band" field.
func (m *QuestionMutation) ResetDifficultyBand() {
	m.difficulty_band = nil
	delete(m.clearedFields, question.FieldDifficultyBand)
}

// SetDifficultyScore sets the "difficulty_score" field.
func (m *QuestionMutation) SetDifficultyScore(f float64) {
	m.difficulty_score = &f
	m.adddifficulty_score = nil
}

// DifficultyScore returns the value of the "difficulty_score" field in the mutation.
func (m *QuestionMutation) DifficultyScore() (r float64, exists bool) {
	v := m.difficulty_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyScore returns the old "difficulty_score" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficultyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyScore: %w", err)
	}
	return oldValue.DifficultyScore, nil
}

// AddDifficultyScore adds f to the "difficulty_score" field.
func (m *QuestionMutation) AddDifficultyScore(f float64) {
	if m.adddifficulty_score != nil {
		*m.adddifficulty_score += f
	} else {
		m.adddifficulty_score = &f
	}
}

// AddedDifficultyScore returns the value that was added to the "difficulty_score" field in this mutation.
func (m *QuestionMutation) AddedDifficultyScore() (r float64, exists bool) {
	v := m.adddifficulty_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (m *QuestionMutation) ClearDifficultyScore() {
	m.difficulty_score = nil
	m.adddifficulty_score = nil
	m.clearedFields[question.FieldDifficultyScore] = struct{}{}
}

// DifficultyScoreCleared returns if the "difficulty_score" field was cleared in this mutation.
func (m *QuestionMutation) DifficultyScoreCleared() bool {
	_, ok := m.clearedFields[question.FieldDifficultyScore]
	return ok
}

// ResetDifficultyScore resets all changes to the "difficulty_score" field.
func (m *QuestionMutation) ResetDifficultyScore() {
	m.difficulty_score = nil
	m.adddifficulty_score = nil
	delete(m.clearedFields, question.FieldDifficultyScore)
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (m *QuestionMutation) SetPyqFrequencyScore(f float64) {
	m.pyq_frequency_score = &f
	m.addpyq_frequency_score = nil
}

// PyqFrequencyScore returns the value of the "pyq_frequency_score" field in the mutation.
func (m *QuestionMutation) PyqFrequencyScore() (r float64, exists bool) {
	v := m.pyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPyqFrequencyScore returns the old "pyq_frequency_score" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPyqFrequencyScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPyqFrequencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPyqFrequencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPyqFrequencyScore: %w", err)
	}
	return oldValue.PyqFrequencyScore, nil
}

// AddPyqFrequencyScore adds f to the "pyq_frequency_score" field.
func (m *QuestionMutation) AddPyqFrequencyScore(f float64) {
	if m.addpyq_frequency_score != nil {
		*m.addpyq_frequency_score += f
	} else {
		m.addpyq_frequency_score = &f
	}
}

// AddedPyqFrequencyScore returns the value that was added to the "pyq_frequency_score" field in this mutation.
func (m *QuestionMutation) AddedPyqFrequencyScore() (r float64, exists bool) {
	v := m.addpyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (m *QuestionMutation) ClearPyqFrequencyScore() {
	m.pyq_frequency_score = nil
	m.addpyq_frequency_score = nil
	m.clearedFields[question.FieldPyqFrequencyScore] = struct{}{}
}

// PyqFrequencyScoreCleared returns if the "pyq_frequency_score" field was cleared in this mutation.
func (m *QuestionMutation) PyqFrequencyScoreCleared() bool {
	_, ok := m.clearedFields[question.FieldPyqFrequencyScore]
	return ok
}

// ResetPyqFrequencyScore resets all changes to the "pyq_frequency_score" field.
func (m *QuestionMutation) ResetPyqFrequencyScore() {
	m.pyq_frequency_score = nil
	m.addpyq_frequency_score = nil
	delete(m.clearedFields, question.FieldPyqFrequencyScore)
}

// SetCoreConcepts sets the "core_concepts" field.
func (m *QuestionMutation) SetCoreConcepts(s []string) {
	m.core_concepts = &s
	m.appendcore_concepts = nil
}

// CoreConcepts returns the value of the "core_concepts" field in the mutation.
func (m *QuestionMutation) CoreConcepts() (r []string, exists bool) {
	v := m.core_concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldCoreConcepts returns the old "core_concepts" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCoreConcepts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoreConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoreConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoreConcepts: %w", err)
	}
	return oldValue.CoreConcepts, nil
}

// AppendCoreConcepts adds s to the "core_concepts" field.
func (m *QuestionMutation) AppendCoreConcepts(s []string) {
	m.appendcore_concepts = append(m.appendcore_concepts, s...)
}

// AppendedCoreConcepts returns the list of values that were appended to the "core_concepts" field in this mutation.
func (m *QuestionMutation) AppendedCoreConcepts() ([]string, bool) {
	if len(m.appendcore_concepts) == 0 {
		return nil, false
	}
	return m.appendcore_concepts, true
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (m *QuestionMutation) ClearCoreConcepts() {
	m.core_concepts = nil
	m.appendcore_concepts = nil
	m.clearedFields[question.FieldCoreConcepts] = struct{}{}
}

// CoreConceptsCleared returns if the "core_concepts" field was cleared in this mutation.
func (m *QuestionMutation) CoreConceptsCleared() bool {
	_, ok := m.clearedFields[question.FieldCoreConcepts]
	return ok
}

// ResetCoreConcepts resets all changes to the "core_concepts" field.
func (m *QuestionMutation) ResetCoreConcepts() {
	m.core_concepts = nil
	m.appendcore_concepts = nil
	delete(m.clearedFields, question.FieldCoreConcepts)
}

// SetSolutionMethod sets the "solution_method" field.
func (m *QuestionMutation) SetSolutionMethod(s string) {
	m.solution_method = &s
}

// SolutionMethod returns the value of the "solution_method" field in the mutation.
func (m *QuestionMutation) SolutionMethod() (r string, exists bool) {
	v := m.solution_method
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionMethod returns the old "solution_method" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSolutionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionMethod: %w", err)
	}
	return oldValue.SolutionMethod, nil
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (m *QuestionMutation) ClearSolutionMethod() {
	m.solution_method = nil
	m.clearedFields[question.FieldSolutionMethod] = struct{}{}
}

// SolutionMethodCleared returns if the "solution_method" field was cleared in this mutation.
func (m *QuestionMutation) SolutionMethodCleared() bool {
	_, ok := m.clearedFields[question.FieldSolutionMethod]
	return ok
}

// ResetSolutionMethod resets all changes to the "solution_method" field.
func (m *QuestionMutation) ResetSolutionMethod() {
	m.solution_method = nil
	delete(m.clearedFields, question.FieldSolutionMethod)
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (m *QuestionMutation) SetConceptDifficulty(value map[string][]string) {
	m.concept_difficulty = &value
}

// ConceptDifficulty returns the value of the "concept_difficulty" field in the mutation.
func (m *QuestionMutation) ConceptDifficulty() (r map[string][]string, exists bool) {
	v := m.concept_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptDifficulty returns the old "concept_difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldConceptDifficulty(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptDifficulty: %w", err)
	}
	return oldValue.ConceptDifficulty, nil
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (m *QuestionMutation) ClearConceptDifficulty() {
	m.concept_difficulty = nil
	m.clearedFields[question.FieldConceptDifficulty] = struct{}{}
}

// ConceptDifficultyCleared returns if the "concept_difficulty" field was cleared in this mutation.
func (m *QuestionMutation) ConceptDifficultyCleared() bool {
	_, ok := m.clearedFields[question.FieldConceptDifficulty]
	return ok
}

// ResetConceptDifficulty resets all changes to the "concept_difficulty" field.
func (m *QuestionMutation) ResetConceptDifficulty() {
	m.concept_difficulty = nil
	delete(m.clearedFields, question.FieldConceptDifficulty)
}

// SetOperationsRequired sets the "operations_required" field.
func (m *QuestionMutation) SetOperationsRequired(s []string) {
	m.operations_required = &s
	m.appendoperations_required = nil
}

// OperationsRequired returns the value of the "operations_required" field in the mutation.
func (m *QuestionMutation) OperationsRequired() (r []string, exists bool) {
	v := m.operations_required
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationsRequired returns the old "operations_required" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOperationsRequired(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationsRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationsRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationsRequired: %w", err)
	}
	return oldValue.OperationsRequired, nil
}

// AppendOperationsRequired adds s to the "operations_required" field.
func (m *QuestionMutation) AppendOperationsRequired(s []string) {
	m.appendoperations_required = append(m.appendoperations_required, s...)
}

// AppendedOperationsRequired returns the list of values that were appended to the "operations_required" field in this mutation.
func (m *QuestionMutation) AppendedOperationsRequired() ([]string, bool) {
	if len(m.appendoperations_required) == 0 {
		return nil, false
	}
	return m.appendoperations_required, true
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (m *QuestionMutation) ClearOperationsRequired() {
	m.operations_required = nil
	m.appendoperations_required = nil
	m.clearedFields[question.FieldOperationsRequired] = struct{}{}
}

// OperationsRequiredCleared returns if the "operations_required" field was cleared in this mutation.
func (m *QuestionMutation) OperationsRequiredCleared() bool {
	_, ok := m.clearedFields[question.FieldOperationsRequired]
	return ok
}

// ResetOperationsRequired resets all changes to the "operations_required" field.
func (m *QuestionMutation) ResetOperationsRequired() {
	m.operations_required = nil
	m.appendoperations_required = nil
	delete(m.clearedFields, question.FieldOperationsRequired)
}

// SetProblemStructure sets the "problem_structure" field.
func (m *QuestionMutation) SetProblemStructure(s string) {
	m.problem_structure = &s
}

// ProblemStructure returns the value of the "problem_structure" field in the mutation.
func (m *QuestionMutation) ProblemStructure() (r string, exists bool) {
	v := m.problem_structure
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemStructure returns the old "problem_structure" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldProblemStructure(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemStructure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemStructure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemStructure: %w", err)
	}
	return oldValue.ProblemStructure, nil
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (m *QuestionMutation) ClearProblemStructure() {
	m.problem_structure = nil
	m.clearedFields[question.FieldProblemStructure] = struct{}{}
}

// ProblemStructureCleared returns if the "problem_structure" field was cleared in this mutation.
func (m *QuestionMutation) ProblemStructureCleared() bool {
	_, ok := m.clearedFields[question.FieldProblemStructure]
	return ok
}

// ResetProblemStructure resets all changes to the "problem_structure" field.
func (m *QuestionMutation) ResetProblemStructure() {
	m.problem_structure = nil
	delete(m.clearedFields, question.FieldProblemStructure)
}

// SetConceptKeywords sets the "concept_keywords" field.
func (m *QuestionMutation) SetConceptKeywords(s []string) {
	m.concept_keywords = &s
	m.appendconcept_keywords = nil
}

// ConceptKeywords returns the value of the "concept_keywords" field in the mutation.
func (m *QuestionMutation) ConceptKeywords() (r []string, exists bool) {
	v := m.concept_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptKeywords returns the old "concept_keywords" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldConceptKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptKeywords: %w", err)
	}
	return oldValue.ConceptKeywords, nil
}

// AppendConceptKeywords adds s to the "concept_keywords" field.
func (m *QuestionMutation) AppendConceptKeywords(s []string) {
	m.appendconcept_keywords = append(m.appendconcept_keywords, s...)
}

// AppendedConceptKeywords returns the list of values that were appended to the "concept_keywords" field in this mutation.
func (m *QuestionMutation) AppendedConceptKeywords() ([]string, bool) {
	if len(m.appendconcept_keywords) == 0 {
		return nil, false
	}
	return m.appendconcept_keywords, true
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (m *QuestionMutation) ClearConceptKeywords() {
	m.concept_keywords = nil
	m.appendconcept_keywords = nil
	m.clearedFields[question.FieldConceptKeywords] = struct{}{}
}

// ConceptKeywordsCleared returns if the "concept_keywords" field was cleared in this mutation.
func (m *QuestionMutation) ConceptKeywordsCleared() bool {
	_, ok := m.clearedFields[question.FieldConceptKeywords]
	return ok
}

// ResetConceptKeywords resets all changes to the "concept_keywords" field.
func (m *QuestionMutation) ResetConceptKeywords() {
	m.concept_keywords = nil
	m.appendconcept_keywords = nil
	delete(m.clearedFields, question.FieldConceptKeywords)
}

// SetIsActive sets the "is_active" field.
func (m *QuestionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *QuestionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *QuestionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetQualityVerified sets the "quality_verified" field.
func (m *QuestionMutation) SetQualityVerified(b bool) {
	m.quality_verified = &b
}

// QualityVerified returns the value of the "quality_verified" field in the mutation.
func (m *QuestionMutation) QualityVerified() (r bool, exists bool) {
	v := m.quality_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityVerified returns the old "quality_verified" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQualityVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityVerified: %w", err)
	}
	return oldValue.QualityVerified, nil
}

// ResetQualityVerified resets all changes to the "quality_verified" field.
func (m *QuestionMutation) ResetQualityVerified() {
	m.quality_verified = nil
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (m *QuestionMutation) SetConceptExtractionStatus(qes question.ConceptExtractionStatus) {
	m.concept_extraction_status = &qes
}

// ConceptExtractionStatus returns the value of the "concept_extraction_status" field in the mutation.
func (m *QuestionMutation) ConceptExtractionStatus() (r question.ConceptExtractionStatus, exists bool) {
	v := m.concept_extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptExtractionStatus returns the old "concept_extraction_status" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldConceptExtractionStatus(ctx context.Context) (v question.ConceptExtractionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptExtractionStatus: %w", err)
	}
	return oldValue.ConceptExtractionStatus, nil
}

// ResetConceptExtractionStatus resets all changes to the "concept_extraction_status" field.
func (m *QuestionMutation) ResetConceptExtractionStatus() {
	m.concept_extraction_status = nil
}

// SetFailedChecks sets the "failed_checks" field.
func (m *QuestionMutation) SetFailedChecks(s []string) {
	m.failed_checks = &s
	m.appendfailed_checks = nil
}

// FailedChecks returns the value of the "failed_checks" field in the mutation.
func (m *QuestionMutation) FailedChecks() (r []string, exists bool) {
	v := m.failed_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedChecks returns the old "failed_checks" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldFailedChecks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedChecks: %w", err)
	}
	return oldValue.FailedChecks, nil
}

// AppendFailedChecks adds s to the "failed_checks" field.
func (m *QuestionMutation) AppendFailedChecks(s []string) {
	m.appendfailed_checks = append(m.appendfailed_checks, s...)
}

// AppendedFailedChecks returns the list of values that were appended to the "failed_checks" field in this mutation.
func (m *QuestionMutation) AppendedFailedChecks() ([]string, bool) {
	if len(m.appendfailed_checks) == 0 {
		return nil, false
	}
	return m.appendfailed_checks, true
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (m *QuestionMutation) ClearFailedChecks() {
	m.failed_checks = nil
	m.appendfailed_checks = nil
	m.clearedFields[question.FieldFailedChecks] = struct{}{}
}

// FailedChecksCleared returns if the "failed_checks" field was cleared in this mutation.
func (m *QuestionMutation) FailedChecksCleared() bool {
	_, ok := m.clearedFields[question.FieldFailedChecks]
	return ok
}

// ResetFailedChecks resets all changes to the "failed_checks" field.
func (m *QuestionMutation) ResetFailedChecks() {
	m.failed_checks = nil
	m.appendfailed_checks = nil
	delete(m.clearedFields, question.FieldFailedChecks)
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (m *QuestionMutation) SetEnrichmentStatus(qs question.EnrichmentStatus) {
	m.enrichment_status = &qs
}

// EnrichmentStatus returns the value of the "enrichment_status" field in the mutation.
func (m *QuestionMutation) EnrichmentStatus() (r question.EnrichmentStatus, exists bool) {
	v := m.enrichment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichmentStatus returns the old "enrichment_status" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldEnrichmentStatus(ctx context.Context) (v question.EnrichmentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichmentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichmentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichmentStatus: %w", err)
	}
	return oldValue.EnrichmentStatus, nil
}

// ResetEnrichmentStatus resets all changes to the "enrichment_status" field.
func (m *QuestionMutation) ResetEnrichmentStatus() {
	m.enrichment_status = nil
}

// SetEnrichmentError sets the "enrichment_error" field.
func (m *QuestionMutation) SetEnrichmentError(s string) {
	m.enrichment_error = &s
}

// EnrichmentError returns the value of the "enrichment_error" field in the mutation.
func (m *QuestionMutation) EnrichmentError() (r string, exists bool) {
	v := m.enrichment_error
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichmentError returns the old "enrichment_error" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldEnrichmentError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichmentError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichmentError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichmentError: %w", err)
	}
	return oldValue.EnrichmentError, nil
}

// ClearEnrichmentError clears the value of the "enrichment_error" field.
func (m *QuestionMutation) ClearEnrichmentError() {
	m.enrichment_error = nil
	m.clearedFields[question.FieldEnrichmentError] = struct{}{}
}

// EnrichmentErrorCleared returns if the "enrichment_error" field was cleared in this mutation.
func (m *QuestionMutation) EnrichmentErrorCleared() bool {
	_, ok := m.clearedFields[question.FieldEnrichmentError]
	return ok
}

// ResetEnrichmentError resets all changes to the "enrichment_error" field.
func (m *QuestionMutation) ResetEnrichmentError() {
	m.enrichment_error = nil
	delete(m.clearedFields, question.FieldEnrichmentError)
}

// SetPodID sets the "pod_id" field.
func (m *QuestionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *QuestionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *QuestionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[question.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *QuestionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[question.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *QuestionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, question.FieldPodID)
}

// SetLastEnrichmentAt sets the "last_enrichment_at" field.
func (m *QuestionMutation) SetLastEnrichmentAt(t time.Time) {
	m.last_enrichment_at = &t
}

// LastEnrichmentAt returns the value of the "last_enrichment_at" field in the mutation.
func (m *QuestionMutation) LastEnrichmentAt() (r time.Time, exists bool) {
	v := m.last_enrichment_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEnrichmentAt returns the old "last_enrichment_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldLastEnrichmentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEnrichmentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEnrichmentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEnrichmentAt: %w", err)
	}
	return oldValue.LastEnrichmentAt, nil
}

// ClearLastEnrichmentAt clears the value of the "last_enrichment_at" field.
func (m *QuestionMutation) ClearLastEnrichmentAt() {
	m.last_enrichment_at = nil
	m.clearedFields[question.FieldLastEnrichmentAt] = struct{}{}
}

// LastEnrichmentAtCleared returns if the "last_enrichment_at" field was cleared in this mutation.
func (m *QuestionMutation) LastEnrichmentAtCleared() bool {
	_, ok := m.clearedFields[question.FieldLastEnrichmentAt]
	return ok
}

// ResetLastEnrichmentAt resets all changes to the "last_enrichment_at" field.
func (m *QuestionMutation) ResetLastEnrichmentAt() {
	m.last_enrichment_at = nil
	delete(m.clearedFields, question.FieldLastEnrichmentAt)
}

// SetEnrichedAt sets the "enriched_at" field.
func (m *QuestionMutation) SetEnrichedAt(t time.Time) {
	m.enriched_at = &t
}

// EnrichedAt returns the value of the "enriched_at" field in the mutation.
func (m *QuestionMutation) EnrichedAt() (r time.Time, exists bool) {
	v := m.enriched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedAt returns the old "enriched_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldEnrichedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedAt: %w", err)
	}
	return oldValue.EnrichedAt, nil
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (m *QuestionMutation) ClearEnrichedAt() {
	m.enriched_at = nil
	m.clearedFields[question.FieldEnrichedAt] = struct{}{}
}

// EnrichedAtCleared returns if the "enriched_at" field was cleared in this mutation.
func (m *QuestionMutation) EnrichedAtCleared() bool {
	_, ok := m.clearedFields[question.FieldEnrichedAt]
	return ok
}

// ResetEnrichedAt resets all changes to the "enriched_at" field.
func (m *QuestionMutation) ResetEnrichedAt() {
	m.enriched_at = nil
	delete(m.clearedFields, question.FieldEnrichedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by ids.
func (m *QuestionMutation) AddAttemptIDs(ids ...string) {
	if m.attempts == nil {
		m.attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the Attempt entity.
func (m *QuestionMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the Attempt entity was cleared.
func (m *QuestionMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the Attempt entity by IDs.
func (m *QuestionMutation) RemoveAttemptIDs(ids ...string) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the Attempt entity.
func (m *QuestionMutation) RemovedAttemptsIDs() (ids []string) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *QuestionMutation) AttemptsIDs() (ids []string) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *QuestionMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// AddPackEntryIDs adds the "pack_entries" edge to the SessionQuestion entity by ids.
func (m *QuestionMutation) AddPackEntryIDs(ids ...string) {
	if m.pack_entries == nil {
		m.pack_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.pack_entries[ids[i]] = struct{}{}
	}
}

// ClearPackEntries clears the "pack_entries" edge to the SessionQuestion entity.
func (m *QuestionMutation) ClearPackEntries() {
	m.clearedpack_entries = true
}

// PackEntriesCleared reports if the "pack_entries" edge to the SessionQuestion entity was cleared.
func (m *QuestionMutation) PackEntriesCleared() bool {
	return m.clearedpack_entries
}

// RemovePackEntryIDs removes the "pack_entries" edge to the SessionQuestion entity by IDs.
func (m *QuestionMutation) RemovePackEntryIDs(ids ...string) {
	if m.removedpack_entries == nil {
		m.removedpack_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pack_entries, ids[i])
		m.removedpack_entries[ids[i]] = struct{}{}
	}
}

// RemovedPackEntries returns the removed IDs of the "pack_entries" edge to the SessionQuestion entity.
func (m *QuestionMutation) RemovedPackEntriesIDs() (ids []string) {
	for id := range m.removedpack_entries {
		ids = append(ids, id)
	}
	return
}

// PackEntriesIDs returns the "pack_entries" edge IDs in the mutation.
func (m *QuestionMutation) PackEntriesIDs() (ids []string) {
	for id := range m.pack_entries {
		ids = append(ids, id)
	}
	return
}

// ResetPackEntries resets all changes to the "pack_entries" edge.
func (m *QuestionMutation) ResetPackEntries() {
	m.pack_entries = nil
	m.clearedpack_entries = false
	m.removedpack_entries = nil
}

// AddAuditIDs adds the "audits" edge to the EnrichmentAudit entity by ids.
func (m *QuestionMutation) AddAuditIDs(ids ...string) {
	if m.audits == nil {
		m.audits = make(map[string]struct{})
	}
	for i := range ids {
		m.audits[ids[i]] = struct{}{}
	}
}

// ClearAudits clears the "audits" edge to the EnrichmentAudit entity.
func (m *QuestionMutation) ClearAudits() {
	m.clearedaudits = true
}

// AuditsCleared reports if the "audits" edge to the EnrichmentAudit entity was cleared.
func (m *QuestionMutation) AuditsCleared() bool {
	return m.clearedaudits
}

// RemoveAuditIDs removes the "audits" edge to the EnrichmentAudit entity by IDs.
func (m *QuestionMutation) RemoveAuditIDs(ids ...string) {
	if m.removedaudits == nil {
		m.removedaudits = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audits, ids[i])
		m.removedaudits[ids[i]] = struct{}{}
	}
}

// RemovedAudits returns the removed IDs of the "audits" edge to the EnrichmentAudit entity.
func (m *QuestionMutation) RemovedAuditsIDs() (ids []string) {
	for id := range m.removedaudits {
		ids = append(ids, id)
	}
	return
}

// AuditsIDs returns the "audits" edge IDs in the mutation.
func (m *QuestionMutation) AuditsIDs() (ids []string) {
	for id := range m.audits {
		ids = append(ids, id)
	}
	return
}

// ResetAudits resets all changes to the "audits" edge.
func (m *QuestionMutation) ResetAudits() {
	m.audits = nil
	m.clearedaudits = false
	m.removedaudits = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 29)
	if m.stem != nil {
		fields = append(fields, question.FieldStem)
	}
	if m.admin_answer != nil {
		fields = append(fields, question.FieldAdminAnswer)
	}
	if m.admin_solution != nil {
		fields = append(fields, question.FieldAdminSolution)
	}
	if m.principle_to_remember != nil {
		fields = append(fields, question.FieldPrincipleToRemember)
	}
	if m.image_url != nil {
		fields = append(fields, question.FieldImageURL)
	}
	if m.right_answer != nil {
		fields = append(fields, question.FieldRightAnswer)
	}
	if m.category != nil {
		fields = append(fields, question.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, question.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, question.FieldTypeOfQuestion)
	}
	if m.difficulty_band != nil {
		fields = append(fields, question.FieldDifficultyBand)
	}
	if m.difficulty_score != nil {
		fields = append(fields, question.FieldDifficultyScore)
	}
	if m.pyq_frequency_score != nil {
		fields = append(fields, question.FieldPyqFrequencyScore)
	}
	if m.core_concepts != nil {
		fields = append(fields, question.FieldCoreConcepts)
	}
	if m.solution_method != nil {
		fields = append(fields, question.FieldSolutionMethod)
	}
	if m.concept_difficulty != nil {
		fields = append(fields, question.FieldConceptDifficulty)
	}
	if m.operations_required != nil {
		fields = append(fields, question.FieldOperationsRequired)
	}
	if m.problem_structure != nil {
		fields = append(fields, question.FieldProblemStructure)
	}
	if m.concept_keywords != nil {
		fields = append(fields, question.FieldConceptKeywords)
	}
	if m.is_active != nil {
		fields = append(fields, question.FieldIsActive)
	}
	if m.quality_verified != nil {
		fields = append(fields, question.FieldQualityVerified)
	}
	if m.concept_extraction_status != nil {
		fields = append(fields, question.FieldConceptExtractionStatus)
	}
	if m.failed_checks != nil {
		fields = append(fields, question.FieldFailedChecks)
	}
	if m.enrichment_status != nil {
		fields = append(fields, question.FieldEnrichmentStatus)
	}
	if m.enrichment_error != nil {
		fields = append(fields, question.FieldEnrichmentError)
	}
	if m.pod_id != nil {
		fields = append(fields, question.FieldPodID)
	}
	if m.last_enrichment_at != nil {
		fields = append(fields, question.FieldLastEnrichmentAt)
	}
	if m.enriched_at != nil {
		fields = append(fields, question.FieldEnrichedAt)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldStem:
		return m.Stem()
	case question.FieldAdminAnswer:
		return m.AdminAnswer()
	case question.FieldAdminSolution:
		return m.AdminSolution()
	case question.FieldPrincipleToRemember:
		return m.PrincipleToRemember()
	case question.FieldImageURL:
		return m.ImageURL()
	case question.FieldRightAnswer:
		return m.RightAnswer()
	case question.FieldCategory:
		return m.Category()
	case question.FieldSubcategory:
		return m.Subcategory()
	case question.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case question.FieldDifficultyBand:
		return m.DifficultyBand()
	case question.FieldDifficultyScore:
		return m.DifficultyScore()
	case question.FieldPyqFrequencyScore:
		return m.PyqFrequencyScore()
	case question.FieldCoreConcepts:
		return m.CoreConcepts()
	case question.FieldSolutionMethod:
		return m.SolutionMethod()
	case question.FieldConceptDifficulty:
		return m.ConceptDifficulty()
	case question.FieldOperationsRequired:
		return m.OperationsRequired()
	case question.FieldProblemStructure:
		return m.ProblemStructure()
	case question.FieldConceptKeywords:
		return m.ConceptKeywords()
	case question.FieldIsActive:
		return m.IsActive()
	case question.FieldQualityVerified:
		return m.QualityVerified()
	case question.FieldConceptExtractionStatus:
		return m.ConceptExtractionStatus()
	case question.FieldFailedChecks:
		return m.FailedChecks()
	case question.FieldEnrichmentStatus:
		return m.EnrichmentStatus()
	case question.FieldEnrichmentError:
		return m.EnrichmentError()
	case question.FieldPodID:
		return m.PodID()
	case question.FieldLastEnrichmentAt:
		return m.LastEnrichmentAt()
	case question.FieldEnrichedAt:
		return m.EnrichedAt()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldStem:
		return m.OldStem(ctx)
	case question.FieldAdminAnswer:
		return m.OldAdminAnswer(ctx)
	case question.FieldAdminSolution:
		return m.OldAdminSolution(ctx)
	case question.FieldPrincipleToRemember:
		return m.OldPrincipleToRemember(ctx)
	case question.FieldImageURL:
		return m.OldImageURL(ctx)
	case question.FieldRightAnswer:
		return m.OldRightAnswer(ctx)
	case question.FieldCategory:
		return m.OldCategory(ctx)
	case question.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case question.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case question.FieldDifficultyBand:
		return m.OldDifficultyBand(ctx)
	case question.FieldDifficultyScore:
		return m.OldDifficultyScore(ctx)
	case question.FieldPyqFrequencyScore:
		return m.OldPyqFrequencyScore(ctx)
	case question.FieldCoreConcepts:
		return m.OldCoreConcepts(ctx)
	case question.FieldSolutionMethod:
		return m.OldSolutionMethod(ctx)
	case question.FieldConceptDifficulty:
		return m.OldConceptDifficulty(ctx)
	case question.FieldOperationsRequired:
		return m.OldOperationsRequired(ctx)
	case question.FieldProblemStructure:
		return m.OldProblemStructure(ctx)
	case question.FieldConceptKeywords:
		return m.OldConceptKeywords(ctx)
	case question.FieldIsActive:
		return m.OldIsActive(ctx)
	case question.FieldQualityVerified:
		return m.OldQualityVerified(ctx)
	case question.FieldConceptExtractionStatus:
		return m.OldConceptExtractionStatus(ctx)
	case question.FieldFailedChecks:
		return m.OldFailedChecks(ctx)
	case question.FieldEnrichmentStatus:
		return m.OldEnrichmentStatus(ctx)
	case question.FieldEnrichmentError:
		return m.OldEnrichmentError(ctx)
	case question.FieldPodID:
		return m.OldPodID(ctx)
	case question.FieldLastEnrichmentAt:
		return m.OldLastEnrichmentAt(ctx)
	case question.FieldEnrichedAt:
		return m.OldEnrichedAt(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case question.FieldAdminAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminAnswer(v)
		return nil
	case question.FieldAdminSolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminSolution(v)
		return nil
	case question.FieldPrincipleToRemember:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrincipleToRemember(v)
		return nil
	case question.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case question.FieldRightAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRightAnswer(v)
		return nil
	case question.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case question.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case question.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case question.FieldDifficultyBand:
		v, ok := value.(question.DifficultyBand)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyBand(v)
		return nil
	case question.FieldDifficultyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyScore(v)
		return nil
	case question.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPyqFrequencyScore(v)
		return nil
	case question.FieldCoreConcepts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoreConcepts(v)
		return nil
	case question.FieldSolutionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionMethod(v)
		return nil
	case question.FieldConceptDifficulty:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptDifficulty(v)
		return nil
	case question.FieldOperationsRequired:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationsRequired(v)
		return nil
	case question.FieldProblemStructure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemStructure(v)
		return nil
	case question.FieldConceptKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptKeywords(v)
		return nil
	case question.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case question.FieldQualityVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityVerified(v)
		return nil
	case question.FieldConceptExtractionStatus:
		v, ok := value.(question.ConceptExtractionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptExtractionStatus(v)
		return nil
	case question.FieldFailedChecks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedChecks(v)
		return nil
	case question.FieldEnrichmentStatus:
		v, ok := value.(question.EnrichmentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichmentStatus(v)
		return nil
	case question.FieldEnrichmentError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichmentError(v)
		return nil
	case question.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case question.FieldLastEnrichmentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEnrichmentAt(v)
		return nil
	case question.FieldEnrichedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedAt(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty_score != nil {
		fields = append(fields, question.FieldDifficultyScore)
	}
	if m.addpyq_frequency_score != nil {
		fields = append(fields, question.FieldPyqFrequencyScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldDifficultyScore:
		return m.AddedDifficultyScore()
	case question.FieldPyqFrequencyScore:
		return m.AddedPyqFrequencyScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldDifficultyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyScore(v)
		return nil
	case question.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPyqFrequencyScore(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldAdminSolution) {
		fields = append(fields, question.FieldAdminSolution)
	}
	if m.FieldCleared(question.FieldPrincipleToRemember) {
		fields = append(fields, question.FieldPrincipleToRemember)
	}
	if m.FieldCleared(question.FieldImageURL) {
		fields = append(fields, question.FieldImageURL)
	}
	if m.FieldCleared(question.FieldRightAnswer) {
		fields = append(fields, question.FieldRightAnswer)
	}
	if m.FieldCleared(question.FieldCategory) {
		fields = append(fields, question.FieldCategory)
	}
	if m.FieldCleared(question.FieldSubcategory) {
		fields = append(fields, question.FieldSubcategory)
	}
	if m.FieldCleared(question.FieldTypeOfQuestion) {
		fields = append(fields, question.FieldTypeOfQuestion)
	}
	if m.FieldCleared(question.FieldDifficultyBand) {
		fields = append(fields, question.FieldDifficultyBand)
	}
	if m.FieldCleared(question.FieldDifficultyScore) {
		fields = append(fields, question.FieldDifficultyScore)
	}
	if m.FieldCleared(question.FieldPyqFrequencyScore) {
		fields = append(fields, question.FieldPyqFrequencyScore)
	}
	if m.FieldCleared(question.FieldCoreConcepts) {
		fields = append(fields, question.FieldCoreConcepts)
	}
	if m.FieldCleared(question.FieldSolutionMethod) {
		fields = append(fields, question.FieldSolutionMethod)
	}
	if m.FieldCleared(question.FieldConceptDifficulty) {
		fields = append(fields, question.FieldConceptDifficulty)
	}
	if m.FieldCleared(question.FieldOperationsRequired) {
		fields = append(fields, question.FieldOperationsRequired)
	}
	if m.FieldCleared(question.FieldProblemStructure) {
		fields = append(fields, question.FieldProblemStructure)
	}
	if m.FieldCleared(question.FieldConceptKeywords) {
		fields = append(fields, question.FieldConceptKeywords)
	}
	if m.FieldCleared(question.FieldFailedChecks) {
		fields = append(fields, question.FieldFailedChecks)
	}
	if m.FieldCleared(question.FieldEnrichmentError) {
		fields = append(fields, question.FieldEnrichmentError)
	}
	if m.FieldCleared(question.FieldPodID) {
		fields = append(fields, question.FieldPodID)
	}
	if m.FieldCleared(question.FieldLastEnrichmentAt) {
		fields = append(fields, question.FieldLastEnrichmentAt)
	}
	if m.FieldCleared(question.FieldEnrichedAt) {
		fields = append(fields, question.FieldEnrichedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldAdminSolution:
		m.ClearAdminSolution()
		return nil
	case question.FieldPrincipleToRemember:
		m.ClearPrincipleToRemember()
		return nil
	case question.FieldImageURL:
		m.ClearImageURL()
		return nil
	case question.FieldRightAnswer:
		m.ClearRightAnswer()
		return nil
	case question.FieldCategory:
		m.ClearCategory()
		return nil
	case question.FieldSubcategory:
		m.ClearSubcategory()
		return nil
	case question.FieldTypeOfQuestion:
		m.ClearTypeOfQuestion()
		return nil
	case question.FieldDifficultyBand:
		m.ClearDifficultyBand()
		return nil
	case question.FieldDifficultyScore:
		m.ClearDifficultyScore()
		return nil
	case question.FieldPyqFrequencyScore:
		m.ClearPyqFrequencyScore()
		return nil
	case question.FieldCoreConcepts:
		m.ClearCoreConcepts()
		return nil
	case question.FieldSolutionMethod:
		m.ClearSolutionMethod()
		return nil
	case question.FieldConceptDifficulty:
		m.ClearConceptDifficulty()
		return nil
	case question.FieldOperationsRequired:
		m.ClearOperationsRequired()
		return nil
	case question.FieldProblemStructure:
		m.ClearProblemStructure()
		return nil
	case question.FieldConceptKeywords:
		m.ClearConceptKeywords()
		return nil
	case question.FieldFailedChecks:
		m.ClearFailedChecks()
		return nil
	case question.FieldEnrichmentError:
		m.ClearEnrichmentError()
		return nil
	case question.FieldPodID:
		m.ClearPodID()
		return nil
	case question.FieldLastEnrichmentAt:
		m.ClearLastEnrichmentAt()
		return nil
	case question.FieldEnrichedAt:
		m.ClearEnrichedAt()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldStem:
		m.ResetStem()
		return nil
	case question.FieldAdminAnswer:
		m.ResetAdminAnswer()
		return nil
	case question.FieldAdminSolution:
		m.ResetAdminSolution()
		return nil
	case question.FieldPrincipleToRemember:
		m.ResetPrincipleToRemember()
		return nil
	case question.FieldImageURL:
		m.ResetImageURL()
		return nil
	case question.FieldRightAnswer:
		m.ResetRightAnswer()
		return nil
	case question.FieldCategory:
		m.ResetCategory()
		return nil
	case question.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case question.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case question.FieldDifficultyBand:
		m.ResetDifficultyBand()
		return nil
	case question.FieldDifficultyScore:
		m.ResetDifficultyScore()
		return nil
	case question.FieldPyqFrequencyScore:
		m.ResetPyqFrequencyScore()
		return nil
	case question.FieldCoreConcepts:
		m.ResetCoreConcepts()
		return nil
	case question.FieldSolutionMethod:
		m.ResetSolutionMethod()
		return nil
	case question.FieldConceptDifficulty:
		m.ResetConceptDifficulty()
		return nil
	case question.FieldOperationsRequired:
		m.ResetOperationsRequired()
		return nil
	case question.FieldProblemStructure:
		m.ResetProblemStructure()
		return nil
	case question.FieldConceptKeywords:
		m.ResetConceptKeywords()
		return nil
	case question.FieldIsActive:
		m.ResetIsActive()
		return nil
	case question.FieldQualityVerified:
		m.ResetQualityVerified()
		return nil
	case question.FieldConceptExtractionStatus:
		m.ResetConceptExtractionStatus()
		return nil
	case question.FieldFailedChecks:
		m.ResetFailedChecks()
		return nil
	case question.FieldEnrichmentStatus:
		m.ResetEnrichmentStatus()
		return nil
	case question.FieldEnrichmentError:
		m.ResetEnrichmentError()
		return nil
	case question.FieldPodID:
		m.ResetPodID()
		return nil
	case question.FieldLastEnrichmentAt:
		m.ResetLastEnrichmentAt()
		return nil
	case question.FieldEnrichedAt:
		m.ResetEnrichedAt()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.attempts != nil {
		edges = append(edges, question.EdgeAttempts)
	}
	if m.pack_entries != nil {
		edges = append(edges, question.EdgePackEntries)
	}
	if m.audits != nil {
		edges = append(edges, question.EdgeAudits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	case question.EdgePackEntries:
		ids := make([]ent.Value, 0, len(m.pack_entries))
		for id := range m.pack_entries {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.audits))
		for id := range m.audits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedattempts != nil {
		edges = append(edges, question.EdgeAttempts)
	}
	if m.removedpack_entries != nil {
		edges = append(edges, question.EdgePackEntries)
	}
	if m.removedaudits != nil {
		edges = append(edges, question.EdgeAudits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	case question.EdgePackEntries:
		ids := make([]ent.Value, 0, len(m.removedpack_entries))
		for id := range m.removedpack_entries {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.removedaudits))
		for id := range m.removedaudits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedattempts {
		edges = append(edges, question.EdgeAttempts)
	}
	if m.clearedpack_entries {
		edges = append(edges, question.EdgePackEntries)
	}
	if m.clearedaudits {
		edges = append(edges, question.EdgeAudits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeAttempts:
		return m.clearedattempts
	case question.EdgePackEntries:
		return m.clearedpack_entries
	case question.EdgeAudits:
		return m.clearedaudits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeAttempts:
		m.ResetAttempts()
		return nil
	case question.EdgePackEntries:
		m.ResetPackEntries()
		return nil
	case question.EdgeAudits:
		m.ResetAudits()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// SessionQuestionMutation represents an operation that mutates the SessionQuestion nodes in the graph.
type SessionQuestionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	position         *int
	addposition      *int
	planned_band     *sessionquestion.PlannedBand
	subcategory      *string
	type_of_question *string
	coverage_new     *bool
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	question         *string
	clearedquestion  bool
	done             bool
	oldValue         func(context.Context) (*SessionQuestion, error)
	predicates       []predicate.SessionQuestion
}

var _ ent.Mutation = (*SessionQuestionMutation)(nil)

// sessionquestionOption allows management of the mutation configuration using functional options.
type sessionquestionOption func(*SessionQuestionMutation)

// newSessionQuestionMutation creates new mutation for the SessionQuestion entity.
func newSessionQuestionMutation(c config, op Op, opts ...sessionquestionOption) *SessionQuestionMutation {
	m := &SessionQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionQuestionID sets the ID field of the mutation.
func withSessionQuestionID(id string) sessionquestionOption {
	return func(m *SessionQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionQuestion
		)
		m.oldValue = func(ctx context.Context) (*SessionQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionQuestion sets the old SessionQuestion of the mutation.
func withSessionQuestion(node *SessionQuestion) sessionquestionOption {
	return func(m *SessionQuestionMutation) {
		m.oldValue = func(context.Context) (*SessionQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionQuestion entities.
func (m *SessionQuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionQuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionQuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionQuestionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionQuestionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionQuestionMutation) ResetSessionID() {
	m.session = nil
}

// SetQuestionID sets the "question_id" field.
func (m *SessionQuestionMutation) SetQuestionID(s string) {
	m.question = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *SessionQuestionMutation) QuestionID() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *SessionQuestionMutation) ResetQuestionID() {
	m.question = nil
}

// SetPosition sets the "position" field.
func (m *SessionQuestionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SessionQuestionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SessionQuestionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SessionQuestionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SessionQuestionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetPlannedBand sets the "planned_band" field.
func (m *SessionQuestionMutation) SetPlannedBand(sb sessionquestion.PlannedBand) {
	m.planned_band = &sb
}

// PlannedBand returns the value of the "planned_band" field in the mutation.
func (m *SessionQuestionMutation) PlannedBand() (r sessionquestion.PlannedBand, exists bool) {
	v := m.planned_band
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedBand returns the old "planned_band" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldPlannedBand(ctx context.Context) (v sessionquestion.PlannedBand, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedBand: %w", err)
	}
	return oldValue.PlannedBand, nil
}

// ResetPlannedBand resets all changes to the "planned_band" field.
func (m *SessionQuestionMutation) ResetPlannedBand() {
	m.planned_band = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *SessionQuestionMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *SessionQuestionMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *SessionQuestionMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *SessionQuestionMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *SessionQuestionMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *SessionQuestionMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
}

// SetCoverageNew sets the "coverage_new" field.
func (m *SessionQuestionMutation) SetCoverageNew(b bool) {
	m.coverage_new = &b
}

// CoverageNew returns the value of the "coverage_new" field in the mutation.
func (m *SessionQuestionMutation) CoverageNew() (r bool, exists bool) {
	v := m.coverage_new
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverageNew returns the old "coverage_new" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldCoverageNew(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverageNew is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverageNew requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverageNew: %w", err)
	}
	return oldValue.CoverageNew, nil
}

// ResetCoverageNew resets all changes to the "coverage_new" field.
func (m *SessionQuestionMutation) ResetCoverageNew() {
	m.coverage_new = nil
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *SessionQuestionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionquestion.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *SessionQuestionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionQuestionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionQuestionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *SessionQuestionMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[sessionquestion.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *SessionQuestionMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *SessionQuestionMutation) QuestionIDs() (ids []string) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *SessionQuestionMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the SessionQuestionMutation builder.
func (m *SessionQuestionMutation) Where(ps ...predicate.SessionQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionQuestion).
func (m *SessionQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionQuestionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, sessionquestion.FieldSessionID)
	}
	if m.question != nil {
		fields = append(fields, sessionquestion.FieldQuestionID)
	}
	if m.position != nil {
		fields = append(fields, sessionquestion.FieldPosition)
	}
	if m.planned_band != nil {
		fields = append(fields, sessionquestion.FieldPlannedBand)
	}
	if m.subcategory != nil {
		fields = append(fields, sessionquestion.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, sessionquestion.FieldTypeOfQuestion)
	}
	if m.coverage_new != nil {
		fields = append(fields, sessionquestion.FieldCoverageNew)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionquestion.FieldSessionID:
		return m.SessionID()
	case sessionquestion.FieldQuestionID:
		return m.QuestionID()
	case sessionquestion.FieldPosition:
		return m.Position()
	case sessionquestion.FieldPlannedBand:
		return m.PlannedBand()
	case sessionquestion.FieldSubcategory:
		return m.Subcategory()
	case sessionquestion.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case sessionquestion.FieldCoverageNew:
		return m.CoverageNew()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionquestion.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionquestion.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case sessionquestion.FieldPosition:
		return m.OldPosition(ctx)
	case sessionquestion.FieldPlannedBand:
		return m.OldPlannedBand(ctx)
	case sessionquestion.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case sessionquestion.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case sessionquestion.FieldCoverageNew:
		return m.OldCoverageNew(ctx)
	}
	return nil, fmt.Errorf("unknown SessionQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionquestion.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionquestion.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case sessionquestion.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case sessionquestion.FieldPlannedBand:
		v, ok := value.(sessionquestion.PlannedBand)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedBand(v)
		return nil
	case sessionquestion.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case sessionquestion.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case sessionquestion.FieldCoverageNew:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverageNew(v)
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, sessionquestion.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionquestion.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionquestion.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionQuestionMutation) ResetField(name string) error {
	switch name {
	case sessionquestion.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionquestion.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case sessionquestion.FieldPosition:
		m.ResetPosition()
		return nil
	case sessionquestion.FieldPlannedBand:
		m.ResetPlannedBand()
		return nil
	case sessionquestion.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case sessionquestion.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case sessionquestion.FieldCoverageNew:
		m.ResetCoverageNew()
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, sessionquestion.EdgeSession)
	}
	if m.question != nil {
		edges = append(edges, sessionquestion.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionquestion.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case sessionquestion.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, sessionquestion.EdgeSession)
	}
	if m.clearedquestion {
		edges = append(edges, sessionquestion.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionquestion.EdgeSession:
		return m.clearedsession
	case sessionquestion.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionQuestionMutation) ClearEdge(name string) error {
	switch name {
	case sessionquestion.EdgeSession:
		m.ClearSession()
		return nil
	case sessionquestion.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionQuestionMutation) ResetEdge(name string) error {
	switch name {
	case sessionquestion.EdgeSession:
		m.ResetSession()
		return nil
	case sessionquestion.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion edge %s", name)
}

// StudentCounterMutation represents an operation that mutates the StudentCounter nodes in the graph.
type StudentCounterMutation struct {
	config
	op            Op
	typ           string
	id            *string
	next_seq      *int
	addnext_seq   *int
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StudentCounter, error)
	predicates    []predicate.StudentCounter
}

var _ ent.Mutation = (*StudentCounterMutation)(nil)

// studentcounterOption allows management of the mutation configuration using functional options.
type studentcounterOption func(*StudentCounterMutation)

// newStudentCounterMutation creates new mutation for the StudentCounter entity.
func newStudentCounterMutation(c config, op Op, opts ...studentcounterOption) *StudentCounterMutation {
	m := &StudentCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentCounterID sets the ID field of the mutation.
func withStudentCounterID(id string) studentcounterOption {
	return func(m *StudentCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentCounter
		)
		m.oldValue = func(ctx context.Context) (*StudentCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentCounter sets the old StudentCounter of the mutation.
func withStudentCounter(node *StudentCounter) studentcounterOption {
	return func(m *StudentCounterMutation) {
		m.oldValue = func(context.Context) (*StudentCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudentCounter entities.
func (m *StudentCounterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentCounterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentCounterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNextSeq sets the "next_seq" field.
func (m *StudentCounterMutation) SetNextSeq(i int) {
	m.next_seq = &i
	m.addnext_seq = nil
}

// NextSeq returns the value of the "next_seq" field in the mutation.
func (m *StudentCounterMutation) NextSeq() (r int, exists bool) {
	v := m.next_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldNextSeq returns the old "next_seq" field's value of the StudentCounter entity.
// If the StudentCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCounterMutation) OldNextSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextSeq: %w", err)
	}
	return oldValue.NextSeq, nil
}

// AddNextSeq adds i to the "next_seq" field.
func (m *StudentCounterMutation) AddNextSeq(i int) {
	if m.addnext_seq != nil {
		*m.addnext_seq += i
	} else {
		m.addnext_seq = &i
	}
}

// AddedNextSeq returns the value that was added to the "next_seq" field in this mutation.
func (m *StudentCounterMutation) AddedNextSeq() (r int, exists bool) {
	v := m.addnext_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetNextSeq resets all changes to the "next_seq" field.
func (m *StudentCounterMutation) ResetNextSeq() {
	m.next_seq = nil
	m.addnext_seq = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudentCounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudentCounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StudentCounter entity.
// If the StudentCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudentCounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StudentCounterMutation builder.
func (m *StudentCounterMutation) Where(ps ...predicate.StudentCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentCounter).
func (m *StudentCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentCounterMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.next_seq != nil {
		fields = append(fields, studentcounter.FieldNextSeq)
	}
	if m.updated_at != nil {
		fields = append(fields, studentcounter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentcounter.FieldNextSeq:
		return m.NextSeq()
	case studentcounter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentcounter.FieldNextSeq:
		return m.OldNextSeq(ctx)
	case studentcounter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudentCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentcounter.FieldNextSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextSeq(v)
		return nil
	case studentcounter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudentCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentCounterMutation) AddedFields() []string {
	var fields []string
	if m.addnext_seq != nil {
		fields = append(fields, studentcounter.FieldNextSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studentcounter.FieldNextSeq:
		return m.AddedNextSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studentcounter.FieldNextSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextSeq(v)
		return nil
	}
	return fmt.Errorf("unknown StudentCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudentCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentCounterMutation) ResetField(name string) error {
	switch name {
	case studentcounter.FieldNextSeq:
		m.ResetNextSeq()
		return nil
	case studentcounter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudentCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudentCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudentCounter edge %s", name)
}

// StudentCoverageMutation represents an operation that mutates the StudentCoverage nodes in the graph.
type StudentCoverageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	student_id            *string
	subcategory           *string
	type_of_question      *string
	sessions_seen         *int
	addsessions_seen      *int
	first_seen_session    *int
	addfirst_seen_session *int
	last_seen_session     *int
	addlast_seen_session  *int
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*StudentCoverage, error)
	predicates            []predicate.StudentCoverage
}

var _ ent.Mutation = (*StudentCoverageMutation)(nil)

// studentcoverageOption allows management of the mutation configuration using functional options.
type studentcoverageOption func(*StudentCoverageMutation)

// newStudentCoverageMutation creates new mutation for the StudentCoverage entity.
func newStudentCoverageMutation(c config, op Op, opts ...studentcoverageOption) *StudentCoverageMutation {
	m := &StudentCoverageMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentCoverage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentCoverageID sets the ID field of the mutation.
func withStudentCoverageID(id string) studentcoverageOption {
	return func(m *StudentCoverageMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentCoverage
		)
		m.oldValue = func(ctx context.Context) (*StudentCoverage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentCoverage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentCoverage sets the old StudentCoverage of the mutation.
func withStudentCoverage(node *StudentCoverage) studentcoverageOption {
	return func(m *StudentCoverageMutation) {
		m.oldValue = func(context.Context) (*StudentCoverage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentCoverageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentCoverageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudentCoverage entities.
func (m *StudentCoverageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentCoverageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentCoverageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentCoverage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *StudentCoverageMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *StudentCoverageMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *StudentCoverageMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *StudentCoverageMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *StudentCoverageMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *StudentCoverageMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *StudentCoverageMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *StudentCoverageMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *StudentCoverageMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
}

// SetSessionsSeen sets the "sessions_seen" field.
func (m *StudentCoverageMutation) SetSessionsSeen(i int) {
	m.sessions_seen = &i
	m.addsessions_seen = nil
}

// SessionsSeen returns the value of the "sessions_seen" field in the mutation.
func (m *StudentCoverageMutation) SessionsSeen() (r int, exists bool) {
	v := m.sessions_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsSeen returns the old "sessions_seen" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldSessionsSeen(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsSeen: %w", err)
	}
	return oldValue.SessionsSeen, nil
}

// AddSessionsSeen adds i to the "sessions_seen" field.
func (m *StudentCoverageMutation) AddSessionsSeen(i int) {
	if m.addsessions_seen != nil {
		*m.addsessions_seen += i
	} else {
		m.addsessions_seen = &i
	}
}

// AddedSessionsSeen returns the value that was added to the "sessions_seen" field in this mutation.
func (m *StudentCoverageMutation) AddedSessionsSeen() (r int, exists bool) {
	v := m.addsessions_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsSeen resets all changes to the "sessions_seen" field.
func (m *StudentCoverageMutation) ResetSessionsSeen() {
	m.sessions_seen = nil
	m.addsessions_seen = nil
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (m *StudentCoverageMutation) SetFirstSeenSession(i int) {
	m.first_seen_session = &i
	m.addfirst_seen_session = nil
}

// FirstSeenSession returns the value of the "first_seen_session" field in the mutation.
func (m *StudentCoverageMutation) FirstSeenSession() (r int, exists bool) {
	v := m.first_seen_session
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenSession returns the old "first_seen_session" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldFirstSeenSession(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenSession: %w", err)
	}
	return oldValue.FirstSeenSession, nil
}

// AddFirstSeenSession adds i to the "first_seen_session" field.
func (m *StudentCoverageMutation) AddFirstSeenSession(i int) {
	if m.addfirst_seen_session != nil {
		*m.addfirst_seen_session += i
	} else {
		m.addfirst_seen_session = &i
	}
}

// AddedFirstSeenSession returns the value that was added to the "first_seen_session" field in this mutation.
func (m *StudentCoverageMutation) AddedFirstSeenSession() (r int, exists bool) {
	v := m.addfirst_seen_session
	if v == nil {
		return
	}
	return *v, true
}

// ResetFirstSeenSession resets all changes to the "first_seen_session" field.
func (m *StudentCoverageMutation) ResetFirstSeenSession() {
	m.first_seen_session = nil
	m.addfirst_seen_session = nil
}

// SetLastSeenSession sets the "last_seen_session" field.
func (m *StudentCoverageMutation) SetLastSeenSession(i int) {
	m.last_seen_session = &i
	m.addlast_seen_session = nil
}

// LastSeenSession returns the value of the "last_seen_session" field in the mutation.
func (m *StudentCoverageMutation) LastSeenSession() (r int, exists bool) {
	v := m.last_seen_session
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenSession returns the old "last_seen_session" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldLastSeenSession(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenSession: %w", err)
	}
	return oldValue.LastSeenSession, nil
}

// AddLastSeenSession adds i to the "last_seen_session" field.
func (m *StudentCoverageMutation) AddLastSeenSession(i int) {
	if m.addlast_seen_session != nil {
		*m.addlast_seen_session += i
	} else {
		m.addlast_seen_session = &i
	}
}

// AddedLastSeenSession returns the value that was added to the "last_seen_session" field in this mutation.
func (m *StudentCoverageMutation) AddedLastSeenSession() (r int, exists bool) {
	v := m.addlast_seen_session
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeenSession resets all changes to the "last_seen_session" field.
func (m *StudentCoverageMutation) ResetLastSeenSession() {
	m.last_seen_session = nil
	m.addlast_seen_session = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudentCoverageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudentCoverageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StudentCoverage entity.
// If the StudentCoverage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentCoverageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudentCoverageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StudentCoverageMutation builder.
func (m *StudentCoverageMutation) Where(ps ...predicate.StudentCoverage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentCoverageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentCoverageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentCoverage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentCoverageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentCoverageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentCoverage).
func (m *StudentCoverageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentCoverageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.student_id != nil {
		fields = append(fields, studentcoverage.FieldStudentID)
	}
	if m.subcategory != nil {
		fields = append(fields, studentcoverage.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, studentcoverage.FieldTypeOfQuestion)
	}
	if m.sessions_seen != nil {
		fields = append(fields, studentcoverage.FieldSessionsSeen)
	}
	if m.first_seen_session != nil {
		fields = append(fields, studentcoverage.FieldFirstSeenSession)
	}
	if m.last_seen_session != nil {
		fields = append(fields, studentcoverage.FieldLastSeenSession)
	}
	if m.updated_at != nil {
		fields = append(fields, studentcoverage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentCoverageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentcoverage.FieldStudentID:
		return m.StudentID()
	case studentcoverage.FieldSubcategory:
		return m.Subcategory()
	case studentcoverage.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case studentcoverage.FieldSessionsSeen:
		return m.SessionsSeen()
	case studentcoverage.FieldFirstSeenSession:
		return m.FirstSeenSession()
	case studentcoverage.FieldLastSeenSession:
		return m.LastSeenSession()
	case studentcoverage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentCoverageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentcoverage.FieldStudentID:
		return m.OldStudentID(ctx)
	case studentcoverage.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case studentcoverage.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case studentcoverage.FieldSessionsSeen:
		return m.OldSessionsSeen(ctx)
	case studentcoverage.FieldFirstSeenSession:
		return m.OldFirstSeenSession(ctx)
	case studentcoverage.FieldLastSeenSession:
		return m.OldLastSeenSession(ctx)
	case studentcoverage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudentCoverage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentCoverageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentcoverage.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case studentcoverage.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case studentcoverage.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case studentcoverage.FieldSessionsSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsSeen(v)
		return nil
	case studentcoverage.FieldFirstSeenSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenSession(v)
		return nil
	case studentcoverage.FieldLastSeenSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenSession(v)
		return nil
	case studentcoverage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudentCoverage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentCoverageMutation) AddedFields() []string {
	var fields []string
	if m.addsessions_seen != nil {
		fields = append(fields, studentcoverage.FieldSessionsSeen)
	}
	if m.addfirst_seen_session != nil {
		fields = append(fields, studentcoverage.FieldFirstSeenSession)
	}
	if m.addlast_seen_session != nil {
		fields = append(fields, studentcoverage.FieldLastSeenSession)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentCoverageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studentcoverage.FieldSessionsSeen:
		return m.AddedSessionsSeen()
	case studentcoverage.FieldFirstSeenSession:
		return m.AddedFirstSeenSession()
	case studentcoverage.FieldLastSeenSession:
		return m.AddedLastSeenSession()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentCoverageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studentcoverage.FieldSessionsSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsSeen(v)
		return nil
	case studentcoverage.FieldFirstSeenSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstSeenSession(v)
		return nil
	case studentcoverage.FieldLastSeenSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeenSession(v)
		return nil
	}
	return fmt.Errorf("unknown StudentCoverage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentCoverageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentCoverageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentCoverageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudentCoverage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentCoverageMutation) ResetField(name string) error {
	switch name {
	case studentcoverage.FieldStudentID:
		m.ResetStudentID()
		return nil
	case studentcoverage.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case studentcoverage.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case studentcoverage.FieldSessionsSeen:
		m.ResetSessionsSeen()
		return nil
	case studentcoverage.FieldFirstSeenSession:
		m.ResetFirstSeenSession()
		return nil
	case studentcoverage.FieldLastSeenSession:
		m.ResetLastSeenSession()
		return nil
	case studentcoverage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudentCoverage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentCoverageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentCoverageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentCoverageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentCoverageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentCoverageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentCoverageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentCoverageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudentCoverage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentCoverageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudentCoverage edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	student_id          *string
	sess_seq            *int
	addsess_seq         *int
	status              *studysession.Status
	phase               *studysession.Phase
	session_type        *studysession.SessionType
	plan_key            *string
	constraint_report   **models.ConstraintReport
	created_at          *time.Time
	served_at           *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	pack_entries        map[string]struct{}
	removedpack_entries map[string]struct{}
	clearedpack_entries bool
	attempts            map[string]struct{}
	removedattempts     map[string]struct{}
	clearedattempts     bool
	done                bool
	oldValue            func(context.Context) (*StudySession, error)
	predicates          []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id string) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudySession entities.
func (m *StudySessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *StudySessionMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *StudySessionMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *StudySessionMutation) ResetStudentID() {
	m.student_id = nil
}

// SetSessSeq sets the "sess_seq" field.
func (m *StudySessionMutation) SetSessSeq(i int) {
	m.sess_seq = &i
	m.addsess_seq = nil
}

// SessSeq returns the value of the "sess_seq" field in the mutation.
func (m *StudySessionMutation) SessSeq() (r int, exists bool) {
	v := m.sess_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSessSeq returns the old "sess_seq" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessSeq: %w", err)
	}
	return oldValue.SessSeq, nil
}

// AddSessSeq adds i to the "sess_seq" field.
func (m *StudySessionMutation) AddSessSeq(i int) {
	if m.addsess_seq != nil {
		*m.addsess_seq += i
	} else {
		m.addsess_seq = &i
	}
}

// AddedSessSeq returns the value that was added to the "sess_seq" field in this mutation.
func (m *StudySessionMutation) AddedSessSeq() (r int, exists bool) {
	v := m.addsess_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessSeq resets all changes to the "sess_seq" field.
func (m *StudySessionMutation) ResetSessSeq() {
	m.sess_seq = nil
	m.addsess_seq = nil
}

// SetStatus sets the "status" field.
func (m *StudySessionMutation) SetStatus(s studysession.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudySessionMutation) Status() (r studysession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStatus(ctx context.Context) (v studysession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StudySessionMutation) ResetStatus() {
	m.status = nil
}

// SetPhase sets the "phase" field.
func (m *StudySessionMutation) SetPhase(s studysession.Phase) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *StudySessionMutation) Phase() (r studysession.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldPhase(ctx context.Context) (v studysession.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *StudySessionMutation) ResetPhase() {
	m.phase = nil
}

// SetSessionType sets the "session_type" field.
func (m *StudySessionMutation) SetSessionType(st studysession.SessionType) {
	m.session_type = &st
}

// SessionType returns the value of the "session_type" field in the mutation.
func (m *StudySessionMutation) SessionType() (r studysession.SessionType, exists bool) {
	v := m.session_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionType returns the old "session_type" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionType(ctx context.Context) (v studysession.SessionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionType: %w", err)
	}
	return oldValue.SessionType, nil
}

// ResetSessionType resets all changes to the "session_type" field.
func (m *StudySessionMutation) ResetSessionType() {
	m.session_type = nil
}

// SetPlanKey sets the "plan_key" field.
func (m *StudySessionMutation) SetPlanKey(s string) {
	m.plan_key = &s
}

// PlanKey returns the value of the "plan_key" field in the mutation.
func (m *StudySessionMutation) PlanKey() (r string, exists bool) {
	v := m.plan_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanKey returns the old "plan_key" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldPlanKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanKey: %w", err)
	}
	return oldValue.PlanKey, nil
}

// ResetPlanKey resets all changes to the "plan_key" field.
func (m *StudySessionMutation) ResetPlanKey() {
	m.plan_key = nil
}

// SetConstraintReport sets the "constraint_report" field.
func (m *StudySessionMutation) SetConstraintReport(mr *models.ConstraintReport) {
	m.constraint_report = &mr
}

// ConstraintReport returns the value of the "constraint_report" field in the mutation.
func (m *StudySessionMutation) ConstraintReport() (r *models.ConstraintReport, exists bool) {
	v := m.constraint_report
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraintReport returns the old "constraint_report" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldConstraintReport(ctx context.Context) (v *models.ConstraintReport, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraintReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraintReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraintReport: %w", err)
	}
	return oldValue.ConstraintReport, nil
}

// ClearConstraintReport clears the value of the "constraint_report" field.
func (m *StudySessionMutation) ClearConstraintReport() {
	m.constraint_report = nil
	m.clearedFields[studysession.FieldConstraintReport] = struct{}{}
}

// ConstraintReportCleared returns if the "constraint_report" field was cleared in this mutation.
func (m *StudySessionMutation) ConstraintReportCleared() bool {
	_, ok := m.clearedFields[studysession.FieldConstraintReport]
	return ok
}

// ResetConstraintReport resets all changes to the "constraint_report" field.
func (m *StudySessionMutation) ResetConstraintReport() {
	m.constraint_report = nil
	delete(m.clearedFields, studysession.FieldConstraintReport)
}

// SetCreatedAt sets the "created_at" field.
func (m *StudySessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudySessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudySessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetServedAt sets the "served_at" field.
func (m *StudySessionMutation) SetServedAt(t time.Time) {
	m.served_at = &t
}

// ServedAt returns the value of the "served_at" field in the mutation.
func (m *StudySessionMutation) ServedAt() (r time.Time, exists bool) {
	v := m.served_at
	if v == nil {
		return
	}
	return *v, true
}

// OldServedAt returns the old "served_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldServedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServedAt: %w", err)
	}
	return oldValue.ServedAt, nil
}

// ClearServedAt clears the value of the "served_at" field.
func (m *StudySessionMutation) ClearServedAt() {
	m.served_at = nil
	m.clearedFields[studysession.FieldServedAt] = struct{}{}
}

// ServedAtCleared returns if the "served_at" field was cleared in this mutation.
func (m *StudySessionMutation) ServedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldServedAt]
	return ok
}

// ResetServedAt resets all changes to the "served_at" field.
func (m *StudySessionMutation) ResetServedAt() {
	m.served_at = nil
	delete(m.clearedFields, studysession.FieldServedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StudySessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StudySessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StudySessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[studysession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StudySessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StudySessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, studysession.FieldCompletedAt)
}

// AddPackEntryIDs adds the "pack_entries" edge to the SessionQuestion entity by ids.
func (m *StudySessionMutation) AddPackEntryIDs(ids ...string) {
	if m.pack_entries == nil {
		m.pack_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.pack_entries[ids[i]] = struct{}{}
	}
}

// ClearPackEntries clears the "pack_entries" edge to the SessionQuestion entity.
func (m *StudySessionMutation) ClearPackEntries() {
	m.clearedpack_entries = true
}

// PackEntriesCleared reports if the "pack_entries" edge to the SessionQuestion entity was cleared.
func (m *StudySessionMutation) PackEntriesCleared() bool {
	return m.clearedpack_entries
}

// RemovePackEntryIDs removes the "pack_entries" edge to the SessionQuestion entity by IDs.
func (m *StudySessionMutation) RemovePackEntryIDs(ids ...string) {
	if m.removedpack_entries == nil {
		m.removedpack_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pack_entries, ids[i])
		m.removedpack_entries[ids[i]] = struct{}{}
	}
}

// RemovedPackEntries returns the removed IDs of the "pack_entries" edge to the SessionQuestion entity.
func (m *StudySessionMutation) RemovedPackEntriesIDs() (ids []string) {
	for id := range m.removedpack_entries {
		ids = append(ids, id)
	}
	return
}

// PackEntriesIDs returns the "pack_entries" edge IDs in the mutation.
func (m *StudySessionMutation) PackEntriesIDs() (ids []string) {
	for id := range m.pack_entries {
		ids = append(ids, id)
	}
	return
}

// ResetPackEntries resets all changes to the "pack_entries" edge.
func (m *StudySessionMutation) ResetPackEntries() {
	m.pack_entries = nil
	m.clearedpack_entries = false
	m.removedpack_entries = nil
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by ids.
func (m *StudySessionMutation) AddAttemptIDs(ids ...string) {
	if m.attempts == nil {
		m.attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the Attempt entity.
func (m *StudySessionMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the Attempt entity was cleared.
func (m *StudySessionMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the Attempt entity by IDs.
func (m *StudySessionMutation) RemoveAttemptIDs(ids ...string) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the Attempt entity.
func (m *StudySessionMutation) RemovedAttemptsIDs() (ids []string) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *StudySessionMutation) AttemptsIDs() (ids []string) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *StudySessionMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.student_id != nil {
		fields = append(fields, studysession.FieldStudentID)
	}
	if m.sess_seq != nil {
		fields = append(fields, studysession.FieldSessSeq)
	}
	if m.status != nil {
		fields = append(fields, studysession.FieldStatus)
	}
	if m.phase != nil {
		fields = append(fields, studysession.FieldPhase)
	}
	if m.session_type != nil {
		fields = append(fields, studysession.FieldSessionType)
	}
	if m.plan_key != nil {
		fields = append(fields, studysession.FieldPlanKey)
	}
	if m.constraint_report != nil {
		fields = append(fields, studysession.FieldConstraintReport)
	}
	if m.created_at != nil {
		fields = append(fields, studysession.FieldCreatedAt)
	}
	if m.served_at != nil {
		fields = append(fields, studysession.FieldServedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, studysession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldStudentID:
		return m.StudentID()
	case studysession.FieldSessSeq:
		return m.SessSeq()
	case studysession.FieldStatus:
		return m.Status()
	case studysession.FieldPhase:
		return m.Phase()
	case studysession.FieldSessionType:
		return m.SessionType()
	case studysession.FieldPlanKey:
		return m.PlanKey()
	case studysession.FieldConstraintReport:
		return m.ConstraintReport()
	case studysession.FieldCreatedAt:
		return m.CreatedAt()
	case studysession.FieldServedAt:
		return m.ServedAt()
	case studysession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldStudentID:
		return m.OldStudentID(ctx)
	case studysession.FieldSessSeq:
		return m.OldSessSeq(ctx)
	case studysession.FieldStatus:
		return m.OldStatus(ctx)
	case studysession.FieldPhase:
		return m.OldPhase(ctx)
	case studysession.FieldSessionType:
		return m.OldSessionType(ctx)
	case studysession.FieldPlanKey:
		return m.OldPlanKey(ctx)
	case studysession.FieldConstraintReport:
		return m.OldConstraintReport(ctx)
	case studysession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case studysession.FieldServedAt:
		return m.OldServedAt(ctx)
	case studysession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case studysession.FieldSessSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessSeq(v)
		return nil
	case studysession.FieldStatus:
		v, ok := value.(studysession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case studysession.FieldPhase:
		v, ok := value.(studysession.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case studysession.FieldSessionType:
		v, ok := value.(studysession.SessionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionType(v)
		return nil
	case studysession.FieldPlanKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanKey(v)
		return nil
	case studysession.FieldConstraintReport:
		v, ok := value.(*models.ConstraintReport)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraintReport(v)
		return nil
	case studysession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case studysession.FieldServedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServedAt(v)
		return nil
	case studysession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	var fields []string
	if m.addsess_seq != nil {
		fields = append(fields, studysession.FieldSessSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldSessSeq:
		return m.AddedSessSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldSessSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessSeq(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldConstraintReport) {
		fields = append(fields, studysession.FieldConstraintReport)
	}
	if m.FieldCleared(studysession.FieldServedAt) {
		fields = append(fields, studysession.FieldServedAt)
	}
	if m.FieldCleared(studysession.FieldCompletedAt) {
		fields = append(fields, studysession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldConstraintReport:
		m.ClearConstraintReport()
		return nil
	case studysession.FieldServedAt:
		m.ClearServedAt()
		return nil
	case studysession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldStudentID:
		m.ResetStudentID()
		return nil
	case studysession.FieldSessSeq:
		m.ResetSessSeq()
		return nil
	case studysession.FieldStatus:
		m.ResetStatus()
		return nil
	case studysession.FieldPhase:
		m.ResetPhase()
		return nil
	case studysession.FieldSessionType:
		m.ResetSessionType()
		return nil
	case studysession.FieldPlanKey:
		m.ResetPlanKey()
		return nil
	case studysession.FieldConstraintReport:
		m.ResetConstraintReport()
		return nil
	case studysession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case studysession.FieldServedAt:
		m.ResetServedAt()
		return nil
	case studysession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.pack_entries != nil {
		edges = append(edges, studysession.EdgePackEntries)
	}
	if m.attempts != nil {
		edges = append(edges, studysession.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studysession.EdgePackEntries:
		ids := make([]ent.Value, 0, len(m.pack_entries))
		for id := range m.pack_entries {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpack_entries != nil {
		edges = append(edges, studysession.EdgePackEntries)
	}
	if m.removedattempts != nil {
		edges = append(edges, studysession.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case studysession.EdgePackEntries:
		ids := make([]ent.Value, 0, len(m.removedpack_entries))
		for id := range m.removedpack_entries {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpack_entries {
		edges = append(edges, studysession.EdgePackEntries)
	}
	if m.clearedattempts {
		edges = append(edges, studysession.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	switch name {
	case studysession.EdgePackEntries:
		return m.clearedpack_entries
	case studysession.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	switch name {
	case studysession.EdgePackEntries:
		m.ResetPackEntries()
		return nil
	case studysession.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown StudySession edge %s", name)
}
