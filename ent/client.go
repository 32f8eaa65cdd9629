// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/prepforge/quanta/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/prepforge/quanta/ent/attempt"
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/ent/mastery"
	"github.com/prepforge/quanta/ent/pyqquestion"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/ent/sessionquestion"
	"github.com/prepforge/quanta/ent/studentcounter"
	"github.com/prepforge/quanta/ent/studentcoverage"
	"github.com/prepforge/quanta/ent/studysession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// EnrichmentAudit is the client for interacting with the EnrichmentAudit builders.
	EnrichmentAudit *EnrichmentAuditClient
	// Mastery is the client for interacting with the Mastery builders.
	Mastery *MasteryClient
	// PYQQuestion is the client for interacting with the PYQQuestion builders.
	PYQQuestion *PYQQuestionClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// SessionQuestion is the client for interacting with the SessionQuestion builders.
	SessionQuestion *SessionQuestionClient
	// StudentCounter is the client for interacting with the StudentCounter builders.
	StudentCounter *StudentCounterClient
	// StudentCoverage is the client for interacting with the StudentCoverage builders.
	StudentCoverage *StudentCoverageClient
	// StudySession is the client for interacting with the StudySession builders.
	StudySession *StudySessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attempt = NewAttemptClient(c.config)
	c.EnrichmentAudit = NewEnrichmentAuditClient(c.config)
	c.Mastery = NewMasteryClient(c.config)
	c.PYQQuestion = NewPYQQuestionClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.SessionQuestion = NewSessionQuestionClient(c.config)
	c.StudentCounter = NewStudentCounterClient(c.config)
	c.StudentCoverage = NewStudentCoverageClient(c.config)
	c.StudySession = NewStudySessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		EnrichmentAudit: NewEnrichmentAuditClient(cfg),
		Mastery:         NewMasteryClient(cfg),
		PYQQuestion:     NewPYQQuestionClient(cfg),
		Question:        NewQuestionClient(cfg),
		SessionQuestion: NewSessionQuestionClient(cfg),
		StudentCounter:  NewStudentCounterClient(cfg),
		StudentCoverage: NewStudentCoverageClient(cfg),
		StudySession:    NewStudySessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		EnrichmentAudit: NewEnrichmentAuditClient(cfg),
		Mastery:         NewMasteryClient(cfg),
		PYQQuestion:     NewPYQQuestionClient(cfg),
		Question:        NewQuestionClient(cfg),
		SessionQuestion: NewSessionQuestionClient(cfg),
		StudentCounter:  NewStudentCounterClient(cfg),
		StudentCoverage: NewStudentCoverageClient(cfg),
		StudySession:    NewStudySessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attempt.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Attempt, c.EnrichmentAudit, c.Mastery, c.PYQQuestion, c.Question,
		c.SessionQuestion, c.StudentCounter, c.StudentCoverage, c.StudySession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.EnrichmentAudit, c.Mastery, c.PYQQuestion, c.Question,
		c.SessionQuestion, c.StudentCounter, c.StudentCoverage, c.StudySession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *EnrichmentAuditMutation:
		return c.EnrichmentAudit.mutate(ctx, m)
	case *MasteryMutation:
		return c.Mastery.mutate(ctx, m)
	case *PYQQuestionMutation:
		return c.PYQQuestion.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *SessionQuestionMutation:
		return c.SessionQuestion.mutate(ctx, m)
	case *StudentCounterMutation:
		return c.StudentCounter.mutate(ctx, m)
	case *StudentCoverageMutation:
		return c.StudentCoverage.mutate(ctx, m)
	case *StudySessionMutation:
		return c.StudySession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id string) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id string) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id string) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id string) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestion queries the question edge of a Attempt.
func (c *AttemptClient) QueryQuestion(_m *Attempt) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attempt.Table, attempt.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attempt.QuestionTable, attempt.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySession queries the session edge of a Attempt.
func (c *AttemptClient) QuerySession(_m *Attempt) *StudySessionQuery {
	query := (&StudySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attempt.Table, attempt.FieldID, id),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attempt.SessionTable, attempt.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// EnrichmentAuditClient is a client for the EnrichmentAudit schema.
type EnrichmentAuditClient struct {
	config
}

// NewEnrichmentAuditClient returns a client for the EnrichmentAudit from the given config.
func NewEnrichmentAuditClient(c config) *EnrichmentAuditClient {
	return &EnrichmentAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `enrichmentaudit.Hooks(f(g(h())))`.
func (c *EnrichmentAuditClient) Use(hooks ...Hook) {
	c.hooks.EnrichmentAudit = append(c.hooks.EnrichmentAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `enrichmentaudit.Intercept(f(g(h())))`.
func (c *EnrichmentAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnrichmentAudit = append(c.inters.EnrichmentAudit, interceptors...)
}

// Create returns a builder for creating a EnrichmentAudit entity.
func (c *EnrichmentAuditClient) Create() *EnrichmentAuditCreate {
	mutation := newEnrichmentAuditMutation(c.config, OpCreate)
	return &EnrichmentAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnrichmentAudit entities.
func (c *EnrichmentAuditClient) CreateBulk(builders ...*EnrichmentAuditCreate) *EnrichmentAuditCreateBulk {
	return &EnrichmentAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnrichmentAuditClient) MapCreateBulk(slice any, setFunc func(*EnrichmentAuditCreate, int)) *EnrichmentAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnrichmentAuditCreateBulk{err: fmt.Errorf("calling to EnrichmentAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnrichmentAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnrichmentAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnrichmentAudit.
func (c *EnrichmentAuditClient) Update() *EnrichmentAuditUpdate {
	mutation := newEnrichmentAuditMutation(c.config, OpUpdate)
	return &EnrichmentAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnrichmentAuditClient) UpdateOne(_m *EnrichmentAudit) *EnrichmentAuditUpdateOne {
	mutation := newEnrichmentAuditMutation(c.config, OpUpdateOne, withEnrichmentAudit(_m))
	return &EnrichmentAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnrichmentAuditClient) UpdateOneID(id string) *EnrichmentAuditUpdateOne {
	mutation := newEnrichmentAuditMutation(c.config, OpUpdateOne, withEnrichmentAuditID(id))
	return &EnrichmentAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnrichmentAudit.
func (c *EnrichmentAuditClient) Delete() *EnrichmentAuditDelete {
	mutation := newEnrichmentAuditMutation(c.config, OpDelete)
	return &EnrichmentAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnrichmentAuditClient) DeleteOne(_m *EnrichmentAudit) *EnrichmentAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnrichmentAuditClient) DeleteOneID(id string) *EnrichmentAuditDeleteOne {
	builder := c.Delete().Where(enrichmentaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnrichmentAuditDeleteOne{builder}
}

// Query returns a query builder for EnrichmentAudit.
func (c *EnrichmentAuditClient) Query() *EnrichmentAuditQuery {
	return &EnrichmentAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnrichmentAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a EnrichmentAudit entity by its id.
func (c *EnrichmentAuditClient) Get(ctx context.Context, id string) (*EnrichmentAudit, error) {
	return c.Query().Where(enrichmentaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnrichmentAuditClient) GetX(ctx context.Context, id string) *EnrichmentAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestion queries the question edge of a EnrichmentAudit.
func (c *EnrichmentAuditClient) QueryQuestion(_m *EnrichmentAudit) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(enrichmentaudit.Table, enrichmentaudit.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, enrichmentaudit.QuestionTable, enrichmentaudit.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EnrichmentAuditClient) Hooks() []Hook {
	return c.hooks.EnrichmentAudit
}

// Interceptors returns the client interceptors.
func (c *EnrichmentAuditClient) Interceptors() []Interceptor {
	return c.inters.EnrichmentAudit
}

func (c *EnrichmentAuditClient) mutate(ctx context.Context, m *EnrichmentAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnrichmentAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnrichmentAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnrichmentAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnrichmentAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnrichmentAudit mutation op: %q", m.Op())
	}
}

// MasteryClient is a client for the Mastery schema.
type MasteryClient struct {
	config
}

// NewMasteryClient returns a client for the Mastery from the given config.
func NewMasteryClient(c config) *MasteryClient {
	return &MasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mastery.Hooks(f(g(h())))`.
func (c *MasteryClient) Use(hooks ...Hook) {
	c.hooks.Mastery = append(c.hooks.Mastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mastery.Intercept(f(g(h())))`.
func (c *MasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Mastery = append(c.inters.Mastery, interceptors...)
}

// Create returns a builder for creating a Mastery entity.
func (c *MasteryClient) Create() *MasteryCreate {
	mutation := newMasteryMutation(c.config, OpCreate)
	return &MasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Mastery entities.
func (c *MasteryClient) CreateBulk(builders ...*MasteryCreate) *MasteryCreateBulk {
	return &MasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryClient) MapCreateBulk(slice any, setFunc func(*MasteryCreate, int)) *MasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryCreateBulk{err: fmt.Errorf("calling to MasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Mastery.
func (c *MasteryClient) Update() *MasteryUpdate {
	mutation := newMasteryMutation(c.config, OpUpdate)
	return &MasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryClient) UpdateOne(_m *Mastery) *MasteryUpdateOne {
	mutation := newMasteryMutation(c.config, OpUpdateOne, withMastery(_m))
	return &MasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryClient) UpdateOneID(id string) *MasteryUpdateOne {
	mutation := newMasteryMutation(c.config, OpUpdateOne, withMasteryID(id))
	return &MasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Mastery.
func (c *MasteryClient) Delete() *MasteryDelete {
	mutation := newMasteryMutation(c.config, OpDelete)
	return &MasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryClient) DeleteOne(_m *Mastery) *MasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryClient) DeleteOneID(id string) *MasteryDeleteOne {
	builder := c.Delete().Where(mastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryDeleteOne{builder}
}

// Query returns a query builder for Mastery.
func (c *MasteryClient) Query() *MasteryQuery {
	return &MasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a Mastery entity by its id.
func (c *MasteryClient) Get(ctx context.Context, id string) (*Mastery, error) {
	return c.Query().Where(mastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryClient) GetX(ctx context.Context, id string) *Mastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryClient) Hooks() []Hook {
	return c.hooks.Mastery
}

// Interceptors returns the client interceptors.
func (c *MasteryClient) Interceptors() []Interceptor {
	return c.inters.Mastery
}

func (c *MasteryClient) mutate(ctx context.Context, m *MasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Mastery mutation op: %q", m.Op())
	}
}

// PYQQuestionClient is a client for the PYQQuestion schema.
type PYQQuestionClient struct {
	config
}

// NewPYQQuestionClient returns a client for the PYQQuestion from the given config.
func NewPYQQuestionClient(c config) *PYQQuestionClient {
	return &PYQQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pyqquestion.Hooks(f(g(h())))`.
func (c *PYQQuestionClient) Use(hooks ...Hook) {
	c.hooks.PYQQuestion = append(c.hooks.PYQQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pyqquestion.Intercept(f(g(h())))`.
func (c *PYQQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PYQQuestion = append(c.inters.PYQQuestion, interceptors...)
}

// Create returns a builder for creating a PYQQuestion entity.
func (c *PYQQuestionClient) Create() *PYQQuestionCreate {
	mutation := newPYQQuestionMutation(c.config, OpCreate)
	return &PYQQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PYQQuestion entities.
func (c *PYQQuestionClient) CreateBulk(builders ...*PYQQuestionCreate) *PYQQuestionCreateBulk {
	return &PYQQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PYQQuestionClient) MapCreateBulk(slice any, setFunc func(*PYQQuestionCreate, int)) *PYQQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PYQQuestionCreateBulk{err: fmt.Errorf("calling to PYQQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PYQQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PYQQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PYQQuestion.
func (c *PYQQuestionClient) Update() *PYQQuestionUpdate {
	mutation := newPYQQuestionMutation(c.config, OpUpdate)
	return &PYQQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PYQQuestionClient) UpdateOne(_m *PYQQuestion) *PYQQuestionUpdateOne {
	mutation := newPYQQuestionMutation(c.config, OpUpdateOne, withPYQQuestion(_m))
	return &PYQQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PYQQuestionClient) UpdateOneID(id string) *PYQQuestionUpdateOne {
	mutation := newPYQQuestionMutation(c.config, OpUpdateOne, withPYQQuestionID(id))
	return &PYQQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PYQQuestion.
func (c *PYQQuestionClient) Delete() *PYQQuestionDelete {
	mutation := newPYQQuestionMutation(c.config, OpDelete)
	return &PYQQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PYQQuestionClient) DeleteOne(_m *PYQQuestion) *PYQQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PYQQuestionClient) DeleteOneID(id string) *PYQQuestionDeleteOne {
	builder := c.Delete().Where(pyqquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PYQQuestionDeleteOne{builder}
}

// Query returns a query builder for PYQQuestion.
func (c *PYQQuestionClient) Query() *PYQQuestionQuery {
	return &PYQQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePYQQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a PYQQuestion entity by its id.
func (c *PYQQuestionClient) Get(ctx context.Context, id string) (*PYQQuestion, error) {
	return c.Query().Where(pyqquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PYQQuestionClient) GetX(ctx context.Context, id string) *PYQQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PYQQuestionClient) Hooks() []Hook {
	return c.hooks.PYQQuestion
}

// Interceptors returns the client interceptors.
func (c *PYQQuestionClient) Interceptors() []Interceptor {
	return c.inters.PYQQuestion
}

func (c *PYQQuestionClient) mutate(ctx context.Context, m *PYQQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PYQQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PYQQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PYQQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PYQQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PYQQuestion mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id string) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id string) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id string) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id string) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttempts queries the attempts edge of a Question.
func (c *QuestionClient) QueryAttempts(_m *Question) *AttemptQuery {
	query := (&AttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(attempt.Table, attempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, question.AttemptsTable, question.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPackEntries queries the pack_entries edge of a Question.
func (c *QuestionClient) QueryPackEntries(_m *Question) *SessionQuestionQuery {
	query := (&SessionQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(sessionquestion.Table, sessionquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, question.PackEntriesTable, question.PackEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAudits queries the audits edge of a Question.
func (c *QuestionClient) QueryAudits(_m *Question) *EnrichmentAuditQuery {
	query := (&EnrichmentAuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(enrichmentaudit.Table, enrichmentaudit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, question.AuditsTable, question.AuditsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// SessionQuestionClient is a client for the SessionQuestion schema.
type SessionQuestionClient struct {
	config
}

// NewSessionQuestionClient returns a client for the SessionQuestion from the given config.
func NewSessionQuestionClient(c config) *SessionQuestionClient {
	return &SessionQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionquestion.Hooks(f(g(h())))`.
func (c *SessionQuestionClient) Use(hooks ...Hook) {
	c.hooks.SessionQuestion = append(c.hooks.SessionQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionquestion.Intercept(f(g(h())))`.
func (c *SessionQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionQuestion = append(c.inters.SessionQuestion, interceptors...)
}

// Create returns a builder for creating a SessionQuestion entity.
func (c *SessionQuestionClient) Create() *SessionQuestionCreate {
	mutation := newSessionQuestionMutation(c.config, OpCreate)
	return &SessionQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionQuestion entities.
func (c *SessionQuestionClient) CreateBulk(builders ...*SessionQuestionCreate) *SessionQuestionCreateBulk {
	return &SessionQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionQuestionClient) MapCreateBulk(slice any, setFunc func(*SessionQuestionCreate, int)) *SessionQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionQuestionCreateBulk{err: fmt.Errorf("calling to SessionQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionQuestion.
func (c *SessionQuestionClient) Update() *SessionQuestionUpdate {
	mutation := newSessionQuestionMutation(c.config, OpUpdate)
	return &SessionQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionQuestionClient) UpdateOne(_m *SessionQuestion) *SessionQuestionUpdateOne {
	mutation := newSessionQuestionMutation(c.config, OpUpdateOne, withSessionQuestion(_m))
	return &SessionQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionQuestionClient) UpdateOneID(id string) *SessionQuestionUpdateOne {
	mutation := newSessionQuestionMutation(c.config, OpUpdateOne, withSessionQuestionID(id))
	return &SessionQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionQuestion.
func (c *SessionQuestionClient) Delete() *SessionQuestionDelete {
	mutation := newSessionQuestionMutation(c.config, OpDelete)
	return &SessionQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionQuestionClient) DeleteOne(_m *SessionQuestion) *SessionQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionQuestionClient) DeleteOneID(id string) *SessionQuestionDeleteOne {
	builder := c.Delete().Where(sessionquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionQuestionDeleteOne{builder}
}

// Query returns a query builder for SessionQuestion.
func (c *SessionQuestionClient) Query() *SessionQuestionQuery {
	return &SessionQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionQuestion entity by its id.
func (c *SessionQuestionClient) Get(ctx context.Context, id string) (*SessionQuestion, error) {
	return c.Query().Where(sessionquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionQuestionClient) GetX(ctx context.Context, id string) *SessionQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionQuestion.
func (c *SessionQuestionClient) QuerySession(_m *SessionQuestion) *StudySessionQuery {
	query := (&StudySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionquestion.Table, sessionquestion.FieldID, id),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionquestion.SessionTable, sessionquestion.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestion queries the question edge of a SessionQuestion.
func (c *SessionQuestionClient) QueryQuestion(_m *SessionQuestion) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionquestion.Table, sessionquestion.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionquestion.QuestionTable, sessionquestion.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionQuestionClient) Hooks() []Hook {
	return c.hooks.SessionQuestion
}

// Interceptors returns the client interceptors.
func (c *SessionQuestionClient) Interceptors() []Interceptor {
	return c.inters.SessionQuestion
}

func (c *SessionQuestionClient) mutate(ctx context.Context, m *SessionQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionQuestion mutation op: %q", m.Op())
	}
}

// StudentCounterClient is a client for the StudentCounter schema.
type StudentCounterClient struct {
	config
}

// NewStudentCounterClient returns a client for the StudentCounter from the given config.
func NewStudentCounterClient(c config) *StudentCounterClient {
	return &StudentCounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentcounter.Hooks(f(g(h())))`.
func (c *StudentCounterClient) Use(hooks ...Hook) {
	c.hooks.StudentCounter = append(c.hooks.StudentCounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentcounter.Intercept(f(g(h())))`.
func (c *StudentCounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentCounter = append(c.inters.StudentCounter, interceptors...)
}

// Create returns a builder for creating a StudentCounter entity.
func (c *StudentCounterClient) Create() *StudentCounterCreate {
	mutation := newStudentCounterMutation(c.config, OpCreate)
	return &StudentCounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentCounter entities.
func (c *StudentCounterClient) CreateBulk(builders ...*StudentCounterCreate) *StudentCounterCreateBulk {
	return &StudentCounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentCounterClient) MapCreateBulk(slice any, setFunc func(*StudentCounterCreate, int)) *StudentCounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentCounterCreateBulk{err: fmt.Errorf("calling to StudentCounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentCounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentCounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentCounter.
func (c *StudentCounterClient) Update() *StudentCounterUpdate {
	mutation := newStudentCounterMutation(c.config, OpUpdate)
	return &StudentCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentCounterClient) UpdateOne(_m *StudentCounter) *StudentCounterUpdateOne {
	mutation := newStudentCounterMutation(c.config, OpUpdateOne, withStudentCounter(_m))
	return &StudentCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentCounterClient) UpdateOneID(id string) *StudentCounterUpdateOne {
	mutation := newStudentCounterMutation(c.config, OpUpdateOne, withStudentCounterID(id))
	return &StudentCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentCounter.
func (c *StudentCounterClient) Delete() *StudentCounterDelete {
	mutation := newStudentCounterMutation(c.config, OpDelete)
	return &StudentCounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentCounterClient) DeleteOne(_m *StudentCounter) *StudentCounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentCounterClient) DeleteOneID(id string) *StudentCounterDeleteOne {
	builder := c.Delete().Where(studentcounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentCounterDeleteOne{builder}
}

// Query returns a query builder for StudentCounter.
func (c *StudentCounterClient) Query() *StudentCounterQuery {
	return &StudentCounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentCounter},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentCounter entity by its id.
func (c *StudentCounterClient) Get(ctx context.Context, id string) (*StudentCounter, error) {
	return c.Query().Where(studentcounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentCounterClient) GetX(ctx context.Context, id string) *StudentCounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentCounterClient) Hooks() []Hook {
	return c.hooks.StudentCounter
}

// Interceptors returns the client interceptors.
func (c *StudentCounterClient) Interceptors() []Interceptor {
	return c.inters.StudentCounter
}

func (c *StudentCounterClient) mutate(ctx context.Context, m *StudentCounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentCounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentCounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentCounter mutation op: %q", m.Op())
	}
}

// StudentCoverageClient is a client for the StudentCoverage schema.
type StudentCoverageClient struct {
	config
}

// NewStudentCoverageClient returns a client for the StudentCoverage from the given config.
func NewStudentCoverageClient(c config) *StudentCoverageClient {
	return &StudentCoverageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentcoverage.Hooks(f(g(h())))`.
func (c *StudentCoverageClient) Use(hooks ...Hook) {
	c.hooks.StudentCoverage = append(c.hooks.StudentCoverage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentcoverage.Intercept(f(g(h())))`.
func (c *StudentCoverageClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentCoverage = append(c.inters.StudentCoverage, interceptors...)
}

// Create returns a builder for creating a StudentCoverage entity.
func (c *StudentCoverageClient) Create() *StudentCoverageCreate {
	mutation := newStudentCoverageMutation(c.config, OpCreate)
	return &StudentCoverageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentCoverage entities.
func (c *StudentCoverageClient) CreateBulk(builders ...*StudentCoverageCreate) *StudentCoverageCreateBulk {
	return &StudentCoverageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentCoverageClient) MapCreateBulk(slice any, setFunc func(*StudentCoverageCreate, int)) *StudentCoverageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentCoverageCreateBulk{err: fmt.Errorf("calling to StudentCoverageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentCoverageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentCoverageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentCoverage.
func (c *StudentCoverageClient) Update() *StudentCoverageUpdate {
	mutation := newStudentCoverageMutation(c.config, OpUpdate)
	return &StudentCoverageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentCoverageClient) UpdateOne(_m *StudentCoverage) *StudentCoverageUpdateOne {
	mutation := newStudentCoverageMutation(c.config, OpUpdateOne, withStudentCoverage(_m))
	return &StudentCoverageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentCoverageClient) UpdateOneID(id string) *StudentCoverageUpdateOne {
	mutation := newStudentCoverageMutation(c.config, OpUpdateOne, withStudentCoverageID(id))
	return &StudentCoverageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentCoverage.
func (c *StudentCoverageClient) Delete() *StudentCoverageDelete {
	mutation := newStudentCoverageMutation(c.config, OpDelete)
	return &StudentCoverageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentCoverageClient) DeleteOne(_m *StudentCoverage) *StudentCoverageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentCoverageClient) DeleteOneID(id string) *StudentCoverageDeleteOne {
	builder := c.Delete().Where(studentcoverage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentCoverageDeleteOne{builder}
}

// Query returns a query builder for StudentCoverage.
func (c *StudentCoverageClient) Query() *StudentCoverageQuery {
	return &StudentCoverageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentCoverage},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentCoverage entity by its id.
func (c *StudentCoverageClient) Get(ctx context.Context, id string) (*StudentCoverage, error) {
	return c.Query().Where(studentcoverage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentCoverageClient) GetX(ctx context.Context, id string) *StudentCoverage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentCoverageClient) Hooks() []Hook {
	return c.hooks.StudentCoverage
}

// Interceptors returns the client interceptors.
func (c *StudentCoverageClient) Interceptors() []Interceptor {
	return c.inters.StudentCoverage
}

func (c *StudentCoverageClient) mutate(ctx context.Context, m *StudentCoverageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentCoverageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentCoverageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentCoverageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentCoverageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentCoverage mutation op: %q", m.Op())
	}
}

// StudySessionClient is a client for the StudySession schema.
type StudySessionClient struct {
	config
}

// NewStudySessionClient returns a client for the StudySession from the given config.
func NewStudySessionClient(c config) *StudySessionClient {
	return &StudySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studysession.Hooks(f(g(h())))`.
func (c *StudySessionClient) Use(hooks ...Hook) {
	c.hooks.StudySession = append(c.hooks.StudySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studysession.Intercept(f(g(h())))`.
func (c *StudySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudySession = append(c.inters.StudySession, interceptors...)
}

// Create returns a builder for creating a StudySession entity.
func (c *StudySessionClient) Create() *StudySessionCreate {
	mutation := newStudySessionMutation(c.config, OpCreate)
	return &StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudySession entities.
func (c *StudySessionClient) CreateBulk(builders ...*StudySessionCreate) *StudySessionCreateBulk {
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudySessionClient) MapCreateBulk(slice any, setFunc func(*StudySessionCreate, int)) *StudySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudySessionCreateBulk{err: fmt.Errorf("calling to StudySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudySession.
func (c *StudySessionClient) Update() *StudySessionUpdate {
	mutation := newStudySessionMutation(c.config, OpUpdate)
	return &StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudySessionClient) UpdateOne(_m *StudySession) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySession(_m))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudySessionClient) UpdateOneID(id string) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySessionID(id))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudySession.
func (c *StudySessionClient) Delete() *StudySessionDelete {
	mutation := newStudySessionMutation(c.config, OpDelete)
	return &StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudySessionClient) DeleteOne(_m *StudySession) *StudySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudySessionClient) DeleteOneID(id string) *StudySessionDeleteOne {
	builder := c.Delete().Where(studysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudySessionDeleteOne{builder}
}

// Query returns a query builder for StudySession.
func (c *StudySessionClient) Query() *StudySessionQuery {
	return &StudySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudySession},
		inters: c.Interceptors(),
	}
}

// Get returns a StudySession entity by its id.
func (c *StudySessionClient) Get(ctx context.Context, id string) (*StudySession, error) {
	return c.Query().Where(studysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudySessionClient) GetX(ctx context.Context, id string) *StudySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPackEntries queries the pack_entries edge of a StudySession.
func (c *StudySessionClient) QueryPackEntries(_m *StudySession) *SessionQuestionQuery {
	query := (&SessionQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studysession.Table, studysession.FieldID, id),
			sqlgraph.To(sessionquestion.Table, sessionquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, studysession.PackEntriesTable, studysession.PackEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttempts queries the attempts edge of a StudySession.
func (c *StudySessionClient) QueryAttempts(_m *StudySession) *AttemptQuery {
	query := (&AttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studysession.Table, studysession.FieldID, id),
			sqlgraph.To(attempt.Table, attempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, studysession.AttemptsTable, studysession.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StudySessionClient) Hooks() []Hook {
	return c.hooks.StudySession
}

// Interceptors returns the client interceptors.
func (c *StudySessionClient) Interceptors() []Interceptor {
	return c.inters.StudySession
}

func (c *StudySessionClient) mutate(ctx context.Context, m *StudySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudySession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, EnrichmentAudit, Mastery, PYQQuestion, Question, SessionQuestion,
		StudentCounter, StudentCoverage, StudySession []ent.Hook
	}
	inters struct {
		Attempt, EnrichmentAudit, Mastery, PYQQuestion, Question, SessionQuestion,
		StudentCounter, StudentCoverage, StudySession []ent.Interceptor
	}
)
