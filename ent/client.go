// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/opencoord/hive/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/opencoord/hive/ent/agent"
	"github.com/opencoord/hive/ent/bead"
	"github.com/opencoord/hive/ent/beadcomment"
	"github.com/opencoord/hive/ent/beaddependency"
	"github.com/opencoord/hive/ent/beadlabel"
	"github.com/opencoord/hive/ent/cursor"
	"github.com/opencoord/hive/ent/deferred"
	"github.com/opencoord/hive/ent/evalrun"
	"github.com/opencoord/hive/ent/event"
	"github.com/opencoord/hive/ent/message"
	"github.com/opencoord/hive/ent/messagerecipient"
	"github.com/opencoord/hive/ent/reservation"
	"github.com/opencoord/hive/ent/swarmcontext"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Bead is the client for interacting with the Bead builders.
	Bead *BeadClient
	// BeadComment is the client for interacting with the BeadComment builders.
	BeadComment *BeadCommentClient
	// BeadDependency is the client for interacting with the BeadDependency builders.
	BeadDependency *BeadDependencyClient
	// BeadLabel is the client for interacting with the BeadLabel builders.
	BeadLabel *BeadLabelClient
	// Cursor is the client for interacting with the Cursor builders.
	Cursor *CursorClient
	// Deferred is the client for interacting with the Deferred builders.
	Deferred *DeferredClient
	// EvalRun is the client for interacting with the EvalRun builders.
	EvalRun *EvalRunClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// MessageRecipient is the client for interacting with the MessageRecipient builders.
	MessageRecipient *MessageRecipientClient
	// Reservation is the client for interacting with the Reservation builders.
	Reservation *ReservationClient
	// SwarmContext is the client for interacting with the SwarmContext builders.
	SwarmContext *SwarmContextClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.Bead = NewBeadClient(c.config)
	c.BeadComment = NewBeadCommentClient(c.config)
	c.BeadDependency = NewBeadDependencyClient(c.config)
	c.BeadLabel = NewBeadLabelClient(c.config)
	c.Cursor = NewCursorClient(c.config)
	c.Deferred = NewDeferredClient(c.config)
	c.EvalRun = NewEvalRunClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.MessageRecipient = NewMessageRecipientClient(c.config)
	c.Reservation = NewReservationClient(c.config)
	c.SwarmContext = NewSwarmContextClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		Bead:             NewBeadClient(cfg),
		BeadComment:      NewBeadCommentClient(cfg),
		BeadDependency:   NewBeadDependencyClient(cfg),
		BeadLabel:        NewBeadLabelClient(cfg),
		Cursor:           NewCursorClient(cfg),
		Deferred:         NewDeferredClient(cfg),
		EvalRun:          NewEvalRunClient(cfg),
		Event:            NewEventClient(cfg),
		Message:          NewMessageClient(cfg),
		MessageRecipient: NewMessageRecipientClient(cfg),
		Reservation:      NewReservationClient(cfg),
		SwarmContext:     NewSwarmContextClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		Bead:             NewBeadClient(cfg),
		BeadComment:      NewBeadCommentClient(cfg),
		BeadDependency:   NewBeadDependencyClient(cfg),
		BeadLabel:        NewBeadLabelClient(cfg),
		Cursor:           NewCursorClient(cfg),
		Deferred:         NewDeferredClient(cfg),
		EvalRun:          NewEvalRunClient(cfg),
		Event:            NewEventClient(cfg),
		Message:          NewMessageClient(cfg),
		MessageRecipient: NewMessageRecipientClient(cfg),
		Reservation:      NewReservationClient(cfg),
		SwarmContext:     NewSwarmContextClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.Bead, c.BeadComment, c.BeadDependency, c.BeadLabel, c.Cursor,
		c.Deferred, c.EvalRun, c.Event, c.Message, c.MessageRecipient, c.Reservation,
		c.SwarmContext,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.Bead, c.BeadComment, c.BeadDependency, c.BeadLabel, c.Cursor,
		c.Deferred, c.EvalRun, c.Event, c.Message, c.MessageRecipient, c.Reservation,
		c.SwarmContext,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *BeadMutation:
		return c.Bead.mutate(ctx, m)
	case *BeadCommentMutation:
		return c.BeadComment.mutate(ctx, m)
	case *BeadDependencyMutation:
		return c.BeadDependency.mutate(ctx, m)
	case *BeadLabelMutation:
		return c.BeadLabel.mutate(ctx, m)
	case *CursorMutation:
		return c.Cursor.mutate(ctx, m)
	case *DeferredMutation:
		return c.Deferred.mutate(ctx, m)
	case *EvalRunMutation:
		return c.EvalRun.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *MessageRecipientMutation:
		return c.MessageRecipient.mutate(ctx, m)
	case *ReservationMutation:
		return c.Reservation.mutate(ctx, m)
	case *SwarmContextMutation:
		return c.SwarmContext.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id int) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id int) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id int) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id int) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// BeadClient is a client for the Bead schema.
type BeadClient struct {
	config
}

// NewBeadClient returns a client for the Bead from the given config.
func NewBeadClient(c config) *BeadClient {
	return &BeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bead.Hooks(f(g(h())))`.
func (c *BeadClient) Use(hooks ...Hook) {
	c.hooks.Bead = append(c.hooks.Bead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bead.Intercept(f(g(h())))`.
func (c *BeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Bead = append(c.inters.Bead, interceptors...)
}

// Create returns a builder for creating a Bead entity.
func (c *BeadClient) Create() *BeadCreate {
	mutation := newBeadMutation(c.config, OpCreate)
	return &BeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Bead entities.
func (c *BeadClient) CreateBulk(builders ...*BeadCreate) *BeadCreateBulk {
	return &BeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BeadClient) MapCreateBulk(slice any, setFunc func(*BeadCreate, int)) *BeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BeadCreateBulk{err: fmt.Errorf("calling to BeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Bead.
func (c *BeadClient) Update() *BeadUpdate {
	mutation := newBeadMutation(c.config, OpUpdate)
	return &BeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BeadClient) UpdateOne(_m *Bead) *BeadUpdateOne {
	mutation := newBeadMutation(c.config, OpUpdateOne, withBead(_m))
	return &BeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BeadClient) UpdateOneID(id string) *BeadUpdateOne {
	mutation := newBeadMutation(c.config, OpUpdateOne, withBeadID(id))
	return &BeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Bead.
func (c *BeadClient) Delete() *BeadDelete {
	mutation := newBeadMutation(c.config, OpDelete)
	return &BeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BeadClient) DeleteOne(_m *Bead) *BeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BeadClient) DeleteOneID(id string) *BeadDeleteOne {
	builder := c.Delete().Where(bead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BeadDeleteOne{builder}
}

// Query returns a query builder for Bead.
func (c *BeadClient) Query() *BeadQuery {
	return &BeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBead},
		inters: c.Interceptors(),
	}
}

// Get returns a Bead entity by its id.
func (c *BeadClient) Get(ctx context.Context, id string) (*Bead, error) {
	return c.Query().Where(bead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BeadClient) GetX(ctx context.Context, id string) *Bead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BeadClient) Hooks() []Hook {
	return c.hooks.Bead
}

// Interceptors returns the client interceptors.
func (c *BeadClient) Interceptors() []Interceptor {
	return c.inters.Bead
}

func (c *BeadClient) mutate(ctx context.Context, m *BeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Bead mutation op: %q", m.Op())
	}
}

// BeadCommentClient is a client for the BeadComment schema.
type BeadCommentClient struct {
	config
}

// NewBeadCommentClient returns a client for the BeadComment from the given config.
func NewBeadCommentClient(c config) *BeadCommentClient {
	return &BeadCommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `beadcomment.Hooks(f(g(h())))`.
func (c *BeadCommentClient) Use(hooks ...Hook) {
	c.hooks.BeadComment = append(c.hooks.BeadComment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `beadcomment.Intercept(f(g(h())))`.
func (c *BeadCommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.BeadComment = append(c.inters.BeadComment, interceptors...)
}

// Create returns a builder for creating a BeadComment entity.
func (c *BeadCommentClient) Create() *BeadCommentCreate {
	mutation := newBeadCommentMutation(c.config, OpCreate)
	return &BeadCommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BeadComment entities.
func (c *BeadCommentClient) CreateBulk(builders ...*BeadCommentCreate) *BeadCommentCreateBulk {
	return &BeadCommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BeadCommentClient) MapCreateBulk(slice any, setFunc func(*BeadCommentCreate, int)) *BeadCommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BeadCommentCreateBulk{err: fmt.Errorf("calling to BeadCommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BeadCommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BeadCommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BeadComment.
func (c *BeadCommentClient) Update() *BeadCommentUpdate {
	mutation := newBeadCommentMutation(c.config, OpUpdate)
	return &BeadCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BeadCommentClient) UpdateOne(_m *BeadComment) *BeadCommentUpdateOne {
	mutation := newBeadCommentMutation(c.config, OpUpdateOne, withBeadComment(_m))
	return &BeadCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BeadCommentClient) UpdateOneID(id int) *BeadCommentUpdateOne {
	mutation := newBeadCommentMutation(c.config, OpUpdateOne, withBeadCommentID(id))
	return &BeadCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BeadComment.
func (c *BeadCommentClient) Delete() *BeadCommentDelete {
	mutation := newBeadCommentMutation(c.config, OpDelete)
	return &BeadCommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BeadCommentClient) DeleteOne(_m *BeadComment) *BeadCommentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BeadCommentClient) DeleteOneID(id int) *BeadCommentDeleteOne {
	builder := c.Delete().Where(beadcomment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BeadCommentDeleteOne{builder}
}

// Query returns a query builder for BeadComment.
func (c *BeadCommentClient) Query() *BeadCommentQuery {
	return &BeadCommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBeadComment},
		inters: c.Interceptors(),
	}
}

// Get returns a BeadComment entity by its id.
func (c *BeadCommentClient) Get(ctx context.Context, id int) (*BeadComment, error) {
	return c.Query().Where(beadcomment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BeadCommentClient) GetX(ctx context.Context, id int) *BeadComment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BeadCommentClient) Hooks() []Hook {
	return c.hooks.BeadComment
}

// Interceptors returns the client interceptors.
func (c *BeadCommentClient) Interceptors() []Interceptor {
	return c.inters.BeadComment
}

func (c *BeadCommentClient) mutate(ctx context.Context, m *BeadCommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BeadCommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BeadCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BeadCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BeadCommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BeadComment mutation op: %q", m.Op())
	}
}

// BeadDependencyClient is a client for the BeadDependency schema.
type BeadDependencyClient struct {
	config
}

// NewBeadDependencyClient returns a client for the BeadDependency from the given config.
func NewBeadDependencyClient(c config) *BeadDependencyClient {
	return &BeadDependencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `beaddependency.Hooks(f(g(h())))`.
func (c *BeadDependencyClient) Use(hooks ...Hook) {
	c.hooks.BeadDependency = append(c.hooks.BeadDependency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `beaddependency.Intercept(f(g(h())))`.
func (c *BeadDependencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.BeadDependency = append(c.inters.BeadDependency, interceptors...)
}

// Create returns a builder for creating a BeadDependency entity.
func (c *BeadDependencyClient) Create() *BeadDependencyCreate {
	mutation := newBeadDependencyMutation(c.config, OpCreate)
	return &BeadDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BeadDependency entities.
func (c *BeadDependencyClient) CreateBulk(builders ...*BeadDependencyCreate) *BeadDependencyCreateBulk {
	return &BeadDependencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BeadDependencyClient) MapCreateBulk(slice any, setFunc func(*BeadDependencyCreate, int)) *BeadDependencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BeadDependencyCreateBulk{err: fmt.Errorf("calling to BeadDependencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BeadDependencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BeadDependencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BeadDependency.
func (c *BeadDependencyClient) Update() *BeadDependencyUpdate {
	mutation := newBeadDependencyMutation(c.config, OpUpdate)
	return &BeadDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BeadDependencyClient) UpdateOne(_m *BeadDependency) *BeadDependencyUpdateOne {
	mutation := newBeadDependencyMutation(c.config, OpUpdateOne, withBeadDependency(_m))
	return &BeadDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BeadDependencyClient) UpdateOneID(id int) *BeadDependencyUpdateOne {
	mutation := newBeadDependencyMutation(c.config, OpUpdateOne, withBeadDependencyID(id))
	return &BeadDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BeadDependency.
func (c *BeadDependencyClient) Delete() *BeadDependencyDelete {
	mutation := newBeadDependencyMutation(c.config, OpDelete)
	return &BeadDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BeadDependencyClient) DeleteOne(_m *BeadDependency) *BeadDependencyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BeadDependencyClient) DeleteOneID(id int) *BeadDependencyDeleteOne {
	builder := c.Delete().Where(beaddependency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BeadDependencyDeleteOne{builder}
}

// Query returns a query builder for BeadDependency.
func (c *BeadDependencyClient) Query() *BeadDependencyQuery {
	return &BeadDependencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBeadDependency},
		inters: c.Interceptors(),
	}
}

// Get returns a BeadDependency entity by its id.
func (c *BeadDependencyClient) Get(ctx context.Context, id int) (*BeadDependency, error) {
	return c.Query().Where(beaddependency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BeadDependencyClient) GetX(ctx context.Context, id int) *BeadDependency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BeadDependencyClient) Hooks() []Hook {
	return c.hooks.BeadDependency
}

// Interceptors returns the client interceptors.
func (c *BeadDependencyClient) Interceptors() []Interceptor {
	return c.inters.BeadDependency
}

func (c *BeadDependencyClient) mutate(ctx context.Context, m *BeadDependencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BeadDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BeadDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BeadDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BeadDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BeadDependency mutation op: %q", m.Op())
	}
}

// BeadLabelClient is a client for the BeadLabel schema.
type BeadLabelClient struct {
	config
}

// NewBeadLabelClient returns a client for the BeadLabel from the given config.
func NewBeadLabelClient(c config) *BeadLabelClient {
	return &BeadLabelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `beadlabel.Hooks(f(g(h())))`.
func (c *BeadLabelClient) Use(hooks ...Hook) {
	c.hooks.BeadLabel = append(c.hooks.BeadLabel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `beadlabel.Intercept(f(g(h())))`.
func (c *BeadLabelClient) Intercept(interceptors ...Interceptor) {
	c.inters.BeadLabel = append(c.inters.BeadLabel, interceptors...)
}

// Create returns a builder for creating a BeadLabel entity.
func (c *BeadLabelClient) Create() *BeadLabelCreate {
	mutation := newBeadLabelMutation(c.config, OpCreate)
	return &BeadLabelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BeadLabel entities.
func (c *BeadLabelClient) CreateBulk(builders ...*BeadLabelCreate) *BeadLabelCreateBulk {
	return &BeadLabelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BeadLabelClient) MapCreateBulk(slice any, setFunc func(*BeadLabelCreate, int)) *BeadLabelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BeadLabelCreateBulk{err: fmt.Errorf("calling to BeadLabelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BeadLabelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BeadLabelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BeadLabel.
func (c *BeadLabelClient) Update() *BeadLabelUpdate {
	mutation := newBeadLabelMutation(c.config, OpUpdate)
	return &BeadLabelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BeadLabelClient) UpdateOne(_m *BeadLabel) *BeadLabelUpdateOne {
	mutation := newBeadLabelMutation(c.config, OpUpdateOne, withBeadLabel(_m))
	return &BeadLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BeadLabelClient) UpdateOneID(id int) *BeadLabelUpdateOne {
	mutation := newBeadLabelMutation(c.config, OpUpdateOne, withBeadLabelID(id))
	return &BeadLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BeadLabel.
func (c *BeadLabelClient) Delete() *BeadLabelDelete {
	mutation := newBeadLabelMutation(c.config, OpDelete)
	return &BeadLabelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BeadLabelClient) DeleteOne(_m *BeadLabel) *BeadLabelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BeadLabelClient) DeleteOneID(id int) *BeadLabelDeleteOne {
	builder := c.Delete().Where(beadlabel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BeadLabelDeleteOne{builder}
}

// Query returns a query builder for BeadLabel.
func (c *BeadLabelClient) Query() *BeadLabelQuery {
	return &BeadLabelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBeadLabel},
		inters: c.Interceptors(),
	}
}

// Get returns a BeadLabel entity by its id.
func (c *BeadLabelClient) Get(ctx context.Context, id int) (*BeadLabel, error) {
	return c.Query().Where(beadlabel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BeadLabelClient) GetX(ctx context.Context, id int) *BeadLabel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BeadLabelClient) Hooks() []Hook {
	return c.hooks.BeadLabel
}

// Interceptors returns the client interceptors.
func (c *BeadLabelClient) Interceptors() []Interceptor {
	return c.inters.BeadLabel
}

func (c *BeadLabelClient) mutate(ctx context.Context, m *BeadLabelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BeadLabelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BeadLabelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BeadLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BeadLabelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BeadLabel mutation op: %q", m.Op())
	}
}

// CursorClient is a client for the Cursor schema.
type CursorClient struct {
	config
}

// NewCursorClient returns a client for the Cursor from the given config.
func NewCursorClient(c config) *CursorClient {
	return &CursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cursor.Hooks(f(g(h())))`.
func (c *CursorClient) Use(hooks ...Hook) {
	c.hooks.Cursor = append(c.hooks.Cursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cursor.Intercept(f(g(h())))`.
func (c *CursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cursor = append(c.inters.Cursor, interceptors...)
}

// Create returns a builder for creating a Cursor entity.
func (c *CursorClient) Create() *CursorCreate {
	mutation := newCursorMutation(c.config, OpCreate)
	return &CursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cursor entities.
func (c *CursorClient) CreateBulk(builders ...*CursorCreate) *CursorCreateBulk {
	return &CursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CursorClient) MapCreateBulk(slice any, setFunc func(*CursorCreate, int)) *CursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CursorCreateBulk{err: fmt.Errorf("calling to CursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cursor.
func (c *CursorClient) Update() *CursorUpdate {
	mutation := newCursorMutation(c.config, OpUpdate)
	return &CursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CursorClient) UpdateOne(_m *Cursor) *CursorUpdateOne {
	mutation := newCursorMutation(c.config, OpUpdateOne, withCursor(_m))
	return &CursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CursorClient) UpdateOneID(id int) *CursorUpdateOne {
	mutation := newCursorMutation(c.config, OpUpdateOne, withCursorID(id))
	return &CursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cursor.
func (c *CursorClient) Delete() *CursorDelete {
	mutation := newCursorMutation(c.config, OpDelete)
	return &CursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CursorClient) DeleteOne(_m *Cursor) *CursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CursorClient) DeleteOneID(id int) *CursorDeleteOne {
	builder := c.Delete().Where(cursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CursorDeleteOne{builder}
}

// Query returns a query builder for Cursor.
func (c *CursorClient) Query() *CursorQuery {
	return &CursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a Cursor entity by its id.
func (c *CursorClient) Get(ctx context.Context, id int) (*Cursor, error) {
	return c.Query().Where(cursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CursorClient) GetX(ctx context.Context, id int) *Cursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CursorClient) Hooks() []Hook {
	return c.hooks.Cursor
}

// Interceptors returns the client interceptors.
func (c *CursorClient) Interceptors() []Interceptor {
	return c.inters.Cursor
}

func (c *CursorClient) mutate(ctx context.Context, m *CursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Cursor mutation op: %q", m.Op())
	}
}

// DeferredClient is a client for the Deferred schema.
type DeferredClient struct {
	config
}

// NewDeferredClient returns a client for the Deferred from the given config.
func NewDeferredClient(c config) *DeferredClient {
	return &DeferredClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deferred.Hooks(f(g(h())))`.
func (c *DeferredClient) Use(hooks ...Hook) {
	c.hooks.Deferred = append(c.hooks.Deferred, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deferred.Intercept(f(g(h())))`.
func (c *DeferredClient) Intercept(interceptors ...Interceptor) {
	c.inters.Deferred = append(c.inters.Deferred, interceptors...)
}

// Create returns a builder for creating a Deferred entity.
func (c *DeferredClient) Create() *DeferredCreate {
	mutation := newDeferredMutation(c.config, OpCreate)
	return &DeferredCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Deferred entities.
func (c *DeferredClient) CreateBulk(builders ...*DeferredCreate) *DeferredCreateBulk {
	return &DeferredCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeferredClient) MapCreateBulk(slice any, setFunc func(*DeferredCreate, int)) *DeferredCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeferredCreateBulk{err: fmt.Errorf("calling to DeferredClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeferredCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeferredCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Deferred.
func (c *DeferredClient) Update() *DeferredUpdate {
	mutation := newDeferredMutation(c.config, OpUpdate)
	return &DeferredUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeferredClient) UpdateOne(_m *Deferred) *DeferredUpdateOne {
	mutation := newDeferredMutation(c.config, OpUpdateOne, withDeferred(_m))
	return &DeferredUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeferredClient) UpdateOneID(id string) *DeferredUpdateOne {
	mutation := newDeferredMutation(c.config, OpUpdateOne, withDeferredID(id))
	return &DeferredUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Deferred.
func (c *DeferredClient) Delete() *DeferredDelete {
	mutation := newDeferredMutation(c.config, OpDelete)
	return &DeferredDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeferredClient) DeleteOne(_m *Deferred) *DeferredDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeferredClient) DeleteOneID(id string) *DeferredDeleteOne {
	builder := c.Delete().Where(deferred.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeferredDeleteOne{builder}
}

// Query returns a query builder for Deferred.
func (c *DeferredClient) Query() *DeferredQuery {
	return &DeferredQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeferred},
		inters: c.Interceptors(),
	}
}

// Get returns a Deferred entity by its id.
func (c *DeferredClient) Get(ctx context.Context, id string) (*Deferred, error) {
	return c.Query().Where(deferred.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeferredClient) GetX(ctx context.Context, id string) *Deferred {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeferredClient) Hooks() []Hook {
	return c.hooks.Deferred
}

// Interceptors returns the client interceptors.
func (c *DeferredClient) Interceptors() []Interceptor {
	return c.inters.Deferred
}

func (c *DeferredClient) mutate(ctx context.Context, m *DeferredMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeferredCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeferredUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeferredUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeferredDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Deferred mutation op: %q", m.Op())
	}
}

// EvalRunClient is a client for the EvalRun schema.
type EvalRunClient struct {
	config
}

// NewEvalRunClient returns a client for the EvalRun from the given config.
func NewEvalRunClient(c config) *EvalRunClient {
	return &EvalRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evalrun.Hooks(f(g(h())))`.
func (c *EvalRunClient) Use(hooks ...Hook) {
	c.hooks.EvalRun = append(c.hooks.EvalRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evalrun.Intercept(f(g(h())))`.
func (c *EvalRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvalRun = append(c.inters.EvalRun, interceptors...)
}

// Create returns a builder for creating a EvalRun entity.
func (c *EvalRunClient) Create() *EvalRunCreate {
	mutation := newEvalRunMutation(c.config, OpCreate)
	return &EvalRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvalRun entities.
func (c *EvalRunClient) CreateBulk(builders ...*EvalRunCreate) *EvalRunCreateBulk {
	return &EvalRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvalRunClient) MapCreateBulk(slice any, setFunc func(*EvalRunCreate, int)) *EvalRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvalRunCreateBulk{err: fmt.Errorf("calling to EvalRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvalRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvalRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvalRun.
func (c *EvalRunClient) Update() *EvalRunUpdate {
	mutation := newEvalRunMutation(c.config, OpUpdate)
	return &EvalRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvalRunClient) UpdateOne(_m *EvalRun) *EvalRunUpdateOne {
	mutation := newEvalRunMutation(c.config, OpUpdateOne, withEvalRun(_m))
	return &EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvalRunClient) UpdateOneID(id int) *EvalRunUpdateOne {
	mutation := newEvalRunMutation(c.config, OpUpdateOne, withEvalRunID(id))
	return &EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvalRun.
func (c *EvalRunClient) Delete() *EvalRunDelete {
	mutation := newEvalRunMutation(c.config, OpDelete)
	return &EvalRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvalRunClient) DeleteOne(_m *EvalRun) *EvalRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvalRunClient) DeleteOneID(id int) *EvalRunDeleteOne {
	builder := c.Delete().Where(evalrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvalRunDeleteOne{builder}
}

// Query returns a query builder for EvalRun.
func (c *EvalRunClient) Query() *EvalRunQuery {
	return &EvalRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvalRun},
		inters: c.Interceptors(),
	}
}

// Get returns a EvalRun entity by its id.
func (c *EvalRunClient) Get(ctx context.Context, id int) (*EvalRun, error) {
	return c.Query().Where(evalrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvalRunClient) GetX(ctx context.Context, id int) *EvalRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvalRunClient) Hooks() []Hook {
	return c.hooks.EvalRun
}

// Interceptors returns the client interceptors.
func (c *EvalRunClient) Interceptors() []Interceptor {
	return c.inters.EvalRun
}

func (c *EvalRunClient) mutate(ctx context.Context, m *EvalRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvalRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvalRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvalRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvalRun mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecipients queries the recipients edge of a Message.
func (c *MessageClient) QueryRecipients(_m *Message) *MessageRecipientQuery {
	query := (&MessageRecipientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(messagerecipient.Table, messagerecipient.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, message.RecipientsTable, message.RecipientsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// MessageRecipientClient is a client for the MessageRecipient schema.
type MessageRecipientClient struct {
	config
}

// NewMessageRecipientClient returns a client for the MessageRecipient from the given config.
func NewMessageRecipientClient(c config) *MessageRecipientClient {
	return &MessageRecipientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagerecipient.Hooks(f(g(h())))`.
func (c *MessageRecipientClient) Use(hooks ...Hook) {
	c.hooks.MessageRecipient = append(c.hooks.MessageRecipient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagerecipient.Intercept(f(g(h())))`.
func (c *MessageRecipientClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageRecipient = append(c.inters.MessageRecipient, interceptors...)
}

// Create returns a builder for creating a MessageRecipient entity.
func (c *MessageRecipientClient) Create() *MessageRecipientCreate {
	mutation := newMessageRecipientMutation(c.config, OpCreate)
	return &MessageRecipientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageRecipient entities.
func (c *MessageRecipientClient) CreateBulk(builders ...*MessageRecipientCreate) *MessageRecipientCreateBulk {
	return &MessageRecipientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageRecipientClient) MapCreateBulk(slice any, setFunc func(*MessageRecipientCreate, int)) *MessageRecipientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageRecipientCreateBulk{err: fmt.Errorf("calling to MessageRecipientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageRecipientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageRecipientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageRecipient.
func (c *MessageRecipientClient) Update() *MessageRecipientUpdate {
	mutation := newMessageRecipientMutation(c.config, OpUpdate)
	return &MessageRecipientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageRecipientClient) UpdateOne(_m *MessageRecipient) *MessageRecipientUpdateOne {
	mutation := newMessageRecipientMutation(c.config, OpUpdateOne, withMessageRecipient(_m))
	return &MessageRecipientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageRecipientClient) UpdateOneID(id int) *MessageRecipientUpdateOne {
	mutation := newMessageRecipientMutation(c.config, OpUpdateOne, withMessageRecipientID(id))
	return &MessageRecipientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageRecipient.
func (c *MessageRecipientClient) Delete() *MessageRecipientDelete {
	mutation := newMessageRecipientMutation(c.config, OpDelete)
	return &MessageRecipientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageRecipientClient) DeleteOne(_m *MessageRecipient) *MessageRecipientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageRecipientClient) DeleteOneID(id int) *MessageRecipientDeleteOne {
	builder := c.Delete().Where(messagerecipient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageRecipientDeleteOne{builder}
}

// Query returns a query builder for MessageRecipient.
func (c *MessageRecipientClient) Query() *MessageRecipientQuery {
	return &MessageRecipientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageRecipient},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageRecipient entity by its id.
func (c *MessageRecipientClient) Get(ctx context.Context, id int) (*MessageRecipient, error) {
	return c.Query().Where(messagerecipient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageRecipientClient) GetX(ctx context.Context, id int) *MessageRecipient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessage queries the message edge of a MessageRecipient.
func (c *MessageRecipientClient) QueryMessage(_m *MessageRecipient) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messagerecipient.Table, messagerecipient.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messagerecipient.MessageTable, messagerecipient.MessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageRecipientClient) Hooks() []Hook {
	return c.hooks.MessageRecipient
}

// Interceptors returns the client interceptors.
func (c *MessageRecipientClient) Interceptors() []Interceptor {
	return c.inters.MessageRecipient
}

func (c *MessageRecipientClient) mutate(ctx context.Context, m *MessageRecipientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageRecipientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageRecipientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageRecipientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageRecipientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageRecipient mutation op: %q", m.Op())
	}
}

// ReservationClient is a client for the Reservation schema.
type ReservationClient struct {
	config
}

// NewReservationClient returns a client for the Reservation from the given config.
func NewReservationClient(c config) *ReservationClient {
	return &ReservationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reservation.Hooks(f(g(h())))`.
func (c *ReservationClient) Use(hooks ...Hook) {
	c.hooks.Reservation = append(c.hooks.Reservation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reservation.Intercept(f(g(h())))`.
func (c *ReservationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Reservation = append(c.inters.Reservation, interceptors...)
}

// Create returns a builder for creating a Reservation entity.
func (c *ReservationClient) Create() *ReservationCreate {
	mutation := newReservationMutation(c.config, OpCreate)
	return &ReservationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Reservation entities.
func (c *ReservationClient) CreateBulk(builders ...*ReservationCreate) *ReservationCreateBulk {
	return &ReservationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReservationClient) MapCreateBulk(slice any, setFunc func(*ReservationCreate, int)) *ReservationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReservationCreateBulk{err: fmt.Errorf("calling to ReservationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReservationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReservationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Reservation.
func (c *ReservationClient) Update() *ReservationUpdate {
	mutation := newReservationMutation(c.config, OpUpdate)
	return &ReservationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReservationClient) UpdateOne(_m *Reservation) *ReservationUpdateOne {
	mutation := newReservationMutation(c.config, OpUpdateOne, withReservation(_m))
	return &ReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReservationClient) UpdateOneID(id int) *ReservationUpdateOne {
	mutation := newReservationMutation(c.config, OpUpdateOne, withReservationID(id))
	return &ReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Reservation.
func (c *ReservationClient) Delete() *ReservationDelete {
	mutation := newReservationMutation(c.config, OpDelete)
	return &ReservationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReservationClient) DeleteOne(_m *Reservation) *ReservationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReservationClient) DeleteOneID(id int) *ReservationDeleteOne {
	builder := c.Delete().Where(reservation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReservationDeleteOne{builder}
}

// Query returns a query builder for Reservation.
func (c *ReservationClient) Query() *ReservationQuery {
	return &ReservationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReservation},
		inters: c.Interceptors(),
	}
}

// Get returns a Reservation entity by its id.
func (c *ReservationClient) Get(ctx context.Context, id int) (*Reservation, error) {
	return c.Query().Where(reservation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReservationClient) GetX(ctx context.Context, id int) *Reservation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReservationClient) Hooks() []Hook {
	return c.hooks.Reservation
}

// Interceptors returns the client interceptors.
func (c *ReservationClient) Interceptors() []Interceptor {
	return c.inters.Reservation
}

func (c *ReservationClient) mutate(ctx context.Context, m *ReservationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReservationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReservationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReservationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Reservation mutation op: %q", m.Op())
	}
}

// SwarmContextClient is a client for the SwarmContext schema.
type SwarmContextClient struct {
	config
}

// NewSwarmContextClient returns a client for the SwarmContext from the given config.
func NewSwarmContextClient(c config) *SwarmContextClient {
	return &SwarmContextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `swarmcontext.Hooks(f(g(h())))`.
func (c *SwarmContextClient) Use(hooks ...Hook) {
	c.hooks.SwarmContext = append(c.hooks.SwarmContext, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `swarmcontext.Intercept(f(g(h())))`.
func (c *SwarmContextClient) Intercept(interceptors ...Interceptor) {
	c.inters.SwarmContext = append(c.inters.SwarmContext, interceptors...)
}

// Create returns a builder for creating a SwarmContext entity.
func (c *SwarmContextClient) Create() *SwarmContextCreate {
	mutation := newSwarmContextMutation(c.config, OpCreate)
	return &SwarmContextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SwarmContext entities.
func (c *SwarmContextClient) CreateBulk(builders ...*SwarmContextCreate) *SwarmContextCreateBulk {
	return &SwarmContextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SwarmContextClient) MapCreateBulk(slice any, setFunc func(*SwarmContextCreate, int)) *SwarmContextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SwarmContextCreateBulk{err: fmt.Errorf("calling to SwarmContextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SwarmContextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SwarmContextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SwarmContext.
func (c *SwarmContextClient) Update() *SwarmContextUpdate {
	mutation := newSwarmContextMutation(c.config, OpUpdate)
	return &SwarmContextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SwarmContextClient) UpdateOne(_m *SwarmContext) *SwarmContextUpdateOne {
	mutation := newSwarmContextMutation(c.config, OpUpdateOne, withSwarmContext(_m))
	return &SwarmContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SwarmContextClient) UpdateOneID(id int) *SwarmContextUpdateOne {
	mutation := newSwarmContextMutation(c.config, OpUpdateOne, withSwarmContextID(id))
	return &SwarmContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SwarmContext.
func (c *SwarmContextClient) Delete() *SwarmContextDelete {
	mutation := newSwarmContextMutation(c.config, OpDelete)
	return &SwarmContextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SwarmContextClient) DeleteOne(_m *SwarmContext) *SwarmContextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SwarmContextClient) DeleteOneID(id int) *SwarmContextDeleteOne {
	builder := c.Delete().Where(swarmcontext.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SwarmContextDeleteOne{builder}
}

// Query returns a query builder for SwarmContext.
func (c *SwarmContextClient) Query() *SwarmContextQuery {
	return &SwarmContextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSwarmContext},
		inters: c.Interceptors(),
	}
}

// Get returns a SwarmContext entity by its id.
func (c *SwarmContextClient) Get(ctx context.Context, id int) (*SwarmContext, error) {
	return c.Query().Where(swarmcontext.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SwarmContextClient) GetX(ctx context.Context, id int) *SwarmContext {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SwarmContextClient) Hooks() []Hook {
	return c.hooks.SwarmContext
}

// Interceptors returns the client interceptors.
func (c *SwarmContextClient) Interceptors() []Interceptor {
	return c.inters.SwarmContext
}

func (c *SwarmContextClient) mutate(ctx context.Context, m *SwarmContextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SwarmContextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SwarmContextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SwarmContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SwarmContextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SwarmContext mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, Bead, BeadComment, BeadDependency, BeadLabel, Cursor, Deferred, EvalRun,
		Event, Message, MessageRecipient, Reservation, SwarmContext []ent.Hook
	}
	inters struct {
		Agent, Bead, BeadComment, BeadDependency, BeadLabel, Cursor, Deferred, EvalRun,
		Event, Message, MessageRecipient, Reservation, SwarmContext []ent.Interceptor
	}
)
