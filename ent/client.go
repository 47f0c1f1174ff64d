// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fleetworks/conductor/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetworks/conductor/ent/approvedpermission"
	"github.com/fleetworks/conductor/ent/daemonstatus"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/extraction"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/ent/ticketdependency"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovedPermission is the client for interacting with the ApprovedPermission builders.
	ApprovedPermission *ApprovedPermissionClient
	// DaemonStatus is the client for interacting with the DaemonStatus builders.
	DaemonStatus *DaemonStatusClient
	// ExecutionSession is the client for interacting with the ExecutionSession builders.
	ExecutionSession *ExecutionSessionClient
	// Extraction is the client for interacting with the Extraction builders.
	Extraction *ExtractionClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Ticket is the client for interacting with the Ticket builders.
	Ticket *TicketClient
	// TicketDependency is the client for interacting with the TicketDependency builders.
	TicketDependency *TicketDependencyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovedPermission = NewApprovedPermissionClient(c.config)
	c.DaemonStatus = NewDaemonStatusClient(c.config)
	c.ExecutionSession = NewExecutionSessionClient(c.config)
	c.Extraction = NewExtractionClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Ticket = NewTicketClient(c.config)
	c.TicketDependency = NewTicketDependencyClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		ApprovedPermission: NewApprovedPermissionClient(cfg),
		DaemonStatus:       NewDaemonStatusClient(cfg),
		ExecutionSession:   NewExecutionSessionClient(cfg),
		Extraction:         NewExtractionClient(cfg),
		Message:            NewMessageClient(cfg),
		Project:            NewProjectClient(cfg),
		Ticket:             NewTicketClient(cfg),
		TicketDependency:   NewTicketDependencyClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		ApprovedPermission: NewApprovedPermissionClient(cfg),
		DaemonStatus:       NewDaemonStatusClient(cfg),
		ExecutionSession:   NewExecutionSessionClient(cfg),
		Extraction:         NewExtractionClient(cfg),
		Message:            NewMessageClient(cfg),
		Project:            NewProjectClient(cfg),
		Ticket:             NewTicketClient(cfg),
		TicketDependency:   NewTicketDependencyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovedPermission.
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
		c.ApprovedPermission, c.DaemonStatus, c.ExecutionSession, c.Extraction,
		c.Message, c.Project, c.Ticket, c.TicketDependency,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ApprovedPermission, c.DaemonStatus, c.ExecutionSession, c.Extraction,
		c.Message, c.Project, c.Ticket, c.TicketDependency,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovedPermissionMutation:
		return c.ApprovedPermission.mutate(ctx, m)
	case *DaemonStatusMutation:
		return c.DaemonStatus.mutate(ctx, m)
	case *ExecutionSessionMutation:
		return c.ExecutionSession.mutate(ctx, m)
	case *ExtractionMutation:
		return c.Extraction.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *TicketMutation:
		return c.Ticket.mutate(ctx, m)
	case *TicketDependencyMutation:
		return c.TicketDependency.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovedPermissionClient is a client for the ApprovedPermission schema.
type ApprovedPermissionClient struct {
	config
}

// NewApprovedPermissionClient returns a client for the ApprovedPermission from the given config.
func NewApprovedPermissionClient(c config) *ApprovedPermissionClient {
	return &ApprovedPermissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvedpermission.Hooks(f(g(h())))`.
func (c *ApprovedPermissionClient) Use(hooks ...Hook) {
	c.hooks.ApprovedPermission = append(c.hooks.ApprovedPermission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvedpermission.Intercept(f(g(h())))`.
func (c *ApprovedPermissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovedPermission = append(c.inters.ApprovedPermission, interceptors...)
}

// Create returns a builder for creating a ApprovedPermission entity.
func (c *ApprovedPermissionClient) Create() *ApprovedPermissionCreate {
	mutation := newApprovedPermissionMutation(c.config, OpCreate)
	return &ApprovedPermissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovedPermission entities.
func (c *ApprovedPermissionClient) CreateBulk(builders ...*ApprovedPermissionCreate) *ApprovedPermissionCreateBulk {
	return &ApprovedPermissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovedPermissionClient) MapCreateBulk(slice any, setFunc func(*ApprovedPermissionCreate, int)) *ApprovedPermissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovedPermissionCreateBulk{err: fmt.Errorf("calling to ApprovedPermissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovedPermissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovedPermissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovedPermission.
func (c *ApprovedPermissionClient) Update() *ApprovedPermissionUpdate {
	mutation := newApprovedPermissionMutation(c.config, OpUpdate)
	return &ApprovedPermissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovedPermissionClient) UpdateOne(_m *ApprovedPermission) *ApprovedPermissionUpdateOne {
	mutation := newApprovedPermissionMutation(c.config, OpUpdateOne, withApprovedPermission(_m))
	return &ApprovedPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovedPermissionClient) UpdateOneID(id int) *ApprovedPermissionUpdateOne {
	mutation := newApprovedPermissionMutation(c.config, OpUpdateOne, withApprovedPermissionID(id))
	return &ApprovedPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovedPermission.
func (c *ApprovedPermissionClient) Delete() *ApprovedPermissionDelete {
	mutation := newApprovedPermissionMutation(c.config, OpDelete)
	return &ApprovedPermissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovedPermissionClient) DeleteOne(_m *ApprovedPermission) *ApprovedPermissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovedPermissionClient) DeleteOneID(id int) *ApprovedPermissionDeleteOne {
	builder := c.Delete().Where(approvedpermission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovedPermissionDeleteOne{builder}
}

// Query returns a query builder for ApprovedPermission.
func (c *ApprovedPermissionClient) Query() *ApprovedPermissionQuery {
	return &ApprovedPermissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovedPermission},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovedPermission entity by its id.
func (c *ApprovedPermissionClient) Get(ctx context.Context, id int) (*ApprovedPermission, error) {
	return c.Query().Where(approvedpermission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovedPermissionClient) GetX(ctx context.Context, id int) *ApprovedPermission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a ApprovedPermission.
func (c *ApprovedPermissionClient) QueryTicket(_m *ApprovedPermission) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approvedpermission.Table, approvedpermission.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, approvedpermission.TicketTable, approvedpermission.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApprovedPermissionClient) Hooks() []Hook {
	return c.hooks.ApprovedPermission
}

// Interceptors returns the client interceptors.
func (c *ApprovedPermissionClient) Interceptors() []Interceptor {
	return c.inters.ApprovedPermission
}

func (c *ApprovedPermissionClient) mutate(ctx context.Context, m *ApprovedPermissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovedPermissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovedPermissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovedPermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovedPermissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovedPermission mutation op: %q", m.Op())
	}
}

// DaemonStatusClient is a client for the DaemonStatus schema.
type DaemonStatusClient struct {
	config
}

// NewDaemonStatusClient returns a client for the DaemonStatus from the given config.
func NewDaemonStatusClient(c config) *DaemonStatusClient {
	return &DaemonStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `daemonstatus.Hooks(f(g(h())))`.
func (c *DaemonStatusClient) Use(hooks ...Hook) {
	c.hooks.DaemonStatus = append(c.hooks.DaemonStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `daemonstatus.Intercept(f(g(h())))`.
func (c *DaemonStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.DaemonStatus = append(c.inters.DaemonStatus, interceptors...)
}

// Create returns a builder for creating a DaemonStatus entity.
func (c *DaemonStatusClient) Create() *DaemonStatusCreate {
	mutation := newDaemonStatusMutation(c.config, OpCreate)
	return &DaemonStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DaemonStatus entities.
func (c *DaemonStatusClient) CreateBulk(builders ...*DaemonStatusCreate) *DaemonStatusCreateBulk {
	return &DaemonStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DaemonStatusClient) MapCreateBulk(slice any, setFunc func(*DaemonStatusCreate, int)) *DaemonStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DaemonStatusCreateBulk{err: fmt.Errorf("calling to DaemonStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DaemonStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DaemonStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DaemonStatus.
func (c *DaemonStatusClient) Update() *DaemonStatusUpdate {
	mutation := newDaemonStatusMutation(c.config, OpUpdate)
	return &DaemonStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DaemonStatusClient) UpdateOne(_m *DaemonStatus) *DaemonStatusUpdateOne {
	mutation := newDaemonStatusMutation(c.config, OpUpdateOne, withDaemonStatus(_m))
	return &DaemonStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DaemonStatusClient) UpdateOneID(id int) *DaemonStatusUpdateOne {
	mutation := newDaemonStatusMutation(c.config, OpUpdateOne, withDaemonStatusID(id))
	return &DaemonStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DaemonStatus.
func (c *DaemonStatusClient) Delete() *DaemonStatusDelete {
	mutation := newDaemonStatusMutation(c.config, OpDelete)
	return &DaemonStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DaemonStatusClient) DeleteOne(_m *DaemonStatus) *DaemonStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DaemonStatusClient) DeleteOneID(id int) *DaemonStatusDeleteOne {
	builder := c.Delete().Where(daemonstatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DaemonStatusDeleteOne{builder}
}

// Query returns a query builder for DaemonStatus.
func (c *DaemonStatusClient) Query() *DaemonStatusQuery {
	return &DaemonStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDaemonStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a DaemonStatus entity by its id.
func (c *DaemonStatusClient) Get(ctx context.Context, id int) (*DaemonStatus, error) {
	return c.Query().Where(daemonstatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DaemonStatusClient) GetX(ctx context.Context, id int) *DaemonStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DaemonStatusClient) Hooks() []Hook {
	return c.hooks.DaemonStatus
}

// Interceptors returns the client interceptors.
func (c *DaemonStatusClient) Interceptors() []Interceptor {
	return c.inters.DaemonStatus
}

func (c *DaemonStatusClient) mutate(ctx context.Context, m *DaemonStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DaemonStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DaemonStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DaemonStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DaemonStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DaemonStatus mutation op: %q", m.Op())
	}
}

// ExecutionSessionClient is a client for the ExecutionSession schema.
type ExecutionSessionClient struct {
	config
}

// NewExecutionSessionClient returns a client for the ExecutionSession from the given config.
func NewExecutionSessionClient(c config) *ExecutionSessionClient {
	return &ExecutionSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionsession.Hooks(f(g(h())))`.
func (c *ExecutionSessionClient) Use(hooks ...Hook) {
	c.hooks.ExecutionSession = append(c.hooks.ExecutionSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionsession.Intercept(f(g(h())))`.
func (c *ExecutionSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionSession = append(c.inters.ExecutionSession, interceptors...)
}

// Create returns a builder for creating a ExecutionSession entity.
func (c *ExecutionSessionClient) Create() *ExecutionSessionCreate {
	mutation := newExecutionSessionMutation(c.config, OpCreate)
	return &ExecutionSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionSession entities.
func (c *ExecutionSessionClient) CreateBulk(builders ...*ExecutionSessionCreate) *ExecutionSessionCreateBulk {
	return &ExecutionSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionSessionClient) MapCreateBulk(slice any, setFunc func(*ExecutionSessionCreate, int)) *ExecutionSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionSessionCreateBulk{err: fmt.Errorf("calling to ExecutionSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionSession.
func (c *ExecutionSessionClient) Update() *ExecutionSessionUpdate {
	mutation := newExecutionSessionMutation(c.config, OpUpdate)
	return &ExecutionSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionSessionClient) UpdateOne(_m *ExecutionSession) *ExecutionSessionUpdateOne {
	mutation := newExecutionSessionMutation(c.config, OpUpdateOne, withExecutionSession(_m))
	return &ExecutionSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionSessionClient) UpdateOneID(id string) *ExecutionSessionUpdateOne {
	mutation := newExecutionSessionMutation(c.config, OpUpdateOne, withExecutionSessionID(id))
	return &ExecutionSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionSession.
func (c *ExecutionSessionClient) Delete() *ExecutionSessionDelete {
	mutation := newExecutionSessionMutation(c.config, OpDelete)
	return &ExecutionSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionSessionClient) DeleteOne(_m *ExecutionSession) *ExecutionSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionSessionClient) DeleteOneID(id string) *ExecutionSessionDeleteOne {
	builder := c.Delete().Where(executionsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionSessionDeleteOne{builder}
}

// Query returns a query builder for ExecutionSession.
func (c *ExecutionSessionClient) Query() *ExecutionSessionQuery {
	return &ExecutionSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionSession entity by its id.
func (c *ExecutionSessionClient) Get(ctx context.Context, id string) (*ExecutionSession, error) {
	return c.Query().Where(executionsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionSessionClient) GetX(ctx context.Context, id string) *ExecutionSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a ExecutionSession.
func (c *ExecutionSessionClient) QueryTicket(_m *ExecutionSession) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionsession.Table, executionsession.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionsession.TicketTable, executionsession.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionSessionClient) Hooks() []Hook {
	return c.hooks.ExecutionSession
}

// Interceptors returns the client interceptors.
func (c *ExecutionSessionClient) Interceptors() []Interceptor {
	return c.inters.ExecutionSession
}

func (c *ExecutionSessionClient) mutate(ctx context.Context, m *ExecutionSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionSession mutation op: %q", m.Op())
	}
}

// ExtractionClient is a client for the Extraction schema.
type ExtractionClient struct {
	config
}

// NewExtractionClient returns a client for the Extraction from the given config.
func NewExtractionClient(c config) *ExtractionClient {
	return &ExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extraction.Hooks(f(g(h())))`.
func (c *ExtractionClient) Use(hooks ...Hook) {
	c.hooks.Extraction = append(c.hooks.Extraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extraction.Intercept(f(g(h())))`.
func (c *ExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Extraction = append(c.inters.Extraction, interceptors...)
}

// Create returns a builder for creating a Extraction entity.
func (c *ExtractionClient) Create() *ExtractionCreate {
	mutation := newExtractionMutation(c.config, OpCreate)
	return &ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Extraction entities.
func (c *ExtractionClient) CreateBulk(builders ...*ExtractionCreate) *ExtractionCreateBulk {
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionClient) MapCreateBulk(slice any, setFunc func(*ExtractionCreate, int)) *ExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionCreateBulk{err: fmt.Errorf("calling to ExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Extraction.
func (c *ExtractionClient) Update() *ExtractionUpdate {
	mutation := newExtractionMutation(c.config, OpUpdate)
	return &ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionClient) UpdateOne(_m *Extraction) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtraction(_m))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionClient) UpdateOneID(id int) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtractionID(id))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Extraction.
func (c *ExtractionClient) Delete() *ExtractionDelete {
	mutation := newExtractionMutation(c.config, OpDelete)
	return &ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionClient) DeleteOne(_m *Extraction) *ExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionClient) DeleteOneID(id int) *ExtractionDeleteOne {
	builder := c.Delete().Where(extraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionDeleteOne{builder}
}

// Query returns a query builder for Extraction.
func (c *ExtractionClient) Query() *ExtractionQuery {
	return &ExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Extraction entity by its id.
func (c *ExtractionClient) Get(ctx context.Context, id int) (*Extraction, error) {
	return c.Query().Where(extraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionClient) GetX(ctx context.Context, id int) *Extraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a Extraction.
func (c *ExtractionClient) QueryTicket(_m *Extraction) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extraction.TicketTable, extraction.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionClient) Hooks() []Hook {
	return c.hooks.Extraction
}

// Interceptors returns the client interceptors.
func (c *ExtractionClient) Interceptors() []Interceptor {
	return c.inters.Extraction
}

func (c *ExtractionClient) mutate(ctx context.Context, m *ExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Extraction mutation op: %q", m.Op())
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
func (c *MessageClient) UpdateOneID(id int) *MessageUpdateOne {
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
func (c *MessageClient) DeleteOneID(id int) *MessageDeleteOne {
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
func (c *MessageClient) Get(ctx context.Context, id int) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id int) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a Message.
func (c *MessageClient) QueryTicket(_m *Message) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.TicketTable, message.TicketColumn),
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

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id int) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id int) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id int) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id int) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTickets queries the tickets edge of a Project.
func (c *ProjectClient) QueryTickets(_m *Project) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TicketsTable, project.TicketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// TicketClient is a client for the Ticket schema.
type TicketClient struct {
	config
}

// NewTicketClient returns a client for the Ticket from the given config.
func NewTicketClient(c config) *TicketClient {
	return &TicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticket.Hooks(f(g(h())))`.
func (c *TicketClient) Use(hooks ...Hook) {
	c.hooks.Ticket = append(c.hooks.Ticket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticket.Intercept(f(g(h())))`.
func (c *TicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ticket = append(c.inters.Ticket, interceptors...)
}

// Create returns a builder for creating a Ticket entity.
func (c *TicketClient) Create() *TicketCreate {
	mutation := newTicketMutation(c.config, OpCreate)
	return &TicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ticket entities.
func (c *TicketClient) CreateBulk(builders ...*TicketCreate) *TicketCreateBulk {
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketClient) MapCreateBulk(slice any, setFunc func(*TicketCreate, int)) *TicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketCreateBulk{err: fmt.Errorf("calling to TicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ticket.
func (c *TicketClient) Update() *TicketUpdate {
	mutation := newTicketMutation(c.config, OpUpdate)
	return &TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketClient) UpdateOne(_m *Ticket) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicket(_m))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketClient) UpdateOneID(id int) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicketID(id))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ticket.
func (c *TicketClient) Delete() *TicketDelete {
	mutation := newTicketMutation(c.config, OpDelete)
	return &TicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketClient) DeleteOne(_m *Ticket) *TicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketClient) DeleteOneID(id int) *TicketDeleteOne {
	builder := c.Delete().Where(ticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketDeleteOne{builder}
}

// Query returns a query builder for Ticket.
func (c *TicketClient) Query() *TicketQuery {
	return &TicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a Ticket entity by its id.
func (c *TicketClient) Get(ctx context.Context, id int) (*Ticket, error) {
	return c.Query().Where(ticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketClient) GetX(ctx context.Context, id int) *Ticket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Ticket.
func (c *TicketClient) QueryProject(_m *Ticket) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticket.ProjectTable, ticket.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParent queries the parent edge of a Ticket.
func (c *TicketClient) QueryParent(_m *Ticket) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticket.ParentTable, ticket.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a Ticket.
func (c *TicketClient) QueryChildren(_m *Ticket) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.ChildrenTable, ticket.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Ticket.
func (c *TicketClient) QueryMessages(_m *Ticket) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.MessagesTable, ticket.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtractions queries the extractions edge of a Ticket.
func (c *TicketClient) QueryExtractions(_m *Ticket) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.ExtractionsTable, ticket.ExtractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Ticket.
func (c *TicketClient) QuerySessions(_m *Ticket) *ExecutionSessionQuery {
	query := (&ExecutionSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(executionsession.Table, executionsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.SessionsTable, ticket.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPermissions queries the permissions edge of a Ticket.
func (c *TicketClient) QueryPermissions(_m *Ticket) *ApprovedPermissionQuery {
	query := (&ApprovedPermissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(approvedpermission.Table, approvedpermission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.PermissionsTable, ticket.PermissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDependencies queries the dependencies edge of a Ticket.
func (c *TicketClient) QueryDependencies(_m *Ticket) *TicketDependencyQuery {
	query := (&TicketDependencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(ticketdependency.Table, ticketdependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.DependenciesTable, ticket.DependenciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDependents queries the dependents edge of a Ticket.
func (c *TicketClient) QueryDependents(_m *Ticket) *TicketDependencyQuery {
	query := (&TicketDependencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(ticketdependency.Table, ticketdependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.DependentsTable, ticket.DependentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketClient) Hooks() []Hook {
	return c.hooks.Ticket
}

// Interceptors returns the client interceptors.
func (c *TicketClient) Interceptors() []Interceptor {
	return c.inters.Ticket
}

func (c *TicketClient) mutate(ctx context.Context, m *TicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ticket mutation op: %q", m.Op())
	}
}

// TicketDependencyClient is a client for the TicketDependency schema.
type TicketDependencyClient struct {
	config
}

// NewTicketDependencyClient returns a client for the TicketDependency from the given config.
func NewTicketDependencyClient(c config) *TicketDependencyClient {
	return &TicketDependencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticketdependency.Hooks(f(g(h())))`.
func (c *TicketDependencyClient) Use(hooks ...Hook) {
	c.hooks.TicketDependency = append(c.hooks.TicketDependency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticketdependency.Intercept(f(g(h())))`.
func (c *TicketDependencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.TicketDependency = append(c.inters.TicketDependency, interceptors...)
}

// Create returns a builder for creating a TicketDependency entity.
func (c *TicketDependencyClient) Create() *TicketDependencyCreate {
	mutation := newTicketDependencyMutation(c.config, OpCreate)
	return &TicketDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TicketDependency entities.
func (c *TicketDependencyClient) CreateBulk(builders ...*TicketDependencyCreate) *TicketDependencyCreateBulk {
	return &TicketDependencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketDependencyClient) MapCreateBulk(slice any, setFunc func(*TicketDependencyCreate, int)) *TicketDependencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketDependencyCreateBulk{err: fmt.Errorf("calling to TicketDependencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketDependencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketDependencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TicketDependency.
func (c *TicketDependencyClient) Update() *TicketDependencyUpdate {
	mutation := newTicketDependencyMutation(c.config, OpUpdate)
	return &TicketDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketDependencyClient) UpdateOne(_m *TicketDependency) *TicketDependencyUpdateOne {
	mutation := newTicketDependencyMutation(c.config, OpUpdateOne, withTicketDependency(_m))
	return &TicketDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketDependencyClient) UpdateOneID(id int) *TicketDependencyUpdateOne {
	mutation := newTicketDependencyMutation(c.config, OpUpdateOne, withTicketDependencyID(id))
	return &TicketDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TicketDependency.
func (c *TicketDependencyClient) Delete() *TicketDependencyDelete {
	mutation := newTicketDependencyMutation(c.config, OpDelete)
	return &TicketDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketDependencyClient) DeleteOne(_m *TicketDependency) *TicketDependencyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketDependencyClient) DeleteOneID(id int) *TicketDependencyDeleteOne {
	builder := c.Delete().Where(ticketdependency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketDependencyDeleteOne{builder}
}

// Query returns a query builder for TicketDependency.
func (c *TicketDependencyClient) Query() *TicketDependencyQuery {
	return &TicketDependencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicketDependency},
		inters: c.Interceptors(),
	}
}

// Get returns a TicketDependency entity by its id.
func (c *TicketDependencyClient) Get(ctx context.Context, id int) (*TicketDependency, error) {
	return c.Query().Where(ticketdependency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketDependencyClient) GetX(ctx context.Context, id int) *TicketDependency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a TicketDependency.
func (c *TicketDependencyClient) QueryTicket(_m *TicketDependency) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketdependency.Table, ticketdependency.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticketdependency.TicketTable, ticketdependency.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDependsOn queries the depends_on edge of a TicketDependency.
func (c *TicketDependencyClient) QueryDependsOn(_m *TicketDependency) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketdependency.Table, ticketdependency.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticketdependency.DependsOnTable, ticketdependency.DependsOnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketDependencyClient) Hooks() []Hook {
	return c.hooks.TicketDependency
}

// Interceptors returns the client interceptors.
func (c *TicketDependencyClient) Interceptors() []Interceptor {
	return c.inters.TicketDependency
}

func (c *TicketDependencyClient) mutate(ctx context.Context, m *TicketDependencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TicketDependency mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovedPermission, DaemonStatus, ExecutionSession, Extraction, Message,
		Project, Ticket, TicketDependency []ent.Hook
	}
	inters struct {
		ApprovedPermission, DaemonStatus, ExecutionSession, Extraction, Message,
		Project, Ticket, TicketDependency []ent.Interceptor
	}
)
