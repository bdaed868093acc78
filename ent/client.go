// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/aaron-lee-hebert/seller-metrics/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/aaron-lee-hebert/seller-metrics/ent/externalrecord"
	"github.com/aaron-lee-hebert/seller-metrics/ent/inventoryitem"
	"github.com/aaron-lee-hebert/seller-metrics/ent/marketplacecredential"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExternalRecord is the client for interacting with the ExternalRecord builders.
	ExternalRecord *ExternalRecordClient
	// InventoryItem is the client for interacting with the InventoryItem builders.
	InventoryItem *InventoryItemClient
	// MarketplaceCredential is the client for interacting with the MarketplaceCredential builders.
	MarketplaceCredential *MarketplaceCredentialClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExternalRecord = NewExternalRecordClient(c.config)
	c.InventoryItem = NewInventoryItemClient(c.config)
	c.MarketplaceCredential = NewMarketplaceCredentialClient(c.config)
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
		ctx:                   ctx,
		config:                cfg,
		ExternalRecord:        NewExternalRecordClient(cfg),
		InventoryItem:         NewInventoryItemClient(cfg),
		MarketplaceCredential: NewMarketplaceCredentialClient(cfg),
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
		ctx:                   ctx,
		config:                cfg,
		ExternalRecord:        NewExternalRecordClient(cfg),
		InventoryItem:         NewInventoryItemClient(cfg),
		MarketplaceCredential: NewMarketplaceCredentialClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExternalRecord.
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
	c.ExternalRecord.Use(hooks...)
	c.InventoryItem.Use(hooks...)
	c.MarketplaceCredential.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExternalRecord.Intercept(interceptors...)
	c.InventoryItem.Intercept(interceptors...)
	c.MarketplaceCredential.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExternalRecordMutation:
		return c.ExternalRecord.mutate(ctx, m)
	case *InventoryItemMutation:
		return c.InventoryItem.mutate(ctx, m)
	case *MarketplaceCredentialMutation:
		return c.MarketplaceCredential.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExternalRecordClient is a client for the ExternalRecord schema.
type ExternalRecordClient struct {
	config
}

// NewExternalRecordClient returns a client for the ExternalRecord from the given config.
func NewExternalRecordClient(c config) *ExternalRecordClient {
	return &ExternalRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `externalrecord.Hooks(f(g(h())))`.
func (c *ExternalRecordClient) Use(hooks ...Hook) {
	c.hooks.ExternalRecord = append(c.hooks.ExternalRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `externalrecord.Intercept(f(g(h())))`.
func (c *ExternalRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExternalRecord = append(c.inters.ExternalRecord, interceptors...)
}

// Create returns a builder for creating a ExternalRecord entity.
func (c *ExternalRecordClient) Create() *ExternalRecordCreate {
	mutation := newExternalRecordMutation(c.config, OpCreate)
	return &ExternalRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExternalRecord entities.
func (c *ExternalRecordClient) CreateBulk(builders ...*ExternalRecordCreate) *ExternalRecordCreateBulk {
	return &ExternalRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExternalRecordClient) MapCreateBulk(slice any, setFunc func(*ExternalRecordCreate, int)) *ExternalRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExternalRecordCreateBulk{err: fmt.Errorf("calling to ExternalRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExternalRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExternalRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExternalRecord.
func (c *ExternalRecordClient) Update() *ExternalRecordUpdate {
	mutation := newExternalRecordMutation(c.config, OpUpdate)
	return &ExternalRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExternalRecordClient) UpdateOne(_m *ExternalRecord) *ExternalRecordUpdateOne {
	mutation := newExternalRecordMutation(c.config, OpUpdateOne, withExternalRecord(_m))
	return &ExternalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExternalRecordClient) UpdateOneID(id int) *ExternalRecordUpdateOne {
	mutation := newExternalRecordMutation(c.config, OpUpdateOne, withExternalRecordID(id))
	return &ExternalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExternalRecord.
func (c *ExternalRecordClient) Delete() *ExternalRecordDelete {
	mutation := newExternalRecordMutation(c.config, OpDelete)
	return &ExternalRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExternalRecordClient) DeleteOne(_m *ExternalRecord) *ExternalRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExternalRecordClient) DeleteOneID(id int) *ExternalRecordDeleteOne {
	builder := c.Delete().Where(externalrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExternalRecordDeleteOne{builder}
}

// Query returns a query builder for ExternalRecord.
func (c *ExternalRecordClient) Query() *ExternalRecordQuery {
	return &ExternalRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExternalRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ExternalRecord entity by its id.
func (c *ExternalRecordClient) Get(ctx context.Context, id int) (*ExternalRecord, error) {
	return c.Query().Where(externalrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExternalRecordClient) GetX(ctx context.Context, id int) *ExternalRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExternalRecordClient) Hooks() []Hook {
	return c.hooks.ExternalRecord
}

// Interceptors returns the client interceptors.
func (c *ExternalRecordClient) Interceptors() []Interceptor {
	return c.inters.ExternalRecord
}

func (c *ExternalRecordClient) mutate(ctx context.Context, m *ExternalRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExternalRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExternalRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExternalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExternalRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExternalRecord mutation op: %q", m.Op())
	}
}

// InventoryItemClient is a client for the InventoryItem schema.
type InventoryItemClient struct {
	config
}

// NewInventoryItemClient returns a client for the InventoryItem from the given config.
func NewInventoryItemClient(c config) *InventoryItemClient {
	return &InventoryItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inventoryitem.Hooks(f(g(h())))`.
func (c *InventoryItemClient) Use(hooks ...Hook) {
	c.hooks.InventoryItem = append(c.hooks.InventoryItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inventoryitem.Intercept(f(g(h())))`.
func (c *InventoryItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.InventoryItem = append(c.inters.InventoryItem, interceptors...)
}

// Create returns a builder for creating a InventoryItem entity.
func (c *InventoryItemClient) Create() *InventoryItemCreate {
	mutation := newInventoryItemMutation(c.config, OpCreate)
	return &InventoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InventoryItem entities.
func (c *InventoryItemClient) CreateBulk(builders ...*InventoryItemCreate) *InventoryItemCreateBulk {
	return &InventoryItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InventoryItemClient) MapCreateBulk(slice any, setFunc func(*InventoryItemCreate, int)) *InventoryItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InventoryItemCreateBulk{err: fmt.Errorf("calling to InventoryItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InventoryItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InventoryItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InventoryItem.
func (c *InventoryItemClient) Update() *InventoryItemUpdate {
	mutation := newInventoryItemMutation(c.config, OpUpdate)
	return &InventoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InventoryItemClient) UpdateOne(_m *InventoryItem) *InventoryItemUpdateOne {
	mutation := newInventoryItemMutation(c.config, OpUpdateOne, withInventoryItem(_m))
	return &InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InventoryItemClient) UpdateOneID(id int) *InventoryItemUpdateOne {
	mutation := newInventoryItemMutation(c.config, OpUpdateOne, withInventoryItemID(id))
	return &InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InventoryItem.
func (c *InventoryItemClient) Delete() *InventoryItemDelete {
	mutation := newInventoryItemMutation(c.config, OpDelete)
	return &InventoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InventoryItemClient) DeleteOne(_m *InventoryItem) *InventoryItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InventoryItemClient) DeleteOneID(id int) *InventoryItemDeleteOne {
	builder := c.Delete().Where(inventoryitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InventoryItemDeleteOne{builder}
}

// Query returns a query builder for InventoryItem.
func (c *InventoryItemClient) Query() *InventoryItemQuery {
	return &InventoryItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInventoryItem},
		inters: c.Interceptors(),
	}
}

// Get returns a InventoryItem entity by its id.
func (c *InventoryItemClient) Get(ctx context.Context, id int) (*InventoryItem, error) {
	return c.Query().Where(inventoryitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InventoryItemClient) GetX(ctx context.Context, id int) *InventoryItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InventoryItemClient) Hooks() []Hook {
	return c.hooks.InventoryItem
}

// Interceptors returns the client interceptors.
func (c *InventoryItemClient) Interceptors() []Interceptor {
	return c.inters.InventoryItem
}

func (c *InventoryItemClient) mutate(ctx context.Context, m *InventoryItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InventoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InventoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InventoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InventoryItem mutation op: %q", m.Op())
	}
}

// MarketplaceCredentialClient is a client for the MarketplaceCredential schema.
type MarketplaceCredentialClient struct {
	config
}

// NewMarketplaceCredentialClient returns a client for the MarketplaceCredential from the given config.
func NewMarketplaceCredentialClient(c config) *MarketplaceCredentialClient {
	return &MarketplaceCredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `marketplacecredential.Hooks(f(g(h())))`.
func (c *MarketplaceCredentialClient) Use(hooks ...Hook) {
	c.hooks.MarketplaceCredential = append(c.hooks.MarketplaceCredential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `marketplacecredential.Intercept(f(g(h())))`.
func (c *MarketplaceCredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.MarketplaceCredential = append(c.inters.MarketplaceCredential, interceptors...)
}

// Create returns a builder for creating a MarketplaceCredential entity.
func (c *MarketplaceCredentialClient) Create() *MarketplaceCredentialCreate {
	mutation := newMarketplaceCredentialMutation(c.config, OpCreate)
	return &MarketplaceCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MarketplaceCredential entities.
func (c *MarketplaceCredentialClient) CreateBulk(builders ...*MarketplaceCredentialCreate) *MarketplaceCredentialCreateBulk {
	return &MarketplaceCredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MarketplaceCredentialClient) MapCreateBulk(slice any, setFunc func(*MarketplaceCredentialCreate, int)) *MarketplaceCredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MarketplaceCredentialCreateBulk{err: fmt.Errorf("calling to MarketplaceCredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MarketplaceCredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MarketplaceCredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MarketplaceCredential.
func (c *MarketplaceCredentialClient) Update() *MarketplaceCredentialUpdate {
	mutation := newMarketplaceCredentialMutation(c.config, OpUpdate)
	return &MarketplaceCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MarketplaceCredentialClient) UpdateOne(_m *MarketplaceCredential) *MarketplaceCredentialUpdateOne {
	mutation := newMarketplaceCredentialMutation(c.config, OpUpdateOne, withMarketplaceCredential(_m))
	return &MarketplaceCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MarketplaceCredentialClient) UpdateOneID(id int) *MarketplaceCredentialUpdateOne {
	mutation := newMarketplaceCredentialMutation(c.config, OpUpdateOne, withMarketplaceCredentialID(id))
	return &MarketplaceCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MarketplaceCredential.
func (c *MarketplaceCredentialClient) Delete() *MarketplaceCredentialDelete {
	mutation := newMarketplaceCredentialMutation(c.config, OpDelete)
	return &MarketplaceCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MarketplaceCredentialClient) DeleteOne(_m *MarketplaceCredential) *MarketplaceCredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MarketplaceCredentialClient) DeleteOneID(id int) *MarketplaceCredentialDeleteOne {
	builder := c.Delete().Where(marketplacecredential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MarketplaceCredentialDeleteOne{builder}
}

// Query returns a query builder for MarketplaceCredential.
func (c *MarketplaceCredentialClient) Query() *MarketplaceCredentialQuery {
	return &MarketplaceCredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMarketplaceCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a MarketplaceCredential entity by its id.
func (c *MarketplaceCredentialClient) Get(ctx context.Context, id int) (*MarketplaceCredential, error) {
	return c.Query().Where(marketplacecredential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MarketplaceCredentialClient) GetX(ctx context.Context, id int) *MarketplaceCredential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MarketplaceCredentialClient) Hooks() []Hook {
	return c.hooks.MarketplaceCredential
}

// Interceptors returns the client interceptors.
func (c *MarketplaceCredentialClient) Interceptors() []Interceptor {
	return c.inters.MarketplaceCredential
}

func (c *MarketplaceCredentialClient) mutate(ctx context.Context, m *MarketplaceCredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MarketplaceCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MarketplaceCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MarketplaceCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MarketplaceCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MarketplaceCredential mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExternalRecord, InventoryItem, MarketplaceCredential []ent.Hook
	}
	inters struct {
		ExternalRecord, InventoryItem, MarketplaceCredential []ent.Interceptor
	}
)
