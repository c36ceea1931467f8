// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"farmdeck.io/farmdeck/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"farmdeck.io/farmdeck/ent/changelogentry"
	"farmdeck.io/farmdeck/ent/farm"
	"farmdeck.io/farmdeck/ent/farmsequence"
	"farmdeck.io/farmdeck/ent/mob"
	"farmdeck.io/farmdeck/ent/movement"
	"farmdeck.io/farmdeck/ent/paddock"
	"farmdeck.io/farmdeck/ent/paddockrecord"
	"farmdeck.io/farmdeck/ent/sensor"
	"farmdeck.io/farmdeck/ent/stockrecord"
	"farmdeck.io/farmdeck/ent/syncreceipt"
	"farmdeck.io/farmdeck/ent/tombstone"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChangeLogEntry is the client for interacting with the ChangeLogEntry builders.
	ChangeLogEntry *ChangeLogEntryClient
	// Farm is the client for interacting with the Farm builders.
	Farm *FarmClient
	// FarmSequence is the client for interacting with the FarmSequence builders.
	FarmSequence *FarmSequenceClient
	// Mob is the client for interacting with the Mob builders.
	Mob *MobClient
	// Movement is the client for interacting with the Movement builders.
	Movement *MovementClient
	// Paddock is the client for interacting with the Paddock builders.
	Paddock *PaddockClient
	// PaddockRecord is the client for interacting with the PaddockRecord builders.
	PaddockRecord *PaddockRecordClient
	// Sensor is the client for interacting with the Sensor builders.
	Sensor *SensorClient
	// StockRecord is the client for interacting with the StockRecord builders.
	StockRecord *StockRecordClient
	// SyncReceipt is the client for interacting with the SyncReceipt builders.
	SyncReceipt *SyncReceiptClient
	// Tombstone is the client for interacting with the Tombstone builders.
	Tombstone *TombstoneClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChangeLogEntry = NewChangeLogEntryClient(c.config)
	c.Farm = NewFarmClient(c.config)
	c.FarmSequence = NewFarmSequenceClient(c.config)
	c.Mob = NewMobClient(c.config)
	c.Movement = NewMovementClient(c.config)
	c.Paddock = NewPaddockClient(c.config)
	c.PaddockRecord = NewPaddockRecordClient(c.config)
	c.Sensor = NewSensorClient(c.config)
	c.StockRecord = NewStockRecordClient(c.config)
	c.SyncReceipt = NewSyncReceiptClient(c.config)
	c.Tombstone = NewTombstoneClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		ChangeLogEntry: NewChangeLogEntryClient(cfg),
		Farm:           NewFarmClient(cfg),
		FarmSequence:   NewFarmSequenceClient(cfg),
		Mob:            NewMobClient(cfg),
		Movement:       NewMovementClient(cfg),
		Paddock:        NewPaddockClient(cfg),
		PaddockRecord:  NewPaddockRecordClient(cfg),
		Sensor:         NewSensorClient(cfg),
		StockRecord:    NewStockRecordClient(cfg),
		SyncReceipt:    NewSyncReceiptClient(cfg),
		Tombstone:      NewTombstoneClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		ChangeLogEntry: NewChangeLogEntryClient(cfg),
		Farm:           NewFarmClient(cfg),
		FarmSequence:   NewFarmSequenceClient(cfg),
		Mob:            NewMobClient(cfg),
		Movement:       NewMovementClient(cfg),
		Paddock:        NewPaddockClient(cfg),
		PaddockRecord:  NewPaddockRecordClient(cfg),
		Sensor:         NewSensorClient(cfg),
		StockRecord:    NewStockRecordClient(cfg),
		SyncReceipt:    NewSyncReceiptClient(cfg),
		Tombstone:      NewTombstoneClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChangeLogEntry.
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
		c.ChangeLogEntry, c.Farm, c.FarmSequence, c.Mob, c.Movement, c.Paddock,
		c.PaddockRecord, c.Sensor, c.StockRecord, c.SyncReceipt, c.Tombstone,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChangeLogEntry, c.Farm, c.FarmSequence, c.Mob, c.Movement, c.Paddock,
		c.PaddockRecord, c.Sensor, c.StockRecord, c.SyncReceipt, c.Tombstone,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChangeLogEntryMutation:
		return c.ChangeLogEntry.mutate(ctx, m)
	case *FarmMutation:
		return c.Farm.mutate(ctx, m)
	case *FarmSequenceMutation:
		return c.FarmSequence.mutate(ctx, m)
	case *MobMutation:
		return c.Mob.mutate(ctx, m)
	case *MovementMutation:
		return c.Movement.mutate(ctx, m)
	case *PaddockMutation:
		return c.Paddock.mutate(ctx, m)
	case *PaddockRecordMutation:
		return c.PaddockRecord.mutate(ctx, m)
	case *SensorMutation:
		return c.Sensor.mutate(ctx, m)
	case *StockRecordMutation:
		return c.StockRecord.mutate(ctx, m)
	case *SyncReceiptMutation:
		return c.SyncReceipt.mutate(ctx, m)
	case *TombstoneMutation:
		return c.Tombstone.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChangeLogEntryClient is a client for the ChangeLogEntry schema.
type ChangeLogEntryClient struct {
	config
}

// NewChangeLogEntryClient returns a client for the ChangeLogEntry from the given config.
func NewChangeLogEntryClient(c config) *ChangeLogEntryClient {
	return &ChangeLogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `changelogentry.Hooks(f(g(h())))`.
func (c *ChangeLogEntryClient) Use(hooks ...Hook) {
	c.hooks.ChangeLogEntry = append(c.hooks.ChangeLogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `changelogentry.Intercept(f(g(h())))`.
func (c *ChangeLogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChangeLogEntry = append(c.inters.ChangeLogEntry, interceptors...)
}

// Create returns a builder for creating a ChangeLogEntry entity.
func (c *ChangeLogEntryClient) Create() *ChangeLogEntryCreate {
	mutation := newChangeLogEntryMutation(c.config, OpCreate)
	return &ChangeLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChangeLogEntry entities.
func (c *ChangeLogEntryClient) CreateBulk(builders ...*ChangeLogEntryCreate) *ChangeLogEntryCreateBulk {
	return &ChangeLogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChangeLogEntryClient) MapCreateBulk(slice any, setFunc func(*ChangeLogEntryCreate, int)) *ChangeLogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChangeLogEntryCreateBulk{err: fmt.Errorf("calling to ChangeLogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChangeLogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChangeLogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChangeLogEntry.
func (c *ChangeLogEntryClient) Update() *ChangeLogEntryUpdate {
	mutation := newChangeLogEntryMutation(c.config, OpUpdate)
	return &ChangeLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChangeLogEntryClient) UpdateOne(_m *ChangeLogEntry) *ChangeLogEntryUpdateOne {
	mutation := newChangeLogEntryMutation(c.config, OpUpdateOne, withChangeLogEntry(_m))
	return &ChangeLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChangeLogEntryClient) UpdateOneID(id int) *ChangeLogEntryUpdateOne {
	mutation := newChangeLogEntryMutation(c.config, OpUpdateOne, withChangeLogEntryID(id))
	return &ChangeLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChangeLogEntry.
func (c *ChangeLogEntryClient) Delete() *ChangeLogEntryDelete {
	mutation := newChangeLogEntryMutation(c.config, OpDelete)
	return &ChangeLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChangeLogEntryClient) DeleteOne(_m *ChangeLogEntry) *ChangeLogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChangeLogEntryClient) DeleteOneID(id int) *ChangeLogEntryDeleteOne {
	builder := c.Delete().Where(changelogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChangeLogEntryDeleteOne{builder}
}

// Query returns a query builder for ChangeLogEntry.
func (c *ChangeLogEntryClient) Query() *ChangeLogEntryQuery {
	return &ChangeLogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChangeLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ChangeLogEntry entity by its id.
func (c *ChangeLogEntryClient) Get(ctx context.Context, id int) (*ChangeLogEntry, error) {
	return c.Query().Where(changelogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChangeLogEntryClient) GetX(ctx context.Context, id int) *ChangeLogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChangeLogEntryClient) Hooks() []Hook {
	return c.hooks.ChangeLogEntry
}

// Interceptors returns the client interceptors.
func (c *ChangeLogEntryClient) Interceptors() []Interceptor {
	return c.inters.ChangeLogEntry
}

func (c *ChangeLogEntryClient) mutate(ctx context.Context, m *ChangeLogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChangeLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChangeLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChangeLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChangeLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChangeLogEntry mutation op: %q", m.Op())
	}
}

// FarmClient is a client for the Farm schema.
type FarmClient struct {
	config
}

// NewFarmClient returns a client for the Farm from the given config.
func NewFarmClient(c config) *FarmClient {
	return &FarmClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `farm.Hooks(f(g(h())))`.
func (c *FarmClient) Use(hooks ...Hook) {
	c.hooks.Farm = append(c.hooks.Farm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `farm.Intercept(f(g(h())))`.
func (c *FarmClient) Intercept(interceptors ...Interceptor) {
	c.inters.Farm = append(c.inters.Farm, interceptors...)
}

// Create returns a builder for creating a Farm entity.
func (c *FarmClient) Create() *FarmCreate {
	mutation := newFarmMutation(c.config, OpCreate)
	return &FarmCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Farm entities.
func (c *FarmClient) CreateBulk(builders ...*FarmCreate) *FarmCreateBulk {
	return &FarmCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FarmClient) MapCreateBulk(slice any, setFunc func(*FarmCreate, int)) *FarmCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FarmCreateBulk{err: fmt.Errorf("calling to FarmClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FarmCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FarmCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Farm.
func (c *FarmClient) Update() *FarmUpdate {
	mutation := newFarmMutation(c.config, OpUpdate)
	return &FarmUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FarmClient) UpdateOne(_m *Farm) *FarmUpdateOne {
	mutation := newFarmMutation(c.config, OpUpdateOne, withFarm(_m))
	return &FarmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FarmClient) UpdateOneID(id string) *FarmUpdateOne {
	mutation := newFarmMutation(c.config, OpUpdateOne, withFarmID(id))
	return &FarmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Farm.
func (c *FarmClient) Delete() *FarmDelete {
	mutation := newFarmMutation(c.config, OpDelete)
	return &FarmDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FarmClient) DeleteOne(_m *Farm) *FarmDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FarmClient) DeleteOneID(id string) *FarmDeleteOne {
	builder := c.Delete().Where(farm.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FarmDeleteOne{builder}
}

// Query returns a query builder for Farm.
func (c *FarmClient) Query() *FarmQuery {
	return &FarmQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFarm},
		inters: c.Interceptors(),
	}
}

// Get returns a Farm entity by its id.
func (c *FarmClient) Get(ctx context.Context, id string) (*Farm, error) {
	return c.Query().Where(farm.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FarmClient) GetX(ctx context.Context, id string) *Farm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FarmClient) Hooks() []Hook {
	return c.hooks.Farm
}

// Interceptors returns the client interceptors.
func (c *FarmClient) Interceptors() []Interceptor {
	return c.inters.Farm
}

func (c *FarmClient) mutate(ctx context.Context, m *FarmMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FarmCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FarmUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FarmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FarmDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Farm mutation op: %q", m.Op())
	}
}

// FarmSequenceClient is a client for the FarmSequence schema.
type FarmSequenceClient struct {
	config
}

// NewFarmSequenceClient returns a client for the FarmSequence from the given config.
func NewFarmSequenceClient(c config) *FarmSequenceClient {
	return &FarmSequenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `farmsequence.Hooks(f(g(h())))`.
func (c *FarmSequenceClient) Use(hooks ...Hook) {
	c.hooks.FarmSequence = append(c.hooks.FarmSequence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `farmsequence.Intercept(f(g(h())))`.
func (c *FarmSequenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.FarmSequence = append(c.inters.FarmSequence, interceptors...)
}

// Create returns a builder for creating a FarmSequence entity.
func (c *FarmSequenceClient) Create() *FarmSequenceCreate {
	mutation := newFarmSequenceMutation(c.config, OpCreate)
	return &FarmSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FarmSequence entities.
func (c *FarmSequenceClient) CreateBulk(builders ...*FarmSequenceCreate) *FarmSequenceCreateBulk {
	return &FarmSequenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FarmSequenceClient) MapCreateBulk(slice any, setFunc func(*FarmSequenceCreate, int)) *FarmSequenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FarmSequenceCreateBulk{err: fmt.Errorf("calling to FarmSequenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FarmSequenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FarmSequenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FarmSequence.
func (c *FarmSequenceClient) Update() *FarmSequenceUpdate {
	mutation := newFarmSequenceMutation(c.config, OpUpdate)
	return &FarmSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FarmSequenceClient) UpdateOne(_m *FarmSequence) *FarmSequenceUpdateOne {
	mutation := newFarmSequenceMutation(c.config, OpUpdateOne, withFarmSequence(_m))
	return &FarmSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FarmSequenceClient) UpdateOneID(id int) *FarmSequenceUpdateOne {
	mutation := newFarmSequenceMutation(c.config, OpUpdateOne, withFarmSequenceID(id))
	return &FarmSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FarmSequence.
func (c *FarmSequenceClient) Delete() *FarmSequenceDelete {
	mutation := newFarmSequenceMutation(c.config, OpDelete)
	return &FarmSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FarmSequenceClient) DeleteOne(_m *FarmSequence) *FarmSequenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FarmSequenceClient) DeleteOneID(id int) *FarmSequenceDeleteOne {
	builder := c.Delete().Where(farmsequence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FarmSequenceDeleteOne{builder}
}

// Query returns a query builder for FarmSequence.
func (c *FarmSequenceClient) Query() *FarmSequenceQuery {
	return &FarmSequenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFarmSequence},
		inters: c.Interceptors(),
	}
}

// Get returns a FarmSequence entity by its id.
func (c *FarmSequenceClient) Get(ctx context.Context, id int) (*FarmSequence, error) {
	return c.Query().Where(farmsequence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FarmSequenceClient) GetX(ctx context.Context, id int) *FarmSequence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FarmSequenceClient) Hooks() []Hook {
	return c.hooks.FarmSequence
}

// Interceptors returns the client interceptors.
func (c *FarmSequenceClient) Interceptors() []Interceptor {
	return c.inters.FarmSequence
}

func (c *FarmSequenceClient) mutate(ctx context.Context, m *FarmSequenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FarmSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FarmSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FarmSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FarmSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FarmSequence mutation op: %q", m.Op())
	}
}

// MobClient is a client for the Mob schema.
type MobClient struct {
	config
}

// NewMobClient returns a client for the Mob from the given config.
func NewMobClient(c config) *MobClient {
	return &MobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mob.Hooks(f(g(h())))`.
func (c *MobClient) Use(hooks ...Hook) {
	c.hooks.Mob = append(c.hooks.Mob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mob.Intercept(f(g(h())))`.
func (c *MobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Mob = append(c.inters.Mob, interceptors...)
}

// Create returns a builder for creating a Mob entity.
func (c *MobClient) Create() *MobCreate {
	mutation := newMobMutation(c.config, OpCreate)
	return &MobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Mob entities.
func (c *MobClient) CreateBulk(builders ...*MobCreate) *MobCreateBulk {
	return &MobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MobClient) MapCreateBulk(slice any, setFunc func(*MobCreate, int)) *MobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MobCreateBulk{err: fmt.Errorf("calling to MobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Mob.
func (c *MobClient) Update() *MobUpdate {
	mutation := newMobMutation(c.config, OpUpdate)
	return &MobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MobClient) UpdateOne(_m *Mob) *MobUpdateOne {
	mutation := newMobMutation(c.config, OpUpdateOne, withMob(_m))
	return &MobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MobClient) UpdateOneID(id string) *MobUpdateOne {
	mutation := newMobMutation(c.config, OpUpdateOne, withMobID(id))
	return &MobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Mob.
func (c *MobClient) Delete() *MobDelete {
	mutation := newMobMutation(c.config, OpDelete)
	return &MobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MobClient) DeleteOne(_m *Mob) *MobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MobClient) DeleteOneID(id string) *MobDeleteOne {
	builder := c.Delete().Where(mob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MobDeleteOne{builder}
}

// Query returns a query builder for Mob.
func (c *MobClient) Query() *MobQuery {
	return &MobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMob},
		inters: c.Interceptors(),
	}
}

// Get returns a Mob entity by its id.
func (c *MobClient) Get(ctx context.Context, id string) (*Mob, error) {
	return c.Query().Where(mob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MobClient) GetX(ctx context.Context, id string) *Mob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MobClient) Hooks() []Hook {
	return c.hooks.Mob
}

// Interceptors returns the client interceptors.
func (c *MobClient) Interceptors() []Interceptor {
	return c.inters.Mob
}

func (c *MobClient) mutate(ctx context.Context, m *MobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Mob mutation op: %q", m.Op())
	}
}

// MovementClient is a client for the Movement schema.
type MovementClient struct {
	config
}

// NewMovementClient returns a client for the Movement from the given config.
func NewMovementClient(c config) *MovementClient {
	return &MovementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `movement.Hooks(f(g(h())))`.
func (c *MovementClient) Use(hooks ...Hook) {
	c.hooks.Movement = append(c.hooks.Movement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `movement.Intercept(f(g(h())))`.
func (c *MovementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Movement = append(c.inters.Movement, interceptors...)
}

// Create returns a builder for creating a Movement entity.
func (c *MovementClient) Create() *MovementCreate {
	mutation := newMovementMutation(c.config, OpCreate)
	return &MovementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Movement entities.
func (c *MovementClient) CreateBulk(builders ...*MovementCreate) *MovementCreateBulk {
	return &MovementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MovementClient) MapCreateBulk(slice any, setFunc func(*MovementCreate, int)) *MovementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MovementCreateBulk{err: fmt.Errorf("calling to MovementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MovementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MovementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Movement.
func (c *MovementClient) Update() *MovementUpdate {
	mutation := newMovementMutation(c.config, OpUpdate)
	return &MovementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MovementClient) UpdateOne(_m *Movement) *MovementUpdateOne {
	mutation := newMovementMutation(c.config, OpUpdateOne, withMovement(_m))
	return &MovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MovementClient) UpdateOneID(id string) *MovementUpdateOne {
	mutation := newMovementMutation(c.config, OpUpdateOne, withMovementID(id))
	return &MovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Movement.
func (c *MovementClient) Delete() *MovementDelete {
	mutation := newMovementMutation(c.config, OpDelete)
	return &MovementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MovementClient) DeleteOne(_m *Movement) *MovementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MovementClient) DeleteOneID(id string) *MovementDeleteOne {
	builder := c.Delete().Where(movement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MovementDeleteOne{builder}
}

// Query returns a query builder for Movement.
func (c *MovementClient) Query() *MovementQuery {
	return &MovementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMovement},
		inters: c.Interceptors(),
	}
}

// Get returns a Movement entity by its id.
func (c *MovementClient) Get(ctx context.Context, id string) (*Movement, error) {
	return c.Query().Where(movement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MovementClient) GetX(ctx context.Context, id string) *Movement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MovementClient) Hooks() []Hook {
	return c.hooks.Movement
}

// Interceptors returns the client interceptors.
func (c *MovementClient) Interceptors() []Interceptor {
	return c.inters.Movement
}

func (c *MovementClient) mutate(ctx context.Context, m *MovementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MovementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MovementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MovementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Movement mutation op: %q", m.Op())
	}
}

// PaddockClient is a client for the Paddock schema.
type PaddockClient struct {
	config
}

// NewPaddockClient returns a client for the Paddock from the given config.
func NewPaddockClient(c config) *PaddockClient {
	return &PaddockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paddock.Hooks(f(g(h())))`.
func (c *PaddockClient) Use(hooks ...Hook) {
	c.hooks.Paddock = append(c.hooks.Paddock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paddock.Intercept(f(g(h())))`.
func (c *PaddockClient) Intercept(interceptors ...Interceptor) {
	c.inters.Paddock = append(c.inters.Paddock, interceptors...)
}

// Create returns a builder for creating a Paddock entity.
func (c *PaddockClient) Create() *PaddockCreate {
	mutation := newPaddockMutation(c.config, OpCreate)
	return &PaddockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Paddock entities.
func (c *PaddockClient) CreateBulk(builders ...*PaddockCreate) *PaddockCreateBulk {
	return &PaddockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaddockClient) MapCreateBulk(slice any, setFunc func(*PaddockCreate, int)) *PaddockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaddockCreateBulk{err: fmt.Errorf("calling to PaddockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaddockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaddockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Paddock.
func (c *PaddockClient) Update() *PaddockUpdate {
	mutation := newPaddockMutation(c.config, OpUpdate)
	return &PaddockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaddockClient) UpdateOne(_m *Paddock) *PaddockUpdateOne {
	mutation := newPaddockMutation(c.config, OpUpdateOne, withPaddock(_m))
	return &PaddockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaddockClient) UpdateOneID(id string) *PaddockUpdateOne {
	mutation := newPaddockMutation(c.config, OpUpdateOne, withPaddockID(id))
	return &PaddockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Paddock.
func (c *PaddockClient) Delete() *PaddockDelete {
	mutation := newPaddockMutation(c.config, OpDelete)
	return &PaddockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaddockClient) DeleteOne(_m *Paddock) *PaddockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaddockClient) DeleteOneID(id string) *PaddockDeleteOne {
	builder := c.Delete().Where(paddock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaddockDeleteOne{builder}
}

// Query returns a query builder for Paddock.
func (c *PaddockClient) Query() *PaddockQuery {
	return &PaddockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaddock},
		inters: c.Interceptors(),
	}
}

// Get returns a Paddock entity by its id.
func (c *PaddockClient) Get(ctx context.Context, id string) (*Paddock, error) {
	return c.Query().Where(paddock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaddockClient) GetX(ctx context.Context, id string) *Paddock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PaddockClient) Hooks() []Hook {
	return c.hooks.Paddock
}

// Interceptors returns the client interceptors.
func (c *PaddockClient) Interceptors() []Interceptor {
	return c.inters.Paddock
}

func (c *PaddockClient) mutate(ctx context.Context, m *PaddockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaddockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaddockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaddockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaddockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Paddock mutation op: %q", m.Op())
	}
}

// PaddockRecordClient is a client for the PaddockRecord schema.
type PaddockRecordClient struct {
	config
}

// NewPaddockRecordClient returns a client for the PaddockRecord from the given config.
func NewPaddockRecordClient(c config) *PaddockRecordClient {
	return &PaddockRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paddockrecord.Hooks(f(g(h())))`.
func (c *PaddockRecordClient) Use(hooks ...Hook) {
	c.hooks.PaddockRecord = append(c.hooks.PaddockRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paddockrecord.Intercept(f(g(h())))`.
func (c *PaddockRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaddockRecord = append(c.inters.PaddockRecord, interceptors...)
}

// Create returns a builder for creating a PaddockRecord entity.
func (c *PaddockRecordClient) Create() *PaddockRecordCreate {
	mutation := newPaddockRecordMutation(c.config, OpCreate)
	return &PaddockRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaddockRecord entities.
func (c *PaddockRecordClient) CreateBulk(builders ...*PaddockRecordCreate) *PaddockRecordCreateBulk {
	return &PaddockRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaddockRecordClient) MapCreateBulk(slice any, setFunc func(*PaddockRecordCreate, int)) *PaddockRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaddockRecordCreateBulk{err: fmt.Errorf("calling to PaddockRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaddockRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaddockRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaddockRecord.
func (c *PaddockRecordClient) Update() *PaddockRecordUpdate {
	mutation := newPaddockRecordMutation(c.config, OpUpdate)
	return &PaddockRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaddockRecordClient) UpdateOne(_m *PaddockRecord) *PaddockRecordUpdateOne {
	mutation := newPaddockRecordMutation(c.config, OpUpdateOne, withPaddockRecord(_m))
	return &PaddockRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaddockRecordClient) UpdateOneID(id string) *PaddockRecordUpdateOne {
	mutation := newPaddockRecordMutation(c.config, OpUpdateOne, withPaddockRecordID(id))
	return &PaddockRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaddockRecord.
func (c *PaddockRecordClient) Delete() *PaddockRecordDelete {
	mutation := newPaddockRecordMutation(c.config, OpDelete)
	return &PaddockRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaddockRecordClient) DeleteOne(_m *PaddockRecord) *PaddockRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaddockRecordClient) DeleteOneID(id string) *PaddockRecordDeleteOne {
	builder := c.Delete().Where(paddockrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaddockRecordDeleteOne{builder}
}

// Query returns a query builder for PaddockRecord.
func (c *PaddockRecordClient) Query() *PaddockRecordQuery {
	return &PaddockRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaddockRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PaddockRecord entity by its id.
func (c *PaddockRecordClient) Get(ctx context.Context, id string) (*PaddockRecord, error) {
	return c.Query().Where(paddockrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaddockRecordClient) GetX(ctx context.Context, id string) *PaddockRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PaddockRecordClient) Hooks() []Hook {
	return c.hooks.PaddockRecord
}

// Interceptors returns the client interceptors.
func (c *PaddockRecordClient) Interceptors() []Interceptor {
	return c.inters.PaddockRecord
}

func (c *PaddockRecordClient) mutate(ctx context.Context, m *PaddockRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaddockRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaddockRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaddockRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaddockRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaddockRecord mutation op: %q", m.Op())
	}
}

// SensorClient is a client for the Sensor schema.
type SensorClient struct {
	config
}

// NewSensorClient returns a client for the Sensor from the given config.
func NewSensorClient(c config) *SensorClient {
	return &SensorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sensor.Hooks(f(g(h())))`.
func (c *SensorClient) Use(hooks ...Hook) {
	c.hooks.Sensor = append(c.hooks.Sensor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sensor.Intercept(f(g(h())))`.
func (c *SensorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sensor = append(c.inters.Sensor, interceptors...)
}

// Create returns a builder for creating a Sensor entity.
func (c *SensorClient) Create() *SensorCreate {
	mutation := newSensorMutation(c.config, OpCreate)
	return &SensorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sensor entities.
func (c *SensorClient) CreateBulk(builders ...*SensorCreate) *SensorCreateBulk {
	return &SensorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SensorClient) MapCreateBulk(slice any, setFunc func(*SensorCreate, int)) *SensorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SensorCreateBulk{err: fmt.Errorf("calling to SensorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SensorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SensorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sensor.
func (c *SensorClient) Update() *SensorUpdate {
	mutation := newSensorMutation(c.config, OpUpdate)
	return &SensorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SensorClient) UpdateOne(_m *Sensor) *SensorUpdateOne {
	mutation := newSensorMutation(c.config, OpUpdateOne, withSensor(_m))
	return &SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SensorClient) UpdateOneID(id string) *SensorUpdateOne {
	mutation := newSensorMutation(c.config, OpUpdateOne, withSensorID(id))
	return &SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sensor.
func (c *SensorClient) Delete() *SensorDelete {
	mutation := newSensorMutation(c.config, OpDelete)
	return &SensorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SensorClient) DeleteOne(_m *Sensor) *SensorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SensorClient) DeleteOneID(id string) *SensorDeleteOne {
	builder := c.Delete().Where(sensor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SensorDeleteOne{builder}
}

// Query returns a query builder for Sensor.
func (c *SensorClient) Query() *SensorQuery {
	return &SensorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSensor},
		inters: c.Interceptors(),
	}
}

// Get returns a Sensor entity by its id.
func (c *SensorClient) Get(ctx context.Context, id string) (*Sensor, error) {
	return c.Query().Where(sensor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SensorClient) GetX(ctx context.Context, id string) *Sensor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SensorClient) Hooks() []Hook {
	return c.hooks.Sensor
}

// Interceptors returns the client interceptors.
func (c *SensorClient) Interceptors() []Interceptor {
	return c.inters.Sensor
}

func (c *SensorClient) mutate(ctx context.Context, m *SensorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SensorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SensorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SensorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sensor mutation op: %q", m.Op())
	}
}

// StockRecordClient is a client for the StockRecord schema.
type StockRecordClient struct {
	config
}

// NewStockRecordClient returns a client for the StockRecord from the given config.
func NewStockRecordClient(c config) *StockRecordClient {
	return &StockRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stockrecord.Hooks(f(g(h())))`.
func (c *StockRecordClient) Use(hooks ...Hook) {
	c.hooks.StockRecord = append(c.hooks.StockRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stockrecord.Intercept(f(g(h())))`.
func (c *StockRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.StockRecord = append(c.inters.StockRecord, interceptors...)
}

// Create returns a builder for creating a StockRecord entity.
func (c *StockRecordClient) Create() *StockRecordCreate {
	mutation := newStockRecordMutation(c.config, OpCreate)
	return &StockRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StockRecord entities.
func (c *StockRecordClient) CreateBulk(builders ...*StockRecordCreate) *StockRecordCreateBulk {
	return &StockRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StockRecordClient) MapCreateBulk(slice any, setFunc func(*StockRecordCreate, int)) *StockRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StockRecordCreateBulk{err: fmt.Errorf("calling to StockRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StockRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StockRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StockRecord.
func (c *StockRecordClient) Update() *StockRecordUpdate {
	mutation := newStockRecordMutation(c.config, OpUpdate)
	return &StockRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StockRecordClient) UpdateOne(_m *StockRecord) *StockRecordUpdateOne {
	mutation := newStockRecordMutation(c.config, OpUpdateOne, withStockRecord(_m))
	return &StockRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StockRecordClient) UpdateOneID(id string) *StockRecordUpdateOne {
	mutation := newStockRecordMutation(c.config, OpUpdateOne, withStockRecordID(id))
	return &StockRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StockRecord.
func (c *StockRecordClient) Delete() *StockRecordDelete {
	mutation := newStockRecordMutation(c.config, OpDelete)
	return &StockRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StockRecordClient) DeleteOne(_m *StockRecord) *StockRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StockRecordClient) DeleteOneID(id string) *StockRecordDeleteOne {
	builder := c.Delete().Where(stockrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StockRecordDeleteOne{builder}
}

// Query returns a query builder for StockRecord.
func (c *StockRecordClient) Query() *StockRecordQuery {
	return &StockRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStockRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a StockRecord entity by its id.
func (c *StockRecordClient) Get(ctx context.Context, id string) (*StockRecord, error) {
	return c.Query().Where(stockrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StockRecordClient) GetX(ctx context.Context, id string) *StockRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StockRecordClient) Hooks() []Hook {
	return c.hooks.StockRecord
}

// Interceptors returns the client interceptors.
func (c *StockRecordClient) Interceptors() []Interceptor {
	return c.inters.StockRecord
}

func (c *StockRecordClient) mutate(ctx context.Context, m *StockRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StockRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StockRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StockRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StockRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StockRecord mutation op: %q", m.Op())
	}
}

// SyncReceiptClient is a client for the SyncReceipt schema.
type SyncReceiptClient struct {
	config
}

// NewSyncReceiptClient returns a client for the SyncReceipt from the given config.
func NewSyncReceiptClient(c config) *SyncReceiptClient {
	return &SyncReceiptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncreceipt.Hooks(f(g(h())))`.
func (c *SyncReceiptClient) Use(hooks ...Hook) {
	c.hooks.SyncReceipt = append(c.hooks.SyncReceipt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncreceipt.Intercept(f(g(h())))`.
func (c *SyncReceiptClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncReceipt = append(c.inters.SyncReceipt, interceptors...)
}

// Create returns a builder for creating a SyncReceipt entity.
func (c *SyncReceiptClient) Create() *SyncReceiptCreate {
	mutation := newSyncReceiptMutation(c.config, OpCreate)
	return &SyncReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncReceipt entities.
func (c *SyncReceiptClient) CreateBulk(builders ...*SyncReceiptCreate) *SyncReceiptCreateBulk {
	return &SyncReceiptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncReceiptClient) MapCreateBulk(slice any, setFunc func(*SyncReceiptCreate, int)) *SyncReceiptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncReceiptCreateBulk{err: fmt.Errorf("calling to SyncReceiptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncReceiptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncReceiptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncReceipt.
func (c *SyncReceiptClient) Update() *SyncReceiptUpdate {
	mutation := newSyncReceiptMutation(c.config, OpUpdate)
	return &SyncReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncReceiptClient) UpdateOne(_m *SyncReceipt) *SyncReceiptUpdateOne {
	mutation := newSyncReceiptMutation(c.config, OpUpdateOne, withSyncReceipt(_m))
	return &SyncReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncReceiptClient) UpdateOneID(id int) *SyncReceiptUpdateOne {
	mutation := newSyncReceiptMutation(c.config, OpUpdateOne, withSyncReceiptID(id))
	return &SyncReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncReceipt.
func (c *SyncReceiptClient) Delete() *SyncReceiptDelete {
	mutation := newSyncReceiptMutation(c.config, OpDelete)
	return &SyncReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncReceiptClient) DeleteOne(_m *SyncReceipt) *SyncReceiptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncReceiptClient) DeleteOneID(id int) *SyncReceiptDeleteOne {
	builder := c.Delete().Where(syncreceipt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncReceiptDeleteOne{builder}
}

// Query returns a query builder for SyncReceipt.
func (c *SyncReceiptClient) Query() *SyncReceiptQuery {
	return &SyncReceiptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncReceipt},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncReceipt entity by its id.
func (c *SyncReceiptClient) Get(ctx context.Context, id int) (*SyncReceipt, error) {
	return c.Query().Where(syncreceipt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncReceiptClient) GetX(ctx context.Context, id int) *SyncReceipt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncReceiptClient) Hooks() []Hook {
	return c.hooks.SyncReceipt
}

// Interceptors returns the client interceptors.
func (c *SyncReceiptClient) Interceptors() []Interceptor {
	return c.inters.SyncReceipt
}

func (c *SyncReceiptClient) mutate(ctx context.Context, m *SyncReceiptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncReceipt mutation op: %q", m.Op())
	}
}

// TombstoneClient is a client for the Tombstone schema.
type TombstoneClient struct {
	config
}

// NewTombstoneClient returns a client for the Tombstone from the given config.
func NewTombstoneClient(c config) *TombstoneClient {
	return &TombstoneClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tombstone.Hooks(f(g(h())))`.
func (c *TombstoneClient) Use(hooks ...Hook) {
	c.hooks.Tombstone = append(c.hooks.Tombstone, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tombstone.Intercept(f(g(h())))`.
func (c *TombstoneClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tombstone = append(c.inters.Tombstone, interceptors...)
}

// Create returns a builder for creating a Tombstone entity.
func (c *TombstoneClient) Create() *TombstoneCreate {
	mutation := newTombstoneMutation(c.config, OpCreate)
	return &TombstoneCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tombstone entities.
func (c *TombstoneClient) CreateBulk(builders ...*TombstoneCreate) *TombstoneCreateBulk {
	return &TombstoneCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TombstoneClient) MapCreateBulk(slice any, setFunc func(*TombstoneCreate, int)) *TombstoneCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TombstoneCreateBulk{err: fmt.Errorf("calling to TombstoneClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TombstoneCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TombstoneCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tombstone.
func (c *TombstoneClient) Update() *TombstoneUpdate {
	mutation := newTombstoneMutation(c.config, OpUpdate)
	return &TombstoneUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TombstoneClient) UpdateOne(_m *Tombstone) *TombstoneUpdateOne {
	mutation := newTombstoneMutation(c.config, OpUpdateOne, withTombstone(_m))
	return &TombstoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TombstoneClient) UpdateOneID(id int) *TombstoneUpdateOne {
	mutation := newTombstoneMutation(c.config, OpUpdateOne, withTombstoneID(id))
	return &TombstoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tombstone.
func (c *TombstoneClient) Delete() *TombstoneDelete {
	mutation := newTombstoneMutation(c.config, OpDelete)
	return &TombstoneDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TombstoneClient) DeleteOne(_m *Tombstone) *TombstoneDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TombstoneClient) DeleteOneID(id int) *TombstoneDeleteOne {
	builder := c.Delete().Where(tombstone.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TombstoneDeleteOne{builder}
}

// Query returns a query builder for Tombstone.
func (c *TombstoneClient) Query() *TombstoneQuery {
	return &TombstoneQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTombstone},
		inters: c.Interceptors(),
	}
}

// Get returns a Tombstone entity by its id.
func (c *TombstoneClient) Get(ctx context.Context, id int) (*Tombstone, error) {
	return c.Query().Where(tombstone.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TombstoneClient) GetX(ctx context.Context, id int) *Tombstone {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TombstoneClient) Hooks() []Hook {
	return c.hooks.Tombstone
}

// Interceptors returns the client interceptors.
func (c *TombstoneClient) Interceptors() []Interceptor {
	return c.inters.Tombstone
}

func (c *TombstoneClient) mutate(ctx context.Context, m *TombstoneMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TombstoneCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TombstoneUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TombstoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TombstoneDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tombstone mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChangeLogEntry, Farm, FarmSequence, Mob, Movement, Paddock, PaddockRecord,
		Sensor, StockRecord, SyncReceipt, Tombstone []ent.Hook
	}
	inters struct {
		ChangeLogEntry, Farm, FarmSequence, Mob, Movement, Paddock, PaddockRecord,
		Sensor, StockRecord, SyncReceipt, Tombstone []ent.Interceptor
	}
)
