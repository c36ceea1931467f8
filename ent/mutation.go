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
	"farmdeck.io/farmdeck/ent/changelogentry"
	"farmdeck.io/farmdeck/ent/farm"
	"farmdeck.io/farmdeck/ent/farmsequence"
	"farmdeck.io/farmdeck/ent/mob"
	"farmdeck.io/farmdeck/ent/movement"
	"farmdeck.io/farmdeck/ent/paddock"
	"farmdeck.io/farmdeck/ent/paddockrecord"
	"farmdeck.io/farmdeck/ent/predicate"
	"farmdeck.io/farmdeck/ent/sensor"
	"farmdeck.io/farmdeck/ent/stockrecord"
	"farmdeck.io/farmdeck/ent/syncreceipt"
	"farmdeck.io/farmdeck/ent/tombstone"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChangeLogEntry = "ChangeLogEntry"
	TypeFarm           = "Farm"
	TypeFarmSequence   = "FarmSequence"
	TypeMob            = "Mob"
	TypeMovement       = "Movement"
	TypePaddock        = "Paddock"
	TypePaddockRecord  = "PaddockRecord"
	TypeSensor         = "Sensor"
	TypeStockRecord    = "StockRecord"
	TypeSyncReceipt    = "SyncReceipt"
	TypeTombstone      = "Tombstone"
)

// ChangeLogEntryMutation represents an operation that mutates the ChangeLogEntry nodes in the graph.
type ChangeLogEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	farm_id       *string
	entity_type   *string
	entity_id     *string
	_op           *changelogentry.Op
	payload       *[]byte
	seq           *int64
	addseq        *int64
	recorded_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChangeLogEntry, error)
	predicates    []predicate.ChangeLogEntry
}

var _ ent.Mutation = (*ChangeLogEntryMutation)(nil)

// changelogentryOption allows management of the mutation configuration using functional options.
type changelogentryOption func(*ChangeLogEntryMutation)

// newChangeLogEntryMutation creates new mutation for the ChangeLogEntry entity.
func newChangeLogEntryMutation(c config, op Op, opts ...changelogentryOption) *ChangeLogEntryMutation {
	m := &ChangeLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeChangeLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChangeLogEntryID sets the ID field of the mutation.
func withChangeLogEntryID(id int) changelogentryOption {
	return func(m *ChangeLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ChangeLogEntry
		)
		m.oldValue = func(ctx context.Context) (*ChangeLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChangeLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChangeLogEntry sets the old ChangeLogEntry of the mutation.
func withChangeLogEntry(node *ChangeLogEntry) changelogentryOption {
	return func(m *ChangeLogEntryMutation) {
		m.oldValue = func(context.Context) (*ChangeLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChangeLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChangeLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChangeLogEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChangeLogEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChangeLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFarmID sets the "farm_id" field.
func (m *ChangeLogEntryMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *ChangeLogEntryMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the ChangeLogEntry entity.
// If the ChangeLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogEntryMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *ChangeLogEntryMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *ChangeLogEntryMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *ChangeLogEntryMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the ChangeLogEntry entity.
// If the ChangeLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogEntryMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *ChangeLogEntryMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *ChangeLogEntryMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *ChangeLogEntryMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the ChangeLogEntry entity.
// If the ChangeLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogEntryMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *ChangeLogEntryMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetOpField sets the "op" field.
func (m *ChangeLogEntryMutation) SetOpField(c changelogentry.Op) {
	m._op = &c
}

// GetOp returns the value of the "op" field in the mutation.
func (m *ChangeLogEntryMutation) GetOp() (r changelogentry.Op, exists bool) {
	v := m._op
	if v == nil {
		return
	}
	return *v, true
}

// OldOp returns the old "op" field's value of the ChangeLogEntry entity.
// If the ChangeLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogEntryMutation) OldOp(ctx context.Context) (v changelogentry.Op, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOp: %w", err)
	}
	return oldValue.Op, nil
}

// ResetOp resets all changes to the "op" field.
func (m *ChangeLogEntryMutation) ResetOp() {
	m._op = nil
}

// SetPayload sets the "payload" field.
func (m *ChangeLogEntryMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ChangeLogEntryMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ChangeLogEntry entity.
// If the ChangeLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogEntryMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ChangeLogEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetSeq sets the "seq" field.
func (m *ChangeLogEntryMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *ChangeLogEntryMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the ChangeLogEntry entity.
// If the ChangeLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogEntryMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *ChangeLogEntryMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *ChangeLogEntryMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *ChangeLogEntryMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *ChangeLogEntryMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *ChangeLogEntryMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the ChangeLogEntry entity.
// If the ChangeLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogEntryMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *ChangeLogEntryMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// Where appends a list predicates to the ChangeLogEntryMutation builder.
func (m *ChangeLogEntryMutation) Where(ps ...predicate.ChangeLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChangeLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChangeLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChangeLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChangeLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChangeLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChangeLogEntry).
func (m *ChangeLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChangeLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.farm_id != nil {
		fields = append(fields, changelogentry.FieldFarmID)
	}
	if m.entity_type != nil {
		fields = append(fields, changelogentry.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, changelogentry.FieldEntityID)
	}
	if m._op != nil {
		fields = append(fields, changelogentry.FieldOp)
	}
	if m.payload != nil {
		fields = append(fields, changelogentry.FieldPayload)
	}
	if m.seq != nil {
		fields = append(fields, changelogentry.FieldSeq)
	}
	if m.recorded_at != nil {
		fields = append(fields, changelogentry.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChangeLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case changelogentry.FieldFarmID:
		return m.FarmID()
	case changelogentry.FieldEntityType:
		return m.EntityType()
	case changelogentry.FieldEntityID:
		return m.EntityID()
	case changelogentry.FieldOp:
		return m.GetOp()
	case changelogentry.FieldPayload:
		return m.Payload()
	case changelogentry.FieldSeq:
		return m.Seq()
	case changelogentry.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChangeLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case changelogentry.FieldFarmID:
		return m.OldFarmID(ctx)
	case changelogentry.FieldEntityType:
		return m.OldEntityType(ctx)
	case changelogentry.FieldEntityID:
		return m.OldEntityID(ctx)
	case changelogentry.FieldOp:
		return m.OldOp(ctx)
	case changelogentry.FieldPayload:
		return m.OldPayload(ctx)
	case changelogentry.FieldSeq:
		return m.OldSeq(ctx)
	case changelogentry.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChangeLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case changelogentry.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case changelogentry.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case changelogentry.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case changelogentry.FieldOp:
		v, ok := value.(changelogentry.Op)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpField(v)
		return nil
	case changelogentry.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case changelogentry.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case changelogentry.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChangeLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChangeLogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, changelogentry.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChangeLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case changelogentry.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case changelogentry.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown ChangeLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChangeLogEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChangeLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChangeLogEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChangeLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChangeLogEntryMutation) ResetField(name string) error {
	switch name {
	case changelogentry.FieldFarmID:
		m.ResetFarmID()
		return nil
	case changelogentry.FieldEntityType:
		m.ResetEntityType()
		return nil
	case changelogentry.FieldEntityID:
		m.ResetEntityID()
		return nil
	case changelogentry.FieldOp:
		m.ResetOp()
		return nil
	case changelogentry.FieldPayload:
		m.ResetPayload()
		return nil
	case changelogentry.FieldSeq:
		m.ResetSeq()
		return nil
	case changelogentry.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown ChangeLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChangeLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChangeLogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChangeLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChangeLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChangeLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChangeLogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChangeLogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChangeLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChangeLogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChangeLogEntry edge %s", name)
}

// FarmMutation represents an operation that mutates the Farm nodes in the graph.
type FarmMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Farm, error)
	predicates    []predicate.Farm
}

var _ ent.Mutation = (*FarmMutation)(nil)

// farmOption allows management of the mutation configuration using functional options.
type farmOption func(*FarmMutation)

// newFarmMutation creates new mutation for the Farm entity.
func newFarmMutation(c config, op Op, opts ...farmOption) *FarmMutation {
	m := &FarmMutation{
		config:        c,
		op:            op,
		typ:           TypeFarm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFarmID sets the ID field of the mutation.
func withFarmID(id string) farmOption {
	return func(m *FarmMutation) {
		var (
			err   error
			once  sync.Once
			value *Farm
		)
		m.oldValue = func(ctx context.Context) (*Farm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Farm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFarm sets the old Farm of the mutation.
func withFarm(node *Farm) farmOption {
	return func(m *FarmMutation) {
		m.oldValue = func(context.Context) (*Farm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FarmMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FarmMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Farm entities.
func (m *FarmMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FarmMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FarmMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Farm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FarmMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FarmMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Farm entity.
// If the Farm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FarmMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FarmMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FarmMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Farm entity.
// If the Farm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FarmMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *FarmMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FarmMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Farm entity.
// If the Farm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FarmMutation) ResetName() {
	m.name = nil
}

// Where appends a list predicates to the FarmMutation builder.
func (m *FarmMutation) Where(ps ...predicate.Farm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FarmMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FarmMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Farm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FarmMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FarmMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Farm).
func (m *FarmMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FarmMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, farm.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, farm.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, farm.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FarmMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case farm.FieldCreatedAt:
		return m.CreatedAt()
	case farm.FieldUpdatedAt:
		return m.UpdatedAt()
	case farm.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FarmMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case farm.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case farm.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case farm.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Farm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmMutation) SetField(name string, value ent.Value) error {
	switch name {
	case farm.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case farm.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case farm.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Farm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FarmMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FarmMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Farm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FarmMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FarmMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FarmMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Farm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FarmMutation) ResetField(name string) error {
	switch name {
	case farm.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case farm.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case farm.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Farm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FarmMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FarmMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FarmMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FarmMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FarmMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FarmMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FarmMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Farm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FarmMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Farm edge %s", name)
}

// FarmSequenceMutation represents an operation that mutates the FarmSequence nodes in the graph.
type FarmSequenceMutation struct {
	config
	op            Op
	typ           string
	id            *int
	farm_id       *string
	value         *int64
	addvalue      *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FarmSequence, error)
	predicates    []predicate.FarmSequence
}

var _ ent.Mutation = (*FarmSequenceMutation)(nil)

// farmsequenceOption allows management of the mutation configuration using functional options.
type farmsequenceOption func(*FarmSequenceMutation)

// newFarmSequenceMutation creates new mutation for the FarmSequence entity.
func newFarmSequenceMutation(c config, op Op, opts ...farmsequenceOption) *FarmSequenceMutation {
	m := &FarmSequenceMutation{
		config:        c,
		op:            op,
		typ:           TypeFarmSequence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFarmSequenceID sets the ID field of the mutation.
func withFarmSequenceID(id int) farmsequenceOption {
	return func(m *FarmSequenceMutation) {
		var (
			err   error
			once  sync.Once
			value *FarmSequence
		)
		m.oldValue = func(ctx context.Context) (*FarmSequence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FarmSequence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFarmSequence sets the old FarmSequence of the mutation.
func withFarmSequence(node *FarmSequence) farmsequenceOption {
	return func(m *FarmSequenceMutation) {
		m.oldValue = func(context.Context) (*FarmSequence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FarmSequenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FarmSequenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FarmSequenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FarmSequenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FarmSequence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFarmID sets the "farm_id" field.
func (m *FarmSequenceMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *FarmSequenceMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the FarmSequence entity.
// If the FarmSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmSequenceMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *FarmSequenceMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetValue sets the "value" field.
func (m *FarmSequenceMutation) SetValue(i int64) {
	m.value = &i
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *FarmSequenceMutation) Value() (r int64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the FarmSequence entity.
// If the FarmSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmSequenceMutation) OldValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds i to the "value" field.
func (m *FarmSequenceMutation) AddValue(i int64) {
	if m.addvalue != nil {
		*m.addvalue += i
	} else {
		m.addvalue = &i
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *FarmSequenceMutation) AddedValue() (r int64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *FarmSequenceMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// Where appends a list predicates to the FarmSequenceMutation builder.
func (m *FarmSequenceMutation) Where(ps ...predicate.FarmSequence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FarmSequenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FarmSequenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FarmSequence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FarmSequenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FarmSequenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FarmSequence).
func (m *FarmSequenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FarmSequenceMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.farm_id != nil {
		fields = append(fields, farmsequence.FieldFarmID)
	}
	if m.value != nil {
		fields = append(fields, farmsequence.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FarmSequenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case farmsequence.FieldFarmID:
		return m.FarmID()
	case farmsequence.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FarmSequenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case farmsequence.FieldFarmID:
		return m.OldFarmID(ctx)
	case farmsequence.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown FarmSequence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmSequenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case farmsequence.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case farmsequence.FieldValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown FarmSequence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FarmSequenceMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, farmsequence.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FarmSequenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case farmsequence.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmSequenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case farmsequence.FieldValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown FarmSequence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FarmSequenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FarmSequenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FarmSequenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FarmSequence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FarmSequenceMutation) ResetField(name string) error {
	switch name {
	case farmsequence.FieldFarmID:
		m.ResetFarmID()
		return nil
	case farmsequence.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown FarmSequence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FarmSequenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FarmSequenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FarmSequenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FarmSequenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FarmSequenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FarmSequenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FarmSequenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FarmSequence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FarmSequenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FarmSequence edge %s", name)
}

// MobMutation represents an operation that mutates the Mob nodes in the graph.
type MobMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	farm_id       *string
	deleted_at    *time.Time
	name          *string
	count         *int
	addcount      *int
	avg_weight    *float64
	addavg_weight *float64
	paddock_id    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Mob, error)
	predicates    []predicate.Mob
}

var _ ent.Mutation = (*MobMutation)(nil)

// mobOption allows management of the mutation configuration using functional options.
type mobOption func(*MobMutation)

// newMobMutation creates new mutation for the Mob entity.
func newMobMutation(c config, op Op, opts ...mobOption) *MobMutation {
	m := &MobMutation{
		config:        c,
		op:            op,
		typ:           TypeMob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMobID sets the ID field of the mutation.
func withMobID(id string) mobOption {
	return func(m *MobMutation) {
		var (
			err   error
			once  sync.Once
			value *Mob
		)
		m.oldValue = func(ctx context.Context) (*Mob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMob sets the old Mob of the mutation.
func withMob(node *Mob) mobOption {
	return func(m *MobMutation) {
		m.oldValue = func(context.Context) (*Mob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mob entities.
func (m *MobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Mob entity.
// If the Mob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Mob entity.
// If the Mob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFarmID sets the "farm_id" field.
func (m *MobMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *MobMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the Mob entity.
// If the Mob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MobMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *MobMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MobMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MobMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Mob entity.
// If the Mob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MobMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MobMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[mob.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MobMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[mob.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MobMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, mob.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *MobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Mob entity.
// If the Mob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MobMutation) ResetName() {
	m.name = nil
}

// SetCount sets the "count" field.
func (m *MobMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *MobMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the Mob entity.
// If the Mob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MobMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *MobMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *MobMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *MobMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetAvgWeight sets the "avg_weight" field.
func (m *MobMutation) SetAvgWeight(f float64) {
	m.avg_weight = &f
	m.addavg_weight = nil
}

// AvgWeight returns the value of the "avg_weight" field in the mutation.
func (m *MobMutation) AvgWeight() (r float64, exists bool) {
	v := m.avg_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgWeight returns the old "avg_weight" field's value of the Mob entity.
// If the Mob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MobMutation) OldAvgWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgWeight: %w", err)
	}
	return oldValue.AvgWeight, nil
}

// AddAvgWeight adds f to the "avg_weight" field.
func (m *MobMutation) AddAvgWeight(f float64) {
	if m.addavg_weight != nil {
		*m.addavg_weight += f
	} else {
		m.addavg_weight = &f
	}
}

// AddedAvgWeight returns the value that was added to the "avg_weight" field in this mutation.
func (m *MobMutation) AddedAvgWeight() (r float64, exists bool) {
	v := m.addavg_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgWeight resets all changes to the "avg_weight" field.
func (m *MobMutation) ResetAvgWeight() {
	m.avg_weight = nil
	m.addavg_weight = nil
}

// SetPaddockID sets the "paddock_id" field.
func (m *MobMutation) SetPaddockID(s string) {
	m.paddock_id = &s
}

// PaddockID returns the value of the "paddock_id" field in the mutation.
func (m *MobMutation) PaddockID() (r string, exists bool) {
	v := m.paddock_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaddockID returns the old "paddock_id" field's value of the Mob entity.
// If the Mob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MobMutation) OldPaddockID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaddockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaddockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaddockID: %w", err)
	}
	return oldValue.PaddockID, nil
}

// ClearPaddockID clears the value of the "paddock_id" field.
func (m *MobMutation) ClearPaddockID() {
	m.paddock_id = nil
	m.clearedFields[mob.FieldPaddockID] = struct{}{}
}

// PaddockIDCleared returns if the "paddock_id" field was cleared in this mutation.
func (m *MobMutation) PaddockIDCleared() bool {
	_, ok := m.clearedFields[mob.FieldPaddockID]
	return ok
}

// ResetPaddockID resets all changes to the "paddock_id" field.
func (m *MobMutation) ResetPaddockID() {
	m.paddock_id = nil
	delete(m.clearedFields, mob.FieldPaddockID)
}

// Where appends a list predicates to the MobMutation builder.
func (m *MobMutation) Where(ps ...predicate.Mob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mob).
func (m *MobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, mob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mob.FieldUpdatedAt)
	}
	if m.farm_id != nil {
		fields = append(fields, mob.FieldFarmID)
	}
	if m.deleted_at != nil {
		fields = append(fields, mob.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, mob.FieldName)
	}
	if m.count != nil {
		fields = append(fields, mob.FieldCount)
	}
	if m.avg_weight != nil {
		fields = append(fields, mob.FieldAvgWeight)
	}
	if m.paddock_id != nil {
		fields = append(fields, mob.FieldPaddockID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mob.FieldCreatedAt:
		return m.CreatedAt()
	case mob.FieldUpdatedAt:
		return m.UpdatedAt()
	case mob.FieldFarmID:
		return m.FarmID()
	case mob.FieldDeletedAt:
		return m.DeletedAt()
	case mob.FieldName:
		return m.Name()
	case mob.FieldCount:
		return m.Count()
	case mob.FieldAvgWeight:
		return m.AvgWeight()
	case mob.FieldPaddockID:
		return m.PaddockID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case mob.FieldFarmID:
		return m.OldFarmID(ctx)
	case mob.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case mob.FieldName:
		return m.OldName(ctx)
	case mob.FieldCount:
		return m.OldCount(ctx)
	case mob.FieldAvgWeight:
		return m.OldAvgWeight(ctx)
	case mob.FieldPaddockID:
		return m.OldPaddockID(ctx)
	}
	return nil, fmt.Errorf("unknown Mob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case mob.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case mob.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case mob.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case mob.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case mob.FieldAvgWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgWeight(v)
		return nil
	case mob.FieldPaddockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaddockID(v)
		return nil
	}
	return fmt.Errorf("unknown Mob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MobMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, mob.FieldCount)
	}
	if m.addavg_weight != nil {
		fields = append(fields, mob.FieldAvgWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mob.FieldCount:
		return m.AddedCount()
	case mob.FieldAvgWeight:
		return m.AddedAvgWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mob.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	case mob.FieldAvgWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgWeight(v)
		return nil
	}
	return fmt.Errorf("unknown Mob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mob.FieldDeletedAt) {
		fields = append(fields, mob.FieldDeletedAt)
	}
	if m.FieldCleared(mob.FieldPaddockID) {
		fields = append(fields, mob.FieldPaddockID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MobMutation) ClearField(name string) error {
	switch name {
	case mob.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case mob.FieldPaddockID:
		m.ClearPaddockID()
		return nil
	}
	return fmt.Errorf("unknown Mob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MobMutation) ResetField(name string) error {
	switch name {
	case mob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case mob.FieldFarmID:
		m.ResetFarmID()
		return nil
	case mob.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case mob.FieldName:
		m.ResetName()
		return nil
	case mob.FieldCount:
		m.ResetCount()
		return nil
	case mob.FieldAvgWeight:
		m.ResetAvgWeight()
		return nil
	case mob.FieldPaddockID:
		m.ResetPaddockID()
		return nil
	}
	return fmt.Errorf("unknown Mob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Mob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Mob edge %s", name)
}

// MovementMutation represents an operation that mutates the Movement nodes in the graph.
type MovementMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	farm_id         *string
	deleted_at      *time.Time
	mob_id          *string
	from_paddock_id *string
	to_paddock_id   *string
	occurred_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Movement, error)
	predicates      []predicate.Movement
}

var _ ent.Mutation = (*MovementMutation)(nil)

// movementOption allows management of the mutation configuration using functional options.
type movementOption func(*MovementMutation)

// newMovementMutation creates new mutation for the Movement entity.
func newMovementMutation(c config, op Op, opts ...movementOption) *MovementMutation {
	m := &MovementMutation{
		config:        c,
		op:            op,
		typ:           TypeMovement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMovementID sets the ID field of the mutation.
func withMovementID(id string) movementOption {
	return func(m *MovementMutation) {
		var (
			err   error
			once  sync.Once
			value *Movement
		)
		m.oldValue = func(ctx context.Context) (*Movement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Movement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMovement sets the old Movement of the mutation.
func withMovement(node *Movement) movementOption {
	return func(m *MovementMutation) {
		m.oldValue = func(context.Context) (*Movement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MovementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MovementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Movement entities.
func (m *MovementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MovementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MovementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Movement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MovementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MovementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Movement entity.
// If the Movement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MovementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MovementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MovementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MovementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Movement entity.
// If the Movement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MovementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MovementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFarmID sets the "farm_id" field.
func (m *MovementMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *MovementMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the Movement entity.
// If the Movement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MovementMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *MovementMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MovementMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MovementMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Movement entity.
// If the Movement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MovementMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MovementMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[movement.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MovementMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[movement.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MovementMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, movement.FieldDeletedAt)
}

// SetMobID sets the "mob_id" field.
func (m *MovementMutation) SetMobID(s string) {
	m.mob_id = &s
}

// MobID returns the value of the "mob_id" field in the mutation.
func (m *MovementMutation) MobID() (r string, exists bool) {
	v := m.mob_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMobID returns the old "mob_id" field's value of the Movement entity.
// If the Movement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MovementMutation) OldMobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMobID: %w", err)
	}
	return oldValue.MobID, nil
}

// ResetMobID resets all changes to the "mob_id" field.
func (m *MovementMutation) ResetMobID() {
	m.mob_id = nil
}

// SetFromPaddockID sets the "from_paddock_id" field.
func (m *MovementMutation) SetFromPaddockID(s string) {
	m.from_paddock_id = &s
}

// FromPaddockID returns the value of the "from_paddock_id" field in the mutation.
func (m *MovementMutation) FromPaddockID() (r string, exists bool) {
	v := m.from_paddock_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromPaddockID returns the old "from_paddock_id" field's value of the Movement entity.
// If the Movement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MovementMutation) OldFromPaddockID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromPaddockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromPaddockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromPaddockID: %w", err)
	}
	return oldValue.FromPaddockID, nil
}

// ClearFromPaddockID clears the value of the "from_paddock_id" field.
func (m *MovementMutation) ClearFromPaddockID() {
	m.from_paddock_id = nil
	m.clearedFields[movement.FieldFromPaddockID] = struct{}{}
}

// FromPaddockIDCleared returns if the "from_paddock_id" field was cleared in this mutation.
func (m *MovementMutation) FromPaddockIDCleared() bool {
	_, ok := m.clearedFields[movement.FieldFromPaddockID]
	return ok
}

// ResetFromPaddockID resets all changes to the "from_paddock_id" field.
func (m *MovementMutation) ResetFromPaddockID() {
	m.from_paddock_id = nil
	delete(m.clearedFields, movement.FieldFromPaddockID)
}

// SetToPaddockID sets the "to_paddock_id" field.
func (m *MovementMutation) SetToPaddockID(s string) {
	m.to_paddock_id = &s
}

// ToPaddockID returns the value of the "to_paddock_id" field in the mutation.
func (m *MovementMutation) ToPaddockID() (r string, exists bool) {
	v := m.to_paddock_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToPaddockID returns the old "to_paddock_id" field's value of the Movement entity.
// If the Movement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MovementMutation) OldToPaddockID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToPaddockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToPaddockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToPaddockID: %w", err)
	}
	return oldValue.ToPaddockID, nil
}

// ResetToPaddockID resets all changes to the "to_paddock_id" field.
func (m *MovementMutation) ResetToPaddockID() {
	m.to_paddock_id = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *MovementMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *MovementMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Movement entity.
// If the Movement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MovementMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *MovementMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// Where appends a list predicates to the MovementMutation builder.
func (m *MovementMutation) Where(ps ...predicate.Movement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MovementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MovementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Movement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MovementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MovementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Movement).
func (m *MovementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MovementMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, movement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, movement.FieldUpdatedAt)
	}
	if m.farm_id != nil {
		fields = append(fields, movement.FieldFarmID)
	}
	if m.deleted_at != nil {
		fields = append(fields, movement.FieldDeletedAt)
	}
	if m.mob_id != nil {
		fields = append(fields, movement.FieldMobID)
	}
	if m.from_paddock_id != nil {
		fields = append(fields, movement.FieldFromPaddockID)
	}
	if m.to_paddock_id != nil {
		fields = append(fields, movement.FieldToPaddockID)
	}
	if m.occurred_at != nil {
		fields = append(fields, movement.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MovementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case movement.FieldCreatedAt:
		return m.CreatedAt()
	case movement.FieldUpdatedAt:
		return m.UpdatedAt()
	case movement.FieldFarmID:
		return m.FarmID()
	case movement.FieldDeletedAt:
		return m.DeletedAt()
	case movement.FieldMobID:
		return m.MobID()
	case movement.FieldFromPaddockID:
		return m.FromPaddockID()
	case movement.FieldToPaddockID:
		return m.ToPaddockID()
	case movement.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MovementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case movement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case movement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case movement.FieldFarmID:
		return m.OldFarmID(ctx)
	case movement.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case movement.FieldMobID:
		return m.OldMobID(ctx)
	case movement.FieldFromPaddockID:
		return m.OldFromPaddockID(ctx)
	case movement.FieldToPaddockID:
		return m.OldToPaddockID(ctx)
	case movement.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Movement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MovementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case movement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case movement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case movement.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case movement.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case movement.FieldMobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMobID(v)
		return nil
	case movement.FieldFromPaddockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromPaddockID(v)
		return nil
	case movement.FieldToPaddockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToPaddockID(v)
		return nil
	case movement.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Movement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MovementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MovementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MovementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Movement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MovementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(movement.FieldDeletedAt) {
		fields = append(fields, movement.FieldDeletedAt)
	}
	if m.FieldCleared(movement.FieldFromPaddockID) {
		fields = append(fields, movement.FieldFromPaddockID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MovementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MovementMutation) ClearField(name string) error {
	switch name {
	case movement.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case movement.FieldFromPaddockID:
		m.ClearFromPaddockID()
		return nil
	}
	return fmt.Errorf("unknown Movement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MovementMutation) ResetField(name string) error {
	switch name {
	case movement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case movement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case movement.FieldFarmID:
		m.ResetFarmID()
		return nil
	case movement.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case movement.FieldMobID:
		m.ResetMobID()
		return nil
	case movement.FieldFromPaddockID:
		m.ResetFromPaddockID()
		return nil
	case movement.FieldToPaddockID:
		m.ResetToPaddockID()
		return nil
	case movement.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown Movement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MovementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MovementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MovementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MovementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MovementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MovementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MovementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Movement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MovementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Movement edge %s", name)
}

// PaddockMutation represents an operation that mutates the Paddock nodes in the graph.
type PaddockMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	farm_id         *string
	deleted_at      *time.Time
	name            *string
	area_ha         *float64
	addarea_ha      *float64
	polygon_geojson *string
	crop_type       *string
	crop_color      *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Paddock, error)
	predicates      []predicate.Paddock
}

var _ ent.Mutation = (*PaddockMutation)(nil)

// paddockOption allows management of the mutation configuration using functional options.
type paddockOption func(*PaddockMutation)

// newPaddockMutation creates new mutation for the Paddock entity.
func newPaddockMutation(c config, op Op, opts ...paddockOption) *PaddockMutation {
	m := &PaddockMutation{
		config:        c,
		op:            op,
		typ:           TypePaddock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaddockID sets the ID field of the mutation.
func withPaddockID(id string) paddockOption {
	return func(m *PaddockMutation) {
		var (
			err   error
			once  sync.Once
			value *Paddock
		)
		m.oldValue = func(ctx context.Context) (*Paddock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Paddock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaddock sets the old Paddock of the mutation.
func withPaddock(node *Paddock) paddockOption {
	return func(m *PaddockMutation) {
		m.oldValue = func(context.Context) (*Paddock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaddockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaddockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Paddock entities.
func (m *PaddockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaddockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaddockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Paddock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PaddockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaddockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PaddockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaddockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaddockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PaddockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFarmID sets the "farm_id" field.
func (m *PaddockMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *PaddockMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *PaddockMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PaddockMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PaddockMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PaddockMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[paddock.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PaddockMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[paddock.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PaddockMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, paddock.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *PaddockMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PaddockMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PaddockMutation) ResetName() {
	m.name = nil
}

// SetAreaHa sets the "area_ha" field.
func (m *PaddockMutation) SetAreaHa(f float64) {
	m.area_ha = &f
	m.addarea_ha = nil
}

// AreaHa returns the value of the "area_ha" field in the mutation.
func (m *PaddockMutation) AreaHa() (r float64, exists bool) {
	v := m.area_ha
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaHa returns the old "area_ha" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldAreaHa(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaHa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaHa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaHa: %w", err)
	}
	return oldValue.AreaHa, nil
}

// AddAreaHa adds f to the "area_ha" field.
func (m *PaddockMutation) AddAreaHa(f float64) {
	if m.addarea_ha != nil {
		*m.addarea_ha += f
	} else {
		m.addarea_ha = &f
	}
}

// AddedAreaHa returns the value that was added to the "area_ha" field in this mutation.
func (m *PaddockMutation) AddedAreaHa() (r float64, exists bool) {
	v := m.addarea_ha
	if v == nil {
		return
	}
	return *v, true
}

// ResetAreaHa resets all changes to the "area_ha" field.
func (m *PaddockMutation) ResetAreaHa() {
	m.area_ha = nil
	m.addarea_ha = nil
}

// SetPolygonGeojson sets the "polygon_geojson" field.
func (m *PaddockMutation) SetPolygonGeojson(s string) {
	m.polygon_geojson = &s
}

// PolygonGeojson returns the value of the "polygon_geojson" field in the mutation.
func (m *PaddockMutation) PolygonGeojson() (r string, exists bool) {
	v := m.polygon_geojson
	if v == nil {
		return
	}
	return *v, true
}

// OldPolygonGeojson returns the old "polygon_geojson" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldPolygonGeojson(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolygonGeojson is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolygonGeojson requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolygonGeojson: %w", err)
	}
	return oldValue.PolygonGeojson, nil
}

// ResetPolygonGeojson resets all changes to the "polygon_geojson" field.
func (m *PaddockMutation) ResetPolygonGeojson() {
	m.polygon_geojson = nil
}

// SetCropType sets the "crop_type" field.
func (m *PaddockMutation) SetCropType(s string) {
	m.crop_type = &s
}

// CropType returns the value of the "crop_type" field in the mutation.
func (m *PaddockMutation) CropType() (r string, exists bool) {
	v := m.crop_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCropType returns the old "crop_type" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldCropType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCropType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCropType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCropType: %w", err)
	}
	return oldValue.CropType, nil
}

// ClearCropType clears the value of the "crop_type" field.
func (m *PaddockMutation) ClearCropType() {
	m.crop_type = nil
	m.clearedFields[paddock.FieldCropType] = struct{}{}
}

// CropTypeCleared returns if the "crop_type" field was cleared in this mutation.
func (m *PaddockMutation) CropTypeCleared() bool {
	_, ok := m.clearedFields[paddock.FieldCropType]
	return ok
}

// ResetCropType resets all changes to the "crop_type" field.
func (m *PaddockMutation) ResetCropType() {
	m.crop_type = nil
	delete(m.clearedFields, paddock.FieldCropType)
}

// SetCropColor sets the "crop_color" field.
func (m *PaddockMutation) SetCropColor(s string) {
	m.crop_color = &s
}

// CropColor returns the value of the "crop_color" field in the mutation.
func (m *PaddockMutation) CropColor() (r string, exists bool) {
	v := m.crop_color
	if v == nil {
		return
	}
	return *v, true
}

// OldCropColor returns the old "crop_color" field's value of the Paddock entity.
// If the Paddock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockMutation) OldCropColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCropColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCropColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCropColor: %w", err)
	}
	return oldValue.CropColor, nil
}

// ClearCropColor clears the value of the "crop_color" field.
func (m *PaddockMutation) ClearCropColor() {
	m.crop_color = nil
	m.clearedFields[paddock.FieldCropColor] = struct{}{}
}

// CropColorCleared returns if the "crop_color" field was cleared in this mutation.
func (m *PaddockMutation) CropColorCleared() bool {
	_, ok := m.clearedFields[paddock.FieldCropColor]
	return ok
}

// ResetCropColor resets all changes to the "crop_color" field.
func (m *PaddockMutation) ResetCropColor() {
	m.crop_color = nil
	delete(m.clearedFields, paddock.FieldCropColor)
}

// Where appends a list predicates to the PaddockMutation builder.
func (m *PaddockMutation) Where(ps ...predicate.Paddock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaddockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaddockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Paddock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaddockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaddockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Paddock).
func (m *PaddockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaddockMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, paddock.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paddock.FieldUpdatedAt)
	}
	if m.farm_id != nil {
		fields = append(fields, paddock.FieldFarmID)
	}
	if m.deleted_at != nil {
		fields = append(fields, paddock.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, paddock.FieldName)
	}
	if m.area_ha != nil {
		fields = append(fields, paddock.FieldAreaHa)
	}
	if m.polygon_geojson != nil {
		fields = append(fields, paddock.FieldPolygonGeojson)
	}
	if m.crop_type != nil {
		fields = append(fields, paddock.FieldCropType)
	}
	if m.crop_color != nil {
		fields = append(fields, paddock.FieldCropColor)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaddockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paddock.FieldCreatedAt:
		return m.CreatedAt()
	case paddock.FieldUpdatedAt:
		return m.UpdatedAt()
	case paddock.FieldFarmID:
		return m.FarmID()
	case paddock.FieldDeletedAt:
		return m.DeletedAt()
	case paddock.FieldName:
		return m.Name()
	case paddock.FieldAreaHa:
		return m.AreaHa()
	case paddock.FieldPolygonGeojson:
		return m.PolygonGeojson()
	case paddock.FieldCropType:
		return m.CropType()
	case paddock.FieldCropColor:
		return m.CropColor()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaddockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paddock.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paddock.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case paddock.FieldFarmID:
		return m.OldFarmID(ctx)
	case paddock.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case paddock.FieldName:
		return m.OldName(ctx)
	case paddock.FieldAreaHa:
		return m.OldAreaHa(ctx)
	case paddock.FieldPolygonGeojson:
		return m.OldPolygonGeojson(ctx)
	case paddock.FieldCropType:
		return m.OldCropType(ctx)
	case paddock.FieldCropColor:
		return m.OldCropColor(ctx)
	}
	return nil, fmt.Errorf("unknown Paddock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaddockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paddock.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paddock.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case paddock.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case paddock.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case paddock.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case paddock.FieldAreaHa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaHa(v)
		return nil
	case paddock.FieldPolygonGeojson:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolygonGeojson(v)
		return nil
	case paddock.FieldCropType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCropType(v)
		return nil
	case paddock.FieldCropColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCropColor(v)
		return nil
	}
	return fmt.Errorf("unknown Paddock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaddockMutation) AddedFields() []string {
	var fields []string
	if m.addarea_ha != nil {
		fields = append(fields, paddock.FieldAreaHa)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaddockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paddock.FieldAreaHa:
		return m.AddedAreaHa()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaddockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paddock.FieldAreaHa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAreaHa(v)
		return nil
	}
	return fmt.Errorf("unknown Paddock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaddockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paddock.FieldDeletedAt) {
		fields = append(fields, paddock.FieldDeletedAt)
	}
	if m.FieldCleared(paddock.FieldCropType) {
		fields = append(fields, paddock.FieldCropType)
	}
	if m.FieldCleared(paddock.FieldCropColor) {
		fields = append(fields, paddock.FieldCropColor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaddockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaddockMutation) ClearField(name string) error {
	switch name {
	case paddock.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case paddock.FieldCropType:
		m.ClearCropType()
		return nil
	case paddock.FieldCropColor:
		m.ClearCropColor()
		return nil
	}
	return fmt.Errorf("unknown Paddock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaddockMutation) ResetField(name string) error {
	switch name {
	case paddock.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paddock.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case paddock.FieldFarmID:
		m.ResetFarmID()
		return nil
	case paddock.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case paddock.FieldName:
		m.ResetName()
		return nil
	case paddock.FieldAreaHa:
		m.ResetAreaHa()
		return nil
	case paddock.FieldPolygonGeojson:
		m.ResetPolygonGeojson()
		return nil
	case paddock.FieldCropType:
		m.ResetCropType()
		return nil
	case paddock.FieldCropColor:
		m.ResetCropColor()
		return nil
	}
	return fmt.Errorf("unknown Paddock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaddockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaddockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaddockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaddockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaddockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaddockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaddockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Paddock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaddockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Paddock edge %s", name)
}

// PaddockRecordMutation represents an operation that mutates the PaddockRecord nodes in the graph.
type PaddockRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	farm_id       *string
	deleted_at    *time.Time
	paddock_id    *string
	kind          *paddockrecord.Kind
	date          *time.Time
	product       *string
	rate          *string
	amount        *string
	notes         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PaddockRecord, error)
	predicates    []predicate.PaddockRecord
}

var _ ent.Mutation = (*PaddockRecordMutation)(nil)

// paddockrecordOption allows management of the mutation configuration using functional options.
type paddockrecordOption func(*PaddockRecordMutation)

// newPaddockRecordMutation creates new mutation for the PaddockRecord entity.
func newPaddockRecordMutation(c config, op Op, opts ...paddockrecordOption) *PaddockRecordMutation {
	m := &PaddockRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePaddockRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaddockRecordID sets the ID field of the mutation.
func withPaddockRecordID(id string) paddockrecordOption {
	return func(m *PaddockRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PaddockRecord
		)
		m.oldValue = func(ctx context.Context) (*PaddockRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaddockRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaddockRecord sets the old PaddockRecord of the mutation.
func withPaddockRecord(node *PaddockRecord) paddockrecordOption {
	return func(m *PaddockRecordMutation) {
		m.oldValue = func(context.Context) (*PaddockRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaddockRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaddockRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaddockRecord entities.
func (m *PaddockRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaddockRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaddockRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaddockRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PaddockRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaddockRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PaddockRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaddockRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaddockRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PaddockRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFarmID sets the "farm_id" field.
func (m *PaddockRecordMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *PaddockRecordMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *PaddockRecordMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PaddockRecordMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PaddockRecordMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PaddockRecordMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[paddockrecord.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PaddockRecordMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[paddockrecord.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PaddockRecordMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, paddockrecord.FieldDeletedAt)
}

// SetPaddockID sets the "paddock_id" field.
func (m *PaddockRecordMutation) SetPaddockID(s string) {
	m.paddock_id = &s
}

// PaddockID returns the value of the "paddock_id" field in the mutation.
func (m *PaddockRecordMutation) PaddockID() (r string, exists bool) {
	v := m.paddock_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaddockID returns the old "paddock_id" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldPaddockID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaddockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaddockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaddockID: %w", err)
	}
	return oldValue.PaddockID, nil
}

// ResetPaddockID resets all changes to the "paddock_id" field.
func (m *PaddockRecordMutation) ResetPaddockID() {
	m.paddock_id = nil
}

// SetKind sets the "kind" field.
func (m *PaddockRecordMutation) SetKind(pa paddockrecord.Kind) {
	m.kind = &pa
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PaddockRecordMutation) Kind() (r paddockrecord.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldKind(ctx context.Context) (v paddockrecord.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PaddockRecordMutation) ResetKind() {
	m.kind = nil
}

// SetDate sets the "date" field.
func (m *PaddockRecordMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *PaddockRecordMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *PaddockRecordMutation) ResetDate() {
	m.date = nil
}

// SetProduct sets the "product" field.
func (m *PaddockRecordMutation) SetProduct(s string) {
	m.product = &s
}

// Product returns the value of the "product" field in the mutation.
func (m *PaddockRecordMutation) Product() (r string, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProduct returns the old "product" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldProduct(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProduct: %w", err)
	}
	return oldValue.Product, nil
}

// ClearProduct clears the value of the "product" field.
func (m *PaddockRecordMutation) ClearProduct() {
	m.product = nil
	m.clearedFields[paddockrecord.FieldProduct] = struct{}{}
}

// ProductCleared returns if the "product" field was cleared in this mutation.
func (m *PaddockRecordMutation) ProductCleared() bool {
	_, ok := m.clearedFields[paddockrecord.FieldProduct]
	return ok
}

// ResetProduct resets all changes to the "product" field.
func (m *PaddockRecordMutation) ResetProduct() {
	m.product = nil
	delete(m.clearedFields, paddockrecord.FieldProduct)
}

// SetRate sets the "rate" field.
func (m *PaddockRecordMutation) SetRate(s string) {
	m.rate = &s
}

// Rate returns the value of the "rate" field in the mutation.
func (m *PaddockRecordMutation) Rate() (r string, exists bool) {
	v := m.rate
	if v == nil {
		return
	}
	return *v, true
}

// OldRate returns the old "rate" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldRate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRate: %w", err)
	}
	return oldValue.Rate, nil
}

// ClearRate clears the value of the "rate" field.
func (m *PaddockRecordMutation) ClearRate() {
	m.rate = nil
	m.clearedFields[paddockrecord.FieldRate] = struct{}{}
}

// RateCleared returns if the "rate" field was cleared in this mutation.
func (m *PaddockRecordMutation) RateCleared() bool {
	_, ok := m.clearedFields[paddockrecord.FieldRate]
	return ok
}

// ResetRate resets all changes to the "rate" field.
func (m *PaddockRecordMutation) ResetRate() {
	m.rate = nil
	delete(m.clearedFields, paddockrecord.FieldRate)
}

// SetAmount sets the "amount" field.
func (m *PaddockRecordMutation) SetAmount(s string) {
	m.amount = &s
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PaddockRecordMutation) Amount() (r string, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ClearAmount clears the value of the "amount" field.
func (m *PaddockRecordMutation) ClearAmount() {
	m.amount = nil
	m.clearedFields[paddockrecord.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *PaddockRecordMutation) AmountCleared() bool {
	_, ok := m.clearedFields[paddockrecord.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *PaddockRecordMutation) ResetAmount() {
	m.amount = nil
	delete(m.clearedFields, paddockrecord.FieldAmount)
}

// SetNotes sets the "notes" field.
func (m *PaddockRecordMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PaddockRecordMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the PaddockRecord entity.
// If the PaddockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaddockRecordMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PaddockRecordMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[paddockrecord.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PaddockRecordMutation) NotesCleared() bool {
	_, ok := m.clearedFields[paddockrecord.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PaddockRecordMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, paddockrecord.FieldNotes)
}

// Where appends a list predicates to the PaddockRecordMutation builder.
func (m *PaddockRecordMutation) Where(ps ...predicate.PaddockRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaddockRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaddockRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaddockRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaddockRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaddockRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaddockRecord).
func (m *PaddockRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaddockRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, paddockrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paddockrecord.FieldUpdatedAt)
	}
	if m.farm_id != nil {
		fields = append(fields, paddockrecord.FieldFarmID)
	}
	if m.deleted_at != nil {
		fields = append(fields, paddockrecord.FieldDeletedAt)
	}
	if m.paddock_id != nil {
		fields = append(fields, paddockrecord.FieldPaddockID)
	}
	if m.kind != nil {
		fields = append(fields, paddockrecord.FieldKind)
	}
	if m.date != nil {
		fields = append(fields, paddockrecord.FieldDate)
	}
	if m.product != nil {
		fields = append(fields, paddockrecord.FieldProduct)
	}
	if m.rate != nil {
		fields = append(fields, paddockrecord.FieldRate)
	}
	if m.amount != nil {
		fields = append(fields, paddockrecord.FieldAmount)
	}
	if m.notes != nil {
		fields = append(fields, paddockrecord.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaddockRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paddockrecord.FieldCreatedAt:
		return m.CreatedAt()
	case paddockrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case paddockrecord.FieldFarmID:
		return m.FarmID()
	case paddockrecord.FieldDeletedAt:
		return m.DeletedAt()
	case paddockrecord.FieldPaddockID:
		return m.PaddockID()
	case paddockrecord.FieldKind:
		return m.Kind()
	case paddockrecord.FieldDate:
		return m.Date()
	case paddockrecord.FieldProduct:
		return m.Product()
	case paddockrecord.FieldRate:
		return m.Rate()
	case paddockrecord.FieldAmount:
		return m.Amount()
	case paddockrecord.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaddockRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paddockrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paddockrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case paddockrecord.FieldFarmID:
		return m.OldFarmID(ctx)
	case paddockrecord.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case paddockrecord.FieldPaddockID:
		return m.OldPaddockID(ctx)
	case paddockrecord.FieldKind:
		return m.OldKind(ctx)
	case paddockrecord.FieldDate:
		return m.OldDate(ctx)
	case paddockrecord.FieldProduct:
		return m.OldProduct(ctx)
	case paddockrecord.FieldRate:
		return m.OldRate(ctx)
	case paddockrecord.FieldAmount:
		return m.OldAmount(ctx)
	case paddockrecord.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown PaddockRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaddockRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paddockrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paddockrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case paddockrecord.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case paddockrecord.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case paddockrecord.FieldPaddockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaddockID(v)
		return nil
	case paddockrecord.FieldKind:
		v, ok := value.(paddockrecord.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case paddockrecord.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case paddockrecord.FieldProduct:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProduct(v)
		return nil
	case paddockrecord.FieldRate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRate(v)
		return nil
	case paddockrecord.FieldAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case paddockrecord.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown PaddockRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaddockRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaddockRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaddockRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PaddockRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaddockRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paddockrecord.FieldDeletedAt) {
		fields = append(fields, paddockrecord.FieldDeletedAt)
	}
	if m.FieldCleared(paddockrecord.FieldProduct) {
		fields = append(fields, paddockrecord.FieldProduct)
	}
	if m.FieldCleared(paddockrecord.FieldRate) {
		fields = append(fields, paddockrecord.FieldRate)
	}
	if m.FieldCleared(paddockrecord.FieldAmount) {
		fields = append(fields, paddockrecord.FieldAmount)
	}
	if m.FieldCleared(paddockrecord.FieldNotes) {
		fields = append(fields, paddockrecord.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaddockRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaddockRecordMutation) ClearField(name string) error {
	switch name {
	case paddockrecord.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case paddockrecord.FieldProduct:
		m.ClearProduct()
		return nil
	case paddockrecord.FieldRate:
		m.ClearRate()
		return nil
	case paddockrecord.FieldAmount:
		m.ClearAmount()
		return nil
	case paddockrecord.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown PaddockRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaddockRecordMutation) ResetField(name string) error {
	switch name {
	case paddockrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paddockrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case paddockrecord.FieldFarmID:
		m.ResetFarmID()
		return nil
	case paddockrecord.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case paddockrecord.FieldPaddockID:
		m.ResetPaddockID()
		return nil
	case paddockrecord.FieldKind:
		m.ResetKind()
		return nil
	case paddockrecord.FieldDate:
		m.ResetDate()
		return nil
	case paddockrecord.FieldProduct:
		m.ResetProduct()
		return nil
	case paddockrecord.FieldRate:
		m.ResetRate()
		return nil
	case paddockrecord.FieldAmount:
		m.ResetAmount()
		return nil
	case paddockrecord.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown PaddockRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaddockRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaddockRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaddockRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaddockRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaddockRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaddockRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaddockRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PaddockRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaddockRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PaddockRecord edge %s", name)
}

// SensorMutation represents an operation that mutates the Sensor nodes in the graph.
type SensorMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	farm_id       *string
	deleted_at    *time.Time
	name          *string
	_type         *string
	paddock_id    *string
	last_value    *map[string]interface{}
	last_seen     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Sensor, error)
	predicates    []predicate.Sensor
}

var _ ent.Mutation = (*SensorMutation)(nil)

// sensorOption allows management of the mutation configuration using functional options.
type sensorOption func(*SensorMutation)

// newSensorMutation creates new mutation for the Sensor entity.
func newSensorMutation(c config, op Op, opts ...sensorOption) *SensorMutation {
	m := &SensorMutation{
		config:        c,
		op:            op,
		typ:           TypeSensor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSensorID sets the ID field of the mutation.
func withSensorID(id string) sensorOption {
	return func(m *SensorMutation) {
		var (
			err   error
			once  sync.Once
			value *Sensor
		)
		m.oldValue = func(ctx context.Context) (*Sensor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sensor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSensor sets the old Sensor of the mutation.
func withSensor(node *Sensor) sensorOption {
	return func(m *SensorMutation) {
		m.oldValue = func(context.Context) (*Sensor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SensorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SensorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Sensor entities.
func (m *SensorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SensorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SensorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sensor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SensorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SensorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SensorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SensorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SensorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SensorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFarmID sets the "farm_id" field.
func (m *SensorMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *SensorMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *SensorMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SensorMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SensorMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SensorMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[sensor.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SensorMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[sensor.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SensorMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, sensor.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *SensorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SensorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SensorMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *SensorMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *SensorMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *SensorMutation) ResetType() {
	m._type = nil
}

// SetPaddockID sets the "paddock_id" field.
func (m *SensorMutation) SetPaddockID(s string) {
	m.paddock_id = &s
}

// PaddockID returns the value of the "paddock_id" field in the mutation.
func (m *SensorMutation) PaddockID() (r string, exists bool) {
	v := m.paddock_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaddockID returns the old "paddock_id" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldPaddockID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaddockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaddockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaddockID: %w", err)
	}
	return oldValue.PaddockID, nil
}

// ClearPaddockID clears the value of the "paddock_id" field.
func (m *SensorMutation) ClearPaddockID() {
	m.paddock_id = nil
	m.clearedFields[sensor.FieldPaddockID] = struct{}{}
}

// PaddockIDCleared returns if the "paddock_id" field was cleared in this mutation.
func (m *SensorMutation) PaddockIDCleared() bool {
	_, ok := m.clearedFields[sensor.FieldPaddockID]
	return ok
}

// ResetPaddockID resets all changes to the "paddock_id" field.
func (m *SensorMutation) ResetPaddockID() {
	m.paddock_id = nil
	delete(m.clearedFields, sensor.FieldPaddockID)
}

// SetLastValue sets the "last_value" field.
func (m *SensorMutation) SetLastValue(value map[string]interface{}) {
	m.last_value = &value
}

// LastValue returns the value of the "last_value" field in the mutation.
func (m *SensorMutation) LastValue() (r map[string]interface{}, exists bool) {
	v := m.last_value
	if v == nil {
		return
	}
	return *v, true
}

// OldLastValue returns the old "last_value" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldLastValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastValue: %w", err)
	}
	return oldValue.LastValue, nil
}

// ClearLastValue clears the value of the "last_value" field.
func (m *SensorMutation) ClearLastValue() {
	m.last_value = nil
	m.clearedFields[sensor.FieldLastValue] = struct{}{}
}

// LastValueCleared returns if the "last_value" field was cleared in this mutation.
func (m *SensorMutation) LastValueCleared() bool {
	_, ok := m.clearedFields[sensor.FieldLastValue]
	return ok
}

// ResetLastValue resets all changes to the "last_value" field.
func (m *SensorMutation) ResetLastValue() {
	m.last_value = nil
	delete(m.clearedFields, sensor.FieldLastValue)
}

// SetLastSeen sets the "last_seen" field.
func (m *SensorMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *SensorMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldLastSeen(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ClearLastSeen clears the value of the "last_seen" field.
func (m *SensorMutation) ClearLastSeen() {
	m.last_seen = nil
	m.clearedFields[sensor.FieldLastSeen] = struct{}{}
}

// LastSeenCleared returns if the "last_seen" field was cleared in this mutation.
func (m *SensorMutation) LastSeenCleared() bool {
	_, ok := m.clearedFields[sensor.FieldLastSeen]
	return ok
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *SensorMutation) ResetLastSeen() {
	m.last_seen = nil
	delete(m.clearedFields, sensor.FieldLastSeen)
}

// Where appends a list predicates to the SensorMutation builder.
func (m *SensorMutation) Where(ps ...predicate.Sensor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SensorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SensorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sensor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SensorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SensorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sensor).
func (m *SensorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SensorMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, sensor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sensor.FieldUpdatedAt)
	}
	if m.farm_id != nil {
		fields = append(fields, sensor.FieldFarmID)
	}
	if m.deleted_at != nil {
		fields = append(fields, sensor.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, sensor.FieldName)
	}
	if m._type != nil {
		fields = append(fields, sensor.FieldType)
	}
	if m.paddock_id != nil {
		fields = append(fields, sensor.FieldPaddockID)
	}
	if m.last_value != nil {
		fields = append(fields, sensor.FieldLastValue)
	}
	if m.last_seen != nil {
		fields = append(fields, sensor.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SensorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sensor.FieldCreatedAt:
		return m.CreatedAt()
	case sensor.FieldUpdatedAt:
		return m.UpdatedAt()
	case sensor.FieldFarmID:
		return m.FarmID()
	case sensor.FieldDeletedAt:
		return m.DeletedAt()
	case sensor.FieldName:
		return m.Name()
	case sensor.FieldType:
		return m.GetType()
	case sensor.FieldPaddockID:
		return m.PaddockID()
	case sensor.FieldLastValue:
		return m.LastValue()
	case sensor.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SensorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sensor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sensor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sensor.FieldFarmID:
		return m.OldFarmID(ctx)
	case sensor.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case sensor.FieldName:
		return m.OldName(ctx)
	case sensor.FieldType:
		return m.OldType(ctx)
	case sensor.FieldPaddockID:
		return m.OldPaddockID(ctx)
	case sensor.FieldLastValue:
		return m.OldLastValue(ctx)
	case sensor.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown Sensor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SensorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sensor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sensor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sensor.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case sensor.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case sensor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sensor.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case sensor.FieldPaddockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaddockID(v)
		return nil
	case sensor.FieldLastValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastValue(v)
		return nil
	case sensor.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown Sensor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SensorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SensorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SensorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Sensor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SensorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sensor.FieldDeletedAt) {
		fields = append(fields, sensor.FieldDeletedAt)
	}
	if m.FieldCleared(sensor.FieldPaddockID) {
		fields = append(fields, sensor.FieldPaddockID)
	}
	if m.FieldCleared(sensor.FieldLastValue) {
		fields = append(fields, sensor.FieldLastValue)
	}
	if m.FieldCleared(sensor.FieldLastSeen) {
		fields = append(fields, sensor.FieldLastSeen)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SensorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SensorMutation) ClearField(name string) error {
	switch name {
	case sensor.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case sensor.FieldPaddockID:
		m.ClearPaddockID()
		return nil
	case sensor.FieldLastValue:
		m.ClearLastValue()
		return nil
	case sensor.FieldLastSeen:
		m.ClearLastSeen()
		return nil
	}
	return fmt.Errorf("unknown Sensor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SensorMutation) ResetField(name string) error {
	switch name {
	case sensor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sensor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sensor.FieldFarmID:
		m.ResetFarmID()
		return nil
	case sensor.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case sensor.FieldName:
		m.ResetName()
		return nil
	case sensor.FieldType:
		m.ResetType()
		return nil
	case sensor.FieldPaddockID:
		m.ResetPaddockID()
		return nil
	case sensor.FieldLastValue:
		m.ResetLastValue()
		return nil
	case sensor.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown Sensor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SensorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SensorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SensorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SensorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SensorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SensorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SensorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Sensor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SensorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Sensor edge %s", name)
}

// StockRecordMutation represents an operation that mutates the StockRecord nodes in the graph.
type StockRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	farm_id       *string
	deleted_at    *time.Time
	mob_id        *string
	kind          *stockrecord.Kind
	date          *time.Time
	product       *string
	rate          *string
	count         *int
	addcount      *int
	notes         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StockRecord, error)
	predicates    []predicate.StockRecord
}

var _ ent.Mutation = (*StockRecordMutation)(nil)

// stockrecordOption allows management of the mutation configuration using functional options.
type stockrecordOption func(*StockRecordMutation)

// newStockRecordMutation creates new mutation for the StockRecord entity.
func newStockRecordMutation(c config, op Op, opts ...stockrecordOption) *StockRecordMutation {
	m := &StockRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeStockRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStockRecordID sets the ID field of the mutation.
func withStockRecordID(id string) stockrecordOption {
	return func(m *StockRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *StockRecord
		)
		m.oldValue = func(ctx context.Context) (*StockRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StockRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStockRecord sets the old StockRecord of the mutation.
func withStockRecord(node *StockRecord) stockrecordOption {
	return func(m *StockRecordMutation) {
		m.oldValue = func(context.Context) (*StockRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StockRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StockRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StockRecord entities.
func (m *StockRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StockRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StockRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StockRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StockRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StockRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StockRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StockRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StockRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StockRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFarmID sets the "farm_id" field.
func (m *StockRecordMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *StockRecordMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *StockRecordMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *StockRecordMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *StockRecordMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *StockRecordMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[stockrecord.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *StockRecordMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[stockrecord.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *StockRecordMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, stockrecord.FieldDeletedAt)
}

// SetMobID sets the "mob_id" field.
func (m *StockRecordMutation) SetMobID(s string) {
	m.mob_id = &s
}

// MobID returns the value of the "mob_id" field in the mutation.
func (m *StockRecordMutation) MobID() (r string, exists bool) {
	v := m.mob_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMobID returns the old "mob_id" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldMobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMobID: %w", err)
	}
	return oldValue.MobID, nil
}

// ResetMobID resets all changes to the "mob_id" field.
func (m *StockRecordMutation) ResetMobID() {
	m.mob_id = nil
}

// SetKind sets the "kind" field.
func (m *StockRecordMutation) SetKind(s stockrecord.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *StockRecordMutation) Kind() (r stockrecord.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldKind(ctx context.Context) (v stockrecord.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *StockRecordMutation) ResetKind() {
	m.kind = nil
}

// SetDate sets the "date" field.
func (m *StockRecordMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *StockRecordMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *StockRecordMutation) ResetDate() {
	m.date = nil
}

// SetProduct sets the "product" field.
func (m *StockRecordMutation) SetProduct(s string) {
	m.product = &s
}

// Product returns the value of the "product" field in the mutation.
func (m *StockRecordMutation) Product() (r string, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProduct returns the old "product" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldProduct(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProduct: %w", err)
	}
	return oldValue.Product, nil
}

// ClearProduct clears the value of the "product" field.
func (m *StockRecordMutation) ClearProduct() {
	m.product = nil
	m.clearedFields[stockrecord.FieldProduct] = struct{}{}
}

// ProductCleared returns if the "product" field was cleared in this mutation.
func (m *StockRecordMutation) ProductCleared() bool {
	_, ok := m.clearedFields[stockrecord.FieldProduct]
	return ok
}

// ResetProduct resets all changes to the "product" field.
func (m *StockRecordMutation) ResetProduct() {
	m.product = nil
	delete(m.clearedFields, stockrecord.FieldProduct)
}

// SetRate sets the "rate" field.
func (m *StockRecordMutation) SetRate(s string) {
	m.rate = &s
}

// Rate returns the value of the "rate" field in the mutation.
func (m *StockRecordMutation) Rate() (r string, exists bool) {
	v := m.rate
	if v == nil {
		return
	}
	return *v, true
}

// OldRate returns the old "rate" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldRate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRate: %w", err)
	}
	return oldValue.Rate, nil
}

// ClearRate clears the value of the "rate" field.
func (m *StockRecordMutation) ClearRate() {
	m.rate = nil
	m.clearedFields[stockrecord.FieldRate] = struct{}{}
}

// RateCleared returns if the "rate" field was cleared in this mutation.
func (m *StockRecordMutation) RateCleared() bool {
	_, ok := m.clearedFields[stockrecord.FieldRate]
	return ok
}

// ResetRate resets all changes to the "rate" field.
func (m *StockRecordMutation) ResetRate() {
	m.rate = nil
	delete(m.clearedFields, stockrecord.FieldRate)
}

// SetCount sets the "count" field.
func (m *StockRecordMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *StockRecordMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *StockRecordMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *StockRecordMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ClearCount clears the value of the "count" field.
func (m *StockRecordMutation) ClearCount() {
	m.count = nil
	m.addcount = nil
	m.clearedFields[stockrecord.FieldCount] = struct{}{}
}

// CountCleared returns if the "count" field was cleared in this mutation.
func (m *StockRecordMutation) CountCleared() bool {
	_, ok := m.clearedFields[stockrecord.FieldCount]
	return ok
}

// ResetCount resets all changes to the "count" field.
func (m *StockRecordMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
	delete(m.clearedFields, stockrecord.FieldCount)
}

// SetNotes sets the "notes" field.
func (m *StockRecordMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *StockRecordMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the StockRecord entity.
// If the StockRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockRecordMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *StockRecordMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[stockrecord.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *StockRecordMutation) NotesCleared() bool {
	_, ok := m.clearedFields[stockrecord.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *StockRecordMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, stockrecord.FieldNotes)
}

// Where appends a list predicates to the StockRecordMutation builder.
func (m *StockRecordMutation) Where(ps ...predicate.StockRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StockRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StockRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StockRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StockRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StockRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StockRecord).
func (m *StockRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StockRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, stockrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stockrecord.FieldUpdatedAt)
	}
	if m.farm_id != nil {
		fields = append(fields, stockrecord.FieldFarmID)
	}
	if m.deleted_at != nil {
		fields = append(fields, stockrecord.FieldDeletedAt)
	}
	if m.mob_id != nil {
		fields = append(fields, stockrecord.FieldMobID)
	}
	if m.kind != nil {
		fields = append(fields, stockrecord.FieldKind)
	}
	if m.date != nil {
		fields = append(fields, stockrecord.FieldDate)
	}
	if m.product != nil {
		fields = append(fields, stockrecord.FieldProduct)
	}
	if m.rate != nil {
		fields = append(fields, stockrecord.FieldRate)
	}
	if m.count != nil {
		fields = append(fields, stockrecord.FieldCount)
	}
	if m.notes != nil {
		fields = append(fields, stockrecord.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StockRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stockrecord.FieldCreatedAt:
		return m.CreatedAt()
	case stockrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case stockrecord.FieldFarmID:
		return m.FarmID()
	case stockrecord.FieldDeletedAt:
		return m.DeletedAt()
	case stockrecord.FieldMobID:
		return m.MobID()
	case stockrecord.FieldKind:
		return m.Kind()
	case stockrecord.FieldDate:
		return m.Date()
	case stockrecord.FieldProduct:
		return m.Product()
	case stockrecord.FieldRate:
		return m.Rate()
	case stockrecord.FieldCount:
		return m.Count()
	case stockrecord.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StockRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stockrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stockrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stockrecord.FieldFarmID:
		return m.OldFarmID(ctx)
	case stockrecord.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case stockrecord.FieldMobID:
		return m.OldMobID(ctx)
	case stockrecord.FieldKind:
		return m.OldKind(ctx)
	case stockrecord.FieldDate:
		return m.OldDate(ctx)
	case stockrecord.FieldProduct:
		return m.OldProduct(ctx)
	case stockrecord.FieldRate:
		return m.OldRate(ctx)
	case stockrecord.FieldCount:
		return m.OldCount(ctx)
	case stockrecord.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown StockRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StockRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stockrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stockrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stockrecord.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case stockrecord.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case stockrecord.FieldMobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMobID(v)
		return nil
	case stockrecord.FieldKind:
		v, ok := value.(stockrecord.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case stockrecord.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case stockrecord.FieldProduct:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProduct(v)
		return nil
	case stockrecord.FieldRate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRate(v)
		return nil
	case stockrecord.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case stockrecord.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown StockRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StockRecordMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, stockrecord.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StockRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stockrecord.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StockRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stockrecord.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown StockRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StockRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stockrecord.FieldDeletedAt) {
		fields = append(fields, stockrecord.FieldDeletedAt)
	}
	if m.FieldCleared(stockrecord.FieldProduct) {
		fields = append(fields, stockrecord.FieldProduct)
	}
	if m.FieldCleared(stockrecord.FieldRate) {
		fields = append(fields, stockrecord.FieldRate)
	}
	if m.FieldCleared(stockrecord.FieldCount) {
		fields = append(fields, stockrecord.FieldCount)
	}
	if m.FieldCleared(stockrecord.FieldNotes) {
		fields = append(fields, stockrecord.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StockRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StockRecordMutation) ClearField(name string) error {
	switch name {
	case stockrecord.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case stockrecord.FieldProduct:
		m.ClearProduct()
		return nil
	case stockrecord.FieldRate:
		m.ClearRate()
		return nil
	case stockrecord.FieldCount:
		m.ClearCount()
		return nil
	case stockrecord.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown StockRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StockRecordMutation) ResetField(name string) error {
	switch name {
	case stockrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stockrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stockrecord.FieldFarmID:
		m.ResetFarmID()
		return nil
	case stockrecord.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case stockrecord.FieldMobID:
		m.ResetMobID()
		return nil
	case stockrecord.FieldKind:
		m.ResetKind()
		return nil
	case stockrecord.FieldDate:
		m.ResetDate()
		return nil
	case stockrecord.FieldProduct:
		m.ResetProduct()
		return nil
	case stockrecord.FieldRate:
		m.ResetRate()
		return nil
	case stockrecord.FieldCount:
		m.ResetCount()
		return nil
	case stockrecord.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown StockRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StockRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StockRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StockRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StockRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StockRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StockRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StockRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StockRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StockRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StockRecord edge %s", name)
}

// SyncReceiptMutation represents an operation that mutates the SyncReceipt nodes in the graph.
type SyncReceiptMutation struct {
	config
	op            Op
	typ           string
	id            *int
	client_id     *string
	farm_id       *string
	status        *syncreceipt.Status
	seq           *int64
	addseq        *int64
	entity_type   *string
	entity_id     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SyncReceipt, error)
	predicates    []predicate.SyncReceipt
}

var _ ent.Mutation = (*SyncReceiptMutation)(nil)

// syncreceiptOption allows management of the mutation configuration using functional options.
type syncreceiptOption func(*SyncReceiptMutation)

// newSyncReceiptMutation creates new mutation for the SyncReceipt entity.
func newSyncReceiptMutation(c config, op Op, opts ...syncreceiptOption) *SyncReceiptMutation {
	m := &SyncReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncReceiptID sets the ID field of the mutation.
func withSyncReceiptID(id int) syncreceiptOption {
	return func(m *SyncReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncReceipt
		)
		m.oldValue = func(ctx context.Context) (*SyncReceipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncReceipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncReceipt sets the old SyncReceipt of the mutation.
func withSyncReceipt(node *SyncReceipt) syncreceiptOption {
	return func(m *SyncReceiptMutation) {
		m.oldValue = func(context.Context) (*SyncReceipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncReceiptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncReceiptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncReceipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *SyncReceiptMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *SyncReceiptMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the SyncReceipt entity.
// If the SyncReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncReceiptMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *SyncReceiptMutation) ResetClientID() {
	m.client_id = nil
}

// SetFarmID sets the "farm_id" field.
func (m *SyncReceiptMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *SyncReceiptMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the SyncReceipt entity.
// If the SyncReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncReceiptMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *SyncReceiptMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetStatus sets the "status" field.
func (m *SyncReceiptMutation) SetStatus(s syncreceipt.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SyncReceiptMutation) Status() (r syncreceipt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SyncReceipt entity.
// If the SyncReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncReceiptMutation) OldStatus(ctx context.Context) (v syncreceipt.Status, err error) {
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
func (m *SyncReceiptMutation) ResetStatus() {
	m.status = nil
}

// SetSeq sets the "seq" field.
func (m *SyncReceiptMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *SyncReceiptMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the SyncReceipt entity.
// If the SyncReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncReceiptMutation) OldSeq(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *SyncReceiptMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *SyncReceiptMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ClearSeq clears the value of the "seq" field.
func (m *SyncReceiptMutation) ClearSeq() {
	m.seq = nil
	m.addseq = nil
	m.clearedFields[syncreceipt.FieldSeq] = struct{}{}
}

// SeqCleared returns if the "seq" field was cleared in this mutation.
func (m *SyncReceiptMutation) SeqCleared() bool {
	_, ok := m.clearedFields[syncreceipt.FieldSeq]
	return ok
}

// ResetSeq resets all changes to the "seq" field.
func (m *SyncReceiptMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
	delete(m.clearedFields, syncreceipt.FieldSeq)
}

// SetEntityType sets the "entity_type" field.
func (m *SyncReceiptMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *SyncReceiptMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the SyncReceipt entity.
// If the SyncReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncReceiptMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *SyncReceiptMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *SyncReceiptMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *SyncReceiptMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the SyncReceipt entity.
// If the SyncReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncReceiptMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *SyncReceiptMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SyncReceiptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SyncReceiptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SyncReceipt entity.
// If the SyncReceipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncReceiptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SyncReceiptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SyncReceiptMutation builder.
func (m *SyncReceiptMutation) Where(ps ...predicate.SyncReceipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncReceipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncReceipt).
func (m *SyncReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncReceiptMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.client_id != nil {
		fields = append(fields, syncreceipt.FieldClientID)
	}
	if m.farm_id != nil {
		fields = append(fields, syncreceipt.FieldFarmID)
	}
	if m.status != nil {
		fields = append(fields, syncreceipt.FieldStatus)
	}
	if m.seq != nil {
		fields = append(fields, syncreceipt.FieldSeq)
	}
	if m.entity_type != nil {
		fields = append(fields, syncreceipt.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, syncreceipt.FieldEntityID)
	}
	if m.created_at != nil {
		fields = append(fields, syncreceipt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case syncreceipt.FieldClientID:
		return m.ClientID()
	case syncreceipt.FieldFarmID:
		return m.FarmID()
	case syncreceipt.FieldStatus:
		return m.Status()
	case syncreceipt.FieldSeq:
		return m.Seq()
	case syncreceipt.FieldEntityType:
		return m.EntityType()
	case syncreceipt.FieldEntityID:
		return m.EntityID()
	case syncreceipt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case syncreceipt.FieldClientID:
		return m.OldClientID(ctx)
	case syncreceipt.FieldFarmID:
		return m.OldFarmID(ctx)
	case syncreceipt.FieldStatus:
		return m.OldStatus(ctx)
	case syncreceipt.FieldSeq:
		return m.OldSeq(ctx)
	case syncreceipt.FieldEntityType:
		return m.OldEntityType(ctx)
	case syncreceipt.FieldEntityID:
		return m.OldEntityID(ctx)
	case syncreceipt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncReceipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case syncreceipt.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case syncreceipt.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case syncreceipt.FieldStatus:
		v, ok := value.(syncreceipt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case syncreceipt.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case syncreceipt.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case syncreceipt.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case syncreceipt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncReceipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, syncreceipt.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case syncreceipt.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case syncreceipt.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown SyncReceipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(syncreceipt.FieldSeq) {
		fields = append(fields, syncreceipt.FieldSeq)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncReceiptMutation) ClearField(name string) error {
	switch name {
	case syncreceipt.FieldSeq:
		m.ClearSeq()
		return nil
	}
	return fmt.Errorf("unknown SyncReceipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncReceiptMutation) ResetField(name string) error {
	switch name {
	case syncreceipt.FieldClientID:
		m.ResetClientID()
		return nil
	case syncreceipt.FieldFarmID:
		m.ResetFarmID()
		return nil
	case syncreceipt.FieldStatus:
		m.ResetStatus()
		return nil
	case syncreceipt.FieldSeq:
		m.ResetSeq()
		return nil
	case syncreceipt.FieldEntityType:
		m.ResetEntityType()
		return nil
	case syncreceipt.FieldEntityID:
		m.ResetEntityID()
		return nil
	case syncreceipt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncReceipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncReceiptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncReceiptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncReceiptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncReceiptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncReceipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncReceiptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncReceipt edge %s", name)
}

// TombstoneMutation represents an operation that mutates the Tombstone nodes in the graph.
type TombstoneMutation struct {
	config
	op            Op
	typ           string
	id            *int
	farm_id       *string
	entity_type   *string
	entity_id     *string
	seq           *int64
	addseq        *int64
	recorded_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Tombstone, error)
	predicates    []predicate.Tombstone
}

var _ ent.Mutation = (*TombstoneMutation)(nil)

// tombstoneOption allows management of the mutation configuration using functional options.
type tombstoneOption func(*TombstoneMutation)

// newTombstoneMutation creates new mutation for the Tombstone entity.
func newTombstoneMutation(c config, op Op, opts ...tombstoneOption) *TombstoneMutation {
	m := &TombstoneMutation{
		config:        c,
		op:            op,
		typ:           TypeTombstone,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTombstoneID sets the ID field of the mutation.
func withTombstoneID(id int) tombstoneOption {
	return func(m *TombstoneMutation) {
		var (
			err   error
			once  sync.Once
			value *Tombstone
		)
		m.oldValue = func(ctx context.Context) (*Tombstone, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tombstone.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTombstone sets the old Tombstone of the mutation.
func withTombstone(node *Tombstone) tombstoneOption {
	return func(m *TombstoneMutation) {
		m.oldValue = func(context.Context) (*Tombstone, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TombstoneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TombstoneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TombstoneMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TombstoneMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tombstone.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFarmID sets the "farm_id" field.
func (m *TombstoneMutation) SetFarmID(s string) {
	m.farm_id = &s
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *TombstoneMutation) FarmID() (r string, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the Tombstone entity.
// If the Tombstone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TombstoneMutation) OldFarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *TombstoneMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *TombstoneMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *TombstoneMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Tombstone entity.
// If the Tombstone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TombstoneMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *TombstoneMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *TombstoneMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *TombstoneMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Tombstone entity.
// If the Tombstone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TombstoneMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *TombstoneMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetSeq sets the "seq" field.
func (m *TombstoneMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *TombstoneMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Tombstone entity.
// If the Tombstone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TombstoneMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *TombstoneMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *TombstoneMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *TombstoneMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *TombstoneMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *TombstoneMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the Tombstone entity.
// If the Tombstone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TombstoneMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *TombstoneMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// Where appends a list predicates to the TombstoneMutation builder.
func (m *TombstoneMutation) Where(ps ...predicate.Tombstone) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TombstoneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TombstoneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tombstone, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TombstoneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TombstoneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tombstone).
func (m *TombstoneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TombstoneMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.farm_id != nil {
		fields = append(fields, tombstone.FieldFarmID)
	}
	if m.entity_type != nil {
		fields = append(fields, tombstone.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, tombstone.FieldEntityID)
	}
	if m.seq != nil {
		fields = append(fields, tombstone.FieldSeq)
	}
	if m.recorded_at != nil {
		fields = append(fields, tombstone.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TombstoneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tombstone.FieldFarmID:
		return m.FarmID()
	case tombstone.FieldEntityType:
		return m.EntityType()
	case tombstone.FieldEntityID:
		return m.EntityID()
	case tombstone.FieldSeq:
		return m.Seq()
	case tombstone.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TombstoneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tombstone.FieldFarmID:
		return m.OldFarmID(ctx)
	case tombstone.FieldEntityType:
		return m.OldEntityType(ctx)
	case tombstone.FieldEntityID:
		return m.OldEntityID(ctx)
	case tombstone.FieldSeq:
		return m.OldSeq(ctx)
	case tombstone.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tombstone field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TombstoneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tombstone.FieldFarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case tombstone.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case tombstone.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case tombstone.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case tombstone.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tombstone field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TombstoneMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, tombstone.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TombstoneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tombstone.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TombstoneMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tombstone.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Tombstone numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TombstoneMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TombstoneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TombstoneMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tombstone nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TombstoneMutation) ResetField(name string) error {
	switch name {
	case tombstone.FieldFarmID:
		m.ResetFarmID()
		return nil
	case tombstone.FieldEntityType:
		m.ResetEntityType()
		return nil
	case tombstone.FieldEntityID:
		m.ResetEntityID()
		return nil
	case tombstone.FieldSeq:
		m.ResetSeq()
		return nil
	case tombstone.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown Tombstone field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TombstoneMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TombstoneMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TombstoneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TombstoneMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TombstoneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TombstoneMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TombstoneMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Tombstone unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TombstoneMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Tombstone edge %s", name)
}
