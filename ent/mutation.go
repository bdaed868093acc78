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
	"github.com/aaron-lee-hebert/seller-metrics/ent/externalrecord"
	"github.com/aaron-lee-hebert/seller-metrics/ent/inventoryitem"
	"github.com/aaron-lee-hebert/seller-metrics/ent/marketplacecredential"
	"github.com/aaron-lee-hebert/seller-metrics/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExternalRecord        = "ExternalRecord"
	TypeInventoryItem         = "InventoryItem"
	TypeMarketplaceCredential = "MarketplaceCredential"
)

// ExternalRecordMutation represents an operation that mutates the ExternalRecord nodes in the graph.
type ExternalRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	created_at           *time.Time
	updated_at           *time.Time
	user_id              *int64
	adduser_id           *int64
	provider             *string
	record_type          *string
	external_id          *string
	legacy_external_id   *string
	transaction_date     *time.Time
	counterparty         *string
	currency             *string
	gross_cents          *int64
	addgross_cents       *int64
	fee_cents            *int64
	addfee_cents         *int64
	shipping_cents       *int64
	addshipping_cents    *int64
	net_cents            *int64
	addnet_cents         *int64
	status               *string
	item_title           *string
	item_sku             *string
	inventory_item_id    *int64
	addinventory_item_id *int64
	last_synced_at       *time.Time
	deleted_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ExternalRecord, error)
	predicates           []predicate.ExternalRecord
}

var _ ent.Mutation = (*ExternalRecordMutation)(nil)

// externalrecordOption allows management of the mutation configuration using functional options.
type externalrecordOption func(*ExternalRecordMutation)

// newExternalRecordMutation creates new mutation for the ExternalRecord entity.
func newExternalRecordMutation(c config, op Op, opts ...externalrecordOption) *ExternalRecordMutation {
	m := &ExternalRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeExternalRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExternalRecordID sets the ID field of the mutation.
func withExternalRecordID(id int) externalrecordOption {
	return func(m *ExternalRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ExternalRecord
		)
		m.oldValue = func(ctx context.Context) (*ExternalRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExternalRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExternalRecord sets the old ExternalRecord of the mutation.
func withExternalRecord(node *ExternalRecord) externalrecordOption {
	return func(m *ExternalRecordMutation) {
		m.oldValue = func(context.Context) (*ExternalRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExternalRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExternalRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExternalRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExternalRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExternalRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ExternalRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExternalRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExternalRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExternalRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExternalRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExternalRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *ExternalRecordMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExternalRecordMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ExternalRecordMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ExternalRecordMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExternalRecordMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetProvider sets the "provider" field.
func (m *ExternalRecordMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ExternalRecordMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldProvider(ctx context.Context) (v string, err error) {
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
func (m *ExternalRecordMutation) ResetProvider() {
	m.provider = nil
}

// SetRecordType sets the "record_type" field.
func (m *ExternalRecordMutation) SetRecordType(s string) {
	m.record_type = &s
}

// RecordType returns the value of the "record_type" field in the mutation.
func (m *ExternalRecordMutation) RecordType() (r string, exists bool) {
	v := m.record_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordType returns the old "record_type" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldRecordType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordType: %w", err)
	}
	return oldValue.RecordType, nil
}

// ResetRecordType resets all changes to the "record_type" field.
func (m *ExternalRecordMutation) ResetRecordType() {
	m.record_type = nil
}

// SetExternalID sets the "external_id" field.
func (m *ExternalRecordMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *ExternalRecordMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *ExternalRecordMutation) ResetExternalID() {
	m.external_id = nil
}

// SetLegacyExternalID sets the "legacy_external_id" field.
func (m *ExternalRecordMutation) SetLegacyExternalID(s string) {
	m.legacy_external_id = &s
}

// LegacyExternalID returns the value of the "legacy_external_id" field in the mutation.
func (m *ExternalRecordMutation) LegacyExternalID() (r string, exists bool) {
	v := m.legacy_external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyExternalID returns the old "legacy_external_id" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldLegacyExternalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyExternalID: %w", err)
	}
	return oldValue.LegacyExternalID, nil
}

// ClearLegacyExternalID clears the value of the "legacy_external_id" field.
func (m *ExternalRecordMutation) ClearLegacyExternalID() {
	m.legacy_external_id = nil
	m.clearedFields[externalrecord.FieldLegacyExternalID] = struct{}{}
}

// LegacyExternalIDCleared returns if the "legacy_external_id" field was cleared in this mutation.
func (m *ExternalRecordMutation) LegacyExternalIDCleared() bool {
	_, ok := m.clearedFields[externalrecord.FieldLegacyExternalID]
	return ok
}

// ResetLegacyExternalID resets all changes to the "legacy_external_id" field.
func (m *ExternalRecordMutation) ResetLegacyExternalID() {
	m.legacy_external_id = nil
	delete(m.clearedFields, externalrecord.FieldLegacyExternalID)
}

// SetTransactionDate sets the "transaction_date" field.
func (m *ExternalRecordMutation) SetTransactionDate(t time.Time) {
	m.transaction_date = &t
}

// TransactionDate returns the value of the "transaction_date" field in the mutation.
func (m *ExternalRecordMutation) TransactionDate() (r time.Time, exists bool) {
	v := m.transaction_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionDate returns the old "transaction_date" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldTransactionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionDate: %w", err)
	}
	return oldValue.TransactionDate, nil
}

// ResetTransactionDate resets all changes to the "transaction_date" field.
func (m *ExternalRecordMutation) ResetTransactionDate() {
	m.transaction_date = nil
}

// SetCounterparty sets the "counterparty" field.
func (m *ExternalRecordMutation) SetCounterparty(s string) {
	m.counterparty = &s
}

// Counterparty returns the value of the "counterparty" field in the mutation.
func (m *ExternalRecordMutation) Counterparty() (r string, exists bool) {
	v := m.counterparty
	if v == nil {
		return
	}
	return *v, true
}

// OldCounterparty returns the old "counterparty" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldCounterparty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounterparty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounterparty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounterparty: %w", err)
	}
	return oldValue.Counterparty, nil
}

// ClearCounterparty clears the value of the "counterparty" field.
func (m *ExternalRecordMutation) ClearCounterparty() {
	m.counterparty = nil
	m.clearedFields[externalrecord.FieldCounterparty] = struct{}{}
}

// CounterpartyCleared returns if the "counterparty" field was cleared in this mutation.
func (m *ExternalRecordMutation) CounterpartyCleared() bool {
	_, ok := m.clearedFields[externalrecord.FieldCounterparty]
	return ok
}

// ResetCounterparty resets all changes to the "counterparty" field.
func (m *ExternalRecordMutation) ResetCounterparty() {
	m.counterparty = nil
	delete(m.clearedFields, externalrecord.FieldCounterparty)
}

// SetCurrency sets the "currency" field.
func (m *ExternalRecordMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ExternalRecordMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ExternalRecordMutation) ResetCurrency() {
	m.currency = nil
}

// SetGrossCents sets the "gross_cents" field.
func (m *ExternalRecordMutation) SetGrossCents(i int64) {
	m.gross_cents = &i
	m.addgross_cents = nil
}

// GrossCents returns the value of the "gross_cents" field in the mutation.
func (m *ExternalRecordMutation) GrossCents() (r int64, exists bool) {
	v := m.gross_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossCents returns the old "gross_cents" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldGrossCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossCents: %w", err)
	}
	return oldValue.GrossCents, nil
}

// AddGrossCents adds i to the "gross_cents" field.
func (m *ExternalRecordMutation) AddGrossCents(i int64) {
	if m.addgross_cents != nil {
		*m.addgross_cents += i
	} else {
		m.addgross_cents = &i
	}
}

// AddedGrossCents returns the value that was added to the "gross_cents" field in this mutation.
func (m *ExternalRecordMutation) AddedGrossCents() (r int64, exists bool) {
	v := m.addgross_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrossCents resets all changes to the "gross_cents" field.
func (m *ExternalRecordMutation) ResetGrossCents() {
	m.gross_cents = nil
	m.addgross_cents = nil
}

// SetFeeCents sets the "fee_cents" field.
func (m *ExternalRecordMutation) SetFeeCents(i int64) {
	m.fee_cents = &i
	m.addfee_cents = nil
}

// FeeCents returns the value of the "fee_cents" field in the mutation.
func (m *ExternalRecordMutation) FeeCents() (r int64, exists bool) {
	v := m.fee_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldFeeCents returns the old "fee_cents" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldFeeCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeeCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeeCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeeCents: %w", err)
	}
	return oldValue.FeeCents, nil
}

// AddFeeCents adds i to the "fee_cents" field.
func (m *ExternalRecordMutation) AddFeeCents(i int64) {
	if m.addfee_cents != nil {
		*m.addfee_cents += i
	} else {
		m.addfee_cents = &i
	}
}

// AddedFeeCents returns the value that was added to the "fee_cents" field in this mutation.
func (m *ExternalRecordMutation) AddedFeeCents() (r int64, exists bool) {
	v := m.addfee_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeeCents resets all changes to the "fee_cents" field.
func (m *ExternalRecordMutation) ResetFeeCents() {
	m.fee_cents = nil
	m.addfee_cents = nil
}

// SetShippingCents sets the "shipping_cents" field.
func (m *ExternalRecordMutation) SetShippingCents(i int64) {
	m.shipping_cents = &i
	m.addshipping_cents = nil
}

// ShippingCents returns the value of the "shipping_cents" field in the mutation.
func (m *ExternalRecordMutation) ShippingCents() (r int64, exists bool) {
	v := m.shipping_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldShippingCents returns the old "shipping_cents" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldShippingCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShippingCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShippingCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShippingCents: %w", err)
	}
	return oldValue.ShippingCents, nil
}

// AddShippingCents adds i to the "shipping_cents" field.
func (m *ExternalRecordMutation) AddShippingCents(i int64) {
	if m.addshipping_cents != nil {
		*m.addshipping_cents += i
	} else {
		m.addshipping_cents = &i
	}
}

// AddedShippingCents returns the value that was added to the "shipping_cents" field in this mutation.
func (m *ExternalRecordMutation) AddedShippingCents() (r int64, exists bool) {
	v := m.addshipping_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetShippingCents resets all changes to the "shipping_cents" field.
func (m *ExternalRecordMutation) ResetShippingCents() {
	m.shipping_cents = nil
	m.addshipping_cents = nil
}

// SetNetCents sets the "net_cents" field.
func (m *ExternalRecordMutation) SetNetCents(i int64) {
	m.net_cents = &i
	m.addnet_cents = nil
}

// NetCents returns the value of the "net_cents" field in the mutation.
func (m *ExternalRecordMutation) NetCents() (r int64, exists bool) {
	v := m.net_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldNetCents returns the old "net_cents" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldNetCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetCents: %w", err)
	}
	return oldValue.NetCents, nil
}

// AddNetCents adds i to the "net_cents" field.
func (m *ExternalRecordMutation) AddNetCents(i int64) {
	if m.addnet_cents != nil {
		*m.addnet_cents += i
	} else {
		m.addnet_cents = &i
	}
}

// AddedNetCents returns the value that was added to the "net_cents" field in this mutation.
func (m *ExternalRecordMutation) AddedNetCents() (r int64, exists bool) {
	v := m.addnet_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetNetCents resets all changes to the "net_cents" field.
func (m *ExternalRecordMutation) ResetNetCents() {
	m.net_cents = nil
	m.addnet_cents = nil
}

// SetStatus sets the "status" field.
func (m *ExternalRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExternalRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ExternalRecordMutation) ResetStatus() {
	m.status = nil
}

// SetItemTitle sets the "item_title" field.
func (m *ExternalRecordMutation) SetItemTitle(s string) {
	m.item_title = &s
}

// ItemTitle returns the value of the "item_title" field in the mutation.
func (m *ExternalRecordMutation) ItemTitle() (r string, exists bool) {
	v := m.item_title
	if v == nil {
		return
	}
	return *v, true
}

// OldItemTitle returns the old "item_title" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldItemTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemTitle: %w", err)
	}
	return oldValue.ItemTitle, nil
}

// ClearItemTitle clears the value of the "item_title" field.
func (m *ExternalRecordMutation) ClearItemTitle() {
	m.item_title = nil
	m.clearedFields[externalrecord.FieldItemTitle] = struct{}{}
}

// ItemTitleCleared returns if the "item_title" field was cleared in this mutation.
func (m *ExternalRecordMutation) ItemTitleCleared() bool {
	_, ok := m.clearedFields[externalrecord.FieldItemTitle]
	return ok
}

// ResetItemTitle resets all changes to the "item_title" field.
func (m *ExternalRecordMutation) ResetItemTitle() {
	m.item_title = nil
	delete(m.clearedFields, externalrecord.FieldItemTitle)
}

// SetItemSku sets the "item_sku" field.
func (m *ExternalRecordMutation) SetItemSku(s string) {
	m.item_sku = &s
}

// ItemSku returns the value of the "item_sku" field in the mutation.
func (m *ExternalRecordMutation) ItemSku() (r string, exists bool) {
	v := m.item_sku
	if v == nil {
		return
	}
	return *v, true
}

// OldItemSku returns the old "item_sku" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldItemSku(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemSku: %w", err)
	}
	return oldValue.ItemSku, nil
}

// ClearItemSku clears the value of the "item_sku" field.
func (m *ExternalRecordMutation) ClearItemSku() {
	m.item_sku = nil
	m.clearedFields[externalrecord.FieldItemSku] = struct{}{}
}

// ItemSkuCleared returns if the "item_sku" field was cleared in this mutation.
func (m *ExternalRecordMutation) ItemSkuCleared() bool {
	_, ok := m.clearedFields[externalrecord.FieldItemSku]
	return ok
}

// ResetItemSku resets all changes to the "item_sku" field.
func (m *ExternalRecordMutation) ResetItemSku() {
	m.item_sku = nil
	delete(m.clearedFields, externalrecord.FieldItemSku)
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (m *ExternalRecordMutation) SetInventoryItemID(i int64) {
	m.inventory_item_id = &i
	m.addinventory_item_id = nil
}

// InventoryItemID returns the value of the "inventory_item_id" field in the mutation.
func (m *ExternalRecordMutation) InventoryItemID() (r int64, exists bool) {
	v := m.inventory_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInventoryItemID returns the old "inventory_item_id" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldInventoryItemID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInventoryItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInventoryItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInventoryItemID: %w", err)
	}
	return oldValue.InventoryItemID, nil
}

// AddInventoryItemID adds i to the "inventory_item_id" field.
func (m *ExternalRecordMutation) AddInventoryItemID(i int64) {
	if m.addinventory_item_id != nil {
		*m.addinventory_item_id += i
	} else {
		m.addinventory_item_id = &i
	}
}

// AddedInventoryItemID returns the value that was added to the "inventory_item_id" field in this mutation.
func (m *ExternalRecordMutation) AddedInventoryItemID() (r int64, exists bool) {
	v := m.addinventory_item_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearInventoryItemID clears the value of the "inventory_item_id" field.
func (m *ExternalRecordMutation) ClearInventoryItemID() {
	m.inventory_item_id = nil
	m.addinventory_item_id = nil
	m.clearedFields[externalrecord.FieldInventoryItemID] = struct{}{}
}

// InventoryItemIDCleared returns if the "inventory_item_id" field was cleared in this mutation.
func (m *ExternalRecordMutation) InventoryItemIDCleared() bool {
	_, ok := m.clearedFields[externalrecord.FieldInventoryItemID]
	return ok
}

// ResetInventoryItemID resets all changes to the "inventory_item_id" field.
func (m *ExternalRecordMutation) ResetInventoryItemID() {
	m.inventory_item_id = nil
	m.addinventory_item_id = nil
	delete(m.clearedFields, externalrecord.FieldInventoryItemID)
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (m *ExternalRecordMutation) SetLastSyncedAt(t time.Time) {
	m.last_synced_at = &t
}

// LastSyncedAt returns the value of the "last_synced_at" field in the mutation.
func (m *ExternalRecordMutation) LastSyncedAt() (r time.Time, exists bool) {
	v := m.last_synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncedAt returns the old "last_synced_at" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldLastSyncedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncedAt: %w", err)
	}
	return oldValue.LastSyncedAt, nil
}

// ResetLastSyncedAt resets all changes to the "last_synced_at" field.
func (m *ExternalRecordMutation) ResetLastSyncedAt() {
	m.last_synced_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ExternalRecordMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ExternalRecordMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ExternalRecord entity.
// If the ExternalRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalRecordMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *ExternalRecordMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[externalrecord.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ExternalRecordMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[externalrecord.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ExternalRecordMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, externalrecord.FieldDeletedAt)
}

// Where appends a list predicates to the ExternalRecordMutation builder.
func (m *ExternalRecordMutation) Where(ps ...predicate.ExternalRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExternalRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExternalRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExternalRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExternalRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExternalRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExternalRecord).
func (m *ExternalRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExternalRecordMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.created_at != nil {
		fields = append(fields, externalrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, externalrecord.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, externalrecord.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, externalrecord.FieldProvider)
	}
	if m.record_type != nil {
		fields = append(fields, externalrecord.FieldRecordType)
	}
	if m.external_id != nil {
		fields = append(fields, externalrecord.FieldExternalID)
	}
	if m.legacy_external_id != nil {
		fields = append(fields, externalrecord.FieldLegacyExternalID)
	}
	if m.transaction_date != nil {
		fields = append(fields, externalrecord.FieldTransactionDate)
	}
	if m.counterparty != nil {
		fields = append(fields, externalrecord.FieldCounterparty)
	}
	if m.currency != nil {
		fields = append(fields, externalrecord.FieldCurrency)
	}
	if m.gross_cents != nil {
		fields = append(fields, externalrecord.FieldGrossCents)
	}
	if m.fee_cents != nil {
		fields = append(fields, externalrecord.FieldFeeCents)
	}
	if m.shipping_cents != nil {
		fields = append(fields, externalrecord.FieldShippingCents)
	}
	if m.net_cents != nil {
		fields = append(fields, externalrecord.FieldNetCents)
	}
	if m.status != nil {
		fields = append(fields, externalrecord.FieldStatus)
	}
	if m.item_title != nil {
		fields = append(fields, externalrecord.FieldItemTitle)
	}
	if m.item_sku != nil {
		fields = append(fields, externalrecord.FieldItemSku)
	}
	if m.inventory_item_id != nil {
		fields = append(fields, externalrecord.FieldInventoryItemID)
	}
	if m.last_synced_at != nil {
		fields = append(fields, externalrecord.FieldLastSyncedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, externalrecord.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExternalRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case externalrecord.FieldCreatedAt:
		return m.CreatedAt()
	case externalrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case externalrecord.FieldUserID:
		return m.UserID()
	case externalrecord.FieldProvider:
		return m.Provider()
	case externalrecord.FieldRecordType:
		return m.RecordType()
	case externalrecord.FieldExternalID:
		return m.ExternalID()
	case externalrecord.FieldLegacyExternalID:
		return m.LegacyExternalID()
	case externalrecord.FieldTransactionDate:
		return m.TransactionDate()
	case externalrecord.FieldCounterparty:
		return m.Counterparty()
	case externalrecord.FieldCurrency:
		return m.Currency()
	case externalrecord.FieldGrossCents:
		return m.GrossCents()
	case externalrecord.FieldFeeCents:
		return m.FeeCents()
	case externalrecord.FieldShippingCents:
		return m.ShippingCents()
	case externalrecord.FieldNetCents:
		return m.NetCents()
	case externalrecord.FieldStatus:
		return m.Status()
	case externalrecord.FieldItemTitle:
		return m.ItemTitle()
	case externalrecord.FieldItemSku:
		return m.ItemSku()
	case externalrecord.FieldInventoryItemID:
		return m.InventoryItemID()
	case externalrecord.FieldLastSyncedAt:
		return m.LastSyncedAt()
	case externalrecord.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExternalRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case externalrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case externalrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case externalrecord.FieldUserID:
		return m.OldUserID(ctx)
	case externalrecord.FieldProvider:
		return m.OldProvider(ctx)
	case externalrecord.FieldRecordType:
		return m.OldRecordType(ctx)
	case externalrecord.FieldExternalID:
		return m.OldExternalID(ctx)
	case externalrecord.FieldLegacyExternalID:
		return m.OldLegacyExternalID(ctx)
	case externalrecord.FieldTransactionDate:
		return m.OldTransactionDate(ctx)
	case externalrecord.FieldCounterparty:
		return m.OldCounterparty(ctx)
	case externalrecord.FieldCurrency:
		return m.OldCurrency(ctx)
	case externalrecord.FieldGrossCents:
		return m.OldGrossCents(ctx)
	case externalrecord.FieldFeeCents:
		return m.OldFeeCents(ctx)
	case externalrecord.FieldShippingCents:
		return m.OldShippingCents(ctx)
	case externalrecord.FieldNetCents:
		return m.OldNetCents(ctx)
	case externalrecord.FieldStatus:
		return m.OldStatus(ctx)
	case externalrecord.FieldItemTitle:
		return m.OldItemTitle(ctx)
	case externalrecord.FieldItemSku:
		return m.OldItemSku(ctx)
	case externalrecord.FieldInventoryItemID:
		return m.OldInventoryItemID(ctx)
	case externalrecord.FieldLastSyncedAt:
		return m.OldLastSyncedAt(ctx)
	case externalrecord.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExternalRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case externalrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case externalrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case externalrecord.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case externalrecord.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case externalrecord.FieldRecordType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordType(v)
		return nil
	case externalrecord.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case externalrecord.FieldLegacyExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyExternalID(v)
		return nil
	case externalrecord.FieldTransactionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionDate(v)
		return nil
	case externalrecord.FieldCounterparty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounterparty(v)
		return nil
	case externalrecord.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case externalrecord.FieldGrossCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossCents(v)
		return nil
	case externalrecord.FieldFeeCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeeCents(v)
		return nil
	case externalrecord.FieldShippingCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShippingCents(v)
		return nil
	case externalrecord.FieldNetCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetCents(v)
		return nil
	case externalrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case externalrecord.FieldItemTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemTitle(v)
		return nil
	case externalrecord.FieldItemSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemSku(v)
		return nil
	case externalrecord.FieldInventoryItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInventoryItemID(v)
		return nil
	case externalrecord.FieldLastSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncedAt(v)
		return nil
	case externalrecord.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExternalRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExternalRecordMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, externalrecord.FieldUserID)
	}
	if m.addgross_cents != nil {
		fields = append(fields, externalrecord.FieldGrossCents)
	}
	if m.addfee_cents != nil {
		fields = append(fields, externalrecord.FieldFeeCents)
	}
	if m.addshipping_cents != nil {
		fields = append(fields, externalrecord.FieldShippingCents)
	}
	if m.addnet_cents != nil {
		fields = append(fields, externalrecord.FieldNetCents)
	}
	if m.addinventory_item_id != nil {
		fields = append(fields, externalrecord.FieldInventoryItemID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExternalRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case externalrecord.FieldUserID:
		return m.AddedUserID()
	case externalrecord.FieldGrossCents:
		return m.AddedGrossCents()
	case externalrecord.FieldFeeCents:
		return m.AddedFeeCents()
	case externalrecord.FieldShippingCents:
		return m.AddedShippingCents()
	case externalrecord.FieldNetCents:
		return m.AddedNetCents()
	case externalrecord.FieldInventoryItemID:
		return m.AddedInventoryItemID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case externalrecord.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case externalrecord.FieldGrossCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrossCents(v)
		return nil
	case externalrecord.FieldFeeCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeeCents(v)
		return nil
	case externalrecord.FieldShippingCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShippingCents(v)
		return nil
	case externalrecord.FieldNetCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetCents(v)
		return nil
	case externalrecord.FieldInventoryItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInventoryItemID(v)
		return nil
	}
	return fmt.Errorf("unknown ExternalRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExternalRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(externalrecord.FieldLegacyExternalID) {
		fields = append(fields, externalrecord.FieldLegacyExternalID)
	}
	if m.FieldCleared(externalrecord.FieldCounterparty) {
		fields = append(fields, externalrecord.FieldCounterparty)
	}
	if m.FieldCleared(externalrecord.FieldItemTitle) {
		fields = append(fields, externalrecord.FieldItemTitle)
	}
	if m.FieldCleared(externalrecord.FieldItemSku) {
		fields = append(fields, externalrecord.FieldItemSku)
	}
	if m.FieldCleared(externalrecord.FieldInventoryItemID) {
		fields = append(fields, externalrecord.FieldInventoryItemID)
	}
	if m.FieldCleared(externalrecord.FieldDeletedAt) {
		fields = append(fields, externalrecord.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExternalRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExternalRecordMutation) ClearField(name string) error {
	switch name {
	case externalrecord.FieldLegacyExternalID:
		m.ClearLegacyExternalID()
		return nil
	case externalrecord.FieldCounterparty:
		m.ClearCounterparty()
		return nil
	case externalrecord.FieldItemTitle:
		m.ClearItemTitle()
		return nil
	case externalrecord.FieldItemSku:
		m.ClearItemSku()
		return nil
	case externalrecord.FieldInventoryItemID:
		m.ClearInventoryItemID()
		return nil
	case externalrecord.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExternalRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExternalRecordMutation) ResetField(name string) error {
	switch name {
	case externalrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case externalrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case externalrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case externalrecord.FieldProvider:
		m.ResetProvider()
		return nil
	case externalrecord.FieldRecordType:
		m.ResetRecordType()
		return nil
	case externalrecord.FieldExternalID:
		m.ResetExternalID()
		return nil
	case externalrecord.FieldLegacyExternalID:
		m.ResetLegacyExternalID()
		return nil
	case externalrecord.FieldTransactionDate:
		m.ResetTransactionDate()
		return nil
	case externalrecord.FieldCounterparty:
		m.ResetCounterparty()
		return nil
	case externalrecord.FieldCurrency:
		m.ResetCurrency()
		return nil
	case externalrecord.FieldGrossCents:
		m.ResetGrossCents()
		return nil
	case externalrecord.FieldFeeCents:
		m.ResetFeeCents()
		return nil
	case externalrecord.FieldShippingCents:
		m.ResetShippingCents()
		return nil
	case externalrecord.FieldNetCents:
		m.ResetNetCents()
		return nil
	case externalrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case externalrecord.FieldItemTitle:
		m.ResetItemTitle()
		return nil
	case externalrecord.FieldItemSku:
		m.ResetItemSku()
		return nil
	case externalrecord.FieldInventoryItemID:
		m.ResetInventoryItemID()
		return nil
	case externalrecord.FieldLastSyncedAt:
		m.ResetLastSyncedAt()
		return nil
	case externalrecord.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExternalRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExternalRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExternalRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExternalRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExternalRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExternalRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExternalRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExternalRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExternalRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExternalRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExternalRecord edge %s", name)
}

// InventoryItemMutation represents an operation that mutates the InventoryItem nodes in the graph.
type InventoryItemMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	updated_at        *time.Time
	user_id           *int64
	adduser_id        *int64
	name              *string
	sku               *string
	marketplace_sku   *string
	status            *string
	currency          *string
	purchase_cents    *int64
	addpurchase_cents *int64
	sold_at           *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*InventoryItem, error)
	predicates        []predicate.InventoryItem
}

var _ ent.Mutation = (*InventoryItemMutation)(nil)

// inventoryitemOption allows management of the mutation configuration using functional options.
type inventoryitemOption func(*InventoryItemMutation)

// newInventoryItemMutation creates new mutation for the InventoryItem entity.
func newInventoryItemMutation(c config, op Op, opts ...inventoryitemOption) *InventoryItemMutation {
	m := &InventoryItemMutation{
		config:        c,
		op:            op,
		typ:           TypeInventoryItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInventoryItemID sets the ID field of the mutation.
func withInventoryItemID(id int) inventoryitemOption {
	return func(m *InventoryItemMutation) {
		var (
			err   error
			once  sync.Once
			value *InventoryItem
		)
		m.oldValue = func(ctx context.Context) (*InventoryItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InventoryItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInventoryItem sets the old InventoryItem of the mutation.
func withInventoryItem(node *InventoryItem) inventoryitemOption {
	return func(m *InventoryItemMutation) {
		m.oldValue = func(context.Context) (*InventoryItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InventoryItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InventoryItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InventoryItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InventoryItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InventoryItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InventoryItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InventoryItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InventoryItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InventoryItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InventoryItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InventoryItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *InventoryItemMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InventoryItemMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *InventoryItemMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *InventoryItemMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InventoryItemMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetName sets the "name" field.
func (m *InventoryItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InventoryItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *InventoryItemMutation) ResetName() {
	m.name = nil
}

// SetSku sets the "sku" field.
func (m *InventoryItemMutation) SetSku(s string) {
	m.sku = &s
}

// Sku returns the value of the "sku" field in the mutation.
func (m *InventoryItemMutation) Sku() (r string, exists bool) {
	v := m.sku
	if v == nil {
		return
	}
	return *v, true
}

// OldSku returns the old "sku" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldSku(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSku: %w", err)
	}
	return oldValue.Sku, nil
}

// ClearSku clears the value of the "sku" field.
func (m *InventoryItemMutation) ClearSku() {
	m.sku = nil
	m.clearedFields[inventoryitem.FieldSku] = struct{}{}
}

// SkuCleared returns if the "sku" field was cleared in this mutation.
func (m *InventoryItemMutation) SkuCleared() bool {
	_, ok := m.clearedFields[inventoryitem.FieldSku]
	return ok
}

// ResetSku resets all changes to the "sku" field.
func (m *InventoryItemMutation) ResetSku() {
	m.sku = nil
	delete(m.clearedFields, inventoryitem.FieldSku)
}

// SetMarketplaceSku sets the "marketplace_sku" field.
func (m *InventoryItemMutation) SetMarketplaceSku(s string) {
	m.marketplace_sku = &s
}

// MarketplaceSku returns the value of the "marketplace_sku" field in the mutation.
func (m *InventoryItemMutation) MarketplaceSku() (r string, exists bool) {
	v := m.marketplace_sku
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketplaceSku returns the old "marketplace_sku" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldMarketplaceSku(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketplaceSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketplaceSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketplaceSku: %w", err)
	}
	return oldValue.MarketplaceSku, nil
}

// ClearMarketplaceSku clears the value of the "marketplace_sku" field.
func (m *InventoryItemMutation) ClearMarketplaceSku() {
	m.marketplace_sku = nil
	m.clearedFields[inventoryitem.FieldMarketplaceSku] = struct{}{}
}

// MarketplaceSkuCleared returns if the "marketplace_sku" field was cleared in this mutation.
func (m *InventoryItemMutation) MarketplaceSkuCleared() bool {
	_, ok := m.clearedFields[inventoryitem.FieldMarketplaceSku]
	return ok
}

// ResetMarketplaceSku resets all changes to the "marketplace_sku" field.
func (m *InventoryItemMutation) ResetMarketplaceSku() {
	m.marketplace_sku = nil
	delete(m.clearedFields, inventoryitem.FieldMarketplaceSku)
}

// SetStatus sets the "status" field.
func (m *InventoryItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InventoryItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *InventoryItemMutation) ResetStatus() {
	m.status = nil
}

// SetCurrency sets the "currency" field.
func (m *InventoryItemMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *InventoryItemMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *InventoryItemMutation) ResetCurrency() {
	m.currency = nil
}

// SetPurchaseCents sets the "purchase_cents" field.
func (m *InventoryItemMutation) SetPurchaseCents(i int64) {
	m.purchase_cents = &i
	m.addpurchase_cents = nil
}

// PurchaseCents returns the value of the "purchase_cents" field in the mutation.
func (m *InventoryItemMutation) PurchaseCents() (r int64, exists bool) {
	v := m.purchase_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseCents returns the old "purchase_cents" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldPurchaseCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseCents: %w", err)
	}
	return oldValue.PurchaseCents, nil
}

// AddPurchaseCents adds i to the "purchase_cents" field.
func (m *InventoryItemMutation) AddPurchaseCents(i int64) {
	if m.addpurchase_cents != nil {
		*m.addpurchase_cents += i
	} else {
		m.addpurchase_cents = &i
	}
}

// AddedPurchaseCents returns the value that was added to the "purchase_cents" field in this mutation.
func (m *InventoryItemMutation) AddedPurchaseCents() (r int64, exists bool) {
	v := m.addpurchase_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetPurchaseCents resets all changes to the "purchase_cents" field.
func (m *InventoryItemMutation) ResetPurchaseCents() {
	m.purchase_cents = nil
	m.addpurchase_cents = nil
}

// SetSoldAt sets the "sold_at" field.
func (m *InventoryItemMutation) SetSoldAt(t time.Time) {
	m.sold_at = &t
}

// SoldAt returns the value of the "sold_at" field in the mutation.
func (m *InventoryItemMutation) SoldAt() (r time.Time, exists bool) {
	v := m.sold_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSoldAt returns the old "sold_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldSoldAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoldAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoldAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoldAt: %w", err)
	}
	return oldValue.SoldAt, nil
}

// ClearSoldAt clears the value of the "sold_at" field.
func (m *InventoryItemMutation) ClearSoldAt() {
	m.sold_at = nil
	m.clearedFields[inventoryitem.FieldSoldAt] = struct{}{}
}

// SoldAtCleared returns if the "sold_at" field was cleared in this mutation.
func (m *InventoryItemMutation) SoldAtCleared() bool {
	_, ok := m.clearedFields[inventoryitem.FieldSoldAt]
	return ok
}

// ResetSoldAt resets all changes to the "sold_at" field.
func (m *InventoryItemMutation) ResetSoldAt() {
	m.sold_at = nil
	delete(m.clearedFields, inventoryitem.FieldSoldAt)
}

// Where appends a list predicates to the InventoryItemMutation builder.
func (m *InventoryItemMutation) Where(ps ...predicate.InventoryItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InventoryItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InventoryItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InventoryItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InventoryItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InventoryItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InventoryItem).
func (m *InventoryItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InventoryItemMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, inventoryitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, inventoryitem.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, inventoryitem.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, inventoryitem.FieldName)
	}
	if m.sku != nil {
		fields = append(fields, inventoryitem.FieldSku)
	}
	if m.marketplace_sku != nil {
		fields = append(fields, inventoryitem.FieldMarketplaceSku)
	}
	if m.status != nil {
		fields = append(fields, inventoryitem.FieldStatus)
	}
	if m.currency != nil {
		fields = append(fields, inventoryitem.FieldCurrency)
	}
	if m.purchase_cents != nil {
		fields = append(fields, inventoryitem.FieldPurchaseCents)
	}
	if m.sold_at != nil {
		fields = append(fields, inventoryitem.FieldSoldAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InventoryItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inventoryitem.FieldCreatedAt:
		return m.CreatedAt()
	case inventoryitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case inventoryitem.FieldUserID:
		return m.UserID()
	case inventoryitem.FieldName:
		return m.Name()
	case inventoryitem.FieldSku:
		return m.Sku()
	case inventoryitem.FieldMarketplaceSku:
		return m.MarketplaceSku()
	case inventoryitem.FieldStatus:
		return m.Status()
	case inventoryitem.FieldCurrency:
		return m.Currency()
	case inventoryitem.FieldPurchaseCents:
		return m.PurchaseCents()
	case inventoryitem.FieldSoldAt:
		return m.SoldAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InventoryItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inventoryitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case inventoryitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case inventoryitem.FieldUserID:
		return m.OldUserID(ctx)
	case inventoryitem.FieldName:
		return m.OldName(ctx)
	case inventoryitem.FieldSku:
		return m.OldSku(ctx)
	case inventoryitem.FieldMarketplaceSku:
		return m.OldMarketplaceSku(ctx)
	case inventoryitem.FieldStatus:
		return m.OldStatus(ctx)
	case inventoryitem.FieldCurrency:
		return m.OldCurrency(ctx)
	case inventoryitem.FieldPurchaseCents:
		return m.OldPurchaseCents(ctx)
	case inventoryitem.FieldSoldAt:
		return m.OldSoldAt(ctx)
	}
	return nil, fmt.Errorf("unknown InventoryItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inventoryitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case inventoryitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case inventoryitem.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case inventoryitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case inventoryitem.FieldSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSku(v)
		return nil
	case inventoryitem.FieldMarketplaceSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketplaceSku(v)
		return nil
	case inventoryitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case inventoryitem.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case inventoryitem.FieldPurchaseCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseCents(v)
		return nil
	case inventoryitem.FieldSoldAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoldAt(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InventoryItemMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, inventoryitem.FieldUserID)
	}
	if m.addpurchase_cents != nil {
		fields = append(fields, inventoryitem.FieldPurchaseCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InventoryItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inventoryitem.FieldUserID:
		return m.AddedUserID()
	case inventoryitem.FieldPurchaseCents:
		return m.AddedPurchaseCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inventoryitem.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case inventoryitem.FieldPurchaseCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPurchaseCents(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InventoryItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inventoryitem.FieldSku) {
		fields = append(fields, inventoryitem.FieldSku)
	}
	if m.FieldCleared(inventoryitem.FieldMarketplaceSku) {
		fields = append(fields, inventoryitem.FieldMarketplaceSku)
	}
	if m.FieldCleared(inventoryitem.FieldSoldAt) {
		fields = append(fields, inventoryitem.FieldSoldAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InventoryItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InventoryItemMutation) ClearField(name string) error {
	switch name {
	case inventoryitem.FieldSku:
		m.ClearSku()
		return nil
	case inventoryitem.FieldMarketplaceSku:
		m.ClearMarketplaceSku()
		return nil
	case inventoryitem.FieldSoldAt:
		m.ClearSoldAt()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InventoryItemMutation) ResetField(name string) error {
	switch name {
	case inventoryitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case inventoryitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case inventoryitem.FieldUserID:
		m.ResetUserID()
		return nil
	case inventoryitem.FieldName:
		m.ResetName()
		return nil
	case inventoryitem.FieldSku:
		m.ResetSku()
		return nil
	case inventoryitem.FieldMarketplaceSku:
		m.ResetMarketplaceSku()
		return nil
	case inventoryitem.FieldStatus:
		m.ResetStatus()
		return nil
	case inventoryitem.FieldCurrency:
		m.ResetCurrency()
		return nil
	case inventoryitem.FieldPurchaseCents:
		m.ResetPurchaseCents()
		return nil
	case inventoryitem.FieldSoldAt:
		m.ResetSoldAt()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InventoryItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InventoryItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InventoryItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InventoryItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InventoryItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InventoryItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InventoryItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InventoryItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InventoryItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InventoryItem edge %s", name)
}

// MarketplaceCredentialMutation represents an operation that mutates the MarketplaceCredential nodes in the graph.
type MarketplaceCredentialMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	created_at               *time.Time
	updated_at               *time.Time
	user_id                  *int64
	adduser_id               *int64
	provider                 *string
	access_token_cipher      *string
	refresh_token_cipher     *string
	access_token_expires_at  *time.Time
	refresh_token_expires_at *time.Time
	connected                *bool
	external_account_id      *string
	account_display_name     *string
	scope                    *string
	last_synced_at           *time.Time
	last_sync_error          *string
	sync_version             *int64
	addsync_version          *int64
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*MarketplaceCredential, error)
	predicates               []predicate.MarketplaceCredential
}

var _ ent.Mutation = (*MarketplaceCredentialMutation)(nil)

// marketplacecredentialOption allows management of the mutation configuration using functional options.
type marketplacecredentialOption func(*MarketplaceCredentialMutation)

// newMarketplaceCredentialMutation creates new mutation for the MarketplaceCredential entity.
func newMarketplaceCredentialMutation(c config, op Op, opts ...marketplacecredentialOption) *MarketplaceCredentialMutation {
	m := &MarketplaceCredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeMarketplaceCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMarketplaceCredentialID sets the ID field of the mutation.
func withMarketplaceCredentialID(id int) marketplacecredentialOption {
	return func(m *MarketplaceCredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *MarketplaceCredential
		)
		m.oldValue = func(ctx context.Context) (*MarketplaceCredential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MarketplaceCredential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMarketplaceCredential sets the old MarketplaceCredential of the mutation.
func withMarketplaceCredential(node *MarketplaceCredential) marketplacecredentialOption {
	return func(m *MarketplaceCredentialMutation) {
		m.oldValue = func(context.Context) (*MarketplaceCredential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MarketplaceCredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MarketplaceCredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MarketplaceCredentialMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MarketplaceCredentialMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MarketplaceCredential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MarketplaceCredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MarketplaceCredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MarketplaceCredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MarketplaceCredentialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MarketplaceCredentialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MarketplaceCredentialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *MarketplaceCredentialMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MarketplaceCredentialMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *MarketplaceCredentialMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *MarketplaceCredentialMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MarketplaceCredentialMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetProvider sets the "provider" field.
func (m *MarketplaceCredentialMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *MarketplaceCredentialMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldProvider(ctx context.Context) (v string, err error) {
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
func (m *MarketplaceCredentialMutation) ResetProvider() {
	m.provider = nil
}

// SetAccessTokenCipher sets the "access_token_cipher" field.
func (m *MarketplaceCredentialMutation) SetAccessTokenCipher(s string) {
	m.access_token_cipher = &s
}

// AccessTokenCipher returns the value of the "access_token_cipher" field in the mutation.
func (m *MarketplaceCredentialMutation) AccessTokenCipher() (r string, exists bool) {
	v := m.access_token_cipher
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessTokenCipher returns the old "access_token_cipher" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldAccessTokenCipher(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessTokenCipher is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessTokenCipher requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessTokenCipher: %w", err)
	}
	return oldValue.AccessTokenCipher, nil
}

// ClearAccessTokenCipher clears the value of the "access_token_cipher" field.
func (m *MarketplaceCredentialMutation) ClearAccessTokenCipher() {
	m.access_token_cipher = nil
	m.clearedFields[marketplacecredential.FieldAccessTokenCipher] = struct{}{}
}

// AccessTokenCipherCleared returns if the "access_token_cipher" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) AccessTokenCipherCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldAccessTokenCipher]
	return ok
}

// ResetAccessTokenCipher resets all changes to the "access_token_cipher" field.
func (m *MarketplaceCredentialMutation) ResetAccessTokenCipher() {
	m.access_token_cipher = nil
	delete(m.clearedFields, marketplacecredential.FieldAccessTokenCipher)
}

// SetRefreshTokenCipher sets the "refresh_token_cipher" field.
func (m *MarketplaceCredentialMutation) SetRefreshTokenCipher(s string) {
	m.refresh_token_cipher = &s
}

// RefreshTokenCipher returns the value of the "refresh_token_cipher" field in the mutation.
func (m *MarketplaceCredentialMutation) RefreshTokenCipher() (r string, exists bool) {
	v := m.refresh_token_cipher
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenCipher returns the old "refresh_token_cipher" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldRefreshTokenCipher(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenCipher is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenCipher requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenCipher: %w", err)
	}
	return oldValue.RefreshTokenCipher, nil
}

// ClearRefreshTokenCipher clears the value of the "refresh_token_cipher" field.
func (m *MarketplaceCredentialMutation) ClearRefreshTokenCipher() {
	m.refresh_token_cipher = nil
	m.clearedFields[marketplacecredential.FieldRefreshTokenCipher] = struct{}{}
}

// RefreshTokenCipherCleared returns if the "refresh_token_cipher" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) RefreshTokenCipherCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldRefreshTokenCipher]
	return ok
}

// ResetRefreshTokenCipher resets all changes to the "refresh_token_cipher" field.
func (m *MarketplaceCredentialMutation) ResetRefreshTokenCipher() {
	m.refresh_token_cipher = nil
	delete(m.clearedFields, marketplacecredential.FieldRefreshTokenCipher)
}

// SetAccessTokenExpiresAt sets the "access_token_expires_at" field.
func (m *MarketplaceCredentialMutation) SetAccessTokenExpiresAt(t time.Time) {
	m.access_token_expires_at = &t
}

// AccessTokenExpiresAt returns the value of the "access_token_expires_at" field in the mutation.
func (m *MarketplaceCredentialMutation) AccessTokenExpiresAt() (r time.Time, exists bool) {
	v := m.access_token_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessTokenExpiresAt returns the old "access_token_expires_at" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldAccessTokenExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessTokenExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessTokenExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessTokenExpiresAt: %w", err)
	}
	return oldValue.AccessTokenExpiresAt, nil
}

// ClearAccessTokenExpiresAt clears the value of the "access_token_expires_at" field.
func (m *MarketplaceCredentialMutation) ClearAccessTokenExpiresAt() {
	m.access_token_expires_at = nil
	m.clearedFields[marketplacecredential.FieldAccessTokenExpiresAt] = struct{}{}
}

// AccessTokenExpiresAtCleared returns if the "access_token_expires_at" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) AccessTokenExpiresAtCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldAccessTokenExpiresAt]
	return ok
}

// ResetAccessTokenExpiresAt resets all changes to the "access_token_expires_at" field.
func (m *MarketplaceCredentialMutation) ResetAccessTokenExpiresAt() {
	m.access_token_expires_at = nil
	delete(m.clearedFields, marketplacecredential.FieldAccessTokenExpiresAt)
}

// SetRefreshTokenExpiresAt sets the "refresh_token_expires_at" field.
func (m *MarketplaceCredentialMutation) SetRefreshTokenExpiresAt(t time.Time) {
	m.refresh_token_expires_at = &t
}

// RefreshTokenExpiresAt returns the value of the "refresh_token_expires_at" field in the mutation.
func (m *MarketplaceCredentialMutation) RefreshTokenExpiresAt() (r time.Time, exists bool) {
	v := m.refresh_token_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenExpiresAt returns the old "refresh_token_expires_at" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldRefreshTokenExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenExpiresAt: %w", err)
	}
	return oldValue.RefreshTokenExpiresAt, nil
}

// ClearRefreshTokenExpiresAt clears the value of the "refresh_token_expires_at" field.
func (m *MarketplaceCredentialMutation) ClearRefreshTokenExpiresAt() {
	m.refresh_token_expires_at = nil
	m.clearedFields[marketplacecredential.FieldRefreshTokenExpiresAt] = struct{}{}
}

// RefreshTokenExpiresAtCleared returns if the "refresh_token_expires_at" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) RefreshTokenExpiresAtCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldRefreshTokenExpiresAt]
	return ok
}

// ResetRefreshTokenExpiresAt resets all changes to the "refresh_token_expires_at" field.
func (m *MarketplaceCredentialMutation) ResetRefreshTokenExpiresAt() {
	m.refresh_token_expires_at = nil
	delete(m.clearedFields, marketplacecredential.FieldRefreshTokenExpiresAt)
}

// SetConnected sets the "connected" field.
func (m *MarketplaceCredentialMutation) SetConnected(b bool) {
	m.connected = &b
}

// Connected returns the value of the "connected" field in the mutation.
func (m *MarketplaceCredentialMutation) Connected() (r bool, exists bool) {
	v := m.connected
	if v == nil {
		return
	}
	return *v, true
}

// OldConnected returns the old "connected" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldConnected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnected: %w", err)
	}
	return oldValue.Connected, nil
}

// ResetConnected resets all changes to the "connected" field.
func (m *MarketplaceCredentialMutation) ResetConnected() {
	m.connected = nil
}

// SetExternalAccountID sets the "external_account_id" field.
func (m *MarketplaceCredentialMutation) SetExternalAccountID(s string) {
	m.external_account_id = &s
}

// ExternalAccountID returns the value of the "external_account_id" field in the mutation.
func (m *MarketplaceCredentialMutation) ExternalAccountID() (r string, exists bool) {
	v := m.external_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalAccountID returns the old "external_account_id" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldExternalAccountID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalAccountID: %w", err)
	}
	return oldValue.ExternalAccountID, nil
}

// ClearExternalAccountID clears the value of the "external_account_id" field.
func (m *MarketplaceCredentialMutation) ClearExternalAccountID() {
	m.external_account_id = nil
	m.clearedFields[marketplacecredential.FieldExternalAccountID] = struct{}{}
}

// ExternalAccountIDCleared returns if the "external_account_id" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) ExternalAccountIDCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldExternalAccountID]
	return ok
}

// ResetExternalAccountID resets all changes to the "external_account_id" field.
func (m *MarketplaceCredentialMutation) ResetExternalAccountID() {
	m.external_account_id = nil
	delete(m.clearedFields, marketplacecredential.FieldExternalAccountID)
}

// SetAccountDisplayName sets the "account_display_name" field.
func (m *MarketplaceCredentialMutation) SetAccountDisplayName(s string) {
	m.account_display_name = &s
}

// AccountDisplayName returns the value of the "account_display_name" field in the mutation.
func (m *MarketplaceCredentialMutation) AccountDisplayName() (r string, exists bool) {
	v := m.account_display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountDisplayName returns the old "account_display_name" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldAccountDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountDisplayName: %w", err)
	}
	return oldValue.AccountDisplayName, nil
}

// ClearAccountDisplayName clears the value of the "account_display_name" field.
func (m *MarketplaceCredentialMutation) ClearAccountDisplayName() {
	m.account_display_name = nil
	m.clearedFields[marketplacecredential.FieldAccountDisplayName] = struct{}{}
}

// AccountDisplayNameCleared returns if the "account_display_name" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) AccountDisplayNameCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldAccountDisplayName]
	return ok
}

// ResetAccountDisplayName resets all changes to the "account_display_name" field.
func (m *MarketplaceCredentialMutation) ResetAccountDisplayName() {
	m.account_display_name = nil
	delete(m.clearedFields, marketplacecredential.FieldAccountDisplayName)
}

// SetScope sets the "scope" field.
func (m *MarketplaceCredentialMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *MarketplaceCredentialMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldScope(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ClearScope clears the value of the "scope" field.
func (m *MarketplaceCredentialMutation) ClearScope() {
	m.scope = nil
	m.clearedFields[marketplacecredential.FieldScope] = struct{}{}
}

// ScopeCleared returns if the "scope" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) ScopeCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldScope]
	return ok
}

// ResetScope resets all changes to the "scope" field.
func (m *MarketplaceCredentialMutation) ResetScope() {
	m.scope = nil
	delete(m.clearedFields, marketplacecredential.FieldScope)
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (m *MarketplaceCredentialMutation) SetLastSyncedAt(t time.Time) {
	m.last_synced_at = &t
}

// LastSyncedAt returns the value of the "last_synced_at" field in the mutation.
func (m *MarketplaceCredentialMutation) LastSyncedAt() (r time.Time, exists bool) {
	v := m.last_synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncedAt returns the old "last_synced_at" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldLastSyncedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncedAt: %w", err)
	}
	return oldValue.LastSyncedAt, nil
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (m *MarketplaceCredentialMutation) ClearLastSyncedAt() {
	m.last_synced_at = nil
	m.clearedFields[marketplacecredential.FieldLastSyncedAt] = struct{}{}
}

// LastSyncedAtCleared returns if the "last_synced_at" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) LastSyncedAtCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldLastSyncedAt]
	return ok
}

// ResetLastSyncedAt resets all changes to the "last_synced_at" field.
func (m *MarketplaceCredentialMutation) ResetLastSyncedAt() {
	m.last_synced_at = nil
	delete(m.clearedFields, marketplacecredential.FieldLastSyncedAt)
}

// SetLastSyncError sets the "last_sync_error" field.
func (m *MarketplaceCredentialMutation) SetLastSyncError(s string) {
	m.last_sync_error = &s
}

// LastSyncError returns the value of the "last_sync_error" field in the mutation.
func (m *MarketplaceCredentialMutation) LastSyncError() (r string, exists bool) {
	v := m.last_sync_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncError returns the old "last_sync_error" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldLastSyncError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncError: %w", err)
	}
	return oldValue.LastSyncError, nil
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (m *MarketplaceCredentialMutation) ClearLastSyncError() {
	m.last_sync_error = nil
	m.clearedFields[marketplacecredential.FieldLastSyncError] = struct{}{}
}

// LastSyncErrorCleared returns if the "last_sync_error" field was cleared in this mutation.
func (m *MarketplaceCredentialMutation) LastSyncErrorCleared() bool {
	_, ok := m.clearedFields[marketplacecredential.FieldLastSyncError]
	return ok
}

// ResetLastSyncError resets all changes to the "last_sync_error" field.
func (m *MarketplaceCredentialMutation) ResetLastSyncError() {
	m.last_sync_error = nil
	delete(m.clearedFields, marketplacecredential.FieldLastSyncError)
}

// SetSyncVersion sets the "sync_version" field.
func (m *MarketplaceCredentialMutation) SetSyncVersion(i int64) {
	m.sync_version = &i
	m.addsync_version = nil
}

// SyncVersion returns the value of the "sync_version" field in the mutation.
func (m *MarketplaceCredentialMutation) SyncVersion() (r int64, exists bool) {
	v := m.sync_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncVersion returns the old "sync_version" field's value of the MarketplaceCredential entity.
// If the MarketplaceCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceCredentialMutation) OldSyncVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncVersion: %w", err)
	}
	return oldValue.SyncVersion, nil
}

// AddSyncVersion adds i to the "sync_version" field.
func (m *MarketplaceCredentialMutation) AddSyncVersion(i int64) {
	if m.addsync_version != nil {
		*m.addsync_version += i
	} else {
		m.addsync_version = &i
	}
}

// AddedSyncVersion returns the value that was added to the "sync_version" field in this mutation.
func (m *MarketplaceCredentialMutation) AddedSyncVersion() (r int64, exists bool) {
	v := m.addsync_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSyncVersion resets all changes to the "sync_version" field.
func (m *MarketplaceCredentialMutation) ResetSyncVersion() {
	m.sync_version = nil
	m.addsync_version = nil
}

// Where appends a list predicates to the MarketplaceCredentialMutation builder.
func (m *MarketplaceCredentialMutation) Where(ps ...predicate.MarketplaceCredential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MarketplaceCredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MarketplaceCredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MarketplaceCredential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MarketplaceCredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MarketplaceCredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MarketplaceCredential).
func (m *MarketplaceCredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MarketplaceCredentialMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, marketplacecredential.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, marketplacecredential.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, marketplacecredential.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, marketplacecredential.FieldProvider)
	}
	if m.access_token_cipher != nil {
		fields = append(fields, marketplacecredential.FieldAccessTokenCipher)
	}
	if m.refresh_token_cipher != nil {
		fields = append(fields, marketplacecredential.FieldRefreshTokenCipher)
	}
	if m.access_token_expires_at != nil {
		fields = append(fields, marketplacecredential.FieldAccessTokenExpiresAt)
	}
	if m.refresh_token_expires_at != nil {
		fields = append(fields, marketplacecredential.FieldRefreshTokenExpiresAt)
	}
	if m.connected != nil {
		fields = append(fields, marketplacecredential.FieldConnected)
	}
	if m.external_account_id != nil {
		fields = append(fields, marketplacecredential.FieldExternalAccountID)
	}
	if m.account_display_name != nil {
		fields = append(fields, marketplacecredential.FieldAccountDisplayName)
	}
	if m.scope != nil {
		fields = append(fields, marketplacecredential.FieldScope)
	}
	if m.last_synced_at != nil {
		fields = append(fields, marketplacecredential.FieldLastSyncedAt)
	}
	if m.last_sync_error != nil {
		fields = append(fields, marketplacecredential.FieldLastSyncError)
	}
	if m.sync_version != nil {
		fields = append(fields, marketplacecredential.FieldSyncVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MarketplaceCredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case marketplacecredential.FieldCreatedAt:
		return m.CreatedAt()
	case marketplacecredential.FieldUpdatedAt:
		return m.UpdatedAt()
	case marketplacecredential.FieldUserID:
		return m.UserID()
	case marketplacecredential.FieldProvider:
		return m.Provider()
	case marketplacecredential.FieldAccessTokenCipher:
		return m.AccessTokenCipher()
	case marketplacecredential.FieldRefreshTokenCipher:
		return m.RefreshTokenCipher()
	case marketplacecredential.FieldAccessTokenExpiresAt:
		return m.AccessTokenExpiresAt()
	case marketplacecredential.FieldRefreshTokenExpiresAt:
		return m.RefreshTokenExpiresAt()
	case marketplacecredential.FieldConnected:
		return m.Connected()
	case marketplacecredential.FieldExternalAccountID:
		return m.ExternalAccountID()
	case marketplacecredential.FieldAccountDisplayName:
		return m.AccountDisplayName()
	case marketplacecredential.FieldScope:
		return m.Scope()
	case marketplacecredential.FieldLastSyncedAt:
		return m.LastSyncedAt()
	case marketplacecredential.FieldLastSyncError:
		return m.LastSyncError()
	case marketplacecredential.FieldSyncVersion:
		return m.SyncVersion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MarketplaceCredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case marketplacecredential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case marketplacecredential.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case marketplacecredential.FieldUserID:
		return m.OldUserID(ctx)
	case marketplacecredential.FieldProvider:
		return m.OldProvider(ctx)
	case marketplacecredential.FieldAccessTokenCipher:
		return m.OldAccessTokenCipher(ctx)
	case marketplacecredential.FieldRefreshTokenCipher:
		return m.OldRefreshTokenCipher(ctx)
	case marketplacecredential.FieldAccessTokenExpiresAt:
		return m.OldAccessTokenExpiresAt(ctx)
	case marketplacecredential.FieldRefreshTokenExpiresAt:
		return m.OldRefreshTokenExpiresAt(ctx)
	case marketplacecredential.FieldConnected:
		return m.OldConnected(ctx)
	case marketplacecredential.FieldExternalAccountID:
		return m.OldExternalAccountID(ctx)
	case marketplacecredential.FieldAccountDisplayName:
		return m.OldAccountDisplayName(ctx)
	case marketplacecredential.FieldScope:
		return m.OldScope(ctx)
	case marketplacecredential.FieldLastSyncedAt:
		return m.OldLastSyncedAt(ctx)
	case marketplacecredential.FieldLastSyncError:
		return m.OldLastSyncError(ctx)
	case marketplacecredential.FieldSyncVersion:
		return m.OldSyncVersion(ctx)
	}
	return nil, fmt.Errorf("unknown MarketplaceCredential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketplaceCredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case marketplacecredential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case marketplacecredential.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case marketplacecredential.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case marketplacecredential.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case marketplacecredential.FieldAccessTokenCipher:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessTokenCipher(v)
		return nil
	case marketplacecredential.FieldRefreshTokenCipher:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenCipher(v)
		return nil
	case marketplacecredential.FieldAccessTokenExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessTokenExpiresAt(v)
		return nil
	case marketplacecredential.FieldRefreshTokenExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenExpiresAt(v)
		return nil
	case marketplacecredential.FieldConnected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnected(v)
		return nil
	case marketplacecredential.FieldExternalAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalAccountID(v)
		return nil
	case marketplacecredential.FieldAccountDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountDisplayName(v)
		return nil
	case marketplacecredential.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case marketplacecredential.FieldLastSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncedAt(v)
		return nil
	case marketplacecredential.FieldLastSyncError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncError(v)
		return nil
	case marketplacecredential.FieldSyncVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncVersion(v)
		return nil
	}
	return fmt.Errorf("unknown MarketplaceCredential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MarketplaceCredentialMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, marketplacecredential.FieldUserID)
	}
	if m.addsync_version != nil {
		fields = append(fields, marketplacecredential.FieldSyncVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MarketplaceCredentialMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case marketplacecredential.FieldUserID:
		return m.AddedUserID()
	case marketplacecredential.FieldSyncVersion:
		return m.AddedSyncVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketplaceCredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	case marketplacecredential.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case marketplacecredential.FieldSyncVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSyncVersion(v)
		return nil
	}
	return fmt.Errorf("unknown MarketplaceCredential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MarketplaceCredentialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(marketplacecredential.FieldAccessTokenCipher) {
		fields = append(fields, marketplacecredential.FieldAccessTokenCipher)
	}
	if m.FieldCleared(marketplacecredential.FieldRefreshTokenCipher) {
		fields = append(fields, marketplacecredential.FieldRefreshTokenCipher)
	}
	if m.FieldCleared(marketplacecredential.FieldAccessTokenExpiresAt) {
		fields = append(fields, marketplacecredential.FieldAccessTokenExpiresAt)
	}
	if m.FieldCleared(marketplacecredential.FieldRefreshTokenExpiresAt) {
		fields = append(fields, marketplacecredential.FieldRefreshTokenExpiresAt)
	}
	if m.FieldCleared(marketplacecredential.FieldExternalAccountID) {
		fields = append(fields, marketplacecredential.FieldExternalAccountID)
	}
	if m.FieldCleared(marketplacecredential.FieldAccountDisplayName) {
		fields = append(fields, marketplacecredential.FieldAccountDisplayName)
	}
	if m.FieldCleared(marketplacecredential.FieldScope) {
		fields = append(fields, marketplacecredential.FieldScope)
	}
	if m.FieldCleared(marketplacecredential.FieldLastSyncedAt) {
		fields = append(fields, marketplacecredential.FieldLastSyncedAt)
	}
	if m.FieldCleared(marketplacecredential.FieldLastSyncError) {
		fields = append(fields, marketplacecredential.FieldLastSyncError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MarketplaceCredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MarketplaceCredentialMutation) ClearField(name string) error {
	switch name {
	case marketplacecredential.FieldAccessTokenCipher:
		m.ClearAccessTokenCipher()
		return nil
	case marketplacecredential.FieldRefreshTokenCipher:
		m.ClearRefreshTokenCipher()
		return nil
	case marketplacecredential.FieldAccessTokenExpiresAt:
		m.ClearAccessTokenExpiresAt()
		return nil
	case marketplacecredential.FieldRefreshTokenExpiresAt:
		m.ClearRefreshTokenExpiresAt()
		return nil
	case marketplacecredential.FieldExternalAccountID:
		m.ClearExternalAccountID()
		return nil
	case marketplacecredential.FieldAccountDisplayName:
		m.ClearAccountDisplayName()
		return nil
	case marketplacecredential.FieldScope:
		m.ClearScope()
		return nil
	case marketplacecredential.FieldLastSyncedAt:
		m.ClearLastSyncedAt()
		return nil
	case marketplacecredential.FieldLastSyncError:
		m.ClearLastSyncError()
		return nil
	}
	return fmt.Errorf("unknown MarketplaceCredential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MarketplaceCredentialMutation) ResetField(name string) error {
	switch name {
	case marketplacecredential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case marketplacecredential.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case marketplacecredential.FieldUserID:
		m.ResetUserID()
		return nil
	case marketplacecredential.FieldProvider:
		m.ResetProvider()
		return nil
	case marketplacecredential.FieldAccessTokenCipher:
		m.ResetAccessTokenCipher()
		return nil
	case marketplacecredential.FieldRefreshTokenCipher:
		m.ResetRefreshTokenCipher()
		return nil
	case marketplacecredential.FieldAccessTokenExpiresAt:
		m.ResetAccessTokenExpiresAt()
		return nil
	case marketplacecredential.FieldRefreshTokenExpiresAt:
		m.ResetRefreshTokenExpiresAt()
		return nil
	case marketplacecredential.FieldConnected:
		m.ResetConnected()
		return nil
	case marketplacecredential.FieldExternalAccountID:
		m.ResetExternalAccountID()
		return nil
	case marketplacecredential.FieldAccountDisplayName:
		m.ResetAccountDisplayName()
		return nil
	case marketplacecredential.FieldScope:
		m.ResetScope()
		return nil
	case marketplacecredential.FieldLastSyncedAt:
		m.ResetLastSyncedAt()
		return nil
	case marketplacecredential.FieldLastSyncError:
		m.ResetLastSyncError()
		return nil
	case marketplacecredential.FieldSyncVersion:
		m.ResetSyncVersion()
		return nil
	}
	return fmt.Errorf("unknown MarketplaceCredential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MarketplaceCredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MarketplaceCredentialMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MarketplaceCredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MarketplaceCredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MarketplaceCredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MarketplaceCredentialMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MarketplaceCredentialMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MarketplaceCredential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MarketplaceCredentialMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MarketplaceCredential edge %s", name)
}
