// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aaron-lee-hebert/seller-metrics/ent/externalrecord"
)

// ExternalRecordCreate is the builder for creating a ExternalRecord entity.
type ExternalRecordCreate struct {
	config
	mutation *ExternalRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExternalRecordCreate) SetCreatedAt(v time.Time) *ExternalRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableCreatedAt(v *time.Time) *ExternalRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExternalRecordCreate) SetUpdatedAt(v time.Time) *ExternalRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableUpdatedAt(v *time.Time) *ExternalRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExternalRecordCreate) SetUserID(v int64) *ExternalRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ExternalRecordCreate) SetProvider(v string) *ExternalRecordCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetRecordType sets the "record_type" field.
func (_c *ExternalRecordCreate) SetRecordType(v string) *ExternalRecordCreate {
	_c.mutation.SetRecordType(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *ExternalRecordCreate) SetExternalID(v string) *ExternalRecordCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetLegacyExternalID sets the "legacy_external_id" field.
func (_c *ExternalRecordCreate) SetLegacyExternalID(v string) *ExternalRecordCreate {
	_c.mutation.SetLegacyExternalID(v)
	return _c
}

// SetNillableLegacyExternalID sets the "legacy_external_id" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableLegacyExternalID(v *string) *ExternalRecordCreate {
	if v != nil {
		_c.SetLegacyExternalID(*v)
	}
	return _c
}

// SetTransactionDate sets the "transaction_date" field.
func (_c *ExternalRecordCreate) SetTransactionDate(v time.Time) *ExternalRecordCreate {
	_c.mutation.SetTransactionDate(v)
	return _c
}

// SetCounterparty sets the "counterparty" field.
func (_c *ExternalRecordCreate) SetCounterparty(v string) *ExternalRecordCreate {
	_c.mutation.SetCounterparty(v)
	return _c
}

// SetNillableCounterparty sets the "counterparty" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableCounterparty(v *string) *ExternalRecordCreate {
	if v != nil {
		_c.SetCounterparty(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ExternalRecordCreate) SetCurrency(v string) *ExternalRecordCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableCurrency(v *string) *ExternalRecordCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetGrossCents sets the "gross_cents" field.
func (_c *ExternalRecordCreate) SetGrossCents(v int64) *ExternalRecordCreate {
	_c.mutation.SetGrossCents(v)
	return _c
}

// SetNillableGrossCents sets the "gross_cents" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableGrossCents(v *int64) *ExternalRecordCreate {
	if v != nil {
		_c.SetGrossCents(*v)
	}
	return _c
}

// SetFeeCents sets the "fee_cents" field.
func (_c *ExternalRecordCreate) SetFeeCents(v int64) *ExternalRecordCreate {
	_c.mutation.SetFeeCents(v)
	return _c
}

// SetNillableFeeCents sets the "fee_cents" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableFeeCents(v *int64) *ExternalRecordCreate {
	if v != nil {
		_c.SetFeeCents(*v)
	}
	return _c
}

// SetShippingCents sets the "shipping_cents" field.
func (_c *ExternalRecordCreate) SetShippingCents(v int64) *ExternalRecordCreate {
	_c.mutation.SetShippingCents(v)
	return _c
}

// SetNillableShippingCents sets the "shipping_cents" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableShippingCents(v *int64) *ExternalRecordCreate {
	if v != nil {
		_c.SetShippingCents(*v)
	}
	return _c
}

// SetNetCents sets the "net_cents" field.
func (_c *ExternalRecordCreate) SetNetCents(v int64) *ExternalRecordCreate {
	_c.mutation.SetNetCents(v)
	return _c
}

// SetNillableNetCents sets the "net_cents" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableNetCents(v *int64) *ExternalRecordCreate {
	if v != nil {
		_c.SetNetCents(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExternalRecordCreate) SetStatus(v string) *ExternalRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetItemTitle sets the "item_title" field.
func (_c *ExternalRecordCreate) SetItemTitle(v string) *ExternalRecordCreate {
	_c.mutation.SetItemTitle(v)
	return _c
}

// SetNillableItemTitle sets the "item_title" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableItemTitle(v *string) *ExternalRecordCreate {
	if v != nil {
		_c.SetItemTitle(*v)
	}
	return _c
}

// SetItemSku sets the "item_sku" field.
func (_c *ExternalRecordCreate) SetItemSku(v string) *ExternalRecordCreate {
	_c.mutation.SetItemSku(v)
	return _c
}

// SetNillableItemSku sets the "item_sku" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableItemSku(v *string) *ExternalRecordCreate {
	if v != nil {
		_c.SetItemSku(*v)
	}
	return _c
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_c *ExternalRecordCreate) SetInventoryItemID(v int64) *ExternalRecordCreate {
	_c.mutation.SetInventoryItemID(v)
	return _c
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableInventoryItemID(v *int64) *ExternalRecordCreate {
	if v != nil {
		_c.SetInventoryItemID(*v)
	}
	return _c
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_c *ExternalRecordCreate) SetLastSyncedAt(v time.Time) *ExternalRecordCreate {
	_c.mutation.SetLastSyncedAt(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ExternalRecordCreate) SetDeletedAt(v time.Time) *ExternalRecordCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ExternalRecordCreate) SetNillableDeletedAt(v *time.Time) *ExternalRecordCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// Mutation returns the ExternalRecordMutation object of the builder.
func (_c *ExternalRecordCreate) Mutation() *ExternalRecordMutation {
	return _c.mutation
}

// Save creates the ExternalRecord in the database.
func (_c *ExternalRecordCreate) Save(ctx context.Context) (*ExternalRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExternalRecordCreate) SaveX(ctx context.Context) *ExternalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExternalRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := externalrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := externalrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := externalrecord.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.GrossCents(); !ok {
		v := externalrecord.DefaultGrossCents
		_c.mutation.SetGrossCents(v)
	}
	if _, ok := _c.mutation.FeeCents(); !ok {
		v := externalrecord.DefaultFeeCents
		_c.mutation.SetFeeCents(v)
	}
	if _, ok := _c.mutation.ShippingCents(); !ok {
		v := externalrecord.DefaultShippingCents
		_c.mutation.SetShippingCents(v)
	}
	if _, ok := _c.mutation.NetCents(); !ok {
		v := externalrecord.DefaultNetCents
		_c.mutation.SetNetCents(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExternalRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExternalRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExternalRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExternalRecord.user_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ExternalRecord.provider"`)}
	}
	if _, ok := _c.mutation.RecordType(); !ok {
		return &ValidationError{Name: "record_type", err: errors.New(`ent: missing required field "ExternalRecord.record_type"`)}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "ExternalRecord.external_id"`)}
	}
	if _, ok := _c.mutation.TransactionDate(); !ok {
		return &ValidationError{Name: "transaction_date", err: errors.New(`ent: missing required field "ExternalRecord.transaction_date"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "ExternalRecord.currency"`)}
	}
	if _, ok := _c.mutation.GrossCents(); !ok {
		return &ValidationError{Name: "gross_cents", err: errors.New(`ent: missing required field "ExternalRecord.gross_cents"`)}
	}
	if _, ok := _c.mutation.FeeCents(); !ok {
		return &ValidationError{Name: "fee_cents", err: errors.New(`ent: missing required field "ExternalRecord.fee_cents"`)}
	}
	if _, ok := _c.mutation.ShippingCents(); !ok {
		return &ValidationError{Name: "shipping_cents", err: errors.New(`ent: missing required field "ExternalRecord.shipping_cents"`)}
	}
	if _, ok := _c.mutation.NetCents(); !ok {
		return &ValidationError{Name: "net_cents", err: errors.New(`ent: missing required field "ExternalRecord.net_cents"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExternalRecord.status"`)}
	}
	if _, ok := _c.mutation.LastSyncedAt(); !ok {
		return &ValidationError{Name: "last_synced_at", err: errors.New(`ent: missing required field "ExternalRecord.last_synced_at"`)}
	}
	return nil
}

func (_c *ExternalRecordCreate) sqlSave(ctx context.Context) (*ExternalRecord, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExternalRecordCreate) createSpec() (*ExternalRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExternalRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(externalrecord.Table, sqlgraph.NewFieldSpec(externalrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(externalrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(externalrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(externalrecord.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(externalrecord.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.RecordType(); ok {
		_spec.SetField(externalrecord.FieldRecordType, field.TypeString, value)
		_node.RecordType = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(externalrecord.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.LegacyExternalID(); ok {
		_spec.SetField(externalrecord.FieldLegacyExternalID, field.TypeString, value)
		_node.LegacyExternalID = &value
	}
	if value, ok := _c.mutation.TransactionDate(); ok {
		_spec.SetField(externalrecord.FieldTransactionDate, field.TypeTime, value)
		_node.TransactionDate = value
	}
	if value, ok := _c.mutation.Counterparty(); ok {
		_spec.SetField(externalrecord.FieldCounterparty, field.TypeString, value)
		_node.Counterparty = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(externalrecord.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.GrossCents(); ok {
		_spec.SetField(externalrecord.FieldGrossCents, field.TypeInt64, value)
		_node.GrossCents = value
	}
	if value, ok := _c.mutation.FeeCents(); ok {
		_spec.SetField(externalrecord.FieldFeeCents, field.TypeInt64, value)
		_node.FeeCents = value
	}
	if value, ok := _c.mutation.ShippingCents(); ok {
		_spec.SetField(externalrecord.FieldShippingCents, field.TypeInt64, value)
		_node.ShippingCents = value
	}
	if value, ok := _c.mutation.NetCents(); ok {
		_spec.SetField(externalrecord.FieldNetCents, field.TypeInt64, value)
		_node.NetCents = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(externalrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ItemTitle(); ok {
		_spec.SetField(externalrecord.FieldItemTitle, field.TypeString, value)
		_node.ItemTitle = &value
	}
	if value, ok := _c.mutation.ItemSku(); ok {
		_spec.SetField(externalrecord.FieldItemSku, field.TypeString, value)
		_node.ItemSku = &value
	}
	if value, ok := _c.mutation.InventoryItemID(); ok {
		_spec.SetField(externalrecord.FieldInventoryItemID, field.TypeInt64, value)
		_node.InventoryItemID = &value
	}
	if value, ok := _c.mutation.LastSyncedAt(); ok {
		_spec.SetField(externalrecord.FieldLastSyncedAt, field.TypeTime, value)
		_node.LastSyncedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(externalrecord.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExternalRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExternalRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ExternalRecordCreate) OnConflict(opts ...sql.ConflictOption) *ExternalRecordUpsertOne {
	_c.conflict = opts
	return &ExternalRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExternalRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExternalRecordCreate) OnConflictColumns(columns ...string) *ExternalRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExternalRecordUpsertOne{
		create: _c,
	}
}

type (
	// ExternalRecordUpsertOne is the builder for "upsert"-ing
	//  one ExternalRecord node.
	ExternalRecordUpsertOne struct {
		create *ExternalRecordCreate
	}

	// ExternalRecordUpsert is the "OnConflict" setter.
	ExternalRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ExternalRecordUpsert) SetUpdatedAt(v time.Time) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateUpdatedAt() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExternalRecordUpsert) SetUserID(v int64) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateUserID() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *ExternalRecordUpsert) AddUserID(v int64) *ExternalRecordUpsert {
	u.Add(externalrecord.FieldUserID, v)
	return u
}

// SetProvider sets the "provider" field.
func (u *ExternalRecordUpsert) SetProvider(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateProvider() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldProvider)
	return u
}

// SetRecordType sets the "record_type" field.
func (u *ExternalRecordUpsert) SetRecordType(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldRecordType, v)
	return u
}

// UpdateRecordType sets the "record_type" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateRecordType() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldRecordType)
	return u
}

// SetExternalID sets the "external_id" field.
func (u *ExternalRecordUpsert) SetExternalID(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldExternalID, v)
	return u
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateExternalID() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldExternalID)
	return u
}

// SetLegacyExternalID sets the "legacy_external_id" field.
func (u *ExternalRecordUpsert) SetLegacyExternalID(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldLegacyExternalID, v)
	return u
}

// UpdateLegacyExternalID sets the "legacy_external_id" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateLegacyExternalID() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldLegacyExternalID)
	return u
}

// ClearLegacyExternalID clears the value of the "legacy_external_id" field.
func (u *ExternalRecordUpsert) ClearLegacyExternalID() *ExternalRecordUpsert {
	u.SetNull(externalrecord.FieldLegacyExternalID)
	return u
}

// SetTransactionDate sets the "transaction_date" field.
func (u *ExternalRecordUpsert) SetTransactionDate(v time.Time) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldTransactionDate, v)
	return u
}

// UpdateTransactionDate sets the "transaction_date" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateTransactionDate() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldTransactionDate)
	return u
}

// SetCounterparty sets the "counterparty" field.
func (u *ExternalRecordUpsert) SetCounterparty(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldCounterparty, v)
	return u
}

// UpdateCounterparty sets the "counterparty" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateCounterparty() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldCounterparty)
	return u
}

// ClearCounterparty clears the value of the "counterparty" field.
func (u *ExternalRecordUpsert) ClearCounterparty() *ExternalRecordUpsert {
	u.SetNull(externalrecord.FieldCounterparty)
	return u
}

// SetCurrency sets the "currency" field.
func (u *ExternalRecordUpsert) SetCurrency(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateCurrency() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldCurrency)
	return u
}

// SetGrossCents sets the "gross_cents" field.
func (u *ExternalRecordUpsert) SetGrossCents(v int64) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldGrossCents, v)
	return u
}

// UpdateGrossCents sets the "gross_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateGrossCents() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldGrossCents)
	return u
}

// AddGrossCents adds v to the "gross_cents" field.
func (u *ExternalRecordUpsert) AddGrossCents(v int64) *ExternalRecordUpsert {
	u.Add(externalrecord.FieldGrossCents, v)
	return u
}

// SetFeeCents sets the "fee_cents" field.
func (u *ExternalRecordUpsert) SetFeeCents(v int64) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldFeeCents, v)
	return u
}

// UpdateFeeCents sets the "fee_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateFeeCents() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldFeeCents)
	return u
}

// AddFeeCents adds v to the "fee_cents" field.
func (u *ExternalRecordUpsert) AddFeeCents(v int64) *ExternalRecordUpsert {
	u.Add(externalrecord.FieldFeeCents, v)
	return u
}

// SetShippingCents sets the "shipping_cents" field.
func (u *ExternalRecordUpsert) SetShippingCents(v int64) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldShippingCents, v)
	return u
}

// UpdateShippingCents sets the "shipping_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateShippingCents() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldShippingCents)
	return u
}

// AddShippingCents adds v to the "shipping_cents" field.
func (u *ExternalRecordUpsert) AddShippingCents(v int64) *ExternalRecordUpsert {
	u.Add(externalrecord.FieldShippingCents, v)
	return u
}

// SetNetCents sets the "net_cents" field.
func (u *ExternalRecordUpsert) SetNetCents(v int64) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldNetCents, v)
	return u
}

// UpdateNetCents sets the "net_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateNetCents() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldNetCents)
	return u
}

// AddNetCents adds v to the "net_cents" field.
func (u *ExternalRecordUpsert) AddNetCents(v int64) *ExternalRecordUpsert {
	u.Add(externalrecord.FieldNetCents, v)
	return u
}

// SetStatus sets the "status" field.
func (u *ExternalRecordUpsert) SetStatus(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateStatus() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldStatus)
	return u
}

// SetItemTitle sets the "item_title" field.
func (u *ExternalRecordUpsert) SetItemTitle(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldItemTitle, v)
	return u
}

// UpdateItemTitle sets the "item_title" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateItemTitle() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldItemTitle)
	return u
}

// ClearItemTitle clears the value of the "item_title" field.
func (u *ExternalRecordUpsert) ClearItemTitle() *ExternalRecordUpsert {
	u.SetNull(externalrecord.FieldItemTitle)
	return u
}

// SetItemSku sets the "item_sku" field.
func (u *ExternalRecordUpsert) SetItemSku(v string) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldItemSku, v)
	return u
}

// UpdateItemSku sets the "item_sku" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateItemSku() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldItemSku)
	return u
}

// ClearItemSku clears the value of the "item_sku" field.
func (u *ExternalRecordUpsert) ClearItemSku() *ExternalRecordUpsert {
	u.SetNull(externalrecord.FieldItemSku)
	return u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *ExternalRecordUpsert) SetInventoryItemID(v int64) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldInventoryItemID, v)
	return u
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateInventoryItemID() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldInventoryItemID)
	return u
}

// AddInventoryItemID adds v to the "inventory_item_id" field.
func (u *ExternalRecordUpsert) AddInventoryItemID(v int64) *ExternalRecordUpsert {
	u.Add(externalrecord.FieldInventoryItemID, v)
	return u
}

// ClearInventoryItemID clears the value of the "inventory_item_id" field.
func (u *ExternalRecordUpsert) ClearInventoryItemID() *ExternalRecordUpsert {
	u.SetNull(externalrecord.FieldInventoryItemID)
	return u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *ExternalRecordUpsert) SetLastSyncedAt(v time.Time) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldLastSyncedAt, v)
	return u
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateLastSyncedAt() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldLastSyncedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExternalRecordUpsert) SetDeletedAt(v time.Time) *ExternalRecordUpsert {
	u.Set(externalrecord.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExternalRecordUpsert) UpdateDeletedAt() *ExternalRecordUpsert {
	u.SetExcluded(externalrecord.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExternalRecordUpsert) ClearDeletedAt() *ExternalRecordUpsert {
	u.SetNull(externalrecord.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExternalRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExternalRecordUpsertOne) UpdateNewValues() *ExternalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(externalrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExternalRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExternalRecordUpsertOne) Ignore() *ExternalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExternalRecordUpsertOne) DoNothing() *ExternalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExternalRecordCreate.OnConflict
// documentation for more info.
func (u *ExternalRecordUpsertOne) Update(set func(*ExternalRecordUpsert)) *ExternalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExternalRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExternalRecordUpsertOne) SetUpdatedAt(v time.Time) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateUpdatedAt() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *ExternalRecordUpsertOne) SetUserID(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ExternalRecordUpsertOne) AddUserID(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateUserID() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetProvider sets the "provider" field.
func (u *ExternalRecordUpsertOne) SetProvider(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateProvider() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateProvider()
	})
}

// SetRecordType sets the "record_type" field.
func (u *ExternalRecordUpsertOne) SetRecordType(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetRecordType(v)
	})
}

// UpdateRecordType sets the "record_type" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateRecordType() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateRecordType()
	})
}

// SetExternalID sets the "external_id" field.
func (u *ExternalRecordUpsertOne) SetExternalID(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateExternalID() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateExternalID()
	})
}

// SetLegacyExternalID sets the "legacy_external_id" field.
func (u *ExternalRecordUpsertOne) SetLegacyExternalID(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetLegacyExternalID(v)
	})
}

// UpdateLegacyExternalID sets the "legacy_external_id" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateLegacyExternalID() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateLegacyExternalID()
	})
}

// ClearLegacyExternalID clears the value of the "legacy_external_id" field.
func (u *ExternalRecordUpsertOne) ClearLegacyExternalID() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearLegacyExternalID()
	})
}

// SetTransactionDate sets the "transaction_date" field.
func (u *ExternalRecordUpsertOne) SetTransactionDate(v time.Time) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetTransactionDate(v)
	})
}

// UpdateTransactionDate sets the "transaction_date" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateTransactionDate() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateTransactionDate()
	})
}

// SetCounterparty sets the "counterparty" field.
func (u *ExternalRecordUpsertOne) SetCounterparty(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetCounterparty(v)
	})
}

// UpdateCounterparty sets the "counterparty" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateCounterparty() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateCounterparty()
	})
}

// ClearCounterparty clears the value of the "counterparty" field.
func (u *ExternalRecordUpsertOne) ClearCounterparty() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearCounterparty()
	})
}

// SetCurrency sets the "currency" field.
func (u *ExternalRecordUpsertOne) SetCurrency(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateCurrency() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateCurrency()
	})
}

// SetGrossCents sets the "gross_cents" field.
func (u *ExternalRecordUpsertOne) SetGrossCents(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetGrossCents(v)
	})
}

// AddGrossCents adds v to the "gross_cents" field.
func (u *ExternalRecordUpsertOne) AddGrossCents(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddGrossCents(v)
	})
}

// UpdateGrossCents sets the "gross_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateGrossCents() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateGrossCents()
	})
}

// SetFeeCents sets the "fee_cents" field.
func (u *ExternalRecordUpsertOne) SetFeeCents(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetFeeCents(v)
	})
}

// AddFeeCents adds v to the "fee_cents" field.
func (u *ExternalRecordUpsertOne) AddFeeCents(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddFeeCents(v)
	})
}

// UpdateFeeCents sets the "fee_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateFeeCents() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateFeeCents()
	})
}

// SetShippingCents sets the "shipping_cents" field.
func (u *ExternalRecordUpsertOne) SetShippingCents(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetShippingCents(v)
	})
}

// AddShippingCents adds v to the "shipping_cents" field.
func (u *ExternalRecordUpsertOne) AddShippingCents(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddShippingCents(v)
	})
}

// UpdateShippingCents sets the "shipping_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateShippingCents() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateShippingCents()
	})
}

// SetNetCents sets the "net_cents" field.
func (u *ExternalRecordUpsertOne) SetNetCents(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetNetCents(v)
	})
}

// AddNetCents adds v to the "net_cents" field.
func (u *ExternalRecordUpsertOne) AddNetCents(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddNetCents(v)
	})
}

// UpdateNetCents sets the "net_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateNetCents() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateNetCents()
	})
}

// SetStatus sets the "status" field.
func (u *ExternalRecordUpsertOne) SetStatus(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateStatus() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetItemTitle sets the "item_title" field.
func (u *ExternalRecordUpsertOne) SetItemTitle(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetItemTitle(v)
	})
}

// UpdateItemTitle sets the "item_title" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateItemTitle() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateItemTitle()
	})
}

// ClearItemTitle clears the value of the "item_title" field.
func (u *ExternalRecordUpsertOne) ClearItemTitle() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearItemTitle()
	})
}

// SetItemSku sets the "item_sku" field.
func (u *ExternalRecordUpsertOne) SetItemSku(v string) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetItemSku(v)
	})
}

// UpdateItemSku sets the "item_sku" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateItemSku() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateItemSku()
	})
}

// ClearItemSku clears the value of the "item_sku" field.
func (u *ExternalRecordUpsertOne) ClearItemSku() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearItemSku()
	})
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *ExternalRecordUpsertOne) SetInventoryItemID(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetInventoryItemID(v)
	})
}

// AddInventoryItemID adds v to the "inventory_item_id" field.
func (u *ExternalRecordUpsertOne) AddInventoryItemID(v int64) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddInventoryItemID(v)
	})
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateInventoryItemID() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateInventoryItemID()
	})
}

// ClearInventoryItemID clears the value of the "inventory_item_id" field.
func (u *ExternalRecordUpsertOne) ClearInventoryItemID() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearInventoryItemID()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *ExternalRecordUpsertOne) SetLastSyncedAt(v time.Time) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateLastSyncedAt() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExternalRecordUpsertOne) SetDeletedAt(v time.Time) *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExternalRecordUpsertOne) UpdateDeletedAt() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExternalRecordUpsertOne) ClearDeletedAt() *ExternalRecordUpsertOne {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ExternalRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExternalRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExternalRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExternalRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExternalRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExternalRecordCreateBulk is the builder for creating many ExternalRecord entities in bulk.
type ExternalRecordCreateBulk struct {
	config
	err      error
	builders []*ExternalRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ExternalRecord entities in the database.
func (_c *ExternalRecordCreateBulk) Save(ctx context.Context) ([]*ExternalRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExternalRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExternalRecordMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ExternalRecordCreateBulk) SaveX(ctx context.Context) []*ExternalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExternalRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExternalRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ExternalRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExternalRecordUpsertBulk {
	_c.conflict = opts
	return &ExternalRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExternalRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExternalRecordCreateBulk) OnConflictColumns(columns ...string) *ExternalRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExternalRecordUpsertBulk{
		create: _c,
	}
}

// ExternalRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ExternalRecord nodes.
type ExternalRecordUpsertBulk struct {
	create *ExternalRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExternalRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExternalRecordUpsertBulk) UpdateNewValues() *ExternalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(externalrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExternalRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExternalRecordUpsertBulk) Ignore() *ExternalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExternalRecordUpsertBulk) DoNothing() *ExternalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExternalRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ExternalRecordUpsertBulk) Update(set func(*ExternalRecordUpsert)) *ExternalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExternalRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExternalRecordUpsertBulk) SetUpdatedAt(v time.Time) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateUpdatedAt() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *ExternalRecordUpsertBulk) SetUserID(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ExternalRecordUpsertBulk) AddUserID(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateUserID() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetProvider sets the "provider" field.
func (u *ExternalRecordUpsertBulk) SetProvider(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateProvider() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateProvider()
	})
}

// SetRecordType sets the "record_type" field.
func (u *ExternalRecordUpsertBulk) SetRecordType(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetRecordType(v)
	})
}

// UpdateRecordType sets the "record_type" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateRecordType() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateRecordType()
	})
}

// SetExternalID sets the "external_id" field.
func (u *ExternalRecordUpsertBulk) SetExternalID(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateExternalID() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateExternalID()
	})
}

// SetLegacyExternalID sets the "legacy_external_id" field.
func (u *ExternalRecordUpsertBulk) SetLegacyExternalID(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetLegacyExternalID(v)
	})
}

// UpdateLegacyExternalID sets the "legacy_external_id" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateLegacyExternalID() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateLegacyExternalID()
	})
}

// ClearLegacyExternalID clears the value of the "legacy_external_id" field.
func (u *ExternalRecordUpsertBulk) ClearLegacyExternalID() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearLegacyExternalID()
	})
}

// SetTransactionDate sets the "transaction_date" field.
func (u *ExternalRecordUpsertBulk) SetTransactionDate(v time.Time) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetTransactionDate(v)
	})
}

// UpdateTransactionDate sets the "transaction_date" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateTransactionDate() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateTransactionDate()
	})
}

// SetCounterparty sets the "counterparty" field.
func (u *ExternalRecordUpsertBulk) SetCounterparty(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetCounterparty(v)
	})
}

// UpdateCounterparty sets the "counterparty" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateCounterparty() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateCounterparty()
	})
}

// ClearCounterparty clears the value of the "counterparty" field.
func (u *ExternalRecordUpsertBulk) ClearCounterparty() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearCounterparty()
	})
}

// SetCurrency sets the "currency" field.
func (u *ExternalRecordUpsertBulk) SetCurrency(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateCurrency() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateCurrency()
	})
}

// SetGrossCents sets the "gross_cents" field.
func (u *ExternalRecordUpsertBulk) SetGrossCents(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetGrossCents(v)
	})
}

// AddGrossCents adds v to the "gross_cents" field.
func (u *ExternalRecordUpsertBulk) AddGrossCents(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddGrossCents(v)
	})
}

// UpdateGrossCents sets the "gross_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateGrossCents() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateGrossCents()
	})
}

// SetFeeCents sets the "fee_cents" field.
func (u *ExternalRecordUpsertBulk) SetFeeCents(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetFeeCents(v)
	})
}

// AddFeeCents adds v to the "fee_cents" field.
func (u *ExternalRecordUpsertBulk) AddFeeCents(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddFeeCents(v)
	})
}

// UpdateFeeCents sets the "fee_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateFeeCents() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateFeeCents()
	})
}

// SetShippingCents sets the "shipping_cents" field.
func (u *ExternalRecordUpsertBulk) SetShippingCents(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetShippingCents(v)
	})
}

// AddShippingCents adds v to the "shipping_cents" field.
func (u *ExternalRecordUpsertBulk) AddShippingCents(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddShippingCents(v)
	})
}

// UpdateShippingCents sets the "shipping_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateShippingCents() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateShippingCents()
	})
}

// SetNetCents sets the "net_cents" field.
func (u *ExternalRecordUpsertBulk) SetNetCents(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetNetCents(v)
	})
}

// AddNetCents adds v to the "net_cents" field.
func (u *ExternalRecordUpsertBulk) AddNetCents(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddNetCents(v)
	})
}

// UpdateNetCents sets the "net_cents" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateNetCents() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateNetCents()
	})
}

// SetStatus sets the "status" field.
func (u *ExternalRecordUpsertBulk) SetStatus(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateStatus() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetItemTitle sets the "item_title" field.
func (u *ExternalRecordUpsertBulk) SetItemTitle(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetItemTitle(v)
	})
}

// UpdateItemTitle sets the "item_title" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateItemTitle() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateItemTitle()
	})
}

// ClearItemTitle clears the value of the "item_title" field.
func (u *ExternalRecordUpsertBulk) ClearItemTitle() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearItemTitle()
	})
}

// SetItemSku sets the "item_sku" field.
func (u *ExternalRecordUpsertBulk) SetItemSku(v string) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetItemSku(v)
	})
}

// UpdateItemSku sets the "item_sku" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateItemSku() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateItemSku()
	})
}

// ClearItemSku clears the value of the "item_sku" field.
func (u *ExternalRecordUpsertBulk) ClearItemSku() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearItemSku()
	})
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *ExternalRecordUpsertBulk) SetInventoryItemID(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetInventoryItemID(v)
	})
}

// AddInventoryItemID adds v to the "inventory_item_id" field.
func (u *ExternalRecordUpsertBulk) AddInventoryItemID(v int64) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.AddInventoryItemID(v)
	})
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateInventoryItemID() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateInventoryItemID()
	})
}

// ClearInventoryItemID clears the value of the "inventory_item_id" field.
func (u *ExternalRecordUpsertBulk) ClearInventoryItemID() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearInventoryItemID()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *ExternalRecordUpsertBulk) SetLastSyncedAt(v time.Time) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateLastSyncedAt() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExternalRecordUpsertBulk) SetDeletedAt(v time.Time) *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExternalRecordUpsertBulk) UpdateDeletedAt() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExternalRecordUpsertBulk) ClearDeletedAt() *ExternalRecordUpsertBulk {
	return u.Update(func(s *ExternalRecordUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ExternalRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExternalRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExternalRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExternalRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
