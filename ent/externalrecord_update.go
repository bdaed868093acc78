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
	"github.com/aaron-lee-hebert/seller-metrics/ent/predicate"
)

// ExternalRecordUpdate is the builder for updating ExternalRecord entities.
type ExternalRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExternalRecordMutation
}

// Where appends a list predicates to the ExternalRecordUpdate builder.
func (_u *ExternalRecordUpdate) Where(ps ...predicate.ExternalRecord) *ExternalRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExternalRecordUpdate) SetUpdatedAt(v time.Time) *ExternalRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExternalRecordUpdate) SetUserID(v int64) *ExternalRecordUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableUserID(v *int64) *ExternalRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ExternalRecordUpdate) AddUserID(v int64) *ExternalRecordUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ExternalRecordUpdate) SetProvider(v string) *ExternalRecordUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableProvider(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetRecordType sets the "record_type" field.
func (_u *ExternalRecordUpdate) SetRecordType(v string) *ExternalRecordUpdate {
	_u.mutation.SetRecordType(v)
	return _u
}

// SetNillableRecordType sets the "record_type" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableRecordType(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetRecordType(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ExternalRecordUpdate) SetExternalID(v string) *ExternalRecordUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableExternalID(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetLegacyExternalID sets the "legacy_external_id" field.
func (_u *ExternalRecordUpdate) SetLegacyExternalID(v string) *ExternalRecordUpdate {
	_u.mutation.SetLegacyExternalID(v)
	return _u
}

// SetNillableLegacyExternalID sets the "legacy_external_id" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableLegacyExternalID(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetLegacyExternalID(*v)
	}
	return _u
}

// ClearLegacyExternalID clears the value of the "legacy_external_id" field.
func (_u *ExternalRecordUpdate) ClearLegacyExternalID() *ExternalRecordUpdate {
	_u.mutation.ClearLegacyExternalID()
	return _u
}

// SetTransactionDate sets the "transaction_date" field.
func (_u *ExternalRecordUpdate) SetTransactionDate(v time.Time) *ExternalRecordUpdate {
	_u.mutation.SetTransactionDate(v)
	return _u
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableTransactionDate(v *time.Time) *ExternalRecordUpdate {
	if v != nil {
		_u.SetTransactionDate(*v)
	}
	return _u
}

// SetCounterparty sets the "counterparty" field.
func (_u *ExternalRecordUpdate) SetCounterparty(v string) *ExternalRecordUpdate {
	_u.mutation.SetCounterparty(v)
	return _u
}

// SetNillableCounterparty sets the "counterparty" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableCounterparty(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetCounterparty(*v)
	}
	return _u
}

// ClearCounterparty clears the value of the "counterparty" field.
func (_u *ExternalRecordUpdate) ClearCounterparty() *ExternalRecordUpdate {
	_u.mutation.ClearCounterparty()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ExternalRecordUpdate) SetCurrency(v string) *ExternalRecordUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableCurrency(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetGrossCents sets the "gross_cents" field.
func (_u *ExternalRecordUpdate) SetGrossCents(v int64) *ExternalRecordUpdate {
	_u.mutation.ResetGrossCents()
	_u.mutation.SetGrossCents(v)
	return _u
}

// SetNillableGrossCents sets the "gross_cents" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableGrossCents(v *int64) *ExternalRecordUpdate {
	if v != nil {
		_u.SetGrossCents(*v)
	}
	return _u
}

// AddGrossCents adds value to the "gross_cents" field.
func (_u *ExternalRecordUpdate) AddGrossCents(v int64) *ExternalRecordUpdate {
	_u.mutation.AddGrossCents(v)
	return _u
}

// SetFeeCents sets the "fee_cents" field.
func (_u *ExternalRecordUpdate) SetFeeCents(v int64) *ExternalRecordUpdate {
	_u.mutation.ResetFeeCents()
	_u.mutation.SetFeeCents(v)
	return _u
}

// SetNillableFeeCents sets the "fee_cents" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableFeeCents(v *int64) *ExternalRecordUpdate {
	if v != nil {
		_u.SetFeeCents(*v)
	}
	return _u
}

// AddFeeCents adds value to the "fee_cents" field.
func (_u *ExternalRecordUpdate) AddFeeCents(v int64) *ExternalRecordUpdate {
	_u.mutation.AddFeeCents(v)
	return _u
}

// SetShippingCents sets the "shipping_cents" field.
func (_u *ExternalRecordUpdate) SetShippingCents(v int64) *ExternalRecordUpdate {
	_u.mutation.ResetShippingCents()
	_u.mutation.SetShippingCents(v)
	return _u
}

// SetNillableShippingCents sets the "shipping_cents" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableShippingCents(v *int64) *ExternalRecordUpdate {
	if v != nil {
		_u.SetShippingCents(*v)
	}
	return _u
}

// AddShippingCents adds value to the "shipping_cents" field.
func (_u *ExternalRecordUpdate) AddShippingCents(v int64) *ExternalRecordUpdate {
	_u.mutation.AddShippingCents(v)
	return _u
}

// SetNetCents sets the "net_cents" field.
func (_u *ExternalRecordUpdate) SetNetCents(v int64) *ExternalRecordUpdate {
	_u.mutation.ResetNetCents()
	_u.mutation.SetNetCents(v)
	return _u
}

// SetNillableNetCents sets the "net_cents" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableNetCents(v *int64) *ExternalRecordUpdate {
	if v != nil {
		_u.SetNetCents(*v)
	}
	return _u
}

// AddNetCents adds value to the "net_cents" field.
func (_u *ExternalRecordUpdate) AddNetCents(v int64) *ExternalRecordUpdate {
	_u.mutation.AddNetCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExternalRecordUpdate) SetStatus(v string) *ExternalRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableStatus(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItemTitle sets the "item_title" field.
func (_u *ExternalRecordUpdate) SetItemTitle(v string) *ExternalRecordUpdate {
	_u.mutation.SetItemTitle(v)
	return _u
}

// SetNillableItemTitle sets the "item_title" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableItemTitle(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetItemTitle(*v)
	}
	return _u
}

// ClearItemTitle clears the value of the "item_title" field.
func (_u *ExternalRecordUpdate) ClearItemTitle() *ExternalRecordUpdate {
	_u.mutation.ClearItemTitle()
	return _u
}

// SetItemSku sets the "item_sku" field.
func (_u *ExternalRecordUpdate) SetItemSku(v string) *ExternalRecordUpdate {
	_u.mutation.SetItemSku(v)
	return _u
}

// SetNillableItemSku sets the "item_sku" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableItemSku(v *string) *ExternalRecordUpdate {
	if v != nil {
		_u.SetItemSku(*v)
	}
	return _u
}

// ClearItemSku clears the value of the "item_sku" field.
func (_u *ExternalRecordUpdate) ClearItemSku() *ExternalRecordUpdate {
	_u.mutation.ClearItemSku()
	return _u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_u *ExternalRecordUpdate) SetInventoryItemID(v int64) *ExternalRecordUpdate {
	_u.mutation.ResetInventoryItemID()
	_u.mutation.SetInventoryItemID(v)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableInventoryItemID(v *int64) *ExternalRecordUpdate {
	if v != nil {
		_u.SetInventoryItemID(*v)
	}
	return _u
}

// AddInventoryItemID adds value to the "inventory_item_id" field.
func (_u *ExternalRecordUpdate) AddInventoryItemID(v int64) *ExternalRecordUpdate {
	_u.mutation.AddInventoryItemID(v)
	return _u
}

// ClearInventoryItemID clears the value of the "inventory_item_id" field.
func (_u *ExternalRecordUpdate) ClearInventoryItemID() *ExternalRecordUpdate {
	_u.mutation.ClearInventoryItemID()
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *ExternalRecordUpdate) SetLastSyncedAt(v time.Time) *ExternalRecordUpdate {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableLastSyncedAt(v *time.Time) *ExternalRecordUpdate {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ExternalRecordUpdate) SetDeletedAt(v time.Time) *ExternalRecordUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ExternalRecordUpdate) SetNillableDeletedAt(v *time.Time) *ExternalRecordUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ExternalRecordUpdate) ClearDeletedAt() *ExternalRecordUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ExternalRecordMutation object of the builder.
func (_u *ExternalRecordUpdate) Mutation() *ExternalRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExternalRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExternalRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExternalRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := externalrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ExternalRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(externalrecord.Table, externalrecord.Columns, sqlgraph.NewFieldSpec(externalrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(externalrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(externalrecord.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(externalrecord.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(externalrecord.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordType(); ok {
		_spec.SetField(externalrecord.FieldRecordType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(externalrecord.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LegacyExternalID(); ok {
		_spec.SetField(externalrecord.FieldLegacyExternalID, field.TypeString, value)
	}
	if _u.mutation.LegacyExternalIDCleared() {
		_spec.ClearField(externalrecord.FieldLegacyExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionDate(); ok {
		_spec.SetField(externalrecord.FieldTransactionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Counterparty(); ok {
		_spec.SetField(externalrecord.FieldCounterparty, field.TypeString, value)
	}
	if _u.mutation.CounterpartyCleared() {
		_spec.ClearField(externalrecord.FieldCounterparty, field.TypeString)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(externalrecord.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrossCents(); ok {
		_spec.SetField(externalrecord.FieldGrossCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGrossCents(); ok {
		_spec.AddField(externalrecord.FieldGrossCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FeeCents(); ok {
		_spec.SetField(externalrecord.FieldFeeCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFeeCents(); ok {
		_spec.AddField(externalrecord.FieldFeeCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ShippingCents(); ok {
		_spec.SetField(externalrecord.FieldShippingCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedShippingCents(); ok {
		_spec.AddField(externalrecord.FieldShippingCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NetCents(); ok {
		_spec.SetField(externalrecord.FieldNetCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNetCents(); ok {
		_spec.AddField(externalrecord.FieldNetCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(externalrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemTitle(); ok {
		_spec.SetField(externalrecord.FieldItemTitle, field.TypeString, value)
	}
	if _u.mutation.ItemTitleCleared() {
		_spec.ClearField(externalrecord.FieldItemTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ItemSku(); ok {
		_spec.SetField(externalrecord.FieldItemSku, field.TypeString, value)
	}
	if _u.mutation.ItemSkuCleared() {
		_spec.ClearField(externalrecord.FieldItemSku, field.TypeString)
	}
	if value, ok := _u.mutation.InventoryItemID(); ok {
		_spec.SetField(externalrecord.FieldInventoryItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInventoryItemID(); ok {
		_spec.AddField(externalrecord.FieldInventoryItemID, field.TypeInt64, value)
	}
	if _u.mutation.InventoryItemIDCleared() {
		_spec.ClearField(externalrecord.FieldInventoryItemID, field.TypeInt64)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(externalrecord.FieldLastSyncedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(externalrecord.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(externalrecord.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExternalRecordUpdateOne is the builder for updating a single ExternalRecord entity.
type ExternalRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExternalRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExternalRecordUpdateOne) SetUpdatedAt(v time.Time) *ExternalRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExternalRecordUpdateOne) SetUserID(v int64) *ExternalRecordUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableUserID(v *int64) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ExternalRecordUpdateOne) AddUserID(v int64) *ExternalRecordUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ExternalRecordUpdateOne) SetProvider(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableProvider(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetRecordType sets the "record_type" field.
func (_u *ExternalRecordUpdateOne) SetRecordType(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetRecordType(v)
	return _u
}

// SetNillableRecordType sets the "record_type" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableRecordType(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetRecordType(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ExternalRecordUpdateOne) SetExternalID(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableExternalID(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetLegacyExternalID sets the "legacy_external_id" field.
func (_u *ExternalRecordUpdateOne) SetLegacyExternalID(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetLegacyExternalID(v)
	return _u
}

// SetNillableLegacyExternalID sets the "legacy_external_id" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableLegacyExternalID(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetLegacyExternalID(*v)
	}
	return _u
}

// ClearLegacyExternalID clears the value of the "legacy_external_id" field.
func (_u *ExternalRecordUpdateOne) ClearLegacyExternalID() *ExternalRecordUpdateOne {
	_u.mutation.ClearLegacyExternalID()
	return _u
}

// SetTransactionDate sets the "transaction_date" field.
func (_u *ExternalRecordUpdateOne) SetTransactionDate(v time.Time) *ExternalRecordUpdateOne {
	_u.mutation.SetTransactionDate(v)
	return _u
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableTransactionDate(v *time.Time) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetTransactionDate(*v)
	}
	return _u
}

// SetCounterparty sets the "counterparty" field.
func (_u *ExternalRecordUpdateOne) SetCounterparty(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetCounterparty(v)
	return _u
}

// SetNillableCounterparty sets the "counterparty" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableCounterparty(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetCounterparty(*v)
	}
	return _u
}

// ClearCounterparty clears the value of the "counterparty" field.
func (_u *ExternalRecordUpdateOne) ClearCounterparty() *ExternalRecordUpdateOne {
	_u.mutation.ClearCounterparty()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ExternalRecordUpdateOne) SetCurrency(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableCurrency(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetGrossCents sets the "gross_cents" field.
func (_u *ExternalRecordUpdateOne) SetGrossCents(v int64) *ExternalRecordUpdateOne {
	_u.mutation.ResetGrossCents()
	_u.mutation.SetGrossCents(v)
	return _u
}

// SetNillableGrossCents sets the "gross_cents" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableGrossCents(v *int64) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetGrossCents(*v)
	}
	return _u
}

// AddGrossCents adds value to the "gross_cents" field.
func (_u *ExternalRecordUpdateOne) AddGrossCents(v int64) *ExternalRecordUpdateOne {
	_u.mutation.AddGrossCents(v)
	return _u
}

// SetFeeCents sets the "fee_cents" field.
func (_u *ExternalRecordUpdateOne) SetFeeCents(v int64) *ExternalRecordUpdateOne {
	_u.mutation.ResetFeeCents()
	_u.mutation.SetFeeCents(v)
	return _u
}

// SetNillableFeeCents sets the "fee_cents" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableFeeCents(v *int64) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetFeeCents(*v)
	}
	return _u
}

// AddFeeCents adds value to the "fee_cents" field.
func (_u *ExternalRecordUpdateOne) AddFeeCents(v int64) *ExternalRecordUpdateOne {
	_u.mutation.AddFeeCents(v)
	return _u
}

// SetShippingCents sets the "shipping_cents" field.
func (_u *ExternalRecordUpdateOne) SetShippingCents(v int64) *ExternalRecordUpdateOne {
	_u.mutation.ResetShippingCents()
	_u.mutation.SetShippingCents(v)
	return _u
}

// SetNillableShippingCents sets the "shipping_cents" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableShippingCents(v *int64) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetShippingCents(*v)
	}
	return _u
}

// AddShippingCents adds value to the "shipping_cents" field.
func (_u *ExternalRecordUpdateOne) AddShippingCents(v int64) *ExternalRecordUpdateOne {
	_u.mutation.AddShippingCents(v)
	return _u
}

// SetNetCents sets the "net_cents" field.
func (_u *ExternalRecordUpdateOne) SetNetCents(v int64) *ExternalRecordUpdateOne {
	_u.mutation.ResetNetCents()
	_u.mutation.SetNetCents(v)
	return _u
}

// SetNillableNetCents sets the "net_cents" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableNetCents(v *int64) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetNetCents(*v)
	}
	return _u
}

// AddNetCents adds value to the "net_cents" field.
func (_u *ExternalRecordUpdateOne) AddNetCents(v int64) *ExternalRecordUpdateOne {
	_u.mutation.AddNetCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExternalRecordUpdateOne) SetStatus(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableStatus(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItemTitle sets the "item_title" field.
func (_u *ExternalRecordUpdateOne) SetItemTitle(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetItemTitle(v)
	return _u
}

// SetNillableItemTitle sets the "item_title" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableItemTitle(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetItemTitle(*v)
	}
	return _u
}

// ClearItemTitle clears the value of the "item_title" field.
func (_u *ExternalRecordUpdateOne) ClearItemTitle() *ExternalRecordUpdateOne {
	_u.mutation.ClearItemTitle()
	return _u
}

// SetItemSku sets the "item_sku" field.
func (_u *ExternalRecordUpdateOne) SetItemSku(v string) *ExternalRecordUpdateOne {
	_u.mutation.SetItemSku(v)
	return _u
}

// SetNillableItemSku sets the "item_sku" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableItemSku(v *string) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetItemSku(*v)
	}
	return _u
}

// ClearItemSku clears the value of the "item_sku" field.
func (_u *ExternalRecordUpdateOne) ClearItemSku() *ExternalRecordUpdateOne {
	_u.mutation.ClearItemSku()
	return _u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_u *ExternalRecordUpdateOne) SetInventoryItemID(v int64) *ExternalRecordUpdateOne {
	_u.mutation.ResetInventoryItemID()
	_u.mutation.SetInventoryItemID(v)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableInventoryItemID(v *int64) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetInventoryItemID(*v)
	}
	return _u
}

// AddInventoryItemID adds value to the "inventory_item_id" field.
func (_u *ExternalRecordUpdateOne) AddInventoryItemID(v int64) *ExternalRecordUpdateOne {
	_u.mutation.AddInventoryItemID(v)
	return _u
}

// ClearInventoryItemID clears the value of the "inventory_item_id" field.
func (_u *ExternalRecordUpdateOne) ClearInventoryItemID() *ExternalRecordUpdateOne {
	_u.mutation.ClearInventoryItemID()
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *ExternalRecordUpdateOne) SetLastSyncedAt(v time.Time) *ExternalRecordUpdateOne {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableLastSyncedAt(v *time.Time) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ExternalRecordUpdateOne) SetDeletedAt(v time.Time) *ExternalRecordUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ExternalRecordUpdateOne) SetNillableDeletedAt(v *time.Time) *ExternalRecordUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ExternalRecordUpdateOne) ClearDeletedAt() *ExternalRecordUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ExternalRecordMutation object of the builder.
func (_u *ExternalRecordUpdateOne) Mutation() *ExternalRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExternalRecordUpdate builder.
func (_u *ExternalRecordUpdateOne) Where(ps ...predicate.ExternalRecord) *ExternalRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExternalRecordUpdateOne) Select(field string, fields ...string) *ExternalRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExternalRecord entity.
func (_u *ExternalRecordUpdateOne) Save(ctx context.Context) (*ExternalRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalRecordUpdateOne) SaveX(ctx context.Context) *ExternalRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExternalRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExternalRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := externalrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ExternalRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExternalRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(externalrecord.Table, externalrecord.Columns, sqlgraph.NewFieldSpec(externalrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExternalRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, externalrecord.FieldID)
		for _, f := range fields {
			if !externalrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != externalrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(externalrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(externalrecord.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(externalrecord.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(externalrecord.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordType(); ok {
		_spec.SetField(externalrecord.FieldRecordType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(externalrecord.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LegacyExternalID(); ok {
		_spec.SetField(externalrecord.FieldLegacyExternalID, field.TypeString, value)
	}
	if _u.mutation.LegacyExternalIDCleared() {
		_spec.ClearField(externalrecord.FieldLegacyExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionDate(); ok {
		_spec.SetField(externalrecord.FieldTransactionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Counterparty(); ok {
		_spec.SetField(externalrecord.FieldCounterparty, field.TypeString, value)
	}
	if _u.mutation.CounterpartyCleared() {
		_spec.ClearField(externalrecord.FieldCounterparty, field.TypeString)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(externalrecord.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrossCents(); ok {
		_spec.SetField(externalrecord.FieldGrossCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGrossCents(); ok {
		_spec.AddField(externalrecord.FieldGrossCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FeeCents(); ok {
		_spec.SetField(externalrecord.FieldFeeCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFeeCents(); ok {
		_spec.AddField(externalrecord.FieldFeeCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ShippingCents(); ok {
		_spec.SetField(externalrecord.FieldShippingCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedShippingCents(); ok {
		_spec.AddField(externalrecord.FieldShippingCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NetCents(); ok {
		_spec.SetField(externalrecord.FieldNetCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNetCents(); ok {
		_spec.AddField(externalrecord.FieldNetCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(externalrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemTitle(); ok {
		_spec.SetField(externalrecord.FieldItemTitle, field.TypeString, value)
	}
	if _u.mutation.ItemTitleCleared() {
		_spec.ClearField(externalrecord.FieldItemTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ItemSku(); ok {
		_spec.SetField(externalrecord.FieldItemSku, field.TypeString, value)
	}
	if _u.mutation.ItemSkuCleared() {
		_spec.ClearField(externalrecord.FieldItemSku, field.TypeString)
	}
	if value, ok := _u.mutation.InventoryItemID(); ok {
		_spec.SetField(externalrecord.FieldInventoryItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInventoryItemID(); ok {
		_spec.AddField(externalrecord.FieldInventoryItemID, field.TypeInt64, value)
	}
	if _u.mutation.InventoryItemIDCleared() {
		_spec.ClearField(externalrecord.FieldInventoryItemID, field.TypeInt64)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(externalrecord.FieldLastSyncedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(externalrecord.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(externalrecord.FieldDeletedAt, field.TypeTime)
	}
	_node = &ExternalRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
