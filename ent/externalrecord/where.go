// Code generated by ent, DO NOT EDIT.

package externalrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aaron-lee-hebert/seller-metrics/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldUserID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldProvider, v))
}

// RecordType applies equality check predicate on the "record_type" field. It's identical to RecordTypeEQ.
func RecordType(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldRecordType, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldExternalID, v))
}

// LegacyExternalID applies equality check predicate on the "legacy_external_id" field. It's identical to LegacyExternalIDEQ.
func LegacyExternalID(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldLegacyExternalID, v))
}

// TransactionDate applies equality check predicate on the "transaction_date" field. It's identical to TransactionDateEQ.
func TransactionDate(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldTransactionDate, v))
}

// Counterparty applies equality check predicate on the "counterparty" field. It's identical to CounterpartyEQ.
func Counterparty(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldCounterparty, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldCurrency, v))
}

// GrossCents applies equality check predicate on the "gross_cents" field. It's identical to GrossCentsEQ.
func GrossCents(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldGrossCents, v))
}

// FeeCents applies equality check predicate on the "fee_cents" field. It's identical to FeeCentsEQ.
func FeeCents(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldFeeCents, v))
}

// ShippingCents applies equality check predicate on the "shipping_cents" field. It's identical to ShippingCentsEQ.
func ShippingCents(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldShippingCents, v))
}

// NetCents applies equality check predicate on the "net_cents" field. It's identical to NetCentsEQ.
func NetCents(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldNetCents, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldStatus, v))
}

// ItemTitle applies equality check predicate on the "item_title" field. It's identical to ItemTitleEQ.
func ItemTitle(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldItemTitle, v))
}

// ItemSku applies equality check predicate on the "item_sku" field. It's identical to ItemSkuEQ.
func ItemSku(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldItemSku, v))
}

// InventoryItemID applies equality check predicate on the "inventory_item_id" field. It's identical to InventoryItemIDEQ.
func InventoryItemID(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldInventoryItemID, v))
}

// LastSyncedAt applies equality check predicate on the "last_synced_at" field. It's identical to LastSyncedAtEQ.
func LastSyncedAt(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldLastSyncedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldUserID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldProvider, v))
}

// RecordTypeEQ applies the EQ predicate on the "record_type" field.
func RecordTypeEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldRecordType, v))
}

// RecordTypeNEQ applies the NEQ predicate on the "record_type" field.
func RecordTypeNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldRecordType, v))
}

// RecordTypeIn applies the In predicate on the "record_type" field.
func RecordTypeIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldRecordType, vs...))
}

// RecordTypeNotIn applies the NotIn predicate on the "record_type" field.
func RecordTypeNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldRecordType, vs...))
}

// RecordTypeGT applies the GT predicate on the "record_type" field.
func RecordTypeGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldRecordType, v))
}

// RecordTypeGTE applies the GTE predicate on the "record_type" field.
func RecordTypeGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldRecordType, v))
}

// RecordTypeLT applies the LT predicate on the "record_type" field.
func RecordTypeLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldRecordType, v))
}

// RecordTypeLTE applies the LTE predicate on the "record_type" field.
func RecordTypeLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldRecordType, v))
}

// RecordTypeContains applies the Contains predicate on the "record_type" field.
func RecordTypeContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldRecordType, v))
}

// RecordTypeHasPrefix applies the HasPrefix predicate on the "record_type" field.
func RecordTypeHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldRecordType, v))
}

// RecordTypeHasSuffix applies the HasSuffix predicate on the "record_type" field.
func RecordTypeHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldRecordType, v))
}

// RecordTypeEqualFold applies the EqualFold predicate on the "record_type" field.
func RecordTypeEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldRecordType, v))
}

// RecordTypeContainsFold applies the ContainsFold predicate on the "record_type" field.
func RecordTypeContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldRecordType, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldExternalID, v))
}

// LegacyExternalIDEQ applies the EQ predicate on the "legacy_external_id" field.
func LegacyExternalIDEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldLegacyExternalID, v))
}

// LegacyExternalIDNEQ applies the NEQ predicate on the "legacy_external_id" field.
func LegacyExternalIDNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldLegacyExternalID, v))
}

// LegacyExternalIDIn applies the In predicate on the "legacy_external_id" field.
func LegacyExternalIDIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldLegacyExternalID, vs...))
}

// LegacyExternalIDNotIn applies the NotIn predicate on the "legacy_external_id" field.
func LegacyExternalIDNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldLegacyExternalID, vs...))
}

// LegacyExternalIDGT applies the GT predicate on the "legacy_external_id" field.
func LegacyExternalIDGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldLegacyExternalID, v))
}

// LegacyExternalIDGTE applies the GTE predicate on the "legacy_external_id" field.
func LegacyExternalIDGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldLegacyExternalID, v))
}

// LegacyExternalIDLT applies the LT predicate on the "legacy_external_id" field.
func LegacyExternalIDLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldLegacyExternalID, v))
}

// LegacyExternalIDLTE applies the LTE predicate on the "legacy_external_id" field.
func LegacyExternalIDLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldLegacyExternalID, v))
}

// LegacyExternalIDContains applies the Contains predicate on the "legacy_external_id" field.
func LegacyExternalIDContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldLegacyExternalID, v))
}

// LegacyExternalIDHasPrefix applies the HasPrefix predicate on the "legacy_external_id" field.
func LegacyExternalIDHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldLegacyExternalID, v))
}

// LegacyExternalIDHasSuffix applies the HasSuffix predicate on the "legacy_external_id" field.
func LegacyExternalIDHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldLegacyExternalID, v))
}

// LegacyExternalIDIsNil applies the IsNil predicate on the "legacy_external_id" field.
func LegacyExternalIDIsNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIsNull(FieldLegacyExternalID))
}

// LegacyExternalIDNotNil applies the NotNil predicate on the "legacy_external_id" field.
func LegacyExternalIDNotNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotNull(FieldLegacyExternalID))
}

// LegacyExternalIDEqualFold applies the EqualFold predicate on the "legacy_external_id" field.
func LegacyExternalIDEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldLegacyExternalID, v))
}

// LegacyExternalIDContainsFold applies the ContainsFold predicate on the "legacy_external_id" field.
func LegacyExternalIDContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldLegacyExternalID, v))
}

// TransactionDateEQ applies the EQ predicate on the "transaction_date" field.
func TransactionDateEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldTransactionDate, v))
}

// TransactionDateNEQ applies the NEQ predicate on the "transaction_date" field.
func TransactionDateNEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldTransactionDate, v))
}

// TransactionDateIn applies the In predicate on the "transaction_date" field.
func TransactionDateIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldTransactionDate, vs...))
}

// TransactionDateNotIn applies the NotIn predicate on the "transaction_date" field.
func TransactionDateNotIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldTransactionDate, vs...))
}

// TransactionDateGT applies the GT predicate on the "transaction_date" field.
func TransactionDateGT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldTransactionDate, v))
}

// TransactionDateGTE applies the GTE predicate on the "transaction_date" field.
func TransactionDateGTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldTransactionDate, v))
}

// TransactionDateLT applies the LT predicate on the "transaction_date" field.
func TransactionDateLT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldTransactionDate, v))
}

// TransactionDateLTE applies the LTE predicate on the "transaction_date" field.
func TransactionDateLTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldTransactionDate, v))
}

// CounterpartyEQ applies the EQ predicate on the "counterparty" field.
func CounterpartyEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldCounterparty, v))
}

// CounterpartyNEQ applies the NEQ predicate on the "counterparty" field.
func CounterpartyNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldCounterparty, v))
}

// CounterpartyIn applies the In predicate on the "counterparty" field.
func CounterpartyIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldCounterparty, vs...))
}

// CounterpartyNotIn applies the NotIn predicate on the "counterparty" field.
func CounterpartyNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldCounterparty, vs...))
}

// CounterpartyGT applies the GT predicate on the "counterparty" field.
func CounterpartyGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldCounterparty, v))
}

// CounterpartyGTE applies the GTE predicate on the "counterparty" field.
func CounterpartyGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldCounterparty, v))
}

// CounterpartyLT applies the LT predicate on the "counterparty" field.
func CounterpartyLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldCounterparty, v))
}

// CounterpartyLTE applies the LTE predicate on the "counterparty" field.
func CounterpartyLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldCounterparty, v))
}

// CounterpartyContains applies the Contains predicate on the "counterparty" field.
func CounterpartyContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldCounterparty, v))
}

// CounterpartyHasPrefix applies the HasPrefix predicate on the "counterparty" field.
func CounterpartyHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldCounterparty, v))
}

// CounterpartyHasSuffix applies the HasSuffix predicate on the "counterparty" field.
func CounterpartyHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldCounterparty, v))
}

// CounterpartyIsNil applies the IsNil predicate on the "counterparty" field.
func CounterpartyIsNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIsNull(FieldCounterparty))
}

// CounterpartyNotNil applies the NotNil predicate on the "counterparty" field.
func CounterpartyNotNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotNull(FieldCounterparty))
}

// CounterpartyEqualFold applies the EqualFold predicate on the "counterparty" field.
func CounterpartyEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldCounterparty, v))
}

// CounterpartyContainsFold applies the ContainsFold predicate on the "counterparty" field.
func CounterpartyContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldCounterparty, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldCurrency, v))
}

// GrossCentsEQ applies the EQ predicate on the "gross_cents" field.
func GrossCentsEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldGrossCents, v))
}

// GrossCentsNEQ applies the NEQ predicate on the "gross_cents" field.
func GrossCentsNEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldGrossCents, v))
}

// GrossCentsIn applies the In predicate on the "gross_cents" field.
func GrossCentsIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldGrossCents, vs...))
}

// GrossCentsNotIn applies the NotIn predicate on the "gross_cents" field.
func GrossCentsNotIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldGrossCents, vs...))
}

// GrossCentsGT applies the GT predicate on the "gross_cents" field.
func GrossCentsGT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldGrossCents, v))
}

// GrossCentsGTE applies the GTE predicate on the "gross_cents" field.
func GrossCentsGTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldGrossCents, v))
}

// GrossCentsLT applies the LT predicate on the "gross_cents" field.
func GrossCentsLT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldGrossCents, v))
}

// GrossCentsLTE applies the LTE predicate on the "gross_cents" field.
func GrossCentsLTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldGrossCents, v))
}

// FeeCentsEQ applies the EQ predicate on the "fee_cents" field.
func FeeCentsEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldFeeCents, v))
}

// FeeCentsNEQ applies the NEQ predicate on the "fee_cents" field.
func FeeCentsNEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldFeeCents, v))
}

// FeeCentsIn applies the In predicate on the "fee_cents" field.
func FeeCentsIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldFeeCents, vs...))
}

// FeeCentsNotIn applies the NotIn predicate on the "fee_cents" field.
func FeeCentsNotIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldFeeCents, vs...))
}

// FeeCentsGT applies the GT predicate on the "fee_cents" field.
func FeeCentsGT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldFeeCents, v))
}

// FeeCentsGTE applies the GTE predicate on the "fee_cents" field.
func FeeCentsGTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldFeeCents, v))
}

// FeeCentsLT applies the LT predicate on the "fee_cents" field.
func FeeCentsLT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldFeeCents, v))
}

// FeeCentsLTE applies the LTE predicate on the "fee_cents" field.
func FeeCentsLTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldFeeCents, v))
}

// ShippingCentsEQ applies the EQ predicate on the "shipping_cents" field.
func ShippingCentsEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldShippingCents, v))
}

// ShippingCentsNEQ applies the NEQ predicate on the "shipping_cents" field.
func ShippingCentsNEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldShippingCents, v))
}

// ShippingCentsIn applies the In predicate on the "shipping_cents" field.
func ShippingCentsIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldShippingCents, vs...))
}

// ShippingCentsNotIn applies the NotIn predicate on the "shipping_cents" field.
func ShippingCentsNotIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldShippingCents, vs...))
}

// ShippingCentsGT applies the GT predicate on the "shipping_cents" field.
func ShippingCentsGT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldShippingCents, v))
}

// ShippingCentsGTE applies the GTE predicate on the "shipping_cents" field.
func ShippingCentsGTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldShippingCents, v))
}

// ShippingCentsLT applies the LT predicate on the "shipping_cents" field.
func ShippingCentsLT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldShippingCents, v))
}

// ShippingCentsLTE applies the LTE predicate on the "shipping_cents" field.
func ShippingCentsLTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldShippingCents, v))
}

// NetCentsEQ applies the EQ predicate on the "net_cents" field.
func NetCentsEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldNetCents, v))
}

// NetCentsNEQ applies the NEQ predicate on the "net_cents" field.
func NetCentsNEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldNetCents, v))
}

// NetCentsIn applies the In predicate on the "net_cents" field.
func NetCentsIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldNetCents, vs...))
}

// NetCentsNotIn applies the NotIn predicate on the "net_cents" field.
func NetCentsNotIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldNetCents, vs...))
}

// NetCentsGT applies the GT predicate on the "net_cents" field.
func NetCentsGT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldNetCents, v))
}

// NetCentsGTE applies the GTE predicate on the "net_cents" field.
func NetCentsGTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldNetCents, v))
}

// NetCentsLT applies the LT predicate on the "net_cents" field.
func NetCentsLT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldNetCents, v))
}

// NetCentsLTE applies the LTE predicate on the "net_cents" field.
func NetCentsLTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldNetCents, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldStatus, v))
}

// ItemTitleEQ applies the EQ predicate on the "item_title" field.
func ItemTitleEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldItemTitle, v))
}

// ItemTitleNEQ applies the NEQ predicate on the "item_title" field.
func ItemTitleNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldItemTitle, v))
}

// ItemTitleIn applies the In predicate on the "item_title" field.
func ItemTitleIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldItemTitle, vs...))
}

// ItemTitleNotIn applies the NotIn predicate on the "item_title" field.
func ItemTitleNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldItemTitle, vs...))
}

// ItemTitleGT applies the GT predicate on the "item_title" field.
func ItemTitleGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldItemTitle, v))
}

// ItemTitleGTE applies the GTE predicate on the "item_title" field.
func ItemTitleGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldItemTitle, v))
}

// ItemTitleLT applies the LT predicate on the "item_title" field.
func ItemTitleLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldItemTitle, v))
}

// ItemTitleLTE applies the LTE predicate on the "item_title" field.
func ItemTitleLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldItemTitle, v))
}

// ItemTitleContains applies the Contains predicate on the "item_title" field.
func ItemTitleContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldItemTitle, v))
}

// ItemTitleHasPrefix applies the HasPrefix predicate on the "item_title" field.
func ItemTitleHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldItemTitle, v))
}

// ItemTitleHasSuffix applies the HasSuffix predicate on the "item_title" field.
func ItemTitleHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldItemTitle, v))
}

// ItemTitleIsNil applies the IsNil predicate on the "item_title" field.
func ItemTitleIsNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIsNull(FieldItemTitle))
}

// ItemTitleNotNil applies the NotNil predicate on the "item_title" field.
func ItemTitleNotNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotNull(FieldItemTitle))
}

// ItemTitleEqualFold applies the EqualFold predicate on the "item_title" field.
func ItemTitleEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldItemTitle, v))
}

// ItemTitleContainsFold applies the ContainsFold predicate on the "item_title" field.
func ItemTitleContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldItemTitle, v))
}

// ItemSkuEQ applies the EQ predicate on the "item_sku" field.
func ItemSkuEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldItemSku, v))
}

// ItemSkuNEQ applies the NEQ predicate on the "item_sku" field.
func ItemSkuNEQ(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldItemSku, v))
}

// ItemSkuIn applies the In predicate on the "item_sku" field.
func ItemSkuIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldItemSku, vs...))
}

// ItemSkuNotIn applies the NotIn predicate on the "item_sku" field.
func ItemSkuNotIn(vs ...string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldItemSku, vs...))
}

// ItemSkuGT applies the GT predicate on the "item_sku" field.
func ItemSkuGT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldItemSku, v))
}

// ItemSkuGTE applies the GTE predicate on the "item_sku" field.
func ItemSkuGTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldItemSku, v))
}

// ItemSkuLT applies the LT predicate on the "item_sku" field.
func ItemSkuLT(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldItemSku, v))
}

// ItemSkuLTE applies the LTE predicate on the "item_sku" field.
func ItemSkuLTE(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldItemSku, v))
}

// ItemSkuContains applies the Contains predicate on the "item_sku" field.
func ItemSkuContains(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContains(FieldItemSku, v))
}

// ItemSkuHasPrefix applies the HasPrefix predicate on the "item_sku" field.
func ItemSkuHasPrefix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasPrefix(FieldItemSku, v))
}

// ItemSkuHasSuffix applies the HasSuffix predicate on the "item_sku" field.
func ItemSkuHasSuffix(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldHasSuffix(FieldItemSku, v))
}

// ItemSkuIsNil applies the IsNil predicate on the "item_sku" field.
func ItemSkuIsNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIsNull(FieldItemSku))
}

// ItemSkuNotNil applies the NotNil predicate on the "item_sku" field.
func ItemSkuNotNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotNull(FieldItemSku))
}

// ItemSkuEqualFold applies the EqualFold predicate on the "item_sku" field.
func ItemSkuEqualFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEqualFold(FieldItemSku, v))
}

// ItemSkuContainsFold applies the ContainsFold predicate on the "item_sku" field.
func ItemSkuContainsFold(v string) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldContainsFold(FieldItemSku, v))
}

// InventoryItemIDEQ applies the EQ predicate on the "inventory_item_id" field.
func InventoryItemIDEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldInventoryItemID, v))
}

// InventoryItemIDNEQ applies the NEQ predicate on the "inventory_item_id" field.
func InventoryItemIDNEQ(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldInventoryItemID, v))
}

// InventoryItemIDIn applies the In predicate on the "inventory_item_id" field.
func InventoryItemIDIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldInventoryItemID, vs...))
}

// InventoryItemIDNotIn applies the NotIn predicate on the "inventory_item_id" field.
func InventoryItemIDNotIn(vs ...int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldInventoryItemID, vs...))
}

// InventoryItemIDGT applies the GT predicate on the "inventory_item_id" field.
func InventoryItemIDGT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldInventoryItemID, v))
}

// InventoryItemIDGTE applies the GTE predicate on the "inventory_item_id" field.
func InventoryItemIDGTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldInventoryItemID, v))
}

// InventoryItemIDLT applies the LT predicate on the "inventory_item_id" field.
func InventoryItemIDLT(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldInventoryItemID, v))
}

// InventoryItemIDLTE applies the LTE predicate on the "inventory_item_id" field.
func InventoryItemIDLTE(v int64) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldInventoryItemID, v))
}

// InventoryItemIDIsNil applies the IsNil predicate on the "inventory_item_id" field.
func InventoryItemIDIsNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIsNull(FieldInventoryItemID))
}

// InventoryItemIDNotNil applies the NotNil predicate on the "inventory_item_id" field.
func InventoryItemIDNotNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotNull(FieldInventoryItemID))
}

// LastSyncedAtEQ applies the EQ predicate on the "last_synced_at" field.
func LastSyncedAtEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldLastSyncedAt, v))
}

// LastSyncedAtNEQ applies the NEQ predicate on the "last_synced_at" field.
func LastSyncedAtNEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldLastSyncedAt, v))
}

// LastSyncedAtIn applies the In predicate on the "last_synced_at" field.
func LastSyncedAtIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldLastSyncedAt, vs...))
}

// LastSyncedAtNotIn applies the NotIn predicate on the "last_synced_at" field.
func LastSyncedAtNotIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldLastSyncedAt, vs...))
}

// LastSyncedAtGT applies the GT predicate on the "last_synced_at" field.
func LastSyncedAtGT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldLastSyncedAt, v))
}

// LastSyncedAtGTE applies the GTE predicate on the "last_synced_at" field.
func LastSyncedAtGTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldLastSyncedAt, v))
}

// LastSyncedAtLT applies the LT predicate on the "last_synced_at" field.
func LastSyncedAtLT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldLastSyncedAt, v))
}

// LastSyncedAtLTE applies the LTE predicate on the "last_synced_at" field.
func LastSyncedAtLTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldLastSyncedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExternalRecord) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExternalRecord) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExternalRecord) predicate.ExternalRecord {
	return predicate.ExternalRecord(sql.NotPredicates(p))
}
