// Code generated by ent, DO NOT EDIT.

package externalrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the externalrecord type in the database.
	Label = "external_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldRecordType holds the string denoting the record_type field in the database.
	FieldRecordType = "record_type"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldLegacyExternalID holds the string denoting the legacy_external_id field in the database.
	FieldLegacyExternalID = "legacy_external_id"
	// FieldTransactionDate holds the string denoting the transaction_date field in the database.
	FieldTransactionDate = "transaction_date"
	// FieldCounterparty holds the string denoting the counterparty field in the database.
	FieldCounterparty = "counterparty"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldGrossCents holds the string denoting the gross_cents field in the database.
	FieldGrossCents = "gross_cents"
	// FieldFeeCents holds the string denoting the fee_cents field in the database.
	FieldFeeCents = "fee_cents"
	// FieldShippingCents holds the string denoting the shipping_cents field in the database.
	FieldShippingCents = "shipping_cents"
	// FieldNetCents holds the string denoting the net_cents field in the database.
	FieldNetCents = "net_cents"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldItemTitle holds the string denoting the item_title field in the database.
	FieldItemTitle = "item_title"
	// FieldItemSku holds the string denoting the item_sku field in the database.
	FieldItemSku = "item_sku"
	// FieldInventoryItemID holds the string denoting the inventory_item_id field in the database.
	FieldInventoryItemID = "inventory_item_id"
	// FieldLastSyncedAt holds the string denoting the last_synced_at field in the database.
	FieldLastSyncedAt = "last_synced_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the externalrecord in the database.
	Table = "external_records"
)

// Columns holds all SQL columns for externalrecord fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldProvider,
	FieldRecordType,
	FieldExternalID,
	FieldLegacyExternalID,
	FieldTransactionDate,
	FieldCounterparty,
	FieldCurrency,
	FieldGrossCents,
	FieldFeeCents,
	FieldShippingCents,
	FieldNetCents,
	FieldStatus,
	FieldItemTitle,
	FieldItemSku,
	FieldInventoryItemID,
	FieldLastSyncedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// DefaultGrossCents holds the default value on creation for the "gross_cents" field.
	DefaultGrossCents int64
	// DefaultFeeCents holds the default value on creation for the "fee_cents" field.
	DefaultFeeCents int64
	// DefaultShippingCents holds the default value on creation for the "shipping_cents" field.
	DefaultShippingCents int64
	// DefaultNetCents holds the default value on creation for the "net_cents" field.
	DefaultNetCents int64
)

// OrderOption defines the ordering options for the ExternalRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByRecordType orders the results by the record_type field.
func ByRecordType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordType, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByLegacyExternalID orders the results by the legacy_external_id field.
func ByLegacyExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyExternalID, opts...).ToFunc()
}

// ByTransactionDate orders the results by the transaction_date field.
func ByTransactionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionDate, opts...).ToFunc()
}

// ByCounterparty orders the results by the counterparty field.
func ByCounterparty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounterparty, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByGrossCents orders the results by the gross_cents field.
func ByGrossCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossCents, opts...).ToFunc()
}

// ByFeeCents orders the results by the fee_cents field.
func ByFeeCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeeCents, opts...).ToFunc()
}

// ByShippingCents orders the results by the shipping_cents field.
func ByShippingCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShippingCents, opts...).ToFunc()
}

// ByNetCents orders the results by the net_cents field.
func ByNetCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetCents, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByItemTitle orders the results by the item_title field.
func ByItemTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemTitle, opts...).ToFunc()
}

// ByItemSku orders the results by the item_sku field.
func ByItemSku(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemSku, opts...).ToFunc()
}

// ByInventoryItemID orders the results by the inventory_item_id field.
func ByInventoryItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInventoryItemID, opts...).ToFunc()
}

// ByLastSyncedAt orders the results by the last_synced_at field.
func ByLastSyncedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}
