// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/ent/externalrecord"
	"github.com/aaron-lee-hebert/seller-metrics/ent/inventoryitem"
	"github.com/aaron-lee-hebert/seller-metrics/ent/marketplacecredential"
	"github.com/aaron-lee-hebert/seller-metrics/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	externalrecordMixin := schema.ExternalRecord{}.Mixin()
	externalrecordMixinFields0 := externalrecordMixin[0].Fields()
	_ = externalrecordMixinFields0
	externalrecordFields := schema.ExternalRecord{}.Fields()
	_ = externalrecordFields
	// externalrecordDescCreatedAt is the schema descriptor for created_at field.
	externalrecordDescCreatedAt := externalrecordMixinFields0[0].Descriptor()
	// externalrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	externalrecord.DefaultCreatedAt = externalrecordDescCreatedAt.Default.(func() time.Time)
	// externalrecordDescUpdatedAt is the schema descriptor for updated_at field.
	externalrecordDescUpdatedAt := externalrecordMixinFields0[1].Descriptor()
	// externalrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	externalrecord.DefaultUpdatedAt = externalrecordDescUpdatedAt.Default.(func() time.Time)
	// externalrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	externalrecord.UpdateDefaultUpdatedAt = externalrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// externalrecordDescCurrency is the schema descriptor for currency field.
	externalrecordDescCurrency := externalrecordFields[7].Descriptor()
	// externalrecord.DefaultCurrency holds the default value on creation for the currency field.
	externalrecord.DefaultCurrency = externalrecordDescCurrency.Default.(string)
	// externalrecordDescGrossCents is the schema descriptor for gross_cents field.
	externalrecordDescGrossCents := externalrecordFields[8].Descriptor()
	// externalrecord.DefaultGrossCents holds the default value on creation for the gross_cents field.
	externalrecord.DefaultGrossCents = externalrecordDescGrossCents.Default.(int64)
	// externalrecordDescFeeCents is the schema descriptor for fee_cents field.
	externalrecordDescFeeCents := externalrecordFields[9].Descriptor()
	// externalrecord.DefaultFeeCents holds the default value on creation for the fee_cents field.
	externalrecord.DefaultFeeCents = externalrecordDescFeeCents.Default.(int64)
	// externalrecordDescShippingCents is the schema descriptor for shipping_cents field.
	externalrecordDescShippingCents := externalrecordFields[10].Descriptor()
	// externalrecord.DefaultShippingCents holds the default value on creation for the shipping_cents field.
	externalrecord.DefaultShippingCents = externalrecordDescShippingCents.Default.(int64)
	// externalrecordDescNetCents is the schema descriptor for net_cents field.
	externalrecordDescNetCents := externalrecordFields[11].Descriptor()
	// externalrecord.DefaultNetCents holds the default value on creation for the net_cents field.
	externalrecord.DefaultNetCents = externalrecordDescNetCents.Default.(int64)
	inventoryitemMixin := schema.InventoryItem{}.Mixin()
	inventoryitemMixinFields0 := inventoryitemMixin[0].Fields()
	_ = inventoryitemMixinFields0
	inventoryitemFields := schema.InventoryItem{}.Fields()
	_ = inventoryitemFields
	// inventoryitemDescCreatedAt is the schema descriptor for created_at field.
	inventoryitemDescCreatedAt := inventoryitemMixinFields0[0].Descriptor()
	// inventoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inventoryitem.DefaultCreatedAt = inventoryitemDescCreatedAt.Default.(func() time.Time)
	// inventoryitemDescUpdatedAt is the schema descriptor for updated_at field.
	inventoryitemDescUpdatedAt := inventoryitemMixinFields0[1].Descriptor()
	// inventoryitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inventoryitem.DefaultUpdatedAt = inventoryitemDescUpdatedAt.Default.(func() time.Time)
	// inventoryitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inventoryitem.UpdateDefaultUpdatedAt = inventoryitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inventoryitemDescStatus is the schema descriptor for status field.
	inventoryitemDescStatus := inventoryitemFields[4].Descriptor()
	// inventoryitem.DefaultStatus holds the default value on creation for the status field.
	inventoryitem.DefaultStatus = inventoryitemDescStatus.Default.(string)
	// inventoryitemDescCurrency is the schema descriptor for currency field.
	inventoryitemDescCurrency := inventoryitemFields[5].Descriptor()
	// inventoryitem.DefaultCurrency holds the default value on creation for the currency field.
	inventoryitem.DefaultCurrency = inventoryitemDescCurrency.Default.(string)
	// inventoryitemDescPurchaseCents is the schema descriptor for purchase_cents field.
	inventoryitemDescPurchaseCents := inventoryitemFields[6].Descriptor()
	// inventoryitem.DefaultPurchaseCents holds the default value on creation for the purchase_cents field.
	inventoryitem.DefaultPurchaseCents = inventoryitemDescPurchaseCents.Default.(int64)
	marketplacecredentialMixin := schema.MarketplaceCredential{}.Mixin()
	marketplacecredentialMixinFields0 := marketplacecredentialMixin[0].Fields()
	_ = marketplacecredentialMixinFields0
	marketplacecredentialFields := schema.MarketplaceCredential{}.Fields()
	_ = marketplacecredentialFields
	// marketplacecredentialDescCreatedAt is the schema descriptor for created_at field.
	marketplacecredentialDescCreatedAt := marketplacecredentialMixinFields0[0].Descriptor()
	// marketplacecredential.DefaultCreatedAt holds the default value on creation for the created_at field.
	marketplacecredential.DefaultCreatedAt = marketplacecredentialDescCreatedAt.Default.(func() time.Time)
	// marketplacecredentialDescUpdatedAt is the schema descriptor for updated_at field.
	marketplacecredentialDescUpdatedAt := marketplacecredentialMixinFields0[1].Descriptor()
	// marketplacecredential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	marketplacecredential.DefaultUpdatedAt = marketplacecredentialDescUpdatedAt.Default.(func() time.Time)
	// marketplacecredential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	marketplacecredential.UpdateDefaultUpdatedAt = marketplacecredentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// marketplacecredentialDescConnected is the schema descriptor for connected field.
	marketplacecredentialDescConnected := marketplacecredentialFields[6].Descriptor()
	// marketplacecredential.DefaultConnected holds the default value on creation for the connected field.
	marketplacecredential.DefaultConnected = marketplacecredentialDescConnected.Default.(bool)
	// marketplacecredentialDescSyncVersion is the schema descriptor for sync_version field.
	marketplacecredentialDescSyncVersion := marketplacecredentialFields[12].Descriptor()
	// marketplacecredential.DefaultSyncVersion holds the default value on creation for the sync_version field.
	marketplacecredential.DefaultSyncVersion = marketplacecredentialDescSyncVersion.Default.(int64)
}
