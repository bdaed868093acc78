// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExternalRecordsColumns holds the columns for the "external_records" table.
	ExternalRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "record_type", Type: field.TypeString},
		{Name: "external_id", Type: field.TypeString},
		{Name: "legacy_external_id", Type: field.TypeString, Nullable: true},
		{Name: "transaction_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "counterparty", Type: field.TypeString, Nullable: true},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "gross_cents", Type: field.TypeInt64, Default: 0},
		{Name: "fee_cents", Type: field.TypeInt64, Default: 0},
		{Name: "shipping_cents", Type: field.TypeInt64, Default: 0},
		{Name: "net_cents", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "item_title", Type: field.TypeString, Nullable: true},
		{Name: "item_sku", Type: field.TypeString, Nullable: true},
		{Name: "inventory_item_id", Type: field.TypeInt64, Nullable: true},
		{Name: "last_synced_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// ExternalRecordsTable holds the schema information for the "external_records" table.
	ExternalRecordsTable = &schema.Table{
		Name:       "external_records",
		Columns:    ExternalRecordsColumns,
		PrimaryKey: []*schema.Column{ExternalRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "externalrecord_user_id_provider_external_id",
				Unique:  true,
				Columns: []*schema.Column{ExternalRecordsColumns[3], ExternalRecordsColumns[4], ExternalRecordsColumns[6]},
			},
			{
				Name:    "externalrecord_user_id_record_type",
				Unique:  false,
				Columns: []*schema.Column{ExternalRecordsColumns[3], ExternalRecordsColumns[5]},
			},
			{
				Name:    "externalrecord_legacy_external_id",
				Unique:  false,
				Columns: []*schema.Column{ExternalRecordsColumns[7]},
			},
			{
				Name:    "externalrecord_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ExternalRecordsColumns[20]},
			},
		},
	}
	// InventoryItemsColumns holds the columns for the "inventory_items" table.
	InventoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "name", Type: field.TypeString},
		{Name: "sku", Type: field.TypeString, Nullable: true},
		{Name: "marketplace_sku", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "available"},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "purchase_cents", Type: field.TypeInt64, Default: 0},
		{Name: "sold_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// InventoryItemsTable holds the schema information for the "inventory_items" table.
	InventoryItemsTable = &schema.Table{
		Name:       "inventory_items",
		Columns:    InventoryItemsColumns,
		PrimaryKey: []*schema.Column{InventoryItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inventoryitem_user_id_sku",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[3], InventoryItemsColumns[5]},
			},
			{
				Name:    "inventoryitem_user_id_marketplace_sku",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[3], InventoryItemsColumns[6]},
			},
			{
				Name:    "inventoryitem_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[3], InventoryItemsColumns[7]},
			},
		},
	}
	// MarketplaceCredentialsColumns holds the columns for the "marketplace_credentials" table.
	MarketplaceCredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "access_token_cipher", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "refresh_token_cipher", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "access_token_expires_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "refresh_token_expires_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "connected", Type: field.TypeBool, Default: false},
		{Name: "external_account_id", Type: field.TypeString, Nullable: true},
		{Name: "account_display_name", Type: field.TypeString, Nullable: true},
		{Name: "scope", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "last_synced_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "last_sync_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "sync_version", Type: field.TypeInt64, Default: 1},
	}
	// MarketplaceCredentialsTable holds the schema information for the "marketplace_credentials" table.
	MarketplaceCredentialsTable = &schema.Table{
		Name:       "marketplace_credentials",
		Columns:    MarketplaceCredentialsColumns,
		PrimaryKey: []*schema.Column{MarketplaceCredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "marketplacecredential_user_id_provider",
				Unique:  true,
				Columns: []*schema.Column{MarketplaceCredentialsColumns[3], MarketplaceCredentialsColumns[4]},
			},
			{
				Name:    "marketplacecredential_connected",
				Unique:  false,
				Columns: []*schema.Column{MarketplaceCredentialsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExternalRecordsTable,
		InventoryItemsTable,
		MarketplaceCredentialsTable,
	}
)

func init() {
	ExternalRecordsTable.Annotation = &entsql.Annotation{
		Table: "external_records",
	}
	InventoryItemsTable.Annotation = &entsql.Annotation{
		Table: "inventory_items",
	}
	MarketplaceCredentialsTable.Annotation = &entsql.Annotation{
		Table: "marketplace_credentials",
	}
}
