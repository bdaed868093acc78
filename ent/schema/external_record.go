package schema

import (
	"github.com/aaron-lee-hebert/seller-metrics/ent/schema/mixins"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExternalRecord is an order or invoice reconciled from a provider.
// Rows are soft-deleted: a non-nil deleted_at acts as a tombstone that
// keeps a later sync from resurrecting the record.
type ExternalRecord struct {
	ent.Schema
}

// Annotations of the ExternalRecord.
func (ExternalRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "external_records"},
	}
}

// Mixin of the ExternalRecord.
func (ExternalRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.TimeMixin{},
	}
}

// Fields of the ExternalRecord.
func (ExternalRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.String("provider"),
		field.String("record_type").
			Comment("order | invoice"),
		field.String("external_id"),
		field.String("legacy_external_id").
			Optional().
			Nillable().
			Comment("secondary provider identifier kept for backward-compat matching"),
		field.Time("transaction_date").
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
		field.String("counterparty").
			Optional().
			Nillable(),
		field.String("currency").
			Default("USD"),
		field.Int64("gross_cents").
			Default(0),
		field.Int64("fee_cents").
			Default(0),
		field.Int64("shipping_cents").
			Default(0),
		field.Int64("net_cents").
			Default(0),
		field.String("status"),
		field.String("item_title").
			Optional().
			Nillable(),
		field.String("item_sku").
			Optional().
			Nillable(),
		field.Int64("inventory_item_id").
			Optional().
			Nillable(),
		field.Time("last_synced_at").
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
		field.Time("deleted_at").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

// Indexes of the ExternalRecord.
func (ExternalRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "provider", "external_id").Unique(),
		index.Fields("user_id", "record_type"),
		index.Fields("legacy_external_id"),
		index.Fields("deleted_at"),
	}
}
