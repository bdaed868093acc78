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

// InventoryItem is a locally tracked resale item. Synced records link to
// it through SKU matching.
type InventoryItem struct {
	ent.Schema
}

// Annotations of the InventoryItem.
func (InventoryItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "inventory_items"},
	}
}

// Mixin of the InventoryItem.
func (InventoryItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.TimeMixin{},
	}
}

// Fields of the InventoryItem.
func (InventoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.String("name"),
		field.String("sku").
			Optional().
			Nillable().
			Comment("internal SKU assigned by the seller"),
		field.String("marketplace_sku").
			Optional().
			Nillable().
			Comment("SKU as listed on the marketplace, when it differs"),
		field.String("status").
			Default("available").
			Comment("available | listed | sold"),
		field.String("currency").
			Default("USD"),
		field.Int64("purchase_cents").
			Default(0),
		field.Time("sold_at").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

// Indexes of the InventoryItem.
func (InventoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "sku"),
		index.Fields("user_id", "marketplace_sku"),
		index.Fields("user_id", "status"),
	}
}
