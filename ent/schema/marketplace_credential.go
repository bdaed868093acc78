// Package schema defines the Ent ORM database schema.
// Each file maps to one database entity (table) with its fields,
// edges and indexes.
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

// MarketplaceCredential stores the OAuth-style connection state for one
// (user, provider) pair. Tokens are kept encrypted at rest; the row is
// never hard-deleted, disconnect only clears tokens and flips connected.
type MarketplaceCredential struct {
	ent.Schema
}

// Annotations of the MarketplaceCredential.
func (MarketplaceCredential) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "marketplace_credentials"},
	}
}

// Mixin of the MarketplaceCredential.
func (MarketplaceCredential) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.TimeMixin{},
	}
}

// Fields of the MarketplaceCredential.
func (MarketplaceCredential) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.String("provider").
			Comment("provider kind: marketplace | invoicing"),
		field.String("access_token_cipher").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("refresh_token_cipher").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("access_token_expires_at").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
		field.Time("refresh_token_expires_at").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
		field.Bool("connected").
			Default(false),
		field.String("external_account_id").
			Optional().
			Nillable(),
		field.String("account_display_name").
			Optional().
			Nillable(),
		field.String("scope").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("last_synced_at").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
		field.String("last_sync_error").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int64("sync_version").
			Default(1).
			Comment("optimistic concurrency token, bumped on every credential write"),
	}
}

// Indexes of the MarketplaceCredential.
func (MarketplaceCredential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "provider").Unique(),
		index.Fields("connected"),
	}
}
