// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExternalRecord is the predicate function for externalrecord builders.
type ExternalRecord func(*sql.Selector)

// InventoryItem is the predicate function for inventoryitem builders.
type InventoryItem func(*sql.Selector)

// MarketplaceCredential is the predicate function for marketplacecredential builders.
type MarketplaceCredential func(*sql.Selector)
