//go:build unit

package testutil

import (
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
)

// NewTestCredential builds a connected marketplace credential; override
// defaults through opts.
func NewTestCredential(opts ...func(*service.Credential)) *service.Credential {
	accessExp := time.Now().Add(time.Hour)
	refreshExp := time.Now().Add(30 * 24 * time.Hour)
	c := &service.Credential{
		ID:                    1,
		UserID:                1,
		Provider:              service.ProviderMarketplace,
		AccessTokenCipher:     "enc:access-token",
		RefreshTokenCipher:    "enc:refresh-token",
		AccessTokenExpiresAt:  &accessExp,
		RefreshTokenExpiresAt: &refreshExp,
		Connected:             true,
		ExternalAccountID:     "acct-1",
		AccountDisplayName:    "test-seller",
		Scope:                 "sell.fulfillment",
		SyncVersion:           1,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestExternalRecord builds a reconciled order record; override
// defaults through opts.
func NewTestExternalRecord(opts ...func(*service.ExternalRecord)) *service.ExternalRecord {
	r := &service.ExternalRecord{
		ID:              1,
		UserID:          1,
		Provider:        service.ProviderMarketplace,
		RecordType:      service.RecordTypeOrder,
		ExternalID:      "11-22222-33333",
		TransactionDate: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		Counterparty:    "buyer-1",
		Gross:           service.NewMoney(2599, "USD"),
		Fee:             service.NewMoney(338, "USD"),
		Shipping:        service.NewMoney(450, "USD"),
		Net:             service.NewMoney(2261, "USD"),
		Status:          service.StatusCompleted,
		ItemTitle:       "Vintage Camera",
		ItemSKU:         "CAM-001",
		LastSyncedAt:    time.Now(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestInventoryItem builds a listed inventory item; override defaults
// through opts.
func NewTestInventoryItem(opts ...func(*service.InventoryItem)) *service.InventoryItem {
	i := &service.InventoryItem{
		ID:             1,
		UserID:         1,
		Name:           "Vintage Camera",
		SKU:            "CAM-001",
		MarketplaceSKU: "MKT-CAM-001",
		Status:         service.InventoryListed,
		PurchasePrice:  service.NewMoney(1200, "USD"),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}
