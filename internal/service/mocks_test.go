//go:build unit

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	infraerrors "github.com/aaron-lee-hebert/seller-metrics/internal/pkg/errors"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/invoicing"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/pagination"
)

// identityCipher is a transparent TokenCipher: Encrypt prefixes "enc:",
// Decrypt strips it. Tests assert on plaintext without real crypto.
type identityCipher struct{}

func (identityCipher) Encrypt(plaintext string) (string, error) { return "enc:" + plaintext, nil }

func (identityCipher) Decrypt(ciphertext string) (string, error) {
	if !strings.HasPrefix(ciphertext, "enc:") {
		return "", fmt.Errorf("bad ciphertext %q", ciphertext)
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

// --- mock: CredentialRepository ---

type mockCredentialRepo struct {
	getFunc           func(ctx context.Context, userID int64, provider ProviderKind) (*Credential, error)
	createFunc        func(ctx context.Context, cred *Credential) error
	updateFunc        func(ctx context.Context, cred *Credential) error
	listConnectedFunc func(ctx context.Context) ([]Credential, error)
	updateCalls       int
}

func (m *mockCredentialRepo) GetByUserAndProvider(ctx context.Context, userID int64, provider ProviderKind) (*Credential, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, provider)
	}
	panic("GetByUserAndProvider not implemented")
}

func (m *mockCredentialRepo) Create(ctx context.Context, cred *Credential) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, cred)
	}
	panic("Create not implemented")
}

func (m *mockCredentialRepo) Update(ctx context.Context, cred *Credential) error {
	m.updateCalls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, cred)
	}
	return nil
}

func (m *mockCredentialRepo) ListConnected(ctx context.Context) ([]Credential, error) {
	if m.listConnectedFunc != nil {
		return m.listConnectedFunc(ctx)
	}
	panic("ListConnected not implemented")
}

// --- mock: ExternalRecordRepository ---

// memoryRecordRepo keeps records in memory keyed by external id. It
// covers the reconciliation tests' need for real create/update/tombstone
// semantics without a database.
type memoryRecordRepo struct {
	records    map[string]*ExternalRecord
	tombstones map[string]bool
	nextID     int64
	createErr  error
	updateErr  error
}

func newMemoryRecordRepo() *memoryRecordRepo {
	return &memoryRecordRepo{
		records:    make(map[string]*ExternalRecord),
		tombstones: make(map[string]bool),
		nextID:     1,
	}
}

func recordKey(userID int64, provider ProviderKind, externalID string) string {
	return fmt.Sprintf("%d/%s/%s", userID, provider, externalID)
}

func (m *memoryRecordRepo) GetByExternalID(_ context.Context, userID int64, provider ProviderKind, externalID string) (*ExternalRecord, error) {
	rec, ok := m.records[recordKey(userID, provider, externalID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memoryRecordRepo) Create(_ context.Context, record *ExternalRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	record.ID = m.nextID
	m.nextID++
	cp := *record
	m.records[recordKey(record.UserID, record.Provider, record.ExternalID)] = &cp
	return nil
}

func (m *memoryRecordRepo) Update(_ context.Context, record *ExternalRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	cp := *record
	m.records[recordKey(record.UserID, record.Provider, record.ExternalID)] = &cp
	return nil
}

func (m *memoryRecordRepo) WasTombstoned(_ context.Context, userID int64, provider ProviderKind, externalID string) (bool, error) {
	return m.tombstones[recordKey(userID, provider, externalID)], nil
}

func (m *memoryRecordRepo) List(_ context.Context, userID int64, recordType string, params pagination.PaginationParams) ([]ExternalRecord, *pagination.PaginationResult, error) {
	var out []ExternalRecord
	for _, rec := range m.records {
		if rec.UserID != userID {
			continue
		}
		if recordType != "" && string(rec.RecordType) != recordType {
			continue
		}
		out = append(out, *rec)
	}
	return out, pagination.NewResult(int64(len(out)), params), nil
}

func (m *memoryRecordRepo) SoftDelete(_ context.Context, userID, id int64) (bool, error) {
	for key, rec := range m.records {
		if rec.UserID == userID && rec.ID == id {
			delete(m.records, key)
			m.tombstones[key] = true
			return true, nil
		}
	}
	return false, nil
}

// --- mock: InventoryRepository ---

type mockInventoryRepo struct {
	getByIDFunc              func(ctx context.Context, userID, id int64) (*InventoryItem, error)
	findByMarketplaceSKUFunc func(ctx context.Context, userID int64, sku string) (*InventoryItem, error)
	findBySKUFunc            func(ctx context.Context, userID int64, sku string) (*InventoryItem, error)
	updateFunc               func(ctx context.Context, item *InventoryItem) error
}

func (m *mockInventoryRepo) GetByID(ctx context.Context, userID, id int64) (*InventoryItem, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockInventoryRepo) FindByMarketplaceSKU(ctx context.Context, userID int64, sku string) (*InventoryItem, error) {
	if m.findByMarketplaceSKUFunc != nil {
		return m.findByMarketplaceSKUFunc(ctx, userID, sku)
	}
	return nil, nil
}

func (m *mockInventoryRepo) FindBySKU(ctx context.Context, userID int64, sku string) (*InventoryItem, error) {
	if m.findBySKUFunc != nil {
		return m.findBySKUFunc(ctx, userID, sku)
	}
	return nil, nil
}

func (m *mockInventoryRepo) Update(ctx context.Context, item *InventoryItem) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, item)
	}
	return nil
}

// --- mock: MarketplaceClient ---

type mockMarketplaceClient struct {
	exchangeCodeFunc       func(ctx context.Context, code string) (*marketplace.TokenGrant, error)
	refreshAccessTokenFunc func(ctx context.Context, refreshToken string) (*marketplace.TokenGrant, error)
	getAccountIdentityFunc func(ctx context.Context, accessToken string) (*marketplace.AccountIdentity, error)
	validateTokenFunc      func(ctx context.Context, accessToken string) (bool, error)
	fetchOrdersFunc        func(ctx context.Context, accessToken string, start, end time.Time) ([]marketplace.Order, error)
	refreshCalls           int
	fetchCalls             int
}

func (m *mockMarketplaceClient) ExchangeCode(ctx context.Context, code string) (*marketplace.TokenGrant, error) {
	if m.exchangeCodeFunc != nil {
		return m.exchangeCodeFunc(ctx, code)
	}
	panic("ExchangeCode not implemented")
}

func (m *mockMarketplaceClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*marketplace.TokenGrant, error) {
	m.refreshCalls++
	if m.refreshAccessTokenFunc != nil {
		return m.refreshAccessTokenFunc(ctx, refreshToken)
	}
	panic("RefreshAccessToken not implemented")
}

func (m *mockMarketplaceClient) GetAccountIdentity(ctx context.Context, accessToken string) (*marketplace.AccountIdentity, error) {
	if m.getAccountIdentityFunc != nil {
		return m.getAccountIdentityFunc(ctx, accessToken)
	}
	panic("GetAccountIdentity not implemented")
}

func (m *mockMarketplaceClient) ValidateToken(ctx context.Context, accessToken string) (bool, error) {
	if m.validateTokenFunc != nil {
		return m.validateTokenFunc(ctx, accessToken)
	}
	panic("ValidateToken not implemented")
}

func (m *mockMarketplaceClient) FetchOrders(ctx context.Context, accessToken string, start, end time.Time) ([]marketplace.Order, error) {
	m.fetchCalls++
	if m.fetchOrdersFunc != nil {
		return m.fetchOrdersFunc(ctx, accessToken, start, end)
	}
	panic("FetchOrders not implemented")
}

// --- mock: InvoicingClient ---

type mockInvoicingClient struct {
	validateTokenFunc      func(ctx context.Context, accessToken string) (bool, error)
	getBusinessProfileFunc func(ctx context.Context, accessToken string) (*invoicing.BusinessProfile, error)
	fetchInvoicesFunc      func(ctx context.Context, accessToken, businessID string, start, end time.Time) ([]invoicing.Invoice, error)
}

func (m *mockInvoicingClient) ValidateToken(ctx context.Context, accessToken string) (bool, error) {
	if m.validateTokenFunc != nil {
		return m.validateTokenFunc(ctx, accessToken)
	}
	panic("ValidateToken not implemented")
}

func (m *mockInvoicingClient) GetBusinessProfile(ctx context.Context, accessToken string) (*invoicing.BusinessProfile, error) {
	if m.getBusinessProfileFunc != nil {
		return m.getBusinessProfileFunc(ctx, accessToken)
	}
	panic("GetBusinessProfile not implemented")
}

func (m *mockInvoicingClient) FetchInvoices(ctx context.Context, accessToken, businessID string, start, end time.Time) ([]invoicing.Invoice, error) {
	if m.fetchInvoicesFunc != nil {
		return m.fetchInvoicesFunc(ctx, accessToken, businessID, start, end)
	}
	panic("FetchInvoices not implemented")
}

// --- shared test helpers ---

func isReason(err error, reason string) bool {
	return infraerrors.IsReason(err, reason)
}

func connectedCredential(provider ProviderKind) *Credential {
	accessExp := time.Now().Add(time.Hour)
	cred := &Credential{
		ID:                   1,
		UserID:               1,
		Provider:             provider,
		AccessTokenCipher:    "enc:access-token",
		AccessTokenExpiresAt: &accessExp,
		Connected:            true,
		ExternalAccountID:    "acct-1",
		SyncVersion:          1,
	}
	if provider == ProviderMarketplace {
		refreshExp := time.Now().Add(30 * 24 * time.Hour)
		cred.RefreshTokenCipher = "enc:refresh-token"
		cred.RefreshTokenExpiresAt = &refreshExp
	}
	return cred
}

func testOrder(id string) marketplace.Order {
	return marketplace.Order{
		OrderID:                id,
		LegacyOrderID:          "legacy-" + id,
		CreationDate:           time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		OrderFulfillmentStatus: "FULFILLED",
		Buyer:                  marketplace.Buyer{Username: "buyer-1"},
		PricingSummary: marketplace.PricingSummary{
			Total:         marketplace.Amount{Value: "25.99", Currency: "USD"},
			DeliveryCost:  marketplace.Amount{Value: "4.50", Currency: "USD"},
			TotalFeeBasis: marketplace.Amount{Value: "3.38", Currency: "USD"},
		},
		LineItems: []marketplace.LineItem{
			{LineItemID: "li-1", SKU: "CAM-001", Title: "Vintage Camera", Quantity: 1},
		},
	}
}
