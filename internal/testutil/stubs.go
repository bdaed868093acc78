//go:build unit

// Package testutil provides stubs, fixtures and helpers shared by unit
// tests. Every file carries //go:build unit so production builds never
// include it.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/invoicing"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/pagination"
	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
)

// PlainCipher is a transparent service.TokenCipher for tests: Encrypt
// prefixes "enc:", Decrypt strips it.
type PlainCipher struct{}

var _ service.TokenCipher = PlainCipher{}

func (PlainCipher) Encrypt(plaintext string) (string, error) { return "enc:" + plaintext, nil }

func (PlainCipher) Decrypt(ciphertext string) (string, error) {
	if !strings.HasPrefix(ciphertext, "enc:") {
		return "", fmt.Errorf("not a test ciphertext: %q", ciphertext)
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

// StubCredentialRepository implements service.CredentialRepository with
// overridable func fields; unset methods panic so tests fail loudly on
// unexpected calls.
type StubCredentialRepository struct {
	GetByUserAndProviderFunc func(ctx context.Context, userID int64, provider service.ProviderKind) (*service.Credential, error)
	CreateFunc               func(ctx context.Context, cred *service.Credential) error
	UpdateFunc               func(ctx context.Context, cred *service.Credential) error
	ListConnectedFunc        func(ctx context.Context) ([]service.Credential, error)
}

var _ service.CredentialRepository = (*StubCredentialRepository)(nil)

func (s *StubCredentialRepository) GetByUserAndProvider(ctx context.Context, userID int64, provider service.ProviderKind) (*service.Credential, error) {
	if s.GetByUserAndProviderFunc != nil {
		return s.GetByUserAndProviderFunc(ctx, userID, provider)
	}
	panic("GetByUserAndProvider not implemented")
}

func (s *StubCredentialRepository) Create(ctx context.Context, cred *service.Credential) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, cred)
	}
	panic("Create not implemented")
}

func (s *StubCredentialRepository) Update(ctx context.Context, cred *service.Credential) error {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, cred)
	}
	panic("Update not implemented")
}

func (s *StubCredentialRepository) ListConnected(ctx context.Context) ([]service.Credential, error) {
	if s.ListConnectedFunc != nil {
		return s.ListConnectedFunc(ctx)
	}
	panic("ListConnected not implemented")
}

// StubExternalRecordRepository implements service.ExternalRecordRepository
// with overridable func fields.
type StubExternalRecordRepository struct {
	GetByExternalIDFunc func(ctx context.Context, userID int64, provider service.ProviderKind, externalID string) (*service.ExternalRecord, error)
	CreateFunc          func(ctx context.Context, record *service.ExternalRecord) error
	UpdateFunc          func(ctx context.Context, record *service.ExternalRecord) error
	WasTombstonedFunc   func(ctx context.Context, userID int64, provider service.ProviderKind, externalID string) (bool, error)
	ListFunc            func(ctx context.Context, userID int64, recordType string, params pagination.PaginationParams) ([]service.ExternalRecord, *pagination.PaginationResult, error)
	SoftDeleteFunc      func(ctx context.Context, userID, id int64) (bool, error)
}

var _ service.ExternalRecordRepository = (*StubExternalRecordRepository)(nil)

func (s *StubExternalRecordRepository) GetByExternalID(ctx context.Context, userID int64, provider service.ProviderKind, externalID string) (*service.ExternalRecord, error) {
	if s.GetByExternalIDFunc != nil {
		return s.GetByExternalIDFunc(ctx, userID, provider, externalID)
	}
	panic("GetByExternalID not implemented")
}

func (s *StubExternalRecordRepository) Create(ctx context.Context, record *service.ExternalRecord) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, record)
	}
	panic("Create not implemented")
}

func (s *StubExternalRecordRepository) Update(ctx context.Context, record *service.ExternalRecord) error {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, record)
	}
	panic("Update not implemented")
}

func (s *StubExternalRecordRepository) WasTombstoned(ctx context.Context, userID int64, provider service.ProviderKind, externalID string) (bool, error) {
	if s.WasTombstonedFunc != nil {
		return s.WasTombstonedFunc(ctx, userID, provider, externalID)
	}
	panic("WasTombstoned not implemented")
}

func (s *StubExternalRecordRepository) List(ctx context.Context, userID int64, recordType string, params pagination.PaginationParams) ([]service.ExternalRecord, *pagination.PaginationResult, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx, userID, recordType, params)
	}
	panic("List not implemented")
}

func (s *StubExternalRecordRepository) SoftDelete(ctx context.Context, userID, id int64) (bool, error) {
	if s.SoftDeleteFunc != nil {
		return s.SoftDeleteFunc(ctx, userID, id)
	}
	panic("SoftDelete not implemented")
}

// StubInventoryRepository implements service.InventoryRepository with
// overridable func fields. Find methods default to "no match" because
// most tests do not exercise linking.
type StubInventoryRepository struct {
	GetByIDFunc              func(ctx context.Context, userID, id int64) (*service.InventoryItem, error)
	FindByMarketplaceSKUFunc func(ctx context.Context, userID int64, sku string) (*service.InventoryItem, error)
	FindBySKUFunc            func(ctx context.Context, userID int64, sku string) (*service.InventoryItem, error)
	UpdateFunc               func(ctx context.Context, item *service.InventoryItem) error
}

var _ service.InventoryRepository = (*StubInventoryRepository)(nil)

func (s *StubInventoryRepository) GetByID(ctx context.Context, userID, id int64) (*service.InventoryItem, error) {
	if s.GetByIDFunc != nil {
		return s.GetByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (s *StubInventoryRepository) FindByMarketplaceSKU(ctx context.Context, userID int64, sku string) (*service.InventoryItem, error) {
	if s.FindByMarketplaceSKUFunc != nil {
		return s.FindByMarketplaceSKUFunc(ctx, userID, sku)
	}
	return nil, nil
}

func (s *StubInventoryRepository) FindBySKU(ctx context.Context, userID int64, sku string) (*service.InventoryItem, error) {
	if s.FindBySKUFunc != nil {
		return s.FindBySKUFunc(ctx, userID, sku)
	}
	return nil, nil
}

func (s *StubInventoryRepository) Update(ctx context.Context, item *service.InventoryItem) error {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, item)
	}
	return nil
}

// StubMarketplaceClient implements service.MarketplaceClient with
// overridable func fields.
type StubMarketplaceClient struct {
	ExchangeCodeFunc       func(ctx context.Context, code string) (*marketplace.TokenGrant, error)
	RefreshAccessTokenFunc func(ctx context.Context, refreshToken string) (*marketplace.TokenGrant, error)
	GetAccountIdentityFunc func(ctx context.Context, accessToken string) (*marketplace.AccountIdentity, error)
	ValidateTokenFunc      func(ctx context.Context, accessToken string) (bool, error)
	FetchOrdersFunc        func(ctx context.Context, accessToken string, start, end time.Time) ([]marketplace.Order, error)
}

var _ service.MarketplaceClient = (*StubMarketplaceClient)(nil)

func (s *StubMarketplaceClient) ExchangeCode(ctx context.Context, code string) (*marketplace.TokenGrant, error) {
	if s.ExchangeCodeFunc != nil {
		return s.ExchangeCodeFunc(ctx, code)
	}
	panic("ExchangeCode not implemented")
}

func (s *StubMarketplaceClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*marketplace.TokenGrant, error) {
	if s.RefreshAccessTokenFunc != nil {
		return s.RefreshAccessTokenFunc(ctx, refreshToken)
	}
	panic("RefreshAccessToken not implemented")
}

func (s *StubMarketplaceClient) GetAccountIdentity(ctx context.Context, accessToken string) (*marketplace.AccountIdentity, error) {
	if s.GetAccountIdentityFunc != nil {
		return s.GetAccountIdentityFunc(ctx, accessToken)
	}
	panic("GetAccountIdentity not implemented")
}

func (s *StubMarketplaceClient) ValidateToken(ctx context.Context, accessToken string) (bool, error) {
	if s.ValidateTokenFunc != nil {
		return s.ValidateTokenFunc(ctx, accessToken)
	}
	panic("ValidateToken not implemented")
}

func (s *StubMarketplaceClient) FetchOrders(ctx context.Context, accessToken string, start, end time.Time) ([]marketplace.Order, error) {
	if s.FetchOrdersFunc != nil {
		return s.FetchOrdersFunc(ctx, accessToken, start, end)
	}
	panic("FetchOrders not implemented")
}

// StubInvoicingClient implements service.InvoicingClient with
// overridable func fields.
type StubInvoicingClient struct {
	ValidateTokenFunc      func(ctx context.Context, accessToken string) (bool, error)
	GetBusinessProfileFunc func(ctx context.Context, accessToken string) (*invoicing.BusinessProfile, error)
	FetchInvoicesFunc      func(ctx context.Context, accessToken, businessID string, start, end time.Time) ([]invoicing.Invoice, error)
}

var _ service.InvoicingClient = (*StubInvoicingClient)(nil)

func (s *StubInvoicingClient) ValidateToken(ctx context.Context, accessToken string) (bool, error) {
	if s.ValidateTokenFunc != nil {
		return s.ValidateTokenFunc(ctx, accessToken)
	}
	panic("ValidateToken not implemented")
}

func (s *StubInvoicingClient) GetBusinessProfile(ctx context.Context, accessToken string) (*invoicing.BusinessProfile, error) {
	if s.GetBusinessProfileFunc != nil {
		return s.GetBusinessProfileFunc(ctx, accessToken)
	}
	panic("GetBusinessProfile not implemented")
}

func (s *StubInvoicingClient) FetchInvoices(ctx context.Context, accessToken, businessID string, start, end time.Time) ([]invoicing.Invoice, error) {
	if s.FetchInvoicesFunc != nil {
		return s.FetchInvoicesFunc(ctx, accessToken, businessID, start, end)
	}
	panic("FetchInvoices not implemented")
}
