// Package service holds the synchronization engine: domain types, the
// credential lifecycle manager, the reconciliation engine and the sync
// orchestrator. Repository and provider-client interfaces are declared
// here and implemented under internal/repository and internal/pkg.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/invoicing"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/pagination"
)

// ProviderKind names an external provider.
type ProviderKind string

const (
	// ProviderMarketplace is the sales marketplace (orders, OAuth with
	// rotating refresh tokens).
	ProviderMarketplace ProviderKind = "marketplace"
	// ProviderInvoicing is the invoicing service (invoices, long-lived
	// personal access tokens, no rotation).
	ProviderInvoicing ProviderKind = "invoicing"
)

// ParseProviderKind validates a provider path/query value.
func ParseProviderKind(s string) (ProviderKind, error) {
	switch ProviderKind(s) {
	case ProviderMarketplace, ProviderInvoicing:
		return ProviderKind(s), nil
	default:
		return "", fmt.Errorf("unknown provider %q", s)
	}
}

// RecordType distinguishes orders from invoices in external_records.
type RecordType string

const (
	RecordTypeOrder   RecordType = "order"
	RecordTypeInvoice RecordType = "invoice"
)

// RecordStatus is the internal status vocabulary external statuses are
// normalized into.
type RecordStatus string

const (
	StatusActive    RecordStatus = "active"
	StatusCompleted RecordStatus = "completed"
	StatusCancelled RecordStatus = "cancelled"
	StatusDraft     RecordStatus = "draft"
	StatusSent      RecordStatus = "sent"
	StatusPaid      RecordStatus = "paid"
	StatusOverdue   RecordStatus = "overdue"
)

// Inventory item states.
const (
	InventoryAvailable = "available"
	InventoryListed    = "listed"
	InventorySold      = "sold"
)

// Credential is the stored connection state for one (user, provider)
// pair. Token fields hold ciphertext; plaintext only exists transiently
// inside the lifecycle manager.
type Credential struct {
	ID                    int64
	UserID                int64
	Provider              ProviderKind
	AccessTokenCipher     string
	RefreshTokenCipher    string
	AccessTokenExpiresAt  *time.Time
	RefreshTokenExpiresAt *time.Time
	Connected             bool
	ExternalAccountID     string
	AccountDisplayName    string
	Scope                 string
	LastSyncedAt          *time.Time
	LastSyncError         string
	SyncVersion           int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RequiresReauthorization reports whether the refresh token has expired
// and the user has to redo the authorization exchange.
func (c *Credential) RequiresReauthorization(now time.Time) bool {
	return c.RefreshTokenExpiresAt != nil && !now.Before(*c.RefreshTokenExpiresAt)
}

// ExternalRecord is a reconciled order or invoice.
type ExternalRecord struct {
	ID               int64
	UserID           int64
	Provider         ProviderKind
	RecordType       RecordType
	ExternalID       string
	LegacyExternalID string
	TransactionDate  time.Time
	Counterparty     string
	Gross            Money
	Fee              Money
	Shipping         Money
	Net              Money
	Status           RecordStatus
	ItemTitle        string
	ItemSKU          string
	InventoryItemID  *int64
	LastSyncedAt     time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InventoryItem is a locally tracked resale item.
type InventoryItem struct {
	ID             int64
	UserID         int64
	Name           string
	SKU            string
	MarketplaceSKU string
	Status         string
	PurchasePrice  Money
	SoldAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FetchedRecord is a provider payload normalized for reconciliation.
// Only the first line item of a multi-line payload is carried; the
// engine creates single-item records.
type FetchedRecord struct {
	ExternalID       string
	LegacyExternalID string
	RecordType       RecordType
	TransactionDate  time.Time
	Counterparty     string
	RawStatus        string
	Gross            Money
	Fee              Money
	Shipping         Money
	ItemTitle        string
	ItemSKU          string
}

// SyncResult accumulates the outcome of one sync run. It is ephemeral:
// built during the run, returned to the caller, never persisted.
type SyncResult struct {
	Provider   ProviderKind `json:"provider"`
	Fetched    int          `json:"fetched"`
	Created    int          `json:"created"`
	Updated    int          `json:"updated"`
	Skipped    int          `json:"skipped"`
	Linked     int          `json:"linked"`
	Errors     []string     `json:"errors"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

// Success is true only when the error list is empty.
func (r *SyncResult) Success() bool { return len(r.Errors) == 0 }

func (r *SyncResult) addErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ConnectionStatus is the read-only projection of a credential.
type ConnectionStatus struct {
	Provider                ProviderKind `json:"provider"`
	Connected               bool         `json:"connected"`
	ExternalAccountID       string       `json:"external_account_id,omitempty"`
	AccountDisplayName      string       `json:"account_display_name,omitempty"`
	Scope                   string       `json:"scope,omitempty"`
	LastSyncedAt            *time.Time   `json:"last_synced_at,omitempty"`
	LastSyncError           string       `json:"last_sync_error,omitempty"`
	RequiresReauthorization bool         `json:"requires_reauthorization"`
}

// TokenCipher encrypts provider tokens at rest.
type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// CredentialRepository persists credentials. Get returns (nil, nil) when
// no row exists. Update uses the SyncVersion column for optimistic
// concurrency and returns ErrCredentialConflict on a stale write.
type CredentialRepository interface {
	GetByUserAndProvider(ctx context.Context, userID int64, provider ProviderKind) (*Credential, error)
	Create(ctx context.Context, cred *Credential) error
	Update(ctx context.Context, cred *Credential) error
	ListConnected(ctx context.Context) ([]Credential, error)
}

// ExternalRecordRepository persists reconciled records. GetByExternalID
// ignores soft-deleted rows; WasTombstoned reports whether a deleted row
// exists for the key. SoftDelete plants the tombstone.
type ExternalRecordRepository interface {
	GetByExternalID(ctx context.Context, userID int64, provider ProviderKind, externalID string) (*ExternalRecord, error)
	Create(ctx context.Context, record *ExternalRecord) error
	Update(ctx context.Context, record *ExternalRecord) error
	WasTombstoned(ctx context.Context, userID int64, provider ProviderKind, externalID string) (bool, error)
	List(ctx context.Context, userID int64, recordType string, params pagination.PaginationParams) ([]ExternalRecord, *pagination.PaginationResult, error)
	SoftDelete(ctx context.Context, userID, id int64) (bool, error)
}

// InventoryRepository is the lookup surface the linking chain uses.
// Find methods return (nil, nil) on no match.
type InventoryRepository interface {
	GetByID(ctx context.Context, userID, id int64) (*InventoryItem, error)
	FindByMarketplaceSKU(ctx context.Context, userID int64, sku string) (*InventoryItem, error)
	FindBySKU(ctx context.Context, userID int64, sku string) (*InventoryItem, error)
	Update(ctx context.Context, item *InventoryItem) error
}

// MarketplaceClient is the sales-marketplace collaborator.
type MarketplaceClient interface {
	ExchangeCode(ctx context.Context, code string) (*marketplace.TokenGrant, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*marketplace.TokenGrant, error)
	GetAccountIdentity(ctx context.Context, accessToken string) (*marketplace.AccountIdentity, error)
	ValidateToken(ctx context.Context, accessToken string) (bool, error)
	FetchOrders(ctx context.Context, accessToken string, start, end time.Time) ([]marketplace.Order, error)
}

// InvoicingClient is the invoicing-service collaborator.
type InvoicingClient interface {
	ValidateToken(ctx context.Context, accessToken string) (bool, error)
	GetBusinessProfile(ctx context.Context, accessToken string) (*invoicing.BusinessProfile, error)
	FetchInvoices(ctx context.Context, accessToken, businessID string, start, end time.Time) ([]invoicing.Invoice, error)
}
