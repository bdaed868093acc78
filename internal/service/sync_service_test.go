//go:build unit

package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/invoicing"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
)

type syncFixture struct {
	svc       *SyncService
	creds     *mockCredentialRepo
	records   *memoryRecordRepo
	inventory *mockInventoryRepo
	mkt       *mockMarketplaceClient
	inv       *mockInvoicingClient
}

func newSyncFixture(cred *Credential) *syncFixture {
	f := &syncFixture{
		creds:     &mockCredentialRepo{},
		records:   newMemoryRecordRepo(),
		inventory: &mockInventoryRepo{},
		mkt:       &mockMarketplaceClient{},
		inv:       &mockInvoicingClient{},
	}
	f.creds.getFunc = func(context.Context, int64, ProviderKind) (*Credential, error) {
		return cred, nil
	}
	lifecycle := NewCredentialService(identityCipher{}, nil)
	reconciler := NewReconcileService(f.records, f.inventory, nil)
	f.svc = NewSyncService(f.creds, lifecycle, reconciler, f.mkt, f.inv, identityCipher{}, nil, 30)
	return f
}

func TestSyncRecordsNotConnected(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(nil)
	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)

	if result.Success() {
		t.Fatal("expected failure")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], ReasonNotConnected) {
		t.Fatalf("errors = %v, want ACCOUNT_NOT_CONNECTED", result.Errors)
	}
	if f.mkt.fetchCalls != 0 {
		t.Fatal("must not fetch without a connected credential")
	}
}

func TestSyncRecordsDisconnectedCredential(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	cred.Connected = false
	f := newSyncFixture(cred)

	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)
	if result.Success() || !strings.Contains(result.Errors[0], ReasonNotConnected) {
		t.Fatalf("errors = %v", result.Errors)
	}
}

func TestSyncRecordsReauthTerminal(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	expired := time.Now().Add(-time.Hour)
	cred.RefreshTokenExpiresAt = &expired
	f := newSyncFixture(cred)

	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)

	if result.Success() {
		t.Fatal("expected failure")
	}
	if !strings.Contains(strings.Join(result.Errors, " "), ReasonReauthRequired) {
		t.Fatalf("errors = %v, want REAUTHORIZATION_REQUIRED", result.Errors)
	}
	if f.mkt.fetchCalls != 0 {
		t.Fatal("terminal reauth must stop before fetching")
	}
	// The disconnect transition was committed.
	if f.creds.updateCalls != 1 {
		t.Fatalf("update calls = %d, want exactly the dirty-state commit", f.creds.updateCalls)
	}
	if cred.Connected {
		t.Fatal("credential must be persisted disconnected")
	}
}

func TestSyncRecordsEmptyFetchSucceeds(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	f := newSyncFixture(cred)
	f.mkt.fetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		return nil, nil
	}

	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)

	if !result.Success() {
		t.Fatalf("errors = %v", result.Errors)
	}
	if result.Fetched != 0 || result.Created != 0 {
		t.Fatalf("fetched=%d created=%d", result.Fetched, result.Created)
	}
	// Telemetry still records the completed run.
	if cred.LastSyncedAt == nil {
		t.Fatal("LastSyncedAt not set")
	}
	if cred.LastSyncError != "" {
		t.Fatalf("LastSyncError = %q, want cleared", cred.LastSyncError)
	}
}

func TestSyncRecordsCreatesAndCounts(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	f := newSyncFixture(cred)
	f.mkt.fetchOrdersFunc = func(ctx context.Context, token string, start, end time.Time) ([]marketplace.Order, error) {
		if token != "access-token" {
			t.Fatalf("fetch used token %q", token)
		}
		return []marketplace.Order{testOrder("o-1"), testOrder("o-2")}, nil
	}

	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)

	if !result.Success() {
		t.Fatalf("errors = %v", result.Errors)
	}
	if result.Fetched != 2 || result.Created != 2 || result.Updated != 0 {
		t.Fatalf("fetched=%d created=%d updated=%d", result.Fetched, result.Created, result.Updated)
	}
	if len(f.records.records) != 2 {
		t.Fatalf("stored = %d", len(f.records.records))
	}
}

func TestSyncRecordsSecondRunUpdates(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	f := newSyncFixture(cred)
	f.mkt.fetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		return []marketplace.Order{testOrder("o-1")}, nil
	}

	first := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)
	if first.Created != 1 {
		t.Fatalf("first run created = %d", first.Created)
	}

	second := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)
	if !second.Success() {
		t.Fatalf("errors = %v", second.Errors)
	}
	if second.Created != 0 || second.Updated != 1 {
		t.Fatalf("second run created=%d updated=%d, want 0/1", second.Created, second.Updated)
	}
	if len(f.records.records) != 1 {
		t.Fatalf("stored = %d, want no duplicates", len(f.records.records))
	}
}

func TestSyncRecordsPartialFailureIsolation(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	f := newSyncFixture(cred)

	bad := testOrder("o-bad")
	bad.PricingSummary.Total.Value = "garbage"
	f.mkt.fetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		return []marketplace.Order{testOrder("o-1"), bad, testOrder("o-3")}, nil
	}

	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)

	if result.Success() {
		t.Fatal("expected partial failure")
	}
	if result.Fetched != 3 || result.Created != 2 {
		t.Fatalf("fetched=%d created=%d, want 3/2", result.Fetched, result.Created)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "o-bad") {
		t.Fatalf("errors = %v, want one mentioning o-bad", result.Errors)
	}
	// A partial run still records completed telemetry.
	if cred.LastSyncedAt == nil || cred.LastSyncError != "" {
		t.Fatalf("telemetry: syncedAt=%v err=%q", cred.LastSyncedAt, cred.LastSyncError)
	}
}

func TestSyncRecordsFetchFailure(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	f := newSyncFixture(cred)
	f.mkt.fetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		return nil, fmt.Errorf("503 from provider")
	}

	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)

	if result.Success() {
		t.Fatal("expected failure")
	}
	if !strings.Contains(strings.Join(result.Errors, " "), ReasonFetchFailed) {
		t.Fatalf("errors = %v, want FETCH_FAILED", result.Errors)
	}
	if !strings.Contains(cred.LastSyncError, ReasonFetchFailed) {
		t.Fatalf("LastSyncError = %q, terminal failure must be persisted", cred.LastSyncError)
	}
	if cred.LastSyncedAt != nil {
		t.Fatal("a failed run must not record LastSyncedAt")
	}
}

func TestSyncRecordsRefreshCommittedBeforeFetch(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	expired := time.Now().Add(-time.Minute)
	cred.AccessTokenExpiresAt = &expired
	f := newSyncFixture(cred)

	var sequence []string
	f.creds.updateFunc = func(context.Context, *Credential) error {
		sequence = append(sequence, "update")
		return nil
	}
	f.mkt.refreshAccessTokenFunc = func(context.Context, string) (*marketplace.TokenGrant, error) {
		return &marketplace.TokenGrant{AccessToken: "fresh", ExpiresIn: 7200, RefreshToken: "rotated"}, nil
	}
	f.mkt.fetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		sequence = append(sequence, "fetch")
		return nil, fmt.Errorf("provider down")
	}

	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)

	if result.Success() {
		t.Fatal("expected fetch failure")
	}
	// The rotated token was committed before the fetch, so it survives
	// the fetch failure.
	if len(sequence) < 2 || sequence[0] != "update" || sequence[1] != "fetch" {
		t.Fatalf("sequence = %v, want refresh committed first", sequence)
	}
	if cred.AccessTokenCipher != "enc:fresh" {
		t.Fatalf("AccessTokenCipher = %q", cred.AccessTokenCipher)
	}
}

func TestSyncRecordsCredentialConflict(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	f := newSyncFixture(cred)
	f.mkt.fetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		return nil, nil
	}
	f.creds.updateFunc = func(context.Context, *Credential) error {
		return ErrCredentialConflict
	}

	result := f.svc.SyncRecords(context.Background(), 1, ProviderMarketplace, nil, nil)

	if result.Success() {
		t.Fatal("a losing concurrent run must report failure")
	}
	if !strings.Contains(strings.Join(result.Errors, " "), ReasonCredentialConflict) {
		t.Fatalf("errors = %v, want CREDENTIAL_CONFLICT", result.Errors)
	}
}

func TestSyncRecordsInvoicingProvider(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderInvoicing)
	f := newSyncFixture(cred)
	f.inv.fetchInvoicesFunc = func(_ context.Context, token, businessID string, _, _ time.Time) ([]invoicing.Invoice, error) {
		if businessID != "acct-1" {
			t.Fatalf("businessID = %q", businessID)
		}
		return []invoicing.Invoice{{
			ID:          "inv-1",
			Status:      "paid",
			InvoiceDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Currency:    "USD",
			Total:       "150.00",
			AmountDue:   "0.00",
		}}, nil
	}

	result := f.svc.SyncRecords(context.Background(), 1, ProviderInvoicing, nil, nil)

	if !result.Success() {
		t.Fatalf("errors = %v", result.Errors)
	}
	if result.Created != 1 {
		t.Fatalf("created = %d", result.Created)
	}
	stored, _ := f.records.GetByExternalID(context.Background(), 1, ProviderInvoicing, "inv-1")
	if stored == nil || stored.Status != StatusPaid {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestSyncRecordsCancellation(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	f := newSyncFixture(cred)

	ctx, cancel := context.WithCancel(context.Background())
	f.mkt.fetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		cancel() // cancel between fetch and reconciliation
		return []marketplace.Order{testOrder("o-1"), testOrder("o-2")}, nil
	}

	result := f.svc.SyncRecords(ctx, 1, ProviderMarketplace, nil, nil)

	if result.Success() {
		t.Fatal("a cancelled run must report it")
	}
	if result.Created != 0 {
		t.Fatalf("created = %d, loop must stop on cancellation", result.Created)
	}
}

func TestConnectAccountMarketplace(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(nil)
	var created *Credential
	f.creds.createFunc = func(_ context.Context, cred *Credential) error {
		created = cred
		return nil
	}
	f.mkt.exchangeCodeFunc = func(_ context.Context, code string) (*marketplace.TokenGrant, error) {
		if code != "auth-code" {
			t.Fatalf("code = %q", code)
		}
		return &marketplace.TokenGrant{
			AccessToken:           "access",
			ExpiresIn:             7200,
			RefreshToken:          "refresh",
			RefreshTokenExpiresIn: 3600 * 24 * 547,
			Scope:                 "sell.fulfillment",
		}, nil
	}
	f.mkt.getAccountIdentityFunc = func(context.Context, string) (*marketplace.AccountIdentity, error) {
		return &marketplace.AccountIdentity{AccountID: "acct-9", Username: "seller-nine"}, nil
	}

	status, err := f.svc.ConnectAccount(context.Background(), 1, ProviderMarketplace, ConnectInput{AuthorizationCode: "auth-code"})
	if err != nil {
		t.Fatalf("ConnectAccount error: %v", err)
	}
	if !status.Connected || status.AccountDisplayName != "seller-nine" {
		t.Fatalf("status = %+v", status)
	}
	if created == nil {
		t.Fatal("credential not created")
	}
	if created.AccessTokenCipher != "enc:access" || created.RefreshTokenCipher != "enc:refresh" {
		t.Fatalf("tokens = %q/%q, must be stored encrypted", created.AccessTokenCipher, created.RefreshTokenCipher)
	}
	if created.ExternalAccountID != "acct-9" {
		t.Fatalf("ExternalAccountID = %q", created.ExternalAccountID)
	}
}

func TestConnectAccountMarketplaceRequiresCode(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(nil)
	_, err := f.svc.ConnectAccount(context.Background(), 1, ProviderMarketplace, ConnectInput{})
	if !isReason(err, ReasonConnectFailed) {
		t.Fatalf("err = %v, want CONNECT_FAILED", err)
	}
}

func TestConnectAccountInvoicing(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(nil)
	var created *Credential
	f.creds.createFunc = func(_ context.Context, cred *Credential) error {
		created = cred
		return nil
	}
	f.inv.validateTokenFunc = func(_ context.Context, token string) (bool, error) {
		return token == "personal-token", nil
	}
	f.inv.getBusinessProfileFunc = func(context.Context, string) (*invoicing.BusinessProfile, error) {
		return &invoicing.BusinessProfile{BusinessID: "biz-1", Name: "Acme Resale"}, nil
	}

	status, err := f.svc.ConnectAccount(context.Background(), 1, ProviderInvoicing, ConnectInput{AccessToken: "personal-token"})
	if err != nil {
		t.Fatalf("ConnectAccount error: %v", err)
	}
	if !status.Connected || status.ExternalAccountID != "biz-1" {
		t.Fatalf("status = %+v", status)
	}
	if created.RefreshTokenCipher != "" || created.RefreshTokenExpiresAt != nil {
		t.Fatal("invoicing credentials carry no refresh material")
	}
	if created.AccessTokenExpiresAt == nil || time.Until(*created.AccessTokenExpiresAt) < 365*24*time.Hour {
		t.Fatalf("AccessTokenExpiresAt = %v, want far future", created.AccessTokenExpiresAt)
	}
}

func TestConnectAccountInvoicingRejectedToken(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(nil)
	f.inv.validateTokenFunc = func(context.Context, string) (bool, error) {
		return false, nil
	}

	_, err := f.svc.ConnectAccount(context.Background(), 1, ProviderInvoicing, ConnectInput{AccessToken: "bad"})
	if !isReason(err, ReasonConnectFailed) {
		t.Fatalf("err = %v, want CONNECT_FAILED", err)
	}
}

func TestConnectAccountReusesExistingRow(t *testing.T) {
	t.Parallel()

	existing := connectedCredential(ProviderMarketplace)
	existing.Connected = false
	existing.LastSyncError = "reauthorization required"
	f := newSyncFixture(existing)
	f.mkt.exchangeCodeFunc = func(context.Context, string) (*marketplace.TokenGrant, error) {
		return &marketplace.TokenGrant{AccessToken: "access", ExpiresIn: 7200, RefreshToken: "refresh"}, nil
	}
	f.mkt.getAccountIdentityFunc = func(context.Context, string) (*marketplace.AccountIdentity, error) {
		return &marketplace.AccountIdentity{AccountID: "acct-1", Username: "seller"}, nil
	}

	status, err := f.svc.ConnectAccount(context.Background(), 1, ProviderMarketplace, ConnectInput{AuthorizationCode: "code"})
	if err != nil {
		t.Fatalf("ConnectAccount error: %v", err)
	}
	if !status.Connected || status.LastSyncError != "" {
		t.Fatalf("status = %+v", status)
	}
	if f.creds.updateCalls != 1 {
		t.Fatalf("update calls = %d, reconnect must reuse the row", f.creds.updateCalls)
	}
}

func TestDisconnectAccount(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	f := newSyncFixture(cred)

	disconnected, err := f.svc.DisconnectAccount(context.Background(), 1, ProviderMarketplace)
	if err != nil {
		t.Fatalf("DisconnectAccount error: %v", err)
	}
	if !disconnected {
		t.Fatal("expected disconnect")
	}
	if cred.Connected || cred.AccessTokenCipher != "" || cred.RefreshTokenCipher != "" {
		t.Fatal("tokens must be cleared on disconnect")
	}

	// Second call is an idempotent no-op.
	disconnected, err = f.svc.DisconnectAccount(context.Background(), 1, ProviderMarketplace)
	if err != nil {
		t.Fatalf("second DisconnectAccount error: %v", err)
	}
	if disconnected {
		t.Fatal("disconnecting a disconnected account must return false")
	}
}

func TestGetConnectionStatusMissingCredential(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(nil)
	status, err := f.svc.GetConnectionStatus(context.Background(), 1, ProviderMarketplace)
	if err != nil {
		t.Fatalf("GetConnectionStatus error: %v", err)
	}
	if status.Connected {
		t.Fatal("missing credential must read as not connected")
	}
	if status.Provider != ProviderMarketplace {
		t.Fatalf("provider = %q", status.Provider)
	}
}

func TestGetConnectionStatusReauth(t *testing.T) {
	t.Parallel()

	cred := connectedCredential(ProviderMarketplace)
	expired := time.Now().Add(-time.Hour)
	cred.RefreshTokenExpiresAt = &expired
	f := newSyncFixture(cred)

	status, err := f.svc.GetConnectionStatus(context.Background(), 1, ProviderMarketplace)
	if err != nil {
		t.Fatalf("GetConnectionStatus error: %v", err)
	}
	if !status.RequiresReauthorization {
		t.Fatal("expired refresh token must surface RequiresReauthorization")
	}
}
