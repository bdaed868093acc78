package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	infraerrors "github.com/aaron-lee-hebert/seller-metrics/internal/pkg/errors"

	"go.uber.org/zap"
)

// defaultWindowDays is the trailing window used when the caller supplies
// no date range.
const defaultWindowDays = 30

// invoicingTokenLifetime approximates "does not expire" for the
// invoicing provider's personal access tokens.
const invoicingTokenLifetime = 10 * 365 * 24 * time.Hour

// ConnectInput carries the secret material for ConnectAccount. The
// marketplace provider exchanges an authorization code; the invoicing
// provider validates a personal access token.
type ConnectInput struct {
	AuthorizationCode string
	AccessToken       string
}

// SyncService orchestrates a sync run: credential validation, token
// acquisition, record fetch and per-record reconciliation. It owns every
// credential persistence commit.
type SyncService struct {
	creds       CredentialRepository
	lifecycle   *CredentialService
	reconciler  *ReconcileService
	marketplace MarketplaceClient
	invoicing   InvoicingClient
	cipher      TokenCipher
	logger      *zap.Logger
	windowDays  int
	now         func() time.Time
}

// NewSyncService creates the sync orchestrator.
func NewSyncService(
	creds CredentialRepository,
	lifecycle *CredentialService,
	reconciler *ReconcileService,
	marketplaceClient MarketplaceClient,
	invoicingClient InvoicingClient,
	cipher TokenCipher,
	logger *zap.Logger,
	windowDays int,
) *SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	return &SyncService{
		creds:       creds,
		lifecycle:   lifecycle,
		reconciler:  reconciler,
		marketplace: marketplaceClient,
		invoicing:   invoicingClient,
		cipher:      cipher,
		logger:      logger,
		windowDays:  windowDays,
		now:         time.Now,
	}
}

// SyncRecords runs one synchronization for (userID, provider). It never
// returns an error: every failure ends up in the result's error list,
// and terminal failures are also written to the credential's
// last_sync_error so the status endpoint can surface them.
func (s *SyncService) SyncRecords(ctx context.Context, userID int64, provider ProviderKind, start, end *time.Time) *SyncResult {
	result := &SyncResult{Provider: provider, StartedAt: s.now()}
	defer func() { result.FinishedAt = s.now() }()

	cred, err := s.creds.GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		result.addErrorf("load credential: %v", err)
		return result
	}
	if cred == nil || !cred.Connected {
		result.addErrorf("%v", errNotConnected())
		return result
	}

	token, ok := s.acquireToken(ctx, cred, result)
	if !ok {
		return result
	}

	windowStart, windowEnd := s.dateWindow(start, end)

	fetched, fetchErr := s.fetch(ctx, provider, token, cred.ExternalAccountID, windowStart, windowEnd)
	if fetchErr != nil {
		terminal := errFetchFailed(fetchErr)
		result.addErrorf("%v", terminal)
		s.recordFailure(ctx, cred, terminal.Error(), result)
		return result
	}
	result.Fetched = len(fetched)

	for _, item := range fetched {
		if ctx.Err() != nil {
			// Already-reconciled records stay committed; the run just
			// stops early.
			result.addErrorf("sync cancelled: %v", ctx.Err())
			break
		}
		rec, err := item.normalize()
		if err != nil {
			result.addErrorf("record %s: %v", item.externalID(), err)
			continue
		}
		outcome, linked, err := s.reconciler.Reconcile(ctx, userID, provider, rec)
		if err != nil {
			result.addErrorf("record %s: %v", rec.ExternalID, err)
			continue
		}
		switch outcome {
		case OutcomeCreated:
			result.Created++
		case OutcomeUpdated:
			result.Updated++
		case OutcomeSkipped:
			result.Skipped++
		}
		if linked {
			result.Linked++
		}
	}

	// The fetch succeeded, so telemetry records a completed run even if
	// individual records failed.
	now := s.now()
	cred.LastSyncedAt = &now
	cred.LastSyncError = ""
	if err := s.creds.Update(ctx, cred); err != nil {
		result.addErrorf("record telemetry: %v", err)
	}

	s.logger.Info("sync run finished",
		zap.Int64("user_id", userID),
		zap.String("provider", string(provider)),
		zap.Int("fetched", result.Fetched),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)))
	return result
}

// acquireToken runs the lifecycle manager and commits any credential
// mutation immediately, so a refreshed token is durable even when the
// fetch after it fails. Returns ok=false on a terminal token outcome.
func (s *SyncService) acquireToken(ctx context.Context, cred *Credential, result *SyncResult) (string, bool) {
	var refresher TokenRefreshClient
	if cred.Provider == ProviderMarketplace {
		refresher = marketplaceRefresher{client: s.marketplace}
	}

	token, dirty, err := s.lifecycle.EnsureValidAccessToken(ctx, cred, refresher)
	if dirty {
		if uerr := s.creds.Update(ctx, cred); uerr != nil {
			result.addErrorf("persist credential: %v", uerr)
			return "", false
		}
	}
	if err != nil {
		result.addErrorf("%v", err)
		if !dirty {
			// Reauth transitions persisted above already carry their
			// error; transient refresh failures record theirs here.
			s.recordFailure(ctx, cred, err.Error(), result)
		}
		return "", false
	}
	return token, true
}

// recordFailure writes a terminal error onto the credential. A conflict
// here means a concurrent run owns the row; the error is reported, not
// retried.
func (s *SyncService) recordFailure(ctx context.Context, cred *Credential, message string, result *SyncResult) {
	cred.LastSyncError = message
	if err := s.creds.Update(ctx, cred); err != nil {
		result.addErrorf("persist sync error: %v", err)
	}
}

func (s *SyncService) dateWindow(start, end *time.Time) (time.Time, time.Time) {
	windowEnd := s.now()
	if end != nil {
		windowEnd = *end
	}
	windowStart := windowEnd.AddDate(0, 0, -s.windowDays)
	if start != nil {
		windowStart = *start
	}
	return windowStart, windowEnd
}

// fetchedItem defers payload normalization into the per-record loop so a
// malformed record fails alone instead of failing the fetch.
type fetchedItem interface {
	externalID() string
	normalize() (FetchedRecord, error)
}

func (s *SyncService) fetch(ctx context.Context, provider ProviderKind, token, accountID string, start, end time.Time) ([]fetchedItem, error) {
	switch provider {
	case ProviderMarketplace:
		orders, err := s.marketplace.FetchOrders(ctx, token, start, end)
		if err != nil {
			return nil, err
		}
		items := make([]fetchedItem, 0, len(orders))
		for _, o := range orders {
			items = append(items, orderItem{order: o})
		}
		return items, nil
	case ProviderInvoicing:
		invoices, err := s.invoicing.FetchInvoices(ctx, token, accountID, start, end)
		if err != nil {
			return nil, err
		}
		items := make([]fetchedItem, 0, len(invoices))
		for _, inv := range invoices {
			items = append(items, invoiceItem{invoice: inv})
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

// ConnectAccount completes the authorization exchange for a provider and
// persists the credential. Reconnecting an existing credential reuses
// its row, preserving sync history.
func (s *SyncService) ConnectAccount(ctx context.Context, userID int64, provider ProviderKind, input ConnectInput) (*ConnectionStatus, error) {
	cred, err := s.creds.GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	existing := cred != nil
	if !existing {
		cred = &Credential{UserID: userID, Provider: provider}
	}
	now := s.now()

	switch provider {
	case ProviderMarketplace:
		if input.AuthorizationCode == "" {
			return nil, infraerrors.New(http.StatusBadRequest, ReasonConnectFailed, "authorization_code is required")
		}
		grant, err := s.marketplace.ExchangeCode(ctx, input.AuthorizationCode)
		if err != nil {
			return nil, infraerrors.Wrap(err, http.StatusBadGateway, ReasonConnectFailed, "authorization exchange failed: "+err.Error())
		}
		if err := s.lifecycle.ApplyGrant(cred, grantInfoFromMarketplace(grant), now); err != nil {
			return nil, infraerrors.Wrap(err, http.StatusInternalServerError, ReasonConnectFailed, "store tokens: "+err.Error())
		}
		identity, err := s.marketplace.GetAccountIdentity(ctx, grant.AccessToken)
		if err != nil {
			return nil, infraerrors.Wrap(err, http.StatusBadGateway, ReasonConnectFailed, "account identity lookup failed: "+err.Error())
		}
		cred.ExternalAccountID = identity.AccountID
		cred.AccountDisplayName = identity.Username

	case ProviderInvoicing:
		if input.AccessToken == "" {
			return nil, infraerrors.New(http.StatusBadRequest, ReasonConnectFailed, "access_token is required")
		}
		valid, err := s.invoicing.ValidateToken(ctx, input.AccessToken)
		if err != nil || !valid {
			return nil, infraerrors.New(http.StatusBadGateway, ReasonConnectFailed, "access token rejected by provider")
		}
		profile, err := s.invoicing.GetBusinessProfile(ctx, input.AccessToken)
		if err != nil {
			return nil, infraerrors.Wrap(err, http.StatusBadGateway, ReasonConnectFailed, "business profile lookup failed: "+err.Error())
		}
		tokenCipher, err := s.cipher.Encrypt(input.AccessToken)
		if err != nil {
			return nil, infraerrors.Wrap(err, http.StatusInternalServerError, ReasonConnectFailed, "store tokens: "+err.Error())
		}
		cred.AccessTokenCipher = tokenCipher
		expiresAt := now.Add(invoicingTokenLifetime)
		cred.AccessTokenExpiresAt = &expiresAt
		cred.RefreshTokenCipher = ""
		cred.RefreshTokenExpiresAt = nil
		cred.ExternalAccountID = profile.BusinessID
		cred.AccountDisplayName = profile.Name

	default:
		return nil, infraerrors.Newf(http.StatusBadRequest, ReasonConnectFailed, "unknown provider %q", provider)
	}

	cred.Connected = true
	cred.LastSyncError = ""

	if existing {
		err = s.creds.Update(ctx, cred)
	} else {
		err = s.creds.Create(ctx, cred)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("account connected",
		zap.Int64("user_id", userID),
		zap.String("provider", string(provider)),
		zap.String("account", cred.AccountDisplayName))
	return s.projectStatus(cred), nil
}

// DisconnectAccount clears tokens and flips connected off. Idempotent:
// returns false when nothing was connected.
func (s *SyncService) DisconnectAccount(ctx context.Context, userID int64, provider ProviderKind) (bool, error) {
	cred, err := s.creds.GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return false, err
	}
	if cred == nil || !cred.Connected {
		return false, nil
	}
	cred.Connected = false
	cred.AccessTokenCipher = ""
	cred.RefreshTokenCipher = ""
	if err := s.creds.Update(ctx, cred); err != nil {
		return false, err
	}
	s.logger.Info("account disconnected",
		zap.Int64("user_id", userID),
		zap.String("provider", string(provider)))
	return true, nil
}

// GetConnectionStatus projects the credential for presentation. A
// missing credential reads as simply "not connected".
func (s *SyncService) GetConnectionStatus(ctx context.Context, userID int64, provider ProviderKind) (*ConnectionStatus, error) {
	cred, err := s.creds.GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return &ConnectionStatus{Provider: provider}, nil
	}
	return s.projectStatus(cred), nil
}

func (s *SyncService) projectStatus(cred *Credential) *ConnectionStatus {
	return &ConnectionStatus{
		Provider:                cred.Provider,
		Connected:               cred.Connected,
		ExternalAccountID:       cred.ExternalAccountID,
		AccountDisplayName:      cred.AccountDisplayName,
		Scope:                   cred.Scope,
		LastSyncedAt:            cred.LastSyncedAt,
		LastSyncError:           cred.LastSyncError,
		RequiresReauthorization: cred.RequiresReauthorization(s.now()),
	}
}

// marketplaceRefresher adapts the marketplace client onto the lifecycle
// manager's provider-agnostic refresh interface.
type marketplaceRefresher struct {
	client MarketplaceClient
}

func (r marketplaceRefresher) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenGrantInfo, error) {
	grant, err := r.client.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return grantInfoFromMarketplace(grant), nil
}
