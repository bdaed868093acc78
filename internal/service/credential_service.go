package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TokenRefreshClient is the slice of a provider client the lifecycle
// manager needs. Providers without token rotation pass nil.
type TokenRefreshClient interface {
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenGrantInfo, error)
}

// TokenGrantInfo is a provider-agnostic token grant.
type TokenGrantInfo struct {
	AccessToken      string
	ExpiresIn        int64
	RefreshToken     string
	RefreshExpiresIn int64
	Scope            string
}

// CredentialService manages credential state transitions: expiry checks,
// token refresh and the disconnect-on-reauthorization transition. It
// mutates credentials in memory only and reports "dirty"; the
// orchestrator owns every persistence commit.
type CredentialService struct {
	cipher TokenCipher
	logger *zap.Logger
	now    func() time.Time
}

// NewCredentialService creates a credential lifecycle manager.
func NewCredentialService(cipher TokenCipher, logger *zap.Logger) *CredentialService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CredentialService{cipher: cipher, logger: logger, now: time.Now}
}

// IsAccessTokenExpired reports whether the access token is unusable at
// the given instant. A credential with no recorded expiry is treated as
// expired; connected credentials always carry one.
func (s *CredentialService) IsAccessTokenExpired(cred *Credential, now time.Time) bool {
	if cred.AccessTokenExpiresAt == nil {
		return true
	}
	return !now.Before(*cred.AccessTokenExpiresAt)
}

// IsRefreshTokenExpired reports whether a refresh expiry exists and has
// passed. Credentials without rotation never report true here.
func (s *CredentialService) IsRefreshTokenExpired(cred *Credential, now time.Time) bool {
	if cred.RefreshTokenExpiresAt == nil {
		return false
	}
	return !now.Before(*cred.RefreshTokenExpiresAt)
}

// EnsureValidAccessToken returns a usable plaintext access token for the
// credential, refreshing through the provider when needed.
//
// The returned dirty flag is true whenever the credential was mutated
// (refresh applied, or disconnected on an expired refresh token); the
// caller must commit it immediately so the new state survives a later
// fetch failure. A ReauthorizationRequired error is terminal: the
// credential has been marked disconnected and callers must not retry.
func (s *CredentialService) EnsureValidAccessToken(ctx context.Context, cred *Credential, refresher TokenRefreshClient) (token string, dirty bool, err error) {
	now := s.now()

	if s.IsRefreshTokenExpired(cred, now) {
		s.disconnectForReauth(cred)
		return "", true, errReauthRequired()
	}

	if !s.IsAccessTokenExpired(cred, now) {
		token, err := s.cipher.Decrypt(cred.AccessTokenCipher)
		if err != nil {
			return "", false, errTokenRefreshFailed(err)
		}
		return token, false, nil
	}

	if cred.RefreshTokenCipher == "" || refresher == nil {
		// Expired with nothing to refresh from: same terminal outcome
		// as an expired refresh token.
		s.disconnectForReauth(cred)
		return "", true, errReauthRequired()
	}

	refreshToken, err := s.cipher.Decrypt(cred.RefreshTokenCipher)
	if err != nil {
		return "", false, errTokenRefreshFailed(err)
	}

	grant, err := refresher.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("token refresh failed",
			zap.Int64("user_id", cred.UserID),
			zap.String("provider", string(cred.Provider)),
			zap.Error(err))
		return "", false, errTokenRefreshFailed(err)
	}

	if err := s.ApplyGrant(cred, grant, now); err != nil {
		return "", false, errTokenRefreshFailed(err)
	}

	s.logger.Info("access token refreshed",
		zap.Int64("user_id", cred.UserID),
		zap.String("provider", string(cred.Provider)),
		zap.Timep("expires_at", cred.AccessTokenExpiresAt))
	return grant.AccessToken, true, nil
}

// ApplyGrant writes a token grant onto the credential: encrypted access
// token, extended expiry, and the rotated refresh token when the
// provider returned one. Fields the grant omits are left untouched.
func (s *CredentialService) ApplyGrant(cred *Credential, grant *TokenGrantInfo, now time.Time) error {
	accessCipher, err := s.cipher.Encrypt(grant.AccessToken)
	if err != nil {
		return err
	}
	cred.AccessTokenCipher = accessCipher
	expiresAt := now.Add(time.Duration(grant.ExpiresIn) * time.Second)
	cred.AccessTokenExpiresAt = &expiresAt

	if grant.RefreshToken != "" {
		refreshCipher, err := s.cipher.Encrypt(grant.RefreshToken)
		if err != nil {
			return err
		}
		cred.RefreshTokenCipher = refreshCipher
	}
	if grant.RefreshExpiresIn > 0 {
		refreshExpiresAt := now.Add(time.Duration(grant.RefreshExpiresIn) * time.Second)
		cred.RefreshTokenExpiresAt = &refreshExpiresAt
	}
	if grant.Scope != "" {
		cred.Scope = grant.Scope
	}
	return nil
}

// disconnectForReauth flips the credential into the state the status
// endpoint surfaces as "reconnect required". Tokens are cleared, history
// is kept.
func (s *CredentialService) disconnectForReauth(cred *Credential) {
	cred.Connected = false
	cred.AccessTokenCipher = ""
	cred.RefreshTokenCipher = ""
	cred.LastSyncError = "reauthorization required"
}
