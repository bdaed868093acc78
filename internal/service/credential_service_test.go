//go:build unit

package service

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// mockRefresher implements TokenRefreshClient through a func field.
type mockRefresher struct {
	refreshFunc func(ctx context.Context, refreshToken string) (*TokenGrantInfo, error)
	calls       int
}

func (m *mockRefresher) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenGrantInfo, error) {
	m.calls++
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, refreshToken)
	}
	panic("RefreshAccessToken not implemented")
}

func newLifecycle(now time.Time) *CredentialService {
	svc := NewCredentialService(identityCipher{}, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestEnsureValidAccessTokenStillValid(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newLifecycle(now)
	cred := connectedCredential(ProviderMarketplace)

	token, dirty, err := svc.EnsureValidAccessToken(context.Background(), cred, &mockRefresher{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dirty {
		t.Fatal("credential should not be dirty when the token is still valid")
	}
	if token != "access-token" {
		t.Fatalf("token = %q", token)
	}
}

func TestEnsureValidAccessTokenRefreshes(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newLifecycle(now)
	cred := connectedCredential(ProviderMarketplace)
	expired := now.Add(-time.Minute)
	cred.AccessTokenExpiresAt = &expired

	refresher := &mockRefresher{
		refreshFunc: func(_ context.Context, refreshToken string) (*TokenGrantInfo, error) {
			if refreshToken != "refresh-token" {
				t.Fatalf("refresher received %q", refreshToken)
			}
			return &TokenGrantInfo{
				AccessToken:      "new-access",
				ExpiresIn:        7200,
				RefreshToken:     "rotated-refresh",
				RefreshExpiresIn: 3600 * 24,
			}, nil
		},
	}

	token, dirty, err := svc.EnsureValidAccessToken(context.Background(), cred, refresher)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dirty {
		t.Fatal("refresh must mark the credential dirty")
	}
	if token != "new-access" {
		t.Fatalf("token = %q", token)
	}
	if refresher.calls != 1 {
		t.Fatalf("refresh calls = %d, want 1", refresher.calls)
	}

	// The credential now carries the rotated, encrypted material.
	if cred.AccessTokenCipher != "enc:new-access" {
		t.Fatalf("AccessTokenCipher = %q", cred.AccessTokenCipher)
	}
	if cred.RefreshTokenCipher != "enc:rotated-refresh" {
		t.Fatalf("RefreshTokenCipher = %q", cred.RefreshTokenCipher)
	}
	wantExp := now.Add(7200 * time.Second)
	if !cred.AccessTokenExpiresAt.Equal(wantExp) {
		t.Fatalf("AccessTokenExpiresAt = %v, want %v", cred.AccessTokenExpiresAt, wantExp)
	}
}

func TestEnsureValidAccessTokenRefreshFailure(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newLifecycle(now)
	cred := connectedCredential(ProviderMarketplace)
	expired := now.Add(-time.Minute)
	cred.AccessTokenExpiresAt = &expired

	refresher := &mockRefresher{
		refreshFunc: func(context.Context, string) (*TokenGrantInfo, error) {
			return nil, fmt.Errorf("provider unavailable")
		},
	}

	_, dirty, err := svc.EnsureValidAccessToken(context.Background(), cred, refresher)
	if err == nil {
		t.Fatal("expected error")
	}
	if dirty {
		t.Fatal("a failed refresh must not dirty the credential")
	}
	if !isReason(err, ReasonTokenRefreshFailed) {
		t.Fatalf("reason = %v, want TOKEN_REFRESH_FAILED", err)
	}
	// Transient failure: the connection stays up for a later retry.
	if !cred.Connected {
		t.Fatal("credential must stay connected after a transient refresh failure")
	}
}

func TestEnsureValidAccessTokenReauthRequired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newLifecycle(now)
	cred := connectedCredential(ProviderMarketplace)
	refreshExpired := now.Add(-time.Hour)
	cred.RefreshTokenExpiresAt = &refreshExpired

	refresher := &mockRefresher{}
	_, dirty, err := svc.EnsureValidAccessToken(context.Background(), cred, refresher)
	if err == nil {
		t.Fatal("expected error")
	}
	if !isReason(err, ReasonReauthRequired) {
		t.Fatalf("reason = %v, want REAUTHORIZATION_REQUIRED", err)
	}
	if !dirty {
		t.Fatal("the disconnect transition must be reported dirty for persistence")
	}
	if refresher.calls != 0 {
		t.Fatal("an expired refresh token must not be sent to the provider")
	}
	if cred.Connected {
		t.Fatal("credential must be disconnected")
	}
	if cred.AccessTokenCipher != "" || cred.RefreshTokenCipher != "" {
		t.Fatal("tokens must be cleared on reauth")
	}
}

func TestEnsureValidAccessTokenNoRefreshMaterial(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newLifecycle(now)
	cred := connectedCredential(ProviderInvoicing)
	expired := now.Add(-time.Minute)
	cred.AccessTokenExpiresAt = &expired

	// Invoicing credentials carry no refresh token and no refresher.
	_, dirty, err := svc.EnsureValidAccessToken(context.Background(), cred, nil)
	if !isReason(err, ReasonReauthRequired) {
		t.Fatalf("reason = %v, want REAUTHORIZATION_REQUIRED", err)
	}
	if !dirty {
		t.Fatal("transition must be dirty")
	}
	if cred.Connected {
		t.Fatal("credential must be disconnected")
	}
}

func TestRequiresReauthorization(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cred := connectedCredential(ProviderMarketplace)
	if cred.RequiresReauthorization(now) {
		t.Fatal("fresh credential must not require reauthorization")
	}

	past := now.Add(-time.Second)
	cred.RefreshTokenExpiresAt = &past
	if !cred.RequiresReauthorization(now) {
		t.Fatal("expired refresh token must require reauthorization")
	}

	// Invoicing-style credentials have no refresh expiry at all.
	cred.RefreshTokenExpiresAt = nil
	if cred.RequiresReauthorization(now) {
		t.Fatal("credential without refresh expiry never requires reauthorization")
	}
}
