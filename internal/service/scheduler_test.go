//go:build unit

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
)

func newSchedulerFixture(creds []Credential) (*SyncScheduler, *syncFixture) {
	f := newSyncFixture(nil)
	byUser := make(map[int64]*Credential, len(creds))
	for i := range creds {
		byUser[creds[i].UserID] = &creds[i]
	}
	f.creds.getFunc = func(_ context.Context, userID int64, _ ProviderKind) (*Credential, error) {
		return byUser[userID], nil
	}
	f.creds.listConnectedFunc = func(context.Context) ([]Credential, error) {
		return creds, nil
	}
	f.creds.updateFunc = func(context.Context, *Credential) error { return nil }
	s := NewSyncScheduler(f.creds, f.svc, nil, "@every 6h")
	return s, f
}

func TestSchedulerSkipsReauthRequiredCredentials(t *testing.T) {
	t.Parallel()

	good := connectedCredential(ProviderMarketplace)
	expired := connectedCredential(ProviderMarketplace)
	expired.UserID = 2
	refreshExp := time.Now().Add(-time.Hour)
	expired.RefreshTokenExpiresAt = &refreshExp

	s, f := newSchedulerFixture([]Credential{*good, *expired})
	f.mkt.fetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		return nil, nil
	}

	s.runAll()

	if f.mkt.fetchCalls != 1 {
		t.Fatalf("fetchCalls = %d, want 1: expired refresh token must be skipped", f.mkt.fetchCalls)
	}
}

func TestSchedulerRunsCredentialsSequentially(t *testing.T) {
	t.Parallel()

	var creds []Credential
	for i := int64(1); i <= 3; i++ {
		c := connectedCredential(ProviderMarketplace)
		c.UserID = i
		c.AccessTokenCipher = fmt.Sprintf("enc:token-u%d", i)
		creds = append(creds, *c)
	}

	s, f := newSchedulerFixture(creds)
	var order []string
	f.mkt.fetchOrdersFunc = func(_ context.Context, token string, _, _ time.Time) ([]marketplace.Order, error) {
		order = append(order, token)
		return nil, nil
	}

	s.runAll()

	if len(order) != 3 {
		t.Fatalf("fetches = %d, want 3", len(order))
	}
	for i, token := range []string{"token-u1", "token-u2", "token-u3"} {
		if order[i] != token {
			t.Fatalf("order = %v, want one pass per credential in listing order", order)
		}
	}
}

func TestSchedulerListErrorAbortsPass(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(nil)
	f.creds.listConnectedFunc = func(context.Context) ([]Credential, error) {
		return nil, context.DeadlineExceeded
	}
	s := NewSyncScheduler(f.creds, f.svc, nil, "@every 6h")

	s.runAll()

	if f.mkt.fetchCalls != 0 {
		t.Fatal("must not fetch when the credential listing fails")
	}
}
