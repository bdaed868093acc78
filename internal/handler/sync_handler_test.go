//go:build unit

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/response"
	"github.com/aaron-lee-hebert/seller-metrics/internal/server/middleware"
	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
	"github.com/aaron-lee-hebert/seller-metrics/internal/testutil"
)

type handlerFixture struct {
	router *gin.Engine
	creds  *testutil.StubCredentialRepository
	recs   *testutil.StubExternalRecordRepository
	mkt    *testutil.StubMarketplaceClient
}

// newHandlerFixture wires real services over stub repositories behind a
// router whose auth middleware injects user id 1.
func newHandlerFixture() *handlerFixture {
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		creds: &testutil.StubCredentialRepository{},
		recs:  &testutil.StubExternalRecordRepository{},
		mkt:   &testutil.StubMarketplaceClient{},
	}

	cipher := testutil.PlainCipher{}
	lifecycle := service.NewCredentialService(cipher, nil)
	reconciler := service.NewReconcileService(f.recs, &testutil.StubInventoryRepository{}, nil)
	syncService := service.NewSyncService(f.creds, lifecycle, reconciler, f.mkt, &testutil.StubInvoicingClient{}, cipher, nil, 30)
	recordsService := service.NewRecordsService(f.recs, nil)
	h := NewSyncHandler(syncService, recordsService, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, int64(1))
	})
	sync := r.Group("/api/v1/sync")
	{
		sync.POST("/:provider/connect", h.Connect)
		sync.DELETE("/:provider/connection", h.Disconnect)
		sync.GET("/:provider/status", h.Status)
		sync.POST("/:provider/run", h.Run)
		sync.GET("/records", h.ListRecords)
		sync.DELETE("/records/:id", h.DeleteRecord)
	}
	f.router = r
	return f
}

func (f *handlerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestSyncHandlerStatusUnknownProvider(t *testing.T) {
	f := newHandlerFixture()

	rec := f.do(http.MethodGet, "/api/v1/sync/ebay-classic/status", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncHandlerStatusNotConnected(t *testing.T) {
	f := newHandlerFixture()
	f.creds.GetByUserAndProviderFunc = func(context.Context, int64, service.ProviderKind) (*service.Credential, error) {
		return nil, nil
	}

	rec := f.do(http.MethodGet, "/api/v1/sync/marketplace/status", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	data, _ := json.Marshal(envelope.Data)
	require.Contains(t, string(data), `"connected":false`)
}

func TestSyncHandlerConnectRequiresSecret(t *testing.T) {
	f := newHandlerFixture()

	rec := f.do(http.MethodPost, "/api/v1/sync/marketplace/connect", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncHandlerConnectMarketplace(t *testing.T) {
	f := newHandlerFixture()
	f.creds.GetByUserAndProviderFunc = func(context.Context, int64, service.ProviderKind) (*service.Credential, error) {
		return nil, nil
	}
	f.creds.CreateFunc = func(context.Context, *service.Credential) error { return nil }
	f.mkt.ExchangeCodeFunc = func(context.Context, string) (*marketplace.TokenGrant, error) {
		return &marketplace.TokenGrant{AccessToken: "access", ExpiresIn: 7200, RefreshToken: "refresh"}, nil
	}
	f.mkt.GetAccountIdentityFunc = func(context.Context, string) (*marketplace.AccountIdentity, error) {
		return &marketplace.AccountIdentity{AccountID: "acct-1", Username: "seller"}, nil
	}

	rec := f.do(http.MethodPost, "/api/v1/sync/marketplace/connect", `{"authorization_code":"abc"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"connected":true`)
	require.Contains(t, rec.Body.String(), `"account_display_name":"seller"`)
}

func TestSyncHandlerRunAlwaysReturnsResult(t *testing.T) {
	f := newHandlerFixture()
	// No credential: the run fails, but the HTTP call still succeeds
	// with the failure inside the result body.
	f.creds.GetByUserAndProviderFunc = func(context.Context, int64, service.ProviderKind) (*service.Credential, error) {
		return nil, nil
	}

	rec := f.do(http.MethodPost, "/api/v1/sync/marketplace/run", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":false`)
	require.Contains(t, rec.Body.String(), "ACCOUNT_NOT_CONNECTED")
}

func TestSyncHandlerRunSuccess(t *testing.T) {
	f := newHandlerFixture()
	cred := testutil.NewTestCredential()
	f.creds.GetByUserAndProviderFunc = func(context.Context, int64, service.ProviderKind) (*service.Credential, error) {
		return cred, nil
	}
	f.creds.UpdateFunc = func(context.Context, *service.Credential) error { return nil }
	f.mkt.FetchOrdersFunc = func(context.Context, string, time.Time, time.Time) ([]marketplace.Order, error) {
		return nil, nil
	}

	rec := f.do(http.MethodPost, "/api/v1/sync/marketplace/run", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":true`)
	require.Contains(t, rec.Body.String(), `"errors":[]`)
}

func TestSyncHandlerRunWithWindow(t *testing.T) {
	f := newHandlerFixture()
	cred := testutil.NewTestCredential()
	f.creds.GetByUserAndProviderFunc = func(context.Context, int64, service.ProviderKind) (*service.Credential, error) {
		return cred, nil
	}
	f.creds.UpdateFunc = func(context.Context, *service.Credential) error { return nil }
	var gotStart, gotEnd time.Time
	f.mkt.FetchOrdersFunc = func(_ context.Context, _ string, start, end time.Time) ([]marketplace.Order, error) {
		gotStart, gotEnd = start, end
		return nil, nil
	}

	rec := f.do(http.MethodPost, "/api/v1/sync/marketplace/run",
		`{"start_date":"2026-03-01","end_date":"2026-03-31"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), gotStart)
	require.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), gotEnd)
}

func TestSyncHandlerRunWithRFC3339Window(t *testing.T) {
	f := newHandlerFixture()
	cred := testutil.NewTestCredential()
	f.creds.GetByUserAndProviderFunc = func(context.Context, int64, service.ProviderKind) (*service.Credential, error) {
		return cred, nil
	}
	f.creds.UpdateFunc = func(context.Context, *service.Credential) error { return nil }
	var gotStart time.Time
	f.mkt.FetchOrdersFunc = func(_ context.Context, _ string, start, _ time.Time) ([]marketplace.Order, error) {
		gotStart = start
		return nil, nil
	}

	rec := f.do(http.MethodPost, "/api/v1/sync/marketplace/run",
		`{"start_date":"2026-08-01T12:30:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC), gotStart)
}

func TestSyncHandlerRunRejectsBadDate(t *testing.T) {
	f := newHandlerFixture()

	rec := f.do(http.MethodPost, "/api/v1/sync/marketplace/run",
		`{"start_date":"03/01/2026"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncHandlerDisconnect(t *testing.T) {
	f := newHandlerFixture()
	cred := testutil.NewTestCredential()
	f.creds.GetByUserAndProviderFunc = func(context.Context, int64, service.ProviderKind) (*service.Credential, error) {
		return cred, nil
	}
	f.creds.UpdateFunc = func(context.Context, *service.Credential) error { return nil }

	rec := f.do(http.MethodDelete, "/api/v1/sync/marketplace/connection", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"disconnected":true`)
}

func TestSyncHandlerDeleteRecord(t *testing.T) {
	f := newHandlerFixture()
	f.recs.SoftDeleteFunc = func(_ context.Context, userID, id int64) (bool, error) {
		return userID == 1 && id == 7, nil
	}

	rec := f.do(http.MethodDelete, "/api/v1/sync/records/7", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/sync/records/8", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/sync/records/not-a-number", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
