//go:build unit

package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	infraerrors "github.com/aaron-lee-hebert/seller-metrics/internal/pkg/errors"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func parseResponseBody(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var got Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func newContextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"key": "value"})

	require.Equal(t, http.StatusOK, w.Code)
	got := parseResponseBody(t, w)
	require.Equal(t, http.StatusOK, got.Code)
	require.Equal(t, "success", got.Message)
	require.NotNil(t, got.Data)
}

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusBadRequest, "invalid request")

	require.Equal(t, http.StatusBadRequest, w.Code)
	got := parseResponseBody(t, w)
	require.Equal(t, http.StatusBadRequest, got.Code)
	require.Equal(t, "invalid request", got.Message)
	require.Empty(t, got.Reason)
}

func TestErrorWithReason(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorWithReason(c, http.StatusConflict, "ACCOUNT_NOT_CONNECTED", "account not connected")

	require.Equal(t, http.StatusConflict, w.Code)
	got := parseResponseBody(t, w)
	require.Equal(t, "ACCOUNT_NOT_CONNECTED", got.Reason)
	require.Equal(t, "account not connected", got.Message)
}

func TestErrorFromInfraError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := infraerrors.New(http.StatusUnauthorized, "REAUTHORIZATION_REQUIRED", "reconnect required")
	ErrorFrom(c, err)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	got := parseResponseBody(t, w)
	require.Equal(t, http.StatusUnauthorized, got.Code)
	require.Equal(t, "REAUTHORIZATION_REQUIRED", got.Reason)
	require.Equal(t, "reconnect required", got.Message)
}

func TestErrorFromPlainErrorIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorFrom(c, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	got := parseResponseBody(t, w)
	require.Equal(t, "internal server error", got.Message, "internal detail must not leak")
	require.Empty(t, got.Reason)
}

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		call func(c *gin.Context)
		want int
	}{
		{func(c *gin.Context) { BadRequest(c, "m") }, http.StatusBadRequest},
		{func(c *gin.Context) { Unauthorized(c, "m") }, http.StatusUnauthorized},
		{func(c *gin.Context) { NotFound(c, "m") }, http.StatusNotFound},
		{func(c *gin.Context) { InternalError(c, "m") }, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		tc.call(c)
		require.Equal(t, tc.want, w.Code)
	}
}

func TestPaginated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	result := pagination.NewResult(25, pagination.PaginationParams{Page: 2, PageSize: 10})
	Paginated(c, []string{"a", "b"}, result)

	require.Equal(t, http.StatusOK, w.Code)

	var raw struct {
		Code int `json:"code"`
		Data struct {
			Items      []string                    `json:"items"`
			Pagination pagination.PaginationResult `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Equal(t, []string{"a", "b"}, raw.Data.Items)
	require.EqualValues(t, 25, raw.Data.Pagination.Total)
	require.Equal(t, 2, raw.Data.Pagination.Page)
	require.Equal(t, 10, raw.Data.Pagination.PageSize)
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"", 1, 20},
		{"page=3", 3, 20},
		{"page_size=50", 1, 50},
		{"page=2&page_size=30", 2, 30},
		{"page=0", 1, 20},
		{"page=abc", 1, 20},
		{"page_size=0", 1, 20},
		{"page_size=500", 1, pagination.MaxPageSize}, // clamped
	}
	for _, tc := range cases {
		c := newContextWithQuery(tc.query)
		params := ParsePagination(c)
		require.Equal(t, tc.wantPage, params.Page, "query %q", tc.query)
		require.Equal(t, tc.wantPageSize, params.PageSize, "query %q", tc.query)
	}
}
