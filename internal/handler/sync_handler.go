package handler

import (
	"strconv"
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/internal/handler/dto"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/response"
	"github.com/aaron-lee-hebert/seller-metrics/internal/server/middleware"
	"github.com/aaron-lee-hebert/seller-metrics/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SyncHandler exposes the provider connection lifecycle and sync runs.
type SyncHandler struct {
	syncService    *service.SyncService
	recordsService *service.RecordsService
	logger         *zap.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService *service.SyncService, recordsService *service.RecordsService, logger *zap.Logger) *SyncHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncHandler{
		syncService:    syncService,
		recordsService: recordsService,
		logger:         logger,
	}
}

func providerFromPath(c *gin.Context) (service.ProviderKind, bool) {
	provider, err := service.ParseProviderKind(c.Param("provider"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return "", false
	}
	return provider, true
}

func userIDFromContext(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return 0, false
	}
	return userID, true
}

// ConnectRequest carries the secret material for connecting a provider.
// The marketplace provider expects an authorization code, the invoicing
// provider a personal access token.
type ConnectRequest struct {
	AuthorizationCode string `json:"authorization_code"`
	AccessToken       string `json:"access_token"`
}

// Connect links the user's account with an external provider
// POST /api/v1/sync/:provider/connect
func (h *SyncHandler) Connect(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	provider, ok := providerFromPath(c)
	if !ok {
		return
	}

	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	if req.AuthorizationCode == "" && req.AccessToken == "" {
		response.BadRequest(c, "authorization_code or access_token is required")
		return
	}

	status, err := h.syncService.ConnectAccount(c.Request.Context(), userID, provider, service.ConnectInput{
		AuthorizationCode: req.AuthorizationCode,
		AccessToken:       req.AccessToken,
	})
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.Success(c, dto.ConnectionStatusFromService(status))
}

// Disconnect severs the provider connection, keeping synced records
// DELETE /api/v1/sync/:provider/connection
func (h *SyncHandler) Disconnect(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	provider, ok := providerFromPath(c)
	if !ok {
		return
	}

	disconnected, err := h.syncService.DisconnectAccount(c.Request.Context(), userID, provider)
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.Success(c, gin.H{"disconnected": disconnected})
}

// Status reports the provider connection state without secret material
// GET /api/v1/sync/:provider/status
func (h *SyncHandler) Status(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	provider, ok := providerFromPath(c)
	if !ok {
		return
	}

	status, err := h.syncService.GetConnectionStatus(c.Request.Context(), userID, provider)
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.Success(c, dto.ConnectionStatusFromService(status))
}

// RunRequest optionally narrows the fetch window. Dates are RFC 3339
// timestamps or bare 2006-01-02 dates; absent fields fall back to the
// configured default window.
type RunRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Run executes a sync run for the provider and reports its outcome.
// The run itself never fails the request: partial failures ride back
// inside the result body.
// POST /api/v1/sync/:provider/run
func (h *SyncHandler) Run(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	provider, ok := providerFromPath(c)
	if !ok {
		return
	}

	var req RunRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request: "+err.Error())
			return
		}
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		response.BadRequest(c, "start_date must be RFC 3339 or YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		response.BadRequest(c, "end_date must be RFC 3339 or YYYY-MM-DD")
		return
	}

	result := h.syncService.SyncRecords(c.Request.Context(), userID, provider, start, end)
	if !result.Success() {
		h.logger.Warn("sync run finished with errors",
			zap.Int64("user_id", userID),
			zap.String("provider", string(provider)),
			zap.Int("error_count", len(result.Errors)))
	}

	response.Success(c, dto.SyncResultFromService(result))
}

// ListRecords pages through the user's reconciled records
// GET /api/v1/sync/records
func (h *SyncHandler) ListRecords(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	params := response.ParsePagination(c)
	records, page, err := h.recordsService.List(c.Request.Context(), userID, c.Query("record_type"), params)
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.Paginated(c, dto.ExternalRecordsFromService(records), page)
}

// DeleteRecord tombstones a record so later syncs will not resurrect it
// DELETE /api/v1/sync/records/:id
func (h *SyncHandler) DeleteRecord(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid record ID")
		return
	}

	deleted, err := h.recordsService.Delete(c.Request.Context(), userID, id)
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "Record not found")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
