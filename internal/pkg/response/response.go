// Package response defines the JSON envelope every HTTP handler writes.
// Success and error paths share one shape so clients can always decode
// {code, message, reason?, data?}.
package response

import (
	"net/http"
	"strconv"

	infraerrors "github.com/aaron-lee-hebert/seller-metrics/internal/pkg/errors"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// Response is the wire envelope.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// PaginatedData wraps a list payload with its pagination result.
type PaginatedData struct {
	Items      any                          `json:"items"`
	Pagination *pagination.PaginationResult `json:"pagination"`
}

// Success writes a 200 envelope with data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "success", Data: data})
}

// Paginated writes a 200 envelope with a paginated list.
func Paginated(c *gin.Context, items any, result *pagination.PaginationResult) {
	Success(c, PaginatedData{Items: items, Pagination: result})
}

// Error writes an envelope with the given status and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Code: status, Message: message})
}

// ErrorWithReason writes an envelope carrying a machine-readable reason.
func ErrorWithReason(c *gin.Context, status int, reason, message string) {
	c.JSON(status, Response{Code: status, Message: message, Reason: reason})
}

// ErrorFrom maps an infra error onto the envelope, falling back to 500
// for plain errors so internal detail never leaks verbatim.
func ErrorFrom(c *gin.Context, err error) {
	if err == nil {
		Success(c, nil)
		return
	}
	status := infraerrors.StatusCode(err)
	reason := infraerrors.ReasonCode(err)
	message := infraerrors.Message(err)
	if reason == "" {
		message = "internal server error"
	}
	ErrorWithReason(c, status, reason, message)
}

// BadRequest writes a 400 envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError writes a 500 envelope.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ParsePagination reads page/page_size query params with defaults.
func ParsePagination(c *gin.Context) pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(pagination.DefaultPage)))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(pagination.DefaultPageSize)))
	return pagination.PaginationParams{Page: page, PageSize: size}.Normalize()
}
