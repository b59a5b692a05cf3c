package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/dto"
	applogger "github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// Listing bounds
const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// StatusFor maps a domain error class to an HTTP status
func StatusFor(err error) int {
	switch {
	case domainerr.IsInsufficientBalanceError(err), domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsStateConflictError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrPaymentTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case domainerr.IsPaymentFailureError(err):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a classified error. Unclassified errors are logged and
// reported without detail.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusFor(err)

	fields := domainerr.LogFields(err)
	fields["operation"] = operation
	fields["path"] = c.Request.URL.Path
	fields["request_id"] = applogger.RequestIDFromContext(c.Request.Context())

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", fields)
		message = "Internal server error"
	} else {
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// bindJSON decodes the body into req, answering 400 on malformed input
func bindJSON(c *gin.Context, logger coreport.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Debug("Invalid request format", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return false
	}
	return true
}

// pageFrom reads limit and offset query parameters
func pageFrom(c *gin.Context) persistence.Page {
	page := persistence.Page{Limit: defaultPageLimit}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		page.Limit = min(limit, maxPageLimit)
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		page.Offset = offset
	}
	return page
}
