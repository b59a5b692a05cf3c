package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// HeaderRequestID carries the correlation ID in both directions
const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or issues a new one, and stores it in
// the request context so repository and use case logs can carry it.
func RequestID(ids coreport.IDGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > 128 {
			requestID = ids.NewID(coreport.PrefixRequest)
		}
		c.Request = c.Request.WithContext(applogger.ContextWithRequestID(c.Request.Context(), requestID))
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := timeProvider.Since(start)
		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":      method,
			"path":        path,
			"route":       c.FullPath(),
			"status":      statusCode,
			"latency_ms":  latency.Milliseconds(),
			"ip":          c.ClientIP(),
			"request_id":  applogger.RequestIDFromContext(c.Request.Context()),
			"user_agent":  c.Request.UserAgent(),
			"status_text": statusText(statusCode),
		}
		if userID := c.GetString(ContextUserID); userID != "" {
			fields["user_id"] = userID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request processed", fields)
		case latency > slowRequest:
			logger.Warn("Slow request processed", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}

const slowRequest = 2 * time.Second

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
