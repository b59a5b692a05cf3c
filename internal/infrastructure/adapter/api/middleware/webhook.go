package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"time"

	domainerr "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Gateway signature headers
const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"

	maxWebhookBody = 64 << 10
)

// WebhookTolerance bounds the distance between a callback's signed timestamp and now
const WebhookTolerance = 5 * time.Minute

// SignWebhook returns base64(HMAC-SHA256(secret, timestamp + body))
func SignWebhook(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature rejects gateway callbacks whose signature does not match
// or whose signed timestamp (unix seconds) is further than WebhookTolerance from now.
// The body is restored for the handler after verification.
func VerifyWebhookSignature(secret string, timeProvider coreport.TimeProvider, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			logger.Error("Webhook received but no webhook secret is configured", nil)
			abortWith(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Webhook verification unavailable")
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil {
			abortWith(c, http.StatusBadRequest, domainerr.ErrInvalidRequest, "Unreadable webhook body")
			return
		}

		timestamp := c.GetHeader(HeaderWebhookTimestamp)
		expected := SignWebhook(secret, timestamp, body)
		if !hmac.Equal([]byte(expected), []byte(c.GetHeader(HeaderWebhookSignature))) {
			logger.Warn("Webhook signature mismatch", map[string]any{
				"client_ip": c.ClientIP(),
			})
			abortWith(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Invalid webhook signature")
			return
		}

		sentAt, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Malformed webhook timestamp")
			return
		}
		skew := timeProvider.Now().Sub(time.Unix(sentAt, 0))
		if skew > WebhookTolerance || skew < -WebhookTolerance {
			logger.Warn("Webhook timestamp outside tolerance", map[string]any{
				"timestamp": sentAt,
				"skew":      skew.String(),
				"client_ip": c.ClientIP(),
			})
			abortWith(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Stale webhook timestamp")
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}
