package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Identity headers
const (
	HeaderUserID   = "X-User-ID"
	HeaderAdminKey = "X-Admin-Key"

	// ContextUserID is the gin context key holding the authenticated user
	ContextUserID = "user_id"
)

// RequireUser rejects requests without a caller identity
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			abortWith(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Missing required header: "+HeaderUserID)
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the identity stored by RequireUser
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// RequireAdmin checks X-Admin-Key against a bcrypt hash. An empty hash refuses every key.
func RequireAdmin(adminKeyHash string, logger coreport.Logger) gin.HandlerFunc {
	hash := []byte(adminKeyHash)

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAdminKey)
		if key == "" {
			abortWith(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Missing required header: "+HeaderAdminKey)
			return
		}
		if len(hash) == 0 || bcrypt.CompareHashAndPassword(hash, []byte(key)) != nil {
			logger.Warn("Admin key rejected", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			})
			abortWith(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Invalid admin key")
			return
		}
		c.Next()
	}
}
