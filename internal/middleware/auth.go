// auth.go implements optional shared-key authentication.
//
// There are no user accounts and nothing is persisted, so authentication
// is a single deploy-time key rather than a key store. When no key is
// configured the middleware is a pass-through — useful for local
// development and private deployments.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prepwise/exam-prep-api/internal/models"
)

// APIKeyAuth returns middleware that requires the configured key in the
// X-API-Key header or as an Authorization bearer token.
func APIKeyAuth(configuredKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if configuredKey == "" {
			c.Next()
			return
		}

		presented := extractKey(c)
		// Constant-time compare; a plain == would leak key prefixes
		// through response timing.
		if subtle.ConstantTimeCompare([]byte(presented), []byte(configuredKey)) != 1 {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Missing or invalid API key. Provide it in the X-API-Key header.",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractKey pulls the presented key from X-API-Key or a bearer token.
func extractKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}

	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}
