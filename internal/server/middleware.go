package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"auction-sim/internal/auth"
	"auction-sim/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware verifies the Authorization bearer token and stores
// the caller's user ID on the context. With a nil verifier the request
// passes through untouched and handlers trust body-supplied IDs.
func IdentityMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		userID, err := verifier.UserID(token)
		if err != nil {
			utils.Warn("IdentityMiddleware: token rejected", map[string]any{"error": err.Error()})
			utils.JSONError(c, http.StatusUnauthorized, "invalid bearer token")
			c.Abort()
			return
		}

		auth.SetIdentity(c, userID)
		c.Next()
	}
}
