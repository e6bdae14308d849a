// Package middleware carries the request-scoped plumbing for the HTTP layer.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"aster/internal/shared/errors"
	"aster/internal/shared/utils"
)

const (
	userIDHeader   = "X-User-ID"
	userNameHeader = "X-User-Name"
)

// RequireIdentity reads the caller identity injected by the fronting auth
// layer. Authentication itself happens upstream; this only refuses requests
// that arrive without an identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(userIDHeader)
		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || userID == 0 {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("missing caller identity"))
			c.Abort()
			return
		}

		userName := c.GetHeader(userNameHeader)
		if userName == "" {
			userName = "user"
		}

		c.Set("user_id", uint(userID))
		c.Set("user_name", userName)
		c.Next()
	}
}

// CallerID returns the authenticated caller's user ID from the context.
func CallerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CallerName returns the caller's display name from the context.
func CallerName(c *gin.Context) string {
	value, exists := c.Get("user_name")
	if !exists {
		return "user"
	}
	name, ok := value.(string)
	if !ok || name == "" {
		return "user"
	}
	return name
}
