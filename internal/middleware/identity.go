package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/moodloom/backend/internal/apierror"
	"github.com/moodloom/backend/internal/logger"
)

// UserIDHeader carries the authenticated user's ID, set by the upstream
// gateway after it has verified the caller's credentials.
const UserIDHeader = "X-User-ID"

// Identity trusts the gateway-forwarded user header. Authentication itself
// lives in the gateway; this service only requires that an identity was
// forwarded.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			logger.Ctx(c.Request.Context()).Debug("request rejected: missing user identity header")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		c.Set("user_id", userID)

		// Add user ID to request context for logging
		ctx := logger.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserID extracts the authenticated user's ID from the gin context.
func UserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
