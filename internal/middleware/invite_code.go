package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InviteCodeMiddleware gates signup behind a shared invite code. With no code
// configured, signups are open.
func InviteCodeMiddleware(inviteCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if inviteCode == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-Invite-Code") != inviteCode {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid invite code"})
			return
		}
		c.Next()
	}
}
