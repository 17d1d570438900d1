package utils

import "github.com/gin-gonic/gin"

// Context keys set by the auth middlewares.
const (
	ctxUserIDKey = "userId"
	ctxRoleKey   = "role"
)

// CurrentUserID returns the id stored by the auth middlewares, or 0 for
// an unauthenticated request. Both middlewares store the id as uint.
func CurrentUserID(c *gin.Context) uint {
	id, _ := c.Value(ctxUserIDKey).(uint)
	return id
}

// CurrentRole returns the role claim, or "" when absent.
func CurrentRole(c *gin.Context) string {
	role, _ := c.Value(ctxRoleKey).(string)
	return role
}
