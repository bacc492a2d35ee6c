package middleware

import (
	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/shared/apperr"
)

// RequireAdmin rejects before the handler runs:
// - no valid token: 401
// - token without admin role: 403
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("authentication_required"))
			return
		}
		if !u.IsAdmin() {
			Fail(c, apperr.ForbiddenErr("forbidden"))
			return
		}
		c.Next()
	}
}
