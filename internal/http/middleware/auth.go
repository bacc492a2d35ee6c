package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/modules/admin"
)

const (
	AdminCookieName = "admin_token"
	ctxKeyUser      = "user"
)

// User is the authenticated principal for this request.
type User struct {
	Subject string
	Role    string
}

func (u User) IsAdmin() bool { return u.Role == admin.RoleAdmin }

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(signed string) (*admin.Claims, error)
}

// Auth reads "Authorization: Bearer <token>" or the admin cookie. Invalid
// tokens are ignored; RequireAdmin decides what is allowed.
func Auth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			raw, _ = c.Cookie(AdminCookieName)
		}
		if raw != "" {
			if claims, err := tokens.Parse(raw); err == nil {
				c.Set(ctxKeyUser, User{Subject: claims.Subject, Role: claims.Role})
			}
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return User{}, false
	}
	u, ok := v.(User)
	return u, ok
}

func bearerToken(h string) string {
	const prefix = "bearer "
	if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
