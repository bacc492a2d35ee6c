package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/ratelimit"
	"fitoapteka.kz/app/internal/shared/apperr"
)

type Limiter interface {
	Allow(key string) ratelimit.Decision
}

// RateLimit counts requests per client IP under prefix ("ask" -> "ask:<ip>").
// Requests without a resolvable client IP are not limited.
func RateLimit(l Limiter, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		d := l.Allow(prefix + ":" + ip)
		if !d.Allowed {
			c.Header("Retry-After", strconv.Itoa(d.RetryAfterSeconds()))
			Fail(c, apperr.TooManyRequestsErr("too_many_requests"))
			return
		}
		c.Next()
	}
}
