package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/infrastructure/ratelimit"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit throttles per user id, falling back to client IP for guests. When
// redis is unreachable the request is allowed.
func (m *RateLimitMiddleware) Limit(scope string, limit ratelimit.Limit) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := "ip:" + c.ClientIP()
		if a := GetActor(c); a.IsAuthenticated() {
			identity = "user:" + a.UserID
		}
		key := scope + ":" + identity

		allowed, err := m.limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}
		if !allowed {
			m.logger.Warnw("rate limit exceeded", "key", key, "limit", limit.Requests, "window", limit.Window.String())
			utils.AbortWithError(c, errors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			return
		}
		c.Next()
	}
}
