package middleware

import (
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

// maskedQueryParams carry customer contact details (ticket tracking).
var maskedQueryParams = []string{"email"}

const healthPath = "/health"

func CustomLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		if c.Request.URL.Path == healthPath && status < 400 {
			return
		}

		args := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"query", maskQuery(c.Request.URL.Query()),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if a, ok := ActorFrom(c); ok && a.IsAuthenticated() {
			args = append(args, "user_id", a.UserID, "role", a.Role.String())
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Debugw("request completed", args...)
		}
	}
}

func maskQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	for _, k := range maskedQueryParams {
		if v := q.Get(k); v != "" {
			q.Set(k, utils.MaskEmail(v))
		}
	}
	return q.Encode()
}
