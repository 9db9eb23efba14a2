package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type PermissionChecker interface {
	Enforce(role string, resource string, action string) (bool, error)
}

type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		a := GetActor(c)
		if !a.IsAuthenticated() {
			utils.AbortWithError(c, errors.NewUnauthorizedError("authentication required"))
			return
		}

		allowed, err := m.checker.Enforce(a.Role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", a.UserID, "resource", resource, "action", action)
			utils.AbortWithError(c, errors.NewInternalError("permission check failed"))
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", a.UserID, "role", a.Role.String(), "resource", resource, "action", action)
			utils.AbortWithError(c, errors.NewForbiddenError("insufficient permissions"))
			return
		}

		c.Next()
	}
}
