package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type AuthMiddleware struct {
	authenticator actor.Authenticator
	logger        logger.Interface
}

func NewAuthMiddleware(authenticator actor.Authenticator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

// Authenticate attaches the request actor. Requests without credentials
// continue as anonymous; invalid credentials are rejected with 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := m.authenticator.Authenticate(c.Request)
		if err != nil {
			m.logger.Warnw("failed to authenticate request", "path", c.Request.URL.Path, "error", err)
			utils.AbortWithError(c, errors.NewUnauthorizedError("invalid or expired credentials"))
			return
		}

		c.Set(constants.ContextKeyActor, a)
		if a.IsAuthenticated() {
			c.Set(constants.ContextKeyUserID, a.UserID)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetActor(c).IsAuthenticated() {
			utils.AbortWithError(c, errors.NewUnauthorizedError("authentication required"))
			return
		}
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (actor.Actor, bool) {
	v, ok := c.Get(constants.ContextKeyActor)
	if !ok {
		return actor.Anonymous(), false
	}
	a, ok := v.(actor.Actor)
	return a, ok
}

// GetActor returns the request actor, anonymous when none was attached.
func GetActor(c *gin.Context) actor.Actor {
	a, _ := ActorFrom(c)
	return a
}

// SetActor is used by tests that bypass Authenticate.
func SetActor(c *gin.Context, a actor.Actor) {
	c.Set(constants.ContextKeyActor, a)
}
