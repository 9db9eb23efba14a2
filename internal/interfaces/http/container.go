package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/auth"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/config"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/permission"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/ratelimit"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/markdown"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, and owns their shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Outbound services
	publisher events.Publisher
	notifier  notification.Notifier
	markdown  *markdown.Service
	limiter   ratelimit.RateLimiter
	enforcer  *permission.Enforcer
	closers   []io.Closer

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	authenticator, err := auth.NewAuthenticator(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}
	c.authMiddleware = middleware.NewAuthMiddleware(authenticator, log)

	// Section 1: Infrastructure - repositories, publisher, notifier, limiter, enforcer
	if err := c.initInfrastructure(); err != nil {
		c.Close()
		return nil, err
	}

	// Section 2: Workflow services
	if err := c.initUseCases(); err != nil {
		c.Close()
		return nil, err
	}

	// Section 3: Handlers and route middlewares
	if err := c.initHandlers(); err != nil {
		c.Close()
		return nil, err
	}

	return c, nil
}

// Close releases the event producer and the Redis client.
func (c *Container) Close() {
	for _, closer := range c.closers {
		if closer == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			c.log.Warnw("failed to close component", "error", err)
		}
	}
	c.closers = nil

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		c.redis = nil
	}
}
