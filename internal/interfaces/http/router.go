package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/infrastructure/config"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/ratelimit"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/routes"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.authMiddleware.Authenticate())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	limits := ratelimit.LimitsFrom(r.cfg.RateLimit)

	routes.SetupStorefrontRoutes(r.engine, &routes.StorefrontRouteConfig{
		CatalogHandler: r.hdlrs.catalogHandler,
		CartHandler:    r.hdlrs.cartHandler,
		AddressHandler: r.hdlrs.addressHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupOrderRoutes(r.engine, &routes.OrderRouteConfig{
		OrderHandler:         r.hdlrs.orderHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimitMiddleware:  r.rateLimitMiddleware,
		CheckoutLimit:        limits.Checkout,
	})

	routes.SetupRepairRoutes(r.engine, &routes.RepairRouteConfig{
		RepairHandler:        r.hdlrs.repairHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimitMiddleware:  r.rateLimitMiddleware,
		IntakeLimit:          limits.Intake,
	})

	routes.SetupWholesaleRoutes(r.engine, &routes.WholesaleRouteConfig{
		WholesaleHandler:     r.hdlrs.wholesaleHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases the background resources held by the container.
func (r *Router) Shutdown() {
	r.Close()
}
