package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/infrastructure/permission"
	wholesalehandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/wholesale"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
)

type WholesaleRouteConfig struct {
	WholesaleHandler     *wholesalehandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupWholesaleRoutes(engine *gin.Engine, config *WholesaleRouteConfig) {
	h := config.WholesaleHandler

	apply := engine.Group("/api/wholesale")
	apply.Use(config.AuthMiddleware.RequireAuth())
	{
		apply.GET("/apply", h.GetMyApplication)
		apply.POST("/apply", middleware.RequireJSON(), h.Apply)
	}

	admin := engine.Group("/api/admin/wholesale")
	admin.Use(config.AuthMiddleware.RequireAuth())
	{
		admin.GET("",
			config.PermissionMiddleware.RequirePermission(permission.ResourceWholesale, permission.ActionRead),
			h.ListApplications)
		admin.GET("/:id",
			config.PermissionMiddleware.RequirePermission(permission.ResourceWholesale, permission.ActionRead),
			h.GetApplication)
		admin.PUT("/:id",
			middleware.RequireJSON(),
			config.PermissionMiddleware.RequirePermission(permission.ResourceWholesale, permission.ActionReview),
			h.ReviewApplication)
	}
}
