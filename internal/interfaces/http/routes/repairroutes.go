package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/infrastructure/permission"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/ratelimit"
	repairhandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/repair"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
)

type RepairRouteConfig struct {
	RepairHandler        *repairhandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
	IntakeLimit          ratelimit.Limit
}

func SetupRepairRoutes(engine *gin.Engine, config *RepairRouteConfig) {
	h := config.RepairHandler

	repairs := engine.Group("/api/repairs")
	{
		// Intake and tracking are open to guests
		repairs.POST("",
			middleware.RequireJSON(),
			config.RateLimitMiddleware.Limit("repair_intake", config.IntakeLimit),
			h.SubmitTicket)
		repairs.GET("/track", h.TrackTicket)

		repairs.GET("", config.AuthMiddleware.RequireAuth(), h.ListTickets)
		repairs.GET("/:id", config.AuthMiddleware.RequireAuth(), h.GetTicket)
	}

	admin := engine.Group("/api/admin/repairs")
	admin.Use(config.AuthMiddleware.RequireAuth())
	{
		admin.GET("",
			config.PermissionMiddleware.RequirePermission(permission.ResourceRepair, permission.ActionRead),
			h.ListTickets)
		admin.GET("/:id",
			config.PermissionMiddleware.RequirePermission(permission.ResourceRepair, permission.ActionRead),
			h.GetTicket)
		admin.PUT("/:id",
			middleware.RequireJSON(),
			config.PermissionMiddleware.RequirePermission(permission.ResourceRepair, permission.ActionUpdate),
			h.UpdateTicket)
	}
}
