package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/infrastructure/permission"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/ratelimit"
	orderhandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/order"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
)

type OrderRouteConfig struct {
	OrderHandler         *orderhandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
	CheckoutLimit        ratelimit.Limit
}

func SetupOrderRoutes(engine *gin.Engine, config *OrderRouteConfig) {
	h := config.OrderHandler

	orders := engine.Group("/api/orders")
	orders.Use(config.AuthMiddleware.RequireAuth())
	{
		orders.POST("",
			middleware.RequireJSON(),
			config.RateLimitMiddleware.Limit("checkout", config.CheckoutLimit),
			h.Checkout)
		orders.GET("", h.ListMyOrders)
		orders.GET("/:id", h.GetOrder)
	}

	payments := engine.Group("/api/payments")
	{
		payments.POST("/create-intent",
			config.AuthMiddleware.RequireAuth(),
			middleware.RequireJSON(),
			h.CreatePaymentIntent)
		// Signed by the gateway; the raw body is verified there.
		payments.POST("/webhook", h.PaymentWebhook)
	}

	admin := engine.Group("/api/admin/orders")
	admin.Use(config.AuthMiddleware.RequireAuth())
	{
		admin.GET("",
			config.PermissionMiddleware.RequirePermission(permission.ResourceOrder, permission.ActionRead),
			h.ListAllOrders)
		admin.GET("/:id",
			config.PermissionMiddleware.RequirePermission(permission.ResourceOrder, permission.ActionRead),
			h.GetOrder)
		admin.PUT("/:id",
			middleware.RequireJSON(),
			config.PermissionMiddleware.RequirePermission(permission.ResourceOrder, permission.ActionUpdate),
			h.UpdateOrderStatus)
	}
}
