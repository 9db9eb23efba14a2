package routes

import (
	"github.com/gin-gonic/gin"

	addresshandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/address"
	carthandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/cart"
	cataloghandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/catalog"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
)

type StorefrontRouteConfig struct {
	CatalogHandler *cataloghandlers.Handler
	CartHandler    *carthandlers.Handler
	AddressHandler *addresshandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupStorefrontRoutes(engine *gin.Engine, config *StorefrontRouteConfig) {
	products := engine.Group("/api/products")
	{
		products.GET("", config.CatalogHandler.ListProducts)
		products.GET("/:id", config.CatalogHandler.GetProduct)
	}

	cart := engine.Group("/api/cart")
	cart.Use(config.AuthMiddleware.RequireAuth())
	{
		cart.GET("", config.CartHandler.GetCart)
		cart.POST("/items", middleware.RequireJSON(), config.CartHandler.AddItem)
		cart.PUT("/items/:productId", middleware.RequireJSON(), config.CartHandler.UpdateItem)
		cart.DELETE("/items/:productId", config.CartHandler.RemoveItem)
	}

	addresses := engine.Group("/api/user/addresses")
	addresses.Use(config.AuthMiddleware.RequireAuth())
	{
		addresses.GET("", config.AddressHandler.List)
		addresses.POST("", middleware.RequireJSON(), config.AddressHandler.Create)
		addresses.POST("/:id/default", middleware.RequireJSON(), config.AddressHandler.SetDefault)
		addresses.PUT("/:id", middleware.RequireJSON(), config.AddressHandler.Update)
		addresses.DELETE("/:id", config.AddressHandler.Delete)
	}
}
