package http

import (
	addressHandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/address"
	cartHandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/cart"
	catalogHandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/catalog"
	healthHandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/health"
	orderHandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/order"
	repairHandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/repair"
	wholesaleHandlers "github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/wholesale"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler    *healthHandlers.Handler
	orderHandler     *orderHandlers.Handler
	repairHandler    *repairHandlers.Handler
	wholesaleHandler *wholesaleHandlers.Handler
	addressHandler   *addressHandlers.Handler
	catalogHandler   *catalogHandlers.Handler
	cartHandler      *cartHandlers.Handler
}

func (c *Container) initHandlers() error {
	u := c.ucs
	log := c.log

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.hdlrs = &allHandlers{
		healthHandler: healthHandlers.NewHandler(sqlDB, log),
		orderHandler: orderHandlers.NewHandler(
			u.createOrderUC, u.getOrderUC, u.listOrdersUC,
			u.initiatePaymentUC, u.confirmPaymentUC, u.updateOrderUC, log,
		),
		repairHandler: repairHandlers.NewHandler(
			u.submitTicketUC, u.updateTicketUC, u.getTicketUC, u.trackTicketUC, u.listTicketsUC, log,
		),
		wholesaleHandler: wholesaleHandlers.NewHandler(
			u.submitApplicationUC, u.getMyApplicationUC, u.listApplicationsUC,
			u.getApplicationUC, u.reviewApplicationUC, log,
		),
		addressHandler: addressHandlers.NewHandler(u.addressManager, log),
		catalogHandler: catalogHandlers.NewHandler(u.listProductsUC, u.getProductUC, log),
		cartHandler:    cartHandlers.NewHandler(u.cartService, log),
	}

	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(c.limiter, log)
	return nil
}
