package http

import (
	addressUsecases "github.com/phonefix-inc/phonefix/internal/application/address/usecases"
	cartUsecases "github.com/phonefix-inc/phonefix/internal/application/cart/usecases"
	catalogUsecases "github.com/phonefix-inc/phonefix/internal/application/catalog/usecases"
	orderUsecases "github.com/phonefix-inc/phonefix/internal/application/order/usecases"
	repairUsecases "github.com/phonefix-inc/phonefix/internal/application/repair/usecases"
	wholesaleUsecases "github.com/phonefix-inc/phonefix/internal/application/wholesale/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Order
	createOrderUC     *orderUsecases.CreateOrderUseCase
	getOrderUC        *orderUsecases.GetOrderUseCase
	listOrdersUC      *orderUsecases.ListOrdersUseCase
	initiatePaymentUC *orderUsecases.InitiatePaymentUseCase
	confirmPaymentUC  *orderUsecases.ConfirmPaymentUseCase
	updateOrderUC     *orderUsecases.UpdateOrderStatusUseCase

	// Repair
	submitTicketUC *repairUsecases.SubmitTicketUseCase
	updateTicketUC *repairUsecases.UpdateTicketUseCase
	getTicketUC    *repairUsecases.GetTicketUseCase
	trackTicketUC  *repairUsecases.TrackTicketUseCase
	listTicketsUC  *repairUsecases.ListTicketsUseCase

	// Wholesale
	submitApplicationUC *wholesaleUsecases.SubmitApplicationUseCase
	getMyApplicationUC  *wholesaleUsecases.GetMyApplicationUseCase
	listApplicationsUC  *wholesaleUsecases.ListApplicationsUseCase
	getApplicationUC    *wholesaleUsecases.GetApplicationUseCase
	reviewApplicationUC *wholesaleUsecases.ReviewApplicationUseCase

	// Storefront
	listProductsUC *catalogUsecases.ListProductsUseCase
	getProductUC   *catalogUsecases.GetProductUseCase
	cartService    *cartUsecases.CartService
	addressManager *addressUsecases.AddressManager
}

// initUseCases wires the workflow services onto the repositories and the
// outbound infrastructure built by initInfrastructure.
func (c *Container) initUseCases() error {
	r := c.repos
	log := c.log
	pricing := c.cfg.Pricing

	gateway, err := newGateway(c.cfg, log)
	if err != nil {
		return err
	}

	tiers := wholesaleUsecases.NewTierResolver(r.wholesaleRepo, log)

	c.ucs = &allUseCases{
		createOrderUC: orderUsecases.NewCreateOrderUseCase(
			r.orderRepo, r.cartRepo, r.productRepo,
			tiers, &c.cfg.Pricing, newPricingPolicy(pricing), pricing.DefaultCountry,
			r.txMgr, c.publisher, c.notifier, log,
		),
		getOrderUC:        orderUsecases.NewGetOrderUseCase(r.orderRepo, log),
		listOrdersUC:      orderUsecases.NewListOrdersUseCase(r.orderRepo, log),
		initiatePaymentUC: orderUsecases.NewInitiatePaymentUseCase(r.orderRepo, gateway, log),
		confirmPaymentUC:  orderUsecases.NewConfirmPaymentUseCase(r.orderRepo, gateway, c.publisher, log),
		updateOrderUC:     orderUsecases.NewUpdateOrderStatusUseCase(r.orderRepo, c.publisher, c.notifier, log),

		submitTicketUC: repairUsecases.NewSubmitTicketUseCase(r.ticketRepo, c.markdown, c.publisher, c.notifier, pricing.Currency, log),
		updateTicketUC: repairUsecases.NewUpdateTicketUseCase(r.ticketRepo, c.markdown, c.publisher, c.notifier, pricing.Currency, log),
		getTicketUC:    repairUsecases.NewGetTicketUseCase(r.ticketRepo, log),
		trackTicketUC:  repairUsecases.NewTrackTicketUseCase(r.ticketRepo, log),
		listTicketsUC:  repairUsecases.NewListTicketsUseCase(r.ticketRepo, log),

		submitApplicationUC: wholesaleUsecases.NewSubmitApplicationUseCase(r.wholesaleRepo, c.markdown, c.publisher, pricing.DefaultCountry, log),
		getMyApplicationUC:  wholesaleUsecases.NewGetMyApplicationUseCase(r.wholesaleRepo, log),
		listApplicationsUC:  wholesaleUsecases.NewListApplicationsUseCase(r.wholesaleRepo, log),
		getApplicationUC:    wholesaleUsecases.NewGetApplicationUseCase(r.wholesaleRepo, log),
		reviewApplicationUC: wholesaleUsecases.NewReviewApplicationUseCase(r.wholesaleRepo, c.markdown, c.publisher, c.notifier, log),

		listProductsUC: catalogUsecases.NewListProductsUseCase(r.productRepo, log),
		getProductUC:   catalogUsecases.NewGetProductUseCase(r.productRepo, log),
		cartService:    cartUsecases.NewCartService(r.cartRepo, r.productRepo, log),
		addressManager: addressUsecases.NewAddressManager(r.addressRepo, r.txMgr, pricing.DefaultCountry, log),
	}
	return nil
}
