package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/application/order/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/cart"
	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/goroutine"
	"github.com/phonefix-inc/phonefix/internal/shared/id"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

type CreateOrderCommand struct {
	Actor           actor.Actor
	CustomerEmail   string
	ShippingAddress sharedvo.PostalAddress
	BillingAddress  *sharedvo.PostalAddress
	Notes           string
}

type CreateOrderUseCase struct {
	orderRepo      order.Repository
	cartRepo       cart.Repository
	productRepo    catalog.Repository
	tiers          TierResolver
	discounts      DiscountSchedule
	policy         order.PricingPolicy
	defaultCountry string
	txMgr          db.Transactor
	publisher      events.Publisher
	notifier       notification.Notifier
	logger         logger.Interface
}

func NewCreateOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	productRepo catalog.Repository,
	tiers TierResolver,
	discounts DiscountSchedule,
	policy order.PricingPolicy,
	defaultCountry string,
	txMgr db.Transactor,
	publisher events.Publisher,
	notifier notification.Notifier,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		productRepo:    productRepo,
		tiers:          tiers,
		discounts:      discounts,
		policy:         policy,
		defaultCountry: defaultCountry,
		txMgr:          txMgr,
		publisher:      publisher,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.CreateOrderResult, error) {
	log := uc.logger.WithContext(ctx)

	if !cmd.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to check out")
	}
	userID := cmd.Actor.UserID
	log.Infow("executing create order use case", "user_id", userID)

	shipping := cmd.ShippingAddress.Normalize(uc.defaultCountry)
	var billing *sharedvo.PostalAddress
	if cmd.BillingAddress != nil {
		b := cmd.BillingAddress.Normalize(uc.defaultCountry)
		billing = &b
	}

	lines, err := uc.resolveLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	tier, discountPct, err := uc.resolveDiscount(ctx, userID)
	if err != nil {
		return nil, err
	}

	var placed *order.Order
	for attempt := 1; attempt <= constants.MaxNumberAttempts; attempt++ {
		o, err := uc.buildOrder(userID, cmd, lines, tier, discountPct, shipping, billing)
		if err != nil {
			return nil, err
		}

		err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.orderRepo.Create(txCtx, o); err != nil {
				return err
			}
			for _, item := range o.Items() {
				if err := uc.productRepo.DecrementStock(txCtx, item.ProductID(), item.Quantity()); err != nil {
					if errors.Is(err, catalog.ErrInsufficientStock) {
						return apperrors.NewConflictError(fmt.Sprintf("insufficient stock for %s", item.Name()))
					}
					return err
				}
			}
			return uc.cartRepo.Clear(txCtx, userID)
		})
		if errors.Is(err, order.ErrDuplicateOrderNumber) {
			log.Warnw("order number collision, regenerating", "order_number", o.OrderNumber(), "attempt", attempt)
			continue
		}
		if err != nil {
			log.Errorw("failed to place order", "user_id", userID, "error", err)
			return nil, err
		}
		placed = o
		break
	}
	if placed == nil {
		return nil, apperrors.NewInternalError("failed to allocate an order number")
	}

	log.Infow("order placed successfully",
		"order_id", placed.ID(),
		"order_number", placed.OrderNumber(),
		"total", placed.TotalAmount().String(),
		"wholesale", placed.IsWholesale(),
	)

	if err := uc.publisher.Publish(ctx, order.NewCreatedEvent(placed)); err != nil {
		log.Warnw("failed to publish order created event", "order_id", placed.ID(), "error", err)
	}
	uc.sendConfirmation(placed)

	return &dto.CreateOrderResult{
		OrderID:     placed.ID(),
		OrderNumber: placed.OrderNumber(),
		TotalAmount: placed.TotalAmount(),
	}, nil
}

// resolveLines reads the persisted cart and prices every line from the
// catalog as it is now. Client-supplied prices never reach this path.
func (uc *CreateOrderUseCase) resolveLines(ctx context.Context, userID string) ([]order.Line, error) {
	items, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load cart", "user_id", userID, "error", err)
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("cart is empty")
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load cart products", "user_id", userID, "error", err)
		return nil, err
	}
	byID := make(map[uint]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	lines := make([]order.Line, 0, len(items))
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok || !p.IsActive() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("product %d is no longer available", it.ProductID))
		}
		if it.Quantity > p.StockQuantity() {
			return nil, apperrors.NewConflictError(fmt.Sprintf("insufficient stock for %s", p.Name()))
		}
		imageURL := ""
		if p.ImageURL() != nil {
			imageURL = *p.ImageURL()
		}
		lines = append(lines, order.Line{
			ProductID: p.ID(),
			Name:      p.Name(),
			SKU:       p.SKU(),
			ImageURL:  imageURL,
			UnitPrice: p.Price(),
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}

func (uc *CreateOrderUseCase) resolveDiscount(ctx context.Context, userID string) (*string, decimal.Decimal, error) {
	tier, err := uc.tiers.ResolveTier(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to resolve wholesale tier", "user_id", userID, "error", err)
		return nil, decimal.Zero, err
	}
	if tier == nil {
		return nil, decimal.Zero, nil
	}
	name := tier.String()
	return &name, uc.discounts.DiscountPercent(name), nil
}

func (uc *CreateOrderUseCase) buildOrder(
	userID string,
	cmd CreateOrderCommand,
	lines []order.Line,
	tier *string,
	discountPct decimal.Decimal,
	shipping sharedvo.PostalAddress,
	billing *sharedvo.PostalAddress,
) (*order.Order, error) {
	quote, err := uc.policy.Price(lines, tier != nil, discountPct)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	number, err := id.NewOrderNumber(constants.OrderNumberPrefix, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate order number")
	}
	return order.NewOrder(order.NewOrderParams{
		OrderNumber:     number,
		UserID:          userID,
		CustomerEmail:   cmd.CustomerEmail,
		Quote:           quote,
		Currency:        uc.policy.Currency,
		WholesaleTier:   tier,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		CustomerNotes:   cmd.Notes,
	})
}

func (uc *CreateOrderUseCase) sendConfirmation(o *order.Order) {
	if o.CustomerEmail() == "" {
		return
	}
	msg := notification.OrderMessage{
		To:          o.CustomerEmail(),
		OrderNumber: o.OrderNumber(),
		Total:       o.TotalAmount(),
		Currency:    o.Currency(),
		ItemCount:   len(o.Items()),
		PlacedAt:    o.CreatedAt(),
	}
	goroutine.SafeGoWithTimeout(uc.logger, "order-confirmation-email", notifyTimeout, func(ctx context.Context) {
		if err := uc.notifier.OrderConfirmed(ctx, msg); err != nil {
			uc.logger.Warnw("failed to send order confirmation", "order_number", msg.OrderNumber, "error", err)
		}
	})
}
