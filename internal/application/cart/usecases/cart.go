package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/application/cart/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/cart"
	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/money"
)

type ItemCommand struct {
	Actor     actor.Actor
	ProductID uint
	Quantity  int
}

// CartService owns the per-user cart. Quantities are checked against stock
// on every change; checkout checks again inside its transaction.
type CartService struct {
	cartRepo    cart.Repository
	productRepo catalog.Repository
	logger      logger.Interface
}

func NewCartService(cartRepo cart.Repository, productRepo catalog.Repository, logger logger.Interface) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *CartService) Get(ctx context.Context, a actor.Actor) (*dto.CartDTO, error) {
	if !a.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to use the cart")
	}
	return s.view(ctx, a.UserID)
}

// AddItem adds to any quantity already in the cart.
func (s *CartService) AddItem(ctx context.Context, cmd ItemCommand) (*dto.CartDTO, error) {
	if !cmd.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to use the cart")
	}
	if err := cart.ValidateQuantity(cmd.Quantity, false); err != nil {
		return nil, err
	}

	item, err := s.cartRepo.Get(ctx, cmd.Actor.UserID, cmd.ProductID)
	switch {
	case err == nil:
	case apperrors.IsNotFoundError(err):
		item = &cart.Item{UserID: cmd.Actor.UserID, ProductID: cmd.ProductID, CreatedAt: biztime.NowUTC()}
	default:
		return nil, err
	}

	qty := item.Quantity + cmd.Quantity
	if err := cart.ValidateQuantity(qty, false); err != nil {
		return nil, err
	}
	if err := s.checkAvailable(ctx, cmd.ProductID, qty); err != nil {
		return nil, err
	}

	item.Quantity = qty
	item.UpdatedAt = biztime.NowUTC()
	if err := s.cartRepo.Save(ctx, item); err != nil {
		s.logger.Errorw("failed to save cart item", "user_id", cmd.Actor.UserID, "product_id", cmd.ProductID, "error", err)
		return nil, err
	}

	s.logger.Debugw("cart item added", "user_id", cmd.Actor.UserID, "product_id", cmd.ProductID, "quantity", qty)
	return s.view(ctx, cmd.Actor.UserID)
}

// UpdateItem sets the quantity; zero removes the line.
func (s *CartService) UpdateItem(ctx context.Context, cmd ItemCommand) (*dto.CartDTO, error) {
	if !cmd.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to use the cart")
	}
	if err := cart.ValidateQuantity(cmd.Quantity, true); err != nil {
		return nil, err
	}
	if cmd.Quantity == 0 {
		return s.RemoveItem(ctx, cmd.Actor, cmd.ProductID)
	}

	item, err := s.cartRepo.Get(ctx, cmd.Actor.UserID, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAvailable(ctx, cmd.ProductID, cmd.Quantity); err != nil {
		return nil, err
	}

	item.Quantity = cmd.Quantity
	item.UpdatedAt = biztime.NowUTC()
	if err := s.cartRepo.Save(ctx, item); err != nil {
		s.logger.Errorw("failed to update cart item", "user_id", cmd.Actor.UserID, "product_id", cmd.ProductID, "error", err)
		return nil, err
	}
	return s.view(ctx, cmd.Actor.UserID)
}

func (s *CartService) RemoveItem(ctx context.Context, a actor.Actor, productID uint) (*dto.CartDTO, error) {
	if !a.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to use the cart")
	}
	if err := s.cartRepo.Remove(ctx, a.UserID, productID); err != nil {
		return nil, err
	}
	s.logger.Debugw("cart item removed", "user_id", a.UserID, "product_id", productID)
	return s.view(ctx, a.UserID)
}

func (s *CartService) checkAvailable(ctx context.Context, productID uint, qty int) error {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewFieldValidationError("product_id", "product does not exist")
		}
		return err
	}
	if !p.IsActive() {
		return apperrors.NewFieldValidationError("product_id", "product is not available")
	}
	if !p.CanFulfil(qty) {
		return apperrors.NewConflictError("insufficient stock for " + p.Name())
	}
	return nil
}

func (s *CartService) view(ctx context.Context, userID string) (*dto.CartDTO, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Errorw("failed to load cart", "user_id", userID, "error", err)
		return nil, err
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	out := &dto.CartDTO{Items: make([]*dto.CartItemDTO, 0, len(items)), Subtotal: decimal.Zero}
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		line := money.Round2(p.Price().Mul(decimal.NewFromInt(int64(it.Quantity))))
		available := p.CanFulfil(it.Quantity)
		out.Items = append(out.Items, &dto.CartItemDTO{
			ProductID: p.ID(),
			Name:      p.Name(),
			SKU:       p.SKU(),
			Slug:      p.Slug(),
			ImageURL:  p.ImageURL(),
			UnitPrice: p.Price(),
			Quantity:  it.Quantity,
			LineTotal: line,
			Available: available,
		})
		out.ItemCount += it.Quantity
		if available {
			out.Subtotal = out.Subtotal.Add(line)
		}
	}
	return out, nil
}
