package usecases

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/order/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type GetOrderQuery struct {
	OrderID uint
	Actor   actor.Actor
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Execute answers NotFound for another customer's order so ids cannot be enumerated.
func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*dto.OrderDTO, error) {
	if !query.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	o, err := uc.orderRepo.GetByID(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.CanBeViewedBy(query.Actor) {
		uc.logger.Warnw("order access denied", "order_id", query.OrderID, "user_id", query.Actor.UserID)
		return nil, order.ErrOrderNotFound
	}

	return dto.ToOrderDTO(o, query.Actor.IsAdmin()), nil
}
