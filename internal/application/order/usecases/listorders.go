package usecases

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/order/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/mapper"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type ListOrdersQuery struct {
	Actor actor.Actor
	// AllCustomers widens the listing to every customer. Only admins may set it.
	AllCustomers  bool
	Status        string
	PaymentStatus string
	Page          int
	Limit         int
}

type ListOrdersResult struct {
	Orders []*dto.OrderDTO
	Total  int64
	Page   int
	Limit  int
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	if !query.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	if query.AllCustomers && !query.Actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("admin access required")
	}

	p := utils.ValidatePagination(query.Page, query.Limit)
	filter := order.Filter{Page: p.Page, Limit: p.Limit}
	if !query.AllCustomers {
		filter.UserID = query.Actor.UserIDPtr()
	}
	if query.Status != "" {
		st, err := vo.ParseOrderStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("status", err.Error())
		}
		filter.Status = &st
	}
	if query.PaymentStatus != "" {
		ps, err := vo.ParsePaymentStatus(query.PaymentStatus)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("payment_status", err.Error())
		}
		filter.PaymentStatus = &ps
	}

	orders, total, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "user_id", query.Actor.UserID, "error", err)
		return nil, err
	}

	withNotes := query.Actor.IsAdmin()
	return &ListOrdersResult{
		Orders: mapper.MapSlice(orders, func(o *order.Order) *dto.OrderDTO { return dto.ToOrderDTO(o, withNotes) }),
		Total:  total,
		Page:   p.Page,
		Limit:  p.Limit,
	}, nil
}
