package usecases

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/repair/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	vo "github.com/phonefix-inc/phonefix/internal/domain/repair/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/mapper"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type ListTicketsQuery struct {
	Actor  actor.Actor
	Status string
	Page   int
	Limit  int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
	Page    int
	Limit   int
}

type ListTicketsUseCase struct {
	ticketRepo repair.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo repair.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute shows staff every ticket and customers only their own. Guests have
// no listing; they look tickets up by number.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if !query.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to list repair tickets")
	}

	p := utils.ValidatePagination(query.Page, query.Limit)
	filter := repair.Filter{Page: p.Page, Limit: p.Limit}
	staff := query.Actor.IsStaff()
	if !staff {
		filter.UserID = query.Actor.UserIDPtr()
	}
	if query.Status != "" {
		st, err := vo.ParseTicketStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("status", err.Error())
		}
		filter.Status = &st
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.Actor.UserID, "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: mapper.MapSlice(tickets, func(t *repair.RepairTicket) *dto.TicketDTO { return dto.ToTicketDTO(t, staff) }),
		Total:   total,
		Page:    p.Page,
		Limit:   p.Limit,
	}, nil
}
