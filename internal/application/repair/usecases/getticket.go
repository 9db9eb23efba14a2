package usecases

import (
	"context"
	"strings"

	"github.com/phonefix-inc/phonefix/internal/application/repair/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type GetTicketQuery struct {
	TicketID uint
	Actor    actor.Actor
}

type GetTicketUseCase struct {
	ticketRepo repair.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo repair.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if !query.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if !t.CanBeViewedBy(query.Actor) {
		uc.logger.Warnw("ticket access denied", "ticket_id", query.TicketID, "user_id", query.Actor.UserID)
		return nil, repair.ErrTicketNotFound
	}
	return dto.ToTicketDTO(t, query.Actor.IsStaff()), nil
}

type TrackTicketQuery struct {
	TicketNumber string
	Email        string
}

type TrackTicketUseCase struct {
	ticketRepo repair.Repository
	logger     logger.Interface
}

func NewTrackTicketUseCase(ticketRepo repair.Repository, logger logger.Interface) *TrackTicketUseCase {
	return &TrackTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute is the guest lookup. A wrong email answers NotFound, the same as a
// wrong number.
func (uc *TrackTicketUseCase) Execute(ctx context.Context, query TrackTicketQuery) (*dto.TrackingDTO, error) {
	number := strings.ToUpper(strings.TrimSpace(query.TicketNumber))
	email := strings.ToLower(strings.TrimSpace(query.Email))
	if number == "" || email == "" {
		return nil, apperrors.NewValidationError("ticket_number and email are required")
	}

	t, err := uc.ticketRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if t.CustomerEmail() != email {
		uc.logger.Warnw("ticket tracking email mismatch", "ticket_number", number, "email", utils.MaskEmail(email))
		return nil, repair.ErrTicketNotFound
	}
	return dto.ToTrackingDTO(t), nil
}
