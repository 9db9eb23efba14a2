package repair

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/repair/dto"
	"github.com/phonefix-inc/phonefix/internal/application/repair/usecases"
)

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.SubmitTicketCommand) (*dto.SubmitTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error)
}

type TrackTicketExecutor interface {
	Execute(ctx context.Context, query usecases.TrackTicketQuery) (*dto.TrackingDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}
