package wholesale

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/wholesale/dto"
	"github.com/phonefix-inc/phonefix/internal/application/wholesale/usecases"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
)

type SubmitApplicationExecutor interface {
	Execute(ctx context.Context, cmd usecases.SubmitApplicationCommand) (*dto.ApplicationDTO, error)
}

type GetMyApplicationExecutor interface {
	Execute(ctx context.Context, a actor.Actor) (*dto.ApplicationDTO, error)
}

type ListApplicationsExecutor interface {
	Execute(ctx context.Context, query usecases.ListApplicationsQuery) (*usecases.ListApplicationsResult, error)
}

type GetApplicationExecutor interface {
	Execute(ctx context.Context, id uint, a actor.Actor) (*dto.ApplicationDTO, error)
}

type ReviewApplicationExecutor interface {
	Execute(ctx context.Context, cmd usecases.ReviewApplicationCommand) (*dto.ApplicationDTO, error)
}
