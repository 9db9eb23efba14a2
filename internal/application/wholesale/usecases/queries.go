package usecases

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/wholesale/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/mapper"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type GetMyApplicationUseCase struct {
	appRepo wholesale.Repository
	logger  logger.Interface
}

func NewGetMyApplicationUseCase(appRepo wholesale.Repository, logger logger.Interface) *GetMyApplicationUseCase {
	return &GetMyApplicationUseCase{
		appRepo: appRepo,
		logger:  logger,
	}
}

func (uc *GetMyApplicationUseCase) Execute(ctx context.Context, a actor.Actor) (*dto.ApplicationDTO, error) {
	if !a.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	app, err := uc.appRepo.GetLatestByUser(ctx, a.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get wholesale application", "user_id", a.UserID, "error", err)
		return nil, err
	}
	if app == nil {
		return nil, wholesale.ErrApplicationNotFound
	}
	return dto.ToApplicationDTO(app, false), nil
}

type ListApplicationsQuery struct {
	Actor  actor.Actor
	Status string
	Page   int
	Limit  int
}

type ListApplicationsResult struct {
	Applications []*dto.ApplicationDTO
	Total        int64
	Page         int
	Limit        int
}

type ListApplicationsUseCase struct {
	appRepo wholesale.Repository
	logger  logger.Interface
}

func NewListApplicationsUseCase(appRepo wholesale.Repository, logger logger.Interface) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{
		appRepo: appRepo,
		logger:  logger,
	}
}

func (uc *ListApplicationsUseCase) Execute(ctx context.Context, query ListApplicationsQuery) (*ListApplicationsResult, error) {
	if !query.Actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("admin access required")
	}

	p := utils.ValidatePagination(query.Page, query.Limit)
	filter := wholesale.Filter{Page: p.Page, Limit: p.Limit}
	if query.Status != "" {
		st, err := vo.ParseApplicationStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("status", err.Error())
		}
		filter.Status = &st
	}

	apps, total, err := uc.appRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list wholesale applications", "error", err)
		return nil, err
	}

	return &ListApplicationsResult{
		Applications: mapper.MapSlice(apps, func(a *wholesale.Application) *dto.ApplicationDTO { return dto.ToApplicationDTO(a, true) }),
		Total:        total,
		Page:         p.Page,
		Limit:        p.Limit,
	}, nil
}

type GetApplicationUseCase struct {
	appRepo wholesale.Repository
	logger  logger.Interface
}

func NewGetApplicationUseCase(appRepo wholesale.Repository, logger logger.Interface) *GetApplicationUseCase {
	return &GetApplicationUseCase{
		appRepo: appRepo,
		logger:  logger,
	}
}

func (uc *GetApplicationUseCase) Execute(ctx context.Context, id uint, a actor.Actor) (*dto.ApplicationDTO, error) {
	if !a.IsAdmin() {
		return nil, apperrors.NewForbiddenError("admin access required")
	}

	app, err := uc.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToApplicationDTO(app, true), nil
}
