package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/mappers"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type WholesaleApplicationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.WholesaleApplicationMapper
	logger logger.Interface
}

func NewWholesaleApplicationRepository(db *gorm.DB, logger logger.Interface) wholesale.Repository {
	return &WholesaleApplicationRepositoryImpl{
		db:     db,
		mapper: mappers.NewWholesaleApplicationMapper(),
		logger: logger,
	}
}

func (r *WholesaleApplicationRepositoryImpl) Create(ctx context.Context, a *wholesale.Application) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			r.logger.Warnw("active wholesale application already exists", "user_id", a.UserID())
			return wholesale.ErrActiveApplication
		}
		r.logger.Errorw("failed to create wholesale application", "user_id", a.UserID(), "error", err)
		return fmt.Errorf("failed to create wholesale application: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *WholesaleApplicationRepositoryImpl) GetByID(ctx context.Context, id uint) (*wholesale.Application, error) {
	var model models.WholesaleApplicationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, wholesale.ErrApplicationNotFound
		}
		r.logger.Errorw("failed to get wholesale application", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get wholesale application: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *WholesaleApplicationRepositoryImpl) GetLatestByUser(ctx context.Context, userID string) (*wholesale.Application, error) {
	return r.latest(ctx, userID)
}

func (r *WholesaleApplicationRepositoryImpl) GetActiveByUser(ctx context.Context, userID string) (*wholesale.Application, error) {
	return r.latest(ctx, userID, vo.StatusPending, vo.StatusApproved)
}

func (r *WholesaleApplicationRepositoryImpl) GetApprovedByUser(ctx context.Context, userID string) (*wholesale.Application, error) {
	return r.latest(ctx, userID, vo.StatusApproved)
}

// latest returns nil without error when the user has no matching application.
func (r *WholesaleApplicationRepositoryImpl) latest(ctx context.Context, userID string, statuses ...vo.ApplicationStatus) (*wholesale.Application, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID)
	if len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		query = query.Where("status IN ?", names)
	}

	var list []models.WholesaleApplicationModel
	if err := query.Order("created_at DESC").Order("id DESC").Limit(1).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to get wholesale application by user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get wholesale application: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return r.mapper.ToDomain(&list[0])
}

func (r *WholesaleApplicationRepositoryImpl) Update(ctx context.Context, a *wholesale.Application) error {
	model := r.mapper.ToModel(a)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.WholesaleApplicationModel{}).
		Where("id = ? AND status = ?", model.ID, vo.StatusPending.String()).
		Updates(map[string]any{
			"status":           model.Status,
			"active_user_id":   model.ActiveUserID,
			"approved_tier":    model.ApprovedTier,
			"reviewed_by":      model.ReviewedBy,
			"reviewed_at":      model.ReviewedAt,
			"rejection_reason": model.RejectionReason,
			"admin_notes":      model.AdminNotes,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update wholesale application", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update wholesale application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("wholesale application no longer pending", "id", model.ID)
		return wholesale.ErrAlreadyReviewed
	}
	return nil
}

func (r *WholesaleApplicationRepositoryImpl) List(ctx context.Context, filter wholesale.Filter) ([]*wholesale.Application, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.WholesaleApplicationModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count wholesale applications: %w", err)
	}

	var list []models.WholesaleApplicationModel
	if err := paginate(query, filter.Page, filter.Limit).Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list wholesale applications", "error", err)
		return nil, 0, fmt.Errorf("failed to list wholesale applications: %w", err)
	}

	apps := make([]*wholesale.Application, 0, len(list))
	for i := range list {
		a, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, a)
	}
	return apps, total, nil
}
