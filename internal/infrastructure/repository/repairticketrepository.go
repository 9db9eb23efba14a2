package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/mappers"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type RepairTicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RepairTicketMapper
	logger logger.Interface
}

func NewRepairTicketRepository(db *gorm.DB, logger logger.Interface) repair.Repository {
	return &RepairTicketRepositoryImpl{
		db:     db,
		mapper: mappers.NewRepairTicketMapper(),
		logger: logger,
	}
}

func (r *RepairTicketRepositoryImpl) Create(ctx context.Context, t *repair.RepairTicket) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return repair.ErrDuplicateTicketNumber
		}
		r.logger.Errorw("failed to create repair ticket", "ticket_number", t.TicketNumber(), "error", err)
		return fmt.Errorf("failed to create repair ticket: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *RepairTicketRepositoryImpl) GetByID(ctx context.Context, id uint) (*repair.RepairTicket, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *RepairTicketRepositoryImpl) GetByNumber(ctx context.Context, number string) (*repair.RepairTicket, error) {
	return r.first(ctx, "ticket_number = ?", number)
}

func (r *RepairTicketRepositoryImpl) first(ctx context.Context, cond string, arg any) (*repair.RepairTicket, error) {
	var model models.RepairTicketModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repair.ErrTicketNotFound
		}
		r.logger.Errorw("failed to get repair ticket", "condition", cond, "error", err)
		return nil, fmt.Errorf("failed to get repair ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *RepairTicketRepositoryImpl) Update(ctx context.Context, t *repair.RepairTicket) error {
	model := r.mapper.ToModel(t)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.RepairTicketModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"status":              model.Status,
			"priority":            model.Priority,
			"technician_notes":    model.TechnicianNotes,
			"estimated_cost":      model.EstimatedCost,
			"parts_cost":          model.PartsCost,
			"labor_cost":          model.LaborCost,
			"assigned_technician": model.AssignedTechnician,
			"assigned_store_id":   model.AssignedStoreID,
			"appointment_date":    model.AppointmentDate,
			"confirmed_at":        model.ConfirmedAt,
			"started_at":          model.StartedAt,
			"completed_at":        model.CompletedAt,
			"cancelled_at":        model.CancelledAt,
			"updated_at":          model.UpdatedAt,
			"version":             model.Version + 1,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update repair ticket", "ticket_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update repair ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repair.ErrVersionConflict
	}

	t.AdvanceVersion()
	return nil
}

func (r *RepairTicketRepositoryImpl) List(ctx context.Context, filter repair.Filter) ([]*repair.RepairTicket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.RepairTicketModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count repair tickets: %w", err)
	}

	var list []*models.RepairTicketModel
	if err := paginate(query, filter.Page, filter.Limit).Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list repair tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to list repair tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}
