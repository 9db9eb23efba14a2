package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/domain/order"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/mappers"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// OrderRepositoryImpl implements order.Repository.
type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

// Create inserts the order row and its items in one statement batch.
func (r *OrderRepositoryImpl) Create(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)

	create := func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return order.ErrDuplicateOrderNumber
			}
			r.logger.Errorw("failed to create order", "order_number", o.OrderNumber(), "error", err)
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	}

	var err error
	if db.InTransaction(ctx) {
		err = create(db.GetTxFromContext(ctx, r.db))
	} else {
		err = r.db.WithContext(ctx).Transaction(create)
	}
	if err != nil {
		return err
	}

	if err := o.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set order ID: %w", err)
	}
	itemIDs := make([]uint, 0, len(model.Items))
	for _, item := range model.Items {
		itemIDs = append(itemIDs, item.ID)
	}
	o.SetItemIDs(itemIDs)
	return nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *OrderRepositoryImpl) GetByPaymentIntentID(ctx context.Context, intentID string) (*order.Order, error) {
	return r.first(ctx, "payment_intent_id = ?", intentID)
}

func (r *OrderRepositoryImpl) first(ctx context.Context, cond string, arg any) (*order.Order, error) {
	var model models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("id ASC") }).
		Where(cond, arg).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		r.logger.Errorw("failed to get order", "condition", cond, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// Update writes the mutable columns guarded by the loaded version.
func (r *OrderRepositoryImpl) Update(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToModel(o)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"status":            model.Status,
			"payment_status":    model.PaymentStatus,
			"payment_method":    model.PaymentMethod,
			"payment_intent_id": model.PaymentIntentID,
			"tracking_number":   model.TrackingNumber,
			"carrier":           model.Carrier,
			"admin_notes":       model.AdminNotes,
			"paid_at":           model.PaidAt,
			"shipped_at":        model.ShippedAt,
			"delivered_at":      model.DeliveredAt,
			"cancelled_at":      model.CancelledAt,
			"updated_at":        model.UpdatedAt,
			"version":           model.Version + 1,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("payment intent is already attached to another order")
		}
		r.logger.Errorw("failed to update order", "order_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrVersionConflict
	}

	o.AdvanceVersion()
	return nil
}

func (r *OrderRepositoryImpl) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", filter.PaymentStatus.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count orders", "error", err)
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var list []models.OrderModel
	err := paginate(query.Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("id ASC") }), filter.Page, filter.Limit).
		Order("created_at DESC").Order("id DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list orders", "error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(list))
	for i := range list {
		o, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			r.logger.Errorw("failed to map order", "order_id", list[i].ID, "error", err)
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}
