package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phonefix-inc/phonefix/internal/domain/cart"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type CartRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCartRepository(db *gorm.DB, logger logger.Interface) cart.Repository {
	return &CartRepositoryImpl{db: db, logger: logger}
}

func (r *CartRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*cart.Item, error) {
	var list []models.CartItemModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).Order("id ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list cart items", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	items := make([]*cart.Item, 0, len(list))
	for i := range list {
		items = append(items, toCartItem(&list[i]))
	}
	return items, nil
}

func (r *CartRepositoryImpl) Get(ctx context.Context, userID string, productID uint) (*cart.Item, error) {
	var model models.CartItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return toCartItem(&model), nil
}

func (r *CartRepositoryImpl) Save(ctx context.Context, item *cart.Item) error {
	// Insert without the ID so the conflict target is always (user_id, product_id).
	model := &models.CartItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save cart item", "user_id", item.UserID, "product_id", item.ProductID, "error", err)
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	if item.ID == 0 {
		item.ID = model.ID
	}
	return nil
}

func (r *CartRepositoryImpl) Remove(ctx context.Context, userID string, productID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepositoryImpl) Clear(ctx context.Context, userID string) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).Delete(&models.CartItemModel{}).Error; err != nil {
		r.logger.Errorw("failed to clear cart", "user_id", userID, "error", err)
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func toCartItem(m *models.CartItemModel) *cart.Item {
	return &cart.Item{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
