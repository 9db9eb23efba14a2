package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/mappers"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) catalog.Repository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProductRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *ProductRepositoryImpl) first(ctx context.Context, cond string, arg any) (*catalog.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		r.logger.Errorw("failed to get product", "condition", cond, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// GetByIDs returns the products that exist, inactive ones included.
func (r *ProductRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return []*catalog.Product{}, nil
	}

	var list []models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to get products by IDs", "error", err)
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return r.toDomainList(list), nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter catalog.Filter) ([]*catalog.Product, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{}).Where("is_active = ?", true)
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var list []models.ProductModel
	if err := paginate(query, filter.Page, filter.Limit).Order("name ASC").Order("id ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return r.toDomainList(list), total, nil
}

// Upsert inserts the product or refreshes every catalog column of the row
// with the same SKU.
func (r *ProductRepositoryImpl) Upsert(ctx context.Context, p *catalog.Product) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "slug", "description", "image_url", "price", "compare_at_price",
			"quality_grade", "stock_quantity", "is_active", "category", "brand", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert product", "sku", p.SKU(), "error", err)
		return fmt.Errorf("failed to upsert product %s: %w", p.SKU(), err)
	}

	// The driver does not report the ID of an updated row reliably.
	var id uint
	if err := tx.Model(&models.ProductModel{}).Where("sku = ?", model.SKU).Pluck("id", &id).Error; err != nil {
		return fmt.Errorf("failed to read product ID for %s: %w", p.SKU(), err)
	}
	p.SetID(id)
	return nil
}

// DecrementStock only succeeds when enough units remain, so concurrent
// checkouts cannot oversell.
func (r *ProductRepositoryImpl) DecrementStock(ctx context.Context, productID uint, qty int) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{}).
		Where("id = ? AND stock_quantity >= ?", productID, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if result.Error != nil {
		r.logger.Errorw("failed to decrement stock", "product_id", productID, "quantity", qty, "error", result.Error)
		return fmt.Errorf("failed to decrement stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrInsufficientStock
	}
	return nil
}

func (r *ProductRepositoryImpl) toDomainList(list []models.ProductModel) []*catalog.Product {
	out := make([]*catalog.Product, 0, len(list))
	for i := range list {
		out = append(out, r.mapper.ToDomain(&list[i]))
	}
	return out
}
