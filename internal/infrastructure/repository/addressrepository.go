package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phonefix-inc/phonefix/internal/domain/address"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/mappers"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type AddressRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AddressMapper
	logger logger.Interface
}

func NewAddressRepository(db *gorm.DB, logger logger.Interface) address.Repository {
	return &AddressRepositoryImpl{
		db:     db,
		mapper: mappers.NewAddressMapper(),
		logger: logger,
	}
}

func (r *AddressRepositoryImpl) Create(ctx context.Context, a *address.Address) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create address", "user_id", a.UserID(), "error", err)
		return fmt.Errorf("failed to create address: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AddressRepositoryImpl) GetByID(ctx context.Context, id uint) (*address.Address, error) {
	var model models.AddressModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, address.ErrAddressNotFound
		}
		r.logger.Errorw("failed to get address", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AddressRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*address.Address, error) {
	var list []models.AddressModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("is_default DESC").Order("created_at DESC").Order("id DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list addresses", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return r.toDomainList(list)
}

// LockByUserAndType serialises default-flag changes for one user and type.
// SQLite has no row locks; the dialect drops the clause.
func (r *AddressRepositoryImpl) LockByUserAndType(ctx context.Context, userID string, addrType address.Type) ([]*address.Address, error) {
	var list []models.AddressModel
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND type = ?", userID, addrType.String()).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to lock addresses", "user_id", userID, "type", addrType, "error", err)
		return nil, fmt.Errorf("failed to lock addresses: %w", err)
	}
	return r.toDomainList(list)
}

func (r *AddressRepositoryImpl) ClearDefaults(ctx context.Context, userID string, addrType address.Type) error {
	err := db.GetTxFromContext(ctx, r.db).Model(&models.AddressModel{}).
		Where("user_id = ? AND type = ? AND is_default = ?", userID, addrType.String(), true).
		Update("is_default", false).Error
	if err != nil {
		r.logger.Errorw("failed to clear default addresses", "user_id", userID, "type", addrType, "error", err)
		return fmt.Errorf("failed to clear default addresses: %w", err)
	}
	return nil
}

func (r *AddressRepositoryImpl) Update(ctx context.Context, a *address.Address) error {
	model := r.mapper.ToModel(a)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AddressModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"type":        model.Type,
			"full_name":   model.FullName,
			"line1":       model.Line1,
			"line2":       model.Line2,
			"city":        model.City,
			"state":       model.State,
			"postal_code": model.PostalCode,
			"country":     model.Country,
			"phone":       model.Phone,
			"is_default":  model.IsDefault,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update address", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update address: %w", result.Error)
	}
	return nil
}

func (r *AddressRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AddressModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete address", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return address.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepositoryImpl) toDomainList(list []models.AddressModel) ([]*address.Address, error) {
	out := make([]*address.Address, 0, len(list))
	for i := range list {
		a, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
