package usecases

import (
	"context"
	"fmt"

	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type SeedProductsUseCase struct {
	productRepo catalog.Repository
	logger      logger.Interface
}

func NewSeedProductsUseCase(productRepo catalog.Repository, logger logger.Interface) *SeedProductsUseCase {
	return &SeedProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute validates every entry before writing any, then upserts by SKU so
// the seed can be re-run.
func (uc *SeedProductsUseCase) Execute(ctx context.Context, entries []catalog.ProductParams) (int, error) {
	products := make([]*catalog.Product, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		p, err := catalog.NewProduct(e)
		if err != nil {
			return 0, fmt.Errorf("catalog entry %d (%s): %w", i, e.SKU, err)
		}
		if seen[p.SKU()] {
			return 0, fmt.Errorf("catalog entry %d: duplicate sku %s", i, p.SKU())
		}
		seen[p.SKU()] = true
		products = append(products, p)
	}

	for _, p := range products {
		if err := uc.productRepo.Upsert(ctx, p); err != nil {
			uc.logger.Errorw("failed to upsert product", "sku", p.SKU(), "error", err)
			return 0, err
		}
		uc.logger.Debugw("seeded product", "sku", p.SKU(), "product_id", p.ID())
	}

	uc.logger.Infow("catalog seeded", "count", len(products))
	return len(products), nil
}
