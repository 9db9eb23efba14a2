package usecases

import (
	"context"
	"strconv"
	"strings"

	"github.com/phonefix-inc/phonefix/internal/application/catalog/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/mapper"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type ListProductsQuery struct {
	Search   string
	Category string
	Brand    string
	Page     int
	Limit    int
}

type ListProductsResult struct {
	Products []*dto.ProductDTO
	Total    int64
	Page     int
	Limit    int
}

type ListProductsUseCase struct {
	productRepo catalog.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo catalog.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	p := utils.ValidatePagination(query.Page, query.Limit)

	products, total, err := uc.productRepo.List(ctx, catalog.Filter{
		Search:   strings.TrimSpace(query.Search),
		Category: strings.TrimSpace(query.Category),
		Brand:    strings.TrimSpace(query.Brand),
		Page:     p.Page,
		Limit:    p.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, err
	}

	result := mapper.MapSlice(products, dto.ToProductDTO)
	if result == nil {
		result = []*dto.ProductDTO{}
	}
	return &ListProductsResult{
		Products: result,
		Total:    total,
		Page:     p.Page,
		Limit:    p.Limit,
	}, nil
}

type GetProductUseCase struct {
	productRepo catalog.Repository
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo catalog.Repository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute accepts a numeric ID or a slug. Inactive products are reported as
// not found.
func (uc *GetProductUseCase) Execute(ctx context.Context, idOrSlug string) (*dto.ProductDTO, error) {
	ref := strings.TrimSpace(idOrSlug)
	if ref == "" {
		return nil, catalog.ErrProductNotFound
	}

	var (
		p   *catalog.Product
		err error
	)
	if id, convErr := strconv.ParseUint(ref, 10, 64); convErr == nil {
		p, err = uc.productRepo.GetByID(ctx, uint(id))
	} else {
		p, err = uc.productRepo.GetBySlug(ctx, strings.ToLower(ref))
	}
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, catalog.ErrProductNotFound
	}
	return dto.ToProductDTO(p), nil
}
