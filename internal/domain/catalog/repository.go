package catalog

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

var (
	ErrProductNotFound   = errors.NewNotFoundError("product not found")
	ErrInsufficientStock = errors.NewConflictError("insufficient stock")
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Product, error)
	List(ctx context.Context, filter Filter) ([]*Product, int64, error)
	// Upsert inserts or updates by SKU.
	Upsert(ctx context.Context, p *Product) error
	// DecrementStock is a conditional update; ErrInsufficientStock when fewer
	// than qty units remain.
	DecrementStock(ctx context.Context, productID uint, qty int) error
}

// Filter only ever returns active products.
type Filter struct {
	Search   string
	Category string
	Brand    string
	Page     int
	Limit    int
}
