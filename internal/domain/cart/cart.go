package cart

import (
	"context"
	"time"

	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

const MaxQuantityPerItem = 99

var ErrCartItemNotFound = errors.NewNotFoundError("item is not in the cart")

// Item is one product line of a user's persisted cart. Prices are never
// stored here; they are read from the catalog at checkout.
type Item struct {
	ID        uint
	UserID    string
	ProductID uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*Item, error)
	Get(ctx context.Context, userID string, productID uint) (*Item, error)
	// Save inserts or updates on (user_id, product_id).
	Save(ctx context.Context, item *Item) error
	Remove(ctx context.Context, userID string, productID uint) error
	Clear(ctx context.Context, userID string) error
}

func ValidateQuantity(qty int, allowZero bool) error {
	if qty < 0 || (!allowZero && qty == 0) {
		return errors.NewFieldValidationError("quantity", "quantity must be positive")
	}
	if qty > MaxQuantityPerItem {
		return errors.NewFieldValidationError("quantity", "quantity exceeds the per-item limit")
	}
	return nil
}
