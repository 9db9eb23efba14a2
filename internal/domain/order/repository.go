package order

import (
	"context"

	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
)

type Repository interface {
	// Create inserts the order and its items. Returns ErrDuplicateOrderNumber on a number collision.
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByPaymentIntentID(ctx context.Context, intentID string) (*Order, error)
	// Update writes mutable columns guarded by the loaded version. Returns ErrVersionConflict when stale.
	Update(ctx context.Context, order *Order) error
	List(ctx context.Context, filter Filter) ([]*Order, int64, error)
}

// Filter restricts List. A nil UserID lists every customer's orders.
type Filter struct {
	UserID        *string
	Status        *vo.OrderStatus
	PaymentStatus *vo.PaymentStatus
	Page          int
	Limit         int
}
