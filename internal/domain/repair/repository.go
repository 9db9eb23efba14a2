package repair

import (
	"context"

	vo "github.com/phonefix-inc/phonefix/internal/domain/repair/valueobjects"
)

type Repository interface {
	// Create returns ErrDuplicateTicketNumber on a number collision.
	Create(ctx context.Context, ticket *RepairTicket) error
	GetByID(ctx context.Context, id uint) (*RepairTicket, error)
	GetByNumber(ctx context.Context, number string) (*RepairTicket, error)
	// Update is guarded by the loaded version and returns ErrVersionConflict when stale.
	Update(ctx context.Context, ticket *RepairTicket) error
	List(ctx context.Context, filter Filter) ([]*RepairTicket, int64, error)
}

// Filter restricts List. UserID nil means every customer.
type Filter struct {
	UserID *string
	Status *vo.TicketStatus
	Page   int
	Limit  int
}
