package wholesale

import (
	"context"

	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
)

type Repository interface {
	// Create returns ErrActiveApplication when the user already has a
	// PENDING or APPROVED application.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id uint) (*Application, error)
	// GetLatestByUser returns the most recently created application, or nil.
	GetLatestByUser(ctx context.Context, userID string) (*Application, error)
	// GetActiveByUser returns a PENDING or APPROVED application, or nil.
	GetActiveByUser(ctx context.Context, userID string) (*Application, error)
	// GetApprovedByUser returns the latest APPROVED application, or nil.
	GetApprovedByUser(ctx context.Context, userID string) (*Application, error)
	// Update writes a review. It only applies to a row that is still PENDING
	// and returns ErrAlreadyReviewed otherwise.
	Update(ctx context.Context, app *Application) error
	List(ctx context.Context, filter Filter) ([]*Application, int64, error)
}

type Filter struct {
	Status *vo.ApplicationStatus
	Page   int
	Limit  int
}
