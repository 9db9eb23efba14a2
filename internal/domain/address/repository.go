package address

import "context"

type Repository interface {
	Create(ctx context.Context, addr *Address) error
	GetByID(ctx context.Context, id uint) (*Address, error)
	// ListByUser orders defaults first, then newest first.
	ListByUser(ctx context.Context, userID string) ([]*Address, error)
	// LockByUserAndType selects the user's addresses of one type FOR UPDATE.
	// It must be called inside a transaction.
	LockByUserAndType(ctx context.Context, userID string, addrType Type) ([]*Address, error)
	// ClearDefaults unsets is_default on every address of the user and type.
	ClearDefaults(ctx context.Context, userID string, addrType Type) error
	Update(ctx context.Context, addr *Address) error
	Delete(ctx context.Context, id uint) error
}
