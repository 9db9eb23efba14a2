package order

import "github.com/phonefix-inc/phonefix/internal/shared/errors"

var (
	// ErrDuplicateOrderNumber is returned by Create when the generated number collides.
	ErrDuplicateOrderNumber = errors.NewConflictError("order number already exists")

	// ErrVersionConflict indicates an optimistic locking conflict.
	ErrVersionConflict = errors.NewConflictError("order was modified concurrently, reload and retry")

	ErrOrderNotFound = errors.NewNotFoundError("order not found")
)
