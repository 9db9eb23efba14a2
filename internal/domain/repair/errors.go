package repair

import "github.com/phonefix-inc/phonefix/internal/shared/errors"

var (
	ErrDuplicateTicketNumber = errors.NewConflictError("ticket number already exists")
	ErrVersionConflict       = errors.NewConflictError("repair ticket was modified concurrently")
	ErrTicketNotFound        = errors.NewNotFoundError("repair ticket not found")
)
