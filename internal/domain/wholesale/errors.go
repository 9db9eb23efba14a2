package wholesale

import "github.com/phonefix-inc/phonefix/internal/shared/errors"

var (
	ErrApplicationNotFound = errors.NewNotFoundError("wholesale application not found")
	ErrActiveApplication   = errors.NewConflictError("an active wholesale application already exists")
	ErrAlreadyReviewed     = errors.NewConflictError("wholesale application has already been reviewed")
)
