package address

import "github.com/phonefix-inc/phonefix/internal/shared/errors"

var ErrAddressNotFound = errors.NewNotFoundError("address not found")
