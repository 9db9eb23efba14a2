package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	wvo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
)

// TierResolver reports the user's approved wholesale tier, nil for retail.
type TierResolver interface {
	ResolveTier(ctx context.Context, userID string) (*wvo.Tier, error)
}

// DiscountSchedule maps a wholesale tier to its percentage discount.
type DiscountSchedule interface {
	DiscountPercent(tier string) decimal.Decimal
}
