package usecases

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// TierResolver answers which wholesale tier, if any, applies to a buyer.
type TierResolver struct {
	appRepo wholesale.Repository
	logger  logger.Interface
}

func NewTierResolver(appRepo wholesale.Repository, logger logger.Interface) *TierResolver {
	return &TierResolver{
		appRepo: appRepo,
		logger:  logger,
	}
}

// ResolveTier returns nil for users without an approved application.
func (r *TierResolver) ResolveTier(ctx context.Context, userID string) (*vo.Tier, error) {
	if userID == "" {
		return nil, nil
	}

	app, err := r.appRepo.GetApprovedByUser(ctx, userID)
	if err != nil {
		r.logger.Errorw("failed to resolve wholesale tier", "user_id", userID, "error", err)
		return nil, err
	}
	if app == nil {
		return nil, nil
	}

	tier := app.EffectiveTier()
	if tier != nil {
		r.logger.Debugw("resolved wholesale tier", "user_id", userID, "tier", *tier)
	}
	return tier, nil
}
