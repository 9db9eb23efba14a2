package usecases

import (
	"context"
	"strings"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/application/wholesale/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/goroutine"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type ReviewApplicationCommand struct {
	ApplicationID   uint
	Actor           actor.Actor
	Decision        string
	ApprovedTier    *string
	RejectionReason *string
	AdminNotes      *string
}

type ReviewApplicationUseCase struct {
	appRepo   wholesale.Repository
	sanitizer TextSanitizer
	publisher events.Publisher
	notifier  notification.Notifier
	logger    logger.Interface
}

func NewReviewApplicationUseCase(
	appRepo wholesale.Repository,
	sanitizer TextSanitizer,
	publisher events.Publisher,
	notifier notification.Notifier,
	logger logger.Interface,
) *ReviewApplicationUseCase {
	return &ReviewApplicationUseCase{
		appRepo:   appRepo,
		sanitizer: sanitizer,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *ReviewApplicationUseCase) Execute(ctx context.Context, cmd ReviewApplicationCommand) (*dto.ApplicationDTO, error) {
	log := uc.logger.WithContext(ctx)

	if !cmd.Actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("admin access required")
	}

	review, err := uc.buildReview(cmd)
	if err != nil {
		return nil, err
	}

	app, err := uc.appRepo.GetByID(ctx, cmd.ApplicationID)
	if err != nil {
		return nil, err
	}

	if err := app.ApplyReview(review); err != nil {
		log.Warnw("wholesale review rejected",
			"application_id", cmd.ApplicationID,
			"decision", review.Decision,
			"error", err,
		)
		return nil, err
	}

	if err := uc.appRepo.Update(ctx, app); err != nil {
		log.Errorw("failed to save wholesale review", "application_id", app.ID(), "error", err)
		return nil, err
	}

	log.Infow("wholesale application reviewed",
		"application_id", app.ID(),
		"decision", app.Status(),
		"reviewed_by", cmd.Actor.UserID,
	)
	if err := uc.publisher.Publish(ctx, wholesale.NewReviewedEvent(app)); err != nil {
		log.Warnw("failed to publish wholesale reviewed event", "application_id", app.ID(), "error", err)
	}
	uc.notifyDecision(app)

	return dto.ToApplicationDTO(app, true), nil
}

func (uc *ReviewApplicationUseCase) buildReview(cmd ReviewApplicationCommand) (wholesale.Review, error) {
	decision, err := vo.ParseDecision(cmd.Decision)
	if err != nil {
		return wholesale.Review{}, apperrors.NewFieldValidationError("status", err.Error())
	}

	r := wholesale.Review{
		Decision:        decision,
		ReviewerID:      cmd.Actor.UserID,
		RejectionReason: cmd.RejectionReason,
	}
	if cmd.ApprovedTier != nil && strings.TrimSpace(*cmd.ApprovedTier) != "" {
		tier, err := vo.ParseTier(*cmd.ApprovedTier)
		if err != nil {
			return r, apperrors.NewFieldValidationError("approved_tier", "approved_tier must be one of TIER1, TIER2, TIER3")
		}
		r.ApprovedTier = &tier
	}
	if cmd.RejectionReason != nil {
		reason := uc.sanitizer.StripTags(*cmd.RejectionReason)
		r.RejectionReason = &reason
	}
	if cmd.AdminNotes != nil {
		notes := uc.sanitizer.StripTags(*cmd.AdminNotes)
		r.AdminNotes = &notes
	}
	return r, nil
}

func (uc *ReviewApplicationUseCase) notifyDecision(app *wholesale.Application) {
	msg := notification.WholesaleMessage{
		To:           app.BusinessEmail(),
		BusinessName: app.BusinessName(),
		Decision:     app.Status().String(),
	}
	if t := app.ApprovedTier(); t != nil {
		msg.ApprovedTier = t.String()
	}
	if r := app.RejectionReason(); r != nil {
		msg.RejectionReason = *r
	}
	goroutine.SafeGoWithTimeout(uc.logger, "wholesale-decision-email", notifyTimeout, func(ctx context.Context) {
		if err := uc.notifier.WholesaleReviewed(ctx, msg); err != nil {
			uc.logger.Warnw("failed to send wholesale decision email", "business_email", utils.MaskEmail(msg.To), "error", err)
		}
	})
}
