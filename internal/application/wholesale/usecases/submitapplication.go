package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/phonefix-inc/phonefix/internal/application/wholesale/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

type SubmitApplicationCommand struct {
	Actor           actor.Actor
	BusinessName    string
	BusinessType    string
	TaxID           string
	Website         *string
	BusinessPhone   string
	BusinessEmail   string
	BusinessAddress sharedvo.PostalAddress
	Documents       []string
	RequestedTier   string
}

type SubmitApplicationUseCase struct {
	appRepo        wholesale.Repository
	sanitizer      TextSanitizer
	publisher      events.Publisher
	defaultCountry string
	logger         logger.Interface
}

func NewSubmitApplicationUseCase(
	appRepo wholesale.Repository,
	sanitizer TextSanitizer,
	publisher events.Publisher,
	defaultCountry string,
	logger logger.Interface,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		appRepo:        appRepo,
		sanitizer:      sanitizer,
		publisher:      publisher,
		defaultCountry: defaultCountry,
		logger:         logger,
	}
}

// Execute refuses a second application while one is pending or approved.
// A rejected applicant may apply again.
func (uc *SubmitApplicationUseCase) Execute(ctx context.Context, cmd SubmitApplicationCommand) (*dto.ApplicationDTO, error) {
	log := uc.logger.WithContext(ctx)

	if !cmd.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to apply for a wholesale account")
	}

	tier, err := vo.ParseTier(cmd.RequestedTier)
	if err != nil {
		return nil, apperrors.NewFieldValidationError("requested_tier", "requested_tier must be one of TIER1, TIER2, TIER3")
	}

	log.Infow("executing submit wholesale application use case", "user_id", cmd.Actor.UserID, "requested_tier", tier)

	existing, err := uc.appRepo.GetActiveByUser(ctx, cmd.Actor.UserID)
	if err != nil {
		log.Errorw("failed to look up active application", "user_id", cmd.Actor.UserID, "error", err)
		return nil, err
	}
	if existing != nil {
		log.Warnw("active wholesale application already exists",
			"user_id", cmd.Actor.UserID,
			"application_id", existing.ID(),
			"status", existing.Status(),
		)
		return nil, wholesale.ErrActiveApplication
	}

	info := wholesale.BusinessInfo{
		BusinessName:  uc.sanitizer.StripTags(cmd.BusinessName),
		BusinessType:  uc.sanitizer.StripTags(cmd.BusinessType),
		TaxID:         cmd.TaxID,
		Website:       cmd.Website,
		BusinessPhone: cmd.BusinessPhone,
		BusinessEmail: cmd.BusinessEmail,
	}
	app, err := wholesale.NewApplication(cmd.Actor.UserID, info, cmd.BusinessAddress.Normalize(uc.defaultCountry), cmd.Documents, tier)
	if err != nil {
		return nil, err
	}

	if err := uc.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, wholesale.ErrActiveApplication) {
			log.Warnw("concurrent wholesale application rejected", "user_id", cmd.Actor.UserID)
			return nil, err
		}
		log.Errorw("failed to save wholesale application", "user_id", cmd.Actor.UserID, "error", err)
		return nil, err
	}

	log.Infow("wholesale application submitted", "application_id", app.ID(), "user_id", app.UserID())
	if err := uc.publisher.Publish(ctx, wholesale.NewSubmittedEvent(app)); err != nil {
		log.Warnw("failed to publish wholesale submitted event", "application_id", app.ID(), "error", err)
	}

	return dto.ToApplicationDTO(app, false), nil
}
