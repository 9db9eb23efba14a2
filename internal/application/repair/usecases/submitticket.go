package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/application/repair/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/goroutine"
	"github.com/phonefix-inc/phonefix/internal/shared/id"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

// SubmitTicketCommand carries the public intake form. There is no status
// field: new tickets always start SUBMITTED.
type SubmitTicketCommand struct {
	Actor            actor.Actor
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    *string
	DeviceBrand      string
	DeviceModel      string
	IMEISerial       *string
	IssueDescription string
	IssueCategory    *string
	CustomerNotes    string
	AssignedStoreID  *uint
	AppointmentDate  *time.Time
}

type SubmitTicketUseCase struct {
	ticketRepo repair.Repository
	sanitizer  TextSanitizer
	publisher  events.Publisher
	notifier   notification.Notifier
	currency   string
	logger     logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo repair.Repository,
	sanitizer TextSanitizer,
	publisher events.Publisher,
	notifier notification.Notifier,
	currency string,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		publisher:  publisher,
		notifier:   notifier,
		currency:   currency,
		logger:     logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*dto.SubmitTicketResult, error) {
	log := uc.logger.WithContext(ctx)

	log.Infow("executing submit ticket use case",
		"device_brand", cmd.DeviceBrand,
		"guest", !cmd.Actor.IsAuthenticated(),
	)

	intake := repair.Intake{
		UserID:           cmd.Actor.UserIDPtr(),
		CustomerName:     uc.sanitizer.StripTags(cmd.CustomerName),
		CustomerEmail:    cmd.CustomerEmail,
		CustomerPhone:    cmd.CustomerPhone,
		DeviceBrand:      uc.sanitizer.StripTags(cmd.DeviceBrand),
		DeviceModel:      uc.sanitizer.StripTags(cmd.DeviceModel),
		IMEISerial:       cmd.IMEISerial,
		IssueDescription: uc.sanitizer.StripTags(cmd.IssueDescription),
		IssueCategory:    stripPtr(uc.sanitizer, cmd.IssueCategory),
		CustomerNotes:    uc.sanitizer.StripTags(cmd.CustomerNotes),
		AssignedStoreID:  cmd.AssignedStoreID,
		AppointmentDate:  cmd.AppointmentDate,
	}

	var created *repair.RepairTicket
	for attempt := 1; attempt <= constants.MaxNumberAttempts; attempt++ {
		number, err := id.NewTicketNumber(constants.TicketNumberPrefix, biztime.NowUTC())
		if err != nil {
			return nil, apperrors.NewInternalError("failed to generate ticket number")
		}
		t, err := repair.NewRepairTicket(number, intake)
		if err != nil {
			log.Warnw("invalid repair intake", "error", err)
			return nil, err
		}

		err = uc.ticketRepo.Create(ctx, t)
		if errors.Is(err, repair.ErrDuplicateTicketNumber) {
			log.Warnw("ticket number collision, regenerating", "ticket_number", number, "attempt", attempt)
			continue
		}
		if err != nil {
			log.Errorw("failed to save repair ticket", "error", err)
			return nil, err
		}
		created = t
		break
	}
	if created == nil {
		return nil, apperrors.NewInternalError("failed to allocate a ticket number")
	}

	log.Infow("repair ticket submitted", "ticket_id", created.ID(), "ticket_number", created.TicketNumber())

	if err := uc.publisher.Publish(ctx, repair.NewSubmittedEvent(created)); err != nil {
		log.Warnw("failed to publish ticket submitted event", "ticket_id", created.ID(), "error", err)
	}
	uc.sendConfirmation(created)

	return &dto.SubmitTicketResult{
		TicketID:     created.ID(),
		TicketNumber: created.TicketNumber(),
		Status:       created.Status().String(),
	}, nil
}

func (uc *SubmitTicketUseCase) sendConfirmation(t *repair.RepairTicket) {
	msg := notification.TicketMessage{
		To:           t.CustomerEmail(),
		CustomerName: t.CustomerName(),
		TicketNumber: t.TicketNumber(),
		DeviceBrand:  t.DeviceBrand(),
		DeviceModel:  t.DeviceModel(),
		Status:       t.Status().String(),
		Currency:     uc.currency,
		Appointment:  t.AppointmentDate(),
	}
	goroutine.SafeGoWithTimeout(uc.logger, "ticket-confirmation-email", notifyTimeout, func(ctx context.Context) {
		if err := uc.notifier.TicketSubmitted(ctx, msg); err != nil {
			uc.logger.Warnw("failed to send ticket confirmation", "ticket_number", msg.TicketNumber, "error", err)
		}
	})
}
