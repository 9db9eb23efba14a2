package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/application/repair/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	vo "github.com/phonefix-inc/phonefix/internal/domain/repair/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/goroutine"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// UpdateTicketCommand is a partial update; nil fields are untouched.
type UpdateTicketCommand struct {
	TicketID           uint
	Actor              actor.Actor
	Status             *string
	Priority           *string
	TechnicianNotes    *string
	EstimatedCost      *decimal.Decimal
	PartsCost          *decimal.Decimal
	LaborCost          *decimal.Decimal
	AssignedTechnician *string
	AssignedStoreID    *uint
	AppointmentDate    *time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo repair.Repository
	sanitizer  TextSanitizer
	publisher  events.Publisher
	notifier   notification.Notifier
	currency   string
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo repair.Repository,
	sanitizer TextSanitizer,
	publisher events.Publisher,
	notifier notification.Notifier,
	currency string,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		publisher:  publisher,
		notifier:   notifier,
		currency:   currency,
		logger:     logger,
	}
}

// Execute re-reads and re-applies the patch when another writer got in
// first, so two technicians editing different fields both land.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	log := uc.logger.WithContext(ctx)

	if !cmd.Actor.IsStaff() {
		return nil, apperrors.NewForbiddenError("staff access required")
	}

	patch, err := uc.buildPatch(cmd)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	log.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "staff_id", cmd.Actor.UserID)

	var lastErr error
	for attempt := 1; attempt <= constants.MaxOptimisticRetry; attempt++ {
		t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
		if err != nil {
			return nil, err
		}
		oldStatus := t.Status()

		changed, err := t.Apply(patch)
		if err != nil {
			return nil, err
		}

		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			if errors.Is(err, repair.ErrVersionConflict) {
				lastErr = err
				log.Warnw("ticket modified concurrently, retrying", "ticket_id", cmd.TicketID, "attempt", attempt)
				continue
			}
			log.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return nil, err
		}

		if changed {
			log.Infow("ticket status changed", "ticket_id", t.ID(), "old_status", oldStatus, "new_status", t.Status())
			if err := uc.publisher.Publish(ctx, repair.NewStatusChangedEvent(t, oldStatus.String(), cmd.Actor.UserID)); err != nil {
				log.Warnw("failed to publish ticket status event", "ticket_id", t.ID(), "error", err)
			}
			uc.notifyStatus(t)
		}
		return dto.ToTicketDTO(t, true), nil
	}

	log.Errorw("giving up on ticket update after repeated conflicts", "ticket_id", cmd.TicketID)
	return nil, lastErr
}

func (uc *UpdateTicketUseCase) buildPatch(cmd UpdateTicketCommand) (repair.Patch, error) {
	p := repair.Patch{
		TechnicianNotes:    stripPtr(uc.sanitizer, cmd.TechnicianNotes),
		EstimatedCost:      cmd.EstimatedCost,
		PartsCost:          cmd.PartsCost,
		LaborCost:          cmd.LaborCost,
		AssignedTechnician: stripPtr(uc.sanitizer, cmd.AssignedTechnician),
		AssignedStoreID:    cmd.AssignedStoreID,
		AppointmentDate:    cmd.AppointmentDate,
	}
	if cmd.Status != nil {
		st, err := vo.ParseTicketStatus(*cmd.Status)
		if err != nil {
			return p, apperrors.NewFieldValidationError("status", err.Error())
		}
		p.Status = &st
	}
	if cmd.Priority != nil {
		pr, err := vo.ParsePriority(*cmd.Priority)
		if err != nil {
			return p, apperrors.NewFieldValidationError("priority", err.Error())
		}
		p.Priority = &pr
	}
	return p, nil
}

func (uc *UpdateTicketUseCase) notifyStatus(t *repair.RepairTicket) {
	msg := notification.TicketMessage{
		To:           t.CustomerEmail(),
		CustomerName: t.CustomerName(),
		TicketNumber: t.TicketNumber(),
		DeviceBrand:  t.DeviceBrand(),
		DeviceModel:  t.DeviceModel(),
		Status:       t.Status().String(),
		Estimated:    t.EstimatedCost(),
		Currency:     uc.currency,
		Appointment:  t.AppointmentDate(),
	}
	goroutine.SafeGoWithTimeout(uc.logger, "ticket-status-email", notifyTimeout, func(ctx context.Context) {
		if err := uc.notifier.TicketStatusChanged(ctx, msg); err != nil {
			uc.logger.Warnw("failed to send ticket status email", "ticket_number", msg.TicketNumber, "error", err)
		}
	})
}
