package mappers

import (
	"fmt"

	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	vo "github.com/phonefix-inc/phonefix/internal/domain/repair/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
)

// RepairTicketMapper handles the conversion between repair tickets and persistence models.
type RepairTicketMapper interface {
	ToModel(t *repair.RepairTicket) *models.RepairTicketModel
	ToDomain(model *models.RepairTicketModel) (*repair.RepairTicket, error)
	ToDomainList(list []*models.RepairTicketModel) ([]*repair.RepairTicket, error)
}

type RepairTicketMapperImpl struct{}

func NewRepairTicketMapper() RepairTicketMapper {
	return &RepairTicketMapperImpl{}
}

func (m *RepairTicketMapperImpl) ToModel(t *repair.RepairTicket) *models.RepairTicketModel {
	return &models.RepairTicketModel{
		ID:                 t.ID(),
		TicketNumber:       t.TicketNumber(),
		UserID:             t.UserID(),
		CustomerName:       t.CustomerName(),
		CustomerEmail:      t.CustomerEmail(),
		CustomerPhone:      t.CustomerPhone(),
		DeviceBrand:        t.DeviceBrand(),
		DeviceModel:        t.DeviceModel(),
		IMEISerial:         t.IMEISerial(),
		IssueDescription:   t.IssueDescription(),
		IssueCategory:      t.IssueCategory(),
		AssignedStoreID:    t.AssignedStoreID(),
		AssignedTechnician: t.AssignedTechnician(),
		AppointmentDate:    t.AppointmentDate(),
		Status:             t.Status().String(),
		Priority:           t.Priority().String(),
		EstimatedCost:      t.EstimatedCost(),
		PartsCost:          t.PartsCost(),
		LaborCost:          t.LaborCost(),
		TechnicianNotes:    t.TechnicianNotes(),
		CustomerNotes:      t.CustomerNotes(),
		Version:            t.Version(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
		ConfirmedAt:        t.ConfirmedAt(),
		StartedAt:          t.StartedAt(),
		CompletedAt:        t.CompletedAt(),
		CancelledAt:        t.CancelledAt(),
	}
}

func (m *RepairTicketMapperImpl) ToDomain(model *models.RepairTicketModel) (*repair.RepairTicket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := repair.ReconstructRepairTicket(repair.ReconstructParams{
		ID:                 model.ID,
		TicketNumber:       model.TicketNumber,
		UserID:             model.UserID,
		CustomerName:       model.CustomerName,
		CustomerEmail:      model.CustomerEmail,
		CustomerPhone:      model.CustomerPhone,
		DeviceBrand:        model.DeviceBrand,
		DeviceModel:        model.DeviceModel,
		IMEISerial:         model.IMEISerial,
		IssueDescription:   model.IssueDescription,
		IssueCategory:      model.IssueCategory,
		AssignedStoreID:    model.AssignedStoreID,
		AssignedTechnician: model.AssignedTechnician,
		AppointmentDate:    model.AppointmentDate,
		Status:             vo.TicketStatus(model.Status),
		Priority:           vo.Priority(model.Priority),
		EstimatedCost:      model.EstimatedCost,
		PartsCost:          model.PartsCost,
		LaborCost:          model.LaborCost,
		TechnicianNotes:    model.TechnicianNotes,
		CustomerNotes:      model.CustomerNotes,
		Version:            model.Version,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
		ConfirmedAt:        model.ConfirmedAt,
		StartedAt:          model.StartedAt,
		CompletedAt:        model.CompletedAt,
		CancelledAt:        model.CancelledAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct repair ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *RepairTicketMapperImpl) ToDomainList(list []*models.RepairTicketModel) ([]*repair.RepairTicket, error) {
	out := make([]*repair.RepairTicket, 0, len(list))
	for _, model := range list {
		t, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
