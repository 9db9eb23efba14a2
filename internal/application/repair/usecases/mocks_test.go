package usecases

import (
	"context"
	"sync"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
)

type mockTicketRepository struct {
	CreateFunc      func(ctx context.Context, t *repair.RepairTicket) error
	GetByIDFunc     func(ctx context.Context, id uint) (*repair.RepairTicket, error)
	GetByNumberFunc func(ctx context.Context, number string) (*repair.RepairTicket, error)
	UpdateFunc      func(ctx context.Context, t *repair.RepairTicket) error
	ListFunc        func(ctx context.Context, filter repair.Filter) ([]*repair.RepairTicket, int64, error)
	createCalls     int
	updateCalls     int
}

func (m *mockTicketRepository) Create(ctx context.Context, t *repair.RepairTicket) error {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(uint(m.createCalls))
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*repair.RepairTicket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repair.ErrTicketNotFound
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*repair.RepairTicket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, repair.ErrTicketNotFound
}

func (m *mockTicketRepository) Update(ctx context.Context, t *repair.RepairTicket) error {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter repair.Filter) ([]*repair.RepairTicket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.GetEventType())
	}
	return out
}

type mockNotifier struct {
	mu        sync.Mutex
	submitted []notification.TicketMessage
	changed   []notification.TicketMessage
}

func (m *mockNotifier) TicketSubmitted(ctx context.Context, msg notification.TicketMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted = append(m.submitted, msg)
	return nil
}

func (m *mockNotifier) TicketStatusChanged(ctx context.Context, msg notification.TicketMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changed = append(m.changed, msg)
	return nil
}

func (m *mockNotifier) OrderConfirmed(ctx context.Context, msg notification.OrderMessage) error {
	return nil
}

func (m *mockNotifier) OrderShipped(ctx context.Context, msg notification.OrderMessage) error {
	return nil
}

func (m *mockNotifier) WholesaleReviewed(ctx context.Context, msg notification.WholesaleMessage) error {
	return nil
}

func (m *mockNotifier) submittedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.submitted)
}

func (m *mockNotifier) lastChanged() (notification.TicketMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.changed) == 0 {
		return notification.TicketMessage{}, false
	}
	return m.changed[len(m.changed)-1], true
}
