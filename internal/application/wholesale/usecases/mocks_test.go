package usecases

import (
	"context"
	"sync"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
)

// memoryApplications is a map-backed wholesale.Repository. Create enforces
// one active application per user like the unique index does. SkipActiveCheck
// makes GetActiveByUser miss, as a concurrent submission would.
type memoryApplications struct {
	mu              sync.Mutex
	apps            []*wholesale.Application
	ListErr         error
	SkipActiveCheck bool
}

func (m *memoryApplications) Create(ctx context.Context, app *wholesale.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.apps {
		if a.UserID() == app.UserID() && a.Status().IsActive() {
			return wholesale.ErrActiveApplication
		}
	}
	if err := app.SetID(uint(len(m.apps) + 1)); err != nil {
		return err
	}
	m.apps = append(m.apps, app)
	return nil
}

func (m *memoryApplications) GetByID(ctx context.Context, id uint) (*wholesale.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.apps {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, wholesale.ErrApplicationNotFound
}

func (m *memoryApplications) latest(userID string, match func(*wholesale.Application) bool) *wholesale.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.apps) - 1; i >= 0; i-- {
		a := m.apps[i]
		if a.UserID() == userID && match(a) {
			return a
		}
	}
	return nil
}

func (m *memoryApplications) GetLatestByUser(ctx context.Context, userID string) (*wholesale.Application, error) {
	return m.latest(userID, func(*wholesale.Application) bool { return true }), nil
}

func (m *memoryApplications) GetActiveByUser(ctx context.Context, userID string) (*wholesale.Application, error) {
	if m.SkipActiveCheck {
		return nil, nil
	}
	return m.latest(userID, func(a *wholesale.Application) bool { return a.Status().IsActive() }), nil
}

func (m *memoryApplications) GetApprovedByUser(ctx context.Context, userID string) (*wholesale.Application, error) {
	return m.latest(userID, func(a *wholesale.Application) bool { return a.Status() == vo.StatusApproved }), nil
}

func (m *memoryApplications) Update(ctx context.Context, app *wholesale.Application) error {
	return nil
}

func (m *memoryApplications) List(ctx context.Context, filter wholesale.Filter) ([]*wholesale.Application, int64, error) {
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*wholesale.Application
	for _, a := range m.apps {
		if filter.Status == nil || a.Status() == *filter.Status {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
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
	mu       sync.Mutex
	reviewed []notification.WholesaleMessage
}

func (m *mockNotifier) TicketSubmitted(ctx context.Context, msg notification.TicketMessage) error {
	return nil
}

func (m *mockNotifier) TicketStatusChanged(ctx context.Context, msg notification.TicketMessage) error {
	return nil
}

func (m *mockNotifier) OrderConfirmed(ctx context.Context, msg notification.OrderMessage) error {
	return nil
}

func (m *mockNotifier) OrderShipped(ctx context.Context, msg notification.OrderMessage) error {
	return nil
}

func (m *mockNotifier) WholesaleReviewed(ctx context.Context, msg notification.WholesaleMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviewed = append(m.reviewed, msg)
	return nil
}

func (m *mockNotifier) lastReviewed() (notification.WholesaleMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.reviewed) == 0 {
		return notification.WholesaleMessage{}, false
	}
	return m.reviewed[len(m.reviewed)-1], true
}
