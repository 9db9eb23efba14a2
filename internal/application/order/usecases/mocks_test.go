package usecases

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/application/payment/paymentgateway"
	"github.com/phonefix-inc/phonefix/internal/domain/cart"
	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	wvo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
)

type mockOrderRepository struct {
	CreateFunc               func(ctx context.Context, o *order.Order) error
	GetByIDFunc              func(ctx context.Context, id uint) (*order.Order, error)
	GetByPaymentIntentIDFunc func(ctx context.Context, intentID string) (*order.Order, error)
	UpdateFunc               func(ctx context.Context, o *order.Order) error
	ListFunc                 func(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, order.ErrOrderNotFound
}

func (m *mockOrderRepository) GetByPaymentIntentID(ctx context.Context, intentID string) (*order.Order, error) {
	if m.GetByPaymentIntentIDFunc != nil {
		return m.GetByPaymentIntentIDFunc(ctx, intentID)
	}
	return nil, order.ErrOrderNotFound
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCartRepository struct {
	ListByUserFunc func(ctx context.Context, userID string) ([]*cart.Item, error)
	ClearFunc      func(ctx context.Context, userID string) error
}

func (m *mockCartRepository) ListByUser(ctx context.Context, userID string) ([]*cart.Item, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCartRepository) Get(ctx context.Context, userID string, productID uint) (*cart.Item, error) {
	return nil, cart.ErrCartItemNotFound
}

func (m *mockCartRepository) Save(ctx context.Context, item *cart.Item) error {
	return nil
}

func (m *mockCartRepository) Remove(ctx context.Context, userID string, productID uint) error {
	return nil
}

func (m *mockCartRepository) Clear(ctx context.Context, userID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, userID)
	}
	return nil
}

type mockProductRepository struct {
	GetByIDsFunc       func(ctx context.Context, ids []uint) ([]*catalog.Product, error)
	DecrementStockFunc func(ctx context.Context, productID uint, qty int) error
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	return nil, catalog.ErrProductNotFound
}

func (m *mockProductRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	return nil, catalog.ErrProductNotFound
}

func (m *mockProductRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Product, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter catalog.Filter) ([]*catalog.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockProductRepository) Upsert(ctx context.Context, p *catalog.Product) error {
	return nil
}

func (m *mockProductRepository) DecrementStock(ctx context.Context, productID uint, qty int) error {
	if m.DecrementStockFunc != nil {
		return m.DecrementStockFunc(ctx, productID, qty)
	}
	return nil
}

type mockTierResolver struct {
	tier *wvo.Tier
	err  error
}

func (m *mockTierResolver) ResolveTier(ctx context.Context, userID string) (*wvo.Tier, error) {
	return m.tier, m.err
}

type fixedDiscounts map[string]decimal.Decimal

func (f fixedDiscounts) DiscountPercent(tier string) decimal.Decimal {
	return f[tier]
}

// mockTransactor runs fn inline and records whether it failed.
type mockTransactor struct {
	calls      int
	rolledBack int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	err := fn(ctx)
	if err != nil {
		m.rolledBack++
	}
	return err
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
	confirmed []notification.OrderMessage
	shipped   []notification.OrderMessage
}

func (m *mockNotifier) TicketSubmitted(ctx context.Context, msg notification.TicketMessage) error {
	return nil
}

func (m *mockNotifier) TicketStatusChanged(ctx context.Context, msg notification.TicketMessage) error {
	return nil
}

func (m *mockNotifier) OrderConfirmed(ctx context.Context, msg notification.OrderMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmed = append(m.confirmed, msg)
	return nil
}

func (m *mockNotifier) OrderShipped(ctx context.Context, msg notification.OrderMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shipped = append(m.shipped, msg)
	return nil
}

func (m *mockNotifier) WholesaleReviewed(ctx context.Context, msg notification.WholesaleMessage) error {
	return nil
}

func (m *mockNotifier) shippedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.shipped)
}

func (m *mockNotifier) confirmedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.confirmed)
}

type mockGateway struct {
	CreateIntentFunc func(ctx context.Context, req paymentgateway.CreateIntentRequest) (*paymentgateway.Intent, error)
	GetIntentFunc    func(ctx context.Context, intentID string) (*paymentgateway.Intent, error)
	ParseWebhookFunc func(payload []byte, signature string) (*paymentgateway.WebhookEvent, error)
	createCalls      int
}

func (m *mockGateway) CreateIntent(ctx context.Context, req paymentgateway.CreateIntentRequest) (*paymentgateway.Intent, error) {
	m.createCalls++
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, req)
	}
	return &paymentgateway.Intent{ID: "pi_new", ClientSecret: "pi_new_secret"}, nil
}

func (m *mockGateway) GetIntent(ctx context.Context, intentID string) (*paymentgateway.Intent, error) {
	if m.GetIntentFunc != nil {
		return m.GetIntentFunc(ctx, intentID)
	}
	return &paymentgateway.Intent{ID: intentID, ClientSecret: intentID + "_secret", Status: "requires_payment_method"}, nil
}

func (m *mockGateway) ParseWebhook(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	if m.ParseWebhookFunc != nil {
		return m.ParseWebhookFunc(payload, signature)
	}
	return nil, paymentgateway.ErrInvalidSignature
}
