package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/domain/order"
	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

func TestListOrdersUseCase_CustomerScopedToOwnOrders(t *testing.T) {
	var got order.Filter
	repo := &mockOrderRepository{
		ListFunc: func(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
			got = filter
			return []*order.Order{existingOrder(t, orderFixture{})}, 21, nil
		},
	}

	result, err := NewListOrdersUseCase(repo, testLogger()).Execute(context.Background(), ListOrdersQuery{
		Actor:  actor.New("user-1", actor.RoleCustomer),
		Status: "pending",
		Page:   2,
		Limit:  500,
	})
	require.NoError(t, err)

	require.NotNil(t, got.UserID)
	assert.Equal(t, "user-1", *got.UserID)
	assert.Equal(t, vo.OrderStatusPending, *got.Status)
	assert.Equal(t, 100, got.Limit)
	assert.Equal(t, int64(21), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Empty(t, result.Orders[0].AdminNotes)
}

func TestListOrdersUseCase_AdminAllCustomers(t *testing.T) {
	var got order.Filter
	repo := &mockOrderRepository{
		ListFunc: func(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
			got = filter
			return nil, 0, nil
		},
	}

	_, err := NewListOrdersUseCase(repo, testLogger()).Execute(context.Background(), ListOrdersQuery{
		Actor:         admin,
		AllCustomers:  true,
		PaymentStatus: "paid",
	})
	require.NoError(t, err)

	assert.Nil(t, got.UserID)
	require.NotNil(t, got.PaymentStatus)
	assert.Equal(t, vo.PaymentStatusPaid, *got.PaymentStatus)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.Limit)
}

func TestListOrdersUseCase_Rejections(t *testing.T) {
	uc := NewListOrdersUseCase(&mockOrderRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), ListOrdersQuery{Actor: actor.Anonymous()})
	assert.True(t, errors.IsUnauthorizedError(err))

	_, err = uc.Execute(context.Background(), ListOrdersQuery{Actor: actor.New("user-1", actor.RoleCustomer), AllCustomers: true})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), ListOrdersQuery{Actor: actor.New("user-1", actor.RoleCustomer), Status: "bogus"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListOrdersQuery{Actor: admin, AllCustomers: true, PaymentStatus: "maybe"})
	require.True(t, errors.IsValidationError(err))
	assert.Equal(t, "payment_status", errors.GetAppError(err).Fields[0].Field)
}

func TestGetOrderUseCase(t *testing.T) {
	o := existingOrder(t, orderFixture{})
	uc := NewGetOrderUseCase(repoWith(o), testLogger())

	got, err := uc.Execute(context.Background(), GetOrderQuery{OrderID: 42, Actor: actor.New("user-1", actor.RoleCustomer)})
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250101-AbC123", got.OrderNumber)
	assert.Len(t, got.Items, 1)

	_, err = uc.Execute(context.Background(), GetOrderQuery{OrderID: 42, Actor: actor.New("user-2", actor.RoleCustomer)})
	assert.True(t, errors.IsNotFoundError(err), "other customers must not learn the order exists")

	_, err = uc.Execute(context.Background(), GetOrderQuery{OrderID: 42, Actor: actor.Anonymous()})
	assert.True(t, errors.IsUnauthorizedError(err))

	got, err = uc.Execute(context.Background(), GetOrderQuery{OrderID: 42, Actor: admin})
	require.NoError(t, err)
	assert.Equal(t, uint(42), got.ID)
}
