package order

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/application/order/dto"
	"github.com/phonefix-inc/phonefix/internal/application/order/usecases"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/testutil"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateOrderUC struct {
	result *dto.CreateOrderResult
	err    error
	got    usecases.CreateOrderCommand
}

func (m *mockCreateOrderUC) Execute(_ context.Context, cmd usecases.CreateOrderCommand) (*dto.CreateOrderResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetOrderUC struct {
	result *dto.OrderDTO
	err    error
}

func (m *mockGetOrderUC) Execute(_ context.Context, _ usecases.GetOrderQuery) (*dto.OrderDTO, error) {
	return m.result, m.err
}

type mockListOrdersUC struct {
	result *usecases.ListOrdersResult
	err    error
	got    usecases.ListOrdersQuery
}

func (m *mockListOrdersUC) Execute(_ context.Context, q usecases.ListOrdersQuery) (*usecases.ListOrdersResult, error) {
	m.got = q
	return m.result, m.err
}

type mockInitiatePaymentUC struct {
	result *dto.PaymentResult
	err    error
}

func (m *mockInitiatePaymentUC) Execute(_ context.Context, _ usecases.InitiatePaymentCommand) (*dto.PaymentResult, error) {
	return m.result, m.err
}

type mockWebhookUC struct {
	result    *usecases.ConfirmPaymentResult
	err       error
	payload   []byte
	signature string
}

func (m *mockWebhookUC) ExecuteWebhook(_ context.Context, payload []byte, signature string) (*usecases.ConfirmPaymentResult, error) {
	m.payload = payload
	m.signature = signature
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	result *dto.OrderDTO
	err    error
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, _ usecases.UpdateOrderStatusCommand) (*dto.OrderDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createOrderUC     CreateOrderExecutor
	getOrderUC        GetOrderExecutor
	listOrdersUC      ListOrdersExecutor
	initiatePaymentUC InitiatePaymentExecutor
	webhookUC         PaymentWebhookExecutor
	updateStatusUC    UpdateOrderStatusExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(
		deps.createOrderUC,
		deps.getOrderUC,
		deps.listOrdersUC,
		deps.initiatePaymentUC,
		deps.webhookUC,
		deps.updateStatusUC,
		logger.NewNopLogger(),
	)
}

func validCheckoutBody() map[string]interface{} {
	return map[string]interface{}{
		"shipping_address": map[string]interface{}{
			"full_name":   "Ada Lovelace",
			"line1":       "1 Main St",
			"city":        "Austin",
			"state":       "TX",
			"postal_code": "78701",
		},
		"notes": "leave at door",
	}
}

// =====================================================================
// Checkout
// =====================================================================

func TestHandler_Checkout_Success(t *testing.T) {
	uc := &mockCreateOrderUC{result: &dto.CreateOrderResult{
		OrderID:     5,
		OrderNumber: "ORD-20250101-Ab12Cd",
		TotalAmount: decimal.RequireFromString("118.22"),
	}}
	h := newTestHandler(testDeps{createOrderUC: uc})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/orders", validCheckoutBody())
	testutil.SetActor(c, testutil.Customer("user-1"))
	h.Checkout(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var data dto.CreateOrderResult
	resp, err := testutil.DecodeData(w, &data)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "ORD-20250101-Ab12Cd", data.OrderNumber)
	assert.Equal(t, "118.22", data.TotalAmount.String())

	assert.Equal(t, "user-1", uc.got.Actor.UserID)
	assert.Equal(t, "Austin", uc.got.ShippingAddress.City)
	assert.Nil(t, uc.got.BillingAddress)
}

func TestHandler_Checkout_MissingAddressFields(t *testing.T) {
	uc := &mockCreateOrderUC{}
	h := newTestHandler(testDeps{createOrderUC: uc})

	body := map[string]interface{}{"shipping_address": map[string]interface{}{"full_name": "Ada"}}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/orders", body)
	testutil.SetActor(c, testutil.Customer("user-1"))
	h.Checkout(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp, err := testutil.DecodeData(w, nil)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)

	fields := map[string]bool{}
	for _, f := range resp.Errors {
		fields[f.Field] = true
	}
	assert.True(t, fields["shipping_address.line1"])
	assert.True(t, fields["shipping_address.city"])
	assert.Empty(t, uc.got.Actor.UserID, "use case must not run")
}

func TestHandler_Checkout_Guest(t *testing.T) {
	uc := &mockCreateOrderUC{err: errors.NewUnauthorizedError("authentication required")}
	h := newTestHandler(testDeps{createOrderUC: uc})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/orders", validCheckoutBody())
	h.Checkout(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Checkout_EmptyCart(t *testing.T) {
	uc := &mockCreateOrderUC{err: errors.NewValidationError("cart is empty")}
	h := newTestHandler(testDeps{createOrderUC: uc})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/orders", validCheckoutBody())
	testutil.SetActor(c, testutil.Customer("user-1"))
	h.Checkout(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// List / Get
// =====================================================================

func TestHandler_ListMyOrders_Pagination(t *testing.T) {
	uc := &mockListOrdersUC{result: &usecases.ListOrdersResult{
		Orders: []*dto.OrderDTO{{ID: 1, OrderNumber: "ORD-1"}},
		Total:  41,
		Page:   2,
		Limit:  20,
	}}
	h := newTestHandler(testDeps{listOrdersUC: uc})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/orders", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "status": "PENDING"})
	testutil.SetActor(c, testutil.Customer("user-1"))
	h.ListMyOrders(c)

	require.Equal(t, http.StatusOK, w.Code)
	var data testutil.ListData
	_, err := testutil.DecodeData(w, &data)
	require.NoError(t, err)
	assert.Equal(t, 2, data.Page)
	assert.Equal(t, int64(41), data.Total)
	assert.Equal(t, 3, data.TotalPages)

	assert.False(t, uc.got.AllCustomers)
	assert.Equal(t, "PENDING", uc.got.Status)
	assert.Equal(t, 2, uc.got.Page)
}

func TestHandler_ListAllOrders_WidensScope(t *testing.T) {
	uc := &mockListOrdersUC{result: &usecases.ListOrdersResult{Page: 1, Limit: 20}}
	h := newTestHandler(testDeps{listOrdersUC: uc})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/orders", nil)
	testutil.SetActor(c, testutil.Admin("boss"))
	h.ListAllOrders(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.got.AllCustomers)
}

func TestHandler_GetOrder(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		uc         *mockGetOrderUC
		wantStatus int
	}{
		{"found", "3", &mockGetOrderUC{result: &dto.OrderDTO{ID: 3}}, http.StatusOK},
		{"not owner", "3", &mockGetOrderUC{err: order.ErrOrderNotFound}, http.StatusNotFound},
		{"bad id", "x", &mockGetOrderUC{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(testDeps{getOrderUC: tt.uc})
			c, w := testutil.NewTestContext(http.MethodGet, "/api/orders/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)
			testutil.SetActor(c, testutil.Customer("user-1"))

			h.GetOrder(c)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// =====================================================================
// Payments
// =====================================================================

func TestHandler_CreatePaymentIntent(t *testing.T) {
	t.Run("already paid", func(t *testing.T) {
		h := newTestHandler(testDeps{initiatePaymentUC: &mockInitiatePaymentUC{result: dto.AlreadyPaid()}})
		c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/create-intent", map[string]interface{}{"order_id": 9})
		testutil.SetActor(c, testutil.Customer("user-1"))
		h.CreatePaymentIntent(c)

		require.Equal(t, http.StatusOK, w.Code)
		var data map[string]interface{}
		_, err := testutil.DecodeData(w, &data)
		require.NoError(t, err)
		assert.Equal(t, "already_paid", data["status"])
		assert.NotContains(t, data, "client_secret")
	})

	t.Run("requires payment", func(t *testing.T) {
		h := newTestHandler(testDeps{initiatePaymentUC: &mockInitiatePaymentUC{result: dto.ClientSecret("pi_1_secret", "pi_1")}})
		c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/create-intent", map[string]interface{}{"order_id": 9})
		testutil.SetActor(c, testutil.Customer("user-1"))
		h.CreatePaymentIntent(c)

		require.Equal(t, http.StatusOK, w.Code)
		var data map[string]interface{}
		_, err := testutil.DecodeData(w, &data)
		require.NoError(t, err)
		assert.Equal(t, "requires_payment", data["status"])
		assert.Equal(t, "pi_1_secret", data["client_secret"])
		assert.NotContains(t, data, "intent_id")
	})

	t.Run("declined", func(t *testing.T) {
		h := newTestHandler(testDeps{initiatePaymentUC: &mockInitiatePaymentUC{err: errors.NewPaymentError("Your card was declined.")}})
		c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/create-intent", map[string]interface{}{"order_id": 9})
		testutil.SetActor(c, testutil.Customer("user-1"))
		h.CreatePaymentIntent(c)

		require.Equal(t, http.StatusPaymentRequired, w.Code)
		resp, err := testutil.DecodeData(w, nil)
		require.NoError(t, err)
		assert.Equal(t, "Your card was declined.", resp.Error.Message)
	})

	t.Run("missing order id", func(t *testing.T) {
		h := newTestHandler(testDeps{initiatePaymentUC: &mockInitiatePaymentUC{}})
		c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/create-intent", map[string]interface{}{})
		h.CreatePaymentIntent(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_PaymentWebhook_PassesRawBodyAndSignature(t *testing.T) {
	uc := &mockWebhookUC{result: &usecases.ConfirmPaymentResult{OrderID: 4, PaymentStatus: "PAID", Changed: true}}
	h := newTestHandler(testDeps{webhookUC: uc})

	raw := `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`
	c, w := testutil.NewRawTestContext(http.MethodPost, "/api/payments/webhook", "application/json", raw)
	c.Request.Header.Set(constants.HeaderStripeSig, "t=1,v1=abc")
	h.PaymentWebhook(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, raw, string(uc.payload))
	assert.Equal(t, "t=1,v1=abc", uc.signature)
}

func TestHandler_PaymentWebhook_BadSignature(t *testing.T) {
	uc := &mockWebhookUC{err: errors.NewValidationError("invalid webhook signature")}
	h := newTestHandler(testDeps{webhookUC: uc})

	c, w := testutil.NewRawTestContext(http.MethodPost, "/api/payments/webhook", "application/json", "{}")
	h.PaymentWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Admin status updates
// =====================================================================

func TestHandler_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		uc         *mockUpdateStatusUC
		wantStatus int
	}{
		{
			name:       "shipped",
			body:       map[string]interface{}{"status": "SHIPPED", "tracking_number": "1Z999", "carrier": "UPS"},
			uc:         &mockUpdateStatusUC{result: &dto.OrderDTO{ID: 2, Status: "SHIPPED"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "illegal transition",
			body:       map[string]interface{}{"status": "PROCESSING"},
			uc:         &mockUpdateStatusUC{err: errors.NewConflictError("cannot move order from DELIVERED to PROCESSING")},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing status",
			body:       map[string]interface{}{"carrier": "UPS"},
			uc:         &mockUpdateStatusUC{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(testDeps{updateStatusUC: tt.uc})
			c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/orders/2", tt.body)
			testutil.SetURLParam(c, "id", "2")
			testutil.SetActor(c, testutil.Admin("boss"))

			h.UpdateOrderStatus(c)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
