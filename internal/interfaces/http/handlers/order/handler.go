package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/application/order/usecases"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/common"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

// maxWebhookBody caps the raw webhook payload read from the gateway.
const maxWebhookBody = 64 << 10

type Handler struct {
	createOrderUC     CreateOrderExecutor
	getOrderUC        GetOrderExecutor
	listOrdersUC      ListOrdersExecutor
	initiatePaymentUC InitiatePaymentExecutor
	webhookUC         PaymentWebhookExecutor
	updateStatusUC    UpdateOrderStatusExecutor
	logger            logger.Interface
}

func NewHandler(
	createOrderUC CreateOrderExecutor,
	getOrderUC GetOrderExecutor,
	listOrdersUC ListOrdersExecutor,
	initiatePaymentUC InitiatePaymentExecutor,
	webhookUC PaymentWebhookExecutor,
	updateStatusUC UpdateOrderStatusExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createOrderUC:     createOrderUC,
		getOrderUC:        getOrderUC,
		listOrdersUC:      listOrdersUC,
		initiatePaymentUC: initiatePaymentUC,
		webhookUC:         webhookUC,
		updateStatusUC:    updateStatusUC,
		logger:            logger,
	}
}

// Checkout handles POST /api/orders
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), req.ToCommand(middleware.GetActor(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Order placed successfully")
}

// ListMyOrders handles GET /api/orders
func (h *Handler) ListMyOrders(c *gin.Context) {
	h.list(c, false)
}

// ListAllOrders handles GET /api/admin/orders
func (h *Handler) ListAllOrders(c *gin.Context) {
	h.list(c, true)
}

func (h *Handler) list(c *gin.Context, allCustomers bool) {
	p := utils.ParsePagination(c)
	result, err := h.listOrdersUC.Execute(c.Request.Context(), usecases.ListOrdersQuery{
		Actor:         middleware.GetActor(c),
		AllCustomers:  allCustomers,
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Page:          p.Page,
		Limit:         p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Orders, result.Total, result.Page, result.Limit)
}

// GetOrder handles GET /api/orders/:id and GET /api/admin/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOrderUC.Execute(c.Request.Context(), usecases.GetOrderQuery{
		OrderID: orderID,
		Actor:   middleware.GetActor(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreatePaymentIntent handles POST /api/payments/create-intent
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.initiatePaymentUC.Execute(c.Request.Context(), usecases.InitiatePaymentCommand{
		OrderID: req.OrderID,
		Actor:   middleware.GetActor(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PaymentWebhook handles POST /api/payments/webhook. The body is read raw so
// the gateway signature can be checked against the exact bytes.
func (h *Handler) PaymentWebhook(c *gin.Context) {
	payload, err := readLimited(c, maxWebhookBody)
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid webhook payload"))
		return
	}

	result, err := h.webhookUC.ExecuteWebhook(c.Request.Context(), payload, c.GetHeader(constants.HeaderStripeSig))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"received": true,
		"changed":  result != nil && result.Changed,
	})
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateOrderStatusRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), req.ToCommand(orderID, middleware.GetActor(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order updated successfully", result)
}

func readLimited(c *gin.Context, limit int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	return c.GetRawData()
}
