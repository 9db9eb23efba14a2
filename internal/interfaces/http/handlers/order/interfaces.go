package order

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/order/dto"
	"github.com/phonefix-inc/phonefix/internal/application/order/usecases"
)

type CreateOrderExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateOrderCommand) (*dto.CreateOrderResult, error)
}

type GetOrderExecutor interface {
	Execute(ctx context.Context, query usecases.GetOrderQuery) (*dto.OrderDTO, error)
}

type ListOrdersExecutor interface {
	Execute(ctx context.Context, query usecases.ListOrdersQuery) (*usecases.ListOrdersResult, error)
}

type InitiatePaymentExecutor interface {
	Execute(ctx context.Context, cmd usecases.InitiatePaymentCommand) (*dto.PaymentResult, error)
}

type PaymentWebhookExecutor interface {
	ExecuteWebhook(ctx context.Context, payload []byte, signature string) (*usecases.ConfirmPaymentResult, error)
}

type UpdateOrderStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateOrderStatusCommand) (*dto.OrderDTO, error)
}
