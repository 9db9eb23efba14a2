package order

import (
	"github.com/phonefix-inc/phonefix/internal/application/order/usecases"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/common"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
)

// CheckoutRequest carries only addresses and notes. Line items and prices
// come from the server-side cart and catalog.
type CheckoutRequest struct {
	CustomerEmail   string                 `json:"customer_email,omitempty" validate:"omitempty,email"`
	ShippingAddress common.AddressRequest  `json:"shipping_address" validate:"required"`
	BillingAddress  *common.AddressRequest `json:"billing_address,omitempty" validate:"omitempty"`
	Notes           string                 `json:"notes,omitempty" validate:"max=1000"`
}

func (r *CheckoutRequest) ToCommand(a actor.Actor) usecases.CreateOrderCommand {
	var billing *sharedvo.PostalAddress
	if r.BillingAddress != nil {
		b := r.BillingAddress.ToPostal()
		billing = &b
	}
	return usecases.CreateOrderCommand{
		Actor:           a,
		CustomerEmail:   r.CustomerEmail,
		ShippingAddress: r.ShippingAddress.ToPostal(),
		BillingAddress:  billing,
		Notes:           r.Notes,
	}
}

type CreateIntentRequest struct {
	OrderID uint `json:"order_id" validate:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" validate:"required"`
	TrackingNumber *string `json:"tracking_number,omitempty" validate:"omitempty,max=100"`
	Carrier        *string `json:"carrier,omitempty" validate:"omitempty,max=50"`
	AdminNotes     *string `json:"admin_notes,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateOrderStatusRequest) ToCommand(orderID uint, a actor.Actor) usecases.UpdateOrderStatusCommand {
	return usecases.UpdateOrderStatusCommand{
		OrderID:        orderID,
		Actor:          a,
		Status:         r.Status,
		TrackingNumber: r.TrackingNumber,
		Carrier:        r.Carrier,
		AdminNotes:     r.AdminNotes,
	}
}
