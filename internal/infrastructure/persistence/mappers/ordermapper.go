package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/phonefix-inc/phonefix/internal/domain/order"
	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
	"github.com/phonefix-inc/phonefix/internal/shared/mapper"
)

// OrderMapper handles the conversion between Order aggregates and persistence models.
type OrderMapper interface {
	// ToModel converts an order and its items to persistence models.
	ToModel(o *order.Order) *models.OrderModel

	// ToDomain rebuilds the aggregate. Items must be preloaded on the model.
	ToDomain(model *models.OrderModel) (*order.Order, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToModel(o *order.Order) *models.OrderModel {
	model := &models.OrderModel{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		UserID:          o.UserID(),
		CustomerEmail:   o.CustomerEmail(),
		Subtotal:        o.Subtotal(),
		DiscountAmount:  o.DiscountAmount(),
		TaxAmount:       o.TaxAmount(),
		ShippingCost:    o.ShippingCost(),
		TotalAmount:     o.TotalAmount(),
		Currency:        o.Currency(),
		IsWholesale:     o.IsWholesale(),
		WholesaleTier:   o.WholesaleTier(),
		ShippingAddress: datatypes.NewJSONType(toSnapshot(o.ShippingAddress())),
		Status:          o.Status().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		PaymentMethod:   o.PaymentMethod(),
		PaymentIntentID: o.PaymentIntentID(),
		TrackingNumber:  o.TrackingNumber(),
		Carrier:         o.Carrier(),
		CustomerNotes:   o.CustomerNotes(),
		AdminNotes:      o.AdminNotes(),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		PaidAt:          o.PaidAt(),
		ShippedAt:       o.ShippedAt(),
		DeliveredAt:     o.DeliveredAt(),
		CancelledAt:     o.CancelledAt(),
	}

	if billing := o.BillingAddress(); billing != nil {
		snap := datatypes.NewJSONType(toSnapshot(*billing))
		model.BillingAddress = &snap
	}

	model.Items = mapper.MapSlice(o.Items(), func(item *order.OrderItem) models.OrderItemModel {
		return models.OrderItemModel{
			ID:                 item.ID(),
			OrderID:            item.OrderID(),
			ProductID:          item.ProductID(),
			ProductName:        item.Name(),
			ProductSKU:         item.SKU(),
			ProductImage:       item.ImageURL(),
			UnitPrice:          item.UnitPrice(),
			DiscountPercentage: item.DiscountPercentage(),
			Quantity:           item.Quantity(),
			Subtotal:           item.Subtotal(),
			CreatedAt:          o.CreatedAt(),
		}
	})

	return model
}

func (m *OrderMapperImpl) ToDomain(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	items := make([]*order.OrderItem, 0, len(model.Items))
	for _, it := range model.Items {
		items = append(items, order.ReconstructOrderItem(
			it.ID, it.OrderID, it.ProductID,
			it.ProductName, it.ProductSKU, it.ProductImage,
			it.UnitPrice, it.DiscountPercentage,
			it.Quantity,
			it.Subtotal,
		))
	}

	var billing *sharedvo.PostalAddress
	if model.BillingAddress != nil {
		addr := fromSnapshot(model.BillingAddress.Data())
		billing = &addr
	}

	o, err := order.ReconstructOrder(order.ReconstructParams{
		ID:              model.ID,
		OrderNumber:     model.OrderNumber,
		UserID:          model.UserID,
		CustomerEmail:   model.CustomerEmail,
		Items:           items,
		Subtotal:        model.Subtotal,
		DiscountAmount:  model.DiscountAmount,
		TaxAmount:       model.TaxAmount,
		ShippingCost:    model.ShippingCost,
		TotalAmount:     model.TotalAmount,
		Currency:        model.Currency,
		IsWholesale:     model.IsWholesale,
		WholesaleTier:   model.WholesaleTier,
		ShippingAddress: fromSnapshot(model.ShippingAddress.Data()),
		BillingAddress:  billing,
		Status:          vo.OrderStatus(model.Status),
		PaymentStatus:   vo.PaymentStatus(model.PaymentStatus),
		PaymentMethod:   model.PaymentMethod,
		PaymentIntentID: model.PaymentIntentID,
		TrackingNumber:  model.TrackingNumber,
		Carrier:         model.Carrier,
		CustomerNotes:   model.CustomerNotes,
		AdminNotes:      model.AdminNotes,
		Version:         model.Version,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		PaidAt:          model.PaidAt,
		ShippedAt:       model.ShippedAt,
		DeliveredAt:     model.DeliveredAt,
		CancelledAt:     model.CancelledAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order %d: %w", model.ID, err)
	}
	return o, nil
}
