package migration

import (
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every table owned by the service, parents first.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProductModel{},
		&models.CartItemModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.RepairTicketModel{},
		&models.WholesaleApplicationModel{},
		&models.AddressModel{},
	}
}
