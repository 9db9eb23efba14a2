package http

import (
	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/domain/address"
	"github.com/phonefix-inc/phonefix/internal/domain/cart"
	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/repository"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	orderRepo     order.Repository
	ticketRepo    repair.Repository
	wholesaleRepo wholesale.Repository
	addressRepo   address.Repository
	productRepo   catalog.Repository
	cartRepo      cart.Repository
	txMgr         db.Transactor
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(gdb *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		orderRepo:     repository.NewOrderRepository(gdb, log),
		ticketRepo:    repository.NewRepairTicketRepository(gdb, log),
		wholesaleRepo: repository.NewWholesaleApplicationRepository(gdb, log),
		addressRepo:   repository.NewAddressRepository(gdb, log),
		productRepo:   repository.NewProductRepository(gdb, log),
		cartRepo:      repository.NewCartRepository(gdb, log),
		txMgr:         db.NewTransactionManager(gdb),
	}
}
