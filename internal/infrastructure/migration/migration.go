package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// DefaultSourceDir is where `migrate create` writes new scripts.
const DefaultSourceDir = "./internal/infrastructure/migration/scripts"

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose for MySQL outside development and AutoMigrate
// otherwise. The embedded scripts are MySQL DDL.
func NewManager(driver, environment string, log logger.Interface) *Manager {
	var strategy Strategy
	switch {
	case strings.EqualFold(driver, "mysql") && !strings.EqualFold(environment, constants.EnvDevelopment):
		strategy = NewGooseStrategy(DefaultSourceDir, log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Goose returns the goose strategy, or nil when the manager runs AutoMigrate.
func (m *Manager) Goose() *GooseStrategy {
	g, _ := m.strategy.(*GooseStrategy)
	return g
}
