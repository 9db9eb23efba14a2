package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

func TestNewManager_StrategySelection(t *testing.T) {
	log := logger.NewNopLogger()

	tests := []struct {
		driver, env, want string
	}{
		{"mysql", "production", "goose"},
		{"mysql", "test", "goose"},
		{"mysql", "development", "gorm_auto_migrate"},
		{"postgres", "production", "gorm_auto_migrate"},
		{"sqlite", "production", "gorm_auto_migrate"},
	}
	for _, tt := range tests {
		t.Run(tt.driver+"/"+tt.env, func(t *testing.T) {
			m := NewManager(tt.driver, tt.env, log)
			assert.Equal(t, tt.want, m.GetStrategy().GetName())
			assert.Equal(t, tt.want == "goose", m.Goose() != nil)
		})
	}
}

func TestAutoMigrate_CreatesEveryTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	m := NewManagerWithStrategy(NewGormAutoMigrateStrategy(logger.NewNopLogger()), logger.NewNopLogger())
	require.NoError(t, m.Migrate(db))

	for _, table := range []string{"products", "cart_items", "orders", "order_items", "repair_tickets", "wholesale_applications", "addresses"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestEmbeddedScripts_AreVersioned(t *testing.T) {
	files, err := fs.Glob(embeddedScripts, "scripts/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		body, err := fs.ReadFile(embeddedScripts, f)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", f)
		assert.Contains(t, string(body), "-- +goose Down", f)
	}
}
