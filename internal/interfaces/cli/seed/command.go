// Package seed loads the product catalog fixture into the database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	catalogUseCases "github.com/phonefix-inc/phonefix/internal/application/catalog/usecases"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/config"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/database"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/migration"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/seeds"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/repository"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

const defaultCatalogPath = "./configs/catalog.yaml"

var (
	env         string
	catalogPath string
	migrate     bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the product catalog",
		Long:  `Upsert products from a YAML catalog file, keyed by SKU. Safe to re-run.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&catalogPath, "file", "f", defaultCatalogPath, "Path to the catalog YAML file")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Run migrations before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	entries, err := seeds.LoadCatalogFile(catalogPath)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if migrate {
		if err := migration.NewManager(cfg.Database.Driver, env, log).Migrate(database.Get()); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	uc := catalogUseCases.NewSeedProductsUseCase(repository.NewProductRepository(database.Get(), log), log)
	count, err := uc.Execute(ctx, entries)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d products from %s\n", count, catalogPath)
	return nil
}
