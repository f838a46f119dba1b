// Package bootstrap wires configuration into a ready service container for
// the HTTP server and the command line tool.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/livestock_ledger/internal/core/chart"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/core/services"
	"github.com/SscSPs/livestock_ledger/internal/platform/config"
	"github.com/SscSPs/livestock_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/livestock_ledger/internal/repositories/memory"
	"github.com/SscSPs/livestock_ledger/pkg/database"
)

// NewLogger builds the JSON logger used by both binaries and installs it as the default.
func NewLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// LoadCatalog returns the product catalog named by CATALOG_FILE, or the built-in one.
// The catalog must only reference accounts of ch.
func LoadCatalog(cfg *config.Config, ch *chart.Chart) (*chart.Catalog, error) {
	if cfg.CatalogFile == "" {
		return chart.DefaultCatalog(), nil
	}
	catalog, err := chart.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(ch); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", cfg.CatalogFile, err)
	}
	return catalog, nil
}

// OpenStore returns the unit of work selected by STORE_DRIVER. For postgres the
// schema is migrated up first when migrate is set. The returned func releases
// the store.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (portsrepo.UnitOfWork, func(), error) {
	if !cfg.UsesPostgres() {
		logger.Info("Using in-memory store; books are lost on exit")
		return memory.NewStore(), func() {}, nil
	}

	if migrate {
		logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
		if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, logger); err != nil {
			return nil, nil, err
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewUnitOfWork(pool), func() { database.ClosePgxPool(pool) }, nil
}

// Services builds the service container over the configured store.
func Services(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (*portssvc.ServiceContainer, func(), error) {
	ch := chart.Default()
	catalog, err := LoadCatalog(cfg, ch)
	if err != nil {
		return nil, nil, err
	}

	uow, closeStore, err := OpenStore(ctx, cfg, logger, migrate)
	if err != nil {
		return nil, nil, err
	}
	return services.NewServiceContainer(uow, ch, catalog), closeStore, nil
}
