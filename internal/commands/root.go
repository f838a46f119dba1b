// Package commands implements the lslctl command line tool.
package commands

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/platform/bootstrap"
	"github.com/SscSPs/livestock_ledger/internal/platform/config"
	"github.com/SscSPs/livestock_ledger/pkg/database"
	"github.com/spf13/cobra"
)

// ServicesFunc opens the books. The returned func releases them.
type ServicesFunc func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)

// MigrateFunc applies schema migrations in one direction.
type MigrateFunc func(ctx context.Context, direction database.MigrationDirection) error

// Env is what the commands run against.
type Env struct {
	Services  ServicesFunc
	Migrate   MigrateFunc
	JWTSecret string
}

// DefaultEnv wires the commands to the configured store.
func DefaultEnv(cfg *config.Config, logger *slog.Logger) Env {
	return Env{
		Services: func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
			return bootstrap.Services(ctx, cfg, logger, false)
		},
		Migrate: func(_ context.Context, direction database.MigrationDirection) error {
			return database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger)
		},
		JWTSecret: cfg.JWTSecret,
	}
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(env Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lslctl",
		Short: "Livestock ledger bookkeeping tool",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newMigrateCommand(env),
		newAccountsCommand(env),
		newInventoryCommand(env),
		newLedgerCommand(env),
		newReportCommand(env),
		newTokenCommand(env),
	)

	return rootCmd
}

// withServices opens the books for the duration of fn.
func withServices(ctx context.Context, env Env, fn func(*portssvc.ServiceContainer) error) error {
	svc, release, err := env.Services(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(svc)
}
