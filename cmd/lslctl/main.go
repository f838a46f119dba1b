package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/commands"
	"github.com/SscSPs/livestock_ledger/internal/platform/bootstrap"
	"github.com/SscSPs/livestock_ledger/internal/platform/config"
)

// exitImbalance is returned when a statement's totals disagree.
const exitImbalance = 2

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg.LogLevel)

	root := commands.NewRootCommand(commands.DefaultEnv(cfg, logger))
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, apperrors.ErrImbalanceDetected) {
			os.Exit(exitImbalance)
		}
		os.Exit(1)
	}
}
