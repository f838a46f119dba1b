package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/livestock_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand(env Env) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <operator>",
		Short: "Issue a bearer token for the HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set; the API is running without authentication")
			}
			tok, err := utils.IssueOperatorToken(args[0], env.JWTSecret, ttl)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
