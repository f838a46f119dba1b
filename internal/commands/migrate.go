package commands

import (
	"fmt"

	"github.com/SscSPs/livestock_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the PostgreSQL schema",
	}

	for _, direction := range []database.MigrationDirection{database.MigrateUp, database.MigrateDown} {
		direction := direction
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: fmt.Sprintf("Run all %s migrations", direction),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := env.Migrate(cmd.Context(), direction); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "migrations %s: done\n", direction)
				return nil
			},
		})
	}

	return cmd
}
