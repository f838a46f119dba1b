package commands

import (
	"fmt"

	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

func newLedgerCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Maintain the general ledger",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "rebuild",
		Short: "Recalculate every running balance from the posted entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), env, func(svc *portssvc.ServiceContainer) error {
				corrected, err := svc.Bookkeeping.RecalculateLedger(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ledger rebuilt, %d balance(s) corrected\n", corrected)
				return nil
			})
		},
	})
	return cmd
}
