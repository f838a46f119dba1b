package commands

import (
	"fmt"
	"text/tabwriter"

	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newAccountsCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), env, func(svc *portssvc.ServiceContainer) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "CODE\tNAME\tCATEGORY")
				for _, a := range svc.Bookkeeping.ListAccounts(cmd.Context()) {
					fmt.Fprintf(w, "%s\t%s\t%s\n", a.Code, a.Name, a.Category)
				}
				return w.Flush()
			})
		},
	}
}

func newInventoryCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Show inventory valuation at moving-average cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), env, func(svc *portssvc.ServiceContainer) error {
				items, err := svc.Bookkeeping.ListInventory(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
				fmt.Fprintln(w, "PRODUCT\tQTY\tUNIT\tUNIT COST\tVALUE\t")
				total := decimal.Zero
				for _, it := range items {
					fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t\n", it.ProductName, it.Quantity, it.Unit,
						utils.FormatRupiah(it.UnitCost), utils.FormatRupiah(it.TotalValue))
					total = total.Add(it.TotalValue)
				}
				fmt.Fprintf(w, "TOTAL\t\t\t\t%s\t\n", utils.FormatRupiah(total))
				return w.Flush()
			})
		},
	}
}
