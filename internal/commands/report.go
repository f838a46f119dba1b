package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// reportFunc prints one statement and returns its imbalance, if any.
type reportFunc func(cmd *cobra.Command, svc *portssvc.ServiceContainer, w io.Writer) error

func newReportCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a financial statement",
	}

	reports := []struct {
		use, short string
		run        reportFunc
	}{
		{"trial-balance", "Ending balances in debit and credit columns", printTrialBalance},
		{"income-statement", "Revenue, cost of goods sold, expenses and net income", printIncomeStatement},
		{"equity-statement", "Changes in owner's equity", printEquityStatement},
		{"balance-sheet", "Assets against liabilities and equity", printBalanceSheet},
	}
	for _, r := range reports {
		r := r
		cmd.AddCommand(&cobra.Command{
			Use:   r.use,
			Short: r.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd.Context(), env, func(svc *portssvc.ServiceContainer) error {
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
					reportErr := r.run(cmd, svc, w)
					if err := w.Flush(); err != nil {
						return err
					}
					return reportErr
				})
			},
		})
	}

	return cmd
}

func rp(d decimal.Decimal) string { return utils.FormatRupiah(d) }

func printTrialBalance(cmd *cobra.Command, svc *portssvc.ServiceContainer, w io.Writer) error {
	tb, err := svc.Reporting.TrialBalance(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "NERACA SALDO")
	fmt.Fprintln(w, "CODE\tACCOUNT\tDEBIT\tCREDIT")
	for _, row := range tb.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.AccountCode, row.AccountName, rp(row.Debit), rp(row.Credit))
	}
	fmt.Fprintf(w, "\tTOTAL\t%s\t%s\n", rp(tb.TotalDebit), rp(tb.TotalCredit))
	return tb.Err()
}

func printAmounts(w io.Writer, title string, rows []domain.AccountAmount, total decimal.Decimal) {
	fmt.Fprintln(w, title)
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", r.AccountCode, r.Name, rp(r.Amount))
	}
	fmt.Fprintf(w, "  \tTotal %s\t%s\n", title, rp(total))
}

func printIncomeStatement(cmd *cobra.Command, svc *portssvc.ServiceContainer, w io.Writer) error {
	is, err := svc.Reporting.IncomeStatement(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "LAPORAN LABA RUGI")
	printAmounts(w, "Pendapatan", is.Revenue, is.TotalRevenue)
	printAmounts(w, "Harga Pokok Penjualan", is.COGS, is.TotalCOGS)
	fmt.Fprintf(w, "\tLaba Kotor\t%s\n", rp(is.GrossProfit))
	printAmounts(w, "Beban", is.Expenses, is.TotalExpenses)
	fmt.Fprintf(w, "\tLaba Bersih\t%s\n", rp(is.NetIncome))
	return nil
}

func printEquityStatement(cmd *cobra.Command, svc *portssvc.ServiceContainer, w io.Writer) error {
	es, err := svc.Reporting.EquityStatement(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "LAPORAN PERUBAHAN MODAL")
	fmt.Fprintf(w, "Modal Awal\t%s\n", rp(es.BeginningCapital))
	fmt.Fprintf(w, "Laba Bersih\t%s\n", rp(es.NetIncome))
	fmt.Fprintf(w, "Prive\t%s\n", rp(es.Drawings))
	fmt.Fprintf(w, "Modal Akhir\t%s\n", rp(es.EndingEquity))
	return nil
}

func printBalanceSheet(cmd *cobra.Command, svc *portssvc.ServiceContainer, w io.Writer) error {
	bs, err := svc.Reporting.BalanceSheet(cmd.Context())
	if err != nil {
		return err
	}
	b := bs.Breakdown
	fmt.Fprintln(w, "NERACA")
	printAmounts(w, "Aset Lancar", bs.CurrentAssets, b.CurrentAssets)
	printAmounts(w, "Aset Tetap", bs.FixedAssets.Gross, bs.FixedAssets.TotalGross)
	printAmounts(w, "Akumulasi Penyusutan", bs.FixedAssets.AccumulatedDepreciation, bs.FixedAssets.TotalDepreciation)
	fmt.Fprintf(w, "\tTOTAL ASET\t%s\n", rp(bs.TotalAssets))
	printAmounts(w, "Liabilitas Lancar", bs.CurrentLiabilities, b.CurrentLiabilities)
	printAmounts(w, "Liabilitas Jangka Panjang", bs.LongTermLiabilities, b.LongTermLiabilities)
	fmt.Fprintf(w, "\tModal\t%s\n", rp(b.Capital))
	fmt.Fprintf(w, "\tLaba Bersih\t%s\n", rp(b.NetIncome))
	fmt.Fprintf(w, "\tPrive\t%s\n", rp(b.Drawings))
	fmt.Fprintf(w, "\tTOTAL LIABILITAS DAN EKUITAS\t%s\n", rp(b.LiabilitiesAndEquity))
	if !bs.Balanced {
		fmt.Fprintf(w, "\tSELISIH\t%s\n", rp(bs.Discrepancy))
	}
	return bs.Err()
}
