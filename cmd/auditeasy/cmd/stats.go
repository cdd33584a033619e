package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard totals for the full ledger",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		transactions, err := svcs.Ledger.ListTransactions(opCtx())
		if err != nil {
			return err
		}
		stats := svcs.Reporting.Aggregate(transactions)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total income:\t%s\n", stats.TotalIncome.StringFixed(2))
		fmt.Fprintf(w, "Total expense:\t%s\n", stats.TotalExpense.StringFixed(2))
		fmt.Fprintf(w, "Balance:\t%s\n", stats.Balance.StringFixed(2))
		fmt.Fprintf(w, "Regular activity spent:\t%s\n", stats.RegularSpent.StringFixed(2))
		fmt.Fprintf(w, "Special camp spent:\t%s\n", stats.CampSpent.StringFixed(2))
		fmt.Fprintf(w, "Cash in hand:\t%s\n", stats.CashInHand.StringFixed(2))
		fmt.Fprintf(w, "Cash at bank:\t%s\n", stats.CashAtBank.StringFixed(2))
		return w.Flush()
	},
}
