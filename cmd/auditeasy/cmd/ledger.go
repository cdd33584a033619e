package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
)

var (
	ledgerCategory string
	ledgerOldest   bool
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Show the ledger with running balances",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		ctx := opCtx()
		transactions, err := svcs.Ledger.ListTransactions(ctx)
		if err != nil {
			return err
		}

		lines := svcs.Reporting.Project(transactions, domain.FundCategory(ledgerCategory), !ledgerOldest)
		if len(lines) == 0 {
			fmt.Printf("No transactions recorded for %s.\n", ledgerCategory)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tVOUCHER\tPURPOSE\tDEBIT\tCREDIT\tBALANCE\tSTATUS\tID")
		for _, line := range lines {
			debit, credit := "-", "-"
			if line.Type == domain.Expense {
				debit = line.Amount.StringFixed(2)
			} else {
				credit = line.Amount.StringFixed(2)
			}
			status := "pending"
			if line.IsAuditVerified {
				status = "verified"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				line.Date.Format("2006-01-02"),
				line.VoucherNumber,
				line.Description,
				debit,
				credit,
				line.RunningBalance.StringFixed(2),
				status,
				line.TransactionID,
			)
		}
		return w.Flush()
	},
}

func init() {
	ledgerCmd.Flags().StringVar(&ledgerCategory, "category", string(domain.CategoryAll), "fund category filter (or ALL)")
	ledgerCmd.Flags().BoolVar(&ledgerOldest, "oldest-first", false, "list chronologically instead of latest first")
}
