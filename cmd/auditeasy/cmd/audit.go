package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the external compliance audit over the full ledger",
	Long: `audit sends a snapshot of the ledger to the configured
text-generation service and prints its free-text compliance report. The call
reads only; failures are reported as advisory text and never touch the ledger.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		ctx := opCtx()
		transactions, err := svcs.Ledger.ListTransactions(ctx)
		if err != nil {
			return err
		}
		fmt.Println(svcs.Audit.RunComplianceAudit(ctx, transactions))
		return nil
	},
}
