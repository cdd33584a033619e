package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verifyOff    bool
	clearBankOff bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify <transaction-id>",
	Short: "Mark a transaction as audit verified (locks it against deletion)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		txn, err := svcs.Ledger.SetAuditVerified(opCtx(), args[0], !verifyOff)
		if err != nil {
			return err
		}
		state := "verified"
		if verifyOff {
			state = "un-verified"
		}
		fmt.Printf("Transaction %s is now %s\n", txn.VoucherNumber, state)
		return nil
	},
}

var clearBankCmd = &cobra.Command{
	Use:   "clear-bank <transaction-id>",
	Short: "Mark a non-cash transaction as cleared in the bank statement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		txn, err := svcs.Ledger.SetBankCleared(opCtx(), args[0], !clearBankOff)
		if err != nil {
			return err
		}
		state := "cleared"
		if clearBankOff {
			state = "pending"
		}
		fmt.Printf("Transaction %s bank status is now %s\n", txn.VoucherNumber, state)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <transaction-id>",
	Short: "Delete an unverified transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		if err := svcs.Ledger.DeleteTransaction(opCtx(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Transaction %s deleted\n", args[0])
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyOff, "off", false, "remove the verified mark instead")
	clearBankCmd.Flags().BoolVar(&clearBankOff, "off", false, "mark as not cleared instead")
}
