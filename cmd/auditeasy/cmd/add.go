package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	"github.com/stpaulnss/auditeasy/internal/dto"
)

var (
	addType       string
	addDate       string
	addDesc       string
	addCategory   string
	addHead       string
	addAmount     string
	addVoucher    string
	addMode       string
	addVolunteers int

	suggestType string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a receipt or payment in the ledger",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(addAmount)
		if err != nil {
			return fmt.Errorf("invalid --amount %q: %w", addAmount, err)
		}

		req := dto.CreateTransactionRequest{
			Date:           addDate,
			Description:    addDesc,
			Category:       domain.FundCategory(addCategory),
			AccountHead:    domain.AccountHead(addHead),
			Type:           domain.TransactionType(addType),
			Amount:         amount,
			VoucherNumber:  addVoucher,
			PaymentMode:    domain.PaymentMode(addMode),
			VolunteerCount: addVolunteers,
		}

		txn, err := svcs.Ledger.CreateTransaction(opCtx(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Posted %s %s %s (%s) as %s\n",
			txn.VoucherNumber, txn.Amount.StringFixed(2), txn.Type, txn.Description, txn.TransactionID)
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print the next free voucher/receipt number",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		transactions, err := svcs.Ledger.ListTransactions(opCtx())
		if err != nil {
			return err
		}
		fmt.Println(svcs.Voucher.SuggestNext(domain.TransactionType(suggestType), transactions))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addType, "type", string(domain.Expense), "INCOME or EXPENSE")
	addCmd.Flags().StringVar(&addDate, "date", time.Now().UTC().Format("2006-01-02"), "entry date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "purpose narration")
	addCmd.Flags().StringVar(&addCategory, "category", string(domain.CategoryRegular), "fund category")
	addCmd.Flags().StringVar(&addHead, "head", string(domain.HeadRefreshment), "account head")
	addCmd.Flags().StringVar(&addAmount, "amount", "0", "gross amount")
	addCmd.Flags().StringVar(&addVoucher, "voucher", "", "voucher number (defaults to the next in sequence)")
	addCmd.Flags().StringVar(&addMode, "mode", string(domain.ModeCash), "payment mode: Cash, Cheque or Online")
	addCmd.Flags().IntVar(&addVolunteers, "volunteers", 0, "volunteer headcount (refreshment entries)")

	suggestCmd.Flags().StringVar(&suggestType, "type", string(domain.Expense), "INCOME or EXPENSE")
}
