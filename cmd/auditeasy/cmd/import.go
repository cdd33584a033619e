package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stpaulnss/auditeasy/internal/adapters/spreadsheet"
)

var importCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Import transactions from a spreadsheet",
	Long: `Import reads the first sheet of a workbook and appends its rows to
the ledger. Rows with unparseable values fall back to defaults rather than
aborting the batch, and imported rows bypass voucher sequence validation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		rows, err := spreadsheet.ParseWorkbook(args[0])
		if err != nil {
			return err
		}

		result := svcs.Import.Normalize(rows, cfg.ActorEmail)
		if err := svcs.Ledger.AppendImported(opCtx(), result.Transactions); err != nil {
			return err
		}

		fmt.Printf("Imported %d transactions from %s\n", len(result.Transactions), args[0])
		if result.DefaultedRows > 0 {
			fmt.Printf("Warning: %d rows needed fallback values; review them in the ledger.\n", result.DefaultedRows)
		}
		return nil
	},
}
