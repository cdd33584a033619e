package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stpaulnss/auditeasy/internal/adapters/spreadsheet"
	"github.com/stpaulnss/auditeasy/internal/core/domain"
)

var (
	exportCategory string
	exportOut      string

	ucCategory string
	ucOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger and per-head summary to an xlsx workbook",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		ctx := opCtx()
		transactions, err := svcs.Ledger.ListTransactions(ctx)
		if err != nil {
			return err
		}

		filter := domain.FundCategory(exportCategory)
		lines := svcs.Reporting.Project(transactions, filter, false)
		filtered := make([]domain.Transaction, len(lines))
		for i, l := range lines {
			filtered[i] = l.Transaction
		}
		summaries := svcs.Reporting.HeadSummaries(transactions, filter)

		if err := spreadsheet.ExportLedger(filtered, summaries, exportOut); err != nil {
			return err
		}
		fmt.Printf("Wrote %d transactions to %s\n", len(filtered), exportOut)
		return nil
	},
}

var ucCmd = &cobra.Command{
	Use:   "uc",
	Short: "Export a utilization certificate for one fund category",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		ctx := opCtx()
		transactions, err := svcs.Ledger.ListTransactions(ctx)
		if err != nil {
			return err
		}
		info, err := svcs.Settings.GetCollegeInfo(ctx)
		if err != nil {
			return err
		}

		summary := svcs.Reporting.UCSummary(transactions, domain.FundCategory(ucCategory))
		if err := spreadsheet.ExportUC(info, summary, ucOut); err != nil {
			return err
		}
		fmt.Printf("Wrote utilization certificate for %s to %s\n", ucCategory, ucOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportCategory, "category", string(domain.CategoryAll), "fund category filter (or ALL)")
	exportCmd.Flags().StringVar(&exportOut, "out", "NSS_Audit_Sheet.xlsx", "output workbook path")

	ucCmd.Flags().StringVar(&ucCategory, "category", string(domain.CategoryRegular), "fund category")
	ucCmd.Flags().StringVar(&ucOut, "out", "UC_NSS.xlsx", "output workbook path")
}
