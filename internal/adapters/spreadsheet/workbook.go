// Package spreadsheet writes audit workbooks and reads loosely-typed rows
// back from them. Column names are the fixed contract with the compliance
// office; everything else about the files is unspecified.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	"github.com/stpaulnss/auditeasy/internal/dto"
)

const (
	ledgerSheet  = "Detailed Ledger"
	summarySheet = "Summary Account"
	ucSheet      = "Utilization Certificate"

	dateLayout = "2006-01-02"
)

var ledgerHeader = []string{
	"Date",
	"Voucher/Receipt No",
	"Description",
	"Fund Category",
	"Account Head",
	"Mode",
	"Receipt (₹)",
	"Payment (₹)",
	"Bank Cleared",
	"Audit Verified",
	"Attendance Ref",
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ExportLedger writes the detailed ledger and the per-head summary to an xlsx
// workbook at path. The caller supplies an already-filtered collection and
// its head summaries.
func ExportLedger(transactions []domain.Transaction, summaries []domain.HeadSummaryRow, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return fmt.Errorf("failed to prepare workbook: %w", err)
	}
	if err := writeRow(f, ledgerSheet, 1, toAny(ledgerHeader)); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}

	for i, t := range transactions {
		receipt, payment := 0.0, 0.0
		if t.Type == domain.Income {
			receipt = t.Amount.InexactFloat64()
		} else {
			payment = t.Amount.InexactFloat64()
		}
		verified := "Pending"
		if t.IsAuditVerified {
			verified = "Verified"
		}
		attendance := any("N/A")
		if t.VolunteerCount > 0 {
			attendance = t.VolunteerCount
		}
		row := []any{
			t.Date.Format(dateLayout),
			t.VoucherNumber,
			t.Description,
			string(t.Category),
			string(t.AccountHead),
			string(t.PaymentMode),
			receipt,
			payment,
			yesNo(t.ClearedInBank),
			verified,
			attendance,
		}
		if err := writeRow(f, ledgerSheet, i+2, row); err != nil {
			return fmt.Errorf("failed to write ledger row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}
	summaryHeader := []any{"Account Head", "Total Receipts (₹)", "Total Payments (₹)", "Net Balance (₹)"}
	if err := writeRow(f, summarySheet, 1, summaryHeader); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for i, s := range summaries {
		row := []any{
			string(s.AccountHead),
			s.Receipts.InexactFloat64(),
			s.Payments.InexactFloat64(),
			s.Net.InexactFloat64(),
		}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// ExportUC writes a utilization certificate workbook for one fund category.
func ExportUC(info domain.CollegeInfo, summary domain.UCSummary, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ucSheet); err != nil {
		return fmt.Errorf("failed to prepare workbook: %w", err)
	}

	rows := [][]any{
		{"UTILIZATION CERTIFICATE (UC)"},
		{fmt.Sprintf("NSS Unit: %s, %s", info.Name, info.Address)},
		{"Unit Code:", info.UnitCode},
		{"Category:", string(summary.Category)},
		{},
		{"Particulars", "Amount (₹)", "Remarks"},
		{"Opening Balance", summary.OpeningBalance.InexactFloat64(), ""},
		{"Total Grants Received", summary.TotalReceipts.InexactFloat64(), ""},
		{"Total Expenditure Incurred", summary.TotalExpenditure.InexactFloat64(), ""},
		{"Closing Balance", summary.ClosingBalance.InexactFloat64(), ""},
		{},
		{"Certified that I have satisfied myself that the conditions on which the grants-in-aid was sanctioned have been duly fulfilled."},
	}
	for i, row := range rows {
		if err := writeRow(f, ucSheet, i+1, row); err != nil {
			return fmt.Errorf("failed to write certificate row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// ParseWorkbook reads the first sheet of an xlsx file into header-keyed rows
// for the import normalizer. Cells beyond the header width are ignored.
func ParseWorkbook(path string) ([]dto.ImportRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []dto.ImportRow{}, nil
	}

	header := rows[0]
	out := make([]dto.ImportRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := dto.ImportRow{}
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(cells) {
				row[name] = cells[i]
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
