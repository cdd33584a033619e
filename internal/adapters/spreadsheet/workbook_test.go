package spreadsheet_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stpaulnss/auditeasy/internal/adapters/spreadsheet"
	"github.com/stpaulnss/auditeasy/internal/core/domain"
)

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExportLedger_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")

	txs := []domain.Transaction{
		{
			Date:          day("2024-05-15"),
			VoucherNumber: "R-01",
			Description:   "University grant installment",
			Category:      domain.CategoryRegular,
			AccountHead:   domain.HeadGrant,
			Type:          domain.Income,
			Amount:        decimal.NewFromInt(20000),
			PaymentMode:   domain.ModeOnline,
			ClearedInBank: true,
		},
		{
			Date:            day("2024-05-20"),
			VoucherNumber:   "V-01",
			Description:     "Tea for road safety rally",
			Category:        domain.CategoryRegular,
			AccountHead:     domain.HeadRefreshment,
			Type:            domain.Expense,
			Amount:          decimal.NewFromInt(450),
			PaymentMode:     domain.ModeCash,
			IsAuditVerified: true,
			VolunteerCount:  18,
		},
	}
	summaries := []domain.HeadSummaryRow{
		{AccountHead: domain.HeadGrant, Receipts: decimal.NewFromInt(20000), Net: decimal.NewFromInt(20000)},
	}

	require.NoError(t, spreadsheet.ExportLedger(txs, summaries, path))

	rows, err := spreadsheet.ParseWorkbook(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	grant := rows[0]
	assert.Equal(t, "2024-05-15", grant["Date"])
	assert.Equal(t, "R-01", grant["Voucher/Receipt No"])
	assert.Equal(t, "20000", grant["Receipt (₹)"])
	assert.Equal(t, "Yes", grant["Bank Cleared"])
	assert.Equal(t, "Pending", grant["Audit Verified"])
	assert.Equal(t, "N/A", grant["Attendance Ref"])

	tea := rows[1]
	assert.Equal(t, "450", tea["Payment (₹)"])
	assert.Equal(t, "Verified", tea["Audit Verified"])
	assert.Equal(t, "18", tea["Attendance Ref"])
	assert.Equal(t, string(domain.HeadRefreshment), tea["Account Head"])

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.ElementsMatch(t, []string{"Detailed Ledger", "Summary Account"}, f.GetSheetList())

	head, err := f.GetCellValue("Summary Account", "A2")
	require.NoError(t, err)
	assert.Equal(t, string(domain.HeadGrant), head)
}

func TestExportUC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uc.xlsx")

	info := domain.DefaultCollegeInfo()
	summary := domain.UCSummary{
		Category:         domain.CategoryRegular,
		OpeningBalance:   decimal.NewFromInt(1000),
		TotalReceipts:    decimal.NewFromInt(21000),
		TotalExpenditure: decimal.NewFromInt(4500),
		ClosingBalance:   decimal.NewFromInt(16500),
	}

	require.NoError(t, spreadsheet.ExportUC(info, summary, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Utilization Certificate"}, f.GetSheetList())

	title, err := f.GetCellValue("Utilization Certificate", "A1")
	require.NoError(t, err)
	assert.Equal(t, "UTILIZATION CERTIFICATE (UC)", title)

	closing, err := f.GetCellValue("Utilization Certificate", "B10")
	require.NoError(t, err)
	assert.Equal(t, "16500", closing)
}

func TestParseWorkbook_EmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := spreadsheet.ParseWorkbook(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
