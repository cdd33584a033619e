package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	"github.com/stpaulnss/auditeasy/internal/core/services"
)

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func amt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestReportingService_Project(t *testing.T) {
	svc := services.NewReportingService()

	// Inserted out of chronological order on purpose.
	txs := []domain.Transaction{
		{TransactionID: "a", Date: day("2024-06-01"), Type: domain.Expense, Amount: amt(1000), Category: domain.CategoryRegular},
		{TransactionID: "b", Date: day("2024-05-01"), Type: domain.Expense, Amount: amt(300), Category: domain.CategoryRegular},
		{TransactionID: "c", Date: day("2024-05-15"), Type: domain.Income, Amount: amt(2000), Category: domain.CategoryRegular},
	}

	t.Run("running balances follow chronological order", func(t *testing.T) {
		lines := svc.Project(txs, domain.CategoryAll, false)
		require.Len(t, lines, 3)

		assert.Equal(t, "b", lines[0].TransactionID)
		assert.Equal(t, "c", lines[1].TransactionID)
		assert.Equal(t, "a", lines[2].TransactionID)

		assert.Equal(t, "-300", lines[0].RunningBalance.String())
		assert.Equal(t, "1700", lines[1].RunningBalance.String())
		assert.Equal(t, "700", lines[2].RunningBalance.String())
	})

	t.Run("descending order reverses display but not balances", func(t *testing.T) {
		lines := svc.Project(txs, domain.CategoryAll, true)
		require.Len(t, lines, 3)

		assert.Equal(t, "a", lines[0].TransactionID)
		assert.Equal(t, "700", lines[0].RunningBalance.String())
		assert.Equal(t, "-300", lines[2].RunningBalance.String())
	})

	t.Run("category filter restricts the fold", func(t *testing.T) {
		mixed := append(append([]domain.Transaction{}, txs...), domain.Transaction{
			TransactionID: "camp", Date: day("2024-05-20"), Type: domain.Expense, Amount: amt(5000), Category: domain.CategorySpecialCamp,
		})
		lines := svc.Project(mixed, domain.CategoryRegular, false)
		require.Len(t, lines, 3)
		assert.Equal(t, "700", lines[2].RunningBalance.String())
	})

	t.Run("same-day entries keep insertion order", func(t *testing.T) {
		sameDay := []domain.Transaction{
			{TransactionID: "first", Date: day("2024-04-01"), Type: domain.Income, Amount: amt(100)},
			{TransactionID: "second", Date: day("2024-04-01"), Type: domain.Expense, Amount: amt(40)},
		}
		lines := svc.Project(sameDay, domain.CategoryAll, false)
		require.Len(t, lines, 2)
		assert.Equal(t, "first", lines[0].TransactionID)
		assert.Equal(t, "100", lines[0].RunningBalance.String())
		assert.Equal(t, "60", lines[1].RunningBalance.String())
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		svc.Project(txs, domain.CategoryAll, false)
		assert.Equal(t, "a", txs[0].TransactionID)
	})
}

func TestReportingService_Aggregate(t *testing.T) {
	svc := services.NewReportingService()

	txs := []domain.Transaction{
		{Date: day("2024-05-15"), Type: domain.Income, Amount: amt(2000), Category: domain.CategoryRegular, PaymentMode: domain.ModeOnline},
		{Date: day("2024-05-01"), Type: domain.Expense, Amount: amt(300), Category: domain.CategoryRegular, PaymentMode: domain.ModeCash},
		{Date: day("2024-06-01"), Type: domain.Expense, Amount: amt(1000), Category: domain.CategorySpecialCamp, PaymentMode: domain.ModeCheque},
		{Date: day("2024-06-02"), Type: domain.Income, Amount: amt(500), Category: domain.CategoryRegular, PaymentMode: domain.ModeCash},
	}

	stats := svc.Aggregate(txs)

	assert.Equal(t, "2500", stats.TotalIncome.String())
	assert.Equal(t, "1300", stats.TotalExpense.String())
	assert.Equal(t, "1200", stats.Balance.String())
	assert.Equal(t, "300", stats.RegularSpent.String())
	assert.Equal(t, "1000", stats.CampSpent.String())
	assert.Equal(t, "200", stats.CashInHand.String())
	assert.Equal(t, "1000", stats.CashAtBank.String())
}

// The last chronological running balance must always equal the aggregate
// balance of the same filtered collection.
func TestReportingService_ProjectMatchesAggregate(t *testing.T) {
	svc := services.NewReportingService()

	collections := [][]domain.Transaction{
		{
			{Date: day("2024-05-01"), Type: domain.Expense, Amount: amt(300), Category: domain.CategoryRegular},
			{Date: day("2024-05-15"), Type: domain.Income, Amount: amt(2000), Category: domain.CategoryRegular},
			{Date: day("2024-06-01"), Type: domain.Expense, Amount: amt(1000), Category: domain.CategoryRegular},
		},
		{
			{Date: day("2024-01-10"), Type: domain.Income, Amount: amt(1), Category: domain.CategoryOther},
			{Date: day("2024-01-10"), Type: domain.Expense, Amount: amt(1), Category: domain.CategoryOther},
		},
		{
			{Date: day("2023-12-31"), Type: domain.Income, Amount: decimal.RequireFromString("99.95"), Category: domain.CategorySpecialCamp},
		},
	}

	for _, txs := range collections {
		lines := svc.Project(txs, domain.CategoryAll, false)
		require.NotEmpty(t, lines)
		stats := svc.Aggregate(txs)
		assert.True(t, lines[len(lines)-1].RunningBalance.Equal(stats.Balance),
			"final running balance %s != aggregate balance %s",
			lines[len(lines)-1].RunningBalance, stats.Balance)
	}
}

func TestReportingService_HeadSummaries(t *testing.T) {
	svc := services.NewReportingService()

	txs := []domain.Transaction{
		{Type: domain.Income, Amount: amt(5000), AccountHead: domain.HeadGrant, Category: domain.CategoryRegular},
		{Type: domain.Expense, Amount: amt(450), AccountHead: domain.HeadRefreshment, Category: domain.CategoryRegular},
		{Type: domain.Expense, Amount: amt(150), AccountHead: domain.HeadRefreshment, Category: domain.CategoryRegular},
	}

	rows := svc.HeadSummaries(txs, domain.CategoryAll)
	require.Len(t, rows, 2, "heads with no activity are omitted")

	assert.Equal(t, domain.HeadGrant, rows[0].AccountHead)
	assert.Equal(t, "5000", rows[0].Receipts.String())
	assert.Equal(t, domain.HeadRefreshment, rows[1].AccountHead)
	assert.Equal(t, "600", rows[1].Payments.String())
	assert.Equal(t, "-600", rows[1].Net.String())
}

func TestReportingService_UCSummary(t *testing.T) {
	svc := services.NewReportingService()

	txs := []domain.Transaction{
		{Type: domain.Income, Amount: amt(1000), AccountHead: domain.HeadOpeningBal, Category: domain.CategoryRegular},
		{Type: domain.Income, Amount: amt(20000), AccountHead: domain.HeadGrant, Category: domain.CategoryRegular},
		{Type: domain.Expense, Amount: amt(4500), AccountHead: domain.HeadTravel, Category: domain.CategoryRegular},
		{Type: domain.Expense, Amount: amt(9000), AccountHead: domain.HeadCampFood, Category: domain.CategorySpecialCamp},
	}

	summary := svc.UCSummary(txs, domain.CategoryRegular)

	assert.Equal(t, domain.CategoryRegular, summary.Category)
	assert.Equal(t, "1000", summary.OpeningBalance.String())
	assert.Equal(t, "21000", summary.TotalReceipts.String())
	assert.Equal(t, "4500", summary.TotalExpenditure.String())
	assert.Equal(t, "16500", summary.ClosingBalance.String())
}
