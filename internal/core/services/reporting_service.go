package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	portssvc "github.com/stpaulnss/auditeasy/internal/core/ports/services"
)

// reportingService derives running balances and aggregate statistics from a
// transaction snapshot. It holds no state and never mutates its input.
type reportingService struct{}

// NewReportingService creates a new ReportingService.
func NewReportingService() portssvc.ReportingSvcFacade {
	return &reportingService{}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func filterByCategory(transactions []domain.Transaction, filter domain.FundCategory) []domain.Transaction {
	if filter == domain.CategoryAll || filter == "" {
		return append([]domain.Transaction(nil), transactions...)
	}
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Category == filter {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Project implements portssvc.ReportingSvcFacade.
func (s *reportingService) Project(transactions []domain.Transaction, filter domain.FundCategory, descending bool) []domain.LedgerLine {
	filtered := filterByCategory(transactions, filter)

	// Stable sort: same-day entries keep insertion order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	lines := make([]domain.LedgerLine, len(filtered))
	balance := decimal.Zero
	for i, t := range filtered {
		balance = balance.Add(t.SignedAmount())
		lines[i] = domain.LedgerLine{Transaction: t, RunningBalance: balance}
	}

	if descending {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return lines
}

// Aggregate implements portssvc.ReportingSvcFacade.
func (s *reportingService) Aggregate(transactions []domain.Transaction) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
		RegularSpent: decimal.Zero,
		CampSpent:    decimal.Zero,
		CashInHand:   decimal.Zero,
		CashAtBank:   decimal.Zero,
	}

	for _, t := range transactions {
		if t.Type == domain.Income {
			stats.TotalIncome = stats.TotalIncome.Add(t.Amount)
			if t.IsCash() {
				stats.CashInHand = stats.CashInHand.Add(t.Amount)
			} else {
				stats.CashAtBank = stats.CashAtBank.Add(t.Amount)
			}
			continue
		}

		stats.TotalExpense = stats.TotalExpense.Add(t.Amount)
		switch t.Category {
		case domain.CategoryRegular:
			stats.RegularSpent = stats.RegularSpent.Add(t.Amount)
		case domain.CategorySpecialCamp:
			stats.CampSpent = stats.CampSpent.Add(t.Amount)
		}
		if t.IsCash() {
			stats.CashInHand = stats.CashInHand.Sub(t.Amount)
		} else {
			stats.CashAtBank = stats.CashAtBank.Sub(t.Amount)
		}
	}

	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats
}

// HeadSummaries implements portssvc.ReportingSvcFacade.
func (s *reportingService) HeadSummaries(transactions []domain.Transaction, filter domain.FundCategory) []domain.HeadSummaryRow {
	filtered := filterByCategory(transactions, filter)

	rows := make([]domain.HeadSummaryRow, 0, len(domain.AccountHeads()))
	for _, head := range domain.AccountHeads() {
		receipts := decimal.Zero
		payments := decimal.Zero
		for _, t := range filtered {
			if t.AccountHead != head {
				continue
			}
			if t.Type == domain.Income {
				receipts = receipts.Add(t.Amount)
			} else {
				payments = payments.Add(t.Amount)
			}
		}
		if receipts.IsZero() && payments.IsZero() {
			continue
		}
		rows = append(rows, domain.HeadSummaryRow{
			AccountHead: head,
			Receipts:    receipts,
			Payments:    payments,
			Net:         receipts.Sub(payments),
		})
	}
	return rows
}

// UCSummary implements portssvc.ReportingSvcFacade.
func (s *reportingService) UCSummary(transactions []domain.Transaction, category domain.FundCategory) domain.UCSummary {
	filtered := filterByCategory(transactions, category)

	opening := decimal.Zero
	for _, t := range filtered {
		if t.AccountHead == domain.HeadOpeningBal {
			opening = t.Amount
			break
		}
	}

	receipts := decimal.Zero
	expenditure := decimal.Zero
	for _, t := range filtered {
		if t.Type == domain.Income {
			receipts = receipts.Add(t.Amount)
		} else {
			expenditure = expenditure.Add(t.Amount)
		}
	}

	return domain.UCSummary{
		Category:         category,
		OpeningBalance:   opening,
		TotalReceipts:    receipts,
		TotalExpenditure: expenditure,
		ClosingBalance:   receipts.Sub(expenditure),
	}
}
