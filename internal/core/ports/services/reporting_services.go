package services

import "github.com/stpaulnss/auditeasy/internal/core/domain"

// ReportingSvcFacade derives display-ready figures from a transaction
// snapshot. All methods are pure; stats are recomputed from scratch on every
// read so they always match the collection.
type ReportingSvcFacade interface {
	// Project filters by category (CategoryAll passes everything), orders
	// chronologically (ties keep insertion order) and attaches running
	// balances. When descending is true the already-computed sequence is
	// reversed for display; balances are unaffected.
	Project(transactions []domain.Transaction, filter domain.FundCategory, descending bool) []domain.LedgerLine

	// Aggregate computes the dashboard totals in a single pass.
	Aggregate(transactions []domain.Transaction) domain.DashboardStats

	// HeadSummaries sums receipts and payments per account head, omitting
	// heads with no activity.
	HeadSummaries(transactions []domain.Transaction, filter domain.FundCategory) []domain.HeadSummaryRow

	// UCSummary computes the utilization certificate figures for one fund
	// category.
	UCSummary(transactions []domain.Transaction, category domain.FundCategory) domain.UCSummary
}
