package domain

import "github.com/shopspring/decimal"

// LedgerLine is a transaction with its running balance attached, as shown in
// the institutional ledger view. Balances are always computed in chronological
// order; display order is presentation only.
type LedgerLine struct {
	Transaction
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// DashboardStats are the aggregate figures derived from the full collection on
// every read.
type DashboardStats struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
	RegularSpent decimal.Decimal `json:"regularSpent"`
	CampSpent    decimal.Decimal `json:"campSpent"`
	CashInHand   decimal.Decimal `json:"cashInHand"`
	CashAtBank   decimal.Decimal `json:"cashAtBank"`
}

// HeadSummaryRow is one line of the per-head summary sheet.
type HeadSummaryRow struct {
	AccountHead AccountHead     `json:"accountHead"`
	Receipts    decimal.Decimal `json:"receipts"`
	Payments    decimal.Decimal `json:"payments"`
	Net         decimal.Decimal `json:"net"`
}

// UCSummary holds the figures of a utilization certificate for one fund
// category and funding period.
type UCSummary struct {
	Category         FundCategory    `json:"category"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	TotalReceipts    decimal.Decimal `json:"totalReceipts"`
	TotalExpenditure decimal.Decimal `json:"totalExpenditure"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
}
