package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came into or left the unit fund.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// FundCategory is the budget silo a transaction draws from. Regular Activity
// and Special Camp balances are tracked independently for compliance reporting.
type FundCategory string

const (
	CategoryRegular     FundCategory = "Regular Activity"
	CategorySpecialCamp FundCategory = "Special Camp"
	CategoryOther       FundCategory = "Other"

	// CategoryAll is a ledger filter value only; it is never stored on a transaction.
	CategoryAll FundCategory = "ALL"
)

// AccountHead is the expenditure/income classification line used on
// utilization certificates and audit sheets.
type AccountHead string

const (
	HeadGrant       AccountHead = "Grant Received"
	HeadRefreshment AccountHead = "Refreshment/Tea"
	HeadTravel      AccountHead = "Traveling/Conveyance"
	HeadHonorarium  AccountHead = "Honorarium"
	HeadStationery  AccountHead = "Stationery/Postage"
	HeadMisc        AccountHead = "Miscellaneous/Contingency"
	HeadCampFood    AccountHead = "Camp Boarding/Lodging"
	HeadCampTrans   AccountHead = "Camp Transport"
	HeadOpeningBal  AccountHead = "Opening Balance"
)

// AccountHeads returns every recognised head, in certificate order.
func AccountHeads() []AccountHead {
	return []AccountHead{
		HeadGrant,
		HeadRefreshment,
		HeadTravel,
		HeadHonorarium,
		HeadStationery,
		HeadMisc,
		HeadCampFood,
		HeadCampTrans,
		HeadOpeningBal,
	}
}

// IsValidAccountHead reports whether s is one of the recognised heads.
func IsValidAccountHead(s string) bool {
	for _, h := range AccountHeads() {
		if string(h) == s {
			return true
		}
	}
	return false
}

// PaymentMode distinguishes cash-in-hand movements from bank movements.
type PaymentMode string

const (
	ModeCash   PaymentMode = "Cash"
	ModeCheque PaymentMode = "Cheque"
	ModeOnline PaymentMode = "Online"
)

// AuditAction identifies what kind of change an audit trail entry records.
type AuditAction string

const (
	AuditCreated     AuditAction = "Created"
	AuditModified    AuditAction = "Modified"
	AuditVerified    AuditAction = "Verified"
	AuditBankChanged AuditAction = "Bank Status Changed"
)

// AuditEntry is one immutable line of a transaction's audit trail.
// Entries are append-only and never reordered.
type AuditEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Action    AuditAction `json:"action"`
	Actor     string      `json:"actor"`
}

// Transaction is a single receipt or payment in the unit ledger.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary key (UUID), immutable
	Date            time.Time       `json:"date"`          // Calendar date; never after creation time
	Description     string          `json:"description"`   // Purpose narration, required
	Category        FundCategory    `json:"category"`
	AccountHead     AccountHead     `json:"accountHead"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`        // Non-negative; zero rejected at entry
	VoucherNumber   string          `json:"voucherNumber"` // R-<n> for income, V-<n> for expense; unique
	PaymentMode     PaymentMode     `json:"paymentMode"`
	ClearedInBank   bool            `json:"clearedInBank"`   // Meaningful for non-cash entries only
	IsAuditVerified bool            `json:"isAuditVerified"` // While true the record cannot be deleted
	VolunteerCount  int             `json:"volunteerCount,omitempty"`
	AddedBy         string          `json:"addedBy,omitempty"`
	AuditTrail      []AuditEntry    `json:"auditTrail"`
}

// SignedAmount returns the amount with the sign used in balance folds:
// positive for income, negative for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// IsCash reports whether the transaction moves cash in hand rather than bank money.
func (t Transaction) IsCash() bool {
	return t.PaymentMode == ModeCash
}

// CostPerHead returns the per-volunteer cost for refreshment-style entries.
// ok is false when no volunteer count was recorded.
func (t Transaction) CostPerHead() (decimal.Decimal, bool) {
	if t.VolunteerCount <= 0 {
		return decimal.Zero, false
	}
	return t.Amount.Div(decimal.NewFromInt(int64(t.VolunteerCount))), true
}
