package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
)

// CreateTransactionRequest is the entry-workflow payload for a new receipt or
// payment. The ledger service validates it (including voucher sequencing)
// before anything is persisted.
type CreateTransactionRequest struct {
	Date           string                 `json:"date" validate:"required"` // YYYY-MM-DD
	Description    string                 `json:"description" validate:"required"`
	Category       domain.FundCategory    `json:"category" validate:"required"`
	AccountHead    domain.AccountHead     `json:"accountHead" validate:"required"`
	Type           domain.TransactionType `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount         decimal.Decimal        `json:"amount" validate:"required"`
	VoucherNumber  string                 `json:"voucherNumber"` // Empty means "use the suggested next number"
	PaymentMode    domain.PaymentMode     `json:"paymentMode" validate:"required,oneof=Cash Cheque Online"`
	VolunteerCount int                    `json:"volunteerCount" validate:"gte=0"`
}

// UpdateTransactionRequest carries the editable fields of a transaction.
// Nil fields are left unchanged. Every applied update appends exactly one
// audit trail entry.
type UpdateTransactionRequest struct {
	Date            *string                 `json:"date,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	Category        *domain.FundCategory    `json:"category,omitempty"`
	AccountHead     *domain.AccountHead     `json:"accountHead,omitempty"`
	Amount          *decimal.Decimal        `json:"amount,omitempty"`
	PaymentMode     *domain.PaymentMode     `json:"paymentMode,omitempty"`
	ClearedInBank   *bool                   `json:"clearedInBank,omitempty"`
	IsAuditVerified *bool                   `json:"isAuditVerified,omitempty"`
	VolunteerCount  *int                    `json:"volunteerCount,omitempty"`
	Type            *domain.TransactionType `json:"type,omitempty"`
}

// VoucherValidationResult is the outcome of checking a candidate voucher
// number against the existing collection. Duplicate and gap are independent;
// submission policy blocks on duplicates only.
type VoucherValidationResult struct {
	IsDuplicate bool   `json:"isDuplicate"`
	IsGap       bool   `json:"isGap"`
	Suggested   string `json:"suggested"`
}
