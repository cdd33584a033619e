package services

import (
	"github.com/stpaulnss/auditeasy/internal/core/domain"
	"github.com/stpaulnss/auditeasy/internal/dto"
)

// VoucherSvcFacade computes and validates voucher/receipt sequence numbers.
// Numbering is global per type prefix (R- / V-), regardless of fund category.
// Both operations are pure over the supplied collection.
type VoucherSvcFacade interface {
	// SuggestNext returns the next free number for the type's prefix,
	// zero-padded to at least two digits (e.g. "V-01").
	SuggestNext(txnType domain.TransactionType, existing []domain.Transaction) string

	// Validate normalizes the candidate (trim, uppercase) and reports
	// duplication and sequence gaps against the existing collection.
	// An empty candidate yields no flags. Calling Validate twice with the
	// same inputs yields identical results.
	Validate(candidate string, txnType domain.TransactionType, existing []domain.Transaction) dto.VoucherValidationResult
}
