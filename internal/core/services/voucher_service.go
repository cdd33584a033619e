package services

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	portssvc "github.com/stpaulnss/auditeasy/internal/core/ports/services"
	"github.com/stpaulnss/auditeasy/internal/dto"
)

const (
	incomePrefix  = "R-"
	expensePrefix = "V-"
)

// voucherService implements the voucher sequencer. It holds no state; both
// operations are pure over the supplied collection.
type voucherService struct{}

// NewVoucherService creates a new VoucherService.
func NewVoucherService() portssvc.VoucherSvcFacade {
	return &voucherService{}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// prefixFor maps a transaction type to its voucher book prefix: receipts are
// numbered R-, payment vouchers V-.
func prefixFor(txnType domain.TransactionType) string {
	if txnType == domain.Income {
		return incomePrefix
	}
	return expensePrefix
}

// numericSuffix extracts the sequence number from a voucher string, ignoring
// everything after the prefix that is not a digit. "V-01" and "V-1" parse to
// the same value. ok is false when no digits remain.
func numericSuffix(voucher, prefix string) (int, bool) {
	v := strings.ToUpper(strings.TrimSpace(voucher))
	if len(v) < len(prefix) {
		return 0, false
	}
	var digits strings.Builder
	for _, r := range v[len(prefix):] {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// maxSuffix returns the highest sequence number used by any voucher sharing
// the prefix (case-insensitive), or 0 when none exist.
func maxSuffix(existing []domain.Transaction, prefix string) int {
	maxNum := 0
	for _, t := range existing {
		if !strings.HasPrefix(strings.ToUpper(t.VoucherNumber), prefix) {
			continue
		}
		if n, ok := numericSuffix(t.VoucherNumber, prefix); ok && n > maxNum {
			maxNum = n
		}
	}
	return maxNum
}

// SuggestNext implements portssvc.VoucherSvcFacade.
func (s *voucherService) SuggestNext(txnType domain.TransactionType, existing []domain.Transaction) string {
	prefix := prefixFor(txnType)
	return fmt.Sprintf("%s%02d", prefix, maxSuffix(existing, prefix)+1)
}

// Validate implements portssvc.VoucherSvcFacade.
func (s *voucherService) Validate(candidate string, txnType domain.TransactionType, existing []domain.Transaction) dto.VoucherValidationResult {
	val := strings.ToUpper(strings.TrimSpace(candidate))
	if val == "" {
		return dto.VoucherValidationResult{}
	}

	result := dto.VoucherValidationResult{
		Suggested: s.SuggestNext(txnType, existing),
	}

	for _, t := range existing {
		if strings.ToUpper(t.VoucherNumber) == val {
			result.IsDuplicate = true
			break
		}
	}

	prefix := prefixFor(txnType)
	if n, ok := numericSuffix(val, prefix); ok {
		// The submitter skipped one or more sequence numbers.
		result.IsGap = n > maxSuffix(existing, prefix)+1
	}

	return result
}
