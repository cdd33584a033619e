package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	portssvc "github.com/stpaulnss/auditeasy/internal/core/ports/services"
	"github.com/stpaulnss/auditeasy/internal/dto"
)

// Column aliases seen across exported and hand-made sheets.
var (
	amountColumns = []string{"Amount (₹)", "Receipt (₹)", "Payment (₹)", "amount"}
	dateColumns   = []string{"Date", "date"}
	descColumns   = []string{"Description", "description"}
)

// importService maps loosely-typed spreadsheet rows into transaction records.
// Rows never fail: unparseable values fall back to defaults. Imported rows
// deliberately skip voucher sequencing; the ledger service appends them as-is.
type importService struct{}

// NewImportService creates a new ImportService.
func NewImportService() portssvc.ImportSvcFacade {
	return &importService{}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

func firstValue(row dto.ImportRow, columns []string) (string, bool) {
	for _, c := range columns {
		if v, ok := row[c]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// inferType prefers an explicit Type column; otherwise a positive receipt
// amount marks the row as income, and everything else is an expense.
func inferType(row dto.ImportRow) domain.TransactionType {
	if strings.EqualFold(strings.TrimSpace(row["Type"]), string(domain.Income)) {
		return domain.Income
	}
	if receipt, ok := row["Receipt (₹)"]; ok {
		if amt, err := decimal.NewFromString(strings.TrimSpace(receipt)); err == nil && amt.IsPositive() {
			return domain.Income
		}
	}
	return domain.Expense
}

// Normalize implements portssvc.ImportSvcFacade.
func (s *importService) Normalize(rows []dto.ImportRow, actor string) dto.ImportResult {
	importActor := actor + " (via Import)"
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	result := dto.ImportResult{
		Transactions: make([]domain.Transaction, 0, len(rows)),
	}

	for i, row := range rows {
		defaulted := false

		amount := decimal.Zero
		if raw, ok := firstValue(row, amountColumns); ok {
			parsed, err := decimal.NewFromString(raw)
			if err != nil || parsed.IsNegative() {
				defaulted = true
			} else {
				amount = parsed
			}
		} else {
			defaulted = true
		}

		date := today
		if raw, ok := firstValue(row, dateColumns); ok {
			parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
			if err != nil {
				defaulted = true
			} else {
				date = parsed
			}
		}

		description, ok := firstValue(row, descColumns)
		if !ok {
			description = "Imported Entry"
		}

		category := domain.CategoryRegular
		if strings.TrimSpace(row["Fund Category"]) == string(domain.CategorySpecialCamp) {
			category = domain.CategorySpecialCamp
		}

		head := domain.HeadMisc
		if raw := strings.TrimSpace(row["Account Head"]); domain.IsValidAccountHead(raw) {
			head = domain.AccountHead(raw)
		}

		voucher, ok := firstValue(row, []string{"Voucher/Receipt No", "voucherNumber"})
		if !ok {
			voucher = fmt.Sprintf("IMP-%d", i)
			defaulted = true
		}

		mode := domain.ModeCash
		switch domain.PaymentMode(strings.TrimSpace(row["Mode"])) {
		case domain.ModeCheque:
			mode = domain.ModeCheque
		case domain.ModeOnline:
			mode = domain.ModeOnline
		}

		if defaulted {
			result.DefaultedRows++
		}

		result.Transactions = append(result.Transactions, domain.Transaction{
			TransactionID: uuid.NewString(),
			Date:          date,
			Description:   description,
			Category:      category,
			AccountHead:   head,
			Type:          inferType(row),
			Amount:        amount,
			VoucherNumber: strings.ToUpper(voucher),
			PaymentMode:   mode,
			AddedBy:       actor,
			AuditTrail: []domain.AuditEntry{{
				Timestamp: now,
				Action:    domain.AuditCreated,
				Actor:     importActor,
			}},
		})
	}

	return result
}
