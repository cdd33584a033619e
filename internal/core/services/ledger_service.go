package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stpaulnss/auditeasy/internal/apperrors"
	"github.com/stpaulnss/auditeasy/internal/core/domain"
	portsrepo "github.com/stpaulnss/auditeasy/internal/core/ports/repositories"
	portssvc "github.com/stpaulnss/auditeasy/internal/core/ports/services"
	"github.com/stpaulnss/auditeasy/internal/dto"
	"github.com/stpaulnss/auditeasy/internal/platform/appctx"
)

var (
	ErrFutureDate         = errors.New("future dated transactions are not allowed by audit norms")
	ErrDescriptionMissing = errors.New("transaction description is required")
	ErrZeroAmount         = errors.New("transaction amount must be greater than zero")
	ErrDuplicateVoucher   = errors.New("duplicate voucher number detected")
	ErrBadDate            = errors.New("date must be in YYYY-MM-DD format")
)

const dateLayout = "2006-01-02"

// ledgerService owns the transaction collection: it is the only component
// that mutates it. Each committed mutation is persisted before returning and
// appends to the record's audit trail.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	voucherSvc portssvc.VoucherSvcFacade
	validate   *validator.Validate
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, voucherSvc portssvc.VoucherSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		voucherSvc: voucherSvc,
		validate:   validator.New(),
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// actorFrom resolves the acting user for audit stamping.
func actorFrom(ctx context.Context) string {
	if actor, ok := appctx.GetActorFromCtx(ctx); ok {
		return actor
	}
	return "system"
}

// ListTransactions implements portssvc.LedgerSvcFacade.
func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.ledgerRepo.LoadTransactions(ctx)
}

// CreateTransaction implements portssvc.LedgerSvcFacade.
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrBadDate)
	}
	if date.After(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrFutureDate)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrDescriptionMissing)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrZeroAmount)
	}

	existing, err := s.ledgerRepo.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	voucher := strings.ToUpper(strings.TrimSpace(req.VoucherNumber))
	if voucher == "" {
		voucher = s.voucherSvc.SuggestNext(req.Type, existing)
	}
	check := s.voucherSvc.Validate(voucher, req.Type, existing)
	if check.IsDuplicate {
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrDuplicate, ErrDuplicateVoucher.Error(), voucher)
	}
	if check.IsGap {
		// A gap is a warning for the physical voucher book, not a blocker.
		s.LogWarn(ctx, "Voucher sequence gap detected",
			slog.String("voucher", voucher),
			slog.String("suggested", check.Suggested))
	}

	actor := actorFrom(ctx)
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		Date:           date,
		Description:    req.Description,
		Category:       req.Category,
		AccountHead:    req.AccountHead,
		Type:           req.Type,
		Amount:         req.Amount,
		VoucherNumber:  voucher,
		PaymentMode:    req.PaymentMode,
		VolunteerCount: req.VolunteerCount,
		AddedBy:        actor,
		AuditTrail: []domain.AuditEntry{{
			Timestamp: now,
			Action:    domain.AuditCreated,
			Actor:     actor,
		}},
	}

	existing = append(existing, txn)
	if err := s.ledgerRepo.SaveTransactions(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("voucher", txn.VoucherNumber),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// UpdateTransaction implements portssvc.LedgerSvcFacade.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.ledgerRepo.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	idx := indexOf(existing, transactionID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}

	old := existing[idx]
	updated := old

	if req.Date != nil {
		date, err := time.ParseInLocation(dateLayout, *req.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrBadDate)
		}
		updated.Date = date
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrDescriptionMissing)
		}
		updated.Description = *req.Description
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.AccountHead != nil {
		updated.AccountHead = *req.AccountHead
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrZeroAmount)
		}
		updated.Amount = *req.Amount
	}
	if req.PaymentMode != nil {
		updated.PaymentMode = *req.PaymentMode
	}
	if req.ClearedInBank != nil {
		updated.ClearedInBank = *req.ClearedInBank
	}
	if req.IsAuditVerified != nil {
		updated.IsAuditVerified = *req.IsAuditVerified
	}
	if req.VolunteerCount != nil {
		updated.VolunteerCount = *req.VolunteerCount
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}

	// One trail entry per update call. Verification changes outrank bank
	// status changes, which outrank generic edits.
	action := domain.AuditModified
	switch {
	case old.IsAuditVerified != updated.IsAuditVerified:
		action = domain.AuditVerified
	case old.ClearedInBank != updated.ClearedInBank:
		action = domain.AuditBankChanged
	}

	trail := make([]domain.AuditEntry, len(old.AuditTrail), len(old.AuditTrail)+1)
	copy(trail, old.AuditTrail)
	updated.AuditTrail = append(trail, domain.AuditEntry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Actor:     actorFrom(ctx),
	})

	existing[idx] = updated
	if err := s.ledgerRepo.SaveTransactions(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("audit_action", string(action)))
	return &updated, nil
}

// DeleteTransaction implements portssvc.LedgerSvcFacade.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	existing, err := s.ledgerRepo.LoadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	idx := indexOf(existing, transactionID)
	if idx < 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	if existing[idx].IsAuditVerified {
		return fmt.Errorf("%w: transaction %s is audit verified; un-verify it first", apperrors.ErrLocked, transactionID)
	}

	existing = append(existing[:idx], existing[idx+1:]...)
	if err := s.ledgerRepo.SaveTransactions(ctx, existing); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// SetAuditVerified implements portssvc.LedgerSvcFacade.
func (s *ledgerService) SetAuditVerified(ctx context.Context, transactionID string, verified bool) (*domain.Transaction, error) {
	return s.UpdateTransaction(ctx, transactionID, dto.UpdateTransactionRequest{IsAuditVerified: &verified})
}

// SetBankCleared implements portssvc.LedgerSvcFacade.
func (s *ledgerService) SetBankCleared(ctx context.Context, transactionID string, cleared bool) (*domain.Transaction, error) {
	return s.UpdateTransaction(ctx, transactionID, dto.UpdateTransactionRequest{ClearedInBank: &cleared})
}

// AppendImported implements portssvc.LedgerSvcFacade.
func (s *ledgerService) AppendImported(ctx context.Context, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	existing, err := s.ledgerRepo.LoadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	existing = append(existing, transactions...)
	if err := s.ledgerRepo.SaveTransactions(ctx, existing); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	s.LogInfo(ctx, "Imported transactions appended", slog.Int("count", len(transactions)))
	return nil
}

func indexOf(transactions []domain.Transaction, transactionID string) int {
	for i, t := range transactions {
		if t.TransactionID == transactionID {
			return i
		}
	}
	return -1
}
