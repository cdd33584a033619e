package services

import (
	"context"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	"github.com/stpaulnss/auditeasy/internal/dto"
)

// LedgerSvcFacade is the single mutation surface of the transaction store.
// Every committed mutation is persisted before the call returns and stamps
// the audit trail. The acting user is taken from the context.
type LedgerSvcFacade interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// CreateTransaction validates the submission policy (no future date, no
	// empty description, no zero amount, no duplicate voucher) and appends
	// the record with its initial Created trail entry. A sequence gap is
	// logged but does not block.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies the non-nil fields and appends exactly one
	// trail entry, choosing the action by priority: Verified, then
	// Bank Status Changed, then Modified.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes an unverified record. It fails with
	// apperrors.ErrLocked while the record is audit-verified.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// SetAuditVerified and SetBankCleared are the status toggles used from
	// the ledger view; both go through UpdateTransaction.
	SetAuditVerified(ctx context.Context, transactionID string, verified bool) (*domain.Transaction, error)
	SetBankCleared(ctx context.Context, transactionID string, cleared bool) (*domain.Transaction, error)

	// AppendImported bulk-appends normalized rows from the import boundary.
	// Imported records bypass voucher sequencing by design.
	AppendImported(ctx context.Context, transactions []domain.Transaction) error
}
