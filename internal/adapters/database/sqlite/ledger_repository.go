package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	portsrepo "github.com/stpaulnss/auditeasy/internal/core/ports/repositories"
	"github.com/stpaulnss/auditeasy/internal/platform/appctx"
)

// Storage keys. The v3 suffix matches the stored-data generation; there is no
// migration logic, older generations load as empty.
const (
	ledgerKey  = "nss_transactions_v3"
	profileKey = "nss_college_v3"
)

// LedgerRepository persists the transaction collection as one JSON document
// under a single key.
type LedgerRepository struct {
	store portsrepo.KVStore
}

// NewLedgerRepository creates a new LedgerRepository over a KV store.
func NewLedgerRepository(store portsrepo.KVStore) *LedgerRepository {
	return &LedgerRepository{store: store}
}

var _ portsrepo.LedgerRepository = (*LedgerRepository)(nil)

// LoadTransactions implements portsrepo.LedgerRepository. A malformed stored
// value fails closed: it is logged and treated as an empty ledger.
func (r *LedgerRepository) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	value, found, err := r.store.Get(ctx, ledgerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if !found {
		return []domain.Transaction{}, nil
	}

	var transactions []domain.Transaction
	if err := json.Unmarshal([]byte(value), &transactions); err != nil {
		appctx.GetLoggerFromCtx(ctx).Warn("Stored ledger is malformed, treating as empty",
			slog.String("key", ledgerKey),
			slog.String("error", err.Error()))
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// SaveTransactions implements portsrepo.LedgerRepository.
func (r *LedgerRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	value, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to serialize transactions: %w", err)
	}
	if err := r.store.Set(ctx, ledgerKey, string(value)); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}
