// Package repositories defines the persistence ports consumed by the core
// services. Adapters live under internal/adapters.
package repositories

import (
	"context"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
)

// KVStore is the minimal key-value capability the application persists into.
// The ledger uses exactly two keys: the transaction collection and the
// institution profile.
type KVStore interface {
	// Get returns the stored value for key. found is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// LedgerRepository loads and saves the full transaction collection.
// Load must fail closed: a malformed stored value is treated as absent,
// never as a load error.
type LedgerRepository interface {
	LoadTransactions(ctx context.Context) ([]domain.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// ProfileRepository loads and saves the institution profile.
type ProfileRepository interface {
	LoadCollegeInfo(ctx context.Context) (domain.CollegeInfo, error)
	SaveCollegeInfo(ctx context.Context, info domain.CollegeInfo) error
}
