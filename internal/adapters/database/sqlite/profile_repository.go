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

// ProfileRepository persists the institution profile under its own key.
type ProfileRepository struct {
	store portsrepo.KVStore
}

// NewProfileRepository creates a new ProfileRepository over a KV store.
func NewProfileRepository(store portsrepo.KVStore) *ProfileRepository {
	return &ProfileRepository{store: store}
}

var _ portsrepo.ProfileRepository = (*ProfileRepository)(nil)

// LoadCollegeInfo implements portsrepo.ProfileRepository. A malformed stored
// value fails closed and loads as the zero profile.
func (r *ProfileRepository) LoadCollegeInfo(ctx context.Context) (domain.CollegeInfo, error) {
	value, found, err := r.store.Get(ctx, profileKey)
	if err != nil {
		return domain.CollegeInfo{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if !found {
		return domain.CollegeInfo{}, nil
	}

	var info domain.CollegeInfo
	if err := json.Unmarshal([]byte(value), &info); err != nil {
		appctx.GetLoggerFromCtx(ctx).Warn("Stored profile is malformed, treating as absent",
			slog.String("key", profileKey),
			slog.String("error", err.Error()))
		return domain.CollegeInfo{}, nil
	}
	return info, nil
}

// SaveCollegeInfo implements portsrepo.ProfileRepository.
func (r *ProfileRepository) SaveCollegeInfo(ctx context.Context, info domain.CollegeInfo) error {
	value, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := r.store.Set(ctx, profileKey, string(value)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
