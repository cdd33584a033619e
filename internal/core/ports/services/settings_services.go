package services

import (
	"context"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
)

// SettingsSvcFacade manages the institution profile.
type SettingsSvcFacade interface {
	// GetCollegeInfo returns the saved profile, or the built-in default when
	// nothing has been saved yet.
	GetCollegeInfo(ctx context.Context) (domain.CollegeInfo, error)
	UpdateCollegeInfo(ctx context.Context, info domain.CollegeInfo) error
}
