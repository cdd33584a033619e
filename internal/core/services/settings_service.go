package services

import (
	"context"
	"fmt"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	portsrepo "github.com/stpaulnss/auditeasy/internal/core/ports/repositories"
	portssvc "github.com/stpaulnss/auditeasy/internal/core/ports/services"
)

// settingsService manages the institution profile.
type settingsService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(profileRepo portsrepo.ProfileRepository) portssvc.SettingsSvcFacade {
	return &settingsService{profileRepo: profileRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetCollegeInfo implements portssvc.SettingsSvcFacade.
func (s *settingsService) GetCollegeInfo(ctx context.Context) (domain.CollegeInfo, error) {
	info, err := s.profileRepo.LoadCollegeInfo(ctx)
	if err != nil {
		return domain.CollegeInfo{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if info == (domain.CollegeInfo{}) {
		return domain.DefaultCollegeInfo(), nil
	}
	return info, nil
}

// UpdateCollegeInfo implements portssvc.SettingsSvcFacade.
func (s *settingsService) UpdateCollegeInfo(ctx context.Context, info domain.CollegeInfo) error {
	if err := s.profileRepo.SaveCollegeInfo(ctx, info); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	s.LogInfo(ctx, "Institution profile updated")
	return nil
}
