package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stpaulnss/auditeasy/internal/core/domain"
	portsrepo "github.com/stpaulnss/auditeasy/internal/core/ports/repositories"
	"github.com/stpaulnss/auditeasy/internal/core/services"
)

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

var _ portsrepo.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) LoadCollegeInfo(ctx context.Context) (domain.CollegeInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CollegeInfo), args.Error(1)
}

func (m *MockProfileRepository) SaveCollegeInfo(ctx context.Context, info domain.CollegeInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func TestSettingsService_GetCollegeInfo(t *testing.T) {
	t.Run("falls back to the default profile", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("LoadCollegeInfo", mock.Anything).Return(domain.CollegeInfo{}, nil)
		svc := services.NewSettingsService(repo)

		info, err := svc.GetCollegeInfo(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCollegeInfo(), info)
	})

	t.Run("returns the stored profile unchanged", func(t *testing.T) {
		stored := domain.CollegeInfo{Name: "Model College", Address: "Dombivli", UnitCode: "B-07"}
		repo := new(MockProfileRepository)
		repo.On("LoadCollegeInfo", mock.Anything).Return(stored, nil)
		svc := services.NewSettingsService(repo)

		info, err := svc.GetCollegeInfo(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, info)
	})
}

func TestSettingsService_UpdateCollegeInfo(t *testing.T) {
	updated := domain.CollegeInfo{Name: "Model College", Address: "Dombivli", UnitCode: "B-07"}
	repo := new(MockProfileRepository)
	repo.On("SaveCollegeInfo", mock.Anything, updated).Return(nil)
	svc := services.NewSettingsService(repo)

	require.NoError(t, svc.UpdateCollegeInfo(context.Background(), updated))
	repo.AssertExpectations(t)
}
