package service

import (
	"context"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, kycFee, withdrawalFeeRate float64) (*models.Settings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// GetSettings never returns nil settings: unset values fall back to the
// defaults.
func (s *settingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	stored, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings := models.DefaultSettings()
	if stored == nil {
		return settings, nil
	}
	if stored.KYCFee > 0 {
		settings.KYCFee = stored.KYCFee
	}
	if stored.WithdrawalFeeRate > 0 && stored.WithdrawalFeeRate < 1 {
		settings.WithdrawalFeeRate = stored.WithdrawalFeeRate
	}
	settings.UpdatedAt = stored.UpdatedAt
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, kycFee, withdrawalFeeRate float64) (*models.Settings, error) {
	if kycFee < 0 || withdrawalFeeRate <= 0 || withdrawalFeeRate >= 1 {
		return nil, ErrInvalidSettings
	}

	settings := &models.Settings{KYCFee: kycFee, WithdrawalFeeRate: withdrawalFeeRate}
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
