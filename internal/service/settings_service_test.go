package service

import (
	"context"
	"testing"

	"github.com/mehrbod2002/capitalmarket/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(&memSettingsRepo{})

	s, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.KYCFee)
	assert.Equal(t, 0.10, s.WithdrawalFeeRate)
}

func TestGetSettingsMergesStoredValues(t *testing.T) {
	svc := NewSettingsService(&memSettingsRepo{settings: &models.Settings{KYCFee: 30}})

	s, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30.0, s.KYCFee)
	assert.Equal(t, 0.10, s.WithdrawalFeeRate)
}

func TestUpdateSettings(t *testing.T) {
	repo := &memSettingsRepo{}
	svc := NewSettingsService(repo)

	_, err := svc.UpdateSettings(context.Background(), 10, 1.5)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	_, err = svc.UpdateSettings(context.Background(), -1, 0.1)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Nil(t, repo.settings)

	s, err := svc.UpdateSettings(context.Background(), 15, 0.08)
	require.NoError(t, err)
	assert.Equal(t, 15.0, s.KYCFee)

	got, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.08, got.WithdrawalFeeRate)
}
