package service

import (
	"context"
	"testing"

	"github.com/mehrbod2002/capitalmarket/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	users := newMemUserRepo(&models.User{
		Email:          "jane@example.com",
		Name:           "Jane",
		Phone:          "555-0100",
		TradingBalance: 100,
		TotalWon:       7,
	})
	svc := NewUserService(users)

	name := "Jane Doe"
	verified := true
	u, err := svc.UpdateProfile(context.Background(), ProfileInput{
		Email:          "JANE@example.com",
		Name:           &name,
		IsVerified:     &verified,
		TradingBalance: "12.5",
		TotalDeposited: 300,
		TotalLoss:      "abc",
		PlanBonus:      "",
		Trade:          nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "555-0100", u.Phone)
	assert.True(t, u.IsVerified)
	assert.Equal(t, 12.5, u.TradingBalance)
	assert.Equal(t, 300.0, u.TotalDeposited)
	assert.Zero(t, u.TotalLoss)
	assert.Zero(t, u.PlanBonus)
	assert.Zero(t, u.TotalWon)
	assert.Zero(t, u.Trade)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newMemUserRepo())

	_, err := svc.UpdateProfile(context.Background(), ProfileInput{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UpdateProfile(context.Background(), ProfileInput{})
	assert.ErrorIs(t, err, ErrMissingFields)
}
