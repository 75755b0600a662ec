package service

import (
	"context"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
)

// ProfileInput carries an admin edit as received. Numeric fields accept
// numbers, numeric strings or nothing.
type ProfileInput struct {
	Email         string
	Name          *string
	Phone         *string
	Password      *string
	WithdrawalPin *string
	TaxCodePin    *string
	AutoTrades    *bool
	IsVerified    *bool
	CustomMessage *string
	Upgraded      *bool

	TradingBalance    interface{}
	InvestmentBalance interface{}
	TotalDeposited    interface{}
	TotalWithdrawn    interface{}
	TotalAssets       interface{}
	TotalWon          interface{}
	TotalLoss         interface{}
	LastProfit        interface{}
	PlanBonus         interface{}
	TradingProgress   interface{}
	Trade             interface{}
}

type UserService interface {
	UpdateProfile(ctx context.Context, in ProfileInput) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) UpdateProfile(ctx context.Context, in ProfileInput) (*models.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.UpdateProfile(ctx, email, profileUpdate(in))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func profileUpdate(in ProfileInput) *models.ProfileUpdate {
	return &models.ProfileUpdate{
		Name:          in.Name,
		Phone:         in.Phone,
		Password:      in.Password,
		WithdrawalPin: in.WithdrawalPin,
		TaxCodePin:    in.TaxCodePin,
		AutoTrades:    in.AutoTrades,
		IsVerified:    in.IsVerified,
		CustomMessage: in.CustomMessage,
		Upgraded:      in.Upgraded,

		TradingBalance:    EnsureNumeric(in.TradingBalance),
		InvestmentBalance: EnsureNumeric(in.InvestmentBalance),
		TotalDeposited:    EnsureNumeric(in.TotalDeposited),
		TotalWithdrawn:    EnsureNumeric(in.TotalWithdrawn),
		TotalAssets:       EnsureNumeric(in.TotalAssets),
		TotalWon:          EnsureNumeric(in.TotalWon),
		TotalLoss:         EnsureNumeric(in.TotalLoss),
		LastProfit:        EnsureNumeric(in.LastProfit),
		PlanBonus:         EnsureNumeric(in.PlanBonus),
		TradingProgress:   EnsureNumeric(in.TradingProgress),
		Trade:             EnsureNumeric(in.Trade),
	}
}
