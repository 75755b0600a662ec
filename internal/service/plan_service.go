package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlanPurchase struct {
	Email  string
	Plan   string
	Amount interface{}
}

type PlanService interface {
	PurchasePlan(ctx context.Context, req PlanPurchase) (*models.InvestmentEntry, error)
}

type planService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewPlanService(userRepo repository.UserRepository) PlanService {
	return &planService{userRepo: userRepo, now: time.Now}
}

// PurchasePlan moves amount from the trading balance into a new Activated
// package. Any previously Activated package is deactivated in the same write.
func (s *planService) PurchasePlan(ctx context.Context, req PlanPurchase) (*models.InvestmentEntry, error) {
	email := normalizeEmail(req.Email)
	plan := strings.TrimSpace(req.Plan)
	if email == "" || plan == "" {
		return nil, ErrMissingFields
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.TradingBalance < amount {
		return nil, ErrInsufficientBalance
	}

	entry := models.InvestmentEntry{
		ID:            primitive.NewObjectID().Hex(),
		Plan:          plan,
		InitializedAt: s.now().UTC(),
		Status:        models.PackageActivated,
		Amount:        amount,
	}
	err = s.userRepo.PurchasePlan(ctx, email, entry)
	if errors.Is(err, repository.ErrNotMatched) {
		// balance was spent between the read and the write
		return nil, ErrInsufficientBalance
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
