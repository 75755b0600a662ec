package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
	"github.com/mehrbod2002/capitalmarket/internal/templates"

	"github.com/google/uuid"
)

const dateAddedLayout = "January 2, 2006"

type WithdrawalRequest struct {
	Email             string
	WithdrawMethod    string
	WithdrawalAccount string
	Amount            interface{}
}

type WithdrawalReceipt struct {
	ID                string                   `json:"id"`
	Date              string                   `json:"date"`
	WithdrawalFee     float64                  `json:"withdrawalFee"`
	WithdrawalHistory []models.WithdrawalEntry `json:"withdrawalHistory"`
}

// StatusUpdate is an admin decision. Amount and WithdrawalAccount are
// optional and default to the values stored on the entry.
type StatusUpdate struct {
	Email             string
	TransactionID     string
	NewStatus         string
	Amount            interface{}
	WithdrawalAccount string
}

type FeePayment struct {
	Email         string
	WithdrawalID  string
	Amount        interface{}
	PaymentMethod string
}

type FeePaymentReceipt struct {
	WithdrawalID   string  `json:"withdrawalId"`
	Amount         float64 `json:"amount"`
	PaymentMethod  string  `json:"paymentMethod"`
	DepositAddress string  `json:"depositAddress,omitempty"`
}

type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*WithdrawalReceipt, error)
	SubmitFeePayment(ctx context.Context, req FeePayment) (*FeePaymentReceipt, error)
	ConfirmFeePayment(ctx context.Context, email, withdrawalID string) error
	UpdateStatus(ctx context.Context, req StatusUpdate) error
	GetHistory(ctx context.Context, email string) ([]models.WithdrawalEntry, error)
}

type withdrawalService struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	settings    SettingsService
	notifier    *Notifier
	now         func() time.Time
}

func NewWithdrawalService(userRepo repository.UserRepository, addressRepo repository.AddressRepository, settings SettingsService, notifier *Notifier) WithdrawalService {
	return &withdrawalService{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		settings:    settings,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *withdrawalService) RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*WithdrawalReceipt, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
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
	if !user.KYCEligible() {
		return nil, ErrKYCRequired
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	entry := models.WithdrawalEntry{
		ID:                uuid.New().String(),
		DateAdded:         s.now().Format(dateAddedLayout),
		WithdrawMethod:    req.WithdrawMethod,
		WithdrawalAccount: req.WithdrawalAccount,
		Amount:            amount,
		TransactionStatus: models.WithdrawalPendingFee,
		WithdrawalFee:     WithdrawalFee(amount, settings.WithdrawalFeeRate),
		FeePaid:           false,
	}

	updated, err := s.userRepo.AppendWithdrawal(ctx, email, entry)
	if errors.Is(err, repository.ErrNotMatched) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	mail, err := templates.WithdrawalFeeRequired(templates.WithdrawalFeeData{
		Name:           user.Name,
		Amount:         entry.Amount,
		WithdrawMethod: entry.WithdrawMethod,
		WithdrawalFee:  entry.WithdrawalFee,
		TransactionID:  entry.ID,
	})
	if err != nil {
		s.notifier.RenderFailed("withdrawal_fee", err)
	} else {
		s.notifier.SendMail(email, mail)
	}

	return &WithdrawalReceipt{
		ID:                entry.ID,
		Date:              entry.DateAdded,
		WithdrawalFee:     entry.WithdrawalFee,
		WithdrawalHistory: updated.WithdrawalHistory,
	}, nil
}

func (s *withdrawalService) SubmitFeePayment(ctx context.Context, req FeePayment) (*FeePaymentReceipt, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.WithdrawalID == "" || req.PaymentMethod == "" {
		return nil, ErrMissingFields
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	_, entry, err := s.findWithdrawal(ctx, email, req.WithdrawalID)
	if err != nil {
		return nil, err
	}
	if entry.TransactionStatus != models.WithdrawalPendingFee {
		return nil, ErrFeeNotDue
	}
	if !sameCents(amount, entry.WithdrawalFee) {
		return nil, ErrFeeMismatch
	}

	err = s.userRepo.SubmitWithdrawalFee(ctx, email, entry.ID, req.PaymentMethod, s.now())
	if errors.Is(err, repository.ErrNotMatched) {
		return nil, ErrFeeNotDue
	}
	if err != nil {
		return nil, err
	}

	receipt := &FeePaymentReceipt{
		WithdrawalID:  entry.ID,
		Amount:        entry.WithdrawalFee,
		PaymentMethod: req.PaymentMethod,
	}
	if s.addressRepo != nil {
		if addresses, err := s.addressRepo.GetAddresses(ctx); err == nil && addresses != nil {
			receipt.DepositAddress = addresses.For(req.PaymentMethod)
		}
	}

	s.notifier.AlertAdmins(fmt.Sprintf(
		"Withdrawal fee submitted\nUser: %s\nWithdrawal: %s\nFee: $%s via %s\nWithdrawal amount: $%s",
		email, entry.ID, formatAmount(entry.WithdrawalFee), req.PaymentMethod, formatAmount(entry.Amount),
	))

	return receipt, nil
}

func (s *withdrawalService) ConfirmFeePayment(ctx context.Context, email, withdrawalID string) error {
	email = normalizeEmail(email)
	if email == "" || withdrawalID == "" {
		return ErrMissingFields
	}

	_, entry, err := s.findWithdrawal(ctx, email, withdrawalID)
	if err != nil {
		return err
	}
	if entry.TransactionStatus != models.WithdrawalPendingFee {
		return ErrFeeNotDue
	}

	err = s.userRepo.ConfirmWithdrawalFee(ctx, email, withdrawalID)
	if errors.Is(err, repository.ErrNotMatched) {
		return ErrFeeNotDue
	}
	return err
}

func (s *withdrawalService) UpdateStatus(ctx context.Context, req StatusUpdate) error {
	email := normalizeEmail(req.Email)
	if email == "" || req.TransactionID == "" || req.NewStatus == "" {
		return ErrMissingFields
	}

	user, entry, err := s.findWithdrawal(ctx, email, req.TransactionID)
	if err != nil {
		return err
	}
	if entry.TransactionStatus.Terminal() {
		return ErrWithdrawalFinalized
	}

	amount := entry.Amount
	if req.Amount != nil {
		if amount, err = ParseAmount(req.Amount); err != nil {
			return err
		}
	}
	account := req.WithdrawalAccount
	if account == "" {
		account = entry.WithdrawalAccount
	}

	status := models.WithdrawalStatus(req.NewStatus)
	transition := models.WithdrawalTransition{
		TransactionID: entry.ID,
		NewStatus:     status,
		Amount:        amount,
	}
	switch {
	case status == models.WithdrawalSuccess:
		transition.BalanceField, _ = models.BalanceFieldFor(account)
		transition.Notification = s.notification("success",
			fmt.Sprintf("Your withdrawal of $%s has been successfully processed.", formatAmount(amount)))
	case status.IsFailure():
		transition.Notification = s.notification("failure",
			fmt.Sprintf("Your withdrawal of $%s has failed. Please contact Customer Support.", formatAmount(amount)))
	}

	err = s.userRepo.ApplyWithdrawalTransition(ctx, email, transition)
	if errors.Is(err, repository.ErrNotMatched) {
		return ErrWithdrawalFinalized
	}
	if err != nil {
		return err
	}

	s.notifier.Push(email, transition.Notification)
	if status == models.WithdrawalSuccess {
		method := entry.WithdrawMethod
		if method == "" {
			method = "N/A"
		}
		if account == "" {
			account = "N/A"
		}
		mail, err := templates.WithdrawalApproved(templates.WithdrawalApprovedData{
			Name:          user.Name,
			Amount:        amount,
			Method:        method,
			Account:       account,
			TransactionID: entry.ID,
			DateAdded:     entry.DateAdded,
		})
		if err != nil {
			s.notifier.RenderFailed("withdrawal_approved", err)
		} else {
			s.notifier.SendMail(email, mail)
		}
	}
	return nil
}

func (s *withdrawalService) GetHistory(ctx context.Context, email string) ([]models.WithdrawalEntry, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrMissingFields
	}
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.WithdrawalHistory == nil {
		return []models.WithdrawalEntry{}, nil
	}
	return user.WithdrawalHistory, nil
}

func (s *withdrawalService) findWithdrawal(ctx context.Context, email, withdrawalID string) (*models.User, *models.WithdrawalEntry, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	entry := user.Withdrawal(withdrawalID)
	if entry == nil {
		return nil, nil, ErrWithdrawalNotFound
	}
	return user, entry, nil
}

func (s *withdrawalService) notification(method, message string) *models.Notification {
	return &models.Notification{
		ID:      uuid.New().String(),
		Method:  method,
		Type:    "transaction",
		Message: message,
		Date:    s.now().UnixMilli(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
