package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
	"github.com/mehrbod2002/capitalmarket/internal/templates"

	"github.com/google/uuid"
)

type KYCSubmission struct {
	Email           string
	IDType          string
	FrontIDURL      string
	BackIDURL       string
	PersonalDetails models.PersonalDetails
}

type KYCService interface {
	SubmitKYC(ctx context.Context, req KYCSubmission) (float64, error)
	ReviewKYC(ctx context.Context, email, decision string) error
}

type kycService struct {
	userRepo     repository.UserRepository
	settings     SettingsService
	notifier     *Notifier
	supportEmail string
	now          func() time.Time
}

func NewKYCService(userRepo repository.UserRepository, settings SettingsService, notifier *Notifier, supportEmail string) KYCService {
	return &kycService{
		userRepo:     userRepo,
		settings:     settings,
		notifier:     notifier,
		supportEmail: supportEmail,
		now:          time.Now,
	}
}

// SubmitKYC stores the documents, resets verification to pending and returns
// the fee the user owes.
func (s *kycService) SubmitKYC(ctx context.Context, req KYCSubmission) (float64, error) {
	email := normalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.FrontIDURL) == "" {
		return 0, ErrMissingFields
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return 0, err
	}

	data := &models.KYCData{
		PersonalDetails: req.PersonalDetails,
		IDType:          req.IDType,
		FrontIDURL:      req.FrontIDURL,
		BackIDURL:       req.BackIDURL,
		SubmittedAt:     s.now().UTC(),
	}
	err = s.userRepo.SubmitKYC(ctx, email, data, settings.KYCFee)
	if errors.Is(err, repository.ErrNotMatched) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}

	if s.supportEmail != "" {
		mail, err := templates.KYCSubmitted(templates.KYCSubmittedData{
			Email:       email,
			FirstName:   data.PersonalDetails.FirstName,
			LastName:    data.PersonalDetails.LastName,
			Country:     data.PersonalDetails.Country,
			IDType:      data.IDType,
			FrontIDURL:  data.FrontIDURL,
			BackIDURL:   data.BackIDURL,
			KYCFee:      settings.KYCFee,
			SubmittedAt: data.SubmittedAt,
		})
		if err != nil {
			s.notifier.RenderFailed("kyc_submitted", err)
		} else {
			s.notifier.SendMail(s.supportEmail, mail)
		}
	}
	return settings.KYCFee, nil
}

func (s *kycService) ReviewKYC(ctx context.Context, email, decision string) error {
	email = normalizeEmail(email)
	if email == "" || decision == "" {
		return ErrMissingFields
	}

	status := models.KYCStatus(decision)
	var message string
	switch status {
	case models.KYCStatusApproved:
		message = "Your identity verification has been approved. You can now request withdrawals."
	case models.KYCStatusRejected:
		message = "Your identity verification was rejected. Please contact Customer Support."
	default:
		return ErrInvalidDecision
	}

	n := models.Notification{
		ID:      uuid.New().String(),
		Method:  string(status),
		Type:    "kyc",
		Message: message,
		Date:    s.now().UnixMilli(),
	}
	err := s.userRepo.ReviewKYC(ctx, email, status, n)
	if errors.Is(err, repository.ErrNotMatched) {
		user, lookupErr := s.userRepo.GetUserByEmail(ctx, email)
		if lookupErr != nil {
			return lookupErr
		}
		if user == nil {
			return ErrUserNotFound
		}
		return ErrKYCNotPending
	}
	if err != nil {
		return err
	}

	s.notifier.Push(email, &n)
	return nil
}
