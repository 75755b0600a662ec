package config

import (
	"context"
	"errors"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser creates the bootstrap admin account when it is missing.
func EnsureAdminUser(ctx context.Context, adminRepo repository.AdminRepository, adminUser, adminPass string, logger *zap.Logger) error {
	if adminUser == "" || adminPass == "" {
		return errors.New("ADMIN_USER and ADMIN_PASS must be set")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	admin, err := adminRepo.GetAdminByUsername(ctx, adminUser)
	if err != nil {
		return err
	}
	if admin != nil {
		logger.Info("Admin user already exists", zap.String("username", adminUser))
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = &models.AdminAccount{
		ID:               primitive.NewObjectID(),
		Username:         adminUser,
		AccountType:      "admin",
		RegistrationDate: time.Now().Format(time.RFC3339),
		Password:         string(hashedPassword),
	}
	if err := adminRepo.SaveAdmin(ctx, admin); err != nil {
		return err
	}

	logger.Info("Default admin user created", zap.String("username", adminUser))
	return nil
}
