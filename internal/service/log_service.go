package service

import (
	"context"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
)

type LogService interface {
	LogAction(ctx context.Context, userEmail, action, description, ipAddress string, metadata map[string]interface{}) error
	GetAllLogs(ctx context.Context, page, limit int) ([]*models.LogEntry, error)
	GetLogsByUserEmail(ctx context.Context, email string, page, limit int) ([]*models.LogEntry, error)
}

type logService struct {
	logRepo repository.LogRepository
}

func NewLogService(logRepo repository.LogRepository) LogService {
	return &logService{logRepo: logRepo}
}

func (s *logService) LogAction(ctx context.Context, userEmail, action, description, ipAddress string, metadata map[string]interface{}) error {
	logEntry := &models.LogEntry{
		UserEmail:   userEmail,
		Action:      action,
		Description: description,
		IPAddress:   ipAddress,
		Metadata:    metadata,
	}
	return s.logRepo.SaveLog(ctx, logEntry)
}

func (s *logService) GetAllLogs(ctx context.Context, page, limit int) ([]*models.LogEntry, error) {
	page, limit = normalizePage(page, limit)
	return s.logRepo.GetAllLogs(ctx, page, limit)
}

func (s *logService) GetLogsByUserEmail(ctx context.Context, email string, page, limit int) ([]*models.LogEntry, error) {
	page, limit = normalizePage(page, limit)
	return s.logRepo.GetLogsByUserEmail(ctx, normalizeEmail(email), page, limit)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
