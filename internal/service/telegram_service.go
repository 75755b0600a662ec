package service

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AdminAlerter delivers short operational messages to the admin team.
type AdminAlerter interface {
	AlertAdmins(message string) error
}

type telegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) (AdminAlerter, error) {
	if chatID == 0 {
		return nil, errors.New("invalid chat ID")
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, errors.New("failed to initialize Telegram bot: " + err.Error())
	}

	return &telegramService{bot: bot, chatID: chatID}, nil
}

func (s *telegramService) AlertAdmins(message string) error {
	if message == "" {
		return errors.New("message cannot be empty")
	}

	msg := tgbotapi.NewMessage(s.chatID, message)
	if _, err := s.bot.Send(msg); err != nil {
		return errors.New("failed to send Telegram message: " + err.Error())
	}
	return nil
}
