package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	Address      string
	Port         int
	BaseURL      string
	MongoURI     string
	MongoDB      string
	AdminUser    string
	AdminPass    string
	JWTSecret    string
	SMTPHost     string
	SMTPPort     int
	EmailUser    string
	EmailPass    string
	MailFrom     string
	SupportEmail string

	TelegramBotToken    string
	TelegramAdminChatID int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "7000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, errors.New("invalid PORT value")
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		return nil, errors.New("invalid SMTP_PORT value")
	}

	var chatID int64
	if raw := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); raw != "" {
		chatID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("invalid TELEGRAM_ADMIN_CHAT_ID value")
		}
	}

	emailUser := os.Getenv("EMAIL_USER")

	return &Config{
		Env:                 getEnv("APP_ENV", "production"),
		Address:             getEnv("ADDRESS", "0.0.0.0"),
		Port:                port,
		BaseURL:             getEnv("BASE_URL", "http://localhost:"+portStr),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:             getEnv("MONGO_DB", "capitalmarket"),
		AdminUser:           getEnv("ADMIN_USER", "admin"),
		AdminPass:           getEnv("ADMIN_PASS", "admin"),
		JWTSecret:           getEnv("JWT_SECRET", "default_jwt_secret"),
		SMTPHost:            getEnv("SMTP_HOST", "smtp.hostinger.com"),
		SMTPPort:            smtpPort,
		EmailUser:           emailUser,
		EmailPass:           os.Getenv("EMAIL_PASS"),
		MailFrom:            getEnv("MAIL_FROM", "Future Capital Market <"+getEnv("SUPPORT_EMAIL", "support@futurecapital-market.com")+">"),
		SupportEmail:        getEnv("SUPPORT_EMAIL", "support@futurecapital-market.com"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAdminChatID: chatID,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
