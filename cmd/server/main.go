package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/api"
	"github.com/mehrbod2002/capitalmarket/internal/config"
	"github.com/mehrbod2002/capitalmarket/internal/logger"
	"github.com/mehrbod2002/capitalmarket/internal/middleware"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
	"github.com/mehrbod2002/capitalmarket/internal/service"
	"github.com/mehrbod2002/capitalmarket/internal/ws"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// @title Capital Market API
// @version 1.0
// @description Withdrawals, plan purchases, KYC and admin back office.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		zlog.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	if err := repository.EnsureIndexes(ctx, client.Database(cfg.MongoDB)); err != nil {
		zlog.Fatal("Failed to create indexes", zap.Error(err))
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := ws.NewHub(zlog)
	go hub.Run(hubCtx)

	wsHandler := ws.NewWebSocketHandler(hub, zlog)

	var mailer service.Mailer
	if cfg.EmailUser != "" && cfg.EmailPass != "" {
		mailer = service.NewMailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.MailFrom)
	} else {
		zlog.Warn("EMAIL_USER or EMAIL_PASS not set, outgoing email disabled")
	}

	var alerter service.AdminAlerter
	if cfg.TelegramBotToken != "" && cfg.TelegramAdminChatID != 0 {
		alerter, err = service.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChatID)
		if err != nil {
			zlog.Warn("Telegram admin alerts disabled", zap.Error(err))
			alerter = nil
		}
	}

	notifier := service.NewNotifier(mailer, alerter, hub, zlog)

	userRepo := repository.NewUserRepository(client, cfg.MongoDB, "users")
	adminRepo := repository.NewAdminRepository(client, cfg.MongoDB, "admins")
	logRepo := repository.NewLogRepository(client, cfg.MongoDB, "logs")
	settingsRepo := repository.NewSettingsRepository(client, cfg.MongoDB, "settings")
	addressRepo := repository.NewAddressRepository(client, cfg.MongoDB, "addresses")

	if err := config.EnsureAdminUser(context.Background(), adminRepo, cfg.AdminUser, cfg.AdminPass, zlog); err != nil {
		zlog.Fatal("Failed to ensure admin user", zap.Error(err))
	}

	settingsService := service.NewSettingsService(settingsRepo)
	services := api.Services{
		Withdrawals: service.NewWithdrawalService(userRepo, addressRepo, settingsService, notifier),
		Plans:       service.NewPlanService(userRepo),
		Users:       service.NewUserService(userRepo),
		KYC:         service.NewKYCService(userRepo, settingsService, notifier, cfg.SupportEmail),
		Settings:    settingsService,
		Logs:        service.NewLogService(logRepo),
		Addresses:   service.NewAddressService(addressRepo),
		AdminRepo:   adminRepo,
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(zlog))

	api.SetupRoutes(r, cfg, services, wsHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	zlog.Info("Starting server",
		zap.String("addr", addr),
		zap.String("websocket", cfg.BaseURL+"/ws"),
		zap.String("swagger", cfg.BaseURL+"/swagger/index.html"),
	)

	if err := r.Run(addr); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
