package api

import (
	"net/http"

	"github.com/mehrbod2002/capitalmarket/docs"
	"github.com/mehrbod2002/capitalmarket/internal/config"
	"github.com/mehrbod2002/capitalmarket/internal/middleware"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
	"github.com/mehrbod2002/capitalmarket/internal/service"
	"github.com/mehrbod2002/capitalmarket/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services groups what the HTTP layer depends on.
type Services struct {
	Withdrawals service.WithdrawalService
	Plans       service.PlanService
	Users       service.UserService
	KYC         service.KYCService
	Settings    service.SettingsService
	Logs        service.LogService
	Addresses   service.AddressService
	AdminRepo   repository.AdminRepository
}

func SetupRoutes(r *gin.Engine, cfg *config.Config, svc Services, wsHandler *ws.WebSocketHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	withdrawalHandler := NewWithdrawalHandler(svc.Withdrawals, svc.Logs)
	planHandler := NewPlanHandler(svc.Plans, svc.Logs)
	userHandler := NewUserHandler(svc.Users, svc.Logs)
	kycHandler := NewKYCHandler(svc.KYC, svc.Logs)
	logHandler := NewLogHandler(svc.Logs)
	addressHandler := NewAddressHandler(svc.Addresses)
	adminHandler := NewAdminHandler(svc.AdminRepo, svc.Settings, svc.Logs, cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/swagger.json")))
	r.GET("/docs/swagger.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", docs.SwaggerJSON)
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/withdrawals", withdrawalHandler.RequestWithdrawal)
		v1.POST("/withdrawals/fee", withdrawalHandler.SubmitFeePayment)
		v1.GET("/users/withdrawals", withdrawalHandler.GetHistory)
		v1.POST("/plans/purchase", planHandler.PurchasePlan)
		v1.POST("/kyc", kycHandler.SubmitKYC)
		v1.GET("/addresses", addressHandler.GetAddresses)
		v1.POST("/admin/login", adminHandler.AdminLogin)

		admin := v1.Group("/admin").Use(middleware.AdminAuthMiddleware(cfg))
		{
			admin.POST("/withdrawals/status", withdrawalHandler.UpdateStatus)
			admin.POST("/withdrawals/fee/confirm", withdrawalHandler.ConfirmFeePayment)
			admin.POST("/users/update", userHandler.UpdateUser)
			admin.POST("/kyc/review", kycHandler.ReviewKYC)
			admin.GET("/settings", adminHandler.GetSettings)
			admin.PUT("/settings", adminHandler.UpdateSettings)
			admin.GET("/logs", logHandler.GetAllLogs)
			admin.GET("/logs/user/:email", logHandler.GetLogsByUser)
		}
	}

	if wsHandler != nil {
		r.GET("/ws", wsHandler.HandleConnection)
	}
}
