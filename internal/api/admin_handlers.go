package api

import (
	"net/http"

	"github.com/mehrbod2002/capitalmarket/internal/config"
	"github.com/mehrbod2002/capitalmarket/internal/middleware"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AdminHandler struct {
	adminRepo       repository.AdminRepository
	settingsService service.SettingsService
	logService      service.LogService
	cfg             *config.Config
}

func NewAdminHandler(adminRepo repository.AdminRepository, settingsService service.SettingsService, logService service.LogService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		adminRepo:       adminRepo,
		settingsService: settingsService,
		logService:      logService,
		cfg:             cfg,
	}
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// SettingsRequest updates the platform settings. Omitted fields keep their
// current value.
type SettingsRequest struct {
	KYCFee            *float64 `json:"kycFee,omitempty"`
	WithdrawalFeeRate *float64 `json:"withdrawalFeeRate,omitempty"`
}

// @Summary Admin login
// @Description Authenticates an admin user and returns a JWT token
// @Tags Admin
// @Accept json
// @Produce json
// @Param credentials body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} Response{data=TokenResponse}
// @Failure 400 {object} Response "Invalid JSON"
// @Failure 401 {object} Response "Invalid credentials"
// @Failure 500 {object} Response "Server error"
// @Router /admin/login [post]
func (h *AdminHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	admin, err := h.adminRepo.GetAdminByUsername(c.Request.Context(), req.Username)
	if err != nil {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "Failed to retrieve admin")
		return
	}
	if admin == nil || admin.AccountType != "admin" {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateAdminJWT(admin.Username, h.cfg)
	if err != nil {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	audit(c, h.logService, "", "ADMIN_LOGIN", "Admin "+admin.Username+" logged in", nil)

	respond(c, http.StatusOK, "Login successful", TokenResponse{Token: token})
}

// @Summary Get platform settings
// @Description Returns the KYC fee and withdrawal fee rate, falling back to defaults (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.Settings}
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response
// @Router /admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve settings")
		return
	}
	respond(c, http.StatusOK, "Settings", settings)
}

// @Summary Update platform settings
// @Description Sets the KYC fee and withdrawal fee rate (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body SettingsRequest true "Settings"
// @Success 200 {object} Response{data=models.Settings}
// @Failure 400 {object} Response "Invalid settings"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response
// @Router /admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	current, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve settings")
		return
	}
	kycFee, rate := current.KYCFee, current.WithdrawalFeeRate
	if req.KYCFee != nil {
		kycFee = *req.KYCFee
	}
	if req.WithdrawalFeeRate != nil {
		rate = *req.WithdrawalFeeRate
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), kycFee, rate)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}

	audit(c, h.logService, "", "SETTINGS_UPDATED", "Settings updated by "+c.GetString("admin_username"),
		map[string]interface{}{"kyc_fee": settings.KYCFee, "withdrawal_fee_rate": settings.WithdrawalFeeRate})

	respond(c, http.StatusOK, "Settings updated", settings)
}
