package api

import (
	"net/http"

	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	logService  service.LogService
}

func NewUserHandler(userService service.UserService, logService service.LogService) *UserHandler {
	return &UserHandler{userService: userService, logService: logService}
}

// UpdateUserRequest is the full editable profile. Numeric fields may be sent
// as numbers or strings; blanks and garbage store 0.
type UpdateUserRequest struct {
	Email         string  `json:"email"`
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Password      *string `json:"password,omitempty"`
	WithdrawalPin *string `json:"withdrawalPin,omitempty"`
	TaxCodePin    *string `json:"taxCodePin,omitempty"`
	AutoTrades    *bool   `json:"autoTrades,omitempty"`
	IsVerified    *bool   `json:"isVerified,omitempty"`
	CustomMessage *string `json:"customMessage,omitempty"`
	Upgraded      *bool   `json:"upgraded,omitempty"`

	TradingBalance    interface{} `json:"tradingBalance" swaggertype:"number"`
	InvestmentBalance interface{} `json:"investmentBalance" swaggertype:"number"`
	TotalDeposited    interface{} `json:"totalDeposited" swaggertype:"number"`
	TotalWithdrawn    interface{} `json:"totalWithdrawn" swaggertype:"number"`
	TotalAssets       interface{} `json:"totalAssets" swaggertype:"number"`
	TotalWon          interface{} `json:"totalWon" swaggertype:"number"`
	TotalLoss         interface{} `json:"totalLoss" swaggertype:"number"`
	LastProfit        interface{} `json:"lastProfit" swaggertype:"number"`
	PlanBonus         interface{} `json:"planBonus" swaggertype:"number"`
	TradingProgress   interface{} `json:"tradingProgress" swaggertype:"number"`
	Trade             interface{} `json:"trade" swaggertype:"number"`
}

// @Summary Update a user profile
// @Description Overwrites a user's profile and balances (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UpdateUserRequest true "Profile"
// @Success 200 {object} Response{data=models.User}
// @Failure 400 {object} Response
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "User not found"
// @Failure 500 {object} Response "Internal Server Error"
// @Router /admin/users/update [post]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), service.ProfileInput{
		Email:             req.Email,
		Name:              req.Name,
		Phone:             req.Phone,
		Password:          req.Password,
		WithdrawalPin:     req.WithdrawalPin,
		TaxCodePin:        req.TaxCodePin,
		AutoTrades:        req.AutoTrades,
		IsVerified:        req.IsVerified,
		CustomMessage:     req.CustomMessage,
		Upgraded:          req.Upgraded,
		TradingBalance:    req.TradingBalance,
		InvestmentBalance: req.InvestmentBalance,
		TotalDeposited:    req.TotalDeposited,
		TotalWithdrawn:    req.TotalWithdrawn,
		TotalAssets:       req.TotalAssets,
		TotalWon:          req.TotalWon,
		TotalLoss:         req.TotalLoss,
		LastProfit:        req.LastProfit,
		PlanBonus:         req.PlanBonus,
		TradingProgress:   req.TradingProgress,
		Trade:             req.Trade,
	})
	if err != nil {
		respondError(c, err, "Internal Server Error")
		return
	}

	audit(c, h.logService, user.Email, "USER_UPDATED", "Profile updated by "+c.GetString("admin_username"), nil)

	respond(c, http.StatusOK, "User updated successfully", user)
}
