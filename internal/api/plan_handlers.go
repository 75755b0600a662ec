package api

import (
	"fmt"
	"net/http"

	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planService service.PlanService
	logService  service.LogService
}

func NewPlanHandler(planService service.PlanService, logService service.LogService) *PlanHandler {
	return &PlanHandler{planService: planService, logService: logService}
}

type PlanPurchaseRequest struct {
	Plan   string      `json:"plan"`
	Email  string      `json:"email"`
	Amount interface{} `json:"amount" swaggertype:"number"`
}

// @Summary Purchase an investment plan
// @Description Moves the amount from the trading balance into a new active package
// @Tags Plans
// @Accept json
// @Produce json
// @Param purchase body PlanPurchaseRequest true "Plan purchase"
// @Success 200 {object} Response{data=models.InvestmentEntry}
// @Failure 400 {object} Response "Invalid amount"
// @Failure 404 {object} Response "User not found"
// @Failure 422 {object} Response "Insufficient balance"
// @Failure 500 {object} Response "Failed to purchase plan"
// @Router /plans/purchase [post]
func (h *PlanHandler) PurchasePlan(c *gin.Context) {
	var req PlanPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.planService.PurchasePlan(c.Request.Context(), service.PlanPurchase{
		Email:  req.Email,
		Plan:   req.Plan,
		Amount: req.Amount,
	})
	if err != nil {
		respondError(c, err, "Failed to purchase plan")
		return
	}

	audit(c, h.logService, req.Email, "PLAN_PURCHASED",
		fmt.Sprintf("Purchased %s plan", entry.Plan),
		map[string]interface{}{"package_id": entry.ID, "amount": entry.Amount})

	respond(c, http.StatusOK, "plan added", entry)
}
