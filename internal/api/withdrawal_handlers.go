package api

import (
	"fmt"
	"net/http"

	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	withdrawalService service.WithdrawalService
	logService        service.LogService
}

func NewWithdrawalHandler(withdrawalService service.WithdrawalService, logService service.LogService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalService: withdrawalService, logService: logService}
}

// WithdrawalRequest is the body of a withdrawal request. TransactionStatus is
// accepted for older clients and ignored.
type WithdrawalRequest struct {
	Email             string      `json:"email"`
	WithdrawMethod    string      `json:"withdrawMethod"`
	WithdrawalAccount string      `json:"withdrawalAccount"`
	Amount            interface{} `json:"amount" swaggertype:"number"`
	TransactionStatus string      `json:"transactionStatus,omitempty"`
}

type WithdrawalStatusRequest struct {
	Email             string      `json:"email"`
	TransactionID     string      `json:"transactionId"`
	NewStatus         string      `json:"newStatus"`
	Amount            interface{} `json:"amount,omitempty" swaggertype:"number"`
	WithdrawalAccount string      `json:"withdrawalAccount,omitempty"`
}

type FeePaymentRequest struct {
	Email         string      `json:"email"`
	WithdrawalID  string      `json:"withdrawalId"`
	Amount        interface{} `json:"amount" swaggertype:"number"`
	PaymentMethod string      `json:"paymentMethod"`
}

type FeeConfirmRequest struct {
	Email        string `json:"email"`
	WithdrawalID string `json:"withdrawalId"`
}

// @Summary Request a withdrawal
// @Description Records a pending_fee withdrawal for a KYC-verified user and emails the fee instructions
// @Tags Withdrawals
// @Accept json
// @Produce json
// @Param withdrawal body WithdrawalRequest true "Withdrawal data"
// @Success 201 {object} Response{data=service.WithdrawalReceipt}
// @Failure 400 {object} Response "Invalid JSON or amount"
// @Failure 404 {object} Response "User not found"
// @Failure 422 {object} Response "KYC verification required"
// @Failure 500 {object} Response
// @Router /withdrawals [post]
func (h *WithdrawalHandler) RequestWithdrawal(c *gin.Context) {
	var req WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	receipt, err := h.withdrawalService.RequestWithdrawal(c.Request.Context(), service.WithdrawalRequest{
		Email:             req.Email,
		WithdrawMethod:    req.WithdrawMethod,
		WithdrawalAccount: req.WithdrawalAccount,
		Amount:            req.Amount,
	})
	if err != nil {
		respondError(c, err, "An error occurred while requesting the withdrawal")
		return
	}

	audit(c, h.logService, req.Email, "WITHDRAWAL_REQUESTED",
		fmt.Sprintf("Withdrawal %s requested via %s", receipt.ID, req.WithdrawMethod),
		map[string]interface{}{"withdrawal_id": receipt.ID, "withdrawal_fee": receipt.WithdrawalFee})

	respond(c, http.StatusCreated, "Withdrawal request submitted", receipt)
}

// @Summary Submit a withdrawal fee payment
// @Description Records the fee payment method for a pending_fee withdrawal and alerts the admins
// @Tags Withdrawals
// @Accept json
// @Produce json
// @Param payment body FeePaymentRequest true "Fee payment"
// @Success 200 {object} Response{data=service.FeePaymentReceipt}
// @Failure 400 {object} Response
// @Failure 404 {object} Response "User or withdrawal not found"
// @Failure 409 {object} Response "Withdrawal is not awaiting a fee payment"
// @Failure 422 {object} Response "Fee amount does not match"
// @Router /withdrawals/fee [post]
func (h *WithdrawalHandler) SubmitFeePayment(c *gin.Context) {
	var req FeePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	receipt, err := h.withdrawalService.SubmitFeePayment(c.Request.Context(), service.FeePayment{
		Email:         req.Email,
		WithdrawalID:  req.WithdrawalID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err, "Failed to submit fee payment")
		return
	}

	audit(c, h.logService, req.Email, "WITHDRAWAL_FEE_SUBMITTED",
		fmt.Sprintf("Fee for withdrawal %s submitted via %s", req.WithdrawalID, req.PaymentMethod),
		map[string]interface{}{"withdrawal_id": req.WithdrawalID, "amount": receipt.Amount})

	respond(c, http.StatusOK, "Fee payment submitted", receipt)
}

// @Summary Confirm a withdrawal fee payment
// @Description Marks the fee as paid and moves the withdrawal to pending (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param confirmation body FeeConfirmRequest true "Withdrawal to confirm"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response
// @Failure 409 {object} Response "Withdrawal is not awaiting a fee payment"
// @Router /admin/withdrawals/fee/confirm [post]
func (h *WithdrawalHandler) ConfirmFeePayment(c *gin.Context) {
	var req FeeConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.withdrawalService.ConfirmFeePayment(c.Request.Context(), req.Email, req.WithdrawalID); err != nil {
		respondError(c, err, "Failed to confirm fee payment")
		return
	}

	audit(c, h.logService, req.Email, "WITHDRAWAL_FEE_CONFIRMED",
		fmt.Sprintf("Fee for withdrawal %s confirmed by %s", req.WithdrawalID, c.GetString("admin_username")), nil)

	respond(c, http.StatusOK, "Fee payment confirmed", nil)
}

// @Summary Update a withdrawal status
// @Description Applies an admin decision to a withdrawal. success debits the chosen balance once; terminal withdrawals cannot change again.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param update body WithdrawalStatusRequest true "Status update"
// @Success 200 {object} Response
// @Failure 400 {object} Response "Missing required fields"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "User or withdrawal record not found"
// @Failure 409 {object} Response "Withdrawal has already been finalized"
// @Failure 500 {object} Response "Failed to update withdrawal status"
// @Router /admin/withdrawals/status [post]
func (h *WithdrawalHandler) UpdateStatus(c *gin.Context) {
	var req WithdrawalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.withdrawalService.UpdateStatus(c.Request.Context(), service.StatusUpdate{
		Email:             req.Email,
		TransactionID:     req.TransactionID,
		NewStatus:         req.NewStatus,
		Amount:            req.Amount,
		WithdrawalAccount: req.WithdrawalAccount,
	})
	if err != nil {
		respondError(c, err, "Failed to update withdrawal status")
		return
	}

	audit(c, h.logService, req.Email, "WITHDRAWAL_STATUS_UPDATED",
		fmt.Sprintf("Withdrawal %s set to %s by %s", req.TransactionID, req.NewStatus, c.GetString("admin_username")),
		map[string]interface{}{"withdrawal_id": req.TransactionID, "status": req.NewStatus})

	respond(c, http.StatusOK, "Transaction status updated successfully", nil)
}

// @Summary Get withdrawal history
// @Description Returns the withdrawal history of a user
// @Tags Withdrawals
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} Response{data=[]models.WithdrawalEntry}
// @Failure 400 {object} Response
// @Failure 404 {object} Response "User not found"
// @Router /users/withdrawals [get]
func (h *WithdrawalHandler) GetHistory(c *gin.Context) {
	history, err := h.withdrawalService.GetHistory(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err, "Failed to retrieve withdrawals")
		return
	}
	respond(c, http.StatusOK, "Withdrawal history", history)
}
