package api

import (
	"net/http"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type KYCHandler struct {
	kycService service.KYCService
	logService service.LogService
}

func NewKYCHandler(kycService service.KYCService, logService service.LogService) *KYCHandler {
	return &KYCHandler{kycService: kycService, logService: logService}
}

type KYCSubmitRequest struct {
	FormData         models.PersonalDetails `json:"formData"`
	FrontIDSecureURL string                 `json:"frontIDSecureUrl"`
	BackIDSecureURL  string                 `json:"backIDSecureUrl"`
	Email            string                 `json:"email"`
	IDType           string                 `json:"idType"`
}

type KYCReviewRequest struct {
	Email    string `json:"email"`
	Decision string `json:"decision" enums:"approved,rejected"`
}

type KYCFeeResponse struct {
	KYCFee float64 `json:"kycFee"`
}

// @Summary Submit KYC documents
// @Description Stores the identity documents, marks verification pending and returns the KYC fee
// @Tags KYC
// @Accept json
// @Produce json
// @Param kyc body KYCSubmitRequest true "KYC submission"
// @Success 200 {object} Response{data=KYCFeeResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response "User not found"
// @Failure 500 {object} Response
// @Router /kyc [post]
func (h *KYCHandler) SubmitKYC(c *gin.Context) {
	var req KYCSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	fee, err := h.kycService.SubmitKYC(c.Request.Context(), service.KYCSubmission{
		Email:           req.Email,
		IDType:          req.IDType,
		FrontIDURL:      req.FrontIDSecureURL,
		BackIDURL:       req.BackIDSecureURL,
		PersonalDetails: req.FormData,
	})
	if err != nil {
		respondError(c, err, "An error occurred while submitting KYC")
		return
	}

	audit(c, h.logService, req.Email, "KYC_SUBMITTED", "KYC documents submitted ("+req.IDType+")", nil)

	respond(c, http.StatusOK, "KYC submitted successfully", KYCFeeResponse{KYCFee: fee})
}

// @Summary Review a KYC submission
// @Description Approves or rejects a pending KYC submission and notifies the user (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body KYCReviewRequest true "Decision"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "User not found"
// @Failure 409 {object} Response "No pending KYC submission"
// @Router /admin/kyc/review [post]
func (h *KYCHandler) ReviewKYC(c *gin.Context) {
	var req KYCReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.kycService.ReviewKYC(c.Request.Context(), req.Email, req.Decision); err != nil {
		respondError(c, err, "Failed to review KYC")
		return
	}

	audit(c, h.logService, req.Email, "KYC_REVIEWED", "KYC "+req.Decision+" by "+c.GetString("admin_username"), nil)

	respond(c, http.StatusOK, "KYC "+req.Decision, nil)
}
