package api

import (
	"errors"
	"net/http"

	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidDecision),
		errors.Is(err, service.ErrInvalidSettings):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWithdrawalNotFound),
		errors.Is(err, service.ErrAddressesMissing):
		return http.StatusNotFound
	case errors.Is(err, service.ErrWithdrawalFinalized),
		errors.Is(err, service.ErrFeeNotDue),
		errors.Is(err, service.ErrKYCNotPending):
		return http.StatusConflict
	case errors.Is(err, service.ErrKYCRequired),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrFeeMismatch):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError maps a service error to its status. Unexpected errors are
// attached to the context for the request logger and hidden from the client.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		fail(c, status, fallback)
		return
	}
	fail(c, status, err.Error())
}

// audit records an action in the audit log. A failed write is reported to the
// request logger and never changes the response.
func audit(c *gin.Context, logs service.LogService, email, action, description string, metadata map[string]interface{}) {
	if logs == nil {
		return
	}
	if err := logs.LogAction(c.Request.Context(), email, action, description, c.ClientIP(), metadata); err != nil {
		_ = c.Error(err)
	}
}
