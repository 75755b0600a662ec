package api

import (
	"net/http"
	"strconv"

	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

// @Summary Get all logs
// @Description Retrieves the audit log, newest first (admin only)
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} Response{data=[]models.LogEntry}
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response "Failed to retrieve logs"
// @Router /admin/logs [get]
func (h *LogHandler) GetAllLogs(c *gin.Context) {
	page, limit := pagination(c)
	logs, err := h.logService.GetAllLogs(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err, "Failed to retrieve logs")
		return
	}
	respond(c, http.StatusOK, "Logs", logs)
}

// @Summary Get logs by user email
// @Description Retrieves audit entries for one user (admin only)
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} Response{data=[]models.LogEntry}
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response "Failed to retrieve logs"
// @Router /admin/logs/user/{email} [get]
func (h *LogHandler) GetLogsByUser(c *gin.Context) {
	page, limit := pagination(c)
	logs, err := h.logService.GetLogsByUserEmail(c.Request.Context(), c.Param("email"), page, limit)
	if err != nil {
		respondError(c, err, "Failed to retrieve logs")
		return
	}
	respond(c, http.StatusOK, "Logs", logs)
}
