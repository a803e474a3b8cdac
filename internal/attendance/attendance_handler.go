package attendance

import (
	"net/http"

	"github.com/Prateek11234/hrms/internal/shared/apperror"
	"github.com/Prateek11234/hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mark(c *gin.Context) {
	employeeID := c.Param("employee_id")
	h.logger.Debug("http mark attendance", zap.String("employee_id", employeeID))

	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http mark attendance decode failed", zap.Error(err))
		response.Error(c, http.StatusUnprocessableEntity, apperror.CodeInvalidInput, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) List(c *gin.Context) {
	employeeID := c.Param("employee_id")
	h.logger.Debug("http list attendance", zap.String("employee_id", employeeID))

	var q ListAttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http list attendance decode failed", zap.Error(err))
		response.Error(c, http.StatusUnprocessableEntity, apperror.CodeInvalidInput, "Invalid query parameters", nil)
		return
	}
	// camelCase spellings used by older clients
	if q.StartDate == "" {
		q.StartDate = c.Query("startDate")
	}
	if q.EndDate == "" {
		q.EndDate = c.Query("endDate")
	}

	resp, err := h.service.List(c.Request.Context(), employeeID, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
