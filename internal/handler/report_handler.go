package handler

import (
	"errors"
	"net/http"

	"go-gin-event-booking/internal/service"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler 主辦方報表與通知
type ReportHandler struct {
	reports       service.ReportService
	notifications service.NotificationService
}

func NewReportHandler(reports service.ReportService, notifications service.NotificationService) *ReportHandler {
	return &ReportHandler{reports: reports, notifications: notifications}
}

func (h *ReportHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events/:id/summary", h.EventSummary)
		router.GET("notifications", h.Notifications)
	}
}

type NotificationQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

func (h *ReportHandler) EventSummary(c *gin.Context) {
	eventID, ok := ParamUUID(c, "id", "event")
	if !ok {
		return
	}

	summary, err := h.reports.EventSummary(c, eventID)
	if err != nil {
		h.handleError(c, err, "EventSummary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) Notifications(c *gin.Context) {
	var query NotificationQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	notifications, err := h.notifications.Recent(c, query.Limit)
	if err != nil {
		h.handleError(c, err, "Notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *ReportHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
