package handler

import (
	"errors"
	"net/http"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.CatalogService
}

func NewEventHandler(service service.CatalogService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("categories", h.ListCategories)
		router.GET("events", h.List)
		router.GET("events/:id", h.Get)
	}
}

func (h *EventHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListCategories())
}

func (h *EventHandler) List(c *gin.Context) {
	var filter model.EventFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	events, err := h.service.ListEvents(c, filter)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	eventID, ok := ParamUUID(c, "id", "event")
	if !ok {
		return
	}

	event, err := h.service.GetEvent(c, eventID)
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
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
