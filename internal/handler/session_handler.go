package handler

import (
	"errors"
	"net/http"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessions service.SessionService
	checkout service.CheckoutService
}

func NewSessionHandler(sessions service.SessionService, checkout service.CheckoutService) *SessionHandler {
	return &SessionHandler{sessions: sessions, checkout: checkout}
}

func (h *SessionHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("sessions", h.Start)
		router.GET("sessions/:id", h.Get)
		router.PUT("sessions/:id/ticket-type", h.SelectTicketType)
		router.PUT("sessions/:id/quantity", h.SetQuantity)
		router.DELETE("sessions/:id", h.Discard)
		router.POST("sessions/:id/checkout", h.Checkout)
		router.GET("confirmations/:session_id", h.TakeConfirmation)
	}
}

// StartSessionRequest 開始選票
type StartSessionRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

// SelectTicketTypeRequest 選擇票種
type SelectTicketTypeRequest struct {
	TicketTypeID string `json:"ticket_type_id" binding:"required"`
}

// SetQuantityRequest 0 也要交給 session 判斷，所以用指標
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	session, err := h.sessions.Start(c, uuid.MustParse(req.EventID))
	if err != nil {
		h.handleError(c, err, "Start")
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := ParamUUID(c, "id", "session")
	if !ok {
		return
	}

	session, err := h.sessions.Get(c, id)
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) SelectTicketType(c *gin.Context) {
	id, ok := ParamUUID(c, "id", "session")
	if !ok {
		return
	}
	var req SelectTicketTypeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	session, err := h.sessions.SelectTicketType(c, id, req.TicketTypeID)
	if err != nil {
		h.handleError(c, err, "SelectTicketType")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) SetQuantity(c *gin.Context) {
	id, ok := ParamUUID(c, "id", "session")
	if !ok {
		return
	}
	var req SetQuantityRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	session, err := h.sessions.SetQuantity(c, id, *req.Quantity)
	if err != nil {
		h.handleError(c, err, "SetQuantity")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Discard(c *gin.Context) {
	id, ok := ParamUUID(c, "id", "session")
	if !ok {
		return
	}

	if err := h.sessions.Discard(c, id); err != nil {
		h.handleError(c, err, "Discard")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) Checkout(c *gin.Context) {
	id, ok := ParamUUID(c, "id", "session")
	if !ok {
		return
	}
	var req model.CheckoutRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.checkout.SubmitSession(c, id, req.PaymentMethod.Method, req.Customer)
	if err != nil {
		handleCheckoutError(c, result, err, "Checkout")
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *SessionHandler) TakeConfirmation(c *gin.Context) {
	id, ok := ParamUUID(c, "session_id", "session")
	if !ok {
		return
	}

	booking, err := h.checkout.TakeConfirmation(c, id)
	if err != nil {
		h.handleError(c, err, "TakeConfirmation")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *SessionHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		log.Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrConfirmationNotFound):
		log.Warn("Confirmation not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Confirmation not found"})
	case errors.Is(err, apperrors.ErrInvalidTicketType):
		log.Warn("Invalid ticket type")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket type"})
	case errors.Is(err, apperrors.ErrQuantityOutOfRange):
		log.Warn("Quantity out of range")
		c.JSON(http.StatusBadRequest, gin.H{"error": quantityMessage})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
