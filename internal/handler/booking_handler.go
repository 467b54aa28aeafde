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

type BookingHandler struct {
	bookings service.BookingService
	checkout service.CheckoutService
}

func NewBookingHandler(bookings service.BookingService, checkout service.CheckoutService) *BookingHandler {
	return &BookingHandler{bookings: bookings, checkout: checkout}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("bookings", h.Create)
		router.GET("bookings/:id", h.Get)
		router.PATCH("bookings/:id/status", h.UpdateStatus)
		router.GET("events/:id/bookings", h.ListByEvent)
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.checkout.CreateBooking(c, service.CreateBookingInput{
		EventID:       uuid.MustParse(req.EventID),
		TicketTypeID:  req.TicketTypeID,
		Quantity:      *req.Quantity,
		PaymentMethod: req.PaymentMethod.Method,
		Customer:      req.Customer,
	})
	if err != nil {
		handleCheckoutError(c, result, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Get 支援 UUID 與 BK 訂單編號
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookings.Lookup(c, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParamUUID(c, "id", "booking")
	if !ok {
		return
	}
	var req model.UpdateBookingStatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.bookings.SetStatus(c, id, req.Status)
	if err != nil {
		h.handleError(c, err, "UpdateStatus")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) ListByEvent(c *gin.Context) {
	eventID, ok := ParamUUID(c, "id", "event")
	if !ok {
		return
	}
	var filter model.BookingFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	bookings, err := h.bookings.ListByEvent(c, eventID, filter)
	if err != nil {
		h.handleError(c, err, "ListByEvent")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrInvalidStatus):
		log.Warn("Invalid status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		log.Warn("Invalid status transition")
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
