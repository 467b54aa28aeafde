package handler

import (
	"errors"
	"net/http"

	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// ParamUUID 解析路徑中的 uuid，失敗時直接回 400
func ParamUUID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " id"})
		return uuid.Nil, false
	}
	return id, true
}

// handleCheckoutError 結帳相關錯誤，session 結帳與直接下單共用
func handleCheckoutError(c *gin.Context, result *model.CheckoutResult, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	state := model.CheckoutFailed
	reason := ""
	if result != nil {
		state = result.State
		reason = result.Reason
	}

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("Invalid payment details")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Invalid payment details",
			"fields": validationErr.Fields,
			"state":  state,
		})
	case errors.Is(err, apperrors.ErrAuthorizationFailed):
		log.Warn("Payment authorization failed")
		if reason == "" {
			reason = "Payment authorization failed"
		}
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":     reason,
			"retryable": true,
			"state":     model.CheckoutFailed,
		})
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		log.Warn("Capacity exceeded")
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Not enough tickets remaining",
			"retryable": false,
			"state":     model.CheckoutFailed,
		})
	case errors.Is(err, apperrors.ErrSessionNotFound):
		log.Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrInvalidTicketType):
		log.Warn("Invalid ticket type")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket type"})
	case errors.Is(err, apperrors.ErrQuantityOutOfRange):
		log.Warn("Quantity out of range")
		c.JSON(http.StatusBadRequest, gin.H{"error": quantityMessage})
	case errors.Is(err, apperrors.ErrIncompleteSelection):
		log.Warn("Incomplete selection")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a ticket type"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"retryable": result != nil && result.Retryable,
			"state":     state,
		})
	}
}

const quantityMessage = "Quantity must be between 1 and 10"
