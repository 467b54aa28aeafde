package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"go-gin-event-booking/internal/handler"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/service"
	"go-gin-event-booking/internal/service/mocks"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupBookingTestRouter(t *testing.T) (*gin.Engine, *mocks.MockBookingService, *mocks.MockCheckoutService) {
	bookings := mocks.NewMockBookingService(t)
	checkout := mocks.NewMockCheckoutService(t)
	router := gin.New()
	handler.NewBookingHandler(bookings, checkout).RegisterRoutes(router)
	return router, bookings, checkout
}

func createBookingBody(eventID string, quantity int) gin.H {
	return gin.H{
		"event_id":       eventID,
		"ticket_type_id": "standard",
		"quantity":       quantity,
		"payment_method": cardPayload(),
		"customer":       gin.H{"name": "John Smith", "email": "john@example.com"},
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, _, checkout := setupBookingTestRouter(t)
		eventID := uuid.New()

		checkout.EXPECT().CreateBooking(mock.Anything, mock.MatchedBy(func(in service.CreateBookingInput) bool {
			return in.EventID == eventID && in.TicketTypeID == "standard" && in.Quantity == 2 &&
				in.PaymentMethod != nil && in.Customer.Email == "john@example.com"
		})).Return(&model.CheckoutResult{
			State:   model.CheckoutSucceeded,
			Booking: &model.Booking{Reference: "BK12345678", Status: model.BookingStatusPaid},
		}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", createBookingBody(eventID.String(), 2)))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - quantity 11", func(t *testing.T) {
		router, _, checkout := setupBookingTestRouter(t)

		checkout.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(nil, apperrors.ErrQuantityOutOfRange).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", createBookingBody(uuid.NewString(), 11)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Quantity must be between 1 and 10", decodeBody(t, w)["error"])
	})

	t.Run("Failed - quantity 0", func(t *testing.T) {
		router, _, checkout := setupBookingTestRouter(t)

		checkout.EXPECT().CreateBooking(mock.Anything, mock.MatchedBy(func(in service.CreateBookingInput) bool {
			return in.Quantity == 0
		})).Return(nil, apperrors.ErrQuantityOutOfRange).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", createBookingBody(uuid.NewString(), 0)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Quantity must be between 1 and 10", decodeBody(t, w)["error"])
	})

	t.Run("Failed - quantity missing", func(t *testing.T) {
		router, _, checkout := setupBookingTestRouter(t)
		body := createBookingBody(uuid.NewString(), 1)
		delete(body, "quantity")

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		checkout.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("Failed - declined", func(t *testing.T) {
		router, _, checkout := setupBookingTestRouter(t)

		checkout.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(&model.CheckoutResult{
			State:     model.CheckoutFailed,
			Retryable: true,
			Reason:    "Payment authorization failed",
		}, apperrors.ErrAuthorizationFailed).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", createBookingBody(uuid.NewString(), 1)))

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Failed - persist error", func(t *testing.T) {
		router, _, checkout := setupBookingTestRouter(t)

		checkout.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(&model.CheckoutResult{
			State:     model.CheckoutFailed,
			Retryable: true,
			Reason:    "Booking could not be saved",
		}, errors.New("insert booking: connection reset")).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", createBookingBody(uuid.NewString(), 1)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["retryable"])
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		router, _, checkout := setupBookingTestRouter(t)

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", createBookingBody("tech-conf", 1)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		checkout.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})
}

func TestGetBooking(t *testing.T) {
	t.Run("Success - by reference", func(t *testing.T) {
		router, bookings, _ := setupBookingTestRouter(t)

		bookings.EXPECT().Lookup(mock.Anything, "BK12345678").Return(&model.Booking{Reference: "BK12345678"}, nil).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/bookings/BK12345678", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ErrBookingNotFound", func(t *testing.T) {
		router, bookings, _ := setupBookingTestRouter(t)

		bookings.EXPECT().Lookup(mock.Anything, "BK00000000").Return(nil, apperrors.ErrBookingNotFound).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/bookings/BK00000000", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	statusURL := func(id uuid.UUID) string { return "/api/v1/bookings/" + id.String() + "/status" }

	t.Run("Success", func(t *testing.T) {
		router, bookings, _ := setupBookingTestRouter(t)
		id := uuid.New()

		bookings.EXPECT().SetStatus(mock.Anything, id, "cancelled").
			Return(&model.Booking{ID: id, Status: model.BookingStatusCancelled}, nil).Once()

		w := serve(router, createJSONHTTPRequest("PATCH", statusURL(id), gin.H{"status": "cancelled"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cancelled", decodeBody(t, w)["status"])
	})

	t.Run("Failed - ErrInvalidStatus", func(t *testing.T) {
		router, bookings, _ := setupBookingTestRouter(t)
		id := uuid.New()

		bookings.EXPECT().SetStatus(mock.Anything, id, "refunded").Return(nil, apperrors.ErrInvalidStatus).Once()

		w := serve(router, createJSONHTTPRequest("PATCH", statusURL(id), gin.H{"status": "refunded"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrInvalidTransition", func(t *testing.T) {
		router, bookings, _ := setupBookingTestRouter(t)
		id := uuid.New()

		bookings.EXPECT().SetStatus(mock.Anything, id, "pending").Return(nil, apperrors.ErrInvalidTransition).Once()

		w := serve(router, createJSONHTTPRequest("PATCH", statusURL(id), gin.H{"status": "pending"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - invalid id", func(t *testing.T) {
		router, bookings, _ := setupBookingTestRouter(t)

		w := serve(router, createJSONHTTPRequest("PATCH", "/api/v1/bookings/BK12345678/status", gin.H{"status": "paid"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		bookings.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListEventBookings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, bookings, _ := setupBookingTestRouter(t)
		eventID := uuid.New()

		bookings.EXPECT().ListByEvent(mock.Anything, eventID, model.BookingFilter{Status: "paid", Search: "smith"}).
			Return([]*model.Booking{{Reference: "BK12345678"}}, nil).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String()+"/bookings?status=paid&search=smith", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		router, bookings, _ := setupBookingTestRouter(t)

		bookings.EXPECT().ListByEvent(mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/events/"+uuid.NewString()+"/bookings", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
