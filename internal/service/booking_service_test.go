package service_test

import (
	"context"
	"errors"
	"testing"

	cacheMocks "go-gin-event-booking/internal/cache/mocks"
	"go-gin-event-booking/internal/model"
	queueMocks "go-gin-event-booking/internal/queue/mocks"
	repoMocks "go-gin-event-booking/internal/repository/mocks"
	"go-gin-event-booking/internal/service"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingMocks struct {
	repo      *repoMocks.MockBookingRepository
	eventRepo *repoMocks.MockEventRepository
	capacity  *cacheMocks.MockCapacityManager
	queue     *queueMocks.MockBookingEventQueue
}

func setupBooking(t *testing.T) (service.BookingService, bookingMocks) {
	m := bookingMocks{
		repo:      repoMocks.NewMockBookingRepository(t),
		eventRepo: repoMocks.NewMockEventRepository(t),
		capacity:  cacheMocks.NewMockCapacityManager(t),
		queue:     queueMocks.NewMockBookingEventQueue(t),
	}
	return service.NewBookingService(m.repo, m.eventRepo, m.capacity, m.queue), m
}

func sampleBooking(status model.BookingStatus, quantity int) *model.Booking {
	unit := decimal.RequireFromString("299.99")
	return &model.Booking{
		ID:             uuid.New(),
		Reference:      "BK12345678",
		EventID:        techConferenceID,
		TicketTypeID:   "standard",
		TicketTypeName: "Standard Pass",
		UnitPrice:      unit,
		Quantity:       quantity,
		TotalPrice:     unit.Mul(decimal.NewFromInt(int64(quantity))),
		Status:         status,
	}
}

func TestBookingService_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - by reference", func(t *testing.T) {
		svc, m := setupBooking(t)
		booking := sampleBooking(model.BookingStatusPaid, 2)

		m.repo.EXPECT().FindByReference(ctx, "BK12345678").Return(booking, nil).Once()

		got, err := svc.Lookup(ctx, "BK12345678")

		require.NoError(t, err)
		assert.Equal(t, booking.ID, got.ID)
	})

	t.Run("Success - by id", func(t *testing.T) {
		svc, m := setupBooking(t)
		booking := sampleBooking(model.BookingStatusPaid, 2)

		m.repo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil).Once()

		got, err := svc.Lookup(ctx, booking.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "BK12345678", got.Reference)
	})

	t.Run("Failed - malformed key", func(t *testing.T) {
		svc, _ := setupBooking(t)

		_, err := svc.Lookup(ctx, "not-a-booking")

		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}

func TestBookingService_ListByEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - status normalized", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.eventRepo.EXPECT().FindByID(ctx, techConferenceID).Return(techConference(), nil).Once()
		m.repo.EXPECT().ListByEvent(ctx, techConferenceID, model.BookingFilter{Status: model.BookingStatusPaid, Search: "john"}).
			Return([]*model.Booking{sampleBooking(model.BookingStatusPaid, 1)}, nil).Once()

		bookings, err := svc.ListByEvent(ctx, techConferenceID, model.BookingFilter{Status: "PAID", Search: "john"})

		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("Failed - ErrInvalidStatus", func(t *testing.T) {
		svc, _ := setupBooking(t)

		_, err := svc.ListByEvent(ctx, techConferenceID, model.BookingFilter{Status: "refunded"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		svc, m := setupBooking(t)
		id := uuid.New()

		m.eventRepo.EXPECT().FindByID(ctx, id).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.ListByEvent(ctx, id, model.BookingFilter{})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestBookingService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - pending to paid keeps capacity", func(t *testing.T) {
		svc, m := setupBooking(t)
		updated := sampleBooking(model.BookingStatusPaid, 1)

		m.repo.EXPECT().UpdateStatusWithLock(ctx, updated.ID, model.BookingStatusPaid).
			Return(&model.StatusChange{Previous: model.BookingStatusPending, Booking: updated}, nil).Once()
		m.queue.EXPECT().Publish(ctx, mock.MatchedBy(func(e *model.BookingEvent) bool {
			return e.Type == model.BookingEventStatusChanged && e.PreviousStatus == model.BookingStatusPending
		})).Return(nil).Once()

		got, err := svc.SetStatus(ctx, updated.ID, "paid")

		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusPaid, got.Status)
		m.capacity.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - paid to cancelled releases capacity", func(t *testing.T) {
		svc, m := setupBooking(t)
		updated := sampleBooking(model.BookingStatusCancelled, 3)

		m.repo.EXPECT().UpdateStatusWithLock(ctx, updated.ID, model.BookingStatusCancelled).
			Return(&model.StatusChange{Previous: model.BookingStatusPaid, Booking: updated}, nil).Once()
		m.capacity.EXPECT().Release(mock.Anything, techConferenceID, 3).Return(nil).Once()
		m.queue.EXPECT().Publish(ctx, mock.Anything).Return(nil).Once()

		got, err := svc.SetStatus(ctx, updated.ID, "Cancelled")

		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusCancelled, got.Status)
	})

	t.Run("Success - release and publish errors are logged only", func(t *testing.T) {
		svc, m := setupBooking(t)
		updated := sampleBooking(model.BookingStatusCancelled, 1)

		m.repo.EXPECT().UpdateStatusWithLock(ctx, updated.ID, model.BookingStatusCancelled).
			Return(&model.StatusChange{Previous: model.BookingStatusPending, Booking: updated}, nil).Once()
		m.capacity.EXPECT().Release(mock.Anything, techConferenceID, 1).Return(errors.New("redis down")).Once()
		m.queue.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("stream down")).Once()

		_, err := svc.SetStatus(ctx, updated.ID, "cancelled")

		require.NoError(t, err)
	})

	t.Run("Failed - ErrInvalidStatus", func(t *testing.T) {
		svc, _ := setupBooking(t)

		_, err := svc.SetStatus(ctx, uuid.New(), "refunded")

		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("Failed - ErrInvalidTransition", func(t *testing.T) {
		svc, m := setupBooking(t)
		id := uuid.New()

		m.repo.EXPECT().UpdateStatusWithLock(ctx, id, model.BookingStatusPending).
			Return(nil, apperrors.ErrInvalidTransition).Once()

		_, err := svc.SetStatus(ctx, id, "pending")

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		m.queue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
