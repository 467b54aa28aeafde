package repository_test

import (
	"context"
	"strings"
	"testing"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(getTestDB(t))
		event := createTestEvent(t, "Tech Conference 2025", "Technology", 1000)

		created, err := repo.Create(ctx, newTestBooking(event.ID, 2, model.BookingStatusPaid))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.True(t, model.IsBookingReference(created.Reference))
		assert.True(t, created.TotalPrice.Equal(decimal.RequireFromString("599.98")))
		assert.Equal(t, "4242", created.Payment.CardLast4)
		assert.Equal(t, 1, created.Version)
		assert.NotZero(t, created.CreatedAt)
	})

	t.Run("Failed - ErrCapacityExceeded", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(getTestDB(t))
		event := createTestEvent(t, "Comedy Night", "Entertainment", 5)
		createTestBooking(t, event.ID, 4, model.BookingStatusPaid)

		_, err := repo.Create(ctx, newTestBooking(event.ID, 2, model.BookingStatusPaid))

		assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	})

	t.Run("Success - cancelled bookings free capacity", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(getTestDB(t))
		event := createTestEvent(t, "Comedy Night", "Entertainment", 5)
		createTestBooking(t, event.ID, 4, model.BookingStatusCancelled)

		_, err := repo.Create(ctx, newTestBooking(event.ID, 5, model.BookingStatusPaid))

		require.NoError(t, err)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(getTestDB(t))

		_, err := repo.Create(ctx, newTestBooking(uuid.New(), 1, model.BookingStatusPaid))

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Success - reference collision is regenerated", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(getTestDB(t))
		event := createTestEvent(t, "Tech Conference 2025", "Technology", 1000)
		first := createTestBooking(t, event.ID, 1, model.BookingStatusPaid)

		second := newTestBooking(event.ID, 1, model.BookingStatusPaid)
		second.Reference = first.Reference
		created, err := repo.Create(ctx, second)

		require.NoError(t, err)
		assert.NotEqual(t, first.Reference, created.Reference)
	})
}

func TestBookingRepository_Find(t *testing.T) {
	ctx := context.Background()
	setupTestWithTruncate(t)
	repo := repository.NewBookingRepository(getTestDB(t))
	event := createTestEvent(t, "Tech Conference 2025", "Technology", 1000)
	booking := createTestBooking(t, event.ID, 1, model.BookingStatusPaid)

	t.Run("FindByID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.Reference, found.Reference)
	})

	t.Run("FindByReference is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByReference(ctx, strings.ToLower(booking.Reference))
		require.NoError(t, err)
		assert.Equal(t, booking.ID, found.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)

		_, err = repo.FindByReference(ctx, "BK00000000")
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}

func TestBookingRepository_ListByEvent(t *testing.T) {
	ctx := context.Background()
	setupTestWithTruncate(t)
	repo := repository.NewBookingRepository(getTestDB(t))
	event := createTestEvent(t, "Tech Conference 2025", "Technology", 1000)
	other := createTestEvent(t, "Summer Music Festival", "Music", 1000)

	createTestBooking(t, event.ID, 1, model.BookingStatusPaid)
	createTestBooking(t, event.ID, 2, model.BookingStatusCancelled)
	jane := newTestBooking(event.ID, 1, model.BookingStatusPending)
	jane.Customer = model.Customer{Name: "Jane Doe", Email: "jane@example.com"}
	_, err := repo.Create(ctx, jane)
	require.NoError(t, err)
	createTestBooking(t, other.ID, 1, model.BookingStatusPaid)

	t.Run("All for event", func(t *testing.T) {
		bookings, err := repo.ListByEvent(ctx, event.ID, model.BookingFilter{})
		require.NoError(t, err)
		assert.Len(t, bookings, 3)
		// 最新的在前
		for i := 1; i < len(bookings); i++ {
			assert.False(t, bookings[i].CreatedAt.After(bookings[i-1].CreatedAt))
		}
	})

	t.Run("By status", func(t *testing.T) {
		bookings, err := repo.ListByEvent(ctx, event.ID, model.BookingFilter{Status: model.BookingStatusCancelled})
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, 2, bookings[0].Quantity)
	})

	t.Run("Search by customer", func(t *testing.T) {
		bookings, err := repo.ListByEvent(ctx, event.ID, model.BookingFilter{Search: "JANE"})
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "jane@example.com", bookings[0].Customer.Email)
	})
}

func TestBookingRepository_UpdateStatusWithLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - pending to paid sets paid_at", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(getTestDB(t))
		event := createTestEvent(t, "Tech Conference 2025", "Technology", 1000)
		booking := createTestBooking(t, event.ID, 1, model.BookingStatusPending)

		change, err := repo.UpdateStatusWithLock(ctx, booking.ID, model.BookingStatusPaid)

		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusPending, change.Previous)
		assert.Equal(t, model.BookingStatusPaid, change.Booking.Status)
		assert.NotNil(t, change.Booking.PaidAt)
		assert.Equal(t, booking.Version+1, change.Booking.Version)
		// 金額不會因狀態改變而重算
		assert.True(t, change.Booking.TotalPrice.Equal(booking.TotalPrice))
	})

	t.Run("Failed - cancelled is terminal", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(getTestDB(t))
		event := createTestEvent(t, "Tech Conference 2025", "Technology", 1000)
		booking := createTestBooking(t, event.ID, 1, model.BookingStatusPaid)

		_, err := repo.UpdateStatusWithLock(ctx, booking.ID, model.BookingStatusCancelled)
		require.NoError(t, err)

		_, err = repo.UpdateStatusWithLock(ctx, booking.ID, model.BookingStatusPaid)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})

	t.Run("Failed - ErrBookingNotFound", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(getTestDB(t))

		_, err := repo.UpdateStatusWithLock(ctx, uuid.New(), model.BookingStatusPaid)

		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}
