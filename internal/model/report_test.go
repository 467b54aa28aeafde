package model_test

import (
	"testing"

	"go-gin-event-booking/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func booking(ticketType string, qty int, total string, status model.BookingStatus) *model.Booking {
	return &model.Booking{
		ID:             uuid.New(),
		TicketTypeName: ticketType,
		Quantity:       qty,
		TotalPrice:     decimal.RequireFromString(total),
		Status:         status,
	}
}

func TestReductions(t *testing.T) {
	bookings := []*model.Booking{
		booking("Standard Pass", 2, "599.98", model.BookingStatusPaid),
		booking("Premium Pass", 1, "499.99", model.BookingStatusPaid),
		booking("Standard Pass", 1, "299.99", model.BookingStatusPending),
		booking("Executive Pass", 3, "2399.97", model.BookingStatusCancelled),
		booking("Standard Pass", 1, "299.99", model.BookingStatusPaid),
	}

	assert.Equal(t, "1399.96", model.TotalRevenue(bookings).String())
	assert.Equal(t, 5, model.TotalAttendees(bookings))

	byType := model.RevenueByTicketType(bookings)
	assert.Len(t, byType, 2)
	assert.Equal(t, "Standard Pass", byType[0].TicketTypeName)
	assert.Equal(t, "899.97", byType[0].Revenue.String())
	assert.Equal(t, 3, byType[0].Tickets)
	assert.Equal(t, "Premium Pass", byType[1].TicketTypeName)
}

func TestReductions_NoDrift(t *testing.T) {
	bookings := make([]*model.Booking, 0, 1000)
	for i := 0; i < 1000; i++ {
		bookings = append(bookings, booking("Tasting Pass", 1, "0.10", model.BookingStatusPaid))
	}
	assert.Equal(t, "100", model.TotalRevenue(bookings).String())
}

func TestSummarize(t *testing.T) {
	eventID := uuid.New()

	t.Run("Empty", func(t *testing.T) {
		s := model.Summarize(eventID, nil)
		assert.True(t, s.TotalRevenue.IsZero())
		assert.Equal(t, 0, s.TotalAttendees)
		assert.True(t, s.AverageTicketPrice.IsZero())
		assert.Empty(t, s.ByTicketType)
		assert.Equal(t, 0, s.StatusCounts[model.BookingStatusPaid])
	})

	t.Run("Mixed", func(t *testing.T) {
		s := model.Summarize(eventID, []*model.Booking{
			booking("Standard Pass", 2, "599.98", model.BookingStatusPaid),
			booking("Premium Pass", 1, "499.99", model.BookingStatusPaid),
			booking("Standard Pass", 1, "299.99", model.BookingStatusCancelled),
		})

		assert.Equal(t, eventID, s.EventID)
		assert.Equal(t, "1099.97", s.TotalRevenue.String())
		assert.Equal(t, 3, s.TotalAttendees)
		assert.Equal(t, 3, s.BookingCount)
		assert.Equal(t, 2, s.StatusCounts[model.BookingStatusPaid])
		assert.Equal(t, 1, s.StatusCounts[model.BookingStatusCancelled])
		assert.Equal(t, "366.66", s.AverageTicketPrice.StringFixed(2))
	})
}

func TestRemainingTickets(t *testing.T) {
	bookings := []*model.Booking{
		booking("Standard Pass", 2, "599.98", model.BookingStatusPaid),
		booking("Standard Pass", 1, "299.99", model.BookingStatusPending),
		booking("Executive Pass", 3, "2399.97", model.BookingStatusCancelled),
	}

	assert.Equal(t, 7, model.RemainingTickets(10, bookings))
	assert.Equal(t, 10, model.RemainingTickets(10, nil))
	assert.Equal(t, 0, model.RemainingTickets(2, bookings))
}
