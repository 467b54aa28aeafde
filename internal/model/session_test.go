package model_test

import (
	"testing"

	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func techConference() model.Event {
	id := uuid.MustParse("5b1f0c1e-8f3a-4c55-9a57-2d1f4a0b7c02")
	return model.Event{
		ID:           id,
		Title:        "Tech Conference 2023",
		Category:     "Technology",
		TotalTickets: 1000,
		TicketTypes: []model.TicketType{
			{ID: "standard", EventID: id, Name: "Standard Pass", Price: decimal.RequireFromString("299.99")},
			{ID: "premium", EventID: id, Name: "Premium Pass", Price: decimal.RequireFromString("499.99")},
		},
	}
}

func TestNewBookingSession_Defaults(t *testing.T) {
	s := model.NewBookingSession(techConference())

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 1, s.Quantity)
	assert.Nil(t, s.TicketType)
	assert.True(t, s.Subtotal.IsZero())
}

func TestBookingSession_SelectTicketType(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := model.NewBookingSession(techConference())

		require.NoError(t, s.SelectTicketType("premium"))
		assert.Equal(t, "Premium Pass", s.TicketType.Name)
		assert.Equal(t, "499.99", s.Subtotal.StringFixed(2))
	})

	t.Run("Failed - ticket type of another event", func(t *testing.T) {
		s := model.NewBookingSession(techConference())
		require.NoError(t, s.SelectTicketType("standard"))

		err := s.SelectTicketType("vip")

		assert.ErrorIs(t, err, apperrors.ErrInvalidTicketType)
		assert.Equal(t, "standard", s.TicketType.ID)
	})
}

func TestBookingSession_SetQuantity(t *testing.T) {
	unit := decimal.RequireFromString("299.99")

	for n := model.MinQuantity; n <= model.MaxQuantity; n++ {
		s := model.NewBookingSession(techConference())
		require.NoError(t, s.SelectTicketType("standard"))

		require.NoError(t, s.SetQuantity(n))
		assert.Equal(t, n, s.Quantity)
		assert.True(t, unit.Mul(decimal.NewFromInt(int64(n))).Equal(s.Subtotal), "n=%d subtotal=%s", n, s.Subtotal)
	}

	for _, n := range []int{-1, 0, 11, 100} {
		s := model.NewBookingSession(techConference())
		require.NoError(t, s.SelectTicketType("standard"))
		require.NoError(t, s.SetQuantity(2))

		err := s.SetQuantity(n)

		assert.ErrorIs(t, err, apperrors.ErrQuantityOutOfRange, "n=%d", n)
		assert.Equal(t, 2, s.Quantity)
		assert.Equal(t, "599.98", s.Subtotal.StringFixed(2))
	}
}

func TestBookingSession_SetQuantityBeforeTicketType(t *testing.T) {
	s := model.NewBookingSession(techConference())

	require.NoError(t, s.SetQuantity(3))
	assert.True(t, s.Subtotal.IsZero())

	require.NoError(t, s.SelectTicketType("standard"))
	assert.Equal(t, "899.97", s.Subtotal.StringFixed(2))
}

func TestBookingSession_ToBookingRequest(t *testing.T) {
	t.Run("Failed - IncompleteSelection", func(t *testing.T) {
		s := model.NewBookingSession(techConference())
		require.NoError(t, s.SetQuantity(4))

		_, err := s.ToBookingRequest()

		assert.ErrorIs(t, err, apperrors.ErrIncompleteSelection)
	})

	t.Run("Success - no fees or tax", func(t *testing.T) {
		event := techConference()
		s := model.NewBookingSession(event)
		require.NoError(t, s.SelectTicketType("standard"))
		require.NoError(t, s.SetQuantity(2))

		req, err := s.ToBookingRequest()

		require.NoError(t, err)
		assert.Equal(t, event.ID, req.EventID)
		assert.Equal(t, "standard", req.TicketTypeID)
		assert.Equal(t, "Standard Pass", req.TicketTypeName)
		assert.Equal(t, 2, req.Quantity)
		assert.Equal(t, "599.98", req.TotalPrice.String())
		assert.True(t, req.UnitPrice.Mul(decimal.NewFromInt(2)).Equal(req.TotalPrice))
	})
}

func TestBookingSession_QuantityElevenKeepsLastValid(t *testing.T) {
	s := model.NewBookingSession(techConference())
	require.NoError(t, s.SelectTicketType("standard"))
	require.NoError(t, s.SetQuantity(2))
	require.Equal(t, "599.98", s.Subtotal.String())

	assert.ErrorIs(t, s.SetQuantity(11), apperrors.ErrQuantityOutOfRange)
	assert.Equal(t, 2, s.Quantity)
}
