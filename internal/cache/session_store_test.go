package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T) *model.BookingSession {
	t.Helper()
	s := model.NewBookingSession(model.Event{
		ID:    testEventID,
		Title: "Tech Conference 2023",
		TicketTypes: []model.TicketType{
			{ID: "standard", EventID: testEventID, Name: "Standard Pass", Price: decimal.RequireFromString("299.99")},
		},
	})
	require.NoError(t, s.SelectTicketType("standard"))
	require.NoError(t, s.SetQuantity(2))
	return s
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	ttl := 30 * time.Minute
	session := testSession(t)
	data, err := json.Marshal(session)
	require.NoError(t, err)

	db, mock := redismock.NewClientMock()
	store := cache.NewSessionStore(db, ttl)

	mock.ExpectSet(cache.SessionKey(session.ID), data, ttl).SetVal("OK")
	mock.ExpectGet(cache.SessionKey(session.ID)).SetVal(string(data))

	require.NoError(t, store.Save(ctx, session))
	got, err := store.Get(ctx, session.ID)

	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "standard", got.TicketType.ID)
	assert.Equal(t, 2, got.Quantity)
	assert.True(t, session.Subtotal.Equal(got.Subtotal))
	assert.Len(t, got.Event.TicketTypes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStore_GetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := cache.NewSessionStore(db, time.Minute)
	session := testSession(t)

	mock.ExpectGet(cache.SessionKey(session.ID)).RedisNil()

	_, err := store.Get(context.Background(), session.ID)

	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	session := testSession(t)

	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := cache.NewSessionStore(db, time.Minute)
		mock.ExpectDel(cache.SessionKey(session.ID)).SetVal(1)

		assert.NoError(t, store.Delete(ctx, session.ID))
	})

	t.Run("Failed - already gone", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := cache.NewSessionStore(db, time.Minute)
		mock.ExpectDel(cache.SessionKey(session.ID)).SetVal(0)

		assert.ErrorIs(t, store.Delete(ctx, session.ID), apperrors.ErrSessionNotFound)
	})
}
