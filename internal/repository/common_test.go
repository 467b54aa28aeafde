package repository_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	"go-gin-event-booking/internal/testutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testDB 測試用的資料庫連接池，連不上時為 nil
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup, err := testutil.SetupDatabase()
	if err != nil {
		log.Printf("repository tests skipped: %v", err)
	} else {
		testDB = pool
	}

	code := m.Run()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// getTestDB 回傳連接池；沒有資料庫時略過測試
func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database not available")
	}
	return testDB
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	_, err := getTestDB(t).Exec(context.Background(), "TRUNCATE bookings, ticket_types, events CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// createTestEvent 輔助函數：建立含 standard / premium 兩種票的活動
func createTestEvent(t *testing.T, title, category string, totalTickets int) *model.Event {
	t.Helper()
	repo := repository.NewEventRepository(getTestDB(t))

	event, err := repo.Create(context.Background(), &model.Event{
		Title:        title,
		Description:  "Integration test event",
		Category:     category,
		Date:         time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "17:00",
		Location:     "Convention Center",
		Organizer:    "Test Org",
		BasePrice:    decimal.RequireFromString("299.99"),
		TotalTickets: totalTickets,
		TicketTypes: []model.TicketType{
			{ID: "standard", Name: "Standard Pass", Price: decimal.RequireFromString("299.99")},
			{ID: "premium", Name: "Premium Pass", Price: decimal.RequireFromString("499.99")},
		},
	})
	require.NoError(t, err)
	return event
}

func newTestBooking(eventID uuid.UUID, quantity int, status model.BookingStatus) *model.Booking {
	unit := decimal.RequireFromString("299.99")
	return &model.Booking{
		EventID:        eventID,
		TicketTypeID:   "standard",
		TicketTypeName: "Standard Pass",
		UnitPrice:      unit,
		Quantity:       quantity,
		TotalPrice:     unit.Mul(decimal.NewFromInt(int64(quantity))),
		Status:         status,
		Payment:        model.PaymentSnapshot{Method: model.PaymentMethodCreditCard, CardLast4: "4242", CardHolder: "John Smith"},
		Customer:       model.Customer{Name: "John Smith", Email: "john@example.com"},
	}
}

// createTestBooking 輔助函數：直接寫入一筆訂單
func createTestBooking(t *testing.T, eventID uuid.UUID, quantity int, status model.BookingStatus) *model.Booking {
	t.Helper()
	repo := repository.NewBookingRepository(getTestDB(t))

	booking, err := repo.Create(context.Background(), newTestBooking(eventID, quantity, status))
	require.NoError(t, err)
	return booking
}
