package service_test

import (
	"time"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var techConferenceID = uuid.MustParse("5b1f0c1e-8f3a-4c55-9a57-2d1f4a0b7c02")

func techConference() *model.Event {
	return &model.Event{
		ID:           techConferenceID,
		Title:        "Tech Conference 2023",
		Category:     "Technology",
		Date:         time.Date(2023, time.August, 10, 0, 0, 0, 0, time.UTC),
		Location:     "Convention Center, San Francisco",
		BasePrice:    decimal.RequireFromString("299.99"),
		TotalTickets: 1000,
		TicketTypes: []model.TicketType{
			{ID: "standard", EventID: techConferenceID, Name: "Standard Pass", Price: decimal.RequireFromString("299.99")},
			{ID: "premium", EventID: techConferenceID, Name: "Premium Pass", Price: decimal.RequireFromString("499.99"), Position: 1},
			{ID: "executive", EventID: techConferenceID, Name: "Executive Pass", Price: decimal.RequireFromString("799.99"), Position: 2},
		},
	}
}

func validCard() model.CreditCard {
	return model.CreditCard{
		Number:     "4242 4242 4242 4242",
		HolderName: "John Smith",
		Expiry:     "12/27",
		CVV:        "123",
	}
}

func standardRequest(quantity int) model.BookingRequest {
	unit := decimal.RequireFromString("299.99")
	return model.BookingRequest{
		EventID:        techConferenceID,
		TicketTypeID:   "standard",
		TicketTypeName: "Standard Pass",
		UnitPrice:      unit,
		Quantity:       quantity,
		TotalPrice:     unit.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func checkoutConfig() config.CheckoutConfig {
	return config.LoadTestConfig().Checkout
}
