package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingEventType 訂單事件種類
type BookingEventType string

const (
	BookingEventCreated       BookingEventType = "booking.created"
	BookingEventStatusChanged BookingEventType = "booking.status_changed"
)

// BookingEvent 送進 queue 的訂單事件
type BookingEvent struct {
	Type           BookingEventType `json:"type"`
	BookingID      uuid.UUID        `json:"booking_id"`
	Reference      string           `json:"reference"`
	EventID        uuid.UUID        `json:"event_id"`
	TicketTypeName string           `json:"ticket_type_name"`
	Status         BookingStatus    `json:"status"`
	PreviousStatus BookingStatus    `json:"previous_status,omitempty"`
	Quantity       int              `json:"quantity"`
	TotalPrice     decimal.Decimal  `json:"total_price"`
	CustomerName   string           `json:"customer_name,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at"`
}

func NewBookingCreatedEvent(b *Booking) *BookingEvent {
	return &BookingEvent{
		Type:           BookingEventCreated,
		BookingID:      b.ID,
		Reference:      b.Reference,
		EventID:        b.EventID,
		TicketTypeName: b.TicketTypeName,
		Status:         b.Status,
		Quantity:       b.Quantity,
		TotalPrice:     b.TotalPrice,
		CustomerName:   b.Customer.Name,
		OccurredAt:     time.Now().UTC(),
	}
}

func NewBookingStatusChangedEvent(change StatusChange) *BookingEvent {
	e := NewBookingCreatedEvent(change.Booking)
	e.Type = BookingEventStatusChanged
	e.PreviousStatus = change.Previous
	return e
}

// Notification 主辦方後台顯示的通知
type Notification struct {
	Message   string    `json:"message"`
	Reference string    `json:"reference"`
	EventID   uuid.UUID `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationFromEvent 將訂單事件轉成通知文字
func NotificationFromEvent(e *BookingEvent) Notification {
	who := e.CustomerName
	if who == "" {
		who = "A customer"
	}

	var msg string
	switch e.Type {
	case BookingEventCreated:
		msg = fmt.Sprintf("%s booked %d x %s (%s)", who, e.Quantity, e.TicketTypeName, e.TotalPrice.StringFixed(2))
	case BookingEventStatusChanged:
		msg = fmt.Sprintf("Booking %s changed from %s to %s", e.Reference, e.PreviousStatus, e.Status)
	default:
		msg = fmt.Sprintf("Booking %s updated", e.Reference)
	}

	return Notification{
		Message:   msg,
		Reference: e.Reference,
		EventID:   e.EventID,
		CreatedAt: e.OccurredAt,
	}
}
