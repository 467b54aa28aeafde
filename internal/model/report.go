package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketTypeRevenue 單一票種的營收
type TicketTypeRevenue struct {
	TicketTypeName string          `json:"ticket_type_name"`
	Revenue        decimal.Decimal `json:"revenue"`
	Tickets        int             `json:"tickets"`
}

// EventSummary 主辦方報表，每次讀取時重新計算
type EventSummary struct {
	EventID            uuid.UUID             `json:"event_id"`
	TotalRevenue       decimal.Decimal       `json:"total_revenue"`
	TotalAttendees     int                   `json:"total_attendees"`
	BookingCount       int                   `json:"booking_count"`
	StatusCounts       map[BookingStatus]int `json:"status_counts"`
	ByTicketType       []TicketTypeRevenue   `json:"by_ticket_type"`
	AverageTicketPrice decimal.Decimal       `json:"average_ticket_price"`
	RemainingTickets   int                   `json:"remaining_tickets"`
}

// RemainingTickets 總票數扣掉未取消訂單的張數，不會小於 0
func RemainingTickets(total int, bookings []*Booking) int {
	remaining := total
	for _, b := range bookings {
		if b.Status != BookingStatusCancelled {
			remaining -= b.Quantity
		}
	}
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TotalRevenue 已付款訂單的總金額
func TotalRevenue(bookings []*Booking) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		if b.Status == BookingStatusPaid {
			total = total.Add(b.TotalPrice)
		}
	}
	return total
}

// TotalAttendees 未取消訂單的總張數
func TotalAttendees(bookings []*Booking) int {
	total := 0
	for _, b := range bookings {
		if b.Status.IsActive() {
			total += b.Quantity
		}
	}
	return total
}

// RevenueByTicketType 依票種彙總已付款訂單，保留第一次出現的順序
func RevenueByTicketType(bookings []*Booking) []TicketTypeRevenue {
	index := make(map[string]int)
	out := make([]TicketTypeRevenue, 0)
	for _, b := range bookings {
		if b.Status != BookingStatusPaid {
			continue
		}
		i, ok := index[b.TicketTypeName]
		if !ok {
			i = len(out)
			index[b.TicketTypeName] = i
			out = append(out, TicketTypeRevenue{TicketTypeName: b.TicketTypeName, Revenue: decimal.Zero})
		}
		out[i].Revenue = out[i].Revenue.Add(b.TotalPrice)
		out[i].Tickets += b.Quantity
	}
	return out
}

func Summarize(eventID uuid.UUID, bookings []*Booking) *EventSummary {
	summary := &EventSummary{
		EventID:            eventID,
		TotalRevenue:       TotalRevenue(bookings),
		TotalAttendees:     TotalAttendees(bookings),
		BookingCount:       len(bookings),
		StatusCounts:       map[BookingStatus]int{BookingStatusPending: 0, BookingStatusPaid: 0, BookingStatusCancelled: 0},
		ByTicketType:       RevenueByTicketType(bookings),
		AverageTicketPrice: decimal.Zero,
	}
	for _, b := range bookings {
		summary.StatusCounts[b.Status]++
	}

	paidTickets := 0
	for _, r := range summary.ByTicketType {
		paidTickets += r.Tickets
	}
	if paidTickets > 0 {
		summary.AverageTicketPrice = summary.TotalRevenue.Div(decimal.NewFromInt(int64(paidTickets))).Round(2)
	}
	return summary
}
