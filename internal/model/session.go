package model

import (
	"time"

	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

// BookingSession 單一使用者對單一活動的選票狀態
type BookingSession struct {
	ID         uuid.UUID       `json:"id"`
	Event      Event           `json:"event"`
	TicketType *TicketType     `json:"ticket_type"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewBookingSession(event Event) *BookingSession {
	now := time.Now().UTC()
	return &BookingSession{
		ID:        uuid.New(),
		Event:     event,
		Quantity:  MinQuantity,
		Subtotal:  decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectTicketType 選擇票種，票種必須屬於此活動
func (s *BookingSession) SelectTicketType(ticketTypeID string) error {
	tt, ok := s.Event.FindTicketType(ticketTypeID)
	if !ok {
		return apperrors.ErrInvalidTicketType
	}
	s.TicketType = &tt
	s.recompute()
	return nil
}

// SetQuantity 設定張數，超出 1..10 時維持原狀態
func (s *BookingSession) SetQuantity(n int) error {
	if n < MinQuantity || n > MaxQuantity {
		return apperrors.ErrQuantityOutOfRange
	}
	s.Quantity = n
	s.recompute()
	return nil
}

func (s *BookingSession) recompute() {
	s.UpdatedAt = time.Now().UTC()
	if s.TicketType == nil {
		s.Subtotal = decimal.Zero
		return
	}
	s.Subtotal = s.TicketType.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// ToBookingRequest 產生結帳用的快照，不含服務費與稅
func (s *BookingSession) ToBookingRequest() (BookingRequest, error) {
	if s.TicketType == nil {
		return BookingRequest{}, apperrors.ErrIncompleteSelection
	}
	return BookingRequest{
		EventID:        s.Event.ID,
		TicketTypeID:   s.TicketType.ID,
		TicketTypeName: s.TicketType.Name,
		UnitPrice:      s.TicketType.Price,
		Quantity:       s.Quantity,
		TotalPrice:     s.TicketType.Price.Mul(decimal.NewFromInt(int64(s.Quantity))),
	}, nil
}

// BookingRequest 結帳輸入，建立後不再修改
type BookingRequest struct {
	EventID        uuid.UUID       `json:"event_id"`
	TicketTypeID   string          `json:"ticket_type_id"`
	TicketTypeName string          `json:"ticket_type_name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}
