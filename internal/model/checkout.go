package model

import (
	"fmt"
	"time"
)

// CheckoutState 單次結帳嘗試的狀態
type CheckoutState string

const (
	CheckoutAwaitingMethodDetails CheckoutState = "awaiting_method_details"
	CheckoutValidating            CheckoutState = "validating"
	CheckoutAuthorizing           CheckoutState = "authorizing"
	CheckoutSucceeded             CheckoutState = "succeeded"
	CheckoutFailed                CheckoutState = "failed"
)

var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutAwaitingMethodDetails: {CheckoutValidating},
	CheckoutValidating:            {CheckoutAwaitingMethodDetails, CheckoutAuthorizing, CheckoutFailed},
	CheckoutAuthorizing:           {CheckoutSucceeded, CheckoutFailed},
	CheckoutFailed:                {CheckoutAwaitingMethodDetails},
	CheckoutSucceeded:             {},
}

func (s CheckoutState) CanTransitionTo(target CheckoutState) bool {
	for _, allowed := range checkoutTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CheckoutAttempt 記錄一次結帳嘗試經過的狀態
type CheckoutAttempt struct {
	State     CheckoutState
	History   []CheckoutState
	StartedAt time.Time
}

func NewCheckoutAttempt() *CheckoutAttempt {
	return &CheckoutAttempt{
		State:     CheckoutAwaitingMethodDetails,
		History:   []CheckoutState{CheckoutAwaitingMethodDetails},
		StartedAt: time.Now().UTC(),
	}
}

// Transition 依狀態機轉換，非法轉換回傳 error 且不改變狀態
func (a *CheckoutAttempt) Transition(to CheckoutState) error {
	if !a.State.CanTransitionTo(to) {
		return fmt.Errorf("checkout: cannot transition from %s to %s", a.State, to)
	}
	a.State = to
	a.History = append(a.History, to)
	return nil
}

// CheckoutResult 結帳結果；失敗時 Booking 為 nil
type CheckoutResult struct {
	State       CheckoutState     `json:"state"`
	Booking     *Booking          `json:"booking,omitempty"`
	FieldErrors map[string]string `json:"fields,omitempty"`
	Retryable   bool              `json:"retryable"`
	Reason      string            `json:"reason,omitempty"`
}

// CheckoutRequest 從 session 結帳的請求
type CheckoutRequest struct {
	PaymentMethod PaymentMethodInput `json:"payment_method"`
	Customer      Customer           `json:"customer"`
}

// CreateBookingRequest POST /bookings 的請求，單價由伺服器端的目錄決定
type CreateBookingRequest struct {
	EventID       string             `json:"event_id" binding:"required,uuid"`
	TicketTypeID  string             `json:"ticket_type_id" binding:"required"`
	Quantity      *int               `json:"quantity" binding:"required"`
	PaymentMethod PaymentMethodInput `json:"payment_method"`
	Customer      Customer           `json:"customer"`
}
