package model

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus 訂單狀態類型
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusPaid, BookingStatusCancelled},
	BookingStatusPaid:      {BookingStatusCancelled},
	BookingStatusCancelled: {}, // 不能轉換到任何狀態
}

// ParseBookingStatus 不分大小寫解析狀態字串
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	return status, status.IsValid()
}

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusPaid, BookingStatusCancelled:
		return true
	}
	return false
}

// IsActive 未取消的訂單會佔用名額
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusPaid
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, ok := bookingTransitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Customer 訂票人資料（選填）
type Customer struct {
	Name  string `json:"name" db:"customer_name"`
	Email string `json:"email" db:"customer_email"`
}

// Booking 訂單模型；TotalPrice 於建立時由 UnitPrice × Quantity 決定，之後不再重算
type Booking struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Reference      string          `json:"reference" db:"reference"`
	EventID        uuid.UUID       `json:"event_id" db:"event_id"`
	TicketTypeID   string          `json:"ticket_type_id" db:"ticket_type_id"`
	TicketTypeName string          `json:"ticket_type_name" db:"ticket_type_name"`
	UnitPrice      decimal.Decimal `json:"unit_price" db:"unit_price"`
	Quantity       int             `json:"quantity" db:"quantity"`
	TotalPrice     decimal.Decimal `json:"total_price" db:"total_price"`
	Status         BookingStatus   `json:"status" db:"status"`
	Payment        PaymentSnapshot `json:"payment_method" db:"payment"`
	Customer       Customer        `json:"customer"`
	Version        int             `json:"-" db:"version"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	PaidAt         *time.Time      `json:"paid_at,omitempty" db:"paid_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// NewBookingReference 產生 BK 開頭加 8 位數字的訂單編號
func NewBookingReference() string {
	return fmt.Sprintf("BK%08d", rand.IntN(100_000_000))
}

// IsBookingReference 判斷字串是否為訂單編號格式
func IsBookingReference(s string) bool {
	if len(s) != 10 || !strings.HasPrefix(strings.ToUpper(s), "BK") {
		return false
	}
	for _, r := range s[2:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BookingFilter 主辦方訂單列表查詢條件
type BookingFilter struct {
	Status BookingStatus `form:"status"`
	Search string        `form:"search"`
}

// UpdateBookingStatusRequest 更新訂單狀態請求
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// StatusChange UpdateStatusWithLock 的結果
type StatusChange struct {
	Previous BookingStatus
	Booking  *Booking
}
