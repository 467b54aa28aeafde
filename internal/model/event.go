package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryAll 不過濾分類
const CategoryAll = "All"

// Categories 前台可選的活動分類
var Categories = []string{
	CategoryAll,
	"Music",
	"Technology",
	"Food",
	"Art",
	"Sports",
	"Entertainment",
	"Business",
	"Education",
}

// Event 活動模型，發佈後不可修改
type Event struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Title        string          `json:"title" db:"title"`
	Description  string          `json:"description" db:"description"`
	Category     string          `json:"category" db:"category"`
	Date         time.Time       `json:"date" db:"event_date"`
	StartTime    string          `json:"start_time" db:"start_time"`
	EndTime      string          `json:"end_time" db:"end_time"`
	Location     string          `json:"location" db:"location"`
	Organizer    string          `json:"organizer" db:"organizer"`
	ImageURL     string          `json:"image_url,omitempty" db:"image_url"`
	BasePrice    decimal.Decimal `json:"price" db:"base_price"`
	TotalTickets int             `json:"total_tickets" db:"total_tickets"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`

	TicketTypes []TicketType `json:"ticket_types" db:"-"`
}

// FindTicketType 依 id 找出活動底下的票種
func (e *Event) FindTicketType(id string) (TicketType, bool) {
	for _, tt := range e.TicketTypes {
		if tt.ID == id {
			return tt, true
		}
	}
	return TicketType{}, false
}

// LowestPrice 票種最低價，沒有票種時回傳 BasePrice
func (e *Event) LowestPrice() decimal.Decimal {
	if len(e.TicketTypes) == 0 {
		return e.BasePrice
	}
	lowest := e.TicketTypes[0].Price
	for _, tt := range e.TicketTypes[1:] {
		if tt.Price.LessThan(lowest) {
			lowest = tt.Price
		}
	}
	return lowest
}

// EventFilter 活動列表查詢條件
type EventFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// HasCategory 空字串與 "All" 都視為不過濾
func (f EventFilter) HasCategory() bool {
	c := strings.TrimSpace(f.Category)
	return c != "" && !strings.EqualFold(c, CategoryAll)
}
