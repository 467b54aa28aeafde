package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketType 票種模型，id 只在所屬活動內唯一
type TicketType struct {
	ID          string          `json:"id" db:"id"`
	EventID     uuid.UUID       `json:"event_id" db:"event_id"`
	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description" db:"description"`
	Position    int             `json:"-" db:"position"`
}

// IsValid 檢查票種資料是否可以上架
func (t TicketType) IsValid() bool {
	return t.ID != "" && t.Name != "" && !t.Price.IsNegative()
}
