package model_test

import (
	"testing"

	"go-gin-event-booking/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEventFilter_HasCategory(t *testing.T) {
	tests := []struct {
		name   string
		filter model.EventFilter
		want   bool
	}{
		{"empty", model.EventFilter{}, false},
		{"blank", model.EventFilter{Category: "  "}, false},
		{"all", model.EventFilter{Category: "All"}, false},
		{"all lower case", model.EventFilter{Category: "all"}, false},
		{"category", model.EventFilter{Category: "Food"}, true},
		{"search only", model.EventFilter{Search: "wine"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.HasCategory())
		})
	}
}

func TestEvent_FindTicketTypeAndLowestPrice(t *testing.T) {
	e := &model.Event{
		BasePrice: decimal.RequireFromString("10"),
		TicketTypes: []model.TicketType{
			{ID: "vip", Price: decimal.RequireFromString("129.99")},
			{ID: "early", Price: decimal.RequireFromString("39.99")},
			{ID: "standard", Price: decimal.RequireFromString("49.99")},
		},
	}

	tt, ok := e.FindTicketType("early")
	assert.True(t, ok)
	assert.Equal(t, "39.99", tt.Price.String())

	_, ok = e.FindTicketType("student")
	assert.False(t, ok)

	assert.Equal(t, "39.99", e.LowestPrice().String())
	assert.Equal(t, "10", (&model.Event{BasePrice: decimal.RequireFromString("10")}).LowestPrice().String())
}
