package order

import (
	"github.com/shopbot/backend/internal/domain/shared"
)

// Event types for order aggregates
const (
	EventTypeOrderPlaced        = "order.placed"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// OrderPlacedEvent is published when an order is created at checkout
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	ClientID   string `json:"client_id"`
	TotalPrice string `json:"total_price"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(o *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, "Order", o.ID),
		ClientID:        o.ClientID.String(),
		TotalPrice:      o.TotalPrice.StringFixed(2),
	}
}

// OrderStatusChangedEvent is published on every status transition
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	From Status `json:"from"`
	To   Status `json:"to"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, from, to Status) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, "Order", o.ID),
		From:            from,
		To:              to,
	}
}
