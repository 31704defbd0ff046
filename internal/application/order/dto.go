package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/order"
)

// PlaceOrderRequest represents a checkout request
type PlaceOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID  `json:"id"`
	ClientID        uuid.UUID  `json:"client_id"`
	CartID          *uuid.UUID `json:"cart_id,omitempty"`
	Status          string     `json:"status"`
	ShippingAddress string     `json:"shipping_address"`
	TotalPrice      string     `json:"total_price"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:              o.ID,
		ClientID:        o.ClientID,
		CartID:          o.CartID,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		TotalPrice:      o.TotalPrice.StringFixed(2),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ListFilter carries common list parameters
type ListFilter struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
