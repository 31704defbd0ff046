package cart

import (
	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/cart"
	"github.com/shopbot/backend/internal/domain/shared/valueobject"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// LineResponse represents a single cart line in API responses
type LineResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   string    `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
}

// CartResponse represents a cart with its lines and computed total
type CartResponse struct {
	CartID uuid.UUID      `json:"cart_id"`
	Lines  []LineResponse `json:"lines"`
	Total  string         `json:"total"`
}

// ToCartResponse builds the cart view from its lines. The total is
// computed on demand from live product prices.
func ToCartResponse(c *cart.Cart, lines []cart.Line) *CartResponse {
	lineResponses := make([]LineResponse, len(lines))
	for i, l := range lines {
		lineResponses[i] = LineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal().StringFixed(2),
		}
	}

	return &CartResponse{
		CartID: c.ID,
		Lines:  lineResponses,
		Total:  valueobject.NewMoneyRUB(cart.Total(lines)).String(),
	}
}
