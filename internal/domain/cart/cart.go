package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopbot/backend/internal/domain/shared"
)

// Cart is a client's shopping cart. Exactly one cart exists per client;
// it is created lazily on the first add and survives checkout (only its
// items are cleared).
type Cart struct {
	shared.BaseAggregateRoot
	ClientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates a new cart for the given client
func NewCart(clientID uuid.UUID) (*Cart, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
	}, nil
}

// CartItem is a single product line in a cart. The (cart, product) pair
// is unique at the storage level; adding the same product again merges
// into the existing line.
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product,priority:2"`
	Quantity  int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a new cart line
func NewCartItem(cartID, productID uuid.UUID, quantity int) (*CartItem, error) {
	if cartID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CART_ID", "Cart ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID cannot be empty")
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// ValidateQuantity checks a cart line quantity
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	return nil
}

// Line is a cart read model joining a line with its product's current
// name and price. Prices are live catalog prices, not snapshots.
type Line struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Subtotal returns unit price times quantity
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums the subtotals of the given lines
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total.Round(2)
}
