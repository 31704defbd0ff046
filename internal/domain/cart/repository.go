package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for cart persistence
type Repository interface {
	// FindByClientID finds the client's cart
	FindByClientID(ctx context.Context, clientID uuid.UUID) (*Cart, error)

	// GetOrCreate returns the client's cart, creating it if absent.
	// Concurrent creations for the same client collapse to one row.
	GetOrCreate(ctx context.Context, clientID uuid.UUID) (*Cart, error)

	// UpsertItem inserts the line or, when a line for the same
	// (cart, product) pair exists, increments its quantity by the
	// item's quantity.
	UpsertItem(ctx context.Context, item *CartItem) error

	// SetItemQuantity overwrites the quantity of an existing line
	SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// RemoveItem deletes a single line
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error

	// Lines returns the cart's lines joined with current product data
	Lines(ctx context.Context, cartID uuid.UUID) ([]Line, error)

	// LinesForUpdate is Lines with the underlying rows locked for the
	// duration of the surrounding transaction, serializing checkout
	// against concurrent cart mutations
	LinesForUpdate(ctx context.Context, cartID uuid.UUID) ([]Line, error)

	// ClearItems deletes all lines; the cart row itself survives
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
