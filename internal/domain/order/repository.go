package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/shared"
)

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByClient finds a client's orders, newest first
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, o *Order) error
}
