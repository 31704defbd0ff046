package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/shared"
)

// Repository defines the interface for client persistence
type Repository interface {
	// FindByID finds a client by its local ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByExternalID finds a client by the messaging platform's user ID
	FindByExternalID(ctx context.Context, externalID int64) (*Client, error)

	// FindAll finds all clients matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// Upsert inserts the client or, when a row with the same external
	// ID already exists, refreshes its profile fields. The stored row
	// is returned either way so concurrent first contacts collapse to
	// one record.
	Upsert(ctx context.Context, c *Client) (*Client, error)

	// Save updates an existing client
	Save(ctx context.Context, c *Client) error
}
