// Package client implements the client registry use cases: recording
// every storefront visitor keyed by the messaging platform's user ID.
package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/client"
	"github.com/shopbot/backend/internal/domain/shared"
)

// RegistryService handles client registration and lookup
type RegistryService struct {
	clientRepo client.Repository
}

// NewRegistryService creates a new RegistryService
func NewRegistryService(clientRepo client.Repository) *RegistryService {
	return &RegistryService{clientRepo: clientRepo}
}

// Register records a contact from the given external identity. The
// first contact creates the client; later contacts refresh the profile
// fields and leave the external ID untouched. Concurrent first
// contacts collapse to a single record.
func (s *RegistryService) Register(ctx context.Context, req RegisterClientRequest) (*ClientResponse, error) {
	c, err := client.NewClient(req.ExternalID, client.Profile{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		FullName:  req.FullName,
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.clientRepo.Upsert(ctx, c)
	if err != nil {
		return nil, err
	}

	return ToClientResponse(stored), nil
}

// GetByID retrieves a client by its local ID
func (s *RegistryService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToClientResponse(c), nil
}

// GetByExternalID retrieves a client by the messaging platform's user ID
func (s *RegistryService) GetByExternalID(ctx context.Context, externalID int64) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	return ToClientResponse(c), nil
}

// List retrieves all clients matching the filter
func (s *RegistryService) List(ctx context.Context, filter ListFilter) ([]ClientResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx, shared.Filter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = *ToClientResponse(&c)
	}

	return responses, nil
}
