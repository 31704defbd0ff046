package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/order"
	"github.com/shopbot/backend/internal/domain/shared"
)

// OrderService handles order retrieval and lifecycle operations
type OrderService struct {
	orderRepo order.Repository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.Repository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToOrderResponse(o), nil
}

// ListByClient retrieves a client's orders, newest first
func (s *OrderService) ListByClient(ctx context.Context, clientID uuid.UUID, filter ListFilter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByClient(ctx, clientID, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = *ToOrderResponse(&o)
	}

	return responses, nil
}

// UpdateStatus moves an order through its lifecycle, enforcing the
// closed status graph
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.TransitionTo(status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	return ToOrderResponse(o), nil
}
