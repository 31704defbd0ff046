// Package cart implements the shopping cart use cases: adding,
// adjusting and removing lines and computing the running total.
package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/cart"
	"github.com/shopbot/backend/internal/domain/catalog"
	"github.com/shopbot/backend/internal/domain/shared"
	"github.com/shopbot/backend/internal/domain/shared/valueobject"
)

// CartService handles cart-related business operations
type CartService struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.Repository, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem adds a product to the client's cart, creating the cart on
// first use. Adding a product already in the cart merges quantities
// into the existing line.
func (s *CartService) AddItem(ctx context.Context, clientID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	if err := cart.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNKNOWN_PRODUCT", "Product not found")
		}
		return nil, err
	}

	c, err := s.cartRepo.GetOrCreate(ctx, clientID)
	if err != nil {
		return nil, err
	}

	item, err := cart.NewCartItem(c.ID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpsertItem(ctx, item); err != nil {
		return nil, err
	}

	return s.respond(ctx, c)
}

// SetQuantity overwrites the quantity of an existing line
func (s *CartService) SetQuantity(ctx context.Context, clientID, productID uuid.UUID, quantity int) (*CartResponse, error) {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	c, err := s.cartRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.SetItemQuantity(ctx, c.ID, productID, quantity); err != nil {
		return nil, err
	}

	return s.respond(ctx, c)
}

// RemoveItem deletes a single line from the client's cart
func (s *CartService) RemoveItem(ctx context.Context, clientID, productID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.RemoveItem(ctx, c.ID, productID); err != nil {
		return nil, err
	}

	return s.respond(ctx, c)
}

// Get returns the client's cart with its lines and computed total.
// A client who has never added anything gets an empty cart view.
func (s *CartService) Get(ctx context.Context, clientID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &CartResponse{
				Lines: []LineResponse{},
				Total: valueobject.ZeroRUB().String(),
			}, nil
		}
		return nil, err
	}

	return s.respond(ctx, c)
}

// Items returns the cart's lines for display. Unknown clients get an
// empty slice.
func (s *CartService) Items(ctx context.Context, clientID uuid.UUID) ([]LineResponse, error) {
	view, err := s.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return view.Lines, nil
}

// Total computes the cart total from live product prices
func (s *CartService) Total(ctx context.Context, clientID uuid.UUID) (valueobject.Money, error) {
	c, err := s.cartRepo.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return valueobject.ZeroRUB(), nil
		}
		return valueobject.Money{}, err
	}

	lines, err := s.cartRepo.Lines(ctx, c.ID)
	if err != nil {
		return valueobject.Money{}, err
	}

	return valueobject.NewMoneyRUB(cart.Total(lines)), nil
}

// Clear removes every line from the client's cart
func (s *CartService) Clear(ctx context.Context, clientID uuid.UUID) error {
	c, err := s.cartRepo.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.cartRepo.ClearItems(ctx, c.ID)
}

// respond builds the cart view from current lines
func (s *CartService) respond(ctx context.Context, c *cart.Cart) (*CartResponse, error) {
	lines, err := s.cartRepo.Lines(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return ToCartResponse(c, lines), nil
}
