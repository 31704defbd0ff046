// Package order implements checkout and order lifecycle use cases.
package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/cart"
	"github.com/shopbot/backend/internal/domain/order"
	"github.com/shopbot/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CheckoutService turns a cart into an order
type CheckoutService struct {
	cartRepo  cart.Repository
	orderRepo order.Repository
	txManager shared.TxManager
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	cartRepo cart.Repository,
	orderRepo order.Repository,
	txManager shared.TxManager,
	logger *zap.Logger,
) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// PlaceOrder converts the client's cart into a pending order. The
// total is computed from live product prices, frozen on the order, and
// the cart lines are cleared; all inside one transaction, so a failure
// anywhere leaves the cart intact and no order behind. The cart rows
// are locked while the total is computed, serializing checkout against
// concurrent cart mutations.
func (s *CheckoutService) PlaceOrder(ctx context.Context, clientID uuid.UUID, req PlaceOrderRequest) (*OrderResponse, error) {
	var placed *order.Order

	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		c, err := s.cartRepo.FindByClientID(txCtx, clientID)
		if err != nil {
			return err
		}

		lines, err := s.cartRepo.LinesForUpdate(txCtx, c.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return shared.ErrEmptyCart
		}

		total := cart.Total(lines)

		o, err := order.NewOrder(clientID, &c.ID, req.ShippingAddress, total)
		if err != nil {
			return err
		}

		if err := s.orderRepo.Save(txCtx, o); err != nil {
			return err
		}

		if err := s.cartRepo.ClearItems(txCtx, c.ID); err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", placed.ID.String()),
		zap.String("client_id", clientID.String()),
		zap.String("total", placed.TotalPrice.StringFixed(2)))

	return ToOrderResponse(placed), nil
}
