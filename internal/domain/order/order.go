package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopbot/backend/internal/domain/shared"
)

// Status represents the state of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCanceled  Status = "canceled"
)

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status graph allows moving to the
// given status. Orders move forward through pending, paid, shipped,
// delivered; canceled is reachable from pending or paid only.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusPaid || to == StatusCanceled
	case StatusPaid:
		return to == StatusShipped || to == StatusCanceled
	case StatusShipped:
		return to == StatusDelivered
	default:
		return false
	}
}

// Order is a checkout snapshot: the client, the originating cart, the
// shipping address and the total price frozen at creation time. Orders
// are never deleted in the normal flow.
type Order struct {
	shared.BaseAggregateRoot
	ClientID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CartID          *uuid.UUID      `gorm:"type:uuid;index"` // nulled if the cart is ever deleted
	Status          Status          `gorm:"type:varchar(20);not null;default:'pending'"`
	ShippingAddress string          `gorm:"type:text;not null"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order with a frozen total
func NewOrder(clientID uuid.UUID, cartID *uuid.UUID, shippingAddress string, total decimal.Decimal) (*Order, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}
	if shippingAddress == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address cannot be empty")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Order total cannot be negative")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		CartID:            cartID,
		Status:            StatusPending,
		ShippingAddress:   shippingAddress,
		TotalPrice:        total.Round(2),
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// TransitionTo moves the order to a new status, enforcing the closed
// status graph
func (o *Order) TransitionTo(to Status) error {
	if !to.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(to) {
		return shared.NewDomainError("INVALID_TRANSITION", "Cannot transition order from "+string(o.Status)+" to "+string(to))
	}

	from := o.Status
	o.Status = to
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from, to))

	return nil
}
