package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/cart"
	"github.com/shopbot/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// Ensure GormCartRepository implements cart.Repository
var _ cart.Repository = (*GormCartRepository)(nil)

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByClientID finds the client's cart
func (r *GormCartRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) (*cart.Cart, error) {
	var c cart.Cart
	if err := conn(ctx, r.db).WithContext(ctx).First(&c, "client_id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetOrCreate returns the client's cart, creating it if absent. The
// unique index on client_id plus ON CONFLICT DO NOTHING resolves
// concurrent creations; the surviving row is re-read afterwards.
func (r *GormCartRepository) GetOrCreate(ctx context.Context, clientID uuid.UUID) (*cart.Cart, error) {
	c, err := cart.NewCart(clientID)
	if err != nil {
		return nil, err
	}

	if err := conn(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}},
			DoNothing: true,
		}).
		Create(c).Error; err != nil {
		return nil, err
	}

	return r.FindByClientID(ctx, clientID)
}

// UpsertItem inserts the line or increments the quantity of the
// existing (cart, product) line. The unique index plus ON CONFLICT
// merge makes concurrent adds for the same pair serialize instead of
// erroring or duplicating.
func (r *GormCartRepository) UpsertItem(ctx context.Context, item *cart.CartItem) error {
	return conn(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(item).Error
}

// SetItemQuantity overwrites the quantity of an existing line
func (r *GormCartRepository) SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return err
	}

	result := conn(ctx, r.db).WithContext(ctx).
		Model(&cart.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// RemoveItem deletes a single line
func (r *GormCartRepository) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	result := conn(ctx, r.db).WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&cart.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Lines returns the cart's lines joined with current product data
func (r *GormCartRepository) Lines(ctx context.Context, cartID uuid.UUID) ([]cart.Line, error) {
	return r.lines(ctx, cartID, false)
}

// LinesForUpdate is Lines with the line rows locked until the
// surrounding transaction ends, so checkout reads a consistent snapshot
// while concurrent cart mutations wait
func (r *GormCartRepository) LinesForUpdate(ctx context.Context, cartID uuid.UUID) ([]cart.Line, error) {
	return r.lines(ctx, cartID, true)
}

func (r *GormCartRepository) lines(ctx context.Context, cartID uuid.UUID, lock bool) ([]cart.Line, error) {
	db := conn(ctx, r.db)
	query := db.WithContext(ctx).
		Model(&cart.CartItem{}).
		Select("cart_items.product_id AS product_id, products.name AS product_name, products.price AS unit_price, cart_items.quantity AS quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.created_at ASC")

	// sqlite has no row locks; its writes serialize anyway
	if lock && db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "cart_items"}})
	}

	var lines []cart.Line
	if err := query.Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// ClearItems deletes all lines; the cart row itself survives for reuse
func (r *GormCartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	return conn(ctx, r.db).WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&cart.CartItem{}).Error
}
