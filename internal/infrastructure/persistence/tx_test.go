package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shopbot/backend/internal/domain/cart"
	"github.com/shopbot/backend/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedCartWithLine prepares a client with one cart line and returns the cart
func seedCartWithLine(t *testing.T, db *gorm.DB) *cart.Cart {
	t.Helper()
	ctx := context.Background()
	cartRepo := NewGormCartRepository(db)

	c := seedClient(t, db, 100)
	_, subCategory := seedCatalog(t, db)
	product := seedProduct(t, db, subCategory, "Sencha", "10.00")

	shoppingCart, err := cartRepo.GetOrCreate(ctx, c.ID)
	require.NoError(t, err)

	item, err := cart.NewCartItem(shoppingCart.ID, product.ID, 2)
	require.NoError(t, err)
	require.NoError(t, cartRepo.UpsertItem(ctx, item))

	return shoppingCart
}

func TestGormTxManager_CommitsCheckout(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := NewGormCartRepository(db)
	orderRepo := NewGormOrderRepository(db)
	txManager := NewGormTxManager(db)
	ctx := context.Background()

	shoppingCart := seedCartWithLine(t, db)

	var placed *order.Order
	err := txManager.WithinTx(ctx, func(txCtx context.Context) error {
		lines, err := cartRepo.LinesForUpdate(txCtx, shoppingCart.ID)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(shoppingCart.ClientID, &shoppingCart.ID, "Moscow, Arbat 1", cart.Total(lines))
		if err != nil {
			return err
		}
		if err := orderRepo.Save(txCtx, o); err != nil {
			return err
		}
		if err := cartRepo.ClearItems(txCtx, shoppingCart.ID); err != nil {
			return err
		}

		placed = o
		return nil
	})
	require.NoError(t, err)

	found, err := orderRepo.FindByID(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, "20.00", found.TotalPrice.StringFixed(2))

	lines, err := cartRepo.Lines(ctx, shoppingCart.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestGormTxManager_RollsBackCheckout(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := NewGormCartRepository(db)
	orderRepo := NewGormOrderRepository(db)
	txManager := NewGormTxManager(db)
	ctx := context.Background()

	shoppingCart := seedCartWithLine(t, db)

	boom := errors.New("payment gateway unreachable")
	err := txManager.WithinTx(ctx, func(txCtx context.Context) error {
		lines, err := cartRepo.LinesForUpdate(txCtx, shoppingCart.ID)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(shoppingCart.ClientID, &shoppingCart.ID, "Moscow, Arbat 1", cart.Total(lines))
		if err != nil {
			return err
		}
		if err := orderRepo.Save(txCtx, o); err != nil {
			return err
		}
		if err := cartRepo.ClearItems(txCtx, shoppingCart.ID); err != nil {
			return err
		}

		// failure after both writes: everything must unwind
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// the cart still holds its line
	lines, err := cartRepo.Lines(ctx, shoppingCart.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	// and no order row survived
	var count int64
	require.NoError(t, db.Model(&order.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGormTxManager_WritesInsideTxInvisibleOutsideUntilCommit(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := NewGormOrderRepository(db)
	txManager := NewGormTxManager(db)
	ctx := context.Background()

	c := seedClient(t, db, 100)

	err := txManager.WithinTx(ctx, func(txCtx context.Context) error {
		o, err := order.NewOrder(c.ID, nil, "Moscow, Arbat 1", decimal.NewFromInt(10))
		if err != nil {
			return err
		}
		if err := orderRepo.Save(txCtx, o); err != nil {
			return err
		}

		// visible inside the transaction
		found, err := orderRepo.FindByID(txCtx, o.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, o.ID, found.ID)
		return nil
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&order.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
