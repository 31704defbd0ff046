package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopbot/backend/internal/domain/cart"
	"github.com/shopbot/backend/internal/domain/catalog"
	"github.com/shopbot/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClientID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func createTestCart(clientID uuid.UUID) *cart.Cart {
	c, _ := cart.NewCart(clientID)
	return c
}

func createTestProduct(price string) *catalog.Product {
	d, _ := decimal.NewFromString(price)
	p, _ := catalog.NewProduct(uuid.New(), "Sencha", "", d)
	return p
}

func TestCartService_AddItem_CreatesCartOnFirstUse(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	ctx := context.Background()
	clientID := newTestClientID()
	c := createTestCart(clientID)
	product := createTestProduct("10.00")

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockCartRepo.On("GetOrCreate", ctx, clientID).Return(c, nil)
	mockCartRepo.On("UpsertItem", ctx, mock.MatchedBy(func(item *cart.CartItem) bool {
		return item.CartID == c.ID && item.ProductID == product.ID && item.Quantity == 2
	})).Return(nil)
	mockCartRepo.On("Lines", ctx, c.ID).Return([]cart.Line{
		{ProductID: product.ID, ProductName: "Sencha", UnitPrice: product.Price, Quantity: 2},
	}, nil)

	result, err := service.AddItem(ctx, clientID, AddItemRequest{ProductID: product.ID, Quantity: 2})

	require.NoError(t, err)
	assert.Len(t, result.Lines, 1)
	assert.Equal(t, "20.00 RUB", result.Total)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_AddItem_RejectsZeroQuantity(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	_, err := service.AddItem(context.Background(), newTestClientID(), AddItemRequest{
		ProductID: uuid.New(),
		Quantity:  0,
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	mockCartRepo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	ctx := context.Background()
	productID := uuid.New()
	mockProductRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

	_, err := service.AddItem(ctx, newTestClientID(), AddItemRequest{ProductID: productID, Quantity: 1})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNKNOWN_PRODUCT", domainErr.Code)
	mockCartRepo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestCartService_Get_EmptyViewForUnknownClient(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	ctx := context.Background()
	clientID := newTestClientID()
	mockCartRepo.On("FindByClientID", ctx, clientID).Return(nil, shared.ErrNotFound)

	result, err := service.Get(ctx, clientID)

	require.NoError(t, err)
	assert.Empty(t, result.Lines)
	assert.Equal(t, "0.00 RUB", result.Total)
}

func TestCartService_Total_SumsLineSubtotals(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	ctx := context.Background()
	clientID := newTestClientID()
	c := createTestCart(clientID)

	mockCartRepo.On("FindByClientID", ctx, clientID).Return(c, nil)
	mockCartRepo.On("Lines", ctx, c.ID).Return([]cart.Line{
		{ProductID: uuid.New(), ProductName: "Tea", UnitPrice: decimal.NewFromFloat(10.00), Quantity: 2},
		{ProductID: uuid.New(), ProductName: "Cup", UnitPrice: decimal.NewFromFloat(5.50), Quantity: 1},
	}, nil)

	total, err := service.Total(ctx, clientID)

	require.NoError(t, err)
	assert.Equal(t, "25.50 RUB", total.String())
}

func TestCartService_Total_ZeroForUnknownClient(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	ctx := context.Background()
	clientID := newTestClientID()
	mockCartRepo.On("FindByClientID", ctx, clientID).Return(nil, shared.ErrNotFound)

	total, err := service.Total(ctx, clientID)

	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestCartService_SetQuantity_MissingLine(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	ctx := context.Background()
	clientID := newTestClientID()
	c := createTestCart(clientID)
	productID := uuid.New()

	mockCartRepo.On("FindByClientID", ctx, clientID).Return(c, nil)
	mockCartRepo.On("SetItemQuantity", ctx, c.ID, productID, 3).Return(shared.ErrNotFound)

	_, err := service.SetQuantity(ctx, clientID, productID, 3)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	ctx := context.Background()
	clientID := newTestClientID()
	c := createTestCart(clientID)
	productID := uuid.New()

	mockCartRepo.On("FindByClientID", ctx, clientID).Return(c, nil)
	mockCartRepo.On("RemoveItem", ctx, c.ID, productID).Return(nil)
	mockCartRepo.On("Lines", ctx, c.ID).Return([]cart.Line{}, nil)

	result, err := service.RemoveItem(ctx, clientID, productID)

	require.NoError(t, err)
	assert.Empty(t, result.Lines)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_Clear_UnknownClientIsNoop(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCartService(mockCartRepo, mockProductRepo)

	ctx := context.Background()
	clientID := newTestClientID()
	mockCartRepo.On("FindByClientID", ctx, clientID).Return(nil, shared.ErrNotFound)

	assert.NoError(t, service.Clear(ctx, clientID))
	mockCartRepo.AssertNotCalled(t, "ClearItems", mock.Anything, mock.Anything)
}
