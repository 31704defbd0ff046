package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shopbot/backend/internal/domain/catalog"
	"github.com/shopbot/backend/internal/domain/client"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedClient inserts a client and returns it
func seedClient(t *testing.T, db *gorm.DB, externalID int64) *client.Client {
	t.Helper()
	c, err := client.NewClient(externalID, client.Profile{Username: "tester"})
	require.NoError(t, err)
	require.NoError(t, NewGormClientRepository(db).Save(context.Background(), c))
	return c
}

// seedCatalog inserts a category, a subcategory under it, and returns both
func seedCatalog(t *testing.T, db *gorm.DB) (*catalog.Category, *catalog.SubCategory) {
	t.Helper()
	ctx := context.Background()

	category, err := catalog.NewCategory("Tea")
	require.NoError(t, err)
	require.NoError(t, NewGormCategoryRepository(db).Save(ctx, category))

	subCategory, err := catalog.NewSubCategory(category.ID, "Green Tea")
	require.NoError(t, err)
	require.NoError(t, NewGormSubCategoryRepository(db).Save(ctx, subCategory))

	return category, subCategory
}

// seedProduct inserts a product under the subcategory
func seedProduct(t *testing.T, db *gorm.DB, subCategory *catalog.SubCategory, name, price string) *catalog.Product {
	t.Helper()
	d, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product, err := catalog.NewProduct(subCategory.ID, name, "", d)
	require.NoError(t, err)
	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), product))
	return product
}
