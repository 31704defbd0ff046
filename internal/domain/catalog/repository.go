package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll finds all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category; subcategories and products cascade
	// at the storage level
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubCategoryRepository defines the interface for subcategory persistence
type SubCategoryRepository interface {
	// FindByID finds a subcategory by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*SubCategory, error)

	// FindByCategory finds all subcategories under a category
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubCategory, error)

	// Save creates or updates a subcategory
	Save(ctx context.Context, subCategory *SubCategory) error

	// Delete deletes a subcategory; its products cascade at the
	// storage level
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySubCategory finds all products under a subcategory
	FindBySubCategory(ctx context.Context, subCategoryID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// ImageKeysByCategory returns the non-empty image keys of every
	// product that would cascade-delete with the given category
	ImageKeysByCategory(ctx context.Context, categoryID uuid.UUID) ([]string, error)

	// ImageKeysBySubCategory returns the non-empty image keys of every
	// product under the given subcategory
	ImageKeysBySubCategory(ctx context.Context, subCategoryID uuid.UUID) ([]string, error)
}
