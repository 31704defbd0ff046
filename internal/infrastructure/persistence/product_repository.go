package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/catalog"
	"github.com/shopbot/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// Ensure GormProductRepository implements catalog.ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := conn(ctx, r.db).WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBySubCategory finds all products under a subcategory
func (r *GormProductRepository) FindBySubCategory(ctx context.Context, subCategoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := applyFilter(
		conn(ctx, r.db).WithContext(ctx).Model(&catalog.Product{}).Where("sub_category_id = ?", subCategoryID),
		filter, "name")

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll finds all products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := applyFilter(conn(ctx, r.db).WithContext(ctx).Model(&catalog.Product{}), filter, "name")

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count counts products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := conn(ctx, r.db).WithContext(ctx).Model(&catalog.Product{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return conn(ctx, r.db).WithContext(ctx).Save(product).Error
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ImageKeysByCategory returns the non-empty image keys of every product
// that would cascade-delete with the given category
func (r *GormProductRepository) ImageKeysByCategory(ctx context.Context, categoryID uuid.UUID) ([]string, error) {
	var keys []string
	if err := conn(ctx, r.db).WithContext(ctx).
		Model(&catalog.Product{}).
		Joins("JOIN subcategories ON subcategories.id = products.sub_category_id").
		Where("subcategories.category_id = ? AND products.image_key <> ''", categoryID).
		Pluck("products.image_key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// ImageKeysBySubCategory returns the non-empty image keys of every
// product under the given subcategory
func (r *GormProductRepository) ImageKeysBySubCategory(ctx context.Context, subCategoryID uuid.UUID) ([]string, error) {
	var keys []string
	if err := conn(ctx, r.db).WithContext(ctx).
		Model(&catalog.Product{}).
		Where("sub_category_id = ? AND image_key <> ''", subCategoryID).
		Pluck("image_key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
