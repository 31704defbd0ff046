package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/catalog"
	"github.com/shopbot/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSubCategoryRepository implements catalog.SubCategoryRepository using GORM
type GormSubCategoryRepository struct {
	db *gorm.DB
}

// Ensure GormSubCategoryRepository implements catalog.SubCategoryRepository
var _ catalog.SubCategoryRepository = (*GormSubCategoryRepository)(nil)

// NewGormSubCategoryRepository creates a new GormSubCategoryRepository
func NewGormSubCategoryRepository(db *gorm.DB) *GormSubCategoryRepository {
	return &GormSubCategoryRepository{db: db}
}

// FindByID finds a subcategory by its ID
func (r *GormSubCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SubCategory, error) {
	var sub catalog.SubCategory
	if err := conn(ctx, r.db).WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// FindByCategory finds all subcategories under a category
func (r *GormSubCategoryRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.SubCategory, error) {
	var subs []catalog.SubCategory
	if err := conn(ctx, r.db).WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Save creates or updates a subcategory
func (r *GormSubCategoryRepository) Save(ctx context.Context, sub *catalog.SubCategory) error {
	return conn(ctx, r.db).WithContext(ctx).Save(sub).Error
}

// Delete deletes a subcategory; its products cascade at the storage level
func (r *GormSubCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).WithContext(ctx).Delete(&catalog.SubCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
