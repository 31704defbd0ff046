// Package catalog implements the catalog use cases: managing the
// category tree and products, and normalizing product images into
// blob storage.
package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/catalog"
	"github.com/shopbot/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	images       ImageStorage
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	images ImageStorage,
	logger *zap.Logger,
) *CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		images:       images,
		logger:       logger,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// List retrieves all categories
func (s *CategoryService) List(ctx context.Context, filter ListFilter) ([]CategoryResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
	}

	categories, err := s.categoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.categoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = *ToCategoryResponse(&cat)
	}

	return responses, total, nil
}

// Update renames an existing category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete deletes a category. Subcategories and products underneath it
// are removed by the database cascade; their image blobs are then
// deleted best-effort, so a storage failure never undoes the catalog
// change.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	// Collect image keys before the cascade erases the product rows.
	keys, err := s.productRepo.ImageKeysByCategory(ctx, id)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeBlobs(ctx, keys)

	return nil
}

// removeBlobs deletes image blobs best-effort, logging failures
func (s *CategoryService) removeBlobs(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.images.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to delete product image blob",
				zap.String("key", key),
				zap.Error(err))
		}
	}
}
