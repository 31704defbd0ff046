package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/catalog"
	"github.com/shopbot/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SubCategoryService handles subcategory-related business operations
type SubCategoryService struct {
	categoryRepo    catalog.CategoryRepository
	subCategoryRepo catalog.SubCategoryRepository
	productRepo     catalog.ProductRepository
	images          ImageStorage
	logger          *zap.Logger
}

// NewSubCategoryService creates a new SubCategoryService
func NewSubCategoryService(
	categoryRepo catalog.CategoryRepository,
	subCategoryRepo catalog.SubCategoryRepository,
	productRepo catalog.ProductRepository,
	images ImageStorage,
	logger *zap.Logger,
) *SubCategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubCategoryService{
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		productRepo:     productRepo,
		images:          images,
		logger:          logger,
	}
}

// Create creates a new subcategory under an existing category
func (s *SubCategoryService) Create(ctx context.Context, req CreateSubCategoryRequest) (*SubCategoryResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
		}
		return nil, err
	}

	subCategory, err := catalog.NewSubCategory(req.CategoryID, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.subCategoryRepo.Save(ctx, subCategory); err != nil {
		return nil, err
	}

	return ToSubCategoryResponse(subCategory), nil
}

// GetByID retrieves a subcategory by ID
func (s *SubCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*SubCategoryResponse, error) {
	subCategory, err := s.subCategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToSubCategoryResponse(subCategory), nil
}

// ListByCategory retrieves all subcategories under a category
func (s *SubCategoryService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubCategoryResponse, error) {
	subCategories, err := s.subCategoryRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]SubCategoryResponse, len(subCategories))
	for i, sc := range subCategories {
		responses[i] = *ToSubCategoryResponse(&sc)
	}

	return responses, nil
}

// Update renames a subcategory and optionally reparents it
func (s *SubCategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateSubCategoryRequest) (*SubCategoryResponse, error) {
	subCategory, err := s.subCategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		if err := subCategory.Rename(req.Name); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil && *req.CategoryID != subCategory.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, err
		}
		if err := subCategory.MoveTo(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.subCategoryRepo.Save(ctx, subCategory); err != nil {
		return nil, err
	}

	return ToSubCategoryResponse(subCategory), nil
}

// Delete deletes a subcategory. Its products are removed by the
// database cascade; their image blobs are deleted best-effort.
func (s *SubCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.subCategoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	keys, err := s.productRepo.ImageKeysBySubCategory(ctx, id)
	if err != nil {
		return err
	}

	if err := s.subCategoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.images.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to delete product image blob",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return nil
}
