package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopbot/backend/internal/domain/catalog"
	"github.com/shopbot/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations,
// including image normalization and blob storage
type ProductService struct {
	productRepo     catalog.ProductRepository
	subCategoryRepo catalog.SubCategoryRepository
	normalizer      ImageNormalizer
	images          ImageStorage
	logger          *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	subCategoryRepo catalog.SubCategoryRepository,
	normalizer ImageNormalizer,
	images ImageStorage,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo:     productRepo,
		subCategoryRepo: subCategoryRepo,
		normalizer:      normalizer,
		images:          images,
		logger:          logger,
	}
}

// Create creates a new product. When the request carries image data the
// image is normalized and stored first; a normalization failure aborts
// the whole create.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.subCategoryRepo.FindByID(ctx, req.SubCategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SUBCATEGORY", "SubCategory not found")
		}
		return nil, err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price is not a valid decimal")
	}

	product, err := catalog.NewProduct(req.SubCategoryID, req.Name, req.Description, price)
	if err != nil {
		return nil, err
	}

	if len(req.Image) > 0 {
		key, err := s.storeImage(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		product.SetImage(key)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		// The row never existed, so the blob is orphaned; clean it up.
		if product.HasImage() {
			s.deleteBlob(ctx, product.ImageKey)
		}
		return nil, err
	}

	return ToProductResponse(product), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// ListBySubCategory retrieves products under a subcategory
func (s *ProductService) ListBySubCategory(ctx context.Context, subCategoryID uuid.UUID, filter ListFilter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindBySubCategory(ctx, subCategoryID, shared.Filter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = *ToProductResponse(&p)
	}

	return responses, nil
}

// List retrieves all products matching the filter
func (s *ProductService) List(ctx context.Context, filter ListFilter) ([]ProductResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = *ToProductResponse(&p)
	}

	return responses, total, nil
}

// Update changes a product's basic fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" || req.Description != nil {
		name := req.Name
		if name == "" {
			name = product.Name
		}
		description := product.Description
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}

	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_PRICE", "Price is not a valid decimal")
		}
		if err := product.UpdatePrice(price); err != nil {
			return nil, err
		}
	}

	if req.SubCategoryID != nil && *req.SubCategoryID != product.SubCategoryID {
		if _, err := s.subCategoryRepo.FindByID(ctx, *req.SubCategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_SUBCATEGORY", "SubCategory not found")
			}
			return nil, err
		}
		if err := product.Reassign(*req.SubCategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// AttachImage normalizes the uploaded image, stores it under a fresh
// key and attaches it to the product. The previous blob, if any, is
// deleted best-effort after the row update succeeds.
func (s *ProductService) AttachImage(ctx context.Context, id uuid.UUID, data []byte) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := s.storeImage(ctx, data)
	if err != nil {
		return nil, err
	}

	oldKey := product.ImageKey
	product.SetImage(key)

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.deleteBlob(ctx, key)
		return nil, err
	}

	if oldKey != "" {
		s.deleteBlob(ctx, oldKey)
	}

	return ToProductResponse(product), nil
}

// RemoveImage detaches and best-effort deletes the product's image
func (s *ProductService) RemoveImage(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !product.HasImage() {
		return ToProductResponse(product), nil
	}

	oldKey := product.ImageKey
	product.ClearImage()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.deleteBlob(ctx, oldKey)

	return ToProductResponse(product), nil
}

// Delete deletes a product and best-effort deletes its image blob
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if product.HasImage() {
		s.deleteBlob(ctx, product.ImageKey)
	}

	return nil
}

// storeImage normalizes raw upload bytes and writes the resulting JPEG
// under a fresh key
func (s *ProductService) storeImage(ctx context.Context, data []byte) (string, error) {
	normalized, err := s.normalizer.Normalize(data)
	if err != nil {
		return "", shared.NewDomainError("INVALID_IMAGE", "Image could not be decoded: "+err.Error())
	}

	key := NewImageKey()
	if err := s.images.Put(ctx, key, normalized, "image/jpeg"); err != nil {
		return "", err
	}

	return key, nil
}

// deleteBlob removes an image blob best-effort, logging failures
func (s *ProductService) deleteBlob(ctx context.Context, key string) {
	if err := s.images.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to delete product image blob",
			zap.String("key", key),
			zap.Error(err))
	}
}
