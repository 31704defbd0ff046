package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/catalog"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest represents a request to rename a category
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateSubCategoryRequest represents a request to create a subcategory
type CreateSubCategoryRequest struct {
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
}

// UpdateSubCategoryRequest represents a request to update a subcategory
type UpdateSubCategoryRequest struct {
	Name       string     `json:"name"`
	CategoryID *uuid.UUID `json:"category_id"`
}

// SubCategoryResponse represents a subcategory in API responses
type SubCategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToSubCategoryResponse converts a domain subcategory to a response DTO
func ToSubCategoryResponse(s *catalog.SubCategory) *SubCategoryResponse {
	return &SubCategoryResponse{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		Name:       s.Name,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	SubCategoryID uuid.UUID `json:"sub_category_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	Image         []byte    `json:"-"` // raw upload, normalized before storage
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	Price         *string    `json:"price"`
	SubCategoryID *uuid.UUID `json:"sub_category_id"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	SubCategoryID uuid.UUID `json:"sub_category_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	ImageKey      string    `json:"image_key,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		SubCategoryID: p.SubCategoryID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.StringFixed(2),
		ImageKey:      p.ImageKey,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ListFilter carries common list parameters
type ListFilter struct {
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}
