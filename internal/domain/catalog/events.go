package catalog

import (
	"github.com/shopbot/backend/internal/domain/shared"
)

// Event types for catalog aggregates
const (
	EventTypeCategoryCreated     = "catalog.category.created"
	EventTypeProductCreated      = "catalog.product.created"
	EventTypeProductImageChanged = "catalog.product.image_changed"
)

// CategoryCreatedEvent is published when a category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent
func NewCategoryCreatedEvent(category *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryCreated, "Category", category.ID),
		Name:            category.Name,
	}
}

// ProductCreatedEvent is published when a product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Price string `json:"price"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, "Product", product.ID),
		Name:            product.Name,
		Price:           product.Price.StringFixed(2),
	}
}

// ProductImageChangedEvent is published when a product's image key changes
type ProductImageChangedEvent struct {
	shared.BaseDomainEvent
	ImageKey string `json:"image_key"`
}

// NewProductImageChangedEvent creates a new ProductImageChangedEvent
func NewProductImageChangedEvent(product *Product) *ProductImageChangedEvent {
	return &ProductImageChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductImageChanged, "Product", product.ID),
		ImageKey:        product.ImageKey,
	}
}
