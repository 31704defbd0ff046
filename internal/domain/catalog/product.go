package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopbot/backend/internal/domain/shared"
)

// Product represents a sellable item in the catalog.
// ImageKey, when non-empty, is the storage key of the product's
// normalized JPEG image; it is only ever produced by the catalog
// service, never supplied by callers.
type Product struct {
	shared.BaseAggregateRoot
	SubCategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageKey      string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(subCategoryID uuid.UUID, name, description string, price decimal.Decimal) (*Product, error) {
	if subCategoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUBCATEGORY_ID", "SubCategory ID cannot be empty")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SubCategoryID:     subCategoryID,
		Name:              name,
		Description:       description,
		Price:             price.Round(2),
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update changes the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// UpdatePrice changes the product's price
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Price = price.Round(2)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Reassign moves the product to another subcategory
func (p *Product) Reassign(subCategoryID uuid.UUID) error {
	if subCategoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUBCATEGORY_ID", "SubCategory ID cannot be empty")
	}

	p.SubCategoryID = subCategoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImage replaces the stored image key
func (p *Product) SetImage(key string) {
	p.ImageKey = key
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductImageChangedEvent(p))
}

// ClearImage removes the stored image key
func (p *Product) ClearImage() {
	p.ImageKey = ""
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// HasImage returns true if the product has an image attached
func (p *Product) HasImage() bool {
	return p.ImageKey != ""
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validatePrice validates the product price
func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	return nil
}
