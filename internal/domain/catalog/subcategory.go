package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/shared"
)

// SubCategory represents a second-level category nested under a Category.
// Deleting the parent category cascades to its subcategories at the
// storage level.
type SubCategory struct {
	shared.BaseAggregateRoot
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (SubCategory) TableName() string {
	return "subcategories"
}

// NewSubCategory creates a new subcategory under the given category
func NewSubCategory(categoryID uuid.UUID, name string) (*SubCategory, error) {
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &SubCategory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CategoryID:        categoryID,
		Name:              name,
	}, nil
}

// Rename changes the subcategory name
func (s *SubCategory) Rename(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// MoveTo reparents the subcategory under another category
func (s *SubCategory) MoveTo(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}

	s.CategoryID = categoryID
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
