package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/client"
	"github.com/shopbot/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormClientRepository implements client.Repository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// Ensure GormClientRepository implements client.Repository
var _ client.Repository = (*GormClientRepository)(nil)

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its local ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	var c client.Client
	if err := conn(ctx, r.db).WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByExternalID finds a client by the messaging platform's user ID
func (r *GormClientRepository) FindByExternalID(ctx context.Context, externalID int64) (*client.Client, error) {
	var c client.Client
	if err := conn(ctx, r.db).WithContext(ctx).First(&c, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]client.Client, error) {
	var clients []client.Client
	query := applyFilter(conn(ctx, r.db).WithContext(ctx).Model(&client.Client{}), filter, "username")

	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Upsert inserts the client or refreshes the profile fields of the row
// holding the same external ID. ON CONFLICT resolves concurrent first
// contacts; the stored row is re-read and returned so the caller always
// sees the canonical record.
func (r *GormClientRepository) Upsert(ctx context.Context, c *client.Client) (*client.Client, error) {
	db := conn(ctx, r.db)

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"username":   c.Username,
				"first_name": c.FirstName,
				"last_name":  c.LastName,
				"full_name":  c.FullName,
				"updated_at": time.Now(),
			}),
		}).
		Create(c).Error; err != nil {
		return nil, err
	}

	return r.FindByExternalID(ctx, c.ExternalID)
}

// Save updates an existing client
func (r *GormClientRepository) Save(ctx context.Context, c *client.Client) error {
	return conn(ctx, r.db).WithContext(ctx).Save(c).Error
}
