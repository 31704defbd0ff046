package client

import (
	"time"

	"github.com/shopbot/backend/internal/domain/shared"
)

// Client represents a storefront customer identified by the messaging
// platform's numeric user ID. The external ID is immutable once set;
// profile fields refresh on every contact.
type Client struct {
	shared.BaseAggregateRoot
	ExternalID int64  `gorm:"not null;uniqueIndex"`
	Username   string `gorm:"type:varchar(32)"`
	FirstName  string `gorm:"type:varchar(64)"`
	LastName   string `gorm:"type:varchar(64)"`
	FullName   string `gorm:"type:varchar(128)"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// Profile holds the mutable profile fields supplied by the messaging
// platform
type Profile struct {
	Username  string
	FirstName string
	LastName  string
	FullName  string
}

// NewClient creates a new client for the given external identity
func NewClient(externalID int64, profile Profile) (*Client, error) {
	if externalID <= 0 {
		return nil, shared.NewDomainError("INVALID_EXTERNAL_ID", "External ID must be positive")
	}

	c := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ExternalID:        externalID,
		Username:          profile.Username,
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		FullName:          profile.FullName,
	}

	c.AddDomainEvent(NewClientRegisteredEvent(c))

	return c, nil
}

// UpdateProfile refreshes the mutable profile fields
func (c *Client) UpdateProfile(profile Profile) {
	c.Username = profile.Username
	c.FirstName = profile.FirstName
	c.LastName = profile.LastName
	c.FullName = profile.FullName
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// DisplayName returns the best available human-readable name
func (c *Client) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	if c.Username != "" {
		return c.Username
	}
	return "client"
}
