package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopbot/backend/internal/domain/client"
)

// RegisterClientRequest carries the identity supplied by the messaging
// platform on every contact
type RegisterClientRequest struct {
	ExternalID int64  `json:"external_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID int64     `json:"external_id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:         c.ID,
		ExternalID: c.ExternalID,
		Username:   c.Username,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		FullName:   c.FullName,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ListFilter carries common list parameters
type ListFilter struct {
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}
