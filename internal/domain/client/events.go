package client

import (
	"github.com/shopbot/backend/internal/domain/shared"
)

// EventTypeClientRegistered is published on first contact
const EventTypeClientRegistered = "client.registered"

// ClientRegisteredEvent is published when a client record is created
type ClientRegisteredEvent struct {
	shared.BaseDomainEvent
	ExternalID int64  `json:"external_id"`
	Username   string `json:"username,omitempty"`
}

// NewClientRegisteredEvent creates a new ClientRegisteredEvent
func NewClientRegisteredEvent(c *Client) *ClientRegisteredEvent {
	return &ClientRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientRegistered, "Client", c.ID),
		ExternalID:      c.ExternalID,
		Username:        c.Username,
	}
}
