package service

import (
	"context"
)

// EventTypeServicePartnerSynced is the event_type attribute of ServicePartnerSyncedEvent messages.
const EventTypeServicePartnerSynced = "service_partner.synced"

// ServicePartnerSyncedEvent announces that reconciliation created or changed a ServicePartner.
// Scheduling and assignment consumers use it to refresh their view of the partner.
type ServicePartnerSyncedEvent struct {
	RequestID        string `json:"request_id,omitempty"` // For distributed tracing
	PartnerID        string `json:"partner_id"`
	UserID           string `json:"user_id"`
	ServicePartnerID string `json:"service_partner_id"`
	Outcome          string `json:"outcome"` // "created" or "fixed"
	Status           string `json:"status"`
	Mode             string `json:"mode"` // "batch" or "inline"
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishServicePartnerSynced publishes a sync event for downstream consumers
	PublishServicePartnerSynced(ctx context.Context, event *ServicePartnerSyncedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
