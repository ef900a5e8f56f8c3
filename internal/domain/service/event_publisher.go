package service

import (
	"context"

	"crm/internal/domain/entity"
)

// AlertEventMessage is an alert exported for asynchronous push delivery
type AlertEventMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	entity.AlertEvent
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes a staff alert for async processing
	PublishAlertEvent(ctx context.Context, event *AlertEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
