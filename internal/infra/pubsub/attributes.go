package pubsub

import "crm/internal/domain/service"

// Subscription named in locally simulated push messages.
const localSubscription = "projects/local/subscriptions/staff-alerts-sub"

// messageAttributes builds the attributes used for filtering and tracing.
func messageAttributes(event *service.AlertEventMessage) map[string]string {
	attributes := map[string]string{
		"kind":         string(event.Kind),
		"complaint_id": event.ComplaintID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
