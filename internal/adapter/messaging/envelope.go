package messaging

import (
	"fmt"
	"time"
)

const (
	EventsExchange               = "quoteportal.events"
	QuoteStatusChangedRoutingKey = "quote.status.changed.v1"
	QuoteStatusChangedEventName  = "QuoteStatusChanged"
	QuoteStatusChangedVersion    = 1
	quoteStatusChangedSchema     = "quoteportal/QuoteStatusChanged.v1"
)

// EventEnvelope is the common envelope for every event the portal emits.
type EventEnvelope[T any] struct {
	EventName     string    `json:"eventName"`
	EventVersion  int       `json:"eventVersion"`
	EventID       string    `json:"eventId"`
	CorrelationID string    `json:"correlationId,omitempty"`
	Producer      string    `json:"producer"`
	PartitionKey  string    `json:"partitionKey"`
	OccurredAt    time.Time `json:"occurredAt"`
	Schema        string    `json:"schema"`
	Payload       T         `json:"payload"`
}

// StatusChanged is the payload of a quote status change.
type StatusChanged struct {
	QuoteID string `json:"quoteId"`
	Field   string `json:"field"`
	From    string `json:"from"`
	To      string `json:"to"`
}

func (e EventEnvelope[T]) Validate(expectedName string, expectedVersion int) error {
	if e.EventName != expectedName {
		return fmt.Errorf("unexpected eventName: %s", e.EventName)
	}
	if e.EventVersion != expectedVersion {
		return fmt.Errorf("unexpected eventVersion: %d", e.EventVersion)
	}
	if e.PartitionKey == "" {
		return fmt.Errorf("missing partitionKey")
	}
	return nil
}
