package interfaces

import (
	"context"
	"quoteportal/internal/domain/entities"
)

// StatusChange describes one accepted write to a quote status field.
type StatusChange struct {
	QuoteID string
	Field   entities.StatusField
	From    string
	To      string
}

// IStatusPublisher announces status changes to other services (RabbitMQ).
type IStatusPublisher interface {
	PublishStatusChanged(ctx context.Context, change StatusChange) error
}
