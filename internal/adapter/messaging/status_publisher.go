package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quoteportal/internal/usecase/interfaces"
	"quoteportal/pkg"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 3 * time.Second

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

var _ Channel = (*amqp.Channel)(nil)

// StatusPublisher emits quote status changes on the events topic exchange.
type StatusPublisher struct {
	ch       Channel
	producer string
	now      func() time.Time
}

var _ interfaces.IStatusPublisher = (*StatusPublisher)(nil)

func NewStatusPublisher(ch Channel, producer string) (*StatusPublisher, error) {
	if err := ch.ExchangeDeclare(EventsExchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare %s: %w", EventsExchange, err)
	}
	return &StatusPublisher{ch: ch, producer: producer, now: time.Now}, nil
}

func (p *StatusPublisher) PublishStatusChanged(ctx context.Context, change interfaces.StatusChange) error {
	env := EventEnvelope[StatusChanged]{
		EventName:     QuoteStatusChangedEventName,
		EventVersion:  QuoteStatusChangedVersion,
		EventID:       uuid.NewString(),
		CorrelationID: pkg.CorrelationID(ctx),
		Producer:      p.producer,
		PartitionKey:  change.QuoteID,
		OccurredAt:    p.now().UTC(),
		Schema:        quoteStatusChangedSchema,
		Payload: StatusChanged{
			QuoteID: change.QuoteID,
			Field:   string(change.Field),
			From:    change.From,
			To:      change.To,
		},
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", QuoteStatusChangedEventName, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		QuoteStatusChangedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			MessageId:     env.EventID,
			CorrelationId: env.CorrelationID,
			Timestamp:     env.OccurredAt,
			Body:          body,
		},
	)
}

func (p *StatusPublisher) Close() error {
	return p.ch.Close()
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

var _ interfaces.IStatusPublisher = NoopPublisher{}

func (NoopPublisher) PublishStatusChanged(context.Context, interfaces.StatusChange) error { return nil }
