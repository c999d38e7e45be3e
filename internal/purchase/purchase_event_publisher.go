package purchase

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"go-bms/internal/events"
)

type EventPublisher interface {
	PublishPurchaseCreated(ctx context.Context, event events.PurchaseCreatedEvent) error
}

type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishPurchaseCreated(context.Context, events.PurchaseCreatedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishPurchaseCreated(
	ctx context.Context,
	event events.PurchaseCreatedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.PurchaseCreatedTopic,
		Key:   []byte(event.CompanyID),
		Value: payload,
	})
}
