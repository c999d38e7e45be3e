package company

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"go-bms/internal/events"
)

type EventPublisher interface {
	PublishCompanyLifecycle(ctx context.Context, event events.CompanyLifecycleEvent) error
}

type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishCompanyLifecycle(context.Context, events.CompanyLifecycleEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishCompanyLifecycle(
	ctx context.Context,
	event events.CompanyLifecycleEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.CompanyLifecycleTopic,
		Key:   []byte(event.CompanyID),
		Value: payload,
	})
}
