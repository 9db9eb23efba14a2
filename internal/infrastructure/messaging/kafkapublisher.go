// Package messaging publishes domain events to downstream consumers.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shopify/sarama"

	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

const defaultTopicPrefix = "phonefix"

// KafkaPublisher writes every event to "<prefix>.<event type>" keyed by
// aggregate id, so events of one aggregate stay on one partition.
type KafkaPublisher struct {
	producer    sarama.SyncProducer
	topicPrefix string
	logger      logger.Interface
}

func NewKafkaPublisher(cfg sharedConfig.KafkaConfig, log logger.Interface) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are not configured")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, cfg.TopicPrefix, log), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topicPrefix string, log logger.Interface) *KafkaPublisher {
	if topicPrefix == "" {
		topicPrefix = defaultTopicPrefix
	}
	return &KafkaPublisher{
		producer:    producer,
		topicPrefix: topicPrefix,
		logger:      log.With("component", "messaging.kafka"),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.GetEventType(), err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.Topic(event.GetEventType()),
		Key:       sarama.StringEncoder(event.GetAggregateID()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.GetOccurredAt(),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.GetEventID())},
			{Key: []byte("event_type"), Value: []byte(event.GetEventType())},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Errorw("failed to send event to kafka",
			"topic", msg.Topic,
			"aggregate_id", event.GetAggregateID(),
			"error", err,
		)
		return fmt.Errorf("failed to send event to kafka: %w", err)
	}

	p.logger.Debugw("event sent to kafka",
		"topic", msg.Topic,
		"aggregate_id", event.GetAggregateID(),
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *KafkaPublisher) Topic(eventType string) string {
	return p.topicPrefix + "." + eventType
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
