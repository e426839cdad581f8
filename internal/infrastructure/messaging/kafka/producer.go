package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/config"
	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/infrastructure/encoding/avro"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/pkg/logger"
)

// OrderEventProducer publishes Avro-encoded order lifecycle events.
type OrderEventProducer struct {
	writer  *kafkago.Writer
	encoder *avro.Encoder
	log     logger.Logger
}

func NewOrderEventProducer(cfg config.KafkaConfig, encoder *avro.Encoder, log logger.Logger) *OrderEventProducer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.OrderTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}

	return &OrderEventProducer{
		writer:  writer,
		encoder: encoder,
		log:     log,
	}
}

func (p *OrderEventProducer) PublishOrderPlaced(ctx context.Context, o *domain.Order) error {
	return p.publish(ctx, avro.OrderPlacedNative(o))
}

func (p *OrderEventProducer) PublishOrderDeleted(ctx context.Context, orderID string) error {
	return p.publish(ctx, avro.OrderDeletedNative(orderID))
}

func (p *OrderEventProducer) publish(ctx context.Context, native map[string]interface{}) error {
	payload, err := p.encoder.EncodeNative(native)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(uuid.NewString()),
		Value: payload,
		Time:  time.Now().UTC(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.writer.Topic, err)
	}

	p.log.Debug("order event published",
		logger.String("topic", p.writer.Topic),
		logger.Int("bytes", len(payload)))
	return nil
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
