package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/feedback-service/internal/app/feedback/infrastructure"
	"selmag/pkg/logger"
	"selmag/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

const serviceName = "feedback-service"

// KafkaConsumer читает события товаров из топика product_events
type KafkaConsumer struct {
	reader       *kafka.Reader
	handler      infrastructure.ProductEventHandler
	topic        string
	groupID      string
	fetchTimeout time.Duration
	log          zerolog.Logger
	stopChan     chan struct{}
	doneChan     chan struct{}
}

func NewKafkaConsumer(
	brokers []string,
	topic string,
	groupID string,
	fetchTimeout time.Duration,
	handler infrastructure.ProductEventHandler,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		// новая группа начинает с начала топика, чтобы не пропустить удаления
		StartOffset:    kafka.FirstOffset,
		CommitInterval: 0,
		ReadBackoffMin: 100 * time.Millisecond,
		ReadBackoffMax: time.Second,
	})

	return &KafkaConsumer{
		reader:       reader,
		handler:      handler,
		topic:        topic,
		groupID:      groupID,
		fetchTimeout: fetchTimeout,
		log:          logger.Component("kafka-consumer"),
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

func (c *KafkaConsumer) Start(ctx context.Context) {
	c.log.Info().Str("topic", c.topic).Str("group", c.groupID).Msg("Starting Kafka consumer")
	go c.consume(ctx)
}

// Stop дожидается завершения цикла чтения и закрывает reader
func (c *KafkaConsumer) Stop() {
	close(c.stopChan)
	<-c.doneChan
	if err := c.reader.Close(); err != nil {
		c.log.Error().Err(err).Msg("Error closing Kafka reader")
	}
	c.log.Info().Msg("Kafka consumer stopped")
}

func (c *KafkaConsumer) consume(ctx context.Context) {
	defer close(c.doneChan)

	for {
		select {
		case <-c.stopChan:
			return
		case <-ctx.Done():
			return
		default:
		}

		fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
		message, err := c.reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if fetchCtx.Err() == nil {
				metrics.RecordKafkaError(serviceName, c.topic, "fetch")
				c.log.Warn().Err(err).Msg("Error fetching message")
				time.Sleep(time.Second)
			}
			continue
		}

		// при ошибке offset не коммитится, сообщение будет прочитано повторно
		if err := c.processMessage(ctx, message); err != nil {
			metrics.RecordKafkaError(serviceName, c.topic, "process")
			c.log.Error().Err(err).
				Int64("offset", message.Offset).
				Int("partition", message.Partition).
				Msg("Error processing message")
			continue
		}

		if err := c.reader.CommitMessages(ctx, message); err != nil {
			metrics.RecordKafkaError(serviceName, c.topic, "commit")
			c.log.Error().Err(err).Msg("Error committing message")
		}
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, message kafka.Message) error {
	start := time.Now()

	var event entity.ProductEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		// битое сообщение не исправится при повторе; пропускаем его
		c.log.Error().Err(err).Int64("offset", message.Offset).Msg("Skipping malformed product event")
		return nil
	}

	c.log.Debug().
		Str("event_type", event.EventType).
		Int("product_id", event.ProductID).
		Int64("offset", message.Offset).
		Msg("Received product event")

	if err := c.handler.HandleProductEvent(ctx, &event); err != nil {
		return fmt.Errorf("failed to handle %s event: %w", event.EventType, err)
	}

	metrics.RecordKafkaMessageConsumed(serviceName, c.topic, c.groupID, time.Since(start))
	return nil
}

func (c *KafkaConsumer) Stats() kafka.ReaderStats {
	return c.reader.Stats()
}
