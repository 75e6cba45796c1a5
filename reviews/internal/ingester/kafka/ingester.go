package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/catflix/reviews/pkg/model"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

const pollTimeout = 500 * time.Millisecond

// Ingester defines a Kafka ingester of review events.
type Ingester struct {
	consumer *kafka.Consumer
	topic    string
	logger   *zap.Logger
}

// NewIngester creates a new Kafka ingester.
func NewIngester(addr string, groupID string, topic string, logger *zap.Logger) (*Ingester, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
		"group.id":          groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}
	return &Ingester{consumer: consumer, topic: topic, logger: logger}, nil
}

// Ingest starts ingestion from Kafka and returns a channel of review events.
// The channel is closed and the consumer released once ctx is cancelled.
func (i *Ingester) Ingest(ctx context.Context) (chan model.ReviewEvent, error) {
	if err := i.consumer.SubscribeTopics([]string{i.topic}, nil); err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", i.topic, err)
	}

	ch := make(chan model.ReviewEvent, 1)
	go func() {
		defer close(ch)
		defer i.consumer.Close()
		for ctx.Err() == nil {
			msg, err := i.consumer.ReadMessage(pollTimeout)
			if err != nil {
				var kerr kafka.Error
				if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				i.logger.Warn("Failed to read review event", zap.Error(err))
				continue
			}
			var event model.ReviewEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				i.logger.Warn("Dropping undecodable review event", zap.Error(err), zap.Int64("offset", int64(msg.TopicPartition.Offset)))
				continue
			}
			select {
			case ch <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
