package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/abhishek622/catflix/reviews/pkg/model"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

func main() {
	addr := flag.String("kafka", "localhost:9092", "kafka bootstrap servers")
	topic := flag.String("topic", "reviews", "topic to produce review events to")
	fileName := flag.String("file", "reviewsdata.json", "JSON file holding an array of review events")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	producer, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": *addr})
	if err != nil {
		logger.Fatal("Failed to create Kafka producer", zap.Error(err))
	}
	defer producer.Close()

	go func() {
		for e := range producer.Events() {
			if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
				logger.Warn("Delivery failed", zap.String("partition", m.TopicPartition.String()), zap.Error(m.TopicPartition.Error))
			}
		}
	}()

	logger.Info("Reading review events", zap.String("file", *fileName))
	events, err := readReviewEvents(*fileName)
	if err != nil {
		logger.Fatal("Failed to read review events", zap.Error(err))
	}

	if err := produceReviewEvents(*topic, producer, events); err != nil {
		logger.Fatal("Failed to produce review events", zap.Error(err))
	}

	if remaining := producer.Flush(10_000); remaining != 0 {
		logger.Fatal("Review events left undelivered", zap.Int("remaining", remaining))
	}
	logger.Info("Produced review events", zap.Int("count", len(events)), zap.String("topic", *topic))
}

func readReviewEvents(fileName string) ([]model.ReviewEvent, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []model.ReviewEvent
	if err := json.NewDecoder(f).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}
	return events, nil
}

func produceReviewEvents(topic string, producer *kafka.Producer, events []model.ReviewEvent) error {
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if err := producer.Produce(&kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Key:            []byte(e.Pseudo + "/" + e.Hash),
			Value:          payload,
		}, nil); err != nil {
			return err
		}
	}
	return nil
}
