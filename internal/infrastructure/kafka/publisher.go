package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type RatePublisher struct {
	writer *kafka.Writer
}

func NewRatePublisher(brokers []string, topic string) *RatePublisher {
	return &RatePublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishRates batches one message per upserted rate row, keyed by hotel so
// per-hotel ordering is preserved. A nil publisher is a no-op so the engine
// can run without a broker in tests and local setups.
func (p *RatePublisher) PublishRates(events []RateEvent) error {
	if p == nil || len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	timestamp := time.Now()
	for _, event := range events {
		value, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal rate event: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.HotelID),
			Value: value,
			Time:  timestamp,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("write rate events: %w", err)
	}
	return nil
}
