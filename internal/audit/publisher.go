package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Christiandike/celo-mondo/internal/core"
	"github.com/segmentio/kafka-go"
)

const defaultTopic = "mondo.activations"

// Publisher streams activation audit events to kafka.
type Publisher struct {
	writer *kafka.Writer
}

type PublisherConfig struct {
	Brokers []string
	Topic   string
}

func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		cfg.Topic = defaultTopic
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 500 * time.Millisecond,
	}
	return &Publisher{writer: writer}, nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Publish emits one audit event keyed by staker address so events for
// the same staker land on the same partition in order.
func (p *Publisher) Publish(ctx context.Context, event core.AuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Staker),
		Value: payload,
	})
}

// NoopPublisher drops audit events. It stands in when no kafka brokers
// are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event core.AuditEvent) error {
	return nil
}
