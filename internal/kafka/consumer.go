package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/fitbooking/config"
	"github.com/segmentio/kafka-go"
)

const (
	defaultHeartbeat      = 3 * time.Second
	defaultSessionTimeout = 30 * time.Second
)

// ReminderConsumer reads decoded reminder events from the notifications topic.
type ReminderConsumer struct {
	reader *kafka.Reader
}

func NewReminderConsumer(cfg config.KafkaConfig) *ReminderConsumer {
	heartbeat := defaultHeartbeat
	if cfg.HeartbeatSeconds > 0 {
		heartbeat = time.Duration(cfg.HeartbeatSeconds) * time.Second
	}
	sessionTimeout := defaultSessionTimeout
	if cfg.SessionTimeoutSeconds > 0 {
		sessionTimeout = time.Duration(cfg.SessionTimeoutSeconds) * time.Second
	}

	return &ReminderConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.GroupID,
			Topic:             cfg.NotificationsTopic,
			HeartbeatInterval: heartbeat,
			SessionTimeout:    sessionTimeout,
		}),
	}
}

func (c *ReminderConsumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume decodes each message into a ReminderEvent and hands it to handler.
// A malformed payload is logged and skipped so one bad message cannot wedge
// the group; a handler error stops consumption.
func (c *ReminderConsumer) Consume(ctx context.Context, handler func(context.Context, ReminderEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodeReminder(msg.Value)
		if err != nil {
			log.Printf("skip reminder message at offset %d: %v", msg.Offset, err)
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeReminder(value []byte) (ReminderEvent, error) {
	var event ReminderEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return ReminderEvent{}, fmt.Errorf("decode reminder event: %w", err)
	}
	return event, nil
}
