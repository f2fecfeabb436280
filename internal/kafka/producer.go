package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// RegistrationEvent is published on every registration lifecycle change.
type RegistrationEvent struct {
	Type        string    `json:"type"`
	Token       string    `json:"token"`
	UserID      int64     `json:"user_id"`
	SessionID   int64     `json:"session_id"`
	Status      string    `json:"status"`
	SessionTime time.Time `json:"session_time"`
}

// ReminderEvent carries one ready-to-send reminder message for one recipient.
type ReminderEvent struct {
	SessionID   int64     `json:"session_id"`
	RecipientID int64     `json:"recipient_id"`
	Text        string    `json:"text"`
	SessionTime time.Time `json:"session_time"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
