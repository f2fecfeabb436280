package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/fitbooking/internal/kafka"
)

// Sender is the delivery collaborator for reminder messages. The chat
// transport renders and ships the text; this stub prints it.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReminderEvent) error {
	fmt.Printf("send message to %d about session %d:\n%s\n", event.RecipientID, event.SessionID, event.Text)
	return nil
}
