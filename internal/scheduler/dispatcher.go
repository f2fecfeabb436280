package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/Domenick1991/fitbooking/internal/kafka"
	"github.com/Domenick1991/fitbooking/internal/repository"
	"github.com/Domenick1991/fitbooking/internal/service/roster"
)

type RosterSource interface {
	ListAttendeeNames(ctx context.Context, sessionID int64) ([]string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Dispatcher builds the roster reminder text and publishes one notification
// per operator recipient. It is shared by the in-process timers and the
// worker's overdue sweep.
type Dispatcher struct {
	sessions   repository.SessionRepository
	roster     RosterSource
	producer   Producer
	topic      string
	recipients []int64
}

func NewDispatcher(sessions repository.SessionRepository, rosterSvc RosterSource, producer Producer, topic string, recipients []int64) *Dispatcher {
	return &Dispatcher{
		sessions:   sessions,
		roster:     rosterSvc,
		producer:   producer,
		topic:      topic,
		recipients: recipients,
	}
}

// Dispatch sends the reminder for one session. A session deleted after its
// reminder was claimed is skipped without error.
func (d *Dispatcher) Dispatch(ctx context.Context, sessionID int64) error {
	session, err := d.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	names, err := d.roster.ListAttendeeNames(ctx, sessionID)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("%s at %s, booked:\n%s",
		session.TypeName, session.StartTime.Format("02.01 15:04"), roster.Format(names))

	var firstErr error
	for _, recipient := range d.recipients {
		event := kafka.ReminderEvent{
			SessionID:   sessionID,
			RecipientID: recipient,
			Text:        text,
			SessionTime: session.StartTime,
		}
		key := strconv.FormatInt(sessionID, 10)
		if err := d.producer.Publish(ctx, d.topic, key, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
