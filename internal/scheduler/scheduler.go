package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/Domenick1991/fitbooking/internal/repository"
)

// Scheduler arms one one-shot timer per session that fires the roster
// reminder at start_time minus the configured lead. Reminder rows are
// persisted, so Restore can re-arm pending timers after a restart; a fire
// time already in the past fires immediately instead of being dropped.
type Scheduler struct {
	*Dispatcher

	reminders repository.ReminderRepository
	lead      time.Duration

	mu     sync.Mutex
	timers map[int64]*time.Timer
}

func New(reminders repository.ReminderRepository, dispatcher *Dispatcher, lead time.Duration) *Scheduler {
	return &Scheduler{
		Dispatcher: dispatcher,
		reminders:  reminders,
		lead:       lead,
		timers:     make(map[int64]*time.Timer),
	}
}

// Schedule persists the reminder and arms its timer. Called synchronously
// right after session creation succeeds.
func (s *Scheduler) Schedule(ctx context.Context, session *domain.Session) error {
	fireAt := session.StartTime.Add(-s.lead)
	if err := s.reminders.Upsert(ctx, session.ID, fireAt); err != nil {
		return err
	}
	s.arm(session.ID, fireAt)
	return nil
}

// Cancel drops the armed timer for a deleted session. The persisted row is
// removed by the session-delete cascade.
func (s *Scheduler) Cancel(sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[sessionID]; ok {
		t.Stop()
		delete(s.timers, sessionID)
	}
}

// Restore re-arms timers for every unsent reminder. Overdue ones fire
// immediately, covering sessions whose fire time elapsed while the process
// was down.
func (s *Scheduler) Restore(ctx context.Context) error {
	pending, err := s.reminders.ListPending(ctx)
	if err != nil {
		return err
	}
	for _, rem := range pending {
		s.arm(rem.SessionID, rem.FireAt)
	}
	if len(pending) > 0 {
		log.Printf("restored %d pending reminders", len(pending))
	}
	return nil
}

// Shutdown stops all armed timers. Pending reminders stay persisted for the
// next Restore.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Scheduler) arm(sessionID int64, fireAt time.Time) {
	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[sessionID]; ok {
		t.Stop()
	}
	s.timers[sessionID] = time.AfterFunc(delay, func() { s.fire(sessionID) })
}

// fire runs on the timer goroutine, detached from any request. It claims the
// persisted row first so the worker sweep cannot send the same reminder.
func (s *Scheduler) fire(sessionID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s.mu.Lock()
	delete(s.timers, sessionID)
	s.mu.Unlock()

	claimed, err := s.reminders.Claim(ctx, sessionID)
	if err != nil {
		log.Printf("claim reminder for session %d: %v", sessionID, err)
		return
	}
	if !claimed {
		return
	}

	if err := s.Dispatch(ctx, sessionID); err != nil {
		log.Printf("dispatch reminder for session %d: %v", sessionID, err)
	}
}
