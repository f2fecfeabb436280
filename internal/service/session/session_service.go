package session

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/Domenick1991/fitbooking/internal/repository"
)

type SessionUseCase interface {
	Create(ctx context.Context, startTime time.Time, typeID int16, operatorID int64) (*domain.Session, error)
	ListUpcoming(ctx context.Context) ([]domain.SessionWithType, error)
	ListWindow(ctx context.Context, daysBefore int) ([]domain.SessionWithType, error)
	GetByID(ctx context.Context, id int64) (*domain.SessionWithType, error)
	Delete(ctx context.Context, id int64) error
	ListTypes(ctx context.Context) ([]domain.SessionType, error)
}

type Cache interface {
	GetUpcoming(ctx context.Context) ([]domain.SessionWithType, error)
	SetUpcoming(ctx context.Context, sessions []domain.SessionWithType) error
	InvalidateUpcoming(ctx context.Context) error
	GetTypes(ctx context.Context) ([]domain.SessionType, error)
	SetTypes(ctx context.Context, types []domain.SessionType) error
}

// Scheduler is the reminder collaborator. Scheduling is best-effort relative
// to session creation; cancellation rides session deletion.
type Scheduler interface {
	Schedule(ctx context.Context, session *domain.Session) error
	Cancel(sessionID int64)
}

type SessionService struct {
	repo      repository.SessionRepository
	cache     Cache
	scheduler Scheduler
}

type SessionServiceOption func(*SessionService)

func WithCache(cache Cache) SessionServiceOption {
	return func(s *SessionService) {
		s.cache = cache
	}
}

func WithScheduler(scheduler Scheduler) SessionServiceOption {
	return func(s *SessionService) {
		s.scheduler = scheduler
	}
}

func NewSessionService(repo repository.SessionRepository, opts ...SessionServiceOption) *SessionService {
	service := &SessionService{repo: repo}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create inserts the session and schedules its reminder. A scheduler failure
// is logged and does not undo the creation: the reminder is best-effort, the
// session is not.
func (s *SessionService) Create(ctx context.Context, startTime time.Time, typeID int16, operatorID int64) (*domain.Session, error) {
	if !startTime.After(time.Now()) {
		return nil, domain.ErrPastSession
	}

	session := &domain.Session{
		TypeID:    typeID,
		StartTime: startTime,
		CreatedBy: operatorID,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateUpcoming(ctx); err != nil {
			log.Printf("invalidate sessions cache: %v", err)
		}
	}
	if s.scheduler != nil {
		if err := s.scheduler.Schedule(ctx, session); err != nil {
			log.Printf("schedule reminder for session %d: %v", session.ID, err)
		}
	}
	return session, nil
}

func (s *SessionService) ListUpcoming(ctx context.Context) ([]domain.SessionWithType, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetUpcoming(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	sessions, err := s.repo.ListUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetUpcoming(ctx, sessions)
	}
	return sessions, nil
}

func (s *SessionService) ListWindow(ctx context.Context, daysBefore int) ([]domain.SessionWithType, error) {
	return s.repo.ListWindow(ctx, daysBefore)
}

func (s *SessionService) GetByID(ctx context.Context, id int64) (*domain.SessionWithType, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the session and, through the store cascade, its
// registrations and reminder row as one unit, then drops the armed timer.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.scheduler != nil {
		s.scheduler.Cancel(id)
	}
	if s.cache != nil {
		if err := s.cache.InvalidateUpcoming(ctx); err != nil {
			log.Printf("invalidate sessions cache: %v", err)
		}
	}
	return nil
}

func (s *SessionService) ListTypes(ctx context.Context) ([]domain.SessionType, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTypes(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTypes(ctx, types)
	}
	return types, nil
}

var _ SessionUseCase = (*SessionService)(nil)
