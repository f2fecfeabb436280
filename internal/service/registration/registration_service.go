package registration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/Domenick1991/fitbooking/internal/kafka"
	"github.com/Domenick1991/fitbooking/internal/repository"
	"github.com/google/uuid"
)

type RegistrationUseCase interface {
	Register(ctx context.Context, userID, sessionID int64) (*domain.Registration, error)
	Cancel(ctx context.Context, registrationID int64) error
	MarkAttendance(ctx context.Context, sessionID, userID int64, attended bool) error
	UpdateStatus(ctx context.Context, sessionID, userID int64, status domain.RegistrationStatus, isPaid *bool) error
	ListMy(ctx context.Context, userID int64) ([]domain.MyRegistration, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type RegistrationService struct {
	regs     repository.RegistrationRepository
	sessions repository.SessionRepository
	producer Producer
	topic    string
}

type RegistrationServiceOption func(*RegistrationService)

// WithEvents enables publishing lifecycle events to the given topic.
func WithEvents(producer Producer, topic string) RegistrationServiceOption {
	return func(s *RegistrationService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewRegistrationService(
	regs repository.RegistrationRepository,
	sessions repository.SessionRepository,
	opts ...RegistrationServiceOption,
) *RegistrationService {
	service := &RegistrationService{
		regs:     regs,
		sessions: sessions,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Register books a seat for the pair. The repository insert is atomic with the
// active-booking check, so a repeated or concurrent call yields exactly one
// BOOKED row and ErrAlreadyBooked for the loser.
func (s *RegistrationService) Register(ctx context.Context, userID, sessionID int64) (*domain.Registration, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.StartTime.After(time.Now()) {
		return nil, domain.ErrSessionStarted
	}

	reg := &domain.Registration{
		Token:     uuid.NewString(),
		UserID:    userID,
		SessionID: sessionID,
	}
	if err := s.regs.InsertBooked(ctx, reg); err != nil {
		return nil, err
	}

	s.publish(ctx, "registration_created", reg, session.StartTime)
	return reg, nil
}

// Cancel moves the registration to CANCELLED. Re-cancelling succeeds, leaves
// the status unchanged and publishes nothing.
func (s *RegistrationService) Cancel(ctx context.Context, registrationID int64) error {
	reg, changed, err := s.regs.Cancel(ctx, registrationID)
	if err != nil {
		return err
	}

	if changed {
		s.publish(ctx, "registration_cancelled", reg, time.Time{})
	}
	return nil
}

// MarkAttendance resolves the pair's BOOKED registration to ATTENDED or
// NO_SHOW. Marking twice fails with ErrNoBookedRegistration because the first
// call already moved the status off BOOKED.
func (s *RegistrationService) MarkAttendance(ctx context.Context, sessionID, userID int64, attended bool) error {
	status := domain.StatusNoShow
	if attended {
		status = domain.StatusAttended
	}

	reg, err := s.regs.TransitionBooked(ctx, sessionID, userID, status, nil)
	if err != nil {
		return err
	}

	s.publish(ctx, "attendance_marked", reg, time.Time{})
	return nil
}

// UpdateStatus is the administrative override: any transition out of BOOKED,
// optionally setting the payment flag.
func (s *RegistrationService) UpdateStatus(ctx context.Context, sessionID, userID int64, status domain.RegistrationStatus, isPaid *bool) error {
	if !status.Valid() {
		return fmt.Errorf("unknown registration status %q", status)
	}

	reg, err := s.regs.TransitionBooked(ctx, sessionID, userID, status, isPaid)
	if err != nil {
		return err
	}

	s.publish(ctx, "status_updated", reg, time.Time{})
	return nil
}

func (s *RegistrationService) ListMy(ctx context.Context, userID int64) ([]domain.MyRegistration, error) {
	return s.regs.ListMy(ctx, userID)
}

// publish is best-effort: a broker failure never fails the state change that
// already committed.
func (s *RegistrationService) publish(ctx context.Context, eventType string, reg *domain.Registration, sessionTime time.Time) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.RegistrationEvent{
		Type:        eventType,
		Token:       reg.Token,
		UserID:      reg.UserID,
		SessionID:   reg.SessionID,
		Status:      string(reg.Status),
		SessionTime: sessionTime,
	}
	if err := s.producer.Publish(ctx, s.topic, reg.Token, event); err != nil {
		log.Printf("publish %s event for registration %s: %v", eventType, reg.Token, err)
	}
}

var _ RegistrationUseCase = (*RegistrationService)(nil)
