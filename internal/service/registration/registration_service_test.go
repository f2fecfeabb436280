package registration

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) InsertBooked(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)
	if args.Error(0) == nil {
		reg.ID = 1
		reg.Status = domain.StatusBooked
		reg.RegisteredAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockRegistrationRepository) Cancel(ctx context.Context, registrationID int64) (*domain.Registration, bool, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Registration), args.Bool(1), args.Error(2)
}

func (m *MockRegistrationRepository) TransitionBooked(ctx context.Context, sessionID, userID int64, status domain.RegistrationStatus, isPaid *bool) (*domain.Registration, error) {
	args := m.Called(ctx, sessionID, userID, status, isPaid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) ListMy(ctx context.Context, userID int64) ([]domain.MyRegistration, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MyRegistration), args.Error(1)
}

func (m *MockRegistrationRepository) CountBookedBySession(ctx context.Context) (map[int64]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockRegistrationRepository) AttendeeNames(ctx context.Context, sessionID int64) ([]string, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRegistrationRepository) AttendeeDetails(ctx context.Context, sessionID int64) ([]domain.AttendeeDetail, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]domain.AttendeeDetail), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id int64) (*domain.SessionWithType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionWithType), args.Error(1)
}

func (m *MockSessionRepository) ListUpcoming(ctx context.Context) ([]domain.SessionWithType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SessionWithType), args.Error(1)
}

func (m *MockSessionRepository) ListWindow(ctx context.Context, daysBefore int) ([]domain.SessionWithType, error) {
	args := m.Called(ctx, daysBefore)
	return args.Get(0).([]domain.SessionWithType), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) ListTypes(ctx context.Context) ([]domain.SessionType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SessionType), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func futureSession(id int64) *domain.SessionWithType {
	return &domain.SessionWithType{
		Session: domain.Session{
			ID:        id,
			TypeID:    1,
			StartTime: time.Now().Add(2 * time.Hour),
			CreatedBy: 100001,
		},
		TypeName: "Functional",
	}
}

func TestRegister(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	producer := &MockProducer{}
	service := NewRegistrationService(regs, sessions, WithEvents(producer, "events"))

	sessions.On("GetByID", mock.Anything, int64(10)).Return(futureSession(10), nil)
	regs.On("InsertBooked", mock.Anything, mock.AnythingOfType("*domain.Registration")).Return(nil)
	producer.On("Publish", mock.Anything, "events", mock.Anything, mock.Anything).Return(nil)

	reg, err := service.Register(context.Background(), 42, 10)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusBooked, reg.Status)
	assert.Equal(t, int64(42), reg.UserID)
	assert.NotEmpty(t, reg.Token)
	regs.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestRegister_AlreadyBooked(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	sessions.On("GetByID", mock.Anything, int64(10)).Return(futureSession(10), nil)
	regs.On("InsertBooked", mock.Anything, mock.Anything).Return(domain.ErrAlreadyBooked)

	reg, err := service.Register(context.Background(), 42, 10)

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.Nil(t, reg)
}

func TestRegister_SessionNotFound(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	sessions.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	reg, err := service.Register(context.Background(), 42, 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, reg)
	regs.AssertNotCalled(t, "InsertBooked", mock.Anything, mock.Anything)
}

func TestRegister_SessionStarted(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	past := futureSession(10)
	past.StartTime = time.Now().Add(-time.Hour)
	sessions.On("GetByID", mock.Anything, int64(10)).Return(past, nil)

	reg, err := service.Register(context.Background(), 42, 10)

	assert.ErrorIs(t, err, domain.ErrSessionStarted)
	assert.Nil(t, reg)
	regs.AssertNotCalled(t, "InsertBooked", mock.Anything, mock.Anything)
}

func TestRegister_PublishFailureIsNotFatal(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	producer := &MockProducer{}
	service := NewRegistrationService(regs, sessions, WithEvents(producer, "events"))

	sessions.On("GetByID", mock.Anything, int64(10)).Return(futureSession(10), nil)
	regs.On("InsertBooked", mock.Anything, mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, "events", mock.Anything, mock.Anything).Return(assert.AnError)

	reg, err := service.Register(context.Background(), 42, 10)

	assert.NoError(t, err)
	assert.NotNil(t, reg)
}

func TestCancel(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	producer := &MockProducer{}
	service := NewRegistrationService(regs, sessions, WithEvents(producer, "events"))

	cancelled := &domain.Registration{ID: 5, Token: "tok", UserID: 42, SessionID: 10, Status: domain.StatusCancelled}
	regs.On("Cancel", mock.Anything, int64(5)).Return(cancelled, true, nil)
	producer.On("Publish", mock.Anything, "events", "tok", mock.Anything).Return(nil)

	assert.NoError(t, service.Cancel(context.Background(), 5))
	producer.AssertExpectations(t)
}

func TestCancel_RepeatPublishesNothing(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	producer := &MockProducer{}
	service := NewRegistrationService(regs, sessions, WithEvents(producer, "events"))

	cancelled := &domain.Registration{ID: 5, Token: "tok", UserID: 42, SessionID: 10, Status: domain.StatusCancelled}
	regs.On("Cancel", mock.Anything, int64(5)).Return(cancelled, false, nil)

	assert.NoError(t, service.Cancel(context.Background(), 5))
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_NotFound(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	regs.On("Cancel", mock.Anything, int64(404)).Return(nil, false, domain.ErrNotFound)

	assert.ErrorIs(t, service.Cancel(context.Background(), 404), domain.ErrNotFound)
}

func TestMarkAttendance_Attended(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	updated := &domain.Registration{ID: 5, Token: "tok", UserID: 42, SessionID: 10, Status: domain.StatusAttended}
	regs.On("TransitionBooked", mock.Anything, int64(10), int64(42), domain.StatusAttended, (*bool)(nil)).Return(updated, nil)

	assert.NoError(t, service.MarkAttendance(context.Background(), 10, 42, true))
	regs.AssertExpectations(t)
}

func TestMarkAttendance_NoShow(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	updated := &domain.Registration{ID: 5, Token: "tok", UserID: 42, SessionID: 10, Status: domain.StatusNoShow}
	regs.On("TransitionBooked", mock.Anything, int64(10), int64(42), domain.StatusNoShow, (*bool)(nil)).Return(updated, nil)

	assert.NoError(t, service.MarkAttendance(context.Background(), 10, 42, false))
	regs.AssertExpectations(t)
}

func TestMarkAttendance_NoBookedRegistration(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	regs.On("TransitionBooked", mock.Anything, int64(10), int64(42), domain.StatusAttended, (*bool)(nil)).
		Return(nil, domain.ErrNoBookedRegistration)

	err := service.MarkAttendance(context.Background(), 10, 42, true)

	assert.ErrorIs(t, err, domain.ErrNoBookedRegistration)
}

func TestUpdateStatus(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	paid := true
	updated := &domain.Registration{ID: 5, Token: "tok", UserID: 42, SessionID: 10, Status: domain.StatusAwaitingConfirmation, IsPaid: &paid}
	regs.On("TransitionBooked", mock.Anything, int64(10), int64(42), domain.StatusAwaitingConfirmation, &paid).Return(updated, nil)

	assert.NoError(t, service.UpdateStatus(context.Background(), 10, 42, domain.StatusAwaitingConfirmation, &paid))
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	err := service.UpdateStatus(context.Background(), 10, 42, domain.RegistrationStatus("BROKEN"), nil)

	assert.Error(t, err)
	regs.AssertNotCalled(t, "TransitionBooked", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListMy(t *testing.T) {
	regs := &MockRegistrationRepository{}
	sessions := &MockSessionRepository{}
	service := NewRegistrationService(regs, sessions)

	expected := []domain.MyRegistration{{RegistrationID: 1, SessionID: 10, TypeName: "Functional"}}
	regs.On("ListMy", mock.Anything, int64(42)).Return(expected, nil)

	got, err := service.ListMy(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}
