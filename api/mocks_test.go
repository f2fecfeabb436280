package api

import (
	"context"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) Create(ctx context.Context, startTime time.Time, typeID int16, operatorID int64) (*domain.Session, error) {
	args := m.Called(ctx, startTime, typeID, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionUseCase) ListUpcoming(ctx context.Context) ([]domain.SessionWithType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SessionWithType), args.Error(1)
}

func (m *MockSessionUseCase) ListWindow(ctx context.Context, daysBefore int) ([]domain.SessionWithType, error) {
	args := m.Called(ctx, daysBefore)
	return args.Get(0).([]domain.SessionWithType), args.Error(1)
}

func (m *MockSessionUseCase) GetByID(ctx context.Context, id int64) (*domain.SessionWithType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionWithType), args.Error(1)
}

func (m *MockSessionUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionUseCase) ListTypes(ctx context.Context) ([]domain.SessionType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SessionType), args.Error(1)
}

type MockRosterUseCase struct {
	mock.Mock
}

func (m *MockRosterUseCase) CountBookedPerSession(ctx context.Context) (map[int64]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockRosterUseCase) ListAttendeeNames(ctx context.Context, sessionID int64) ([]string, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRosterUseCase) ListAttendeeDetails(ctx context.Context, sessionID int64) ([]domain.AttendeeDetail, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]domain.AttendeeDetail), args.Error(1)
}

type MockRegistrationUseCase struct {
	mock.Mock
}

func (m *MockRegistrationUseCase) Register(ctx context.Context, userID, sessionID int64) (*domain.Registration, error) {
	args := m.Called(ctx, userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *MockRegistrationUseCase) Cancel(ctx context.Context, registrationID int64) error {
	args := m.Called(ctx, registrationID)
	return args.Error(0)
}

func (m *MockRegistrationUseCase) MarkAttendance(ctx context.Context, sessionID, userID int64, attended bool) error {
	args := m.Called(ctx, sessionID, userID, attended)
	return args.Error(0)
}

func (m *MockRegistrationUseCase) UpdateStatus(ctx context.Context, sessionID, userID int64, status domain.RegistrationStatus, isPaid *bool) error {
	args := m.Called(ctx, sessionID, userID, status, isPaid)
	return args.Error(0)
}

func (m *MockRegistrationUseCase) ListMy(ctx context.Context, userID int64) ([]domain.MyRegistration, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MyRegistration), args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Ensure(ctx context.Context, id int64, name string) (*domain.User, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
