package roster

import (
	"context"
	"testing"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CountBookedBySession(ctx context.Context) (map[int64]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockRepository) AttendeeNames(ctx context.Context, sessionID int64) ([]string, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) AttendeeDetails(ctx context.Context, sessionID int64) ([]domain.AttendeeDetail, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]domain.AttendeeDetail), args.Error(1)
}

func TestCountBookedPerSession(t *testing.T) {
	repo := &MockRepository{}
	service := NewRosterService(repo)

	repo.On("CountBookedBySession", mock.Anything).Return(map[int64]int{10: 2}, nil)

	counts, err := service.CountBookedPerSession(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, counts[10])
}

func TestListAttendeeNames(t *testing.T) {
	repo := &MockRepository{}
	service := NewRosterService(repo)

	repo.On("AttendeeNames", mock.Anything, int64(10)).Return([]string{"Alice", "Bob"}, nil)

	names, err := service.ListAttendeeNames(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1. Alice\n2. Bob", Format([]string{"Alice", "Bob"}))
	assert.Equal(t, "nobody booked", Format(nil))
}
