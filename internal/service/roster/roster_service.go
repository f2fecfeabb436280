package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/fitbooking/internal/domain"
)

type RosterUseCase interface {
	CountBookedPerSession(ctx context.Context) (map[int64]int, error)
	ListAttendeeNames(ctx context.Context, sessionID int64) ([]string, error)
	ListAttendeeDetails(ctx context.Context, sessionID int64) ([]domain.AttendeeDetail, error)
}

// Repository is the slice of the registration store the aggregator reads.
type Repository interface {
	CountBookedBySession(ctx context.Context) (map[int64]int, error)
	AttendeeNames(ctx context.Context, sessionID int64) ([]string, error)
	AttendeeDetails(ctx context.Context, sessionID int64) ([]domain.AttendeeDetail, error)
}

// RosterService recomputes every answer from the store on each call. Counts
// feed the session listing; details feed operator attendance checks.
type RosterService struct {
	regs Repository
}

func NewRosterService(regs Repository) *RosterService {
	return &RosterService{regs: regs}
}

func (s *RosterService) CountBookedPerSession(ctx context.Context) (map[int64]int, error) {
	return s.regs.CountBookedBySession(ctx)
}

func (s *RosterService) ListAttendeeNames(ctx context.Context, sessionID int64) ([]string, error) {
	return s.regs.AttendeeNames(ctx, sessionID)
}

func (s *RosterService) ListAttendeeDetails(ctx context.Context, sessionID int64) ([]domain.AttendeeDetail, error) {
	return s.regs.AttendeeDetails(ctx, sessionID)
}

// Format renders a numbered attendee list for a reminder message.
func Format(names []string) string {
	if len(names) == 0 {
		return "nobody booked"
	}
	lines := make([]string, 0, len(names))
	for i, name := range names {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, name))
	}
	return strings.Join(lines, "\n")
}

var _ RosterUseCase = (*RosterService)(nil)
