package domain

import "time"

type RegistrationStatus string

const (
	StatusBooked               RegistrationStatus = "BOOKED"
	StatusAttended             RegistrationStatus = "ATTENDED"
	StatusAwaitingConfirmation RegistrationStatus = "AWAITING_CONFIRMATION"
	StatusCancelled            RegistrationStatus = "CANCELLED"
	StatusNoShow               RegistrationStatus = "NO_SHOW"
)

// Valid reports whether s is one of the known statuses.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusBooked, StatusAttended, StatusAwaitingConfirmation, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Registration is a user's claim on a seat in a session. At most one
// registration per (user, session) pair may be BOOKED at any time; the store
// enforces this with a partial unique index.
type Registration struct {
	ID           int64
	Token        string
	UserID       int64
	SessionID    int64
	Status       RegistrationStatus
	IsPaid       *bool
	RegisteredAt time.Time
}

// MyRegistration is one row of a user's "my bookings" listing.
type MyRegistration struct {
	RegistrationID int64
	SessionID      int64
	StartTime      time.Time
	TypeName       string
}

// AttendeeDetail is one row of an operator-facing roster.
type AttendeeDetail struct {
	Name      string
	UserID    int64
	StartTime time.Time
	TypeName  string
}

// Reminder is a persisted one-shot notification job for a session.
// SentAt is set exactly once, by whichever process claims the row first.
type Reminder struct {
	SessionID int64
	FireAt    time.Time
	SentAt    *time.Time
}
