package domain

import "errors"

var (
	// ErrNotFound covers missing sessions, registrations and users on lookup.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyBooked is returned when a BOOKED registration already exists
	// for the (user, session) pair.
	ErrAlreadyBooked = errors.New("already booked")

	// ErrNoBookedRegistration is returned by guarded transitions when the pair
	// has no registration in status BOOKED.
	ErrNoBookedRegistration = errors.New("no booked registration for user and session")

	// ErrPastSession rejects creating a session that starts in the past.
	ErrPastSession = errors.New("session start time is in the past")

	// ErrSessionStarted rejects registering for a session that already started.
	ErrSessionStarted = errors.New("session already started")
)
