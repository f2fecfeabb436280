package domain

import "time"

// SessionType is a static catalog entry, seeded once and immutable afterward.
type SessionType struct {
	ID   int16
	Name string
}

// Session is one concrete bookable occurrence. The only mutation is a hard
// delete that cascades to its registrations.
type Session struct {
	ID        int64
	TypeID    int16
	StartTime time.Time
	CreatedBy int64
	CreatedAt time.Time
}

// SessionWithType is a Session joined with its catalog entry, the shape most
// read paths need.
type SessionWithType struct {
	Session
	TypeName string
}
