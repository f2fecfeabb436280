package domain

import "time"

// User is identified by the external chat identity of the person.
// Balance is informational only, no debit or credit logic exists yet.
type User struct {
	ID        int64
	Name      string
	Balance   int
	CreatedAt time.Time
}

// Operator lives in a separate identity space from User and is seeded from
// configuration at startup.
type Operator struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
