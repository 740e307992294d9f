package domain

import "time"

// Pomodoro is a single timed study session.
type Pomodoro struct {
	ID      int64
	StartAt time.Time
	EndAt   time.Time
	UserID  int64
}
