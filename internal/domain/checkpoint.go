package domain

import "time"

// Checkpoint is a milestone inside a course with a desired completion date.
type Checkpoint struct {
	ID          int64
	Description string
	DueDate     time.Time
	Completed   bool
	CourseID    int64
}
