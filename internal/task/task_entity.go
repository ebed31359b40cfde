package task

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// TimeLayout is the minute-precision format the console submits and renders.
const TimeLayout = "2006-01-02T15:04"

// Task lives in memory only. IDs come from a monotonic session counter and
// are not stable across restarts.
type Task struct {
	ID          int64
	Title       string
	Description string
	StartAt     time.Time
	EndAt       time.Time
	Assignees   []string
	CreatedAt   time.Time
}

// StatusAt derives the schedule status of a task at the given instant.
// Both boundaries are inclusive: a task starting and ending exactly now is
// in progress.
func StatusAt(start, end, now time.Time) string {
	if now.Before(start) {
		return StatusPending
	}
	if now.After(end) {
		return StatusCompleted
	}
	return StatusInProgress
}
