package services

import (
	"time"

	"github.com/salahezzat120/task-manager-pro/models"
)

// Status is the derived classification of a task. It is never persisted;
// it is recomputed from the due date, the completion flag and the current
// date on every read.
type Status string

const (
	StatusDone     Status = "done"
	StatusMissed   Status = "missed"
	StatusDueToday Status = "due-today"
	StatusUpcoming Status = "upcoming"

	// StatusAll is the filter wildcard accepted by list endpoints.
	StatusAll Status = "all"
)

// ValidStatus reports whether s names one of the four real statuses.
// The "all" wildcard is not a status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDone, StatusMissed, StatusDueToday, StatusUpcoming:
		return true
	}
	return false
}

// DateOnly strips the time-of-day from t. Due-date comparisons happen at
// day granularity on the UTC calendar.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify derives the status of a task from its due date and completion
// flag. A completed task is done no matter what its due date says. The
// current date is passed in by the caller, never read from the clock here,
// so results are deterministic.
func Classify(dueDate time.Time, isCompleted bool, today time.Time) Status {
	if isCompleted {
		return StatusDone
	}

	due := DateOnly(dueDate)
	now := DateOnly(today)

	switch {
	case due.Before(now):
		return StatusMissed
	case due.Equal(now):
		return StatusDueToday
	default:
		return StatusUpcoming
	}
}

// ClassifyTask is Classify applied to a task record.
func ClassifyTask(task models.Task, today time.Time) Status {
	return Classify(task.DueDate, task.IsCompleted, today)
}
