package services

import (
	"time"

	"github.com/salahezzat120/task-manager-pro/models"
)

// Stats summarizes a user's task list for the dashboard header.
type Stats struct {
	Total    int `json:"total"`
	Done     int `json:"done"`
	Missed   int `json:"missed"`
	DueToday int `json:"due_today"`
}

// Aggregate reduces tasks to counts in a single pass. Upcoming tasks are
// counted only in the total.
func Aggregate(tasks []models.Task, today time.Time) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch ClassifyTask(t, today) {
		case StatusDone:
			stats.Done++
		case StatusMissed:
			stats.Missed++
		case StatusDueToday:
			stats.DueToday++
		}
	}
	return stats
}
