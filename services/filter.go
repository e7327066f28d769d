package services

import (
	"strings"
	"time"

	"github.com/salahezzat120/task-manager-pro/models"
)

// FilterOptions narrows a task listing. A zero value, "all", or an
// unrecognized value on any dimension leaves that dimension unfiltered.
type FilterOptions struct {
	Status   Status
	Priority string
	Search   string
}

// Filter applies opts to tasks. The conditions are conjunctive and the
// input order is preserved; the input slice is not modified.
func Filter(tasks []models.Task, opts FilterOptions, today time.Time) []models.Task {
	byStatus := ValidStatus(opts.Status)
	byPriority := models.ValidPriority(opts.Priority)
	search := strings.ToLower(opts.Search)

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if byStatus && ClassifyTask(t, today) != opts.Status {
			continue
		}
		if byPriority && t.Priority != opts.Priority {
			continue
		}
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesSearch does a case-insensitive substring match against the title
// or the description. A task without a description matches on title only.
func matchesSearch(t models.Task, lowered string) bool {
	if strings.Contains(strings.ToLower(t.Title), lowered) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), lowered)
}
