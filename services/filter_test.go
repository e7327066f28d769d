package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/salahezzat120/task-manager-pro/models"
)

var filterToday = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func makeTask(id uint, title, description, priority string, dueOffsetDays int, completed bool) models.Task {
	return models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     filterToday.AddDate(0, 0, dueOffsetDays),
		IsCompleted: completed,
	}
}

func sampleTasks() []models.Task {
	return []models.Task{
		makeTask(1, "Write report", "quarterly numbers", models.PriorityHigh, -3, true),
		makeTask(2, "Review PR", "", models.PriorityMedium, 2, true),
		makeTask(3, "Pay invoice", "vendor payment", models.PriorityHigh, -1, false),
		makeTask(4, "Team standup", "", models.PriorityLow, 0, false),
		makeTask(5, "Plan sprint", "next iteration", models.PriorityMedium, 5, false),
	}
}

func taskIDs(tasks []models.Task) []uint {
	ids := make([]uint, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestFilter_ByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   []uint
	}{
		{"missed returns the one missed task", StatusMissed, []uint{3}},
		{"done returns completed tasks", StatusDone, []uint{1, 2}},
		{"due-today", StatusDueToday, []uint{4}},
		{"upcoming", StatusUpcoming, []uint{5}},
		{"all keeps everything", StatusAll, []uint{1, 2, 3, 4, 5}},
		{"unknown status keeps everything", Status("bogus"), []uint{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleTasks(), FilterOptions{Status: tt.status}, filterToday)
			if !reflect.DeepEqual(taskIDs(got), tt.want) {
				t.Errorf("Filter() ids = %v, want %v", taskIDs(got), tt.want)
			}
		})
	}
}

func TestFilter_ByPriority(t *testing.T) {
	got := Filter(sampleTasks(), FilterOptions{Priority: models.PriorityHigh}, filterToday)
	if want := []uint{1, 3}; !reflect.DeepEqual(taskIDs(got), want) {
		t.Errorf("Filter() ids = %v, want %v", taskIDs(got), want)
	}

	got = Filter(sampleTasks(), FilterOptions{Priority: "all"}, filterToday)
	if len(got) != 5 {
		t.Errorf("priority=all filtered to %d tasks, want 5", len(got))
	}
}

func TestFilter_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []uint
	}{
		{"case-insensitive title match", "REPORT", []uint{1}},
		{"description match", "iteration", []uint{5}},
		{"matches title or description", "p", []uint{1, 2, 3, 4, 5}},
		{"no match", "zzz", []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleTasks(), FilterOptions{Search: tt.search}, filterToday)
			if !reflect.DeepEqual(taskIDs(got), tt.want) {
				t.Errorf("Filter() ids = %v, want %v", taskIDs(got), tt.want)
			}
		})
	}
}

func TestFilter_EmptyDescriptionNeverMatches(t *testing.T) {
	tasks := []models.Task{makeTask(1, "alpha", "", models.PriorityLow, 1, false)}
	if got := Filter(tasks, FilterOptions{Search: "beta"}, filterToday); len(got) != 0 {
		t.Errorf("Filter() returned %d tasks, want 0", len(got))
	}
}

func TestFilter_Conjunctive(t *testing.T) {
	opts := FilterOptions{
		Status:   StatusDone,
		Priority: models.PriorityHigh,
		Search:   "report",
	}
	got := Filter(sampleTasks(), opts, filterToday)
	if want := []uint{1}; !reflect.DeepEqual(taskIDs(got), want) {
		t.Errorf("Filter() ids = %v, want %v", taskIDs(got), want)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	opts := FilterOptions{Status: StatusUpcoming, Priority: models.PriorityMedium}
	once := Filter(sampleTasks(), opts, filterToday)
	twice := Filter(once, opts, filterToday)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering twice changed the result: %v vs %v", taskIDs(once), taskIDs(twice))
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	// Input deliberately not sorted by ID.
	tasks := []models.Task{
		makeTask(9, "c task", "", models.PriorityLow, 1, false),
		makeTask(2, "a task", "", models.PriorityLow, 2, false),
		makeTask(7, "b task", "", models.PriorityLow, 3, false),
	}
	got := Filter(tasks, FilterOptions{Search: "task"}, filterToday)
	if want := []uint{9, 2, 7}; !reflect.DeepEqual(taskIDs(got), want) {
		t.Errorf("Filter() ids = %v, want %v", taskIDs(got), want)
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	tasks := sampleTasks()
	Filter(tasks, FilterOptions{Status: StatusDone}, filterToday)
	if !reflect.DeepEqual(taskIDs(tasks), []uint{1, 2, 3, 4, 5}) {
		t.Errorf("input slice was modified: %v", taskIDs(tasks))
	}
}
