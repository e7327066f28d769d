package services

import "github.com/salahezzat120/task-manager-pro/models"

// Authorization rules for task access. A task belongs to its assignee:
// only the assignee may read or change it. The creator keeps exactly one
// right after creation, deletion.

// CanRead reports whether the user may view the task.
func CanRead(task models.Task, userID uint) bool {
	return task.AssigneeID == userID
}

// CanUpdate reports whether the user may change the task's fields.
func CanUpdate(task models.Task, userID uint) bool {
	return task.AssigneeID == userID
}

// CanToggleComplete reports whether the user may flip the completion flag.
func CanToggleComplete(task models.Task, userID uint) bool {
	return task.AssigneeID == userID
}

// CanDelete reports whether the user may delete the task. Both the
// assignee and the creator may.
func CanDelete(task models.Task, userID uint) bool {
	return task.AssigneeID == userID || task.CreatorID == userID
}
