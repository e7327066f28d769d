package models

import "time"

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// NewUserResponse builds the public view of u.
func NewUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

// TaskResponse is the wire representation of a task. The due date is
// rendered as a plain calendar date; creator and assignee emails are
// included for display.
type TaskResponse struct {
	ID            uint       `json:"id"`
	CreatorID     uint       `json:"creator_id"`
	AssigneeID    uint       `json:"assignee_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DueDate       string     `json:"due_date"`
	Priority      string     `json:"priority"`
	IsCompleted   bool       `json:"is_completed"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CreatorEmail  string     `json:"creator_email,omitempty"`
	AssigneeEmail string     `json:"assignee_email,omitempty"`
}

// NewTaskResponse builds the wire representation of t. Creator and
// assignee emails are filled in when the associations are loaded.
func NewTaskResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		CreatorID:     t.CreatorID,
		AssigneeID:    t.AssigneeID,
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       t.DueDate.UTC().Format(DueDateLayout),
		Priority:      t.Priority,
		IsCompleted:   t.IsCompleted,
		CompletedAt:   t.CompletedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		CreatorEmail:  t.Creator.Email,
		AssigneeEmail: t.Assignee.Email,
	}
}

// NewTaskResponses maps a task list to its wire representation,
// preserving order.
func NewTaskResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = NewTaskResponse(t)
	}
	return out
}
