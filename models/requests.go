package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// DueDateLayout is the wire format for due dates. Due dates carry no
// time-of-day.
const DueDateLayout = "2006-01-02"

const (
	maxTitleLen       = 255
	maxDescriptionLen = 1000
	minPasswordLen    = 6
	maxPasswordLen    = 128
)

// SignupRequest registers a new account.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *SignupRequest) Validate() error {
	if len(r.Password) < minPasswordLen || len(r.Password) > maxPasswordLen {
		return errors.New("password must be between 6 and 128 characters")
	}
	return nil
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateTaskRequest creates a task. The assignee is named by email and
// must already have an account; the authenticated caller becomes the
// creator.
type CreateTaskRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	DueDate       string `json:"due_date" binding:"required"`
	Priority      string `json:"priority"`
	AssigneeEmail string `json:"assignee_email" binding:"required,email"`
}

// Validate checks field constraints and parses the due date. An empty
// priority defaults to medium.
func (r *CreateTaskRequest) Validate() (time.Time, error) {
	if strings.TrimSpace(r.Title) == "" {
		return time.Time{}, errors.New("task title is required")
	}
	if utf8.RuneCountInString(r.Title) > maxTitleLen {
		return time.Time{}, errors.New("task title must be at most 255 characters")
	}
	if utf8.RuneCountInString(r.Description) > maxDescriptionLen {
		return time.Time{}, errors.New("task description must be at most 1000 characters")
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if !ValidPriority(r.Priority) {
		return time.Time{}, errors.New("priority must be low, medium, or high")
	}
	due, err := time.ParseInLocation(DueDateLayout, r.DueDate, time.UTC)
	if err != nil {
		return time.Time{}, errors.New("due date must be in YYYY-MM-DD format")
	}
	return due, nil
}

// UpdateTaskRequest partially updates a task. Nil fields are left
// untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	IsCompleted *bool   `json:"is_completed"`
}

// Validate checks the provided fields and parses the due date when one is
// present.
func (r *UpdateTaskRequest) Validate() (*time.Time, error) {
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return nil, errors.New("task title is required")
		}
		if utf8.RuneCountInString(*r.Title) > maxTitleLen {
			return nil, errors.New("task title must be at most 255 characters")
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		return nil, errors.New("task description must be at most 1000 characters")
	}
	if r.Priority != nil && !ValidPriority(*r.Priority) {
		return nil, errors.New("priority must be low, medium, or high")
	}
	if r.DueDate != nil {
		due, err := time.ParseInLocation(DueDateLayout, *r.DueDate, time.UTC)
		if err != nil {
			return nil, errors.New("due date must be in YYYY-MM-DD format")
		}
		return &due, nil
	}
	return nil, nil
}

// ToggleCompleteRequest optionally carries an explicit completion value.
// Without a body the endpoint flips the current flag.
type ToggleCompleteRequest struct {
	IsCompleted *bool `json:"is_completed"`
}
