package models

import (
	"time"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is one of the three priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work authored by one user and assigned to another
// (possibly the same) user. DueDate is a calendar date; time-of-day never
// takes part in comparisons. CompletedAt is non-nil exactly when
// IsCompleted is true.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatorID   uint       `gorm:"index;not null" json:"creator_id"`
	AssigneeID  uint       `gorm:"index;not null" json:"assignee_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     time.Time  `gorm:"type:date;not null" json:"due_date"`
	Priority    string     `gorm:"type:varchar(10);default:medium" json:"priority"`
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Creator  User `gorm:"foreignKey:CreatorID" json:"-"`
	Assignee User `gorm:"foreignKey:AssigneeID" json:"-"`
}
