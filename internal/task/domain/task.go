package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task represents a single actionable item, either created directly by the
// user or materialized from a RecurringTemplate.
type Task struct {
	ID               string            `json:"id" gorm:"primaryKey"`
	UserID           string            `json:"user_id" gorm:"index;not null"`
	Title            string            `json:"title" gorm:"not null"`
	Notes            string            `json:"notes,omitempty"`
	Category         string            `json:"category" gorm:"default:personal"`
	Priority         Priority          `json:"priority" gorm:"default:medium"`
	Completed        bool              `json:"completed" gorm:"default:false"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	DueDate          *time.Time        `json:"due_date,omitempty"`
	IsRecurring      bool              `json:"is_recurring" gorm:"default:false"`
	RecurringPattern *RecurringPattern `json:"recurring_pattern,omitempty"`
	TemplateID       *string           `json:"template_id,omitempty" gorm:"index"` // Null for one-off tasks
	ScheduledFor     *time.Time        `json:"scheduled_for,omitempty"`            // Hidden from the user until this instant
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Visible reports whether the task should be shown to the user at the given
// time. Tasks scheduled for a future instant stay hidden until it passes.
func (t *Task) Visible(now time.Time) bool {
	return t.ScheduledFor == nil || !t.ScheduledFor.After(now)
}
