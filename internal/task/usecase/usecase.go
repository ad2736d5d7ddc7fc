package usecase

import (
	"time"

	progressdomain "chomper-backend/internal/progress/domain"
	"chomper-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// GetTasks retrieves the user's tasks that are visible right now
	GetTasks(userID string) ([]*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// CreateTask creates a new one-off task
	CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error)

	// UpdateTask edits task fields; completion toggling goes through
	// CompleteTask/UncompleteTask instead
	UpdateTask(userID, taskID string, req TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error

	// ClearCompleted removes completed one-off tasks; template-linked
	// instances are kept
	ClearCompleted(userID string) (int64, error)

	// CompleteTask marks a task completed and runs the progress accounting
	// in the same transaction. Returns the updated task and any newly
	// unlocked achievements.
	CompleteTask(userID, taskID string) (*domain.Task, []*progressdomain.Achievement, error)

	// UncompleteTask reverts a completion. Stats are deliberately left
	// untouched.
	UncompleteTask(userID, taskID string) (*domain.Task, error)
}

// TemplateUsecase defines the interface for recurring template logic
type TemplateUsecase interface {
	// CreateTemplate validates and stores a template, then materializes its
	// first instance
	CreateTemplate(userID string, req CreateTemplateRequest) (*domain.RecurringTemplate, error)

	// GetTemplates lists the user's templates
	GetTemplates(userID string) ([]*domain.RecurringTemplate, error)

	// UpdateTemplate edits a template (with ownership check)
	UpdateTemplate(userID, templateID string, req TemplateUpdateRequest) (*domain.RecurringTemplate, error)

	// DeleteTemplate removes a template and every task instance it spawned
	DeleteTemplate(userID, templateID string) error

	// Materialize creates the task instance for the given due date, enforcing
	// the single-active-instance invariant and the same-day idempotence
	// guard. Returns the active instance, whether fresh or pre-existing.
	Materialize(template *domain.RecurringTemplate, targetDate time.Time) (*domain.Task, error)
}

// CreateTaskRequest carries the fields for a new one-off task
type CreateTaskRequest struct {
	Title    string     `json:"title" binding:"required"`
	Notes    string     `json:"notes"`
	Category string     `json:"category"`
	Priority string     `json:"priority"`
	DueDate  *time.Time `json:"due_date"`
}

// TaskUpdateRequest represents the task fields that can be edited
type TaskUpdateRequest struct {
	Title    *string    `json:"title,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
	Category *string    `json:"category,omitempty"`
	Priority *string    `json:"priority,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

// CreateTemplateRequest carries the fields for a new recurring template
type CreateTemplateRequest struct {
	Title            string `json:"title" binding:"required"`
	Category         string `json:"category"`
	Notes            string `json:"notes"`
	RecurringPattern string `json:"recurring_pattern" binding:"required"`
	DayOfWeek        *int   `json:"day_of_week"`
	DayOfMonth       *int   `json:"day_of_month"`
}

// TemplateUpdateRequest represents the template fields that can be edited
type TemplateUpdateRequest struct {
	Title      *string `json:"title,omitempty"`
	Category   *string `json:"category,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	DayOfWeek  *int    `json:"day_of_week,omitempty"`
	DayOfMonth *int    `json:"day_of_month,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}
