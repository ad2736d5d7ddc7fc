package repository

import (
	"time"

	"chomper-backend/internal/task/domain"

	"gorm.io/gorm"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID, nil if absent
	FindByID(id string) (*domain.Task, error)

	// FindVisibleByUserID finds all tasks for a user that are visible at the
	// given instant (scheduled_for in the past or unset)
	FindVisibleByUserID(userID string, now time.Time) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// DeleteCompletedOneOff removes completed tasks without a template link.
	// Template-linked tasks are never swept by bulk-clear.
	DeleteCompletedOneOff(userID string) (int64, error)

	// FindActiveByTemplate returns the incomplete task referencing the given
	// template, nil if none. Backs the at-most-one-active-instance invariant.
	FindActiveByTemplate(templateID, userID string) (*domain.Task, error)

	// DeleteByTemplate removes every task referencing the template
	DeleteByTemplate(templateID, userID string) (int64, error)

	// FindDueBetween returns incomplete tasks with a due date inside
	// [start, end), used for the timezone-aware due-today count
	FindDueBetween(userID string, start, end time.Time) ([]*domain.Task, error)

	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) TaskRepository
}

// TemplateRepository defines the interface for recurring template data access
type TemplateRepository interface {
	// Create creates a new template
	Create(template *domain.RecurringTemplate) error

	// FindByID finds a template by ID, nil if absent
	FindByID(id string) (*domain.RecurringTemplate, error)

	// FindByUserID lists a user's templates
	FindByUserID(userID string) ([]*domain.RecurringTemplate, error)

	// ListActive returns every active template across all users, for the
	// scheduler's regeneration pass
	ListActive() ([]*domain.RecurringTemplate, error)

	// Update updates an existing template
	Update(template *domain.RecurringTemplate) error

	// Delete deletes a template by ID
	Delete(id string) error

	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) TemplateRepository
}
