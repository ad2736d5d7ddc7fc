package repository

import "chomper-backend/internal/user/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByID finds a user by ID, nil if absent
	FindByID(id string) (*domain.User, error)

	// Update persists changed user fields
	Update(user *domain.User) error

	// ListWithNotificationsEnabled returns every user the scheduler's
	// notification pass has to consider
	ListWithNotificationsEnabled() ([]*domain.User, error)
}
