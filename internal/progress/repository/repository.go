package repository

import (
	"time"

	"chomper-backend/internal/progress/domain"

	"gorm.io/gorm"
)

// StatsRepository defines the interface for progress stats data access
type StatsRepository interface {
	// GetOrCreate loads the user's stats row, creating it with defaults
	// (0 streaks, happiness 50) on first access
	GetOrCreate(userID string) (*domain.ProgressStats, error)

	// Update persists changed stats
	Update(stats *domain.ProgressStats) error

	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) StatsRepository
}

// AchievementRepository defines the interface for achievement data access
type AchievementRepository interface {
	// ListByUserID returns the user's full achievement set, seeding the
	// default catalog on first access
	ListByUserID(userID string) ([]*domain.Achievement, error)

	// Unlock stamps the achievement as earned at the given instant. A no-op
	// for already-unlocked rows; unlocking is monotonic.
	Unlock(id string, at time.Time) error

	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx *gorm.DB) AchievementRepository
}
