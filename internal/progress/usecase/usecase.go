package usecase

import (
	"time"

	"chomper-backend/internal/progress/domain"

	"gorm.io/gorm"
)

// ProgressUsecase is the accountant behind task completions: it owns every
// mutation of ProgressStats and Achievement rows.
type ProgressUsecase interface {
	// RecordCompletion applies one completion ratchet for the user inside the
	// given transaction and returns the updated stats together with any
	// achievements the completion unlocked.
	RecordCompletion(tx *gorm.DB, userID string, now time.Time) (*domain.ProgressStats, []*domain.Achievement, error)

	// GetStats returns the user's stats, creating the default row on first
	// access
	GetStats(userID string) (*domain.ProgressStats, error)

	// ListAchievements returns the user's achievement set, seeding the
	// default catalog on first access
	ListAchievements(userID string) ([]*domain.Achievement, error)

	// CheckAchievements re-evaluates locked achievements against the current
	// stats and returns the newly unlocked ones
	CheckAchievements(userID string, now time.Time) ([]*domain.Achievement, error)
}
