package repository

import (
	"errors"
	"time"

	"chomper-backend/internal/progress/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormStatsRepository implements StatsRepository using GORM
type gormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GORM-based StatsRepository
func NewGormStatsRepository(db *gorm.DB) StatsRepository {
	return &gormStatsRepository{db: db}
}

func (r *gormStatsRepository) WithTx(tx *gorm.DB) StatsRepository {
	return &gormStatsRepository{db: tx}
}

func (r *gormStatsRepository) GetOrCreate(userID string) (*domain.ProgressStats, error) {
	var stats domain.ProgressStats
	err := r.db.Where("user_id = ?", userID).First(&stats).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats = domain.ProgressStats{
		ID:             uuid.New().String(),
		UserID:         userID,
		HappinessLevel: domain.DefaultHappiness,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := r.db.Create(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *gormStatsRepository) Update(stats *domain.ProgressStats) error {
	stats.UpdatedAt = time.Now()
	return r.db.Save(stats).Error
}

// gormAchievementRepository implements AchievementRepository using GORM
type gormAchievementRepository struct {
	db *gorm.DB
}

// NewGormAchievementRepository creates a new GORM-based AchievementRepository
func NewGormAchievementRepository(db *gorm.DB) AchievementRepository {
	return &gormAchievementRepository{db: db}
}

func (r *gormAchievementRepository) WithTx(tx *gorm.DB) AchievementRepository {
	return &gormAchievementRepository{db: tx}
}

func (r *gormAchievementRepository) ListByUserID(userID string) ([]*domain.Achievement, error) {
	if err := r.seed(userID); err != nil {
		return nil, err
	}
	var achievements []*domain.Achievement
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC, slug ASC").
		Find(&achievements).Error
	return achievements, err
}

func (r *gormAchievementRepository) Unlock(id string, at time.Time) error {
	return r.db.Model(&domain.Achievement{}).
		Where("id = ? AND unlocked_at IS NULL", id).
		Update("unlocked_at", at).Error
}

// seed inserts the default catalog for users that have no achievement rows
// yet. Seeding happens once; rows are never deleted afterwards.
func (r *gormAchievementRepository) seed(userID string) error {
	var count int64
	if err := r.db.Model(&domain.Achievement{}).Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]*domain.Achievement, 0, len(domain.DefaultAchievements))
	now := time.Now()
	for _, def := range domain.DefaultAchievements {
		rows = append(rows, &domain.Achievement{
			ID:          uuid.New().String(),
			UserID:      userID,
			Slug:        def.Slug,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Type:        def.Type,
			Requirement: def.Requirement,
			CreatedAt:   now,
		})
	}
	return r.db.Create(&rows).Error
}
