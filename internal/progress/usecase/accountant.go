package usecase

import (
	"time"

	"chomper-backend/internal/apperr"
	"chomper-backend/internal/progress/domain"
	"chomper-backend/internal/progress/repository"

	"gorm.io/gorm"
)

// progressUsecase implements ProgressUsecase
type progressUsecase struct {
	statsRepo repository.StatsRepository
	achRepo   repository.AchievementRepository
}

// NewProgressUsecase creates the accountant
func NewProgressUsecase(statsRepo repository.StatsRepository, achRepo repository.AchievementRepository) ProgressUsecase {
	return &progressUsecase{statsRepo: statsRepo, achRepo: achRepo}
}

func (u *progressUsecase) RecordCompletion(tx *gorm.DB, userID string, now time.Time) (*domain.ProgressStats, []*domain.Achievement, error) {
	statsRepo := u.statsRepo
	achRepo := u.achRepo
	if tx != nil {
		statsRepo = statsRepo.WithTx(tx)
		achRepo = achRepo.WithTx(tx)
	}

	stats, err := statsRepo.GetOrCreate(userID)
	if err != nil {
		return nil, nil, apperr.WrapStore("stats", "load", err)
	}

	stats.RecordCompletion(now)

	if err := statsRepo.Update(stats); err != nil {
		return nil, nil, apperr.WrapStore("stats", "update", err)
	}

	unlocked, err := unlockEligible(achRepo, stats, now)
	if err != nil {
		return nil, nil, err
	}
	return stats, unlocked, nil
}

func (u *progressUsecase) GetStats(userID string) (*domain.ProgressStats, error) {
	stats, err := u.statsRepo.GetOrCreate(userID)
	if err != nil {
		return nil, apperr.WrapStore("stats", "load", err)
	}
	return stats, nil
}

func (u *progressUsecase) ListAchievements(userID string) ([]*domain.Achievement, error) {
	achievements, err := u.achRepo.ListByUserID(userID)
	if err != nil {
		return nil, apperr.WrapStore("achievements", "list", err)
	}
	return achievements, nil
}

func (u *progressUsecase) CheckAchievements(userID string, now time.Time) ([]*domain.Achievement, error) {
	stats, err := u.statsRepo.GetOrCreate(userID)
	if err != nil {
		return nil, apperr.WrapStore("stats", "load", err)
	}
	return unlockEligible(u.achRepo, stats, now)
}

// unlockEligible sweeps the user's locked achievements and unlocks every one
// whose requirement the stats now meet. Returns only the newly unlocked rows,
// so a second sweep with unchanged stats returns nothing.
func unlockEligible(achRepo repository.AchievementRepository, stats *domain.ProgressStats, now time.Time) ([]*domain.Achievement, error) {
	achievements, err := achRepo.ListByUserID(stats.UserID)
	if err != nil {
		return nil, apperr.WrapStore("achievements", "list", err)
	}

	var newlyUnlocked []*domain.Achievement
	for _, a := range achievements {
		if a.Unlocked() || !a.Met(stats) {
			continue
		}
		if err := achRepo.Unlock(a.ID, now); err != nil {
			return nil, apperr.WrapStore("achievement", "unlock", err)
		}
		at := now
		a.UnlockedAt = &at
		newlyUnlocked = append(newlyUnlocked, a)
	}
	return newlyUnlocked, nil
}
