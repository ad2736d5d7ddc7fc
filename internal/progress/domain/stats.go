package domain

import "time"

// DefaultHappiness is the happiness level a fresh monster starts with.
const DefaultHappiness = 50

// HappinessPerCompletion is added to happiness each time a task is chomped.
const HappinessPerCompletion = 5

// ProgressStats is the per-user accounting row behind the monster companion:
// lifetime completions, streaks and the bounded happiness score. Only the
// accountant mutates it, atomically with the task completion write.
type ProgressStats struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"uniqueIndex;not null"`
	TasksChomped   int        `json:"tasks_chomped" gorm:"default:0"`
	CurrentStreak  int        `json:"current_streak" gorm:"default:0"`
	LongestStreak  int        `json:"longest_streak" gorm:"default:0"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
	HappinessLevel int        `json:"happiness_level" gorm:"default:50"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// RecordCompletion applies one completion at the given instant: streak
// arithmetic on calendar-day granularity, longest-streak high-water mark,
// chomped counter and clamped happiness. Stats only ever ratchet upward;
// uncompleting a task does not call this and never undoes it.
func (s *ProgressStats) RecordCompletion(now time.Time) {
	switch {
	case s.LastActiveDate == nil:
		s.CurrentStreak = 1
	default:
		switch DaysBetween(*s.LastActiveDate, now) {
		case 0:
			// Already active today, streak unchanged.
		case 1:
			s.CurrentStreak++
		default:
			s.CurrentStreak = 1
		}
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	s.TasksChomped++
	s.HappinessLevel += HappinessPerCompletion
	if s.HappinessLevel > 100 {
		s.HappinessLevel = 100
	}

	today := startOfDay(now)
	s.LastActiveDate = &today
}

// DaysBetween counts whole calendar days from a to b, not rolling 24h
// windows: 23:59 to 00:01 the next day is one day apart. Dates are compared
// in UTC so a 23- or 25-hour DST day still counts as one day.
func DaysBetween(a, b time.Time) int {
	a = a.In(b.Location())
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
