package domain

import (
	"time"

	"chomper-backend/internal/apperr"
)

// RecurringPattern is the closed set of supported recurrence kinds.
type RecurringPattern string

const (
	PatternDaily   RecurringPattern = "daily"
	PatternWeekly  RecurringPattern = "weekly"
	PatternMonthly RecurringPattern = "monthly"
)

// RecurringTemplate is the recurrence definition, decoupled from any single
// task instance it spawns.
type RecurringTemplate struct {
	ID               string           `json:"id" gorm:"primaryKey"`
	UserID           string           `json:"user_id" gorm:"index;not null"`
	Title            string           `json:"title" gorm:"not null"`
	Category         string           `json:"category" gorm:"default:personal"`
	Notes            string           `json:"notes,omitempty"`
	RecurringPattern RecurringPattern `json:"recurring_pattern" gorm:"not null"`
	DayOfWeek        *int             `json:"day_of_week,omitempty"`  // 0=Sunday..6, weekly only
	DayOfMonth       *int             `json:"day_of_month,omitempty"` // 1..28, monthly only
	Active           bool             `json:"active" gorm:"default:true"`
	LastGeneratedAt  *time.Time       `json:"last_generated_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Validate checks the pattern and its parameters. Weekly templates need a
// weekday, monthly templates a day of month capped at 28 so every month has
// the configured day.
func (t *RecurringTemplate) Validate() error {
	switch t.RecurringPattern {
	case PatternDaily:
		return nil
	case PatternWeekly:
		if t.DayOfWeek == nil || *t.DayOfWeek < 0 || *t.DayOfWeek > 6 {
			return apperr.Validation("weekly template requires day_of_week in 0-6")
		}
		return nil
	case PatternMonthly:
		if t.DayOfMonth == nil || *t.DayOfMonth < 1 || *t.DayOfMonth > 28 {
			return apperr.Validation("monthly template requires day_of_month in 1-28")
		}
		return nil
	default:
		return apperr.Validation("unknown recurring pattern %q", t.RecurringPattern)
	}
}

// GeneratedToday reports whether the template already produced an instance on
// the same calendar day as now. Used as the idempotence guard against
// duplicate scheduler ticks.
func (t *RecurringTemplate) GeneratedToday(now time.Time) bool {
	if t.LastGeneratedAt == nil {
		return false
	}
	return SameDay(*t.LastGeneratedAt, now)
}

// SameDay reports whether two instants fall on the same calendar day in the
// location of the second argument.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
