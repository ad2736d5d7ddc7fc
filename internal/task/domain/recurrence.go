package domain

import "time"

// Midnight normalizes an instant to 00:00:00 of its calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of the instant's calendar day, the due time
// stamped onto materialized instances.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, t.Location())
}

// NextOccurrence computes the next date the template is due strictly after
// the anchor day. It never returns the anchor day itself: a weekly template
// asked on its own weekday answers a full week later, and a monthly template
// asked on its own day answers the following month. Pure and deterministic.
func (t *RecurringTemplate) NextOccurrence(anchor time.Time) time.Time {
	switch t.RecurringPattern {
	case PatternWeekly:
		target := time.Weekday(*t.DayOfWeek)
		days := int(target-anchor.Weekday()+7) % 7
		if days == 0 {
			days = 7
		}
		return Midnight(anchor.AddDate(0, 0, days))
	case PatternMonthly:
		day := *t.DayOfMonth
		this := time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())
		if this.After(Midnight(anchor)) {
			return this
		}
		return this.AddDate(0, 1, 0)
	default: // daily
		return Midnight(anchor.AddDate(0, 0, 1))
	}
}

// DueToday reports whether the template's schedule lands on the given day.
// Unlike NextOccurrence it accepts "today", which is what the regeneration
// pass and the initial materialization on template creation need.
func (t *RecurringTemplate) DueToday(now time.Time) bool {
	switch t.RecurringPattern {
	case PatternWeekly:
		return now.Weekday() == time.Weekday(*t.DayOfWeek)
	case PatternMonthly:
		return now.Day() == *t.DayOfMonth
	default:
		return true
	}
}

// ShouldRegenerate reports whether the scheduler's regeneration pass should
// materialize a new instance for this template on the given day: the template
// must be active, scheduled for today, and not already generated today.
func (t *RecurringTemplate) ShouldRegenerate(now time.Time) bool {
	return t.Active && t.DueToday(now) && !t.GeneratedToday(now)
}
