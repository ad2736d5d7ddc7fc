package domain

import (
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrenceDaily(t *testing.T) {
	tpl := &RecurringTemplate{RecurringPattern: PatternDaily}
	anchor := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

	next := tpl.NextOccurrence(anchor)
	want := date(2025, time.March, 11)
	if !next.Equal(want) {
		t.Fatalf("daily next = %v, want %v", next, want)
	}
}

func TestNextOccurrenceWeekly(t *testing.T) {
	// Monday template asked on a Wednesday answers the following Monday,
	// never today or a past date.
	tpl := &RecurringTemplate{RecurringPattern: PatternWeekly, DayOfWeek: intp(1)}
	wednesday := date(2025, time.March, 12)
	if wednesday.Weekday() != time.Wednesday {
		t.Fatalf("fixture is %v, want Wednesday", wednesday.Weekday())
	}

	next := tpl.NextOccurrence(wednesday)
	if next.Weekday() != time.Monday {
		t.Fatalf("weekly next lands on %v, want Monday", next.Weekday())
	}
	if !next.After(wednesday) {
		t.Fatalf("weekly next %v is not after anchor %v", next, wednesday)
	}
	if got, want := next, date(2025, time.March, 17); !got.Equal(want) {
		t.Fatalf("weekly next = %v, want %v", got, want)
	}
}

func TestNextOccurrenceWeeklySameDayAdvancesFullWeek(t *testing.T) {
	tpl := &RecurringTemplate{RecurringPattern: PatternWeekly, DayOfWeek: intp(1)}
	monday := date(2025, time.March, 10)
	if monday.Weekday() != time.Monday {
		t.Fatalf("fixture is %v, want Monday", monday.Weekday())
	}

	next := tpl.NextOccurrence(monday)
	if got, want := next, date(2025, time.March, 17); !got.Equal(want) {
		t.Fatalf("weekly next on matching day = %v, want %v", got, want)
	}
}

func TestNextOccurrenceMonthlyUpcomingThisMonth(t *testing.T) {
	tpl := &RecurringTemplate{RecurringPattern: PatternMonthly, DayOfMonth: intp(15)}
	next := tpl.NextOccurrence(date(2025, time.March, 10))
	if got, want := next, date(2025, time.March, 15); !got.Equal(want) {
		t.Fatalf("monthly next = %v, want %v", got, want)
	}
}

func TestNextOccurrenceMonthlyAlreadyPassed(t *testing.T) {
	// Day 28 asked on the 29th rolls to the 28th of the following month.
	tpl := &RecurringTemplate{RecurringPattern: PatternMonthly, DayOfMonth: intp(28)}
	next := tpl.NextOccurrence(date(2025, time.March, 29))
	if got, want := next, date(2025, time.April, 28); !got.Equal(want) {
		t.Fatalf("monthly next = %v, want %v", got, want)
	}
}

func TestNextOccurrenceMonthlyOnConfiguredDay(t *testing.T) {
	tpl := &RecurringTemplate{RecurringPattern: PatternMonthly, DayOfMonth: intp(28)}
	next := tpl.NextOccurrence(date(2025, time.March, 28))
	if got, want := next, date(2025, time.April, 28); !got.Equal(want) {
		t.Fatalf("monthly next on configured day = %v, want %v", got, want)
	}
}

func TestDueToday(t *testing.T) {
	daily := &RecurringTemplate{RecurringPattern: PatternDaily}
	weekly := &RecurringTemplate{RecurringPattern: PatternWeekly, DayOfWeek: intp(1)}
	monthly := &RecurringTemplate{RecurringPattern: PatternMonthly, DayOfMonth: intp(12)}

	wednesday := date(2025, time.March, 12)
	if !daily.DueToday(wednesday) {
		t.Fatal("daily template should always be due")
	}
	if weekly.DueToday(wednesday) {
		t.Fatal("Monday template should not be due on Wednesday")
	}
	if !weekly.DueToday(date(2025, time.March, 10)) {
		t.Fatal("Monday template should be due on Monday")
	}
	if !monthly.DueToday(wednesday) {
		t.Fatal("day-12 template should be due on the 12th")
	}
	if monthly.DueToday(date(2025, time.March, 13)) {
		t.Fatal("day-12 template should not be due on the 13th")
	}
}

func TestShouldRegenerate(t *testing.T) {
	now := time.Date(2025, time.March, 12, 0, 0, 30, 0, time.UTC)

	tpl := &RecurringTemplate{RecurringPattern: PatternDaily, Active: true}
	if !tpl.ShouldRegenerate(now) {
		t.Fatal("active daily template should regenerate")
	}

	tpl.Active = false
	if tpl.ShouldRegenerate(now) {
		t.Fatal("paused template should never regenerate")
	}

	tpl.Active = true
	earlier := now.Add(-5 * time.Minute)
	tpl.LastGeneratedAt = &earlier
	if tpl.ShouldRegenerate(now) {
		t.Fatal("template already generated today should not regenerate")
	}

	yesterday := now.AddDate(0, 0, -1)
	tpl.LastGeneratedAt = &yesterday
	if !tpl.ShouldRegenerate(now) {
		t.Fatal("generation stamp from yesterday should not block today")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		tpl     RecurringTemplate
		wantErr bool
	}{
		{"daily", RecurringTemplate{RecurringPattern: PatternDaily}, false},
		{"weekly ok", RecurringTemplate{RecurringPattern: PatternWeekly, DayOfWeek: intp(6)}, false},
		{"weekly missing day", RecurringTemplate{RecurringPattern: PatternWeekly}, true},
		{"weekly day out of range", RecurringTemplate{RecurringPattern: PatternWeekly, DayOfWeek: intp(7)}, true},
		{"monthly ok", RecurringTemplate{RecurringPattern: PatternMonthly, DayOfMonth: intp(28)}, false},
		{"monthly day too high", RecurringTemplate{RecurringPattern: PatternMonthly, DayOfMonth: intp(29)}, true},
		{"monthly day too low", RecurringTemplate{RecurringPattern: PatternMonthly, DayOfMonth: intp(0)}, true},
		{"unknown pattern", RecurringTemplate{RecurringPattern: "yearly"}, true},
	}

	for _, tc := range cases {
		err := tc.tpl.Validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error, got none", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2025, time.March, 12, 9, 15, 0, 0, time.UTC)
	out := EndOfDay(in)
	if out.Hour() != 23 || out.Minute() != 59 || out.Second() != 59 {
		t.Fatalf("EndOfDay = %v", out)
	}
	if out.Day() != 12 {
		t.Fatalf("EndOfDay moved to day %d", out.Day())
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 12, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 13, 0, 1, 0, 0, time.UTC)
	if SameDay(a, b) {
		t.Fatal("11:59pm and 12:01am are different calendar days")
	}
	if !SameDay(a, a.Add(-23*time.Hour)) {
		t.Fatal("same calendar day expected")
	}
}
