package domain

import "time"

// AchievementType selects which stats metric an achievement is measured
// against.
type AchievementType string

const (
	TypeTasksChomped        AchievementType = "tasks_chomped"
	TypeStreak              AchievementType = "streak"
	TypeHappiness           AchievementType = "happiness"
	TypeMonsterUnlock       AchievementType = "monster_unlock"
	TypeMonsterUnlockStreak AchievementType = "monster_unlock_streak"
)

// Achievement is a per-user unlock record. Rows are seeded once per user and
// never deleted; unlocking is monotonic.
type Achievement struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	UserID      string          `json:"user_id" gorm:"index;not null"`
	Slug        string          `json:"slug" gorm:"index;not null"` // Stable key within a user's set
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Type        AchievementType `json:"type" gorm:"not null"`
	Requirement int             `json:"requirement" gorm:"not null"`
	UnlockedAt  *time.Time      `json:"unlocked_at,omitempty"` // Null = locked
	CreatedAt   time.Time       `json:"created_at"`
}

// Unlocked reports whether the achievement has been earned.
func (a *Achievement) Unlocked() bool { return a.UnlockedAt != nil }

// Met reports whether the stats satisfy the achievement's requirement.
func (a *Achievement) Met(stats *ProgressStats) bool {
	switch a.Type {
	case TypeTasksChomped, TypeMonsterUnlock:
		return stats.TasksChomped >= a.Requirement
	case TypeStreak, TypeMonsterUnlockStreak:
		return stats.LongestStreak >= a.Requirement
	case TypeHappiness:
		return stats.HappinessLevel >= a.Requirement
	default:
		return false
	}
}

// SeedDefinition describes one entry of the default achievement catalog.
type SeedDefinition struct {
	Slug        string
	Name        string
	Description string
	Icon        string
	Type        AchievementType
	Requirement int
}

// DefaultAchievements is the catalog seeded for every user on first read.
var DefaultAchievements = []SeedDefinition{
	{Slug: "first_chomp", Name: "First Bite", Description: "Complete your first task", Icon: "cookie", Type: TypeTasksChomped, Requirement: 1},
	{Slug: "chomp_10", Name: "Getting Hungry", Description: "Complete 10 tasks", Icon: "utensils", Type: TypeTasksChomped, Requirement: 10},
	{Slug: "chomp_25", Name: "Appetite Growing", Description: "Complete 25 tasks", Icon: "chef-hat", Type: TypeTasksChomped, Requirement: 25},
	{Slug: "chomp_50", Name: "Hungry Monster", Description: "Complete 50 tasks", Icon: "drumstick", Type: TypeTasksChomped, Requirement: 50},
	{Slug: "chomp_100", Name: "Feast Master", Description: "Complete 100 tasks", Icon: "crown", Type: TypeTasksChomped, Requirement: 100},
	{Slug: "streak_3", Name: "Hat Trick", Description: "Maintain a 3-day streak", Icon: "flame", Type: TypeStreak, Requirement: 3},
	{Slug: "streak_7", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "zap", Type: TypeStreak, Requirement: 7},
	{Slug: "streak_14", Name: "Fortnight Fighter", Description: "Maintain a 14-day streak", Icon: "star", Type: TypeStreak, Requirement: 14},
	{Slug: "streak_30", Name: "Monthly Master", Description: "Maintain a 30-day streak", Icon: "trophy", Type: TypeStreak, Requirement: 30},
	{Slug: "happiness_75", Name: "Joyful Journey", Description: "Reach 75% happiness", Icon: "heart", Type: TypeHappiness, Requirement: 75},
	{Slug: "happiness_100", Name: "Pure Bliss", Description: "Reach 100% happiness", Icon: "sparkles", Type: TypeHappiness, Requirement: 100},
	{Slug: "monster_spots", Name: "Spots", Description: "Unlock the spotted monster", Icon: "egg", Type: TypeMonsterUnlock, Requirement: 15},
	{Slug: "monster_fangs", Name: "Fangs", Description: "Unlock the fanged monster", Icon: "ghost", Type: TypeMonsterUnlock, Requirement: 60},
	{Slug: "monster_ember", Name: "Ember", Description: "Keep a 5-day streak to unlock Ember", Icon: "flame-kindling", Type: TypeMonsterUnlockStreak, Requirement: 5},
	{Slug: "monster_frost", Name: "Frost", Description: "Keep a 21-day streak to unlock Frost", Icon: "snowflake", Type: TypeMonsterUnlockStreak, Requirement: 21},
}
