package domain

import "time"

// User holds the account fields the core cares about. Credential and session
// management live outside this service; the row here carries identity plus
// the notification preferences the scheduler reads every tick.
type User struct {
	ID                   string    `json:"id" gorm:"primaryKey"`
	Username             string    `json:"username" gorm:"uniqueIndex;not null"`
	NotificationsEnabled bool      `json:"notifications_enabled" gorm:"default:false"`
	NotificationTime     string    `json:"notification_time" gorm:"default:07:00"` // Local HH:MM
	Timezone             string    `json:"timezone" gorm:"default:UTC"`            // IANA name
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
