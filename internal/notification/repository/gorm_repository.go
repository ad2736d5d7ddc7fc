package repository

import (
	"time"

	"chomper-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormPushSubscriptionRepository implements PushSubscriptionRepository using GORM
type gormPushSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormPushSubscriptionRepository creates a new GORM-based PushSubscriptionRepository
func NewGormPushSubscriptionRepository(db *gorm.DB) PushSubscriptionRepository {
	return &gormPushSubscriptionRepository{db: db}
}

// Save stores a subscription with an atomic upsert keyed by endpoint, so a
// browser re-subscribing keeps a single row.
func (r *gormPushSubscriptionRepository) Save(sub *domain.PushSubscription) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	sub.CreatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth"}),
	}).Create(sub).Error
}

func (r *gormPushSubscriptionRepository) ListByUserID(userID string) ([]*domain.PushSubscription, error) {
	var subs []*domain.PushSubscription
	err := r.db.Where("user_id = ?", userID).Find(&subs).Error
	return subs, err
}

func (r *gormPushSubscriptionRepository) DeleteByEndpoint(endpoint string) error {
	return r.db.Where("endpoint = ?", endpoint).Delete(&domain.PushSubscription{}).Error
}

// gormDeviceTokenRepository implements DeviceTokenRepository using GORM
type gormDeviceTokenRepository struct {
	db *gorm.DB
}

// NewGormDeviceTokenRepository creates a new GORM-based DeviceTokenRepository
func NewGormDeviceTokenRepository(db *gorm.DB) DeviceTokenRepository {
	return &gormDeviceTokenRepository{db: db}
}

// Save stores a token with an atomic upsert keyed by token value.
func (r *gormDeviceTokenRepository) Save(token *domain.DeviceToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	token.CreatedAt = time.Now()
	token.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "device_info", "updated_at"}),
	}).Create(token).Error
}

func (r *gormDeviceTokenRepository) ListByUserID(userID string) ([]*domain.DeviceToken, error) {
	var tokens []*domain.DeviceToken
	err := r.db.Where("user_id = ?", userID).Find(&tokens).Error
	return tokens, err
}

func (r *gormDeviceTokenRepository) DeleteByToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&domain.DeviceToken{}).Error
}
