package repository

import "chomper-backend/internal/notification/domain"

// PushSubscriptionRepository defines the interface for Web Push subscription
// data access
type PushSubscriptionRepository interface {
	// Save stores or refreshes a subscription (keyed by endpoint)
	Save(sub *domain.PushSubscription) error

	// ListByUserID returns a user's subscriptions
	ListByUserID(userID string) ([]*domain.PushSubscription, error)

	// DeleteByEndpoint removes a dead subscription
	DeleteByEndpoint(endpoint string) error
}

// DeviceTokenRepository defines the interface for FCM device token data access
type DeviceTokenRepository interface {
	// Save stores or refreshes a token (keyed by token value)
	Save(token *domain.DeviceToken) error

	// ListByUserID returns a user's device tokens
	ListByUserID(userID string) ([]*domain.DeviceToken, error)

	// DeleteByToken removes an invalid token
	DeleteByToken(token string) error
}
