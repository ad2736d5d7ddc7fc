package notification

import (
	"context"
	"log"

	"chomper-backend/internal/notification/domain"
	"chomper-backend/internal/notification/repository"
	"chomper-backend/pkg/fcm"
	"chomper-backend/pkg/webpush"
)

// WebPushSender is the Web Push transport used by the dispatcher.
type WebPushSender interface {
	Send(sub webpush.Subscription, payload interface{}) (gone bool, err error)
}

// FCMSender is the FCM transport used by the dispatcher.
type FCMSender interface {
	SendToDevices(ctx context.Context, tokens []string, notification fcm.NotificationData) ([]string, error)
}

// Service fans a notification payload out to every transport a user has
// registered. Dead endpoints and invalid tokens are removed on the spot
// instead of being retried.
type Service struct {
	subRepo   repository.PushSubscriptionRepository
	tokenRepo repository.DeviceTokenRepository
	webPush   WebPushSender
	fcmClient FCMSender
}

// NewService creates a dispatch service. Either transport may be nil when the
// corresponding credentials are not configured.
func NewService(
	subRepo repository.PushSubscriptionRepository,
	tokenRepo repository.DeviceTokenRepository,
	webPush WebPushSender,
	fcmClient FCMSender,
) *Service {
	return &Service{
		subRepo:   subRepo,
		tokenRepo: tokenRepo,
		webPush:   webPush,
		fcmClient: fcmClient,
	}
}

// Enabled reports whether at least one transport is configured.
func (s *Service) Enabled() bool {
	return s.webPush != nil || s.fcmClient != nil
}

// Dispatch sends the payload to all of the user's subscriptions and device
// tokens, returning how many deliveries succeeded. A failure on one
// subscription never blocks the rest.
func (s *Service) Dispatch(ctx context.Context, userID string, payload domain.Payload) (int, error) {
	sent := 0
	sent += s.sendWebPush(userID, payload)
	sent += s.sendFCM(ctx, userID, payload)
	return sent, nil
}

func (s *Service) sendWebPush(userID string, payload domain.Payload) int {
	if s.webPush == nil {
		return 0
	}

	subs, err := s.subRepo.ListByUserID(userID)
	if err != nil {
		log.Printf("[Notify] Error listing push subscriptions for user %s: %v", userID, err)
		return 0
	}

	sent := 0
	for _, sub := range subs {
		gone, err := s.webPush.Send(webpush.Subscription{
			Endpoint: sub.Endpoint,
			P256dh:   sub.P256dh,
			Auth:     sub.Auth,
		}, payload)
		if gone {
			// The push service says the subscription no longer exists.
			if err := s.subRepo.DeleteByEndpoint(sub.Endpoint); err != nil {
				log.Printf("[Notify] Error removing stale subscription for user %s: %v", userID, err)
			} else {
				log.Printf("[Notify] Removed stale push subscription for user %s", userID)
			}
			continue
		}
		if err != nil {
			log.Printf("[Notify] Web push error for user %s: %v", userID, err)
			continue
		}
		sent++
	}
	return sent
}

func (s *Service) sendFCM(ctx context.Context, userID string, payload domain.Payload) int {
	if s.fcmClient == nil {
		return 0
	}

	tokens, err := s.tokenRepo.ListByUserID(userID)
	if err != nil {
		log.Printf("[Notify] Error listing device tokens for user %s: %v", userID, err)
		return 0
	}
	if len(tokens) == 0 {
		return 0
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	failedTokens, err := s.fcmClient.SendToDevices(ctx, tokenStrings, fcm.NotificationData{
		Title: payload.Title,
		Body:  payload.Body,
		Data: map[string]string{
			"url":          payload.URL,
			"click_action": "FLUTTER_NOTIFICATION_CLICK",
		},
	})
	if err != nil {
		log.Printf("[Notify] FCM error for user %s: %v", userID, err)
		return 0
	}

	for _, token := range failedTokens {
		if err := s.tokenRepo.DeleteByToken(token); err != nil {
			log.Printf("[Notify] Error removing invalid FCM token for user %s: %v", userID, err)
		} else {
			log.Printf("[Notify] Removed invalid FCM token for user %s", userID)
		}
	}

	return len(tokenStrings) - len(failedTokens)
}
