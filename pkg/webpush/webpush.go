package webpush

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	wp "github.com/SherClockHolmes/webpush-go"
)

// Client sends Web Push notifications signed with VAPID keys.
type Client struct {
	publicKey  string
	privateKey string
	subscriber string // mailto: contact for the push service
}

// Subscription mirrors the browser PushSubscription the client registered.
type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// NewClient creates a Web Push client. Returns nil if the VAPID key pair is
// not configured, in which case callers should skip this transport.
func NewClient(publicKey, privateKey, subscriber string) *Client {
	if publicKey == "" || privateKey == "" {
		return nil
	}
	if subscriber == "" {
		subscriber = "mailto:chomper@example.com"
	}
	log.Println("[WebPush] Client initialized")
	return &Client{publicKey: publicKey, privateKey: privateKey, subscriber: subscriber}
}

// Send pushes the payload to one subscription. The gone result is true when
// the push service reports the subscription no longer exists (404/410), which
// means the caller should delete it.
func (c *Client) Send(sub Subscription, payload interface{}) (gone bool, err error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("marshal push payload: %w", err)
	}

	resp, err := wp.SendNotification(body, &wp.Subscription{
		Endpoint: sub.Endpoint,
		Keys: wp.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &wp.Options{
		Subscriber:      c.subscriber,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		TTL:             3600,
	})
	if err != nil {
		return false, fmt.Errorf("send web push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return true, nil
	}
	if resp.StatusCode >= 400 {
		return false, fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return false, nil
}
