package delivery

import (
	"net/http"
	"time"

	notifdomain "chomper-backend/internal/notification/domain"
	notifrepo "chomper-backend/internal/notification/repository"
	userrepo "chomper-backend/internal/user/repository"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles push registration and reminder settings
type NotificationHandler struct {
	subRepo   notifrepo.PushSubscriptionRepository
	tokenRepo notifrepo.DeviceTokenRepository
	userRepo  userrepo.UserRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(
	subRepo notifrepo.PushSubscriptionRepository,
	tokenRepo notifrepo.DeviceTokenRepository,
	userRepo userrepo.UserRepository,
) *NotificationHandler {
	return &NotificationHandler{subRepo: subRepo, tokenRepo: tokenRepo, userRepo: userRepo}
}

// SubscribeRequest is the browser PushSubscription payload
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// Subscribe registers a Web Push subscription
// POST /api/notifications/subscribe
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	userID := c.GetString("userID")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.subRepo.Save(&notifdomain.PushSubscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

// RegisterDeviceRequest carries an FCM registration token
type RegisterDeviceRequest struct {
	Token      string `json:"token" binding:"required"`
	DeviceInfo string `json:"device_info"`
}

// RegisterDevice registers an FCM device token
// POST /api/notifications/devices
func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	userID := c.GetString("userID")

	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.tokenRepo.Save(&notifdomain.DeviceToken{
		UserID:     userID,
		Token:      req.Token,
		DeviceInfo: req.DeviceInfo,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

// UnregisterDevice removes an FCM device token
// DELETE /api/notifications/devices/:token
func (h *NotificationHandler) UnregisterDevice(c *gin.Context) {
	if err := h.tokenRepo.DeleteByToken(c.Param("token")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// SettingsRequest carries the reminder preferences stored on the user row
type SettingsRequest struct {
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	NotificationTime     *string `json:"notification_time"` // HH:MM
	Timezone             *string `json:"timezone"`          // IANA name
}

// UpdateSettings edits the user's reminder preferences
// PATCH /api/notifications/settings
func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	userID := c.GetString("userID")

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if req.NotificationsEnabled != nil {
		user.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.NotificationTime != nil {
		if _, err := time.Parse("15:04", *req.NotificationTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "notification_time must be HH:MM"})
			return
		}
		user.NotificationTime = *req.NotificationTime
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown timezone"})
			return
		}
		user.Timezone = *req.Timezone
	}

	if err := h.userRepo.Update(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
