package delivery

import (
	"net/http"
	"time"

	"chomper-backend/internal/progress/usecase"

	"github.com/gin-gonic/gin"
)

// ProgressHandler handles stats and achievement HTTP requests
type ProgressHandler struct {
	progressUsecase usecase.ProgressUsecase
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(progressUsecase usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{progressUsecase: progressUsecase}
}

// GetStats returns the user's progress stats
// GET /api/stats
func (h *ProgressHandler) GetStats(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.progressUsecase.GetStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetAchievements returns the user's achievement set
// GET /api/achievements
func (h *ProgressHandler) GetAchievements(c *gin.Context) {
	userID := c.GetString("userID")

	achievements, err := h.progressUsecase.ListAchievements(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, achievements)
}

// CheckAchievements re-evaluates locked achievements against current stats
// POST /api/achievements/check
func (h *ProgressHandler) CheckAchievements(c *gin.Context) {
	userID := c.GetString("userID")

	newlyUnlocked, err := h.progressUsecase.CheckAchievements(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"newly_unlocked": newlyUnlocked})
}
