package api

import (
	"net/http"

	authdelivery "chomper-backend/internal/auth/delivery"
	notifdelivery "chomper-backend/internal/notification/delivery"
	progressdelivery "chomper-backend/internal/progress/delivery"
	taskdelivery "chomper-backend/internal/task/delivery"
	"chomper-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the delivery handlers onto the gin engine.
func SetupRoutes(
	r *gin.Engine,
	cfg *config.Config,
	taskHandler *taskdelivery.TaskHandler,
	progressHandler *progressdelivery.ProgressHandler,
	notifHandler *notifdelivery.NotificationHandler,
) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := authdelivery.AuthMiddleware(cfg.JWTSecret)

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(auth)
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.DELETE("/completed", taskHandler.ClearCompleted)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
			tasks.POST("/:id/uncomplete", taskHandler.UncompleteTask)
		}

		// Recurring template routes (protected)
		templates := api.Group("/templates")
		templates.Use(auth)
		{
			templates.GET("", taskHandler.GetTemplates)
			templates.POST("", taskHandler.CreateTemplate)
			templates.PATCH("/:id", taskHandler.UpdateTemplate)
			templates.DELETE("/:id", taskHandler.DeleteTemplate)
		}

		// Stats and achievement routes (protected)
		api.GET("/stats", auth, progressHandler.GetStats)
		api.GET("/achievements", auth, progressHandler.GetAchievements)
		api.POST("/achievements/check", auth, progressHandler.CheckAchievements)

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(auth)
		{
			notifications.POST("/subscribe", notifHandler.Subscribe)
			notifications.POST("/devices", notifHandler.RegisterDevice)
			notifications.DELETE("/devices/:token", notifHandler.UnregisterDevice)
			notifications.PATCH("/settings", notifHandler.UpdateSettings)
		}
	}
}
