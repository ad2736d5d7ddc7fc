package api

import (
	notifdelivery "chomper-backend/internal/notification/delivery"
	progressdelivery "chomper-backend/internal/progress/delivery"
	taskdelivery "chomper-backend/internal/task/delivery"
	"chomper-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// Handler owns the HTTP surface.
type Handler struct {
	config          *config.Config
	taskHandler     *taskdelivery.TaskHandler
	progressHandler *progressdelivery.ProgressHandler
	notifHandler    *notifdelivery.NotificationHandler
}

// NewHandler creates the top-level HTTP handler.
func NewHandler(
	cfg *config.Config,
	taskHandler *taskdelivery.TaskHandler,
	progressHandler *progressdelivery.ProgressHandler,
	notifHandler *notifdelivery.NotificationHandler,
) *Handler {
	return &Handler{
		config:          cfg,
		taskHandler:     taskHandler,
		progressHandler: progressHandler,
		notifHandler:    notifHandler,
	}
}

// Start runs the HTTP server on the given address.
func (h *Handler) Start(addr string) error {
	r := gin.Default()

	r.Use(corsMiddleware(h.config.CORSOrigins))

	SetupRoutes(r, h.config, h.taskHandler, h.progressHandler, h.notifHandler)

	return r.Run(addr)
}

// corsMiddleware sets CORS headers for allowlisted origins only. Credentials
// are enabled, so the origin is never reflected blindly and a wildcard is
// never sent.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
				c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
				c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
				break
			}
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
