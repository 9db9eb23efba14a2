package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db     Pinger
	logger logger.Interface
}

func NewHandler(db Pinger, logger logger.Interface) *Handler {
	return &Handler{db: db, logger: logger}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":   "healthy",
		"service":  "phonefix",
		"database": "up",
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Errorw("database ping failed", "error", err)
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = "down"
		}
	}

	c.JSON(status, body)
}
