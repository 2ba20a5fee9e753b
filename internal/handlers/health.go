package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const readinessTimeout = time.Second

type HealthHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHealthHandler(db *gorm.DB, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

func (h *HealthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Mini-CRM is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready reports whether the database answers a ping.
func (h *HealthHandler) Ready(ctx *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readinessTimeout)
		defer cancel()
		err = sqlDB.PingContext(pingCtx)
	}

	if err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
