package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a repository error onto a status code. It is the only
// place gateway errors become HTTP responses, so every entity behaves the same.
func respondError(ctx *gin.Context, logger *zap.Logger, err error, entity, action string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", capitalize(entity))})
	case errors.Is(err, repository.ErrDuplicate):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Unique constraint violation"})
	case errors.Is(err, repository.ErrInvalidReference):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Foreign key constraint failed"})
	case errors.Is(err, repository.ErrStillReferenced):
		ctx.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("%s is still referenced by other records", capitalize(entity))})
	default:
		logger.Error("request failed",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   fmt.Sprintf("Failed to %s %s", action, entity),
			"details": err.Error(),
		})
	}
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
