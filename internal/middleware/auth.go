package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Shattajit/Mini-CRM/internal/auth"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/Shattajit/Mini-CRM/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// AuthMiddleware requires a valid bearer token naming an existing user.
func AuthMiddleware(tokens TokenVerifier, users repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.GetByID(ctx.Request.Context(), claims.UserID)

		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				logger.Error("auth user lookup failed", zap.String("user_id", claims.UserID), zap.Error(err))
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Email: user.Email,
		})
		ctx.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(ctx *gin.Context) (AuthenticatedUser, bool) {
	value, exists := ctx.Get(types.ContextUserKey)
	if !exists {
		return AuthenticatedUser{}, false
	}

	user, ok := value.(AuthenticatedUser)
	return user, ok
}
