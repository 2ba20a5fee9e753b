package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Shattajit/Mini-CRM/internal/auth"
	"github.com/Shattajit/Mini-CRM/internal/metrics"
	"github.com/Shattajit/Mini-CRM/internal/middleware"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/Shattajit/Mini-CRM/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type TokenGenerator interface {
	Generate(userID, email string) (string, error)
}

type AuthHandler struct {
	users  repository.UserRepository
	tokens TokenGenerator
	logger *zap.Logger
}

func NewAuthHandler(users repository.UserRepository, tokens TokenGenerator, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var body CredentialsRequest

	if !bindJSON(ctx, &body) {
		return
	}

	passwordHash, err := auth.HashPassword(body.Password)

	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		badRequest(ctx, "password must be at most 72 bytes")
		return
	}

	if err != nil {
		h.logger.Error("hash password", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Email:        normalizeEmail(body.Email),
		PasswordHash: passwordHash,
	}

	if err := h.users.Create(ctx.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			badRequest(ctx, "Email already in use")
			return
		}
		respondError(ctx, h.logger, err, "user", "create")
		return
	}

	metrics.RecordMutation("user", "create")
	h.respondToken(ctx, http.StatusCreated, &user)
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body CredentialsRequest

	if !bindJSON(ctx, &body) {
		return
	}

	user, err := h.users.GetByEmail(ctx.Request.Context(), normalizeEmail(body.Email))

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			badRequest(ctx, "Invalid credentials")
			return
		}
		respondError(ctx, h.logger, err, "user", "fetch")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, body.Password) {
		badRequest(ctx, "Invalid credentials")
		return
	}

	h.respondToken(ctx, http.StatusOK, user)
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{ID: user.ID, Email: user.Email},
	})
}

func (h *AuthHandler) respondToken(ctx *gin.Context, status int, user *models.User) {
	token, err := h.tokens.Generate(user.ID, user.Email)

	if err != nil {
		h.logger.Error("generate token", zap.String("user_id", user.ID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(status, types.TokenResponse{Token: token})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
