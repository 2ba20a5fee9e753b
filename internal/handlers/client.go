package handlers

import (
	"net/http"
	"strings"

	"github.com/Shattajit/Mini-CRM/internal/metrics"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/Shattajit/Mini-CRM/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateClientRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   string  `json:"phone" binding:"required"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

type UpdateClientRequest struct {
	Name    Optional[string] `json:"name"`
	Email   Optional[string] `json:"email"`
	Phone   Optional[string] `json:"phone"`
	Company Optional[string] `json:"company"`
	Notes   Optional[string] `json:"notes"`
}

type ClientHandler struct {
	clients repository.ClientRepository
	logger  *zap.Logger
}

func NewClientHandler(clients repository.ClientRepository, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{clients: clients, logger: logger}
}

func (h *ClientHandler) CreateClient(ctx *gin.Context) {
	var body CreateClientRequest

	if !bindJSON(ctx, &body) {
		return
	}

	client := models.Client{
		Name:    strings.TrimSpace(body.Name),
		Email:   strings.TrimSpace(body.Email),
		Phone:   strings.TrimSpace(body.Phone),
		Company: nullableString(body.Company),
		Notes:   nullableString(body.Notes),
	}

	if err := h.clients.Create(ctx.Request.Context(), &client); err != nil {
		respondError(ctx, h.logger, err, "client", "create")
		return
	}

	metrics.RecordMutation("client", "create")
	ctx.JSON(http.StatusCreated, types.NewClientResponse(&client))
}

func (h *ClientHandler) ListClients(ctx *gin.Context) {
	clients, err := h.clients.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, h.logger, err, "clients", "fetch")
		return
	}

	ctx.JSON(http.StatusOK, types.MapList(clients, types.NewClientResponse))
}

func (h *ClientHandler) UpdateClient(ctx *gin.Context) {
	var body UpdateClientRequest

	if !bindJSON(ctx, &body) {
		return
	}

	updates := make(map[string]any)

	for column, field := range map[string]Optional[string]{
		"name":  body.Name,
		"email": body.Email,
		"phone": body.Phone,
	} {
		if !field.Set {
			continue
		}
		if field.Value == nil || strings.TrimSpace(*field.Value) == "" {
			badRequest(ctx, column+" cannot be empty")
			return
		}
		updates[column] = strings.TrimSpace(*field.Value)
	}

	if email, ok := updates["email"].(string); ok && !isEmail(email) {
		badRequest(ctx, "email must be a valid email address")
		return
	}

	if body.Company.Set {
		updates["company"] = nullableString(body.Company.Value)
	}

	if body.Notes.Set {
		updates["notes"] = nullableString(body.Notes.Value)
	}

	client, err := h.clients.Update(ctx.Request.Context(), ctx.Param("id"), updates)

	if err != nil {
		respondError(ctx, h.logger, err, "client", "update")
		return
	}

	metrics.RecordMutation("client", "update")
	ctx.JSON(http.StatusOK, types.NewClientResponse(client))
}

func (h *ClientHandler) DeleteClient(ctx *gin.Context) {
	if err := h.clients.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, h.logger, err, "client", "delete")
		return
	}

	metrics.RecordMutation("client", "delete")
	ctx.Status(http.StatusNoContent)
}
