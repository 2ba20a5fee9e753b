package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Shattajit/Mini-CRM/internal/filters"
	"github.com/Shattajit/Mini-CRM/internal/metrics"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/Shattajit/Mini-CRM/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const invalidInteractionDate = "Date must be a valid date."

type CreateInteractionRequest struct {
	Date            *string `json:"date"`
	InteractionType string  `json:"interactionType" binding:"required"`
	Notes           *string `json:"notes"`
	ClientID        string  `json:"clientId" binding:"required"`
	ProjectID       *string `json:"projectId"`
}

type UpdateInteractionRequest struct {
	Date            Optional[string] `json:"date"`
	InteractionType Optional[string] `json:"interactionType"`
	Notes           Optional[string] `json:"notes"`
}

type InteractionHandler struct {
	interactions repository.InteractionRepository
	clock        filters.Clock
	location     *time.Location
	logger       *zap.Logger
}

func NewInteractionHandler(interactions repository.InteractionRepository, clock filters.Clock, location *time.Location, logger *zap.Logger) *InteractionHandler {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &InteractionHandler{interactions: interactions, clock: clock, location: location, logger: logger}
}

func (h *InteractionHandler) CreateInteraction(ctx *gin.Context) {
	var body CreateInteractionRequest

	if !bindJSON(ctx, &body) {
		return
	}

	interactionType := models.InteractionType(strings.TrimSpace(body.InteractionType))

	if !interactionType.Valid() {
		badRequest(ctx, interactionTypeMessage())
		return
	}

	date := h.clock().UTC()

	if raw := nullableString(body.Date); raw != nil {
		parsed, err := parseTime(*raw, h.location)
		if err != nil {
			badRequest(ctx, invalidInteractionDate)
			return
		}
		date = parsed
	}

	interaction := models.InteractionLog{
		Date:            date,
		InteractionType: interactionType,
		Notes:           nullableString(body.Notes),
		ClientID:        strings.TrimSpace(body.ClientID),
		ProjectID:       nullableString(body.ProjectID),
	}

	if err := h.interactions.Create(ctx.Request.Context(), &interaction); err != nil {
		respondError(ctx, h.logger, err, "interaction", "create")
		return
	}

	metrics.RecordMutation("interaction", "create")

	created, err := h.interactions.GetByID(ctx.Request.Context(), interaction.ID)

	if err != nil {
		respondError(ctx, h.logger, err, "interaction", "fetch")
		return
	}

	ctx.JSON(http.StatusCreated, types.NewInteractionResponse(created))
}

func (h *InteractionHandler) ListInteractions(ctx *gin.Context) {
	filter := filters.InteractionFilter{
		ClientID:  ctx.Query("clientId"),
		ProjectID: ctx.Query("projectId"),
	}

	interactions, err := h.interactions.List(ctx.Request.Context(), filter)

	if err != nil {
		respondError(ctx, h.logger, err, "interactions", "fetch")
		return
	}

	ctx.JSON(http.StatusOK, types.MapList(interactions, types.NewInteractionResponse))
}

func (h *InteractionHandler) UpdateInteraction(ctx *gin.Context) {
	var body UpdateInteractionRequest

	if !bindJSON(ctx, &body) {
		return
	}

	updates := make(map[string]any)

	if body.Date.Set {
		if body.Date.Value == nil {
			badRequest(ctx, invalidInteractionDate)
			return
		}

		date, err := parseTime(*body.Date.Value, h.location)
		if err != nil {
			badRequest(ctx, invalidInteractionDate)
			return
		}
		updates["date"] = date
	}

	if body.InteractionType.Set {
		if body.InteractionType.Value == nil || !models.InteractionType(*body.InteractionType.Value).Valid() {
			badRequest(ctx, interactionTypeMessage())
			return
		}
		updates["interaction_type"] = models.InteractionType(*body.InteractionType.Value)
	}

	if body.Notes.Set {
		updates["notes"] = nullableString(body.Notes.Value)
	}

	interaction, err := h.interactions.Update(ctx.Request.Context(), ctx.Param("id"), updates)

	if err != nil {
		respondError(ctx, h.logger, err, "interaction", "update")
		return
	}

	metrics.RecordMutation("interaction", "update")
	ctx.JSON(http.StatusOK, types.NewInteractionResponse(interaction))
}

func (h *InteractionHandler) DeleteInteraction(ctx *gin.Context) {
	if err := h.interactions.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, h.logger, err, "interaction", "delete")
		return
	}

	metrics.RecordMutation("interaction", "delete")
	ctx.Status(http.StatusNoContent)
}

func interactionTypeMessage() string {
	names := make([]string, 0, len(models.InteractionTypes))
	for _, t := range models.InteractionTypes {
		names = append(names, string(t))
	}
	return fmt.Sprintf("interactionType must be one of: %s", strings.Join(names, ", "))
}
