package handlers

import (
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

const invalidDueDate = "Due date must be a valid date."

type CreateReminderRequest struct {
	Title       string  `json:"title" binding:"required"`
	DueDate     string  `json:"dueDate" binding:"required"`
	Description *string `json:"description"`
	ClientID    *string `json:"clientId"`
	ProjectID   *string `json:"projectId"`
}

type UpdateReminderRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	DueDate     Optional[string] `json:"dueDate"`
	IsCompleted Optional[bool]   `json:"isCompleted"`
	ClientID    Optional[string] `json:"clientId"`
	ProjectID   Optional[string] `json:"projectId"`
}

type ReminderHandler struct {
	reminders repository.ReminderRepository
	clock     filters.Clock
	location  *time.Location
	logger    *zap.Logger
}

func NewReminderHandler(reminders repository.ReminderRepository, clock filters.Clock, location *time.Location, logger *zap.Logger) *ReminderHandler {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &ReminderHandler{reminders: reminders, clock: clock, location: location, logger: logger}
}

func (h *ReminderHandler) CreateReminder(ctx *gin.Context) {
	var body CreateReminderRequest

	if !bindJSON(ctx, &body) {
		return
	}

	dueDate, err := parseTime(body.DueDate, h.location)

	if err != nil {
		badRequest(ctx, invalidDueDate)
		return
	}

	reminder := models.Reminder{
		Title:       strings.TrimSpace(body.Title),
		Description: nullableString(body.Description),
		DueDate:     dueDate,
		ClientID:    nullableString(body.ClientID),
		ProjectID:   nullableString(body.ProjectID),
	}

	if err := h.reminders.Create(ctx.Request.Context(), &reminder); err != nil {
		respondError(ctx, h.logger, err, "reminder", "create")
		return
	}

	metrics.RecordMutation("reminder", "create")

	created, err := h.reminders.GetByID(ctx.Request.Context(), reminder.ID)

	if err != nil {
		respondError(ctx, h.logger, err, "reminder", "fetch")
		return
	}

	ctx.JSON(http.StatusCreated, types.NewReminderResponse(created))
}

func (h *ReminderHandler) ListReminders(ctx *gin.Context) {
	completed, err := filters.ParseCompleted(ctx.Query("completed"))

	if err != nil {
		badRequest(ctx, "completed must be true or false")
		return
	}

	filter := filters.ReminderFilter{
		ClientID:  ctx.Query("clientId"),
		ProjectID: ctx.Query("projectId"),
		Completed: completed,
		Upcoming:  filters.ParseUpcoming(ctx.Query("upcoming")),
	}

	reminders, err := h.reminders.List(ctx.Request.Context(), filter, h.clock())

	if err != nil {
		respondError(ctx, h.logger, err, "reminders", "fetch")
		return
	}

	ctx.JSON(http.StatusOK, types.MapList(reminders, types.NewReminderResponse))
}

// DueThisWeek lists reminders due in the current Sunday to Saturday week.
func (h *ReminderHandler) DueThisWeek(ctx *gin.Context) {
	window := filters.CalendarWeek(h.clock(), h.location)

	reminders, err := h.reminders.DueWithin(ctx.Request.Context(), window)

	if err != nil {
		respondError(ctx, h.logger, err, "reminders", "fetch")
		return
	}

	ctx.JSON(http.StatusOK, types.MapList(reminders, types.NewReminderResponse))
}

func (h *ReminderHandler) GetReminder(ctx *gin.Context) {
	reminder, err := h.reminders.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		respondError(ctx, h.logger, err, "reminder", "fetch")
		return
	}

	ctx.JSON(http.StatusOK, types.NewReminderResponse(reminder))
}

func (h *ReminderHandler) UpdateReminder(ctx *gin.Context) {
	var body UpdateReminderRequest

	if !bindJSON(ctx, &body) {
		return
	}

	updates := make(map[string]any)

	if body.Title.Set {
		if body.Title.Value == nil || strings.TrimSpace(*body.Title.Value) == "" {
			badRequest(ctx, "title cannot be empty")
			return
		}
		updates["title"] = strings.TrimSpace(*body.Title.Value)
	}

	if body.DueDate.Set {
		if body.DueDate.Value == nil {
			badRequest(ctx, invalidDueDate)
			return
		}

		dueDate, err := parseTime(*body.DueDate.Value, h.location)
		if err != nil {
			badRequest(ctx, invalidDueDate)
			return
		}
		updates["due_date"] = dueDate
	}

	if body.IsCompleted.Set {
		if body.IsCompleted.Value == nil {
			badRequest(ctx, "isCompleted must be true or false")
			return
		}
		updates["is_completed"] = *body.IsCompleted.Value
	}

	if body.Description.Set {
		updates["description"] = nullableString(body.Description.Value)
	}
	if body.ClientID.Set {
		updates["client_id"] = nullableString(body.ClientID.Value)
	}
	if body.ProjectID.Set {
		updates["project_id"] = nullableString(body.ProjectID.Value)
	}

	reminder, err := h.reminders.Update(ctx.Request.Context(), ctx.Param("id"), updates)

	if err != nil {
		respondError(ctx, h.logger, err, "reminder", "update")
		return
	}

	metrics.RecordMutation("reminder", "update")
	ctx.JSON(http.StatusOK, types.NewReminderResponse(reminder))
}

func (h *ReminderHandler) DeleteReminder(ctx *gin.Context) {
	if err := h.reminders.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, h.logger, err, "reminder", "delete")
		return
	}

	metrics.RecordMutation("reminder", "delete")
	ctx.Status(http.StatusNoContent)
}
