package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Shattajit/Mini-CRM/internal/metrics"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/Shattajit/Mini-CRM/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const invalidDeadline = "Deadline must be a valid date."

type CreateProjectRequest struct {
	Title    string          `json:"title" binding:"required"`
	Budget   json.RawMessage `json:"budget" binding:"required"`
	Deadline string          `json:"deadline" binding:"required"`
	Status   string          `json:"status" binding:"required"`
	ClientID string          `json:"clientId" binding:"required"`
}

// UpdateProjectRequest changes only the fields present in the body.
type UpdateProjectRequest struct {
	Title    Optional[string]          `json:"title"`
	Budget   Optional[json.RawMessage] `json:"budget"`
	Deadline Optional[string]          `json:"deadline"`
	Status   Optional[string]          `json:"status"`
	ClientID Optional[string]          `json:"clientId"`
}

type ProjectHandler struct {
	projects repository.ProjectRepository
	location *time.Location
	logger   *zap.Logger
}

func NewProjectHandler(projects repository.ProjectRepository, location *time.Location, logger *zap.Logger) *ProjectHandler {
	if location == nil {
		location = time.UTC
	}
	return &ProjectHandler{projects: projects, location: location, logger: logger}
}

func (h *ProjectHandler) CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if !bindJSON(ctx, &body) {
		return
	}

	budget, err := parseBudget(body.Budget)

	if err != nil {
		badRequest(ctx, err.Error())
		return
	}

	deadline, err := parseDate(body.Deadline, h.location)

	if err != nil {
		badRequest(ctx, invalidDeadline)
		return
	}

	status := models.ProjectStatus(strings.TrimSpace(body.Status))

	if !status.Valid() {
		badRequest(ctx, statusMessage())
		return
	}

	project := models.Project{
		Title:    strings.TrimSpace(body.Title),
		Budget:   budget,
		Deadline: datatypes.Date(deadline),
		Status:   status,
		ClientID: strings.TrimSpace(body.ClientID),
	}

	if err := h.projects.Create(ctx.Request.Context(), &project); err != nil {
		respondError(ctx, h.logger, err, "project", "create")
		return
	}

	metrics.RecordMutation("project", "create")
	ctx.JSON(http.StatusCreated, types.NewProjectResponse(&project))
}

func (h *ProjectHandler) ListProjects(ctx *gin.Context) {
	projects, err := h.projects.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, h.logger, err, "projects", "fetch")
		return
	}

	ctx.JSON(http.StatusOK, types.MapList(projects, types.NewProjectResponse))
}

func (h *ProjectHandler) UpdateProject(ctx *gin.Context) {
	var body UpdateProjectRequest

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

	if body.Budget.Set {
		var raw json.RawMessage
		if body.Budget.Value != nil {
			raw = *body.Budget.Value
		}

		budget, err := parseBudget(raw)
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		updates["budget"] = budget
	}

	if body.Deadline.Set {
		if body.Deadline.Value == nil {
			badRequest(ctx, invalidDeadline)
			return
		}

		deadline, err := parseDate(*body.Deadline.Value, h.location)
		if err != nil {
			badRequest(ctx, invalidDeadline)
			return
		}
		updates["deadline"] = datatypes.Date(deadline)
	}

	if body.Status.Set {
		if body.Status.Value == nil || !models.ProjectStatus(*body.Status.Value).Valid() {
			badRequest(ctx, statusMessage())
			return
		}
		updates["status"] = models.ProjectStatus(*body.Status.Value)
	}

	if body.ClientID.Set {
		if body.ClientID.Value == nil || strings.TrimSpace(*body.ClientID.Value) == "" {
			badRequest(ctx, "clientId cannot be empty")
			return
		}
		updates["client_id"] = strings.TrimSpace(*body.ClientID.Value)
	}

	project, err := h.projects.Update(ctx.Request.Context(), ctx.Param("id"), updates)

	if err != nil {
		respondError(ctx, h.logger, err, "project", "update")
		return
	}

	metrics.RecordMutation("project", "update")
	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(ctx *gin.Context) {
	if err := h.projects.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, h.logger, err, "project", "delete")
		return
	}

	metrics.RecordMutation("project", "delete")
	ctx.Status(http.StatusNoContent)
}

func statusMessage() string {
	names := make([]string, 0, len(models.ProjectStatuses))
	for _, s := range models.ProjectStatuses {
		names = append(names, string(s))
	}
	return fmt.Sprintf("status must be one of: %s", strings.Join(names, ", "))
}
