package types

import (
	"time"

	"github.com/Shattajit/Mini-CRM/internal/models"
)

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   *string   `json:"company"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ClientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProjectSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ProjectResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Budget    float64              `json:"budget"`
	Deadline  time.Time            `json:"deadline"`
	Status    models.ProjectStatus `json:"status"`
	ClientID  string               `json:"clientId"`
	Client    *ClientResponse      `json:"client,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// InteractionResponse always carries the client and project keys; a missing
// relation is null.
type InteractionResponse struct {
	ID              string                 `json:"id"`
	Date            time.Time              `json:"date"`
	InteractionType models.InteractionType `json:"interactionType"`
	Notes           *string                `json:"notes"`
	ClientID        string                 `json:"clientId"`
	ProjectID       *string                `json:"projectId"`
	Client          *ClientSummary         `json:"client"`
	Project         *ProjectSummary        `json:"project"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type ReminderResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	DueDate     time.Time       `json:"dueDate"`
	IsCompleted bool            `json:"isCompleted"`
	ClientID    *string         `json:"clientId"`
	ProjectID   *string         `json:"projectId"`
	Client      *ClientSummary  `json:"client"`
	Project     *ProjectSummary `json:"project"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

func NewProjectResponse(p *models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:        p.ID,
		Title:     p.Title,
		Budget:    p.Budget,
		Deadline:  time.Time(p.Deadline).UTC(),
		Status:    p.Status,
		ClientID:  p.ClientID,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}

	if p.Client != nil {
		client := NewClientResponse(p.Client)
		resp.Client = &client
	}

	return resp
}

func NewInteractionResponse(i *models.InteractionLog) InteractionResponse {
	return InteractionResponse{
		ID:              i.ID,
		Date:            i.Date.UTC(),
		InteractionType: i.InteractionType,
		Notes:           i.Notes,
		ClientID:        i.ClientID,
		ProjectID:       i.ProjectID,
		Client:          clientSummary(i.Client),
		Project:         projectSummary(i.Project),
		CreatedAt:       i.CreatedAt.UTC(),
		UpdatedAt:       i.UpdatedAt.UTC(),
	}
}

func NewReminderResponse(r *models.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate.UTC(),
		IsCompleted: r.IsCompleted,
		ClientID:    r.ClientID,
		ProjectID:   r.ProjectID,
		Client:      clientSummary(r.Client),
		Project:     projectSummary(r.Project),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func clientSummary(c *models.Client) *ClientSummary {
	if c == nil {
		return nil
	}
	return &ClientSummary{ID: c.ID, Name: c.Name, Email: c.Email}
}

func projectSummary(p *models.Project) *ProjectSummary {
	if p == nil {
		return nil
	}
	return &ProjectSummary{ID: p.ID, Title: p.Title}
}

// MapList converts rows into response values. The result is never nil so it
// always encodes as a JSON array.
func MapList[M any, R any](rows []M, convert func(*M) R) []R {
	out := make([]R, 0, len(rows))
	for i := range rows {
		out = append(out, convert(&rows[i]))
	}
	return out
}
