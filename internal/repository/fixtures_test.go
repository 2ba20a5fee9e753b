package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Shattajit/Mini-CRM/internal/models"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fixtures struct {
	t   *testing.T
	ctx context.Context

	clients      *repository.GormClientRepository
	projects     *repository.GormProjectRepository
	interactions *repository.GormInteractionRepository
	reminders    *repository.GormReminderRepository
}

func newFixtures(t *testing.T, db *gorm.DB) *fixtures {
	return &fixtures{
		t:            t,
		ctx:          context.Background(),
		clients:      repository.NewGormClientRepository(db),
		projects:     repository.NewGormProjectRepository(db),
		interactions: repository.NewGormInteractionRepository(db),
		reminders:    repository.NewGormReminderRepository(db),
	}
}

func (f *fixtures) client(name string) *models.Client {
	f.t.Helper()
	c := &models.Client{Name: name, Email: name + "@example.com", Phone: "555-0100"}
	require.NoError(f.t, f.clients.Create(f.ctx, c))
	return c
}

func (f *fixtures) project(clientID, title string) *models.Project {
	f.t.Helper()
	p := &models.Project{
		Title:    title,
		Budget:   1500,
		Deadline: datatypes.Date(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
		Status:   models.ProjectStatusPending,
		ClientID: clientID,
	}
	require.NoError(f.t, f.projects.Create(f.ctx, p))
	return p
}

func (f *fixtures) interaction(clientID string, projectID *string, date time.Time) *models.InteractionLog {
	f.t.Helper()
	i := &models.InteractionLog{
		Date:            date,
		InteractionType: models.InteractionCall,
		ClientID:        clientID,
		ProjectID:       projectID,
	}
	require.NoError(f.t, f.interactions.Create(f.ctx, i))
	return i
}

func (f *fixtures) reminder(title string, due time.Time, mutate func(*models.Reminder)) *models.Reminder {
	f.t.Helper()
	r := &models.Reminder{Title: title, DueDate: due}
	if mutate != nil {
		mutate(r)
	}
	require.NoError(f.t, f.reminders.Create(f.ctx, r))
	return r
}

func ptr[T any](v T) *T {
	return &v
}

func reminderTitles(rs []models.Reminder) []string {
	titles := make([]string, 0, len(rs))
	for _, r := range rs {
		titles = append(titles, r.Title)
	}
	return titles
}
