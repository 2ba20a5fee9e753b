package repository_test

import (
	"testing"
	"time"

	"github.com/Shattajit/Mini-CRM/db/dbtest"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CreateRequiresClient(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))

	p := &models.Project{Title: "Orphan", Status: models.ProjectStatusPending, ClientID: "missing"}
	err := f.projects.Create(f.ctx, p)
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestProjectRepository_ListEmbedsClient(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	c := f.client("acme")
	f.project(c.ID, "Website")

	projects, err := f.projects.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.NotNil(t, projects[0].Client)
	assert.Equal(t, "acme", projects[0].Client.Name)
	assert.Equal(t, "555-0100", projects[0].Client.Phone)
}

func TestProjectRepository_PartialUpdate(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	c := f.client("acme")
	p := f.project(c.ID, "Website")

	updated, err := f.projects.Update(f.ctx, p.ID, map[string]any{"status": models.ProjectStatusCompleted})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusCompleted, updated.Status)
	assert.Equal(t, "Website", updated.Title)
	assert.Equal(t, 1500.0, updated.Budget)
	assert.Equal(t, c.ID, updated.ClientID)
	assert.True(t, time.Time(updated.Deadline).Equal(time.Time(p.Deadline)))
}

func TestProjectRepository_UpdateToUnknownClient(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	c := f.client("acme")
	p := f.project(c.ID, "Website")

	_, err := f.projects.Update(f.ctx, p.ID, map[string]any{"client_id": "missing"})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestProjectRepository_DeleteReferenced(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	c := f.client("acme")
	p := f.project(c.ID, "Website")
	f.reminder("Invoice", time.Now().UTC(), func(r *models.Reminder) { r.ProjectID = &p.ID })

	assert.ErrorIs(t, f.projects.Delete(f.ctx, p.ID), repository.ErrStillReferenced)
	assert.ErrorIs(t, f.projects.Delete(f.ctx, "missing"), repository.ErrNotFound)
}
