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

func TestClientRepository_ListNewestFirst(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"alpha", "bravo", "charlie"} {
		c := &models.Client{Name: name, Email: name + "@example.com", Phone: "1"}
		c.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, f.clients.Create(f.ctx, c))
	}

	clients, err := f.clients.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "charlie", clients[0].Name)
	assert.Equal(t, "bravo", clients[1].Name)
	assert.Equal(t, "alpha", clients[2].Name)
}

func TestClientRepository_Update(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	c := f.client("acme")

	t.Run("changes only supplied columns", func(t *testing.T) {
		updated, err := f.clients.Update(f.ctx, c.ID, map[string]any{"phone": "555-9999", "company": "Acme Inc"})
		require.NoError(t, err)

		assert.Equal(t, "acme", updated.Name)
		assert.Equal(t, "acme@example.com", updated.Email)
		assert.Equal(t, "555-9999", updated.Phone)
		require.NotNil(t, updated.Company)
		assert.Equal(t, "Acme Inc", *updated.Company)
	})

	t.Run("nil clears a nullable column", func(t *testing.T) {
		updated, err := f.clients.Update(f.ctx, c.ID, map[string]any{"company": nil})
		require.NoError(t, err)
		assert.Nil(t, updated.Company)
	})

	t.Run("empty update returns the current row", func(t *testing.T) {
		updated, err := f.clients.Update(f.ctx, c.ID, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, c.ID, updated.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.clients.Update(f.ctx, "missing", map[string]any{"name": "x"})
		assert.ErrorIs(t, err, repository.ErrNotFound)

		_, err = f.clients.Update(f.ctx, "missing", map[string]any{})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestClientRepository_Delete(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))

	t.Run("removes the row", func(t *testing.T) {
		c := f.client("gone")
		require.NoError(t, f.clients.Delete(f.ctx, c.ID))

		_, err := f.clients.GetByID(f.ctx, c.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, f.clients.Delete(f.ctx, "missing"), repository.ErrNotFound)
	})

	t.Run("rejected while an interaction references it", func(t *testing.T) {
		c := f.client("referenced")
		f.interaction(c.ID, nil, time.Now().UTC())

		err := f.clients.Delete(f.ctx, c.ID)
		require.ErrorIs(t, err, repository.ErrStillReferenced)

		_, err = f.clients.GetByID(f.ctx, c.ID)
		assert.NoError(t, err, "client must survive the rejected delete")
	})

	t.Run("rejected while a project references it", func(t *testing.T) {
		c := f.client("owner")
		f.project(c.ID, "Website")

		assert.ErrorIs(t, f.clients.Delete(f.ctx, c.ID), repository.ErrStillReferenced)
	})
}
