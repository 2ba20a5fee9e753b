package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) createClient(name string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/clients", map[string]any{
		"name":  name,
		"email": name + "@example.com",
		"phone": "555-0100",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(s.t, w)["id"].(string)
}

func (s *testServer) createProject(clientID, title string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/projects", map[string]any{
		"title":    title,
		"budget":   1200.5,
		"deadline": "2024-12-31",
		"status":   "Pending",
		"clientId": clientID,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(s.t, w)["id"].(string)
}

func TestClients(t *testing.T) {
	s := newAuthedServer(t)

	t.Run("list is newest first", func(t *testing.T) {
		first := s.createClient("first")
		second := s.createClient("second")

		w := s.do(http.MethodGet, "/api/auth/clients", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{second, first}, ids(decodeList(t, w)))
	})

	t.Run("create returns the stored record", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/auth/clients", map[string]any{
			"name": "Acme", "email": "hello@acme.test", "phone": "555-0101", "company": "Acme Inc",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeObject(t, w)
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "Acme Inc", body["company"])
		assert.Nil(t, body["notes"])
		assert.NotEmpty(t, body["createdAt"])
	})

	t.Run("missing phone", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/auth/clients", map[string]any{"name": "NoPhone", "email": "np@example.com"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "phone is required", decodeObject(t, w)["error"])
	})

	t.Run("partial update", func(t *testing.T) {
		id := s.createClient("partial")

		w := s.do(http.MethodPut, "/api/auth/clients/"+id, map[string]any{"notes": "VIP"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decodeObject(t, w)
		assert.Equal(t, "VIP", body["notes"])
		assert.Equal(t, "partial", body["name"])
		assert.Equal(t, "partial@example.com", body["email"])
	})

	t.Run("update rejects an empty name", func(t *testing.T) {
		id := s.createClient("keepname")

		w := s.do(http.MethodPut, "/api/auth/clients/"+id, map[string]any{"name": "  "})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "name cannot be empty", decodeObject(t, w)["error"])
	})

	t.Run("update of unknown client", func(t *testing.T) {
		w := s.do(http.MethodPut, "/api/auth/clients/missing", map[string]any{"name": "x"})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Client not found", decodeObject(t, w)["error"])
	})

	t.Run("delete", func(t *testing.T) {
		id := s.createClient("doomed")

		w := s.do(http.MethodDelete, "/api/auth/clients/"+id, nil)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = s.do(http.MethodDelete, "/api/auth/clients/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete of a referenced client fails", func(t *testing.T) {
		id := s.createClient("referenced")
		w := s.do(http.MethodPost, "/api/interactions", map[string]any{"interactionType": "Call", "clientId": id})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = s.do(http.MethodDelete, "/api/auth/clients/"+id, nil)
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Client is still referenced by other records", decodeObject(t, w)["error"])

		w = s.do(http.MethodGet, "/api/interactions?clientId="+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeList(t, w), 1)
	})
}

func TestProjects(t *testing.T) {
	s := newAuthedServer(t)
	clientID := s.createClient("acme")

	t.Run("budget must be numeric", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/projects", map[string]any{
			"title": "Bad", "budget": "abc", "deadline": "2024-12-31", "status": "Pending", "clientId": clientID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Budget must be a valid number.", decodeObject(t, w)["error"])
	})

	t.Run("budget must not be negative", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/projects", map[string]any{
			"title": "Bad", "budget": -1, "deadline": "2024-12-31", "status": "Pending", "clientId": clientID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Budget must be a valid number.", decodeObject(t, w)["error"])
	})

	t.Run("deadline must be a date", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/projects", map[string]any{
			"title": "Bad", "budget": 10, "deadline": "not-a-date", "status": "Pending", "clientId": clientID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Deadline must be a valid date.", decodeObject(t, w)["error"])
	})

	t.Run("status must be known", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/projects", map[string]any{
			"title": "Bad", "budget": 10, "deadline": "2024-12-31", "status": "Done", "clientId": clientID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeObject(t, w)["error"], "status must be one of")
	})

	t.Run("missing field", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/projects", map[string]any{
			"title": "Bad", "deadline": "2024-12-31", "status": "Pending", "clientId": clientID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "budget is required", decodeObject(t, w)["error"])
	})

	t.Run("unknown client", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/projects", map[string]any{
			"title": "Bad", "budget": 10, "deadline": "2024-12-31", "status": "Pending", "clientId": "missing",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Foreign key constraint failed", decodeObject(t, w)["error"])
	})

	t.Run("numeric string budget", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/projects", map[string]any{
			"title": "Stringy", "budget": "2500.75", "deadline": "2025-01-15T00:00:00Z", "status": "On Hold", "clientId": clientID,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeObject(t, w)
		assert.Equal(t, 2500.75, body["budget"])
		assert.Equal(t, "2025-01-15T00:00:00Z", body["deadline"])
		assert.Equal(t, "On Hold", body["status"])
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		id := s.createProject(clientID, "Website")

		w := s.do(http.MethodPut, "/api/projects/"+id, map[string]any{"status": "Completed"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decodeObject(t, w)
		assert.Equal(t, "Completed", body["status"])
		assert.Equal(t, "Website", body["title"])
		assert.Equal(t, 1200.5, body["budget"])
		assert.Equal(t, "2024-12-31T00:00:00Z", body["deadline"])
		assert.Equal(t, clientID, body["clientId"])
	})

	t.Run("update validates supplied fields", func(t *testing.T) {
		id := s.createProject(clientID, "Validate")

		w := s.do(http.MethodPut, "/api/projects/"+id, map[string]any{"budget": "abc"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Budget must be a valid number.", decodeObject(t, w)["error"])

		w = s.do(http.MethodPut, "/api/projects/"+id, map[string]any{"deadline": "soon"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Deadline must be a valid date.", decodeObject(t, w)["error"])
	})

	t.Run("update of unknown project", func(t *testing.T) {
		w := s.do(http.MethodPut, "/api/projects/missing", map[string]any{"title": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list embeds the client", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/projects", nil)
		require.Equal(t, http.StatusOK, w.Code)

		projects := decodeList(t, w)
		require.NotEmpty(t, projects)
		for _, p := range projects {
			client, ok := p["client"].(map[string]any)
			require.True(t, ok, "project %v has no client", p["id"])
			assert.Equal(t, "acme", client["name"])
		}
	})

	t.Run("delete", func(t *testing.T) {
		id := s.createProject(clientID, "Short lived")

		w := s.do(http.MethodDelete, "/api/projects/"+id, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = s.do(http.MethodDelete, "/api/projects/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
