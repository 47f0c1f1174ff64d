package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/pkg/models"
)

func TestProjects_CreateAndList(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodPost, "/api/v1/projects", models.CreateProjectRequest{
		Code: "API",
		Name: "API project",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[*ent.Project](t, w)
	assert.Equal(t, "API", created.Code)
	assert.NotZero(t, created.ID)

	w = env.request(t, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[models.ProjectListResponse](t, w)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "API", list.Projects[0].Code)
}

func TestProjects_CreateValidation(t *testing.T) {
	env := setupServer(t)

	t.Run("missing name", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/projects", map[string]string{"code": "API"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[errorResponse](t, w)
		assert.Equal(t, "invalid request", resp.Error)
	})

	t.Run("lowercase code", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/v1/projects", models.CreateProjectRequest{
			Code: "api",
			Name: "lowercase",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[errorResponse](t, w)
		assert.Equal(t, "validation failed", resp.Error)
	})
}

func TestProjects_GetUnknown(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodGet, "/api/v1/projects/999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeBody[errorResponse](t, w)
	assert.Equal(t, "resource not found", resp.Error)
}

func TestProjects_Update(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "UPD")

	name := "renamed"
	w := env.request(t, http.MethodPatch, "/api/v1/projects/"+itoa(p.ID), models.UpdateProjectRequest{
		Name: &name,
	})

	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[*ent.Project](t, w)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "UPD", updated.Code)
}

func TestProjects_ListTickets(t *testing.T) {
	env := setupServer(t)
	p := env.createProject(t, "LST")
	other := env.createProject(t, "OTH")
	env.createTicket(t, p.ID, "first")
	env.createTicket(t, p.ID, "second")
	env.createTicket(t, other.ID, "elsewhere")

	w := env.request(t, http.MethodGet, "/api/v1/projects/"+itoa(p.ID)+"/tickets", nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[models.TicketListResponse](t, w)
	require.Equal(t, 2, list.Total)
	for _, tk := range list.Tickets {
		assert.Equal(t, p.ID, tk.ProjectID)
	}
}

func TestProjects_ListTicketsUnknownProject(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodGet, "/api/v1/projects/424242/tickets", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}
