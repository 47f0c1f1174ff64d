package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/pkg/models"
)

// hookDecide posts to the hook endpoint from a loopback address, the way the
// agent shim does.
func (e *apiEnv) hookDecide(t *testing.T, req models.HookDecideRequest) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/internal/hooks/decide", bytes.NewReader(data))
	r.Header.Set("Content-Type", "application/json")
	r.RemoteAddr = "127.0.0.1:54321"
	w := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(w, r)
	return w
}

func (e *apiEnv) createProjectWithWorkdir(t *testing.T, code, workdir string) *ent.Project {
	t.Helper()
	p, err := e.projects.Create(context.Background(), models.CreateProjectRequest{
		Code:    code,
		Name:    code + " project",
		WebPath: workdir,
	})
	require.NoError(t, err)
	return p
}

func TestHooks_ApprovedPatternAllows(t *testing.T) {
	env := setupServer(t)
	p := env.createProjectWithWorkdir(t, "HKA", "/srv/repos/hka")
	tk := env.createTicket(t, p.ID, "Push the release branch")
	_, err := env.permissions.Approve(context.Background(), tk.ID, "shell", "git push origin main", "")
	require.NoError(t, err)

	w := env.hookDecide(t, models.HookDecideRequest{
		TicketID: tk.ID,
		Tool:     "shell",
		Input:    "git push origin release-1.4",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[models.HookDecideResponse](t, w)
	assert.Equal(t, "allow", resp.Decision)
	assert.Contains(t, resp.Reason, "git *")
}

func TestHooks_PrivilegedCommandDenied(t *testing.T) {
	env := setupServer(t)
	p := env.createProjectWithWorkdir(t, "HKD", "/srv/repos/hkd")
	tk := env.createTicket(t, p.ID, "Tweak the service")

	w := env.hookDecide(t, models.HookDecideRequest{
		TicketID: tk.ID,
		Tool:     "shell",
		Input:    "sudo systemctl restart postgres",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[models.HookDecideResponse](t, w)
	assert.Equal(t, "deny", resp.Decision)
	assert.Contains(t, resp.Reason, "sudo")
}

func TestHooks_WriteOutsideProjectDenied(t *testing.T) {
	env := setupServer(t)
	p := env.createProjectWithWorkdir(t, "HKW", "/srv/repos/hkw")
	tk := env.createTicket(t, p.ID, "Clean the build dir")

	w := env.hookDecide(t, models.HookDecideRequest{
		TicketID: tk.ID,
		Tool:     "shell",
		Input:    "rm -rf /srv/repos/other/build",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[models.HookDecideResponse](t, w)
	assert.Equal(t, "deny", resp.Decision)
	assert.Contains(t, resp.Reason, "outside project")
}

func TestHooks_UnrecognizedFallsToAsk(t *testing.T) {
	env := setupServer(t)
	p := env.createProjectWithWorkdir(t, "HKQ", "/srv/repos/hkq")
	tk := env.createTicket(t, p.ID, "Run the suite")

	w := env.hookDecide(t, models.HookDecideRequest{
		TicketID: tk.ID,
		Tool:     "shell",
		Input:    "make test",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[models.HookDecideResponse](t, w)
	assert.Equal(t, "ask", resp.Decision)
	assert.Empty(t, resp.Reason)
}

func TestHooks_UnknownTicket(t *testing.T) {
	env := setupServer(t)

	w := env.hookDecide(t, models.HookDecideRequest{
		TicketID: 424242,
		Tool:     "shell",
		Input:    "ls",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
}
