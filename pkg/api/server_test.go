package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/daemonstatus"
	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/database"
	"github.com/fleetworks/conductor/pkg/masking"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/fleetworks/conductor/pkg/scheduler"
	"github.com/fleetworks/conductor/pkg/services"
	testdb "github.com/fleetworks/conductor/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

// fakeDispatcher stands in for the scheduler in handler tests.
type fakeDispatcher struct {
	mu       sync.Mutex
	health   scheduler.Health
	running  map[int]bool
	stopped  map[int]string
	injected map[int][]string
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{
		health:   scheduler.Health{Running: true, MaxWorkers: 3},
		running:  make(map[int]bool),
		stopped:  make(map[int]string),
		injected: make(map[int][]string),
	}
}

func (f *fakeDispatcher) Health(_ context.Context) scheduler.Health {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.health
}

func (f *fakeDispatcher) Running(ticketID int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running[ticketID]
}

func (f *fakeDispatcher) StopTicket(ticketID int, reason string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running[ticketID] {
		return false
	}
	f.stopped[ticketID] = reason
	return true
}

func (f *fakeDispatcher) InjectMessage(ticketID int, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running[ticketID] {
		return scheduler.ErrNotRunning
	}
	f.injected[ticketID] = append(f.injected[ticketID], msg)
	return nil
}

func (f *fakeDispatcher) setRunning(ticketID int, running bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running[ticketID] = running
}

type apiEnv struct {
	db          *database.Client
	client      *ent.Client
	projects    *services.ProjectService
	tickets     *services.TicketService
	messages    *services.MessageService
	sessions    *services.SessionService
	permissions *services.PermissionService
	status      *services.StatusService
	sched       *fakeDispatcher
	bus         *bus.Bus
	srv         *Server
}

func setupServer(t *testing.T) *apiEnv {
	t.Helper()
	dbc := testdb.NewTestClient(t)
	masker := masking.NewService(config.MaskingConfig{Enabled: true})

	env := &apiEnv{
		db:          dbc,
		client:      dbc.Client,
		projects:    services.NewProjectService(dbc.Client),
		tickets:     services.NewTicketService(dbc.Client),
		messages:    services.NewMessageService(dbc.Client, masker),
		sessions:    services.NewSessionService(dbc.Client),
		permissions: services.NewPermissionService(dbc.Client),
		status:      services.NewStatusService(dbc.Client),
		sched:       newFakeDispatcher(),
		bus:         bus.New(testLogger()),
	}
	t.Cleanup(env.bus.Close)

	env.srv = NewServer(config.ServerConfig{ListenAddr: ":0"}, Deps{
		DB:          dbc,
		Projects:    env.projects,
		Tickets:     env.tickets,
		Messages:    env.messages,
		Sessions:    env.sessions,
		Extractions: services.NewExtractionService(dbc.Client),
		Permissions: env.permissions,
		Status:      env.status,
		Scheduler:   env.sched,
		Bus:         env.bus,
		Version:     "test",
		Logger:      testLogger(),
	})
	return env
}

// request performs one in-process request against the router.
func (e *apiEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func (e *apiEnv) createProject(t *testing.T, code string) *ent.Project {
	t.Helper()
	p, err := e.projects.Create(context.Background(), models.CreateProjectRequest{
		Code: code,
		Name: code + " project",
	})
	require.NoError(t, err)
	return p
}

func (e *apiEnv) createTicket(t *testing.T, projectID int, title string) *ent.Ticket {
	t.Helper()
	tk, err := e.tickets.Create(context.Background(), models.CreateTicketRequest{
		ProjectID: projectID,
		Title:     title,
	})
	require.NoError(t, err)
	return tk
}

func TestHealth_Healthy(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[HealthResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test", resp.Version)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
	assert.Equal(t, "healthy", resp.Checks["scheduler"].Status)
}

func TestHealth_DegradedWhenSchedulerStopped(t *testing.T) {
	env := setupServer(t)
	env.sched.mu.Lock()
	env.sched.health.Running = false
	env.sched.mu.Unlock()

	w := env.request(t, http.MethodGet, "/healthz", nil)

	// Degraded still answers 200: the daemon itself is alive.
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[HealthResponse](t, w)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "degraded", resp.Checks["scheduler"].Status)
}

func TestStatus_BeforeFirstHeartbeat(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodGet, "/api/v1/status", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[StatusResponse](t, w)
	assert.Nil(t, resp.Daemon)
	require.NotNil(t, resp.Scheduler)
	assert.True(t, resp.Scheduler.Running)
	assert.Equal(t, "test", resp.Version)
}

func TestStatus_AfterHeartbeat(t *testing.T) {
	env := setupServer(t)
	err := env.status.Beat(context.Background(), services.Heartbeat{
		Status:         daemonstatus.StatusRunning,
		ActiveTickets:  2,
		CurrentTickets: []string{"CND-0001", "CND-0002"},
		StartedAt:      time.Now().Add(-time.Minute),
		Version:        "test",
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/v1/status", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[StatusResponse](t, w)
	require.NotNil(t, resp.Daemon)
	assert.Equal(t, daemonstatus.StatusRunning, resp.Daemon.Status)
	assert.Equal(t, 2, resp.Daemon.ActiveTickets)
	assert.NotEmpty(t, resp.Uptime)
}

func TestMiddleware_SecurityHeaders(t *testing.T) {
	env := setupServer(t)

	w := env.request(t, http.MethodGet, "/healthz", nil)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestMiddleware_InternalRoutesRejectRemoteClients(t *testing.T) {
	env := setupServer(t)

	// httptest requests carry a non-loopback RemoteAddr by default.
	w := env.request(t, http.MethodPost, "/api/v1/internal/hooks/decide",
		models.HookDecideRequest{TicketID: 1, Tool: "shell", Input: "ls"})

	require.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeBody[errorResponse](t, w)
	assert.Equal(t, "loopback only", resp.Error)
}
