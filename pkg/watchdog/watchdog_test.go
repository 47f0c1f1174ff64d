package watchdog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/llm"
	"github.com/fleetworks/conductor/pkg/masking"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/fleetworks/conductor/pkg/services"
	testdb "github.com/fleetworks/conductor/test/database"
)

type fakeModel struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
}

func (f *fakeModel) Complete(_ context.Context, _ llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeModel) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeStopper struct {
	mu      sync.Mutex
	stopped map[int]string
}

func (f *fakeStopper) StopTicket(ticketID int, reason string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped == nil {
		f.stopped = make(map[int]string)
	}
	f.stopped[ticketID] = reason
	return true
}

type fakeNotifier struct {
	mu    sync.Mutex
	stuck []string
}

func (f *fakeNotifier) TicketStuck(_ context.Context, t *ent.Ticket, reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stuck = append(f.stuck, t.TicketNumber+": "+reason)
}

type watchdogEnv struct {
	client   *ent.Client
	tickets  *services.TicketService
	sessions *services.SessionService
	messages *services.MessageService
	model    *fakeModel
	stopper  *fakeStopper
	notifier *fakeNotifier
	svc      *Service
}

func setupWatchdog(t *testing.T, mutate ...func(*config.WatchdogConfig)) *watchdogEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	masker := masking.NewService(config.MaskingConfig{Enabled: true})
	tickets := services.NewTicketService(client.Client)
	sessions := services.NewSessionService(client.Client)
	messages := services.NewMessageService(client.Client, masker)
	model := &fakeModel{response: `{"stuck": false, "reason": "varied progress"}`}
	stopper := &fakeStopper{}
	notifier := &fakeNotifier{}

	cfg := config.WatchdogConfig{
		Interval:       30 * time.Minute,
		MinMessages:    10,
		WindowMessages: 30,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(cfg, tickets, sessions, messages, model, stopper, nil, notifier, logger)
	return &watchdogEnv{
		client:   client.Client,
		tickets:  tickets,
		sessions: sessions,
		messages: messages,
		model:    model,
		stopper:  stopper,
		notifier: notifier,
		svc:      svc,
	}
}

// seedRunningTicket claims a ticket and fills its conversation with n
// messages that look like a loop.
func (e *watchdogEnv) seedRunningTicket(t *testing.T, n int) (*ent.Ticket, *ent.ExecutionSession) {
	t.Helper()
	ctx := context.Background()

	proj, err := services.NewProjectService(e.client).Create(ctx, models.CreateProjectRequest{
		Code: "WDG", Name: "Watchdog fixture",
	})
	require.NoError(t, err)
	tk, err := e.tickets.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "Fix flaky migration"})
	require.NoError(t, err)
	sess, err := e.tickets.Claim(ctx, tk.ID)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		_, err := e.messages.Append(ctx, services.AppendMessage{
			TicketID: tk.ID,
			Role:     message.RoleAssistant,
			Content:  fmt.Sprintf("Retrying the migration, attempt %d. Same duplicate key error.", i+1),
		})
		require.NoError(t, err)
	}

	reloaded, err := e.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	return reloaded, sess
}

func TestWatchdog_InterveneOnStuck(t *testing.T) {
	env := setupWatchdog(t)
	ctx := context.Background()
	tk, sess := env.seedRunningTicket(t, 12)
	env.model.response = `{"stuck": true, "reason": "same failing migration retried twelve times"}`

	env.svc.sweep(ctx)

	// Session and ticket both carry the stuck outcome.
	reloadedSess, err := env.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, executionsession.StatusStuck, reloadedSess.Status)
	require.NotNil(t, reloadedSess.ErrorMessage)
	assert.Contains(t, *reloadedSess.ErrorMessage, "watchdog:")

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusStuck, reloaded.Status)

	// The live run was killed after the bookkeeping.
	env.stopper.mu.Lock()
	reason := env.stopper.stopped[tk.ID]
	env.stopper.mu.Unlock()
	assert.Contains(t, reason, "watchdog:")

	// The conversation explains the intervention.
	recent, err := env.messages.Recent(ctx, tk.ID, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, message.RoleSystem, recent[0].Role)
	assert.Contains(t, recent[0].Content, "Watchdog stopped this run")

	env.notifier.mu.Lock()
	defer env.notifier.mu.Unlock()
	require.Len(t, env.notifier.stuck, 1)
	assert.Contains(t, env.notifier.stuck[0], tk.TicketNumber)
}

func TestWatchdog_StuckToAwaitingPolicy(t *testing.T) {
	env := setupWatchdog(t, func(cfg *config.WatchdogConfig) {
		cfg.StuckToAwaiting = true
	})
	ctx := context.Background()
	tk, _ := env.seedRunningTicket(t, 12)
	env.model.response = `{"stuck": true, "reason": "circular edits"}`

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
	require.NotNil(t, reloaded.AwaitingReason)
	assert.Equal(t, ticket.AwaitingReasonStuck, *reloaded.AwaitingReason)
}

func TestWatchdog_SkipsShortConversations(t *testing.T) {
	env := setupWatchdog(t)
	env.seedRunningTicket(t, 5)

	env.svc.sweep(context.Background())

	assert.Equal(t, 0, env.model.callCount())
}

func TestWatchdog_ProgressingTicketLeftAlone(t *testing.T) {
	env := setupWatchdog(t)
	ctx := context.Background()
	tk, sess := env.seedRunningTicket(t, 12)

	env.svc.sweep(ctx)

	assert.Equal(t, 1, env.model.callCount())

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusInProgress, reloaded.Status)

	reloadedSess, err := env.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, executionsession.StatusRunning, reloadedSess.Status)

	env.stopper.mu.Lock()
	defer env.stopper.mu.Unlock()
	assert.Empty(t, env.stopper.stopped)
}

func TestWatchdog_ClassifierFailureIsTransient(t *testing.T) {
	env := setupWatchdog(t)
	ctx := context.Background()
	tk, _ := env.seedRunningTicket(t, 12)
	env.model.err = errors.New("model timeout")

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusInProgress, reloaded.Status)

	env.stopper.mu.Lock()
	defer env.stopper.mu.Unlock()
	assert.Empty(t, env.stopper.stopped)
}
