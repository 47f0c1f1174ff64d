package cleanup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/masking"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/fleetworks/conductor/pkg/services"
	testdb "github.com/fleetworks/conductor/test/database"
)

type cleanupEnv struct {
	client   *ent.Client
	tickets  *services.TicketService
	sessions *services.SessionService
	messages *services.MessageService
}

func setupCleanup(t *testing.T) *cleanupEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	masker := masking.NewService(config.MaskingConfig{Enabled: true})
	return &cleanupEnv{
		client:   client.Client,
		tickets:  services.NewTicketService(client.Client),
		sessions: services.NewSessionService(client.Client),
		messages: services.NewMessageService(client.Client, masker),
	}
}

func (e *cleanupEnv) newService(deadlineDays int) *Service {
	cfg := config.RetentionConfig{
		SessionRetentionDays: 30,
		SweepInterval:        time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(cfg, deadlineDays, e.tickets, e.sessions, e.messages, logger)
}

// parkTicket creates an awaiting ticket whose updated_at is age in the past.
func (e *cleanupEnv) parkTicket(t *testing.T, age time.Duration) *ent.Ticket {
	t.Helper()
	ctx := context.Background()
	proj, err := services.NewProjectService(e.client).Create(ctx, models.CreateProjectRequest{
		Code: "CLN", Name: "Cleanup fixture",
	})
	require.NoError(t, err)
	tk, err := e.tickets.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "Waiting on an answer"})
	require.NoError(t, err)
	_, err = e.tickets.Claim(ctx, tk.ID)
	require.NoError(t, err)
	reason := ticket.AwaitingReasonQuestion
	require.NoError(t, e.tickets.MarkAwaiting(ctx, tk.ID, &reason, nil))

	if age > 0 {
		require.NoError(t, e.client.Ticket.UpdateOneID(tk.ID).
			SetUpdatedAt(time.Now().Add(-age)).
			Exec(ctx))
	}
	return tk
}

func TestService_ClosesStaleAwaitingTickets(t *testing.T) {
	env := setupCleanup(t)
	ctx := context.Background()
	tk := env.parkTicket(t, 8*24*time.Hour)

	env.newService(7).runAll(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusDone, reloaded.Status)

	recent, err := env.messages.Recent(ctx, tk.ID, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, message.RoleSystem, recent[0].Role)
	assert.Contains(t, recent[0].Content, "Closed automatically after 7 days")
}

func TestService_PreservesRecentAwaitingTickets(t *testing.T) {
	env := setupCleanup(t)
	ctx := context.Background()
	tk := env.parkTicket(t, 0)

	env.newService(7).runAll(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
}

func TestService_DeadlineZeroDisablesAutoClose(t *testing.T) {
	env := setupCleanup(t)
	ctx := context.Background()
	tk := env.parkTicket(t, 30*24*time.Hour)

	env.newService(0).runAll(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
}

func TestService_PrunesOldFinishedSessions(t *testing.T) {
	env := setupCleanup(t)
	ctx := context.Background()

	proj, err := services.NewProjectService(env.client).Create(ctx, models.CreateProjectRequest{
		Code: "CLN", Name: "Cleanup fixture",
	})
	require.NoError(t, err)

	// Old finished session.
	tk1, err := env.tickets.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "Old work"})
	require.NoError(t, err)
	oldSess, err := env.tickets.Claim(ctx, tk1.ID)
	require.NoError(t, err)
	require.NoError(t, env.sessions.Finish(ctx, oldSess.ID, executionsession.StatusCompleted, nil))
	require.NoError(t, env.client.ExecutionSession.UpdateOneID(oldSess.ID).
		SetEndedAt(time.Now().Add(-40*24*time.Hour)).
		Exec(ctx))

	// Live session on another ticket.
	tk2, err := env.tickets.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "Current work"})
	require.NoError(t, err)
	liveSess, err := env.tickets.Claim(ctx, tk2.ID)
	require.NoError(t, err)

	env.newService(7).runAll(ctx)

	_, err = env.sessions.Get(ctx, oldSess.ID)
	assert.True(t, errors.Is(err, services.ErrNotFound), "old finished session should be deleted")

	kept, err := env.sessions.Get(ctx, liveSess.ID)
	require.NoError(t, err)
	assert.Equal(t, executionsession.StatusRunning, kept.Status)
}

func TestService_PreservesRecentFinishedSessions(t *testing.T) {
	env := setupCleanup(t)
	ctx := context.Background()

	proj, err := services.NewProjectService(env.client).Create(ctx, models.CreateProjectRequest{
		Code: "CLN", Name: "Cleanup fixture",
	})
	require.NoError(t, err)
	tk, err := env.tickets.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "Fresh work"})
	require.NoError(t, err)
	sess, err := env.tickets.Claim(ctx, tk.ID)
	require.NoError(t, err)
	require.NoError(t, env.sessions.Finish(ctx, sess.ID, executionsession.StatusCompleted, nil))

	env.newService(7).runAll(ctx)

	kept, err := env.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, executionsession.StatusCompleted, kept.Status)
}
