package services

import (
	"context"
	"testing"

	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/ticket"
	testdb "github.com/fleetworks/conductor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Finish(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "SES")
	tk := createTestTicket(t, client.Client, proj.ID, "run me")
	sess := claimTestTicket(t, client.Client, tk.ID)

	t.Run("closes a running session", func(t *testing.T) {
		errMsg := "agent exited 1"
		require.NoError(t, svc.Finish(ctx, sess.ID, executionsession.StatusFailed, &errMsg))

		reloaded, err := svc.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, executionsession.StatusFailed, reloaded.Status)
		assert.Equal(t, errMsg, *reloaded.ErrorMessage)
		assert.NotNil(t, reloaded.EndedAt)
	})

	t.Run("double finish loses the conditional update", func(t *testing.T) {
		err := svc.Finish(ctx, sess.ID, executionsession.StatusCompleted, nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("running is not a terminal status", func(t *testing.T) {
		err := svc.Finish(ctx, sess.ID, executionsession.StatusRunning, nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_RecordUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "USE")
	tk := createTestTicket(t, client.Client, proj.ID, "counted")
	sess := claimTestTicket(t, client.Client, tk.ID)

	usage := TokenUsage{
		InputTokens:         1000,
		OutputTokens:        200,
		CacheReadTokens:     300,
		CacheCreationTokens: 50,
	}
	require.NoError(t, svc.RecordUsage(ctx, sess.ID, usage))
	require.NoError(t, svc.RecordUsage(ctx, sess.ID, usage))

	reloaded, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), reloaded.InputTokens)
	assert.Equal(t, int64(400), reloaded.OutputTokens)
	assert.Equal(t, int64(600), reloaded.CacheReadTokens)
	assert.Equal(t, int64(100), reloaded.CacheCreationTokens)
	assert.Equal(t, 2, reloaded.APICalls)

	reloadedTicket, err := client.Client.Ticket.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3100), reloadedTicket.TotalTokens)

	reloadedProject, err := client.Client.Project.Get(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2700), reloadedProject.TotalInputTokens)
	assert.Equal(t, int64(400), reloadedProject.TotalOutputTokens)
}

func TestSessionService_TouchAndQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "TCH")
	tk := createTestTicket(t, client.Client, proj.ID, "live")
	sess := claimTestTicket(t, client.Client, tk.ID)

	require.NoError(t, svc.TouchOutput(ctx, sess.ID))

	reloaded, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastOutputAt)

	running, err := svc.Running(ctx)
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, sess.ID, running[0].ID)

	latest, err := svc.LatestByTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, latest.ID)

	t.Run("latest for silent ticket", func(t *testing.T) {
		idle := createTestTicket(t, client.Client, proj.ID, "idle")
		_, err := svc.LatestByTicket(ctx, idle.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_RecoverOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "ORP")
	orphaned := createTestTicket(t, client.Client, proj.ID, "orphaned")
	healthy := createTestTicket(t, client.Client, proj.ID, "healthy")

	orphanSession := claimTestTicket(t, client.Client, orphaned.ID)
	finishTestTicket(t, client.Client, healthy.ID)

	recovered, err := svc.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	// Session closed as failed with an explanatory message.
	sess, err := svc.Get(ctx, orphanSession.ID)
	require.NoError(t, err)
	assert.Equal(t, executionsession.StatusFailed, sess.Status)
	require.NotNil(t, sess.ErrorMessage)
	assert.Contains(t, *sess.ErrorMessage, "restarted")

	// Ticket returned to the queue without spending a retry.
	reopened := requireStatus(t, client.Client, orphaned.ID, ticket.StatusOpen)
	assert.Equal(t, 0, reopened.RetryCount)
	assert.Nil(t, reopened.RetryAfter)

	// Finished work untouched.
	requireStatus(t, client.Client, healthy.ID, ticket.StatusDone)

	t.Run("idempotent", func(t *testing.T) {
		recovered, err := svc.RecoverOrphans(ctx)
		require.NoError(t, err)
		assert.Zero(t, recovered)
	})
}
