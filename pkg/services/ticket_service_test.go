package services

import (
	"context"
	"testing"
	"time"

	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/models"
	testdb "github.com/fleetworks/conductor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "DEMO")

	t.Run("allocates sequential numbers", func(t *testing.T) {
		first, err := svc.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "first"})
		require.NoError(t, err)
		second, err := svc.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "second"})
		require.NoError(t, err)

		assert.Equal(t, "DEMO-0001", first.TicketNumber)
		assert.Equal(t, "DEMO-0002", second.TicketNumber)
	})

	t.Run("applies schema defaults", func(t *testing.T) {
		tk, err := svc.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "defaults"})
		require.NoError(t, err)

		assert.Equal(t, ticket.StatusOpen, tk.Status)
		assert.Equal(t, ticket.TicketTypeTask, tk.TicketType)
		assert.Equal(t, ticket.PriorityMedium, tk.Priority)
		assert.Equal(t, 3, tk.MaxRetries)
		assert.False(t, tk.IsForced)
		assert.Nil(t, tk.SequenceOrder)
		assert.Nil(t, tk.ExecutionMode)
	})

	t.Run("stores explicit fields", func(t *testing.T) {
		retries := 5
		seq := 7
		tk, err := svc.Create(ctx, models.CreateTicketRequest{
			ProjectID:     proj.ID,
			Title:         "explicit",
			Description:   "details",
			Type:          "bug",
			Priority:      "critical",
			SequenceOrder: &seq,
			IsForced:      true,
			ExecutionMode: "supervised",
			ModelTier:     "fast",
			MaxRetries:    &retries,
		})
		require.NoError(t, err)

		assert.Equal(t, ticket.TicketTypeBug, tk.TicketType)
		assert.Equal(t, ticket.PriorityCritical, tk.Priority)
		assert.Equal(t, 7, *tk.SequenceOrder)
		assert.True(t, tk.IsForced)
		assert.Equal(t, ticket.ExecutionModeSupervised, *tk.ExecutionMode)
		assert.Equal(t, ticket.ModelTierFast, *tk.ModelTier)
		assert.Equal(t, 5, tk.MaxRetries)
	})

	t.Run("creates dependency edges", func(t *testing.T) {
		base := createTestTicket(t, client.Client, proj.ID, "base")
		dependent, err := svc.Create(ctx, models.CreateTicketRequest{
			ProjectID: proj.ID,
			Title:     "dependent",
			DependsOn: []int{base.ID, base.ID}, // duplicate collapses
		})
		require.NoError(t, err)

		deps, err := svc.Dependencies(ctx, dependent.ID)
		require.NoError(t, err)
		require.Len(t, deps, 1)
		assert.Equal(t, base.ID, deps[0].ID)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "  "})
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "x", Priority: "urgent"})
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "x", Type: "epic"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown project", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateTicketRequest{ProjectID: 99999, Title: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects archived project", func(t *testing.T) {
		archived := createTestProject(t, client.Client, "OLD")
		_, err := NewProjectService(client.Client).Archive(ctx, archived.ID)
		require.NoError(t, err)

		_, err = svc.Create(ctx, models.CreateTicketRequest{ProjectID: archived.ID, Title: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects cross-project parent and dependency", func(t *testing.T) {
		other := createTestProject(t, client.Client, "OTHER")
		foreign := createTestTicket(t, client.Client, other.ID, "foreign")

		_, err := svc.Create(ctx, models.CreateTicketRequest{
			ProjectID:      proj.ID,
			Title:          "bad parent",
			ParentTicketID: &foreign.ID,
		})
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, models.CreateTicketRequest{
			ProjectID: proj.ID,
			Title:     "bad dep",
			DependsOn: []int{foreign.ID},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestTicketService_Claim(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "CLM")
	tk := createTestTicket(t, client.Client, proj.ID, "claim me")

	sess, err := svc.Claim(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, tk.ID, sess.TicketID)
	assert.Equal(t, executionsession.StatusRunning, sess.Status)
	assert.NotEmpty(t, sess.ID)
	requireStatus(t, client.Client, tk.ID, ticket.StatusInProgress)

	// Second claim loses the conditional update.
	_, err = svc.Claim(ctx, tk.ID)
	assert.ErrorIs(t, err, ErrNotClaimable)
}

func TestTicketService_AwaitingAndReopen(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "AWT")
	tk := createTestTicket(t, client.Client, proj.ID, "park me")
	claimTestTicket(t, client.Client, tk.ID)

	reason := ticket.AwaitingReasonCompleted
	reviewAt := time.Now().UTC().Add(10 * time.Minute)
	require.NoError(t, svc.MarkAwaiting(ctx, tk.ID, &reason, &reviewAt))

	parked := requireStatus(t, client.Client, tk.ID, ticket.StatusAwaitingInput)
	assert.Equal(t, ticket.AwaitingReasonCompleted, *parked.AwaitingReason)
	require.NotNil(t, parked.ReviewScheduledAt)
	assert.WithinDuration(t, reviewAt, *parked.ReviewScheduledAt, time.Second)

	// MarkAwaiting requires in_progress.
	err := svc.MarkAwaiting(ctx, tk.ID, &reason, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	reopened, err := svc.Reopen(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusOpen, reopened.Status)
	assert.Nil(t, reopened.AwaitingReason)
	assert.Nil(t, reopened.ReviewScheduledAt)
	assert.Nil(t, reopened.RetryAfter)
}

func TestTicketService_StuckAndSkip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "STK")
	tk := createTestTicket(t, client.Client, proj.ID, "wedge me")
	claimTestTicket(t, client.Client, tk.ID)

	require.NoError(t, svc.MarkStuck(ctx, tk.ID))
	requireStatus(t, client.Client, tk.ID, ticket.StatusStuck)

	// stuck -> open is a manual revive.
	_, err := svc.Reopen(ctx, tk.ID)
	require.NoError(t, err)
	requireStatus(t, client.Client, tk.ID, ticket.StatusOpen)

	skipped, err := svc.Skip(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusSkipped, skipped.Status)

	// Terminal: no way back.
	_, err = svc.Reopen(ctx, tk.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Skip(ctx, tk.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTicketService_RecordFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "FLR")
	retries := 2
	tk := createTestTicket(t, client.Client, proj.ID, "flaky", func(req *models.CreateTicketRequest) {
		req.MaxRetries = &retries
	})

	claimTestTicket(t, client.Client, tk.ID)
	updated, err := svc.RecordFailure(ctx, tk.ID, 5*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, ticket.StatusOpen, updated.Status)
	assert.Equal(t, 1, updated.RetryCount)
	require.NotNil(t, updated.RetryAfter)
	aboutNow(t, updated.RetryAfter.Add(-5*time.Minute), 5*time.Second)

	// Second failure exhausts max_retries=2.
	claimTestTicket(t, client.Client, tk.ID)
	updated, err = svc.RecordFailure(ctx, tk.ID, 5*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, ticket.StatusFailed, updated.Status)
	assert.Equal(t, 2, updated.RetryCount)
	assert.Nil(t, updated.RetryAfter)

	// Only in_progress tickets can record failures.
	_, err = svc.RecordFailure(ctx, tk.ID, 5*time.Minute)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTicketService_RecordRateLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "RTL")
	tk := createTestTicket(t, client.Client, proj.ID, "throttled")
	claimTestTicket(t, client.Client, tk.ID)

	require.NoError(t, svc.RecordRateLimit(ctx, tk.ID, 30*time.Minute))

	updated := requireStatus(t, client.Client, tk.ID, ticket.StatusOpen)
	// Rate limits do not spend a retry.
	assert.Equal(t, 0, updated.RetryCount)
	require.NotNil(t, updated.RetryAfter)
	aboutNow(t, updated.RetryAfter.Add(-30*time.Minute), 5*time.Second)
}

func TestTicketService_SelectNext(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	t.Run("empty project", func(t *testing.T) {
		proj := createTestProject(t, client.Client, "EMPTY")
		_, err := svc.SelectNext(ctx, proj.ID)
		assert.ErrorIs(t, err, ErrNoEligibleTickets)
	})

	t.Run("dispatch ordering", func(t *testing.T) {
		proj := createTestProject(t, client.Client, "ORD")
		low := createTestTicket(t, client.Client, proj.ID, "low", func(r *models.CreateTicketRequest) {
			r.Priority = "low"
		})
		critical := createTestTicket(t, client.Client, proj.ID, "critical", func(r *models.CreateTicketRequest) {
			r.Priority = "critical"
		})
		sequenced := createTestTicket(t, client.Client, proj.ID, "sequenced", func(r *models.CreateTicketRequest) {
			r.SequenceOrder = intPtr(1)
			r.Priority = "low"
		})
		forced := createTestTicket(t, client.Client, proj.ID, "forced", func(r *models.CreateTicketRequest) {
			r.IsForced = true
			r.Priority = "low"
		})

		queue, err := svc.Queue(ctx, proj.ID)
		require.NoError(t, err)
		require.Len(t, queue, 4)
		assert.Equal(t, forced.ID, queue[0].ID)
		assert.Equal(t, sequenced.ID, queue[1].ID)
		assert.Equal(t, critical.ID, queue[2].ID)
		assert.Equal(t, low.ID, queue[3].ID)

		next, err := svc.SelectNext(ctx, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, forced.ID, next.ID)
	})

	t.Run("dependency gating", func(t *testing.T) {
		proj := createTestProject(t, client.Client, "DEP")
		blocker := createTestTicket(t, client.Client, proj.ID, "blocker")
		blocked := createTestTicket(t, client.Client, proj.ID, "blocked", func(r *models.CreateTicketRequest) {
			r.DependsOn = []int{blocker.ID}
		})

		// Both open; only the blocker is eligible.
		next, err := svc.SelectNext(ctx, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, blocker.ID, next.ID)

		finishTestTicket(t, client.Client, blocker.ID)

		next, err = svc.SelectNext(ctx, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, blocked.ID, next.ID)
	})

	t.Run("relaxed dependency accepts awaiting", func(t *testing.T) {
		proj := createTestProject(t, client.Client, "RLX")
		blocker := createTestTicket(t, client.Client, proj.ID, "awaiting blocker")
		createTestTicket(t, client.Client, proj.ID, "strict", func(r *models.CreateTicketRequest) {
			r.DependsOn = []int{blocker.ID}
		})
		relaxed := createTestTicket(t, client.Client, proj.ID, "relaxed", func(r *models.CreateTicketRequest) {
			r.DependsOn = []int{blocker.ID}
			r.DepsIncludeAwaiting = true
		})
		parkTestTicket(t, client.Client, blocker.ID, ticket.AwaitingReasonCompleted)

		queue, err := svc.Queue(ctx, proj.ID)
		require.NoError(t, err)
		require.Len(t, queue, 1)
		assert.Equal(t, relaxed.ID, queue[0].ID)
	})

	t.Run("cooldown gating", func(t *testing.T) {
		proj := createTestProject(t, client.Client, "CLD")
		cooled := createTestTicket(t, client.Client, proj.ID, "cooling")
		err := client.Client.Ticket.UpdateOneID(cooled.ID).
			SetRetryAfter(time.Now().UTC().Add(time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		_, err = svc.SelectNext(ctx, proj.ID)
		assert.ErrorIs(t, err, ErrNoEligibleTickets)

		err = client.Client.Ticket.UpdateOneID(cooled.ID).
			SetRetryAfter(time.Now().UTC().Add(-time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		next, err := svc.SelectNext(ctx, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, cooled.ID, next.ID)
	})

	t.Run("parent gating", func(t *testing.T) {
		proj := createTestProject(t, client.Client, "PAR")
		parent := createTestTicket(t, client.Client, proj.ID, "parent")
		child := createTestTicket(t, client.Client, proj.ID, "child", func(r *models.CreateTicketRequest) {
			r.ParentTicketID = &parent.ID
		})

		next, err := svc.SelectNext(ctx, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, parent.ID, next.ID)

		finishTestTicket(t, client.Client, parent.ID)

		next, err = svc.SelectNext(ctx, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, child.ID, next.ID)
	})
}

func TestTicketService_CloseAnnotatesDependents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "RDY")
	first := createTestTicket(t, client.Client, proj.ID, "first")
	second := createTestTicket(t, client.Client, proj.ID, "second")
	waiting := createTestTicket(t, client.Client, proj.ID, "waiting", func(r *models.CreateTicketRequest) {
		r.DependsOn = []int{first.ID, second.ID}
	})

	parkTestTicket(t, client.Client, waiting.ID, ticket.AwaitingReasonQuestion)
	finishTestTicket(t, client.Client, first.ID)

	// One dependency still unfinished: no annotation yet.
	parked, err := client.Client.Ticket.Get(ctx, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.AwaitingReasonQuestion, *parked.AwaitingReason)

	finishTestTicket(t, client.Client, second.ID)

	parked, err = client.Client.Ticket.Get(ctx, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.AwaitingReasonDepsReady, *parked.AwaitingReason)
}

func TestTicketService_CloseFillsResultSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	messages := NewMessageService(client.Client, nil)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "SUM")

	t.Run("parent with children", func(t *testing.T) {
		parent := createTestTicket(t, client.Client, proj.ID, "parent")
		createTestTicket(t, client.Client, proj.ID, "child", func(r *models.CreateTicketRequest) {
			r.ParentTicketID = &parent.ID
		})

		claimTestTicket(t, client.Client, parent.ID)
		_, err := messages.Append(ctx, AppendMessage{
			TicketID: parent.ID,
			Role:     message.RoleAssistant,
			Content:  "Implemented the shared auth middleware.",
		})
		require.NoError(t, err)

		reason := ticket.AwaitingReasonCompleted
		require.NoError(t, svc.MarkAwaiting(ctx, parent.ID, &reason, nil))

		closed, err := svc.Close(ctx, parent.ID)
		require.NoError(t, err)
		require.NotNil(t, closed.ResultSummary)
		assert.Contains(t, *closed.ResultSummary, "auth middleware")
	})

	t.Run("leaf ticket stays unsummarized", func(t *testing.T) {
		leaf := createTestTicket(t, client.Client, proj.ID, "leaf")
		claimTestTicket(t, client.Client, leaf.ID)
		_, err := messages.Append(ctx, AppendMessage{
			TicketID: leaf.ID,
			Role:     message.RoleAssistant,
			Content:  "done",
		})
		require.NoError(t, err)

		reason := ticket.AwaitingReasonCompleted
		require.NoError(t, svc.MarkAwaiting(ctx, leaf.ID, &reason, nil))

		closed, err := svc.Close(ctx, leaf.ID)
		require.NoError(t, err)
		assert.Nil(t, closed.ResultSummary)
	})
}

func TestTicketService_AddDependency(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "CYC")
	a := createTestTicket(t, client.Client, proj.ID, "a")
	b := createTestTicket(t, client.Client, proj.ID, "b")
	c := createTestTicket(t, client.Client, proj.ID, "c")

	require.NoError(t, svc.AddDependency(ctx, a.ID, b.ID))
	require.NoError(t, svc.AddDependency(ctx, b.ID, c.ID))

	t.Run("duplicate", func(t *testing.T) {
		err := svc.AddDependency(ctx, a.ID, b.ID)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("self loop", func(t *testing.T) {
		err := svc.AddDependency(ctx, a.ID, a.ID)
		assert.ErrorIs(t, err, ErrDependencyCycle)
	})

	t.Run("transitive cycle", func(t *testing.T) {
		// a -> b -> c already exists; c -> a would close the loop.
		err := svc.AddDependency(ctx, c.ID, a.ID)
		assert.ErrorIs(t, err, ErrDependencyCycle)
	})

	t.Run("cross project", func(t *testing.T) {
		other := createTestProject(t, client.Client, "XPR")
		foreign := createTestTicket(t, client.Client, other.ID, "foreign")
		err := svc.AddDependency(ctx, a.ID, foreign.ID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown tickets", func(t *testing.T) {
		err := svc.AddDependency(ctx, a.ID, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTicketService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "LST")
	other := createTestProject(t, client.Client, "LSX")
	for i := 0; i < 3; i++ {
		createTestTicket(t, client.Client, proj.ID, "ticket")
	}
	skipped := createTestTicket(t, client.Client, proj.ID, "skipped")
	_, err := svc.Skip(ctx, skipped.ID)
	require.NoError(t, err)
	createTestTicket(t, client.Client, other.ID, "elsewhere")

	t.Run("filters by project", func(t *testing.T) {
		tickets, total, err := svc.List(ctx, models.TicketFilters{ProjectID: &proj.ID})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, tickets, 4)
	})

	t.Run("filters by status", func(t *testing.T) {
		tickets, total, err := svc.List(ctx, models.TicketFilters{
			ProjectID: &proj.ID,
			Statuses:  []string{"open"},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, tickets, 3)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, _, err := svc.List(ctx, models.TicketFilters{Statuses: []string{"parked"}})
		assert.True(t, IsValidationError(err))
	})

	t.Run("paginates", func(t *testing.T) {
		page, total, err := svc.List(ctx, models.TicketFilters{
			ProjectID: &proj.ID,
			Limit:     2,
			Offset:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, page, 2)
	})
}

func TestTicketService_ReviewScheduling(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "RVW")
	tk := createTestTicket(t, client.Client, proj.ID, "reviewable")
	parkTestTicket(t, client.Client, tk.ID, ticket.AwaitingReasonCompleted)

	past := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, svc.ScheduleReview(ctx, tk.ID, past))

	due, err := svc.DueForReview(ctx, time.Now().UTC(), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, tk.ID, due[0].ID)

	t.Run("attempt with retry", func(t *testing.T) {
		next := time.Now().UTC().Add(time.Hour)
		require.NoError(t, svc.RecordReviewAttempt(ctx, tk.ID, &next))

		reloaded, err := client.Client.Ticket.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, reloaded.ReviewAttempts)
		require.NotNil(t, reloaded.ReviewScheduledAt)

		// Rescheduled into the future: no longer due.
		due, err := svc.DueForReview(ctx, time.Now().UTC(), 10)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("giving up clears the schedule", func(t *testing.T) {
		require.NoError(t, svc.RecordReviewAttempt(ctx, tk.ID, nil))

		reloaded, err := client.Client.Ticket.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, reloaded.ReviewAttempts)
		assert.Nil(t, reloaded.ReviewScheduledAt)
	})

	t.Run("reason reclassification", func(t *testing.T) {
		require.NoError(t, svc.SetAwaitingReason(ctx, tk.ID, ticket.AwaitingReasonQuestion))

		reloaded, err := client.Client.Ticket.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.AwaitingReasonQuestion, *reloaded.AwaitingReason)
		assert.Nil(t, reloaded.ReviewScheduledAt)
	})
}

func TestTicketService_Monitoring(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "MON")

	t.Run("needing summarization", func(t *testing.T) {
		big := createTestTicket(t, client.Client, proj.ID, "chatty")
		small := createTestTicket(t, client.Client, proj.ID, "quiet")
		running := createTestTicket(t, client.Client, proj.ID, "running")
		claimTestTicket(t, client.Client, running.ID)

		for id, tokens := range map[int]int{big.ID: 50000, small.ID: 100, running.ID: 60000} {
			err := client.Client.Ticket.UpdateOneID(id).SetUnsummarizedTokens(tokens).Exec(ctx)
			require.NoError(t, err)
		}

		// Running tickets are excluded even above threshold.
		due, err := svc.NeedingSummarization(ctx, 30000, 10)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, big.ID, due[0].ID)
	})

	t.Run("stale awaiting", func(t *testing.T) {
		stale := createTestTicket(t, client.Client, proj.ID, "stale")
		fresh := createTestTicket(t, client.Client, proj.ID, "fresh")
		parkTestTicket(t, client.Client, stale.ID, ticket.AwaitingReasonQuestion)
		parkTestTicket(t, client.Client, fresh.ID, ticket.AwaitingReasonQuestion)

		err := client.Client.Ticket.UpdateOneID(stale.ID).
			SetUpdatedAt(time.Now().UTC().Add(-72 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		found, err := svc.StaleAwaiting(ctx, time.Now().UTC().Add(-48*time.Hour), 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, stale.ID, found[0].ID)
	})

	t.Run("counts by status", func(t *testing.T) {
		counts, err := svc.CountsByStatus(ctx)
		require.NoError(t, err)
		assert.Positive(t, counts[ticket.StatusOpen])
		assert.Positive(t, counts[ticket.StatusAwaitingInput])
	})
}
