package reviewer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/llm"
	"github.com/fleetworks/conductor/pkg/masking"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/fleetworks/conductor/pkg/services"
	testdb "github.com/fleetworks/conductor/test/database"
)

// fakeModel scripts classifier responses.
type fakeModel struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
}

func (f *fakeModel) Complete(_ context.Context, _ llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return `{"verdict": "COMPLETED", "reason": "work landed"}`, nil
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeModel) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type reviewerEnv struct {
	client   *ent.Client
	tickets  *services.TicketService
	messages *services.MessageService
	model    *fakeModel
	svc      *Service
}

func setupReviewer(t *testing.T) *reviewerEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	masker := masking.NewService(config.MaskingConfig{Enabled: true})
	tickets := services.NewTicketService(client.Client)
	messages := services.NewMessageService(client.Client, masker)
	model := &fakeModel{}
	cfg := config.ReviewConfig{
		AutoReviewDelay: 5 * time.Minute,
		SweepInterval:   30 * time.Second,
		MaxAttempts:     10,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(cfg, tickets, messages, model, nil, logger)
	return &reviewerEnv{
		client:   client.Client,
		tickets:  tickets,
		messages: messages,
		model:    model,
		svc:      svc,
	}
}

// parkForReview drives a ticket through a completed agent turn: claimed,
// conversation appended, parked awaiting with an already-due review time.
func (e *reviewerEnv) parkForReview(t *testing.T, relaxed bool) *ent.Ticket {
	t.Helper()
	ctx := context.Background()

	proj, err := services.NewProjectService(e.client).Create(ctx, models.CreateProjectRequest{
		Code: "REV",
		Name: "Review fixture",
	})
	require.NoError(t, err)

	tk, err := e.tickets.Create(ctx, models.CreateTicketRequest{
		ProjectID:           proj.ID,
		Title:               "Add request logging",
		DepsIncludeAwaiting: relaxed,
	})
	require.NoError(t, err)

	_, err = e.tickets.Claim(ctx, tk.ID)
	require.NoError(t, err)

	_, err = e.messages.Append(ctx, services.AppendMessage{
		TicketID: tk.ID, Role: message.RoleUser, Content: "Add slog request logging to the API server.",
	})
	require.NoError(t, err)
	_, err = e.messages.Append(ctx, services.AppendMessage{
		TicketID: tk.ID, Role: message.RoleAssistant, Content: "Done. Added a logging middleware and tests; all green.",
	})
	require.NoError(t, err)

	due := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, e.tickets.MarkAwaiting(ctx, tk.ID, nil, &due))

	reloaded, err := e.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	return reloaded
}

func TestReviewer_RelaxedAutoClose(t *testing.T) {
	env := setupReviewer(t)
	ctx := context.Background()
	tk := env.parkForReview(t, true)

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusDone, reloaded.Status)
	assert.Nil(t, reloaded.ReviewScheduledAt)
	assert.Equal(t, 1, env.model.callCount())

	// The close is explained in the conversation.
	recent, err := env.messages.Recent(ctx, tk.ID, 5)
	require.NoError(t, err)
	last := recent[len(recent)-1]
	assert.Equal(t, message.RoleSystem, last.Role)
	assert.Contains(t, last.Content, "closed as completed")
}

func TestReviewer_StrictNeverAutoCloses(t *testing.T) {
	env := setupReviewer(t)
	ctx := context.Background()
	tk := env.parkForReview(t, false)

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
	require.NotNil(t, reloaded.AwaitingReason)
	assert.Equal(t, ticket.AwaitingReasonCompleted, *reloaded.AwaitingReason)
	assert.Nil(t, reloaded.ReviewScheduledAt)

	// Strict mode skips the classifier entirely.
	assert.Equal(t, 0, env.model.callCount())
}

func TestReviewer_UserInterventionCancels(t *testing.T) {
	env := setupReviewer(t)
	ctx := context.Background()
	tk := env.parkForReview(t, true)

	_, err := env.messages.Append(ctx, services.AppendMessage{
		TicketID: tk.ID, Role: message.RoleUser, Content: "Hold on, the format is wrong.",
	})
	require.NoError(t, err)

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
	assert.Nil(t, reloaded.ReviewScheduledAt)
	assert.Equal(t, 0, env.model.callCount())
}

func TestReviewer_QuestionStaysParked(t *testing.T) {
	env := setupReviewer(t)
	ctx := context.Background()
	tk := env.parkForReview(t, true)
	env.model.responses = []string{`{"verdict": "QUESTION", "reason": "agent needs the target environment"}`}

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
	require.NotNil(t, reloaded.AwaitingReason)
	assert.Equal(t, ticket.AwaitingReasonQuestion, *reloaded.AwaitingReason)
	assert.Nil(t, reloaded.ReviewScheduledAt)
}

func TestReviewer_ClassifierFailureReschedules(t *testing.T) {
	env := setupReviewer(t)
	ctx := context.Background()
	tk := env.parkForReview(t, true)
	env.model.err = errors.New("upstream timeout")

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
	assert.Equal(t, 1, reloaded.ReviewAttempts)
	require.NotNil(t, reloaded.ReviewScheduledAt)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), *reloaded.ReviewScheduledAt, 30*time.Second)
}

func TestReviewer_GivesUpAfterMaxAttempts(t *testing.T) {
	env := setupReviewer(t)
	ctx := context.Background()
	tk := env.parkForReview(t, true)
	env.model.err = errors.New("upstream down")

	// Nine failures already on the books; the next one is the last.
	require.NoError(t, env.client.Ticket.UpdateOneID(tk.ID).SetReviewAttempts(9).Exec(ctx))

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
	require.NotNil(t, reloaded.AwaitingReason)
	assert.Equal(t, ticket.AwaitingReasonCompleted, *reloaded.AwaitingReason)
	assert.Nil(t, reloaded.ReviewScheduledAt, "no further retries once given up")
}

func TestReviewer_MalformedVerdictCountsAsFailure(t *testing.T) {
	env := setupReviewer(t)
	ctx := context.Background()
	tk := env.parkForReview(t, true)
	env.model.responses = []string{"the ticket looks finished to me"}

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusAwaitingInput, reloaded.Status)
	assert.Equal(t, 1, reloaded.ReviewAttempts)
	require.NotNil(t, reloaded.ReviewScheduledAt)
}

func TestReviewer_FencedJSONAccepted(t *testing.T) {
	env := setupReviewer(t)
	ctx := context.Background()
	tk := env.parkForReview(t, true)
	env.model.responses = []string{"```json\n{\"verdict\": \"ERROR\", \"reason\": \"build is broken\"}\n```"}

	env.svc.sweep(ctx)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.AwaitingReason)
	assert.Equal(t, ticket.AwaitingReasonError, *reloaded.AwaitingReason)
}
