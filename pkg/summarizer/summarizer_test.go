package summarizer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	entmessage "github.com/fleetworks/conductor/ent/message"
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
	if f.response == "" {
		return `{"decisions": "switched the pool to pgx", "problems_solved": "fixed the N+1 in ticket listing", "files_modified": "pkg/services/ticket_service.go", "tests_status": "all passing", "error_patterns": "", "important_notes": "migrations must run before the daemon starts"}`, nil
	}
	return f.response, nil
}

func (f *fakeModel) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type summarizerEnv struct {
	client   *ent.Client
	tickets  *services.TicketService
	messages *services.MessageService
	projects *services.ProjectService
	model    *fakeModel
	svc      *Service
}

func setupSummarizer(t *testing.T, threshold int) *summarizerEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	masker := masking.NewService(config.MaskingConfig{Enabled: true})
	tickets := services.NewTicketService(client.Client)
	messages := services.NewMessageService(client.Client, masker)
	extractions := services.NewExtractionService(client.Client)
	projects := services.NewProjectService(client.Client)
	model := &fakeModel{}
	cfg := config.SummarizerConfig{SweepInterval: 5 * time.Minute}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(cfg, threshold, tickets, messages, extractions, projects, model, logger)
	return &summarizerEnv{
		client:   client.Client,
		tickets:  tickets,
		messages: messages,
		projects: projects,
		model:    model,
		svc:      svc,
	}
}

// seedConversation creates a project and ticket, then appends n messages of
// exactly 40 estimated tokens each (160 ASCII chars).
func (e *summarizerEnv) seedConversation(t *testing.T, n int) (*ent.Ticket, []*ent.Message) {
	t.Helper()
	ctx := context.Background()

	proj, err := e.projects.Create(ctx, models.CreateProjectRequest{Code: "SUM", Name: "Summarizer fixture"})
	require.NoError(t, err)
	tk, err := e.tickets.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "Long running work"})
	require.NoError(t, err)

	msgs := make([]*ent.Message, 0, n)
	for i := 0; i < n; i++ {
		role := entmessage.RoleAssistant
		if i%2 == 0 {
			role = entmessage.RoleUser
		}
		m, err := e.messages.Append(ctx, services.AppendMessage{
			TicketID: tk.ID,
			Role:     role,
			Content:  strings.Repeat("x", 160),
		})
		require.NoError(t, err)
		require.Equal(t, 40, m.TokenCount)
		msgs = append(msgs, m)
	}
	return tk, msgs
}

func TestSummarizer_CompressesOldestRange(t *testing.T) {
	env := setupSummarizer(t, 50)
	ctx := context.Background()
	tk, msgs := env.seedConversation(t, 6) // 240 tokens total

	require.NoError(t, env.svc.Compress(ctx, tk.ID))

	// Smallest prefix whose removal brings the rest under 50 tokens is the
	// first five messages; the newest stays raw.
	extractions, err := services.NewExtractionService(env.client).ListByTicket(ctx, tk.ID)
	require.NoError(t, err)
	require.Len(t, extractions, 1)
	assert.Equal(t, msgs[0].ID, extractions[0].FromMessageID)
	assert.Equal(t, msgs[4].ID, extractions[0].ToMessageID)
	assert.Equal(t, 200, extractions[0].TokensBefore)
	assert.Contains(t, extractions[0].Decisions, "pgx")

	remaining, err := env.messages.Unsummarized(ctx, tk.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, msgs[5].ID, remaining[0].ID)

	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, reloaded.UnsummarizedTokens)

	// The full history is still there, just flagged.
	total, err := env.messages.Count(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}

func TestSummarizer_FoldsKnowledgeIntoProject(t *testing.T) {
	env := setupSummarizer(t, 50)
	ctx := context.Background()
	tk, _ := env.seedConversation(t, 6)

	require.NoError(t, env.svc.Compress(ctx, tk.ID))

	proj, err := env.projects.Get(ctx, tk.ProjectID)
	require.NoError(t, err)
	assert.Contains(t, proj.Knowledge, tk.TicketNumber)
	assert.Contains(t, proj.Knowledge, "switched the pool to pgx")
	assert.Contains(t, proj.Knowledge, "migrations must run")
}

func TestSummarizer_NoopUnderThreshold(t *testing.T) {
	env := setupSummarizer(t, 500)
	ctx := context.Background()
	tk, _ := env.seedConversation(t, 3) // 120 tokens, well under

	require.NoError(t, env.svc.Compress(ctx, tk.ID))

	assert.Equal(t, 0, env.model.callCount())
	extractions, err := services.NewExtractionService(env.client).ListByTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Empty(t, extractions)
}

func TestSummarizer_ModelFailureLeavesStateUntouched(t *testing.T) {
	env := setupSummarizer(t, 50)
	ctx := context.Background()
	tk, _ := env.seedConversation(t, 6)
	env.model.err = errors.New("model unavailable")

	err := env.svc.Compress(ctx, tk.ID)
	require.Error(t, err)

	extractions, lerr := services.NewExtractionService(env.client).ListByTicket(ctx, tk.ID)
	require.NoError(t, lerr)
	assert.Empty(t, extractions)

	remaining, lerr := env.messages.Unsummarized(ctx, tk.ID)
	require.NoError(t, lerr)
	assert.Len(t, remaining, 6)

	reloaded, lerr := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, lerr)
	assert.Equal(t, 240, reloaded.UnsummarizedTokens)
}

func TestSummarizer_SweepSkipsRunningTickets(t *testing.T) {
	env := setupSummarizer(t, 50)
	ctx := context.Background()
	tk, _ := env.seedConversation(t, 6)

	// A live worker owns the conversation; compressing under it would race.
	_, err := env.tickets.Claim(ctx, tk.ID)
	require.NoError(t, err)

	env.svc.sweep(ctx)

	assert.Equal(t, 0, env.model.callCount())
	extractions, err := services.NewExtractionService(env.client).ListByTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Empty(t, extractions)
}

func TestSummarizer_SweepCompressesEligible(t *testing.T) {
	env := setupSummarizer(t, 50)
	ctx := context.Background()
	tk, _ := env.seedConversation(t, 6)

	env.svc.sweep(ctx)

	assert.Equal(t, 1, env.model.callCount())
	reloaded, err := env.tickets.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, reloaded.UnsummarizedTokens, 50)
}
