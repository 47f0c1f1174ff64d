package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/rules"
)

type fakeSources struct {
	projects    map[int]*ent.Project
	tickets     map[int]*ent.Ticket
	messages    map[int][]*ent.Message
	extractions map[int][]*ent.Extraction
}

func (f *fakeSources) Get(_ context.Context, id int) (*ent.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %d not found", id)
	}
	return p, nil
}

// ticketSource is split off so fakeSources can serve both Get signatures.
type ticketSource struct{ f *fakeSources }

func (ts ticketSource) Get(_ context.Context, id int) (*ent.Ticket, error) {
	t, ok := ts.f.tickets[id]
	if !ok {
		return nil, fmt.Errorf("ticket %d not found", id)
	}
	return t, nil
}

func (f *fakeSources) Unsummarized(_ context.Context, ticketID int) ([]*ent.Message, error) {
	return f.messages[ticketID], nil
}

func (f *fakeSources) ListByTicket(_ context.Context, ticketID int) ([]*ent.Extraction, error) {
	return f.extractions[ticketID], nil
}

func (f *fakeSources) sources() Sources {
	return Sources{Projects: f, Tickets: ticketSource{f}, Messages: f, Extractions: f}
}

type fakeCompressor struct {
	calls []int
	err   error
}

func (c *fakeCompressor) Compress(_ context.Context, ticketID int) error {
	c.calls = append(c.calls, ticketID)
	return c.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func newTestProject(id int) *ent.Project {
	return &ent.Project{
		ID:         id,
		Code:       "DEMO",
		Name:       "Demo project",
		GitEnabled: false,
	}
}

func newTestTicket(id, projectID int) *ent.Ticket {
	return &ent.Ticket{
		ID:           id,
		ProjectID:    projectID,
		TicketNumber: fmt.Sprintf("DEMO-%04d", id),
		Title:        "Add login endpoint",
		Description:  "POST /login with session cookie",
		TicketType:   ticket.TicketTypeFeature,
		Priority:     ticket.PriorityMedium,
		Status:       ticket.StatusOpen,
	}
}

func buildConfig() config.ContextConfig {
	return config.ContextConfig{
		TokenTarget:        150_000,
		SummarizeThreshold: 50_000,
		GitHintCommits:     10,
		MapMaxAge:          7 * 24 * time.Hour,
	}
}

func TestBuildEnvelope_SectionOrder(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.md")
	require.NoError(t, os.WriteFile(rulesPath, []byte("Always run the test suite before closing."), 0o644))

	proj := newTestProject(1)
	proj.MapContent = "cmd/ entrypoints\npkg/ library code"
	proj.MapGeneratedAt = timePtr(time.Now().Add(-time.Hour))
	proj.Knowledge = "- Sessions are stored in Redis"
	proj.GitEnabled = true
	proj.WebPath = strPtr(dir)

	grandparent := newTestTicket(10, 1)
	grandparent.Title = "Epic: accounts"
	grandparent.Status = ticket.StatusDone
	grandparent.ResultSummary = strPtr("Account model and migrations landed")

	parent := newTestTicket(11, 1)
	parent.Title = "Auth groundwork"
	parent.ParentTicketID = intPtr(10)

	tk := newTestTicket(12, 1)
	tk.ParentTicketID = intPtr(11)

	src := &fakeSources{
		projects: map[int]*ent.Project{1: proj},
		tickets:  map[int]*ent.Ticket{10: grandparent, 11: parent, 12: tk},
		messages: map[int][]*ent.Message{12: {
			{ID: 100, Role: message.RoleUser, Content: "Please add the endpoint"},
			{ID: 101, Role: message.RoleAssistant, Content: "Working on it now"},
		}},
		extractions: map[int][]*ent.Extraction{12: {
			{FromMessageID: 90, ToMessageID: 99, Decisions: "Use bcrypt for hashing"},
		}},
	}

	b := NewBuilder(buildConfig(), src.sources(), rules.NewService(rulesPath), nil, nil, testLogger())
	b.gitHint = func(context.Context, string, int) (string, error) {
		return "abc1234 Add user model\ndef5678 Wire sessions", nil
	}

	env, err := b.BuildEnvelope(context.Background(), tk)
	require.NoError(t, err)
	assert.False(t, env.MapStale)
	assert.Positive(t, env.EstimatedTokens)

	markers := []string{
		sectionRules, sectionMap, sectionKnowledge,
		sectionParents, sectionGit, sectionTicket, sectionConversation,
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(env.Prompt, m)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", m)
		assert.Greater(t, idx, last, "section %q out of order", m)
		last = idx
	}

	// The parent chain carries the immediate parent and its parent, oldest
	// first, including the grandparent's result summary.
	gpIdx := strings.Index(env.Prompt, "Epic: accounts")
	pIdx := strings.Index(env.Prompt, "Auth groundwork")
	require.GreaterOrEqual(t, gpIdx, 0)
	require.GreaterOrEqual(t, pIdx, 0)
	assert.Less(t, gpIdx, pIdx)
	assert.Contains(t, env.Prompt, "Account model and migrations landed")

	// Conversation: compressed prefix before the live tail.
	exIdx := strings.Index(env.Prompt, "Summary of messages 90-99")
	msgIdx := strings.Index(env.Prompt, "[user] Please add the endpoint")
	require.GreaterOrEqual(t, exIdx, 0)
	require.GreaterOrEqual(t, msgIdx, 0)
	assert.Less(t, exIdx, msgIdx)
	assert.Contains(t, env.Prompt, "[assistant] Working on it now")
	assert.Contains(t, env.Prompt, "abc1234 Add user model")
	assert.Contains(t, env.Prompt, "Always run the test suite")
	assert.Contains(t, env.Prompt, "DEMO-0012")
}

func TestBuildEnvelope_MinimalTicket(t *testing.T) {
	proj := newTestProject(1)
	tk := newTestTicket(5, 1)

	src := &fakeSources{
		projects: map[int]*ent.Project{1: proj},
		tickets:  map[int]*ent.Ticket{5: tk},
	}

	b := NewBuilder(buildConfig(), src.sources(), nil, nil, nil, testLogger())

	env, err := b.BuildEnvelope(context.Background(), tk)
	require.NoError(t, err)

	assert.Contains(t, env.Prompt, sectionTicket)
	assert.Contains(t, env.Prompt, "Add login endpoint")
	for _, absent := range []string{sectionRules, sectionMap, sectionKnowledge, sectionParents, sectionGit, sectionConversation} {
		assert.NotContains(t, env.Prompt, absent)
	}
}

func TestBuildEnvelope_ParentChainBounded(t *testing.T) {
	proj := newTestProject(1)

	great := newTestTicket(1, 1)
	great.Title = "Root epic"
	grand := newTestTicket(2, 1)
	grand.Title = "Middle epic"
	grand.ParentTicketID = intPtr(1)
	parent := newTestTicket(3, 1)
	parent.Title = "Direct parent"
	parent.ParentTicketID = intPtr(2)
	tk := newTestTicket(4, 1)
	tk.ParentTicketID = intPtr(3)

	src := &fakeSources{
		projects: map[int]*ent.Project{1: proj},
		tickets:  map[int]*ent.Ticket{1: great, 2: grand, 3: parent, 4: tk},
	}

	b := NewBuilder(buildConfig(), src.sources(), nil, nil, nil, testLogger())

	env, err := b.BuildEnvelope(context.Background(), tk)
	require.NoError(t, err)

	assert.Contains(t, env.Prompt, "Direct parent")
	assert.Contains(t, env.Prompt, "Middle epic")
	assert.NotContains(t, env.Prompt, "Root epic")
}

func TestBuildEnvelope_StaleMapPublishesEvent(t *testing.T) {
	proj := newTestProject(1)
	proj.MapContent = "stale layout"
	proj.MapGeneratedAt = timePtr(time.Now().Add(-8 * 24 * time.Hour))
	tk := newTestTicket(7, 1)

	src := &fakeSources{
		projects: map[int]*ent.Project{1: proj},
		tickets:  map[int]*ent.Ticket{7: tk},
	}

	events := bus.New(nil)
	defer events.Close()
	ch, cancel := events.Subscribe(bus.TopicConsole)
	defer cancel()

	b := NewBuilder(buildConfig(), src.sources(), nil, nil, events, testLogger())

	env, err := b.BuildEnvelope(context.Background(), tk)
	require.NoError(t, err)
	assert.True(t, env.MapStale)
	assert.Contains(t, env.Prompt, "stale layout")

	select {
	case evt := <-ch:
		assert.Equal(t, bus.TypeMapStale, evt.Type)
		assert.Equal(t, "DEMO", evt.Payload["project_code"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for map_stale event")
	}
}

func TestBuildEnvelope_CompressorThreshold(t *testing.T) {
	proj := newTestProject(1)

	t.Run("over threshold triggers compression", func(t *testing.T) {
		tk := newTestTicket(8, 1)
		tk.UnsummarizedTokens = 60_000

		src := &fakeSources{
			projects: map[int]*ent.Project{1: proj},
			tickets:  map[int]*ent.Ticket{8: tk},
		}
		comp := &fakeCompressor{}
		b := NewBuilder(buildConfig(), src.sources(), nil, comp, nil, testLogger())

		_, err := b.BuildEnvelope(context.Background(), tk)
		require.NoError(t, err)
		assert.Equal(t, []int{8}, comp.calls)
	})

	t.Run("under threshold skips compression", func(t *testing.T) {
		tk := newTestTicket(9, 1)
		tk.UnsummarizedTokens = 10_000

		src := &fakeSources{
			projects: map[int]*ent.Project{1: proj},
			tickets:  map[int]*ent.Ticket{9: tk},
		}
		comp := &fakeCompressor{}
		b := NewBuilder(buildConfig(), src.sources(), nil, comp, nil, testLogger())

		_, err := b.BuildEnvelope(context.Background(), tk)
		require.NoError(t, err)
		assert.Empty(t, comp.calls)
	})

	t.Run("compression failure is not fatal", func(t *testing.T) {
		tk := newTestTicket(10, 1)
		tk.UnsummarizedTokens = 60_000

		src := &fakeSources{
			projects: map[int]*ent.Project{1: proj},
			tickets:  map[int]*ent.Ticket{10: tk},
			messages: map[int][]*ent.Message{10: {
				{ID: 1, Role: message.RoleUser, Content: "still here"},
			}},
		}
		comp := &fakeCompressor{err: fmt.Errorf("llm unavailable")}
		b := NewBuilder(buildConfig(), src.sources(), nil, comp, nil, testLogger())

		env, err := b.BuildEnvelope(context.Background(), tk)
		require.NoError(t, err)
		assert.Equal(t, []int{10}, comp.calls)
		assert.Contains(t, env.Prompt, "still here")
	})
}

func TestBuildEnvelope_BudgetTruncatesOptionalSections(t *testing.T) {
	proj := newTestProject(1)
	proj.Knowledge = strings.Repeat("- a hard-won lesson about the build\n", 500)
	tk := newTestTicket(20, 1)

	cfg := buildConfig()
	cfg.TokenTarget = 2_000

	src := &fakeSources{
		projects: map[int]*ent.Project{1: proj},
		tickets:  map[int]*ent.Ticket{20: tk},
	}

	b := NewBuilder(cfg, src.sources(), nil, nil, nil, testLogger())

	env, err := b.BuildEnvelope(context.Background(), tk)
	require.NoError(t, err)

	assert.Contains(t, env.Prompt, sectionKnowledge)
	assert.Contains(t, env.Prompt, "[TRUNCATED:")
	assert.Contains(t, env.Prompt, "Add login endpoint")
	assert.LessOrEqual(t, env.EstimatedTokens, cfg.TokenTarget+sectionFloor)
}

func TestBuildEnvelope_BudgetDropsSectionBelowFloor(t *testing.T) {
	proj := newTestProject(1)
	proj.Knowledge = "- short note"
	tk := newTestTicket(21, 1)
	// A conversation big enough to consume nearly the whole target.
	src := &fakeSources{
		projects: map[int]*ent.Project{1: proj},
		tickets:  map[int]*ent.Ticket{21: tk},
		messages: map[int][]*ent.Message{21: {
			{ID: 1, Role: message.RoleAssistant, Content: strings.Repeat("x", 4_000)},
		}},
	}

	cfg := buildConfig()
	cfg.TokenTarget = 1_000

	b := NewBuilder(cfg, src.sources(), nil, nil, nil, testLogger())

	env, err := b.BuildEnvelope(context.Background(), tk)
	require.NoError(t, err)

	// The conversation is never cut, so the optional knowledge section had
	// no budget left and must be gone entirely.
	assert.NotContains(t, env.Prompt, sectionKnowledge)
	assert.Contains(t, env.Prompt, strings.Repeat("x", 4_000))
}

func TestWorkdir(t *testing.T) {
	tests := []struct {
		name string
		proj *ent.Project
		want string
	}{
		{"web path preferred", &ent.Project{WebPath: strPtr("/srv/web"), AppPath: strPtr("/srv/app")}, "/srv/web"},
		{"app path fallback", &ent.Project{AppPath: strPtr("/srv/app")}, "/srv/app"},
		{"empty web path falls through", &ent.Project{WebPath: strPtr(""), AppPath: strPtr("/srv/app")}, "/srv/app"},
		{"neither configured", &ent.Project{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Workdir(tt.proj))
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  *ent.Message
		want string
	}{
		{
			"user message",
			&ent.Message{Role: message.RoleUser, Content: "hello"},
			"[user] hello",
		},
		{
			"tool use with input",
			&ent.Message{Role: message.RoleToolUse, ToolName: strPtr("bash"), ToolInput: strPtr("go test ./...")},
			"[tool_use] bash go test ./...",
		},
		{
			"tool use without input",
			&ent.Message{Role: message.RoleToolUse, ToolName: strPtr("read_file")},
			"[tool_use] read_file",
		},
		{
			"tool result",
			&ent.Message{Role: message.RoleToolResult, Content: "ok\t3 packages"},
			"[tool_result] ok\t3 packages",
		},
		{
			"system message",
			&ent.Message{Role: message.RoleSystem, Content: "watchdog intervened"},
			"[system] watchdog intervened",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMessage(tt.msg))
		})
	}
}

func TestFormatExtraction_SkipsEmptyFields(t *testing.T) {
	e := &ent.Extraction{
		FromMessageID:  5,
		ToMessageID:    9,
		Decisions:      "Chose sqlite for tests",
		FilesModified:  "pkg/db/db.go",
		ImportantNotes: "",
	}
	out := formatExtraction(e)
	assert.Contains(t, out, "Summary of messages 5-9")
	assert.Contains(t, out, "Decisions: Chose sqlite for tests")
	assert.Contains(t, out, "Files modified: pkg/db/db.go")
	assert.NotContains(t, out, "Notes:")
	assert.NotContains(t, out, "Problems solved:")
}
