package scheduler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/agent"
	"github.com/fleetworks/conductor/pkg/prompt"
)

func newTestWorker(store Store, runner Runner, notifier Notifier) *worker {
	return &worker{
		store:             store,
		builder:           fakeBuilder{},
		runner:            runner,
		notifier:          notifier,
		logger:            testLogger(),
		models:            ModelNames{Fast: "fast-model", Smart: "smart-model"},
		retryCooldown:     5 * time.Minute,
		rateLimitCooldown: 30 * time.Minute,
		reviewDelay:       5 * time.Minute,
		project:           testProject(1),
		ticket:            testTicket(10, 1),
		session:           &ent.ExecutionSession{ID: "sess-1", TicketID: 10},
		done:              func() {},
	}
}

func TestWorker_PermissionAutoApprove(t *testing.T) {
	store := newFakeStore()
	store.patterns[10] = []agent.ApprovedPattern{{Tool: "bash", Pattern: "npm *"}}

	w := newTestWorker(store, newFakeRunner(), nil)
	fe := &fakeExecution{done: make(chan struct{})}
	w.ex = fe

	input, _ := json.Marshal("npm install")
	w.handleEvent(context.Background(), &agent.Event{
		Type:  agent.KindPermissionRequest,
		Tool:  "bash",
		Input: input,
	})

	// The saved pattern answers the agent without parking the ticket.
	assert.Empty(t, store.awaitingCalls())
	assert.Equal(t, []string{"Permission granted: bash"}, fe.injectedMsgs())

	msgs := store.appendedMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, message.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Auto-approved bash")
}

func TestWorker_PermissionParksTicket(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}

	w := newTestWorker(store, newFakeRunner(), notifier)
	fe := &fakeExecution{done: make(chan struct{})}
	w.ex = fe

	input, _ := json.Marshal("rm -rf /var/lib/postgres")
	w.handleEvent(context.Background(), &agent.Event{
		Type:  agent.KindPermissionRequest,
		Tool:  "bash",
		Input: input,
	})

	await := store.awaitingCalls()
	require.Len(t, await, 1)
	require.NotNil(t, await[0].reason)
	assert.Equal(t, ticket.AwaitingReasonPermission, *await[0].reason)

	// Nothing goes back to the agent until the human decides.
	assert.Empty(t, fe.injectedMsgs())

	msgs := store.appendedMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "requested permission to use bash")

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.awaiting, 1)
	assert.Contains(t, notifier.awaiting[0], "permission requested: bash")
}

func TestWorker_EventPersistence(t *testing.T) {
	store := newFakeStore()
	w := newTestWorker(store, newFakeRunner(), nil)

	ctx := context.Background()
	input, _ := json.Marshal(map[string]string{"command": "go test ./..."})
	w.handleEvent(ctx, &agent.Event{Type: agent.KindAssistantMessage, Content: "running the tests"})
	w.handleEvent(ctx, &agent.Event{Type: agent.KindToolUse, Name: "bash", Input: input})
	w.handleEvent(ctx, &agent.Event{Type: agent.KindToolResult, Content: "ok  \t0.31s"})
	w.handleEvent(ctx, &agent.Event{Type: agent.KindUsage, InputTokens: 1200, OutputTokens: 340, CacheReadTokens: 9000})

	msgs := store.appendedMessages()
	require.Len(t, msgs, 3)

	assert.Equal(t, message.RoleAssistant, msgs[0].Role)
	assert.Equal(t, "running the tests", msgs[0].Content)

	assert.Equal(t, message.RoleToolUse, msgs[1].Role)
	require.NotNil(t, msgs[1].ToolName)
	assert.Equal(t, "bash", *msgs[1].ToolName)
	require.NotNil(t, msgs[1].ToolInput)
	assert.Contains(t, *msgs[1].ToolInput, "go test")

	assert.Equal(t, message.RoleToolResult, msgs[2].Role)

	usage := store.usage["sess-1"]
	require.Len(t, usage, 1)
	assert.Equal(t, int64(1200), usage[0].InputTokens)
	assert.Equal(t, int64(340), usage[0].OutputTokens)
	assert.Equal(t, int64(9000), usage[0].CacheReadTokens)

	// Liveness was touched once; later events within the throttle window
	// must not write again.
	assert.Equal(t, []string{"sess-1"}, store.touched)
}

func TestWorker_SettleStuck(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	w := newTestWorker(store, newFakeRunner(), notifier)

	w.settle(&agent.Outcome{Result: agent.ResultStuck, StopReason: "no output for 30m0s"})

	finished := store.finishedCalls()
	require.Len(t, finished, 1)
	assert.Equal(t, executionsession.StatusStuck, finished[0].status)
	require.NotNil(t, finished[0].errMsg)
	assert.Contains(t, *finished[0].errMsg, "no output")

	await := store.awaitingCalls()
	require.Len(t, await, 1)
	require.NotNil(t, await[0].reason)
	assert.Equal(t, ticket.AwaitingReasonStuck, *await[0].reason)

	msgs := store.appendedMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "Run aborted")

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Len(t, notifier.stuck, 1)
}

func TestWorker_PanicRecovered(t *testing.T) {
	store := newFakeStore()
	w := newTestWorker(store, newFakeRunner(), nil)
	w.builder = panicBuilder{}

	require.NotPanics(t, func() {
		w.run(context.Background())
	})

	finished := store.finishedCalls()
	require.Len(t, finished, 1)
	assert.Equal(t, executionsession.StatusFailed, finished[0].status)
	require.NotNil(t, finished[0].errMsg)
	assert.Contains(t, *finished[0].errMsg, "internal error")

	failures := store.failureCalls()
	require.Len(t, failures, 1)
	assert.Equal(t, 10, failures[0].ticketID)
}

type panicBuilder struct{}

func (panicBuilder) BuildEnvelope(context.Context, *ent.Ticket) (*prompt.Envelope, error) {
	panic("boom")
}

func TestWorker_StopBeforeSpawnApplied(t *testing.T) {
	store := newFakeStore()
	w := newTestWorker(store, newFakeRunner(), nil)

	w.requestStop("operator shutdown")

	fe := &fakeExecution{outcome: &agent.Outcome{Result: agent.ResultCompleted}, done: make(chan struct{})}
	w.attach(fe)

	// attach replays the pre-spawn stop request.
	out := fe.Wait()
	assert.Equal(t, agent.ResultStopped, out.Result)
	assert.Equal(t, "operator shutdown", out.StopReason)
}

func TestWorker_InjectBeforeSpawnQueued(t *testing.T) {
	store := newFakeStore()
	w := newTestWorker(store, newFakeRunner(), nil)

	require.NoError(t, w.inject("remember the migration"))
	require.NoError(t, w.inject("and the docs"))

	fe := &fakeExecution{done: make(chan struct{})}
	w.attach(fe)

	assert.Equal(t, []string{"remember the migration", "and the docs"}, fe.injectedMsgs())
}

func TestResolveMode(t *testing.T) {
	p := testProject(1)
	tk := testTicket(10, 1)

	assert.Equal(t, "autonomous", resolveMode(tk, p))

	override := ticket.ExecutionModeSupervised
	tk.ExecutionMode = &override
	assert.Equal(t, "supervised", resolveMode(tk, p))

	p.DefaultExecutionMode = project.DefaultExecutionModeSemiAutonomous
	tk.ExecutionMode = nil
	assert.Equal(t, "semi_autonomous", resolveMode(tk, p))
}

func TestResolveModel(t *testing.T) {
	w := newTestWorker(newFakeStore(), newFakeRunner(), nil)

	assert.Equal(t, "smart-model", w.resolveModel())

	fast := ticket.ModelTierFast
	w.ticket.ModelTier = &fast
	assert.Equal(t, "fast-model", w.resolveModel())

	// Without a fast model configured the smart model serves every tier.
	w.models.Fast = ""
	assert.Equal(t, "smart-model", w.resolveModel())
}
