package scheduler

import (
	"context"
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
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/agent"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/prompt"
	"github.com/fleetworks/conductor/pkg/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProject(id int) *ent.Project {
	web := "/srv/projects/demo"
	return &ent.Project{
		ID:                   id,
		Code:                 fmt.Sprintf("P%d", id),
		WebPath:              &web,
		DefaultExecutionMode: project.DefaultExecutionModeAutonomous,
		ModelTier:            project.ModelTierSmart,
	}
}

func testTicket(id, projectID int) *ent.Ticket {
	return &ent.Ticket{
		ID:           id,
		ProjectID:    projectID,
		TicketNumber: fmt.Sprintf("P%d-%04d", projectID, id),
		Title:        "Ship feature",
		Status:       ticket.StatusOpen,
		Priority:     ticket.PriorityMedium,
		TicketType:   ticket.TicketTypeTask,
		MaxRetries:   3,
	}
}

type awaitingCall struct {
	ticketID int
	reason   *ticket.AwaitingReason
	reviewAt *time.Time
}

type failureCall struct {
	ticketID int
	cooldown time.Duration
}

type finishCall struct {
	sessionID string
	status    executionsession.Status
	errMsg    *string
}

// fakeStore is an in-memory Store. Claim consumes tickets from per-project
// queues; every mutation is recorded for assertions.
type fakeStore struct {
	mu sync.Mutex

	projects  []*ent.Project
	queues    map[int][]*ent.Ticket
	projectOf map[int]int

	nextSession int
	claimed     []int
	sessions    map[string]int

	awaiting   []awaitingCall
	failures   []failureCall
	rateLimits []failureCall
	cancelled  []int
	messages   []services.AppendMessage
	finished   []finishCall
	usage      map[string][]services.TokenUsage
	touched    []string
	patterns   map[int][]agent.ApprovedPattern

	failCounts map[int]int
	orphans    int
	counts     map[ticket.Status]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		queues:     make(map[int][]*ent.Ticket),
		projectOf:  make(map[int]int),
		sessions:   make(map[string]int),
		usage:      make(map[string][]services.TokenUsage),
		patterns:   make(map[int][]agent.ApprovedPattern),
		failCounts: make(map[int]int),
		counts:     make(map[ticket.Status]int),
	}
}

func (f *fakeStore) addProject(p *ent.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, p)
}

func (f *fakeStore) addTicket(t *ent.Ticket) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queues[t.ProjectID] = append(f.queues[t.ProjectID], t)
	f.projectOf[t.ID] = t.ProjectID
}

func (f *fakeStore) ActiveProjects(_ context.Context) ([]*ent.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ent.Project(nil), f.projects...), nil
}

func (f *fakeStore) Project(_ context.Context, id int) (*ent.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeStore) SelectNext(_ context.Context, projectID int) (*ent.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.queues[projectID]
	if len(q) == 0 {
		return nil, services.ErrNoEligibleTickets
	}
	return q[0], nil
}

func (f *fakeStore) Claim(_ context.Context, ticketID int) (*ent.ExecutionSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	projectID, ok := f.projectOf[ticketID]
	if !ok {
		return nil, services.ErrNotClaimable
	}
	q := f.queues[projectID]
	idx := -1
	for i, t := range q {
		if t.ID == ticketID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, services.ErrNotClaimable
	}
	f.queues[projectID] = append(q[:idx:idx], q[idx+1:]...)

	f.nextSession++
	id := fmt.Sprintf("sess-%d", f.nextSession)
	f.claimed = append(f.claimed, ticketID)
	f.sessions[id] = ticketID
	return &ent.ExecutionSession{ID: id, TicketID: ticketID}, nil
}

func (f *fakeStore) CountsByStatus(_ context.Context) (map[ticket.Status]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[ticket.Status]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) RecoverOrphans(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orphans, nil
}

func (f *fakeStore) MarkAwaiting(_ context.Context, ticketID int, reason *ticket.AwaitingReason, reviewAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.awaiting = append(f.awaiting, awaitingCall{ticketID: ticketID, reason: reason, reviewAt: reviewAt})
	return nil
}

func (f *fakeStore) RecordFailure(_ context.Context, ticketID int, cooldown time.Duration) (*ent.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, failureCall{ticketID: ticketID, cooldown: cooldown})
	f.failCounts[ticketID]++
	status := ticket.StatusOpen
	if f.failCounts[ticketID] >= 3 {
		status = ticket.StatusFailed
	}
	return &ent.Ticket{ID: ticketID, Status: status, RetryCount: f.failCounts[ticketID]}, nil
}

func (f *fakeStore) RecordRateLimit(_ context.Context, ticketID int, cooldown time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateLimits = append(f.rateLimits, failureCall{ticketID: ticketID, cooldown: cooldown})
	return nil
}

func (f *fakeStore) CancelReview(_ context.Context, ticketID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, ticketID)
	return nil
}

func (f *fakeStore) AppendMessage(_ context.Context, m services.AppendMessage) (*ent.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, m)
	return &ent.Message{ID: len(f.messages), TicketID: m.TicketID, Role: m.Role, Content: m.Content}, nil
}

func (f *fakeStore) FinishSession(_ context.Context, id string, status executionsession.Status, errMsg *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finished = append(f.finished, finishCall{sessionID: id, status: status, errMsg: errMsg})
	return nil
}

func (f *fakeStore) RecordUsage(_ context.Context, sessionID string, usage services.TokenUsage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usage[sessionID] = append(f.usage[sessionID], usage)
	return nil
}

func (f *fakeStore) TouchSession(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, sessionID)
	return nil
}

func (f *fakeStore) ApprovedPatterns(_ context.Context, ticketID int) ([]agent.ApprovedPattern, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.patterns[ticketID], nil
}

func (f *fakeStore) claimedIDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.claimed...)
}

func (f *fakeStore) claimedProjects() map[int]bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int]bool)
	for _, id := range f.claimed {
		out[f.projectOf[id]] = true
	}
	return out
}

func (f *fakeStore) awaitingCalls() []awaitingCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]awaitingCall(nil), f.awaiting...)
}

func (f *fakeStore) failureCalls() []failureCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]failureCall(nil), f.failures...)
}

func (f *fakeStore) rateLimitCalls() []failureCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]failureCall(nil), f.rateLimits...)
}

func (f *fakeStore) finishedCalls() []finishCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]finishCall(nil), f.finished...)
}

func (f *fakeStore) appendedMessages() []services.AppendMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]services.AppendMessage(nil), f.messages...)
}

func (f *fakeStore) cancelledIDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.cancelled...)
}

// fakeExecution is a scriptable Execution.
type fakeExecution struct {
	mu       sync.Mutex
	outcome  *agent.Outcome
	done     chan struct{}
	closed   bool
	injected []string
}

func (f *fakeExecution) Wait() *agent.Outcome {
	<-f.done
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

func (f *fakeExecution) Inject(msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.injected = append(f.injected, msg)
	return nil
}

func (f *fakeExecution) Stop(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.outcome = &agent.Outcome{Result: agent.ResultStopped, StopReason: reason}
	f.closed = true
	close(f.done)
}

func (f *fakeExecution) Done() <-chan struct{} { return f.done }

// release finishes the execution with its configured outcome.
func (f *fakeExecution) release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.done)
}

func (f *fakeExecution) injectedMsgs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.injected...)
}

// fakeRunner scripts per-ticket events and outcomes. Blocking tickets stay
// live until their execution is released.
type fakeRunner struct {
	mu       sync.Mutex
	outcomes map[int]*agent.Outcome
	events   map[int][]*agent.Event
	blocking map[int]bool
	startErr map[int]error
	execs    map[int]*fakeExecution
	starts   []agent.RunSpec
	active   int
	peak     int
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outcomes: make(map[int]*agent.Outcome),
		events:   make(map[int][]*agent.Event),
		blocking: make(map[int]bool),
		startErr: make(map[int]error),
		execs:    make(map[int]*fakeExecution),
	}
}

func (r *fakeRunner) Start(ctx context.Context, spec agent.RunSpec) (Execution, error) {
	r.mu.Lock()
	r.starts = append(r.starts, spec)
	if err := r.startErr[spec.TicketID]; err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.active++
	if r.active > r.peak {
		r.peak = r.active
	}
	outcome := r.outcomes[spec.TicketID]
	if outcome == nil {
		outcome = &agent.Outcome{Result: agent.ResultCompleted}
	}
	events := r.events[spec.TicketID]
	blocking := r.blocking[spec.TicketID]
	fe := &fakeExecution{outcome: outcome, done: make(chan struct{})}
	r.execs[spec.TicketID] = fe
	r.mu.Unlock()

	for _, evt := range events {
		if spec.Handler != nil {
			spec.Handler(ctx, evt)
		}
	}
	go func() {
		<-fe.done
		r.mu.Lock()
		r.active--
		r.mu.Unlock()
	}()
	if !blocking {
		fe.release()
	}
	return fe, nil
}

func (r *fakeRunner) exec(ticketID int) *fakeExecution {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.execs[ticketID]
}

func (r *fakeRunner) releaseAll() {
	r.mu.Lock()
	execs := make([]*fakeExecution, 0, len(r.execs))
	for _, fe := range r.execs {
		execs = append(execs, fe)
	}
	r.mu.Unlock()
	for _, fe := range execs {
		fe.release()
	}
}

func (r *fakeRunner) startSpecs() []agent.RunSpec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]agent.RunSpec(nil), r.starts...)
}

func (r *fakeRunner) peakActive() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.peak
}

type fakeBuilder struct {
	err error
}

func (b fakeBuilder) BuildEnvelope(_ context.Context, t *ent.Ticket) (*prompt.Envelope, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &prompt.Envelope{Prompt: "work on " + t.TicketNumber}, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	awaiting []string
	failed   []string
	stuck    []string
}

func (n *fakeNotifier) TicketAwaiting(_ context.Context, t *ent.Ticket, reason string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.awaiting = append(n.awaiting, t.TicketNumber+": "+reason)
}

func (n *fakeNotifier) TicketFailed(_ context.Context, t *ent.Ticket, detail string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failed = append(n.failed, t.TicketNumber+": "+detail)
}

func (n *fakeNotifier) TicketStuck(_ context.Context, t *ent.Ticket, reason string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stuck = append(n.stuck, t.TicketNumber+": "+reason)
}

func newTestScheduler(store Store, runner Runner, notifier Notifier, mutate ...func(*config.SchedulerConfig)) *Scheduler {
	cfg := config.SchedulerConfig{
		MaxParallelProjects: 3,
		TickInterval:        10 * time.Millisecond,
		RetryCooldown:       5 * time.Minute,
		RateLimitCooldown:   30 * time.Minute,
		ShutdownGrace:       200 * time.Millisecond,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return New(cfg, Deps{
		Store:       store,
		Builder:     fakeBuilder{},
		Runner:      runner,
		Notifier:    notifier,
		Logger:      testLogger(),
		Models:      ModelNames{Fast: "fast-model", Smart: "smart-model"},
		ReviewDelay: 5 * time.Minute,
	})
}

func TestScheduler_DispatchesAndCompletes(t *testing.T) {
	store := newFakeStore()
	store.addProject(testProject(1))
	store.addTicket(testTicket(10, 1))

	runner := newFakeRunner()
	runner.events[10] = []*agent.Event{
		{Type: agent.KindAssistantMessage, Content: "done, see the diff"},
	}

	sched := newTestScheduler(store, runner, nil)
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return len(store.awaitingCalls()) == 1
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, []int{10}, store.claimedIDs())

	// The completed turn parks the ticket for review.
	await := store.awaitingCalls()[0]
	assert.Equal(t, 10, await.ticketID)
	assert.Nil(t, await.reason)
	require.NotNil(t, await.reviewAt)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), *await.reviewAt, 10*time.Second)

	finished := store.finishedCalls()
	require.Len(t, finished, 1)
	assert.Equal(t, executionsession.StatusCompleted, finished[0].status)

	msgs := store.appendedMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "done, see the diff", msgs[0].Content)

	// The agent invocation carries the resolved mode, model, and env.
	specs := runner.startSpecs()
	require.Len(t, specs, 1)
	assert.Equal(t, "work on P1-0010", specs[0].Prompt)
	assert.Equal(t, "autonomous", specs[0].Mode)
	assert.Equal(t, "smart-model", specs[0].Model)
	assert.Equal(t, "/srv/projects/demo", specs[0].Workdir)
	assert.Equal(t, "10", specs[0].Env["CONDUCTOR_TICKET_ID"])
	assert.Equal(t, "P1-0010", specs[0].Env["CONDUCTOR_TICKET_NUMBER"])
}

func TestScheduler_GlobalCap(t *testing.T) {
	store := newFakeStore()
	for p := 1; p <= 3; p++ {
		store.addProject(testProject(p))
		tk := testTicket(p*10, p)
		store.addTicket(tk)
	}

	runner := newFakeRunner()
	for p := 1; p <= 3; p++ {
		runner.blocking[p*10] = true
	}

	sched := newTestScheduler(store, runner, nil, func(cfg *config.SchedulerConfig) {
		cfg.MaxParallelProjects = 2
	})
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return len(store.claimedIDs()) == 2
	}, 3*time.Second, 10*time.Millisecond)

	// The cap holds while both workers are live.
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, store.claimedIDs(), 2)

	// Releasing one slot admits the waiting project.
	var first *fakeExecution
	require.Eventually(t, func() bool {
		first = runner.exec(store.claimedIDs()[0])
		return first != nil
	}, 3*time.Second, 10*time.Millisecond)
	first.release()
	require.Eventually(t, func() bool {
		return len(store.claimedIDs()) == 3
	}, 3*time.Second, 10*time.Millisecond)

	runner.releaseAll()
	require.Eventually(t, func() bool {
		return len(store.finishedCalls()) == 3
	}, 3*time.Second, 10*time.Millisecond)

	assert.LessOrEqual(t, runner.peakActive(), 2)
}

func TestScheduler_OneWorkerPerProject(t *testing.T) {
	store := newFakeStore()
	store.addProject(testProject(1))
	store.addTicket(testTicket(10, 1))
	store.addTicket(testTicket(11, 1))

	runner := newFakeRunner()
	runner.blocking[10] = true

	sched := newTestScheduler(store, runner, nil)
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return len(store.claimedIDs()) == 1
	}, 3*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []int{10}, store.claimedIDs(), "second ticket must wait for the project's worker")

	var first *fakeExecution
	require.Eventually(t, func() bool {
		first = runner.exec(10)
		return first != nil
	}, 3*time.Second, 10*time.Millisecond)
	first.release()
	require.Eventually(t, func() bool {
		return len(store.claimedIDs()) == 2
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{10, 11}, store.claimedIDs())
}

func TestScheduler_FairnessRotation(t *testing.T) {
	store := newFakeStore()
	for p := 1; p <= 4; p++ {
		store.addProject(testProject(p))
		for i := 0; i < 5; i++ {
			store.addTicket(testTicket(p*100+i, p))
		}
	}

	runner := newFakeRunner()

	// A single slot forces the projects to share; the rotating probe offset
	// must still reach all of them.
	sched := newTestScheduler(store, runner, nil, func(cfg *config.SchedulerConfig) {
		cfg.MaxParallelProjects = 1
	})
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return len(store.claimedProjects()) == 4
	}, 5*time.Second, 10*time.Millisecond)
}

func TestScheduler_RateLimitBackoff(t *testing.T) {
	store := newFakeStore()
	store.addProject(testProject(1))
	store.addTicket(testTicket(10, 1))

	runner := newFakeRunner()
	runner.outcomes[10] = &agent.Outcome{Result: agent.ResultRateLimited, ExitCode: 1, Detail: "429 too many requests"}

	sched := newTestScheduler(store, runner, nil)
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return len(store.rateLimitCalls()) == 1
	}, 3*time.Second, 10*time.Millisecond)

	rl := store.rateLimitCalls()[0]
	assert.Equal(t, 10, rl.ticketID)
	assert.Equal(t, 30*time.Minute, rl.cooldown)

	// Upstream throttling must not spend a retry.
	assert.Empty(t, store.failureCalls())

	finished := store.finishedCalls()
	require.Len(t, finished, 1)
	assert.Equal(t, executionsession.StatusFailed, finished[0].status)

	msgs := store.appendedMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "rate limit")
}

func TestScheduler_SpawnFailureSpendsRetry(t *testing.T) {
	store := newFakeStore()
	store.addProject(testProject(1))
	store.addTicket(testTicket(10, 1))

	runner := newFakeRunner()
	runner.startErr[10] = fmt.Errorf("binary not found")

	sched := newTestScheduler(store, runner, nil)
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return len(store.failureCalls()) >= 1
	}, 3*time.Second, 10*time.Millisecond)

	fail := store.failureCalls()[0]
	assert.Equal(t, 10, fail.ticketID)
	assert.Equal(t, 5*time.Minute, fail.cooldown)

	finished := store.finishedCalls()
	require.NotEmpty(t, finished)
	assert.Equal(t, executionsession.StatusFailed, finished[0].status)
	require.NotNil(t, finished[0].errMsg)
	assert.Contains(t, *finished[0].errMsg, "spawning agent")

	msgs := store.appendedMessages()
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[0].Content, "Agent run failed")
}

func TestScheduler_StopTicket(t *testing.T) {
	store := newFakeStore()
	store.addProject(testProject(1))
	store.addTicket(testTicket(10, 1))

	runner := newFakeRunner()
	runner.blocking[10] = true

	sched := newTestScheduler(store, runner, nil)
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return sched.Running(10)
	}, 3*time.Second, 10*time.Millisecond)

	require.True(t, sched.StopTicket(10, "user requested stop"))

	require.Eventually(t, func() bool {
		return len(store.finishedCalls()) == 1
	}, 3*time.Second, 10*time.Millisecond)

	finished := store.finishedCalls()[0]
	assert.Equal(t, executionsession.StatusStopped, finished.status)

	await := store.awaitingCalls()
	require.Len(t, await, 1)
	require.NotNil(t, await[0].reason)
	assert.Equal(t, ticket.AwaitingReasonStopped, *await[0].reason)
	assert.Nil(t, await[0].reviewAt)
	assert.Contains(t, store.cancelledIDs(), 10)

	msgs := store.appendedMessages()
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[len(msgs)-1].Content, "user requested stop")

	assert.False(t, sched.StopTicket(999, "nothing there"))
}

func TestScheduler_InjectMessage(t *testing.T) {
	store := newFakeStore()
	store.addProject(testProject(1))
	store.addTicket(testTicket(10, 1))

	runner := newFakeRunner()
	runner.blocking[10] = true

	sched := newTestScheduler(store, runner, nil)
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return runner.exec(10) != nil
	}, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, sched.InjectMessage(10, "also bump the changelog"))

	// The injection may sit queued until the worker attaches its execution.
	require.Eventually(t, func() bool {
		msgs := runner.exec(10).injectedMsgs()
		return len(msgs) == 1 && msgs[0] == "also bump the changelog"
	}, 3*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, sched.InjectMessage(999, "nobody home"), ErrNotRunning)

	runner.releaseAll()
}

func TestScheduler_Health(t *testing.T) {
	store := newFakeStore()
	store.orphans = 2
	store.counts[ticket.StatusOpen] = 4
	store.addProject(testProject(1))
	store.addTicket(testTicket(10, 1))

	runner := newFakeRunner()
	runner.blocking[10] = true

	sched := newTestScheduler(store, runner, nil)
	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	defer sched.Stop()
	defer cancel()

	require.Eventually(t, func() bool {
		return sched.Running(10)
	}, 3*time.Second, 10*time.Millisecond)

	h := sched.Health(context.Background())
	assert.True(t, h.Running)
	assert.Equal(t, 1, h.ActiveWorkers)
	assert.Equal(t, 3, h.MaxWorkers)
	assert.Equal(t, []int{10}, h.ActiveTickets)
	assert.Equal(t, 4, h.QueueDepth)
	assert.Equal(t, 2, h.OrphansRecovered)
	assert.False(t, h.LastOrphanScan.IsZero())

	runner.releaseAll()
}
