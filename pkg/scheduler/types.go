// Package scheduler runs the dispatch loop: each tick it probes active
// projects for eligible tickets, claims the best one per project, and
// supervises a single agent run per claim. At most one worker runs per
// project and at most MaxParallelProjects run globally.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/agent"
	"github.com/fleetworks/conductor/pkg/prompt"
	"github.com/fleetworks/conductor/pkg/services"
)

// ErrNotRunning indicates the ticket has no live agent process. Callers
// typically fall back to persisting the message and reopening the ticket.
var ErrNotRunning = errors.New("ticket has no live agent")

// Store bundles the persistence operations the scheduler and its workers
// drive. The concrete implementation delegates to pkg/services; tests
// substitute an in-memory fake.
type Store interface {
	ActiveProjects(ctx context.Context) ([]*ent.Project, error)
	Project(ctx context.Context, id int) (*ent.Project, error)
	SelectNext(ctx context.Context, projectID int) (*ent.Ticket, error)
	Claim(ctx context.Context, ticketID int) (*ent.ExecutionSession, error)
	CountsByStatus(ctx context.Context) (map[ticket.Status]int, error)
	RecoverOrphans(ctx context.Context) (int, error)

	MarkAwaiting(ctx context.Context, ticketID int, reason *ticket.AwaitingReason, reviewAt *time.Time) error
	RecordFailure(ctx context.Context, ticketID int, cooldown time.Duration) (*ent.Ticket, error)
	RecordRateLimit(ctx context.Context, ticketID int, cooldown time.Duration) error
	CancelReview(ctx context.Context, ticketID int) error

	AppendMessage(ctx context.Context, m services.AppendMessage) (*ent.Message, error)
	FinishSession(ctx context.Context, id string, status executionsession.Status, errMsg *string) error
	RecordUsage(ctx context.Context, sessionID string, usage services.TokenUsage) error
	TouchSession(ctx context.Context, sessionID string) error
	ApprovedPatterns(ctx context.Context, ticketID int) ([]agent.ApprovedPattern, error)
}

// EnvelopeBuilder assembles the prompt for one ticket.
type EnvelopeBuilder interface {
	BuildEnvelope(ctx context.Context, t *ent.Ticket) (*prompt.Envelope, error)
}

// Execution is one live agent run as seen by the scheduler.
type Execution interface {
	Wait() *agent.Outcome
	Inject(msg string) error
	Stop(reason string)
	Done() <-chan struct{}
}

// Runner spawns agent processes. The production implementation wraps
// agent.Runner; tests use a fake that scripts events and outcomes.
type Runner interface {
	Start(ctx context.Context, spec agent.RunSpec) (Execution, error)
}

// processRunner lifts the concrete agent runner into the Runner interface.
type processRunner struct {
	r *agent.Runner
}

// AdaptRunner wraps an agent.Runner for use by the scheduler.
func AdaptRunner(r *agent.Runner) Runner {
	return processRunner{r: r}
}

func (p processRunner) Start(ctx context.Context, spec agent.RunSpec) (Execution, error) {
	ex, err := p.r.Start(ctx, spec)
	if err != nil {
		return nil, err
	}
	return ex, nil
}

// Notifier mirrors significant ticket outcomes to external chat channels.
// Implementations must be safe for concurrent use; a nil Notifier disables
// notifications.
type Notifier interface {
	TicketAwaiting(ctx context.Context, t *ent.Ticket, reason string)
	TicketFailed(ctx context.Context, t *ent.Ticket, detail string)
	TicketStuck(ctx context.Context, t *ent.Ticket, reason string)
}

// ModelNames maps ticket model tiers to concrete model identifiers passed to
// the agent binary.
type ModelNames struct {
	Fast  string
	Smart string
}

// Health is a point-in-time snapshot of the dispatch loop.
type Health struct {
	Running          bool      `json:"running"`
	ActiveWorkers    int       `json:"active_workers"`
	MaxWorkers       int       `json:"max_workers"`
	ActiveTickets    []int     `json:"active_tickets"`
	QueueDepth       int       `json:"queue_depth"`
	LastTick         time.Time `json:"last_tick"`
	LastOrphanScan   time.Time `json:"last_orphan_scan"`
	OrphansRecovered int       `json:"orphans_recovered"`
}
