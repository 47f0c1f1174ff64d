package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/services"
)

// Deps carries the collaborators a Scheduler needs. Notifier may be nil.
type Deps struct {
	Store    Store
	Builder  EnvelopeBuilder
	Runner   Runner
	Bus      *bus.Bus
	Notifier Notifier
	Logger   *slog.Logger

	Models ModelNames

	// ReviewDelay is how long after a completed agent turn the reviewer
	// examines the ticket.
	ReviewDelay time.Duration
}

// Scheduler owns the dispatch loop and the registry of live workers.
type Scheduler struct {
	cfg      config.SchedulerConfig
	store    Store
	builder  EnvelopeBuilder
	runner   Runner
	bus      *bus.Bus
	notifier Notifier
	logger   *slog.Logger

	models      ModelNames
	reviewDelay time.Duration

	slots    chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu               sync.Mutex
	started          bool
	byProject        map[int]*worker
	byTicket         map[int]*worker
	probeOffset      int
	lastTick         time.Time
	lastOrphanScan   time.Time
	orphansRecovered int
}

// New creates a stopped scheduler.
func New(cfg config.SchedulerConfig, deps Deps) *Scheduler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	max := cfg.MaxParallelProjects
	if max < 1 {
		max = 1
	}
	return &Scheduler{
		cfg:         cfg,
		store:       deps.Store,
		builder:     deps.Builder,
		runner:      deps.Runner,
		bus:         deps.Bus,
		notifier:    deps.Notifier,
		logger:      logger.With("component", "scheduler"),
		models:      deps.Models,
		reviewDelay: deps.ReviewDelay,
		slots:       make(chan struct{}, max),
		stopCh:      make(chan struct{}),
		byProject:   make(map[int]*worker),
		byTicket:    make(map[int]*worker),
	}
}

// Start recovers orphaned sessions from a previous process and begins the
// tick loop. Safe to call once; subsequent calls are no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		s.logger.Warn("Scheduler already started, ignoring duplicate Start call")
		return
	}
	s.started = true
	s.mu.Unlock()

	recovered, err := s.store.RecoverOrphans(ctx)
	if err != nil {
		s.logger.Error("Orphan recovery failed", "error", err)
	} else if recovered > 0 {
		s.logger.Info("Recovered orphaned sessions", "count", recovered)
	}
	s.mu.Lock()
	s.lastOrphanScan = time.Now().UTC()
	s.orphansRecovered = recovered
	s.mu.Unlock()

	s.logger.Info("Scheduler started",
		"tick_interval", s.cfg.TickInterval, "max_parallel_projects", cap(s.slots))

	s.wg.Add(1)
	go s.run(ctx)
}

// Stop halts dispatch and waits up to ShutdownGrace for in-flight workers.
// Workers stop when the context passed to Start is cancelled; cancel first,
// then Stop.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info("Scheduler stopped")
	case <-time.After(s.cfg.ShutdownGrace):
		s.logger.Warn("Workers still running after shutdown grace, abandoning",
			"grace", s.cfg.ShutdownGrace, "active", len(s.activeTickets()))
	}
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick probes projects in rotating order and dispatches at most one new
// worker per project. The rotation keeps a project with a deep queue from
// starving the rest at the global cap.
func (s *Scheduler) tick(ctx context.Context) {
	s.mu.Lock()
	s.lastTick = time.Now().UTC()
	offset := s.probeOffset
	s.probeOffset++
	s.mu.Unlock()

	projects, err := s.store.ActiveProjects(ctx)
	if err != nil {
		s.logger.Error("Listing active projects failed", "error", err)
		return
	}
	if len(projects) == 0 {
		return
	}

	for i := 0; i < len(projects); i++ {
		p := projects[(offset+i)%len(projects)]
		if s.hasWorker(p.ID) {
			continue
		}
		select {
		case s.slots <- struct{}{}:
		default:
			// Global cap reached; nothing more to do this tick.
			return
		}
		if !s.dispatch(ctx, p) {
			<-s.slots
		}
	}
}

// dispatch selects, claims, and hands one ticket to a new worker. Returns
// false when the acquired slot went unused.
func (s *Scheduler) dispatch(ctx context.Context, p *ent.Project) bool {
	t, err := s.store.SelectNext(ctx, p.ID)
	if err != nil {
		if !errors.Is(err, services.ErrNoEligibleTickets) {
			s.logger.Error("Ticket selection failed", "project_id", p.ID, "error", err)
		}
		return false
	}

	sess, err := s.store.Claim(ctx, t.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotClaimable) {
			// Lost the race to another writer; the next tick moves on.
			s.logger.Debug("Ticket no longer claimable", "ticket_id", t.ID)
		} else {
			s.logger.Error("Ticket claim failed", "ticket_id", t.ID, "error", err)
		}
		return false
	}

	w := &worker{
		store:             s.store,
		builder:           s.builder,
		runner:            s.runner,
		bus:               s.bus,
		notifier:          s.notifier,
		logger:            s.logger.With("ticket_id", t.ID, "ticket", t.TicketNumber, "session_id", sess.ID),
		models:            s.models,
		retryCooldown:     s.cfg.RetryCooldown,
		rateLimitCooldown: s.cfg.RateLimitCooldown,
		reviewDelay:       s.reviewDelay,
		project:           p,
		ticket:            t,
		session:           sess,
		done:              func() { s.release(p.ID, t.ID) },
	}

	s.mu.Lock()
	s.byProject[p.ID] = w
	s.byTicket[t.ID] = w
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.PublishTicket(t.ID, bus.TypeDispatch, map[string]any{
			"project_id":    p.ID,
			"ticket_number": t.TicketNumber,
			"session_id":    sess.ID,
		})
	}
	s.logger.Info("Dispatching ticket",
		"project_id", p.ID, "ticket", t.TicketNumber, "session_id", sess.ID)

	s.wg.Add(1)
	go w.run(ctx)
	return true
}

// release frees a worker's registry entries and slot. Runs after the worker
// has finished all bookkeeping, so the next tick can re-select the project.
func (s *Scheduler) release(projectID, ticketID int) {
	s.mu.Lock()
	delete(s.byProject, projectID)
	delete(s.byTicket, ticketID)
	s.mu.Unlock()
	<-s.slots
	s.wg.Done()
}

func (s *Scheduler) hasWorker(projectID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byProject[projectID]
	return ok
}

// StopTicket requests termination of a ticket's live run. The kill runs
// asynchronously; the worker records the outcome when the process is gone.
// Returns false when the ticket has no live worker.
func (s *Scheduler) StopTicket(ticketID int, reason string) bool {
	s.mu.Lock()
	w := s.byTicket[ticketID]
	s.mu.Unlock()
	if w == nil {
		return false
	}
	go w.requestStop(reason)
	return true
}

// InjectMessage relays a user message to a ticket's live agent. Returns
// ErrNotRunning when no worker holds the ticket.
func (s *Scheduler) InjectMessage(ticketID int, msg string) error {
	s.mu.Lock()
	w := s.byTicket[ticketID]
	s.mu.Unlock()
	if w == nil {
		return ErrNotRunning
	}
	return w.inject(msg)
}

// Running reports whether a ticket currently has a live worker.
func (s *Scheduler) Running(ticketID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byTicket[ticketID] != nil
}

func (s *Scheduler) activeTickets() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.byTicket))
	for id := range s.byTicket {
		ids = append(ids, id)
	}
	return ids
}

// Health snapshots the dispatch loop for the status endpoint.
func (s *Scheduler) Health(ctx context.Context) Health {
	s.mu.Lock()
	h := Health{
		Running:          s.started,
		ActiveWorkers:    len(s.byTicket),
		MaxWorkers:       cap(s.slots),
		LastTick:         s.lastTick,
		LastOrphanScan:   s.lastOrphanScan,
		OrphansRecovered: s.orphansRecovered,
	}
	for id := range s.byTicket {
		h.ActiveTickets = append(h.ActiveTickets, id)
	}
	s.mu.Unlock()

	counts, err := s.store.CountsByStatus(ctx)
	if err != nil {
		s.logger.Error("Queue depth query failed", "error", err)
	} else {
		h.QueueDepth = counts[ticket.StatusOpen]
	}
	return h
}
