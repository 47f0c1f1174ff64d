// Package cleanup enforces retention policies: tickets parked past the
// review deadline are closed out, and finished execution sessions past the
// retention window are deleted.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/services"
)

const staleBatch = 50

// Service runs the retention loop. All operations are idempotent; a missed
// sweep is caught up by the next one.
type Service struct {
	cfg          config.RetentionConfig
	deadlineDays int
	tickets      *services.TicketService
	sessions     *services.SessionService
	messages     *services.MessageService
	logger       *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the cleanup service. deadlineDays is how long an
// awaiting ticket may sit without activity before being closed; zero
// disables that sweep.
func NewService(
	cfg config.RetentionConfig,
	deadlineDays int,
	tickets *services.TicketService,
	sessions *services.SessionService,
	messages *services.MessageService,
	logger *slog.Logger,
) *Service {
	return &Service{
		cfg:          cfg,
		deadlineDays: deadlineDays,
		tickets:      tickets,
		sessions:     sessions,
		messages:     messages,
		logger:       logger.With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"session_retention_days", s.cfg.SessionRetentionDays,
		"review_deadline_days", s.deadlineDays,
		"interval", s.cfg.SweepInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.closeExpiredAwaiting(ctx)
	s.pruneSessions(ctx)
}

// closeExpiredAwaiting closes awaiting tickets nobody has touched within the
// review deadline. The close is conditional, so a ticket revived between the
// query and the update is left alone.
func (s *Service) closeExpiredAwaiting(ctx context.Context) {
	if s.deadlineDays <= 0 {
		return
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.deadlineDays)
	stale, err := s.tickets.StaleAwaiting(ctx, cutoff, staleBatch)
	if err != nil {
		s.logger.Error("Retention: stale awaiting query failed", "error", err)
		return
	}

	closed := 0
	for _, t := range stale {
		if _, err := s.tickets.Close(ctx, t.ID); err != nil {
			s.logger.Debug("Retention: skipping ticket that moved on",
				"ticket", t.TicketNumber, "error", err)
			continue
		}
		note := fmt.Sprintf("Closed automatically after %d days without a reply.", s.deadlineDays)
		if _, err := s.messages.Append(ctx, services.AppendMessage{
			TicketID: t.ID,
			Role:     message.RoleSystem,
			Content:  note,
		}); err != nil {
			s.logger.Error("Retention: failed to record auto-close note",
				"ticket", t.TicketNumber, "error", err)
		}
		closed++
	}
	if closed > 0 {
		s.logger.Info("Retention: closed stale awaiting tickets", "count", closed)
	}
}

func (s *Service) pruneSessions(ctx context.Context) {
	if s.cfg.SessionRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.SessionRetentionDays)
	count, err := s.sessions.PruneFinished(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: session prune failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: pruned finished sessions", "count", count)
	}
}
