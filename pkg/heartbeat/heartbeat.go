// Package heartbeat keeps the daemon_status singleton fresh and optionally
// maintains a liveness file for process supervisors.
package heartbeat

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fleetworks/conductor/ent/daemonstatus"
	"github.com/fleetworks/conductor/pkg/scheduler"
	"github.com/fleetworks/conductor/pkg/services"
)

// stopBeatTimeout bounds the final "stopping" beat during shutdown.
const stopBeatTimeout = 3 * time.Second

// Service periodically publishes the scheduler snapshot to the database so
// external monitors can tell a live daemon from a dead one.
type Service struct {
	interval time.Duration
	filePath string
	status   *services.StatusService
	tickets  *services.TicketService
	health   func() scheduler.Health
	version  string
	started  time.Time
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the heartbeat service. health is the scheduler's
// snapshot function.
func NewService(
	interval time.Duration,
	filePath string,
	status *services.StatusService,
	tickets *services.TicketService,
	health func() scheduler.Health,
	version string,
	logger *slog.Logger,
) *Service {
	return &Service{
		interval: interval,
		filePath: filePath,
		status:   status,
		tickets:  tickets,
		health:   health,
		version:  version,
		logger:   logger.With("component", "heartbeat"),
	}
}

// Start launches the heartbeat loop and records the first beat immediately.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.started = time.Now().UTC()

	go s.run(ctx)

	s.logger.Info("Heartbeat started", "interval", s.interval, "file", s.filePath)
}

// Stop halts the loop and records a final stopping beat so monitors see a
// clean shutdown rather than a missed heartbeat.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done

	ctx, cancel := context.WithTimeout(context.Background(), stopBeatTimeout)
	defer cancel()
	s.beat(ctx, daemonstatus.StatusStopping)
	s.logger.Info("Heartbeat stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.beat(ctx, daemonstatus.StatusRunning)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.beat(ctx, daemonstatus.StatusRunning)
		}
	}
}

func (s *Service) beat(ctx context.Context, st daemonstatus.Status) {
	h := s.health()
	hb := services.Heartbeat{
		Status:         st,
		ActiveTickets:  len(h.ActiveTickets),
		CurrentTickets: s.ticketNumbers(ctx, h.ActiveTickets),
		StartedAt:      s.started,
		Version:        s.version,
	}
	if err := s.status.Beat(ctx, hb); err != nil {
		s.logger.Error("Failed to record heartbeat", "error", err)
	}
	s.touchFile()
}

// ticketNumbers resolves ticket IDs to their human-facing numbers; a lookup
// failure degrades to "#<id>" rather than dropping the entry.
func (s *Service) ticketNumbers(ctx context.Context, ids []int) []string {
	numbers := make([]string, 0, len(ids))
	for _, id := range ids {
		t, err := s.tickets.Get(ctx, id)
		if err != nil {
			numbers = append(numbers, fmt.Sprintf("#%d", id))
			continue
		}
		numbers = append(numbers, t.TicketNumber)
	}
	return numbers
}

// touchFile writes the liveness file atomically (tmp + rename) so a reader
// never sees a partial write.
func (s *Service) touchFile() {
	if s.filePath == "" {
		return
	}
	payload := fmt.Sprintf("%d %s\n", os.Getpid(), time.Now().UTC().Format(time.RFC3339))
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, []byte(payload), 0o644); err != nil {
		s.logger.Warn("Failed to write liveness file", "path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		s.logger.Warn("Failed to publish liveness file", "path", s.filePath, "error", err)
	}
}

// Check reads a liveness file and reports an error when it is missing,
// malformed, or older than maxAge. Lets the CLI answer "is the daemon up"
// without a database connection.
func Check(path string, maxAge time.Duration) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("liveness file: %w", err)
	}
	fields := strings.Fields(string(raw))
	if len(fields) != 2 {
		return fmt.Errorf("liveness file %s: malformed content", path)
	}
	ts, err := time.Parse(time.RFC3339, fields[1])
	if err != nil {
		return fmt.Errorf("liveness file %s: bad timestamp: %w", path, err)
	}
	if age := time.Since(ts); age > maxAge {
		return fmt.Errorf("daemon heartbeat is %s old (pid %s)", age.Round(time.Second), fields[0])
	}
	return nil
}
