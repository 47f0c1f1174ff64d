package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/ticket"
)

// TokenUsage carries one usage report from the agent stream.
type TokenUsage struct {
	InputTokens         int64
	OutputTokens        int64
	CacheReadTokens     int64
	CacheCreationTokens int64
}

// SessionService manages execution sessions: the per-invocation record of an
// agent run and its token accounting.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// Get returns a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*ent.ExecutionSession, error) {
	sess, err := s.client.ExecutionSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	return sess, nil
}

// Finish closes a running session with its terminal status and optional
// error. Conditional on still being running so a crash-recovery sweep and a
// live worker cannot both close the same session.
func (s *SessionService) Finish(ctx context.Context, id string, status executionsession.Status, errMsg *string) error {
	if status == executionsession.StatusRunning {
		return NewValidationError("status", "finish requires a terminal status")
	}
	if err := executionsession.StatusValidator(status); err != nil {
		return NewValidationError("status", err.Error())
	}

	n, err := s.client.ExecutionSession.Update().
		Where(
			executionsession.IDEQ(id),
			executionsession.StatusEQ(executionsession.StatusRunning),
		).
		SetStatus(status).
		SetNillableErrorMessage(errMsg).
		SetEndedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish session %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("session %s is not running: %w", id, ErrInvalidTransition)
	}
	return nil
}

// RecordUsage rolls one usage report into the session, its ticket, and the
// ticket's project in a single transaction. api_calls counts the reports.
func (s *SessionService) RecordUsage(ctx context.Context, id string, usage TokenUsage) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sess, err := tx.ExecutionSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to load session %s: %w", id, err)
	}

	if err := tx.ExecutionSession.UpdateOneID(id).
		AddInputTokens(usage.InputTokens).
		AddOutputTokens(usage.OutputTokens).
		AddCacheReadTokens(usage.CacheReadTokens).
		AddCacheCreationTokens(usage.CacheCreationTokens).
		AddAPICalls(1).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update session usage: %w", err)
	}

	t, err := tx.Ticket.Get(ctx, sess.TicketID)
	if err != nil {
		return fmt.Errorf("failed to load ticket %d: %w", sess.TicketID, err)
	}
	// Cache reads and creations are prompt-side tokens.
	input := usage.InputTokens + usage.CacheReadTokens + usage.CacheCreationTokens
	if err := tx.Ticket.UpdateOneID(t.ID).
		AddTotalTokens(input + usage.OutputTokens).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update ticket usage: %w", err)
	}
	if err := tx.Project.UpdateOneID(t.ProjectID).
		AddTotalInputTokens(input).
		AddTotalOutputTokens(usage.OutputTokens).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update project usage: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit usage: %w", err)
	}
	return nil
}

// TouchOutput records agent liveness. Called on every stdout event; the
// watchdog and orphan sweeps read last_output_at.
func (s *SessionService) TouchOutput(ctx context.Context, id string) error {
	err := s.client.ExecutionSession.UpdateOneID(id).
		SetLastOutputAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to touch session %s: %w", id, err)
	}
	return nil
}

// Running returns all sessions still marked running, oldest first.
func (s *SessionService) Running(ctx context.Context) ([]*ent.ExecutionSession, error) {
	sessions, err := s.client.ExecutionSession.Query().
		Where(executionsession.StatusEQ(executionsession.StatusRunning)).
		Order(ent.Asc(executionsession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list running sessions: %w", err)
	}
	return sessions, nil
}

// LatestByTicket returns a ticket's most recent session, or ErrNotFound when
// it has never run.
func (s *SessionService) LatestByTicket(ctx context.Context, ticketID int) (*ent.ExecutionSession, error) {
	sess, err := s.client.ExecutionSession.Query().
		Where(executionsession.TicketIDEQ(ticketID)).
		Order(ent.Desc(executionsession.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %d has no sessions: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load latest session: %w", err)
	}
	return sess, nil
}

// PruneFinished deletes finished sessions that ended before the cutoff and
// returns the count. Running sessions are never touched. Token totals are
// rolled up on tickets and projects, so dropping session rows loses no
// accounting.
func (s *SessionService) PruneFinished(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.ExecutionSession.Delete().
		Where(
			executionsession.StatusNEQ(executionsession.StatusRunning),
			executionsession.EndedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune finished sessions: %w", err)
	}
	return n, nil
}

// RecoverOrphans closes sessions left running by a previous process and
// returns their tickets to the queue. Runs once at startup before any worker
// starts; the claimed-but-dead tickets become immediately dispatchable.
func (s *SessionService) RecoverOrphans(ctx context.Context) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	orphans, err := tx.ExecutionSession.Query().
		Where(executionsession.StatusEQ(executionsession.StatusRunning)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list orphaned sessions: %w", err)
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	msg := "daemon restarted while session was running"
	now := time.Now().UTC()
	ticketIDs := make([]int, 0, len(orphans))
	for _, o := range orphans {
		if err := tx.ExecutionSession.UpdateOneID(o.ID).
			SetStatus(executionsession.StatusFailed).
			SetErrorMessage(msg).
			SetEndedAt(now).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to close orphaned session %s: %w", o.ID, err)
		}
		ticketIDs = append(ticketIDs, o.TicketID)
	}

	// Reopen without spending a retry: the process died, not the ticket.
	if _, err := tx.Ticket.Update().
		Where(
			ticket.IDIn(ticketIDs...),
			ticket.StatusEQ(ticket.StatusInProgress),
		).
		SetStatus(ticket.StatusOpen).
		ClearAwaitingReason().
		ClearRetryAfter().
		Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to reopen orphaned tickets: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit orphan recovery: %w", err)
	}
	return len(orphans), nil
}
