package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/ent/ticketdependency"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	// resultSummaryMax mirrors the schema MaxLen on result_summary.
	resultSummaryMax = 2000
)

// TicketService manages the ticket lifecycle: creation, selection, claiming,
// and every status transition. All transitions are conditional updates so
// concurrent actors cannot double-apply them.
type TicketService struct {
	client *ent.Client
}

// NewTicketService creates a new TicketService.
func NewTicketService(client *ent.Client) *TicketService {
	return &TicketService{client: client}
}

// Create files a ticket, allocating its {CODE}-NNNN number from the project's
// sequence under a row lock so concurrent creates never collide.
func (s *TicketService) Create(ctx context.Context, req models.CreateTicketRequest) (*ent.Ticket, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.MaxRetries != nil && *req.MaxRetries < 0 {
		return nil, NewValidationError("max_retries", "must be non-negative")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	proj, err := tx.Project.Query().
		Where(project.IDEQ(req.ProjectID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("project %d: %w", req.ProjectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load project %d: %w", req.ProjectID, err)
	}
	if proj.Archived {
		return nil, NewValidationError("project_id", "project is archived")
	}

	seq := proj.NextTicketSeq
	number := fmt.Sprintf("%s-%04d", proj.Code, seq)
	if err := tx.Project.UpdateOneID(proj.ID).SetNextTicketSeq(seq + 1).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to advance ticket sequence: %w", err)
	}

	if req.ParentTicketID != nil {
		parent, err := tx.Ticket.Get(ctx, *req.ParentTicketID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, NewValidationError("parent_ticket_id", fmt.Sprintf("ticket %d not found", *req.ParentTicketID))
			}
			return nil, fmt.Errorf("failed to load parent ticket: %w", err)
		}
		if parent.ProjectID != proj.ID {
			return nil, NewValidationError("parent_ticket_id", "parent belongs to a different project")
		}
	}

	builder := tx.Ticket.Create().
		SetProjectID(proj.ID).
		SetTicketNumber(number).
		SetTitle(req.Title).
		SetIsForced(req.IsForced).
		SetDepsIncludeAwaiting(req.DepsIncludeAwaiting).
		SetNillableSequenceOrder(req.SequenceOrder).
		SetNillableParentTicketID(req.ParentTicketID)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.Type != "" {
		tt := ticket.TicketType(req.Type)
		if err := ticket.TicketTypeValidator(tt); err != nil {
			return nil, NewValidationError("type", err.Error())
		}
		builder.SetTicketType(tt)
	}
	if req.Priority != "" {
		p := ticket.Priority(req.Priority)
		if err := ticket.PriorityValidator(p); err != nil {
			return nil, NewValidationError("priority", err.Error())
		}
		builder.SetPriority(p)
	}
	if req.ExecutionMode != "" {
		mode := ticket.ExecutionMode(req.ExecutionMode)
		if err := ticket.ExecutionModeValidator(mode); err != nil {
			return nil, NewValidationError("execution_mode", err.Error())
		}
		builder.SetExecutionMode(mode)
	}
	if req.ModelTier != "" {
		tier := ticket.ModelTier(req.ModelTier)
		if err := ticket.ModelTierValidator(tier); err != nil {
			return nil, NewValidationError("model_tier", err.Error())
		}
		builder.SetModelTier(tier)
	}
	if req.MaxRetries != nil {
		builder.SetMaxRetries(*req.MaxRetries)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	seen := make(map[int]bool, len(req.DependsOn))
	for _, depID := range req.DependsOn {
		if seen[depID] {
			continue
		}
		seen[depID] = true
		dep, err := tx.Ticket.Get(ctx, depID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, NewValidationError("depends_on", fmt.Sprintf("ticket %d not found", depID))
			}
			return nil, fmt.Errorf("failed to load dependency %d: %w", depID, err)
		}
		if dep.ProjectID != proj.ID {
			return nil, NewValidationError("depends_on", "cross-project dependencies are not allowed")
		}
		if err := tx.TicketDependency.Create().
			SetTicketID(created.ID).
			SetDependsOnTicketID(depID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to create dependency on %d: %w", depID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ticket creation: %w", err)
	}
	return created, nil
}

// Get returns a ticket by ID.
func (s *TicketService) Get(ctx context.Context, id int) (*ent.Ticket, error) {
	t, err := s.client.Ticket.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ticket %d: %w", id, err)
	}
	return t, nil
}

// GetByNumber returns a ticket by its human-facing number with the project
// edge loaded.
func (s *TicketService) GetByNumber(ctx context.Context, number string) (*ent.Ticket, error) {
	t, err := s.client.Ticket.Query().
		Where(ticket.TicketNumberEQ(number)).
		WithProject().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %s: %w", number, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ticket %s: %w", number, err)
	}
	return t, nil
}

// List returns tickets matching the filters plus the unpaginated total.
func (s *TicketService) List(ctx context.Context, f models.TicketFilters) ([]*ent.Ticket, int, error) {
	q := s.client.Ticket.Query()
	if f.ProjectID != nil {
		q = q.Where(ticket.ProjectIDEQ(*f.ProjectID))
	}
	if len(f.Statuses) > 0 {
		statuses := make([]ticket.Status, 0, len(f.Statuses))
		for _, raw := range f.Statuses {
			st := ticket.Status(raw)
			if err := ticket.StatusValidator(st); err != nil {
				return nil, 0, NewValidationError("status", err.Error())
			}
			statuses = append(statuses, st)
		}
		q = q.Where(ticket.StatusIn(statuses...))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	tickets, err := q.
		Order(ent.Desc(ticket.FieldID)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, total, nil
}

// InProgress returns every ticket currently claimed by a worker.
func (s *TicketService) InProgress(ctx context.Context) ([]*ent.Ticket, error) {
	tickets, err := s.client.Ticket.Query().
		Where(ticket.StatusEQ(ticket.StatusInProgress)).
		Order(ent.Asc(ticket.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list in-progress tickets: %w", err)
	}
	return tickets, nil
}

// Queue returns a project's eligible tickets in dispatch order.
func (s *TicketService) Queue(ctx context.Context, projectID int) ([]*ent.Ticket, error) {
	return s.selectEligible(ctx, projectID)
}

// SelectNext returns the highest-precedence eligible ticket for a project, or
// ErrNoEligibleTickets. Selection is advisory: Claim re-validates the status
// transactionally before any work starts.
func (s *TicketService) SelectNext(ctx context.Context, projectID int) (*ent.Ticket, error) {
	eligible, err := s.selectEligible(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligibleTickets
	}
	return eligible[0], nil
}

func (s *TicketService) selectEligible(ctx context.Context, projectID int) ([]*ent.Ticket, error) {
	now := time.Now().UTC()
	candidates, err := s.client.Ticket.Query().
		Where(
			ticket.ProjectIDEQ(projectID),
			ticket.StatusEQ(ticket.StatusOpen),
			ticket.Or(ticket.RetryAfterIsNil(), ticket.RetryAfterLTE(now)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates for project %d: %w", projectID, err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]int, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	deps, err := s.client.TicketDependency.Query().
		Where(ticketdependency.TicketIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dependencies: %w", err)
	}

	dependsOn := make(map[int][]int)
	referenced := make(map[int]struct{})
	for _, d := range deps {
		dependsOn[d.TicketID] = append(dependsOn[d.TicketID], d.DependsOnTicketID)
		referenced[d.DependsOnTicketID] = struct{}{}
	}
	for _, c := range candidates {
		if c.ParentTicketID != nil {
			referenced[*c.ParentTicketID] = struct{}{}
		}
	}

	statusOf := make(map[int]ticket.Status, len(referenced))
	if len(referenced) > 0 {
		refIDs := make([]int, 0, len(referenced))
		for id := range referenced {
			refIDs = append(refIDs, id)
		}
		rows, err := s.client.Ticket.Query().
			Where(ticket.IDIn(refIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load referenced tickets: %w", err)
		}
		for _, r := range rows {
			statusOf[r.ID] = r.Status
		}
	}

	var eligible []*ent.Ticket
	for _, c := range candidates {
		if isEligible(c, dependsOn[c.ID], statusOf, now) {
			eligible = append(eligible, c)
		}
	}
	sortByDispatchOrder(eligible)
	return eligible, nil
}

// Claim atomically moves an open ticket to in_progress and opens its
// execution session. The conditional update is the real dispatch gate: two
// schedulers racing on the same ticket leave exactly one winner.
func (s *TicketService) Claim(ctx context.Context, ticketID int) (*ent.ExecutionSession, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StatusEQ(ticket.StatusOpen)).
		SetStatus(ticket.StatusInProgress).
		ClearAwaitingReason().
		ClearRetryAfter().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim ticket %d: %w", ticketID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("ticket %d: %w", ticketID, ErrNotClaimable)
	}

	sess, err := tx.ExecutionSession.Create().
		SetID(uuid.NewString()).
		SetTicketID(ticketID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// One-running-per-ticket partial unique index.
			return nil, fmt.Errorf("ticket %d already has a running session: %w", ticketID, ErrNotClaimable)
		}
		return nil, fmt.Errorf("failed to create session for ticket %d: %w", ticketID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return sess, nil
}

// MarkAwaiting parks an in-progress ticket in awaiting_input with the given
// reason and optional review schedule. Review attempts restart from zero.
func (s *TicketService) MarkAwaiting(ctx context.Context, ticketID int, reason *ticket.AwaitingReason, reviewAt *time.Time) error {
	upd := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StatusEQ(ticket.StatusInProgress)).
		SetStatus(ticket.StatusAwaitingInput).
		SetNillableAwaitingReason(reason).
		SetReviewAttempts(0)
	if reviewAt != nil {
		upd.SetReviewScheduledAt(*reviewAt)
	} else {
		upd.ClearReviewScheduledAt()
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark ticket %d awaiting: %w", ticketID, err)
	}
	if n == 0 {
		return fmt.Errorf("ticket %d is not in progress: %w", ticketID, ErrInvalidTransition)
	}
	return nil
}

// MarkStuck moves an in-progress ticket to the stuck status.
func (s *TicketService) MarkStuck(ctx context.Context, ticketID int) error {
	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StatusEQ(ticket.StatusInProgress)).
		SetStatus(ticket.StatusStuck).
		ClearReviewScheduledAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark ticket %d stuck: %w", ticketID, err)
	}
	if n == 0 {
		return fmt.Errorf("ticket %d is not in progress: %w", ticketID, ErrInvalidTransition)
	}
	return nil
}

// RecordFailure applies the generic failure path: the attempt is spent, the
// ticket cools down, and once retry_count reaches max_retries it parks as
// failed. The in_progress -> failed -> open chain is collapsed into a single
// update so the cooldown and counter move atomically.
func (s *TicketService) RecordFailure(ctx context.Context, ticketID int, cooldown time.Duration) (*ent.Ticket, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Ticket.Query().
		Where(ticket.IDEQ(ticketID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %d: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load ticket %d: %w", ticketID, err)
	}
	if t.Status != ticket.StatusInProgress {
		return nil, fmt.Errorf("record failure on ticket %d in status %s: %w", ticketID, t.Status, ErrInvalidTransition)
	}

	newCount := t.RetryCount + 1
	upd := tx.Ticket.UpdateOneID(ticketID).
		SetRetryCount(newCount).
		ClearReviewScheduledAt()
	if newCount >= t.MaxRetries {
		upd.SetStatus(ticket.StatusFailed).ClearRetryAfter()
	} else {
		upd.SetStatus(ticket.StatusOpen).
			SetRetryAfter(time.Now().UTC().Add(cooldown)).
			ClearAwaitingReason()
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record failure on ticket %d: %w", ticketID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit failure record: %w", err)
	}
	return updated, nil
}

// RecordRateLimit returns a rate-limited ticket to the queue behind a
// cooldown without spending a retry: the failure was upstream capacity, not
// the ticket.
func (s *TicketService) RecordRateLimit(ctx context.Context, ticketID int, cooldown time.Duration) error {
	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StatusEQ(ticket.StatusInProgress)).
		SetStatus(ticket.StatusOpen).
		SetRetryAfter(time.Now().UTC().Add(cooldown)).
		ClearReviewScheduledAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record rate limit on ticket %d: %w", ticketID, err)
	}
	if n == 0 {
		return fmt.Errorf("ticket %d is not in progress: %w", ticketID, ErrInvalidTransition)
	}
	return nil
}

// Reopen returns a parked ticket to the queue, clearing everything that kept
// it parked: awaiting reason, cooldown, and scheduled review.
func (s *TicketService) Reopen(ctx context.Context, ticketID int) (*ent.Ticket, error) {
	t, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(t.Status, ticket.StatusOpen) {
		return nil, fmt.Errorf("cannot reopen ticket %s from %s: %w", t.TicketNumber, t.Status, ErrInvalidTransition)
	}

	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StatusEQ(t.Status)).
		SetStatus(ticket.StatusOpen).
		ClearAwaitingReason().
		ClearRetryAfter().
		ClearReviewScheduledAt().
		SetReviewAttempts(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen ticket %d: %w", ticketID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("ticket %d changed concurrently: %w", ticketID, ErrInvalidTransition)
	}
	return s.Get(ctx, ticketID)
}

// Close finishes an awaiting ticket. For tickets with children the last
// assistant message is distilled into result_summary (filled once) so the
// parent chain can be rendered in descendants' prompts. Dependents parked in
// awaiting_input are annotated deps_ready when this was their last
// unfinished dependency.
func (s *TicketService) Close(ctx context.Context, ticketID int) (*ent.Ticket, error) {
	return s.finish(ctx, ticketID, ticket.StatusDone)
}

// Skip marks a ticket skipped from any non-terminal status.
func (s *TicketService) Skip(ctx context.Context, ticketID int) (*ent.Ticket, error) {
	return s.finish(ctx, ticketID, ticket.StatusSkipped)
}

func (s *TicketService) finish(ctx context.Context, ticketID int, to ticket.Status) (*ent.Ticket, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Ticket.Query().
		Where(ticket.IDEQ(ticketID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %d: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load ticket %d: %w", ticketID, err)
	}
	if !CanTransition(t.Status, to) {
		return nil, fmt.Errorf("cannot move ticket %s from %s to %s: %w", t.TicketNumber, t.Status, to, ErrInvalidTransition)
	}

	upd := tx.Ticket.UpdateOneID(ticketID).
		SetStatus(to).
		ClearAwaitingReason().
		ClearRetryAfter().
		ClearReviewScheduledAt()

	if to == ticket.StatusDone && t.ResultSummary == nil {
		hasChildren, err := tx.Ticket.Query().
			Where(ticket.ParentTicketIDEQ(ticketID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check for children: %w", err)
		}
		if hasChildren {
			last, err := tx.Message.Query().
				Where(message.TicketIDEQ(ticketID), message.RoleEQ(message.RoleAssistant)).
				Order(ent.Desc(message.FieldID)).
				First(ctx)
			if err != nil && !ent.IsNotFound(err) {
				return nil, fmt.Errorf("failed to load final message: %w", err)
			}
			if last != nil {
				upd.SetResultSummary(truncateSummary(last.Content))
			}
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finish ticket %d: %w", ticketID, err)
	}

	if err := markDependentsReady(ctx, tx, ticketID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ticket finish: %w", err)
	}
	return updated, nil
}

// markDependentsReady annotates awaiting dependents of a finished ticket with
// deps_ready once all of their dependencies are terminal, so users see which
// parked tickets are free to resume.
func markDependentsReady(ctx context.Context, tx *ent.Tx, finishedID int) error {
	edges, err := tx.TicketDependency.Query().
		Where(ticketdependency.DependsOnTicketIDEQ(finishedID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dependents: %w", err)
	}

	for _, edge := range edges {
		dependent, err := tx.Ticket.Get(ctx, edge.TicketID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return fmt.Errorf("failed to load dependent %d: %w", edge.TicketID, err)
		}
		if dependent.Status != ticket.StatusAwaitingInput {
			continue
		}

		depEdges, err := tx.TicketDependency.Query().
			Where(ticketdependency.TicketIDEQ(dependent.ID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to load dependencies of %d: %w", dependent.ID, err)
		}
		depIDs := make([]int, 0, len(depEdges))
		for _, d := range depEdges {
			depIDs = append(depIDs, d.DependsOnTicketID)
		}

		unfinished, err := tx.Ticket.Query().
			Where(
				ticket.IDIn(depIDs...),
				ticket.StatusNotIn(ticket.StatusDone, ticket.StatusSkipped),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check dependencies of %d: %w", dependent.ID, err)
		}
		if unfinished {
			continue
		}

		if err := tx.Ticket.UpdateOneID(dependent.ID).
			SetAwaitingReason(ticket.AwaitingReasonDepsReady).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to annotate dependent %d: %w", dependent.ID, err)
		}
	}
	return nil
}

// ScheduleReview sets the auto-review time for an awaiting ticket.
func (s *TicketService) ScheduleReview(ctx context.Context, ticketID int, at time.Time) error {
	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StatusEQ(ticket.StatusAwaitingInput)).
		SetReviewScheduledAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to schedule review for ticket %d: %w", ticketID, err)
	}
	if n == 0 {
		return fmt.Errorf("ticket %d is not awaiting input: %w", ticketID, ErrInvalidTransition)
	}
	return nil
}

// CancelReview clears any scheduled review, typically because a user replied.
func (s *TicketService) CancelReview(ctx context.Context, ticketID int) error {
	err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID)).
		ClearReviewScheduledAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel review for ticket %d: %w", ticketID, err)
	}
	return nil
}

// DueForReview returns awaiting tickets whose review time has passed, oldest
// first.
func (s *TicketService) DueForReview(ctx context.Context, now time.Time, limit int) ([]*ent.Ticket, error) {
	tickets, err := s.client.Ticket.Query().
		Where(
			ticket.StatusEQ(ticket.StatusAwaitingInput),
			ticket.ReviewScheduledAtNotNil(),
			ticket.ReviewScheduledAtLTE(now),
		).
		Order(ent.Asc(ticket.FieldReviewScheduledAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load due reviews: %w", err)
	}
	return tickets, nil
}

// RecordReviewAttempt notes a failed classification attempt and either
// reschedules or, when next is nil, stops retrying.
func (s *TicketService) RecordReviewAttempt(ctx context.Context, ticketID int, next *time.Time) error {
	upd := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StatusEQ(ticket.StatusAwaitingInput)).
		AddReviewAttempts(1)
	if next != nil {
		upd.SetReviewScheduledAt(*next)
	} else {
		upd.ClearReviewScheduledAt()
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record review attempt for ticket %d: %w", ticketID, err)
	}
	if n == 0 {
		return fmt.Errorf("ticket %d is not awaiting input: %w", ticketID, ErrInvalidTransition)
	}
	return nil
}

// SetAwaitingReason updates the reason on an awaiting ticket and clears its
// review schedule. Used by the reviewer when a conversation ends in a
// question or an error rather than completed work.
func (s *TicketService) SetAwaitingReason(ctx context.Context, ticketID int, reason ticket.AwaitingReason) error {
	if err := ticket.AwaitingReasonValidator(reason); err != nil {
		return NewValidationError("awaiting_reason", err.Error())
	}
	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StatusEQ(ticket.StatusAwaitingInput)).
		SetAwaitingReason(reason).
		ClearReviewScheduledAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set awaiting reason on ticket %d: %w", ticketID, err)
	}
	if n == 0 {
		return fmt.Errorf("ticket %d is not awaiting input: %w", ticketID, ErrInvalidTransition)
	}
	return nil
}

// AddDependency links ticket -> dependsOn after rejecting self-loops,
// cross-project edges, duplicates, and cycles. Cycle detection walks the
// dependency graph from dependsOn; reaching ticket means the new edge would
// close a loop.
func (s *TicketService) AddDependency(ctx context.Context, ticketID, dependsOnID int) error {
	if ticketID == dependsOnID {
		return fmt.Errorf("ticket %d cannot depend on itself: %w", ticketID, ErrDependencyCycle)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Ticket.Get(ctx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("ticket %d: %w", ticketID, ErrNotFound)
		}
		return fmt.Errorf("failed to load ticket %d: %w", ticketID, err)
	}
	dep, err := tx.Ticket.Get(ctx, dependsOnID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("ticket %d: %w", dependsOnID, ErrNotFound)
		}
		return fmt.Errorf("failed to load ticket %d: %w", dependsOnID, err)
	}
	if t.ProjectID != dep.ProjectID {
		return NewValidationError("depends_on_ticket_id", "cross-project dependencies are not allowed")
	}

	// BFS over outgoing dependency edges starting at the proposed target.
	visited := map[int]bool{dependsOnID: true}
	frontier := []int{dependsOnID}
	for len(frontier) > 0 {
		edges, err := tx.TicketDependency.Query().
			Where(ticketdependency.TicketIDIn(frontier...)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to walk dependency graph: %w", err)
		}
		frontier = frontier[:0]
		for _, e := range edges {
			if e.DependsOnTicketID == ticketID {
				return fmt.Errorf("dependency %d -> %d would close a loop: %w", ticketID, dependsOnID, ErrDependencyCycle)
			}
			if !visited[e.DependsOnTicketID] {
				visited[e.DependsOnTicketID] = true
				frontier = append(frontier, e.DependsOnTicketID)
			}
		}
	}

	if err := tx.TicketDependency.Create().
		SetTicketID(ticketID).
		SetDependsOnTicketID(dependsOnID).
		Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("dependency %d -> %d: %w", ticketID, dependsOnID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create dependency: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dependency: %w", err)
	}
	return nil
}

// Dependencies returns the tickets the given ticket depends on.
func (s *TicketService) Dependencies(ctx context.Context, ticketID int) ([]*ent.Ticket, error) {
	edges, err := s.client.TicketDependency.Query().
		Where(ticketdependency.TicketIDEQ(ticketID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dependency edges: %w", err)
	}
	if len(edges) == 0 {
		return nil, nil
	}
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.DependsOnTicketID
	}
	tickets, err := s.client.Ticket.Query().
		Where(ticket.IDIn(ids...)).
		Order(ent.Asc(ticket.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dependencies: %w", err)
	}
	return tickets, nil
}

// NeedingSummarization returns non-terminal, non-running tickets whose
// unsummarized conversation exceeds the threshold, largest first.
func (s *TicketService) NeedingSummarization(ctx context.Context, threshold, limit int) ([]*ent.Ticket, error) {
	tickets, err := s.client.Ticket.Query().
		Where(
			ticket.UnsummarizedTokensGT(threshold),
			ticket.StatusIn(
				ticket.StatusOpen,
				ticket.StatusAwaitingInput,
				ticket.StatusFailed,
				ticket.StatusStuck,
			),
		).
		Order(ent.Desc(ticket.FieldUnsummarizedTokens)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets needing summarization: %w", err)
	}
	return tickets, nil
}

// StaleAwaiting returns awaiting tickets with no activity since the cutoff,
// oldest first. The cleanup loop auto-closes them.
func (s *TicketService) StaleAwaiting(ctx context.Context, cutoff time.Time, limit int) ([]*ent.Ticket, error) {
	tickets, err := s.client.Ticket.Query().
		Where(
			ticket.StatusEQ(ticket.StatusAwaitingInput),
			ticket.UpdatedAtLT(cutoff),
		).
		Order(ent.Asc(ticket.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stale awaiting tickets: %w", err)
	}
	return tickets, nil
}

// CountsByStatus returns the ticket population per status.
func (s *TicketService) CountsByStatus(ctx context.Context) (map[ticket.Status]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Ticket.Query().
		GroupBy(ticket.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	counts := make(map[ticket.Status]int, len(rows))
	for _, r := range rows {
		counts[ticket.Status(r.Status)] = r.Count
	}
	return counts, nil
}

// truncateSummary bounds a result summary to the schema limit, cutting at a
// rune boundary.
func truncateSummary(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= resultSummaryMax {
		return content
	}
	cut := resultSummaryMax - len("...")
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "..."
}
