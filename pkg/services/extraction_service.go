package services

import (
	"context"
	"fmt"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/extraction"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/pkg/tokens"
)

// ExtractionContent holds the structured fields distilled from a message
// range. Empty fields are stored empty; the range bounds carry the coverage.
type ExtractionContent struct {
	Decisions      string
	ProblemsSolved string
	FilesModified  string
	TestsStatus    string
	ErrorPatterns  string
	ImportantNotes string
}

// rendered returns the prompt-facing text of the extraction, used to compute
// tokens_after.
func (c ExtractionContent) rendered() string {
	return c.Decisions + c.ProblemsSolved + c.FilesModified + c.TestsStatus + c.ErrorPatterns + c.ImportantNotes
}

// ExtractionService records conversation compressions. Extractions are
// additive: covered messages are flagged, never deleted.
type ExtractionService struct {
	client *ent.Client
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(client *ent.Client) *ExtractionService {
	return &ExtractionService{client: client}
}

// Apply stores an extraction covering [fromID, toID], marks the covered
// messages summarized, and recomputes the ticket's unsummarized token total
// from what actually remains uncovered. All in one transaction so a crash
// never leaves flagged messages without their extraction.
func (s *ExtractionService) Apply(ctx context.Context, ticketID, fromID, toID int, content ExtractionContent) (*ent.Extraction, error) {
	if fromID > toID {
		return nil, NewValidationError("from_message_id", "range start exceeds range end")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	covered, err := tx.Message.Query().
		Where(
			message.TicketIDEQ(ticketID),
			message.IDGTE(fromID),
			message.IDLTE(toID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load covered messages: %w", err)
	}
	if len(covered) == 0 {
		return nil, fmt.Errorf("no messages in range %d..%d for ticket %d: %w", fromID, toID, ticketID, ErrInvalidInput)
	}

	tokensBefore := 0
	for _, m := range covered {
		tokensBefore += m.TokenCount
	}
	tokensAfter := tokens.Estimate(content.rendered())

	created, err := tx.Extraction.Create().
		SetTicketID(ticketID).
		SetFromMessageID(fromID).
		SetToMessageID(toID).
		SetDecisions(content.Decisions).
		SetProblemsSolved(content.ProblemsSolved).
		SetFilesModified(content.FilesModified).
		SetTestsStatus(content.TestsStatus).
		SetErrorPatterns(content.ErrorPatterns).
		SetImportantNotes(content.ImportantNotes).
		SetTokensBefore(tokensBefore).
		SetTokensAfter(tokensAfter).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("ticket %d: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create extraction: %w", err)
	}

	if err := tx.Message.Update().
		Where(
			message.TicketIDEQ(ticketID),
			message.IDGTE(fromID),
			message.IDLTE(toID),
		).
		SetIsSummarized(true).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to flag covered messages: %w", err)
	}

	// Recompute rather than decrement: concurrent appends between range
	// selection and this transaction stay counted.
	remaining, err := tx.Message.Query().
		Where(message.TicketIDEQ(ticketID), message.IsSummarized(false)).
		Select(message.FieldTokenCount).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to total remaining tokens: %w", err)
	}
	total := 0
	for _, m := range remaining {
		total += m.TokenCount
	}
	if err := tx.Ticket.UpdateOneID(ticketID).
		SetUnsummarizedTokens(total).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update ticket token total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit extraction: %w", err)
	}
	return created, nil
}

// ListByTicket returns a ticket's extractions in coverage order. This is the
// compressed prefix of the conversation rendered into prompts.
func (s *ExtractionService) ListByTicket(ctx context.Context, ticketID int) ([]*ent.Extraction, error) {
	extractions, err := s.client.Extraction.Query().
		Where(extraction.TicketIDEQ(ticketID)).
		Order(ent.Asc(extraction.FieldFromMessageID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	return extractions, nil
}
