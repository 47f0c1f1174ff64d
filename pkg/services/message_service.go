package services

import (
	"context"
	"fmt"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/pkg/masking"
	"github.com/fleetworks/conductor/pkg/tokens"
)

// AppendMessage carries one conversation entry to persist.
type AppendMessage struct {
	TicketID  int
	Role      message.Role
	Content   string
	ToolName  *string
	ToolInput *string
}

// MessageService persists ticket conversations. Rows are insert-only; the
// auto-increment id is the canonical order.
type MessageService struct {
	client *ent.Client
	masker *masking.Service
}

// NewMessageService creates a new MessageService. The masker may be nil.
func NewMessageService(client *ent.Client, masker *masking.Service) *MessageService {
	return &MessageService{client: client, masker: masker}
}

// Append masks and stores a message, rolling its estimated token count into
// the ticket's unsummarized total in the same transaction. The ticket row
// update also refreshes updated_at, which the staleness sweep relies on.
func (s *MessageService) Append(ctx context.Context, m AppendMessage) (*ent.Message, error) {
	if err := message.RoleValidator(m.Role); err != nil {
		return nil, NewValidationError("role", err.Error())
	}

	content := s.masker.Mask(m.Content)
	toolInput := m.ToolInput
	if toolInput != nil {
		masked := s.masker.Mask(*toolInput)
		toolInput = &masked
	}
	count := tokens.Estimate(content)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := tx.Message.Create().
		SetTicketID(m.TicketID).
		SetRole(m.Role).
		SetContent(content).
		SetNillableToolName(m.ToolName).
		SetNillableToolInput(toolInput).
		SetTokenCount(count).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("ticket %d: %w", m.TicketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	if err := tx.Ticket.UpdateOneID(m.TicketID).
		AddUnsummarizedTokens(count).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update ticket token total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}
	return created, nil
}

// Conversation returns a page of a ticket's messages in conversation order
// plus the unpaginated total.
func (s *MessageService) Conversation(ctx context.Context, ticketID, limit, offset int) ([]*ent.Message, int, error) {
	q := s.client.Message.Query().Where(message.TicketIDEQ(ticketID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	messages, err := q.
		Order(ent.Asc(message.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, total, nil
}

// Unsummarized returns messages not yet covered by an extraction, in
// conversation order. This is both the summarizer's input and the live tail
// rendered into prompts.
func (s *MessageService) Unsummarized(ctx context.Context, ticketID int) ([]*ent.Message, error) {
	messages, err := s.client.Message.Query().
		Where(message.TicketIDEQ(ticketID), message.IsSummarized(false)).
		Order(ent.Asc(message.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unsummarized messages: %w", err)
	}
	return messages, nil
}

// Recent returns the last n messages of a ticket in conversation order.
func (s *MessageService) Recent(ctx context.Context, ticketID, n int) ([]*ent.Message, error) {
	if n <= 0 {
		return nil, nil
	}
	messages, err := s.client.Message.Query().
		Where(message.TicketIDEQ(ticketID)).
		Order(ent.Desc(message.FieldID)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent messages: %w", err)
	}
	// Reverse into ascending order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Count returns the number of messages in a ticket's conversation.
func (s *MessageService) Count(ctx context.Context, ticketID int) (int, error) {
	count, err := s.client.Message.Query().
		Where(message.TicketIDEQ(ticketID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
