package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/approvedpermission"
)

// PermissionService records per-ticket tool approvals for semi-autonomous
// execution. Approvals are consulted by the hook filter before the
// deny-list, so a recorded approval short-circuits the ask path.
type PermissionService struct {
	client *ent.Client
}

// NewPermissionService creates a new PermissionService.
func NewPermissionService(client *ent.Client) *PermissionService {
	return &PermissionService{client: client}
}

// Approve records an approval. When pattern is empty it is derived from the
// input. Duplicate approvals are idempotent.
func (s *PermissionService) Approve(ctx context.Context, ticketID int, tool, input, pattern string) (*ent.ApprovedPermission, error) {
	if strings.TrimSpace(tool) == "" {
		return nil, NewValidationError("tool", "required")
	}
	if pattern == "" {
		pattern = DerivePattern(tool, input)
	}
	if pattern == "" {
		return nil, NewValidationError("pattern", "required when input is empty")
	}

	created, err := s.client.ApprovedPermission.Create().
		SetTicketID(ticketID).
		SetTool(tool).
		SetPattern(pattern).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.ApprovedPermission.Query().
				Where(
					approvedpermission.TicketIDEQ(ticketID),
					approvedpermission.ToolEQ(tool),
					approvedpermission.PatternEQ(pattern),
				).
				Only(ctx)
			if qerr == nil {
				return existing, nil
			}
			return nil, fmt.Errorf("ticket %d: %w", ticketID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to record approval: %w", err)
	}
	return created, nil
}

// Approved returns a ticket's approvals in creation order.
func (s *PermissionService) Approved(ctx context.Context, ticketID int) ([]*ent.ApprovedPermission, error) {
	perms, err := s.client.ApprovedPermission.Query().
		Where(approvedpermission.TicketIDEQ(ticketID)).
		Order(ent.Asc(approvedpermission.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	return perms, nil
}

// DerivePattern generalizes a concrete tool input into an approval pattern.
// Shell commands keep their first token and wildcard the rest ("npm install
// left-pad" approves "npm *"); other tools approve the exact input.
func DerivePattern(tool, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !isShellTool(tool) {
		return input
	}
	fields := strings.Fields(input)
	if len(fields) <= 1 {
		return input
	}
	return fields[0] + " *"
}

func isShellTool(tool string) bool {
	switch strings.ToLower(tool) {
	case "bash", "shell", "sh", "exec":
		return true
	}
	return false
}
