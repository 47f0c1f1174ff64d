package prompt

import (
	"fmt"
	"strings"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
)

// Section markers inside the assembled envelope. The agent treats these as
// plain prose; tests use them to verify assembly order.
const (
	sectionRules        = "== GLOBAL RULES =="
	sectionMap          = "== PROJECT MAP =="
	sectionKnowledge    = "== PROJECT KNOWLEDGE =="
	sectionParents      = "== PARENT TICKETS =="
	sectionGit          = "== RECENT COMMITS =="
	sectionTicket       = "== TICKET =="
	sectionConversation = "== CONVERSATION =="
)

// formatTicketHeader renders the work item the agent is being asked to do.
func formatTicketHeader(t *ent.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, priority %s)\n", t.TicketNumber, t.TicketType, t.Priority)
	fmt.Fprintf(&b, "Title: %s\n", t.Title)
	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(t.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatMessage renders one conversation entry with a role tag.
func formatMessage(m *ent.Message) string {
	switch m.Role {
	case message.RoleToolUse:
		name := "tool"
		if m.ToolName != nil && *m.ToolName != "" {
			name = *m.ToolName
		}
		if m.ToolInput != nil && *m.ToolInput != "" {
			return fmt.Sprintf("[tool_use] %s %s", name, *m.ToolInput)
		}
		return "[tool_use] " + name
	case message.RoleToolResult:
		return "[tool_result] " + m.Content
	default:
		return "[" + string(m.Role) + "] " + m.Content
	}
}

// formatExtraction renders the compressed form of a covered message range.
// Empty fields are omitted.
func formatExtraction(e *ent.Extraction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Summary of messages %d-%d ---\n", e.FromMessageID, e.ToMessageID)
	writeField(&b, "Decisions", e.Decisions)
	writeField(&b, "Problems solved", e.ProblemsSolved)
	writeField(&b, "Files modified", e.FilesModified)
	writeField(&b, "Tests", e.TestsStatus)
	writeField(&b, "Error patterns", e.ErrorPatterns)
	writeField(&b, "Notes", e.ImportantNotes)
	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

// formatAncestor renders one parent-chain entry: what the ancestor asked for
// and, when filled, what came of it.
func formatAncestor(t *ent.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s\n", t.TicketNumber, t.Status, t.Title)
	if t.Description != "" {
		b.WriteString(t.Description)
		b.WriteString("\n")
	}
	if t.ResultSummary != nil && *t.ResultSummary != "" {
		fmt.Fprintf(&b, "Result: %s\n", *t.ResultSummary)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatConversation renders the compressed prefix followed by the live
// unsummarized tail, oldest first.
func formatConversation(extractions []*ent.Extraction, messages []*ent.Message) string {
	parts := make([]string, 0, len(extractions)+len(messages))
	for _, e := range extractions {
		parts = append(parts, formatExtraction(e))
	}
	for _, m := range messages {
		parts = append(parts, formatMessage(m))
	}
	return strings.Join(parts, "\n\n")
}
