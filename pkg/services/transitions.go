package services

import "github.com/fleetworks/conductor/ent/ticket"

// legalTransitions is the ticket state machine. Claiming (open →
// in_progress) goes through TicketService.Claim, which also creates the
// session; the other edges go through the dedicated TicketService methods,
// each of which re-checks the source status in its conditional update.
//
//	open           → in_progress (claim), skipped
//	in_progress    → awaiting_input, failed, stuck, skipped
//	awaiting_input → open (user reply, retry), done (close), skipped
//	failed         → open (retry), skipped
//	stuck          → open (manual revive), skipped
//	done, skipped  → terminal
var legalTransitions = map[ticket.Status][]ticket.Status{
	ticket.StatusOpen:          {ticket.StatusInProgress, ticket.StatusSkipped},
	ticket.StatusInProgress:    {ticket.StatusAwaitingInput, ticket.StatusFailed, ticket.StatusStuck, ticket.StatusSkipped},
	ticket.StatusAwaitingInput: {ticket.StatusOpen, ticket.StatusDone, ticket.StatusSkipped},
	ticket.StatusFailed:        {ticket.StatusOpen, ticket.StatusSkipped},
	ticket.StatusStuck:         {ticket.StatusOpen, ticket.StatusSkipped},
	ticket.StatusDone:          {},
	ticket.StatusSkipped:       {},
}

// CanTransition reports whether from → to is a legal ticket status change.
func CanTransition(from, to ticket.Status) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether a ticket status has no outgoing
// transitions.
func IsTerminalStatus(s ticket.Status) bool {
	return len(legalTransitions[s]) == 0
}
