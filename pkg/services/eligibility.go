package services

import (
	"sort"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/ticket"
)

// dependencySatisfied reports whether a single dependency's status unblocks
// its dependent. Relaxed mode accepts awaiting_input, so a chain can advance
// while an earlier ticket waits for its auto-close review.
func dependencySatisfied(depStatus ticket.Status, depsIncludeAwaiting bool) bool {
	switch depStatus {
	case ticket.StatusDone, ticket.StatusSkipped:
		return true
	case ticket.StatusAwaitingInput:
		return depsIncludeAwaiting
	default:
		return false
	}
}

// isEligible evaluates the dispatch predicate for a candidate. dependsOn
// lists the candidate's dependency ticket IDs; statusOf maps every referenced
// ticket (dependencies and parents) to its current status. A missing entry
// blocks the candidate: dangling references fail closed.
func isEligible(t *ent.Ticket, dependsOn []int, statusOf map[int]ticket.Status, now time.Time) bool {
	if t.Status != ticket.StatusOpen {
		return false
	}
	if t.RetryAfter != nil && t.RetryAfter.After(now) {
		return false
	}
	for _, depID := range dependsOn {
		st, ok := statusOf[depID]
		if !ok || !dependencySatisfied(st, t.DepsIncludeAwaiting) {
			return false
		}
	}
	if t.ParentTicketID != nil {
		st, ok := statusOf[*t.ParentTicketID]
		if !ok || (st != ticket.StatusDone && st != ticket.StatusSkipped) {
			return false
		}
	}
	return true
}

var priorityRank = map[ticket.Priority]int{
	ticket.PriorityCritical: 0,
	ticket.PriorityHigh:     1,
	ticket.PriorityMedium:   2,
	ticket.PriorityLow:      3,
}

// dispatchLess is the selection ordering: forced tickets first, then
// sequence_order ascending with NULL after every integer, then priority
// descending, then ID ascending for stability.
func dispatchLess(a, b *ent.Ticket) bool {
	if a.IsForced != b.IsForced {
		return a.IsForced
	}
	switch {
	case a.SequenceOrder != nil && b.SequenceOrder != nil:
		if *a.SequenceOrder != *b.SequenceOrder {
			return *a.SequenceOrder < *b.SequenceOrder
		}
	case a.SequenceOrder != nil:
		return true
	case b.SequenceOrder != nil:
		return false
	}
	if ra, rb := priorityRank[a.Priority], priorityRank[b.Priority]; ra != rb {
		return ra < rb
	}
	return a.ID < b.ID
}

func sortByDispatchOrder(tickets []*ent.Ticket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		return dispatchLess(tickets[i], tickets[j])
	})
}
