package services

import (
	"testing"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestDependencySatisfied(t *testing.T) {
	tests := []struct {
		name            string
		status          ticket.Status
		includeAwaiting bool
		want            bool
	}{
		{"done satisfies", ticket.StatusDone, false, true},
		{"skipped satisfies", ticket.StatusSkipped, false, true},
		{"open blocks", ticket.StatusOpen, false, false},
		{"in_progress blocks", ticket.StatusInProgress, false, false},
		{"failed blocks", ticket.StatusFailed, false, false},
		{"awaiting blocks in strict mode", ticket.StatusAwaitingInput, false, false},
		{"awaiting satisfies in relaxed mode", ticket.StatusAwaitingInput, true, true},
		{"stuck blocks even relaxed", ticket.StatusStuck, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dependencySatisfied(tt.status, tt.includeAwaiting))
		})
	}
}

func TestIsEligible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		candidate *ent.Ticket
		dependsOn []int
		statusOf  map[int]ticket.Status
		want      bool
	}{
		{
			name:      "plain open ticket",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen},
			want:      true,
		},
		{
			name:      "not open",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusAwaitingInput},
			want:      false,
		},
		{
			name:      "cooldown in the future",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen, RetryAfter: timePtr(now.Add(time.Minute))},
			want:      false,
		},
		{
			name:      "cooldown expired",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen, RetryAfter: timePtr(now.Add(-time.Minute))},
			want:      true,
		},
		{
			name:      "unfinished dependency",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen},
			dependsOn: []int{2},
			statusOf:  map[int]ticket.Status{2: ticket.StatusInProgress},
			want:      false,
		},
		{
			name:      "all dependencies finished",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen},
			dependsOn: []int{2, 3},
			statusOf:  map[int]ticket.Status{2: ticket.StatusDone, 3: ticket.StatusSkipped},
			want:      true,
		},
		{
			name:      "awaiting dependency with relaxed mode",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen, DepsIncludeAwaiting: true},
			dependsOn: []int{2},
			statusOf:  map[int]ticket.Status{2: ticket.StatusAwaitingInput},
			want:      true,
		},
		{
			name:      "missing dependency status fails closed",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen},
			dependsOn: []int{99},
			statusOf:  map[int]ticket.Status{},
			want:      false,
		},
		{
			name:      "parent still open",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen, ParentTicketID: intPtr(5)},
			statusOf:  map[int]ticket.Status{5: ticket.StatusOpen},
			want:      false,
		},
		{
			name:      "parent done",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen, ParentTicketID: intPtr(5)},
			statusOf:  map[int]ticket.Status{5: ticket.StatusDone},
			want:      true,
		},
		{
			name:      "parent awaiting blocks regardless of relaxed deps",
			candidate: &ent.Ticket{ID: 1, Status: ticket.StatusOpen, ParentTicketID: intPtr(5), DepsIncludeAwaiting: true},
			statusOf:  map[int]ticket.Status{5: ticket.StatusAwaitingInput},
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isEligible(tt.candidate, tt.dependsOn, tt.statusOf, now))
		})
	}
}

func TestSortByDispatchOrder(t *testing.T) {
	forced := &ent.Ticket{ID: 10, IsForced: true, Priority: ticket.PriorityLow}
	seqOne := &ent.Ticket{ID: 11, SequenceOrder: intPtr(1), Priority: ticket.PriorityLow}
	seqTwo := &ent.Ticket{ID: 12, SequenceOrder: intPtr(2), Priority: ticket.PriorityCritical}
	critical := &ent.Ticket{ID: 13, Priority: ticket.PriorityCritical}
	high := &ent.Ticket{ID: 14, Priority: ticket.PriorityHigh}
	mediumOld := &ent.Ticket{ID: 2, Priority: ticket.PriorityMedium}
	mediumNew := &ent.Ticket{ID: 15, Priority: ticket.PriorityMedium}

	tickets := []*ent.Ticket{mediumNew, critical, seqTwo, forced, high, mediumOld, seqOne}
	sortByDispatchOrder(tickets)

	got := make([]int, len(tickets))
	for i, tk := range tickets {
		got[i] = tk.ID
	}
	// Forced first, then explicit sequence, then priority, then oldest ID.
	assert.Equal(t, []int{10, 11, 12, 13, 14, 2, 15}, got)
}

func TestDispatchOrderForcedBeatsSequence(t *testing.T) {
	forced := &ent.Ticket{ID: 20, IsForced: true}
	sequenced := &ent.Ticket{ID: 21, SequenceOrder: intPtr(0), Priority: ticket.PriorityCritical}

	assert.True(t, dispatchLess(forced, sequenced))
	assert.False(t, dispatchLess(sequenced, forced))
}
