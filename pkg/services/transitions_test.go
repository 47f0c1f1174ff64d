package services

import (
	"testing"

	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from ticket.Status
		to   ticket.Status
		want bool
	}{
		{ticket.StatusOpen, ticket.StatusInProgress, true},
		{ticket.StatusOpen, ticket.StatusSkipped, true},
		{ticket.StatusOpen, ticket.StatusDone, false},
		{ticket.StatusOpen, ticket.StatusAwaitingInput, false},
		{ticket.StatusInProgress, ticket.StatusAwaitingInput, true},
		{ticket.StatusInProgress, ticket.StatusFailed, true},
		{ticket.StatusInProgress, ticket.StatusStuck, true},
		{ticket.StatusInProgress, ticket.StatusSkipped, true},
		{ticket.StatusInProgress, ticket.StatusDone, false},
		{ticket.StatusInProgress, ticket.StatusOpen, false},
		{ticket.StatusAwaitingInput, ticket.StatusOpen, true},
		{ticket.StatusAwaitingInput, ticket.StatusDone, true},
		{ticket.StatusAwaitingInput, ticket.StatusSkipped, true},
		{ticket.StatusAwaitingInput, ticket.StatusInProgress, false},
		{ticket.StatusFailed, ticket.StatusOpen, true},
		{ticket.StatusFailed, ticket.StatusDone, false},
		{ticket.StatusStuck, ticket.StatusOpen, true},
		{ticket.StatusDone, ticket.StatusOpen, false},
		{ticket.StatusDone, ticket.StatusSkipped, false},
		{ticket.StatusSkipped, ticket.StatusOpen, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(ticket.StatusDone))
	assert.True(t, IsTerminalStatus(ticket.StatusSkipped))
	assert.False(t, IsTerminalStatus(ticket.StatusOpen))
	assert.False(t, IsTerminalStatus(ticket.StatusInProgress))
	assert.False(t, IsTerminalStatus(ticket.StatusAwaitingInput))
	assert.False(t, IsTerminalStatus(ticket.StatusFailed))
	assert.False(t, IsTerminalStatus(ticket.StatusStuck))
}
