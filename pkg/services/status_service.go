package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/daemonstatus"
)

// daemonStatusID is the singleton row key for the daemon_status table.
const daemonStatusID = 1

// Heartbeat carries one liveness snapshot from the scheduler.
type Heartbeat struct {
	Status         daemonstatus.Status
	ActiveTickets  int
	CurrentTickets []string
	StartedAt      time.Time
	Version        string
}

// StatusService maintains the singleton daemon_status row. External monitors
// read last_heartbeat_at to decide whether the daemon is alive.
type StatusService struct {
	client *ent.Client
}

// NewStatusService creates a new StatusService.
func NewStatusService(client *ent.Client) *StatusService {
	return &StatusService{client: client}
}

// Beat upserts the singleton row with the current snapshot.
func (s *StatusService) Beat(ctx context.Context, hb Heartbeat) error {
	if err := daemonstatus.StatusValidator(hb.Status); err != nil {
		return NewValidationError("status", err.Error())
	}
	if hb.CurrentTickets == nil {
		hb.CurrentTickets = []string{}
	}

	err := s.client.DaemonStatus.Create().
		SetID(daemonStatusID).
		SetStatus(hb.Status).
		SetActiveTickets(hb.ActiveTickets).
		SetCurrentTickets(hb.CurrentTickets).
		SetLastHeartbeatAt(time.Now().UTC()).
		SetStartedAt(hb.StartedAt).
		SetPid(os.Getpid()).
		SetVersion(hb.Version).
		OnConflictColumns(daemonstatus.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// Get returns the singleton status row, or ErrNotFound before the first
// heartbeat.
func (s *StatusService) Get(ctx context.Context) (*ent.DaemonStatus, error) {
	st, err := s.client.DaemonStatus.Get(ctx, daemonStatusID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("daemon status: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get daemon status: %w", err)
	}
	return st, nil
}
