package api

import (
	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/pkg/scheduler"
)

// HealthCheck is one component probe inside the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// StatusResponse is the daemon snapshot returned by GET /api/v1/status.
// Daemon is nil until the first heartbeat lands.
type StatusResponse struct {
	Daemon      *ent.DaemonStatus `json:"daemon,omitempty"`
	Scheduler   *scheduler.Health `json:"scheduler,omitempty"`
	Subscribers int               `json:"subscribers"`
	Uptime      string            `json:"uptime,omitempty"`
	Version     string            `json:"version"`
}

// TicketDetailResponse is the single-ticket view with its conversation page
// and applied extractions.
type TicketDetailResponse struct {
	*ent.Ticket
	Messages      []*ent.Message        `json:"messages"`
	MessageTotal  int                   `json:"message_total"`
	Extractions   []*ent.Extraction     `json:"extractions,omitempty"`
	LatestSession *ent.ExecutionSession `json:"latest_session,omitempty"`
	Running       bool                  `json:"running"`
}

// PostMessageResponse reports where an operator message ended up: injected
// into the live agent turn, reopened a parked ticket, or recorded for the
// next run.
type PostMessageResponse struct {
	Message  *ent.Message `json:"message"`
	Delivery string       `json:"delivery"`
}

// StopResponse is returned by POST /tickets/:id/stop.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}
