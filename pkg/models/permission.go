package models

// ApprovePermissionRequest persists a standing approval for a tool pattern on
// one ticket. An empty pattern is derived from the tool input by the service.
type ApprovePermissionRequest struct {
	Tool    string `json:"tool" binding:"required"`
	Input   string `json:"input,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

// HookDecideRequest is posted by the in-repo hook shim on the loopback
// interface before the agent executes a tool in semi-autonomous mode.
type HookDecideRequest struct {
	TicketID int    `json:"ticket_id" binding:"required"`
	Tool     string `json:"tool" binding:"required"`
	Input    string `json:"input"`
}

// HookDecideResponse carries the filter verdict back to the hook shim.
// Decision is one of allow, deny, or ask.
type HookDecideResponse struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}
