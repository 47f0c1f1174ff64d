package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetworks/conductor/pkg/agent"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/fleetworks/conductor/pkg/prompt"
)

// hookDecideHandler handles POST /api/v1/internal/hooks/decide. The agent's
// pre-tool hook shim posts here before every tool call in semi-autonomous
// mode; the verdict is allow, deny, or ask. The route is loopback-guarded,
// so an unknown ticket means a misconfigured shim, not an attacker.
func (s *Server) hookDecideHandler(c *gin.Context) {
	var req models.HookDecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	t, err := s.tickets.Get(ctx, req.TicketID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	p, err := s.projects.Get(ctx, t.ProjectID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	perms, err := s.permissions.Approved(ctx, req.TicketID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	approved := make([]agent.ApprovedPattern, 0, len(perms))
	for _, ap := range perms {
		approved = append(approved, agent.ApprovedPattern{Tool: ap.Tool, Pattern: ap.Pattern})
	}

	verdict := agent.Decide(req.Tool, req.Input, prompt.Workdir(p), approved)
	c.JSON(http.StatusOK, models.HookDecideResponse{
		Decision: string(verdict.Decision),
		Reason:   verdict.Reason,
	})
}
