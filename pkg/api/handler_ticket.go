package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/fleetworks/conductor/pkg/scheduler"
	"github.com/fleetworks/conductor/pkg/services"
)

// listTicketsHandler handles GET /api/v1/tickets.
func (s *Server) listTicketsHandler(c *gin.Context) {
	var q listTicketsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	tickets, total, err := s.tickets.List(c.Request.Context(), models.TicketFilters{
		ProjectID: q.ProjectID,
		Statuses:  q.Status,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TicketListResponse{
		Tickets: tickets,
		Total:   total,
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
}

// createTicketHandler handles POST /api/v1/tickets.
func (s *Server) createTicketHandler(c *gin.Context) {
	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	t, err := s.tickets.Create(c.Request.Context(), req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// getTicketHandler handles GET /api/v1/tickets/:id. The response bundles the
// conversation page, applied extractions, and the latest execution session.
func (s *Server) getTicketHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var q conversationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	t, err := s.tickets.Get(ctx, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	msgs, total, err := s.messages.Conversation(ctx, id, q.Limit, q.Offset)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	exts, err := s.extractions.ListByTicket(ctx, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	resp := TicketDetailResponse{
		Ticket:       t,
		Messages:     msgs,
		MessageTotal: total,
		Extractions:  exts,
	}
	if sess, err := s.sessions.LatestByTicket(ctx, id); err == nil {
		resp.LatestSession = sess
	} else if !errors.Is(err, services.ErrNotFound) {
		s.respondServiceError(c, err)
		return
	}
	if s.sched != nil {
		resp.Running = s.sched.Running(id)
	}

	c.JSON(http.StatusOK, resp)
}

// postMessageHandler handles POST /api/v1/tickets/:id/messages. The message
// is always appended to the conversation; delivery then depends on the
// ticket's state. A running ticket gets the text injected into the live agent
// turn. A parked ticket is reopened and its pending auto-review cancelled so
// the scheduler dispatches it with the new message in the envelope. Tickets
// that are already open or terminal just keep the record.
func (s *Server) postMessageHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := s.tickets.Get(ctx, id); err != nil {
		s.respondServiceError(c, err)
		return
	}

	msg, err := s.messages.Append(ctx, services.AppendMessage{
		TicketID: id,
		Role:     message.RoleUser,
		Content:  req.Content,
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	if s.sched != nil {
		err := s.sched.InjectMessage(id, req.Content)
		if err == nil {
			c.JSON(http.StatusCreated, PostMessageResponse{Message: msg, Delivery: "injected"})
			return
		}
		if !errors.Is(err, scheduler.ErrNotRunning) {
			s.logger.Error("Message injection failed", "ticket_id", id, "error", err)
		}
	}

	if err := s.tickets.CancelReview(ctx, id); err != nil {
		s.logger.Error("Failed to cancel pending review", "ticket_id", id, "error", err)
	}

	delivery := "recorded"
	if _, err := s.tickets.Reopen(ctx, id); err == nil {
		delivery = "reopened"
	} else if !errors.Is(err, services.ErrInvalidTransition) {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PostMessageResponse{Message: msg, Delivery: delivery})
}

// stopTicketHandler handles POST /api/v1/tickets/:id/stop: the kill switch
// for a live agent run. 409 when the ticket has no live agent.
func (s *Server) stopTicketHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// Body is optional; an empty or malformed one falls back to the
	// default reason.
	var req models.StopTicketRequest
	_ = c.ShouldBindJSON(&req)

	reason := req.Reason
	if reason == "" {
		reason = "stopped by operator"
	}

	if s.sched == nil || !s.sched.StopTicket(id, reason) {
		c.JSON(http.StatusConflict, errorResponse{Error: "ticket has no live agent"})
		return
	}

	c.JSON(http.StatusOK, StopResponse{Stopped: true})
}

// closeTicketHandler handles POST /api/v1/tickets/:id/close.
func (s *Server) closeTicketHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := s.tickets.Close(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// skipTicketHandler handles POST /api/v1/tickets/:id/skip.
func (s *Server) skipTicketHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := s.tickets.Skip(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// approvePermissionHandler handles POST /api/v1/tickets/:id/permissions.
// It records a standing "approve similar" rule; an empty pattern is derived
// from the tool input.
func (s *Server) approvePermissionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.ApprovePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := s.tickets.Get(ctx, id); err != nil {
		s.respondServiceError(c, err)
		return
	}

	perm, err := s.permissions.Approve(ctx, id, req.Tool, req.Input, req.Pattern)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, perm)
}
