package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetworks/conductor/pkg/services"
)

// statusHandler handles GET /api/v1/status. Before the first heartbeat the
// daemon snapshot is absent but the scheduler and subscriber fields still
// report, so dashboards render something useful during startup.
func (s *Server) statusHandler(c *gin.Context) {
	resp := StatusResponse{Version: s.version}

	daemon, err := s.status.Get(c.Request.Context())
	switch {
	case err == nil:
		resp.Daemon = daemon
		resp.Uptime = time.Since(daemon.StartedAt).Round(time.Second).String()
	case errors.Is(err, services.ErrNotFound):
		// No heartbeat yet.
	default:
		s.respondServiceError(c, err)
		return
	}

	if s.sched != nil {
		h := s.sched.Health(c.Request.Context())
		resp.Scheduler = &h
	}
	if s.bus != nil {
		resp.Subscribers = s.bus.SubscriberCount()
	}

	c.JSON(http.StatusOK, resp)
}
