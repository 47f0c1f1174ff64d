package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /healthz.
// Only the daemon's own components are probed: the database and the dispatch
// loop. External dependencies (the model API, chat sinks) are excluded so an
// upstream outage does not make an orchestrator restart the daemon.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := s.db.Health(reqCtx); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.sched != nil {
		h := s.sched.Health(reqCtx)
		if !h.Running {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["scheduler"] = HealthCheck{Status: healthStatusDegraded, Message: "dispatch loop not running"}
		} else {
			checks["scheduler"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:  status,
		Version: s.version,
		Checks:  checks,
	})
}
