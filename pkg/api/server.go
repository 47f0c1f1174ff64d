// Package api serves the HTTP and WebSocket surface of the daemon: project
// and ticket CRUD, the live event stream, and the loopback-only hook endpoint
// the agent shim calls before executing tools.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/database"
	"github.com/fleetworks/conductor/pkg/scheduler"
	"github.com/fleetworks/conductor/pkg/services"
)

// wsWriteTimeout bounds a single WebSocket send. A client that cannot drain
// within this window is disconnected rather than allowed to stall the pump.
const wsWriteTimeout = 10 * time.Second

// Dispatcher is the scheduler surface the API layer talks to.
type Dispatcher interface {
	Health(ctx context.Context) scheduler.Health
	Running(ticketID int) bool
	StopTicket(ticketID int, reason string) bool
	InjectMessage(ticketID int, msg string) error
}

// Deps carries the collaborators the HTTP layer needs. Scheduler may be nil
// when the API runs without a dispatch loop.
type Deps struct {
	DB          *database.Client
	Projects    *services.ProjectService
	Tickets     *services.TicketService
	Messages    *services.MessageService
	Sessions    *services.SessionService
	Extractions *services.ExtractionService
	Permissions *services.PermissionService
	Status      *services.StatusService
	Scheduler   Dispatcher
	Bus         *bus.Bus
	Version     string
	Logger      *slog.Logger
}

// Server wires the HTTP routes to the service layer.
type Server struct {
	cfg         config.ServerConfig
	db          *database.Client
	projects    *services.ProjectService
	tickets     *services.TicketService
	messages    *services.MessageService
	sessions    *services.SessionService
	extractions *services.ExtractionService
	permissions *services.PermissionService
	status      *services.StatusService
	sched       Dispatcher
	bus         *bus.Bus
	connMgr     *ConnManager
	version     string
	logger      *slog.Logger

	engine *gin.Engine
	http   *http.Server
}

// NewServer builds the router and returns a server ready to Start.
func NewServer(cfg config.ServerConfig, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:         cfg,
		db:          deps.DB,
		projects:    deps.Projects,
		tickets:     deps.Tickets,
		messages:    deps.Messages,
		sessions:    deps.Sessions,
		extractions: deps.Extractions,
		permissions: deps.Permissions,
		status:      deps.Status,
		sched:       deps.Scheduler,
		bus:         deps.Bus,
		version:     deps.Version,
		logger:      logger.With("component", "api"),
	}
	if deps.Bus != nil {
		s.connMgr = NewConnManager(deps.Bus, wsWriteTimeout, s.logger)
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(s.requestLogger(), s.recovery(), securityHeaders())

	r.GET("/healthz", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", s.statusHandler)

		v1.GET("/projects", s.listProjectsHandler)
		v1.POST("/projects", s.createProjectHandler)
		v1.GET("/projects/:id", s.getProjectHandler)
		v1.PATCH("/projects/:id", s.updateProjectHandler)
		v1.GET("/projects/:id/tickets", s.listProjectTicketsHandler)

		v1.GET("/tickets", s.listTicketsHandler)
		v1.POST("/tickets", s.createTicketHandler)
		v1.GET("/tickets/:id", s.getTicketHandler)
		v1.POST("/tickets/:id/messages", s.postMessageHandler)
		v1.POST("/tickets/:id/stop", s.stopTicketHandler)
		v1.POST("/tickets/:id/close", s.closeTicketHandler)
		v1.POST("/tickets/:id/skip", s.skipTicketHandler)
		v1.POST("/tickets/:id/permissions", s.approvePermissionHandler)

		v1.GET("/ws", s.wsHandler)

		internal := v1.Group("/internal", loopbackOnly())
		internal.POST("/hooks/decide", s.hookDecideHandler)
	}

	return r
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured address and blocks until the listener
// closes. http.ErrServerClosed is returned unchanged so callers can treat a
// graceful Shutdown as a clean exit.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", "addr", s.cfg.ListenAddr)
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
