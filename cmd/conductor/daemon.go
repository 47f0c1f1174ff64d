package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fleetworks/conductor/pkg/agent"
	"github.com/fleetworks/conductor/pkg/api"
	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/cleanup"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/database"
	"github.com/fleetworks/conductor/pkg/heartbeat"
	"github.com/fleetworks/conductor/pkg/llm"
	"github.com/fleetworks/conductor/pkg/masking"
	"github.com/fleetworks/conductor/pkg/notify"
	"github.com/fleetworks/conductor/pkg/prompt"
	"github.com/fleetworks/conductor/pkg/reviewer"
	"github.com/fleetworks/conductor/pkg/rules"
	"github.com/fleetworks/conductor/pkg/scheduler"
	"github.com/fleetworks/conductor/pkg/services"
	"github.com/fleetworks/conductor/pkg/summarizer"
	"github.com/fleetworks/conductor/pkg/version"
	"github.com/fleetworks/conductor/pkg/watchdog"
)

const httpShutdownTimeout = 5 * time.Second

func runDaemon(_ *cobra.Command, _ []string) error {
	setupLogging()

	if err := godotenv.Load(flagEnvFile); err != nil {
		slog.Warn("No .env file loaded, using existing environment", "path", flagEnvFile)
	}

	slog.Info("Starting conductor", "version", version.Full())

	// 1. Configuration
	cfg, err := config.Initialize(flagConfig)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return err
	}

	// 2. Database (migrations run on connect)
	ctx := context.Background()
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database configuration", "error", err)
		return err
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database", "host", dbCfg.Host, "database", dbCfg.Database)

	logger := slog.Default()

	// 3. Domain services
	masker := masking.NewService(cfg.Masking)
	projects := services.NewProjectService(dbClient.Client)
	tickets := services.NewTicketService(dbClient.Client)
	sessions := services.NewSessionService(dbClient.Client)
	messages := services.NewMessageService(dbClient.Client, masker)
	extractions := services.NewExtractionService(dbClient.Client)
	permissions := services.NewPermissionService(dbClient.Client)
	statusSvc := services.NewStatusService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Model client
	model, err := llm.NewClient(cfg.LLM, logger)
	if err != nil {
		slog.Error("Failed to initialize model client", "error", err)
		return err
	}
	slog.Info("Model client initialized", "fast", cfg.LLM.FastModel, "smart", cfg.LLM.SmartModel)

	// 5. Event bus
	eventBus := bus.New(logger)
	defer eventBus.Close()

	// 6. Prompt pipeline
	compressor := summarizer.NewService(cfg.Summarizer, cfg.Context.SummarizeThreshold,
		tickets, messages, extractions, projects, model, logger)
	builder := prompt.NewBuilder(cfg.Context, prompt.Sources{
		Projects:    projects,
		Tickets:     tickets,
		Messages:    messages,
		Extractions: extractions,
	}, rules.NewService(cfg.Context.RulesPath), compressor, eventBus, logger)

	// 7. Notifications. The router's injector is wired after the scheduler
	// exists; listeners only start in notifier.Start, so nothing races it.
	sinks := notify.BuildSinks(cfg.Notify, logger)
	router := notify.NewRouter(tickets, messages, model, nil, logger)
	notifier := notify.NewService(cfg.Notify, sinks, router, masker, logger)

	// 8. Scheduler and agent runner
	runner := agent.NewRunner(cfg.Agent, hookBaseURL(cfg.Server.ListenAddr), logger)
	sched := scheduler.New(cfg.Scheduler, scheduler.Deps{
		Store:       scheduler.NewStore(projects, tickets, sessions, messages, permissions),
		Builder:     builder,
		Runner:      scheduler.AdaptRunner(runner),
		Bus:         eventBus,
		Notifier:    notifier,
		Logger:      logger,
		Models:      scheduler.ModelNames{Fast: cfg.LLM.FastModel, Smart: cfg.LLM.SmartModel},
		ReviewDelay: cfg.Review.AutoReviewDelay,
	})
	router.SetInjector(sched)

	// 9. Background loops
	rev := reviewer.NewService(cfg.Review, tickets, messages, model, eventBus, logger)
	wdog := watchdog.NewService(cfg.Watchdog, tickets, sessions, messages, model,
		sched, eventBus, notifier, logger)
	cleaner := cleanup.NewService(cfg.Retention, cfg.Review.DeadlineDays,
		tickets, sessions, messages, logger)
	hb := heartbeat.NewService(cfg.Heartbeat.Interval, cfg.Heartbeat.FilePath,
		statusSvc, tickets,
		func() scheduler.Health { return sched.Health(context.Background()) },
		version.Full(), logger)

	// 10. HTTP server
	srv := api.NewServer(cfg.Server, api.Deps{
		DB:          dbClient,
		Projects:    projects,
		Tickets:     tickets,
		Messages:    messages,
		Sessions:    sessions,
		Extractions: extractions,
		Permissions: permissions,
		Status:      statusSvc,
		Scheduler:   sched,
		Bus:         eventBus,
		Version:     version.Full(),
		Logger:      logger,
	})

	// 11. Start everything. Loops share one cancellable context; cancelling
	// it is the first step of shutdown.
	svcCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched.Start(svcCtx)
	rev.Start(svcCtx)
	compressor.Start(svcCtx)
	wdog.Start(svcCtx)
	cleaner.Start(svcCtx)
	hb.Start(svcCtx)
	notifier.Start(svcCtx)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	slog.Info("Conductor started", "listen_addr", cfg.Server.ListenAddr,
		"max_parallel_projects", cfg.Scheduler.MaxParallelProjects)

	// 12. Wait for a signal or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
	}

	// 13. Graceful shutdown. Workers watch the service context, so cancel
	// first; Stop then waits out the scheduler's grace window.
	slog.Info("Shutting down")
	cancel()
	sched.Stop()

	rev.Stop()
	compressor.Stop()
	wdog.Stop()
	cleaner.Stop()
	notifier.Stop()

	// Last beat records status=stopping so monitors see a clean exit.
	hb.Stop()

	httpCtx, httpCancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer httpCancel()
	if err := srv.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}

// setupLogging configures the process-wide slog handler from LOG_LEVEL and
// LOG_FORMAT before anything else logs.
func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// hookBaseURL derives the loopback URL hook shims call from the server's
// listen address: ":8090" and "0.0.0.0:8090" both map to
// "http://127.0.0.1:8090". Hooks run on the daemon host, never remotely.
func hookBaseURL(listenAddr string) string {
	_, port, err := net.SplitHostPort(listenAddr)
	if err != nil || port == "" {
		return "http://127.0.0.1:8090"
	}
	return "http://127.0.0.1:" + port
}
