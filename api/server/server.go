// Package server wires the office agent service together and runs its HTTP
// front end.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/api/handlers"
	"github.com/gourav1211/officeagent/config"
	"github.com/gourav1211/officeagent/llm/providers"
	"github.com/gourav1211/officeagent/llm/providers/openai"
	"github.com/gourav1211/officeagent/llm/providers/shared"
	"github.com/gourav1211/officeagent/office/agents"
	"github.com/gourav1211/officeagent/office/agents/communication"
	"github.com/gourav1211/officeagent/office/agents/document"
	"github.com/gourav1211/officeagent/office/agents/presentation"
	"github.com/gourav1211/officeagent/office/agents/spreadsheet"
	"github.com/gourav1211/officeagent/office/agents/workflow"
	"github.com/gourav1211/officeagent/office/drafter"
	"github.com/gourav1211/officeagent/office/files"
	"github.com/gourav1211/officeagent/office/metrics"
	"github.com/gourav1211/officeagent/office/orchestrator"
	"github.com/gourav1211/officeagent/office/tools"
)

// Server owns the wired component graph and the HTTP front end.
type Server struct {
	LLMs         *providers.Registry
	Tools        *tools.Registry
	Agents       *agents.Registry
	Orchestrator *orchestrator.Orchestrator

	cfg     *config.Config
	handler http.Handler
	logger  zerolog.Logger
}

// NewServer builds the full component graph from configuration. When no LLM
// API key is configured the service still runs; composition falls back to
// deterministic content.
func NewServer(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Load(nil)
	}

	s := &Server{
		cfg:    cfg,
		logger: logger.With().Str("component", "server").Logger(),
	}

	manager := files.NewManager(cfg.Workspace)
	s.Tools = tools.NewOfficeRegistry(tools.NewStores(), manager)

	s.LLMs = providers.NewRegistry()
	var llm shared.LLMProvider
	if cfg.LLM.APIKey != "" {
		provider, err := openai.NewProvider(openai.Config{APIKey: cfg.LLM.APIKey})
		if err != nil {
			return nil, fmt.Errorf("configuring openai provider: %w", err)
		}
		s.LLMs.RegisterProvider(provider.Name(), provider)
		llm = provider
	} else {
		s.logger.Warn().Msg("no LLM API key configured, drafting disabled")
	}

	d := drafter.New(llm, cfg.LLM.Model, cfg.LLM.Temperature, logger)

	s.Agents = agents.NewAgentRegistry()
	s.Agents.Register(document.NewAgent(s.Tools, logger))
	s.Agents.Register(presentation.NewAgent(s.Tools, d, logger))
	s.Agents.Register(spreadsheet.NewAgent(s.Tools, d, logger))
	s.Agents.Register(communication.NewAgent(s.Tools, logger))
	s.Agents.Register(workflow.NewAgent(s.Tools, logger))

	s.Orchestrator = orchestrator.New(s.Agents, metrics.New(), logger)
	s.handler = s.buildHandler()
	return s, nil
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) buildHandler() http.Handler {
	taskHandler := handlers.NewTaskHandler(s.Orchestrator, s.logger)
	agentHandler := handlers.NewAgentHandler(s.Agents)
	toolHandler := handlers.NewToolHandler(s.Tools)
	metricsHandler := handlers.NewMetricsHandler(s.Orchestrator)

	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/execute", taskHandler.ExecuteTask)
	mux.HandleFunc("/tasks/stream", taskHandler.StreamTask)
	mux.HandleFunc("/agents", agentHandler.ListAgents)
	mux.HandleFunc("/tools/", toolHandler.ExecuteTool)
	mux.HandleFunc("/tools", toolHandler.ListTools)
	mux.HandleFunc("/metrics", metricsHandler.GetMetrics)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	})

	return s.withMiddleware(mux)
}

func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// Start runs the HTTP server and blocks until a shutdown signal arrives.
func (s *Server) Start() error {
	httpServer := &http.Server{
		Addr:    s.cfg.Server.Address,
		Handler: s.handler,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", httpServer.Addr).Msg("starting agent server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
		s.logger.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	}
}
