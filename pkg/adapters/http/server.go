package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/bioreasoner"
	"github.com/aretw0/bioreasoner/internal/logging"
	"github.com/aretw0/bioreasoner/internal/presentation/graph"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/ports"
	"github.com/aretw0/bioreasoner/pkg/scenario"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// RunRequest is the body of POST /run.
type RunRequest struct {
	InitialFacts  []string `json:"initial_facts"`
	MaxIterations *int     `json:"max_iterations,omitempty"`
}

// Server exposes a Reasoner as a JSON API.
type Server struct {
	Engine  ports.Reasoner
	Loader  ports.ScenarioLoader
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithLoader enables the named scenario routes.
func WithLoader(loader ports.ScenarioLoader) Option {
	return func(s *Server) {
		s.Loader = loader
	}
}

// WithMetrics mounts h on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Reasoner, opts ...Option) http.Handler {
	s := &Server{Engine: engine, Logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/rules", s.GetRules)
	r.Get("/contradictions", s.GetContradictions)
	r.Get("/graph", s.GetGraph)
	r.Post("/run", s.Run)
	r.Post("/scenarios/run", s.RunScenario)
	if s.Loader != nil {
		r.Get("/scenarios", s.ListScenarios)
		r.Post("/scenarios/{name}/run", s.RunNamedScenario)
	}
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics)
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":            "bioreasoner-http",
		"version":        strings.TrimSpace(bioreasoner.Version),
		"rules":          len(s.Engine.Rules()),
		"contradictions": s.Engine.Contradictions().Len(),
	})
}

// GetRules handles the GET /rules request.
func (s *Server) GetRules(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.Rules())
}

// GetContradictions handles the GET /contradictions request.
func (s *Server) GetContradictions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.Contradictions().Pairs())
}

// GetGraph handles the GET /graph request with a Mermaid flowchart.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(s.Engine.Rules(), s.Engine.Contradictions().Pairs(), nil))
}

// Run handles the POST /run request.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		s.Logger.Warn("Run: Invalid request body", "err", err)
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	facts := domain.NewFactSet()
	for i, tok := range body.InitialFacts {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("initial_facts[%d] is empty", i))
			return
		}
		facts.Add(domain.Fact(tok))
	}

	var res *domain.Result
	if body.MaxIterations != nil {
		if *body.MaxIterations < 0 {
			s.writeError(w, http.StatusBadRequest, "max_iterations must not be negative")
			return
		}
		res = s.Engine.RunWithLimit(facts, *body.MaxIterations)
	} else {
		res = s.Engine.Run(facts)
	}
	s.writeJSON(w, http.StatusOK, res)
}

// RunScenario handles the POST /scenarios/run request. The body is a
// scenario document in YAML or JSON.
func (s *Server) RunScenario(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	sc, err := scenario.Parse(data)
	if err != nil {
		s.Logger.Warn("RunScenario: Invalid scenario", "err", err)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.runScenario(w, sc)
}

// ListScenarios handles the GET /scenarios request.
func (s *Server) ListScenarios(w http.ResponseWriter, r *http.Request) {
	names, err := s.Loader.ListScenarios()
	if err != nil {
		s.Logger.Error("ListScenarios failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list scenarios")
		return
	}
	s.writeJSON(w, http.StatusOK, names)
}

// RunNamedScenario handles the POST /scenarios/{name}/run request.
func (s *Server) RunNamedScenario(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	sc, err := s.Loader.GetScenario(name)
	if err != nil {
		if errors.Is(err, ports.ErrScenarioNotFound) {
			s.writeError(w, http.StatusNotFound, fmt.Sprintf("scenario %q not found", name))
			return
		}
		s.Logger.Error("GetScenario failed", "name", name, "err", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load scenario")
		return
	}
	s.runScenario(w, sc)
}

func (s *Server) runScenario(w http.ResponseWriter, sc *scenario.Scenario) {
	res := s.Engine.Run(sc.Facts())
	s.Logger.Debug("scenario run", "scenario", sc.Name, "status", res.Status, "steps", len(res.Steps))
	s.writeJSON(w, http.StatusOK, scenario.NewReport(sc, res, s.Engine.Contradictions()))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
