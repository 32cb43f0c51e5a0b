package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/bioreasoner"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RulesURI is the resource exposing the rule catalog.
const RulesURI = "bioreasoner://rules"

// RunArgs are the arguments of run_engine.
type RunArgs struct {
	InitialFacts  []string `json:"initial_facts"`
	MaxIterations *int     `json:"max_iterations,omitempty"`
}

// CheckArgs are the arguments of check_contradictions.
type CheckArgs struct {
	Facts []string `json:"facts"`
}

// CheckResponse lists the contradiction pairs found in a fact set.
type CheckResponse struct {
	Contradictions []domain.Pair `json:"contradictions" jsonschema_description:"Mutually exclusive pairs fully present"`
}

// RulesResponse wraps the rule catalog.
type RulesResponse struct {
	Rules []domain.Rule `json:"rules" jsonschema_description:"Rules in application order"`
}

// Server wraps a Reasoner and exposes it as an MCP Server.
type Server struct {
	engine    ports.Reasoner
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Reasoner) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("bioreasoner-mcp", strings.TrimSpace(bioreasoner.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	runTool := mcp.NewTool("run_engine",
		mcp.WithDescription("Derive every fact implied by the initial facts, with the reasoning trace and detected contradictions."),
		mcp.WithArray("initial_facts", mcp.Required(), mcp.WithStringItems(),
			mcp.Description("Fact tokens such as WNT__LIGAND__PRESENT")),
		mcp.WithNumber("max_iterations", mcp.Description("Pass cap (optional)")),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRun))

	s.mcpServer.AddTool(mcp.NewTool("list_rules",
		mcp.WithDescription("List the rule catalog in application order."),
		mcp.WithOutputSchema[RulesResponse](),
	), mcp.NewStructuredToolHandler(s.handleListRules))

	s.mcpServer.AddTool(mcp.NewTool("check_contradictions",
		mcp.WithDescription("Report contradiction pairs present in a fact set without deriving anything."),
		mcp.WithArray("facts", mcp.Required(), mcp.WithStringItems(), mcp.Description("Fact tokens to check")),
		mcp.WithOutputSchema[CheckResponse](),
	), mcp.NewStructuredToolHandler(s.handleCheck))
}

func toFactSet(tokens []string) (*domain.FactSet, error) {
	facts := domain.NewFactSet()
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("fact %d is empty", i)
		}
		facts.Add(domain.Fact(tok))
	}
	return facts, nil
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args RunArgs) (domain.Result, error) {
	facts, err := toFactSet(args.InitialFacts)
	if err != nil {
		return domain.Result{}, err
	}
	if args.MaxIterations != nil {
		if *args.MaxIterations < 0 {
			return domain.Result{}, fmt.Errorf("max_iterations must not be negative")
		}
		return *s.engine.RunWithLimit(facts, *args.MaxIterations), nil
	}
	return *s.engine.Run(facts), nil
}

func (s *Server) handleListRules(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (RulesResponse, error) {
	return RulesResponse{Rules: s.engine.Rules()}, nil
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args CheckArgs) (CheckResponse, error) {
	facts, err := toFactSet(args.Facts)
	if err != nil {
		return CheckResponse{}, err
	}
	return CheckResponse{Contradictions: s.engine.Contradictions().Check(facts)}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(RulesURI, "Rule Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(RulesResponse{Rules: s.engine.Rules()})
		if err != nil {
			return nil, fmt.Errorf("failed to encode rules: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      RulesURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
