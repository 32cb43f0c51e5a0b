package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/bioreasoner/pkg/adapters/http"
	"github.com/aretw0/bioreasoner/pkg/adapters/memory"
	"github.com/aretw0/bioreasoner/pkg/observability"
)

// ServeOptions configure serve.
type ServeOptions struct {
	EngineOptions
	Port int
	// ScenarioDir, when set, exposes its scenarios by name.
	ScenarioDir string
}

// NewServeHandler builds the HTTP API with Prometheus metrics wired into the engine.
func NewServeHandler(opts ServeOptions) (http.Handler, error) {
	logger := createLogger(opts.Debug)
	metrics := observability.NewMetrics(nil)

	engine, err := createEngine(opts.EngineOptions, logger, metrics.Hooks())
	if err != nil {
		return nil, err
	}

	handlerOpts := []httpAdapter.Option{
		httpAdapter.WithMetrics(metrics.Handler()),
		httpAdapter.WithLogger(logger),
	}
	if opts.ScenarioDir != "" {
		loader, err := memory.NewLoaderFromDir(opts.ScenarioDir)
		if err != nil {
			return nil, err
		}
		handlerOpts = append(handlerOpts, httpAdapter.WithLoader(loader))
	}
	return httpAdapter.NewHandler(engine, handlerOpts...), nil
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	handler, err := NewServeHandler(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("Starting BioReasoner Server on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		fmt.Println("\nStart shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", 5*time.Second, err)
		}
		fmt.Println("BioReasoner Server stopped gracefully")
		return nil
	}
}
