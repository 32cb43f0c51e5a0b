package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/bioreasoner/internal/adapters/file"
	"github.com/aretw0/bioreasoner/internal/adapters/redis"
	"github.com/aretw0/bioreasoner/pkg/eval"
	"github.com/aretw0/bioreasoner/pkg/llm"
	"github.com/aretw0/bioreasoner/pkg/persistence/middleware"
	"github.com/aretw0/bioreasoner/pkg/ports"
	"github.com/aretw0/bioreasoner/pkg/scenario"
)

// Result store backends of batch-eval.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// ModelOptions select the LLM. Empty fields fall back to the environment.
type ModelOptions struct {
	Provider  string
	Model     string
	Replicate int
	// StubResponse is the canned reply of the stub provider.
	StubResponse string
}

func (m ModelOptions) config() (llm.Config, error) {
	cfg := llm.ConfigFromEnv().Override(m.Provider, m.Model)
	cfg.StubResponse = m.StubResponse
	if cfg.Model == "" && cfg.Provider != llm.ProviderStub {
		return cfg, fmt.Errorf("%w: pass --model or set %s", llm.ErrMissingModel, llm.EnvModel)
	}
	return cfg, nil
}

func (m ModelOptions) evaluator(engine ports.Reasoner, logger *slog.Logger) (*eval.Evaluator, error) {
	cfg, err := m.config()
	if err != nil {
		return nil, err
	}
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	replicate := m.Replicate
	if replicate <= 0 {
		replicate = 1
	}
	return eval.NewEvaluator(client, engine.Contradictions(),
		eval.WithModel(string(cfg.Provider), cfg.Model),
		eval.WithReplicate(replicate),
		eval.WithLogger(logger),
	), nil
}

// EvalOptions configure eval-llm.
type EvalOptions struct {
	EngineOptions
	ModelOptions
	ScenarioPath string
	Out          string
}

// RunEval scores one model answer against the engine for one scenario.
func RunEval(ctx context.Context, opts EvalOptions, stdout io.Writer) error {
	logger := createLogger(opts.Debug)

	engine, err := createEngine(opts.EngineOptions, logger)
	if err != nil {
		return err
	}
	s, err := scenario.Load(opts.ScenarioPath)
	if err != nil {
		return err
	}
	evaluator, err := opts.evaluator(engine, logger)
	if err != nil {
		return err
	}

	res, err := evaluator.Evaluate(ctx, s, engine.Run(s.Facts()))
	if err != nil {
		return err
	}
	return writeJSON(stdout, opts.Out, res)
}

// BatchOptions configure batch-eval.
type BatchOptions struct {
	EngineOptions
	ModelOptions
	SuiteDir    string
	OutDir      string
	Concurrency int
	Store       string
	RedisURL    string
	RedisPrefix string
	RedisTTL    time.Duration
	// EncryptionKey, when set, encrypts every stored result (hex or base64, 32 bytes).
	EncryptionKey string
	// Redact lists key patterns whose values are masked before storage.
	Redact []string
}

// wrapStore applies redaction then encryption to store.
func wrapStore(store ports.ResultStore, encryptionKey string, redact []string) (ports.ResultStore, error) {
	var mws []middleware.Middleware
	if len(redact) > 0 {
		mw, err := middleware.NewRedactMiddleware(redact)
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}
	if encryptionKey != "" {
		key, err := middleware.ParseKey(encryptionKey)
		if err != nil {
			return nil, err
		}
		mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}
	return middleware.Chain(store, mws...), nil
}

func openStore(opts BatchOptions) (ports.ResultStore, func() error, error) {
	switch strings.ToLower(opts.Store) {
	case "", StoreFile:
		return file.New(opts.OutDir), func() error { return nil }, nil
	case StoreRedis:
		var redisOpts []redis.Option
		if opts.RedisPrefix != "" {
			redisOpts = append(redisOpts, redis.WithPrefix(opts.RedisPrefix))
		}
		if opts.RedisTTL > 0 {
			redisOpts = append(redisOpts, redis.WithTTL(opts.RedisTTL))
		}
		store, err := redis.NewFromURL(opts.RedisURL, redisOpts...)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q: use %s or %s", opts.Store, StoreFile, StoreRedis)
	}
}

// RunBatch evaluates every scenario of a suite and writes one result per
// scenario plus a manifest.
func RunBatch(ctx context.Context, opts BatchOptions, stdout io.Writer) error {
	logger := createLogger(opts.Debug)

	engine, err := createEngine(opts.EngineOptions, logger)
	if err != nil {
		return err
	}
	evaluator, err := opts.evaluator(engine, logger)
	if err != nil {
		return err
	}
	backend, closeStore, err := openStore(opts)
	if err != nil {
		return err
	}
	defer closeStore()
	store, err := wrapStore(backend, opts.EncryptionKey, opts.Redact)
	if err != nil {
		return err
	}

	batch := &eval.Batch{
		Reasoner:    engine,
		Evaluator:   evaluator,
		Store:       store,
		Concurrency: opts.Concurrency,
		Logger:      logger,
	}
	manifest, err := batch.Run(ctx, opts.SuiteDir)
	if err != nil {
		return err
	}

	printSystemMessage(stdout, "Evaluated %d scenario(s); manifest at %s", manifest.Count, ports.Location(store, eval.ManifestKey))
	return nil
}

// AnalyzeOptions configure analyze.
type AnalyzeOptions struct {
	Input         string
	Out           string
	EncryptionKey string
}

// RunAnalyze summarizes a directory of evaluation results.
func RunAnalyze(ctx context.Context, opts AnalyzeOptions, stdout io.Writer) error {
	store, err := wrapStore(file.New(opts.Input), opts.EncryptionKey, nil)
	if err != nil {
		return err
	}
	summary, err := eval.Analyze(ctx, store)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", opts.Input, err)
	}
	return writeJSON(stdout, opts.Out, summary)
}

// AggregateOptions configure aggregate-replicates.
type AggregateOptions struct {
	Root string
	Out  string
}

// RunAggregate averages the summaries found under a directory tree.
func RunAggregate(opts AggregateOptions, stdout io.Writer) error {
	agg, err := eval.AggregateReplicates(opts.Root)
	if err != nil {
		return err
	}
	return writeJSON(stdout, opts.Out, agg)
}
