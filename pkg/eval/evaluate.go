package eval

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aretw0/bioreasoner/internal/logging"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/llm"
	"github.com/aretw0/bioreasoner/pkg/scenario"
	"github.com/aretw0/bioreasoner/pkg/vocab"
)

// DefaultTargets are the facts scoring is restricted to: the derived
// pathway states, without presence facts a predictor could simply echo.
func DefaultTargets() []domain.Fact {
	return vocab.StateFacts()
}

// PairList encodes contradiction pairs as two-element arrays.
type PairList [][2]domain.Fact

func toPairList(pairs []domain.Pair) PairList {
	out := make(PairList, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, [2]domain.Fact{p.A, p.B})
	}
	return out
}

// Meta records where a result came from.
type Meta struct {
	ScenarioPath string `json:"scenario_path"`
	ScenarioName string `json:"scenario_name"`
	Provider     string `json:"provider"`
	ModelName    string `json:"model_name"`
	Replicate    int    `json:"replicate"`
}

// Result is the comparison of one model reply with the engine on one scenario.
type Result struct {
	ScenarioName string `json:"scenario_name"`
	ModelName    string `json:"model_name"`

	EngineFacts []domain.Fact `json:"engine_facts"`
	LLMFacts    []domain.Fact `json:"llm_facts"`

	TruePositives  []domain.Fact `json:"true_positives"`
	FalseNegatives []domain.Fact `json:"false_negatives"`
	FalsePositives []domain.Fact `json:"false_positives"`

	LLMInternalContradictions PairList `json:"llm_internal_contradictions"`
	LLMVsEngineContradictions PairList `json:"llm_vs_engine_contradictions"`

	ParsingErrors []string `json:"parsing_errors"`
	RawLLMOutput  string   `json:"raw_llm_output"`

	Metrics Metrics `json:"metrics"`
	Meta    Meta    `json:"_meta"`
}

// Evaluator queries a model and scores its reply.
type Evaluator struct {
	client         llm.Client
	contradictions *domain.Registry
	targets        *domain.FactSet
	provider       string
	model          string
	replicate      int
	logger         *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithModel sets the model name passed to the client.
func WithModel(provider, model string) Option {
	return func(e *Evaluator) {
		e.provider = provider
		e.model = model
	}
}

// WithTargets replaces DefaultTargets.
func WithTargets(targets ...domain.Fact) Option {
	return func(e *Evaluator) {
		e.targets = domain.NewFactSet(targets...)
	}
}

// WithReplicate tags results with a replicate index.
func WithReplicate(n int) Option {
	return func(e *Evaluator) {
		e.replicate = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEvaluator creates an Evaluator. The registry decides which
// predicted facts contradict each other or the engine.
func NewEvaluator(client llm.Client, contradictions *domain.Registry, opts ...Option) *Evaluator {
	e := &Evaluator{
		client:         client,
		contradictions: contradictions.Clone(),
		targets:        domain.NewFactSet(DefaultTargets()...),
		replicate:      1,
		logger:         logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the configured model name.
func (e *Evaluator) Model() string {
	return e.model
}

// Evaluate prompts the model with s and compares its answer with engineResult.
// Only a client error fails the evaluation; a malformed reply is scored as
// an empty prediction with parsing errors.
func (e *Evaluator) Evaluate(ctx context.Context, s *scenario.Scenario, engineResult *domain.Result) (*Result, error) {
	prompt := BuildPrompt(s, true)

	raw, err := e.client.Query(ctx, prompt, e.model)
	if err != nil {
		return nil, fmt.Errorf("failed to query model for scenario %s: %w", s.Name, err)
	}
	parsed := ParseOutput(raw)
	if len(parsed.Errors) > 0 {
		e.logger.Warn("model reply could not be fully parsed", "scenario", s.Name, "errors", parsed.Errors)
	}

	res := e.Compare(engineResult.FinalFacts, domain.NewFactSet(parsed.Facts...))
	res.ScenarioName = s.Name
	res.ModelName = e.model
	res.ParsingErrors = parsed.Errors
	res.RawLLMOutput = parsed.Raw
	res.Meta = Meta{
		ScenarioPath: s.Path,
		ScenarioName: s.Name,
		Provider:     e.provider,
		ModelName:    e.model,
		Replicate:    e.replicate,
	}

	e.logger.Debug("scenario evaluated",
		"scenario", s.Name,
		"tp", res.Metrics.TP,
		"fp", res.Metrics.FP,
		"fn", res.Metrics.FN,
	)
	return res, nil
}

// Compare scores predicted against the engine's facts. Identity and
// provenance fields are left empty.
func (e *Evaluator) Compare(engineFacts, predicted *domain.FactSet) *Result {
	var tp, fn, fp []domain.Fact
	for _, f := range e.targets.List() {
		inEngine, inLLM := engineFacts.Has(f), predicted.Has(f)
		switch {
		case inEngine && inLLM:
			tp = append(tp, f)
		case inEngine:
			fn = append(fn, f)
		case inLLM:
			fp = append(fp, f)
		}
	}

	var crossed []domain.Pair
	for _, p := range e.contradictions.Pairs() {
		if (engineFacts.Has(p.A) && predicted.Has(p.B)) || (engineFacts.Has(p.B) && predicted.Has(p.A)) {
			crossed = append(crossed, p)
		}
	}

	return &Result{
		EngineFacts:               engineFacts.List(),
		LLMFacts:                  predicted.List(),
		TruePositives:             orEmpty(tp),
		FalseNegatives:            orEmpty(fn),
		FalsePositives:            orEmpty(fp),
		LLMInternalContradictions: toPairList(e.contradictions.Check(predicted)),
		LLMVsEngineContradictions: toPairList(crossed),
		ParsingErrors:             []string{},
		Metrics:                   NewMetrics(len(tp), len(fp), len(fn)),
	}
}

func orEmpty(facts []domain.Fact) []domain.Fact {
	if facts == nil {
		return []domain.Fact{}
	}
	sort.Slice(facts, func(i, j int) bool { return facts[i] < facts[j] })
	return facts
}
