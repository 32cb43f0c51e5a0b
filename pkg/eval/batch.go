package eval

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aretw0/bioreasoner/internal/logging"
	"github.com/aretw0/bioreasoner/pkg/ports"
	"github.com/aretw0/bioreasoner/pkg/scenario"
	"golang.org/x/sync/errgroup"
)

// ManifestKey is the store key of the batch manifest.
const ManifestKey = "manifest"

// DefaultConcurrency bounds in-flight model queries when none is set.
const DefaultConcurrency = 4

// ManifestItem points from a scenario file to its stored result.
type ManifestItem struct {
	ScenarioPath string `json:"scenario_path"`
	ScenarioName string `json:"scenario_name"`
	Output       string `json:"output"`
}

// Manifest lists every result written by a batch, in suite order.
type Manifest struct {
	Count int            `json:"count"`
	Items []ManifestItem `json:"items"`
}

// Batch evaluates every scenario of a suite directory.
type Batch struct {
	Reasoner    ports.Reasoner
	Evaluator   *Evaluator
	Store       ports.ResultStore
	Concurrency int
	Logger      *slog.Logger
}

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9_\-]+`)
	slugUnderscore = regexp.MustCompile(`_+`)
)

// Slug lowercases s and reduces it to [a-z0-9_-], collapsing runs of
// underscores. An empty result becomes "scenario".
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "_")
	s = strings.Trim(slugUnderscore.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "scenario"
	}
	return s
}

// ResultKey names the stored result of the scenario loaded from path.
func ResultKey(s *scenario.Scenario, path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Slug(s.Name) + "__" + Slug(stem)
}

// Run discovers the suite, evaluates each scenario and stores the results
// followed by the manifest. Scenario order in the manifest is the sorted
// discovery order regardless of concurrency. The first failure cancels
// the remaining work.
func (b *Batch) Run(ctx context.Context, suiteDir string) (*Manifest, error) {
	logger := b.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	paths, err := scenario.Discover(suiteDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", suiteDir)
	}
	logger.Info("batch evaluation started", "suite", suiteDir, "scenarios", len(paths), "model", b.Evaluator.Model())

	limit := b.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	items := make([]ManifestItem, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			res, err := b.Evaluator.Evaluate(gctx, s, b.Reasoner.Run(s.Facts()))
			if err != nil {
				return err
			}

			key := ResultKey(s, path)
			if err := b.Store.Save(gctx, key, res); err != nil {
				return fmt.Errorf("failed to store result for %s: %w", path, err)
			}
			items[i] = ManifestItem{
				ScenarioPath: path,
				ScenarioName: s.Name,
				Output:       ports.Location(b.Store, key),
			}
			logger.Info("scenario done", "scenario", s.Name, "output", items[i].Output, "f1", res.Metrics.F1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	manifest := &Manifest{Count: len(items), Items: items}
	if err := b.Store.Save(ctx, ManifestKey, manifest); err != nil {
		return nil, fmt.Errorf("failed to store manifest: %w", err)
	}
	return manifest, nil
}
