package runtime_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/aretw0/bioreasoner/internal/runtime"
	"github.com/aretw0/bioreasoner/pkg/catalog"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/dsl"
	v "github.com/aretw0/bioreasoner/pkg/vocab"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEngine(opts ...runtime.Option) *runtime.Engine {
	lib, reg := catalog.Default()
	return runtime.NewEngine(lib, reg, opts...)
}

func TestEngine_WntActivation(t *testing.T) {
	initial := domain.NewFactSet(
		v.WntLigandPresent, v.LRP6ProteinPresent, v.FrizzledProteinPresent,
		v.LRP6SerSitesIntact, v.BetaCatBaseline,
	)

	res := defaultEngine().Run(initial)

	for _, f := range []domain.Fact{v.SignalosomeFormed, v.LRP6SerSitesP, v.LRP6SignalingActive, v.BetaCatUp} {
		assert.True(t, res.Holds(f), "expected %s", f)
	}
	assert.Contains(t, res.Contradictions, domain.NewPair(v.BetaCatUp, v.BetaCatBaseline))
	assert.Equal(t, domain.StatusConverged, res.Status)
	assert.Equal(t, 2, res.Iterations)

	// Passes are not snapshots: the whole chain fires in the first pass.
	want := []domain.ReasoningStep{
		{IterationIndex: 1, Rule: "wnt_frizzled_lrp6_form_signalosome", NewFacts: []domain.Fact{v.SignalosomeFormed},
			RuleDescription: "When Wnt ligand, LRP6, and Frizzled are present, a Wnt signalosome forms."},
		{IterationIndex: 1, Rule: "signalosome_drives_lrp6_ser_phosphorylation", NewFacts: []domain.Fact{v.LRP6SerSitesP},
			RuleDescription: "A formed Wnt signalosome phosphorylates intact LRP6 serine sites."},
		{IterationIndex: 1, Rule: "signalosome_lowers_destruction_complex_activity", NewFacts: []domain.Fact{v.DestructionComplexLow},
			RuleDescription: "Wnt signalosome formation decreases destruction complex activity."},
		{IterationIndex: 1, Rule: "lrp6_active_when_p_s", NewFacts: []domain.Fact{v.LRP6SignalingActive},
			RuleDescription: "Serine-phosphorylated LRP6 is treated as an active Wnt co-receptor."},
		{IterationIndex: 1, Rule: "lrp6_active_drives_beta_cat_up", NewFacts: []domain.Fact{v.BetaCatUp},
			RuleDescription: "Active LRP6 signaling increases beta-catenin levels."},
	}
	if diff := cmp.Diff(want, res.Steps); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_WntOffBaseline(t *testing.T) {
	initial := domain.NewFactSet(
		v.LRP6ProteinPresent, v.FrizzledProteinPresent, v.LRP6SerSitesIntact, v.WntStateOff,
	)

	res := defaultEngine().Run(initial)

	assert.True(t, res.Holds(v.DestructionComplexHigh))
	assert.True(t, res.Holds(v.BetaCatDown))
	assert.False(t, res.Holds(v.SignalosomeFormed))
	assert.Empty(t, res.Contradictions)

	// The baseline rule has the lowest priority, so beta-catenin drops one pass later.
	assert.Equal(t, []string{
		"baseline_destruction_complex_high_when_no_wnt",
		"destruction_complex_high_drives_beta_cat_down",
	}, res.FiredRules())
	assert.Equal(t, 1, res.Steps[0].IterationIndex)
	assert.Equal(t, 2, res.Steps[1].IterationIndex)
	assert.Equal(t, 3, res.Iterations)
}

func TestEngine_ConflictingDestructionComplex(t *testing.T) {
	initial := domain.NewFactSet(
		v.WntLigandPresent, v.LRP6ProteinPresent, v.FrizzledProteinPresent,
		v.LRP6SerSitesIntact, v.DestructionComplexHigh,
	)

	res := defaultEngine().Run(initial)

	assert.True(t, res.Holds(v.DestructionComplexHigh))
	assert.True(t, res.Holds(v.DestructionComplexLow))

	dc := domain.NewPair(v.DestructionComplexHigh, v.DestructionComplexLow)
	count := 0
	for _, p := range res.Contradictions {
		if p == dc {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEngine_PI3KGrowthFactor(t *testing.T) {
	initial := domain.NewFactSet(v.GrowthFactorPresent, v.RTKReceptorPresent)

	res := defaultEngine().Run(initial)

	for _, f := range []domain.Fact{v.PI3KActive, v.AKTThr308P, v.AKTSer473P, v.AKTActive, v.GSK3Inactive, v.ApoptosisLow, v.DestructionComplexLow} {
		assert.True(t, res.Holds(f), "expected %s", f)
	}
	assert.Empty(t, res.Contradictions)

	step := res.Steps[1]
	assert.Equal(t, "pi3k_active_phosphorylates_akt", step.Rule)
	assert.Equal(t, []domain.Fact{v.AKTSer473P, v.AKTThr308P}, step.NewFacts, "new facts are sorted")
}

func TestEngine_ZeroIterations(t *testing.T) {
	initial := domain.NewFactSet(v.GrowthFactorPresent, v.RTKReceptorPresent)

	res := defaultEngine().RunWithLimit(initial, 0)

	assert.Equal(t, initial.List(), res.FinalFacts.List())
	assert.Empty(t, res.Steps)
	assert.Equal(t, domain.StatusTruncated, res.Status)
	assert.Equal(t, 0, res.Iterations)
}

// chain builds A0 -> A1 -> ... -> An where each link outranks the previous
// one, so every pass can fire exactly one link.
func chain(t *testing.T, n int) (*domain.Library, *domain.Registry) {
	t.Helper()
	b := dsl.New()
	for i := 0; i < n; i++ {
		b.Rule(fmt.Sprintf("link_%02d", i)).
			When(domain.Fact(fmt.Sprintf("A%d", i))).
			Then(domain.Fact(fmt.Sprintf("A%d", i+1))).
			Priority(i)
	}
	b.Contradict("A0", domain.Fact(fmt.Sprintf("A%d", n)))
	lib, reg, err := b.Build()
	require.NoError(t, err)
	return lib, reg
}

func TestEngine_SyntheticChain(t *testing.T) {
	lib, reg := chain(t, 10)

	t.Run("converges below the cap", func(t *testing.T) {
		res := runtime.NewEngine(lib, reg).Run(domain.NewFactSet("A0"))
		assert.Equal(t, domain.StatusConverged, res.Status)
		assert.Equal(t, 11, res.FinalFacts.Len())
		assert.Len(t, res.Steps, 10)
		assert.Equal(t, 11, res.Iterations)
		assert.Equal(t, []domain.Pair{domain.NewPair("A0", "A10")}, res.Contradictions)
	})

	t.Run("truncates at the cap", func(t *testing.T) {
		res := runtime.NewEngine(lib, reg, runtime.WithMaxIterations(4)).Run(domain.NewFactSet("A0"))
		assert.Equal(t, domain.StatusTruncated, res.Status)
		assert.Len(t, res.Steps, 4)
		assert.Equal(t, 4, res.Iterations)
		assert.True(t, res.Holds("A4"))
		assert.False(t, res.Holds("A5"))
		assert.Empty(t, res.Contradictions, "scan runs on the partial facts")
	})

	t.Run("cap equal to convergence pass", func(t *testing.T) {
		res := runtime.NewEngine(lib, reg).RunWithLimit(domain.NewFactSet("A0"), 11)
		assert.Equal(t, domain.StatusConverged, res.Status)
	})
}

func TestEngine_DoesNotMutateInput(t *testing.T) {
	initial := domain.NewFactSet(v.GrowthFactorPresent, v.RTKReceptorPresent)
	before := initial.List()

	res := defaultEngine().Run(initial)

	assert.Equal(t, before, initial.List())
	assert.Greater(t, res.FinalFacts.Len(), initial.Len())
}

func TestEngine_NoSteps(t *testing.T) {
	res := defaultEngine().Run(domain.NewFactSet("UNRELATED__FACT__X"))
	assert.Equal(t, domain.StatusConverged, res.Status)
	assert.Equal(t, 1, res.Iterations)
	assert.Empty(t, res.Steps)
	assert.NotNil(t, res.Steps)

	empty := runtime.NewEngine(nil, nil).Run(nil)
	assert.Equal(t, 0, empty.FinalFacts.Len())
	assert.Equal(t, domain.StatusConverged, empty.Status)
}

func TestEngine_RegistrySnapshot(t *testing.T) {
	lib, reg := catalog.Default()
	engine := runtime.NewEngine(lib, reg)
	require.NoError(t, reg.Add(v.PI3KActive, v.GrowthFactorPresent))

	res := engine.Run(domain.NewFactSet(v.GrowthFactorPresent, v.RTKReceptorPresent))
	assert.Empty(t, res.Contradictions)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var fired []string
	var complete []*domain.RunCompleteEvent

	hooks := domain.LifecycleHooks{
		OnRuleFired: func(e *domain.RuleFiredEvent) {
			fired = append(fired, e.Step.Rule)
		},
		OnRunComplete: func(e *domain.RunCompleteEvent) {
			complete = append(complete, e)
		},
	}

	initial := domain.NewFactSet(v.LRP6ProteinPresent, v.FrizzledProteinPresent, v.WntStateOff, v.BetaCatUp)
	res := defaultEngine(runtime.WithLifecycleHooks(hooks)).Run(initial)

	assert.Equal(t, res.FiredRules(), fired)
	require.Len(t, complete, 1)
	assert.Equal(t, domain.StatusConverged, complete[0].Status)
	assert.Equal(t, len(res.Steps), complete[0].Steps)
	assert.Equal(t, res.FinalFacts.Len(), complete[0].FinalFacts)
	assert.Equal(t, []domain.Pair{domain.NewPair(v.BetaCatDown, v.BetaCatUp)}, complete[0].Contradictions)
}

func TestEngine_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	lib, reg := chain(t, 3)

	runtime.NewEngine(lib, reg, runtime.WithLogger(logger), runtime.WithMaxIterations(1)).
		Run(domain.NewFactSet("A0"))

	out := buf.String()
	assert.Contains(t, out, "rule fired")
	assert.Contains(t, out, "rule=link_00")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=truncated")
}

func TestEngine_Options(t *testing.T) {
	assert.Equal(t, runtime.DefaultMaxIterations, defaultEngine().MaxIterations())
	assert.Equal(t, 0, defaultEngine(runtime.WithMaxIterations(-5)).MaxIterations())
	assert.NotPanics(t, func() { defaultEngine(runtime.WithLogger(nil)).Run(nil) })
}
