package eval

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/bioreasoner/pkg/ports"
)

// ErrNoResults is returned when there is nothing to summarize.
var ErrNoResults = errors.New("no evaluation results found")

// Row is one result's contribution to a summary.
type Row struct {
	File string         `json:"file"`
	TP   int            `json:"tp"`
	FP   int            `json:"fp"`
	FN   int            `json:"fn"`
	F1   float64        `json:"f1"`
	Meta map[string]any `json:"meta"`
}

// Summary aggregates a set of results. Micro scores use the summed counts;
// MacroF1 is the mean of the per-result F1 values.
type Summary struct {
	NFiles         int     `json:"n_files"`
	TP             int     `json:"tp"`
	FP             int     `json:"fp"`
	FN             int     `json:"fn"`
	MicroPrecision float64 `json:"micro_precision"`
	MicroRecall    float64 `json:"micro_recall"`
	MicroF1        float64 `json:"micro_f1"`
	MacroF1        float64 `json:"macro_f1"`
	PerFile        []Row   `json:"per_file"`
}

// IsResultKey reports whether a stored key can hold a scenario result.
// Only the manifest is excluded by name; summaries are recognized by content.
func IsResultKey(key string) bool {
	return key != ManifestKey
}

// isSummary reports whether a loaded document is an Analyze output, e.g. a
// summary written into the result directory by an earlier run.
func isSummary(obj map[string]any) bool {
	_, micro := obj["micro_f1"]
	_, macro := obj["macro_f1"]
	return micro || macro
}

// Analyze summarizes every result in store.
// Results are read loosely so that hand-edited or older files still count.
func Analyze(ctx context.Context, store ports.ResultStore) (*Summary, error) {
	keys, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{PerFile: []Row{}}
	var f1Total float64
	for _, key := range keys {
		if !IsResultKey(key) {
			continue
		}
		var obj map[string]any
		if err := store.Load(ctx, key, &obj); err != nil {
			return nil, fmt.Errorf("failed to load result %s: %w", key, err)
		}
		if isSummary(obj) {
			continue
		}

		tp, fp, fn := extractCounts(obj)
		row := Row{File: key, TP: tp, FP: fp, FN: fn, F1: F1(tp, fp, fn), Meta: map[string]any{}}
		if meta, ok := obj["_meta"].(map[string]any); ok {
			row.Meta = meta
		}
		sum.PerFile = append(sum.PerFile, row)
		sum.TP += tp
		sum.FP += fp
		sum.FN += fn
		f1Total += row.F1
	}
	if len(sum.PerFile) == 0 {
		return nil, ErrNoResults
	}

	sum.NFiles = len(sum.PerFile)
	sum.MicroPrecision = Precision(sum.TP, sum.FP)
	sum.MicroRecall = Recall(sum.TP, sum.FN)
	sum.MicroF1 = F1(sum.TP, sum.FP, sum.FN)
	sum.MacroF1 = f1Total / float64(sum.NFiles)
	return sum, nil
}

var countKeys = [][3]string{
	{"tp", "fp", "fn"},
	{"TP", "FP", "FN"},
}

// extractCounts reads tp/fp/fn from the top level or a "metrics" block,
// falling back to the lengths of the fact lists.
func extractCounts(obj map[string]any) (tp, fp, fn int) {
	for _, scope := range []map[string]any{obj, asMap(obj["metrics"])} {
		for _, ks := range countKeys {
			a, okA := asInt(scope[ks[0]])
			b, okB := asInt(scope[ks[1]])
			c, okC := asInt(scope[ks[2]])
			if okA && okB && okC {
				return a, b, c
			}
		}
	}
	return lenOf(obj["true_positives"]), lenOf(obj["false_positives"]), lenOf(obj["false_negatives"])
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func lenOf(v any) int {
	l, _ := v.([]any)
	return len(l)
}
