package eval

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoSummaries is returned when no summary file is found under the root.
var ErrNoSummaries = errors.New("no summary-like JSON files found")

// Aggregate averages the numeric scores of several summaries.
type Aggregate struct {
	NSummaries int
	Sources    []string
	Means      map[string]float64
}

// MarshalJSON flattens the means next to n_summaries and sources.
func (a Aggregate) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Means)+2)
	for k, v := range a.Means {
		out[k] = v
	}
	out["n_summaries"] = a.NSummaries
	out["sources"] = a.Sources
	return json.Marshal(out)
}

// AggregateReplicates walks root for *summary*.json files that carry
// micro_f1 or macro_f1, and averages every numeric key the summaries have
// in common. Keys starting with "_" are skipped. Unreadable files are ignored.
func AggregateReplicates(root string) (*Aggregate, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.Contains(d.Name(), "summary") && filepath.Ext(d.Name()) == ".json" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	sort.Strings(paths)

	var summaries []map[string]any
	agg := &Aggregate{Sources: []string{}, Means: map[string]float64{}}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var obj map[string]any
		if json.Unmarshal(data, &obj) != nil {
			continue
		}
		_, micro := obj["micro_f1"]
		_, macro := obj["macro_f1"]
		if !micro && !macro {
			continue
		}
		summaries = append(summaries, obj)
		agg.Sources = append(agg.Sources, p)
	}
	if len(summaries) == 0 {
		return nil, fmt.Errorf("%w under: %s", ErrNoSummaries, root)
	}
	agg.NSummaries = len(summaries)

	for k := range summaries[0] {
		if strings.HasPrefix(k, "_") {
			continue
		}
		var total float64
		common := true
		for _, s := range summaries {
			v, ok := s[k].(float64)
			if !ok {
				common = false
				break
			}
			total += v
		}
		if common {
			agg.Means[k] = total / float64(len(summaries))
		}
	}
	return agg, nil
}
