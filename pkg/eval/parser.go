package eval

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/vocab"
)

// FactsKey is the JSON key holding the predicted fact list.
const FactsKey = "facts"

// Synonyms maps non-canonical tokens models tend to produce onto the
// engine's vocabulary.
var Synonyms = map[domain.Fact]domain.Fact{
	"PI3K__ACTIVITY__UP":   vocab.PI3KActive,
	"AKT__ACTIVITY__UP":    vocab.AKTActive,
	"GSK3__ACTIVITY__DOWN": vocab.GSK3Inactive,
}

// Parsed is a decoded model reply. Facts is sorted and synonym-normalized.
// Parsing never fails outright; problems are collected in Errors.
type Parsed struct {
	Raw    string
	Facts  []domain.Fact
	Errors []string
}

// ParseOutput extracts fact tokens from a raw model reply.
//
// The whole reply is tried as JSON first; otherwise the first balanced
// {...} fragment is used. The object must carry a "facts" list of strings.
func ParseOutput(raw string) Parsed {
	out := Parsed{Raw: raw, Facts: []domain.Fact{}, Errors: []string{}}
	candidate := strings.TrimSpace(raw)

	var data any
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		fragment, ok := extractObject(candidate)
		if !ok {
			out.Errors = append(out.Errors, "No JSON object found in LLM output.")
			return out
		}
		if err := json.Unmarshal([]byte(fragment), &data); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("Failed to parse extracted JSON fragment: %v", err))
			return out
		}
	}

	obj, ok := data.(map[string]any)
	if !ok {
		out.Errors = append(out.Errors, fmt.Sprintf("Top-level JSON is not an object (got %T).", data))
		return out
	}
	value, ok := obj[FactsKey]
	if !ok {
		out.Errors = append(out.Errors, fmt.Sprintf("JSON missing required key '%s'.", FactsKey))
		return out
	}
	items, ok := value.([]any)
	if !ok {
		out.Errors = append(out.Errors, fmt.Sprintf("'%s' value is not a list.", FactsKey))
		return out
	}

	set := domain.NewFactSet()
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			out.Errors = append(out.Errors, fmt.Sprintf("Ignoring non-string fact entry: %v", item))
			continue
		}
		f := domain.Fact(strings.TrimSpace(s))
		if canonical, ok := Synonyms[f]; ok {
			f = canonical
		}
		set.Add(f)
	}
	out.Facts = set.List()
	return out
}

// extractObject returns the first top-level {...} span by brace counting.
func extractObject(text string) (string, bool) {
	first := strings.IndexByte(text, '{')
	if first < 0 {
		return "", false
	}
	depth := 0
	for i := first; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[first : i+1], true
			}
		}
	}
	return "", false
}
