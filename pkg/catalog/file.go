package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/bioreasoner/internal/dto"
	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/aretw0/bioreasoner/pkg/dsl"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when a catalog document has the wrong shape.
var ErrMalformed = errors.New("malformed catalog")

// Load reads a catalog file. Files ending in .json are parsed as JSON,
// anything else as YAML.
func Load(path string) (*domain.Library, *domain.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	lib, reg, err := Parse(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, reg, nil
}

// Parse decodes a catalog document and builds it.
func Parse(data []byte, isJSON bool) (*domain.Library, *domain.Registry, error) {
	var raw map[string]any
	if isJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: top level must be a mapping", ErrMalformed)
	}

	var file dto.CatalogFile
	if err := decode(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromFile(file)
}

// FromFile builds a library and registry from an already decoded document.
func FromFile(file dto.CatalogFile) (*domain.Library, *domain.Registry, error) {
	b := dsl.New()
	for _, entry := range file.Rules {
		b.Rule(entry.Name).
			When(domain.Facts(entry.AllConditions()...)...).
			Then(domain.Facts(entry.AllConclusions()...)...).
			Priority(entry.Priority).
			Tags(entry.Tags...).
			Describe(entry.Description).
			Cite(entry.Citation)
	}
	for i, pair := range file.Contradictions {
		if len(pair) != 2 {
			return nil, nil, fmt.Errorf("%w: contradictions[%d] has %d members, want 2", ErrMalformed, i, len(pair))
		}
		b.Contradict(domain.Fact(pair[0]), domain.Fact(pair[1]))
	}
	return b.Build()
}

func decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
