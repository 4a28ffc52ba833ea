package catalog

import (
	_ "embed"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/ShotaGhoona/starup-hp/internal/schema"
	"github.com/ShotaGhoona/starup-hp/internal/validation"
)

//go:embed mapping.schema.json
var mappingSchema []byte

var mappingValidator = validation.MustCompile("collection-mapping", mappingSchema)

// Mapping overrides the built-in collection schemas, for workspaces whose
// columns are named differently. Only the listed properties change.
type Mapping struct {
	News *CollectionMapping `yaml:"news"`
	Jobs *CollectionMapping `yaml:"jobs"`
}

// CollectionMapping overrides one collection.
type CollectionMapping struct {
	CollectionKey string                  `yaml:"collection_key"`
	Properties    map[string]schema.Field `yaml:"properties"`
	DefaultSort   []schema.Sort           `yaml:"default_sort"`
}

// ParseMapping decodes a YAML (or JSON) mapping document and validates it
// before use. Validation failures are *validation.DocumentError values.
func ParseMapping(data []byte) (Mapping, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Mapping{}, fmt.Errorf("catalog mapping: %w", err)
	}
	if raw == nil {
		return Mapping{}, nil
	}
	if err := mappingValidator.Validate(raw); err != nil {
		return Mapping{}, fmt.Errorf("catalog mapping: %w", err)
	}

	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mapping{}, fmt.Errorf("catalog mapping: %w", err)
	}
	return m, nil
}

// Apply returns base with the overrides in m. A nil mapping returns base
// unchanged.
func (m *CollectionMapping) Apply(base schema.Schema, lookup schema.LookupFunc) schema.Schema {
	if m == nil {
		return base
	}
	out := base
	out.Properties = maps.Clone(base.Properties)
	maps.Copy(out.Properties, m.Properties)
	if m.CollectionKey != "" {
		out.CollectionID = schema.FromEnv(lookup, m.CollectionKey)
	}
	if len(m.DefaultSort) > 0 {
		out.DefaultSort = append([]schema.Sort(nil), m.DefaultSort...)
	}
	return out
}
