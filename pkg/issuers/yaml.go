package issuers

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlCatalog is the on-disk catalog schema. Regional variants reorder,
// drop or extend issuers here instead of mutating the shipped table.
type yamlCatalog struct {
	Issuers []yamlDescriptor `yaml:"issuers"`
}

type yamlDescriptor struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Patterns []yamlPattern `yaml:"patterns"`
	Gaps     []int         `yaml:"gaps"`
	Lengths  []int         `yaml:"lengths"`
	Code     yamlCode      `yaml:"code"`
}

type yamlPattern struct {
	Prefix string `yaml:"prefix,omitempty"`
	Low    string `yaml:"low,omitempty"`
	High   string `yaml:"high,omitempty"`
}

type yamlCode struct {
	Name  string `yaml:"name"`
	Sizes []int  `yaml:"sizes"`
}

// FromYAML builds a catalog from YAML configuration. The result goes
// through the same validation as New, so a malformed or colliding catalog
// fails at load time rather than matching non-deterministically later.
func FromYAML(data []byte) (*Catalog, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(raw.Issuers) == 0 {
		return nil, fmt.Errorf("parse catalog: no issuers defined")
	}

	descriptors := make([]Descriptor, 0, len(raw.Issuers))
	for _, y := range raw.Issuers {
		patterns := make([]Pattern, 0, len(y.Patterns))
		for i, p := range y.Patterns {
			switch {
			case p.Prefix != "" && (p.Low != "" || p.High != ""):
				return nil, fmt.Errorf("issuer %q: pattern %d mixes prefix and range", y.ID, i)
			case p.Prefix != "":
				patterns = append(patterns, Exact(p.Prefix))
			default:
				patterns = append(patterns, Range(p.Low, p.High))
			}
		}
		descriptors = append(descriptors, Descriptor{
			ID:       y.ID,
			Name:     y.Name,
			Patterns: patterns,
			Gaps:     y.Gaps,
			Lengths:  y.Lengths,
			Code:     Code{Name: y.Code.Name, Sizes: y.Code.Sizes},
		})
	}
	return New(descriptors)
}
