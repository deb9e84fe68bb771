// Package matrix enumerates the parameter-set variants the skeleton is
// exercised under.
package matrix

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/djbake/cli/internal/templates"
)

// Variant is one named parameter set of the configuration matrix.
type Variant struct {
	// Name identifies the variant in CLI flags and reports.
	Name string `yaml:"name"`

	// Description explains what the variant exercises.
	Description string `yaml:"description,omitempty"`

	// Params is the parameter set baked for this variant.
	Params templates.Params `yaml:"params"`
}

// Variants returns the built-in matrix: a baseline with no optional fields
// and one variant per optional feature. Each call returns fresh values so
// no state is shared between test cases.
func Variants() []Variant {
	common := templates.Params{
		AppName:  "cookie_lover",
		RepoName: "cookie_repo",
	}

	withModels := common
	withModels.Models = "ChocolateChip,Zimsterne"

	apache := common
	apache.OpenSourceLicense = "Apache Software License 2.0"

	return []Variant{
		{
			Name:        "no models",
			Description: "baseline parameter set with no optional fields",
			Params:      common,
		},
		{
			Name:        "two models",
			Description: "comma-separated model list",
			Params:      withModels,
		},
		{
			Name:        "apache license",
			Description: "non-default open source license",
			Params:      apache,
		},
	}
}

// Get returns the variant with the given name from the provided set.
func Get(variants []Variant, name string) (Variant, error) {
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant %q", name)
}

// Names returns the variant names in order.
func Names(variants []Variant) []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return names
}

// Load reads additional variants from a YAML file and validates each
// parameter set. Loaded variants are appended after the built-ins by
// callers; names must be unique within one run.
func Load(path string) ([]Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading matrix file: %w", err)
	}

	var doc struct {
		Variants []Variant `yaml:"variants"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing matrix file %s: %w", path, err)
	}

	for i, v := range doc.Variants {
		if v.Name == "" {
			return nil, fmt.Errorf("matrix file %s: variant %d has no name", path, i)
		}
		if err := templates.Validate(v.Params); err != nil {
			return nil, fmt.Errorf("matrix file %s: variant %q: %w", path, v.Name, err)
		}
	}

	return doc.Variants, nil
}

// Merge combines built-in and loaded variants, rejecting duplicate names.
func Merge(builtin, loaded []Variant) ([]Variant, error) {
	seen := make(map[string]bool, len(builtin))
	merged := make([]Variant, 0, len(builtin)+len(loaded))

	for _, v := range builtin {
		seen[v.Name] = true
		merged = append(merged, v)
	}
	for _, v := range loaded {
		if seen[v.Name] {
			return nil, fmt.Errorf("duplicate variant name %q", v.Name)
		}
		seen[v.Name] = true
		merged = append(merged, v)
	}

	return merged, nil
}
