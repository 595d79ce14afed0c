// Package checklist implements the folder-structure checklist engine: it
// collects files from a directory tree, matches their names against a static
// requirement specification of wildcard patterns, and reports per-group
// (per-tower) completion.
package checklist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category groups the pattern entries expected under one documentation folder.
// Entries may carry a trailing " xN" repetition suffix when several copies of
// the same document are required.
type Category struct {
	Name    string   `json:"name" yaml:"name"`
	Entries []string `json:"entries" yaml:"entries"`
}

// Spec is a requirement specification: an ordered list of categories, each
// with an ordered list of pattern entries. Order is significant; check output
// follows the declared order so results are reproducible across runs.
type Spec struct {
	Name       string     `json:"name" yaml:"name"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// Built-in specification names.
const (
	SpecTurbine = "turbine"
	SpecJobBook = "jobbook"
)

// TurbineSpec is the full wind-turbine documentation structure checked per tower.
func TurbineSpec() Spec {
	return Spec{
		Name: SpecTurbine,
		Categories: []Category{
			{
				Name: "Transport",
				Entries: []string{
					"*Transport* *Release* *Note*",
					"*Delivery* *Checklist*",
					"*Damage* *Report* x2",
				},
			},
			{
				Name: "Mechanical",
				Entries: []string{
					"*Base* *Inspection*",
					"*Mid* *Inspection*",
					"*Top* *Inspection*",
					"*Torque* *Protocol* x3",
					"*Mechanical* *Completion* *Certificate*",
					"*Punchlist*",
				},
			},
			{
				Name: "Electrical",
				Entries: []string{
					"*Cable* *Termination* *Report*",
					"*Insulation* *Test*",
					"*Earthing* *Protocol*",
					"*Electrical* *Completion* *Certificate*",
				},
			},
			{
				Name: "Commissioning",
				Entries: []string{
					"*Commissioning* *Checklist*",
					"*SCADA* *Signal* *Test*",
					"*SIF*",
					"*Final* *Punchlist*",
				},
			},
		},
	}
}

// JobBookSpec is the simpler job-book structure used for service visits.
func JobBookSpec() Spec {
	return Spec{
		Name: SpecJobBook,
		Categories: []Category{
			{
				Name: "Job Book",
				Entries: []string{
					"*Work* *Order*",
					"*Service* *Report*",
					"*Timesheet* x2",
					"*Toolbox* *Talk*",
				},
			},
		},
	}
}

// LoadSpec resolves a spec reference: a built-in name or a path to a YAML file.
func LoadSpec(ref string) (Spec, error) {
	switch ref {
	case SpecTurbine, "":
		return TurbineSpec(), nil
	case SpecJobBook:
		return JobBookSpec(), nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return Spec{}, fmt.Errorf("failed to read spec file: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("failed to parse spec file %s: %w", ref, err)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, fmt.Errorf("invalid spec file %s: %w", ref, err)
	}
	return spec, nil
}

// Validate checks that the specification is usable.
func (s Spec) Validate() error {
	if len(s.Categories) == 0 {
		return fmt.Errorf("spec must declare at least one category")
	}
	for _, cat := range s.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category name cannot be empty")
		}
		if len(cat.Entries) == 0 {
			return fmt.Errorf("category %q has no pattern entries", cat.Name)
		}
	}
	return nil
}

// TotalRequired sums the required counts of every entry in the spec.
func (s Spec) TotalRequired() int {
	total := 0
	for _, cat := range s.Categories {
		for _, entry := range cat.Entries {
			_, required := ParseEntry(entry)
			total += required
		}
	}
	return total
}
