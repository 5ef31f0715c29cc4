// Package plan reads and writes merge plans: an ordered input list with
// optional per-document category and title overrides, plus the merge
// options that produced it. A dry run can save its resolved state as a
// plan; a later run can replay it without re-discovering files.
package plan

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/dgallion1/docnav/internal/catalog"
)

// Plan is the on-disk representation of one merge run.
type Plan struct {
	Inputs  []Input `yaml:"inputs"`
	Options Options `yaml:"options,omitempty"`
}

// Input is one source document. Category and Title override what the
// categorizer would derive from the filename.
type Input struct {
	Path     string `yaml:"path"`
	Category string `yaml:"category,omitempty"`
	Title    string `yaml:"title,omitempty"`
}

// Options stores the merge options alongside the inputs.
type Options struct {
	Output      string `yaml:"output,omitempty"`
	MenuTitle   string `yaml:"menu_title,omitempty"`
	BackLabel   string `yaml:"back_label,omitempty"`
	CategorySep string `yaml:"category_sep,omitempty"`
}

// Read loads a plan file.
func Read(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	if len(p.Inputs) == 0 {
		return nil, fmt.Errorf("plan file %s lists no inputs", path)
	}
	return &p, nil
}

// Write saves a plan file.
func Write(path string, p *Plan) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// FromSources captures a resolved run as a plan.
func FromSources(sources []catalog.Source, opts Options) *Plan {
	p := &Plan{Options: opts}
	for _, src := range sources {
		p.Inputs = append(p.Inputs, Input{
			Path:     src.Path,
			Category: src.Category,
			Title:    src.Title,
		})
	}
	return p
}

// Resolve turns the plan's inputs into sources. Entries without overrides
// are categorized from their filenames with sep; bookmarks are assigned in
// plan order.
func (p *Plan) Resolve(sep string) []catalog.Source {
	sources := make([]catalog.Source, 0, len(p.Inputs))
	for i, in := range p.Inputs {
		category, title := catalog.Categorize(in.Path, sep)
		if in.Category != "" {
			category = in.Category
		}
		if in.Title != "" {
			title = in.Title
		}
		sources = append(sources, catalog.Source{
			Path:     in.Path,
			Category: category,
			Title:    title,
			Bookmark: fmt.Sprintf("doc_%d", i+1),
		})
	}
	return sources
}
