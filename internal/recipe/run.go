package recipe

import (
	"fmt"

	"mappy/internal/entry"
	"mappy/internal/mapfile"
	"mappy/internal/transform"
)

// StepResult summarizes one executed step.
type StepResult struct {
	Name     string
	Section  entry.Section
	Selected int
	Changed  int
	Clamped  int
}

// Run executes every step against a copy of d and returns the result.
// d itself is never modified.
func Run(d *mapfile.Document, f *File, reg *transform.Registry) (*mapfile.Document, []StepResult, error) {
	if res := Validate(f, reg); res.HasErrors() {
		return nil, nil, fmt.Errorf("invalid recipe: %w", res.Error())
	}

	out := d.Clone()
	results := make([]StepResult, 0, len(f.Steps))

	for i := range f.Steps {
		r, err := runStep(out, &f.Steps[i], reg)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", f.Steps[i].Name, err)
		}

		results = append(results, r)
	}

	return out, results, nil
}

func runStep(d *mapfile.Document, s *Step, reg *transform.Registry) (StepResult, error) {
	section, err := entry.ParseSection(s.Section)
	if err != nil {
		return StepResult{}, err
	}

	kind, err := reg.Lookup(s.Kind)
	if err != nil {
		return StepResult{}, err
	}

	entries := d.Entries(section)
	selected := Select(entries, s)

	p, err := transform.Plan(entries, selected, s.Op(kind))
	if err != nil {
		return StepResult{}, err
	}

	applied, err := transform.Apply(entries, p)
	if err != nil {
		return StepResult{}, err
	}

	d.SetEntries(section, applied)

	changed, clamped := p.Counts()

	return StepResult{
		Name:     s.Name,
		Section:  section,
		Selected: len(selected),
		Changed:  changed,
		Clamped:  clamped,
	}, nil
}

// Select returns the entries a step operates on.
func Select(entries entry.Entries, s *Step) []entry.Entry {
	switch {
	case len(s.Keys) > 0:
		return entry.Pick(entries, s.Keys)
	case s.Layer != "":
		return entry.InLayer(entries, s.Layer)
	default:
		return entry.Sorted(entries)
	}
}

// Op converts the step's parameters into a transform op of kind.
func (s *Step) Op(kind transform.Kind) transform.Op {
	return transform.Op{
		Kind:   kind,
		Amount: s.Amount,
		Start:  s.Start,
		Step:   s.Increment,
		Value:  s.Value,
	}
}
