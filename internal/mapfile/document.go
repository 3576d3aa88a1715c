package mapfile

import (
	"maps"
	"slices"
	"strings"

	"mappy/internal/common"
	"mappy/internal/entry"
)

// Section names with fixed meaning.
const (
	SectionLayers   = "Layers"
	SectionTargets  = "Targets"
	SectionSources  = "Sources"
	SectionInternal = "Internal"
)

// Document is the in-memory form of a mapping file.
type Document struct {
	// Layers maps layer keys to their paths, unquoted.
	Layers map[string]string
	// Order is the display and serialization order of layer keys.
	Order []string
	// Targets and Sources map entry keys to hex values, verbatim.
	Targets entry.Entries
	Sources entry.Entries
	// Passthrough holds every other section in first-seen order.
	Passthrough []Section
}

// Section is a passthrough section kept verbatim.
type Section struct {
	Name  string
	Pairs []Pair
}

// Pair is one key=value line of a passthrough section, value unquoted.
type Pair struct {
	Key   string
	Value string
}

// New returns an empty, normalized document.
func New() *Document {
	d := &Document{}
	d.Normalize()

	return d
}

// Normalize replaces absent sections with empty ones and repairs Order.
func (d *Document) Normalize() {
	if d.Layers == nil {
		d.Layers = map[string]string{}
	}

	if d.Targets == nil {
		d.Targets = entry.Entries{}
	}

	if d.Sources == nil {
		d.Sources = entry.Entries{}
	}

	d.Order = RepairOrder(d.Layers, d.Order)
}

// Entries returns the entry map of s.
func (d *Document) Entries(s entry.Section) entry.Entries {
	switch s {
	case entry.Targets:
		return d.Targets
	case entry.Sources:
		return d.Sources
	default:
		return nil
	}
}

// SetEntries replaces the entry map of s.
func (d *Document) SetEntries(s entry.Section, e entry.Entries) {
	if e == nil {
		e = entry.Entries{}
	}

	switch s {
	case entry.Targets:
		d.Targets = e
	case entry.Sources:
		d.Sources = e
	}
}

// Section returns the passthrough section called name, or nil.
func (d *Document) Section(name string) *Section {
	for i := range d.Passthrough {
		if strings.EqualFold(d.Passthrough[i].Name, name) {
			return &d.Passthrough[i]
		}
	}

	return nil
}

// Internal returns the pairs of the Internal section.
func (d *Document) Internal() []Pair {
	if s := d.Section(SectionInternal); s != nil {
		return s.Pairs
	}

	return nil
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	out := &Document{
		Layers:  maps.Clone(d.Layers),
		Order:   slices.Clone(d.Order),
		Targets: d.Targets.Clone(),
		Sources: d.Sources.Clone(),
	}

	if d.Layers == nil {
		out.Layers = map[string]string{}
	}

	for _, s := range d.Passthrough {
		out.Passthrough = append(out.Passthrough, Section{Name: s.Name, Pairs: slices.Clone(s.Pairs)})
	}

	return out
}

// RepairOrder keeps the entries of order that name an existing layer, in
// place and duplicates included, then appends the layers order is missing
// sorted by numeric key.
func RepairOrder(layers map[string]string, order []string) []string {
	out := make([]string, 0, len(layers))
	seen := make(map[string]struct{}, len(layers))

	for _, k := range order {
		if _, ok := layers[k]; !ok {
			continue
		}

		out = append(out, k)
		seen[k] = struct{}{}
	}

	var missing []string

	for k := range layers {
		if _, ok := seen[k]; !ok {
			missing = append(missing, k)
		}
	}

	slices.SortFunc(missing, common.CompareNumeric)

	return append(out, missing...)
}
