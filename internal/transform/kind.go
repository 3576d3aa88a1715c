package transform

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind selects a transform rule.
type Kind int

const (
	_ Kind = iota // zero value is not a transform

	ShiftKeys    // shift_keys
	ShiftValues  // shift_values
	NumberValues // number_values
	SetSameValue // set_same_value
)

// ErrUnknownKind is returned for names or values outside the registry.
var ErrUnknownKind = errors.New("unknown transform kind")

// Def describes a transform kind for help output and recipe validation.
type Def struct {
	Kind        Kind
	Description string
	// Params lists the Op fields the kind reads.
	Params []string
}

// Name returns the kind's registry name.
func (d *Def) Name() string {
	return d.Kind.String()
}

// Registry holds the known transform kinds and provides lookup by name.
type Registry struct {
	defs map[string]*Def
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Def)}
}

// DefaultRegistry returns a registry holding the four built-in kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Add(&Def{Kind: ShiftKeys, Description: "add amount to each key index", Params: []string{"amount"}})
	r.Add(&Def{Kind: ShiftValues, Description: "add amount to each hex value", Params: []string{"amount"}})
	r.Add(&Def{Kind: NumberValues, Description: "set values to start, start+step, ...", Params: []string{"start", "step"}})
	r.Add(&Def{Kind: SetSameValue, Description: "set every value to the same hex value", Params: []string{"value"}})

	return r
}

// Add adds a kind to the registry.
func (r *Registry) Add(def *Def) {
	r.defs[def.Name()] = def
}

// Get returns a kind by name, or nil if not found.
func (r *Registry) Get(name string) *Def {
	return r.defs[strings.ToLower(strings.TrimSpace(name))]
}

// Has returns true if a kind with the given name exists.
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// Lookup resolves name to its Kind.
func (r *Registry) Lookup(name string) (Kind, error) {
	def := r.Get(name)
	if def == nil {
		return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, name, strings.Join(r.Names(), ", "))
	}

	return def.Kind, nil
}

// All returns every definition sorted by kind.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}

	slices.SortFunc(out, func(a, b *Def) int { return int(a.Kind) - int(b.Kind) })

	return out
}

// Names returns all kind names sorted by kind.
func (r *Registry) Names() []string {
	defs := r.All()

	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name()
	}

	return names
}
