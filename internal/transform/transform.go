package transform

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"mappy/internal/common"
	"mappy/internal/entry"
	"mappy/internal/validate"
)

// ErrUnresolvedConflicts is wrapped by ConflictError.
var ErrUnresolvedConflicts = errors.New("transform has unresolved conflicts")

// Op is a transform kind with its parameters. Fields a kind does not
// read are ignored.
type Op struct {
	Kind   Kind
	Amount int64  // shift_keys, shift_values
	Start  int64  // number_values
	Step   int64  // number_values
	Value  string // set_same_value, sanitized before use
}

// Change is the proposed rewrite of one selected entry.
type Change struct {
	// Index is the entry's position in the selection.
	Index    int
	OldKey   string
	OldValue string
	NewKey   string
	NewValue string
	// Clamped is set when the result was moved onto a range boundary.
	Clamped bool
	// Invalid is set when the key or value could not be parsed; the
	// entry is then left unchanged.
	Invalid bool
}

// Changed reports whether the change rewrites the key or the value.
// A value that only differs in case is not a change.
func (c Change) Changed() bool {
	return c.OldKey != c.NewKey || !validate.EqualHex(c.OldValue, c.NewValue)
}

// OldOffset returns the offset before the change.
func (c Change) OldOffset() entry.Offset {
	return entry.ComputeOffset(c.OldKey, c.OldValue)
}

// NewOffset returns the offset after the change.
func (c Change) NewOffset() entry.Offset {
	return entry.ComputeOffset(c.NewKey, c.NewValue)
}

// ConflictKind tells what a new key collided with.
type ConflictKind int

const (
	// ConflictExisting means the new key names an unselected entry.
	ConflictExisting ConflictKind = iota
	// ConflictBatch means an earlier selected entry maps to the same key.
	ConflictBatch
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictExisting:
		return "existing"
	case ConflictBatch:
		return "batch"
	default:
		return common.UnknownStr
	}
}

// Conflict identifies a change whose new key is not free.
type Conflict struct {
	Kind   ConflictKind
	Index  int
	OldKey string
	NewKey string
	// OtherIndex is the earlier change for ConflictBatch, -1 otherwise.
	OtherIndex int
	// OtherKey is the old key of the earlier change, or the existing key.
	OtherKey string
}

func (c Conflict) String() string {
	if c.Kind == ConflictBatch {
		return fmt.Sprintf("%s -> %s collides with %s (#%d) in the same batch", c.OldKey, c.NewKey, c.OtherKey, c.OtherIndex)
	}

	return fmt.Sprintf("%s -> %s collides with existing entry %s", c.OldKey, c.NewKey, c.OtherKey)
}

// ConflictError is returned by Apply for a Preview that still has conflicts.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = c.String()
	}

	return fmt.Sprintf("%s: %s", ErrUnresolvedConflicts, strings.Join(parts, "; "))
}

func (e *ConflictError) Unwrap() error {
	return ErrUnresolvedConflicts
}

// Preview is the result of Plan.
type Preview struct {
	Op        Op
	Changes   []Change
	Conflicts []Conflict
}

// HasConflicts reports whether Apply would refuse this preview.
func (p *Preview) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// ConflictingKeys returns the old keys involved in any conflict, each once.
func (p *Preview) ConflictingKeys() []string {
	var keys []string

	for _, c := range p.Conflicts {
		keys = append(keys, c.OldKey)
		if c.Kind == ConflictBatch {
			keys = append(keys, c.OtherKey)
		}
	}

	return common.Unique(keys)
}

// Counts returns how many changes rewrite something and how many clamped.
func (p *Preview) Counts() (changed, clamped int) {
	for _, c := range p.Changes {
		if c.Changed() {
			changed++
		}

		if c.Clamped {
			clamped++
		}
	}

	return changed, clamped
}

// Compute applies op to the entry at position i of a selection.
func Compute(op Op, i int, e entry.Entry) (Change, error) {
	c := Change{Index: i, OldKey: e.Key, OldValue: e.Value, NewKey: e.Key, NewValue: e.Value}

	switch op.Kind {
	case ShiftKeys:
		layer, index, ok := entry.SplitKey(e.Key)
		n, parsed := common.ParseDecimal(index)

		if !ok || !parsed {
			c.Invalid = true
			return c, nil
		}

		n, c.Clamped = common.Clamp(0, addSat(n, op.Amount), validate.MaxIndex)
		c.NewKey = entry.FormatKey(layer, n)
	case ShiftValues:
		v, ok := validate.ParseHex(e.Value)
		if !ok {
			c.Invalid = true
			return c, nil
		}

		c.NewValue, c.Clamped = clampHex(addSat(int64(v), op.Amount))
	case NumberValues:
		c.NewValue, c.Clamped = clampHex(addSat(op.Start, mulSat(int64(i), op.Step)))
	case SetSameValue:
		c.NewValue = validate.SanitizeHex(op.Value)
	default:
		return Change{}, fmt.Errorf("%w: %s", ErrUnknownKind, op.Kind)
	}

	return c, nil
}

// Plan computes the changes op makes to selected and the conflicts they
// cause against entries, the full section the selection was taken from.
func Plan(entries entry.Entries, selected []entry.Entry, op Op) (*Preview, error) {
	inSelection := make(map[string]struct{}, len(selected))
	for _, e := range selected {
		inSelection[e.Key] = struct{}{}
	}

	p := &Preview{Op: op, Changes: make([]Change, 0, len(selected))}
	firstByKey := make(map[string]int, len(selected))

	for i, e := range selected {
		c, err := Compute(op, i, e)
		if err != nil {
			return nil, err
		}

		p.Changes = append(p.Changes, c)

		if _, exists := entries[c.NewKey]; exists {
			if _, selectedKey := inSelection[c.NewKey]; !selectedKey {
				p.Conflicts = append(p.Conflicts, Conflict{
					Kind:       ConflictExisting,
					Index:      i,
					OldKey:     c.OldKey,
					NewKey:     c.NewKey,
					OtherIndex: -1,
					OtherKey:   c.NewKey,
				})
			}
		}

		if j, seen := firstByKey[c.NewKey]; seen {
			p.Conflicts = append(p.Conflicts, Conflict{
				Kind:       ConflictBatch,
				Index:      i,
				OldKey:     c.OldKey,
				NewKey:     c.NewKey,
				OtherIndex: j,
				OtherKey:   p.Changes[j].OldKey,
			})

			continue
		}

		firstByKey[c.NewKey] = i
	}

	return p, nil
}

// Apply commits a conflict-free preview to a copy of entries.
func Apply(entries entry.Entries, p *Preview) (entry.Entries, error) {
	return ApplyChunks(entries, p, len(p.Changes), nil)
}

// ProgressFunc is called after each applied chunk.
type ProgressFunc func(done, total int)

// ApplyChunks is Apply in chunks of size changes, calling progress after
// each one. The result does not depend on size.
func ApplyChunks(entries entry.Entries, p *Preview, size int, progress ProgressFunc) (entry.Entries, error) {
	if p.HasConflicts() {
		return nil, &ConflictError{Conflicts: p.Conflicts}
	}

	if size <= 0 {
		size = len(p.Changes)
	}

	claimed := make(map[string]struct{}, len(p.Changes))
	for _, c := range p.Changes {
		claimed[c.NewKey] = struct{}{}
	}

	out := entries.Clone()
	total := len(p.Changes)

	for start := 0; start < total; start += size {
		end := min(start+size, total)

		for _, c := range p.Changes[start:end] {
			// An old key is dropped only if no change writes to it, so
			// chunks may be applied in any order.
			if _, ok := claimed[c.OldKey]; !ok {
				delete(out, c.OldKey)
			}

			out[c.NewKey] = c.NewValue
		}

		if progress != nil {
			progress(end, total)
		}
	}

	return out, nil
}

func clampHex(n int64) (string, bool) {
	v, clamped := common.Clamp(0, n, validate.MaxValue)
	return validate.FormatHex(uint32(v)), clamped
}

func addSat(a, b int64) int64 {
	s := a + b

	switch {
	case a > 0 && b > 0 && s < 0:
		return math.MaxInt64
	case a < 0 && b < 0 && s >= 0:
		return math.MinInt64
	default:
		return s
	}
}

func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}

	p := a * b
	if p/b != a {
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}

		return math.MinInt64
	}

	return p
}
