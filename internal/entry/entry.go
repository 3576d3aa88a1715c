package entry

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"mappy/internal/common"
	"mappy/internal/validate"
)

var (
	// ErrKeyExists indicates a move would overwrite an existing entry.
	ErrKeyExists = errors.New("entry key already exists")
)

// Entries maps entry keys to hex values for one section.
type Entries map[string]string

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Row is an entry together with its derived offset.
type Row struct {
	Key    string
	Value  string
	Offset Offset
}

// Clone returns a copy of e; a nil map clones to an empty one.
func (e Entries) Clone() Entries {
	out := make(Entries, len(e))
	maps.Copy(out, e)

	return out
}

// Sorted returns the entries in output order.
func Sorted(e Entries) []Entry {
	keys := slices.SortedFunc(maps.Keys(e), CompareKeys)

	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: k, Value: e[k]}
	}

	return out
}

// InLayer returns the entries of one layer in output order.
func InLayer(e Entries, layerKey string) []Entry {
	var out []Entry

	for _, en := range Sorted(e) {
		if LayerOf(en.Key) == layerKey {
			out = append(out, en)
		}
	}

	return out
}

// Pick returns the entries for keys in the given order, skipping
// keys that are not present. A repeated key is picked once.
func Pick(e Entries, keys []string) []Entry {
	out := make([]Entry, 0, len(keys))

	for _, k := range common.Unique(keys) {
		if v, ok := e[k]; ok {
			out = append(out, Entry{Key: k, Value: v})
		}
	}

	return out
}

// GroupByLayer splits entries by layer token, each group in index order.
// Unparsable keys or values produce an invalid offset rather than an error;
// a key without a separator is grouped under its whole text.
func GroupByLayer(e Entries) map[string][]Row {
	groups := make(map[string][]Row)

	for _, en := range Sorted(e) {
		layer, _, ok := SplitKey(en.Key)
		if !ok {
			layer = en.Key
		}

		groups[layer] = append(groups[layer], Row{
			Key:    en.Key,
			Value:  en.Value,
			Offset: ComputeOffset(en.Key, en.Value),
		})
	}

	return groups
}

// RemoveLayerEntries drops every entry whose layer token equals layerKey
// exactly, so "01" never matches "010.0000" or "10.0000".
func RemoveLayerEntries(e Entries, layerKey string) Entries {
	out := make(Entries, len(e))

	for k, v := range e {
		if layer, _, ok := SplitKey(k); ok && layer == layerKey {
			continue
		}

		out[k] = v
	}

	return out
}

// ReplaceLayerEntries removes a layer's entries and inserts replacement.
// Later duplicates in replacement win.
func ReplaceLayerEntries(e Entries, layerKey string, replacement []Entry) Entries {
	out := RemoveLayerEntries(e, layerKey)
	for _, en := range replacement {
		out[en.Key] = en.Value
	}

	return out
}

// RenameLayer moves every entry of layer from to layer to, keeping the index.
// It fails without changes if a moved key is already taken.
func RenameLayer(e Entries, from, to string) (Entries, error) {
	if from == to {
		return e.Clone(), nil
	}

	moved := make([]Entry, 0)

	for k, v := range e {
		layer, index, ok := SplitKey(k)
		if !ok || layer != from {
			continue
		}

		nk := to + Separator + index
		if _, taken := e[nk]; taken {
			return nil, fmt.Errorf("move %s to %s: %w", k, nk, ErrKeyExists)
		}

		moved = append(moved, Entry{Key: nk, Value: v})
	}

	out := RemoveLayerEntries(e, from)
	for _, en := range moved {
		out[en.Key] = en.Value
	}

	return out, nil
}

// Set validates and stores one entry. The value is stored in canonical
// uppercase form.
func Set(e Entries, key, value string) (Entries, error) {
	if err := validate.Entry(key, value); err != nil {
		return nil, err
	}

	out := e.Clone()
	out[key] = validate.CanonicalHex(value)

	return out, nil
}

// Delete removes one entry; a missing key is not an error.
func Delete(e Entries, key string) Entries {
	out := e.Clone()
	delete(out, key)

	return out
}
