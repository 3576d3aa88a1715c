// Package layer manages the Layers section of a document: listing,
// gap-filling key allocation, rename, removal and display order.
//
// All mutations address a layer by its key. Removing a layer leaves its
// Targets and Sources entries alone; callers cascade with
// entry.RemoveLayerEntries when they want to.
package layer

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"mappy/internal/common"
	"mappy/internal/mapfile"
	"mappy/internal/validate"
)

var (
	// ErrLayerNotFound indicates the addressed layer key does not exist.
	ErrLayerNotFound = errors.New("layer not found")

	// ErrLayerExists indicates a rename target is already in use.
	ErrLayerExists = errors.New("layer already exists")
)

// Layer is one line of the Layers section.
type Layer struct {
	Key  string
	Path string
}

// List returns the layers sorted by numeric key.
func List(d *mapfile.Document) []Layer {
	keys := slices.SortedFunc(maps.Keys(d.Layers), common.CompareNumeric)

	out := make([]Layer, len(keys))
	for i, k := range keys {
		out[i] = Layer{Key: k, Path: d.Layers[k]}
	}

	return out
}

// Ordered returns the layers in display order, each key once.
func Ordered(d *mapfile.Document) []Layer {
	keys := common.Unique(mapfile.RepairOrder(d.Layers, d.Order))

	out := make([]Layer, len(keys))
	for i, k := range keys {
		out[i] = Layer{Key: k, Path: d.Layers[k]}
	}

	return out
}

// FormatKey renders n as a layer key, zero-padded to two digits.
func FormatKey(n int64) string {
	return common.PadDecimal(n, validate.LayerKeyWidth)
}

// NextKey returns the smallest non-negative number not used as a key.
func NextKey(layers map[string]string) string {
	used := make(map[int64]struct{}, len(layers))

	for k := range layers {
		if n, ok := common.ParseDecimal(k); ok {
			used[n] = struct{}{}
		}
	}

	var n int64
	for {
		if _, ok := used[n]; !ok {
			return FormatKey(n)
		}

		n++
	}
}

// Add inserts an empty-path layer under the next free key and returns it.
func Add(d *mapfile.Document) string {
	d.Normalize()

	key := NextKey(d.Layers)
	d.Layers[key] = ""
	d.Order = mapfile.RepairOrder(d.Layers, append(d.Order, key))

	return key
}

// Update sets the path of layer key and renames it to newKey when that
// differs. A renamed layer keeps its slot in the display order.
func Update(d *mapfile.Document, key, newKey, newPath string) error {
	if _, ok := d.Layers[key]; !ok {
		return fmt.Errorf("update %s: %w", key, ErrLayerNotFound)
	}

	if newKey != key {
		if err := validate.LayerKey(newKey); err != nil {
			return err
		}

		if _, taken := d.Layers[newKey]; taken {
			return fmt.Errorf("rename %s to %s: %w", key, newKey, ErrLayerExists)
		}

		delete(d.Layers, key)
		d.Order = common.Replace(d.Order, key, newKey)
	}

	d.Layers[newKey] = newPath
	d.Order = mapfile.RepairOrder(d.Layers, d.Order)

	return nil
}

// Remove deletes layer key and reports whether it existed.
func Remove(d *mapfile.Document, key string) bool {
	_, ok := d.Layers[key]

	delete(d.Layers, key)
	d.Order = mapfile.RepairOrder(d.Layers, common.Remove(d.Order, key))

	return ok
}

// Move places layer key at position in the display order, clamped to
// the valid range.
func Move(d *mapfile.Document, key string, position int) error {
	if _, ok := d.Layers[key]; !ok {
		return fmt.Errorf("move %s: %w", key, ErrLayerNotFound)
	}

	order := common.Remove(common.Unique(mapfile.RepairOrder(d.Layers, d.Order)), key)
	position, _ = common.Clamp(0, position, len(order))

	d.Order = slices.Insert(order, position, key)

	return nil
}

// Repair restores the layer order invariant in place.
func Repair(d *mapfile.Document) {
	d.Order = mapfile.RepairOrder(d.Layers, d.Order)
}
