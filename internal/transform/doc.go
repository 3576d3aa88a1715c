// Package transform implements batch edits over a selection of entries:
// shifting keys, shifting values, sequential numbering and setting one
// value for all.
//
// A transform runs in two steps. Plan computes a Preview listing every
// proposed change and every conflict; Apply commits a conflict-free
// Preview and refuses any other.
//
// # Conflicts
//
// A new key conflicts when it
//   - names an existing entry that is not part of the selection, or
//   - equals the new key of an earlier entry in the same selection.
//
// # Clamping
//
// Shifted indexes are clamped to [0, 9999] and values to
// [0, 0xFFFFFFFF]. Clamped changes are marked; distinct keys clamped onto
// the same boundary surface as batch conflicts, so they are never
// silently merged.
//
// # Chunking
//
// Compute is the pure per-entry step, so callers may plan in chunks as
// long as they pass the global position. Applying a Preview is
// order-independent and ApplyChunks reports progress between chunks.
package transform
