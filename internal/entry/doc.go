// Package entry models the Targets and Sources sections: keyed hex values
// grouped by the layer prefix of their key.
//
// An entry key has the form "<layer>.<index>", e.g. "01.0100". The offset
// of an entry is decimal(index) - hex(value); zero means the value encodes
// the index unchanged.
//
// Every function here treats a nil Entries as empty and returns a fresh
// map instead of mutating its input.
package entry
