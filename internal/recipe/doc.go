// Package recipe loads, validates and runs YAML batch-transform recipes.
//
// A recipe is an ordered list of transform steps, each run against the
// document left by the previous one:
//
//	version: "1"
//	steps:
//	  - name: make room in layer 01
//	    section: targets
//	    layer: "01"
//	    kind: shift_keys
//	    amount: 10
//	  - name: renumber sources
//	    section: sources
//	    keys: ["00.0000", "00.0001"]
//	    kind: number_values
//	    start: 0x100
//	    step: 1
//	  - section: sources
//	    kind: set_same_value
//	    value: DEADBEEF
//
// A step selects entries by layer, by explicit keys, or (with neither)
// the whole section. Run is all-or-nothing: the first step with
// conflicts aborts the recipe and the document is left unchanged.
package recipe
